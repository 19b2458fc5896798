package cmd

import (
	"github.com/MKhiriev/go-nexus-keeper/models"
	"github.com/spf13/cobra"
)

type statusOutput struct {
	CredentialSet models.CredentialSetName `json:"credential_set" yaml:"credential_set"`
	Username      string                   `json:"username" yaml:"username"`
	Repository    string                   `json:"repository" yaml:"repository"`
	Status        models.NexusStatus       `json:"status" yaml:"status"`
}

func newStatusCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Connect to Nexus and show its version and edition",
		Long: `Open an authenticated session, trying default_admin first and falling
back to updated_admin on an authorization error, and print the instance status.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			services, err := c.app.Services(ctx)
			if err != nil {
				return err
			}

			session, set, err := services.NexusService.Client(ctx)
			if err != nil {
				return err
			}
			status, err := session.Status(ctx)
			if err != nil {
				return err
			}

			out := statusOutput{
				CredentialSet: set,
				Username:      session.Username(),
				Repository:    session.Repository(),
				Status:        status,
			}
			w := cmd.OutOrStdout()
			if handled, err := c.formatOutput(w, out); handled {
				return err
			}

			return renderTable(w, []string{"FIELD", "VALUE"}, [][]string{
				{"credential set", string(out.CredentialSet)},
				{"username", out.Username},
				{"repository", out.Repository},
				{"version", status.Version},
				{"edition", status.EditionLong},
				{"state", status.State},
			})
		},
	}
}
