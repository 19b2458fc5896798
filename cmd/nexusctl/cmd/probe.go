package cmd

import (
	"errors"

	"github.com/MKhiriev/go-nexus-keeper/models"
	"github.com/spf13/cobra"
)

type probeResult struct {
	Set           models.CredentialSetName `json:"set,omitempty" yaml:"set,omitempty"`
	Username      string                   `json:"username" yaml:"username"`
	Authenticated bool                     `json:"authenticated" yaml:"authenticated"`
}

func newProbeCmd(c *cli) *cobra.Command {
	var username, password string

	cmd := &cobra.Command{
		Use:   "probe",
		Short: "Check which credentials Nexus accepts",
		Long: `Check credentials against Nexus without changing anything.

Without --username both credential sets from the credentials secret are
probed. A rejected login is a result, not an error; transport failures are
errors.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			services, err := c.app.Services(ctx)
			if err != nil {
				return err
			}

			var candidates []probeResult
			var passwords []string
			switch {
			case username != "":
				candidates = []probeResult{{Username: username}}
				passwords = []string{password}
			case password != "":
				return errors.New("--password requires --username")
			default:
				creds, err := services.SecretService.Credentials(ctx)
				if err != nil {
					return err
				}
				candidates = []probeResult{
					{Set: models.DefaultAdminSet, Username: creds.DefaultAdmin.Username},
					{Set: models.UpdatedAdminSet, Username: creds.UpdatedAdmin.Username},
				}
				passwords = []string{creds.DefaultAdmin.Password, creds.UpdatedAdmin.Password}
			}

			for i := range candidates {
				candidates[i].Authenticated, err = services.NexusService.CheckCredentials(ctx, candidates[i].Username, passwords[i])
				if err != nil {
					return err
				}
			}

			w := cmd.OutOrStdout()
			if handled, err := c.formatOutput(w, candidates); handled {
				return err
			}

			rows := make([][]string, 0, len(candidates))
			for _, r := range candidates {
				result := errFmt("rejected")
				if r.Authenticated {
					result = okFmt("accepted")
				}
				rows = append(rows, []string{string(r.Set), r.Username, result})
			}
			return renderTable(w, []string{"SET", "USERNAME", "RESULT"}, rows)
		},
	}

	cmd.Flags().StringVar(&username, "username", "", "Probe this username instead of the stored credential sets")
	cmd.Flags().StringVar(&password, "password", "", "Password for --username")
	return cmd
}
