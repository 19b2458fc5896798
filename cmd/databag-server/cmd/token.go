package cmd

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/go-nexus-keeper/internal/config"
	"github.com/MKhiriev/go-nexus-keeper/internal/utils"
	"github.com/spf13/cobra"
)

func newTokenCmd() *cobra.Command {
	var subject string

	cmd := &cobra.Command{
		Use:   "token --subject NODE",
		Short: "Mint a bearer token for a node",
		Long: `Mint a bearer token signed with the server's token sign key. The
subject, usually the node FQDN, is logged with every request the node makes.`,
		Example: `  databag-server token --subject repo.example.com --token-sign-key "$KEY"`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if subject == "" {
				return errors.New("--subject is required")
			}

			cfg, err := config.GetStructuredConfig(cmd.Flags())
			if err != nil {
				return err
			}
			if cfg.Server.TokenSignKey == "" {
				return errors.New("token sign key is not configured")
			}

			token, err := utils.GenerateJWTToken(cfg.Server.TokenIssuer, subject, cfg.Server.TokenDuration, cfg.Server.TokenSignKey)
			if err != nil {
				return err
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), token.SignedString)
			return err
		},
	}

	cmd.Flags().StringVar(&subject, "subject", "", "Node the token is issued to")
	return cmd
}
