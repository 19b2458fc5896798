package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
)

func newSSLCertCmd(c *cli) *cobra.Command {
	var outDir string

	cmd := &cobra.Command{
		Use:   "ssl-cert",
		Short: "Write the nginx certificate and key from the ssl_certificate item",
		Long: `Decrypt the ssl_certificate item and write <key>.crt and <key>.key into
the output directory, where <key> is nexus.ssl_certificate.key (the node
FQDN by default). The key file is readable by its owner only.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			services, err := c.app.Services(ctx)
			if err != nil {
				return err
			}

			cert, err := services.SecretService.SSLCertificate(ctx)
			if err != nil {
				return err
			}

			name := c.app.Attributes().Nexus.SSLCertificate.Key
			if name == "" {
				return fmt.Errorf("nexus.ssl_certificate.key is empty")
			}
			if err = os.MkdirAll(outDir, 0o755); err != nil {
				return err
			}

			crtPath := filepath.Join(outDir, name+".crt")
			keyPath := filepath.Join(outDir, name+".key")
			if err = os.WriteFile(crtPath, cert.Crt, 0o644); err != nil {
				return err
			}
			if err = os.WriteFile(keyPath, cert.Key, 0o600); err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			step(w, true, "wrote %s", crtPath)
			step(w, true, "wrote %s", keyPath)
			return nil
		},
	}

	cmd.Flags().StringVar(&outDir, "out-dir", ".", "Directory to write the certificate and key into")
	return cmd
}
