package cmd

import (
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/MKhiriev/go-nexus-keeper/internal/config"
	"github.com/MKhiriev/go-nexus-keeper/models"
	"github.com/spf13/cobra"
)

func newConvergeCmd(c *cli) *cobra.Command {
	var watch bool

	cmd := &cobra.Command{
		Use:   "converge",
		Short: "Bring Nexus to the state the attributes and secrets describe",
		Long: `Run one convergence pass: rotate the shipped admin password, create the
hosted repositories, and on Nexus Professional install the license and
configure smart proxy with its publishers and trusted servers.

With --watch, or an explicit --interval, passes repeat until interrupted.
The interval defaults to WORKERS_CONVERGE_INTERVAL.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			var interval time.Duration
			switch {
			case cmd.Flags().Changed(config.FlagConvergeInterval):
				interval, _ = cmd.Flags().GetDuration(config.FlagConvergeInterval)
			case watch:
				interval = c.cfg.Workers.ConvergeInterval
			}

			w, errW := cmd.OutOrStdout(), cmd.ErrOrStderr()
			var lastErr error
			err := c.app.Converge(ctx, interval, func(report models.ConvergeReport, err error) {
				lastErr = err
				c.printReport(w, report)
				// a single pass returns err to Execute, which prints it
				if err != nil && interval > 0 {
					errorf(errW, "convergence pass failed: %v", err)
				}
			})
			if err != nil {
				return err
			}
			if interval > 0 && ctx.Err() != nil {
				return nil
			}
			return lastErr
		},
	}

	cmd.Flags().BoolVar(&watch, "watch", false, "Repeat convergence every interval until interrupted")
	config.RegisterWorkerFlags(cmd.Flags())
	return cmd
}

func (c *cli) printReport(w io.Writer, report models.ConvergeReport) {
	if handled, err := c.formatOutput(w, report); handled {
		if err != nil {
			c.log.Err(err).Msg("error writing report")
		}
		return
	}

	if report.Status.Version != "" {
		step(w, true, "connected as %s to Nexus %s (%s)", infoFmt(string(report.CredentialSet)),
			report.Status.Version, report.Status.EditionLong)
	}
	step(w, report.PasswordRotated, "default admin password rotated")
	step(w, len(report.CreatedRepositories) > 0, "hosted repositories created: %s", list(report.CreatedRepositories))
	step(w, report.LicenseInstalled, "license installed")
	step(w, report.SmartProxyConfigured, "smart proxy configured")
	step(w, len(report.PublishedRepositories) > 0, "artifact publishing enabled: %s", list(report.PublishedRepositories))
	step(w, len(report.TrustedServers) > 0, "trusted servers added: %s", list(report.TrustedServers))
}

func list(items []string) string {
	if len(items) == 0 {
		return "none"
	}
	return strings.Join(items, ", ")
}

