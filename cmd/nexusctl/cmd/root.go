// Package cmd implements the nexusctl CLI commands.
package cmd

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/go-nexus-keeper/internal/adapter"
	"github.com/MKhiriev/go-nexus-keeper/internal/client"
	"github.com/MKhiriev/go-nexus-keeper/internal/config"
	"github.com/MKhiriev/go-nexus-keeper/internal/logger"
	"github.com/MKhiriev/go-nexus-keeper/internal/service"
	"github.com/MKhiriev/go-nexus-keeper/internal/validators"
	"github.com/MKhiriev/go-nexus-keeper/models"
	"github.com/spf13/cobra"
)

// Exit codes reported by nexusctl.
const (
	ExitOK             = 0
	ExitFailure        = 1
	ExitAuthorization  = 2
	ExitInvalidContent = 3
	ExitNotFound       = 4
)

// cli is the state shared by every command of one invocation.
type cli struct {
	buildInfo    models.AppBuildInfo
	outputFormat string

	cfg *config.StructuredConfig
	app *client.App
	log *logger.Logger
}

func newRootCmd(buildInfo models.AppBuildInfo) (*cobra.Command, *cli) {
	c := &cli{buildInfo: buildInfo}

	rootCmd := &cobra.Command{
		Use:   "nexusctl",
		Short: "Provision a Sonatype Nexus instance from attributes and encrypted secrets",
		Long: `nexusctl composes the Nexus attribute table for this node, loads the
encrypted credentials, license and certificates from the data bag, and
converges a running Nexus instance over its REST API.`,
		Version:       buildInfo.BuildVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			switch cmd.Name() {
			case "version", "help", "completion", cobra.ShellCompRequestCmd, cobra.ShellCompNoDescRequestCmd:
				return nil
			}
			return c.init(cmd)
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&c.outputFormat, "output", "o", formatTable, "Output format: table, json, yaml")
	config.RegisterCommonFlags(flags)
	config.RegisterNodeFlags(flags)

	rootCmd.AddCommand(
		newAttributesCmd(c),
		newStatusCmd(c),
		newProbeCmd(c),
		newConvergeCmd(c),
		newSecretCmd(c),
		newSSLCertCmd(c),
		newVersionCmd(c),
	)
	return rootCmd, c
}

func (c *cli) init(cmd *cobra.Command) error {
	switch c.outputFormat {
	case formatTable, formatJSON, formatYAML:
	default:
		return fmt.Errorf("unknown output format %q", c.outputFormat)
	}

	cfg, err := config.GetStructuredConfig(cmd.Flags())
	if err != nil {
		return err
	}
	c.cfg = cfg
	c.log = logger.NewCLILogger("nexusctl", cfg.Log.Level, cmd.ErrOrStderr())

	c.app, err = client.NewApp(cfg, c.log)
	return err
}

// close releases what init opened. Commands may fail, so this runs after
// Execute rather than in a post-run hook.
func (c *cli) close() {
	if c.app != nil {
		if err := c.app.Close(); err != nil {
			c.log.Err(err).Msg("error closing secret store")
		}
	}
}

// Execute runs nexusctl with os.Args.
func Execute(buildInfo models.AppBuildInfo) error {
	rootCmd, c := newRootCmd(buildInfo)
	defer c.close()

	return run(rootCmd)
}

// run executes rootCmd and prints a returned error once, to stderr.
func run(rootCmd *cobra.Command) error {
	err := rootCmd.Execute()
	if err != nil {
		errorf(rootCmd.ErrOrStderr(), "%v", err)
	}
	return err
}

// ExitCode maps an error returned by Execute to the process exit status.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return ExitOK
	case adapter.IsAuthorizationError(err):
		return ExitAuthorization
	case errors.Is(err, validators.ErrInvalidSecretContent):
		return ExitInvalidContent
	case errors.Is(err, service.ErrSecretNotFound):
		return ExitNotFound
	default:
		return ExitFailure
	}
}
