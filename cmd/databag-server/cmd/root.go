// Package cmd implements the databag-server commands.
package cmd

import (
	"fmt"

	"github.com/MKhiriev/go-nexus-keeper/internal/config"
	"github.com/MKhiriev/go-nexus-keeper/models"
	"github.com/spf13/cobra"
)

func newRootCmd(buildInfo models.AppBuildInfo) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "databag-server",
		Short: "Serve encrypted data-bag items to provisioned nodes",
		Long: `databag-server stores encrypted data-bag items and hands them to nodes
holding a bearer token it issued. Items stay encrypted end to end; the
server never sees the shared secret.`,
		Version:       buildInfo.BuildVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	flags := rootCmd.PersistentFlags()
	config.RegisterCommonFlags(flags)
	config.RegisterServerFlags(flags)

	rootCmd.AddCommand(
		newServeCmd(buildInfo),
		newTokenCmd(),
	)
	return rootCmd
}

// Execute runs databag-server with os.Args.
func Execute(buildInfo models.AppBuildInfo) error {
	rootCmd := newRootCmd(buildInfo)
	err := rootCmd.Execute()
	if err != nil {
		fmt.Fprintf(rootCmd.ErrOrStderr(), "error: %v\n", err)
	}
	return err
}
