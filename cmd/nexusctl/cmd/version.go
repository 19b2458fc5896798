package cmd

import (
	"github.com/spf13/cobra"
)

type versionOutput struct {
	Version string `json:"version" yaml:"version"`
	Date    string `json:"date" yaml:"date"`
	Commit  string `json:"commit" yaml:"commit"`
}

func newVersionCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print build information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := versionOutput{
				Version: c.buildInfo.BuildVersion(),
				Date:    c.buildInfo.BuildDate(),
				Commit:  c.buildInfo.BuildCommit(),
			}

			w := cmd.OutOrStdout()
			if handled, err := c.formatOutput(w, out); handled {
				return err
			}
			return renderTable(w, []string{"FIELD", "VALUE"}, [][]string{
				{"version", out.Version},
				{"date", out.Date},
				{"commit", out.Commit},
			})
		},
	}
}
