package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newAttributesCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "attributes [key]",
		Short: "Show the composed attribute table or one dotted setting",
		Long: `Show the attribute table for this node: the defaults, merged with the
overrides file and derived from the node FQDN.

With a key such as nexus.cli.url only that setting is printed; an
intermediate key such as nexus.smart_proxy prints the whole group.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			attrs := c.app.Attributes()
			w := cmd.OutOrStdout()

			if len(args) == 1 {
				value, err := attrs.Lookup(args[0])
				if err != nil {
					return err
				}
				if handled, err := c.formatOutput(w, value); handled {
					return err
				}
				if _, isGroup := value.(map[string]any); isGroup {
					return outputYAML(w, value)
				}
				_, err = fmt.Fprintln(w, displayValue(value))
				return err
			}

			flat, err := attrs.Flatten()
			if err != nil {
				return err
			}
			if handled, err := c.formatOutput(w, attrs); handled {
				return err
			}

			keys, err := attrs.Keys()
			if err != nil {
				return err
			}
			rows := make([][]string, 0, len(keys))
			for _, key := range keys {
				rows = append(rows, []string{key, displayValue(flat[key])})
			}
			return renderTable(w, []string{"ATTRIBUTE", "VALUE"}, rows)
		},
	}
}
