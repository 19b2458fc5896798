package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/MKhiriev/go-nexus-keeper/models"
	"github.com/spf13/cobra"
)

const maskedValue = "********"

func newSecretCmd(c *cli) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "secret",
		Short: "Manage the encrypted items of the data bag",
		Long: `Manage the encrypted items of the configured data bag.

Items are sealed with the shared secret before they reach the store, and
the well-known items (credentials, license, certificates, ssl_certificate)
are validated before they are written.`,
	}

	cmd.AddCommand(
		newSecretListCmd(c),
		newSecretShowCmd(c),
		newSecretSealCmd(c),
		newSecretDeleteCmd(c),
	)
	return cmd
}

func newSecretListCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the items in the data bag",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			services, err := c.app.Services(ctx)
			if err != nil {
				return err
			}

			items, err := services.SecretService.ListItems(ctx)
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			if handled, err := c.formatOutput(w, items); handled {
				return err
			}
			rows := make([][]string, 0, len(items))
			for _, item := range items {
				rows = append(rows, []string{c.cfg.Secrets.Bag, item})
			}
			return renderTable(w, []string{"BAG", "ITEM"}, rows)
		},
	}
}

func newSecretShowCmd(c *cli) *cobra.Command {
	var reveal bool

	cmd := &cobra.Command{
		Use:   "show ITEM",
		Short: "Decrypt and show one item",
		Long: `Decrypt and show one item. Values are masked unless --reveal is given.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			services, err := c.app.Services(ctx)
			if err != nil {
				return err
			}

			item, err := services.SecretService.LoadItem(ctx, args[0])
			if err != nil {
				return err
			}

			fields := make(map[string]any, len(item.Fields))
			for name, raw := range item.Fields {
				if !reveal {
					fields[name] = maskedValue
					continue
				}
				var value any
				if err := json.Unmarshal(raw, &value); err != nil {
					return fmt.Errorf("field %q: %w", name, err)
				}
				fields[name] = value
			}

			w := cmd.OutOrStdout()
			if handled, err := c.formatOutput(w, map[string]any{"id": item.ID, "fields": fields}); handled {
				return err
			}

			names := make([]string, 0, len(fields))
			for name := range fields {
				names = append(names, name)
			}
			sort.Strings(names)

			rows := make([][]string, 0, len(names))
			for _, name := range names {
				rows = append(rows, []string{name, displayValue(fields[name])})
			}
			return renderTable(w, []string{"FIELD", "VALUE"}, rows)
		},
	}

	cmd.Flags().BoolVar(&reveal, "reveal", false, "Print decrypted values instead of masking them")
	return cmd
}

func newSecretSealCmd(c *cli) *cobra.Command {
	var from string

	cmd := &cobra.Command{
		Use:   "seal ITEM --from FILE",
		Short: "Encrypt a plaintext JSON object and store it as ITEM",
		Long: `Encrypt a plaintext JSON object and store it as ITEM, replacing any
previous version. Use --from - to read the object from standard input.

An "id" field in the object is ignored; the item name comes from ITEM.`,
		Example: `  nexusctl secret seal credentials --from credentials.json
  cat license.json | nexusctl secret seal license --from -`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if from == "" {
				return errors.New("--from is required")
			}

			var r io.Reader = cmd.InOrStdin()
			if from != "-" {
				f, err := os.Open(from)
				if err != nil {
					return err
				}
				defer f.Close()
				r = f
			}

			item, err := readPlainItem(r, args[0])
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			services, err := c.app.Services(ctx)
			if err != nil {
				return err
			}
			if err = services.SecretService.StoreItem(ctx, item); err != nil {
				return err
			}

			step(cmd.OutOrStdout(), true, "sealed %s/%s (%s)", c.cfg.Secrets.Bag, item.ID,
				strings.Join(fieldNames(item), ", "))
			return nil
		},
	}

	cmd.Flags().StringVar(&from, "from", "", "JSON file holding the plaintext item, or - for stdin")
	return cmd
}

func newSecretDeleteCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "delete ITEM",
		Short: "Delete an item from the data bag",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			services, err := c.app.Services(ctx)
			if err != nil {
				return err
			}
			if err = services.SecretService.DeleteItem(ctx, args[0]); err != nil {
				return err
			}

			step(cmd.OutOrStdout(), true, "deleted %s/%s", c.cfg.Secrets.Bag, args[0])
			return nil
		},
	}
}

func readPlainItem(r io.Reader, id string) (models.SecretItem, error) {
	var fields map[string]json.RawMessage
	if err := json.NewDecoder(r).Decode(&fields); err != nil {
		return models.SecretItem{}, fmt.Errorf("item must be a JSON object: %w", err)
	}
	delete(fields, "id")

	if len(fields) == 0 {
		return models.SecretItem{}, errors.New("item has no fields")
	}
	return models.SecretItem{ID: id, Fields: fields}, nil
}

func fieldNames(item models.SecretItem) []string {
	names := make([]string, 0, len(item.Fields))
	for name := range item.Fields {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
