package cmd

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/fatih/color"
	"gopkg.in/yaml.v3"
)

const (
	formatTable = "table"
	formatJSON  = "json"
	formatYAML  = "yaml"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	borderStyle = lipgloss.NewStyle().Faint(true)

	okFmt   = color.New(color.FgGreen).SprintFunc()
	skipFmt = color.New(color.Faint).SprintFunc()
	infoFmt = color.New(color.FgYellow).SprintFunc()
	errFmt  = color.New(color.FgRed, color.Bold).SprintFunc()
)

// formatOutput writes data as JSON or YAML and reports whether it did.
// Table output is left to the command.
func (c *cli) formatOutput(w io.Writer, data any) (bool, error) {
	switch c.outputFormat {
	case formatJSON:
		return true, outputJSON(w, data)
	case formatYAML:
		return true, outputYAML(w, data)
	default:
		return false, nil
	}
}

func outputJSON(w io.Writer, data any) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(data)
}

func outputYAML(w io.Writer, data any) error {
	out, err := yaml.Marshal(data)
	if err != nil {
		return err
	}
	_, err = w.Write(out)
	return err
}

func renderTable(w io.Writer, headers []string, rows [][]string) error {
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(borderStyle).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})

	_, err := fmt.Fprintln(w, t.Render())
	return err
}

func step(w io.Writer, done bool, format string, args ...any) {
	mark := okFmt("✓")
	if !done {
		mark = skipFmt("-")
	}
	fmt.Fprintf(w, "%s %s\n", mark, fmt.Sprintf(format, args...))
}

func errorf(w io.Writer, format string, args ...any) {
	fmt.Fprintf(w, "%s %s\n", errFmt("error:"), fmt.Sprintf(format, args...))
}

// displayValue renders an attribute or field value on one table cell.
func displayValue(v any) string {
	switch value := v.(type) {
	case nil:
		return ""
	case string:
		return value
	case float64, bool:
		return fmt.Sprint(value)
	default:
		data, err := json.Marshal(value)
		if err != nil {
			return fmt.Sprint(value)
		}
		return string(data)
	}
}
