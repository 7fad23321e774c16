package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/novaent/labelsheet/pkg/pipeline"
	"github.com/novaent/labelsheet/pkg/sheet"
)

// layoutsCommand creates the layouts command.
func (c *CLI) layoutsCommand() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "layouts",
		Short: "Show sheet layouts and their geometry",
		Long: `Show every sheet layout with its sheet size, grid, cell size, header font
size and cutting-mark counts. Sheet overrides from the config file apply.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := c.loadConfig()
			if err != nil {
				return err
			}
			layouts, err := pipeline.Layouts(cfg.Table(), cfg.CellMetrics())
			if err != nil {
				return err
			}
			if asJSON {
				enc := json.NewEncoder(os.Stdout)
				enc.SetIndent("", "  ")
				return enc.Encode(layouts)
			}
			fmt.Println(layoutsTable(layouts))
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "print as JSON")

	return cmd
}

// layoutsTable renders layouts as a bordered table.
func layoutsTable(layouts []pipeline.LayoutInfo) string {
	rows := make([][]string, 0, len(layouts))
	for _, l := range layouts {
		name := l.Option.String()
		if l.Default {
			name += " *"
		}
		rows = append(rows, []string{
			name,
			fmt.Sprintf("%g x %g in", l.Spec.Width/sheet.MMPerInch, l.Spec.Height/sheet.MMPerInch),
			fmt.Sprintf("%d x %d", l.Columns(), l.Rows()),
			fmt.Sprintf("%.1f x %.1f mm", l.CellWidth, l.CellHeight),
			fmt.Sprintf("%g pt", l.TitleSize),
			fmt.Sprintf("%d / %d", l.Crosses, l.Ticks),
		})
	}

	header := lipgloss.NewStyle().Bold(true).Foreground(colorCyan).Padding(0, 1)
	cellStyle := lipgloss.NewStyle().Padding(0, 1)

	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("LAYOUT", "SHEET", "GRID", "CELL", "TITLE", "CROSSES / TICKS").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return header
			}
			if col == 0 {
				return cellStyle.Foreground(colorWhite)
			}
			return cellStyle.Foreground(colorGray)
		}).
		String()
}
