package cli

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/novaent/labelsheet/pkg/errors"
	"github.com/novaent/labelsheet/pkg/label"
	"github.com/novaent/labelsheet/pkg/pipeline"
	"github.com/novaent/labelsheet/pkg/sheet"
)

// Form styles
var (
	formLabelStyle   = lipgloss.NewStyle().Foreground(colorGray).Width(14)
	formFocusStyle   = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	formValueStyle   = lipgloss.NewStyle().Foreground(colorWhite)
	formDimStyle     = lipgloss.NewStyle().Foreground(colorDim)
	formWarningStyle = lipgloss.NewStyle().Foreground(colorRed)
)

// =============================================================================
// FormModel - Interactive record entry
// =============================================================================

type formField struct {
	name  string
	label string
	value []rune
}

// FormModel is the bubbletea model for entering one label record.
// Row 0 is the layout selector, rows 1.. are the product fields.
type FormModel struct {
	Layouts   []sheet.Option
	Layout    int
	Fields    []formField
	Focus     int
	Submitted bool
	Cancelled bool

	footer label.Footer
}

// NewFormModel creates a form prefilled from rec, with the 3x6 layout
// selected.
func NewFormModel(rec label.Record) FormModel {
	fields := []formField{
		{name: label.FieldProductName, label: "Product"},
		{name: label.FieldBatchNo, label: "Batch No"},
		{name: label.FieldMfgDate, label: "Mfg. Date"},
		{name: label.FieldRetestDate, label: "Re-Test Date"},
		{name: label.FieldNetWt, label: "Net Wt."},
		{name: label.FieldWarning, label: "Warning"},
	}
	for i := range fields {
		v, _ := rec.Get(fields[i].name)
		fields[i].value = []rune(v)
	}
	return FormModel{
		Layouts: sheet.Options(),
		Fields:  fields,
		footer:  rec.Footer(),
	}
}

// Option returns the selected layout.
func (m FormModel) Option() sheet.Option {
	return m.Layouts[m.Layout]
}

// Record returns the entered record with the company block it was created with.
func (m FormModel) Record() label.Record {
	values := make(map[string]string, len(m.Fields)+4)
	for _, f := range m.Fields {
		values[f.name] = string(f.value)
	}
	m.footer.Fill(values)
	rec, _ := label.FromMap(values)
	return rec
}

func (m FormModel) Init() tea.Cmd {
	return nil
}

func (m FormModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch key.String() {
	case "ctrl+c", "esc":
		m.Cancelled = true
		return m, tea.Quit
	case "enter":
		m.Submitted = true
		return m, tea.Quit
	case "tab", "down":
		m.Focus = (m.Focus + 1) % (len(m.Fields) + 1)
		return m, nil
	case "shift+tab", "up":
		m.Focus = (m.Focus + len(m.Fields)) % (len(m.Fields) + 1)
		return m, nil
	}

	if m.Focus == 0 {
		switch key.String() {
		case "left", "h":
			m.Layout = (m.Layout + len(m.Layouts) - 1) % len(m.Layouts)
		case "right", "l", " ":
			m.Layout = (m.Layout + 1) % len(m.Layouts)
		}
		return m, nil
	}

	f := &m.Fields[m.Focus-1]
	switch key.Type {
	case tea.KeyBackspace:
		if n := len(f.value); n > 0 {
			f.value = f.value[:n-1]
		}
	case tea.KeyCtrlU:
		f.value = nil
	case tea.KeySpace:
		f.value = append(f.value, ' ')
	case tea.KeyRunes:
		f.value = append(f.value, key.Runes...)
	}
	return m, nil
}

func (m FormModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Drum Label"))
	b.WriteString("\n")
	b.WriteString(formDimStyle.Render("tab/↑/↓ move  ←/→ layout  ⏎ generate  esc quit"))
	b.WriteString("\n\n")

	opts := make([]string, len(m.Layouts))
	for i, o := range m.Layouts {
		s := "  " + o.String() + "  "
		if i == m.Layout {
			s = "[" + o.String() + "]"
			if m.Focus == 0 {
				s = formFocusStyle.Render(s)
			} else {
				s = formValueStyle.Render(s)
			}
		} else {
			s = formDimStyle.Render(s)
		}
		opts[i] = s
	}
	b.WriteString(m.cursor(0) + formLabelStyle.Render("Layout") + strings.Join(opts, " "))
	b.WriteString("\n")

	for i, f := range m.Fields {
		value := string(f.value)
		style := formValueStyle
		if f.name == label.FieldWarning {
			style = formWarningStyle
		}
		if m.Focus == i+1 {
			value += "█"
		}
		b.WriteString(m.cursor(i+1) + formLabelStyle.Render(f.label) + style.Render(value))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(formDimStyle.Render(fmt.Sprintf("  %s · %s", m.footer.CompanyName, m.footer.Email)))
	b.WriteString("\n")
	return b.String()
}

func (m FormModel) cursor(row int) string {
	if m.Focus == row {
		return formFocusStyle.Render("▸ ")
	}
	return "  "
}

// =============================================================================
// Command
// =============================================================================

// formCommand creates the form command.
func (c *CLI) formCommand() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "form",
		Short: "Fill in a label interactively and render it",
		Long: `Open a terminal form with the layout selector and the six product fields,
prefilled with a sample record dated today. Enter renders a PDF sheet named
Label_HHMMSS.pdf in the configured out_dir. The company block comes from
the config file.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := c.loadConfig()
			if err != nil {
				return err
			}
			now := time.Now()
			rec := label.WithFooter(label.Sample(now), cfg.Footer)

			final, err := tea.NewProgram(NewFormModel(rec), tea.WithContext(cmd.Context())).Run()
			if err != nil {
				return errors.Wrap(errors.ErrCodeInternal, err, "form")
			}
			m := final.(FormModel)
			if !m.Submitted {
				printInfo("Cancelled")
				return nil
			}

			opts := cfg.Options()
			opts.Layout = m.Option().String()
			opts.Format = pipeline.FormatPDF
			opts.Strict = true
			path := outputPath(output, cfg.OutDir, time.Now(), opts.Format)

			res, err := c.newRunner().RunToFile(cmd.Context(), opts, m.Record(), path)
			if err != nil {
				return err
			}
			printSuccess("Generated %s sheet for %s", res.Plan.Option, StyleHighlight.Render(res.Record.ProductName))
			printFile(res.Path)
			printStats(res.Plan.Option.String(), res.Stats.Cells, res.Stats.Marks, res.Stats.Bytes, false)
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: Label_HHMMSS.pdf)")

	return cmd
}
