package cli

import (
	"os"
	"time"

	"github.com/spf13/cobra"

	lsio "github.com/novaent/labelsheet/pkg/io"
	"github.com/novaent/labelsheet/pkg/label"
)

// recordCommand creates the record command.
func (c *CLI) recordCommand() *cobra.Command {
	var (
		output string
		format string
	)

	cmd := &cobra.Command{
		Use:   "record",
		Short: "Write a record file template",
		Long: `Write a sample label record to edit and pass to "generate --record".

The company block comes from the [footer] of the config file. Without -o the
record is printed in the --format given (toml by default); with -o the
format follows the file extension.`,
		Example: `  labelsheet record -o acetone.toml
  labelsheet record --format yaml > acetone.yaml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := c.loadConfig()
			if err != nil {
				return err
			}
			rec := label.WithFooter(label.Sample(time.Now()), cfg.Footer)
			if output == "" {
				return lsio.WriteRecord(os.Stdout, rec, format)
			}
			if err := lsio.ExportRecord(rec, output); err != nil {
				return err
			}
			printSuccess("Wrote record template")
			printFile(output)
			printNextStep("Render it", "labelsheet generate --record "+output)
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (.toml, .yaml, .json)")
	cmd.Flags().StringVarP(&format, "format", "f", lsio.FormatTOML, "format when printing: toml, yaml, json")

	return cmd
}
