package cli

import (
	"github.com/spf13/cobra"

	"github.com/novaent/labelsheet/pkg/buildinfo"
)

// RootCommand creates the root cobra command with all subcommands registered.
//
// The --config flag is bound to c.ConfigPath; the file is read lazily by the
// commands that need it. The logger is attached to the command context so
// helpers can reach it through loggerFromContext.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          appName,
		Short:        "Labelsheet prints drum labels on industrial sheets",
		Long:         `Labelsheet lays out one label record in a grid of identical cells on a 12x18 inch sheet, draws cutting marks between the cells, and writes a print-ready PDF.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
			return nil
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().StringVar(&c.ConfigPath, "config", "", "config file (default: $XDG_CONFIG_HOME/labelsheet/config.toml)")

	root.AddCommand(c.generateCommand())
	root.AddCommand(c.formCommand())
	root.AddCommand(c.batchCommand())
	root.AddCommand(c.layoutsCommand())
	root.AddCommand(c.recordCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.configCommand())
	root.AddCommand(c.completionCommand())

	return root
}
