package cli

import (
	"fmt"
	"maps"
	"os"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/novaent/labelsheet/pkg/config"
	"github.com/novaent/labelsheet/pkg/errors"
)

// configCommand creates the configuration management command.
func (c *CLI) configCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect or create the configuration file",
	}

	cmd.AddCommand(c.configPathCommand())
	cmd.AddCommand(c.configInitCommand())
	cmd.AddCommand(c.configShowCommand())

	return cmd
}

// configPath returns the --config value or the default location.
func (c *CLI) configPath() (string, error) {
	if c.ConfigPath != "" {
		return c.ConfigPath, nil
	}
	return config.DefaultPath()
}

// configPathCommand creates the "config path" subcommand.
func (c *CLI) configPathCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Print the configuration file path",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := c.configPath()
			if err != nil {
				return fmt.Errorf("get config path: %w", err)
			}
			fmt.Println(path)
			return nil
		},
	}
}

// configInitCommand creates the "config init" subcommand.
func (c *CLI) configInitCommand() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a configuration file with the default settings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := c.configPath()
			if err != nil {
				return fmt.Errorf("get config path: %w", err)
			}
			if _, err := os.Stat(path); err == nil && !force {
				return errors.New(errors.ErrCodeInvalidPath, "%s already exists (use --force to overwrite)", path)
			}
			if err := config.Default().Save(path); err != nil {
				return err
			}
			printSuccess("Wrote default configuration")
			printFile(path)
			printNextStep("Check it", appName+" config show")
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "overwrite an existing file")

	return cmd
}

// configShowCommand creates the "config show" subcommand.
func (c *CLI) configShowCommand() *cobra.Command {
	var raw bool

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := c.loadConfig()
			if err != nil {
				return err
			}
			if raw {
				data, err := cfg.Encode()
				if err != nil {
					return err
				}
				_, err = os.Stdout.Write(data)
				return err
			}

			source := cfg.Path
			if source == "" {
				source = "(built-in defaults)"
			}
			printKeyValue("Source", source)
			printKeyValue("Layout", cfg.Layout)
			printKeyValue("Format", cfg.Format)
			printKeyValue("Out dir", valueOr(cfg.OutDir, "."))
			printKeyValue("Cache dir", valueOr(cfg.CacheDir, "(disabled)"))
			printKeyValue("Company", cfg.Footer.CompanyName)
			printKeyValue("Address", strings.TrimSpace(cfg.Footer.AddressLine1+" "+cfg.Footer.AddressLine2))
			printKeyValue("Email", cfg.Footer.Email)
			for _, name := range slices.Sorted(maps.Keys(cfg.Sheets)) {
				printKeyValue("Sheet "+name, fmt.Sprintf("%+v", cfg.Sheets[name]))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&raw, "toml", false, "print as TOML")

	return cmd
}

func valueOr(v, fallback string) string {
	if v == "" {
		return fallback
	}
	return v
}
