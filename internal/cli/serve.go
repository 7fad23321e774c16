package cli

import (
	"github.com/spf13/cobra"

	"github.com/novaent/labelsheet/internal/server"
)

// serveCommand creates the serve command.
func (c *CLI) serveCommand() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve label sheets over HTTP",
		Long: `Serve label sheets over HTTP until interrupted.

Endpoints:
  GET  /healthz           liveness and build info
  GET  /api/v1/layouts    layout geometry
  POST /api/v1/labels     render a JSON record (?layout=3x6&format=pdf)`,
		Example: `  labelsheet serve --addr :8080
  curl -d @record.json 'localhost:8080/api/v1/labels?layout=3x6' -o sheet.pdf`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := c.loadConfig()
			if err != nil {
				return err
			}
			printInfo("Listening on %s", StyleLink.Render(addr))
			return server.New(cfg, c.Logger).ListenAndServe(cmd.Context(), addr)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", ":8080", "listen address")

	return cmd
}
