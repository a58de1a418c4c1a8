package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"airbnb-roi/internal/config"
	"airbnb-roi/internal/logging"
	"airbnb-roi/internal/web"
)

func newServeCmd() *cobra.Command {
	var port int

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the web dashboard",
		Long:  "Start an HTTP server for the ROI dashboard and JSON API.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(port)
		},
	}

	cmd.Flags().IntVar(&port, "port", 0, "port to listen on (default: $ROI_PORT or 8080)")

	return cmd
}

func runServe(port int) error {
	cfg := config.Load()
	logging.Setup(cfg.Dev)
	if port == 0 {
		port = cfg.Port
	}

	engine := newEngine()

	// Fail fast at startup: a missing or malformed dataset must halt the
	// process with a clear diagnostic, not serve an empty dashboard.
	if err := engine.Ready(); err != nil {
		return fmt.Errorf("preparing valuation engine: %w", err)
	}

	server, err := web.NewServer(engine)
	if err != nil {
		return fmt.Errorf("creating server: %w", err)
	}

	return server.ListenAndServe(port)
}
