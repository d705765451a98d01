package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/atriumhq/atrium/internal/config"
	"github.com/atriumhq/atrium/internal/home"
	"github.com/atriumhq/atrium/internal/server"
	"github.com/atriumhq/atrium/internal/server/endpoints"
)

var (
	serveHost string
	servePort string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the Atrium gateway",
	Long: `Start the Atrium HTTP gateway.

The gateway fronts the upstream repository configured in config.yaml and
serves browse sessions and submission workspaces over HTTP.

The server provides:
  - /health - Basic server health check
  - /ready  - Readiness check (includes upstream repository status)

Examples:
  atrium serve                   # Start on default port 9280
  atrium serve --port 3000       # Start on custom port
  atrium serve --host 0.0.0.0    # Bind to all interfaces`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		// Set up logger
		logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		}))

		// Get home directory
		h, err := home.New(homeDir)
		if err != nil {
			return err
		}
		if err := h.EnsureExists(); err != nil {
			return err
		}

		// Load configuration, preferring an explicit --config path and
		// falling back to the home directory config
		path := cfgFile
		if path == "" && h.ConfigExists() {
			path = h.ConfigPath()
		}
		mgr, err := config.NewManager(path)
		if err != nil {
			return err
		}
		mgr.WatchConfig()

		host := serveHost
		port := servePort
		if !cmd.Flags().Changed("host") && mgr.Get().Server.Host != "" {
			host = mgr.Get().Server.Host
		}
		if !cmd.Flags().Changed("port") && mgr.Get().Server.Port != "" {
			port = mgr.Get().Server.Port
		}

		// Create server
		srv, err := server.New(server.Config{
			Host:            host,
			Port:            port,
			ConfigManager:   mgr,
			SwaggerSpecPath: endpoints.GetSwaggerSpecPath(),
			Logger:          logger,
		})
		if err != nil {
			return err
		}

		// Start server (blocks until shutdown)
		return srv.Start(ctx)
	},
}

func init() {
	serveCmd.Flags().StringVar(&serveHost, "host", "127.0.0.1", "Host to bind to")
	serveCmd.Flags().StringVar(&servePort, "port", "9280", "Port to listen on")

	rootCmd.AddCommand(serveCmd)
}
