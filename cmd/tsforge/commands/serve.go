package commands

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/tsforge/tsforge/config"
	"github.com/tsforge/tsforge/errors"
	"github.com/tsforge/tsforge/logger"
	"github.com/tsforge/tsforge/server"
)

var servePort int

// ServeCmd represents the serve command
var ServeCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP transpilation server",
	Long: `Start the tsforge HTTP server.

Routes:
  POST /dsl      - transpile a DSL line, full JSON result
  GET  /t?dsl=   - type alias only, plain text
  GET  /all?dsl= - every artifact concatenated, plain text
  GET  /health   - liveness probe
  GET  /version  - build information

The server reloads its configuration automatically when the user
config file changes.

Examples:
  tsforge serve
  tsforge serve --port 9000`,
	RunE: runServe,
}

func init() {
	ServeCmd.Flags().IntVarP(&servePort, "port", "p", 0, "Port to listen on (default from config)")
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return errors.Wrap(err, "failed to load configuration")
	}

	if cmd.Flags().Changed("port") {
		cfg.Server.Port = servePort
	}

	srv := server.New(cfg)

	startConfigWatcher(srv)

	// Graceful shutdown on SIGINT/SIGTERM
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		logger.Infow("Received signal, shutting down", "signal", sig.String())
		if err := srv.Stop(); err != nil {
			logger.Errorw("Shutdown error", "error", err)
		}
	}()

	return srv.Start()
}

// startConfigWatcher hot-reloads generator defaults when the user
// config file changes. Missing config file just means nothing to watch.
func startConfigWatcher(srv *server.Server) {
	configPath := config.UserConfigPath()
	if configPath == "" {
		return
	}
	if _, err := os.Stat(configPath); err != nil {
		return
	}

	watcher, err := config.NewWatcher(configPath)
	if err != nil {
		logger.Warnw("Config watcher unavailable", "error", err)
		return
	}

	watcher.OnReload(func(newCfg *config.Config) error {
		srv.UpdateConfig(newCfg)
		return nil
	})
	watcher.Start()
	config.SetGlobalWatcher(watcher)

	logger.Infow("Watching config for changes", "path", configPath)
}
