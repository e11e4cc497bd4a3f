package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	nethttp "net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"ollama-scriptgen/internal/config"
	"ollama-scriptgen/internal/http"
	"ollama-scriptgen/internal/script"
	"ollama-scriptgen/internal/service"
)

var (
	hostFlag  string
	portFlag  string
	debugFlag bool
)

// rootCmd starts the API server.
var rootCmd = &cobra.Command{
	Use:   "ollama-scriptgen",
	Short: "Serve shell scripts that install Ollama and run a prompt against a model",
	Long: `ollama-scriptgen serves GET /generate, which returns a bash script that installs
Ollama when missing, starts its service, pulls the requested model and runs the prompt.

Configuration is read from the environment and an optional .env file. Flags override both.`,
	SilenceUsage: true,
	RunE:         runServer,
}

func init() {
	registerFlags(rootCmd)
}

func registerFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&hostFlag, "host", "", "Listen host (overrides API_HOST)")
	cmd.Flags().StringVarP(&portFlag, "port", "p", "", "Listen port (overrides API_PORT)")
	cmd.Flags().BoolVar(&debugFlag, "debug", false, "Enable debug logging (overrides DEBUG)")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runServer(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	if err := applyFlags(cmd, cfg); err != nil {
		return err
	}

	// Configure structured logging with configurable level and format
	opts := &slog.HandlerOptions{
		Level: cfg.LogLevel,
	}
	var handler slog.Handler
	if cfg.LogFormat == "json" {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	} else {
		handler = slog.NewTextHandler(os.Stdout, opts)
	}
	slog.SetDefault(slog.New(handler))
	slog.Debug("Logging configured", "level", cfg.LogLevel.String(), "format", cfg.LogFormat)

	builder := script.NewBuilder(cfg.DefaultModel)
	router, err := http.NewRouter(&http.Deps{
		ScriptService: service.NewScriptService(builder),
	})
	if err != nil {
		return fmt.Errorf("failed to create router: %w", err)
	}

	server := &nethttp.Server{
		Addr:              cfg.Addr(),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		slog.Info("Starting API server", "addr", server.Addr, "default_model", builder.DefaultModel(), "debug", cfg.Debug)
		errCh <- server.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if !errors.Is(err, nethttp.ErrServerClosed) {
			return fmt.Errorf("API server failed: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	slog.Info("Shutting down API server", "timeout", cfg.ShutdownTimeout)
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown failed: %w", err)
	}
	slog.Info("API server stopped")
	return nil
}

// applyFlags copies explicitly set flags over the loaded configuration.
func applyFlags(cmd *cobra.Command, cfg *config.Config) error {
	if cmd.Flags().Changed("host") {
		cfg.APIHost = hostFlag
	}
	if cmd.Flags().Changed("port") {
		if err := config.ValidatePort(portFlag); err != nil {
			return err
		}
		cfg.APIPort = portFlag
	}
	if cmd.Flags().Changed("debug") {
		cfg.Debug = debugFlag
		if debugFlag {
			cfg.LogLevel = slog.LevelDebug
		}
	}
	return nil
}
