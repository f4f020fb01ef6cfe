package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/averycrespi/calculator-mcp/internal/config"
	"github.com/averycrespi/calculator-mcp/internal/server"
	"github.com/averycrespi/calculator-mcp/internal/session"
	"github.com/averycrespi/calculator-mcp/internal/web"
	"github.com/averycrespi/calculator-mcp/pkg/types"
)

func main() {
	var (
		configPath  = flag.String("config", "", "Path to a YAML config file")
		mode        = flag.String("mode", "", "Serving mode: stdio (MCP) or http (browser widget)")
		addr        = flag.String("addr", "", "Listen address in http mode")
		logLevel    = flag.String("log-level", "", "Log level (debug, info, warn, error)")
		idleTimeout = flag.Duration("session-idle-timeout", 0, "Drop widget sessions idle for this long (0 keeps the configured value)")
	)
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Flags override the config file only when given explicitly
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "mode":
			cfg.Mode = *mode
		case "addr":
			cfg.Addr = *addr
		case "log-level":
			cfg.LogLevel = *logLevel
		case "session-idle-timeout":
			cfg.SessionIdleTimeout = *idleTimeout
		}
	})

	if err := config.Validate(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Invalid configuration: %v\n", err)
		os.Exit(1)
	}

	// Stdout carries the MCP protocol in stdio mode, so logs go to stderr
	level, _ := config.ParseLogLevel(cfg.LogLevel)
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	sessions := session.NewManager()

	var srv types.Server
	switch cfg.Mode {
	case types.ModeHTTP:
		srv = web.NewServer(cfg, sessions)
	default:
		srv = server.NewCalculatorServer(cfg, sessions)
	}

	if err := srv.Start(ctx); err != nil {
		slog.Error("Server error", "error", err)
		os.Exit(1)
	}

	if err := srv.Shutdown(context.Background()); err != nil {
		slog.Error("Failed to shut down server", "error", err)
	}
}
