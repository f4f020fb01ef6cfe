package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/averycrespi/calculator-mcp/pkg/types"

	"gopkg.in/yaml.v3"
)

const (
	DefaultAddr               = "127.0.0.1:8080"
	DefaultLogLevel           = "info"
	DefaultSessionIdleTimeout = 30 * time.Minute

	// MinSessionIdleTimeout is the smallest non-zero idle timeout; 0 disables the sweep
	MinSessionIdleTimeout = time.Second
)

var ErrInvalidConfig = errors.New("invalid config")

// Default returns the configuration used when no file or flags override it
func Default() types.Config {
	return types.Config{
		Mode:               types.ModeStdio,
		Addr:               DefaultAddr,
		LogLevel:           DefaultLogLevel,
		SessionIdleTimeout: DefaultSessionIdleTimeout,
	}
}

// Load reads a YAML config file on top of the defaults. An empty path returns the defaults.
func Load(path string) (types.Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	slog.Debug("Loaded config file", "path", path)
	return cfg, nil
}

// Validate checks the mode, log level and timeouts
func Validate(cfg types.Config) error {
	switch cfg.Mode {
	case types.ModeStdio, types.ModeHTTP:
	default:
		return fmt.Errorf("%w: unknown mode %q (expected %s or %s)", ErrInvalidConfig, cfg.Mode, types.ModeStdio, types.ModeHTTP)
	}

	if _, err := ParseLogLevel(cfg.LogLevel); err != nil {
		return err
	}

	if cfg.Mode == types.ModeHTTP && cfg.Addr == "" {
		return fmt.Errorf("%w: addr is required in %s mode", ErrInvalidConfig, types.ModeHTTP)
	}

	if cfg.SessionIdleTimeout < 0 {
		return fmt.Errorf("%w: session_idle_timeout must not be negative", ErrInvalidConfig)
	}
	if cfg.SessionIdleTimeout > 0 && cfg.SessionIdleTimeout < MinSessionIdleTimeout {
		return fmt.Errorf("%w: session_idle_timeout must be 0 or at least %s", ErrInvalidConfig, MinSessionIdleTimeout)
	}

	return nil
}

// ParseLogLevel converts a level name (debug, info, warn, error) to a slog level
func ParseLogLevel(level string) (slog.Level, error) {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("%w: unknown log level %q", ErrInvalidConfig, level)
	}
}
