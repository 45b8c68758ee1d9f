// Package logging はプロセス全体で使う slog ロガーを構築します。
package logging

import (
	"io"
	"log/slog"
	"strings"

	"wealth_backend/internal/platform/env"
)

// Config holds logger settings.
type Config struct {
	Env   string // development or production
	Level string // debug, info, warn, error
}

// LoadConfigFromEnv reads APP_ENV and LOG_LEVEL.
func LoadConfigFromEnv() Config {
	return Config{
		Env:   env.String("APP_ENV", "development"),
		Level: env.String("LOG_LEVEL", "info"),
	}
}

// New builds a logger writing to w.
// Development uses the text handler; every other environment emits JSON.
func New(cfg Config, w io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{Level: ParseLevel(cfg.Level)}

	var h slog.Handler
	if cfg.Env == "development" {
		h = slog.NewTextHandler(w, opts)
	} else {
		h = slog.NewJSONHandler(w, opts)
	}
	return slog.New(h).With("app", "wealth_backend", "env", cfg.Env)
}

// ParseLevel converts a level name to slog.Level, defaulting to info.
func ParseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
