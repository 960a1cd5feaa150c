package logger

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/ogurasousui/codex-workforce-synth/internal/platform/config"
)

// New は設定に従って slog.Logger を構築します。
func New(cfg config.LogConfig, w io.Writer) (*slog.Logger, error) {
	level, err := parseLevel(cfg.Level)
	if err != nil {
		return nil, fmt.Errorf("logger: %w", err)
	}

	opts := &slog.HandlerOptions{Level: level}

	var handler slog.Handler
	switch strings.ToLower(cfg.Format) {
	case "json":
		handler = slog.NewJSONHandler(w, opts)
	case "text", "":
		handler = slog.NewTextHandler(w, opts)
	default:
		return nil, fmt.Errorf("logger: unknown format %q", cfg.Format)
	}

	return slog.New(handler), nil
}

// Setup は New で構築したロガーを既定のロガーとして登録します。
func Setup(cfg config.LogConfig, w io.Writer) (*slog.Logger, error) {
	l, err := New(cfg, w)
	if err != nil {
		return nil, err
	}
	slog.SetDefault(l)
	return l, nil
}

func parseLevel(level string) (slog.Level, error) {
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
		return slog.LevelInfo, fmt.Errorf("unknown level %q", level)
	}
}
