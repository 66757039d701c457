// Package commands implements the zr subcommands.
package commands

import (
	"context"
	"io"
	"log/slog"
	"os"

	"github.com/adriyanbasu0/zr-sharp/internal/cli/config"
	"github.com/adriyanbasu0/zr-sharp/internal/cli/output"
	"github.com/adriyanbasu0/zr-sharp/internal/engine"
)

type configKey struct{}
type rendererKey struct{}
type loggerKey struct{}

// WithConfig stores the loaded configuration in the context.
func WithConfig(ctx context.Context, cfg *config.Config) context.Context {
	return context.WithValue(ctx, configKey{}, cfg)
}

// ConfigFrom retrieves the configuration from the context, falling back
// to defaults when the root command has not loaded one.
func ConfigFrom(ctx context.Context) *config.Config {
	if c, ok := ctx.Value(configKey{}).(*config.Config); ok {
		return c
	}
	return &config.Config{
		FilesDir:     config.DefaultFilesDir,
		MaxModules:   config.DefaultMaxModules,
		HistoryFile:  config.DefaultHistoryFile,
		OutputFormat: config.DefaultOutput,
	}
}

// WithRenderer stores the renderer in the context.
func WithRenderer(ctx context.Context, r *output.Renderer) context.Context {
	return context.WithValue(ctx, rendererKey{}, r)
}

// RendererFrom retrieves the renderer from the context.
func RendererFrom(ctx context.Context) *output.Renderer {
	if r, ok := ctx.Value(rendererKey{}).(*output.Renderer); ok {
		return r
	}
	return output.NewRenderer(os.Stdout, os.Stderr, output.ModeAuto)
}

// WithLogger stores the logger in the context.
func WithLogger(ctx context.Context, l *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey{}, l)
}

// LoggerFrom retrieves the logger from the context.
func LoggerFrom(ctx context.Context) *slog.Logger {
	if l, ok := ctx.Value(loggerKey{}).(*slog.Logger); ok {
		return l
	}
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// newEngine builds an engine from the context configuration, printing to
// the renderer's standard output.
func newEngine(ctx context.Context) *engine.Engine {
	cfg := ConfigFrom(ctx)
	r := RendererFrom(ctx)
	return engine.New(engine.Config{
		Stdout:     r.Out(),
		MaxModules: cfg.MaxModules,
		FilesDir:   cfg.FilesDir,
		Logger:     LoggerFrom(ctx),
	})
}
