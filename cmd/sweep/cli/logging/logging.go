// Package logging configures the process-wide slog logger and carries
// logging attributes through context so any layer can annotate records with
// the component and file it is working on.
package logging

import (
	"context"
	"log/slog"
	"os"
)

// Setup installs the default logger. Verbose lifts the level to Debug.
func Setup(verbose bool) {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})
	slog.SetDefault(slog.New(handler))
}

// Debug logs at debug level with attributes drawn from ctx.
func Debug(ctx context.Context, msg string, args ...any) {
	log(ctx, slog.LevelDebug, msg, args...)
}

// Info logs at info level with attributes drawn from ctx.
func Info(ctx context.Context, msg string, args ...any) {
	log(ctx, slog.LevelInfo, msg, args...)
}

// Warn logs at warn level with attributes drawn from ctx.
func Warn(ctx context.Context, msg string, args ...any) {
	log(ctx, slog.LevelWarn, msg, args...)
}

func log(ctx context.Context, level slog.Level, msg string, args ...any) {
	logger := slog.Default()
	if !logger.Enabled(ctx, level) {
		return
	}
	for _, attr := range attrsFromContext(ctx) {
		args = append(args, attr)
	}
	logger.Log(ctx, level, msg, args...)
}
