package logging

import (
	"context"
	"log/slog"
)

type contextKey string

const (
	componentKey contextKey = "component"
	fileKey      contextKey = "file"
)

// WithComponent returns a context carrying the component name, attached to
// every log record emitted through this package.
func WithComponent(ctx context.Context, component string) context.Context {
	return context.WithValue(ctx, componentKey, component)
}

// ComponentFromContext returns the component set by WithComponent, or "".
func ComponentFromContext(ctx context.Context) string {
	component, _ := ctx.Value(componentKey).(string)
	return component
}

// WithFile returns a context carrying the path of the file being processed.
func WithFile(ctx context.Context, path string) context.Context {
	return context.WithValue(ctx, fileKey, path)
}

// FileFromContext returns the file path set by WithFile, or "".
func FileFromContext(ctx context.Context) string {
	path, _ := ctx.Value(fileKey).(string)
	return path
}

// attrsFromContext assembles slog attributes from whatever values are set on
// the context. Unset values produce no attribute.
func attrsFromContext(ctx context.Context) []slog.Attr {
	var attrs []slog.Attr
	if component := ComponentFromContext(ctx); component != "" {
		attrs = append(attrs, slog.String("component", component))
	}
	if path := FileFromContext(ctx); path != "" {
		attrs = append(attrs, slog.String("file", path))
	}
	return attrs
}
