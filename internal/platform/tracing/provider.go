package tracing

import (
	"context"
	"log/slog"

	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
)

// Setup returns the tracer provider for the process.
//
// Tracing is opt-in: when enabled is false, Setup returns a no-op provider and
// a no-op shutdown. When enabled, every ended span is written to logger at info
// level as it finishes.
//
// The returned shutdown function flushes pending spans and should be deferred
// by the caller.
func Setup(enabled bool, logger *slog.Logger) (trace.TracerProvider, func(context.Context) error) {
	if !enabled {
		return noop.NewTracerProvider(), func(context.Context) error { return nil }
	}
	tp := sdktrace.NewTracerProvider(
		sdktrace.WithSyncer(&logExporter{logger: logger}),
		sdktrace.WithSampler(sdktrace.AlwaysSample()),
	)
	return tp, tp.Shutdown
}

// logExporter writes finished spans as structured log entries.
type logExporter struct {
	logger *slog.Logger
}

func (e *logExporter) ExportSpans(ctx context.Context, spans []sdktrace.ReadOnlySpan) error {
	for _, s := range spans {
		args := []any{
			"span", s.Name(),
			"trace_id", s.SpanContext().TraceID().String(),
			"duration", s.EndTime().Sub(s.StartTime()),
		}
		for _, kv := range s.Attributes() {
			args = append(args, string(kv.Key), kv.Value.Emit())
		}
		e.logger.InfoContext(ctx, "span ended", args...)
	}
	return nil
}

func (e *logExporter) Shutdown(context.Context) error {
	return nil
}
