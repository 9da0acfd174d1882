package log

import (
	"context"
	"log/slog"

	"opencsg.com/github-team-membership/common/utils/trace"
)

// ContextHandler is a slog.Handler that adds trace ID and request ID to every log record.
type ContextHandler struct {
	slog.Handler
}

// Handle adds the trace ID and request ID to the log record before passing it to the underlying handler.
func (h *ContextHandler) Handle(ctx context.Context, r slog.Record) error {
	if traceID := trace.GetTraceIDFromContext(ctx); traceID != "" {
		r.AddAttrs(slog.String("trace_id", traceID))
	}
	if requestID := trace.GetRequestIDFromContext(ctx); requestID != "" {
		r.AddAttrs(slog.String("request_id", requestID))
	}
	return h.Handler.Handle(ctx, r)
}

func (h *ContextHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &ContextHandler{Handler: h.Handler.WithAttrs(attrs)}
}

func (h *ContextHandler) WithGroup(name string) slog.Handler {
	return &ContextHandler{Handler: h.Handler.WithGroup(name)}
}
