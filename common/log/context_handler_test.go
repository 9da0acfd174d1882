package log

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/trace"
	mtrace "opencsg.com/github-team-membership/common/utils/trace"
)

func TestContextHandler_Handle(t *testing.T) {
	var buf bytes.Buffer
	jsonHandler := slog.NewJSONHandler(&buf, &slog.HandlerOptions{
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey {
				return slog.Attr{}
			}
			return a
		},
	})
	logger := slog.New(&ContextHandler{Handler: jsonHandler})

	traceIDStr := "4bf92f3577b34da6a3ce929d0e0e4736"
	traceID, err := trace.TraceIDFromHex(traceIDStr)
	require.NoError(t, err)
	spanID, err := trace.SpanIDFromHex("00f067aa0ba902b7")
	require.NoError(t, err)

	ctx := trace.ContextWithSpanContext(context.Background(), trace.NewSpanContext(trace.SpanContextConfig{
		TraceID:    traceID,
		SpanID:     spanID,
		TraceFlags: trace.FlagsSampled,
	}))
	ctx = mtrace.SetRequestIDInContext(ctx, "req-12345")

	logger.With(slog.String("component", "membership")).ErrorContext(ctx, "test message")

	var result map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &result))
	require.Equal(t, "test message", result["msg"])
	require.Equal(t, traceIDStr, result["trace_id"])
	require.Equal(t, "req-12345", result["request_id"])
	require.Equal(t, "membership", result["component"])
}

func TestSetup(t *testing.T) {
	defaultLogger := slog.Default()
	defer slog.SetDefault(defaultLogger)

	var buf bytes.Buffer
	logger := Setup(&buf, "bogus", "json")
	require.Contains(t, buf.String(), "use default log level INFO")
	require.False(t, logger.Enabled(context.Background(), slog.LevelDebug))

	buf.Reset()
	logger = Setup(&buf, "debug", "text")
	require.True(t, logger.Enabled(context.Background(), slog.LevelDebug))
	logger.Debug("hello")
	require.Contains(t, buf.String(), "msg=hello")
}
