package trace

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel/trace"
)

const HeaderRequestID = "X-Request-ID"

type requestIDContextKey struct{}

func SetRequestIDInContext(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDContextKey{}, requestID)
}

func GetRequestIDFromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	// *gin.Context does not delegate struct keys to the request context
	if c, ok := ctx.(*gin.Context); ok && c.Request != nil {
		ctx = c.Request.Context()
	}
	if requestID, ok := ctx.Value(requestIDContextKey{}).(string); ok {
		return requestID
	}
	return ""
}

// GetTraceIDFromContext returns the otel trace id of the span in ctx, if any.
func GetTraceIDFromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	if c, ok := ctx.(*gin.Context); ok && c.Request != nil {
		ctx = c.Request.Context()
	}
	spanCtx := trace.SpanContextFromContext(ctx)
	if !spanCtx.HasTraceID() {
		return ""
	}
	return spanCtx.TraceID().String()
}

// NewRequestID generates an id for invocations that arrive without one.
func NewRequestID() string {
	return uuid.NewString()
}

// GetOrGenRequestID reads the request id header, generating one when missing,
// and injects it into the request's context.Context.
func GetOrGenRequestID(c *gin.Context) string {
	if v, ok := c.Get(HeaderRequestID); ok {
		if requestID, ok := v.(string); ok && requestID != "" {
			return requestID
		}
	}
	requestID := c.GetHeader(HeaderRequestID)
	if requestID == "" {
		requestID = NewRequestID()
	}
	c.Set(HeaderRequestID, requestID)
	c.Request = c.Request.WithContext(SetRequestIDInContext(c.Request.Context(), requestID))
	return requestID
}
