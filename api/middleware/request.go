package middleware

import (
	"github.com/gin-gonic/gin"
	"opencsg.com/github-team-membership/common/utils/trace"
)

func Request() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		requestID := trace.GetOrGenRequestID(ctx)
		ctx.Writer.Header().Set(trace.HeaderRequestID, requestID)
		ctx.Next()
	}
}
