package middleware

import (
	"fmt"
	"runtime/debug"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/ai-website-generator/backend/internal/api/http/apierror"
)

// Recovery turns a panic in any handler into the generic 500 body. The panic value
// and stack are logged; none of it is sent to the client.
func Recovery(log *zap.Logger) gin.HandlerFunc {
	return gin.CustomRecoveryWithWriter(nil, func(c *gin.Context, recovered any) {
		log.Error("unhandled panic",
			zap.String("request_id", GetRequestID(c.Request.Context())),
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.String("panic", fmt.Sprint(recovered)),
			zap.ByteString("stack", debug.Stack()),
		)
		apierror.Internal(c)
	})
}
