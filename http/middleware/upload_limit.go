package middlewares

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// multipartOverhead covers boundary markers and part headers so a payload
// exactly at the configured cap still parses; the per-file limit is enforced
// exactly in the upload handler.
const multipartOverhead = 64 << 10

// UploadLimitMiddleware bounds the raw request body of upload routes so an
// oversized payload is rejected during multipart parsing, before the handler
// can reach the store.
func UploadLimitMiddleware(maxBytes int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes+multipartOverhead)
		c.Next()
	}
}
