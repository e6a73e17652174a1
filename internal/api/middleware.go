package api

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/yourname/serenedesk/internal"
)

// RequestIDMiddleware ensures every request has a correlation/request ID
func RequestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		reqID := c.GetHeader("X-Request-ID")
		if reqID == "" {
			reqID = uuid.NewString()
		}
		c.Set("request_id", reqID)
		c.Writer.Header().Set("X-Request-ID", reqID)
		c.Next()
	}
}

// RequestLogger logs one line per request once the handler chain is done.
func RequestLogger(logger internal.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		logger.With(
			"request_id", c.GetString("request_id"),
			"method", c.Request.Method,
			"path", c.FullPath(),
			"status", c.Writer.Status(),
			"latency", time.Since(start),
		).Info("request")
	}
}

// SessionLoader resolves the :id path parameter to a session owned by the
// authenticated user and stores it under "session".
func SessionLoader(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		st, err := app.Sessions().Get(c.Param("id"), currentUser(c).ID)
		if err != nil {
			HandleError(c, app.Logger(), err, "Session unavailable")
			return
		}
		c.Set("session", st)
		c.Next()
	}
}
