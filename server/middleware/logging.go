package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/kbukum/bukku-go/logger"
)

// RequestLogger logs every request with method, path, status and duration.
// /health is skipped.
func RequestLogger(log *logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.URL.Path == "/health" {
			c.Next()
			return
		}

		start := time.Now()
		c.Next()

		status := c.Writer.Status()
		path := c.Request.URL.Path
		if q := c.Request.URL.RawQuery; q != "" {
			path += "?" + q
		}
		fields := logger.MergeWithDuration(logger.Fields(
			logger.FieldMethod, c.Request.Method,
			logger.FieldPath, path,
			logger.FieldStatus, status,
		), time.Since(start))
		if sub := c.GetHeader("Company-Subdomain"); sub != "" {
			fields[logger.FieldSubdomain] = sub
		}

		logByStatus(log.WithContext(c.Request.Context()), fields, status)
	}
}

func logByStatus(log *logger.Logger, fields map[string]any, status int) {
	switch {
	case status >= 500:
		log.Error("Request completed", fields)
	case status >= 400:
		log.Warn("Request completed", fields)
	default:
		log.Info("Request completed", fields)
	}
}
