package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/gin-gonic/gin"

	"github.com/kbukum/bukku-go/logger"
)

// Recovery recovers from handler panics, logs the stack and answers 500 in
// the API's {"message": ...} error shape.
func Recovery(log *logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				log.WithContext(c.Request.Context()).Error("Panic recovered", map[string]any{
					logger.FieldError:  fmt.Sprintf("%v", err),
					"stack":            string(debug.Stack()),
					logger.FieldPath:   c.Request.URL.Path,
					logger.FieldMethod: c.Request.Method,
				})
				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
					"message": "Internal server error",
				})
			}
		}()
		c.Next()
	}
}
