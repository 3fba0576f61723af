package middleware

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/scam165/anti-scam-platform/internal/common"
)

// Recovery turns panics into the standard JSON envelope instead of gin's
// plain-text 500.
func Recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				log.Printf("panic recovered: %v", r)
				common.Fail(c, http.StatusInternalServerError, 50000, "internal server error")
				c.Abort()
			}
		}()
		c.Next()
	}
}
