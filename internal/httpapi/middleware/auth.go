package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/scam165/anti-scam-platform/internal/auth"
	"github.com/scam165/anti-scam-platform/internal/common"
)

const (
	UserIDKey  = "auth.user_id"
	IsAdminKey = "auth.is_admin"
)

// AuthRequired validates the bearer token and stashes the caller identity.
// Every authorization failure is a uniform 403 with no detail about why.
func AuthRequired(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || strings.TrimSpace(token) == "" {
			common.Fail(c, http.StatusForbidden, 40300, "forbidden")
			c.Abort()
			return
		}

		claims, err := auth.ParseJWT(strings.TrimSpace(token), secret)
		if err != nil {
			common.Fail(c, http.StatusForbidden, 40300, "forbidden")
			c.Abort()
			return
		}

		c.Set(UserIDKey, claims.UserID)
		c.Set(IsAdminKey, claims.IsAdmin)
		c.Next()
	}
}

// AdminRequired must run after AuthRequired.
func AdminRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		v, ok := c.Get(IsAdminKey)
		if !ok || v != true {
			common.Fail(c, http.StatusForbidden, 40300, "forbidden")
			c.Abort()
			return
		}
		c.Next()
	}
}
