package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"frontdesk-backend/services"
	"frontdesk-backend/utils"
)

// AdminIDKey is the context key under which the authenticated admin
// account ID is stored.
const AdminIDKey = "adminID"

// RequireAuth validates the Bearer token and stores the admin ID on the
// request context.
func RequireAuth(jwt *services.JWTService) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			utils.JSONError(c, http.StatusUnauthorized, "missing bearer token")
			c.Abort()
			return
		}

		adminID, err := jwt.ParseToken(strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			utils.JSONError(c, http.StatusUnauthorized, "invalid or expired token")
			c.Abort()
			return
		}

		c.Set(AdminIDKey, adminID)
		c.Next()
	}
}
