package middleware

import (
	"net/http"

	domainerr "github.com/adhishcp/upi-app/internal/domain/error"
	"github.com/adhishcp/upi-app/internal/infrastructure/adapter/api/dto"
	"github.com/gin-gonic/gin"
)

// UserIDKey is the gin context key holding the authenticated user's id
const UserIDKey = "userID"

// Identity extracts the caller's user id from the X-User-ID header. Session
// issuance lives outside this service; the gateway in front of it fills the
// header once the caller is authenticated.
func Identity() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetHeader("X-User-ID")
		if userID == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{
				Code:    domainerr.ErrorCode(domainerr.ErrInvalidRequest),
				Message: "Missing required header: X-User-ID",
			})
			return
		}

		c.Set(UserIDKey, userID)
		c.Next()
	}
}

// UserID returns the caller's user id stored by the Identity middleware
func UserID(c *gin.Context) string {
	return c.GetString(UserIDKey)
}
