package auth

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/vocabachkhoa/api/internal/apperr"
)

// Context keys for the authenticated account.
const (
	ContextKeyUserID   = "auth_user_id"
	ContextKeyUsername = "auth_username"
)

// TokenVerifier validates bearer tokens.
type TokenVerifier interface {
	VerifyToken(token string) (*Claims, error)
}

// RequireBearer rejects requests without a valid "Authorization: Bearer" token.
// Failures are pushed onto the gin error list for the central error handler.
func RequireBearer(verifier TokenVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := bearerToken(c.GetHeader("Authorization"))
		if !ok {
			_ = c.Error(apperr.Authentication("authentication required"))
			c.Abort()
			return
		}

		claims, err := verifier.VerifyToken(token)
		if err != nil {
			_ = c.Error(err)
			c.Abort()
			return
		}

		c.Set(ContextKeyUserID, claims.UserID)
		c.Set(ContextKeyUsername, claims.Username)
		c.Next()
	}
}

func bearerToken(header string) (string, bool) {
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return "", false
	}
	token := strings.TrimSpace(parts[1])
	return token, token != ""
}

// GetUserID returns the authenticated account ID, or 0 outside RequireBearer.
func GetUserID(c *gin.Context) uint {
	if id, exists := c.Get(ContextKeyUserID); exists {
		if uid, ok := id.(uint); ok {
			return uid
		}
	}
	return 0
}

// GetUsername returns the authenticated username, or "" outside RequireBearer.
func GetUsername(c *gin.Context) string {
	return c.GetString(ContextKeyUsername)
}
