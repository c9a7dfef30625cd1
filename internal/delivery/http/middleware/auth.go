package middleware

import (
	"net/http"
	"strings"

	"github.com/campusmatch/campusmatch-backend/internal/usecase/auth"
	"github.com/gin-gonic/gin"
)

// TokenCookie is the HTTP-only cookie the session token travels in.
const TokenCookie = "token"

// AuthMiddleware gates authenticated routes. Verification is stateless:
// signature and expiry are checked on every request.
type AuthMiddleware struct {
	authUseCase *auth.AuthUseCase
}

func NewAuthMiddleware(authUseCase *auth.AuthUseCase) *AuthMiddleware {
	return &AuthMiddleware{authUseCase: authUseCase}
}

// RequireAuth verifies the session token and stores the caller's user id
// on the context under "user_id".
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := ExtractToken(c)
		if token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		userID, err := m.authUseCase.VerifyToken(token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		c.Set("user_id", userID)
		c.Next()
	}
}

// ExtractToken reads the session token from the cookie, falling back to
// a bearer Authorization header for non-browser clients.
func ExtractToken(c *gin.Context) string {
	if cookie, err := c.Cookie(TokenCookie); err == nil && cookie != "" {
		return cookie
	}

	header := c.GetHeader("Authorization")
	if strings.HasPrefix(header, "Bearer ") {
		return strings.TrimPrefix(header, "Bearer ")
	}
	return ""
}
