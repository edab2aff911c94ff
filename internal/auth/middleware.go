package auth

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/shoplane/admin-backend/internal/pkg/response"
)

// SessionCookieName is the HTTP-only cookie carrying the session token.
const SessionCookieName = "admin_session"

// SessionRequired validates the session token carried in the session cookie,
// falling back to an Authorization: Bearer header. On success the resolved
// principal is stored in the request context; otherwise the request is
// aborted with 401 and the wrapped handler never runs.
func SessionRequired(jwtManager *JWTManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenStr := sessionToken(c)
		if tokenStr == "" {
			abortUnauthorized(c, "authentication required")
			return
		}

		claims, err := jwtManager.ParseAndValidate(tokenStr)
		if err != nil {
			abortUnauthorized(c, "invalid or expired session")
			return
		}

		SetPrincipal(c, Principal{
			StaffID: claims.StaffID,
			Email:   claims.Email,
			Role:    claims.Role,
		})

		c.Next()
	}
}

// sessionToken extracts the raw token from the cookie or the bearer header.
func sessionToken(c *gin.Context) string {
	if cookie, err := c.Cookie(SessionCookieName); err == nil && cookie != "" {
		return cookie
	}

	header := c.GetHeader("Authorization")
	if header == "" {
		return ""
	}

	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return ""
	}
	return parts[1]
}

func abortUnauthorized(c *gin.Context, msg string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, response.Envelope{
		Success: false,
		Error:   msg,
	})
}
