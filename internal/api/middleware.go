package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/shoplane/admin-backend/internal/auth"
	"github.com/shoplane/admin-backend/internal/pkg/response"
	"github.com/shoplane/admin-backend/internal/staff"
)

// RequireRole ensures the authenticated principal holds one of the given
// roles. It MUST run after auth.SessionRequired. The account is re-read from
// the principal store so deactivation and role changes take effect before
// the token expires.
func RequireRole(staffService staff.Service, roles ...staff.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		principal, ok := auth.GetPrincipal(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, response.Envelope{
				Success: false,
				Error:   "authentication required",
			})
			return
		}

		member, err := staffService.GetByID(c.Request.Context(), principal.StaffID)
		if err != nil || !member.IsActive {
			c.AbortWithStatusJSON(http.StatusUnauthorized, response.Envelope{
				Success: false,
				Error:   "invalid or expired session",
			})
			return
		}

		for _, role := range roles {
			if member.Role == role {
				c.Next()
				return
			}
		}

		c.AbortWithStatusJSON(http.StatusForbidden, response.Envelope{
			Success: false,
			Error:   "insufficient permissions",
		})
	}
}
