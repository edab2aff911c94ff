package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers staff management routes. Every staff route is
// admin-only.
func RegisterRoutes(g *gin.RouterGroup, h *Handler, sessionMiddleware, adminMiddleware gin.HandlerFunc) {
	group := g.Group("/staff")
	group.Use(sessionMiddleware, adminMiddleware)
	{
		group.GET("", h.List)
		group.GET("/:id", h.Get)
		group.POST("", h.Create)
		group.PUT("/:id", h.Update)
		group.DELETE("/:id", h.Delete)
	}
}
