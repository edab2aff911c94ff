package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers category routes. Reads are public; mutations
// require an authenticated manager or admin.
func RegisterRoutes(g *gin.RouterGroup, h *Handler, sessionMiddleware, managerMiddleware gin.HandlerFunc) {
	group := g.Group("/categories")

	// === Public Routes ===
	group.GET("", h.List)
	group.GET("/:id", h.Get)

	// === Gated Routes ===
	gated := group.Group("")
	gated.Use(sessionMiddleware, managerMiddleware)
	{
		gated.POST("", h.Create)
		gated.PUT("/:id", h.Update)
		gated.DELETE("/:id", h.Delete)
	}
}
