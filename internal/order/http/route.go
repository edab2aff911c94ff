package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers order routes. Every order route requires an
// authenticated session; mutations need manager or admin, deletion admin.
func RegisterRoutes(g *gin.RouterGroup, h *Handler, sessionMiddleware, managerMiddleware, adminMiddleware gin.HandlerFunc) {
	group := g.Group("/orders")
	group.Use(sessionMiddleware)
	{
		group.GET("", h.List)
		group.GET("/:id", h.Get)
	}

	manager := group.Group("")
	manager.Use(managerMiddleware)
	{
		manager.POST("", h.Create)
		manager.PATCH("/:id/status", h.UpdateStatus)
	}

	admin := group.Group("")
	admin.Use(adminMiddleware)
	{
		admin.DELETE("/:id", h.Delete)
	}
}
