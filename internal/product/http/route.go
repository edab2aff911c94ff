package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers product routes. Reads are public; creating and
// updating is open to vendors and up, deleting to managers and up.
func RegisterRoutes(g *gin.RouterGroup, h *Handler, sessionMiddleware, vendorMiddleware, managerMiddleware gin.HandlerFunc) {
	group := g.Group("/products")

	// === Public Routes ===
	group.GET("", h.List)
	group.GET("/:id", h.Get)

	// === Vendor Routes ===
	vendor := group.Group("")
	vendor.Use(sessionMiddleware, vendorMiddleware)
	{
		vendor.POST("", h.Create)
		vendor.PUT("/:id", h.Update)
		vendor.POST("/:id/image", h.UploadImage)
	}

	// === Manager Routes ===
	manager := group.Group("")
	manager.Use(sessionMiddleware, managerMiddleware)
	{
		manager.DELETE("/:id", h.Delete)
	}
}
