package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers dashboard routes. Stats are visible to any
// authenticated staff member; the sales report needs manager or admin.
func RegisterRoutes(g *gin.RouterGroup, h *Handler, sessionMiddleware, managerMiddleware gin.HandlerFunc) {
	group := g.Group("/dashboard")
	group.Use(sessionMiddleware)
	{
		group.GET("/stats", h.Stats)
	}

	manager := group.Group("")
	manager.Use(managerMiddleware)
	{
		manager.GET("/report", h.Report)
	}
}
