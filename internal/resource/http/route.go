package http

import "github.com/gin-gonic/gin"

func RegisterRoutes(g *gin.RouterGroup, h *Handler, authMiddleware, sysAdminMiddleware gin.HandlerFunc) {
	group := g.Group("/resources")
	group.Use(authMiddleware)
	{
		group.GET("", h.List)
		group.GET("/:id", h.Get)

		// Mutations are restricted to system admins
		group.POST("", sysAdminMiddleware, h.Create)
		group.PATCH("/:id", sysAdminMiddleware, h.Update)
		group.DELETE("/:id", sysAdminMiddleware, h.Delete)
	}
}
