package http

import "github.com/gin-gonic/gin"

func RegisterRoutes(g *gin.RouterGroup, h *Handler, authMiddleware, sysAdminMiddleware gin.HandlerFunc) {
	group := g.Group("/slots")
	group.Use(authMiddleware)
	{
		group.GET("", h.List)
		group.POST("", sysAdminMiddleware, h.Create)
		group.DELETE("/:id", sysAdminMiddleware, h.Delete)
	}
}
