package http

import "github.com/gin-gonic/gin"

func RegisterRoutes(g *gin.RouterGroup, h *Handler, authMiddleware, sysAdminMiddleware gin.HandlerFunc) {
	group := g.Group("/settings")
	group.Use(authMiddleware)
	{
		group.GET("/:namespace", h.ListNamespace)
		group.GET("/:namespace/:key", h.Get)
		group.PUT("/:namespace/:key", sysAdminMiddleware, h.Put)
		group.DELETE("/:namespace/:key", sysAdminMiddleware, h.Delete)
	}
}
