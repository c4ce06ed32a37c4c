package http

import "github.com/gin-gonic/gin"

func RegisterRoutes(g *gin.RouterGroup, h *Handler, authMiddleware, sysAdminMiddleware gin.HandlerFunc) {
	group := g.Group("/files")
	{
		// Downloads are public so resource photos render without a token.
		group.GET("/:id", h.Download)
		group.GET("/:id/thumbnail", h.Thumbnail)

		group.POST("", authMiddleware, sysAdminMiddleware, h.Upload)
		group.DELETE("/:id", authMiddleware, sysAdminMiddleware, h.Delete)
	}
}
