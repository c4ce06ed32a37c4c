package http

import "github.com/gin-gonic/gin"

func RegisterRoutes(g *gin.RouterGroup, h *Handler, authMiddleware, sysAdminMiddleware gin.HandlerFunc) {
	auth := g.Group("/auth")
	{
		auth.POST("/register", h.Register)
		auth.POST("/login", h.Login)
		auth.GET("/me", authMiddleware, h.Me)
	}

	users := g.Group("/users")
	users.Use(authMiddleware, sysAdminMiddleware)
	{
		users.GET("", h.List)
		users.PATCH("/:id", h.Update)
	}
}
