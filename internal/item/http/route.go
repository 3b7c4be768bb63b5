package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers item routes. Everything except search needs the actor header.
func RegisterRoutes(g *gin.RouterGroup, h *Handler, sharerMiddleware gin.HandlerFunc) {
	items := g.Group("/items")
	{
		items.GET("/search", h.Search)

		items.POST("", sharerMiddleware, h.Create)
		items.GET("", sharerMiddleware, h.ListMine)
		items.GET("/:id", sharerMiddleware, h.Get)
		items.PATCH("/:id", sharerMiddleware, h.Update)
		items.POST("/:id/comment", sharerMiddleware, h.AddComment)
	}
}
