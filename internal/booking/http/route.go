package http

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(g *gin.RouterGroup, h *Handler, sharerMiddleware gin.HandlerFunc) {
	bookings := g.Group("/bookings")
	bookings.Use(sharerMiddleware)
	{
		bookings.POST("", h.Create)
		bookings.GET("", h.ListByBooker)
		bookings.GET("/owner", h.ListByOwner)
		bookings.GET("/:id", h.Get)
		bookings.PATCH("/:id", h.UpdateStatus)
	}
}
