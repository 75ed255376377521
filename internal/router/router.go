package router

import (
	"net/http"

	"github.com/wb-go/wbf/ginext"
)

type Handler interface {
	CreateBooking(c *ginext.Context)
	GetBooking(c *ginext.Context)
	UpdateSlot(c *ginext.Context)
	ChangeStatus(c *ginext.Context)
	DeleteBooking(c *ginext.Context)
	GetCurrentStatus(c *ginext.Context)
	GetStatusHistory(c *ginext.Context)
	ListResourceBookings(c *ginext.Context)
	ListRequesterBookings(c *ginext.Context)
	ListLongBookings(c *ginext.Context)
}

func InitRouter(mode string, h Handler, mw ...ginext.HandlerFunc) *ginext.Engine {
	router := ginext.New(mode)
	router.Use(mw...)

	api := router.Group("/api")
	{
		// Bookings
		api.POST("/bookings", h.CreateBooking)
		api.GET("/bookings/:id", h.GetBooking)
		api.PATCH("/bookings/:id/slot", h.UpdateSlot)
		api.POST("/bookings/:id/status", h.ChangeStatus)
		api.GET("/bookings/:id/status", h.GetCurrentStatus)
		api.GET("/bookings/:id/history", h.GetStatusHistory)
		api.DELETE("/bookings/:id", h.DeleteBooking)
		api.GET("/long-bookings/:minutes", h.ListLongBookings)

		// Collaborator views
		api.GET("/resources/:type/:id/bookings", h.ListResourceBookings)
		api.GET("/requesters/:type/:id/bookings", h.ListRequesterBookings)
	}

	router.GET("/health", func(c *ginext.Context) {
		c.JSON(http.StatusOK, ginext.H{"status": "ok"})
	})

	return router
}
