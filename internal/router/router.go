package router

import (
	"net/http"

	"github.com/wb-go/wbf/ginext"
)

type Handler interface {
	Login(c *ginext.Context)
	Register(c *ginext.Context)
	Logout(c *ginext.Context)
	ForgotPassword(c *ginext.Context)
	ResetPassword(c *ginext.Context)
	GetSession(c *ginext.Context)
	ListEvents(c *ginext.Context)
	GetEvent(c *ginext.Context)
	CreateEvent(c *ginext.Context)
	UpdateEvent(c *ginext.Context)
	DeleteEvent(c *ginext.Context)
	ListMyBookings(c *ginext.Context)
	BookEvent(c *ginext.Context)
	CancelBooking(c *ginext.Context)
	CheckoutEvent(c *ginext.Context)
	ListUsers(c *ginext.Context)
	RevenueReport(c *ginext.Context)
}

func InitRouter(mode string, h Handler, mw ...ginext.HandlerFunc) *ginext.Engine {
	router := ginext.New(mode)
	router.Use(mw...)

	api := router.Group("/api")
	{
		// Auth
		api.POST("/auth/login", h.Login)
		api.POST("/auth/register", h.Register)
		api.POST("/auth/logout", h.Logout)
		api.POST("/auth/forgot-password", h.ForgotPassword)
		api.POST("/auth/reset-password", h.ResetPassword)
		api.GET("/session", h.GetSession)

		// Events
		api.GET("/events", h.ListEvents)
		api.GET("/events/:id", h.GetEvent)
		api.POST("/events", h.CreateEvent)
		api.PUT("/events/:id", h.UpdateEvent)
		api.DELETE("/events/:id", h.DeleteEvent)

		// Bookings
		api.GET("/bookings", h.ListMyBookings)
		api.POST("/events/:id/book", h.BookEvent)
		api.DELETE("/bookings/:id", h.CancelBooking)
		api.POST("/events/:id/checkout", h.CheckoutEvent)

		// Admin
		api.GET("/admin/users", h.ListUsers)
		api.GET("/admin/revenue", h.RevenueReport)
	}

	router.GET("/health", func(c *ginext.Context) {
		c.JSON(http.StatusOK, ginext.H{"status": "ok"})
	})

	return router
}
