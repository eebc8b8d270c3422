package router

import (
	"net/http"

	"github.com/wb-go/wbf/ginext"
)

type Handler interface {
	Register(c *ginext.Context)
	Login(c *ginext.Context)
	GetProfile(c *ginext.Context)
	UpdateProfile(c *ginext.Context)
	ListTours(c *ginext.Context)
	GetTour(c *ginext.Context)
	CreateTour(c *ginext.Context)
	UpdateTour(c *ginext.Context)
	DeleteTour(c *ginext.Context)
	CreateBooking(c *ginext.Context)
	MyBookings(c *ginext.Context)
	GetBooking(c *ginext.Context)
	CancelBooking(c *ginext.Context)
}

func InitRouter(mode string, h Handler, auth, admin ginext.HandlerFunc, mw ...ginext.HandlerFunc) *ginext.Engine {
	router := ginext.New(mode)
	router.Use(mw...)

	api := router.Group("/api")
	{
		// Auth
		authGroup := api.Group("/auth")
		authGroup.POST("/register", h.Register)
		authGroup.POST("/login", h.Login)
		authGroup.GET("/profile", auth, h.GetProfile)
		authGroup.PUT("/profile", auth, h.UpdateProfile)

		// Tours: catalog is public, mutation is admin-only
		tours := api.Group("/tours")
		tours.GET("", h.ListTours)
		tours.GET("/:id", h.GetTour)
		tours.POST("", auth, admin, h.CreateTour)
		tours.PUT("/:id", auth, admin, h.UpdateTour)
		tours.DELETE("/:id", auth, admin, h.DeleteTour)

		// Bookings
		bookings := api.Group("/bookings", auth)
		bookings.POST("", h.CreateBooking)
		bookings.GET("/my-bookings", h.MyBookings)
		bookings.GET("/:id", h.GetBooking)
		bookings.DELETE("/:id", h.CancelBooking)
	}

	router.GET("/health", func(c *ginext.Context) {
		c.JSON(http.StatusOK, ginext.H{"status": "ok"})
	})

	return router
}
