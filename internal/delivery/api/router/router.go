// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"studio/config"
	"studio/internal/delivery/api/middleware"
	"studio/internal/delivery/api/router/handler"
	"studio/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	GalleryHandler     *handler.GalleryHandler
	CatalogHandler     *handler.CatalogHandler
	ContactHandler     *handler.ContactHandler
	TestimonialHandler *handler.TestimonialHandler
	OrderHandler       *handler.OrderHandler
	BookingHandler     *handler.BookingHandler
	MediaHandler       *handler.MediaHandler
	Config             *config.Config

	// Staff surface, only provided when admin is enabled.
	AuthHandler    *handler.AuthHandler       `optional:"true"`
	AuthMiddleware *middleware.AuthMiddleware `optional:"true"`
}

// router holds all the handlers that need to be registered.
type router struct {
	galleryHandler     *handler.GalleryHandler
	catalogHandler     *handler.CatalogHandler
	contactHandler     *handler.ContactHandler
	testimonialHandler *handler.TestimonialHandler
	orderHandler       *handler.OrderHandler
	bookingHandler     *handler.BookingHandler
	mediaHandler       *handler.MediaHandler
	authHandler        *handler.AuthHandler
	authMiddleware     *middleware.AuthMiddleware
	config             *config.Config
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		galleryHandler:     params.GalleryHandler,
		catalogHandler:     params.CatalogHandler,
		contactHandler:     params.ContactHandler,
		testimonialHandler: params.TestimonialHandler,
		orderHandler:       params.OrderHandler,
		bookingHandler:     params.BookingHandler,
		mediaHandler:       params.MediaHandler,
		authHandler:        params.AuthHandler,
		authMiddleware:     params.AuthMiddleware,
		config:             params.Config,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Stored uploads
	e.GET("/media/*", r.mediaHandler.Serve)

	api := e.Group("/api")
	{
		api.GET("/gallery", r.galleryHandler.ListImages)
		api.GET("/gallery/:id", r.galleryHandler.GetImage)

		api.GET("/services", r.catalogHandler.ListServices)
		api.GET("/services/:id", r.catalogHandler.GetService)

		api.POST("/contact", r.contactHandler.Submit)
		api.GET("/contact/qr", r.contactHandler.WhatsAppQR)

		api.GET("/testimonials", r.testimonialHandler.ListApproved)
		api.POST("/testimonials", r.testimonialHandler.Submit)

		api.POST("/orders", r.orderHandler.Create)
		api.POST("/bookings", r.bookingHandler.Create)
	}

	r.registerAdminRoutes(api)
}

func (r *router) registerAdminRoutes(api *echo.Group) {
	if !r.config.AdminEnabled() || r.authHandler == nil || r.authMiddleware == nil {
		return
	}

	api.POST("/auth/login", r.authHandler.Login)

	// Staff routes require a valid token and the admin role
	adminGroup := api.Group("/admin")
	adminGroup.Use(r.authMiddleware.Authenticate)
	adminGroup.Use(r.authMiddleware.RequireRole(entity.RoleAdmin))
	{
		adminGroup.GET("/orders", r.orderHandler.List)
		adminGroup.GET("/orders/:id", r.orderHandler.Get)
		adminGroup.PATCH("/orders/:id/status", r.orderHandler.UpdateStatus)

		adminGroup.GET("/testimonials", r.testimonialHandler.ListAll)
		adminGroup.PATCH("/testimonials/:id/approval", r.testimonialHandler.SetApproval)

		adminGroup.GET("/contact", r.contactHandler.ListSubmissions)
		adminGroup.GET("/bookings", r.bookingHandler.List)

		adminGroup.POST("/services", r.catalogHandler.CreateService)
		adminGroup.POST("/gallery", r.galleryHandler.UploadImage)
	}
}
