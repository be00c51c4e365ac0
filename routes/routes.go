package routes

import (
	"net/http"

	"github.com/igorshiota/booking-app/handlers"
	"github.com/igorshiota/booking-app/utils"

	"github.com/gin-gonic/gin"
)

// RegisterBookingRoutes sets up the session state-machine endpoints.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	bookingGroup := r.Group("/api/booking")
	{
		bookingGroup.POST("/session", hb.Booking.StartSession)
		bookingGroup.GET("/session/:sessionID", hb.Booking.GetSession)
		bookingGroup.PUT("/session/:sessionID", hb.Booking.UpdateSession)
		bookingGroup.POST("/session/:sessionID/cart", hb.Booking.ConfirmAddToCart)
		bookingGroup.POST("/session/:sessionID/submit", hb.Booking.Submit)
	}
}

// RegisterCatalogRoutes sets up the public read-only catalog endpoints.
func RegisterCatalogRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/catalog")
	{
		api.GET("/categories", hb.Catalog.ListCategories)
		api.GET("/services", hb.Catalog.ListServices)
		api.GET("/services/:id/providers", hb.Catalog.ProvidersForService)
		api.GET("/providers", hb.Catalog.ListProviders)
		api.GET("/branding", hb.Catalog.Branding)
	}
}

// RegisterAdminRoutes sets up the catalog write and settings endpoints.
func RegisterAdminRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/admin")
	{
		api.POST("/categories", hb.Admin.CreateCategory)
		api.POST("/services", hb.Admin.CreateService)
		api.POST("/providers", hb.Admin.CreateProvider)
		api.GET("/settings/branding", hb.Admin.GetBranding)
		api.PATCH("/settings/branding", hb.Admin.PatchBranding)
	}
}

// RegisterUploadRoutes sets up image upload and retrieval.
func RegisterUploadRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.POST("/upload", hb.Upload.UploadImage)
	r.GET("/images/:file", hb.Upload.ServeImage)
}

// RegisterHealthRoute registers a health-check endpoint backed by the
// dependency monitor.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		status := utils.GetHealthStatus()
		code := http.StatusOK
		if !status.Mongo || !status.Redis {
			code = http.StatusServiceUnavailable
		}
		c.JSON(code, status)
	})
}

// SetupRoutes wires every route group onto the engine.
func SetupRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	RegisterHealthRoute(r)
	RegisterCatalogRoutes(r, hb)
	RegisterBookingRoutes(r, hb)
	RegisterAdminRoutes(r, hb)
	RegisterUploadRoutes(r, hb)
}
