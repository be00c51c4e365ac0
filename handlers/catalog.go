package handlers

import (
	"net/http"

	"github.com/igorshiota/booking-app/models"
	"github.com/igorshiota/booking-app/services/catalog"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// CatalogHandler exposes the public read-only catalog endpoints. Fetch
// failures degrade to empty lists so the storefront renders an empty page
// instead of an error screen.
type CatalogHandler struct {
	Service catalog.CatalogService
	Logger  *zap.Logger
}

func NewCatalogHandler(svc catalog.CatalogService, logger *zap.Logger) *CatalogHandler {
	return &CatalogHandler{Service: svc, Logger: logger}
}

func (h *CatalogHandler) ListCategories(c *gin.Context) {
	categories, err := h.Service.ListCategories(c.Request.Context())
	if err != nil {
		h.Logger.Warn("failed to list categories", zap.Error(err))
		categories = []models.Category{}
	}
	if categories == nil {
		categories = []models.Category{}
	}
	c.JSON(http.StatusOK, categories)
}

func (h *CatalogHandler) ListServices(c *gin.Context) {
	services, err := h.Service.ListServices(c.Request.Context())
	if err != nil {
		h.Logger.Warn("failed to list services", zap.Error(err))
		services = []models.Service{}
	}
	if services == nil {
		services = []models.Service{}
	}
	c.JSON(http.StatusOK, services)
}

func (h *CatalogHandler) ListProviders(c *gin.Context) {
	providers, err := h.Service.ListProviders(c.Request.Context())
	if err != nil {
		h.Logger.Warn("failed to list providers", zap.Error(err))
		providers = []models.Provider{}
	}
	if providers == nil {
		providers = []models.Provider{}
	}
	c.JSON(http.StatusOK, providers)
}

// ProvidersForService returns the providers offering one service.
func (h *CatalogHandler) ProvidersForService(c *gin.Context) {
	providers, err := h.Service.ProvidersForService(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.Logger.Warn("failed to fetch providers for service",
			zap.String("service_id", c.Param("id")), zap.Error(err))
		providers = []models.Provider{}
	}
	if providers == nil {
		providers = []models.Provider{}
	}
	c.JSON(http.StatusOK, providers)
}

// Branding returns the storefront branding settings.
func (h *CatalogHandler) Branding(c *gin.Context) {
	settings, err := h.Service.BrandingSettings(c.Request.Context())
	if err != nil {
		h.Logger.Warn("failed to fetch branding settings", zap.Error(err))
		c.JSON(http.StatusOK, models.BrandingSettings{})
		return
	}
	c.JSON(http.StatusOK, settings)
}
