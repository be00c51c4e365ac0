package handlers

import (
	"net/http"

	"github.com/igorshiota/booking-app/models"
	"github.com/igorshiota/booking-app/services/catalog"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AdminHandler exposes the catalog write operations and branding settings.
type AdminHandler struct {
	Service catalog.CatalogService
	Logger  *zap.Logger
}

func NewAdminHandler(svc catalog.CatalogService, logger *zap.Logger) *AdminHandler {
	return &AdminHandler{Service: svc, Logger: logger}
}

type newCategoryRequest struct {
	Name string `json:"name" binding:"required"`
}

// CreateCategory adds a new service category.
func (h *AdminHandler) CreateCategory(c *gin.Context) {
	var input newCategoryRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	category, err := h.Service.CreateCategory(c.Request.Context(), input.Name)
	if err != nil {
		h.Logger.Error("failed to create category", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create category"})
		return
	}
	c.JSON(http.StatusCreated, category)
}

// CreateService adds a new service and backfills provider links.
func (h *AdminHandler) CreateService(c *gin.Context) {
	var input catalog.NewServiceInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	if input.Name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "name is required"})
		return
	}

	service, err := h.Service.CreateService(c.Request.Context(), input)
	if err != nil {
		h.Logger.Error("failed to create service", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create service"})
		return
	}
	c.JSON(http.StatusCreated, service)
}

// CreateProvider adds a new provider and backfills service links.
func (h *AdminHandler) CreateProvider(c *gin.Context) {
	var input catalog.NewProviderInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	if input.Name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "name is required"})
		return
	}

	provider, err := h.Service.CreateProvider(c.Request.Context(), input)
	if err != nil {
		h.Logger.Error("failed to create provider", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create provider"})
		return
	}
	c.JSON(http.StatusCreated, provider)
}

// GetBranding returns the current branding record for the admin panel.
func (h *AdminHandler) GetBranding(c *gin.Context) {
	settings, err := h.Service.BrandingSettings(c.Request.Context())
	if err != nil {
		h.Logger.Error("failed to fetch branding settings", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch branding settings"})
		return
	}
	c.JSON(http.StatusOK, settings)
}

// PatchBranding merges the submitted fields into the branding record and
// returns the updated settings.
func (h *AdminHandler) PatchBranding(c *gin.Context) {
	var patch models.BrandingPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	ctx := c.Request.Context()
	if err := h.Service.UpdateBrandingSettings(ctx, patch); err != nil {
		h.Logger.Error("failed to update branding settings", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update branding settings"})
		return
	}

	settings, err := h.Service.BrandingSettings(ctx)
	if err != nil {
		h.Logger.Error("failed to reload branding settings", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to reload branding settings"})
		return
	}
	c.JSON(http.StatusOK, settings)
}
