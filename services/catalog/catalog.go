package catalog

import (
	"context"
	"fmt"

	"github.com/igorshiota/booking-app/models"
)

// ListCategories returns every category, unfiltered.
func (s *DefaultCatalogService) ListCategories(ctx context.Context) ([]models.Category, error) {
	categories, err := s.Categories.GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	return categories, nil
}

// ListServices returns every service, unfiltered.
func (s *DefaultCatalogService) ListServices(ctx context.Context) ([]models.Service, error) {
	services, err := s.Services.GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to list services: %w", err)
	}
	return services, nil
}

// ListProviders returns every provider, unfiltered.
func (s *DefaultCatalogService) ListProviders(ctx context.Context) ([]models.Provider, error) {
	providers, err := s.Providers.GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to list providers: %w", err)
	}
	return providers, nil
}

// ServiceByID fetches a single service.
func (s *DefaultCatalogService) ServiceByID(ctx context.Context, id string) (*models.Service, error) {
	return s.Services.GetByID(id)
}

// ProvidersForService returns the providers assigned to the given service.
// This is the pre-filtered set the selection flow offers to the customer.
func (s *DefaultCatalogService) ProvidersForService(ctx context.Context, serviceID string) ([]models.Provider, error) {
	providers, err := s.Providers.GetByServiceID(serviceID)
	if err != nil {
		return nil, fmt.Errorf("failed to list providers for service %s: %w", serviceID, err)
	}
	return providers, nil
}

// BrandingSettings returns the storefront branding record.
func (s *DefaultCatalogService) BrandingSettings(ctx context.Context) (*models.BrandingSettings, error) {
	return s.Settings.GetBranding()
}

// UpdateBrandingSettings merges the patch into the branding record.
func (s *DefaultCatalogService) UpdateBrandingSettings(ctx context.Context, patch models.BrandingPatch) error {
	return s.Settings.PatchBranding(patch)
}
