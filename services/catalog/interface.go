package catalog

import (
	"context"

	catalogRepo "github.com/igorshiota/booking-app/database/repository/catalog"
	settingsRepo "github.com/igorshiota/booking-app/database/repository/settings"
	"github.com/igorshiota/booking-app/models"
)

// CatalogService exposes the read side of the catalog plus the admin
// write operations.
type CatalogService interface {
	ListCategories(ctx context.Context) ([]models.Category, error)
	ListServices(ctx context.Context) ([]models.Service, error)
	ListProviders(ctx context.Context) ([]models.Provider, error)
	ServiceByID(ctx context.Context, id string) (*models.Service, error)
	ProvidersForService(ctx context.Context, serviceID string) ([]models.Provider, error)

	CreateCategory(ctx context.Context, name string) (*models.Category, error)
	CreateService(ctx context.Context, input NewServiceInput) (*models.Service, error)
	CreateProvider(ctx context.Context, input NewProviderInput) (*models.Provider, error)

	BrandingSettings(ctx context.Context) (*models.BrandingSettings, error)
	UpdateBrandingSettings(ctx context.Context, patch models.BrandingPatch) error
}

// NewServiceInput carries the admin form fields for a new service. Price and
// duration arrive untyped because the upstream form may submit them as text.
type NewServiceInput struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Price       any      `json:"price"`
	Duration    any      `json:"duration"`
	CategoryID  string   `json:"categoryId"`
	StaffIDs    []string `json:"staff"`
}

// NewProviderInput carries the admin form fields for a new provider.
type NewProviderInput struct {
	Name           string   `json:"name"`
	AvailableTimes []string `json:"availableTimes"`
	ServiceIDs     []string `json:"serviceIds"`
}

// DefaultCatalogService implements CatalogService over the mongo repositories.
type DefaultCatalogService struct {
	Categories catalogRepo.CategoryRepository
	Services   catalogRepo.ServiceRepository
	Providers  catalogRepo.ProviderRepository
	Settings   settingsRepo.SettingsRepository
}
