package catalogRepo

import (
	"github.com/igorshiota/booking-app/models"
)

// CategoryRepository defines data access for service categories.
type CategoryRepository interface {
	// GetAll retrieves all categories.
	GetAll() ([]models.Category, error)
	// Create inserts a new category record.
	Create(category *models.Category) error
}

// ServiceRepository defines data access for services.
type ServiceRepository interface {
	// GetAll retrieves all services.
	GetAll() ([]models.Service, error)
	// GetByID retrieves a service by its unique ID.
	GetByID(id string) (*models.Service, error)
	// Create inserts a new service record.
	Create(service *models.Service) error
	// AppendStaff adds a provider id to a service's assigned staff set.
	AppendStaff(serviceID, providerID string) error
}

// ProviderRepository defines data access for providers.
type ProviderRepository interface {
	// GetAll retrieves all providers.
	GetAll() ([]models.Provider, error)
	// GetByID retrieves a provider by its unique ID.
	GetByID(id string) (*models.Provider, error)
	// GetByServiceID returns providers assigned to a specific service.
	GetByServiceID(serviceID string) ([]models.Provider, error)
	// Create inserts a new provider record.
	Create(provider *models.Provider) error
	// AppendService adds a service id to a provider's service set.
	AppendService(providerID, serviceID string) error
}
