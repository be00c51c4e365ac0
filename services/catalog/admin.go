package catalog

import (
	"context"
	"fmt"
	"strings"

	"github.com/igorshiota/booking-app/models"
	"github.com/igorshiota/booking-app/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// CreateCategory inserts a new category.
func (s *DefaultCatalogService) CreateCategory(ctx context.Context, name string) (*models.Category, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("category name must not be empty")
	}
	category := &models.Category{
		ID:   uuid.New().String(),
		Name: name,
	}
	if err := s.Categories.Create(category); err != nil {
		return nil, err
	}
	return category, nil
}

// CreateService inserts a new service and backfills each assigned provider's
// service list with the new id.
func (s *DefaultCatalogService) CreateService(ctx context.Context, input NewServiceInput) (*models.Service, error) {
	if strings.TrimSpace(input.Name) == "" {
		return nil, fmt.Errorf("service name must not be empty")
	}

	service := &models.Service{
		ID:          uuid.New().String(),
		Name:        input.Name,
		Description: input.Description,
		Price:       utils.CoerceFloat(input.Price),
		Duration:    utils.CoerceInt(input.Duration),
		CategoryID:  input.CategoryID,
		StaffIDs:    input.StaffIDs,
	}
	if service.Price < 0 {
		service.Price = 0
	}
	if service.Duration < 0 {
		service.Duration = 0
	}

	if err := s.Services.Create(service); err != nil {
		return nil, err
	}

	for _, staffID := range input.StaffIDs {
		if err := s.Providers.AppendService(staffID, service.ID); err != nil {
			utils.GetLogger().Warn("failed to link provider to new service",
				zap.String("providerId", staffID),
				zap.String("serviceId", service.ID),
				zap.Error(err))
		}
	}

	return service, nil
}

// CreateProvider inserts a new provider and backfills each assigned
// service's staff list with the new id.
func (s *DefaultCatalogService) CreateProvider(ctx context.Context, input NewProviderInput) (*models.Provider, error) {
	if strings.TrimSpace(input.Name) == "" {
		return nil, fmt.Errorf("provider name must not be empty")
	}

	times := make([]string, 0, len(input.AvailableTimes))
	for _, t := range input.AvailableTimes {
		if trimmed := strings.TrimSpace(t); trimmed != "" {
			times = append(times, trimmed)
		}
	}

	provider := &models.Provider{
		ID:             uuid.New().String(),
		Name:           input.Name,
		AvailableTimes: times,
		ServiceIDs:     input.ServiceIDs,
	}

	if err := s.Providers.Create(provider); err != nil {
		return nil, err
	}

	for _, serviceID := range input.ServiceIDs {
		if err := s.Services.AppendStaff(serviceID, provider.ID); err != nil {
			utils.GetLogger().Warn("failed to link service to new provider",
				zap.String("serviceId", serviceID),
				zap.String("providerId", provider.ID),
				zap.Error(err))
		}
	}

	return provider, nil
}
