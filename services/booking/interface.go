package booking

import (
	"context"
	"time"

	"github.com/igorshiota/booking-app/models"
	"github.com/igorshiota/booking-app/services/notification"
)

// Catalog is the subset of catalog reads the booking flow needs.
type Catalog interface {
	ListCategories(ctx context.Context) ([]models.Category, error)
	ServiceByID(ctx context.Context, id string) (*models.Service, error)
	ProvidersForService(ctx context.Context, serviceID string) ([]models.Provider, error)
}

// BookingSessionService drives one customer's selection state machine,
// cart and submission. Every call loads the session, applies a single
// transition and persists the result.
type BookingSessionService interface {
	StartSession(ctx context.Context) (*SessionView, error)
	GetSession(ctx context.Context, sessionID string) (*SessionView, error)
	ChooseCategory(ctx context.Context, sessionID, categoryID string) (*SessionView, error)
	ToggleService(ctx context.Context, sessionID, serviceID string) (*SessionView, error)
	ChooseProvider(ctx context.Context, sessionID, providerID string) (*SessionView, error)
	ChooseTime(ctx context.Context, sessionID, slot string) (*SessionView, error)
	ConfirmAddToCart(ctx context.Context, sessionID string) (*SessionView, error)
	Submit(ctx context.Context, sessionID, name, email string) (*SubmitResult, error)
}

// SessionView is the customer-facing projection of a session: the selection,
// the pre-filtered providers for the current service, the cart and its
// derived totals, and any live notice.
type SessionView struct {
	SessionID string                `json:"sessionId"`
	State     models.SelectionState `json:"state"`
	Selection models.Selection      `json:"selection"`
	Providers []models.Provider     `json:"providers,omitempty"`
	Cart      models.Cart           `json:"cart"`
	Totals    models.CartTotals     `json:"totals"`
	Notice    *models.Notice        `json:"notice,omitempty"`
}

// DefaultBookingSessionService implements BookingSessionService.
type DefaultBookingSessionService struct {
	Store    SessionStore
	Catalog  Catalog
	Notifier notification.NotificationService

	now func() time.Time
}

// NewDefaultBookingSessionService wires the session service.
func NewDefaultBookingSessionService(store SessionStore, cat Catalog, notifier notification.NotificationService) *DefaultBookingSessionService {
	return &DefaultBookingSessionService{
		Store:    store,
		Catalog:  cat,
		Notifier: notifier,
		now:      time.Now,
	}
}
