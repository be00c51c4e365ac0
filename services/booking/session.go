package booking

import (
	"context"

	"github.com/igorshiota/booking-app/models"
	"github.com/igorshiota/booking-app/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// StartSession creates a new booking session, assigns it a unique SessionID
// and stores it. The first catalog category becomes the active filter, the
// same default the storefront applies; a failed category read just leaves
// the session with no filter.
func (s *DefaultBookingSessionService) StartSession(ctx context.Context) (*SessionView, error) {
	sess := &models.BookingSession{
		SessionID: uuid.New().String(),
	}

	categories, err := s.Catalog.ListCategories(ctx)
	if err != nil {
		utils.GetLogger().Warn("failed to load categories for new session", zap.Error(err))
	} else if len(categories) > 0 {
		sess.Selection.CategoryID = categories[0].ID
	}

	if err := s.Store.Save(ctx, sess); err != nil {
		return nil, err
	}
	return s.view(sess), nil
}

// GetSession returns the current session view, dropping any notice that has
// passed its auto-dismiss deadline.
func (s *DefaultBookingSessionService) GetSession(ctx context.Context, sessionID string) (*SessionView, error) {
	sess, err := s.Store.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if pruneNotice(sess, s.now()) {
		if err := s.Store.Save(ctx, sess); err != nil {
			return nil, err
		}
	}
	return s.view(sess), nil
}

// ChooseCategory sets the active category filter. Valid from any state;
// cascade-clears service, provider and time.
func (s *DefaultBookingSessionService) ChooseCategory(ctx context.Context, sessionID, categoryID string) (*SessionView, error) {
	sess, err := s.Store.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	applyCategory(sess, categoryID)
	if err := s.Store.Save(ctx, sess); err != nil {
		return nil, err
	}
	return s.view(sess), nil
}

// ToggleService selects a service (or deselects the current one) and merges
// the pre-filtered provider set for it into the session's provider cache.
func (s *DefaultBookingSessionService) ToggleService(ctx context.Context, sessionID, serviceID string) (*SessionView, error) {
	sess, err := s.Store.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	svc, err := s.Catalog.ServiceByID(ctx, serviceID)
	if err != nil {
		return nil, &InvalidSelectionError{Reason: "unknown service"}
	}

	toggleService(sess, *svc)

	if sess.Selection.Service != nil {
		providers, err := s.Catalog.ProvidersForService(ctx, serviceID)
		if err != nil {
			// Empty-state on fetch failure; the customer just sees no
			// providers for this service.
			utils.GetLogger().Warn("failed to load providers for service",
				zap.String("serviceId", serviceID), zap.Error(err))
		} else {
			mergeProviders(sess, serviceID, providers)
		}
	}

	if err := s.Store.Save(ctx, sess); err != nil {
		return nil, err
	}
	return s.view(sess), nil
}

// ChooseProvider picks a provider from the pre-filtered set.
func (s *DefaultBookingSessionService) ChooseProvider(ctx context.Context, sessionID, providerID string) (*SessionView, error) {
	sess, err := s.Store.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if err := chooseProvider(sess, providerID); err != nil {
		return nil, err
	}
	if err := s.Store.Save(ctx, sess); err != nil {
		return nil, err
	}
	return s.view(sess), nil
}

// ChooseTime picks one of the chosen provider's slot labels.
func (s *DefaultBookingSessionService) ChooseTime(ctx context.Context, sessionID, slot string) (*SessionView, error) {
	sess, err := s.Store.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if err := chooseTime(sess, slot); err != nil {
		return nil, err
	}
	if err := s.Store.Save(ctx, sess); err != nil {
		return nil, err
	}
	return s.view(sess), nil
}

// ConfirmAddToCart hands the completed triple to the cart ledger. The
// session is persisted whether the add was accepted or rejected, since the
// selection resets either way; a duplicate is reported alongside the saved
// view so the caller can surface the notice.
func (s *DefaultBookingSessionService) ConfirmAddToCart(ctx context.Context, sessionID string) (*SessionView, error) {
	sess, err := s.Store.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	_, addErr := confirmAddToCart(sess, s.now())
	if _, invalid := addErr.(*InvalidSelectionError); invalid {
		return nil, addErr
	}

	if err := s.Store.Save(ctx, sess); err != nil {
		return nil, err
	}
	return s.view(sess), addErr
}

func (s *DefaultBookingSessionService) view(sess *models.BookingSession) *SessionView {
	return &SessionView{
		SessionID: sess.SessionID,
		State:     sess.Selection.State(),
		Selection: sess.Selection,
		Providers: sess.CurrentProviders(),
		Cart:      sess.Cart,
		Totals:    cartTotals(sess.Cart),
		Notice:    sess.Notice,
	}
}
