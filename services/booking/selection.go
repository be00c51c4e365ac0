package booking

import (
	"time"

	"github.com/igorshiota/booking-app/models"
)

// duplicateNoticeTTL is how long the duplicate-cart notice stays visible
// before it auto-dismisses.
const duplicateNoticeTTL = 2000 * time.Millisecond

// applyCategory sets the active category filter and resets the selection to
// idle. Changing category cascade-clears service, provider and time.
func applyCategory(sess *models.BookingSession, categoryID string) {
	sess.Selection = models.Selection{CategoryID: categoryID}
}

// toggleService selects the service, or deselects it if it is already the
// chosen one. Either way provider and time are cleared.
func toggleService(sess *models.BookingSession, svc models.Service) {
	if sess.Selection.Service != nil && sess.Selection.Service.ID == svc.ID {
		sess.Selection = models.Selection{CategoryID: sess.Selection.CategoryID}
		return
	}
	sess.Selection = models.Selection{
		CategoryID: sess.Selection.CategoryID,
		Service:    &svc,
	}
}

// chooseProvider picks a provider from the pre-filtered set for the chosen
// service. A provider outside that set is a contract violation.
func chooseProvider(sess *models.BookingSession, providerID string) error {
	if sess.Selection.State() == models.StateIdle {
		return &InvalidSelectionError{Reason: "no service chosen"}
	}
	for _, p := range sess.CurrentProviders() {
		if p.ID == providerID {
			prov := p
			sess.Selection.Provider = &prov
			sess.Selection.Time = ""
			return nil
		}
	}
	return &InvalidSelectionError{Reason: "provider not offered for the chosen service"}
}

// chooseTime picks one of the chosen provider's slot labels.
func chooseTime(sess *models.BookingSession, slot string) error {
	state := sess.Selection.State()
	if state != models.StateProviderChosen && state != models.StateTimeChosen {
		return &InvalidSelectionError{Reason: "no provider chosen"}
	}
	if !sess.Selection.Provider.HasTimeSlot(slot) {
		return &InvalidSelectionError{Reason: "time slot not offered by the chosen provider"}
	}
	sess.Selection.Time = slot
	return nil
}

// confirmAddToCart hands the completed triple to the cart ledger. The
// selection resets to idle whether the cart accepts or rejects; a rejection
// additionally attaches the auto-dismissing duplicate notice.
func confirmAddToCart(sess *models.BookingSession, now time.Time) (models.CartItem, error) {
	if sess.Selection.State() != models.StateTimeChosen {
		return models.CartItem{}, &InvalidSelectionError{Reason: "selection is not complete"}
	}

	svc := *sess.Selection.Service
	prov := *sess.Selection.Provider
	slot := sess.Selection.Time

	sess.Selection = models.Selection{CategoryID: sess.Selection.CategoryID}

	item, err := tryAdd(&sess.Cart, svc, prov, slot)
	if err != nil {
		sess.Notice = &models.Notice{
			Message:   ErrDuplicateCartEntry.Message,
			ExpiresAt: now.Add(duplicateNoticeTTL),
		}
		return models.CartItem{}, err
	}
	return item, nil
}

// pruneNotice drops an expired notice. Returns true if anything changed.
func pruneNotice(sess *models.BookingSession, now time.Time) bool {
	if sess.Notice != nil && sess.Notice.Expired(now) {
		sess.Notice = nil
		return true
	}
	return false
}

// mergeProviders records a fetched provider set under its service id. The
// map is merged per key so a late response for a deselected service never
// clobbers the entry for the current one.
func mergeProviders(sess *models.BookingSession, serviceID string, providers []models.Provider) {
	if sess.Providers == nil {
		sess.Providers = make(map[string][]models.Provider)
	}
	sess.Providers[serviceID] = providers
}
