package models

import "time"

// SelectionState identifies how far the in-progress selection has advanced.
type SelectionState string

const (
	StateIdle           SelectionState = "idle"
	StateServiceChosen  SelectionState = "serviceChosen"
	StateProviderChosen SelectionState = "providerChosen"
	StateTimeChosen     SelectionState = "timeChosen"
)

// Selection is the customer's in-progress, not-yet-committed choice.
// Provider is set only if Service is set; Time only if Provider is set.
type Selection struct {
	CategoryID string    `json:"categoryId,omitempty"`
	Service    *Service  `json:"service,omitempty"`
	Provider   *Provider `json:"provider,omitempty"`
	Time       string    `json:"time,omitempty"`
}

// State derives the current state from which fields are populated.
func (s Selection) State() SelectionState {
	switch {
	case s.Service == nil:
		return StateIdle
	case s.Provider == nil:
		return StateServiceChosen
	case s.Time == "":
		return StateProviderChosen
	default:
		return StateTimeChosen
	}
}

// Notice is a transient, auto-dismissing message attached to the session,
// such as the duplicate-cart warning.
type Notice struct {
	Message   string    `json:"message"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// Expired reports whether the notice should no longer be shown.
func (n Notice) Expired(now time.Time) bool {
	return now.After(n.ExpiresAt)
}

// BookingSession holds one customer's selection and cart between requests.
// Providers caches fetched providers keyed by service id; entries are merged
// in per service, never overwritten wholesale, so a late response for a
// since-deselected service cannot clobber the current one.
type BookingSession struct {
	SessionID  string                `json:"sessionId"`
	Selection  Selection             `json:"selection"`
	Cart       Cart                  `json:"cart"`
	Providers  map[string][]Provider `json:"providers,omitempty"`
	Notice     *Notice               `json:"notice,omitempty"`
	Submitting bool                  `json:"submitting,omitempty"`
}

// CurrentProviders returns the pre-filtered providers for the currently
// selected service, or nil when no service is chosen.
func (bs *BookingSession) CurrentProviders() []Provider {
	if bs.Selection.Service == nil {
		return nil
	}
	return bs.Providers[bs.Selection.Service.ID]
}
