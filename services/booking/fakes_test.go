package booking

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/igorshiota/booking-app/models"
)

// memorySessionStore round-trips sessions through JSON so tests exercise
// the same serialization path as the redis store.
type memorySessionStore struct {
	sessions map[string][]byte
}

func newMemorySessionStore() *memorySessionStore {
	return &memorySessionStore{sessions: make(map[string][]byte)}
}

func (m *memorySessionStore) Get(ctx context.Context, sessionID string) (*models.BookingSession, error) {
	data, ok := m.sessions[sessionID]
	if !ok {
		return nil, ErrSessionNotFound
	}
	var sess models.BookingSession
	if err := json.Unmarshal(data, &sess); err != nil {
		return nil, err
	}
	return &sess, nil
}

func (m *memorySessionStore) Save(ctx context.Context, sess *models.BookingSession) error {
	data, err := json.Marshal(sess)
	if err != nil {
		return err
	}
	m.sessions[sess.SessionID] = data
	return nil
}

func (m *memorySessionStore) Delete(ctx context.Context, sessionID string) error {
	delete(m.sessions, sessionID)
	return nil
}

type fakeCatalog struct {
	categories   []models.Category
	services     map[string]models.Service
	providers    map[string][]models.Provider
	categoryErr  error
	providersErr error
}

func (f *fakeCatalog) ListCategories(ctx context.Context) ([]models.Category, error) {
	if f.categoryErr != nil {
		return nil, f.categoryErr
	}
	return f.categories, nil
}

func (f *fakeCatalog) ServiceByID(ctx context.Context, id string) (*models.Service, error) {
	svc, ok := f.services[id]
	if !ok {
		return nil, fmt.Errorf("service %s not found", id)
	}
	return &svc, nil
}

func (f *fakeCatalog) ProvidersForService(ctx context.Context, serviceID string) ([]models.Provider, error) {
	if f.providersErr != nil {
		return nil, f.providersErr
	}
	return f.providers[serviceID], nil
}

type fakeNotifier struct {
	sent []models.BookingEmail
	err  error
}

func (f *fakeNotifier) SendBookingEmail(ctx context.Context, email models.BookingEmail) error {
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, email)
	return nil
}

// Shared fixtures matching the storefront's demo catalog.

func haircutService() models.Service {
	return models.Service{
		ID:          "svc-haircut",
		Name:        "Haircut",
		Description: "Classic cut and style",
		Price:       30,
		Duration:    45,
		CategoryID:  "cat1",
		StaffIDs:    []string{"prov-john"},
	}
}

func shaveService() models.Service {
	return models.Service{
		ID:         "svc-shave",
		Name:       "Hot Shave",
		Price:      20,
		Duration:   30,
		CategoryID: "cat1",
		StaffIDs:   []string{"prov-mary"},
	}
}

func johnProvider() models.Provider {
	return models.Provider{
		ID:             "prov-john",
		Name:           "John",
		AvailableTimes: []string{"10:00 AM", "11:00 AM"},
		ServiceIDs:     []string{"svc-haircut"},
	}
}

func maryProvider() models.Provider {
	return models.Provider{
		ID:             "prov-mary",
		Name:           "Mary",
		AvailableTimes: []string{"2:00 PM"},
		ServiceIDs:     []string{"svc-shave"},
	}
}

func testCatalog() *fakeCatalog {
	return &fakeCatalog{
		categories: []models.Category{{ID: "cat1", Name: "Hair"}},
		services: map[string]models.Service{
			"svc-haircut": haircutService(),
			"svc-shave":   shaveService(),
		},
		providers: map[string][]models.Provider{
			"svc-haircut": {johnProvider()},
			"svc-shave":   {maryProvider()},
		},
	}
}

func newTestService(cat Catalog, notifier *fakeNotifier) (*DefaultBookingSessionService, *memorySessionStore) {
	store := newMemorySessionStore()
	svc := NewDefaultBookingSessionService(store, cat, notifier)
	return svc, store
}
