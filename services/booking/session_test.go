package booking

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/igorshiota/booking-app/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStartSessionDefaultsToFirstCategory(t *testing.T) {
	svc, _ := newTestService(testCatalog(), &fakeNotifier{})

	view, err := svc.StartSession(context.Background())
	require.NoError(t, err)

	assert.NotEmpty(t, view.SessionID)
	assert.Equal(t, "cat1", view.Selection.CategoryID)
	assert.Equal(t, models.StateIdle, view.State)
}

func TestStartSessionSurvivesCategoryFetchFailure(t *testing.T) {
	cat := testCatalog()
	cat.categoryErr = errors.New("mongo down")
	svc, _ := newTestService(cat, &fakeNotifier{})

	view, err := svc.StartSession(context.Background())
	require.NoError(t, err)
	assert.Empty(t, view.Selection.CategoryID)
}

func TestGetSessionUnknownID(t *testing.T) {
	svc, _ := newTestService(testCatalog(), &fakeNotifier{})

	_, err := svc.GetSession(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestEndToEndSelectionFlow(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(testCatalog(), &fakeNotifier{})

	view, err := svc.StartSession(ctx)
	require.NoError(t, err)
	id := view.SessionID

	view, err = svc.ChooseCategory(ctx, id, "cat1")
	require.NoError(t, err)
	assert.Equal(t, models.StateIdle, view.State)

	view, err = svc.ToggleService(ctx, id, "svc-haircut")
	require.NoError(t, err)
	assert.Equal(t, models.StateServiceChosen, view.State)
	require.Len(t, view.Providers, 1)
	assert.Equal(t, "John", view.Providers[0].Name)

	view, err = svc.ChooseProvider(ctx, id, "prov-john")
	require.NoError(t, err)
	assert.Equal(t, models.StateProviderChosen, view.State)

	view, err = svc.ChooseTime(ctx, id, "10:00 AM")
	require.NoError(t, err)
	assert.Equal(t, models.StateTimeChosen, view.State)

	view, err = svc.ConfirmAddToCart(ctx, id)
	require.NoError(t, err)
	require.Len(t, view.Cart.Items, 1)

	item := view.Cart.Items[0]
	assert.Equal(t, "Haircut", item.Name)
	assert.Equal(t, "John", item.Provider.Name)
	assert.Equal(t, "10:00 AM", item.TimeSlot)
	assert.Equal(t, 30.0, item.Price)
	assert.Equal(t, 45, item.Duration)
	assert.Equal(t, models.StateIdle, view.State)
	assert.Equal(t, 30.0, view.Totals.TotalPrice)
	assert.Equal(t, 45, view.Totals.TotalDuration)

	// An identical second flow must be rejected as a duplicate, leaving the
	// cart length unchanged.
	_, err = svc.ToggleService(ctx, id, "svc-haircut")
	require.NoError(t, err)
	_, err = svc.ChooseProvider(ctx, id, "prov-john")
	require.NoError(t, err)
	_, err = svc.ChooseTime(ctx, id, "10:00 AM")
	require.NoError(t, err)

	view, err = svc.ConfirmAddToCart(ctx, id)
	assert.ErrorIs(t, err, ErrDuplicateCartEntry)
	require.NotNil(t, view)
	assert.Len(t, view.Cart.Items, 1)
	require.NotNil(t, view.Notice)
	assert.Equal(t, ErrDuplicateCartEntry.Message, view.Notice.Message)
	assert.Equal(t, models.StateIdle, view.State)
}

func TestToggleUnknownServiceIsInvalidSelection(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(testCatalog(), &fakeNotifier{})

	view, err := svc.StartSession(ctx)
	require.NoError(t, err)

	_, err = svc.ToggleService(ctx, view.SessionID, "svc-nope")
	var invalid *InvalidSelectionError
	assert.ErrorAs(t, err, &invalid)
}

func TestProviderFetchFailureLeavesEmptyState(t *testing.T) {
	ctx := context.Background()
	cat := testCatalog()
	cat.providersErr = errors.New("mongo down")
	svc, _ := newTestService(cat, &fakeNotifier{})

	view, err := svc.StartSession(ctx)
	require.NoError(t, err)

	view, err = svc.ToggleService(ctx, view.SessionID, "svc-haircut")
	require.NoError(t, err)
	assert.Empty(t, view.Providers)
}

func TestStaleProviderResponseMergesWithoutClobbering(t *testing.T) {
	ctx := context.Background()
	svc, store := newTestService(testCatalog(), &fakeNotifier{})

	view, err := svc.StartSession(ctx)
	require.NoError(t, err)
	id := view.SessionID

	// Select haircut, then switch to shave.
	_, err = svc.ToggleService(ctx, id, "svc-haircut")
	require.NoError(t, err)
	view, err = svc.ToggleService(ctx, id, "svc-shave")
	require.NoError(t, err)

	// The visible provider set is keyed off the current selection.
	require.Len(t, view.Providers, 1)
	assert.Equal(t, "Mary", view.Providers[0].Name)

	// A late-arriving response for the deselected haircut service merges
	// into its own key and leaves the current entry alone.
	sess, err := store.Get(ctx, id)
	require.NoError(t, err)
	mergeProviders(sess, "svc-haircut", []models.Provider{johnProvider()})
	require.NoError(t, store.Save(ctx, sess))

	view, err = svc.GetSession(ctx, id)
	require.NoError(t, err)
	require.Len(t, view.Providers, 1)
	assert.Equal(t, "Mary", view.Providers[0].Name)

	sess, err = store.Get(ctx, id)
	require.NoError(t, err)
	assert.Len(t, sess.Providers["svc-haircut"], 1)
	assert.Len(t, sess.Providers["svc-shave"], 1)
}

func TestGetSessionClearsExpiredNotice(t *testing.T) {
	ctx := context.Background()
	svc, store := newTestService(testCatalog(), &fakeNotifier{})

	base := time.Now()
	svc.now = func() time.Time { return base }

	view, err := svc.StartSession(ctx)
	require.NoError(t, err)
	id := view.SessionID

	sess, err := store.Get(ctx, id)
	require.NoError(t, err)
	sess.Notice = &models.Notice{Message: "dup", ExpiresAt: base.Add(duplicateNoticeTTL)}
	require.NoError(t, store.Save(ctx, sess))

	// Within the 2 s window the notice is still visible.
	view, err = svc.GetSession(ctx, id)
	require.NoError(t, err)
	assert.NotNil(t, view.Notice)

	// Past the deadline it is gone, and stays gone.
	svc.now = func() time.Time { return base.Add(3 * time.Second) }
	view, err = svc.GetSession(ctx, id)
	require.NoError(t, err)
	assert.Nil(t, view.Notice)

	sess, err = store.Get(ctx, id)
	require.NoError(t, err)
	assert.Nil(t, sess.Notice)
}
