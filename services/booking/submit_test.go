package booking

import (
	"context"
	"errors"
	"testing"

	"github.com/igorshiota/booking-app/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// seedCartSession stores a session whose cart already holds one haircut.
func seedCartSession(t *testing.T, store *memorySessionStore) string {
	t.Helper()
	sess := &models.BookingSession{
		SessionID: "sess-cart",
		Cart: models.Cart{Items: []models.CartItem{
			models.NewCartItem(haircutService(), johnProvider(), "10:00 AM"),
		}},
	}
	require.NoError(t, store.Save(context.Background(), sess))
	return sess.SessionID
}

func TestSubmitMissingContactInfo(t *testing.T) {
	ctx := context.Background()
	notifier := &fakeNotifier{}
	svc, store := newTestService(testCatalog(), notifier)
	id := seedCartSession(t, store)

	_, err := svc.Submit(ctx, id, "", "a@b.com")
	assert.ErrorIs(t, err, ErrMissingContactInfo)

	_, err = svc.Submit(ctx, id, "Ann", "")
	assert.ErrorIs(t, err, ErrMissingContactInfo)

	// No outbound call was made for either attempt.
	assert.Empty(t, notifier.sent)
}

func TestSubmitEmptyCart(t *testing.T) {
	ctx := context.Background()
	notifier := &fakeNotifier{}
	svc, _ := newTestService(testCatalog(), notifier)

	view, err := svc.StartSession(ctx)
	require.NoError(t, err)

	_, err = svc.Submit(ctx, view.SessionID, "Ann", "a@b.com")
	assert.ErrorIs(t, err, ErrEmptyCart)
	assert.Empty(t, notifier.sent)
}

func TestSubmitSuccess(t *testing.T) {
	ctx := context.Background()
	notifier := &fakeNotifier{}
	svc, store := newTestService(testCatalog(), notifier)
	id := seedCartSession(t, store)

	result, err := svc.Submit(ctx, id, "Ann", "a@b.com")
	require.NoError(t, err)

	assert.Equal(t, SubmitAccepted, result.Status)
	assert.Equal(t, bookingConfirmedMessage, result.Message)

	require.Len(t, notifier.sent, 1)
	email := notifier.sent[0]
	assert.Equal(t, "Ann", email.UserName)
	assert.Equal(t, "a@b.com", email.UserEmail)
	require.Len(t, email.Orders, 1)
	assert.Equal(t, "Haircut with John at 10:00 AM — $30", email.Orders[0])
	assert.Equal(t, 45, email.TotalDuration)
	assert.Equal(t, 30.0, email.CostTotal)

	// Booking confirmation does not empty the cart.
	sess, err := store.Get(ctx, id)
	require.NoError(t, err)
	assert.Len(t, sess.Cart.Items, 1)
	assert.False(t, sess.Submitting)
}

func TestSubmitFailureIsDiscriminatedResult(t *testing.T) {
	ctx := context.Background()
	notifier := &fakeNotifier{err: errors.New("emailjs unreachable")}
	svc, store := newTestService(testCatalog(), notifier)
	id := seedCartSession(t, store)

	result, err := svc.Submit(ctx, id, "Ann", "a@b.com")
	require.NoError(t, err)

	assert.Equal(t, SubmitFailed, result.Status)
	assert.Equal(t, bookingFailedMessage, result.Message)
	assert.NotEqual(t, bookingConfirmedMessage, result.Message)

	// Cart untouched, session usable for a retry.
	sess, err := store.Get(ctx, id)
	require.NoError(t, err)
	assert.Len(t, sess.Cart.Items, 1)
	assert.False(t, sess.Submitting)
}

func TestSubmitRefusedWhileInFlight(t *testing.T) {
	ctx := context.Background()
	notifier := &fakeNotifier{}
	svc, store := newTestService(testCatalog(), notifier)
	id := seedCartSession(t, store)

	sess, err := store.Get(ctx, id)
	require.NoError(t, err)
	sess.Submitting = true
	require.NoError(t, store.Save(ctx, sess))

	_, err = svc.Submit(ctx, id, "Ann", "a@b.com")
	assert.ErrorIs(t, err, ErrSubmissionInFlight)
	assert.Empty(t, notifier.sent)
}

func TestOrderLineFormatting(t *testing.T) {
	item := models.NewCartItem(haircutService(), johnProvider(), "10:00 AM")
	assert.Equal(t, "Haircut with John at 10:00 AM — $30", orderLine(item))

	item.Price = 37.5
	assert.Equal(t, "Haircut with John at 10:00 AM — $37.5", orderLine(item))
}
