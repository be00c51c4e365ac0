package booking

import (
	"math"
	"testing"

	"github.com/igorshiota/booking-app/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTryAddRejectsDuplicateTriple(t *testing.T) {
	cart := &models.Cart{}
	_, err := tryAdd(cart, haircutService(), johnProvider(), "10:00 AM")
	require.NoError(t, err)

	_, err = tryAdd(cart, haircutService(), johnProvider(), "10:00 AM")
	assert.ErrorIs(t, err, ErrDuplicateCartEntry)
	assert.Len(t, cart.Items, 1)
}

func TestTryAddAcceptsDifferingTriples(t *testing.T) {
	cart := &models.Cart{}
	_, err := tryAdd(cart, haircutService(), johnProvider(), "10:00 AM")
	require.NoError(t, err)

	// Same service and provider, different slot.
	_, err = tryAdd(cart, haircutService(), johnProvider(), "11:00 AM")
	require.NoError(t, err)

	// Different service altogether.
	_, err = tryAdd(cart, shaveService(), maryProvider(), "2:00 PM")
	require.NoError(t, err)

	assert.Len(t, cart.Items, 3)
}

func TestTryAddFreezesServiceSnapshot(t *testing.T) {
	cart := &models.Cart{}
	svc := haircutService()
	item, err := tryAdd(cart, svc, johnProvider(), "10:00 AM")
	require.NoError(t, err)

	assert.Equal(t, "Haircut", item.Name)
	assert.Equal(t, 30.0, item.Price)
	assert.Equal(t, 45, item.Duration)
	assert.Equal(t, "John", item.Provider.Name)
	assert.Equal(t, "10:00 AM", item.TimeSlot)
}

func TestCartTotals(t *testing.T) {
	cart := models.Cart{Items: []models.CartItem{
		{Price: 30, Duration: 45},
		{Price: 20, Duration: 30},
	}}

	totals := cartTotals(cart)
	assert.Equal(t, 50.0, totals.TotalPrice)
	assert.Equal(t, 75, totals.TotalDuration)
}

func TestCartTotalsNonNumericTolerance(t *testing.T) {
	// A NaN price is what a non-numeric upstream value decodes to; it must
	// contribute 0 instead of poisoning the sum.
	cart := models.Cart{Items: []models.CartItem{
		{Price: math.NaN(), Duration: 30},
		{Price: 25, Duration: 15},
	}}

	totals := cartTotals(cart)
	assert.Equal(t, 25.0, totals.TotalPrice)
	assert.Equal(t, 45, totals.TotalDuration)
}

func TestCartTotalsEmptyCart(t *testing.T) {
	totals := cartTotals(models.Cart{})
	assert.Equal(t, 0.0, totals.TotalPrice)
	assert.Equal(t, 0, totals.TotalDuration)
}
