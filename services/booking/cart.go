package booking

import (
	"github.com/igorshiota/booking-app/models"
	"github.com/igorshiota/booking-app/utils"
)

// tryAdd applies the cart-consistency rule: no two items may share the same
// (service, provider, time slot) triple. On a duplicate the cart is left
// untouched; otherwise the frozen item is appended and returned.
func tryAdd(cart *models.Cart, svc models.Service, prov models.Provider, slot string) (models.CartItem, error) {
	for _, item := range cart.Items {
		if item.ServiceID == svc.ID && item.Provider.ID == prov.ID && item.TimeSlot == slot {
			return models.CartItem{}, ErrDuplicateCartEntry
		}
	}
	item := models.NewCartItem(svc, prov, slot)
	cart.Items = append(cart.Items, item)
	return item, nil
}

// cartTotals recomputes the aggregates in a single pass over the items.
// Non-numeric values that slipped into a snapshot contribute 0 rather than
// poisoning the sum.
func cartTotals(cart models.Cart) models.CartTotals {
	var totals models.CartTotals
	for _, item := range cart.Items {
		totals.TotalPrice += utils.CoerceFloat(item.Price)
		totals.TotalDuration += utils.CoerceInt(item.Duration)
	}
	return totals
}
