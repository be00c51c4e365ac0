package models

// CartItem is a service snapshot merged with the chosen provider and time,
// frozen at the moment of insertion. Later admin edits to the service do not
// retroactively change cart items.
type CartItem struct {
	ServiceID   string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Price       float64  `json:"price"`
	Duration    int      `json:"duration"`
	CategoryID  string   `json:"categoryId"`
	Provider    Provider `json:"provider"`
	TimeSlot    string   `json:"timeSlot"`
}

// Cart is the ordered set of confirmed selections, insertion order preserved.
// No two items may share the same (service, provider, time slot) triple.
type Cart struct {
	Items []CartItem `json:"items"`
}

// CartTotals carries the cart's derived aggregates.
type CartTotals struct {
	TotalPrice    float64 `json:"totalPrice"`
	TotalDuration int     `json:"totalDuration"`
}

// NewCartItem freezes a service snapshot together with the chosen provider
// and time slot.
func NewCartItem(svc Service, prov Provider, slot string) CartItem {
	return CartItem{
		ServiceID:   svc.ID,
		Name:        svc.Name,
		Description: svc.Description,
		Price:       svc.Price,
		Duration:    svc.Duration,
		CategoryID:  svc.CategoryID,
		Provider:    prov,
		TimeSlot:    slot,
	}
}
