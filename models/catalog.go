package models

// Category groups services on the storefront. Created by admin action and
// read-only to the customer flow.
type Category struct {
	ID   string `bson:"id" json:"id"`
	Name string `bson:"name" json:"name"`
}

// Service is a bookable offering. Price and duration are stored numerically;
// admin forms may submit them as text, so creation coerces before persisting.
type Service struct {
	ID          string   `bson:"id" json:"id"`
	Name        string   `bson:"name" json:"name"`
	Description string   `bson:"description" json:"description"`
	Price       float64  `bson:"price" json:"price"`       // non-negative
	Duration    int      `bson:"duration" json:"duration"` // minutes
	CategoryID  string   `bson:"categoryId" json:"categoryId"`
	StaffIDs    []string `bson:"staff" json:"staff"` // assigned provider ids
}

// Provider is a staff member who performs services. AvailableTimes is a flat
// list of opaque slot labels; no date modeling and no per-slot capacity.
type Provider struct {
	ID             string   `bson:"id" json:"id"`
	Name           string   `bson:"name" json:"name"`
	AvailableTimes []string `bson:"availableTimes" json:"availableTimes"`
	ServiceIDs     []string `bson:"serviceIds" json:"serviceIds"`
}

// OffersService reports whether the provider is assigned to the given service.
func (p Provider) OffersService(serviceID string) bool {
	for _, id := range p.ServiceIDs {
		if id == serviceID {
			return true
		}
	}
	return false
}

// HasTimeSlot reports whether the label is one of the provider's offered slots.
func (p Provider) HasTimeSlot(slot string) bool {
	for _, t := range p.AvailableTimes {
		if t == slot {
			return true
		}
	}
	return false
}
