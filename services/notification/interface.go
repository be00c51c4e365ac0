package notification

import (
	"context"

	"github.com/igorshiota/booking-app/models"
)

// NotificationService defines the outbound booking-confirmation send. The
// call is opaque to callers: it either succeeds or fails, with no finer
// error taxonomy.
type NotificationService interface {
	SendBookingEmail(ctx context.Context, email models.BookingEmail) error
}
