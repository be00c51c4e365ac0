package booking

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/igorshiota/booking-app/models"
	"github.com/igorshiota/booking-app/utils"

	"go.uber.org/zap"
)

// SubmitStatus discriminates the submission outcome. Callers branch on the
// status, never on the message text.
type SubmitStatus string

const (
	SubmitAccepted SubmitStatus = "accepted"
	SubmitFailed   SubmitStatus = "failed"
)

// SubmitResult carries the outcome of a submission attempt together with
// the message to surface.
type SubmitResult struct {
	Status  SubmitStatus `json:"status"`
	Message string       `json:"message"`
}

const (
	bookingConfirmedMessage = "Booking confirmed! Check your email."
	bookingFailedMessage    = "Something went wrong. Please try again."
)

// Submit validates the contact fields and forwards the rendered cart to the
// notification service, exactly once per call. A send failure is a normal
// Failed result, not an error: the cart and contact details remain intact
// for a retry. The cart is not cleared on success.
func (s *DefaultBookingSessionService) Submit(ctx context.Context, sessionID, name, email string) (*SubmitResult, error) {
	sess, err := s.Store.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	if strings.TrimSpace(name) == "" || strings.TrimSpace(email) == "" {
		return nil, ErrMissingContactInfo
	}
	if len(sess.Cart.Items) == 0 {
		return nil, ErrEmptyCart
	}
	if sess.Submitting {
		return nil, ErrSubmissionInFlight
	}

	sess.Submitting = true
	if err := s.Store.Save(ctx, sess); err != nil {
		return nil, err
	}

	sendErr := s.Notifier.SendBookingEmail(ctx, buildBookingEmail(name, email, sess.Cart))

	sess.Submitting = false
	if err := s.Store.Save(ctx, sess); err != nil {
		utils.GetLogger().Warn("failed to clear submission flag",
			zap.String("sessionId", sessionID), zap.Error(err))
	}

	if sendErr != nil {
		utils.GetLogger().Warn("booking email send failed",
			zap.String("sessionId", sessionID), zap.Error(sendErr))
		return &SubmitResult{Status: SubmitFailed, Message: bookingFailedMessage}, nil
	}
	return &SubmitResult{Status: SubmitAccepted, Message: bookingConfirmedMessage}, nil
}

// buildBookingEmail renders the cart into the email template payload.
func buildBookingEmail(name, email string, cart models.Cart) models.BookingEmail {
	totals := cartTotals(cart)
	orders := make([]string, 0, len(cart.Items))
	for _, item := range cart.Items {
		orders = append(orders, orderLine(item))
	}
	return models.BookingEmail{
		UserName:      name,
		UserEmail:     email,
		Orders:        orders,
		TotalDuration: totals.TotalDuration,
		CostTotal:     totals.TotalPrice,
	}
}

func orderLine(item models.CartItem) string {
	return fmt.Sprintf("%s with %s at %s — $%s",
		item.Name, item.Provider.Name, item.TimeSlot, formatPrice(item.Price))
}

func formatPrice(p float64) string {
	return strconv.FormatFloat(utils.CoerceFloat(p), 'f', -1, 64)
}
