package notification

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/igorshiota/booking-app/config"
	"github.com/igorshiota/booking-app/models"
)

// EmailJSNotificationService sends booking confirmations through the
// EmailJS REST API, rendering the same template the storefront uses.
type EmailJSNotificationService struct {
	ServiceID  string
	TemplateID string
	PublicKey  string
	Endpoint   string
	HTTPClient *http.Client
}

// NewEmailJSNotificationService builds a sender from the loaded config.
func NewEmailJSNotificationService(cfg config.Config) (*EmailJSNotificationService, error) {
	if cfg.EmailJSServiceID == "" || cfg.EmailJSTemplateID == "" || cfg.EmailJSPublicKey == "" {
		return nil, fmt.Errorf("emailjs configuration is incomplete")
	}
	return &EmailJSNotificationService{
		ServiceID:  cfg.EmailJSServiceID,
		TemplateID: cfg.EmailJSTemplateID,
		PublicKey:  cfg.EmailJSPublicKey,
		Endpoint:   cfg.EmailJSEndpoint,
		HTTPClient: &http.Client{Timeout: 10 * time.Second},
	}, nil
}

type emailJSRequest struct {
	ServiceID      string         `json:"service_id"`
	TemplateID     string         `json:"template_id"`
	UserID         string         `json:"user_id"`
	TemplateParams map[string]any `json:"template_params"`
}

// SendBookingEmail posts the templated payload. The template expects the
// order lines as a single newline-joined string.
func (s *EmailJSNotificationService) SendBookingEmail(ctx context.Context, email models.BookingEmail) error {
	payload := emailJSRequest{
		ServiceID:  s.ServiceID,
		TemplateID: s.TemplateID,
		UserID:     s.PublicKey,
		TemplateParams: map[string]any{
			"user_name":      email.UserName,
			"user_email":     email.UserEmail,
			"orders":         strings.Join(email.Orders, "\n"),
			"total_duration": email.TotalDuration,
			"cost_total":     email.CostTotal,
		},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal email payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.Endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to build email request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.HTTPClient.Do(req)
	if err != nil {
		return fmt.Errorf("email send failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("email send failed: emailjs returned status %d", resp.StatusCode)
	}
	return nil
}
