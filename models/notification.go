package models

// BookingEmail is the rendered payload handed to the notification service.
// Field names mirror the email template parameters.
type BookingEmail struct {
	UserName      string   `json:"user_name"`
	UserEmail     string   `json:"user_email"`
	Orders        []string `json:"orders"`
	TotalDuration int      `json:"total_duration"`
	CostTotal     float64  `json:"cost_total"`
}
