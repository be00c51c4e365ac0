package handlers

import (
	"errors"
	"net/http"

	"github.com/igorshiota/booking-app/config"
	"github.com/igorshiota/booking-app/services/booking"
	"github.com/igorshiota/booking-app/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BookingHandler exposes the booking session endpoints.
type BookingHandler struct {
	Service booking.BookingSessionService
	Logger  *zap.Logger
}

// NewBookingHandler creates a new BookingHandler.
func NewBookingHandler(svc booking.BookingSessionService, logger *zap.Logger) *BookingHandler {
	return &BookingHandler{Service: svc, Logger: logger}
}

// sessionUpdateRequest carries exactly one state-machine action per call.
type sessionUpdateRequest struct {
	Category string `json:"category,omitempty"`
	Service  string `json:"service,omitempty"`
	Provider string `json:"provider,omitempty"`
	Time     string `json:"time,omitempty"`
}

// submitRequest carries the transient contact fields.
type submitRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// StartSession creates a new booking session.
func (h *BookingHandler) StartSession(c *gin.Context) {
	view, err := h.Service.StartSession(c.Request.Context())
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// GetSession returns the current session view.
func (h *BookingHandler) GetSession(c *gin.Context) {
	view, err := h.Service.GetSession(c.Request.Context(), c.Param("sessionID"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// UpdateSession applies one selection transition: category, service,
// provider or time.
func (h *BookingHandler) UpdateSession(c *gin.Context) {
	sessionID := c.Param("sessionID")
	var input sessionUpdateRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	ctx := c.Request.Context()
	var (
		view *booking.SessionView
		err  error
	)
	switch {
	case input.Category != "":
		view, err = h.Service.ChooseCategory(ctx, sessionID, input.Category)
	case input.Service != "":
		view, err = h.Service.ToggleService(ctx, sessionID, input.Service)
	case input.Provider != "":
		view, err = h.Service.ChooseProvider(ctx, sessionID, input.Provider)
	case input.Time != "":
		view, err = h.Service.ChooseTime(ctx, sessionID, input.Time)
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "no selection action provided"})
		return
	}
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// ConfirmAddToCart hands the completed selection to the cart. A duplicate
// returns 409 along with the saved view so the client can show the
// auto-dismissing notice.
func (h *BookingHandler) ConfirmAddToCart(c *gin.Context) {
	view, err := h.Service.ConfirmAddToCart(c.Request.Context(), c.Param("sessionID"))
	if errors.Is(err, booking.ErrDuplicateCartEntry) {
		c.JSON(http.StatusConflict, view)
		return
	}
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// Submit validates contact fields and forwards the cart to the notification
// service. The outcome is a discriminated result, not a string to sniff.
func (h *BookingHandler) Submit(c *gin.Context) {
	var input submitRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	result, err := h.Service.Submit(c.Request.Context(), c.Param("sessionID"), input.Name, input.Email)
	if err != nil {
		h.respondError(c, err)
		return
	}
	if result.Status == booking.SubmitFailed {
		c.JSON(http.StatusBadGateway, result)
		return
	}
	c.JSON(http.StatusOK, result)
}

// respondError maps booking errors onto HTTP statuses.
func (h *BookingHandler) respondError(c *gin.Context, err error) {
	var be *booking.Error
	if errors.As(err, &be) {
		status := http.StatusBadRequest
		switch be {
		case booking.ErrSessionNotFound:
			status = http.StatusNotFound
		case booking.ErrDuplicateCartEntry, booking.ErrSubmissionInFlight:
			status = http.StatusConflict
		}
		c.JSON(status, gin.H{"error": be.Message, "code": be.Code})
		return
	}

	var invalid *booking.InvalidSelectionError
	if errors.As(err, &invalid) {
		// Contract violation: loud while developing, quiet no-op in
		// production.
		if config.IsProduction() {
			h.Logger.Error("invalid selection", zap.Error(invalid))
			c.Status(http.StatusNoContent)
			return
		}
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": invalid.Error()})
		return
	}

	utils.JSONError(c, http.StatusInternalServerError, "Internal Server Error", err.Error())
}
