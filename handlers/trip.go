package handlers

import (
	"errors"
	"net/http"

	"stayfront/services/supplier"
	"stayfront/services/trip"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// TripHandler serves booking lookup and cancellation.
type TripHandler struct {
	Svc    trip.Service
	Logger *zap.Logger
}

func NewTripHandler(svc trip.Service, logger *zap.Logger) *TripHandler {
	return &TripHandler{Svc: svc, Logger: logger}
}

// GetBooking looks a reservation up by id and last name. A last-name
// mismatch is reported exactly like an unknown id.
func (h *TripHandler) GetBooking(c *gin.Context) {
	bookingID := c.Param("id")
	lastName := c.Query("lastName")
	if lastName == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Last name is required."})
		return
	}

	record, err := h.Svc.Lookup(c.Request.Context(), bookingID, lastName)
	if err != nil {
		h.renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, record)
}

// CancelBooking cancels an eligible reservation.
func (h *TripHandler) CancelBooking(c *gin.Context) {
	bookingID := c.Param("id")
	var body struct {
		LastName string `json:"lastName" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Last name is required."})
		return
	}

	record, err := h.Svc.Cancel(c.Request.Context(), bookingID, body.LastName)
	if err != nil {
		h.renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, record)
}

func (h *TripHandler) renderError(c *gin.Context, err error) {
	if errors.Is(err, trip.ErrBookingNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Booking not found."})
		return
	}
	if errors.Is(err, trip.ErrNotCancellable) {
		c.JSON(http.StatusConflict, gin.H{"error": "This booking can no longer be cancelled."})
		return
	}

	var apiErr *supplier.APIError
	if errors.As(err, &apiErr) {
		status := apiErr.Status
		if status < 400 || status > 599 {
			status = http.StatusBadGateway
		}
		c.JSON(status, gin.H{"error": apiErr.UserMessage()})
		return
	}

	h.Logger.Error("booking lookup failed", zap.Error(err))
	c.JSON(http.StatusInternalServerError, gin.H{"error": "Something went wrong. Please try again."})
}
