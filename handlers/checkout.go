package handlers

import (
	"errors"
	"net/http"

	"stayfront/models"
	"stayfront/services/checkout"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// CheckoutHandler exposes the two-step booking flow.
type CheckoutHandler struct {
	Svc    checkout.Service
	Logger *zap.Logger
}

func NewCheckoutHandler(svc checkout.Service, logger *zap.Logger) *CheckoutHandler {
	return &CheckoutHandler{Svc: svc, Logger: logger}
}

// CreateSession opens a checkout from a room selection.
func (h *CheckoutHandler) CreateSession(c *gin.Context) {
	var draft models.BookingDraft
	if err := c.ShouldBindJSON(&draft); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}

	session, err := h.Svc.Create(c.Request.Context(), draft)
	if err != nil {
		h.renderError(c, err)
		return
	}
	c.JSON(http.StatusCreated, session)
}

// GetSession returns the current checkout state.
func (h *CheckoutHandler) GetSession(c *gin.Context) {
	session, err := h.Svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, session)
}

// SubmitGuest validates the guest form and locks the rate. In sandbox
// the response already carries the confirmed booking.
func (h *CheckoutHandler) SubmitGuest(c *gin.Context) {
	var guest models.GuestDetails
	if err := c.ShouldBindJSON(&guest); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}

	result, err := h.Svc.SubmitGuest(c.Request.Context(), c.Param("id"), guest)
	if err != nil {
		h.renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// Back steps the flow from payment back to the guest form.
func (h *CheckoutHandler) Back(c *gin.Context) {
	session, err := h.Svc.Back(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, session)
}

// Confirm finalizes the booking after the embedded payment completed.
func (h *CheckoutHandler) Confirm(c *gin.Context) {
	booking, err := h.Svc.Confirm(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"booking": booking})
}

// renderError translates checkout failures for the frontend: field-level
// validation, mapped vendor messages, expired sessions, then a 500.
func (h *CheckoutHandler) renderError(c *gin.Context, err error) {
	var vErr *checkout.ValidationError
	if errors.As(err, &vErr) {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"field": vErr.Field, "error": vErr.Message})
		return
	}

	var fErr *checkout.FlowError
	if errors.As(err, &fErr) {
		c.JSON(fErr.Status, gin.H{"error": fErr.Message})
		return
	}

	if errors.Is(err, checkout.ErrSessionNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Checkout session not found or expired."})
		return
	}

	h.Logger.Error("checkout failed", zap.Error(err))
	c.JSON(http.StatusInternalServerError, gin.H{"error": "Something went wrong. Please try again."})
}
