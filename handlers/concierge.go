package handlers

import (
	"net/http"

	"stayfront/models"
	"stayfront/services/concierge"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ConciergeHandler serves the AI chat endpoint.
type ConciergeHandler struct {
	Svc    concierge.Service
	Logger *zap.Logger
}

func NewConciergeHandler(svc concierge.Service, logger *zap.Logger) *ConciergeHandler {
	return &ConciergeHandler{Svc: svc, Logger: logger}
}

func (h *ConciergeHandler) Chat(c *gin.Context) {
	var req models.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}
	if len(req.Messages) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "At least one message is required."})
		return
	}

	reply, err := h.Svc.Chat(c.Request.Context(), req)
	if err != nil {
		h.Logger.Error("concierge chat failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "The concierge is unavailable right now. Please try again."})
		return
	}
	c.JSON(http.StatusOK, reply)
}
