package handlers

import (
	"net/http"

	"stayfront/services/popular"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// PopularHandler serves the cached home-page destination feed.
type PopularHandler struct {
	Svc    popular.Service
	Logger *zap.Logger
}

func NewPopularHandler(svc popular.Service, logger *zap.Logger) *PopularHandler {
	return &PopularHandler{Svc: svc, Logger: logger}
}

func (h *PopularHandler) GetPopular(c *gin.Context) {
	feed, err := h.Svc.Get(c.Request.Context())
	if err != nil {
		h.Logger.Warn("popular feed read failed", zap.Error(err))
		c.JSON(http.StatusOK, gin.H{"destinations": []any{}})
		return
	}
	c.JSON(http.StatusOK, gin.H{"destinations": feed})
}
