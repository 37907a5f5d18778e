package handlers

import (
	"net/http"

	"stayfront/models"
	"stayfront/services/search"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// SearchHandler serves the listing page search.
type SearchHandler struct {
	Svc    search.Service
	Logger *zap.Logger
}

func NewSearchHandler(svc search.Service, logger *zap.Logger) *SearchHandler {
	return &SearchHandler{Svc: svc, Logger: logger}
}

// Search runs a rate search. Upstream failures and empty availability
// both come back as 200 with an empty listing; only a malformed request
// body is an error.
func (h *SearchHandler) Search(c *gin.Context) {
	var req models.SearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Logger.Error("Invalid search request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}
	if req.Query.PlaceID == "" && len(req.Query.HotelIDs) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "A destination or hotel list is required."})
		return
	}

	c.JSON(http.StatusOK, h.Svc.Search(c.Request.Context(), req))
}
