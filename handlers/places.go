package handlers

import (
	"net/http"
	"strings"

	"stayfront/services/supplier"
	"stayfront/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// PlacesHandler proxies the supplier's destination autocomplete.
type PlacesHandler struct {
	Supplier supplier.API
	Logger   *zap.Logger
}

func NewPlacesHandler(sup supplier.API, logger *zap.Logger) *PlacesHandler {
	return &PlacesHandler{Supplier: sup, Logger: logger}
}

func (h *PlacesHandler) Autocomplete(c *gin.Context) {
	query := strings.TrimSpace(c.Query("q"))
	if len(query) < 2 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Query must be at least 2 characters."})
		return
	}

	places, err := h.Supplier.SearchPlaces(c.Request.Context(), query)
	if err != nil {
		h.Logger.Error("place autocomplete failed", zap.String("query", query), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Autocomplete failed", "Please try again later.")
		return
	}
	c.JSON(http.StatusOK, gin.H{"places": places})
}
