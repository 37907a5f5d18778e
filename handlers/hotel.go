package handlers

import (
	"net/http"
	"strconv"

	"stayfront/models"
	"stayfront/services/hotel"
	"stayfront/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// HotelHandler serves the hotel detail page.
type HotelHandler struct {
	Svc    hotel.Service
	Logger *zap.Logger
}

func NewHotelHandler(svc hotel.Service, logger *zap.Logger) *HotelHandler {
	return &HotelHandler{Svc: svc, Logger: logger}
}

// queryFromParams builds the rate query from the detail page's URL params.
func queryFromParams(c *gin.Context) models.SearchQuery {
	adults, _ := strconv.Atoi(c.DefaultQuery("adults", "2"))
	if adults < 1 {
		adults = 1
	}
	occ := models.Occupancy{Adults: adults}
	if childAges := c.QueryArray("childAge"); len(childAges) > 0 {
		for _, a := range childAges {
			if age, err := strconv.Atoi(a); err == nil {
				occ.Children = append(occ.Children, age)
			}
		}
	}

	return models.SearchQuery{
		CheckIn:     c.Query("checkin"),
		CheckOut:    c.Query("checkout"),
		Currency:    c.Query("currency"),
		Occupancies: []models.Occupancy{occ},
	}
}

// GetHotel returns the merged detail view model.
func (h *HotelHandler) GetHotel(c *gin.Context) {
	hotelID := c.Param("id")
	if hotelID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Hotel id is required."})
		return
	}

	detail, err := h.Svc.Detail(c.Request.Context(), hotelID, queryFromParams(c))
	if err != nil {
		h.Logger.Error("hotel detail failed", zap.String("hotelId", hotelID), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to load hotel", "Please try again later.")
		return
	}
	c.JSON(http.StatusOK, detail)
}

// GetRates returns the bookable offers only. A failed fetch renders as
// an empty room list, matching the "no rooms available" UI state.
func (h *HotelHandler) GetRates(c *gin.Context) {
	hotelID := c.Param("id")
	if hotelID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Hotel id is required."})
		return
	}

	rooms, err := h.Svc.Rates(c.Request.Context(), hotelID, queryFromParams(c))
	if err != nil {
		h.Logger.Warn("room rates failed", zap.String("hotelId", hotelID), zap.Error(err))
		c.JSON(http.StatusOK, gin.H{"rooms": []models.RoomOffer{}})
		return
	}
	c.JSON(http.StatusOK, gin.H{"rooms": rooms})
}
