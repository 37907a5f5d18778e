package handlers

import (
	"net/http"

	"stayfront/middleware"

	"github.com/gin-gonic/gin"
)

// Geolocate returns the client's geolocation as resolved by the
// geolocation middleware.
func Geolocate(c *gin.Context) {
	if v, exists := c.Get("geoLocation"); exists {
		if geo, ok := v.(*middleware.GeoLocation); ok {
			c.JSON(http.StatusOK, geo)
			return
		}
	}
	c.JSON(http.StatusOK, middleware.GeoLocation{Country: "Unknown"})
}
