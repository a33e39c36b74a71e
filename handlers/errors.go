package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"garagehub/services/booking"
	"garagehub/utils"
)

// respondServiceError translates typed service errors to the HTTP boundary:
// missing entities become 404, conflicts and bad input 400, anything else a
// logged 500.
func respondServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, booking.ErrGarageNotFound):
		c.JSON(http.StatusNotFound, gin.H{"message": "Garage not found."})
	case errors.Is(err, booking.ErrReservationNotFound):
		c.JSON(http.StatusNotFound, gin.H{"message": "Reservation not found."})
	default:
		var conflict *booking.ConflictError
		if errors.As(err, &conflict) {
			c.JSON(http.StatusBadRequest, gin.H{"message": conflict.Error()})
			return
		}
		var invalid *booking.ValidationError
		if errors.As(err, &invalid) {
			c.JSON(http.StatusBadRequest, gin.H{"message": invalid.Error()})
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "Server error.", err.Error())
	}
}
