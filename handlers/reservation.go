package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"garagehub/services/booking"
)

// ReservationHandler serves the renter-facing booking endpoints.
type ReservationHandler struct {
	Service booking.BookingService
}

// NewReservationHandler constructs a ReservationHandler.
func NewReservationHandler(svc booking.BookingService) *ReservationHandler {
	return &ReservationHandler{Service: svc}
}

// CreateReservationHandler books the requested hours on a garage, all or
// nothing. Any conflicting hour rejects the whole request.
func (h *ReservationHandler) CreateReservationHandler(c *gin.Context) {
	var input struct {
		GarageID   string   `json:"garageId" binding:"required"`
		UserID     string   `json:"userId" binding:"required"`
		StartHours []string `json:"startHours" binding:"required"`
		Status     string   `json:"status"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request payload", "details": err.Error()})
		return
	}

	ids, err := h.Service.Book(c.Request.Context(), input.GarageID, input.UserID, input.StartHours)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":      "Reservation completed.",
		"reservations": ids,
	})
}

// AvailableSlotsHandler returns the bookable hours for a garage, falling
// back to the rolling next-24-hours window when the owner has not curated
// an availability list.
func (h *ReservationHandler) AvailableSlotsHandler(c *gin.Context) {
	slots, err := h.Service.AvailableSlots(c.Request.Context(), c.Param("garageId"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"availableSlots": slots})
}

// UserReservationsHandler lists a renter's active reservations.
func (h *ReservationHandler) UserReservationsHandler(c *gin.Context) {
	reservations, err := h.Service.UserReservations(c.Request.Context(), c.Param("userId"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"userReservations": reservations})
}

// CancelReservationHandler deletes a reservation by id.
func (h *ReservationHandler) CancelReservationHandler(c *gin.Context) {
	if err := h.Service.Cancel(c.Request.Context(), c.Param("id")); err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Reservation canceled."})
}
