package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"garagehub/models"
	"garagehub/services/booking"
	"garagehub/services/garage"
	"garagehub/utils"
)

// GarageHandler serves the garage directory and the owner-facing slot
// calendar endpoints.
type GarageHandler struct {
	Service  garage.GarageService
	Bookings booking.BookingService
}

// NewGarageHandler constructs a GarageHandler.
func NewGarageHandler(svc garage.GarageService, bookings booking.BookingService) *GarageHandler {
	return &GarageHandler{Service: svc, Bookings: bookings}
}

// CreateGarageHandler registers a new garage owned by the authenticated caller.
func (h *GarageHandler) CreateGarageHandler(c *gin.Context) {
	var input models.Garage
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request payload", "details": err.Error()})
		return
	}
	input.OwnerID = c.GetString("userID")

	created, err := h.Service.Create(c.Request.Context(), &input)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

// ListGaragesHandler returns every listed garage for the map view.
func (h *GarageHandler) ListGaragesHandler(c *gin.Context) {
	garages, err := h.Service.List(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, garages)
}

// MyGaragesHandler returns the authenticated owner's garages.
func (h *GarageHandler) MyGaragesHandler(c *gin.Context) {
	garages, err := h.Service.ListByOwner(c.Request.Context(), c.GetString("userID"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, garages)
}

// GetGarageHandler returns one garage by id.
func (h *GarageHandler) GetGarageHandler(c *gin.Context) {
	g, err := h.Service.GetByID(c.Request.Context(), c.Param("garageId"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, g)
}

// SetAvailabilityHandler replaces the garage's offered hours with the
// submitted list.
func (h *GarageHandler) SetAvailabilityHandler(c *gin.Context) {
	garageID := c.Param("garageId")

	var input struct {
		AvailableHours []string `json:"availableHours"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request payload", "details": err.Error()})
		return
	}

	g, err := h.Service.SetAvailability(c.Request.Context(), garageID, input.AvailableHours)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Available hours updated successfully.",
		"garage":  g,
	})
}

// AvailableSlotsHandler returns the garage's currently free offered hours.
func (h *GarageHandler) AvailableSlotsHandler(c *gin.Context) {
	free, err := h.Bookings.FreeHours(c.Request.Context(), c.Param("garageId"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"availableHours": free})
}

// GarageReservationsHandler returns every reservation on a garage; only the
// garage owner may see them.
func (h *GarageHandler) GarageReservationsHandler(c *gin.Context) {
	garageID := c.Param("garageId")

	g, err := h.Service.GetByID(c.Request.Context(), garageID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	if g.OwnerID != c.GetString("userID") {
		c.JSON(http.StatusForbidden, gin.H{"message": "Access denied. Only the owner can view reservations."})
		return
	}

	reservations, err := h.Bookings.GarageReservations(c.Request.Context(), garageID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	utils.GetLogger().Debug("owner fetched garage reservations",
		zap.String("garageID", garageID), zap.Int("count", len(reservations)))
	c.JSON(http.StatusOK, gin.H{"reservations": reservations})
}
