package booking

import (
	"errors"
	"fmt"

	"garagehub/models"
)

var (
	// ErrGarageNotFound signals that the garage id did not resolve.
	ErrGarageNotFound = errors.New("garage not found")
	// ErrReservationNotFound signals that the reservation id did not resolve.
	ErrReservationNotFound = errors.New("reservation not found")
)

// ConflictError rejects a booking request because one of the requested hours
// is already held or not offered. The whole request fails; no reservations
// are created.
type ConflictError struct {
	Hour models.Hour
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("Garage isn't available %s.", e.Hour)
}

// ValidationError rejects malformed input before any storage call.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Reason
}
