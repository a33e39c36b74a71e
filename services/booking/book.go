package booking

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	"garagehub/models"
	"garagehub/utils"
)

// Book reserves the requested hours on one garage for a renter, all or
// nothing: every hour is checked for conflicts before the first insert, and
// any conflict rejects the whole request naming the offending hour.
//
// The check-then-insert section is serialized per garage, so two concurrent
// requests for the same garage cannot both pass the conflict check. The
// partial unique index on (garageId, startHour, status=active) backs this up
// at the storage level; a duplicate-key error is surfaced as a conflict.
func (s *DefaultBookingService) Book(ctx context.Context, garageID, userID string, startHours []string) ([]string, error) {
	if len(startHours) == 0 {
		return nil, &ValidationError{Reason: "startHours must not be empty"}
	}
	hours, err := models.ParseHours(startHours)
	if err != nil {
		return nil, &ValidationError{Reason: err.Error()}
	}
	hours = dedupe(hours)

	garage, err := s.GarageRepo.GetByID(ctx, garageID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrGarageNotFound
		}
		return nil, fmt.Errorf("failed to fetch garage %s: %w", garageID, err)
	}

	lock := s.locks.get(garageID)
	lock.Lock()
	defer lock.Unlock()

	// Check pass for every requested hour before any insert. A requested
	// hour must be offered by the owner (when the garage has a curated
	// list) and must not intersect any active reservation.
	offered := hourSet(garage.AvailableHours)
	for _, hour := range hours {
		if len(offered) > 0 {
			if _, ok := offered[hour.String()]; !ok {
				return nil, &ConflictError{Hour: hour}
			}
		}
		overlapping, err := s.ReservationRepo.FindOverlapping(ctx, garageID, models.SlotAt(hour))
		if err != nil {
			return nil, fmt.Errorf("overlap check failed for %s: %w", hour, err)
		}
		if len(overlapping) > 0 {
			return nil, &ConflictError{Hour: hour}
		}
	}

	reservations := make([]models.Reservation, len(hours))
	for i, hour := range hours {
		reservations[i] = models.Reservation{
			GarageID:  garageID,
			UserID:    userID,
			StartHour: hour.String(),
			EndHour:   hour.Next().String(),
			Status:    models.ReservationStatusActive,
		}
	}

	ids, err := s.ReservationRepo.CreateMany(ctx, reservations)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			// Lost a race against a booking outside this process.
			return nil, &ConflictError{Hour: hours[0]}
		}
		return nil, fmt.Errorf("failed to create reservations: %w", err)
	}

	s.invalidateAvailability(ctx, garageID)
	utils.GetLogger().Info("reservations created",
		zap.String("garageID", garageID),
		zap.String("userID", userID),
		zap.Int("count", len(ids)))
	return ids, nil
}

// Cancel deletes a reservation outright; the freed hour becomes bookable
// again if still offered by the owner. Authorization is the caller's job.
func (s *DefaultBookingService) Cancel(ctx context.Context, reservationID string) error {
	reservation, err := s.ReservationRepo.DeleteByID(ctx, reservationID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return ErrReservationNotFound
		}
		return fmt.Errorf("failed to delete reservation %s: %w", reservationID, err)
	}

	s.invalidateAvailability(ctx, reservation.GarageID)
	utils.GetLogger().Info("reservation canceled",
		zap.String("reservationID", reservationID),
		zap.String("garageID", reservation.GarageID))
	return nil
}

// dedupe drops repeated hours, keeping first occurrence order. Booking the
// same hour twice in one request is treated as asking for it once.
func dedupe(hours []models.Hour) []models.Hour {
	seen := make(map[models.Hour]struct{}, len(hours))
	out := hours[:0]
	for _, h := range hours {
		if _, ok := seen[h]; ok {
			continue
		}
		seen[h] = struct{}{}
		out = append(out, h)
	}
	return out
}

func hourSet(labels []string) map[string]struct{} {
	set := make(map[string]struct{}, len(labels))
	for _, label := range labels {
		set[label] = struct{}{}
	}
	return set
}
