package booking

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	"garagehub/models"
	"garagehub/utils"
)

// Availability cache entries expire quickly on their own; invalidation on
// mutation is the primary freshness mechanism.
const availabilityCacheTTL = 30 * time.Second

// FreeHours computes the renter-visible free hours of a garage: the owner's
// availableHours minus the start hours of active reservations. The result
// preserves the order of availableHours and never contains an hour the owner
// is not currently offering, even if a stale reservation references one.
func (s *DefaultBookingService) FreeHours(ctx context.Context, garageID string) ([]string, error) {
	if cached, ok := s.cachedAvailability(ctx, garageID); ok {
		return cached, nil
	}

	garage, err := s.GarageRepo.GetByID(ctx, garageID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrGarageNotFound
		}
		return nil, fmt.Errorf("failed to fetch garage %s: %w", garageID, err)
	}

	free, err := s.subtractReserved(ctx, garageID, garage.AvailableHours)
	if err != nil {
		return nil, err
	}

	s.storeAvailability(ctx, garageID, free)
	return free, nil
}

// AvailableSlots is the renter-facing bookable view. Persisted
// availableHours is the single source of truth; only when the owner has not
// curated any hours does it fall back to the rolling next-24-hours window,
// again minus active reservations.
func (s *DefaultBookingService) AvailableSlots(ctx context.Context, garageID string) ([]string, error) {
	garage, err := s.GarageRepo.GetByID(ctx, garageID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrGarageNotFound
		}
		return nil, fmt.Errorf("failed to fetch garage %s: %w", garageID, err)
	}

	if len(garage.AvailableHours) > 0 {
		return s.FreeHours(ctx, garageID)
	}
	return s.subtractReserved(ctx, garageID, s.NextDayTemplate())
}

// NextDayTemplate produces the 24 hour-labels starting at the next full hour
// after now. It is a pure function of wall-clock time and backs both the
// owner's availability-setting flow and the uncurated-garage fallback.
func (s *DefaultBookingService) NextDayTemplate() []string {
	hour := models.HourOf(s.now()).Next()
	labels := make([]string, 0, 24)
	for i := 0; i < 24; i++ {
		labels = append(labels, hour.String())
		hour = hour.Next()
	}
	return labels
}

// UserReservations lists a renter's active reservations.
func (s *DefaultBookingService) UserReservations(ctx context.Context, userID string) ([]models.Reservation, error) {
	reservations, err := s.ReservationRepo.ListActiveByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch reservations for user %s: %w", userID, err)
	}
	return reservations, nil
}

// GarageReservations lists every reservation on a garage, for the owner view.
func (s *DefaultBookingService) GarageReservations(ctx context.Context, garageID string) ([]models.Reservation, error) {
	if _, err := s.GarageRepo.GetByID(ctx, garageID); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrGarageNotFound
		}
		return nil, fmt.Errorf("failed to fetch garage %s: %w", garageID, err)
	}
	reservations, err := s.ReservationRepo.ListByGarage(ctx, garageID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch reservations for garage %s: %w", garageID, err)
	}
	return reservations, nil
}

func (s *DefaultBookingService) subtractReserved(ctx context.Context, garageID string, hours []string) ([]string, error) {
	active, err := s.ReservationRepo.ListActiveByGarage(ctx, garageID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch active reservations: %w", err)
	}
	reserved := make(map[string]struct{}, len(active))
	for _, reservation := range active {
		reserved[reservation.StartHour] = struct{}{}
	}

	free := make([]string, 0, len(hours))
	for _, hour := range hours {
		if _, ok := reserved[hour]; !ok {
			free = append(free, hour)
		}
	}
	return free, nil
}

func (s *DefaultBookingService) cachedAvailability(ctx context.Context, garageID string) ([]string, bool) {
	if s.Cache == nil {
		return nil, false
	}
	raw, err := s.Cache.Get(ctx, utils.AvailabilityCacheKey(garageID)).Result()
	if err != nil {
		return nil, false
	}
	var hours []string
	if err := json.Unmarshal([]byte(raw), &hours); err != nil {
		return nil, false
	}
	return hours, true
}

func (s *DefaultBookingService) storeAvailability(ctx context.Context, garageID string, hours []string) {
	if s.Cache == nil {
		return
	}
	raw, err := json.Marshal(hours)
	if err != nil {
		return
	}
	if err := s.Cache.Set(ctx, utils.AvailabilityCacheKey(garageID), raw, availabilityCacheTTL).Err(); err != nil {
		utils.GetLogger().Warn("failed to cache availability", zap.String("garageID", garageID), zap.Error(err))
	}
}

func (s *DefaultBookingService) invalidateAvailability(ctx context.Context, garageID string) {
	if s.Cache == nil {
		return
	}
	if err := s.Cache.Del(ctx, utils.AvailabilityCacheKey(garageID)).Err(); err != nil {
		utils.GetLogger().Warn("failed to invalidate availability cache", zap.String("garageID", garageID), zap.Error(err))
	}
}
