package booking

import (
	"context"
	"sync"
	"time"

	"github.com/go-redis/redis/v8"

	garageRepo "garagehub/database/repository/garage"
	reservationRepo "garagehub/database/repository/reservation"
	"garagehub/models"
)

// BookingService accepts renter booking requests, resolves renter-visible
// availability and serves the reservation read views.
type BookingService interface {
	Book(ctx context.Context, garageID, userID string, startHours []string) ([]string, error)
	Cancel(ctx context.Context, reservationID string) error
	FreeHours(ctx context.Context, garageID string) ([]string, error)
	AvailableSlots(ctx context.Context, garageID string) ([]string, error)
	UserReservations(ctx context.Context, userID string) ([]models.Reservation, error)
	GarageReservations(ctx context.Context, garageID string) ([]models.Reservation, error)
	NextDayTemplate() []string
}

// DefaultBookingService implements BookingService.
type DefaultBookingService struct {
	GarageRepo      garageRepo.GarageRepository
	ReservationRepo reservationRepo.ReservationRepository

	// Cache is the optional availability read cache; nil disables caching.
	Cache *redis.Client

	// Now is the wall-clock source, overridable in tests. Nil means time.Now.
	Now func() time.Time

	locks keyedMutex
}

func (s *DefaultBookingService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

// keyedMutex serializes booking per garage id so the conflict check and the
// insert of one request cannot interleave with another request for the same
// garage. Entries are never evicted; the map is bounded by the garage count.
type keyedMutex struct {
	mu   sync.Mutex
	keys map[string]*sync.Mutex
}

func (k *keyedMutex) get(key string) *sync.Mutex {
	k.mu.Lock()
	defer k.mu.Unlock()
	if k.keys == nil {
		k.keys = make(map[string]*sync.Mutex)
	}
	m, ok := k.keys[key]
	if !ok {
		m = &sync.Mutex{}
		k.keys[key] = m
	}
	return m
}
