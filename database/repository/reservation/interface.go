package reservationRepo

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo"

	"garagehub/database"
	"garagehub/models"
)

// ReservationRepository is the booked-slot ledger. It is the source of truth
// for which hours are held on a garage; overlap detection and expiry both
// run against it.
type ReservationRepository interface {
	CreateMany(ctx context.Context, reservations []models.Reservation) ([]string, error)
	DeleteByID(ctx context.Context, id string) (*models.Reservation, error)
	DeleteExpired(ctx context.Context, cutoff models.Hour) (int64, error)
	FindOverlapping(ctx context.Context, garageID string, slot models.Slot) ([]models.Reservation, error)
	ListActiveByGarage(ctx context.Context, garageID string) ([]models.Reservation, error)
	ListByGarage(ctx context.Context, garageID string) ([]models.Reservation, error)
	ListActiveByUser(ctx context.Context, userID string) ([]models.Reservation, error)
	EnsureIndexes() error
}

type mongoReservationRepo struct {
	coll *mongo.Collection
}

// NewMongoReservationRepo constructs a new MongoDB ReservationRepository.
func NewMongoReservationRepo() ReservationRepository {
	return &mongoReservationRepo{
		coll: database.DB().Collection("reservations"),
	}
}
