package reservationRepo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"

	"garagehub/models"
)

// FindOverlapping returns the active reservations on the garage whose slot
// intersects the given half-open interval. Candidates are fetched by garage
// and intersected in Go so the 23:00 to 00:00 wrap is handled by the slot
// arithmetic rather than by lexicographic label comparison.
func (r *mongoReservationRepo) FindOverlapping(ctx context.Context, garageID string, slot models.Slot) ([]models.Reservation, error) {
	active, err := r.ListActiveByGarage(ctx, garageID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch active reservations: %w", err)
	}

	var overlapping []models.Reservation
	for _, reservation := range active {
		if reservation.Slot().Overlaps(slot) {
			overlapping = append(overlapping, reservation)
		}
	}
	return overlapping, nil
}

func (r *mongoReservationRepo) ListActiveByGarage(ctx context.Context, garageID string) ([]models.Reservation, error) {
	return r.list(ctx, bson.M{"garageId": garageID, "status": models.ReservationStatusActive})
}

func (r *mongoReservationRepo) ListByGarage(ctx context.Context, garageID string) ([]models.Reservation, error) {
	return r.list(ctx, bson.M{"garageId": garageID})
}

func (r *mongoReservationRepo) ListActiveByUser(ctx context.Context, userID string) ([]models.Reservation, error) {
	return r.list(ctx, bson.M{"userId": userID, "status": models.ReservationStatusActive})
}

func (r *mongoReservationRepo) list(ctx context.Context, filter bson.M) ([]models.Reservation, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch reservations: %w", err)
	}
	defer cursor.Close(ctx)

	var reservations []models.Reservation
	if err := cursor.All(ctx, &reservations); err != nil {
		return nil, fmt.Errorf("error decoding reservations: %w", err)
	}
	return reservations, nil
}
