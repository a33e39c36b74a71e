package reservationRepo

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	"garagehub/models"
)

func (r *mongoReservationRepo) CreateMany(ctx context.Context, reservations []models.Reservation) ([]string, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	now := time.Now()
	docs := make([]interface{}, len(reservations))
	ids := make([]string, len(reservations))
	for i, reservation := range reservations {
		if reservation.ID == "" {
			reservation.ID = uuid.New().String()
		}
		reservation.CreatedAt = now
		docs[i] = reservation
		ids[i] = reservation.ID
	}

	if _, err := r.coll.InsertMany(ctx, docs, &options.InsertManyOptions{Ordered: boolPtr(true)}); err != nil {
		return nil, err
	}
	return ids, nil
}

// DeleteByID removes one reservation and returns the removed document so the
// caller knows which garage's availability changed. mongo.ErrNoDocuments
// signals a missing reservation.
func (r *mongoReservationRepo) DeleteByID(ctx context.Context, id string) (*models.Reservation, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var reservation models.Reservation
	err := r.coll.FindOneAndDelete(ctx, bson.M{"id": id}).Decode(&reservation)
	if err != nil {
		return nil, err
	}
	return &reservation, nil
}

// DeleteExpired bulk-removes active reservations whose slot ended strictly
// before the cutoff hour. Zero-padded labels compare lexicographically, so
// an endHour of "00:00" survives the midnight sweep and is removed once the
// cutoff reaches "01:00".
func (r *mongoReservationRepo) DeleteExpired(ctx context.Context, cutoff models.Hour) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	res, err := r.coll.DeleteMany(ctx, expiryFilter(cutoff))
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}

func expiryFilter(cutoff models.Hour) bson.M {
	return bson.M{
		"status":  models.ReservationStatusActive,
		"endHour": bson.M{"$lt": cutoff.String()},
	}
}

func boolPtr(b bool) *bool { return &b }
