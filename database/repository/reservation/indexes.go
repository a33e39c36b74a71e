package reservationRepo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"garagehub/models"
)

// EnsureIndexes creates the necessary indexes on the reservations collection.
// The partial unique index on (garageId, startHour) over active reservations
// is the storage-level backstop for double booking: two concurrent inserts
// for the same hour cannot both land, the loser gets a duplicate-key error.
func (r *mongoReservationRepo) EnsureIndexes() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "id", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("unique_id"),
		},
		{
			Keys: bson.D{{Key: "garageId", Value: 1}, {Key: "startHour", Value: 1}},
			Options: options.Index().
				SetUnique(true).
				SetPartialFilterExpression(bson.M{"status": models.ReservationStatusActive}).
				SetName("unique_active_garage_hour"),
		},
		{
			Keys:    bson.D{{Key: "garageId", Value: 1}, {Key: "status", Value: 1}},
			Options: options.Index().SetName("garage_status_idx"),
		},
		{
			Keys:    bson.D{{Key: "userId", Value: 1}, {Key: "status", Value: 1}},
			Options: options.Index().SetName("user_status_idx"),
		},
		{
			Keys:    bson.D{{Key: "status", Value: 1}, {Key: "endHour", Value: 1}},
			Options: options.Index().SetName("status_end_hour_idx"),
		},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create reservation indexes: %w", err)
	}
	return nil
}
