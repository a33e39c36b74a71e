package garageRepo

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	"garagehub/models"
)

func (r *mongoGarageRepo) Create(ctx context.Context, garage *models.Garage) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if garage.ID == "" {
		garage.ID = uuid.New().String()
	}
	now := time.Now()
	garage.CreatedAt = now
	garage.UpdatedAt = now

	_, err := r.coll.InsertOne(ctx, garage)
	return err
}

func (r *mongoGarageRepo) GetByID(ctx context.Context, id string) (*models.Garage, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var garage models.Garage
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&garage); err != nil {
		return nil, err
	}
	return &garage, nil
}

func (r *mongoGarageRepo) GetAll(ctx context.Context) ([]models.Garage, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var garages []models.Garage
	if err := cursor.All(ctx, &garages); err != nil {
		return nil, err
	}
	return garages, nil
}

func (r *mongoGarageRepo) GetByOwner(ctx context.Context, ownerID string) ([]models.Garage, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{"ownerId": ownerID})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var garages []models.Garage
	if err := cursor.All(ctx, &garages); err != nil {
		return nil, err
	}
	return garages, nil
}

// SetAvailableHours replaces the garage's whole availableHours list and
// returns the updated document. mongo.ErrNoDocuments signals a missing garage.
func (r *mongoGarageRepo) SetAvailableHours(ctx context.Context, garageID string, hours []string) (*models.Garage, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	update := bson.M{"$set": bson.M{
		"availableHours": hours,
		"updatedAt":      time.Now(),
	}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var garage models.Garage
	err := r.coll.FindOneAndUpdate(ctx, bson.M{"id": garageID}, update, opts).Decode(&garage)
	if err != nil {
		return nil, err
	}
	return &garage, nil
}
