package garageRepo

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo"

	"garagehub/database"
	"garagehub/models"
)

// GarageRepository is the persistence boundary for garages and their
// owner-curated available hours.
type GarageRepository interface {
	Create(ctx context.Context, garage *models.Garage) error
	GetByID(ctx context.Context, id string) (*models.Garage, error)
	GetAll(ctx context.Context) ([]models.Garage, error)
	GetByOwner(ctx context.Context, ownerID string) ([]models.Garage, error)
	SetAvailableHours(ctx context.Context, garageID string, hours []string) (*models.Garage, error)
	EnsureIndexes() error
}

type mongoGarageRepo struct {
	coll *mongo.Collection
}

// NewMongoGarageRepo constructs a new MongoDB GarageRepository.
func NewMongoGarageRepo() GarageRepository {
	return &mongoGarageRepo{
		coll: database.DB().Collection("garages"),
	}
}
