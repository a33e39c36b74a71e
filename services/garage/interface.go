package garage

import (
	"context"

	"github.com/go-redis/redis/v8"

	garageRepo "garagehub/database/repository/garage"
	"garagehub/models"
)

// GarageService owns the garage directory and the owner-facing slot
// calendar. SetAvailability replaces a garage's whole offered-hours list;
// authorization is performed by the calling layer.
type GarageService interface {
	Create(ctx context.Context, garage *models.Garage) (*models.Garage, error)
	GetByID(ctx context.Context, id string) (*models.Garage, error)
	List(ctx context.Context) ([]models.Garage, error)
	ListByOwner(ctx context.Context, ownerID string) ([]models.Garage, error)
	SetAvailability(ctx context.Context, garageID string, hours []string) (*models.Garage, error)
}

// DefaultGarageService implements GarageService.
type DefaultGarageService struct {
	Repo garageRepo.GarageRepository

	// Cache is the availability read cache shared with the booking service;
	// nil disables invalidation.
	Cache *redis.Client
}
