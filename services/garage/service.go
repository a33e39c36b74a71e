package garage

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	"garagehub/models"
	"garagehub/services/booking"
	"garagehub/utils"
)

func (s *DefaultGarageService) Create(ctx context.Context, g *models.Garage) (*models.Garage, error) {
	if g.Address == "" || g.Price <= 0 || g.OwnerID == "" {
		return nil, &booking.ValidationError{Reason: "address, price and owner are required"}
	}
	if err := s.Repo.Create(ctx, g); err != nil {
		return nil, fmt.Errorf("failed to create garage: %w", err)
	}
	return g, nil
}

func (s *DefaultGarageService) GetByID(ctx context.Context, id string) (*models.Garage, error) {
	g, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, booking.ErrGarageNotFound
		}
		return nil, fmt.Errorf("failed to fetch garage %s: %w", id, err)
	}
	return g, nil
}

func (s *DefaultGarageService) List(ctx context.Context) ([]models.Garage, error) {
	garages, err := s.Repo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list garages: %w", err)
	}
	return garages, nil
}

func (s *DefaultGarageService) ListByOwner(ctx context.Context, ownerID string) ([]models.Garage, error) {
	garages, err := s.Repo.GetByOwner(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list garages for owner %s: %w", ownerID, err)
	}
	return garages, nil
}

// SetAvailability replaces the garage's entire offered-hours list with the
// given labels. Input is validated and deduplicated but otherwise persisted
// in the order given; repeated labels are tolerated, not an error.
func (s *DefaultGarageService) SetAvailability(ctx context.Context, garageID string, hours []string) (*models.Garage, error) {
	if _, err := models.ParseHours(hours); err != nil {
		return nil, &booking.ValidationError{Reason: err.Error()}
	}
	cleaned := dedupeLabels(hours)

	g, err := s.Repo.SetAvailableHours(ctx, garageID, cleaned)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, booking.ErrGarageNotFound
		}
		return nil, fmt.Errorf("failed to set availability for garage %s: %w", garageID, err)
	}

	s.invalidateAvailability(ctx, garageID)
	utils.GetLogger().Info("availability updated",
		zap.String("garageID", garageID),
		zap.Int("hours", len(cleaned)))
	return g, nil
}

func (s *DefaultGarageService) invalidateAvailability(ctx context.Context, garageID string) {
	if s.Cache == nil {
		return
	}
	if err := s.Cache.Del(ctx, utils.AvailabilityCacheKey(garageID)).Err(); err != nil {
		utils.GetLogger().Warn("failed to invalidate availability cache", zap.String("garageID", garageID), zap.Error(err))
	}
}

func dedupeLabels(labels []string) []string {
	seen := make(map[string]struct{}, len(labels))
	out := make([]string, 0, len(labels))
	for _, label := range labels {
		if _, ok := seen[label]; ok {
			continue
		}
		seen[label] = struct{}{}
		out = append(out, label)
	}
	return out
}
