package sweeper

import (
	"context"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	garageRepo "garagehub/database/repository/garage"
	reservationRepo "garagehub/database/repository/reservation"
	"garagehub/models"
	"garagehub/utils"
)

// Sweeper is the hourly maintenance task that drops past hours from every
// garage's offered list and bulk-deletes reservations whose slot has ended.
// It is constructed at startup, started once and stopped on shutdown; sweep
// errors are logged, never surfaced to any request.
type Sweeper struct {
	Garages      garageRepo.GarageRepository
	Reservations reservationRepo.ReservationRepository

	// Cache is the availability read cache to invalidate for swept garages;
	// nil disables invalidation.
	Cache *redis.Client

	// Now is the wall-clock source, overridable in tests. Nil means time.Now.
	Now func() time.Time

	cron *cron.Cron
}

func (s *Sweeper) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

// Start schedules the sweep. The schedule runs at a fixed minute past the
// hour so the cutoff never races the exact hour boundary.
func (s *Sweeper) Start(schedule string) error {
	c := cron.New()
	_, err := c.AddFunc(schedule, func() {
		if err := s.RunOnce(context.Background()); err != nil {
			utils.GetLogger().Error("slot sweep failed", zap.Error(err))
		}
	})
	if err != nil {
		return fmt.Errorf("invalid sweep schedule %q: %w", schedule, err)
	}
	c.Start()
	s.cron = c
	utils.GetLogger().Info("slot sweeper started", zap.String("schedule", schedule))
	return nil
}

// Stop halts the schedule and waits for an in-flight sweep to finish.
func (s *Sweeper) Stop() {
	if s.cron != nil {
		<-s.cron.Stop().Done()
	}
}

// RunOnce performs a single sweep at the current hour. Running it twice in
// the same hour is a no-op the second time. A failure on one garage is
// logged and skipped; the sweep continues with the rest.
func (s *Sweeper) RunOnce(ctx context.Context) error {
	logger := utils.GetLogger()
	cutoff := models.HourOf(s.now())

	garages, err := s.Garages.GetAll(ctx)
	if err != nil {
		return fmt.Errorf("failed to list garages: %w", err)
	}

	trimmed := 0
	for _, g := range garages {
		kept, changed := retainFrom(g.AvailableHours, cutoff)
		if !changed {
			continue
		}
		if _, err := s.Garages.SetAvailableHours(ctx, g.ID, kept); err != nil {
			logger.Error("sweep: failed to trim garage hours",
				zap.String("garageID", g.ID), zap.Error(err))
			continue
		}
		s.invalidateAvailability(ctx, g.ID)
		trimmed++
	}

	deleted, err := s.Reservations.DeleteExpired(ctx, cutoff)
	if err != nil {
		return fmt.Errorf("failed to delete expired reservations: %w", err)
	}

	logger.Info("slot sweep complete",
		zap.String("cutoff", cutoff.String()),
		zap.Int("garagesTrimmed", trimmed),
		zap.Int64("reservationsDeleted", deleted))
	return nil
}

// retainFrom keeps the hour-labels at or after the cutoff, preserving order.
// Labels that no longer parse are dropped along with the past ones.
func retainFrom(labels []string, cutoff models.Hour) ([]string, bool) {
	kept := make([]string, 0, len(labels))
	for _, label := range labels {
		h, err := models.ParseHour(label)
		if err != nil {
			continue
		}
		if h >= cutoff {
			kept = append(kept, label)
		}
	}
	return kept, len(kept) != len(labels)
}

func (s *Sweeper) invalidateAvailability(ctx context.Context, garageID string) {
	if s.Cache == nil {
		return
	}
	if err := s.Cache.Del(ctx, utils.AvailabilityCacheKey(garageID)).Err(); err != nil {
		utils.GetLogger().Warn("sweep: failed to invalidate availability cache",
			zap.String("garageID", garageID), zap.Error(err))
	}
}
