package booking

import (
	"context"

	"github.com/stretchr/testify/mock"

	"garagehub/models"
)

// Mock repositories
type MockGarageRepo struct{ mock.Mock }
type MockReservationRepo struct{ mock.Mock }

func (m *MockGarageRepo) Create(ctx context.Context, garage *models.Garage) error {
	return m.Called(ctx, garage).Error(0)
}

func (m *MockGarageRepo) GetByID(ctx context.Context, id string) (*models.Garage, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Garage), args.Error(1)
}

func (m *MockGarageRepo) GetAll(ctx context.Context) ([]models.Garage, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Garage), args.Error(1)
}

func (m *MockGarageRepo) GetByOwner(ctx context.Context, ownerID string) ([]models.Garage, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Garage), args.Error(1)
}

func (m *MockGarageRepo) SetAvailableHours(ctx context.Context, garageID string, hours []string) (*models.Garage, error) {
	args := m.Called(ctx, garageID, hours)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Garage), args.Error(1)
}

func (m *MockGarageRepo) EnsureIndexes() error {
	return m.Called().Error(0)
}

func (m *MockReservationRepo) CreateMany(ctx context.Context, reservations []models.Reservation) ([]string, error) {
	args := m.Called(ctx, reservations)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockReservationRepo) DeleteByID(ctx context.Context, id string) (*models.Reservation, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Reservation), args.Error(1)
}

func (m *MockReservationRepo) DeleteExpired(ctx context.Context, cutoff models.Hour) (int64, error) {
	args := m.Called(ctx, cutoff)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockReservationRepo) FindOverlapping(ctx context.Context, garageID string, slot models.Slot) ([]models.Reservation, error) {
	args := m.Called(ctx, garageID, slot)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Reservation), args.Error(1)
}

func (m *MockReservationRepo) ListActiveByGarage(ctx context.Context, garageID string) ([]models.Reservation, error) {
	args := m.Called(ctx, garageID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Reservation), args.Error(1)
}

func (m *MockReservationRepo) ListByGarage(ctx context.Context, garageID string) ([]models.Reservation, error) {
	args := m.Called(ctx, garageID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Reservation), args.Error(1)
}

func (m *MockReservationRepo) ListActiveByUser(ctx context.Context, userID string) ([]models.Reservation, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Reservation), args.Error(1)
}

func (m *MockReservationRepo) EnsureIndexes() error {
	return m.Called().Error(0)
}
