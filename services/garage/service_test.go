package garage

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/mongo"

	"garagehub/models"
	"garagehub/services/booking"
)

type MockGarageRepo struct{ mock.Mock }

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

func TestSetAvailability_ReplacesHours(t *testing.T) {
	repo := new(MockGarageRepo)
	svc := &DefaultGarageService{Repo: repo}

	updated := &models.Garage{ID: "g1", AvailableHours: []string{"09:00", "10:00"}}
	repo.On("SetAvailableHours", mock.Anything, "g1", []string{"09:00", "10:00"}).Return(updated, nil)

	g, err := svc.SetAvailability(context.Background(), "g1", []string{"09:00", "10:00"})
	require.NoError(t, err)
	assert.Equal(t, updated, g)
	repo.AssertExpectations(t)
}

func TestSetAvailability_DedupesPreservingOrder(t *testing.T) {
	repo := new(MockGarageRepo)
	svc := &DefaultGarageService{Repo: repo}

	updated := &models.Garage{ID: "g1", AvailableHours: []string{"10:00", "09:00"}}
	repo.On("SetAvailableHours", mock.Anything, "g1", []string{"10:00", "09:00"}).Return(updated, nil)

	_, err := svc.SetAvailability(context.Background(), "g1", []string{"10:00", "09:00", "10:00"})
	require.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestSetAvailability_EmptyListClearsCalendar(t *testing.T) {
	repo := new(MockGarageRepo)
	svc := &DefaultGarageService{Repo: repo}

	updated := &models.Garage{ID: "g1", AvailableHours: []string{}}
	repo.On("SetAvailableHours", mock.Anything, "g1", []string{}).Return(updated, nil)

	g, err := svc.SetAvailability(context.Background(), "g1", []string{})
	require.NoError(t, err)
	assert.Empty(t, g.AvailableHours)
}

func TestSetAvailability_RejectsMalformedLabel(t *testing.T) {
	repo := new(MockGarageRepo)
	svc := &DefaultGarageService{Repo: repo}

	_, err := svc.SetAvailability(context.Background(), "g1", []string{"10:00", "10:30"})
	var invalid *booking.ValidationError
	assert.ErrorAs(t, err, &invalid)
	repo.AssertNotCalled(t, "SetAvailableHours", mock.Anything, mock.Anything, mock.Anything)
}

func TestSetAvailability_GarageNotFound(t *testing.T) {
	repo := new(MockGarageRepo)
	svc := &DefaultGarageService{Repo: repo}

	repo.On("SetAvailableHours", mock.Anything, "missing", []string{"10:00"}).Return(nil, mongo.ErrNoDocuments)

	_, err := svc.SetAvailability(context.Background(), "missing", []string{"10:00"})
	assert.ErrorIs(t, err, booking.ErrGarageNotFound)
}

func TestCreate_Validates(t *testing.T) {
	repo := new(MockGarageRepo)
	svc := &DefaultGarageService{Repo: repo}

	_, err := svc.Create(context.Background(), &models.Garage{Address: "1 Main St", Price: 0, OwnerID: "o1"})
	var invalid *booking.ValidationError
	assert.ErrorAs(t, err, &invalid)

	repo.On("Create", mock.Anything, mock.Anything).Return(nil)
	g, err := svc.Create(context.Background(), &models.Garage{Address: "1 Main St", Price: 12.5, OwnerID: "o1"})
	require.NoError(t, err)
	assert.Equal(t, "1 Main St", g.Address)
}

func TestGetByID_NotFound(t *testing.T) {
	repo := new(MockGarageRepo)
	svc := &DefaultGarageService{Repo: repo}

	repo.On("GetByID", mock.Anything, "missing").Return(nil, mongo.ErrNoDocuments)

	_, err := svc.GetByID(context.Background(), "missing")
	assert.ErrorIs(t, err, booking.ErrGarageNotFound)
}
