package booking

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/mongo"

	"garagehub/models"
)

func newService(garages *MockGarageRepo, reservations *MockReservationRepo) *DefaultBookingService {
	return &DefaultBookingService{
		GarageRepo:      garages,
		ReservationRepo: reservations,
	}
}

func testGarage(hours ...string) *models.Garage {
	return &models.Garage{
		ID:             "g1",
		OwnerID:        "owner1",
		AvailableHours: hours,
	}
}

func TestBook_Succeeds(t *testing.T) {
	garages := new(MockGarageRepo)
	reservations := new(MockReservationRepo)
	svc := newService(garages, reservations)

	garages.On("GetByID", mock.Anything, "g1").Return(testGarage("10:00", "11:00", "12:00"), nil)
	reservations.On("FindOverlapping", mock.Anything, "g1", models.SlotAt(10)).Return([]models.Reservation{}, nil)
	reservations.On("FindOverlapping", mock.Anything, "g1", models.SlotAt(11)).Return([]models.Reservation{}, nil)
	reservations.On("CreateMany", mock.Anything, mock.MatchedBy(func(rs []models.Reservation) bool {
		return len(rs) == 2 &&
			rs[0].StartHour == "10:00" && rs[0].EndHour == "11:00" &&
			rs[1].StartHour == "11:00" && rs[1].EndHour == "12:00" &&
			rs[0].UserID == "u1" && rs[0].Status == models.ReservationStatusActive
	})).Return([]string{"r1", "r2"}, nil)

	ids, err := svc.Book(context.Background(), "g1", "u1", []string{"10:00", "11:00"})
	require.NoError(t, err)
	assert.Equal(t, []string{"r1", "r2"}, ids)
	reservations.AssertExpectations(t)
}

func TestBook_ConflictNamesOffendingHour(t *testing.T) {
	garages := new(MockGarageRepo)
	reservations := new(MockReservationRepo)
	svc := newService(garages, reservations)

	held := []models.Reservation{{ID: "r1", GarageID: "g1", StartHour: "11:00", EndHour: "12:00", Status: models.ReservationStatusActive}}
	garages.On("GetByID", mock.Anything, "g1").Return(testGarage("10:00", "11:00", "12:00"), nil)
	reservations.On("FindOverlapping", mock.Anything, "g1", models.SlotAt(11)).Return(held, nil)

	_, err := svc.Book(context.Background(), "g1", "u2", []string{"11:00"})
	var conflict *ConflictError
	require.ErrorAs(t, err, &conflict)
	assert.Equal(t, models.Hour(11), conflict.Hour)
	assert.Equal(t, "Garage isn't available 11:00.", conflict.Error())
	reservations.AssertNotCalled(t, "CreateMany", mock.Anything, mock.Anything)
}

func TestBook_NoPartialBookingOnConflict(t *testing.T) {
	garages := new(MockGarageRepo)
	reservations := new(MockReservationRepo)
	svc := newService(garages, reservations)

	held := []models.Reservation{{ID: "r1", GarageID: "g1", StartHour: "11:00", EndHour: "12:00", Status: models.ReservationStatusActive}}
	garages.On("GetByID", mock.Anything, "g1").Return(testGarage("10:00", "11:00", "12:00"), nil)
	reservations.On("FindOverlapping", mock.Anything, "g1", models.SlotAt(10)).Return([]models.Reservation{}, nil)
	reservations.On("FindOverlapping", mock.Anything, "g1", models.SlotAt(11)).Return(held, nil)

	// The free 10:00 hour must not be inserted when 11:00 conflicts.
	_, err := svc.Book(context.Background(), "g1", "u2", []string{"10:00", "11:00"})
	var conflict *ConflictError
	require.ErrorAs(t, err, &conflict)
	assert.Equal(t, models.Hour(11), conflict.Hour)
	reservations.AssertNotCalled(t, "CreateMany", mock.Anything, mock.Anything)
}

func TestBook_RejectsHourNotOffered(t *testing.T) {
	garages := new(MockGarageRepo)
	reservations := new(MockReservationRepo)
	svc := newService(garages, reservations)

	garages.On("GetByID", mock.Anything, "g1").Return(testGarage("10:00"), nil)

	_, err := svc.Book(context.Background(), "g1", "u1", []string{"15:00"})
	var conflict *ConflictError
	require.ErrorAs(t, err, &conflict)
	assert.Equal(t, models.Hour(15), conflict.Hour)
	reservations.AssertNotCalled(t, "CreateMany", mock.Anything, mock.Anything)
}

func TestBook_UncuratedGarageAcceptsAnyHour(t *testing.T) {
	garages := new(MockGarageRepo)
	reservations := new(MockReservationRepo)
	svc := newService(garages, reservations)

	garages.On("GetByID", mock.Anything, "g1").Return(testGarage(), nil)
	reservations.On("FindOverlapping", mock.Anything, "g1", models.SlotAt(15)).Return([]models.Reservation{}, nil)
	reservations.On("CreateMany", mock.Anything, mock.Anything).Return([]string{"r1"}, nil)

	ids, err := svc.Book(context.Background(), "g1", "u1", []string{"15:00"})
	require.NoError(t, err)
	assert.Len(t, ids, 1)
}

func TestBook_MidnightWrap(t *testing.T) {
	garages := new(MockGarageRepo)
	reservations := new(MockReservationRepo)
	svc := newService(garages, reservations)

	garages.On("GetByID", mock.Anything, "g1").Return(testGarage("23:00"), nil)
	reservations.On("FindOverlapping", mock.Anything, "g1", models.SlotAt(23)).Return([]models.Reservation{}, nil)
	reservations.On("CreateMany", mock.Anything, mock.MatchedBy(func(rs []models.Reservation) bool {
		return len(rs) == 1 && rs[0].StartHour == "23:00" && rs[0].EndHour == "00:00"
	})).Return([]string{"r1"}, nil)

	_, err := svc.Book(context.Background(), "g1", "u1", []string{"23:00"})
	require.NoError(t, err)
	reservations.AssertExpectations(t)
}

func TestBook_DedupesRequestedHours(t *testing.T) {
	garages := new(MockGarageRepo)
	reservations := new(MockReservationRepo)
	svc := newService(garages, reservations)

	garages.On("GetByID", mock.Anything, "g1").Return(testGarage("10:00"), nil)
	reservations.On("FindOverlapping", mock.Anything, "g1", models.SlotAt(10)).Return([]models.Reservation{}, nil)
	reservations.On("CreateMany", mock.Anything, mock.MatchedBy(func(rs []models.Reservation) bool {
		return len(rs) == 1
	})).Return([]string{"r1"}, nil)

	ids, err := svc.Book(context.Background(), "g1", "u1", []string{"10:00", "10:00"})
	require.NoError(t, err)
	assert.Equal(t, []string{"r1"}, ids)
	reservations.AssertExpectations(t)
}

func TestBook_ValidationErrors(t *testing.T) {
	svc := newService(new(MockGarageRepo), new(MockReservationRepo))

	_, err := svc.Book(context.Background(), "g1", "u1", nil)
	var invalid *ValidationError
	assert.ErrorAs(t, err, &invalid)

	_, err = svc.Book(context.Background(), "g1", "u1", []string{"10:30"})
	assert.ErrorAs(t, err, &invalid)
}

func TestBook_GarageNotFound(t *testing.T) {
	garages := new(MockGarageRepo)
	svc := newService(garages, new(MockReservationRepo))

	garages.On("GetByID", mock.Anything, "missing").Return(nil, mongo.ErrNoDocuments)

	_, err := svc.Book(context.Background(), "missing", "u1", []string{"10:00"})
	assert.ErrorIs(t, err, ErrGarageNotFound)
}

func TestBook_DuplicateKeySurfacesAsConflict(t *testing.T) {
	garages := new(MockGarageRepo)
	reservations := new(MockReservationRepo)
	svc := newService(garages, reservations)

	dupErr := mongo.WriteException{WriteErrors: mongo.WriteErrors{{Code: 11000}}}
	garages.On("GetByID", mock.Anything, "g1").Return(testGarage("10:00"), nil)
	reservations.On("FindOverlapping", mock.Anything, "g1", models.SlotAt(10)).Return([]models.Reservation{}, nil)
	reservations.On("CreateMany", mock.Anything, mock.Anything).Return(nil, dupErr)

	_, err := svc.Book(context.Background(), "g1", "u1", []string{"10:00"})
	var conflict *ConflictError
	assert.ErrorAs(t, err, &conflict)
}

func TestCancel(t *testing.T) {
	reservations := new(MockReservationRepo)
	svc := newService(new(MockGarageRepo), reservations)

	reservations.On("DeleteByID", mock.Anything, "r1").
		Return(&models.Reservation{ID: "r1", GarageID: "g1"}, nil)

	require.NoError(t, svc.Cancel(context.Background(), "r1"))
}

func TestCancel_NotFound(t *testing.T) {
	reservations := new(MockReservationRepo)
	svc := newService(new(MockGarageRepo), reservations)

	reservations.On("DeleteByID", mock.Anything, "missing").Return(nil, mongo.ErrNoDocuments)

	err := svc.Cancel(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrReservationNotFound)
}
