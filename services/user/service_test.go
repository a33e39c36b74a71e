package user

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/crypto/bcrypt"

	"garagehub/config"
	"garagehub/models"
)

type MockUserRepo struct{ mock.Mock }

func (m *MockUserRepo) Create(ctx context.Context, user *models.User) error {
	return m.Called(ctx, user).Error(0)
}

func (m *MockUserRepo) GetByID(ctx context.Context, id string) (*models.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepo) EnsureIndexes() error {
	return m.Called().Error(0)
}

func testAccount(t *testing.T, password string) *models.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return &models.User{
		ID:           "u1",
		Email:        "owner@example.com",
		PasswordHash: string(hash),
	}
}

func TestGetByID(t *testing.T) {
	repo := new(MockUserRepo)
	svc := &DefaultUserService{Repo: repo}

	account := &models.User{ID: "u1", Email: "owner@example.com"}
	repo.On("GetByID", mock.Anything, "u1").Return(account, nil)

	got, err := svc.GetByID(context.Background(), "u1")
	require.NoError(t, err)
	assert.Equal(t, account, got)
}

func TestGetByID_NotFound(t *testing.T) {
	repo := new(MockUserRepo)
	svc := &DefaultUserService{Repo: repo}

	repo.On("GetByID", mock.Anything, "missing").Return(nil, mongo.ErrNoDocuments)

	_, err := svc.GetByID(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestAuthenticate(t *testing.T) {
	config.AppConfig.JWTSecret = "test-secret"
	repo := new(MockUserRepo)
	svc := &DefaultUserService{Repo: repo}

	repo.On("GetByEmail", mock.Anything, "owner@example.com").Return(testAccount(t, "hunter22"), nil)

	account, token, err := svc.Authenticate(context.Background(), "owner@example.com", "hunter22")
	require.NoError(t, err)
	assert.Equal(t, "u1", account.ID)
	assert.NotEmpty(t, token)
}

func TestAuthenticate_WrongPassword(t *testing.T) {
	repo := new(MockUserRepo)
	svc := &DefaultUserService{Repo: repo}

	repo.On("GetByEmail", mock.Anything, "owner@example.com").Return(testAccount(t, "hunter22"), nil)

	_, _, err := svc.Authenticate(context.Background(), "owner@example.com", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuthenticate_UnknownEmail(t *testing.T) {
	repo := new(MockUserRepo)
	svc := &DefaultUserService{Repo: repo}

	repo.On("GetByEmail", mock.Anything, "nobody@example.com").Return(nil, mongo.ErrNoDocuments)

	_, _, err := svc.Authenticate(context.Background(), "nobody@example.com", "whatever")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}
