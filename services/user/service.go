package user

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/crypto/bcrypt"

	"garagehub/models"
	"garagehub/utils"
)

// ErrInvalidCredentials is returned for unknown emails and wrong passwords
// alike, so login failures do not reveal which accounts exist.
var ErrInvalidCredentials = errors.New("invalid email or password")

// ErrUserNotFound signals that a user id did not resolve.
var ErrUserNotFound = errors.New("user not found")

const tokenDuration = 72 * time.Hour

func (s *DefaultUserService) Register(ctx context.Context, input RegistrationInput) (*models.User, string, error) {
	if _, err := s.Repo.GetByEmail(ctx, input.Email); err == nil {
		return nil, "", errors.New("email already registered")
	} else if !errors.Is(err, mongo.ErrNoDocuments) {
		return nil, "", fmt.Errorf("failed to check existing email: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", fmt.Errorf("failed to hash password: %w", err)
	}

	account := &models.User{
		FirstName:    input.FirstName,
		LastName:     input.LastName,
		Email:        input.Email,
		Phone:        input.Phone,
		PasswordHash: string(hash),
	}
	if err := s.Repo.Create(ctx, account); err != nil {
		return nil, "", fmt.Errorf("failed to create user: %w", err)
	}

	token, err := utils.GenerateToken(account.ID, account.Email, tokenDuration)
	if err != nil {
		return nil, "", fmt.Errorf("failed to issue token: %w", err)
	}
	return account, token, nil
}

func (s *DefaultUserService) Authenticate(ctx context.Context, email, password string) (*models.User, string, error) {
	account, err := s.Repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, "", ErrInvalidCredentials
		}
		return nil, "", fmt.Errorf("failed to fetch user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(password)); err != nil {
		return nil, "", ErrInvalidCredentials
	}

	token, err := utils.GenerateToken(account.ID, account.Email, tokenDuration)
	if err != nil {
		return nil, "", fmt.Errorf("failed to issue token: %w", err)
	}
	return account, token, nil
}

func (s *DefaultUserService) GetByID(ctx context.Context, id string) (*models.User, error) {
	account, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to fetch user %s: %w", id, err)
	}
	return account, nil
}
