package user

import (
	"context"

	userRepo "garagehub/database/repository/user"
	"garagehub/models"
)

// UserService is the identity collaborator: account registration and
// credential verification. The booking core only trusts it for caller ids.
type UserService interface {
	Register(ctx context.Context, input RegistrationInput) (*models.User, string, error)
	Authenticate(ctx context.Context, email, password string) (*models.User, string, error)
	GetByID(ctx context.Context, id string) (*models.User, error)
}

// RegistrationInput is the signup payload.
type RegistrationInput struct {
	FirstName string `json:"firstname" binding:"required"`
	LastName  string `json:"lastname" binding:"required"`
	Email     string `json:"email" binding:"required,email"`
	Phone     string `json:"phone"`
	Password  string `json:"password" binding:"required,min=6"`
}

// DefaultUserService implements UserService.
type DefaultUserService struct {
	Repo userRepo.UserRepository
}
