package usecase

import (
	"context"

	"github.com/GHzOliveira/neurocooperacao-backend/internal/domain/entity"
)

// CreateUserRequest carries the user creation input
type CreateUserRequest struct {
	Name    string
	Contact string
	GroupID string
	NEuro   string
}

// UserUseCase defines user management operations
type UserUseCase interface {
	// CreateUser creates a new user in a group
	CreateUser(ctx context.Context, req CreateUserRequest) (*entity.User, error)

	// ListUsers returns all users
	ListUsers(ctx context.Context) ([]entity.User, error)

	// GetUser returns one user, ErrUserNotFound if missing
	GetUser(ctx context.Context, id string) (*entity.User, error)

	// UpdateUser rewrites a user's editable fields
	UpdateUser(ctx context.Context, id string, req CreateUserRequest) (*entity.User, error)

	// UpdateNEuro sets a user's balance directly
	UpdateNEuro(ctx context.Context, id, nEuro string) (*entity.User, error)

	// DeleteUser removes a user and decrements the owning group's member
	// counter in the same atomic unit
	DeleteUser(ctx context.Context, id string) error
}
