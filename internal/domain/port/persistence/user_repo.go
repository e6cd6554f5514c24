package persistence

import (
	"context"

	"github.com/GHzOliveira/neurocooperacao-backend/internal/domain/entity"
)

// UserRepository defines persistence operations for users
type UserRepository interface {
	// Create inserts a new user
	Create(ctx context.Context, user *entity.User) error

	// GetByID retrieves a user by id, ErrUserNotFound if missing
	GetByID(ctx context.Context, id string) (*entity.User, error)

	// List returns all users
	List(ctx context.Context) ([]entity.User, error)

	// ListByGroup returns all users belonging to a group
	ListByGroup(ctx context.Context, groupID string) ([]entity.User, error)

	// Update rewrites a user's editable fields
	Update(ctx context.Context, user *entity.User) error

	// UpdateBalance persists a new text-encoded nEuro balance
	UpdateBalance(ctx context.Context, id, nEuro string) error

	// Delete removes a user, ErrUserNotFound if missing
	Delete(ctx context.Context, id string) error

	// DeleteByGroup removes all users belonging to a group
	DeleteByGroup(ctx context.Context, groupID string) error
}
