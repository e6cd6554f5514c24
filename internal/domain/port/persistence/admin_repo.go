package persistence

import (
	"context"

	"github.com/GHzOliveira/neurocooperacao-backend/internal/domain/entity"
)

// AdminRepository defines the single admin lookup
type AdminRepository interface {
	// FindByCredentials returns the admin matching user and password exactly,
	// ErrAdminNotFound otherwise
	FindByCredentials(ctx context.Context, user, password string) (*entity.Admin, error)
}
