package usecase

import (
	"context"

	"github.com/GHzOliveira/neurocooperacao-backend/internal/domain/entity"
)

// AdminUseCase defines the admin login lookup
type AdminUseCase interface {
	// Login returns the admin record matching the plaintext credentials,
	// ErrAdminNotFound otherwise
	Login(ctx context.Context, user, password string) (*entity.Admin, error)
}
