package admin

import (
	"context"

	"github.com/GHzOliveira/neurocooperacao-backend/internal/domain/entity"
	coreport "github.com/GHzOliveira/neurocooperacao-backend/internal/domain/port/core"
	"github.com/GHzOliveira/neurocooperacao-backend/internal/domain/port/persistence"
	"github.com/GHzOliveira/neurocooperacao-backend/internal/domain/port/usecase"
)

// AdminUseCase implements the admin login lookup. Credentials are compared in
// plaintext against the stored record; no token or session is issued.
type AdminUseCase struct {
	adminRepo persistence.AdminRepository
	logger    coreport.Logger
}

// NewAdminUseCase creates a new admin use case instance
func NewAdminUseCase(adminRepo persistence.AdminRepository, logger coreport.Logger) usecase.AdminUseCase {
	return &AdminUseCase{
		adminRepo: adminRepo,
		logger:    logger,
	}
}

// Login returns the admin matching the supplied credentials
func (a *AdminUseCase) Login(ctx context.Context, user, password string) (*entity.Admin, error) {
	admin, err := a.adminRepo.FindByCredentials(ctx, user, password)
	if err != nil {
		a.logger.Warn("Admin login failed", map[string]any{
			"user": user,
		})
		return nil, err
	}

	a.logger.Info("Admin logged in", map[string]any{
		"user": user,
	})
	return admin, nil
}
