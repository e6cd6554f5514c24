package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/GHzOliveira/neurocooperacao-backend/internal/domain/entity"
	errs "github.com/GHzOliveira/neurocooperacao-backend/internal/domain/error"
	coreport "github.com/GHzOliveira/neurocooperacao-backend/internal/domain/port/core"
	"github.com/GHzOliveira/neurocooperacao-backend/internal/infrastructure/adapter/model"
	"gorm.io/gorm"
)

// AdminRepository implements the AdminRepository interface using GORM
type AdminRepository struct {
	db     *gorm.DB
	logger coreport.Logger
}

// NewAdminRepository creates a new AdminRepository instance
func NewAdminRepository(db *gorm.DB, logger coreport.Logger) *AdminRepository {
	return &AdminRepository{
		db:     db,
		logger: logger,
	}
}

// FindByCredentials returns the admin matching user and password exactly.
// Credentials are compared by the database; no hashing is applied.
func (r *AdminRepository) FindByCredentials(ctx context.Context, user, password string) (*entity.Admin, error) {
	var adminModel model.Admin
	result := r.db.WithContext(ctx).
		Where("\"user\" = ? AND password = ?", user, password).
		First(&adminModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, errs.ErrAdminNotFound
		}
		r.logger.Error("Database error when finding admin", map[string]any{
			"error": result.Error.Error(),
		})
		return nil, fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
	}

	return &entity.Admin{
		ID:       adminModel.ID,
		User:     adminModel.User,
		Password: adminModel.Password,
	}, nil
}
