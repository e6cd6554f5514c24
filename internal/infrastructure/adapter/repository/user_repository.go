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

// UserRepository implements the UserRepository interface using GORM
type UserRepository struct {
	db              *gorm.DB
	timeProvider    coreport.TimeProvider
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

// NewUserRepository creates a new UserRepository instance
func NewUserRepository(db *gorm.DB, timeProvider coreport.TimeProvider, logger coreport.Logger) *UserRepository {
	return &UserRepository{
		db:              db,
		timeProvider:    timeProvider,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

func userModelToEntity(m *model.User) *entity.User {
	return &entity.User{
		ID:        m.ID,
		Name:      m.Name,
		Contact:   m.Contact,
		GroupID:   m.GroupID,
		NEuro:     m.NEuro,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

func (r *UserRepository) handleDatabaseError(operation string, err error, userID string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		r.logger.Warn("User not found", map[string]any{
			"user_id": userID,
		})
		return errs.ErrUserNotFound
	}

	r.logger.Error(fmt.Sprintf("Database error when %s", operation), map[string]any{
		"user_id": userID,
		"error":   err.Error(),
	})

	if r.errorClassifier.IsConstraintError(err) {
		return errs.ErrConstraintViolation
	}

	return fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, err.Error())
}

// Create inserts a new user
func (r *UserRepository) Create(ctx context.Context, user *entity.User) error {
	r.logger.Debug("Creating new user", map[string]any{
		"user_id":  user.ID,
		"group_id": user.GroupID,
	})

	userModel := model.User{
		ID:        user.ID,
		Name:      user.Name,
		Contact:   user.Contact,
		GroupID:   user.GroupID,
		NEuro:     user.NEuro,
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	}

	result := r.db.WithContext(ctx).Create(&userModel)
	if result.Error != nil {
		return r.handleDatabaseError("creating user", result.Error, user.ID)
	}

	return nil
}

// GetByID retrieves a user by id
func (r *UserRepository) GetByID(ctx context.Context, id string) (*entity.User, error) {
	var userModel model.User
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&userModel)
	if result.Error != nil {
		return nil, r.handleDatabaseError("getting user", result.Error, id)
	}

	return userModelToEntity(&userModel), nil
}

// List returns all users
func (r *UserRepository) List(ctx context.Context) ([]entity.User, error) {
	var userModels []model.User
	result := r.db.WithContext(ctx).Order("created_at").Find(&userModels)
	if result.Error != nil {
		return nil, r.handleDatabaseError("listing users", result.Error, "")
	}

	users := make([]entity.User, 0, len(userModels))
	for i := range userModels {
		users = append(users, *userModelToEntity(&userModels[i]))
	}

	return users, nil
}

// ListByGroup returns all users belonging to a group
func (r *UserRepository) ListByGroup(ctx context.Context, groupID string) ([]entity.User, error) {
	var userModels []model.User
	result := r.db.WithContext(ctx).
		Where("group_id = ?", groupID).
		Order("created_at").
		Find(&userModels)
	if result.Error != nil {
		return nil, r.handleDatabaseError("listing group users", result.Error, groupID)
	}

	users := make([]entity.User, 0, len(userModels))
	for i := range userModels {
		users = append(users, *userModelToEntity(&userModels[i]))
	}

	return users, nil
}

// Update rewrites a user's editable fields
func (r *UserRepository) Update(ctx context.Context, user *entity.User) error {
	result := r.db.WithContext(ctx).Model(&model.User{}).
		Where("id = ?", user.ID).
		Updates(map[string]any{
			"name":       user.Name,
			"contact":    user.Contact,
			"group_id":   user.GroupID,
			"n_euro":     user.NEuro,
			"updated_at": r.timeProvider.Now(),
		})
	if result.Error != nil {
		return r.handleDatabaseError("updating user", result.Error, user.ID)
	}
	if result.RowsAffected == 0 {
		return errs.ErrUserNotFound
	}

	return nil
}

// UpdateBalance persists a new text-encoded nEuro balance
func (r *UserRepository) UpdateBalance(ctx context.Context, id, nEuro string) error {
	result := r.db.WithContext(ctx).Model(&model.User{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"n_euro":     nEuro,
			"updated_at": r.timeProvider.Now(),
		})
	if result.Error != nil {
		return r.handleDatabaseError("updating balance", result.Error, id)
	}
	if result.RowsAffected == 0 {
		return errs.ErrUserNotFound
	}

	return nil
}

// Delete removes a user
func (r *UserRepository) Delete(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.User{})
	if result.Error != nil {
		return r.handleDatabaseError("deleting user", result.Error, id)
	}
	if result.RowsAffected == 0 {
		return errs.ErrUserNotFound
	}

	return nil
}

// DeleteByGroup removes all users belonging to a group
func (r *UserRepository) DeleteByGroup(ctx context.Context, groupID string) error {
	result := r.db.WithContext(ctx).Where("group_id = ?", groupID).Delete(&model.User{})
	if result.Error != nil {
		return r.handleDatabaseError("deleting group users", result.Error, groupID)
	}

	return nil
}
