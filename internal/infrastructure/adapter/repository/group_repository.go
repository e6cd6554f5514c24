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

// GroupRepository implements the GroupRepository interface using GORM
type GroupRepository struct {
	db              *gorm.DB
	timeProvider    coreport.TimeProvider
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

// NewGroupRepository creates a new GroupRepository instance
func NewGroupRepository(db *gorm.DB, timeProvider coreport.TimeProvider, logger coreport.Logger) *GroupRepository {
	return &GroupRepository{
		db:              db,
		timeProvider:    timeProvider,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

func groupModelToEntity(m *model.Group) *entity.Group {
	return &entity.Group{
		ID:                m.ID,
		Name:              m.Name,
		GameRule:          m.GameRule,
		GameServerCreated: m.GameServerCreated,
		CreatedAt:         m.CreatedAt,
		UpdatedAt:         m.UpdatedAt,
	}
}

// handleDatabaseError standardizes database error handling
func (r *GroupRepository) handleDatabaseError(operation string, err error, groupID string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		r.logger.Warn("Group not found", map[string]any{
			"group_id": groupID,
		})
		return errs.ErrGroupNotFound
	}

	r.logger.Error(fmt.Sprintf("Database error when %s", operation), map[string]any{
		"group_id": groupID,
		"error":    err.Error(),
	})

	if r.errorClassifier.IsDuplicateKeyError(err) {
		return errs.ErrDuplicateGroup
	}
	if r.errorClassifier.IsConstraintError(err) {
		return errs.ErrConstraintViolation
	}

	return fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, err.Error())
}

// Create inserts a new group
func (r *GroupRepository) Create(ctx context.Context, group *entity.Group) error {
	r.logger.Debug("Creating new group", map[string]any{
		"group_id": group.ID,
		"name":     group.Name,
	})

	groupModel := model.Group{
		ID:                group.ID,
		Name:              group.Name,
		GameRule:          group.GameRule,
		GameServerCreated: group.GameServerCreated,
		CreatedAt:         group.CreatedAt,
		UpdatedAt:         group.UpdatedAt,
	}

	result := r.db.WithContext(ctx).Create(&groupModel)
	if result.Error != nil {
		return r.handleDatabaseError("creating group", result.Error, group.ID)
	}

	return nil
}

// GetByID retrieves a group by id
func (r *GroupRepository) GetByID(ctx context.Context, id string) (*entity.Group, error) {
	var groupModel model.Group
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&groupModel)
	if result.Error != nil {
		return nil, r.handleDatabaseError("getting group", result.Error, id)
	}

	return groupModelToEntity(&groupModel), nil
}

// GetByName retrieves a group by its unique name
func (r *GroupRepository) GetByName(ctx context.Context, name string) (*entity.Group, error) {
	var groupModel model.Group
	result := r.db.WithContext(ctx).Where("name = ?", name).First(&groupModel)
	if result.Error != nil {
		return nil, r.handleDatabaseError("getting group by name", result.Error, name)
	}

	return groupModelToEntity(&groupModel), nil
}

// List returns all groups
func (r *GroupRepository) List(ctx context.Context) ([]entity.Group, error) {
	var groupModels []model.Group
	result := r.db.WithContext(ctx).Order("created_at").Find(&groupModels)
	if result.Error != nil {
		return nil, r.handleDatabaseError("listing groups", result.Error, "")
	}

	groups := make([]entity.Group, 0, len(groupModels))
	for i := range groupModels {
		groups = append(groups, *groupModelToEntity(&groupModels[i]))
	}

	return groups, nil
}

// UpdateName renames a group
func (r *GroupRepository) UpdateName(ctx context.Context, id, name string) error {
	result := r.db.WithContext(ctx).Model(&model.Group{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"name":       name,
			"updated_at": r.timeProvider.Now(),
		})
	if result.Error != nil {
		return r.handleDatabaseError("updating group name", result.Error, id)
	}
	if result.RowsAffected == 0 {
		return errs.ErrGroupNotFound
	}

	return nil
}

// UpdateGameRule stores the free-text game rule for a group
func (r *GroupRepository) UpdateGameRule(ctx context.Context, id, gameRule string) error {
	result := r.db.WithContext(ctx).Model(&model.Group{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"game_rule":  gameRule,
			"updated_at": r.timeProvider.Now(),
		})
	if result.Error != nil {
		return r.handleDatabaseError("updating game rule", result.Error, id)
	}
	if result.RowsAffected == 0 {
		return errs.ErrGroupNotFound
	}

	return nil
}

// SetGameServerCreated flags that a real-time session exists for the group
func (r *GroupRepository) SetGameServerCreated(ctx context.Context, id string, created bool) error {
	result := r.db.WithContext(ctx).Model(&model.Group{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"game_server_created": created,
			"updated_at":          r.timeProvider.Now(),
		})
	if result.Error != nil {
		return r.handleDatabaseError("flagging game server", result.Error, id)
	}
	if result.RowsAffected == 0 {
		return errs.ErrGroupNotFound
	}

	return nil
}

// Delete removes the group row
func (r *GroupRepository) Delete(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.Group{})
	if result.Error != nil {
		return r.handleDatabaseError("deleting group", result.Error, id)
	}
	if result.RowsAffected == 0 {
		return errs.ErrGroupNotFound
	}

	r.logger.Info("Group deleted", map[string]any{"group_id": id})
	return nil
}
