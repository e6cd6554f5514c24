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

// AggregateRepository implements the AggregateRepository interface using GORM
type AggregateRepository struct {
	db           *gorm.DB
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
}

// NewAggregateRepository creates a new AggregateRepository instance
func NewAggregateRepository(db *gorm.DB, timeProvider coreport.TimeProvider, logger coreport.Logger) *AggregateRepository {
	return &AggregateRepository{
		db:           db,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

func aggregateModelToEntity(m *model.AggregateValues) *entity.AggregateValues {
	return &entity.AggregateValues{
		ID:           m.ID,
		GroupID:      m.GroupID,
		TotalNEuro:   m.TotalNEuro,
		TotalUsers:   m.TotalUsers,
		RetainedFund: m.RetainedFund,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

func (r *AggregateRepository) handleDatabaseError(operation string, err error, groupID string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return errs.ErrAggregateNotFound
	}

	r.logger.Error(fmt.Sprintf("Database error when %s", operation), map[string]any{
		"group_id": groupID,
		"error":    err.Error(),
	})

	return fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, err.Error())
}

// GetByGroup retrieves a group's aggregate values
func (r *AggregateRepository) GetByGroup(ctx context.Context, groupID string) (*entity.AggregateValues, error) {
	var valuesModel model.AggregateValues
	result := r.db.WithContext(ctx).Where("group_id = ?", groupID).First(&valuesModel)
	if result.Error != nil {
		return nil, r.handleDatabaseError("getting aggregate values", result.Error, groupID)
	}

	return aggregateModelToEntity(&valuesModel), nil
}

// Create inserts the lazily-created aggregate row for a group
func (r *AggregateRepository) Create(ctx context.Context, values *entity.AggregateValues) error {
	valuesModel := model.AggregateValues{
		ID:           values.ID,
		GroupID:      values.GroupID,
		TotalNEuro:   values.TotalNEuro,
		TotalUsers:   values.TotalUsers,
		RetainedFund: values.RetainedFund,
		CreatedAt:    values.CreatedAt,
		UpdatedAt:    values.UpdatedAt,
	}

	result := r.db.WithContext(ctx).Create(&valuesModel)
	if result.Error != nil {
		return r.handleDatabaseError("creating aggregate values", result.Error, values.GroupID)
	}

	return nil
}

// Update rewrites the totals
func (r *AggregateRepository) Update(ctx context.Context, values *entity.AggregateValues) error {
	result := r.db.WithContext(ctx).Model(&model.AggregateValues{}).
		Where("group_id = ?", values.GroupID).
		Updates(map[string]any{
			"total_n_euro":  values.TotalNEuro,
			"total_users":   values.TotalUsers,
			"retained_fund": values.RetainedFund,
			"updated_at":    r.timeProvider.Now(),
		})
	if result.Error != nil {
		return r.handleDatabaseError("updating aggregate values", result.Error, values.GroupID)
	}
	if result.RowsAffected == 0 {
		return errs.ErrAggregateNotFound
	}

	return nil
}

// DeleteByGroup removes a group's aggregate values
func (r *AggregateRepository) DeleteByGroup(ctx context.Context, groupID string) error {
	result := r.db.WithContext(ctx).Where("group_id = ?", groupID).Delete(&model.AggregateValues{})
	if result.Error != nil {
		return r.handleDatabaseError("deleting aggregate values", result.Error, groupID)
	}

	return nil
}
