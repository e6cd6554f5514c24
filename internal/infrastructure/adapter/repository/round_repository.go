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

// RoundRepository implements the RoundRepository interface using GORM
type RoundRepository struct {
	db     *gorm.DB
	logger coreport.Logger
}

// NewRoundRepository creates a new RoundRepository instance
func NewRoundRepository(db *gorm.DB, logger coreport.Logger) *RoundRepository {
	return &RoundRepository{
		db:     db,
		logger: logger,
	}
}

func roundModelToEntity(m *model.Round) *entity.Round {
	return &entity.Round{
		ID:             m.ID,
		GroupID:        m.GroupID,
		NEuro:          m.NEuro,
		Retribution:    m.Retribution,
		RetributionQty: m.RetributionQty,
		Number:         m.Number,
		CreatedAt:      m.CreatedAt,
	}
}

func (r *RoundRepository) handleDatabaseError(operation string, err error, groupID string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return errs.ErrRoundNotFound
	}

	r.logger.Error(fmt.Sprintf("Database error when %s", operation), map[string]any{
		"group_id": groupID,
		"error":    err.Error(),
	})

	return fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, err.Error())
}

// Create inserts a new round
func (r *RoundRepository) Create(ctx context.Context, round *entity.Round) error {
	roundModel := model.Round{
		ID:             round.ID,
		GroupID:        round.GroupID,
		NEuro:          round.NEuro,
		Retribution:    round.Retribution,
		RetributionQty: round.RetributionQty,
		Number:         round.Number,
		CreatedAt:      round.CreatedAt,
	}

	result := r.db.WithContext(ctx).Create(&roundModel)
	if result.Error != nil {
		return r.handleDatabaseError("creating round", result.Error, round.GroupID)
	}

	return nil
}

// GetByGroupAndNumber retrieves the round with the given sequence number
func (r *RoundRepository) GetByGroupAndNumber(ctx context.Context, groupID, number string) (*entity.Round, error) {
	var roundModel model.Round
	result := r.db.WithContext(ctx).
		Where("group_id = ? AND number = ?", groupID, number).
		First(&roundModel)
	if result.Error != nil {
		return nil, r.handleDatabaseError("getting round", result.Error, groupID)
	}

	return roundModelToEntity(&roundModel), nil
}

// ListByGroup returns a group's rounds ordered by creation
func (r *RoundRepository) ListByGroup(ctx context.Context, groupID string) ([]entity.Round, error) {
	var roundModels []model.Round
	result := r.db.WithContext(ctx).
		Where("group_id = ?", groupID).
		Order("created_at").
		Find(&roundModels)
	if result.Error != nil {
		return nil, r.handleDatabaseError("listing rounds", result.Error, groupID)
	}

	rounds := make([]entity.Round, 0, len(roundModels))
	for i := range roundModels {
		rounds = append(rounds, *roundModelToEntity(&roundModels[i]))
	}

	return rounds, nil
}

// Latest returns the group's most recent round by creation timestamp
func (r *RoundRepository) Latest(ctx context.Context, groupID string) (*entity.Round, error) {
	var roundModel model.Round
	result := r.db.WithContext(ctx).
		Where("group_id = ?", groupID).
		Order("created_at DESC").
		First(&roundModel)
	if result.Error != nil {
		return nil, r.handleDatabaseError("getting latest round", result.Error, groupID)
	}

	return roundModelToEntity(&roundModel), nil
}

// HasNumberAbove reports whether the group has any round with a sequence
// number strictly greater than n. Numbers are stored as text, so the
// comparison happens after parsing; rows that fail to parse are skipped.
func (r *RoundRepository) HasNumberAbove(ctx context.Context, groupID string, n int) (bool, error) {
	var numbers []string
	result := r.db.WithContext(ctx).
		Model(&model.Round{}).
		Where("group_id = ?", groupID).
		Pluck("number", &numbers)
	if result.Error != nil {
		return false, r.handleDatabaseError("checking round numbers", result.Error, groupID)
	}

	for _, raw := range numbers {
		parsed, err := entity.ParseRoundNumber(raw)
		if err != nil {
			r.logger.Warn("Skipping unparseable round number", map[string]any{
				"group_id": groupID,
				"number":   raw,
			})
			continue
		}
		if parsed > n {
			return true, nil
		}
	}

	return false, nil
}

// Update rewrites a round's parameters
func (r *RoundRepository) Update(ctx context.Context, round *entity.Round) error {
	result := r.db.WithContext(ctx).Model(&model.Round{}).
		Where("id = ?", round.ID).
		Updates(map[string]any{
			"n_euro":          round.NEuro,
			"retribution":     round.Retribution,
			"retribution_qty": round.RetributionQty,
			"number":          round.Number,
		})
	if result.Error != nil {
		return r.handleDatabaseError("updating round", result.Error, round.GroupID)
	}
	if result.RowsAffected == 0 {
		return errs.ErrRoundNotFound
	}

	return nil
}

// DeleteByGroup removes all rounds belonging to a group
func (r *RoundRepository) DeleteByGroup(ctx context.Context, groupID string) error {
	result := r.db.WithContext(ctx).Where("group_id = ?", groupID).Delete(&model.Round{})
	if result.Error != nil {
		return r.handleDatabaseError("deleting rounds", result.Error, groupID)
	}

	return nil
}
