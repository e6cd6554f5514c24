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

// TransactionRepository implements the ledger repository interface using GORM
type TransactionRepository struct {
	db     *gorm.DB
	logger coreport.Logger
}

// NewTransactionRepository creates a new TransactionRepository instance
func NewTransactionRepository(db *gorm.DB, logger coreport.Logger) *TransactionRepository {
	return &TransactionRepository{
		db:     db,
		logger: logger,
	}
}

func transactionModelToEntity(m *model.Transaction) *entity.Transaction {
	return &entity.Transaction{
		ID:              m.ID,
		UserID:          m.UserID,
		RoundID:         m.RoundID,
		TransactionType: m.TransactionType,
		Amount:          m.Amount,
		CreatedAt:       m.CreatedAt,
	}
}

func (r *TransactionRepository) handleDatabaseError(operation string, err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return errs.ErrTransactionNotFound
	}

	r.logger.Error(fmt.Sprintf("Database error when %s", operation), map[string]any{
		"error": err.Error(),
	})

	return fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, err.Error())
}

// Create appends a ledger entry
func (r *TransactionRepository) Create(ctx context.Context, transaction *entity.Transaction) error {
	transactionModel := model.Transaction{
		ID:              transaction.ID,
		UserID:          transaction.UserID,
		RoundID:         transaction.RoundID,
		TransactionType: transaction.TransactionType,
		Amount:          transaction.Amount,
		CreatedAt:       transaction.CreatedAt,
	}

	result := r.db.WithContext(ctx).Create(&transactionModel)
	if result.Error != nil {
		return r.handleDatabaseError("creating transaction", result.Error)
	}

	return nil
}

// ListByGroup returns the ledger entries of a group's users
func (r *TransactionRepository) ListByGroup(ctx context.Context, groupID string) ([]entity.Transaction, error) {
	var transactionModels []model.Transaction
	result := r.db.WithContext(ctx).
		Where("user_id IN (?)", r.db.Model(&model.User{}).Select("id").Where("group_id = ?", groupID)).
		Order("created_at").
		Find(&transactionModels)
	if result.Error != nil {
		return nil, r.handleDatabaseError("listing transactions", result.Error)
	}

	transactions := make([]entity.Transaction, 0, len(transactionModels))
	for i := range transactionModels {
		transactions = append(transactions, *transactionModelToEntity(&transactionModels[i]))
	}

	return transactions, nil
}

// DeleteByGroup removes all ledger entries belonging to a group's users
func (r *TransactionRepository) DeleteByGroup(ctx context.Context, groupID string) error {
	result := r.db.WithContext(ctx).
		Where("user_id IN (?)", r.db.Model(&model.User{}).Select("id").Where("group_id = ?", groupID)).
		Delete(&model.Transaction{})
	if result.Error != nil {
		return r.handleDatabaseError("deleting transactions", result.Error)
	}

	return nil
}
