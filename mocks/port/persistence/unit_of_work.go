package persistence

import (
	"context"

	"github.com/GHzOliveira/neurocooperacao-backend/internal/domain/port/persistence"
)

// MockUnitOfWork is a test unit of work that hands out the configured repo
// mocks and counts lifecycle calls. Begin can be forced to fail via BeginErr;
// Commit via CommitErr.
type MockUnitOfWork struct {
	GroupRepo       *MockGroupRepository
	RoundRepo       *MockRoundRepository
	UserRepo        *MockUserRepository
	AggregateRepo   *MockAggregateRepository
	TransactionRepo *MockTransactionRepository

	BeginErr  error
	CommitErr error

	BeginCalls    int
	CommitCalls   int
	RollbackCalls int
}

// NewMockUnitOfWork creates a unit of work backed by fresh repo mocks
func NewMockUnitOfWork() *MockUnitOfWork {
	return &MockUnitOfWork{
		GroupRepo:       &MockGroupRepository{},
		RoundRepo:       &MockRoundRepository{},
		UserRepo:        &MockUserRepository{},
		AggregateRepo:   &MockAggregateRepository{},
		TransactionRepo: &MockTransactionRepository{},
	}
}

func (m *MockUnitOfWork) Begin(ctx context.Context) (context.Context, error) {
	m.BeginCalls++
	if m.BeginErr != nil {
		return ctx, m.BeginErr
	}
	return ctx, nil
}

func (m *MockUnitOfWork) Commit(ctx context.Context) error {
	m.CommitCalls++
	return m.CommitErr
}

func (m *MockUnitOfWork) Rollback(ctx context.Context) error {
	m.RollbackCalls++
	return nil
}

func (m *MockUnitOfWork) Groups(ctx context.Context) persistence.GroupRepository {
	return m.GroupRepo
}

func (m *MockUnitOfWork) Rounds(ctx context.Context) persistence.RoundRepository {
	return m.RoundRepo
}

func (m *MockUnitOfWork) Users(ctx context.Context) persistence.UserRepository {
	return m.UserRepo
}

func (m *MockUnitOfWork) Aggregates(ctx context.Context) persistence.AggregateRepository {
	return m.AggregateRepo
}

func (m *MockUnitOfWork) Transactions(ctx context.Context) persistence.TransactionRepository {
	return m.TransactionRepo
}
