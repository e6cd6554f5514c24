package persistence

import (
	"context"
	"time"

	"github.com/GHzOliveira/neurocooperacao-backend/internal/domain/entity"
	"github.com/stretchr/testify/mock"
)

// MockGroupRepository is a testify mock for the GroupRepository interface
type MockGroupRepository struct {
	mock.Mock
}

func (m *MockGroupRepository) Create(ctx context.Context, group *entity.Group) error {
	args := m.Called(ctx, group)
	return args.Error(0)
}

func (m *MockGroupRepository) GetByID(ctx context.Context, id string) (*entity.Group, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Group), args.Error(1)
}

func (m *MockGroupRepository) GetByName(ctx context.Context, name string) (*entity.Group, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Group), args.Error(1)
}

func (m *MockGroupRepository) List(ctx context.Context) ([]entity.Group, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Group), args.Error(1)
}

func (m *MockGroupRepository) UpdateName(ctx context.Context, id, name string) error {
	args := m.Called(ctx, id, name)
	return args.Error(0)
}

func (m *MockGroupRepository) UpdateGameRule(ctx context.Context, id, gameRule string) error {
	args := m.Called(ctx, id, gameRule)
	return args.Error(0)
}

func (m *MockGroupRepository) SetGameServerCreated(ctx context.Context, id string, created bool) error {
	args := m.Called(ctx, id, created)
	return args.Error(0)
}

func (m *MockGroupRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockRoundRepository is a testify mock for the RoundRepository interface
type MockRoundRepository struct {
	mock.Mock
}

func (m *MockRoundRepository) Create(ctx context.Context, round *entity.Round) error {
	args := m.Called(ctx, round)
	return args.Error(0)
}

func (m *MockRoundRepository) GetByGroupAndNumber(ctx context.Context, groupID, number string) (*entity.Round, error) {
	args := m.Called(ctx, groupID, number)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Round), args.Error(1)
}

func (m *MockRoundRepository) ListByGroup(ctx context.Context, groupID string) ([]entity.Round, error) {
	args := m.Called(ctx, groupID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Round), args.Error(1)
}

func (m *MockRoundRepository) Latest(ctx context.Context, groupID string) (*entity.Round, error) {
	args := m.Called(ctx, groupID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Round), args.Error(1)
}

func (m *MockRoundRepository) HasNumberAbove(ctx context.Context, groupID string, n int) (bool, error) {
	args := m.Called(ctx, groupID, n)
	return args.Bool(0), args.Error(1)
}

func (m *MockRoundRepository) Update(ctx context.Context, round *entity.Round) error {
	args := m.Called(ctx, round)
	return args.Error(0)
}

func (m *MockRoundRepository) DeleteByGroup(ctx context.Context, groupID string) error {
	args := m.Called(ctx, groupID)
	return args.Error(0)
}

// MockUserRepository is a testify mock for the UserRepository interface
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *entity.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) GetByID(ctx context.Context, id string) (*entity.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *MockUserRepository) List(ctx context.Context) ([]entity.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.User), args.Error(1)
}

func (m *MockUserRepository) ListByGroup(ctx context.Context, groupID string) ([]entity.User, error) {
	args := m.Called(ctx, groupID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.User), args.Error(1)
}

func (m *MockUserRepository) Update(ctx context.Context, user *entity.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) UpdateBalance(ctx context.Context, id, nEuro string) error {
	args := m.Called(ctx, id, nEuro)
	return args.Error(0)
}

func (m *MockUserRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockUserRepository) DeleteByGroup(ctx context.Context, groupID string) error {
	args := m.Called(ctx, groupID)
	return args.Error(0)
}

// MockAggregateRepository is a testify mock for the AggregateRepository interface
type MockAggregateRepository struct {
	mock.Mock
}

func (m *MockAggregateRepository) GetByGroup(ctx context.Context, groupID string) (*entity.AggregateValues, error) {
	args := m.Called(ctx, groupID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.AggregateValues), args.Error(1)
}

func (m *MockAggregateRepository) Create(ctx context.Context, values *entity.AggregateValues) error {
	args := m.Called(ctx, values)
	return args.Error(0)
}

func (m *MockAggregateRepository) Update(ctx context.Context, values *entity.AggregateValues) error {
	args := m.Called(ctx, values)
	return args.Error(0)
}

func (m *MockAggregateRepository) DeleteByGroup(ctx context.Context, groupID string) error {
	args := m.Called(ctx, groupID)
	return args.Error(0)
}

// MockTransactionRepository is a testify mock for the ledger repository interface
type MockTransactionRepository struct {
	mock.Mock
}

func (m *MockTransactionRepository) Create(ctx context.Context, transaction *entity.Transaction) error {
	args := m.Called(ctx, transaction)
	return args.Error(0)
}

func (m *MockTransactionRepository) ListByGroup(ctx context.Context, groupID string) ([]entity.Transaction, error) {
	args := m.Called(ctx, groupID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Transaction), args.Error(1)
}

func (m *MockTransactionRepository) DeleteByGroup(ctx context.Context, groupID string) error {
	args := m.Called(ctx, groupID)
	return args.Error(0)
}

// MockAdminRepository is a testify mock for the AdminRepository interface
type MockAdminRepository struct {
	mock.Mock
}

func (m *MockAdminRepository) FindByCredentials(ctx context.Context, user, password string) (*entity.Admin, error) {
	args := m.Called(ctx, user, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Admin), args.Error(1)
}

// MockGroupLockRepository is a testify mock for the GroupLockRepository interface
type MockGroupLockRepository struct {
	mock.Mock
}

func (m *MockGroupLockRepository) AcquireLock(ctx context.Context, groupID string, duration time.Duration) error {
	args := m.Called(ctx, groupID, duration)
	return args.Error(0)
}

func (m *MockGroupLockRepository) ReleaseLock(ctx context.Context, groupID string) error {
	args := m.Called(ctx, groupID)
	return args.Error(0)
}

func (m *MockGroupLockRepository) CleanupExpiredLocks(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
