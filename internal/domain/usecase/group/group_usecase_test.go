package group

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/GHzOliveira/neurocooperacao-backend/internal/domain/entity"
	errs "github.com/GHzOliveira/neurocooperacao-backend/internal/domain/error"
	"github.com/GHzOliveira/neurocooperacao-backend/internal/domain/port/usecase"
	mockcore "github.com/GHzOliveira/neurocooperacao-backend/mocks/port/core"
	mockpersistence "github.com/GHzOliveira/neurocooperacao-backend/mocks/port/persistence"
)

var fixedTime = time.Date(2024, 5, 10, 12, 0, 0, 0, time.UTC)

const testLockTimeout = 5 * time.Second

// fixture wires a group use case against mocks. Reads outside a unit of work
// hit the standalone repo mocks; transactional writes hit the uow's repos.
type fixture struct {
	uow          *mockpersistence.MockUnitOfWork
	groups       *mockpersistence.MockGroupRepository
	rounds       *mockpersistence.MockRoundRepository
	users        *mockpersistence.MockUserRepository
	aggregates   *mockpersistence.MockAggregateRepository
	transactions *mockpersistence.MockTransactionRepository
	locks        *mockpersistence.MockGroupLockRepository
	timeProvider *mockcore.MockTimeProvider
	logger       *mockcore.MockLogger
	uc           usecase.GroupUseCase
}

func newFixture() *fixture {
	f := &fixture{
		uow:          mockpersistence.NewMockUnitOfWork(),
		groups:       &mockpersistence.MockGroupRepository{},
		rounds:       &mockpersistence.MockRoundRepository{},
		users:        &mockpersistence.MockUserRepository{},
		aggregates:   &mockpersistence.MockAggregateRepository{},
		transactions: &mockpersistence.MockTransactionRepository{},
		locks:        &mockpersistence.MockGroupLockRepository{},
		timeProvider: mockcore.NewMockTimeProvider(fixedTime),
		logger:       mockcore.NewMockLogger(),
	}
	f.uc = NewGroupUseCase(
		f.uow,
		f.groups,
		f.rounds,
		f.users,
		f.aggregates,
		f.transactions,
		f.locks,
		testLockTimeout,
		f.timeProvider,
		f.logger,
	)
	return f
}

func TestListGroups(t *testing.T) {
	f := newFixture()
	groups := []entity.Group{{ID: "g1", Name: "Turma A"}, {ID: "g2", Name: "Turma B"}}
	f.groups.On("List", mock.Anything).Return(groups, nil)

	result, err := f.uc.ListGroups(context.Background())

	require.NoError(t, err)
	assert.Equal(t, groups, result)
}

func TestGetGroupWithRounds(t *testing.T) {
	t.Run("Returns the group and its rounds", func(t *testing.T) {
		f := newFixture()
		f.groups.On("GetByID", mock.Anything, "g1").Return(&entity.Group{ID: "g1", Name: "Turma A"}, nil)
		rounds := []entity.Round{{ID: "r1", GroupID: "g1", Number: "1"}}
		f.rounds.On("ListByGroup", mock.Anything, "g1").Return(rounds, nil)

		result, err := f.uc.GetGroupWithRounds(context.Background(), "g1")

		require.NoError(t, err)
		assert.Equal(t, "g1", result.Group.ID)
		assert.Equal(t, rounds, result.Rounds)
	})

	t.Run("Missing group fails without reading rounds", func(t *testing.T) {
		f := newFixture()
		f.groups.On("GetByID", mock.Anything, "missing").Return(nil, errs.ErrGroupNotFound)

		_, err := f.uc.GetGroupWithRounds(context.Background(), "missing")

		assert.ErrorIs(t, err, errs.ErrGroupNotFound)
		f.rounds.AssertNotCalled(t, "ListByGroup", mock.Anything, mock.Anything)
	})
}

func TestGetGameRule(t *testing.T) {
	f := newFixture()
	f.groups.On("GetByID", mock.Anything, "g1").Return(&entity.Group{ID: "g1", GameRule: "cooperate"}, nil)

	rule, err := f.uc.GetGameRule(context.Background(), "g1")

	require.NoError(t, err)
	assert.Equal(t, "cooperate", rule)
}

func TestUpdateGroup(t *testing.T) {
	t.Run("Renames an existing group", func(t *testing.T) {
		f := newFixture()
		f.groups.On("GetByID", mock.Anything, "g1").Return(&entity.Group{ID: "g1", Name: "old"}, nil)
		f.groups.On("UpdateName", mock.Anything, "g1", "new").Return(nil)

		group, err := f.uc.UpdateGroup(context.Background(), "g1", "new")

		require.NoError(t, err)
		assert.Equal(t, "new", group.Name)
	})

	t.Run("Missing group fails", func(t *testing.T) {
		f := newFixture()
		f.groups.On("GetByID", mock.Anything, "missing").Return(nil, errs.ErrGroupNotFound)

		_, err := f.uc.UpdateGroup(context.Background(), "missing", "new")

		assert.ErrorIs(t, err, errs.ErrGroupNotFound)
		f.groups.AssertNotCalled(t, "UpdateName", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestUpdateRound(t *testing.T) {
	f := newFixture()
	f.rounds.On("Update", mock.Anything, mock.MatchedBy(func(r *entity.Round) bool {
		return r.ID == "r1" && r.NEuro == "100" && r.Retribution == entity.RetributionFlat &&
			r.RetributionQty == "5" && r.Number == "2"
	})).Return(nil)

	err := f.uc.UpdateRound(context.Background(), "r1", usecase.RoundUpdate{
		NEuro:          "100",
		Retribution:    entity.RetributionFlat,
		RetributionQty: "5",
		Number:         "2",
	})

	require.NoError(t, err)
	f.rounds.AssertExpectations(t)
}

func TestGetRoundDetails(t *testing.T) {
	f := newFixture()
	round := &entity.Round{ID: "r1", GroupID: "g1", Number: "2"}
	f.rounds.On("GetByGroupAndNumber", mock.Anything, "g1", "2").Return(round, nil)

	result, err := f.uc.GetRoundDetails(context.Background(), "g1", "2")

	require.NoError(t, err)
	assert.Equal(t, round, result)
}
