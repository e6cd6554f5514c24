package group

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/GHzOliveira/neurocooperacao-backend/internal/domain/entity"
	errs "github.com/GHzOliveira/neurocooperacao-backend/internal/domain/error"
)

func TestNextRound(t *testing.T) {
	t.Run("Settles the pool across members and retains the remainder", func(t *testing.T) {
		f := newFixture()
		f.locks.On("AcquireLock", mock.Anything, "g1", testLockTimeout).Return(nil)
		f.locks.On("ReleaseLock", mock.Anything, "g1").Return(nil)

		values := &entity.AggregateValues{ID: "a1", GroupID: "g1", TotalNEuro: "100", TotalUsers: 3, RetainedFund: "0"}
		f.uow.AggregateRepo.On("GetByGroup", mock.Anything, "g1").Return(values, nil)
		f.uow.RoundRepo.On("Latest", mock.Anything, "g1").Return(&entity.Round{ID: "r1", GroupID: "g1", Number: "1"}, nil)
		f.uow.UserRepo.On("ListByGroup", mock.Anything, "g1").Return([]entity.User{
			{ID: "u1", NEuro: "10"},
			{ID: "u2", NEuro: "0"},
			{ID: "u3", NEuro: "5"},
		}, nil)

		// floor(100/3) = 33 each, floor((100/3 - 33) * 3) = 1 retained
		f.uow.UserRepo.On("UpdateBalance", mock.Anything, "u1", "43").Return(nil)
		f.uow.UserRepo.On("UpdateBalance", mock.Anything, "u2", "33").Return(nil)
		f.uow.UserRepo.On("UpdateBalance", mock.Anything, "u3", "38").Return(nil)
		f.uow.AggregateRepo.On("Update", mock.Anything, values).Return(nil)

		result, err := f.uc.NextRound(context.Background(), "g1")

		require.NoError(t, err)
		assert.Equal(t, "33", result.Share)
		assert.Equal(t, "1", result.RetainedFund)
		assert.Equal(t, 3, result.UsersSettled)
		assert.Equal(t, "0", values.TotalNEuro)
		assert.Equal(t, "1", values.RetainedFund)
		assert.Equal(t, 1, f.uow.CommitCalls)
		f.uow.UserRepo.AssertExpectations(t)
		f.locks.AssertExpectations(t)
	})

	t.Run("Latest round's flat retribution is added on top of each share", func(t *testing.T) {
		f := newFixture()
		f.locks.On("AcquireLock", mock.Anything, "g1", testLockTimeout).Return(nil)
		f.locks.On("ReleaseLock", mock.Anything, "g1").Return(nil)

		values := &entity.AggregateValues{ID: "a1", GroupID: "g1", TotalNEuro: "90", TotalUsers: 3, RetainedFund: "0"}
		f.uow.AggregateRepo.On("GetByGroup", mock.Anything, "g1").Return(values, nil)
		f.uow.RoundRepo.On("Latest", mock.Anything, "g1").Return(&entity.Round{
			ID: "r2", GroupID: "g1", Retribution: entity.RetributionFlat, RetributionQty: "5", Number: "2",
		}, nil)
		f.uow.UserRepo.On("ListByGroup", mock.Anything, "g1").Return([]entity.User{{ID: "u1", NEuro: "0"}}, nil)

		// share 30 + flat 5 + prior balance 0
		f.uow.UserRepo.On("UpdateBalance", mock.Anything, "u1", "35").Return(nil)
		f.uow.AggregateRepo.On("Update", mock.Anything, values).Return(nil)

		_, err := f.uc.NextRound(context.Background(), "g1")

		require.NoError(t, err)
		f.uow.UserRepo.AssertExpectations(t)
	})

	t.Run("Percentage retribution scales each share", func(t *testing.T) {
		f := newFixture()
		f.locks.On("AcquireLock", mock.Anything, "g1", testLockTimeout).Return(nil)
		f.locks.On("ReleaseLock", mock.Anything, "g1").Return(nil)

		values := &entity.AggregateValues{ID: "a1", GroupID: "g1", TotalNEuro: "100", TotalUsers: 2, RetainedFund: "0"}
		f.uow.AggregateRepo.On("GetByGroup", mock.Anything, "g1").Return(values, nil)
		f.uow.RoundRepo.On("Latest", mock.Anything, "g1").Return(&entity.Round{
			ID: "r2", GroupID: "g1", Retribution: entity.RetributionPercent, RetributionQty: "10", Number: "2",
		}, nil)
		f.uow.UserRepo.On("ListByGroup", mock.Anything, "g1").Return([]entity.User{{ID: "u1", NEuro: "0"}}, nil)

		// share 50 + 10% = 55
		f.uow.UserRepo.On("UpdateBalance", mock.Anything, "u1", "55").Return(nil)
		f.uow.AggregateRepo.On("Update", mock.Anything, values).Return(nil)

		_, err := f.uc.NextRound(context.Background(), "g1")

		require.NoError(t, err)
		f.uow.UserRepo.AssertExpectations(t)
	})

	t.Run("A held lock fails fast without opening a transaction", func(t *testing.T) {
		f := newFixture()
		f.locks.On("AcquireLock", mock.Anything, "g1", testLockTimeout).Return(errs.ErrGroupLocked)

		_, err := f.uc.NextRound(context.Background(), "g1")

		assert.ErrorIs(t, err, errs.ErrGroupLocked)
		assert.Equal(t, 0, f.uow.BeginCalls)
		f.locks.AssertNotCalled(t, "ReleaseLock", mock.Anything, mock.Anything)
	})

	t.Run("Lock is released when settlement fails", func(t *testing.T) {
		f := newFixture()
		f.locks.On("AcquireLock", mock.Anything, "g1", testLockTimeout).Return(nil)
		f.locks.On("ReleaseLock", mock.Anything, "g1").Return(nil)
		f.uow.AggregateRepo.On("GetByGroup", mock.Anything, "g1").Return(nil, errs.ErrAggregateNotFound)

		_, err := f.uc.NextRound(context.Background(), "g1")

		assert.ErrorIs(t, err, errs.ErrAggregateNotFound)
		assert.Equal(t, 1, f.uow.RollbackCalls)
		f.locks.AssertExpectations(t)
	})

	t.Run("Zero members fails with settlement context", func(t *testing.T) {
		f := newFixture()
		f.locks.On("AcquireLock", mock.Anything, "g1", testLockTimeout).Return(nil)
		f.locks.On("ReleaseLock", mock.Anything, "g1").Return(nil)

		values := &entity.AggregateValues{ID: "a1", GroupID: "g1", TotalNEuro: "100", TotalUsers: 0}
		f.uow.AggregateRepo.On("GetByGroup", mock.Anything, "g1").Return(values, nil)
		f.uow.RoundRepo.On("Latest", mock.Anything, "g1").Return(&entity.Round{ID: "r1", Number: "1"}, nil)

		_, err := f.uc.NextRound(context.Background(), "g1")

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrNoMembers)
		var settlementErr *errs.SettlementError
		require.ErrorAs(t, err, &settlementErr)
		assert.Equal(t, "g1", settlementErr.GroupID)
		assert.Equal(t, "100", settlementErr.Pool)
		assert.Equal(t, 0, settlementErr.Members)
		assert.Equal(t, 1, f.uow.RollbackCalls)
	})

	t.Run("A member update failure rolls every balance back", func(t *testing.T) {
		f := newFixture()
		f.locks.On("AcquireLock", mock.Anything, "g1", testLockTimeout).Return(nil)
		f.locks.On("ReleaseLock", mock.Anything, "g1").Return(nil)

		values := &entity.AggregateValues{ID: "a1", GroupID: "g1", TotalNEuro: "100", TotalUsers: 2, RetainedFund: "0"}
		f.uow.AggregateRepo.On("GetByGroup", mock.Anything, "g1").Return(values, nil)
		f.uow.RoundRepo.On("Latest", mock.Anything, "g1").Return(&entity.Round{ID: "r1", Number: "1"}, nil)
		f.uow.UserRepo.On("ListByGroup", mock.Anything, "g1").Return([]entity.User{
			{ID: "u1", NEuro: "0"},
			{ID: "u2", NEuro: "0"},
		}, nil)

		f.uow.UserRepo.On("UpdateBalance", mock.Anything, "u1", "50").Return(nil)
		updateErr := errors.New("write failed")
		f.uow.UserRepo.On("UpdateBalance", mock.Anything, "u2", "50").Return(updateErr)

		_, err := f.uc.NextRound(context.Background(), "g1")

		assert.ErrorIs(t, err, updateErr)
		assert.Equal(t, 1, f.uow.RollbackCalls)
		assert.Equal(t, 0, f.uow.CommitCalls)
	})
}

func TestUpdateTotalNEuro(t *testing.T) {
	t.Run("No round past the first is a no-op", func(t *testing.T) {
		f := newFixture()
		f.rounds.On("HasNumberAbove", mock.Anything, "g1", 1).Return(false, nil)

		err := f.uc.UpdateTotalNEuro(context.Background(), "g1")

		require.NoError(t, err)
		assert.Equal(t, 0, f.uow.BeginCalls)
	})

	t.Run("Carries the retained fund back into the pool", func(t *testing.T) {
		f := newFixture()
		f.rounds.On("HasNumberAbove", mock.Anything, "g1", 1).Return(true, nil)

		values := &entity.AggregateValues{ID: "a1", GroupID: "g1", TotalNEuro: "10", TotalUsers: 3, RetainedFund: "2"}
		f.uow.AggregateRepo.On("GetByGroup", mock.Anything, "g1").Return(values, nil)
		f.uow.AggregateRepo.On("Update", mock.Anything, values).Return(nil)

		err := f.uc.UpdateTotalNEuro(context.Background(), "g1")

		require.NoError(t, err)
		assert.Equal(t, "12", values.TotalNEuro)
		// The retained fund itself is not cleared by the carry
		assert.Equal(t, "2", values.RetainedFund)
		assert.Equal(t, 1, f.uow.CommitCalls)
	})

	t.Run("An empty retained fund counts as zero", func(t *testing.T) {
		f := newFixture()
		f.rounds.On("HasNumberAbove", mock.Anything, "g1", 1).Return(true, nil)

		values := &entity.AggregateValues{ID: "a1", GroupID: "g1", TotalNEuro: "10", TotalUsers: 3, RetainedFund: ""}
		f.uow.AggregateRepo.On("GetByGroup", mock.Anything, "g1").Return(values, nil)
		f.uow.AggregateRepo.On("Update", mock.Anything, values).Return(nil)

		err := f.uc.UpdateTotalNEuro(context.Background(), "g1")

		require.NoError(t, err)
		assert.Equal(t, "10", values.TotalNEuro)
	})
}
