package group

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/GHzOliveira/neurocooperacao-backend/internal/domain/entity"
	errs "github.com/GHzOliveira/neurocooperacao-backend/internal/domain/error"
	"github.com/GHzOliveira/neurocooperacao-backend/internal/domain/port/usecase"
)

func TestApplyNEuro(t *testing.T) {
	t.Run("First application creates the aggregate row", func(t *testing.T) {
		f := newFixture()
		f.uow.AggregateRepo.On("GetByGroup", mock.Anything, "g1").Return(nil, errs.ErrAggregateNotFound)

		var created *entity.AggregateValues
		f.uow.AggregateRepo.On("Create", mock.Anything, mock.AnythingOfType("*entity.AggregateValues")).
			Run(func(args mock.Arguments) {
				created = args.Get(1).(*entity.AggregateValues)
			}).Return(nil)

		result, err := f.uc.ApplyNEuro(context.Background(), usecase.ApplyNEuroRequest{
			GroupID:    "g1",
			NEuro:      "10",
			TotalUsers: 3,
		})

		require.NoError(t, err)
		require.NotNil(t, created)
		assert.Equal(t, "g1", created.GroupID)
		assert.Equal(t, "10", created.TotalNEuro)
		assert.Equal(t, 3, created.TotalUsers)
		assert.Equal(t, "0", created.RetainedFund)
		assert.Equal(t, created, result.Values)
		assert.Empty(t, result.UserBalance)
		assert.Equal(t, 1, f.uow.CommitCalls)
	})

	t.Run("Later applications accumulate pool and member counter", func(t *testing.T) {
		f := newFixture()
		values := &entity.AggregateValues{ID: "a1", GroupID: "g1", TotalNEuro: "10", TotalUsers: 3, RetainedFund: "0"}
		f.uow.AggregateRepo.On("GetByGroup", mock.Anything, "g1").Return(values, nil)
		f.uow.AggregateRepo.On("Update", mock.Anything, values).Return(nil)

		result, err := f.uc.ApplyNEuro(context.Background(), usecase.ApplyNEuroRequest{
			GroupID:    "g1",
			NEuro:      "10",
			TotalUsers: 3,
		})

		require.NoError(t, err)
		assert.Equal(t, "20", result.Values.TotalNEuro)
		assert.Equal(t, 6, result.Values.TotalUsers)
		assert.Equal(t, 1, f.uow.CommitCalls)
	})

	t.Run("Supplying a user id debits that user", func(t *testing.T) {
		f := newFixture()
		f.uow.UserRepo.On("GetByID", mock.Anything, "u1").Return(&entity.User{ID: "u1", NEuro: "50"}, nil)
		f.uow.UserRepo.On("UpdateBalance", mock.Anything, "u1", "40").Return(nil)
		f.uow.AggregateRepo.On("GetByGroup", mock.Anything, "g1").Return(nil, errs.ErrAggregateNotFound)
		f.uow.AggregateRepo.On("Create", mock.Anything, mock.Anything).Return(nil)

		result, err := f.uc.ApplyNEuro(context.Background(), usecase.ApplyNEuroRequest{
			GroupID:    "g1",
			UserID:     "u1",
			NEuro:      "10",
			TotalUsers: 1,
		})

		require.NoError(t, err)
		assert.Equal(t, "40", result.UserBalance)
		f.uow.UserRepo.AssertExpectations(t)
	})

	t.Run("A user with no balance text is not debited", func(t *testing.T) {
		f := newFixture()
		f.uow.UserRepo.On("GetByID", mock.Anything, "u1").Return(&entity.User{ID: "u1", NEuro: ""}, nil)
		f.uow.AggregateRepo.On("GetByGroup", mock.Anything, "g1").Return(nil, errs.ErrAggregateNotFound)
		f.uow.AggregateRepo.On("Create", mock.Anything, mock.Anything).Return(nil)

		result, err := f.uc.ApplyNEuro(context.Background(), usecase.ApplyNEuroRequest{
			GroupID:    "g1",
			UserID:     "u1",
			NEuro:      "10",
			TotalUsers: 1,
		})

		require.NoError(t, err)
		assert.Empty(t, result.UserBalance)
		f.uow.UserRepo.AssertNotCalled(t, "UpdateBalance", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Debits may drive a balance negative", func(t *testing.T) {
		f := newFixture()
		f.uow.UserRepo.On("GetByID", mock.Anything, "u1").Return(&entity.User{ID: "u1", NEuro: "5"}, nil)
		f.uow.UserRepo.On("UpdateBalance", mock.Anything, "u1", "-5").Return(nil)
		f.uow.AggregateRepo.On("GetByGroup", mock.Anything, "g1").Return(nil, errs.ErrAggregateNotFound)
		f.uow.AggregateRepo.On("Create", mock.Anything, mock.Anything).Return(nil)

		result, err := f.uc.ApplyNEuro(context.Background(), usecase.ApplyNEuroRequest{
			GroupID:    "g1",
			UserID:     "u1",
			NEuro:      "10",
			TotalUsers: 1,
		})

		require.NoError(t, err)
		assert.Equal(t, "-5", result.UserBalance)
	})

	t.Run("Invalid amount fails before the transaction starts", func(t *testing.T) {
		f := newFixture()

		_, err := f.uc.ApplyNEuro(context.Background(), usecase.ApplyNEuroRequest{
			GroupID: "g1",
			NEuro:   "dez",
		})

		assert.ErrorIs(t, err, errs.ErrInvalidAmount)
		assert.Equal(t, 0, f.uow.BeginCalls)
	})

	t.Run("Missing user rolls back", func(t *testing.T) {
		f := newFixture()
		f.uow.UserRepo.On("GetByID", mock.Anything, "missing").Return(nil, errs.ErrUserNotFound)

		_, err := f.uc.ApplyNEuro(context.Background(), usecase.ApplyNEuroRequest{
			GroupID: "g1",
			UserID:  "missing",
			NEuro:   "10",
		})

		assert.ErrorIs(t, err, errs.ErrUserNotFound)
		assert.Equal(t, 1, f.uow.RollbackCalls)
		assert.Equal(t, 0, f.uow.CommitCalls)
	})

	t.Run("Unparseable stored pool rolls back", func(t *testing.T) {
		f := newFixture()
		values := &entity.AggregateValues{ID: "a1", GroupID: "g1", TotalNEuro: "corrupt", TotalUsers: 3}
		f.uow.AggregateRepo.On("GetByGroup", mock.Anything, "g1").Return(values, nil)

		_, err := f.uc.ApplyNEuro(context.Background(), usecase.ApplyNEuroRequest{
			GroupID:    "g1",
			NEuro:      "10",
			TotalUsers: 3,
		})

		assert.ErrorIs(t, err, errs.ErrInvalidAmount)
		assert.Equal(t, 1, f.uow.RollbackCalls)
	})
}
