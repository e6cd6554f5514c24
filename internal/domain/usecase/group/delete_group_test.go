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

func TestDeleteGroup(t *testing.T) {
	t.Run("Removes dependents before the group row, in one commit", func(t *testing.T) {
		f := newFixture()
		f.groups.On("GetByID", mock.Anything, "g1").Return(&entity.Group{ID: "g1"}, nil)

		var order []string
		step := func(name string) func(mock.Arguments) {
			return func(mock.Arguments) { order = append(order, name) }
		}
		f.uow.TransactionRepo.On("DeleteByGroup", mock.Anything, "g1").Run(step("transactions")).Return(nil)
		f.uow.UserRepo.On("DeleteByGroup", mock.Anything, "g1").Run(step("users")).Return(nil)
		f.uow.RoundRepo.On("DeleteByGroup", mock.Anything, "g1").Run(step("rounds")).Return(nil)
		f.uow.AggregateRepo.On("DeleteByGroup", mock.Anything, "g1").Run(step("aggregates")).Return(nil)
		f.uow.GroupRepo.On("Delete", mock.Anything, "g1").Run(step("group")).Return(nil)

		err := f.uc.DeleteGroup(context.Background(), "g1")

		require.NoError(t, err)
		assert.Equal(t, []string{"transactions", "users", "rounds", "aggregates", "group"}, order)
		assert.Equal(t, 1, f.uow.CommitCalls)
		assert.Equal(t, 0, f.uow.RollbackCalls)
	})

	t.Run("Missing group fails before the transaction starts", func(t *testing.T) {
		f := newFixture()
		f.groups.On("GetByID", mock.Anything, "missing").Return(nil, errs.ErrGroupNotFound)

		err := f.uc.DeleteGroup(context.Background(), "missing")

		assert.ErrorIs(t, err, errs.ErrGroupNotFound)
		assert.Equal(t, 0, f.uow.BeginCalls)
	})

	t.Run("A failed dependent delete rolls everything back", func(t *testing.T) {
		f := newFixture()
		f.groups.On("GetByID", mock.Anything, "g1").Return(&entity.Group{ID: "g1"}, nil)
		f.uow.TransactionRepo.On("DeleteByGroup", mock.Anything, "g1").Return(nil)
		deleteErr := errors.New("delete failed")
		f.uow.UserRepo.On("DeleteByGroup", mock.Anything, "g1").Return(deleteErr)

		err := f.uc.DeleteGroup(context.Background(), "g1")

		assert.ErrorIs(t, err, deleteErr)
		assert.Equal(t, 1, f.uow.RollbackCalls)
		assert.Equal(t, 0, f.uow.CommitCalls)
		f.uow.GroupRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})
}
