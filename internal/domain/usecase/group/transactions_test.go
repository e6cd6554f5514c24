package group

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/GHzOliveira/neurocooperacao-backend/internal/domain/entity"
	errs "github.com/GHzOliveira/neurocooperacao-backend/internal/domain/error"
)

func TestListTransactions(t *testing.T) {
	f := newFixture()
	ledger := []entity.Transaction{{ID: "t1", UserID: "u1", Amount: "10"}}
	f.transactions.On("ListByGroup", mock.Anything, "g1").Return(ledger, nil)

	result, err := f.uc.ListTransactions(context.Background(), "g1")

	require.NoError(t, err)
	assert.Equal(t, ledger, result)
}

func TestCreateTransaction(t *testing.T) {
	t.Run("Appends a ledger entry for an existing user", func(t *testing.T) {
		f := newFixture()
		f.users.On("GetByID", mock.Anything, "u1").Return(&entity.User{ID: "u1"}, nil)

		var created *entity.Transaction
		f.transactions.On("Create", mock.Anything, mock.AnythingOfType("*entity.Transaction")).
			Run(func(args mock.Arguments) {
				created = args.Get(1).(*entity.Transaction)
			}).Return(nil)

		result, err := f.uc.CreateTransaction(context.Background(), "u1", "r1", "aposta", "10")

		require.NoError(t, err)
		require.NotNil(t, created)
		assert.Equal(t, "u1", created.UserID)
		assert.Equal(t, "r1", created.RoundID)
		assert.Equal(t, "aposta", created.TransactionType)
		assert.Equal(t, "10", created.Amount)
		assert.True(t, created.CreatedAt.Equal(fixedTime))
		assert.Equal(t, created, result)
	})

	t.Run("Missing user fails without writing", func(t *testing.T) {
		f := newFixture()
		f.users.On("GetByID", mock.Anything, "missing").Return(nil, errs.ErrUserNotFound)

		_, err := f.uc.CreateTransaction(context.Background(), "missing", "r1", "aposta", "10")

		assert.ErrorIs(t, err, errs.ErrUserNotFound)
		f.transactions.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})
}
