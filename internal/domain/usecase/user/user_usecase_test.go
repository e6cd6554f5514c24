package user

import (
	"context"
	"errors"
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

type fixture struct {
	uow    *mockpersistence.MockUnitOfWork
	users  *mockpersistence.MockUserRepository
	logger *mockcore.MockLogger
	uc     usecase.UserUseCase
}

func newFixture() *fixture {
	f := &fixture{
		uow:    mockpersistence.NewMockUnitOfWork(),
		users:  &mockpersistence.MockUserRepository{},
		logger: mockcore.NewMockLogger(),
	}
	f.uc = NewUserUseCase(f.uow, f.users, mockcore.NewMockTimeProvider(fixedTime), f.logger)
	return f
}

func TestCreateUser(t *testing.T) {
	t.Run("Creates a user with the supplied balance", func(t *testing.T) {
		f := newFixture()
		var created *entity.User
		f.users.On("Create", mock.Anything, mock.AnythingOfType("*entity.User")).
			Run(func(args mock.Arguments) {
				created = args.Get(1).(*entity.User)
			}).Return(nil)

		user, err := f.uc.CreateUser(context.Background(), usecase.CreateUserRequest{
			Name:    "Ana",
			Contact: "ana@example.com",
			GroupID: "g1",
			NEuro:   "25",
		})

		require.NoError(t, err)
		assert.Equal(t, "Ana", user.Name)
		assert.Equal(t, "25", user.NEuro)
		assert.True(t, user.CreatedAt.Equal(fixedTime))
		assert.Equal(t, created, user)
	})

	t.Run("A missing balance starts at zero", func(t *testing.T) {
		f := newFixture()
		f.users.On("Create", mock.Anything, mock.Anything).Return(nil)

		user, err := f.uc.CreateUser(context.Background(), usecase.CreateUserRequest{
			Name:    "Ana",
			GroupID: "g1",
		})

		require.NoError(t, err)
		assert.Equal(t, "0", user.NEuro)
	})

	t.Run("Name and group are required", func(t *testing.T) {
		f := newFixture()

		_, err := f.uc.CreateUser(context.Background(), usecase.CreateUserRequest{Name: "Ana"})
		assert.ErrorIs(t, err, errs.ErrInvalidRequest)

		_, err = f.uc.CreateUser(context.Background(), usecase.CreateUserRequest{GroupID: "g1"})
		assert.ErrorIs(t, err, errs.ErrInvalidRequest)

		f.users.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("Unparseable balance fails", func(t *testing.T) {
		f := newFixture()

		_, err := f.uc.CreateUser(context.Background(), usecase.CreateUserRequest{
			Name:    "Ana",
			GroupID: "g1",
			NEuro:   "muito",
		})

		assert.ErrorIs(t, err, errs.ErrInvalidAmount)
	})
}

func TestUpdateUser(t *testing.T) {
	t.Run("Only supplied fields are rewritten", func(t *testing.T) {
		f := newFixture()
		existing := &entity.User{ID: "u1", Name: "Ana", Contact: "old", GroupID: "g1", NEuro: "10"}
		f.users.On("GetByID", mock.Anything, "u1").Return(existing, nil)
		f.users.On("Update", mock.Anything, existing).Return(nil)

		user, err := f.uc.UpdateUser(context.Background(), "u1", usecase.CreateUserRequest{Contact: "new"})

		require.NoError(t, err)
		assert.Equal(t, "Ana", user.Name)
		assert.Equal(t, "new", user.Contact)
		assert.Equal(t, "10", user.NEuro)
		assert.True(t, user.UpdatedAt.Equal(fixedTime))
	})

	t.Run("Unparseable balance rejects the update", func(t *testing.T) {
		f := newFixture()
		f.users.On("GetByID", mock.Anything, "u1").Return(&entity.User{ID: "u1", NEuro: "10"}, nil)

		_, err := f.uc.UpdateUser(context.Background(), "u1", usecase.CreateUserRequest{NEuro: "muito"})

		assert.ErrorIs(t, err, errs.ErrInvalidAmount)
		f.users.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})
}

func TestUpdateNEuro(t *testing.T) {
	t.Run("Sets the balance directly", func(t *testing.T) {
		f := newFixture()
		f.users.On("GetByID", mock.Anything, "u1").Return(&entity.User{ID: "u1", NEuro: "10"}, nil)
		f.users.On("UpdateBalance", mock.Anything, "u1", "50").Return(nil)

		user, err := f.uc.UpdateNEuro(context.Background(), "u1", "50")

		require.NoError(t, err)
		assert.Equal(t, "50", user.NEuro)
	})

	t.Run("Unparseable balance fails before the lookup", func(t *testing.T) {
		f := newFixture()

		_, err := f.uc.UpdateNEuro(context.Background(), "u1", "muito")

		assert.ErrorIs(t, err, errs.ErrInvalidAmount)
		f.users.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
	})
}

func TestDeleteUser(t *testing.T) {
	t.Run("Removes the user and decrements the group counter", func(t *testing.T) {
		f := newFixture()
		f.uow.UserRepo.On("GetByID", mock.Anything, "u1").Return(&entity.User{ID: "u1", GroupID: "g1"}, nil)
		f.uow.UserRepo.On("Delete", mock.Anything, "u1").Return(nil)

		values := &entity.AggregateValues{ID: "a1", GroupID: "g1", TotalUsers: 5}
		f.uow.AggregateRepo.On("GetByGroup", mock.Anything, "g1").Return(values, nil)
		f.uow.AggregateRepo.On("Update", mock.Anything, values).Return(nil)

		err := f.uc.DeleteUser(context.Background(), "u1")

		require.NoError(t, err)
		assert.Equal(t, 4, values.TotalUsers)
		assert.Equal(t, 1, f.uow.CommitCalls)
	})

	t.Run("A group without aggregate values is left untouched", func(t *testing.T) {
		f := newFixture()
		f.uow.UserRepo.On("GetByID", mock.Anything, "u1").Return(&entity.User{ID: "u1", GroupID: "g1"}, nil)
		f.uow.UserRepo.On("Delete", mock.Anything, "u1").Return(nil)
		f.uow.AggregateRepo.On("GetByGroup", mock.Anything, "g1").Return(nil, errs.ErrAggregateNotFound)

		err := f.uc.DeleteUser(context.Background(), "u1")

		require.NoError(t, err)
		assert.Equal(t, 1, f.uow.CommitCalls)
		f.uow.AggregateRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})

	t.Run("Missing user rolls back", func(t *testing.T) {
		f := newFixture()
		f.uow.UserRepo.On("GetByID", mock.Anything, "missing").Return(nil, errs.ErrUserNotFound)

		err := f.uc.DeleteUser(context.Background(), "missing")

		assert.ErrorIs(t, err, errs.ErrUserNotFound)
		assert.Equal(t, 1, f.uow.RollbackCalls)
	})

	t.Run("A failed counter update rolls the deletion back", func(t *testing.T) {
		f := newFixture()
		f.uow.UserRepo.On("GetByID", mock.Anything, "u1").Return(&entity.User{ID: "u1", GroupID: "g1"}, nil)
		f.uow.UserRepo.On("Delete", mock.Anything, "u1").Return(nil)
		values := &entity.AggregateValues{ID: "a1", GroupID: "g1", TotalUsers: 5}
		f.uow.AggregateRepo.On("GetByGroup", mock.Anything, "g1").Return(values, nil)
		updateErr := errors.New("write failed")
		f.uow.AggregateRepo.On("Update", mock.Anything, values).Return(updateErr)

		err := f.uc.DeleteUser(context.Background(), "u1")

		assert.ErrorIs(t, err, updateErr)
		assert.Equal(t, 1, f.uow.RollbackCalls)
		assert.Equal(t, 0, f.uow.CommitCalls)
	})
}
