package admin

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/GHzOliveira/neurocooperacao-backend/internal/domain/entity"
	errs "github.com/GHzOliveira/neurocooperacao-backend/internal/domain/error"
	mockcore "github.com/GHzOliveira/neurocooperacao-backend/mocks/port/core"
	mockpersistence "github.com/GHzOliveira/neurocooperacao-backend/mocks/port/persistence"
)

func TestLogin(t *testing.T) {
	t.Run("Matching credentials return the admin", func(t *testing.T) {
		admins := &mockpersistence.MockAdminRepository{}
		uc := NewAdminUseCase(admins, mockcore.NewMockLogger())
		admin := &entity.Admin{ID: "a1", User: "prof"}
		admins.On("FindByCredentials", mock.Anything, "prof", "secret").Return(admin, nil)

		result, err := uc.Login(context.Background(), "prof", "secret")

		require.NoError(t, err)
		assert.Equal(t, admin, result)
	})

	t.Run("Wrong credentials fail and are logged", func(t *testing.T) {
		admins := &mockpersistence.MockAdminRepository{}
		logger := mockcore.NewMockLogger()
		uc := NewAdminUseCase(admins, logger)
		admins.On("FindByCredentials", mock.Anything, "prof", "wrong").Return(nil, errs.ErrAdminNotFound)

		_, err := uc.Login(context.Background(), "prof", "wrong")

		assert.ErrorIs(t, err, errs.ErrAdminNotFound)
		require.NotEmpty(t, logger.Entries)
		assert.Equal(t, "warn", logger.Entries[0].Level)
	})
}
