package error

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorCode(t *testing.T) {
	cases := []struct {
		name     string
		err      error
		expected int
	}{
		{"Validation", ErrGroupNameRequired, CodeValidation},
		{"Invalid request", ErrInvalidRequest, CodeValidation},
		{"No members", ErrNoMembers, CodeValidation},
		{"Invalid amount", ErrInvalidAmount, CodeInvalidAmount},
		{"Unknown field", ErrUnknownField, CodeUnknownField},
		{"Group not found", ErrGroupNotFound, CodeNotFound},
		{"Admin not found", ErrAdminNotFound, CodeNotFound},
		{"Duplicate group", ErrDuplicateGroup, CodeDuplicateGroup},
		{"Group locked", ErrGroupLocked, CodeGroupLocked},
		{"Unclassified", errors.New("boom"), CodeInternalServer},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, ErrorCode(tc.err))
		})
	}

	t.Run("Wrapped errors classify the same", func(t *testing.T) {
		wrapped := fmt.Errorf("context: %w", ErrUserNotFound)
		assert.Equal(t, CodeNotFound, ErrorCode(wrapped))
	})
}

func TestErrorClassification(t *testing.T) {
	t.Run("Not found family", func(t *testing.T) {
		for _, err := range []error{ErrGroupNotFound, ErrRoundNotFound, ErrUserNotFound,
			ErrAggregateNotFound, ErrAdminNotFound, ErrTransactionNotFound} {
			assert.True(t, IsNotFoundError(err), err.Error())
		}
		assert.False(t, IsNotFoundError(ErrInvalidAmount))
	})

	t.Run("Validation family", func(t *testing.T) {
		for _, err := range []error{ErrGroupNameRequired, ErrInvalidAmount, ErrInvalidRetribution,
			ErrNoMembers, ErrUnknownField, ErrInvalidRequest} {
			assert.True(t, IsValidationError(err), err.Error())
		}
		assert.False(t, IsValidationError(ErrGroupNotFound))
	})

	t.Run("Conflict family", func(t *testing.T) {
		assert.True(t, IsConflictError(ErrDuplicateGroup))
		assert.True(t, IsConflictError(ErrGroupLocked))
		assert.False(t, IsConflictError(ErrInternalServer))
	})
}

func TestSettlementError(t *testing.T) {
	err := NewSettlementError("g1", "100", 0, ErrNoMembers)

	t.Run("Unwraps to the underlying error", func(t *testing.T) {
		assert.ErrorIs(t, err, ErrNoMembers)
	})

	t.Run("Message carries the settlement context", func(t *testing.T) {
		assert.Contains(t, err.Error(), "g1")
		assert.Contains(t, err.Error(), "100")
	})

	t.Run("Log fields expose the structured context", func(t *testing.T) {
		var settlementErr *SettlementError
		require.ErrorAs(t, err, &settlementErr)

		fields := settlementErr.LogFields()
		assert.Equal(t, "g1", fields["group_id"])
		assert.Equal(t, "100", fields["pool"])
		assert.Equal(t, 0, fields["members"])
		assert.Equal(t, CodeValidation, fields["error_code"])
	})
}
