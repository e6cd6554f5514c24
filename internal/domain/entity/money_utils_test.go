package entity

import (
	"testing"

	errs "github.com/GHzOliveira/neurocooperacao-backend/internal/domain/error"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAmount(t *testing.T) {
	t.Run("Valid decimal text", func(t *testing.T) {
		value, err := ParseAmount("10.5")
		require.NoError(t, err)
		assert.Equal(t, 10.5, value)
	})

	t.Run("Whitespace is trimmed", func(t *testing.T) {
		value, err := ParseAmount("  42 ")
		require.NoError(t, err)
		assert.Equal(t, 42.0, value)
	})

	t.Run("Negative values parse", func(t *testing.T) {
		value, err := ParseAmount("-3.25")
		require.NoError(t, err)
		assert.Equal(t, -3.25, value)
	})

	t.Run("Empty value fails", func(t *testing.T) {
		_, err := ParseAmount("")
		assert.ErrorIs(t, err, errs.ErrInvalidAmount)
	})

	t.Run("Non-numeric value fails", func(t *testing.T) {
		_, err := ParseAmount("dez")
		assert.ErrorIs(t, err, errs.ErrInvalidAmount)
	})
}

func TestFormatAmount(t *testing.T) {
	t.Run("Whole numbers drop the fraction", func(t *testing.T) {
		assert.Equal(t, "20", FormatAmount(20))
	})

	t.Run("Fractions keep the shortest representation", func(t *testing.T) {
		assert.Equal(t, "10.5", FormatAmount(10.5))
	})

	t.Run("Round-trips through ParseAmount", func(t *testing.T) {
		for _, text := range []string{"0", "1", "33", "10.25", "-7.5"} {
			value, err := ParseAmount(text)
			require.NoError(t, err)
			assert.Equal(t, text, FormatAmount(value))
		}
	})
}

func TestParseQuantity(t *testing.T) {
	t.Run("Valid integer", func(t *testing.T) {
		qty, err := ParseQuantity("5")
		require.NoError(t, err)
		assert.Equal(t, int64(5), qty)
	})

	t.Run("Fractional quantity fails", func(t *testing.T) {
		_, err := ParseQuantity("5.5")
		assert.ErrorIs(t, err, errs.ErrInvalidRetribution)
	})
}

func TestParseRoundNumber(t *testing.T) {
	n, err := ParseRoundNumber(" 3 ")
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	_, err = ParseRoundNumber("three")
	assert.ErrorIs(t, err, errs.ErrInvalidRequest)
}
