package entity

import (
	"math"
	"testing"

	errs "github.com/GHzOliveira/neurocooperacao-backend/internal/domain/error"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeSettlement(t *testing.T) {
	t.Run("Pool 100 across 3 members", func(t *testing.T) {
		s, err := ComputeSettlement(100, 3)
		require.NoError(t, err)
		assert.Equal(t, 33.0, s.Share)
		assert.Equal(t, 1.0, s.Retained)
		// Sum distributed never exceeds the pool
		assert.LessOrEqual(t, s.Share*3, 100.0)
	})

	t.Run("Even division leaves no remainder", func(t *testing.T) {
		s, err := ComputeSettlement(90, 3)
		require.NoError(t, err)
		assert.Equal(t, 30.0, s.Share)
		assert.Equal(t, 0.0, s.Retained)
	})

	t.Run("Single member takes the floor of the pool", func(t *testing.T) {
		s, err := ComputeSettlement(10.75, 1)
		require.NoError(t, err)
		assert.Equal(t, 10.0, s.Share)
	})

	t.Run("Distributed total stays within the pool", func(t *testing.T) {
		pools := []float64{1, 7, 10, 99.99, 100, 250.5, 1000}
		members := []int{1, 2, 3, 7, 11}
		for _, p := range pools {
			for _, n := range members {
				s, err := ComputeSettlement(p, n)
				require.NoError(t, err)
				assert.LessOrEqual(t, s.Share*float64(n), p, "pool %v members %d", p, n)
				// Retained matches the literal formula, not the algebraic shortcut
				perMember := p / float64(n)
				expected := math.Floor((perMember - math.Floor(perMember)) * float64(n))
				assert.Equal(t, expected, s.Retained, "pool %v members %d", p, n)
			}
		}
	})

	t.Run("Zero members fails", func(t *testing.T) {
		_, err := ComputeSettlement(100, 0)
		assert.ErrorIs(t, err, errs.ErrNoMembers)
	})

	t.Run("Negative members fails", func(t *testing.T) {
		_, err := ComputeSettlement(100, -2)
		assert.ErrorIs(t, err, errs.ErrNoMembers)
	})
}

func TestAdjustedShare(t *testing.T) {
	t.Run("No retribution leaves the share untouched", func(t *testing.T) {
		adjusted, err := AdjustedShare(33, "", "")
		require.NoError(t, err)
		assert.Equal(t, 33.0, adjusted)
	})

	t.Run("Flat retribution adds the quantity", func(t *testing.T) {
		adjusted, err := AdjustedShare(33, RetributionFlat, "5")
		require.NoError(t, err)
		assert.Equal(t, 38.0, adjusted)
	})

	t.Run("Flat retribution rejects fractional quantities", func(t *testing.T) {
		_, err := AdjustedShare(33, RetributionFlat, "5.5")
		assert.ErrorIs(t, err, errs.ErrInvalidRetribution)
	})

	t.Run("Percentage retribution adds share times Q/100", func(t *testing.T) {
		adjusted, err := AdjustedShare(50, RetributionPercent, "10")
		require.NoError(t, err)
		assert.Equal(t, 55.0, adjusted)
	})

	t.Run("Percentage retribution rejects non-numeric quantities", func(t *testing.T) {
		_, err := AdjustedShare(50, RetributionPercent, "ten")
		assert.ErrorIs(t, err, errs.ErrInvalidRetribution)
	})
}
