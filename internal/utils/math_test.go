package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRandomFloat(t *testing.T) {
	t.Run("returns values in [0,1)", func(t *testing.T) {
		for i := 0; i < 100; i++ {
			result := RandomFloat()
			assert.GreaterOrEqual(t, result, 0.0)
			assert.Less(t, result, 1.0)
		}
	})
}

func TestClamp(t *testing.T) {
	assert.Equal(t, 0.0, Clamp(-5, 0, 100))
	assert.Equal(t, 100.0, Clamp(250, 0, 100))
	assert.Equal(t, 42.0, Clamp(42, 0, 100))
}

func TestWeightedPick(t *testing.T) {
	t.Run("selects proportionally to weight", func(t *testing.T) {
		weights := []float64{10, 30, 60}

		assert.Equal(t, 0, WeightedPick(weights, 0.05))
		assert.Equal(t, 1, WeightedPick(weights, 0.25))
		assert.Equal(t, 2, WeightedPick(weights, 0.5))
		assert.Equal(t, 2, WeightedPick(weights, 0.999))
	})

	t.Run("skips non-positive weights", func(t *testing.T) {
		weights := []float64{0, -3, 5}
		assert.Equal(t, 2, WeightedPick(weights, 0.0))
		assert.Equal(t, 2, WeightedPick(weights, 0.9))
	})

	t.Run("returns -1 when all weights are zero", func(t *testing.T) {
		assert.Equal(t, -1, WeightedPick([]float64{0, 0}, 0.5))
		assert.Equal(t, -1, WeightedPick(nil, 0.5))
	})
}
