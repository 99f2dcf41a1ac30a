package combination

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTotalCombinations(t *testing.T) {
	for k, want := range map[int]int{0: 0, 1: 1, 2: 3, 3: 7, 5: 31, 10: 1023} {
		require.Equal(t, want, TotalCombinations(k), "k=%d", k)
	}
}

func TestGenerateDistinctSubsets(t *testing.T) {
	for k := 1; k <= 6; k++ {
		combos, err := Generate(k, false)
		require.NoError(t, err)

		rows, cols := combos.Dims()
		require.Equal(t, k+1, rows)
		require.Equal(t, 1<<uint(k), cols)

		// Bias only activates column 0.
		require.Equal(t, 1.0, combos.At(0, 0))
		for i := 1; i < rows; i++ {
			require.Equal(t, 0.0, combos.At(i, 0))
		}

		seen := make(map[string]struct{})
		for j := 1; j < cols; j++ {
			require.Equal(t, 0.0, combos.At(0, j))

			subset := Subset(combos, j)
			require.NotEmpty(t, subset, "column %d is empty", j)

			key := fmt.Sprint(subset)
			_, dup := seen[key]
			require.False(t, dup, "column %d repeats subset %s", j, key)
			seen[key] = struct{}{}
		}
		require.Len(t, seen, TotalCombinations(k))
	}
}

func TestGenerateOrderTwoSpecies(t *testing.T) {
	combos, err := Generate(2, false)
	require.NoError(t, err)

	require.Equal(t, []int{0}, Subset(combos, 1))
	require.Equal(t, []int{1}, Subset(combos, 2))
	require.Equal(t, []int{0, 1}, Subset(combos, 3))
	require.Equal(t, []float64{1, 1}, Coefficients(combos, 3))
}

func TestGenerateSkip(t *testing.T) {
	for k := 1; k <= 4; k++ {
		combos, err := Generate(k, true)
		require.NoError(t, err)

		rows, cols := combos.Dims()
		require.Equal(t, k+1, rows)
		require.Equal(t, 2, cols)
		require.Equal(t, 1.0, combos.At(0, 0))
		require.Equal(t, 0.0, combos.At(0, 1))
		require.Len(t, Subset(combos, 1), k)
	}
}

func TestGenerateRejectsBadCounts(t *testing.T) {
	_, err := Generate(0, false)
	require.ErrorIs(t, err, ErrNoSpecies)

	_, err = Generate(0, true)
	require.ErrorIs(t, err, ErrNoSpecies)

	_, err = Generate(MaxSpecies+1, false)
	require.ErrorIs(t, err, ErrTooManySpecies)
}
