package leastnonmono

import (
	"math"

	"github.com/montanaflynn/stats"
	"gonum.org/v1/gonum/mat"
)

// Advanced weighs each offending step by its size: the score is the fraction
// of the column's total variation that runs against its dominant direction.
// A constant column scores 1, the worst possible.
type Advanced struct {
	nonMonoScorer
}

func NewAdvanced(progVar mat.Matrix) Scorer {
	return &Advanced{nonMonoScorer{progVar: progVar, score: advancedScore}}
}

func advancedScore(values []float64) float64 {
	rises := make(stats.Float64Data, 0, len(values))
	falls := make(stats.Float64Data, 0, len(values))
	for i := 1; i < len(values); i++ {
		if d := values[i] - values[i-1]; d > 0 {
			rises = append(rises, d)
		} else if d < 0 {
			falls = append(falls, -d)
		}
	}

	up, down := total(rises), total(falls)
	if up+down == 0 {
		return 1
	}

	return math.Min(up, down) / (up + down)
}

// total sums steps; stats reports NaN for an empty input, which here means 0.
func total(steps stats.Float64Data) float64 {
	if steps.Len() == 0 {
		return 0
	}
	sum, _ := steps.Sum()
	return sum
}
