package leastnonmono

import (
	"github.com/carbocation/progvar/monocheck"
	"gonum.org/v1/gonum/mat"
)

// Simple counts the steps that break monotonicity: steps against the dominant
// direction plus flat steps.
type Simple struct {
	nonMonoScorer
}

func NewSimple(progVar mat.Matrix) Scorer {
	return &Simple{nonMonoScorer{progVar: progVar, score: simpleScore}}
}

func simpleScore(values []float64) float64 {
	bigger, smaller := monocheck.Steps(values)
	flat := len(values) - 1 - bigger - smaller

	against := bigger
	if smaller < against {
		against = smaller
	}

	return float64(against + flat)
}
