// Package leastnonmono picks a fallback progress variable when none of the
// candidates is strictly monotonic: the one that departs least from
// monotonic behaviour against the reference column.
package leastnonmono

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/carbocation/progvar/monocheck"
	"gonum.org/v1/gonum/mat"
)

var (
	ErrUnknownCheck = errors.New("leastnonmono: unknown least non-monotonic check")
	ErrFlagLength   = errors.New("leastnonmono: flag vector length does not match column count")
	ErrBadColumn    = errors.New("leastnonmono: reference column out of range")
	ErrNoCandidates = errors.New("leastnonmono: no candidate columns besides the reference")
)

// Scorer marks exactly one column of a flag vector LeastNonMonotonic.
type Scorer interface {
	LeastNonMonotonic(flags []monocheck.Flag, col int) error
}

// scoreFunc measures how far values are from monotonic. Lower is better and 0
// means strictly monotonic.
type scoreFunc func(values []float64) float64

// Checks maps each accepted least_nonmono_check value to its constructor.
var Checks = map[string]func(progVar mat.Matrix) Scorer{
	"simple":   NewSimple,
	"advanced": NewAdvanced,
}

// CheckNames lists the accepted check names in a stable order.
func CheckNames() []string {
	out := make([]string, 0, len(Checks))
	for name := range Checks {
		out = append(out, name)
	}
	sort.Strings(out)

	return out
}

// New returns the Scorer named by check, bound to progVar.
func New(check string, progVar mat.Matrix) (Scorer, error) {
	constructor, exists := Checks[check]
	if !exists {
		return nil, fmt.Errorf("%w %q, valid checks include: %s", ErrUnknownCheck, check, strings.Join(CheckNames(), ", "))
	}

	return constructor(progVar), nil
}

type nonMonoScorer struct {
	progVar mat.Matrix
	score   scoreFunc

	// Scores holds the score of every column after LeastNonMonotonic; the
	// reference column holds -1.
	Scores []float64
}

func (s *nonMonoScorer) LeastNonMonotonic(flags []monocheck.Flag, col int) error {
	_, ncols := s.progVar.Dims()
	if len(flags) != ncols {
		return fmt.Errorf("%w: %d flags for %d columns", ErrFlagLength, len(flags), ncols)
	}
	if col < 0 || col >= ncols {
		return fmt.Errorf("%w: column %d must lie within [0, %d)", ErrBadColumn, col, ncols)
	}

	s.Scores = make([]float64, ncols)
	index := -1
	for j := 0; j < ncols; j++ {
		if j == col {
			s.Scores[j] = -1
			continue
		}

		s.Scores[j] = s.score(mat.Col(nil, j, s.progVar))
		if index < 0 || s.Scores[j] < s.Scores[index] {
			index = j
		}
	}

	if index < 0 {
		return ErrNoCandidates
	}

	flags[index] = monocheck.LeastNonMonotonic

	return nil
}
