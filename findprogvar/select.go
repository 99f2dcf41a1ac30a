package findprogvar

import (
	"fmt"

	"github.com/carbocation/progvar/monocheck"
	"github.com/sirupsen/logrus"
)

// MonotonicityChecker flags each column BestMonotonic or Excluded.
type MonotonicityChecker interface {
	CheckStrictMonotonicity(flags []monocheck.Flag, col int) error
}

// SlopeScorer demotes all but one BestMonotonic column to OtherMonotonic.
type SlopeScorer interface {
	MostMonotonic(flags []monocheck.Flag, col int) error
}

// NonMonoScorer marks one column LeastNonMonotonic.
type NonMonoScorer interface {
	LeastNonMonotonic(flags []monocheck.Flag, col int) error
}

// Outcome says which branch of the selection produced the best candidate.
type Outcome string

const (
	Monotonic         Outcome = "monotonic"
	LeastNonMonotonic Outcome = "least non-monotonic"
)

// Selector classifies the candidate columns and settles on exactly one. Slope
// is consulted only when several candidates are monotonic, NonMono only when
// none are.
type Selector struct {
	Checker MonotonicityChecker
	Slope   SlopeScorer
	NonMono NonMonoScorer
	Log     logrus.FieldLogger

	// Names of the tie-break policies, for logging.
	SlopeTest    string
	NonMonoCheck string
}

// Select runs the classification for ncols candidate columns against
// reference column refCol. It returns the final flags and the selected column.
func (s Selector) Select(ncols, refCol int) ([]monocheck.Flag, int, Outcome, error) {
	flags := make([]monocheck.Flag, ncols)

	s.Log.Info("Testing monotonicity")
	if err := s.Checker.CheckStrictMonotonicity(flags, refCol); err != nil {
		return nil, -1, "", fmt.Errorf("CheckStrictMonotonicity ran unsuccessfully: %w", err)
	}

	checksum := monocheck.Sum(flags)
	if checksum%3 != 0 {
		return nil, -1, "", fmt.Errorf("%w: flag sum %d is not a multiple of 3, check the monotonicity checker", ErrCorruptFlags, checksum)
	}

	switch {
	case checksum > 3:
		s.Log.WithField("test", s.SlopeTest).Info("Testing max slope")
		if err := s.Slope.MostMonotonic(flags, refCol); err != nil {
			return nil, -1, "", fmt.Errorf("MostMonotonic ran unsuccessfully: %w", err)
		}
	case checksum == 0:
		s.Log.WithField("check", s.NonMonoCheck).Info("Finding least non-monotonic progress variable")
		if err := s.NonMono.LeastNonMonotonic(flags, refCol); err != nil {
			return nil, -1, "", fmt.Errorf("LeastNonMonotonic ran unsuccessfully: %w", err)
		}
	}

	best, outcome, err := Selected(flags, refCol)
	if err != nil {
		return nil, -1, "", err
	}

	return flags, best, outcome, nil
}

// Selected enforces the post-selection invariants and returns the single
// chosen column: one BestMonotonic, or else one LeastNonMonotonic, never both.
// OtherMonotonic columns may only accompany a BestMonotonic one.
func Selected(flags []monocheck.Flag, refCol int) (int, Outcome, error) {
	if refCol < 0 || refCol >= len(flags) {
		return -1, "", fmt.Errorf("%w: reference column %d outside %d flags", ErrCorruptFlags, refCol, len(flags))
	}
	if flags[refCol] != monocheck.Excluded {
		return -1, "", fmt.Errorf("%w: reference column %d flagged %s", ErrCorruptFlags, refCol, flags[refCol])
	}

	best, least := -1, -1
	others := 0
	for j, f := range flags {
		switch f {
		case monocheck.BestMonotonic:
			if best >= 0 {
				return -1, "", fmt.Errorf("%w: columns %d and %d", ErrMultipleBest, best, j)
			}
			best = j
		case monocheck.LeastNonMonotonic:
			if least >= 0 {
				return -1, "", fmt.Errorf("%w: least non-monotonic columns %d and %d", ErrMultipleBest, least, j)
			}
			least = j
		case monocheck.OtherMonotonic:
			others++
		case monocheck.Excluded:
		default:
			return -1, "", fmt.Errorf("%w: column %d has flag value %d", ErrCorruptFlags, j, int(f))
		}
	}

	switch {
	case best >= 0 && least >= 0:
		return -1, "", fmt.Errorf("%w: column %d is best monotonic and column %d least non-monotonic", ErrCorruptFlags, best, least)
	case others > 0 && best < 0:
		return -1, "", fmt.Errorf("%w: %d other monotonic columns without a best one", ErrCorruptFlags, others)
	case best >= 0:
		return best, Monotonic, nil
	case least >= 0:
		return least, LeastNonMonotonic, nil
	}

	return -1, "", ErrNoneSelected
}
