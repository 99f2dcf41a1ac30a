package findprogvar

import "errors"

var (
	ErrTooFewSamples     = errors.New("findprogvar: at least two data files are required")
	ErrTitleMismatch     = errors.New("findprogvar: data files do not share the same column titles")
	ErrDimensionMismatch = errors.New("findprogvar: dimension mismatch")

	// The selection errors indicate a defect in a checker or scorer, never bad
	// user input.
	ErrCorruptFlags = errors.New("findprogvar: incorrect values in monotonicity flags")
	ErrMultipleBest = errors.New("findprogvar: multiple best progress variables selected")
	ErrNoneSelected = errors.New("findprogvar: no best progress variable selected")
)
