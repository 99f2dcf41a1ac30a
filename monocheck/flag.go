// Package monocheck classifies the columns of a candidate matrix by whether
// they are strictly monotonic against a reference column.
package monocheck

// Flag classifies one candidate column. The numeric values are part of the
// contract: a freshly checked vector only holds Excluded and BestMonotonic,
// so its sum is always a multiple of 3.
type Flag int

const (
	Excluded          Flag = 0
	LeastNonMonotonic Flag = 1
	OtherMonotonic    Flag = 2
	BestMonotonic     Flag = 3
)

func (f Flag) String() string {
	switch f {
	case Excluded:
		return "excluded"
	case LeastNonMonotonic:
		return "least non-monotonic"
	case OtherMonotonic:
		return "other monotonic"
	case BestMonotonic:
		return "best monotonic"
	}
	return "invalid"
}

// Sum adds the flag values.
func Sum(flags []Flag) int {
	out := 0
	for _, f := range flags {
		out += int(f)
	}
	return out
}

// Count returns how many flags equal want.
func Count(flags []Flag, want Flag) int {
	out := 0
	for _, f := range flags {
		if f == want {
			out++
		}
	}
	return out
}
