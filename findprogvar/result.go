package findprogvar

import (
	"strings"

	"github.com/carbocation/progvar/combination"
	"github.com/carbocation/progvar/monocheck"
	"gonum.org/v1/gonum/mat"
)

// Candidate describes one column of the candidate matrix.
type Candidate struct {
	Column int

	// Species indexes the test species summed by this candidate.
	Species []int

	// Labels names those species.
	Labels []string

	// Anchors holds the data file column of each summed species. It is nil
	// when the samples were not read from files.
	Anchors []int

	// Coefficients holds one 0/1 weight per test species.
	Coefficients []float64
}

// String renders the candidate as a sum, e.g. "C = Y-CO2 + Y-H2O".
func (c Candidate) String() string {
	return "C = " + strings.Join(c.Labels, " + ")
}

// BestCandidate is the selected progress variable.
type BestCandidate struct {
	Candidate
	Outcome Outcome
}

// Result is everything a run produces. Summary and Candidates are sorted by
// ascending temperature.
type Result struct {
	// Summary holds (progress variable, file index, temperature) per file,
	// with column 0 holding the chosen candidate's values.
	Summary *mat.Dense

	Candidates   *mat.Dense
	Combinations *mat.Dense
	Flags        []monocheck.Flag

	Best   BestCandidate
	Others []Candidate

	// Files is indexed by the summary's file index column.
	Files []string
}

// describe builds the Candidate for column col of the combinations matrix.
func describe(combos mat.Matrix, col int, species []string, locs []int) Candidate {
	c := Candidate{
		Column:       col,
		Species:      combination.Subset(combos, col),
		Coefficients: combination.Coefficients(combos, col),
	}

	c.Labels = make([]string, len(c.Species))
	for i, s := range c.Species {
		c.Labels[i] = species[s]
	}

	if locs != nil {
		c.Anchors = make([]int, len(c.Species))
		for i, s := range c.Species {
			c.Anchors[i] = locs[s]
		}
	}

	return c
}

// ProgressVariable returns the chosen candidate's value for each file, in
// ascending temperature order.
func (r *Result) ProgressVariable() []float64 {
	return mat.Col(nil, SummaryProgVar, r.Summary)
}

// Temperature returns the stoichiometric temperature of each file, in
// ascending order.
func (r *Result) Temperature() []float64 {
	return mat.Col(nil, SummaryTemperature, r.Summary)
}
