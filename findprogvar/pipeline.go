package findprogvar

import (
	"context"
	"fmt"

	"cloud.google.com/go/storage"
	"github.com/carbocation/progvar/combination"
	"github.com/carbocation/progvar/config"
	"github.com/carbocation/progvar/leastnonmono"
	"github.com/carbocation/progvar/maxslope"
	"github.com/carbocation/progvar/monocheck"
	"github.com/carbocation/progvar/sorting"
	"github.com/sirupsen/logrus"
	"gonum.org/v1/gonum/mat"
)

// refCol is the temperature column of both the candidate and summary matrices.
const refCol = 0

// Pipeline runs one progress variable search. It is not safe for concurrent
// use; build one per run.
type Pipeline struct {
	cfg    config.Config
	log    logrus.FieldLogger
	client *storage.Client

	newChecker func(progVar mat.Matrix) MonotonicityChecker
	newSlope   func(progVar mat.Matrix) (SlopeScorer, error)
	newNonMono func(progVar mat.Matrix) (NonMonoScorer, error)
}

type Option func(p *Pipeline)

// WithLogger sends progress reports to log instead of the standard logger.
func WithLogger(log logrus.FieldLogger) Option {
	return func(p *Pipeline) {
		p.log = log
	}
}

// WithStorageClient lets data files be read from gs:// paths.
func WithStorageClient(client *storage.Client) Option {
	return func(p *Pipeline) {
		p.client = client
	}
}

// WithChecker replaces the strict monotonicity checker.
func WithChecker(fn func(progVar mat.Matrix) MonotonicityChecker) Option {
	return func(p *Pipeline) {
		p.newChecker = fn
	}
}

// WithSlopeScorer replaces the scorer chosen by max_slope_test.
func WithSlopeScorer(fn func(progVar mat.Matrix) SlopeScorer) Option {
	return func(p *Pipeline) {
		p.newSlope = func(progVar mat.Matrix) (SlopeScorer, error) { return fn(progVar), nil }
	}
}

// WithNonMonoScorer replaces the scorer chosen by least_nonmono_check.
func WithNonMonoScorer(fn func(progVar mat.Matrix) NonMonoScorer) Option {
	return func(p *Pipeline) {
		p.newNonMono = func(progVar mat.Matrix) (NonMonoScorer, error) { return fn(progVar), nil }
	}
}

// New validates cfg and prepares a pipeline. An invalid option fails here,
// before any file is read.
func New(cfg config.Config, opts ...Option) (*Pipeline, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	p := &Pipeline{
		cfg: cfg,
		log: logrus.StandardLogger(),
		newChecker: func(progVar mat.Matrix) MonotonicityChecker {
			return monocheck.New(progVar)
		},
		newSlope: func(progVar mat.Matrix) (SlopeScorer, error) {
			return maxslope.New(cfg.MaxSlopeTest, progVar)
		},
		newNonMono: func(progVar mat.Matrix) (NonMonoScorer, error) {
			return leastnonmono.New(cfg.LeastNonMonoCheck, progVar)
		},
	}

	for _, opt := range opts {
		opt(p)
	}

	return p, nil
}

// RunFromFiles interpolates cfg.DataFiles and runs the search on them.
func (p *Pipeline) RunFromFiles(ctx context.Context) (*Result, error) {
	if len(p.cfg.DataFiles) < 2 {
		return nil, fmt.Errorf("%w: got %d", ErrTooFewSamples, len(p.cfg.DataFiles))
	}

	p.log.WithField("files", len(p.cfg.DataFiles)).Info("Interpolating data files")
	samples, err := LoadSamples(ctx, p.cfg, p.client, p.log)
	if err != nil {
		return nil, err
	}

	return p.RunFromSamples(samples)
}

// RunFromSamples runs the search on samples that are already interpolated.
// Each sample row must be [temperature, species...] in the order of
// cfg.TestSpecies.
func (p *Pipeline) RunFromSamples(samples []Sample) (*Result, error) {
	if len(samples) < 2 {
		return nil, fmt.Errorf("%w: got %d", ErrTooFewSamples, len(samples))
	}
	if err := CheckTitles(samples); err != nil {
		return nil, err
	}

	species := p.cfg.TestSpecies
	interp, summary, err := BuildMatrices(samples, len(species))
	if err != nil {
		return nil, err
	}

	if p.cfg.SkipOptimization() {
		p.log.Info("Skipping progress variable optimization, using user input")
	}
	combos, err := combination.Generate(len(species), p.cfg.SkipOptimization())
	if err != nil {
		return nil, err
	}

	candidates, err := Evaluate(interp, combos)
	if err != nil {
		return nil, err
	}
	_, ncols := candidates.Dims()
	p.log.WithField("candidates", ncols-1).Info("Evaluated progress variables")

	for _, m := range []struct {
		name string
		data *mat.Dense
	}{{"candidates", candidates}, {"files", summary}} {
		p.log.WithFields(logrus.Fields{"matrix": m.name, "method": p.cfg.SortMethod}).Info("Sorting by temperature")
		sorter, err := sorting.New(p.cfg.SortMethod, m.data, refCol)
		if err != nil {
			return nil, err
		}
		if err := sorter.Sort(); err != nil {
			return nil, fmt.Errorf("sorting %s: %w", m.name, err)
		}
	}

	selector, err := p.selector(candidates)
	if err != nil {
		return nil, err
	}
	flags, best, outcome, err := selector.Select(ncols, refCol)
	if err != nil {
		return nil, err
	}

	result := p.assemble(samples, summary, candidates, combos, flags, best, outcome)

	if p.cfg.PlotFile != "" {
		title := TitleBest
		if p.cfg.SkipOptimization() {
			title = TitleUserSelected
		}
		if err := PlotCandidates(p.cfg.PlotFile, title, candidates, result.ProgressVariable(), p.cfg.PlotAll()); err != nil {
			return nil, err
		}
		p.log.WithField("plot", p.cfg.PlotFile).Info("Wrote plot")
	}

	return result, nil
}

func (p *Pipeline) selector(candidates mat.Matrix) (Selector, error) {
	slope, err := p.newSlope(candidates)
	if err != nil {
		return Selector{}, err
	}
	nonMono, err := p.newNonMono(candidates)
	if err != nil {
		return Selector{}, err
	}

	return Selector{
		Checker:      p.newChecker(candidates),
		Slope:        slope,
		NonMono:      nonMono,
		Log:          p.log,
		SlopeTest:    p.cfg.MaxSlopeTest,
		NonMonoCheck: p.cfg.LeastNonMonoCheck,
	}, nil
}

// assemble reports the selection and writes the chosen candidate into column
// 0 of the summary. Both matrices were sorted on identical keys by the same
// stable strategy, so row i of each refers to the same file.
func (p *Pipeline) assemble(samples []Sample, summary, candidates, combos *mat.Dense, flags []monocheck.Flag, best int, outcome Outcome) *Result {
	species := p.cfg.TestSpecies
	locs := samples[0].Locs

	result := &Result{
		Summary:      summary,
		Candidates:   candidates,
		Combinations: combos,
		Flags:        flags,
		Best: BestCandidate{
			Candidate: describe(combos, best, species, locs),
			Outcome:   outcome,
		},
		Files: make([]string, len(samples)),
	}
	for i, s := range samples {
		result.Files[i] = s.File
	}

	fields := logrus.Fields{"column": best, "species": result.Best.Labels}
	if locs != nil {
		fields["anchors"] = result.Best.Anchors
	}
	if outcome == LeastNonMonotonic {
		p.log.Warn("No monotonic progress variables found, but proceeding with best alternative")
		p.log.WithFields(fields).Infof("The least non-monotonic progress variable is %s", result.Best)
	} else {
		p.log.WithFields(fields).Infof("The chosen progress variable is %s", result.Best)
	}

	for j, f := range flags {
		if f != monocheck.OtherMonotonic {
			continue
		}
		other := describe(combos, j, species, locs)
		result.Others = append(result.Others, other)
		p.log.WithField("column", j).Infof("Other candidate monotonic progress variable: %s", other)
	}

	rows, _ := summary.Dims()
	for i := 0; i < rows; i++ {
		summary.Set(i, SummaryProgVar, candidates.At(i, best))
	}

	return result
}
