package findprogvar

import (
	"context"
	"fmt"

	"cloud.google.com/go/storage"
	"github.com/carbocation/progvar/config"
	"github.com/carbocation/progvar/flamelet"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

// Sample is one data file interpolated at the stoichiometric mixture fraction.
type Sample struct {
	File   string
	Titles []string

	// Row is [stoichiometric temperature, species_1, ..., species_k].
	Row []float64

	// Locs holds the column index of each species in the data file.
	Locs []int
}

// LoadSamples reads and interpolates every data file. Up to cfg.Concurrency
// files are processed at once; results are then checked in file order, so the
// first failing file (in the order given) determines the error.
func LoadSamples(ctx context.Context, cfg config.Config, client *storage.Client, log logrus.FieldLogger) ([]Sample, error) {
	samples := make([]Sample, len(cfg.DataFiles))
	interpErrs := make([]error, len(cfg.DataFiles))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(cfg.Concurrency)
	for i, path := range cfg.DataFiles {
		i, path := i, path
		g.Go(func() error {
			table, err := flamelet.Load(gctx, path, client)
			if err != nil {
				return err
			}

			samples[i] = Sample{File: path, Titles: table.Titles}

			interp, err := table.Interpolate(cfg.Columns(), cfg.TestSpecies, cfg.StoichMassFraction(), cfg.InterpMethod)
			if err != nil {
				interpErrs[i] = err
				return nil
			}
			samples[i].Row = interp.Row
			samples[i].Locs = interp.Locs

			log.WithFields(logrus.Fields{
				"file":        path,
				"temperature": interp.Row[0],
			}).Debug("interpolated")

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	// Title agreement is checked before any interpolation error is reported,
	// so a file with a different layout is named as such.
	for i := range samples {
		if err := checkTitles(samples[0], samples[i]); err != nil {
			return nil, err
		}
		if interpErrs[i] != nil {
			return nil, fmt.Errorf("interpolating %s: %w", samples[i].File, interpErrs[i])
		}
	}

	return samples, nil
}

// CheckTitles returns ErrTitleMismatch unless every sample carries exactly the
// titles of the first.
func CheckTitles(samples []Sample) error {
	for _, s := range samples {
		if err := checkTitles(samples[0], s); err != nil {
			return err
		}
	}
	return nil
}

func checkTitles(first, s Sample) error {
	if len(first.Titles) != len(s.Titles) {
		return fmt.Errorf("%w: %s has %d columns, %s has %d", ErrTitleMismatch, s.File, len(s.Titles), first.File, len(first.Titles))
	}
	for j := range first.Titles {
		if first.Titles[j] != s.Titles[j] {
			return fmt.Errorf("%w: %s column %d is %q, %s has %q", ErrTitleMismatch, s.File, j, s.Titles[j], first.File, first.Titles[j])
		}
	}
	return nil
}
