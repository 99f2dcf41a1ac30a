// Package config loads and validates the options of a progress variable
// search. Every option with a closed set of values is checked when the file is
// loaded, so a typo never reaches the pipeline.
package config

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/carbocation/pfx"
	"github.com/carbocation/progvar"
	"github.com/carbocation/progvar/flamelet"
	"github.com/carbocation/progvar/leastnonmono"
	"github.com/carbocation/progvar/maxslope"
	"github.com/carbocation/progvar/sorting"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

var (
	ErrInvalidOption = errors.New("config: invalid option")
	ErrMissingOption = errors.New("config: missing option")
)

const (
	Yes = "yes"
	No  = "no"
)

// Sorted, like the other accepted-value lists.
var yesNo = []string{No, Yes}

type Config struct {
	ConfigPath string `json:"-" yaml:"-"`

	DataFiles             []string `json:"data_files" yaml:"data_files"`
	TestSpecies           []string `json:"test_species" yaml:"test_species"`
	MixtureFractionColumn string   `json:"mixture_fraction_column" yaml:"mixture_fraction_column"`
	TemperatureColumn     string   `json:"temperature_column" yaml:"temperature_column"`

	SortMethod              string   `json:"sort_method" yaml:"sort_method"`
	StoichMassFrac          *float64 `json:"stoich_mass_frac" yaml:"stoich_mass_frac"`
	InterpMethod            string   `json:"interp_method" yaml:"interp_method"`
	MaxSlopeTest            string   `json:"max_slope_test" yaml:"max_slope_test"`
	PlotAllCandidates       string   `json:"plot_all_candidates" yaml:"plot_all_candidates"`
	LeastNonMonoCheck       string   `json:"least_nonmono_check" yaml:"least_nonmono_check"`
	SkipProgVarOptimization string   `json:"skip_progvar_optimization" yaml:"skip_progvar_optimization"`

	PlotFile    string `json:"plot_file" yaml:"plot_file"`
	Concurrency int    `json:"concurrency" yaml:"concurrency"`
}

// Default returns a Config with every optional field set. StoichMassFrac,
// DataFiles and TestSpecies have no default.
func Default() Config {
	return Config{
		MixtureFractionColumn:   flamelet.DefaultColumns.MixtureFraction,
		TemperatureColumn:       flamelet.DefaultColumns.Temperature,
		SortMethod:              "bubble",
		InterpMethod:            "linear",
		MaxSlopeTest:            "linear_regression",
		PlotAllCandidates:       No,
		LeastNonMonoCheck:       "simple",
		SkipProgVarOptimization: No,
		PlotFile:                filepath.Join("output", "CvsTemp.png"),
		Concurrency:             1,
	}
}

// ParseConfigFromPath reads a JSON or YAML (.yaml, .yml) file on top of the
// defaults and validates it.
func ParseConfigFromPath(path string) (Config, error) {
	out := Default()

	data, err := os.ReadFile(progvar.ExpandHome(path))
	if err != nil {
		return out, pfx.Err(err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		err = dec.Decode(&out)
	default:
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		err = dec.Decode(&out)
		if e, ok := err.(*json.SyntaxError); ok {
			logrus.WithField("offset", e.Offset).Error("syntax error in config")
		}
	}
	if err != nil {
		return out, pfx.Err(fmt.Errorf("%s: %w", path, err))
	}
	out.ConfigPath = path

	for i, v := range out.DataFiles {
		out.DataFiles[i] = progvar.ExpandHome(v)
	}
	out.PlotFile = progvar.ExpandHome(out.PlotFile)

	return out, out.Validate()
}

// Validate checks every option that the pipeline consumes. It does not look at
// DataFiles, which callers that already hold interpolated samples leave empty.
func (c Config) Validate() error {
	if err := oneOf("sort_method", c.SortMethod, sorting.MethodNames()); err != nil {
		return err
	}
	if err := oneOf("interp_method", c.InterpMethod, flamelet.MethodNames()); err != nil {
		return err
	}
	if err := oneOf("max_slope_test", c.MaxSlopeTest, maxslope.TestNames()); err != nil {
		return err
	}
	if err := oneOf("least_nonmono_check", c.LeastNonMonoCheck, leastnonmono.CheckNames()); err != nil {
		return err
	}
	if err := oneOf("plot_all_candidates", c.PlotAllCandidates, yesNo); err != nil {
		return err
	}
	if err := oneOf("skip_progvar_optimization", c.SkipProgVarOptimization, yesNo); err != nil {
		return err
	}

	if c.StoichMassFrac == nil {
		return fmt.Errorf("%w: stoich_mass_frac", ErrMissingOption)
	}
	if v := *c.StoichMassFrac; !(v >= 0 && v <= 1) {
		return fmt.Errorf("%w: stoich_mass_frac %v must lie within [0, 1]", ErrInvalidOption, v)
	}

	if len(c.TestSpecies) == 0 {
		return fmt.Errorf("%w: test_species", ErrMissingOption)
	}
	seen := make(map[string]struct{}, len(c.TestSpecies))
	for _, s := range c.TestSpecies {
		if _, dup := seen[s]; dup {
			return fmt.Errorf("%w: test_species lists %q twice", ErrInvalidOption, s)
		}
		seen[s] = struct{}{}
	}

	if c.MixtureFractionColumn == "" {
		return fmt.Errorf("%w: mixture_fraction_column", ErrMissingOption)
	}
	if c.TemperatureColumn == "" {
		return fmt.Errorf("%w: temperature_column", ErrMissingOption)
	}

	if ext := strings.ToLower(filepath.Ext(c.PlotFile)); c.PlotFile != "" && ext != ".png" && ext != ".svg" {
		return fmt.Errorf("%w: plot_file %q must end in .png or .svg", ErrInvalidOption, c.PlotFile)
	}

	if c.Concurrency < 1 {
		return fmt.Errorf("%w: concurrency %d must be at least 1", ErrInvalidOption, c.Concurrency)
	}

	return nil
}

// SkipOptimization reports whether the combinatorial search is bypassed in
// favour of the sum of every test species.
func (c Config) SkipOptimization() bool {
	return c.SkipProgVarOptimization == Yes
}

// PlotAll reports whether every candidate is drawn behind the best one. Skip
// mode has only one candidate, so it never plots the others.
func (c Config) PlotAll() bool {
	return c.PlotAllCandidates == Yes && !c.SkipOptimization()
}

// Columns returns the table columns the interpolator keys on.
func (c Config) Columns() flamelet.Columns {
	return flamelet.Columns{
		MixtureFraction: c.MixtureFractionColumn,
		Temperature:     c.TemperatureColumn,
	}
}

// StoichMassFraction returns the interpolation point, or 0 when unset.
func (c Config) StoichMassFraction() float64 {
	if c.StoichMassFrac == nil {
		return 0
	}
	return *c.StoichMassFrac
}

func oneOf(key, value string, accepted []string) error {
	i := sort.SearchStrings(accepted, value)
	if i < len(accepted) && accepted[i] == value {
		return nil
	}

	return fmt.Errorf("%w: %s %q is not one of [%s]", ErrInvalidOption, key, value, strings.Join(accepted, ", "))
}
