package findprogvar

import (
	"bytes"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/carbocation/pfx"
	"github.com/montanaflynn/stats"
	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

const (
	TitleBest         = "Best Progress Variable"
	TitleUserSelected = "User-selected progress variable"
)

// PlotCandidates draws the chosen progress variable, normalized by its
// maximum, against the reference temperature in column 0 of candidates. With
// all set, every other candidate column is drawn behind it, each normalized by
// its own maximum. The format follows the extension of filename (.png or
// .svg).
func PlotCandidates(filename, title string, candidates mat.Matrix, best []float64, all bool) error {
	temperature := mat.Col(nil, 0, candidates)
	_, ncols := candidates.Dims()

	series := make([]chart.Series, 0, ncols)
	lo, hi := math.Inf(1), math.Inf(-1)
	track := func(ys []float64) {
		for _, y := range ys {
			lo, hi = math.Min(lo, y), math.Max(hi, y)
		}
	}

	if all {
		for j := 1; j < ncols; j++ {
			ys := normalize(mat.Col(nil, j, candidates))
			track(ys)

			name := ""
			if j == 1 {
				name = "Other candidate progress variables"
			}
			series = append(series, chart.ContinuousSeries{
				Name:    name,
				Style:   chart.Style{StrokeColor: drawing.ColorRed, StrokeWidth: 1},
				XValues: temperature,
				YValues: ys,
			})
		}
	}

	bestNormalized := normalize(best)
	track(bestNormalized)
	series = append(series, chart.ContinuousSeries{
		Name: "Best progress variable",
		Style: chart.Style{
			StrokeColor: drawing.ColorBlack,
			StrokeWidth: 2,
			DotColor:    drawing.ColorWhite,
			DotWidth:    4,
		},
		XValues: temperature,
		YValues: bestNormalized,
	})

	if lo == hi {
		lo, hi = lo-0.5, hi+0.5
	}

	graph := chart.Chart{
		Title:  title,
		Width:  800,
		Height: 600,
		XAxis: chart.XAxis{
			Name: "T (K)",
		},
		YAxis: chart.YAxis{
			Name:  "Normalized Progress Variable (C/Cmax)",
			Range: &chart.ContinuousRange{Min: lo, Max: hi},
		},
		Series: series,
	}
	if all {
		graph.Elements = []chart.Renderable{chart.Legend(&graph)}
	}

	renderer := chart.PNG
	if strings.EqualFold(filepath.Ext(filename), ".svg") {
		renderer = chart.SVG
	}

	buffer := bytes.NewBuffer([]byte{})
	if err := graph.Render(renderer, buffer); err != nil {
		return pfx.Err(fmt.Errorf("rendering %s: %w", filename, err))
	}

	if err := os.MkdirAll(filepath.Dir(filename), 0o755); err != nil {
		return pfx.Err(err)
	}

	outFile, err := os.Create(filename)
	if err != nil {
		return pfx.Err(err)
	}
	defer outFile.Close()

	if _, err := buffer.WriteTo(outFile); err != nil {
		return pfx.Err(err)
	}

	return outFile.Close()
}

// normalize divides by the maximum. A column whose maximum is zero is returned
// unscaled.
func normalize(values []float64) []float64 {
	out := make([]float64, len(values))
	copy(out, values)

	peak, err := stats.Max(out)
	if err != nil || peak == 0 {
		return out
	}

	floats.Scale(1/peak, out)

	return out
}
