package flamelet

import (
	"compress/gzip"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/carbocation/progvar"
	"github.com/stretchr/testify/require"
)

const alignedTable = `# flamelet solution, chi_st = 1
  Z        temperature   Y-CO2    Y-H2O    Y-CO
  0.2      1800          0.08     0.07     0.03
  0.0      300           0.0      0.0      0.0
  0.05     1500          0.05     0.04     0.01
  0.1      2100          0.1      0.09     0.02
`

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadAligned(t *testing.T) {
	table, err := Load(context.Background(), writeFile(t, "a.kg", alignedTable), nil)
	require.NoError(t, err)
	require.Equal(t, []string{"Z", "temperature", "Y-CO2", "Y-H2O", "Y-CO"}, table.Titles)
	require.Len(t, table.Rows, 4)
	require.Equal(t, []float64{0.2, 0, 0.05, 0.1}, table.Values(0))
}

func TestLoadCSVGzip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "b.csv.gz")
	f, err := os.Create(path)
	require.NoError(t, err)
	zw := gzip.NewWriter(f)
	_, err = zw.Write([]byte("Z, temperature, Y-CO2\n0.0, 300, 0.0\n0.1, 2100, 0.1\n"))
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	require.NoError(t, f.Close())

	table, err := Load(context.Background(), path, nil)
	require.NoError(t, err)
	require.Equal(t, []string{"Z", "temperature", "Y-CO2"}, table.Titles)
	require.Equal(t, [][]float64{{0, 300, 0}, {0.1, 2100, 0.1}}, table.Rows)
}

func TestParseErrors(t *testing.T) {
	_, _, err := Parse(strings.NewReader("# nothing here\n"), progvar.Whitespace)
	require.ErrorIs(t, err, ErrNoHeader)

	_, _, err = Parse(strings.NewReader("Z T\n"), progvar.Whitespace)
	require.ErrorIs(t, err, ErrNoRows)

	_, _, err = Parse(strings.NewReader("Z T\n0 1 2\n"), progvar.Whitespace)
	require.ErrorIs(t, err, ErrRaggedRow)

	_, _, err = Parse(strings.NewReader("Z,T\n0,abc\n"), ',')
	require.Error(t, err)
	require.Contains(t, err.Error(), `"T"`)
}

func TestInterpolateLinear(t *testing.T) {
	table, err := Load(context.Background(), writeFile(t, "a.kg", alignedTable), nil)
	require.NoError(t, err)

	got, err := table.Interpolate(DefaultColumns, []string{"Y-CO", "Y-CO2"}, 0.075, "linear")
	require.NoError(t, err)
	require.Equal(t, []int{4, 2}, got.Locs)
	require.Len(t, got.Row, 3)
	require.InDelta(t, 1800, got.Row[0], 1e-9)
	require.InDelta(t, 0.015, got.Row[1], 1e-12)
	require.InDelta(t, 0.075, got.Row[2], 1e-12)
}

func TestInterpolateAtKnots(t *testing.T) {
	table, err := Load(context.Background(), writeFile(t, "a.kg", alignedTable), nil)
	require.NoError(t, err)

	for _, method := range MethodNames() {
		got, err := table.Interpolate(DefaultColumns, []string{"Y-H2O"}, 0.1, method)
		require.NoError(t, err, method)
		require.InDelta(t, 2100, got.Row[0], 1e-6, method)
		require.InDelta(t, 0.09, got.Row[1], 1e-9, method)
	}
}

func TestInterpolateErrors(t *testing.T) {
	table, err := Load(context.Background(), writeFile(t, "a.kg", alignedTable), nil)
	require.NoError(t, err)

	_, err = table.Interpolate(DefaultColumns, []string{"Y-CO2"}, 0.1, "spline")
	require.ErrorIs(t, err, ErrUnknownMethod)

	_, err = table.Interpolate(DefaultColumns, []string{"Y-OH"}, 0.1, "linear")
	require.ErrorIs(t, err, ErrMissingColumn)

	_, err = table.Interpolate(Columns{MixtureFraction: "Z", Temperature: "T"}, []string{"Y-CO2"}, 0.1, "linear")
	require.ErrorIs(t, err, ErrMissingColumn)

	_, err = table.Interpolate(DefaultColumns, []string{"Y-CO2"}, 0.5, "linear")
	require.ErrorIs(t, err, ErrOutOfRange)

	dup := &Table{Path: "dup", Titles: []string{"Z", "temperature"}, Rows: [][]float64{{0, 300}, {0.1, 900}, {0.1, 1000}}}
	_, err = dup.Interpolate(DefaultColumns, nil, 0.05, "linear")
	require.ErrorIs(t, err, ErrDuplicateMixtureFraction)

	short := &Table{Path: "short", Titles: []string{"Z", "temperature"}, Rows: [][]float64{{0, 300}}}
	_, err = short.Interpolate(DefaultColumns, nil, 0, "linear")
	require.ErrorIs(t, err, ErrTooFewRows)
}
