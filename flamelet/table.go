// Package flamelet reads tabulated flamelet solutions (one row per grid point,
// one column per quantity) and interpolates them at a fixed mixture fraction.
package flamelet

import (
	"bufio"
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"cloud.google.com/go/storage"
	"github.com/carbocation/pfx"
	"github.com/carbocation/progvar"
)

var (
	ErrNoHeader      = errors.New("flamelet: no header line found")
	ErrNoRows        = errors.New("flamelet: no data rows found")
	ErrRaggedRow     = errors.New("flamelet: row length does not match header")
	ErrMissingColumn = errors.New("flamelet: column not found")
)

// Table is one flamelet solution held in memory.
type Table struct {
	Path   string
	Titles []string
	Rows   [][]float64
}

// Load opens path (local, compressed, or gs:// when client is non-nil) and
// parses it.
func Load(ctx context.Context, path string, client *storage.Client) (*Table, error) {
	rc, err := progvar.Open(ctx, path, client)
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	data, err := io.ReadAll(rc)
	if err != nil {
		return nil, pfx.Err(fmt.Errorf("%s: %s", path, err))
	}

	titles, rows, err := Parse(bytes.NewReader(data), progvar.DetermineDelimiter(bytes.NewReader(data)))
	if err != nil {
		return nil, pfx.Err(fmt.Errorf("%s: %w", path, err))
	}

	return &Table{Path: path, Titles: titles, Rows: rows}, nil
}

// Parse reads a header line of column titles followed by numeric rows. Lines
// starting with '#' and blank lines are skipped. A delimiter of
// progvar.Whitespace splits on runs of blanks.
func Parse(r io.Reader, delim rune) (titles []string, rows [][]float64, err error) {
	records, err := readRecords(r, delim)
	if err != nil {
		return nil, nil, err
	}

	if len(records) == 0 {
		return nil, nil, ErrNoHeader
	}
	titles = records[0]

	rows = make([][]float64, 0, len(records)-1)
	for i, record := range records[1:] {
		if len(record) != len(titles) {
			return nil, nil, fmt.Errorf("%w: data row %d has %d fields, header has %d", ErrRaggedRow, i+1, len(record), len(titles))
		}

		row := make([]float64, len(record))
		for j, field := range record {
			row[j], err = strconv.ParseFloat(field, 64)
			if err != nil {
				return nil, nil, fmt.Errorf("data row %d, column %q: %w", i+1, titles[j], err)
			}
		}
		rows = append(rows, row)
	}

	if len(rows) == 0 {
		return nil, nil, ErrNoRows
	}

	return titles, rows, nil
}

func readRecords(r io.Reader, delim rune) ([][]string, error) {
	out := make([][]string, 0)

	if delim == progvar.Whitespace {
		scanner := bufio.NewScanner(r)
		for scanner.Scan() {
			line := strings.TrimSpace(scanner.Text())
			if line == "" || strings.HasPrefix(line, "#") {
				continue
			}
			out = append(out, strings.Fields(line))
		}
		return out, scanner.Err()
	}

	cr := csv.NewReader(r)
	cr.Comma = delim
	cr.Comment = '#'
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true
	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		} else if err != nil {
			return nil, err
		}

		for i := range record {
			record[i] = strings.TrimSpace(record[i])
		}
		out = append(out, record)
	}

	return out, nil
}

// Column returns the index of the column titled title.
func (t *Table) Column(title string) (int, error) {
	for i, v := range t.Titles {
		if v == title {
			return i, nil
		}
	}

	return -1, fmt.Errorf("%w: %q in %s. Saw: %v", ErrMissingColumn, title, t.Path, t.Titles)
}

// Values returns a copy of column j.
func (t *Table) Values(j int) []float64 {
	out := make([]float64, len(t.Rows))
	for i, row := range t.Rows {
		out[i] = row[j]
	}
	return out
}
