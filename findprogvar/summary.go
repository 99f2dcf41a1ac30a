package findprogvar

import (
	"io"

	"github.com/gocarina/gocsv"
)

// SummaryRow is one line of the summary table written by the CLI.
type SummaryRow struct {
	ProgressVariable float64 `csv:"progress_variable"`
	FileIndex        int     `csv:"file_index"`
	File             string  `csv:"file"`
	Temperature      float64 `csv:"temperature"`
}

// SummaryRows flattens the summary matrix, one row per file in ascending
// temperature order.
func (r *Result) SummaryRows() []SummaryRow {
	rows, _ := r.Summary.Dims()

	out := make([]SummaryRow, rows)
	for i := range out {
		idx := int(r.Summary.At(i, SummaryFileIndex))
		out[i] = SummaryRow{
			ProgressVariable: r.Summary.At(i, SummaryProgVar),
			FileIndex:        idx,
			Temperature:      r.Summary.At(i, SummaryTemperature),
		}
		if idx >= 0 && idx < len(r.Files) {
			out[i].File = r.Files[idx]
		}
	}

	return out
}

// WriteSummary writes the summary rows as CSV with a header.
func WriteSummary(w io.Writer, rows []SummaryRow) error {
	return gocsv.Marshal(rows, w)
}
