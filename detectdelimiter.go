package progvar

import (
	"bufio"
	"bytes"
	"io"
	"strings"

	"github.com/csimplestring/go-csv/detector"
)

// Whitespace is returned by DetermineDelimiter when the columns of a table are
// aligned with runs of blanks rather than separated by a single rune.
const Whitespace = ' '

var preferredDelimiters = []string{"\t", ",", ";", "|"}

// sniffLines is the number of non-comment lines handed to the detector.
const sniffLines = 20

// DetermineDelimiter returns the single most likely rune that delimits the
// values in the reader, assuming a CSV-like table whose comment lines start
// with '#'. Tables that are aligned with spaces (as FlameMaster writes them)
// report Whitespace.
func DetermineDelimiter(r io.Reader) rune {
	sample := bytes.Buffer{}
	scanner := bufio.NewScanner(r)
	for n := 0; n < sniffLines && scanner.Scan(); {
		line := scanner.Text()
		if trimmed := strings.TrimSpace(line); trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}
		sample.WriteString(line)
		sample.WriteByte('\n')
		n++
	}

	d := detector.New()
	detected := d.DetectDelimiter(bytes.NewReader(sample.Bytes()), '"')
	for _, want := range preferredDelimiters {
		for _, got := range detected {
			if got == want {
				return rune(want[0])
			}
		}
	}

	// The detector can miss a delimiter when a header is much wider than the
	// rows. Fall back to the first one present anywhere in the sample.
	for _, want := range preferredDelimiters {
		if strings.Contains(sample.String(), want) {
			return rune(want[0])
		}
	}

	return Whitespace
}
