package resultfile

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/roach88/joincheck/internal/join"
	"github.com/roach88/joincheck/internal/lineformat"
)

// rowFields is the split arity of a result row. payS keeps any remainder.
const rowFields = 4

// minRowFields is the fewest fields a usable row may have; payS may be absent.
const minRowFields = 3

// Warning describes a skipped result line.
type Warning struct {
	Line   int    `json:"line"`
	Text   string `json:"text"`
	Reason string `json:"reason"`
}

func (w Warning) String() string {
	return fmt.Sprintf("line %d: %s: %q", w.Line, w.Reason, w.Text)
}

// Warning reasons.
const (
	ReasonMalformed = "malformed line"
	ReasonBadKeyR   = "invalid keyR"
	ReasonBadKeyS   = "invalid keyS"
)

// Result holds the parsed rows and the lines that were skipped.
type Result struct {
	Rows     []join.Tuple
	Warnings []Warning
}

// ReadFile opens path and parses it as engine output.
// Only I/O failures are returned as errors.
func ReadFile(path string) (*Result, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("cannot open %q: %w", path, err)
	}
	defer f.Close()

	return Parse(f, path)
}

// Parse reads engine output from r. name is used in error messages.
func Parse(r io.Reader, name string) (*Result, error) {
	lr := lineformat.NewReader(r)
	result := &Result{}

	for {
		line, ok := lr.Next()
		if !ok {
			break
		}
		if lineformat.IsBlank(line.Text) {
			continue
		}

		tuple, warn, ok := parseRow(line)
		if !ok {
			result.Warnings = append(result.Warnings, warn)
			continue
		}
		result.Rows = append(result.Rows, tuple)
	}
	if err := lr.Err(); err != nil {
		return nil, fmt.Errorf("reading %s: %w", name, err)
	}

	return result, nil
}

func parseRow(line lineformat.Line) (join.Tuple, Warning, bool) {
	fields := lineformat.SplitFieldsN(line.Text, rowFields)
	if len(fields) < minRowFields {
		return join.Tuple{}, newWarning(line, ReasonMalformed), false
	}

	keyR, err := strconv.ParseInt(fields[0], 10, 64)
	if err != nil {
		return join.Tuple{}, newWarning(line, ReasonBadKeyR), false
	}
	keyS, err := strconv.ParseInt(fields[2], 10, 64)
	if err != nil {
		return join.Tuple{}, newWarning(line, ReasonBadKeyS), false
	}

	tuple := join.Tuple{KeyR: keyR, KeyS: keyS, PayR: fields[1]}
	if len(fields) == rowFields {
		tuple.PayS = fields[3]
	}
	return tuple, Warning{}, true
}

func newWarning(line lineformat.Line, reason string) Warning {
	return Warning{Line: line.Number, Text: line.Text, Reason: reason}
}
