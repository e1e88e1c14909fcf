package tablefile

import (
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/roach88/joincheck/internal/lineformat"
)

// maxPrealloc caps the capacity reserved from header counts, which are
// not trusted until the records arrive.
const maxPrealloc = 1 << 16

// ReadFile opens path and parses it as a table file.
func ReadFile(path string, dataLength int) (*Tables, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("cannot open %q: %w", path, err)
	}
	defer f.Close()

	return Parse(f, path, dataLength)
}

// Parse reads a table file from r. name is used in error messages.
// Payloads are truncated to fewer than dataLength characters.
func Parse(r io.Reader, name string, dataLength int) (*Tables, error) {
	lr := lineformat.NewReader(r)

	header, err := parseHeader(lr, name)
	if err != nil {
		return nil, err
	}

	tables := &Tables{
		Header: header,
		T0:     make(Table, 0, min(header.N0, maxPrealloc)),
		T1:     make(Table, 0, min(header.N1, maxPrealloc)),
	}

	read := 0
	for read < header.Total() {
		line, ok := lr.Next()
		if !ok {
			break
		}
		if lineformat.IsBlank(line.Text) {
			continue
		}

		rec, err := parseRecord(line, name, dataLength)
		if err != nil {
			return nil, err
		}

		if read < header.N0 {
			rec.Index = read
			tables.T0 = append(tables.T0, rec)
		} else {
			rec.Index = read - header.N0
			tables.T1 = append(tables.T1, rec)
		}
		read++
	}
	if err := lr.Err(); err != nil {
		return nil, fmt.Errorf("reading %s: %w", name, err)
	}

	if read < header.Total() {
		return nil, &TruncatedInputError{Path: name, Read: read, Want: header.Total()}
	}

	return tables, nil
}

// parseHeader finds the first non-blank line with at least two tokens and
// parses its first two tokens as the table sizes.
func parseHeader(lr *lineformat.Reader, name string) (Header, error) {
	for {
		line, ok := lr.Next()
		if !ok {
			break
		}

		tokens := lineformat.Fields(line.Text)
		if len(tokens) < 2 {
			continue
		}

		n0, err := parseCount(tokens[0])
		if err != nil {
			return Header{}, &HeaderError{Path: name, Line: line.Number, Text: strings.TrimSpace(line.Text), Err: err}
		}
		n1, err := parseCount(tokens[1])
		if err != nil {
			return Header{}, &HeaderError{Path: name, Line: line.Number, Text: strings.TrimSpace(line.Text), Err: err}
		}
		if n1 > math.MaxInt-n0 {
			err := fmt.Errorf("table sizes %d + %d overflow", n0, n1)
			return Header{}, &HeaderError{Path: name, Line: line.Number, Text: strings.TrimSpace(line.Text), Err: err}
		}
		return Header{N0: n0, N1: n1}, nil
	}

	if err := lr.Err(); err != nil {
		return Header{}, fmt.Errorf("reading %s: %w", name, err)
	}
	return Header{}, &HeaderError{Path: name}
}

func parseCount(tok string) (int, error) {
	n, err := strconv.Atoi(tok)
	if err != nil {
		return 0, err
	}
	if n < 0 {
		return 0, fmt.Errorf("negative table size %d", n)
	}
	return n, nil
}

// parseRecord splits a record line on its first space into key and payload.
func parseRecord(line lineformat.Line, name string, dataLength int) (Record, error) {
	head, rest, _ := lineformat.SplitFirstSpace(line.Text)

	key, err := strconv.ParseInt(strings.TrimSpace(head), 10, 64)
	if err != nil {
		return Record{}, &RecordParseError{Path: name, Line: line.Number, Text: line.Text, Err: err}
	}

	return Record{
		Key:     key,
		Payload: lineformat.Truncate(rest, dataLength),
	}, nil
}
