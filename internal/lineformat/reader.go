package lineformat

import (
	"bufio"
	"errors"
	"io"
	"strings"
)

// Line is one physical line of input with its 1-based number.
// Text has its trailing "\r" and "\n" characters removed.
type Line struct {
	Number int
	Text   string
}

// Reader yields the lines of an input one at a time.
// Lines may be arbitrarily long.
type Reader struct {
	br   *bufio.Reader
	line int
	err  error
}

// NewReader creates a Reader over r.
func NewReader(r io.Reader) *Reader {
	return &Reader{br: bufio.NewReader(r)}
}

// Next returns the next line. ok is false at end of input or on error;
// check Err to tell them apart.
func (r *Reader) Next() (Line, bool) {
	if r.err != nil {
		return Line{}, false
	}

	text, err := r.br.ReadString('\n')
	if err != nil {
		if !errors.Is(err, io.EOF) {
			r.err = err
			return Line{}, false
		}
		r.err = io.EOF
		if text == "" {
			return Line{}, false
		}
	}

	r.line++
	text = strings.TrimRight(text, "\r\n")
	return Line{Number: r.line, Text: text}, true
}

// Err returns the first read error other than io.EOF.
func (r *Reader) Err() error {
	if errors.Is(r.err, io.EOF) {
		return nil
	}
	return r.err
}
