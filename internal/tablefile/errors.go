package tablefile

import (
	"errors"
	"fmt"
)

// HeaderError reports a table file without a usable "<n0> <n1>" header.
type HeaderError struct {
	// Path names the file being read.
	Path string

	// Line is the 1-based line of the malformed header, or 0 when no
	// header candidate was found at all.
	Line int

	// Text is the offending line as read.
	Text string

	// Err is the underlying parse error, if any.
	Err error
}

func (e *HeaderError) Error() string {
	if e.Line == 0 {
		return fmt.Sprintf("%s: no valid header found", e.Path)
	}
	return fmt.Sprintf("%s:%d: malformed header %q", e.Path, e.Line, e.Text)
}

func (e *HeaderError) Unwrap() error {
	return e.Err
}

// RecordParseError reports a record line whose key is not an integer.
type RecordParseError struct {
	Path string
	Line int
	Text string
	Err  error
}

func (e *RecordParseError) Error() string {
	return fmt.Sprintf("%s:%d: error parsing key in line %q", e.Path, e.Line, e.Text)
}

func (e *RecordParseError) Unwrap() error {
	return e.Err
}

// TruncatedInputError reports a file that ends before n0+n1 records.
type TruncatedInputError struct {
	Path string
	Read int
	Want int
}

func (e *TruncatedInputError) Error() string {
	return fmt.Sprintf("%s: only read %d of %d requested records", e.Path, e.Read, e.Want)
}

// Shortfall returns how many records were missing.
func (e *TruncatedInputError) Shortfall() int {
	return e.Want - e.Read
}

// IsHeaderError returns true if err is or wraps a *HeaderError.
func IsHeaderError(err error) bool {
	var he *HeaderError
	return errors.As(err, &he)
}

// IsRecordParseError returns true if err is or wraps a *RecordParseError.
func IsRecordParseError(err error) bool {
	var re *RecordParseError
	return errors.As(err, &re)
}

// IsTruncatedInputError returns true if err is or wraps a *TruncatedInputError.
func IsTruncatedInputError(err error) bool {
	var te *TruncatedInputError
	return errors.As(err, &te)
}
