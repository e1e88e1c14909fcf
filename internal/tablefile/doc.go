// Package tablefile reads and writes the two-table input format consumed by
// the join engines under test.
//
// # Format
//
//	<n0> <n1>
//
//	<key> <payload>     (n0 rows)
//
//	<key> <payload>     (n1 rows)
//
// The header is the first non-blank line carrying at least two tokens; both
// must be non-negative integers. Record lines split on the first space only,
// so a payload may contain spaces. Blank lines between records are ignored,
// and lines after the n0+n1-th record are never inspected.
//
// # Payload bound
//
// Every producer and consumer of this format agrees on a data length, the
// size of a fixed-width payload buffer including its terminator. Payloads of
// data length or more characters are truncated to data length - 1. The value
// is not recorded in the file; callers pass it explicitly and must agree on
// it out of band.
//
// # Errors
//
// Reading is strict. A missing or malformed header, an unparseable key, and
// a short file are reported as *HeaderError, *RecordParseError, and
// *TruncatedInputError respectively.
package tablefile
