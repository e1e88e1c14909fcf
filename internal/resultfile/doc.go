// Package resultfile parses the output of a join engine under test.
//
// Each non-blank line is one joined row:
//
//	<keyR> <payR> <keyS> <payS>
//
// Fields are whitespace delimited and payloads carry no spaces. Parsing is
// tolerant: a line with fewer than three fields or a non-integer key is
// recorded as a Warning and skipped, so a buggy engine still gets a
// best-effort comparison instead of a rejected run.
package resultfile
