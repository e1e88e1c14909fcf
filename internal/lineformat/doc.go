// Package lineformat holds the token-level grammar shared by the table-file
// and result-file readers.
//
// Both formats are line oriented and whitespace delimited, with positional
// field meaning. The helpers here make the split arity explicit: a table
// record splits on the first space only (its payload may contain spaces),
// while a result row splits into at most four whitespace-delimited fields.
//
// Payload bounds are expressed through Truncate, which mirrors the
// fixed-width buffer the join engines write into: a payload of data_length
// or more characters keeps its first data_length-1 characters.
package lineformat
