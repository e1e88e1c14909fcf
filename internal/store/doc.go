// Package store keeps a SQLite history of verification runs.
//
// Each run row carries the counts from the report, the outcome, and the
// canonical JSON verdict document together with its digest. Two runs with
// the same digest reached the same verdict over the same data, wherever the
// files lived.
//
// # Ordering
//
// Rows are ordered by seq, the insertion order. Wall-clock time is not
// stored; run IDs are UUIDv7 and sort by creation time if needed.
//
// # Concurrency
//
// Several verify invocations may share one history file. The connection
// pragmas are chosen so they queue on the write lock rather than fail, and
// so a history listing never blocks a run being recorded.
package store
