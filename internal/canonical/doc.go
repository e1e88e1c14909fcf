// Package canonical produces RFC 8785 style canonical JSON and
// domain-separated digests over it.
//
// Canonical JSON is used wherever bytes must be stable across runs: the
// digest stored with each run in the history database, and the verdict
// document that digest is computed from.
//
// Supported values are strings, integers, booleans, []any and
// map[string]any. Floats and null are rejected. Strings are NFC normalized
// and object keys are sorted by UTF-16 code units.
package canonical
