// Package verify compares engine output against the reference join and
// renders the verdict.
//
// Comparison is a multiset difference over join.Tuple values: row order and
// row indexes are ignored, duplicates are significant. A size difference is
// reported on its own, ahead of the content diff, and the content diff is
// still computed so the report can show which rows are responsible.
//
// Row indexes take no part in equality, so an engine that pairs the right
// payloads with the wrong provenance passes.
package verify
