// Package join computes the reference inner equi-join that engine output is
// checked against.
//
// The join is a correctness oracle, not a fast path. It is a full inner join:
// when a key appears a times in the primary table and b times in the other,
// the result carries a*b rows for that key. Nothing is deduplicated.
//
// Result order is unspecified. Comparison happens on the Tuple projection,
// which drops row indexes.
package join
