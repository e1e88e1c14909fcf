package verify

import (
	"github.com/roach88/joincheck/internal/join"
)

// Outcome is the verdict category.
type Outcome string

const (
	// OutcomePass means reference and actual rows are equal as multisets.
	OutcomePass Outcome = "pass"

	// OutcomeSizeMismatch means the row counts differ.
	OutcomeSizeMismatch Outcome = "size_mismatch"

	// OutcomeContentMismatch means the row counts agree but the rows do not.
	OutcomeContentMismatch Outcome = "content_mismatch"
)

// Verdict is the result of comparing reference rows with actual rows.
// Missing and Extra are sorted by join.Compare and repeat a tuple once per
// unmatched occurrence.
type Verdict struct {
	Outcome       Outcome      `json:"outcome"`
	ReferenceRows int          `json:"reference_rows"`
	ActualRows    int          `json:"actual_rows"`
	Missing       []join.Tuple `json:"missing"`
	Extra         []join.Tuple `json:"extra"`
}

// Pass reports whether the verdict is a match.
func (v *Verdict) Pass() bool {
	return v.Outcome == OutcomePass
}

// SizeMismatch reports whether the row counts differ.
func (v *Verdict) SizeMismatch() bool {
	return v.ReferenceRows != v.ActualRows
}

// Compare computes the verdict for reference rows against actual rows.
func Compare(reference, actual []join.Tuple) *Verdict {
	v := &Verdict{
		ReferenceRows: len(reference),
		ActualRows:    len(actual),
	}

	counts := make(map[join.Tuple]int, len(reference))
	for _, t := range reference {
		counts[t]++
	}
	for _, t := range actual {
		counts[t]--
	}

	v.Missing = []join.Tuple{}
	v.Extra = []join.Tuple{}
	for t, n := range counts {
		for ; n > 0; n-- {
			v.Missing = append(v.Missing, t)
		}
		for ; n < 0; n++ {
			v.Extra = append(v.Extra, t)
		}
	}
	join.Sort(v.Missing)
	join.Sort(v.Extra)

	switch {
	case v.SizeMismatch():
		v.Outcome = OutcomeSizeMismatch
	case len(v.Missing) > 0 || len(v.Extra) > 0:
		v.Outcome = OutcomeContentMismatch
	default:
		v.Outcome = OutcomePass
	}
	return v
}
