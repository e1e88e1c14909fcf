package verify

import (
	"github.com/roach88/joincheck/internal/canonical"
	"github.com/roach88/joincheck/internal/join"
)

// Document returns the verdict part of the report as a canonical JSON
// value. File paths are left out so the same data verified from different
// locations yields the same digest.
func (r *Report) Document() map[string]any {
	warnings := make([]any, len(r.Warnings))
	for i, w := range r.Warnings {
		warnings[i] = map[string]any{
			"line":   w.Line,
			"text":   w.Text,
			"reason": w.Reason,
		}
	}

	return map[string]any{
		"data_length":    r.DataLength,
		"table0_rows":    r.Table0Rows,
		"table1_rows":    r.Table1Rows,
		"outcome":        string(r.Verdict.Outcome),
		"reference_rows": r.Verdict.ReferenceRows,
		"actual_rows":    r.Verdict.ActualRows,
		"missing":        tuplesDocument(r.Verdict.Missing),
		"extra":          tuplesDocument(r.Verdict.Extra),
		"warnings":       warnings,
	}
}

func tuplesDocument(tuples []join.Tuple) []any {
	doc := make([]any, len(tuples))
	for i, t := range tuples {
		doc[i] = map[string]any{
			"key_r": t.KeyR,
			"key_s": t.KeyS,
			"pay_r": t.PayR,
			"pay_s": t.PayS,
		}
	}
	return doc
}

// Digest identifies the verdict by content.
func (r *Report) Digest() (string, error) {
	return canonical.Digest(canonical.DomainVerdict, r.Document())
}
