package verify

import (
	"fmt"
	"io"

	"github.com/roach88/joincheck/internal/join"
	"github.com/roach88/joincheck/internal/resultfile"
)

// DefaultMaxExamples caps how many rows each diagnostic list prints.
const DefaultMaxExamples = 10

// WriteText renders rep as a human-readable report.
// Each list of rows or warnings prints at most maxExamples entries followed
// by a count of the rest; maxExamples <= 0 selects DefaultMaxExamples.
func WriteText(w io.Writer, rep *Report, maxExamples int) {
	if maxExamples <= 0 {
		maxExamples = DefaultMaxExamples
	}

	fmt.Fprintf(w, "Input file: %s\n", rep.InputPath)
	fmt.Fprintf(w, "Join output: %s\n", rep.OutputPath)
	fmt.Fprintln(w)
	fmt.Fprintf(w, "Table 0: %d records\n", rep.Table0Rows)
	fmt.Fprintf(w, "Table 1: %d records\n", rep.Table1Rows)
	fmt.Fprintf(w, "Reference join: %d records\n", rep.Verdict.ReferenceRows)
	fmt.Fprintf(w, "Engine output: %d records\n", rep.Verdict.ActualRows)

	if len(rep.Warnings) > 0 {
		fmt.Fprintf(w, "Skipped %d malformed line(s):\n", len(rep.Warnings))
		for i, warn := range rep.Warnings {
			if i == maxExamples {
				fmt.Fprintf(w, "   ... and %d more lines\n", len(rep.Warnings)-maxExamples)
				break
			}
			fmt.Fprintf(w, "   %s\n", warn)
		}
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, "=== COMPARISON ===")

	v := rep.Verdict
	if v.Pass() {
		fmt.Fprintln(w, "✓ All join results match")
		return
	}

	if v.SizeMismatch() {
		fmt.Fprintf(w, "✗ Result size mismatch: reference %d records, engine output %d records\n",
			v.ReferenceRows, v.ActualRows)
	}
	if len(v.Missing) > 0 || len(v.Extra) > 0 {
		fmt.Fprintln(w, "✗ Results do not match")
	}

	writeTuples(w, "Reference rows NOT FOUND in engine output", v.Missing, maxExamples)
	writeTuples(w, "Engine rows NOT FOUND in reference", v.Extra, maxExamples)
}

func writeTuples(w io.Writer, title string, tuples []join.Tuple, maxExamples int) {
	if len(tuples) == 0 {
		return
	}

	fmt.Fprintln(w)
	fmt.Fprintf(w, "%s (%d records):\n", title, len(tuples))
	for i, t := range tuples {
		if i == maxExamples {
			fmt.Fprintf(w, "   ... and %d more records\n", len(tuples)-maxExamples)
			return
		}
		fmt.Fprintf(w, "   %s\n", t)
	}
}

// CappedReport is the machine-readable form of a report. Each diagnostic
// list holds at most the requested number of entries; the *_omitted
// counts say how many were cut.
type CappedReport struct {
	InputPath       string               `json:"input_file"`
	OutputPath      string               `json:"join_output"`
	DataLength      int                  `json:"data_length"`
	Table0Rows      int                  `json:"table0_rows"`
	Table1Rows      int                  `json:"table1_rows"`
	Warnings        []resultfile.Warning `json:"warnings"`
	WarningsOmitted int                  `json:"warnings_omitted"`
	Verdict         CappedVerdict        `json:"verdict"`
}

// CappedVerdict is a verdict with its row lists capped.
type CappedVerdict struct {
	Outcome        Outcome      `json:"outcome"`
	ReferenceRows  int          `json:"reference_rows"`
	ActualRows     int          `json:"actual_rows"`
	Missing        []join.Tuple `json:"missing"`
	MissingOmitted int          `json:"missing_omitted"`
	Extra          []join.Tuple `json:"extra"`
	ExtraOmitted   int          `json:"extra_omitted"`
}

// Capped returns r with every diagnostic list cut to maxExamples
// entries; maxExamples <= 0 selects DefaultMaxExamples. The full lists
// stay in r for the digest and the run history.
func (r *Report) Capped(maxExamples int) *CappedReport {
	if maxExamples <= 0 {
		maxExamples = DefaultMaxExamples
	}

	warnings, warningsOmitted := capList(r.Warnings, maxExamples)
	missing, missingOmitted := capList(r.Verdict.Missing, maxExamples)
	extra, extraOmitted := capList(r.Verdict.Extra, maxExamples)

	return &CappedReport{
		InputPath:       r.InputPath,
		OutputPath:      r.OutputPath,
		DataLength:      r.DataLength,
		Table0Rows:      r.Table0Rows,
		Table1Rows:      r.Table1Rows,
		Warnings:        warnings,
		WarningsOmitted: warningsOmitted,
		Verdict: CappedVerdict{
			Outcome:        r.Verdict.Outcome,
			ReferenceRows:  r.Verdict.ReferenceRows,
			ActualRows:     r.Verdict.ActualRows,
			Missing:        missing,
			MissingOmitted: missingOmitted,
			Extra:          extra,
			ExtraOmitted:   extraOmitted,
		},
	}
}

// capList returns at most n leading items of list, never nil, and the
// number left out.
func capList[T any](list []T, n int) ([]T, int) {
	if len(list) <= n {
		return append([]T{}, list...), 0
	}
	return append([]T{}, list[:n]...), len(list) - n
}
