package harness

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/roach88/joincheck/internal/verify"
)

// Options configures a suite run.
type Options struct {
	// DataLength applies to suites that do not set their own.
	DataLength int

	// Logger receives per-case progress. Nil discards.
	Logger *slog.Logger
}

// Run executes every case of suite in order.
//
// A case whose input table cannot be parsed has outcome "error"; that is a
// pass only for cases expecting it. Run itself does not fail.
func Run(suite *Suite, opts Options) *Result {
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	dataLength := suite.DataLength
	if dataLength == 0 {
		dataLength = opts.DataLength
	}

	result := &Result{
		Suite: suite.Name,
		Cases: make([]CaseResult, 0, len(suite.Cases)),
	}
	for _, c := range suite.Cases {
		cr := runCase(c, dataLength, logger)
		logger.Debug("case finished", "suite", suite.Name, "case", c.Name, "outcome", cr.Outcome, "pass", cr.Pass)

		if cr.Pass {
			result.Passed++
		} else {
			result.Failed++
		}
		result.Cases = append(result.Cases, cr)
	}
	return result
}

func runCase(c Case, dataLength int, logger *slog.Logger) CaseResult {
	cr := CaseResult{Name: c.Name, Pass: true}

	rep, err := verify.Run(verify.Options{
		InputPath:  c.Input,
		OutputPath: c.Output,
		DataLength: dataLength,
		Logger:     logger,
	})
	if err != nil {
		cr.Outcome = ExpectError
		cr.Err = err
		if c.Expect != ExpectError {
			cr.addError(fmt.Sprintf("expected %s, run failed: %v", c.Expect, err))
		}
		return cr
	}

	cr.Report = rep
	cr.Outcome = string(rep.Verdict.Outcome)
	if cr.Outcome != c.Expect {
		cr.addError(fmt.Sprintf("expected %s, got %s", c.Expect, cr.Outcome))
	}

	checkCount(&cr, "missing", c.Missing, len(rep.Verdict.Missing))
	checkCount(&cr, "extra", c.Extra, len(rep.Verdict.Extra))
	checkCount(&cr, "warnings", c.Warnings, len(rep.Warnings))
	return cr
}

func checkCount(cr *CaseResult, what string, want *int, got int) {
	if want == nil || *want == got {
		return
	}
	cr.addError(fmt.Sprintf("expected %d %s, got %d", *want, what, got))
}
