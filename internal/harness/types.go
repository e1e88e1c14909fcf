package harness

import (
	"github.com/roach88/joincheck/internal/verify"
)

// CaseResult is the outcome of one case.
type CaseResult struct {
	Name string `json:"name"`

	// Pass is true when the case met every expectation.
	Pass bool `json:"pass"`

	// Outcome is the verdict outcome, or "error" when the run failed.
	Outcome string `json:"outcome"`

	// Errors lists the unmet expectations.
	Errors []string `json:"errors,omitempty"`

	// Report is nil when the run failed.
	Report *verify.Report `json:"-"`

	// Err is the run failure, if any.
	Err error `json:"-"`
}

// addError records an unmet expectation and marks the case failed.
func (r *CaseResult) addError(msg string) {
	r.Errors = append(r.Errors, msg)
	r.Pass = false
}

// Result is the outcome of a whole suite.
type Result struct {
	Suite  string       `json:"suite"`
	Cases  []CaseResult `json:"cases"`
	Passed int          `json:"passed"`
	Failed int          `json:"failed"`
}

// Pass reports whether every case passed.
func (r *Result) Pass() bool {
	return r.Failed == 0
}
