package harness

import (
	"fmt"
	"io"
)

// WriteText renders one line per case, failures followed by their errors,
// and a closing summary line.
func WriteText(w io.Writer, r *Result) {
	for _, c := range r.Cases {
		if c.Pass {
			fmt.Fprintf(w, "✓ %s/%s (%s)\n", r.Suite, c.Name, c.Outcome)
			continue
		}
		fmt.Fprintf(w, "✗ %s/%s (%s)\n", r.Suite, c.Name, c.Outcome)
		for _, e := range c.Errors {
			fmt.Fprintf(w, "  %s\n", e)
		}
	}
	fmt.Fprintf(w, "%s: %d passed, %d failed, %d total\n", r.Suite, r.Passed, r.Failed, len(r.Cases))
}
