package harness

import (
	"bytes"
	"testing"

	"github.com/sebdah/goldie/v2"
)

// AssertGolden runs suite and compares its text rendering against
// testdata/golden/{name}.golden.
//
// To regenerate golden files, run:
//
//	go test ./internal/harness -update
//
// Error text from failed runs embeds file paths, so suites used here should
// keep their cases free of "error" outcomes unless the paths are stable.
func AssertGolden(t *testing.T, name string, suite *Suite, opts Options) *Result {
	t.Helper()

	result := Run(suite, opts)

	var buf bytes.Buffer
	WriteText(&buf, result)

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, name, buf.Bytes())

	return result
}
