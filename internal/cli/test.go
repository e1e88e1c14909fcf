package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/roach88/joincheck/internal/harness"
)

// TestOptions holds flags for the test command.
type TestOptions struct {
	*RootOptions
	Filter string // suite filter (glob pattern on the file name)
}

// TestResult holds the overall test result.
type TestResult struct {
	Suites []*harness.Result `json:"suites"`
	Passed int               `json:"passed"`
	Failed int               `json:"failed"`
	Total  int               `json:"total"`
}

// NewTestCommand creates the test command.
func NewTestCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &TestOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "test <suite-file-or-dir>",
		Short: "Run verification suites",
		Long: `Run YAML verification suites.

Each case names an input table file, an engine output file and the
expected outcome (pass, size_mismatch, content_mismatch or error). A case
passes when the verification ends the way it expects.

Exit codes:
  0 - All cases passed
  1 - One or more cases failed
  2 - Command error (invalid paths, etc.)

Examples:
  joincheck test ./suites
  joincheck test ./suites/e2e.yaml
  joincheck test ./suites --filter "regress-*" --format json`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTests(opts, args[0], cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Filter, "filter", "", "filter suites by glob pattern")

	return cmd
}

func runTests(opts *TestOptions, path string, cmd *cobra.Command) error {
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		return NewExitError(ExitCommandError, fmt.Sprintf("suite path not found: %s", path))
	}
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to stat suite path", err)
	}

	suiteFiles := []string{path}
	if info.IsDir() {
		suiteFiles, err = findSuiteFiles(path, opts.Filter)
		if err != nil {
			return WrapExitError(ExitCommandError, "failed to find suites", err)
		}
	}

	if len(suiteFiles) == 0 {
		if opts.Format == "json" {
			return outputTestJSON(opts.formatter(cmd), TestResult{Suites: []*harness.Result{}})
		}
		fmt.Fprintln(cmd.OutOrStdout(), "No suites found.")
		return nil
	}

	result := TestResult{Suites: make([]*harness.Result, 0, len(suiteFiles))}
	for _, suiteFile := range suiteFiles {
		sr := runSuite(opts, suiteFile)
		result.Suites = append(result.Suites, sr)
		result.Passed += sr.Passed
		result.Failed += sr.Failed
		result.Total += len(sr.Cases)
	}

	if opts.Format == "json" {
		return outputTestJSON(opts.formatter(cmd), result)
	}
	return outputTestText(cmd, result)
}

// findSuiteFiles finds all YAML suite files in a directory.
func findSuiteFiles(dir string, filter string) ([]string, error) {
	var files []string

	err := filepath.WalkDir(dir, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if d.IsDir() {
			return nil
		}

		// Only process .yaml and .yml files
		ext := filepath.Ext(path)
		if ext != ".yaml" && ext != ".yml" {
			return nil
		}

		// Apply filter if specified
		if filter != "" {
			name := strings.TrimSuffix(filepath.Base(path), ext)
			matched, err := filepath.Match(filter, name)
			if err != nil {
				return fmt.Errorf("invalid filter pattern: %w", err)
			}
			if !matched {
				return nil
			}
		}

		files = append(files, path)
		return nil
	})

	return files, err
}

// runSuite loads and runs one suite file. A suite that fails to load is
// reported as a single failed case so the remaining suites still run.
func runSuite(opts *TestOptions, suiteFile string) *harness.Result {
	logger := opts.logger()

	suite, err := harness.LoadSuite(suiteFile)
	if err != nil {
		logger.Debug("suite load failed", "file", suiteFile, "error", err)
		return &harness.Result{
			Suite: filepath.Base(suiteFile),
			Cases: []harness.CaseResult{{
				Name:    "load",
				Outcome: harness.ExpectError,
				Errors:  []string{fmt.Sprintf("failed to load suite: %v", err)},
			}},
			Failed: 1,
		}
	}

	logger.Debug("running suite", "suite", suite.Name, "cases", len(suite.Cases))
	return harness.Run(suite, harness.Options{
		DataLength: opts.settings().DataLength,
		Logger:     logger,
	})
}

// outputTestJSON outputs the test result as JSON.
func outputTestJSON(f *OutputFormatter, result TestResult) error {
	if result.Failed > 0 {
		msg := fmt.Sprintf("%d case(s) failed", result.Failed)
		if err := f.Failure(CodeTestFailed, msg, result); err != nil {
			return err
		}
		// Test failures = exit code 1
		return NewExitError(ExitFailure, msg)
	}
	return f.Success(result)
}

// outputTestText outputs the test result as text.
func outputTestText(cmd *cobra.Command, result TestResult) error {
	w := cmd.OutOrStdout()

	for _, sr := range result.Suites {
		harness.WriteText(w, sr)
	}

	fmt.Fprintln(w)
	fmt.Fprintf(w, "Test Summary: %d passed, %d failed, %d total\n", result.Passed, result.Failed, result.Total)

	if result.Failed > 0 {
		// Test failures = exit code 1
		return NewExitError(ExitFailure, fmt.Sprintf("%d case(s) failed", result.Failed))
	}

	fmt.Fprintln(w, "✓ All cases passed")
	return nil
}
