package verify

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/roach88/joincheck/internal/join"
	"github.com/roach88/joincheck/internal/resultfile"
	"github.com/roach88/joincheck/internal/tablefile"
)

// Options configures a verification run.
type Options struct {
	// InputPath is the table file both tables are read from.
	InputPath string

	// OutputPath is the engine output to check.
	OutputPath string

	// DataLength bounds payloads; it must match the engine's buffer size.
	DataLength int

	// Logger receives progress at debug level. Nil discards.
	Logger *slog.Logger
}

// Report gathers everything a verification run produced.
type Report struct {
	InputPath  string               `json:"input_file"`
	OutputPath string               `json:"join_output"`
	DataLength int                  `json:"data_length"`
	Table0Rows int                  `json:"table0_rows"`
	Table1Rows int                  `json:"table1_rows"`
	Warnings   []resultfile.Warning `json:"warnings"`
	Verdict    *Verdict             `json:"verdict"`
}

// Run reads both files, computes the reference join, and compares.
//
// Errors are returned only when the input table file cannot be parsed or a
// file cannot be read. Malformed engine output lines end up in
// Report.Warnings, and mismatches in Report.Verdict.
func Run(opts Options) (*Report, error) {
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if opts.DataLength < 1 {
		return nil, fmt.Errorf("data length must be positive, got %d", opts.DataLength)
	}

	logger.Debug("reading input tables", "path", opts.InputPath, "data_length", opts.DataLength)
	tables, err := tablefile.ReadFile(opts.InputPath, opts.DataLength)
	if err != nil {
		return nil, fmt.Errorf("load input tables: %w", err)
	}
	logger.Debug("input tables loaded", "table0", len(tables.T0), "table1", len(tables.T1))

	reference := join.Project(join.Join(tables.T0, tables.T1))
	logger.Debug("reference join computed", "rows", len(reference))

	logger.Debug("reading engine output", "path", opts.OutputPath)
	actual, err := resultfile.ReadFile(opts.OutputPath)
	if err != nil {
		return nil, fmt.Errorf("load join output: %w", err)
	}
	for _, w := range actual.Warnings {
		logger.Warn("skipped result line", "path", opts.OutputPath, "line", w.Line, "reason", w.Reason)
	}

	verdict := Compare(reference, actual.Rows)
	logger.Debug("comparison done", "outcome", verdict.Outcome,
		"missing", len(verdict.Missing), "extra", len(verdict.Extra))

	warnings := actual.Warnings
	if warnings == nil {
		warnings = []resultfile.Warning{}
	}
	return &Report{
		InputPath:  opts.InputPath,
		OutputPath: opts.OutputPath,
		DataLength: opts.DataLength,
		Table0Rows: len(tables.T0),
		Table1Rows: len(tables.T1),
		Warnings:   warnings,
		Verdict:    verdict,
	}, nil
}
