package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/roach88/joincheck/internal/store"
	"github.com/roach88/joincheck/internal/verify"
)

// VerifyOptions holds flags for the verify command.
type VerifyOptions struct {
	*RootOptions
	DataLength  int
	MaxExamples int
	Database    string

	// IDGenerator allows overriding run IDs (for testing).
	// If nil, defaults to UUIDv7Generator.
	IDGenerator store.IDGenerator
}

// NewVerifyCommand creates the verify command.
func NewVerifyCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &VerifyOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "verify <input_file> [join_output_file]",
		Short: "Check engine join output against the reference join",
		Long: `Check the rows an engine wrote against the reference join of the
two tables in the input file.

The engine output defaults to the configured join_output (build/join.txt).
Malformed output lines are skipped and listed; malformed input tables are
fatal.

Exit codes:
  0 - Results match
  1 - Parse failure, size mismatch or content mismatch
  2 - Command error (bad flags, invalid config, history not writable
      after a match, etc.)

Examples:
  joincheck verify tables.txt
  joincheck verify tables.txt out/join.txt --data-length 12
  joincheck verify tables.txt --db history.db --format json`,
		Args:          cobra.RangeArgs(1, 2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runVerify(opts, args, cmd)
		},
	}

	cmd.Flags().IntVar(&opts.DataLength, "data-length", 0, "payload buffer size; payloads keep at most N-1 characters (default from config)")
	cmd.Flags().IntVar(&opts.MaxExamples, "max-examples", 0, "maximum rows listed per diagnostic section (default from config)")
	cmd.Flags().StringVar(&opts.Database, "db", "", "record the run in this SQLite history database")

	return cmd
}

func runVerify(opts *VerifyOptions, args []string, cmd *cobra.Command) error {
	cfg := opts.settings()
	logger := opts.logger()

	dataLength := cfg.DataLength
	if cmd.Flags().Changed("data-length") {
		dataLength = opts.DataLength
	}
	maxExamples := cfg.MaxExamples
	if cmd.Flags().Changed("max-examples") {
		maxExamples = opts.MaxExamples
	}
	database := cfg.HistoryDB
	if cmd.Flags().Changed("db") {
		database = opts.Database
	}

	if dataLength < 1 {
		return NewExitError(ExitCommandError, fmt.Sprintf("--data-length must be positive, got %d", dataLength))
	}
	if maxExamples < 1 {
		return NewExitError(ExitCommandError, fmt.Sprintf("--max-examples must be positive, got %d", maxExamples))
	}

	outputPath := cfg.JoinOutput
	if len(args) == 2 {
		outputPath = args[1]
	}

	f := opts.formatter(cmd)

	rep, err := verify.Run(verify.Options{
		InputPath:  args[0],
		OutputPath: outputPath,
		DataLength: dataLength,
		Logger:     logger,
	})
	if err != nil {
		if opts.Format == "json" {
			if encErr := f.Error(CodeParse, err.Error(), nil); encErr != nil {
				return encErr
			}
		}
		return WrapExitError(ExitFailure, "verification failed", err)
	}

	logger.Info("verification finished",
		"outcome", rep.Verdict.Outcome,
		"reference", rep.Verdict.ReferenceRows,
		"actual", rep.Verdict.ActualRows,
		"warnings", len(rep.Warnings))

	if err := outputVerify(f, rep, maxExamples); err != nil {
		return err
	}

	// A mismatch keeps exit 1 even when the run cannot be recorded; the
	// recording failure is only logged then.
	if database != "" {
		if err := recordRun(opts, database, rep, args, cmd); err != nil {
			if rep.Verdict.Pass() {
				return err
			}
			logger.Error("failed to record run", "db", database, "error", err)
		}
	}

	if !rep.Verdict.Pass() {
		return NewExitError(ExitFailure, mismatchMessage(rep.Verdict))
	}
	return nil
}

func outputVerify(f *OutputFormatter, rep *verify.Report, maxExamples int) error {
	if f.Format != "json" {
		verify.WriteText(f.Writer, rep, maxExamples)
		return nil
	}
	capped := rep.Capped(maxExamples)
	if rep.Verdict.Pass() {
		return f.Success(capped)
	}
	return f.Failure(CodeMismatch, mismatchMessage(rep.Verdict), capped)
}

func mismatchMessage(v *verify.Verdict) string {
	if v.SizeMismatch() {
		return fmt.Sprintf("result size mismatch: reference %d records, engine output %d records", v.ReferenceRows, v.ActualRows)
	}
	return fmt.Sprintf("results do not match: %d missing, %d extra", len(v.Missing), len(v.Extra))
}

// recordRun appends rep to the history database at path.
func recordRun(opts *VerifyOptions, path string, rep *verify.Report, args []string, cmd *cobra.Command) error {
	logger := opts.logger()

	st, err := store.Open(path)
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to open database", err)
	}
	defer func() {
		if closeErr := st.Close(); closeErr != nil {
			logger.Error("error closing database", "error", closeErr)
		}
	}()

	ids := opts.IDGenerator
	if ids == nil {
		ids = store.UUIDv7Generator{}
	}

	run, err := store.NewRun(ids.Generate(), commandLine(cmd, args), rep)
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to build run record", err)
	}
	seq, err := st.WriteRun(commandContext(cmd), run)
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to record run", err)
	}

	logger.Debug("run recorded", "db", path, "id", run.ID, "seq", seq, "digest", run.Digest)
	return nil
}
