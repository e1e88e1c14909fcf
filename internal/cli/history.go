package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/roach88/joincheck/internal/store"
)

// HistoryOptions holds flags for the history command.
type HistoryOptions struct {
	*RootOptions
	Database string
	Limit    int
	Digest   string
	ID       string
}

// NewHistoryCommand creates the history command.
func NewHistoryCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &HistoryOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "history",
		Short: "List recorded verification runs",
		Long: `List verification runs recorded with verify --db, newest first.

With --digest, list only the runs that produced that verdict, oldest
first. Runs with equal digests reached the same verdict on the same data.

With --id, show one run including its canonical verdict document.

Examples:
  joincheck history --db history.db
  joincheck history --db history.db --limit 5 --format json
  joincheck history --db history.db --digest 3f2a...
  joincheck history --db history.db --id 0192...`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runHistory(opts, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Database, "db", "", "path to SQLite history database (default from config)")
	cmd.Flags().IntVar(&opts.Limit, "limit", 20, "maximum number of runs to list")
	cmd.Flags().StringVar(&opts.Digest, "digest", "", "list only runs with this verdict digest")
	cmd.Flags().StringVar(&opts.ID, "id", "", "show a single run")
	cmd.MarkFlagsMutuallyExclusive("digest", "id")

	return cmd
}

func runHistory(opts *HistoryOptions, cmd *cobra.Command) error {
	database := opts.settings().HistoryDB
	if cmd.Flags().Changed("db") {
		database = opts.Database
	}
	if database == "" {
		return NewExitError(ExitCommandError, "no history database: pass --db or set history_db in the config")
	}
	if opts.Limit < 1 {
		return NewExitError(ExitCommandError, fmt.Sprintf("--limit must be positive, got %d", opts.Limit))
	}

	// Don't let Open create an empty database for a mistyped path
	if _, err := os.Stat(database); os.IsNotExist(err) {
		return NewExitError(ExitCommandError, fmt.Sprintf("database not found: %s", database))
	}

	st, err := store.Open(database)
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to open database", err)
	}
	defer func() {
		if closeErr := st.Close(); closeErr != nil {
			opts.logger().Error("error closing database", "error", closeErr)
		}
	}()

	ctx := commandContext(cmd)
	f := opts.formatter(cmd)

	if opts.ID != "" {
		run, err := st.GetRun(ctx, opts.ID)
		if errors.Is(err, store.ErrRunNotFound) {
			return WrapExitError(ExitFailure, "no such run", err)
		}
		if err != nil {
			return WrapExitError(ExitCommandError, "failed to query run", err)
		}
		if f.Format == "json" {
			return f.Success(run)
		}
		writeRuns(f.Writer, []store.Run{run})
		fmt.Fprintf(f.Writer, "  %s\n", run.Verdict)
		return nil
	}

	var runs []store.Run
	if opts.Digest != "" {
		runs, err = st.RunsByDigest(ctx, opts.Digest)
	} else {
		runs, err = st.ListRuns(ctx, opts.Limit)
	}
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to query runs", err)
	}

	if f.Format == "json" {
		if runs == nil {
			runs = []store.Run{}
		}
		return f.Success(runs)
	}

	writeRuns(f.Writer, runs)
	return nil
}

func writeRuns(w io.Writer, runs []store.Run) {
	if len(runs) == 0 {
		fmt.Fprintln(w, "No runs recorded.")
		return
	}
	for _, r := range runs {
		fmt.Fprintf(w, "#%d %s %s\n", r.Seq, r.ID, r.Outcome)
		fmt.Fprintf(w, "  reference %d, output %d, missing %d, extra %d, skipped %d\n",
			r.ReferenceRows, r.ActualRows, r.MissingRows, r.ExtraRows, r.Warnings)
		fmt.Fprintf(w, "  %s\n", r.Command)
		fmt.Fprintf(w, "  %s\n", r.Digest)
	}
}
