package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/roach88/joincheck/internal/canonical"
	"github.com/roach88/joincheck/internal/verify"
)

// ErrRunNotFound is returned by GetRun for an unknown ID.
var ErrRunNotFound = errors.New("run not found")

// Run is one recorded verification.
type Run struct {
	Seq           int64          `json:"seq"`
	ID            string         `json:"id"`
	Command       string         `json:"command"`
	InputPath     string         `json:"input_file"`
	OutputPath    string         `json:"join_output"`
	DataLength    int            `json:"data_length"`
	Table0Rows    int            `json:"table0_rows"`
	Table1Rows    int            `json:"table1_rows"`
	ReferenceRows int            `json:"reference_rows"`
	ActualRows    int            `json:"actual_rows"`
	MissingRows   int            `json:"missing_rows"`
	ExtraRows     int            `json:"extra_rows"`
	Warnings      int            `json:"warnings"`
	Outcome       verify.Outcome `json:"outcome"`
	Digest        string         `json:"digest"`
	Verdict       string         `json:"-"`
}

// NewRun builds the history row for rep. command is the command line that
// produced the report, kept so the run can be reproduced.
func NewRun(id, command string, rep *verify.Report) (Run, error) {
	doc := rep.Document()
	verdictJSON, err := canonical.Marshal(doc)
	if err != nil {
		return Run{}, fmt.Errorf("new run: %w", err)
	}
	digest, err := canonical.Digest(canonical.DomainVerdict, doc)
	if err != nil {
		return Run{}, fmt.Errorf("new run: %w", err)
	}

	return Run{
		ID:            id,
		Command:       command,
		InputPath:     rep.InputPath,
		OutputPath:    rep.OutputPath,
		DataLength:    rep.DataLength,
		Table0Rows:    rep.Table0Rows,
		Table1Rows:    rep.Table1Rows,
		ReferenceRows: rep.Verdict.ReferenceRows,
		ActualRows:    rep.Verdict.ActualRows,
		MissingRows:   len(rep.Verdict.Missing),
		ExtraRows:     len(rep.Verdict.Extra),
		Warnings:      len(rep.Warnings),
		Outcome:       rep.Verdict.Outcome,
		Digest:        digest,
		Verdict:       string(verdictJSON),
	}, nil
}

// WriteRun inserts run and returns its assigned seq.
func (s *Store) WriteRun(ctx context.Context, run Run) (int64, error) {
	res, err := s.db.ExecContext(ctx, `
		INSERT INTO runs
		(id, command, input_path, output_path, data_length, table0_rows, table1_rows,
		 reference_rows, actual_rows, missing_rows, extra_rows, warnings, outcome, digest, verdict)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`,
		run.ID,
		run.Command,
		run.InputPath,
		run.OutputPath,
		run.DataLength,
		run.Table0Rows,
		run.Table1Rows,
		run.ReferenceRows,
		run.ActualRows,
		run.MissingRows,
		run.ExtraRows,
		run.Warnings,
		string(run.Outcome),
		run.Digest,
		run.Verdict,
	)
	if err != nil {
		return 0, fmt.Errorf("write run: %w", err)
	}

	seq, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("write run: %w", err)
	}
	return seq, nil
}

const runColumns = `seq, id, command, input_path, output_path, data_length, table0_rows, table1_rows,
	reference_rows, actual_rows, missing_rows, extra_rows, warnings, outcome, digest, verdict`

// ListRuns returns the most recent runs first. limit <= 0 returns all runs.
func (s *Store) ListRuns(ctx context.Context, limit int) ([]Run, error) {
	query := `SELECT ` + runColumns + ` FROM runs ORDER BY seq DESC`
	args := []any{}
	if limit > 0 {
		query += ` LIMIT ?`
		args = append(args, limit)
	}
	return s.queryRuns(ctx, query, args...)
}

// RunsByDigest returns runs that reached the given verdict, oldest first.
func (s *Store) RunsByDigest(ctx context.Context, digest string) ([]Run, error) {
	return s.queryRuns(ctx, `SELECT `+runColumns+` FROM runs WHERE digest = ? ORDER BY seq ASC`, digest)
}

// GetRun returns the run with the given ID, or ErrRunNotFound.
func (s *Store) GetRun(ctx context.Context, id string) (Run, error) {
	row := s.db.QueryRowContext(ctx, `SELECT `+runColumns+` FROM runs WHERE id = ?`, id)
	run, err := scanRun(row)
	if errors.Is(err, sql.ErrNoRows) {
		return Run{}, fmt.Errorf("%w: %s", ErrRunNotFound, id)
	}
	if err != nil {
		return Run{}, fmt.Errorf("get run: %w", err)
	}
	return run, nil
}

func (s *Store) queryRuns(ctx context.Context, query string, args ...any) ([]Run, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query runs: %w", err)
	}
	defer rows.Close()

	runs := []Run{}
	for rows.Next() {
		run, err := scanRun(rows)
		if err != nil {
			return nil, fmt.Errorf("scan run: %w", err)
		}
		runs = append(runs, run)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate runs: %w", err)
	}
	return runs, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanRun(sc scanner) (Run, error) {
	var run Run
	var outcome string
	err := sc.Scan(
		&run.Seq,
		&run.ID,
		&run.Command,
		&run.InputPath,
		&run.OutputPath,
		&run.DataLength,
		&run.Table0Rows,
		&run.Table1Rows,
		&run.ReferenceRows,
		&run.ActualRows,
		&run.MissingRows,
		&run.ExtraRows,
		&run.Warnings,
		&outcome,
		&run.Digest,
		&run.Verdict,
	)
	if err != nil {
		return Run{}, err
	}
	run.Outcome = verify.Outcome(outcome)
	return run, nil
}
