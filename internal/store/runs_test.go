package store

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/joincheck/internal/join"
	"github.com/roach88/joincheck/internal/verify"
)

func testReport(input string, actual []join.Tuple) *verify.Report {
	reference := []join.Tuple{{KeyR: 1, KeyS: 1, PayR: "p", PayS: "r"}}
	return &verify.Report{
		InputPath:  input,
		OutputPath: "build/join.txt",
		DataLength: 8,
		Table0Rows: 2,
		Table1Rows: 2,
		Verdict:    verify.Compare(reference, actual),
	}
}

func TestNewRun(t *testing.T) {
	rep := testReport("in.txt", []join.Tuple{
		{KeyR: 1, KeyS: 1, PayR: "p", PayS: "r"},
		{KeyR: 9, KeyS: 9, PayR: "z", PayS: "z"},
	})

	run, err := NewRun("run-1", "joincheck verify in.txt", rep)
	require.NoError(t, err)

	assert.Equal(t, "run-1", run.ID)
	assert.Equal(t, verify.OutcomeSizeMismatch, run.Outcome)
	assert.Equal(t, 1, run.ReferenceRows)
	assert.Equal(t, 2, run.ActualRows)
	assert.Equal(t, 0, run.MissingRows)
	assert.Equal(t, 1, run.ExtraRows)
	assert.Len(t, run.Digest, 64)
	assert.True(t, strings.HasPrefix(run.Verdict, `{"actual_rows":2,`), run.Verdict)

	digest, err := rep.Digest()
	require.NoError(t, err)
	assert.Equal(t, digest, run.Digest)
}

func TestWriteAndListRuns(t *testing.T) {
	s := createTestStore(t)
	ctx := context.Background()
	ids := NewFixedGenerator("run-a", "run-b", "run-c")

	for i, input := range []string{"a.txt", "b.txt", "c.txt"} {
		run, err := NewRun(ids.Generate(), "joincheck verify "+input, testReport(input, nil))
		require.NoError(t, err)
		seq, err := s.WriteRun(ctx, run)
		require.NoError(t, err)
		assert.Equal(t, int64(i+1), seq)
	}

	runs, err := s.ListRuns(ctx, 0)
	require.NoError(t, err)
	require.Len(t, runs, 3)
	assert.Equal(t, "run-c", runs[0].ID, "newest first")
	assert.Equal(t, "run-a", runs[2].ID)
	assert.Equal(t, verify.OutcomeSizeMismatch, runs[0].Outcome)

	limited, err := s.ListRuns(ctx, 2)
	require.NoError(t, err)
	assert.Len(t, limited, 2)
}

func TestListRuns_Empty(t *testing.T) {
	s := createTestStore(t)

	runs, err := s.ListRuns(context.Background(), 10)
	require.NoError(t, err)
	assert.NotNil(t, runs)
	assert.Empty(t, runs)
}

func TestGetRun(t *testing.T) {
	s := createTestStore(t)
	ctx := context.Background()

	run, err := NewRun("run-x", "cmd", testReport("in.txt", []join.Tuple{{KeyR: 1, KeyS: 1, PayR: "p", PayS: "r"}}))
	require.NoError(t, err)
	_, err = s.WriteRun(ctx, run)
	require.NoError(t, err)

	got, err := s.GetRun(ctx, "run-x")
	require.NoError(t, err)
	run.Seq = got.Seq
	assert.Equal(t, run, got)
	assert.Equal(t, verify.OutcomePass, got.Outcome)

	_, err = s.GetRun(ctx, "missing")
	assert.True(t, errors.Is(err, ErrRunNotFound))
}

func TestWriteRun_DuplicateID(t *testing.T) {
	s := createTestStore(t)
	ctx := context.Background()

	run, err := NewRun("dup", "cmd", testReport("in.txt", nil))
	require.NoError(t, err)
	_, err = s.WriteRun(ctx, run)
	require.NoError(t, err)

	_, err = s.WriteRun(ctx, run)
	assert.Error(t, err)
}

func TestRunsByDigest(t *testing.T) {
	s := createTestStore(t)
	ctx := context.Background()

	same1, err := NewRun("r1", "cmd", testReport("one/in.txt", nil))
	require.NoError(t, err)
	same2, err := NewRun("r2", "cmd", testReport("two/in.txt", nil))
	require.NoError(t, err)
	other, err := NewRun("r3", "cmd", testReport("in.txt", []join.Tuple{{KeyR: 1, KeyS: 1, PayR: "p", PayS: "r"}}))
	require.NoError(t, err)

	for _, run := range []Run{same1, same2, other} {
		_, err := s.WriteRun(ctx, run)
		require.NoError(t, err)
	}

	runs, err := s.RunsByDigest(ctx, same1.Digest)
	require.NoError(t, err)
	require.Len(t, runs, 2)
	assert.Equal(t, "r1", runs[0].ID)
	assert.Equal(t, "r2", runs[1].ID)
}

func TestUUIDv7Generator(t *testing.T) {
	gen := UUIDv7Generator{}
	a := gen.Generate()
	b := gen.Generate()

	assert.Len(t, a, 36)
	assert.NotEqual(t, a, b)
	assert.Equal(t, byte('7'), a[14], "version nibble")
}

func TestFixedGenerator_Exhausted(t *testing.T) {
	gen := NewFixedGenerator("only")
	assert.Equal(t, "only", gen.Generate())
	assert.Panics(t, func() { gen.Generate() })
}
