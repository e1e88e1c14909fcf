package verify

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/joincheck/internal/join"
	"github.com/roach88/joincheck/internal/tablefile"
)

const e2eInput = "2 2\n\n1 p\n2 q\n\n1 r\n3 s\n"

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestRun_EndToEndPass(t *testing.T) {
	dir := t.TempDir()
	input := writeFile(t, dir, "input.txt", e2eInput)
	output := writeFile(t, dir, "join.txt", "1 p 1 r\n")

	rep, err := Run(Options{InputPath: input, OutputPath: output, DataLength: 8})
	require.NoError(t, err)

	assert.Equal(t, 2, rep.Table0Rows)
	assert.Equal(t, 2, rep.Table1Rows)
	assert.True(t, rep.Verdict.Pass())
	assert.Equal(t, 1, rep.Verdict.ReferenceRows)
	assert.Empty(t, rep.Warnings)
}

func TestRun_EndToEndSpuriousRow(t *testing.T) {
	dir := t.TempDir()
	input := writeFile(t, dir, "input.txt", e2eInput)
	output := writeFile(t, dir, "join.txt", "1 p 1 r\n9 z 9 z\n")

	rep, err := Run(Options{InputPath: input, OutputPath: output, DataLength: 8})
	require.NoError(t, err)

	assert.False(t, rep.Verdict.Pass())
	assert.Equal(t, OutcomeSizeMismatch, rep.Verdict.Outcome)
	assert.Empty(t, rep.Verdict.Missing)
	assert.Equal(t, []join.Tuple{{KeyR: 9, KeyS: 9, PayR: "z", PayS: "z"}}, rep.Verdict.Extra)
}

func TestRun_MalformedResultLineTolerated(t *testing.T) {
	dir := t.TempDir()
	input := writeFile(t, dir, "input.txt", "2 2\n\n1 p\n2 q\n\n1 r\n2 s\n")
	output := writeFile(t, dir, "join.txt", "1 p 1 r\n7 z\n2 q 2 s\n")

	rep, err := Run(Options{InputPath: input, OutputPath: output, DataLength: 8})
	require.NoError(t, err)

	assert.True(t, rep.Verdict.Pass(), "verdict uses the well-formed rows only")
	require.Len(t, rep.Warnings, 1)
	assert.Equal(t, 2, rep.Warnings[0].Line)
}

func TestRun_TruncationAppliesToReference(t *testing.T) {
	dir := t.TempDir()
	input := writeFile(t, dir, "input.txt", "1 1\n\n5 longpayload\n\n5 otherpayload\n")
	output := writeFile(t, dir, "join.txt", "5 longpay 5 otherpa\n")

	rep, err := Run(Options{InputPath: input, OutputPath: output, DataLength: 8})
	require.NoError(t, err)
	assert.True(t, rep.Verdict.Pass())
}

func TestRun_InputErrorsAreFatal(t *testing.T) {
	dir := t.TempDir()
	output := writeFile(t, dir, "join.txt", "")

	tests := []struct {
		name  string
		input string
		check func(error) bool
	}{
		{"header", "\n\n", tablefile.IsHeaderError},
		{"record", "1 0\nnope x\n", tablefile.IsRecordParseError},
		{"truncated", "2 2\n1 a\n", tablefile.IsTruncatedInputError},
		{"overflowing sizes", "9223372036854775807 1\n\n5 a\n", tablefile.IsHeaderError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := writeFile(t, dir, tt.name+".txt", tt.input)
			_, err := Run(Options{InputPath: input, OutputPath: output, DataLength: 8})
			require.Error(t, err)
			assert.True(t, tt.check(err), "unexpected error: %v", err)
		})
	}
}

func TestRun_OverflowingHeaderDoesNotPassEmptyOutput(t *testing.T) {
	dir := t.TempDir()
	input := writeFile(t, dir, "input.txt", "9223372036854775807 1\n\n5 a\n")
	output := writeFile(t, dir, "join.txt", "")

	rep, err := Run(Options{InputPath: input, OutputPath: output, DataLength: 8})
	require.Error(t, err)
	assert.Nil(t, rep)
	assert.True(t, tablefile.IsHeaderError(err))
}

func TestRun_MissingJoinOutput(t *testing.T) {
	dir := t.TempDir()
	input := writeFile(t, dir, "input.txt", e2eInput)

	_, err := Run(Options{InputPath: input, OutputPath: filepath.Join(dir, "missing.txt"), DataLength: 8})
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestRun_InvalidDataLength(t *testing.T) {
	_, err := Run(Options{InputPath: "x", OutputPath: "y", DataLength: 0})
	assert.Error(t, err)
}
