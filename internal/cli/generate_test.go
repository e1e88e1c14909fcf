package cli

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/joincheck/internal/tablefile"
)

func TestGenerate_WritesTables(t *testing.T) {
	dir := t.TempDir()
	output := filepath.Join(dir, "tables.txt")

	stdout, _, err := runCLI(t, "generate", "--power", "3", "--max", "5", "--seed", "7", "-o", output)
	require.NoError(t, err)
	assert.Contains(t, stdout, "4 records per table, seed 7")

	tables, err := tablefile.ReadFile(output, 8)
	require.NoError(t, err)
	require.Len(t, tables.T0, 4)
	require.Len(t, tables.T1, 4)

	for _, table := range []tablefile.Table{tables.T0, tables.T1} {
		for i, rec := range table {
			assert.Equal(t, int64(i+1), rec.Key)
			v, err := strconv.Atoi(rec.Payload)
			require.NoError(t, err)
			assert.GreaterOrEqual(t, v, 1)
			assert.LessOrEqual(t, v, 5)
		}
	}
}

func TestGenerate_SeedIsReproducible(t *testing.T) {
	dir := t.TempDir()
	a := filepath.Join(dir, "a.txt")
	b := filepath.Join(dir, "b.txt")

	_, _, err := runCLI(t, "generate", "--power", "5", "--seed", "42", "-o", a)
	require.NoError(t, err)
	_, _, err = runCLI(t, "generate", "--power", "5", "--seed", "42", "-o", b)
	require.NoError(t, err)

	da, err := os.ReadFile(a)
	require.NoError(t, err)
	db, err := os.ReadFile(b)
	require.NoError(t, err)
	assert.Equal(t, da, db)
}

func TestGenerate_RandomSeedReported(t *testing.T) {
	dir := t.TempDir()
	output := filepath.Join(dir, "tables.txt")

	stdout, _, err := runCLI(t, "--format", "json", "generate", "--power", "1", "-o", output)
	require.NoError(t, err)

	var resp struct {
		Data GenerateResult `json:"data"`
	}
	require.NoError(t, json.Unmarshal([]byte(stdout), &resp))
	assert.Equal(t, 1, resp.Data.Rows)

	// The reported seed regenerates the same file.
	again := filepath.Join(dir, "again.txt")
	_, _, err = runCLI(t, "generate", "--power", "1", "--seed", strconv.FormatUint(resp.Data.Seed, 10), "-o", again)
	require.NoError(t, err)

	d1, err := os.ReadFile(output)
	require.NoError(t, err)
	d2, err := os.ReadFile(again)
	require.NoError(t, err)
	assert.Equal(t, d1, d2)
}

func TestGenerate_InvalidOptions(t *testing.T) {
	dir := t.TempDir()
	output := filepath.Join(dir, "tables.txt")

	tests := []struct {
		name string
		args []string
	}{
		{"missing power", []string{"generate", "-o", output}},
		{"missing output", []string{"generate", "--power", "2"}},
		{"zero power", []string{"generate", "--power", "0", "-o", output}},
		{"huge power", []string{"generate", "--power", "40", "-o", output}},
		{"zero max", []string{"generate", "--power", "2", "--max", "0", "-o", output}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := runCLI(t, tt.args...)
			require.Error(t, err)
			assert.Equal(t, ExitCommandError, GetExitCode(err))
		})
	}
}
