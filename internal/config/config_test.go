package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "joincheck.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.Equal(t, 8, cfg.DataLength)
	assert.Equal(t, "build/join.txt", cfg.JoinOutput)
	assert.Equal(t, 10, cfg.MaxExamples)
	assert.Empty(t, cfg.HistoryDB)
	assert.NoError(t, cfg.Validate())
}

func TestLoad_OverridesDefaults(t *testing.T) {
	path := writeConfig(t, `
data_length: 12
history_db: runs.db
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 12, cfg.DataLength)
	assert.Equal(t, "runs.db", cfg.HistoryDB)
	assert.Equal(t, DefaultJoinOutput, cfg.JoinOutput, "unset keys keep defaults")
	assert.Equal(t, DefaultMaxExamples, cfg.MaxExamples)
}

func TestLoad_EmptyFile(t *testing.T) {
	cfg, err := Load(writeConfig(t, ""))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad_UnknownField(t *testing.T) {
	_, err := Load(writeConfig(t, "data_lenght: 12\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse config")
}

func TestLoad_SchemaViolations(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"zero data length", "data_length: 0\n"},
		{"negative max examples", "max_examples: -1\n"},
		{"empty join output", "join_output: \"\"\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.content))
			require.Error(t, err)
			assert.Contains(t, err.Error(), "invalid config")
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestValidate_DataLengthOne(t *testing.T) {
	cfg := Default()
	cfg.DataLength = 1
	assert.NoError(t, cfg.Validate())
}
