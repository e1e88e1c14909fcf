// Package config loads joincheck settings.
//
// Settings come from three layers, later ones winning: built-in defaults, an
// optional YAML file, and command-line flags. The merged result is checked
// against an embedded CUE schema.
//
// data_length has no single source of truth: the engine under test and this
// checker must be configured with the same value. The checker uses 8 unless
// told otherwise; some producers of table files use 12.
package config

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	"gopkg.in/yaml.v3"
)

//go:embed schema.cue
var schemaSrc string

// Defaults.
const (
	DefaultDataLength  = 8
	DefaultJoinOutput  = "build/join.txt"
	DefaultMaxExamples = 10
)

// Config holds the verifier settings.
type Config struct {
	// DataLength is the payload buffer size; payloads keep at most
	// DataLength-1 characters.
	DataLength int `yaml:"data_length" json:"data_length"`

	// JoinOutput is the engine output path used when none is given.
	JoinOutput string `yaml:"join_output" json:"join_output"`

	// MaxExamples caps each diagnostic list in reports.
	MaxExamples int `yaml:"max_examples" json:"max_examples"`

	// HistoryDB, when set, records each verification run in SQLite.
	HistoryDB string `yaml:"history_db,omitempty" json:"history_db,omitempty"`
}

// Default returns the built-in settings.
func Default() *Config {
	return &Config{
		DataLength:  DefaultDataLength,
		JoinOutput:  DefaultJoinOutput,
		MaxExamples: DefaultMaxExamples,
	}
}

// Load reads a YAML config file on top of the defaults.
// Unknown keys are rejected. The result is validated.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := Default()
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks cfg against the config schema.
func (c *Config) Validate() error {
	ctx := cuecontext.New()
	schema := ctx.CompileString(schemaSrc, cue.Filename("schema.cue"))
	if err := schema.Err(); err != nil {
		return fmt.Errorf("compile config schema: %w", err)
	}

	value := schema.LookupPath(cue.ParsePath("#Config")).Unify(ctx.Encode(c))
	if err := value.Validate(cue.Concrete(true)); err != nil {
		return err
	}
	return nil
}
