package harness

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Suite is a named list of verification cases.
type Suite struct {
	// Name uniquely identifies this suite.
	Name string `yaml:"name"`

	// Description explains what the suite covers.
	Description string `yaml:"description"`

	// DataLength overrides the configured payload bound for every case.
	// Zero means use the caller's default.
	DataLength int `yaml:"data_length,omitempty"`

	// Cases run in order.
	Cases []Case `yaml:"cases"`
}

// Case is a single verification with its expected outcome.
type Case struct {
	Name string `yaml:"name"`

	// Input is the table file.
	Input string `yaml:"input"`

	// Output is the engine output.
	Output string `yaml:"output"`

	// Expect is the expected outcome; see the Expect* constants.
	Expect string `yaml:"expect"`

	// Missing, Extra and Warnings pin diagnostic counts when set.
	Missing  *int `yaml:"missing,omitempty"`
	Extra    *int `yaml:"extra,omitempty"`
	Warnings *int `yaml:"warnings,omitempty"`
}

// Expected outcomes. The first three match verify.Outcome values.
const (
	ExpectPass            = "pass"
	ExpectSizeMismatch    = "size_mismatch"
	ExpectContentMismatch = "content_mismatch"
	ExpectError           = "error"
)

// LoadSuite reads and parses a suite YAML file.
// Case paths are resolved relative to the suite file's directory.
// Unknown fields (typos) and missing required fields are errors.
func LoadSuite(path string) (*Suite, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read suite file: %w", err)
	}

	var suite Suite
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&suite); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	base := filepath.Dir(path)
	for i := range suite.Cases {
		suite.Cases[i].Input = resolve(base, suite.Cases[i].Input)
		suite.Cases[i].Output = resolve(base, suite.Cases[i].Output)
	}

	if err := validateSuite(&suite); err != nil {
		return nil, fmt.Errorf("invalid suite: %w", err)
	}

	return &suite, nil
}

func resolve(base, p string) string {
	if p == "" || filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(base, p)
}

// validateSuite checks that required fields are present and valid.
func validateSuite(s *Suite) error {
	if s.Name == "" {
		return fmt.Errorf("name is required")
	}

	if s.DataLength < 0 {
		return fmt.Errorf("data_length must not be negative")
	}

	if len(s.Cases) == 0 {
		return fmt.Errorf("cases list is required and must be non-empty")
	}

	seen := make(map[string]bool, len(s.Cases))
	for i, c := range s.Cases {
		if c.Name == "" {
			return fmt.Errorf("cases[%d]: name is required", i)
		}
		if seen[c.Name] {
			return fmt.Errorf("cases[%d]: duplicate case name %q", i, c.Name)
		}
		seen[c.Name] = true

		if c.Input == "" {
			return fmt.Errorf("cases[%d]: input is required", i)
		}
		if c.Output == "" {
			return fmt.Errorf("cases[%d]: output is required", i)
		}

		switch c.Expect {
		case ExpectPass, ExpectSizeMismatch, ExpectContentMismatch, ExpectError:
		case "":
			return fmt.Errorf("cases[%d]: expect is required", i)
		default:
			return fmt.Errorf("cases[%d]: unknown expect %q", i, c.Expect)
		}
	}

	return nil
}
