package harness

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Suite is a named list of filter cases.
type Suite struct {
	// Name uniquely identifies the suite. It also names the golden file.
	Name string `yaml:"name"`

	// Description explains what this suite validates.
	Description string `yaml:"description"`

	// Units is optional CUE source of unit definitions added to the
	// standard table.
	Units string `yaml:"units,omitempty"`

	// Epsilon overrides the comparer epsilon when non-zero.
	Epsilon float64 `yaml:"epsilon,omitempty"`

	// Cases run in order.
	Cases []Case `yaml:"cases"`
}

// Case evaluates one filter against one value set.
type Case struct {
	// Name identifies the case within the suite.
	Name string `yaml:"name"`

	// Set is value-set text, e.g. "a=1;b=2:Meter".
	Set string `yaml:"set"`

	// Filter is filter text, e.g. "a=1&b>a".
	Filter string `yaml:"filter"`

	// Expect is the expected IsValid result.
	Expect *bool `yaml:"expect,omitempty"`

	// ExpectError is a substring of the expected filter parse error.
	ExpectError string `yaml:"expect_error,omitempty"`

	// Clauses optionally lists the expected result of each clause.
	Clauses []bool `yaml:"clauses,omitempty"`

	// Describe optionally holds the expected Describe output.
	Describe string `yaml:"describe,omitempty"`
}

// LoadSuite reads and parses a suite YAML file.
// Returns an error if the file doesn't exist, is malformed,
// contains unknown fields (typos), or is missing required fields.
func LoadSuite(path string) (*Suite, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read suite file: %w", err)
	}
	return ParseSuite(data)
}

// ParseSuite parses suite YAML.
func ParseSuite(data []byte) (*Suite, error) {
	// Strict field validation catches typos like "expected:" vs "expect:"
	var suite Suite
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&suite); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := validateSuite(&suite); err != nil {
		return nil, fmt.Errorf("invalid suite: %w", err)
	}
	return &suite, nil
}

// validateSuite checks that required fields are present and valid.
func validateSuite(s *Suite) error {
	if s.Name == "" {
		return fmt.Errorf("name is required")
	}

	if s.Description == "" {
		return fmt.Errorf("description is required")
	}

	if s.Epsilon < 0 {
		return fmt.Errorf("epsilon must be non-negative")
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
			return fmt.Errorf("cases[%d]: duplicate name %q", i, c.Name)
		}
		seen[c.Name] = true

		switch {
		case c.Expect == nil && c.ExpectError == "":
			return fmt.Errorf("cases[%d]: one of expect or expect_error is required", i)
		case c.Expect != nil && c.ExpectError != "":
			return fmt.Errorf("cases[%d]: expect and expect_error are mutually exclusive", i)
		case c.ExpectError != "" && (len(c.Clauses) > 0 || c.Describe != ""):
			return fmt.Errorf("cases[%d]: clauses and describe need a filter that parses", i)
		}
	}

	return nil
}
