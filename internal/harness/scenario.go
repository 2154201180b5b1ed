package harness

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/roach88/ghost/proof"
)

// Scenario defines a certification scenario.
type Scenario struct {
	// Name uniquely identifies this scenario. It also names the golden file.
	Name string `yaml:"name"`

	// Description explains what this scenario validates.
	Description string `yaml:"description"`

	// RunID is an optional fixed audit run ID for deterministic tests.
	// If empty, defaults to "test-run-default".
	RunID string `yaml:"run_id,omitempty"`

	// Cases are certified in order.
	Cases []Case `yaml:"cases"`
}

// Case is one value to brand and certify.
type Case struct {
	// Name identifies the case within the scenario.
	Name string `yaml:"name"`

	// Value is the raw value. YAML integers decode as int, decimals as
	// float64, strings as string and sequences as []any.
	Value any `yaml:"value"`

	// Property is a catalog property name (see Properties).
	Property string `yaml:"property,omitempty"`

	// Constraint is a CUE expression, used instead of Property.
	Constraint string `yaml:"constraint,omitempty"`

	// Assume mints evidence without running the check.
	Assume bool `yaml:"assume,omitempty"`

	// Expect is the expected audit outcome.
	Expect proof.Outcome `yaml:"expect"`

	// Error, when set, must be a substring of the certification error.
	Error string `yaml:"error,omitempty"`
}

// LoadScenario reads and parses a scenario YAML file.
// Returns an error if the file doesn't exist, is malformed,
// contains unknown fields (typos), or is missing required fields.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario file: %w", err)
	}
	return ParseScenario(data)
}

// ParseScenario parses scenario YAML.
func ParseScenario(data []byte) (*Scenario, error) {
	// Strict field validation catches typos like "case:" vs "cases:"
	var scenario Scenario
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&scenario); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := validateScenario(&scenario); err != nil {
		return nil, fmt.Errorf("invalid scenario: %w", err)
	}

	return &scenario, nil
}

// validateScenario checks that required fields are present and valid.
func validateScenario(s *Scenario) error {
	if s.Name == "" {
		return fmt.Errorf("name is required")
	}

	if s.Description == "" {
		return fmt.Errorf("description is required")
	}

	if len(s.Cases) == 0 {
		return fmt.Errorf("cases list is required and must be non-empty")
	}

	seen := make(map[string]bool, len(s.Cases))
	for i, c := range s.Cases {
		if err := validateCase(i, &c); err != nil {
			return err
		}
		if seen[c.Name] {
			return fmt.Errorf("cases[%d]: duplicate case name %q", i, c.Name)
		}
		seen[c.Name] = true
	}

	return nil
}

// validateCase validates a single case.
func validateCase(index int, c *Case) error {
	if c.Name == "" {
		return fmt.Errorf("cases[%d]: name is required", index)
	}
	if c.Value == nil {
		return fmt.Errorf("cases[%d]: value is required", index)
	}

	switch {
	case c.Property == "" && c.Constraint == "":
		return fmt.Errorf("cases[%d]: one of property or constraint is required", index)
	case c.Property != "" && c.Constraint != "":
		return fmt.Errorf("cases[%d]: property and constraint are mutually exclusive", index)
	case c.Property != "":
		if _, ok := catalog[c.Property]; !ok {
			return fmt.Errorf("cases[%d]: unknown property %q", index, c.Property)
		}
	}

	switch c.Expect {
	case proof.OutcomeCertified, proof.OutcomeRejected, proof.OutcomeAssumed:
	case "":
		return fmt.Errorf("cases[%d]: expect is required", index)
	default:
		return fmt.Errorf("cases[%d]: unknown expect outcome %q", index, c.Expect)
	}

	if c.Assume && c.Expect == proof.OutcomeRejected {
		return fmt.Errorf("cases[%d]: an assumed case cannot expect %s", index, proof.OutcomeRejected)
	}

	return nil
}
