package harness

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Scenario defines a conformance scenario: a named script of tracker
// steps executed against fresh state.
type Scenario struct {
	// Name uniquely identifies this scenario and names its golden file.
	Name string `yaml:"name"`

	// Description explains what this scenario validates.
	Description string `yaml:"description"`

	// Steps lists the operations to execute, in order.
	Steps []Step `yaml:"steps"`
}

// Step is a single tracker operation or observation.
//
// Which fields apply depends on Op:
//   - relate:   Key, Value
//   - unrelate: Key, Value
//   - get:      Key, optional Expect
//   - depend:   Item, On
//   - cycle:    Item, optional ExpectCycle
//   - scope:    Parent, Child
//   - children: Parent, optional Expect
type Step struct {
	Op     string `yaml:"op"`
	Key    string `yaml:"key,omitempty"`
	Value  string `yaml:"value,omitempty"`
	Item   string `yaml:"item,omitempty"`
	On     string `yaml:"on,omitempty"`
	Parent string `yaml:"parent,omitempty"`
	Child  string `yaml:"child,omitempty"`

	// Expect holds the values a get or children observation must return,
	// in order. Nil (field absent) means no expectation; an explicit
	// empty list asserts the observation returns nothing.
	Expect []string `yaml:"expect"`

	// ExpectCycle holds the outcome a cycle observation must report.
	// Nil means no expectation.
	ExpectCycle *bool `yaml:"expect_cycle,omitempty"`
}

// Step operation constants.
const (
	OpRelate   = "relate"
	OpUnrelate = "unrelate"
	OpGet      = "get"
	OpDepend   = "depend"
	OpCycle    = "cycle"
	OpScope    = "scope"
	OpChildren = "children"
)

// LoadScenario reads and parses a scenario YAML file. Unknown fields
// are rejected so typos fail loudly instead of silently dropping steps.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario file: %w", err)
	}

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

// validateScenario checks that required fields are present and that
// every step carries the fields its op needs.
func validateScenario(s *Scenario) error {
	if s.Name == "" {
		return fmt.Errorf("name is required")
	}

	if s.Description == "" {
		return fmt.Errorf("description is required")
	}

	if len(s.Steps) == 0 {
		return fmt.Errorf("steps list is required and must be non-empty")
	}

	for i, step := range s.Steps {
		if err := validateStep(i, &step); err != nil {
			return err
		}
	}

	return nil
}

// validateStep validates a single step based on its op.
func validateStep(index int, s *Step) error {
	if s.Op == "" {
		return fmt.Errorf("steps[%d]: op is required", index)
	}

	switch s.Op {
	case OpRelate:
		if s.Key == "" || s.Value == "" {
			return fmt.Errorf("steps[%d]: relate requires key and value", index)
		}
	case OpUnrelate:
		if s.Key == "" || s.Value == "" {
			return fmt.Errorf("steps[%d]: unrelate requires key and value", index)
		}
	case OpGet:
		if s.Key == "" {
			return fmt.Errorf("steps[%d]: get requires key", index)
		}
	case OpDepend:
		if s.Item == "" || s.On == "" {
			return fmt.Errorf("steps[%d]: depend requires item and on", index)
		}
	case OpCycle:
		if s.Item == "" {
			return fmt.Errorf("steps[%d]: cycle requires item", index)
		}
	case OpScope:
		if s.Parent == "" || s.Child == "" {
			return fmt.Errorf("steps[%d]: scope requires parent and child", index)
		}
	case OpChildren:
		if s.Parent == "" {
			return fmt.Errorf("steps[%d]: children requires parent", index)
		}
	default:
		return fmt.Errorf("steps[%d]: unknown op %q", index, s.Op)
	}

	return nil
}
