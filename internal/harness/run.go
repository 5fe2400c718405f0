package harness

import (
	"fmt"

	"github.com/latchlang/lattice/internal/registry"
	"github.com/latchlang/lattice/internal/relations"
)

// TraceEvent records one executed step: the operation, its inputs, and
// what the tracker reported back. Seq is a logical sequence number.
type TraceEvent struct {
	Op       string   `json:"op"`
	Key      string   `json:"key,omitempty"`
	Value    string   `json:"value,omitempty"`
	Item     string   `json:"item,omitempty"`
	On       string   `json:"on,omitempty"`
	Parent   string   `json:"parent,omitempty"`
	Child    string   `json:"child,omitempty"`
	Observed []string `json:"observed,omitempty"`
	Cycle    *bool    `json:"cycle,omitempty"`
	Seq      int64    `json:"seq"`
}

// Result is the outcome of a scenario execution.
type Result struct {
	// Pass is true when every expectation in the scenario held.
	Pass bool `json:"pass"`

	// Trace contains one event per executed step, in order.
	Trace []TraceEvent `json:"trace"`

	// Errors contains expectation failures. Empty when Pass is true.
	Errors []string `json:"errors,omitempty"`
}

// NewResult creates a new passing result.
func NewResult() *Result {
	return &Result{
		Pass:  true,
		Trace: []TraceEvent{},
	}
}

// AddError records an expectation failure and marks the result failed.
func (r *Result) AddError(err string) {
	r.Errors = append(r.Errors, err)
	r.Pass = false
}

// Run executes a scenario against a fresh tracker and returns the
// trace. Expectation mismatches mark the result failed but do not stop
// execution; later steps still run so the full trace is available.
func Run(scenario *Scenario) (*Result, error) {
	if err := validateScenario(scenario); err != nil {
		return nil, fmt.Errorf("invalid scenario: %w", err)
	}

	tracker := relations.NewTracker[string]()
	clock := registry.NewClock()
	result := NewResult()

	for i, step := range scenario.Steps {
		event := TraceEvent{
			Op:     step.Op,
			Key:    step.Key,
			Value:  step.Value,
			Item:   step.Item,
			On:     step.On,
			Parent: step.Parent,
			Child:  step.Child,
			Seq:    clock.Next(),
		}

		switch step.Op {
		case OpRelate:
			tracker.Add(step.Key, step.Value)

		case OpUnrelate:
			tracker.Remove(step.Key, step.Value)

		case OpGet:
			event.Observed = tracker.Get(step.Key)
			if step.Expect != nil && !stringsEqual(event.Observed, step.Expect) {
				result.AddError(fmt.Sprintf(
					"steps[%d]: get %q observed %v, expected %v",
					i, step.Key, event.Observed, step.Expect))
			}

		case OpDepend:
			tracker.AddDependency(step.Item, step.On)

		case OpCycle:
			cyclic := tracker.HasCircularDependency(step.Item)
			event.Cycle = &cyclic
			if step.ExpectCycle != nil && cyclic != *step.ExpectCycle {
				result.AddError(fmt.Sprintf(
					"steps[%d]: cycle %q observed %t, expected %t",
					i, step.Item, cyclic, *step.ExpectCycle))
			}

		case OpScope:
			tracker.AddScope(step.Parent, step.Child)

		case OpChildren:
			event.Observed = tracker.Children(step.Parent)
			if step.Expect != nil && !stringsEqual(event.Observed, step.Expect) {
				result.AddError(fmt.Sprintf(
					"steps[%d]: children %q observed %v, expected %v",
					i, step.Parent, event.Observed, step.Expect))
			}
		}

		result.Trace = append(result.Trace, event)
	}

	return result, nil
}

// stringsEqual compares two slices element-wise, treating nil and empty
// as equal. Tracker reads return nil for unknown keys while scenario
// expectations spell "nothing" as an empty list.
func stringsEqual(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
