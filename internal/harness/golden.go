package harness

import (
	"encoding/json"
	"testing"

	"github.com/sebdah/goldie/v2"
)

// TraceSnapshot is the golden-file shape: scenario identity plus the
// full trace. Field order is fixed by the struct so serialization is
// deterministic.
type TraceSnapshot struct {
	ScenarioName string       `json:"scenario_name"`
	Pass         bool         `json:"pass"`
	Trace        []TraceEvent `json:"trace"`
	Errors       []string     `json:"errors,omitempty"`
}

// RunWithGolden executes a scenario and compares its trace against
// testdata/golden/{scenario.Name}.golden.
//
// To regenerate golden files, run:
//
//	go test ./internal/harness -update
//
// Returns an error only when the scenario itself cannot run; trace
// mismatches fail t via goldie.
func RunWithGolden(t *testing.T, scenario *Scenario) error {
	t.Helper()

	result, err := Run(scenario)
	if err != nil {
		return err
	}

	return AssertGolden(t, scenario.Name, result)
}

// AssertGolden compares an already-obtained result against the golden
// file named scenarioName.
func AssertGolden(t *testing.T, scenarioName string, result *Result) error {
	t.Helper()

	snapshot := TraceSnapshot{
		ScenarioName: scenarioName,
		Pass:         result.Pass,
		Trace:        result.Trace,
		Errors:       result.Errors,
	}

	traceJSON, err := json.MarshalIndent(&snapshot, "", "  ")
	if err != nil {
		return err
	}

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, scenarioName, traceJSON)

	return nil
}
