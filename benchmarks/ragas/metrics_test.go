// ABOUTME: Tests for retrieval metrics calculation
// ABOUTME: Verifies recall, precision, and scenario evaluation without any API calls

package ragas

import (
	"testing"
)

func TestCalculateRecall(t *testing.T) {
	m := NewMetricsCalculator()

	tests := []struct {
		name      string
		retrieved []string
		expected  []string
		want      float64
	}{
		{"all found", []string{"a", "b", "c"}, []string{"a", "b"}, 1.0},
		{"half found", []string{"a", "x"}, []string{"a", "b"}, 0.5},
		{"none found", []string{"x", "y"}, []string{"a", "b"}, 0.0},
		{"nothing expected", []string{"x"}, nil, 1.0},
		{"nothing retrieved", nil, []string{"a"}, 0.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, _ := m.CalculateRecall(tt.retrieved, tt.expected)
			if got != tt.want {
				t.Errorf("CalculateRecall() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCalculatePrecisionAtK(t *testing.T) {
	m := NewMetricsCalculator()

	tests := []struct {
		name      string
		retrieved []string
		expected  []string
		forbidden []string
		k         int
		want      float64
	}{
		{"perfect top-1", []string{"a", "x"}, []string{"a"}, nil, 1, 1.0},
		{"relevant below cutoff", []string{"x", "a"}, []string{"a"}, nil, 1, 0.0},
		{"perfect top-2", []string{"a", "b", "x"}, []string{"a", "b"}, nil, 2, 1.0},
		{"half relevant top-2", []string{"a", "x"}, []string{"a", "b"}, nil, 2, 0.5},
		{"forbidden anywhere fails", []string{"a", "bad"}, []string{"a"}, []string{"bad"}, 1, 0.0},
		{"k beyond retrieved clamps", []string{"a"}, []string{"a"}, nil, 10, 1.0},
		{"nothing retrieved", nil, []string{"a"}, nil, 1, 0.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, _ := m.CalculatePrecisionAtK(tt.retrieved, tt.expected, tt.forbidden, tt.k)
			if got != tt.want {
				t.Errorf("CalculatePrecisionAtK() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestEvaluateTest(t *testing.T) {
	m := NewMetricsCalculator()
	scenario := TestScenario{
		ID:   "t1",
		Name: "test",
		GroundTruth: GroundTruth{
			ExpectedIDs: []string{"a", "b"},
			TopK:        2,
		},
	}

	pass := m.EvaluateTest(scenario, []string{"a", "b", "c"})
	if pass.Status != "PASS" {
		t.Errorf("Status = %q, want PASS", pass.Status)
	}
	if pass.OverallScore != 1.0 {
		t.Errorf("OverallScore = %v, want 1.0", pass.OverallScore)
	}

	fail := m.EvaluateTest(scenario, []string{"c", "a"})
	if fail.Status != "FAIL" {
		t.Errorf("Status = %q, want FAIL for partial retrieval", fail.Status)
	}
	if fail.OverallScore >= 1.0 {
		t.Errorf("OverallScore = %v, want < 1.0", fail.OverallScore)
	}
}

func TestScenarios_WellFormed(t *testing.T) {
	for _, scenario := range GetAllTests() {
		t.Run(scenario.ID, func(t *testing.T) {
			if scenario.Query == "" {
				t.Error("scenario has empty query")
			}
			if len(scenario.Snippets) == 0 {
				t.Error("scenario has no snippets to seed")
			}
			if len(scenario.GroundTruth.ExpectedIDs) == 0 {
				t.Error("scenario has no expected ids")
			}

			names := make(map[string]bool)
			for _, s := range scenario.Snippets {
				names[s.Name] = true
			}
			for _, id := range scenario.GroundTruth.ExpectedIDs {
				if !names[id] {
					t.Errorf("expected id %q is not among seeded snippets", id)
				}
			}
		})
	}
}
