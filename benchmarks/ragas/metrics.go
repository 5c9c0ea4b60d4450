// ABOUTME: Retrieval metrics implementation for recall and precision
// ABOUTME: Deterministic evaluation of retrieved snippet ids against ground truth

package ragas

import (
	"fmt"
)

// MetricsCalculator computes retrieval scores for benchmark tests
type MetricsCalculator struct{}

// NewMetricsCalculator creates a new metrics calculator
func NewMetricsCalculator() *MetricsCalculator {
	return &MetricsCalculator{}
}

// CalculateRecall computes recall (0.0-1.0): the proportion of expected
// snippet ids present anywhere in the retrieved set.
func (m *MetricsCalculator) CalculateRecall(retrievedIDs, expectedIDs []string) (float64, string) {
	if len(expectedIDs) == 0 {
		return 1.0, "No retrieval required"
	}

	retrieved := make(map[string]bool, len(retrievedIDs))
	for _, id := range retrievedIDs {
		retrieved[id] = true
	}

	foundCount := 0
	missingIDs := []string{}
	for _, expected := range expectedIDs {
		if retrieved[expected] {
			foundCount++
		} else {
			missingIDs = append(missingIDs, expected)
		}
	}

	recall := float64(foundCount) / float64(len(expectedIDs))
	if recall == 1.0 {
		return 1.0, "Perfect recall - all expected snippets retrieved"
	}
	return recall, fmt.Sprintf("Partial recall (%.2f) - missing snippets: %v", recall, missingIDs)
}

// CalculatePrecisionAtK computes precision within the top k results: the
// proportion of the top-k retrieved ids that belong to the expected set.
// Forbidden ids anywhere in the retrieved set force the score to zero.
func (m *MetricsCalculator) CalculatePrecisionAtK(retrievedIDs, expectedIDs, forbiddenIDs []string, k int) (float64, string) {
	for _, id := range retrievedIDs {
		for _, forbidden := range forbiddenIDs {
			if id == forbidden {
				return 0.0, fmt.Sprintf("Precision failure - forbidden snippet retrieved: %s", id)
			}
		}
	}

	if len(expectedIDs) == 0 {
		return 1.0, "No retrieval required"
	}
	if k < 1 || k > len(retrievedIDs) {
		k = len(retrievedIDs)
	}
	if k == 0 {
		return 0.0, "Precision failure - nothing retrieved"
	}

	expected := make(map[string]bool, len(expectedIDs))
	for _, id := range expectedIDs {
		expected[id] = true
	}

	relevant := 0
	for _, id := range retrievedIDs[:k] {
		if expected[id] {
			relevant++
		}
	}

	precision := float64(relevant) / float64(k)
	if precision == 1.0 {
		return 1.0, fmt.Sprintf("Perfect precision - top %d results all relevant", k)
	}
	return precision, fmt.Sprintf("Partial precision (%.2f) - %d of top %d relevant", precision, relevant, k)
}

// EvaluateTest runs full retrieval evaluation for a test
func (m *MetricsCalculator) EvaluateTest(scenario TestScenario, retrievedIDs []string) TestResult {
	recall, recallDetail := m.CalculateRecall(retrievedIDs, scenario.GroundTruth.ExpectedIDs)
	precision, precisionDetail := m.CalculatePrecisionAtK(
		retrievedIDs,
		scenario.GroundTruth.ExpectedIDs,
		scenario.GroundTruth.ForbiddenIDs,
		scenario.GroundTruth.TopK,
	)

	overall := (recall + precision) / 2.0

	status := "FAIL"
	if recall == 1.0 && precision == 1.0 {
		status = "PASS"
	}

	return TestResult{
		TestID:         scenario.ID,
		TestName:       scenario.Name,
		RecallScore:    recall,
		PrecisionScore: precision,
		OverallScore:   overall,
		Status:         status,
		Details: map[string]interface{}{
			"recall":    recallDetail,
			"precision": precisionDetail,
			"retrieved": retrievedIDs,
		},
	}
}
