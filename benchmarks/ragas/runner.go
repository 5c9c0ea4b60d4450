// ABOUTME: Test runner for retrieval benchmarks - executes scenarios and collects results
// ABOUTME: Seeds snippets through the real pipeline, queries, and scores the retrieval

package ragas

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/snipd/snipd/internal/config"
	"github.com/snipd/snipd/internal/core"
	"github.com/snipd/snipd/internal/llm"
	"github.com/snipd/snipd/internal/models"
	"github.com/snipd/snipd/internal/rag"
	"github.com/snipd/snipd/internal/storage/sqlite"
)

// BenchmarkRunner executes retrieval benchmark tests
type BenchmarkRunner struct {
	cfg       *config.Config
	llmClient *llm.OpenAIClient
	metrics   *MetricsCalculator
	verbose   bool
}

// NewBenchmarkRunner creates a new benchmark runner. It needs a real
// OpenAI key since the pipeline embeds every seeded snippet and query.
func NewBenchmarkRunner(verbose bool) (*BenchmarkRunner, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("loading configuration: %w", err)
	}
	if cfg.OpenAIKey == "" {
		return nil, fmt.Errorf("OPENAI_API_KEY is required for benchmarks")
	}

	llmClient, err := llm.NewOpenAIClientWithConfig(llm.ConfigFromApp(cfg))
	if err != nil {
		return nil, fmt.Errorf("initializing LLM client: %w", err)
	}

	return &BenchmarkRunner{
		cfg:       cfg,
		llmClient: llmClient,
		metrics:   NewMetricsCalculator(),
		verbose:   verbose,
	}, nil
}

// RunTest executes a single benchmark test against a fresh database
func (r *BenchmarkRunner) RunTest(scenario TestScenario) (TestResult, error) {
	if r.verbose {
		fmt.Printf("\n========================================\n")
		fmt.Printf("RUNNING: %s\n", scenario.Name)
		fmt.Printf("========================================\n")
		fmt.Printf("Description: %s\n\n", scenario.Description)
	}

	// Fresh storage per test for isolation
	tmpDir, err := os.MkdirTemp("", fmt.Sprintf("snipd_bench_%s_", scenario.ID))
	if err != nil {
		return TestResult{}, fmt.Errorf("creating temp dir: %w", err)
	}
	defer func() { _ = os.RemoveAll(tmpDir) }()

	store, err := sqlite.NewStorage(filepath.Join(tmpDir, "bench.db"), r.cfg.VectorDimension)
	if err != nil {
		return TestResult{}, fmt.Errorf("creating test storage: %w", err)
	}
	defer func() { _ = store.Close() }()

	chunker, err := core.NewChunker(r.cfg.ChunkSize)
	if err != nil {
		return TestResult{}, fmt.Errorf("creating chunker: %w", err)
	}
	orchestrator := core.NewOrchestrator(r.llmClient, store, chunker, r.cfg.DefaultProject)

	// Seed phase: ingest the scenario's snippets through the real pipeline
	if err := r.seedSnippets(orchestrator, scenario.ProjectID, scenario.Snippets); err != nil {
		return TestResult{}, fmt.Errorf("seed failed: %w", err)
	}

	// The isolation scenario also needs decoys in a sibling project
	if len(scenario.GroundTruth.ForbiddenIDs) > 0 {
		decoys := make([]SeedSnippet, 0, len(scenario.GroundTruth.ForbiddenIDs))
		for _, id := range scenario.GroundTruth.ForbiddenIDs {
			decoys = append(decoys, SeedSnippet{Name: id, Code: scenario.Snippets[0].Code})
		}
		if err := r.seedSnippets(orchestrator, scenario.ProjectID+"-other", decoys); err != nil {
			return TestResult{}, fmt.Errorf("decoy seed failed: %w", err)
		}
	}

	// Query phase
	service := rag.NewService(r.llmClient, store, r.llmClient, r.cfg.DefaultProject, r.cfg.TopK)

	if r.verbose {
		fmt.Printf("[Query] %s\n", scenario.Query)
	}

	results, err := service.Search(scenario.Query, scenario.ProjectID, r.cfg.TopK)
	if err != nil {
		return TestResult{}, fmt.Errorf("search failed: %w", err)
	}

	retrievedIDs := make([]string, 0, len(results))
	for _, res := range results {
		retrievedIDs = append(retrievedIDs, res.ID)
		if r.verbose {
			fmt.Printf("  [%.3f] %s\n", res.Score, res.ID)
		}
	}

	result := r.metrics.EvaluateTest(scenario, retrievedIDs)

	if r.verbose {
		fmt.Printf("\n========================================\n")
		fmt.Printf("RESULTS: %s\n", scenario.Name)
		fmt.Printf("========================================\n")
		fmt.Printf("Recall: %.2f\n", result.RecallScore)
		fmt.Printf("Precision: %.2f\n", result.PrecisionScore)
		fmt.Printf("Overall Score: %.2f\n", result.OverallScore)
		fmt.Printf("Status: %s\n", result.Status)
		fmt.Printf("========================================\n\n")
	}

	return result, nil
}

// seedSnippets ingests a snippet set into the given project
func (r *BenchmarkRunner) seedSnippets(orchestrator *core.Orchestrator, projectID string, snippets []SeedSnippet) error {
	requests := make([]models.SnippetRequest, 0, len(snippets))
	for _, s := range snippets {
		requests = append(requests, models.SnippetRequest{
			Name:     s.Name,
			Code:     s.Code,
			Language: s.Language,
		})
	}

	result, err := orchestrator.Run(&models.IngestRequest{
		ProjectID: projectID,
		Snippets:  requests,
	})
	if err != nil {
		return err
	}
	for _, res := range result.Results {
		if !res.OK {
			return fmt.Errorf("snippet %s failed to ingest: %s", res.ID, res.Error)
		}
		if r.verbose {
			fmt.Printf("  [Seed] %s -> %s\n", res.ID, projectID)
		}
	}
	return nil
}

// RunAllTests executes all benchmark tests
func (r *BenchmarkRunner) RunAllTests() ([]TestResult, error) {
	scenarios := GetAllTests()
	results := make([]TestResult, 0, len(scenarios))

	for _, scenario := range scenarios {
		result, err := r.RunTest(scenario)
		if err != nil {
			return nil, fmt.Errorf("test %s failed: %w", scenario.ID, err)
		}
		results = append(results, result)
	}

	return results, nil
}

// ExportResults exports test results to JSON
func (r *BenchmarkRunner) ExportResults(results []TestResult, outputPath string) error {
	summary := map[string]interface{}{
		"timestamp":   time.Now().Format(time.RFC3339),
		"total_tests": len(results),
		"passed":      0,
		"failed":      0,
		"results":     results,
	}

	for _, result := range results {
		if result.Status == "PASS" {
			summary["passed"] = summary["passed"].(int) + 1
		} else {
			summary["failed"] = summary["failed"].(int) + 1
		}
	}

	jsonData, err := json.MarshalIndent(summary, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal results: %w", err)
	}

	if err := os.WriteFile(outputPath, jsonData, 0644); err != nil {
		return fmt.Errorf("failed to write results file: %w", err)
	}

	fmt.Printf("✓ Results exported to: %s\n", outputPath)
	return nil
}
