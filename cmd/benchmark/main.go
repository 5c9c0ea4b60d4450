// ABOUTME: Command-line benchmark runner for retrieval tests
// ABOUTME: Executes retrieval benchmarks and outputs JSON results

package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"

	"github.com/snipd/snipd/benchmarks/ragas"
)

func main() {
	testID := flag.String("test", "", "Run specific test (ranking, recall, isolation). If empty, runs all tests.")
	outputPath := flag.String("output", "benchmark_results.json", "Output path for JSON results")
	verbose := flag.Bool("verbose", false, "Enable verbose output")
	flag.Parse()

	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Printf("No .env file found (continuing anyway): %v", err)
	}

	fmt.Println("========================================")
	fmt.Println("snipd Retrieval Benchmarks")
	fmt.Println("========================================")
	fmt.Println()

	runner, err := ragas.NewBenchmarkRunner(*verbose)
	if err != nil {
		log.Fatalf("Failed to create benchmark runner: %v", err)
	}

	var results []ragas.TestResult

	if *testID == "" {
		fmt.Println("Running all retrieval benchmark tests...")
		fmt.Println()

		results, err = runner.RunAllTests()
		if err != nil {
			log.Fatalf("Benchmark failed: %v", err)
		}
	} else {
		var scenario ragas.TestScenario

		switch *testID {
		case "ranking":
			scenario = ragas.GetTestRanking()
		case "recall":
			scenario = ragas.GetTestRecall()
		case "isolation":
			scenario = ragas.GetTestIsolation()
		default:
			log.Fatalf("Unknown test ID: %s (valid options: ranking, recall, isolation)", *testID)
		}

		fmt.Printf("Running test: %s\n\n", scenario.Name)

		result, err := runner.RunTest(scenario)
		if err != nil {
			log.Fatalf("Test failed: %v", err)
		}

		results = []ragas.TestResult{result}
	}

	// Print summary
	fmt.Println("\n========================================")
	fmt.Println("BENCHMARK SUMMARY")
	fmt.Println("========================================")

	passed := 0
	failed := 0

	for _, result := range results {
		fmt.Printf("\n%s: %s\n", result.TestID, result.TestName)
		fmt.Printf("  Recall: %.2f\n", result.RecallScore)
		fmt.Printf("  Precision: %.2f\n", result.PrecisionScore)
		fmt.Printf("  Overall: %.2f\n", result.OverallScore)
		fmt.Printf("  Status: %s\n", result.Status)

		if result.Status == "PASS" {
			passed++
		} else {
			failed++
		}
	}

	fmt.Println("\n========================================")
	fmt.Printf("Total Tests: %d\n", len(results))
	fmt.Printf("Passed: %d\n", passed)
	fmt.Printf("Failed: %d\n", failed)
	fmt.Println("========================================")

	if err := runner.ExportResults(results, *outputPath); err != nil {
		log.Fatalf("Failed to export results: %v", err)
	}

	if failed > 0 {
		os.Exit(1)
	}
}
