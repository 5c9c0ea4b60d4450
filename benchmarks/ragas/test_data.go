// ABOUTME: Test scenario data structures for retrieval benchmarks
// ABOUTME: Defines snippet corpora, queries, and ground truth for each test

package ragas

// TestScenario represents a complete retrieval benchmark test
type TestScenario struct {
	ID          string
	Name        string
	Description string
	ProjectID   string
	Snippets    []SeedSnippet
	Query       string
	GroundTruth GroundTruth
}

// SeedSnippet is a snippet ingested before the query runs
type SeedSnippet struct {
	Name     string
	Code     string
	Language string
}

// GroundTruth defines expected outcomes for retrieval evaluation
type GroundTruth struct {
	// Snippet ids that must appear in the retrieved set
	ExpectedIDs []string

	// Snippet ids that must not appear (seeded into other projects)
	ForbiddenIDs []string

	// How many results to retrieve for evaluation
	TopK int
}

// TestResult represents the outcome of a benchmark test
type TestResult struct {
	TestID         string                 `json:"test_id"`
	TestName       string                 `json:"test_name"`
	RecallScore    float64                `json:"recall_score"`
	PrecisionScore float64                `json:"precision_score"`
	OverallScore   float64                `json:"overall_score"`
	Status         string                 `json:"status"` // "PASS" or "FAIL"
	Details        map[string]interface{} `json:"details,omitempty"`
	ErrorMessage   string                 `json:"error_message,omitempty"`
}

// GetTestRanking returns the basic ranking scenario: the snippet matching
// the query topic should be retrieved ahead of unrelated ones.
func GetTestRanking() TestScenario {
	return TestScenario{
		ID:          "ranking",
		Name:        "Topical ranking",
		Description: "A query about HTTP retries should surface the retry helper, not the JSON or math snippets.",
		ProjectID:   "bench-ranking",
		Snippets: []SeedSnippet{
			{
				Name:     "retry.go",
				Language: "go",
				Code: `// retryRequest retries an HTTP request with exponential backoff.
func retryRequest(client *http.Client, req *http.Request, attempts int) (*http.Response, error) {
	var lastErr error
	for i := 0; i < attempts; i++ {
		resp, err := client.Do(req)
		if err == nil && resp.StatusCode < 500 {
			return resp, nil
		}
		lastErr = err
		time.Sleep(time.Duration(1<<i) * time.Second)
	}
	return nil, lastErr
}`,
			},
			{
				Name:     "parse.go",
				Language: "go",
				Code: `// parseConfig decodes a JSON configuration file.
func parseConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var cfg Config
	return &cfg, json.Unmarshal(data, &cfg)
}`,
			},
			{
				Name:     "mean.go",
				Language: "go",
				Code: `// mean returns the arithmetic mean of xs.
func mean(xs []float64) float64 {
	var sum float64
	for _, x := range xs {
		sum += x
	}
	return sum / float64(len(xs))
}`,
			},
		},
		Query: "how do we retry failed HTTP requests with backoff?",
		GroundTruth: GroundTruth{
			ExpectedIDs: []string{"retry.go"},
			TopK:        1,
		},
	}
}

// GetTestRecall returns the multi-snippet recall scenario: a broad query
// should retrieve every snippet about the topic.
func GetTestRecall() TestScenario {
	return TestScenario{
		ID:          "recall",
		Name:        "Multi-snippet recall",
		Description: "A query about database access should retrieve both the connection and the query helpers.",
		ProjectID:   "bench-recall",
		Snippets: []SeedSnippet{
			{
				Name:     "connect.go",
				Language: "go",
				Code: `// openDatabase opens a PostgreSQL connection pool.
func openDatabase(dsn string) (*sql.DB, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(10)
	return db, db.Ping()
}`,
			},
			{
				Name:     "query.go",
				Language: "go",
				Code: `// findUser looks up a user row by id.
func findUser(db *sql.DB, id int64) (*User, error) {
	row := db.QueryRow("SELECT id, name FROM users WHERE id = $1", id)
	var u User
	return &u, row.Scan(&u.ID, &u.Name)
}`,
			},
			{
				Name:     "colors.css",
				Language: "css",
				Code: `.banner { background: #1a1a2e; color: #e0e0ff; padding: 2rem; }`,
			},
		},
		Query: "how does the code talk to the SQL database?",
		GroundTruth: GroundTruth{
			ExpectedIDs: []string{"connect.go", "query.go"},
			TopK:        2,
		},
	}
}

// GetTestIsolation returns the project isolation scenario: snippets from
// another project must never be retrieved, even when they match the query
// better.
func GetTestIsolation() TestScenario {
	return TestScenario{
		ID:          "isolation",
		Name:        "Project isolation",
		Description: "Searching one project must not return snippets stored under another project.",
		ProjectID:   "bench-iso-a",
		Snippets: []SeedSnippet{
			{
				Name:     "logger.go",
				Language: "go",
				Code: `// logRequest writes an access log line for an HTTP request.
func logRequest(r *http.Request, status int, took time.Duration) {
	log.Printf("%s %s %d %s", r.Method, r.URL.Path, status, took)
}`,
			},
		},
		Query: "where do we log incoming HTTP requests?",
		GroundTruth: GroundTruth{
			ExpectedIDs:  []string{"logger.go"},
			ForbiddenIDs: []string{"other-logger.go"},
			TopK:         5,
		},
	}
}

// GetAllTests returns every benchmark scenario
func GetAllTests() []TestScenario {
	return []TestScenario{
		GetTestRanking(),
		GetTestRecall(),
		GetTestIsolation(),
	}
}
