// ABOUTME: Snippet persistence: idempotent upsert, lookups, and similarity search
// ABOUTME: Vectors are stored as little-endian BLOBs and ranked by cosine similarity
package sqlite

import (
	"database/sql"
	"encoding/binary"
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/snipd/snipd/internal/models"
)

// ExpectedDimension is the default vector dimension for OpenAI embeddings
const ExpectedDimension = 1536

// DefaultTopK is the result count used when a caller does not specify k
const DefaultTopK = 30

// Storage persists snippet documents in SQLite
type Storage struct {
	db        *DB
	dimension int
}

// NewStorage opens snippet storage at the given path. A non-positive
// dimension falls back to ExpectedDimension.
func NewStorage(dbPath string, dimension int) (*Storage, error) {
	db, err := Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	return newStorage(db, dimension), nil
}

// NewStorageInMemory creates an in-memory snippet storage (for testing)
func NewStorageInMemory(dimension int) (*Storage, error) {
	db, err := OpenInMemory()
	if err != nil {
		return nil, fmt.Errorf("failed to open in-memory database: %w", err)
	}
	return newStorage(db, dimension), nil
}

func newStorage(db *DB, dimension int) *Storage {
	if dimension < 1 {
		dimension = ExpectedDimension
	}
	return &Storage{db: db, dimension: dimension}
}

// Close closes the underlying database connection
func (s *Storage) Close() error {
	return s.db.Close()
}

// Upsert creates or fully replaces the snippet identified by its id.
// Repeated calls with identical arguments produce the same stored state;
// concurrent upserts to the same id are last-write-wins. An empty
// embedding is stored as NULL, keeping the snippet out of similarity
// search while leaving it point-lookup-able.
func (s *Storage) Upsert(snippet *models.Snippet) (*models.Snippet, error) {
	if snippet.ID == "" {
		return nil, fmt.Errorf("snippet id is required")
	}
	if snippet.HasEmbedding() && len(snippet.Embedding) != s.dimension {
		return nil, fmt.Errorf("invalid embedding dimension: expected %d, got %d",
			s.dimension, len(snippet.Embedding))
	}

	typ := snippet.Type
	if typ == "" {
		typ = models.TypeCodeSnippet
	}

	var blob []byte
	if snippet.HasEmbedding() {
		blob = vectorToBlob(snippet.Embedding)
	}

	now := time.Now()
	_, err := s.db.Exec(`
		INSERT INTO snippets (id, name, project_id, code, type, language, description, embedding, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			name = excluded.name,
			project_id = excluded.project_id,
			code = excluded.code,
			type = excluded.type,
			language = excluded.language,
			description = excluded.description,
			embedding = excluded.embedding,
			updated_at = excluded.updated_at
	`, snippet.ID, snippet.Name, snippet.ProjectID, snippet.Code, typ,
		nullString(snippet.Language), nullString(snippet.Description), blob, now, now)
	if err != nil {
		return nil, fmt.Errorf("failed to upsert snippet %s: %w", snippet.ID, err)
	}

	return s.GetByID(snippet.ID)
}

// GetByID performs a point lookup across all projects.
// Returns (nil, nil) when no snippet has the given id.
func (s *Storage) GetByID(id string) (*models.Snippet, error) {
	var (
		snip        models.Snippet
		language    sql.NullString
		description sql.NullString
		blob        []byte
	)

	err := s.db.QueryRow(`
		SELECT id, name, project_id, code, type, language, description, embedding, created_at, updated_at
		FROM snippets
		WHERE id = ?
	`, id).Scan(&snip.ID, &snip.Name, &snip.ProjectID, &snip.Code, &snip.Type,
		&language, &description, &blob, &snip.CreatedAt, &snip.UpdatedAt)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get snippet %s: %w", id, err)
	}

	if language.Valid {
		snip.Language = language.String
	}
	if description.Valid {
		snip.Description = description.String
	}
	if len(blob) > 0 {
		snip.Embedding = blobToVector(blob)
	}

	return &snip, nil
}

// ListAll returns metadata-only rows for every snippet, excluding the
// embedding vector
func (s *Storage) ListAll() ([]models.SnippetInfo, error) {
	rows, err := s.db.Query(`
		SELECT id, name, project_id, code
		FROM snippets
		WHERE type = ?
		ORDER BY name ASC
	`, models.TypeCodeSnippet)
	if err != nil {
		return nil, fmt.Errorf("failed to list snippets: %w", err)
	}
	defer func() { _ = rows.Close() }()

	return scanInfos(rows)
}

// ListByProject returns metadata-only rows for one project's snippets
func (s *Storage) ListByProject(projectID string) ([]models.SnippetInfo, error) {
	rows, err := s.db.Query(`
		SELECT id, name, project_id, code
		FROM snippets
		WHERE type = ? AND project_id = ?
		ORDER BY name ASC
	`, models.TypeCodeSnippet, projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to list snippets for project %s: %w", projectID, err)
	}
	defer func() { _ = rows.Close() }()

	return scanInfos(rows)
}

// SearchSimilar returns the k snippets in the given project closest to the
// query vector, best-first. Rows without a usable embedding are excluded
// by the query itself; rows from other projects are never considered, so
// project isolation holds regardless of scoring.
func (s *Storage) SearchSimilar(queryVector []float64, projectID string, k int) ([]models.SearchResult, error) {
	if k < 1 {
		k = DefaultTopK
	}

	rows, err := s.db.Query(`
		SELECT id, code, embedding
		FROM snippets
		WHERE type = ? AND project_id = ? AND embedding IS NOT NULL AND length(embedding) > 0
	`, models.TypeCodeSnippet, projectID)
	if err != nil {
		return nil, fmt.Errorf("similarity search failed for project %s: %w", projectID, err)
	}
	defer func() { _ = rows.Close() }()

	var results []models.SearchResult
	for rows.Next() {
		var (
			id   string
			code string
			blob []byte
		)
		if err := rows.Scan(&id, &code, &blob); err != nil {
			return nil, fmt.Errorf("similarity search scan failed: %w", err)
		}

		results = append(results, models.SearchResult{
			ID:    id,
			Code:  code,
			Score: CosineSimilarity(queryVector, blobToVector(blob)),
		})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("similarity search failed: %w", err)
	}

	// Sort by similarity descending
	sort.Slice(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})

	if len(results) > k {
		results = results[:k]
	}

	return results, nil
}

// Delete removes a snippet by id. Deleting an absent id is not an error.
func (s *Storage) Delete(id string) error {
	_, err := s.db.Exec("DELETE FROM snippets WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete snippet %s: %w", id, err)
	}
	return nil
}

// scanInfos scans metadata-only rows
func scanInfos(rows *sql.Rows) ([]models.SnippetInfo, error) {
	var infos []models.SnippetInfo
	for rows.Next() {
		var info models.SnippetInfo
		if err := rows.Scan(&info.ID, &info.Name, &info.ProjectID, &info.Code); err != nil {
			return nil, fmt.Errorf("failed to scan snippet row: %w", err)
		}
		infos = append(infos, info)
	}
	return infos, rows.Err()
}

// nullString converts an empty string to a SQL NULL
func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

// vectorToBlob converts a float64 slice to binary blob
func vectorToBlob(vector []float64) []byte {
	blob := make([]byte, len(vector)*8)
	for i, v := range vector {
		binary.LittleEndian.PutUint64(blob[i*8:], math.Float64bits(v))
	}
	return blob
}

// blobToVector converts a binary blob to float64 slice
func blobToVector(blob []byte) []float64 {
	count := len(blob) / 8
	vector := make([]float64, count)
	for i := 0; i < count; i++ {
		bits := binary.LittleEndian.Uint64(blob[i*8:])
		vector[i] = math.Float64frombits(bits)
	}
	return vector
}

// CosineSimilarity calculates cosine similarity between two vectors.
// Mismatched lengths and zero vectors score 0.
func CosineSimilarity(a, b []float64) float64 {
	if len(a) != len(b) {
		return 0.0
	}

	var dotProduct, normA, normB float64
	for i := range a {
		dotProduct += a[i] * b[i]
		normA += a[i] * a[i]
		normB += b[i] * b[i]
	}

	if normA == 0 || normB == 0 {
		return 0.0
	}

	return dotProduct / (math.Sqrt(normA) * math.Sqrt(normB))
}
