// ABOUTME: File ingress that turns local source files into snippet requests
// ABOUTME: Filters by extension and size, infers language from the filename
package ingest

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/snipd/snipd/internal/models"
)

// DefaultMaxFileBytes is the largest file the loader will ingest.
const DefaultMaxFileBytes = 2 * 1024 * 1024

// languageByExt maps file extensions to the language recorded on the snippet.
var languageByExt = map[string]string{
	".go":    "go",
	".py":    "python",
	".js":    "javascript",
	".ts":    "typescript",
	".tsx":   "typescript",
	".jsx":   "javascript",
	".rb":    "ruby",
	".rs":    "rust",
	".java":  "java",
	".kt":    "kotlin",
	".c":     "c",
	".h":     "c",
	".cpp":   "cpp",
	".hpp":   "cpp",
	".cs":    "csharp",
	".sh":    "shell",
	".bash":  "shell",
	".sql":   "sql",
	".html":  "html",
	".css":   "css",
	".json":  "json",
	".yaml":  "yaml",
	".yml":   "yaml",
	".toml":  "toml",
	".md":    "markdown",
	".txt":   "text",
	".swift": "swift",
	".php":   "php",
	".lua":   "lua",
	".zig":   "zig",
}

// skipDirs are directory names never descended into.
var skipDirs = map[string]bool{
	".git":         true,
	"node_modules": true,
	"vendor":       true,
	"__pycache__":  true,
	".venv":        true,
}

// Loader reads source files and converts them into snippet requests.
type Loader struct {
	maxBytes int64
}

// NewLoader creates a loader. maxBytes < 1 falls back to DefaultMaxFileBytes.
func NewLoader(maxBytes int64) *Loader {
	if maxBytes < 1 {
		maxBytes = DefaultMaxFileBytes
	}
	return &Loader{maxBytes: maxBytes}
}

// LoadFile reads a single file into a snippet request. The snippet name is
// the base filename. Files that are too large, binary, or of an unknown
// extension are rejected.
func (l *Loader) LoadFile(path string) (models.SnippetRequest, error) {
	var req models.SnippetRequest

	info, err := os.Stat(path)
	if err != nil {
		return req, fmt.Errorf("stat %s: %w", path, err)
	}
	if info.IsDir() {
		return req, fmt.Errorf("%s is a directory", path)
	}
	if info.Size() > l.maxBytes {
		return req, fmt.Errorf("%s exceeds size limit (%d > %d bytes)", path, info.Size(), l.maxBytes)
	}

	lang, ok := languageByExt[strings.ToLower(filepath.Ext(path))]
	if !ok {
		return req, fmt.Errorf("%s: unsupported file type %q", path, filepath.Ext(path))
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return req, fmt.Errorf("reading %s: %w", path, err)
	}
	if !utf8.Valid(data) {
		return req, fmt.Errorf("%s is not valid UTF-8 text", path)
	}
	if strings.TrimSpace(string(data)) == "" {
		return req, fmt.Errorf("%s is empty", path)
	}

	return models.SnippetRequest{
		Name:     filepath.Base(path),
		Code:     string(data),
		Language: lang,
	}, nil
}

// LoadDir walks root and loads every eligible file. Ineligible files are
// skipped rather than failing the walk; an error is returned only when the
// walk itself fails or no file was eligible.
func (l *Loader) LoadDir(root string) ([]models.SnippetRequest, error) {
	var requests []models.SnippetRequest

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if skipDirs[d.Name()] {
				return filepath.SkipDir
			}
			return nil
		}
		req, err := l.LoadFile(path)
		if err != nil {
			return nil
		}
		// Name snippets by their path relative to the walk root so a
		// project's main.go files stay distinct.
		if rel, relErr := filepath.Rel(root, path); relErr == nil {
			req.Name = filepath.ToSlash(rel)
		}
		requests = append(requests, req)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walking %s: %w", root, err)
	}
	if len(requests) == 0 {
		return nil, fmt.Errorf("no ingestable files under %s", root)
	}
	return requests, nil
}
