// ABOUTME: Centralized configuration for the snipd snippet pipeline
// ABOUTME: Loads from environment variables with validation and defaults
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config holds all configuration for the snippet pipeline
type Config struct {
	// Storage settings
	DBPath string

	// OpenAI settings
	OpenAIKey      string
	ChatModel      string
	EmbeddingModel string
	Temperature    float32
	Timeout        time.Duration
	MaxRetries     int
	RetryDelay     time.Duration

	// Pipeline settings
	ChunkSize       int
	TopK            int
	VectorDimension int
	DefaultProject  string
	MaxFileBytes    int64
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	cfg := &Config{
		// Defaults
		DBPath:          os.Getenv("SNIPD_DB"),
		OpenAIKey:       os.Getenv("OPENAI_API_KEY"),
		ChatModel:       getEnv("SNIPD_OPENAI_MODEL", "gpt-4o-mini"),
		EmbeddingModel:  getEnv("SNIPD_EMBEDDING_MODEL", "text-embedding-3-small"),
		Temperature:     float32(getEnvFloat("OPENAI_TEMPERATURE", 0.2)),
		Timeout:         getEnvDuration("OPENAI_TIMEOUT", 30*time.Second),
		MaxRetries:      getEnvInt("OPENAI_MAX_RETRIES", 3),
		RetryDelay:      getEnvDuration("OPENAI_RETRY_DELAY", 2*time.Second),
		ChunkSize:       getEnvInt("SNIPD_CHUNK_SIZE", 2048),
		TopK:            getEnvInt("SNIPD_VECTOR_TOP_K", 30),
		VectorDimension: getEnvInt("SNIPD_VECTOR_DIMENSION", 1536),
		DefaultProject:  getEnv("SNIPD_DEFAULT_PROJECT", "default-project"),
		MaxFileBytes:    int64(getEnvInt("SNIPD_MAX_FILE_BYTES", 2*1024*1024)),
	}

	return cfg, cfg.Validate()
}

func (c *Config) Validate() error {
	if c.ChunkSize < 1 {
		return fmt.Errorf("SNIPD_CHUNK_SIZE must be positive, got %d", c.ChunkSize)
	}
	if c.TopK < 1 {
		return fmt.Errorf("SNIPD_VECTOR_TOP_K must be positive, got %d", c.TopK)
	}
	if c.VectorDimension < 1 {
		return fmt.Errorf("SNIPD_VECTOR_DIMENSION must be positive, got %d", c.VectorDimension)
	}
	if c.MaxRetries < 0 || c.MaxRetries > 10 {
		return fmt.Errorf("OPENAI_MAX_RETRIES must be 0-10, got %d", c.MaxRetries)
	}
	if c.MaxFileBytes < 1 {
		return fmt.Errorf("SNIPD_MAX_FILE_BYTES must be positive, got %d", c.MaxFileBytes)
	}
	return nil
}

// Helper functions
func getEnv(key, defaultVal string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultVal
}

func getEnvInt(key string, defaultVal int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return defaultVal
}

func getEnvFloat(key string, defaultVal float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return defaultVal
}

func getEnvDuration(key string, defaultVal time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return defaultVal
}
