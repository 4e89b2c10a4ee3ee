package config

import (
	"fmt"
	"os"
	"strconv"
)

const (
	// DefaultBatchSize matches the original generator default
	DefaultBatchSize = 300

	// DefaultMaxAttempts caps duplicate re-sampling per item so a model
	// stuck on one output cannot hang the batch
	DefaultMaxAttempts = 25

	defaultModel      = "gpt-4.1-mini"
	defaultOutputFile = "2077_future_vision.csv"
)

// Config holds the application configuration
// Note: This is a stateless configuration - everything comes from the
// process environment (optionally seeded from a local .env file)
type Config struct {
	// Environment
	Environment string

	// LLM API Keys
	OpenAIAPIKey string // OpenAI API key for GPT models
	GeminiAPIKey string // Google Gemini API key

	// Generation settings
	Model       string // Model identifier sent to the provider
	Provider    string // Explicit provider choice ("openai", "gemini"); inferred from model when empty
	OutputFile  string // Path of the CSV output file
	BatchSize   int    // Number of unique prompts per run
	MaxAttempts int    // Re-sample attempts per item before giving up

	// Observability
	SentryDSN         string // Sentry DSN for error tracking
	LangfusePublicKey string // Langfuse public key
	LangfuseSecretKey string // Langfuse secret key
	LangfuseHost      string // Langfuse host URL (cloud or self-hosted)
	LangfuseEnabled   bool   // Feature flag for Langfuse
}

func Load() *Config {
	return &Config{
		Environment:       getEnv("ENVIRONMENT", "development"),
		OpenAIAPIKey:      getEnv("OPENAI_API_KEY", ""),
		GeminiAPIKey:      getEnv("GEMINI_API_KEY", ""),
		Model:             getEnv("FUTURE_VISION_MODEL", defaultModel),
		Provider:          getEnv("FUTURE_VISION_PROVIDER", ""),
		OutputFile:        getEnv("FUTURE_VISION_OUTPUT", defaultOutputFile),
		BatchSize:         getEnvInt("FUTURE_VISION_COUNT", DefaultBatchSize),
		MaxAttempts:       getEnvInt("FUTURE_VISION_MAX_ATTEMPTS", DefaultMaxAttempts),
		SentryDSN:         getEnv("SENTRY_DSN", ""),
		LangfusePublicKey: getEnv("LANGFUSE_PUBLIC_KEY", ""),
		LangfuseSecretKey: getEnv("LANGFUSE_SECRET_KEY", ""),
		LangfuseHost:      getEnv("LANGFUSE_HOST", "https://cloud.langfuse.com"),
		LangfuseEnabled:   getEnv("LANGFUSE_ENABLED", "false") == "true",
	}
}

// Validate checks that the configuration is usable before any generation
// starts. A missing credential is a configuration error, not a generation
// error: the run must abort before the provider is ever called.
func (c *Config) Validate() error {
	if c.BatchSize < 0 {
		return fmt.Errorf("FUTURE_VISION_COUNT must be >= 0, got %d", c.BatchSize)
	}
	if c.MaxAttempts < 1 {
		return fmt.Errorf("FUTURE_VISION_MAX_ATTEMPTS must be >= 1, got %d", c.MaxAttempts)
	}
	if c.OpenAIAPIKey == "" && c.GeminiAPIKey == "" {
		return fmt.Errorf("no API key found; set OPENAI_API_KEY (or GEMINI_API_KEY) in the environment or a .env file")
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}
	return n
}
