package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/joho/godotenv"

	"github.com/relegoai/future-vision/internal/config"
	"github.com/relegoai/future-vision/internal/llm"
	"github.com/relegoai/future-vision/internal/logger"
	"github.com/relegoai/future-vision/internal/observability"
	"github.com/relegoai/future-vision/internal/output"
	"github.com/relegoai/future-vision/internal/vision"
)

const (
	sentryFlushTimeout    = 2 * time.Second
	environmentProduction = "production"
)

// releaseVersion is set via ldflags during build
var releaseVersion = "dev"

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	// Load configuration
	cfg := config.Load()

	// Initialize Sentry
	if cfg.SentryDSN != "" {
		if err := sentry.Init(sentry.ClientOptions{
			Dsn:              cfg.SentryDSN,
			Environment:      cfg.Environment,
			Release:          "future-vision@" + releaseVersion,
			EnableTracing:    true,
			TracesSampleRate: 1.0,
			Debug:            cfg.Environment != environmentProduction,
		}); err != nil {
			log.Printf("Failed to initialize Sentry: %v", err)
		} else {
			log.Printf("✅ Sentry initialized (environment: %s, release: %s)", cfg.Environment, releaseVersion)
		}
	} else {
		log.Println("⚠️  Sentry not configured (SENTRY_DSN not set)")
	}

	// Missing credentials abort the run before any generation starts
	if err := cfg.Validate(); err != nil {
		fmt.Printf("Configuration error: %v\n", err)
		fmt.Println("Please ensure your OpenAI API key is correctly configured in the .env file.")
		fail()
	}

	ctx := context.Background()

	// Initialize Langfuse
	observability.InitializeLangfuse(ctx, cfg)

	// Build the provider for the configured model
	factory := llm.NewProviderFactory(cfg.OpenAIAPIKey, cfg.GeminiAPIKey)
	provider, err := factory.GetProvider(ctx, cfg.Model, cfg.Provider)
	if err != nil {
		fmt.Printf("Configuration error: %v\n", err)
		fmt.Println("Please ensure your OpenAI API key is correctly configured in the .env file.")
		fail()
	}

	service := vision.NewService(cfg, provider, nil)

	log.Printf("🚀 Generating prompts using %s with model %s...", provider.Name(), cfg.Model)

	items, err := service.GenerateBatch(ctx, cfg.BatchSize)
	if err != nil {
		logger.Error("Prompt generation failed", err, logger.Fields{"model": cfg.Model})
		fmt.Printf("Error during prompt generation: %v\n", err)
		fail()
	}

	// The file is produced only after the full batch is assembled
	if err := output.WriteCSV(cfg.OutputFile, items); err != nil {
		logger.Error("Failed to write output file", err, logger.Fields{"path": cfg.OutputFile})
		fmt.Printf("Error during prompt generation: %v\n", err)
		fail()
	}

	fmt.Printf("Successfully generated %d unique futuristic prompts!\n", len(items))
	fmt.Printf("Saved to: %s\n", cfg.OutputFile)

	sentry.Flush(sentryFlushTimeout)
}

// fail flushes Sentry and exits non-zero (os.Exit skips deferred calls)
func fail() {
	sentry.Flush(sentryFlushTimeout)
	os.Exit(1)
}
