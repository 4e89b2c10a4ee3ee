package vision

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"github.com/relegoai/future-vision/internal/config"
	"github.com/relegoai/future-vision/internal/llm"
	"github.com/relegoai/future-vision/internal/logger"
	"github.com/relegoai/future-vision/internal/metrics"
	"github.com/relegoai/future-vision/internal/observability"
	"github.com/relegoai/future-vision/internal/prompt"
)

const progressInterval = 10

// ErrAttemptsExhausted is returned when the per-item re-sample cap is hit
// without the provider producing a text not seen before in the batch.
// Callers can distinguish it from provider failures with errors.Is.
var ErrAttemptsExhausted = errors.New("re-sample attempts exhausted without a unique result")

// Item is one accepted generation: a 1-based sequence number and the
// prompt text, immutable once accepted.
type Item struct {
	ID     int
	Prompt string
}

// Service runs the uniqueness-enforcing batch loop against a provider
type Service struct {
	provider      llm.Provider
	sampler       *Sampler
	promptBuilder *prompt.Builder
	systemPrompt  string
	model         string
	maxAttempts   int
	metrics       *metrics.SentryMetrics
}

// NewService creates a generation service. The provider is injected so the
// loop is testable without network access.
func NewService(cfg *config.Config, provider llm.Provider, sampler *Sampler) *Service {
	promptBuilder := prompt.NewBuilder()

	if sampler == nil {
		sampler = NewSampler(nil)
	}

	maxAttempts := cfg.MaxAttempts
	if maxAttempts < 1 {
		maxAttempts = config.DefaultMaxAttempts
	}

	service := &Service{
		provider:      provider,
		sampler:       sampler,
		promptBuilder: promptBuilder,
		systemPrompt:  promptBuilder.BuildSystemPrompt(),
		model:         cfg.Model,
		maxAttempts:   maxAttempts,
		metrics:       metrics.NewSentryMetrics(),
	}

	log.Printf("🔮 FUTURE VISION SERVICE INITIALIZED:")
	log.Printf("   Provider: %s", provider.Name())
	log.Printf("   Model: %s", cfg.Model)
	log.Printf("   Max attempts per item: %d", maxAttempts)

	return service
}

// GenerateBatch produces exactly count items with pairwise-distinct text,
// numbered 1..count in generation order. Duplicate responses are discarded
// and the parameters re-sampled; the batch is all-or-nothing.
func (s *Service) GenerateBatch(ctx context.Context, count int) ([]Item, error) {
	runID := uuid.NewString()
	seen := make(map[string]struct{}, count)
	results := make([]Item, 0, count)

	log.Printf("🔮 Generating %d unique futuristic prompts... (run: %s)", count, runID)

	trace := observability.GetClient().StartTrace(ctx, "future_vision_batch", map[string]interface{}{
		"run_id": runID,
		"model":  s.model,
		"count":  count,
	})
	defer trace.Finish()

	for i := 1; i <= count; i++ {
		text, err := s.generateUnique(ctx, seen, trace, runID)
		if err != nil {
			return nil, fmt.Errorf("item %d: %w", i, err)
		}

		seen[text] = struct{}{}
		results = append(results, Item{ID: i, Prompt: text})

		if i%progressInterval == 0 {
			log.Printf("📈 Progress: %d/%d prompts generated", i, count)
		}
	}

	s.metrics.RecordBatchMetric("future_vision_batch", map[string]interface{}{
		"run_id": runID,
		"model":  s.model,
		"count":  len(results),
	})

	return results, nil
}

// generateUnique samples parameters and calls the provider until the
// returned text is not already in the batch, up to the attempt cap.
func (s *Service) generateUnique(ctx context.Context, seen map[string]struct{}, trace *observability.Trace, runID string) (string, error) {
	for attempt := 1; attempt <= s.maxAttempts; attempt++ {
		params := s.sampler.Sample()
		query := s.promptBuilder.BuildQuery(
			params.Category, params.TechnologyLevel, params.Setting, params.Tone, params.Focus)

		request := &llm.GenerationRequest{
			Model:        s.model,
			SystemPrompt: s.systemPrompt,
			InputArray: []map[string]any{
				{"role": "user", "content": query},
			},
		}

		startTime := time.Now()
		response, err := s.provider.Generate(ctx, request)
		duration := time.Since(startTime)

		if err != nil {
			s.metrics.RecordGenerationDuration(ctx, duration, false)
			return "", err
		}

		s.metrics.RecordGenerationDuration(ctx, duration, true)
		if response.Usage != nil {
			s.metrics.RecordTokenUsage(ctx, s.model,
				int(response.Usage.TotalTokens),
				int(response.Usage.InputTokens),
				int(response.Usage.OutputTokens))
		}

		text := response.OutputText
		if _, dup := seen[text]; dup {
			log.Printf("♻️  Duplicate response discarded (attempt %d/%d), re-sampling parameters", attempt, s.maxAttempts)
			continue
		}

		if response.Usage != nil {
			logger.LogGenerationRequest(ctx, s.model, duration, map[string]interface{}{
				"total_tokens":  response.Usage.TotalTokens,
				"input_tokens":  response.Usage.InputTokens,
				"output_tokens": response.Usage.OutputTokens,
			}, logger.Fields{"run_id": runID})
		}

		s.recordGeneration(trace, runID, params, query, text, response.Usage, duration)
		return text, nil
	}

	return "", fmt.Errorf("%w (cap: %d)", ErrAttemptsExhausted, s.maxAttempts)
}

// recordGeneration sends one accepted call to Langfuse
func (s *Service) recordGeneration(trace *observability.Trace, runID string, params Parameters, query, text string, usage *llm.TokenUsage, duration time.Duration) {
	gen := trace.Generation("future_vision_prompt", map[string]interface{}{
		"run_id":           runID,
		"category":         params.Category,
		"technology_level": params.TechnologyLevel,
		"setting":          params.Setting,
		"tone":             params.Tone,
		"focus":            params.Focus,
		"duration_ms":      duration.Milliseconds(),
	})
	gen.Input(query)
	gen.Output(text)
	gen.LogUsage(s.model, usage)
	gen.Finish()
}
