package vision

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/relegoai/future-vision/internal/config"
	"github.com/relegoai/future-vision/internal/llm"
)

// scriptedProvider returns its responses in order, repeating the last one
// once the script runs out
type scriptedProvider struct {
	responses []string
	err       error
	calls     int
}

func (p *scriptedProvider) Name() string { return "scripted" }

func (p *scriptedProvider) Generate(_ context.Context, request *llm.GenerationRequest) (*llm.GenerationResponse, error) {
	p.calls++
	if p.err != nil {
		return nil, p.err
	}
	idx := p.calls - 1
	if idx >= len(p.responses) {
		idx = len(p.responses) - 1
	}
	return &llm.GenerationResponse{
		OutputText: p.responses[idx],
		Usage:      &llm.TokenUsage{InputTokens: 100, OutputTokens: 70, TotalTokens: 170},
	}, nil
}

// funcProvider delegates generation to an injected func
type funcProvider struct {
	generateFunc func(ctx context.Context, request *llm.GenerationRequest) (*llm.GenerationResponse, error)
}

func (p *funcProvider) Name() string { return "func" }

func (p *funcProvider) Generate(ctx context.Context, request *llm.GenerationRequest) (*llm.GenerationResponse, error) {
	return p.generateFunc(ctx, request)
}

// freshProvider returns a new distinct string on every call
type freshProvider struct {
	calls int
}

func (p *freshProvider) Name() string { return "fresh" }

func (p *freshProvider) Generate(_ context.Context, _ *llm.GenerationRequest) (*llm.GenerationResponse, error) {
	p.calls++
	return &llm.GenerationResponse{
		OutputText: fmt.Sprintf("vision %d", p.calls),
	}, nil
}

func testConfig() *config.Config {
	return &config.Config{
		Model:       "test-model",
		MaxAttempts: 5,
	}
}

func testSampler() *Sampler {
	return NewSampler(rand.New(rand.NewSource(42)))
}

func TestGenerateBatchDistinctResponses(t *testing.T) {
	provider := &freshProvider{}
	service := NewService(testConfig(), provider, testSampler())

	items, err := service.GenerateBatch(context.Background(), 5)
	require.NoError(t, err)

	// One call per item when every response is fresh
	assert.Equal(t, 5, provider.calls)
	require.Len(t, items, 5)

	seen := make(map[string]bool)
	for i, item := range items {
		assert.Equal(t, i+1, item.ID)
		assert.False(t, seen[item.Prompt], "duplicate text accepted: %q", item.Prompt)
		seen[item.Prompt] = true
	}
}

func TestGenerateBatchDiscardsDuplicates(t *testing.T) {
	// Second call repeats the first response; the loop must re-sample and
	// only advance on the distinct third response
	provider := &scriptedProvider{
		responses: []string{"alpha", "alpha", "beta"},
	}
	service := NewService(testConfig(), provider, testSampler())

	items, err := service.GenerateBatch(context.Background(), 2)
	require.NoError(t, err)

	assert.Equal(t, 3, provider.calls)
	require.Len(t, items, 2)
	assert.Equal(t, Item{ID: 1, Prompt: "alpha"}, items[0])
	assert.Equal(t, Item{ID: 2, Prompt: "beta"}, items[1])
}

func TestGenerateBatchAttemptsExhausted(t *testing.T) {
	// A provider stuck on one string must fail the item instead of hanging
	provider := &scriptedProvider{
		responses: []string{"only output"},
	}
	service := NewService(testConfig(), provider, testSampler())

	items, err := service.GenerateBatch(context.Background(), 2)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrAttemptsExhausted))
	assert.Contains(t, err.Error(), "item 2")
	assert.Nil(t, items)

	// One accepting call plus all retries for the second item
	assert.Equal(t, 1+5, provider.calls)
}

func TestGenerateBatchProviderError(t *testing.T) {
	provider := &scriptedProvider{
		err: errors.New("boom"),
	}
	service := NewService(testConfig(), provider, testSampler())

	items, err := service.GenerateBatch(context.Background(), 3)
	require.Error(t, err)
	assert.False(t, errors.Is(err, ErrAttemptsExhausted))
	assert.Contains(t, err.Error(), "boom")
	assert.Nil(t, items)

	// Provider failures are fatal, not retried
	assert.Equal(t, 1, provider.calls)
}

func TestGenerateBatchZeroCount(t *testing.T) {
	provider := &freshProvider{}
	service := NewService(testConfig(), provider, testSampler())

	items, err := service.GenerateBatch(context.Background(), 0)
	require.NoError(t, err)
	assert.Empty(t, items)
	assert.Equal(t, 0, provider.calls)
}

func TestGenerateBatchRequestShape(t *testing.T) {
	var captured *llm.GenerationRequest
	provider := &funcProvider{
		generateFunc: func(_ context.Context, request *llm.GenerationRequest) (*llm.GenerationResponse, error) {
			captured = request
			return &llm.GenerationResponse{OutputText: "one vision"}, nil
		},
	}
	service := NewService(testConfig(), provider, testSampler())

	_, err := service.GenerateBatch(context.Background(), 1)
	require.NoError(t, err)
	require.NotNil(t, captured)

	assert.Equal(t, "test-model", captured.Model)
	assert.Contains(t, captured.SystemPrompt, "creative futurist")
	require.Len(t, captured.InputArray, 1)
	assert.Equal(t, "user", captured.InputArray[0]["role"])

	content, _ := captured.InputArray[0]["content"].(string)
	assert.Contains(t, content, "Category: ")
	assert.Contains(t, content, "Technology Level: ")
	assert.True(t, strings.Contains(content, "Tone: "))
}
