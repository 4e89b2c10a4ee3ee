package observability

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/relegoai/future-vision/internal/llm"
)

func TestCalculateCostKnownModel(t *testing.T) {
	usage := &llm.TokenUsage{InputTokens: 1000, OutputTokens: 1000, TotalTokens: 2000}

	cost := CalculateCost("gpt-4.1-mini", usage)
	assert.InDelta(t, 0.0004+0.0016, cost, 1e-9)
}

func TestCalculateCostUnknownModelFallsBack(t *testing.T) {
	usage := &llm.TokenUsage{InputTokens: 1000, OutputTokens: 1000, TotalTokens: 2000}

	assert.Equal(t, CalculateCost("gpt-4.1-mini", usage), CalculateCost("some-future-model", usage))
}

func TestCalculateCostNilUsage(t *testing.T) {
	assert.Zero(t, CalculateCost("gpt-4.1-mini", nil))
}
