package observability

import (
	"github.com/relegoai/future-vision/internal/llm"
)

// Pricing constants
const (
	tokensPerKilo = 1000.0

	// GPT-4.1 pricing
	gpt41InputPrice  = 0.002
	gpt41OutputPrice = 0.008

	// GPT-4.1-mini pricing
	gpt41MiniInputPrice  = 0.0004
	gpt41MiniOutputPrice = 0.0016

	// GPT-4o-mini pricing
	gpt4oMiniInputPrice  = 0.00015
	gpt4oMiniOutputPrice = 0.0006

	// Gemini 2.0 Flash pricing
	gemini20FlashInputPrice  = 0.0001
	gemini20FlashOutputPrice = 0.0004
)

// ModelPricing contains pricing information per 1K tokens
type ModelPricing struct {
	InputPricePer1K  float64 // Price per 1K input tokens in USD
	OutputPricePer1K float64 // Price per 1K output tokens in USD
}

// PricingTable contains pricing for all models
var PricingTable = map[string]ModelPricing{
	"gpt-4.1": {
		InputPricePer1K:  gpt41InputPrice,
		OutputPricePer1K: gpt41OutputPrice,
	},
	"gpt-4.1-mini": {
		InputPricePer1K:  gpt41MiniInputPrice,
		OutputPricePer1K: gpt41MiniOutputPrice,
	},
	"gpt-4o-mini": {
		InputPricePer1K:  gpt4oMiniInputPrice,
		OutputPricePer1K: gpt4oMiniOutputPrice,
	},
	"gemini-2.0-flash": {
		InputPricePer1K:  gemini20FlashInputPrice,
		OutputPricePer1K: gemini20FlashOutputPrice,
	},
}

// CalculateCost calculates the cost in USD for one LLM call
func CalculateCost(model string, usage *llm.TokenUsage) float64 {
	if usage == nil {
		return 0
	}

	pricing, exists := PricingTable[model]
	if !exists {
		// Default to GPT-4.1-mini pricing if model not found
		pricing = PricingTable["gpt-4.1-mini"]
	}

	inputCost := (float64(usage.InputTokens) / tokensPerKilo) * pricing.InputPricePer1K
	outputCost := (float64(usage.OutputTokens) / tokensPerKilo) * pricing.OutputPricePer1K

	return inputCost + outputCost
}
