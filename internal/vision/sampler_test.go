package vision

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDomainSizes(t *testing.T) {
	assert.Len(t, Categories, 24)
	assert.Len(t, TechnologyLevels, 3)
	assert.Len(t, Settings, 6)
	assert.Len(t, Tones, 4)
	assert.Len(t, Focuses, 6)
}

func TestSampleFieldsBelongToDomains(t *testing.T) {
	sampler := NewSampler(rand.New(rand.NewSource(42)))

	for i := 0; i < 500; i++ {
		params := sampler.Sample()

		assert.Contains(t, Categories, params.Category)
		assert.Contains(t, TechnologyLevels, params.TechnologyLevel)
		assert.Contains(t, Settings, params.Setting)
		assert.Contains(t, Tones, params.Tone)
		assert.Contains(t, Focuses, params.Focus)
	}
}

func TestSampleDeterministicWithSeed(t *testing.T) {
	a := NewSampler(rand.New(rand.NewSource(7)))
	b := NewSampler(rand.New(rand.NewSource(7)))

	for i := 0; i < 50; i++ {
		require.Equal(t, a.Sample(), b.Sample())
	}
}

func TestSampleCoversEachDomain(t *testing.T) {
	sampler := NewSampler(rand.New(rand.NewSource(1)))

	seenTones := make(map[string]bool)
	seenLevels := make(map[string]bool)
	for i := 0; i < 1000; i++ {
		params := sampler.Sample()
		seenTones[params.Tone] = true
		seenLevels[params.TechnologyLevel] = true
	}

	// With 1000 uniform draws every value of the small domains shows up
	assert.Len(t, seenTones, len(Tones))
	assert.Len(t, seenLevels, len(TechnologyLevels))
}

func TestNewSamplerNilSource(t *testing.T) {
	sampler := NewSampler(nil)
	require.NotNil(t, sampler)

	params := sampler.Sample()
	assert.Contains(t, Categories, params.Category)
}
