package vision

import (
	"math/rand"
	"time"
)

// Parameters is one sampled combination of seed attributes used to steer a
// single generation request. Any combination of values is valid; no
// relationship between fields is enforced.
type Parameters struct {
	Category        string
	TechnologyLevel string
	Setting         string
	Tone            string
	Focus           string
}

// Categories are the themes prompts are drawn from
var Categories = []string{
	"Human-AI Integration", "Space Exploration", "Urban Development",
	"Biotechnology", "Communication", "Transportation", "Entertainment",
	"Environment", "Governance", "Work & Economy", "Education", "Healthcare",
	"Food Systems", "Art & Creativity", "Home & Living", "Social Structures",
	"Mars Colonization", "Neural Interfaces", "Quantum Computing", "Consciousness Transfer",
	"Ocean Colonization", "Genetic Engineering", "Climate Engineering", "Interstellar Travel",
}

// TechnologyLevels are the maturity stages a scenario can assume
var TechnologyLevels = []string{"early-stage", "mature", "post-singularity"}

// Settings are the environments a scenario can take place in
var Settings = []string{"urban", "orbital", "underwater", "martian", "wilderness", "space"}

// Tones are the emotional registers a scenario can carry
var Tones = []string{"optimistic", "pragmatic", "complex", "contemplative"}

// Focuses are the aspects of life a scenario can center on
var Focuses = []string{"daily life", "work", "art", "governance", "exploration", "communication"}

// Sampler draws random seed parameter combinations. The randomness source
// is injected so tests can seed it deterministically.
type Sampler struct {
	rng *rand.Rand
}

// NewSampler creates a sampler backed by the given source. A nil source
// gets a time-seeded one.
func NewSampler(rng *rand.Rand) *Sampler {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Sampler{rng: rng}
}

// Sample selects one value per field, each independently and uniformly at
// random from its fixed domain.
func (s *Sampler) Sample() Parameters {
	return Parameters{
		Category:        s.pick(Categories),
		TechnologyLevel: s.pick(TechnologyLevels),
		Setting:         s.pick(Settings),
		Tone:            s.pick(Tones),
		Focus:           s.pick(Focuses),
	}
}

func (s *Sampler) pick(domain []string) string {
	return domain[s.rng.Intn(len(domain))]
}
