// Package synth renders short mood clips with a plucked-string model.
package synth

import (
	"math/rand/v2"

	"github.com/satindergrewal/moodsynth/internal/audio"
	"github.com/satindergrewal/moodsynth/internal/mood"
)

// NewRand returns a generator seeded from seed. A zero seed draws a random
// one, so production calls get varied output and tests can pin exact buffers.
func NewRand(seed uint64) *rand.Rand {
	if seed == 0 {
		seed = rand.Uint64()
	}
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// Track renders a full clip for a mood profile: composition, reverb, and
// normalization to 16-bit PCM.
func Track(rng *rand.Rand, p mood.Profile, seconds float64) []int16 {
	table := mood.Frequencies(p.Scale, p.Root)
	mixed := Compose(rng, table, p.TempoFactor, seconds)
	wet := Reverb(mixed, DefaultReverbDelayMs, DefaultReverbDecay)
	return audio.Normalize(wet)
}
