package synth

import (
	"fmt"
	"math"
	"math/rand/v2"

	"github.com/satindergrewal/moodsynth/internal/audio"
)

// DefaultDecay is the per-step energy loss of the plucked string.
const DefaultDecay = 0.996

// Pluck synthesizes one plucked-string note at frequency f for d seconds.
func Pluck(rng *rand.Rand, f, d float64) []float64 {
	return PluckDecay(rng, f, d, DefaultDecay)
}

// PluckDecay is Pluck with an explicit decay factor.
//
// The first N = round(SampleRate/f) samples are uniform noise in [-1, 1].
// Every later sample is the decayed average of the samples N and N+1 steps
// back, which rings at f and its harmonics. Samples before the start of the
// note count as zero. No clipping is applied.
func PluckDecay(rng *rand.Rand, f, d, decay float64) []float64 {
	if !(f > 0) || !(d > 0) {
		panic(fmt.Sprintf("synth: pluck needs positive frequency and duration, got f=%v d=%v", f, d))
	}

	n := audio.NumSamples(d)
	period := int(math.Round(audio.SampleRate / f))
	if period < 1 {
		period = 1
	}

	samples := make([]float64, n)
	for i := 0; i < period && i < n; i++ {
		samples[i] = 2*rng.Float64() - 1
	}
	for i := period; i < n; i++ {
		prev := 0.0
		if j := i - period - 1; j >= 0 {
			prev = samples[j]
		}
		samples[i] = 0.5 * (samples[i-period] + prev) * decay
	}
	return samples
}
