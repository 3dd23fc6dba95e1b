package synth

import "github.com/satindergrewal/moodsynth/internal/audio"

const (
	DefaultReverbDelayMs = 100.0
	DefaultReverbDecay   = 0.5
	// reverbTailRepeats sizes the working buffer past the input end.
	reverbTailRepeats = 5
)

// Reverb runs a single-tap feedback delay over in and returns a buffer of the
// same length. The tail the echoes would ring into is computed in a scratch
// buffer and then dropped, so echoes of the last notes are cut at the end.
// Echoes feed back into the input region too, not only into the tail.
func Reverb(in []float64, delayMs, decay float64) []float64 {
	delay := int(audio.SampleRate * delayMs / 1000)
	if delay <= 0 {
		out := make([]float64, len(in))
		copy(out, in)
		return out
	}

	out := make([]float64, len(in)+delay*reverbTailRepeats)
	copy(out, in)
	for i := delay; i < len(out); i++ {
		out[i] += out[i-delay] * decay
	}
	return out[:len(in):len(in)]
}
