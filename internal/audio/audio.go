package audio

import "math"

const (
	SampleRate = 44100
	Channels   = 1
	BitDepth   = 16

	MaxSample = math.MaxInt16
	MinSample = math.MinInt16
)

// NumSamples returns the buffer length for a duration in seconds.
func NumSamples(seconds float64) int {
	return int(math.Round(SampleRate * seconds))
}

// Duration returns the duration in seconds of n samples.
func Duration(n int) float64 {
	return float64(n) / SampleRate
}
