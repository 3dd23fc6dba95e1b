package mood

import "math"

// DefaultRoot is middle C, the root used by every profile except sad.
const DefaultRoot = 261.63

// DefaultScale is used when a scale name is not in the table.
const DefaultScale = "happy"

// Scales maps scale names to semitone offsets from the root.
// Read-only after init; safe to share across requests.
var Scales = map[string][]int{
	"happy":    {0, 2, 4, 5, 7, 9, 11},
	"sad":      {0, 2, 3, 5, 7, 8, 10},
	"tense":    {0, 1, 4, 5, 7, 8, 11},
	"peaceful": {0, 2, 4, 7, 9},
	"scary":    {0, 1, 3, 6, 8, 9},
}

// Intervals returns the semitone offsets for a scale, falling back to the
// default scale for unknown names.
func Intervals(scale string) []int {
	if iv, ok := Scales[scale]; ok {
		return iv
	}
	return Scales[DefaultScale]
}

// Frequencies builds a two-octave frequency table for the scale: every
// interval at root, then every interval at root*2. The result is freshly
// allocated per call.
func Frequencies(scale string, root float64) []float64 {
	intervals := Intervals(scale)
	freqs := make([]float64, 0, 2*len(intervals))
	for _, octaveRoot := range []float64{root, root * 2} {
		for _, i := range intervals {
			freqs = append(freqs, octaveRoot*math.Pow(2, float64(i)/12))
		}
	}
	return freqs
}

// IsValidScale checks if a scale exists in the table.
func IsValidScale(name string) bool {
	_, ok := Scales[name]
	return ok
}
