package synth

import (
	"fmt"
	"math/rand/v2"

	"github.com/satindergrewal/moodsynth/internal/audio"
)

const (
	// NoteLength is how long every scheduled note rings, in seconds.
	NoteLength = 2.0
	// ChordProbability is the chance that a step plays a chord instead of a note.
	ChordProbability = 0.3
	// ChordVoices is the number of notes in a chord.
	ChordVoices = 3
	// ChordGain scales each chord voice so stacked voices don't swamp single notes.
	ChordGain = 0.5
	// tailMargin stops scheduling this many seconds before the end.
	tailMargin = 1.0
)

// stepMultipliers are the tempo subdivisions a step can advance by.
var stepMultipliers = [...]float64{0.5, 1}

// NoteEvent is one note placed on the timeline.
type NoteEvent struct {
	Frequency float64 // Hz
	Start     float64 // seconds
	Duration  float64 // seconds
	Chord     bool
	Gain      float64
}

// Schedule walks the timeline and picks notes and chords from table.
// It panics on an empty table or a non-positive tempo, which would never
// terminate or never sound.
func Schedule(rng *rand.Rand, table []float64, tempo, total float64) []NoteEvent {
	if len(table) == 0 {
		panic("synth: schedule needs a non-empty frequency table")
	}
	if !(tempo > 0) {
		panic(fmt.Sprintf("synth: schedule needs a positive tempo, got %v", tempo))
	}

	pick := func() float64 { return table[rng.IntN(len(table))] }

	var events []NoteEvent
	for t := 0.0; t < total-tailMargin; t += tempo * stepMultipliers[rng.IntN(len(stepMultipliers))] {
		f := pick()
		if rng.Float64() < ChordProbability {
			for v := 0; v < ChordVoices; v++ {
				events = append(events, NoteEvent{
					Frequency: pick(),
					Start:     t,
					Duration:  NoteLength,
					Chord:     true,
					Gain:      ChordGain,
				})
			}
			continue
		}
		events = append(events, NoteEvent{
			Frequency: f,
			Start:     t,
			Duration:  NoteLength,
			Gain:      1,
		})
	}
	return events
}

// Render plucks every event and sums it into a zeroed buffer of total
// seconds. Overlapping notes add; notes running past the end are cut off.
func Render(rng *rand.Rand, events []NoteEvent, total float64) []float64 {
	buf := make([]float64, audio.NumSamples(total))
	for _, ev := range events {
		start := int(ev.Start * audio.SampleRate)
		if start >= len(buf) {
			continue
		}
		// Only synthesize what fits.
		d := ev.Duration
		if remain := audio.Duration(len(buf) - start); remain < d {
			d = remain
		}
		tone := Pluck(rng, ev.Frequency, d)
		audio.Mix(buf, tone, start, ev.Gain)
	}
	return buf
}

// Compose schedules and renders a clip in one pass.
func Compose(rng *rand.Rand, table []float64, tempo, total float64) []float64 {
	return Render(rng, Schedule(rng, table, tempo, total), total)
}
