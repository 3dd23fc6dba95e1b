package audio

import (
	"encoding/binary"
	"fmt"
	"io"

	goaudio "github.com/go-audio/audio"
	"github.com/go-audio/wav"
)

// Clip is decoded PCM audio.
type Clip struct {
	SampleRate int
	Channels   int
	BitDepth   int
	Samples    []int16 // interleaved
}

// Duration returns the clip length in seconds.
func (c Clip) Duration() float64 {
	if c.SampleRate == 0 || c.Channels == 0 {
		return 0
	}
	return float64(len(c.Samples)) / float64(c.Channels*c.SampleRate)
}

// DecodeWAV reads a 16-bit PCM WAV stream.
func DecodeWAV(r io.ReadSeeker) (Clip, error) {
	d := wav.NewDecoder(r)
	if !d.IsValidFile() {
		return Clip{}, fmt.Errorf("decode wav: not a valid wav file")
	}
	buf, err := d.FullPCMBuffer()
	if err != nil {
		return Clip{}, fmt.Errorf("decode wav: %w", err)
	}
	if d.BitDepth != BitDepth {
		return Clip{}, fmt.Errorf("decode wav: unsupported bit depth %d", d.BitDepth)
	}

	samples := make([]int16, len(buf.Data))
	for i, v := range buf.Data {
		samples[i] = int16(v)
	}
	return Clip{
		SampleRate: int(d.SampleRate),
		Channels:   int(d.NumChans),
		BitDepth:   int(d.BitDepth),
		Samples:    samples,
	}, nil
}

// EncodeWAV writes samples as a mono 16-bit PCM WAV at SampleRate.
func EncodeWAV(w io.WriteSeeker, samples []int16) error {
	enc := wav.NewEncoder(w, SampleRate, BitDepth, Channels, 1)

	data := make([]int, len(samples))
	for i, s := range samples {
		data[i] = int(s)
	}
	buf := &goaudio.IntBuffer{
		Format: &goaudio.Format{
			NumChannels: Channels,
			SampleRate:  SampleRate,
		},
		Data:           data,
		SourceBitDepth: BitDepth,
	}
	if err := enc.Write(buf); err != nil {
		return fmt.Errorf("encode wav: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("finalize wav: %w", err)
	}
	return nil
}

// SamplesToBytes converts int16 samples to little-endian bytes.
func SamplesToBytes(samples []int16) []byte {
	buf := make([]byte, len(samples)*2)
	for i, s := range samples {
		binary.LittleEndian.PutUint16(buf[i*2:], uint16(s))
	}
	return buf
}
