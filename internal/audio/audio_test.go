package audio

import (
	"bytes"
	"math"
	"os"
	"path/filepath"
	"testing"
)

// --- Constants ---

func TestConstants(t *testing.T) {
	if SampleRate != 44100 {
		t.Errorf("SampleRate = %d, want 44100", SampleRate)
	}
	if Channels != 1 || BitDepth != 16 {
		t.Errorf("Channels/BitDepth = %d/%d, want 1/16", Channels, BitDepth)
	}
	if MaxSample != 32767 || MinSample != -32768 {
		t.Errorf("Sample range = [%d, %d], want [-32768, 32767]", MinSample, MaxSample)
	}
}

func TestNumSamples(t *testing.T) {
	tests := []struct {
		seconds float64
		want    int
	}{
		{0, 0},
		{1, 44100},
		{10, 441000},
		{0.5, 22050},
		{2.00001, 88200},   // 88200.44 rounds down
		{2.0000114, 88201}, // 88200.50 rounds up, truncation would give 88200
	}
	for _, tt := range tests {
		if got := NumSamples(tt.seconds); got != tt.want {
			t.Errorf("NumSamples(%v) = %d, want %d", tt.seconds, got, tt.want)
		}
	}
	if got := Duration(44100); got != 1 {
		t.Errorf("Duration(44100) = %v, want 1", got)
	}
}

// --- Mix ---

func TestMixAddsScaled(t *testing.T) {
	dst := []float64{1, 1, 1, 1}
	n := Mix(dst, []float64{2, 4}, 1, 0.5)
	if n != 2 {
		t.Errorf("Mix wrote %d samples, want 2", n)
	}
	want := []float64{1, 2, 3, 1}
	for i, v := range want {
		if dst[i] != v {
			t.Errorf("dst[%d] = %v, want %v", i, dst[i], v)
		}
	}
}

func TestMixTruncatesAtEnd(t *testing.T) {
	dst := make([]float64, 4)
	n := Mix(dst, []float64{1, 1, 1, 1, 1}, 2, 1)
	if n != 2 {
		t.Errorf("Mix wrote %d samples, want 2 (truncated)", n)
	}
	if dst[0] != 0 || dst[1] != 0 || dst[2] != 1 || dst[3] != 1 {
		t.Errorf("dst = %v, want [0 0 1 1]", dst)
	}
}

func TestMixOutOfRangeOffset(t *testing.T) {
	dst := make([]float64, 4)
	if n := Mix(dst, []float64{1}, 4, 1); n != 0 {
		t.Errorf("Mix at len(dst) wrote %d, want 0", n)
	}
	if n := Mix(dst, []float64{1}, -1, 1); n != 0 {
		t.Errorf("Mix at negative offset wrote %d, want 0", n)
	}
}

// --- Normalize ---

func TestNormalizeSilence(t *testing.T) {
	out := Normalize(make([]float64, 100))
	if len(out) != 100 {
		t.Fatalf("Normalize len = %d, want 100", len(out))
	}
	for i, v := range out {
		if v != 0 {
			t.Fatalf("Silent sample[%d] = %d, want 0", i, v)
		}
	}
}

func TestNormalizePeak(t *testing.T) {
	tests := [][]float64{
		{0.1, -0.2, 0.05},
		{3, -1, 2},
		{-7.5, 0, 1e-3},
		{1e-9},
	}
	for _, in := range tests {
		out := Normalize(in)
		var peak int
		for _, v := range out {
			a := int(v)
			if a < 0 {
				a = -a
			}
			if a > peak {
				peak = a
			}
		}
		if peak != 32767 {
			t.Errorf("Normalize(%v) peak = %d, want 32767", in, peak)
		}
	}
}

func TestNormalizePreservesSignAndRatio(t *testing.T) {
	out := Normalize([]float64{-2, 1, 0})
	if out[0] != -32767 {
		t.Errorf("out[0] = %d, want -32767", out[0])
	}
	if out[1] != 16384 { // 16383.5 rounds away from zero
		t.Errorf("out[1] = %d, want 16384", out[1])
	}
	if out[2] != 0 {
		t.Errorf("out[2] = %d, want 0", out[2])
	}
}

func TestPeak(t *testing.T) {
	if got := Peak([]float64{0.5, -3, 2}); got != 3 {
		t.Errorf("Peak = %v, want 3", got)
	}
	if got := Peak(nil); got != 0 {
		t.Errorf("Peak(nil) = %v, want 0", got)
	}
}

// --- SamplesToBytes ---

func TestSamplesToBytes(t *testing.T) {
	samples := []int16{0, 1, -1, 32767, -32768, 256}
	buf := SamplesToBytes(samples)
	if len(buf) != len(samples)*2 {
		t.Fatalf("SamplesToBytes length = %d, want %d", len(buf), len(samples)*2)
	}

	// 256 = 0x0100 -> bytes [0x00, 0x01]
	idx := 5 * 2
	if buf[idx] != 0x00 || buf[idx+1] != 0x01 {
		t.Errorf("Sample 256 encoded as [%02x, %02x], want [00, 01]", buf[idx], buf[idx+1])
	}
}

// --- WAV files ---

func TestWriteReadWAVFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "clip.wav")
	samples := []int16{0, 1000, -1000, 32767, -32768, 12345}

	if err := WriteWAVFile(path, samples); err != nil {
		t.Fatalf("WriteWAVFile: %v", err)
	}

	clip, err := ReadWAVFile(path)
	if err != nil {
		t.Fatalf("ReadWAVFile: %v", err)
	}
	if clip.SampleRate != SampleRate || clip.Channels != 1 || clip.BitDepth != 16 {
		t.Errorf("Format = %d Hz / %d ch / %d bit, want 44100/1/16", clip.SampleRate, clip.Channels, clip.BitDepth)
	}
	if len(clip.Samples) != len(samples) {
		t.Fatalf("Decoded %d samples, want %d", len(clip.Samples), len(samples))
	}
	for i, v := range samples {
		if clip.Samples[i] != v {
			t.Errorf("Sample[%d] = %d, want %d", i, clip.Samples[i], v)
		}
	}
}

func TestClipDuration(t *testing.T) {
	c := Clip{SampleRate: SampleRate, Channels: 1, Samples: make([]int16, SampleRate*2)}
	if d := c.Duration(); math.Abs(d-2) > 1e-12 {
		t.Errorf("Duration = %v, want 2", d)
	}
	if d := (Clip{}).Duration(); d != 0 {
		t.Errorf("Empty clip duration = %v, want 0", d)
	}
}

func TestWriteFileLeavesNoTemp(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "remote.flac")
	data := []byte("fLaC-not-really")

	if err := WriteFile(path, data); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if !bytes.Equal(got, data) {
		t.Errorf("File contents = %q, want %q", got, data)
	}

	entries, _ := os.ReadDir(dir)
	if len(entries) != 1 {
		t.Errorf("Directory has %d entries, want 1 (no temp files left)", len(entries))
	}
}

func TestWriteFileMissingDir(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "clip.wav")
	if err := WriteWAVFile(path, []int16{1}); err == nil {
		t.Fatal("WriteWAVFile into a missing directory should fail")
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Errorf("No file should exist at %s", path)
	}
}

func TestDecodeWAVRejectsGarbage(t *testing.T) {
	if _, err := DecodeWAV(bytes.NewReader([]byte("definitely not audio"))); err == nil {
		t.Error("DecodeWAV should reject non-WAV input")
	}
}
