package audio

import "math"

// Mix adds src scaled by gain into dst starting at offset. Samples that would
// land past the end of dst are dropped. Returns the number of samples written.
func Mix(dst, src []float64, offset int, gain float64) int {
	if offset < 0 || offset >= len(dst) {
		return 0
	}
	n := len(src)
	if offset+n > len(dst) {
		n = len(dst) - offset
	}
	for i := 0; i < n; i++ {
		dst[offset+i] += src[i] * gain
	}
	return n
}

// Peak returns the largest absolute sample value.
func Peak(buf []float64) float64 {
	var peak float64
	for _, v := range buf {
		if a := math.Abs(v); a > peak {
			peak = a
		}
	}
	return peak
}

// Normalize rescales buf so its peak hits MaxSample and converts it to 16-bit
// PCM. An all-zero buffer converts to all zeros.
func Normalize(buf []float64) []int16 {
	out := make([]int16, len(buf))
	peak := Peak(buf)
	if peak == 0 {
		return out
	}
	scale := MaxSample / peak
	for i, v := range buf {
		out[i] = clip16(math.Round(v * scale))
	}
	return out
}

func clip16(v float64) int16 {
	if v > MaxSample {
		return MaxSample
	} else if v < MinSample {
		return MinSample
	}
	return int16(v)
}
