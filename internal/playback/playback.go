// Package playback auditions generated clips on the default audio device.
package playback

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/hajimehoshi/oto/v2"

	"github.com/satindergrewal/moodsynth/internal/audio"
)

// PlayFile decodes a 16-bit PCM WAV file and plays it to completion or until
// ctx is cancelled.
func PlayFile(ctx context.Context, path string) error {
	clip, err := audio.ReadWAVFile(path)
	if err != nil {
		return err
	}
	return Play(ctx, clip)
}

// Play blocks while clip is playing.
func Play(ctx context.Context, clip audio.Clip) error {
	if clip.BitDepth != 16 {
		return fmt.Errorf("playback: unsupported bit depth %d", clip.BitDepth)
	}
	otoCtx, ready, err := oto.NewContext(clip.SampleRate, clip.Channels, oto.FormatSignedInt16LE)
	if err != nil {
		return fmt.Errorf("open audio device: %w", err)
	}
	select {
	case <-ready:
	case <-ctx.Done():
		return ctx.Err()
	}

	player := otoCtx.NewPlayer(bytes.NewReader(audio.SamplesToBytes(clip.Samples)))
	defer player.Close()
	player.Play()

	tick := time.NewTicker(10 * time.Millisecond)
	defer tick.Stop()
	for player.IsPlaying() {
		select {
		case <-ctx.Done():
			player.Pause()
			return ctx.Err()
		case <-tick.C:
		}
	}
	return nil
}
