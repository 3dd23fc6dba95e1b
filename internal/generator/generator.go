// Package generator turns a mood prompt into an audio file, preferring the
// remote backend and falling back to local synthesis.
package generator

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/satindergrewal/moodsynth/internal/audio"
	"github.com/satindergrewal/moodsynth/internal/mood"
	"github.com/satindergrewal/moodsynth/internal/musicgen"
	"github.com/satindergrewal/moodsynth/internal/synth"
)

const (
	DefaultAttempts = 3
	DefaultBackoff  = 10 * time.Second
)

// ErrLocalSynthesis wraps every failure of the local pipeline.
var ErrLocalSynthesis = errors.New("local synthesis failed")

// Remote is the backend the generator tries first.
type Remote interface {
	HasCredential() bool
	Generate(ctx context.Context, prompt string) (musicgen.Response, error)
}

// SleepFunc waits for d or until ctx is done.
type SleepFunc func(ctx context.Context, d time.Duration) error

// Options tunes a Generator. Zero values take the defaults.
type Options struct {
	Attempts int           // remote calls per request
	Backoff  time.Duration // wait after a retryable failure
	Seed     uint64        // 0 draws a fresh seed per request
	Mood     string        // forces a named profile instead of classifying the prompt
	Sleep    SleepFunc
}

// Source records which path produced a file.
type Source string

const (
	SourceRemote Source = "remote"
	SourceLocal  Source = "local"
)

// Result describes a written audio file.
type Result struct {
	Path     string
	Source   Source
	Mood     string // set for local synthesis
	Reason   string // why the remote path was not used
	Attempts int    // remote calls made
}

// Generator runs the remote-then-local generation policy.
type Generator struct {
	remote   Remote
	attempts int
	backoff  time.Duration
	seed     uint64
	mood     string
	sleep    SleepFunc
}

// New creates a Generator. remote may be nil to always synthesize locally.
func New(remote Remote, opts Options) *Generator {
	g := &Generator{
		remote:   remote,
		attempts: opts.Attempts,
		backoff:  opts.Backoff,
		seed:     opts.Seed,
		mood:     opts.Mood,
		sleep:    opts.Sleep,
	}
	if g.attempts <= 0 {
		g.attempts = DefaultAttempts
	}
	if g.backoff <= 0 {
		g.backoff = DefaultBackoff
	}
	if g.sleep == nil {
		g.sleep = sleepContext
	}
	return g
}

// Generate writes a clip for prompt into outDir and returns where it went.
// Remote failures are absorbed; only local synthesis or IO failures are
// returned, in which case no file is left in outDir.
func (g *Generator) Generate(ctx context.Context, prompt string, duration time.Duration, outDir string) (Result, error) {
	if duration <= 0 {
		return Result{}, fmt.Errorf("generate: duration must be positive, got %v", duration)
	}
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return Result{}, fmt.Errorf("create output dir: %w", err)
	}
	base := filepath.Join(outDir, fileStem())

	var res Result
	if g.remote == nil || !g.remote.HasCredential() {
		log.Println("No remote credential configured, skipping remote generation")
		res.Reason = "no credential"
	} else {
		d, attempts := g.tryRemote(ctx, prompt)
		res.Attempts = attempts
		if d.Kind == musicgen.Success {
			path := base + "." + d.Ext
			err := audio.WriteFile(path, d.Audio)
			if err == nil {
				log.Printf("Remote track ready: %s (%d bytes)", filepath.Base(path), len(d.Audio))
				res.Path = path
				res.Source = SourceRemote
				return res, nil
			}
			log.Printf("Saving remote audio failed: %v", err)
			d.Reason = fmt.Sprintf("save remote audio: %v", err)
		}
		res.Reason = d.Reason
	}

	log.Printf("Falling back to local synth (%s)", res.Reason)
	profile := g.profile(prompt)
	pcm, err := g.render(profile, duration.Seconds())
	if err != nil {
		return Result{}, err
	}

	path := base + ".wav"
	if err := audio.WriteWAVFile(path, pcm); err != nil {
		return Result{}, fmt.Errorf("%w: %w", ErrLocalSynthesis, err)
	}
	log.Printf("Local track ready: %s (mood: %s, %.1fs)", filepath.Base(path), profile.Name, duration.Seconds())

	res.Path = path
	res.Source = SourceLocal
	res.Mood = profile.Name
	return res, nil
}

// tryRemote runs the attempt loop. It returns the final decision and the
// number of calls made; anything but Success means fall back.
func (g *Generator) tryRemote(ctx context.Context, prompt string) (musicgen.Decision, int) {
	var last musicgen.Decision
	for attempt := 1; attempt <= g.attempts; attempt++ {
		log.Printf("Attempting remote generation (%d/%d)...", attempt, g.attempts)
		resp, err := g.remote.Generate(ctx, prompt)
		last = musicgen.Decide(resp, err)

		switch last.Kind {
		case musicgen.Success:
			return last, attempt
		case musicgen.Fallback:
			log.Printf("Remote generation failed: %s", last.Reason)
			return last, attempt
		}

		log.Printf("Remote not ready (%s)", last.Reason)
		if attempt == g.attempts {
			break
		}
		log.Printf("Retrying in %v...", g.backoff)
		if err := g.sleep(ctx, g.backoff); err != nil {
			return musicgen.Decision{Kind: musicgen.Fallback, Reason: fmt.Sprintf("backoff interrupted: %v", err)}, attempt
		}
	}
	return musicgen.Decision{
		Kind:   musicgen.Fallback,
		Reason: fmt.Sprintf("retries exhausted after %d attempts: %s", g.attempts, last.Reason),
	}, g.attempts
}

func (g *Generator) profile(prompt string) mood.Profile {
	if p, ok := mood.Lookup(g.mood); ok {
		return p
	}
	return mood.Classify(prompt)
}

// render runs the local pipeline, turning panics into errors.
func (g *Generator) render(p mood.Profile, seconds float64) (pcm []int16, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %v", ErrLocalSynthesis, r)
		}
	}()
	return synth.Track(synth.NewRand(g.seed), p, seconds), nil
}

// fileStem returns a collision-free file name without extension.
func fileStem() string {
	return "music_" + strings.ReplaceAll(uuid.NewString(), "-", "")
}

func sleepContext(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
