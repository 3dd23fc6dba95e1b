package config

import (
	"fmt"
	"time"

	"github.com/spf13/cast"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/satindergrewal/moodsynth/internal/musicgen"
)

// Env keys.
const (
	KeyToken     = "HF_TOKEN"
	KeyAPIURL    = "MUSICGEN_API_URL"
	KeyAttempts  = "MUSICGEN_ATTEMPTS"
	KeyBackoff   = "MUSICGEN_BACKOFF"
	KeyTimeout   = "MUSICGEN_TIMEOUT"
	KeyOutputDir = "MUSIC_OUTPUT_DIR"
	KeyDuration  = "MUSIC_DURATION"
	KeyPort      = "MUSIC_PORT"
	KeySeed      = "MUSIC_SEED"
	KeyMaxPrompt = "MUSIC_MAX_PROMPT"
)

// Config holds all runtime configuration, loaded from environment variables.
type Config struct {
	// Remote backend
	Token    string
	APIURL   string
	Attempts int
	Backoff  time.Duration // wait after a 503
	Timeout  time.Duration // per-request HTTP timeout

	// Output
	OutputDir string
	Duration  time.Duration // clip length, fractional seconds allowed
	Seed      uint64        // 0 = random per request

	// Server
	Port      int
	MaxPrompt int // max description length in characters
}

var defaults = map[string]any{
	KeyToken:     "",
	KeyAPIURL:    musicgen.DefaultAPIURL,
	KeyAttempts:  3,
	KeyBackoff:   10, // seconds
	KeyTimeout:   120,
	KeyOutputDir: "temp_music",
	KeyDuration:  10.0,
	KeyPort:      5000,
	KeySeed:      0,
	KeyMaxPrompt: 1000,
}

// New returns a viper instance with defaults set and env lookup enabled.
// Callers may bind flags onto it before calling FromViper.
func New() *viper.Viper {
	v := viper.New()
	for k, val := range defaults {
		v.SetDefault(k, val)
	}
	v.AutomaticEnv()
	return v
}

// BindFlag makes flag override key on v when it is set on the command line.
func BindFlag(v *viper.Viper, key string, flag *pflag.Flag) error {
	if flag == nil {
		return fmt.Errorf("bind %s: flag not found", key)
	}
	if err := v.BindPFlag(key, flag); err != nil {
		return fmt.Errorf("bind %s: %w", key, err)
	}
	return nil
}

// Load reads configuration from environment variables with sane defaults.
func Load() Config {
	return FromViper(New())
}

// FromViper builds a Config from v. Values that fail to parse fall back to
// their defaults.
func FromViper(v *viper.Viper) Config {
	return Config{
		Token:    str(v, KeyToken),
		APIURL:   str(v, KeyAPIURL),
		Attempts: positiveInt(v, KeyAttempts),
		Backoff:  time.Duration(positiveInt(v, KeyBackoff)) * time.Second,
		Timeout:  time.Duration(positiveInt(v, KeyTimeout)) * time.Second,

		OutputDir: str(v, KeyOutputDir),
		Duration:  time.Duration(positiveFloat(v, KeyDuration) * float64(time.Second)),
		Seed:      seed(v),

		Port:      positiveInt(v, KeyPort),
		MaxPrompt: positiveInt(v, KeyMaxPrompt),
	}
}

func str(v *viper.Viper, key string) string {
	if s := v.GetString(key); s != "" {
		return s
	}
	return cast.ToString(defaults[key])
}

func positiveInt(v *viper.Viper, key string) int {
	n, err := cast.ToIntE(v.Get(key))
	if err != nil || n <= 0 {
		return cast.ToInt(defaults[key])
	}
	return n
}

func positiveFloat(v *viper.Viper, key string) float64 {
	f, err := cast.ToFloat64E(v.Get(key))
	if err != nil || !(f > 0) {
		return cast.ToFloat64(defaults[key])
	}
	return f
}

func seed(v *viper.Viper) uint64 {
	n, err := cast.ToUint64E(v.Get(KeySeed))
	if err != nil {
		return 0
	}
	return n
}
