package main

import (
	"log"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/satindergrewal/moodsynth/internal/config"
	"github.com/satindergrewal/moodsynth/internal/generator"
	"github.com/satindergrewal/moodsynth/internal/musicgen"
)

// v carries defaults, env values and bound flags for every command.
var v = config.New()

var rootCmd = &cobra.Command{
	Use:           "moodsynth",
	Short:         "Turn a mood description into a short music clip",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Printf("moodsynth: %v", err)
		os.Exit(1)
	}
}

// must aborts on flag wiring mistakes made at init time.
func must(err error) {
	if err != nil {
		log.Fatalf("moodsynth: %v", err)
	}
}

// bindFlag ties a flag to a config key on v.
func bindFlag(key string, flag *pflag.Flag) {
	must(config.BindFlag(v, key, flag))
}

// newGenerator builds the remote-then-local generator from cfg.
func newGenerator(cfg config.Config, opts generator.Options) *generator.Generator {
	client := musicgen.NewClient(cfg.APIURL, cfg.Token, cfg.Timeout)
	opts.Attempts = cfg.Attempts
	opts.Backoff = cfg.Backoff
	if opts.Seed == 0 {
		opts.Seed = cfg.Seed
	}
	return generator.New(client, opts)
}
