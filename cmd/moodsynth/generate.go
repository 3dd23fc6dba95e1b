package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/satindergrewal/moodsynth/internal/config"
	"github.com/satindergrewal/moodsynth/internal/generator"
	"github.com/satindergrewal/moodsynth/internal/mood"
	"github.com/satindergrewal/moodsynth/internal/playback"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate one clip and print its path",
	RunE:  runGenerate,
}

func init() {
	f := generateCmd.Flags()
	f.String("prompt", "", "mood description")
	f.Float64("duration", 10, "clip length in seconds")
	f.String("out", "temp_music", "output directory")
	f.Uint64("seed", 0, "random seed for local synthesis (0 = random)")
	f.String("mood", "", "force a mood profile: "+strings.Join(mood.Names(), ", "))
	f.Bool("local", false, "skip the remote backend")
	f.Bool("play", false, "play the clip after writing it (WAV only)")
	must(generateCmd.MarkFlagRequired("prompt"))

	bindFlag(config.KeyDuration, f.Lookup("duration"))
	bindFlag(config.KeyOutputDir, f.Lookup("out"))
	bindFlag(config.KeySeed, f.Lookup("seed"))
	rootCmd.AddCommand(generateCmd)
}

func runGenerate(cmd *cobra.Command, args []string) error {
	cfg := config.FromViper(v)
	prompt, _ := cmd.Flags().GetString("prompt")
	moodName, _ := cmd.Flags().GetString("mood")
	local, _ := cmd.Flags().GetBool("local")
	play, _ := cmd.Flags().GetBool("play")

	if strings.TrimSpace(prompt) == "" {
		return errors.New("prompt must not be empty")
	}
	if moodName != "" {
		if _, ok := mood.Lookup(moodName); !ok {
			return fmt.Errorf("unknown mood %q (want one of %s)", moodName, strings.Join(mood.Names(), ", "))
		}
	}
	if local {
		cfg.Token = ""
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	gen := newGenerator(cfg, generator.Options{Mood: moodName})
	res, err := gen.Generate(ctx, prompt, cfg.Duration, cfg.OutputDir)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), res.Path)

	if !play {
		return nil
	}
	if filepath.Ext(res.Path) != ".wav" {
		log.Printf("Skipping playback: %s is not a WAV file", res.Path)
		return nil
	}
	return playback.PlayFile(ctx, res.Path)
}
