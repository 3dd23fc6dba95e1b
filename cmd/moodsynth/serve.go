package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/satindergrewal/moodsynth/internal/api"
	"github.com/satindergrewal/moodsynth/internal/config"
	"github.com/satindergrewal/moodsynth/internal/generator"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP music generation server",
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().Int("port", 5000, "listen port")
	bindFlag(config.KeyPort, serveCmd.Flags().Lookup("port"))
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg := config.FromViper(v)

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if cfg.Token == "" {
		log.Println("HF_TOKEN not set, every request will use the local synth")
	}

	router := api.NewRouter(&api.MusicController{
		Generator: newGenerator(cfg, generator.Options{}),
		OutputDir: cfg.OutputDir,
		Duration:  cfg.Duration,
		MaxPrompt: cfg.MaxPrompt,
	})

	addr := fmt.Sprintf(":%d", cfg.Port)
	srv := &http.Server{Addr: addr, Handler: router}

	errCh := make(chan error, 1)
	go func() {
		log.Printf("moodsynth listening on %s (output: %s)", addr, cfg.OutputDir)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("HTTP server: %w", err)
	case <-ctx.Done():
	}
	log.Println("Shutting down...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	return srv.Shutdown(shutdownCtx)
}
