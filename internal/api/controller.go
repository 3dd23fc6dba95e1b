package api

import (
	"context"
	"log"
	"net/http"
	"path/filepath"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/gin-gonic/gin"

	"github.com/satindergrewal/moodsynth/internal/generator"
)

// Generator produces an audio file for a prompt.
type Generator interface {
	Generate(ctx context.Context, prompt string, duration time.Duration, outDir string) (generator.Result, error)
}

// MusicController serves music generation and the generated files.
type MusicController struct {
	Generator Generator
	OutputDir string
	Duration  time.Duration
	MaxPrompt int
}

type generateMusicRequest struct {
	Description string `json:"description"`
}

// GenerateMusic handles POST /generate-music.
func (c *MusicController) GenerateMusic(ctx *gin.Context) {
	var req generateMusicRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	desc := strings.TrimSpace(req.Description)
	if desc == "" {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "No description provided"})
		return
	}
	if c.MaxPrompt > 0 && utf8.RuneCountInString(desc) > c.MaxPrompt {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Description is too long"})
		return
	}

	res, err := c.Generator.Generate(ctx.Request.Context(), desc, c.Duration, c.OutputDir)
	if err != nil {
		log.Printf("Music generation failed: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Music generation failed"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"audio_url": "/music/" + filepath.Base(res.Path),
		"source":    res.Source,
		"mood":      res.Mood,
	})
}

// ServeMusic handles GET /music/:filename.
func (c *MusicController) ServeMusic(ctx *gin.Context) {
	name := filepath.Base(ctx.Param("filename"))
	if name == "." || name == "/" || strings.HasPrefix(name, ".") {
		ctx.JSON(http.StatusNotFound, gin.H{"error": "not found"})
		return
	}
	ctx.File(filepath.Join(c.OutputDir, name))
}

// Health handles GET /health.
func Health(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, gin.H{"status": "ok"})
}
