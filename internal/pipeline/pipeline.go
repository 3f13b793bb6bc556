// Package pipeline orchestrates note capture and content fan-out: audio in,
// transcript persisted, drafts generated per format.
package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"brandstudio/internal/config"
	"brandstudio/internal/generation"
	"brandstudio/internal/logging"
	"brandstudio/internal/services"
	"brandstudio/internal/store"
	"brandstudio/internal/transcription"
)

// Transcriber converts audio into a transcript result.
type Transcriber interface {
	Transcribe(ctx context.Context, audio []byte, filename string) (transcription.Result, error)
}

// Generator drafts content and classifies themes.
type Generator interface {
	Generate(ctx context.Context, contentType store.ContentType, source string, opts generation.Options) (generation.Result, error)
	DetectThemes(ctx context.Context, text string) []string
}

// Pipeline wires capture, transcription, generation, and persistence.
type Pipeline struct {
	cfg         *config.Config
	store       *store.Store
	transcriber Transcriber
	generator   Generator
	logger      *slog.Logger
}

// New builds a pipeline. A nil logger disables logging.
func New(cfg *config.Config, st *store.Store, transcriber Transcriber, generator Generator, logger *slog.Logger) *Pipeline {
	if logger == nil {
		logger = logging.NewNop()
	}
	return &Pipeline{
		cfg:         cfg,
		store:       st,
		transcriber: transcriber,
		generator:   generator,
		logger:      logging.WithComponent(logger, "pipeline"),
	}
}

// CaptureAudio stores the audio payload, transcribes it, and persists the
// resulting note. Transcription outages degrade to a fallback note that keeps
// its audio for later retries.
func (p *Pipeline) CaptureAudio(ctx context.Context, audio []byte, filename string) (*store.VoiceNote, error) {
	if len(audio) == 0 {
		return nil, services.Wrap(services.ErrInvalidInput, "pipeline", "capture_audio", "audio payload is empty", nil)
	}

	audioRef, err := p.saveAudio(audio, filename)
	if err != nil {
		return nil, err
	}

	result, err := p.transcriber.Transcribe(ctx, audio, filename)
	if err != nil {
		return nil, err
	}

	var themes []string
	if !result.Fallback {
		themes = p.generator.DetectThemes(ctx, result.Text)
	}

	note, err := p.store.CreateNote(ctx, audioRef, result.Text, themes, !result.Fallback)
	if err != nil {
		return nil, err
	}

	p.logger.Info("captured audio note",
		logging.Int64("note_id", note.ID),
		logging.Bool("fallback", result.Fallback),
		logging.Int("themes", len(themes)))
	return note, nil
}

// CaptureText persists a typed note directly, skipping transcription.
func (p *Pipeline) CaptureText(ctx context.Context, text string) (*store.VoiceNote, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, services.Wrap(services.ErrInvalidInput, "pipeline", "capture_text", "text is empty", nil)
	}

	themes := p.generator.DetectThemes(ctx, text)
	note, err := p.store.CreateNote(ctx, "", text, themes, true)
	if err != nil {
		return nil, err
	}

	p.logger.Info("captured text note",
		logging.Int64("note_id", note.ID),
		logging.Int("themes", len(themes)))
	return note, nil
}

// Retranscribe re-attempts transcription for a note that previously fell back
// to the placeholder marker. Notes without stored audio cannot be retried.
func (p *Pipeline) Retranscribe(ctx context.Context, noteID int64) (*store.VoiceNote, error) {
	note, err := p.store.GetNote(ctx, noteID)
	if err != nil {
		return nil, err
	}
	if note.Transcribed {
		return note, nil
	}
	if note.AudioRef == "" {
		return nil, services.Wrap(services.ErrInvalidInput, "pipeline", "retranscribe",
			fmt.Sprintf("note %d has no stored audio", noteID), nil)
	}

	audioPath := filepath.Join(p.cfg.Paths.AudioDir, note.AudioRef)
	audio, err := os.ReadFile(audioPath)
	if err != nil {
		return nil, fmt.Errorf("read stored audio %s: %w", audioPath, err)
	}

	result, err := p.transcriber.Transcribe(ctx, audio, note.AudioRef)
	if err != nil {
		return nil, err
	}
	if result.Fallback {
		p.logger.Info("retranscription still unavailable", logging.Int64("note_id", noteID))
		return note, nil
	}

	themes := p.generator.DetectThemes(ctx, result.Text)
	if err := p.store.UpdateNoteTranscript(ctx, noteID, result.Text, themes, true); err != nil {
		return nil, err
	}

	p.logger.Info("retranscribed note", logging.Int64("note_id", noteID))
	return p.store.GetNote(ctx, noteID)
}

func (p *Pipeline) saveAudio(audio []byte, filename string) (string, error) {
	if err := os.MkdirAll(p.cfg.Paths.AudioDir, 0o755); err != nil {
		return "", fmt.Errorf("create audio dir: %w", err)
	}

	ext := filepath.Ext(filename)
	if ext == "" {
		ext = ".webm"
	}
	name := uuid.NewString() + ext
	target := filepath.Join(p.cfg.Paths.AudioDir, name)
	if err := os.WriteFile(target, audio, 0o644); err != nil {
		return "", fmt.Errorf("write audio %s: %w", target, err)
	}
	return name, nil
}
