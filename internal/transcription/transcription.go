// Package transcription converts captured audio into text, degrading to a
// fallback marker when no speech-to-text service is reachable.
package transcription

import (
	"context"
	"log/slog"
	"strings"

	"brandstudio/internal/logging"
	"brandstudio/internal/services"
)

// FallbackText marks a note whose audio could not be transcribed. Notes
// carrying it keep their audio so transcription can be retried later.
const FallbackText = "[transcription unavailable]"

// Result carries the transcript for a note. Fallback reports whether the
// text is the placeholder marker rather than real speech.
type Result struct {
	Text     string
	Fallback bool
}

// SpeechClient is the subset of the OpenAI client used for transcription.
type SpeechClient interface {
	Available() bool
	Transcribe(ctx context.Context, audio []byte, filename string) (string, error)
}

// Service turns audio payloads into transcripts.
type Service struct {
	client SpeechClient
	logger *slog.Logger
}

// NewService builds a transcription service around the given speech client.
func NewService(client SpeechClient, logger *slog.Logger) *Service {
	if logger == nil {
		logger = logging.NewNop()
	}
	return &Service{
		client: client,
		logger: logging.WithComponent(logger, "transcription"),
	}
}

// Transcribe converts audio to text. Service outages and missing credentials
// produce a fallback result, not an error; only invalid input fails.
func (s *Service) Transcribe(ctx context.Context, audio []byte, filename string) (Result, error) {
	if len(audio) == 0 {
		return Result{}, services.Wrap(services.ErrInvalidInput, "transcription", "transcribe", "audio payload is empty", nil)
	}

	if s.client == nil || !s.client.Available() {
		s.logger.Info("no transcription credential, using fallback marker")
		return Result{Text: FallbackText, Fallback: true}, nil
	}

	text, err := s.client.Transcribe(ctx, audio, filename)
	if err != nil {
		s.logger.Warn("transcription failed, using fallback marker", logging.Error(err))
		return Result{Text: FallbackText, Fallback: true}, nil
	}

	text = strings.TrimSpace(text)
	if text == "" {
		s.logger.Warn("transcription returned empty text, using fallback marker")
		return Result{Text: FallbackText, Fallback: true}, nil
	}

	return Result{Text: text}, nil
}

// IsFallback reports whether a transcript is the fallback marker.
func IsFallback(transcript string) bool {
	return strings.TrimSpace(transcript) == FallbackText
}
