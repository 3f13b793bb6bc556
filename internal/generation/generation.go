// Package generation turns note transcripts into content drafts for each
// supported format, degrading to static templates when no generation service
// is reachable.
package generation

import (
	"context"
	"log/slog"
	"strings"

	"brandstudio/internal/logging"
	"brandstudio/internal/services"
	"brandstudio/internal/services/openai"
	"brandstudio/internal/store"
)

// ChatClient is the subset of the OpenAI client used for content generation.
type ChatClient interface {
	Available() bool
	Complete(ctx context.Context, systemPrompt, userPrompt string) (string, error)
	CompleteJSON(ctx context.Context, systemPrompt, userPrompt string) (string, error)
}

// Options tunes a single generation request. Zero values fall back to the
// generator's configured defaults.
type Options struct {
	Tone   string
	Length string
}

// Result carries a generated draft body. Fallback reports whether the body
// came from a static template rather than the live service.
type Result struct {
	Text     string
	Fallback bool
}

// Generator produces content drafts from transcripts.
type Generator struct {
	client ChatClient
	tone   string
	logger *slog.Logger
}

// NewGenerator builds a generator around the given chat client. The tone is
// the profile default used when a request doesn't override it.
func NewGenerator(client ChatClient, tone string, logger *slog.Logger) *Generator {
	if tone == "" {
		tone = "conversational"
	}
	if logger == nil {
		logger = logging.NewNop()
	}
	return &Generator{
		client: client,
		tone:   tone,
		logger: logging.WithComponent(logger, "generation"),
	}
}

// Generate drafts content of the given type from the source text. Service
// outages and missing credentials produce a fallback template instead of an
// error; only invalid input fails.
func (g *Generator) Generate(ctx context.Context, contentType store.ContentType, source string, opts Options) (Result, error) {
	source = strings.TrimSpace(source)
	if source == "" {
		return Result{}, services.Wrap(services.ErrInvalidInput, "generation", "generate", "source text is empty", nil)
	}
	if _, ok := store.ParseContentType(string(contentType)); !ok {
		return Result{}, services.Wrap(services.ErrInvalidInput, "generation", "generate",
			"unknown content type "+string(contentType), nil)
	}

	tone := opts.Tone
	if tone == "" {
		tone = g.tone
	}

	if g.client == nil || !g.client.Available() {
		g.logger.Info("no generation credential, using template",
			logging.String("type", string(contentType)))
		return Result{Text: fallbackBody(contentType, source), Fallback: true}, nil
	}

	text, err := g.client.Complete(ctx, systemPrompt(contentType, tone)+lengthDirective(opts.Length), source)
	if err != nil {
		g.logger.Warn("generation failed, using template",
			logging.String("type", string(contentType)), logging.Error(err))
		return Result{Text: fallbackBody(contentType, source), Fallback: true}, nil
	}

	text = strings.TrimSpace(text)
	if text == "" {
		g.logger.Warn("generation returned empty draft, using template",
			logging.String("type", string(contentType)))
		return Result{Text: fallbackBody(contentType, source), Fallback: true}, nil
	}

	return Result{Text: text}, nil
}

// maxThemes bounds how many themes a single note can carry.
const maxThemes = 3

type themeResponse struct {
	Themes []string `json:"themes"`
}

// DetectThemes classifies the main themes of a transcript. The live path asks
// the LLM for a JSON list; any failure falls back to keyword matching. Theme
// detection never fails a capture, so no error is returned.
func (g *Generator) DetectThemes(ctx context.Context, text string) []string {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil
	}

	if g.client != nil && g.client.Available() {
		raw, err := g.client.CompleteJSON(ctx, themeSystemPrompt, text)
		if err == nil {
			var parsed themeResponse
			if decodeErr := openai.DecodeJSON(raw, &parsed); decodeErr == nil {
				themes := normalizeThemes(parsed.Themes)
				if len(themes) > 0 {
					return themes
				}
			}
		} else {
			g.logger.Warn("theme detection failed, using keyword matching", logging.Error(err))
		}
	}

	return keywordThemes(text)
}

func normalizeThemes(themes []string) []string {
	var out []string
	seen := make(map[string]bool)
	for _, theme := range themes {
		theme = strings.ToLower(strings.TrimSpace(theme))
		if theme == "" || seen[theme] {
			continue
		}
		seen[theme] = true
		out = append(out, theme)
		if len(out) == maxThemes {
			break
		}
	}
	return out
}
