package pipeline_test

import (
	"context"
	"errors"
	"testing"

	"brandstudio/internal/generation"
	"brandstudio/internal/services"
	"brandstudio/internal/store"
	"brandstudio/internal/testsupport"
)

func TestFanOutGeneratesAllTypes(t *testing.T) {
	generator := &stubGenerator{}
	p, st, _ := newPipeline(t, &stubTranscriber{}, generator)

	ctx := context.Background()
	note := testsupport.NewNote(t, st, "we shipped the migration early")

	result, err := p.FanOut(ctx, note.ID, nil, generation.Options{})
	if err != nil {
		t.Fatalf("FanOut failed: %v", err)
	}
	if len(result.Generated()) != 3 {
		t.Fatalf("expected 3 artifacts, got %d", len(result.Generated()))
	}

	artifacts, err := st.ArtifactsForNote(ctx, note.ID)
	if err != nil {
		t.Fatalf("ArtifactsForNote failed: %v", err)
	}
	seen := make(map[store.ContentType]bool)
	for _, artifact := range artifacts {
		if artifact.Status != store.StatusDraft {
			t.Fatalf("expected draft status, got %s", artifact.Status)
		}
		seen[artifact.Type] = true
	}
	if len(seen) != 3 {
		t.Fatalf("expected one artifact per type, got %v", seen)
	}
}

func TestFanOutIsolatesPerTypeFailures(t *testing.T) {
	generator := &stubGenerator{
		genErrs: map[store.ContentType]error{
			store.TypeScript: errors.New("script generation blew up"),
		},
	}
	p, st, _ := newPipeline(t, &stubTranscriber{}, generator)

	ctx := context.Background()
	note := testsupport.NewNote(t, st, "transcript")

	result, err := p.FanOut(ctx, note.ID, nil, generation.Options{})
	if err != nil {
		t.Fatalf("FanOut failed: %v", err)
	}
	if len(result.Generated()) != 2 {
		t.Fatalf("expected 2 artifacts despite failure, got %d", len(result.Generated()))
	}
	failed := result.Failed()
	if len(failed) != 1 || failed[0].Type != store.TypeScript {
		t.Fatalf("unexpected failures: %#v", failed)
	}
}

func TestFanOutSkipsCoveredTypes(t *testing.T) {
	generator := &stubGenerator{}
	p, st, _ := newPipeline(t, &stubTranscriber{}, generator)

	ctx := context.Background()
	note := testsupport.NewNote(t, st, "transcript")
	testsupport.NewDraft(t, st, note.ID, store.TypePost, "existing post")

	result, err := p.FanOut(ctx, note.ID, nil, generation.Options{})
	if err != nil {
		t.Fatalf("FanOut failed: %v", err)
	}
	if len(result.Generated()) != 2 {
		t.Fatalf("expected 2 new artifacts, got %d", len(result.Generated()))
	}

	var skipped int
	for _, outcome := range result.Outcomes {
		if outcome.Skipped {
			skipped++
			if outcome.Type != store.TypePost {
				t.Fatalf("unexpected skipped type: %s", outcome.Type)
			}
		}
	}
	if skipped != 1 {
		t.Fatalf("expected 1 skipped type, got %d", skipped)
	}

	artifacts, err := st.ArtifactsForNote(ctx, note.ID)
	if err != nil {
		t.Fatalf("ArtifactsForNote failed: %v", err)
	}
	if len(artifacts) != 3 {
		t.Fatalf("expected 3 total artifacts after re-run, got %d", len(artifacts))
	}
}

func TestFanOutRejectsFallbackTranscript(t *testing.T) {
	p, st, _ := newPipeline(t, &stubTranscriber{}, &stubGenerator{})

	ctx := context.Background()
	note, err := st.CreateNote(ctx, "audio/x.webm", "[transcription unavailable]", nil, false)
	if err != nil {
		t.Fatalf("CreateNote failed: %v", err)
	}

	if _, err := p.FanOut(ctx, note.ID, nil, generation.Options{}); !errors.Is(err, services.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestFanOutUnknownNote(t *testing.T) {
	p, _, _ := newPipeline(t, &stubTranscriber{}, &stubGenerator{})

	if _, err := p.FanOut(context.Background(), 777, nil, generation.Options{}); !errors.Is(err, services.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestFanOutUnknownTypeOutcome(t *testing.T) {
	p, st, _ := newPipeline(t, &stubTranscriber{}, &stubGenerator{})

	note := testsupport.NewNote(t, st, "transcript")
	result, err := p.FanOut(context.Background(), note.ID, []store.ContentType{"tweetstorm"}, generation.Options{})
	if err != nil {
		t.Fatalf("FanOut failed: %v", err)
	}
	if len(result.Outcomes) != 1 || !errors.Is(result.Outcomes[0].Err, services.ErrInvalidInput) {
		t.Fatalf("expected invalid type outcome, got %#v", result.Outcomes)
	}
}
