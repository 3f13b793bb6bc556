package pipeline_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"brandstudio/internal/generation"
	"brandstudio/internal/pipeline"
	"brandstudio/internal/services"
	"brandstudio/internal/store"
	"brandstudio/internal/testsupport"
	"brandstudio/internal/transcription"
)

type stubTranscriber struct {
	result transcription.Result
	err    error
	calls  int
}

func (s *stubTranscriber) Transcribe(ctx context.Context, audio []byte, filename string) (transcription.Result, error) {
	s.calls++
	return s.result, s.err
}

type stubGenerator struct {
	drafts   map[store.ContentType]generation.Result
	genErrs  map[store.ContentType]error
	themes   []string
	genCalls int
}

func (s *stubGenerator) Generate(ctx context.Context, contentType store.ContentType, source string, opts generation.Options) (generation.Result, error) {
	s.genCalls++
	if err, ok := s.genErrs[contentType]; ok {
		return generation.Result{}, err
	}
	if draft, ok := s.drafts[contentType]; ok {
		return draft, nil
	}
	return generation.Result{Text: "draft for " + string(contentType)}, nil
}

func (s *stubGenerator) DetectThemes(ctx context.Context, text string) []string {
	return s.themes
}

func newPipeline(t *testing.T, transcriber *stubTranscriber, generator *stubGenerator) (*pipeline.Pipeline, *store.Store, string) {
	t.Helper()
	cfg := testsupport.NewConfig(t)
	st := testsupport.MustOpenStore(t, cfg)
	return pipeline.New(cfg, st, transcriber, generator, nil), st, cfg.Paths.AudioDir
}

func TestCaptureAudioPersistsNoteAndAudio(t *testing.T) {
	transcriber := &stubTranscriber{result: transcription.Result{Text: "we shipped early"}}
	generator := &stubGenerator{themes: []string{"leadership"}}
	p, st, audioDir := newPipeline(t, transcriber, generator)

	note, err := p.CaptureAudio(context.Background(), []byte("audio-bytes"), "memo.webm")
	if err != nil {
		t.Fatalf("CaptureAudio failed: %v", err)
	}
	if !note.Transcribed || note.Transcript != "we shipped early" {
		t.Fatalf("unexpected note: %#v", note)
	}
	if len(note.Themes) != 1 || note.Themes[0] != "leadership" {
		t.Fatalf("unexpected themes: %v", note.Themes)
	}
	if note.AudioRef == "" || filepath.Ext(note.AudioRef) != ".webm" {
		t.Fatalf("unexpected audio ref: %q", note.AudioRef)
	}

	data, err := os.ReadFile(filepath.Join(audioDir, note.AudioRef))
	if err != nil {
		t.Fatalf("read stored audio: %v", err)
	}
	if string(data) != "audio-bytes" {
		t.Fatalf("unexpected audio contents: %q", data)
	}

	fetched, err := st.GetNote(context.Background(), note.ID)
	if err != nil {
		t.Fatalf("GetNote failed: %v", err)
	}
	if fetched.Transcript != "we shipped early" {
		t.Fatalf("unexpected persisted transcript: %q", fetched.Transcript)
	}
}

func TestCaptureAudioEmptyPayloadIsInvalid(t *testing.T) {
	p, _, _ := newPipeline(t, &stubTranscriber{}, &stubGenerator{})

	if _, err := p.CaptureAudio(context.Background(), nil, "memo.webm"); !errors.Is(err, services.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestCaptureAudioFallbackSkipsThemeDetection(t *testing.T) {
	transcriber := &stubTranscriber{result: transcription.Result{Text: transcription.FallbackText, Fallback: true}}
	generator := &stubGenerator{themes: []string{"should-not-appear"}}
	p, _, _ := newPipeline(t, transcriber, generator)

	note, err := p.CaptureAudio(context.Background(), []byte("audio"), "memo.webm")
	if err != nil {
		t.Fatalf("CaptureAudio failed: %v", err)
	}
	if note.Transcribed {
		t.Fatal("expected fallback note to be untranscribed")
	}
	if len(note.Themes) != 0 {
		t.Fatalf("expected no themes on fallback note, got %v", note.Themes)
	}
	if note.AudioRef == "" {
		t.Fatal("expected fallback note to keep its audio")
	}
}

func TestCaptureTextDetectsThemes(t *testing.T) {
	generator := &stubGenerator{themes: []string{"strategy"}}
	p, _, _ := newPipeline(t, &stubTranscriber{}, generator)

	note, err := p.CaptureText(context.Background(), "quarterly roadmap thinking")
	if err != nil {
		t.Fatalf("CaptureText failed: %v", err)
	}
	if !note.Transcribed || note.AudioRef != "" {
		t.Fatalf("unexpected note: %#v", note)
	}
	if len(note.Themes) != 1 || note.Themes[0] != "strategy" {
		t.Fatalf("unexpected themes: %v", note.Themes)
	}
}

func TestRetranscribeUpgradesFallbackNote(t *testing.T) {
	transcriber := &stubTranscriber{result: transcription.Result{Text: transcription.FallbackText, Fallback: true}}
	generator := &stubGenerator{themes: []string{"innovation"}}
	p, st, _ := newPipeline(t, transcriber, generator)

	ctx := context.Background()
	note, err := p.CaptureAudio(ctx, []byte("audio"), "memo.webm")
	if err != nil {
		t.Fatalf("CaptureAudio failed: %v", err)
	}

	transcriber.result = transcription.Result{Text: "now it worked"}
	updated, err := p.Retranscribe(ctx, note.ID)
	if err != nil {
		t.Fatalf("Retranscribe failed: %v", err)
	}
	if !updated.Transcribed || updated.Transcript != "now it worked" {
		t.Fatalf("unexpected updated note: %#v", updated)
	}

	persisted, err := st.GetNote(ctx, note.ID)
	if err != nil {
		t.Fatalf("GetNote failed: %v", err)
	}
	if persisted.Transcript != "now it worked" {
		t.Fatalf("expected transcript persisted, got %q", persisted.Transcript)
	}
}

func TestRetranscribeLeavesTranscribedNotesAlone(t *testing.T) {
	transcriber := &stubTranscriber{result: transcription.Result{Text: "already fine"}}
	p, _, _ := newPipeline(t, transcriber, &stubGenerator{})

	ctx := context.Background()
	note, err := p.CaptureAudio(ctx, []byte("audio"), "memo.webm")
	if err != nil {
		t.Fatalf("CaptureAudio failed: %v", err)
	}

	calls := transcriber.calls
	if _, err := p.Retranscribe(ctx, note.ID); err != nil {
		t.Fatalf("Retranscribe failed: %v", err)
	}
	if transcriber.calls != calls {
		t.Fatal("expected no transcription attempt for transcribed note")
	}
}
