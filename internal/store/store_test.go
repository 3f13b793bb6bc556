package store_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"brandstudio/internal/services"
	"brandstudio/internal/store"
	"brandstudio/internal/testsupport"
)

func TestOpenCreatesSchemaAndRoundTripsNotes(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	st := testsupport.MustOpenStore(t, cfg)

	ctx := context.Background()
	note, err := st.CreateNote(ctx, "audio/abc.webm", "we shipped the migration early", []string{"leadership"}, true)
	if err != nil {
		t.Fatalf("CreateNote failed: %v", err)
	}
	if note.ID == 0 {
		t.Fatal("expected note ID to be assigned")
	}

	fetched, err := st.GetNote(ctx, note.ID)
	if err != nil {
		t.Fatalf("GetNote failed: %v", err)
	}
	if fetched.Transcript != note.Transcript {
		t.Fatalf("unexpected transcript: %q", fetched.Transcript)
	}
	if fetched.AudioRef != "audio/abc.webm" {
		t.Fatalf("unexpected audio ref: %q", fetched.AudioRef)
	}
	if len(fetched.Themes) != 1 || fetched.Themes[0] != "leadership" {
		t.Fatalf("unexpected themes: %v", fetched.Themes)
	}
	if !fetched.Transcribed {
		t.Fatal("expected transcribed flag to persist")
	}
}

func TestCreateNoteRejectsEmptyTranscript(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	st := testsupport.MustOpenStore(t, cfg)

	if _, err := st.CreateNote(context.Background(), "", "", nil, false); !errors.Is(err, services.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestGetNoteMissingReturnsNotFound(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	st := testsupport.MustOpenStore(t, cfg)

	if _, err := st.GetNote(context.Background(), 9999); !errors.Is(err, services.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestUpdateNoteTranscriptReplacesFallback(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	st := testsupport.MustOpenStore(t, cfg)

	ctx := context.Background()
	note, err := st.CreateNote(ctx, "audio/raw.webm", "[transcription unavailable]", nil, false)
	if err != nil {
		t.Fatalf("CreateNote failed: %v", err)
	}

	if err := st.UpdateNoteTranscript(ctx, note.ID, "real transcript text", []string{"career growth"}, true); err != nil {
		t.Fatalf("UpdateNoteTranscript failed: %v", err)
	}

	fetched, err := st.GetNote(ctx, note.ID)
	if err != nil {
		t.Fatalf("GetNote failed: %v", err)
	}
	if fetched.Transcript != "real transcript text" || !fetched.Transcribed {
		t.Fatalf("expected updated transcript, got %#v", fetched)
	}
}

func TestListNotesNewestFirst(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	st := testsupport.MustOpenStore(t, cfg)

	testsupport.NewNote(t, st, "first note")
	testsupport.NewNote(t, st, "second note")

	notes, err := st.ListNotes(context.Background())
	if err != nil {
		t.Fatalf("ListNotes failed: %v", err)
	}
	if len(notes) != 2 {
		t.Fatalf("expected 2 notes, got %d", len(notes))
	}
	if notes[0].Transcript != "second note" {
		t.Fatalf("expected newest note first, got %q", notes[0].Transcript)
	}
}

func TestThemeCountsSkipsUntranscribedNotes(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	st := testsupport.MustOpenStore(t, cfg)

	ctx := context.Background()
	testsupport.NewNote(t, st, "one", "leadership")
	testsupport.NewNote(t, st, "two", "leadership", "innovation")
	if _, err := st.CreateNote(ctx, "", "[transcription unavailable]", []string{"leadership"}, false); err != nil {
		t.Fatalf("CreateNote failed: %v", err)
	}

	counts, err := st.ThemeCounts(ctx)
	if err != nil {
		t.Fatalf("ThemeCounts failed: %v", err)
	}
	if counts["leadership"] != 2 {
		t.Fatalf("expected leadership count 2, got %d", counts["leadership"])
	}
	if counts["innovation"] != 1 {
		t.Fatalf("expected innovation count 1, got %d", counts["innovation"])
	}
}

func TestProfileRoundTripAndReplace(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	st := testsupport.MustOpenStore(t, cfg)

	ctx := context.Background()
	if _, err := st.LoadProfile(ctx); !errors.Is(err, services.ErrNotFound) {
		t.Fatalf("expected ErrNotFound before save, got %v", err)
	}

	first := &store.Profile{Name: "Emily", Role: "Engineering Manager", Tone: "conversational", Interests: []string{"leadership"}}
	if err := st.SaveProfile(ctx, first); err != nil {
		t.Fatalf("SaveProfile failed: %v", err)
	}

	second := &store.Profile{Name: "Emily", Role: "Director", PostingFrequency: "weekly"}
	if err := st.SaveProfile(ctx, second); err != nil {
		t.Fatalf("SaveProfile replace failed: %v", err)
	}

	loaded, err := st.LoadProfile(ctx)
	if err != nil {
		t.Fatalf("LoadProfile failed: %v", err)
	}
	if loaded.Role != "Director" {
		t.Fatalf("expected latest profile, got role %q", loaded.Role)
	}
	if loaded.CreatedAt.IsZero() || time.Since(loaded.CreatedAt) > time.Minute {
		t.Fatalf("unexpected created at: %v", loaded.CreatedAt)
	}
}
