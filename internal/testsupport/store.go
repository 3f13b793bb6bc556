package testsupport

import (
	"context"
	"testing"

	"brandstudio/internal/config"
	"brandstudio/internal/store"
)

// MustOpenStore opens a store.Store for tests and registers cleanup.
func MustOpenStore(t testing.TB, cfg *config.Config) *store.Store {
	t.Helper()

	st, err := store.Open(cfg)
	if err != nil {
		t.Fatalf("store.Open: %v", err)
	}
	t.Cleanup(func() {
		_ = st.Close()
	})
	return st
}

// NewNote creates a transcribed note for tests using the provided store.
func NewNote(t testing.TB, st *store.Store, transcript string, themes ...string) *store.VoiceNote {
	t.Helper()

	note, err := st.CreateNote(context.Background(), "", transcript, themes, true)
	if err != nil {
		t.Fatalf("store.CreateNote: %v", err)
	}
	return note
}

// NewDraft creates a draft artifact for tests using the provided store.
func NewDraft(t testing.TB, st *store.Store, noteID int64, contentType store.ContentType, body string) *store.Artifact {
	t.Helper()

	artifact, err := st.CreateArtifact(context.Background(), noteID, contentType, body, false)
	if err != nil {
		t.Fatalf("store.CreateArtifact: %v", err)
	}
	return artifact
}
