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

func TestCreateArtifactRequiresExistingNote(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	st := testsupport.MustOpenStore(t, cfg)

	ctx := context.Background()
	if _, err := st.CreateArtifact(ctx, 4242, store.TypePost, "orphan body", false); !errors.Is(err, services.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	artifacts, err := st.ListArtifacts(ctx, store.ArtifactFilter{})
	if err != nil {
		t.Fatalf("ListArtifacts failed: %v", err)
	}
	if len(artifacts) != 0 {
		t.Fatalf("expected no artifacts written, got %d", len(artifacts))
	}
}

func TestCreateArtifactRejectsUnknownType(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	st := testsupport.MustOpenStore(t, cfg)

	note := testsupport.NewNote(t, st, "transcript")
	if _, err := st.CreateArtifact(context.Background(), note.ID, "tweetstorm", "body", false); !errors.Is(err, services.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestArtifactLifecycle(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	st := testsupport.MustOpenStore(t, cfg)

	ctx := context.Background()
	note := testsupport.NewNote(t, st, "we shipped early")
	artifact := testsupport.NewDraft(t, st, note.ID, store.TypeNewsletter, "draft body")

	if artifact.Status != store.StatusDraft {
		t.Fatalf("expected new artifact to be draft, got %s", artifact.Status)
	}

	artifact.Status = store.StatusApproved
	artifact.Body = "edited body"
	if err := st.UpdateArtifact(ctx, artifact); err != nil {
		t.Fatalf("UpdateArtifact failed: %v", err)
	}

	when := time.Date(2026, time.September, 7, 0, 0, 0, 0, time.UTC)
	artifact.Status = store.StatusScheduled
	artifact.ScheduledDate = &when
	if err := st.UpdateArtifact(ctx, artifact); err != nil {
		t.Fatalf("schedule update failed: %v", err)
	}

	fetched, err := st.GetArtifact(ctx, artifact.ID)
	if err != nil {
		t.Fatalf("GetArtifact failed: %v", err)
	}
	if fetched.Status != store.StatusScheduled || fetched.ScheduledDate == nil {
		t.Fatalf("unexpected artifact state: %#v", fetched)
	}
	if !fetched.ScheduledDate.Equal(when) {
		t.Fatalf("unexpected scheduled date: %v", fetched.ScheduledDate)
	}
	if fetched.Body != "edited body" {
		t.Fatalf("unexpected body: %q", fetched.Body)
	}
}

func TestUpdateArtifactScheduledNeedsDate(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	st := testsupport.MustOpenStore(t, cfg)

	note := testsupport.NewNote(t, st, "transcript")
	artifact := testsupport.NewDraft(t, st, note.ID, store.TypePost, "body")

	artifact.Status = store.StatusScheduled
	artifact.ScheduledDate = nil
	if err := st.UpdateArtifact(context.Background(), artifact); !errors.Is(err, services.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestListArtifactsFilters(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	st := testsupport.MustOpenStore(t, cfg)

	ctx := context.Background()
	note := testsupport.NewNote(t, st, "transcript")
	testsupport.NewDraft(t, st, note.ID, store.TypePost, "post body")
	script := testsupport.NewDraft(t, st, note.ID, store.TypeScript, "script body")

	script.Status = store.StatusApproved
	if err := st.UpdateArtifact(ctx, script); err != nil {
		t.Fatalf("UpdateArtifact failed: %v", err)
	}

	byType, err := st.ListArtifacts(ctx, store.ArtifactFilter{Type: store.TypePost})
	if err != nil {
		t.Fatalf("ListArtifacts by type failed: %v", err)
	}
	if len(byType) != 1 || byType[0].Type != store.TypePost {
		t.Fatalf("unexpected type filter result: %#v", byType)
	}

	byStatus, err := st.ListArtifacts(ctx, store.ArtifactFilter{Status: store.StatusApproved})
	if err != nil {
		t.Fatalf("ListArtifacts by status failed: %v", err)
	}
	if len(byStatus) != 1 || byStatus[0].ID != script.ID {
		t.Fatalf("unexpected status filter result: %#v", byStatus)
	}

	forNote, err := st.ArtifactsForNote(ctx, note.ID)
	if err != nil {
		t.Fatalf("ArtifactsForNote failed: %v", err)
	}
	if len(forNote) != 2 {
		t.Fatalf("expected 2 artifacts for note, got %d", len(forNote))
	}
}

func TestScheduledBetween(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	st := testsupport.MustOpenStore(t, cfg)

	ctx := context.Background()
	note := testsupport.NewNote(t, st, "transcript")

	schedule := func(day int) {
		artifact := testsupport.NewDraft(t, st, note.ID, store.TypePost, "body")
		when := time.Date(2026, time.September, day, 0, 0, 0, 0, time.UTC)
		artifact.Status = store.StatusScheduled
		artifact.ScheduledDate = &when
		if err := st.UpdateArtifact(ctx, artifact); err != nil {
			t.Fatalf("schedule day %d failed: %v", day, err)
		}
	}
	schedule(1)
	schedule(8)
	schedule(15)

	from := time.Date(2026, time.September, 7, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, time.September, 14, 0, 0, 0, 0, time.UTC)
	within, err := st.ScheduledBetween(ctx, from, to)
	if err != nil {
		t.Fatalf("ScheduledBetween failed: %v", err)
	}
	if len(within) != 1 {
		t.Fatalf("expected 1 scheduled artifact in window, got %d", len(within))
	}
	if within[0].ScheduledDate.Day() != 8 {
		t.Fatalf("unexpected scheduled day: %v", within[0].ScheduledDate)
	}
}

func TestArtifactStatusCounts(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	st := testsupport.MustOpenStore(t, cfg)

	ctx := context.Background()
	note := testsupport.NewNote(t, st, "transcript")
	testsupport.NewDraft(t, st, note.ID, store.TypePost, "a")
	testsupport.NewDraft(t, st, note.ID, store.TypePost, "b")
	approved := testsupport.NewDraft(t, st, note.ID, store.TypeScript, "c")

	approved.Status = store.StatusApproved
	if err := st.UpdateArtifact(ctx, approved); err != nil {
		t.Fatalf("UpdateArtifact failed: %v", err)
	}

	counts, err := st.ArtifactStatusCounts(ctx)
	if err != nil {
		t.Fatalf("ArtifactStatusCounts failed: %v", err)
	}
	if counts[store.StatusDraft] != 2 || counts[store.StatusApproved] != 1 {
		t.Fatalf("unexpected counts: %#v", counts)
	}
	if counts.Ready() != 1 || counts.Total() != 3 {
		t.Fatalf("unexpected aggregates: ready=%d total=%d", counts.Ready(), counts.Total())
	}
}

func TestDeleteArtifact(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	st := testsupport.MustOpenStore(t, cfg)

	ctx := context.Background()
	note := testsupport.NewNote(t, st, "transcript")
	artifact := testsupport.NewDraft(t, st, note.ID, store.TypePost, "body")

	if err := st.DeleteArtifact(ctx, artifact.ID); err != nil {
		t.Fatalf("DeleteArtifact failed: %v", err)
	}
	if err := st.DeleteArtifact(ctx, artifact.ID); !errors.Is(err, services.ErrNotFound) {
		t.Fatalf("expected ErrNotFound on second delete, got %v", err)
	}
}
