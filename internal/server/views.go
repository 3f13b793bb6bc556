package server

import (
	"time"

	"brandstudio/internal/calendar"
	"brandstudio/internal/store"
)

type noteView struct {
	ID          int64    `json:"id"`
	AudioRef    string   `json:"audio_ref,omitempty"`
	Transcript  string   `json:"transcript"`
	Themes      []string `json:"themes,omitempty"`
	Transcribed bool     `json:"transcribed"`
	CreatedAt   string   `json:"created_at"`
}

func newNoteView(note *store.VoiceNote) noteView {
	return noteView{
		ID:          note.ID,
		AudioRef:    note.AudioRef,
		Transcript:  note.Transcript,
		Themes:      note.Themes,
		Transcribed: note.Transcribed,
		CreatedAt:   note.CreatedAt.Format(time.RFC3339),
	}
}

func newNoteViews(notes []*store.VoiceNote) []noteView {
	views := make([]noteView, len(notes))
	for i, note := range notes {
		views[i] = newNoteView(note)
	}
	return views
}

type artifactView struct {
	ID            int64  `json:"id"`
	NoteID        int64  `json:"note_id"`
	Type          string `json:"type"`
	Body          string `json:"body"`
	Status        string `json:"status"`
	Fallback      bool   `json:"fallback"`
	ScheduledDate string `json:"scheduled_date,omitempty"`
	CreatedAt     string `json:"created_at"`
	UpdatedAt     string `json:"updated_at"`
}

func newArtifactView(artifact *store.Artifact) artifactView {
	view := artifactView{
		ID:        artifact.ID,
		NoteID:    artifact.NoteID,
		Type:      string(artifact.Type),
		Body:      artifact.Body,
		Status:    string(artifact.Status),
		Fallback:  artifact.Fallback,
		CreatedAt: artifact.CreatedAt.Format(time.RFC3339),
		UpdatedAt: artifact.UpdatedAt.Format(time.RFC3339),
	}
	if artifact.ScheduledDate != nil {
		view.ScheduledDate = artifact.ScheduledDate.Format("2006-01-02")
	}
	return view
}

func newArtifactViews(artifacts []*store.Artifact) []artifactView {
	views := make([]artifactView, len(artifacts))
	for i, artifact := range artifacts {
		views[i] = newArtifactView(artifact)
	}
	return views
}

type generateOutcomeView struct {
	Type     string        `json:"type"`
	Skipped  bool          `json:"skipped,omitempty"`
	Error    string        `json:"error,omitempty"`
	Artifact *artifactView `json:"artifact,omitempty"`
}

type weekSlotView struct {
	Start     string         `json:"start"`
	Capacity  int            `json:"capacity"`
	Free      int            `json:"free"`
	Artifacts []artifactRef  `json:"artifacts"`
}

type artifactRef struct {
	ArtifactID int64  `json:"artifact_id"`
	NoteID     int64  `json:"note_id"`
	Type       string `json:"type"`
	Date       string `json:"date"`
}

func newWeekSlotViews(slots []calendar.WeekSlot) []weekSlotView {
	views := make([]weekSlotView, len(slots))
	for i, slot := range slots {
		view := weekSlotView{
			Start:     slot.Start.Format("2006-01-02"),
			Capacity:  slot.Capacity,
			Free:      slot.Free(),
			Artifacts: make([]artifactRef, 0, len(slot.Artifacts)),
		}
		for _, entry := range slot.Artifacts {
			view.Artifacts = append(view.Artifacts, artifactRef{
				ArtifactID: entry.ArtifactID,
				NoteID:     entry.NoteID,
				Type:       entry.Type,
				Date:       entry.Date.Format("2006-01-02"),
			})
		}
		views[i] = view
	}
	return views
}

type profileView struct {
	Name             string   `json:"name"`
	Role             string   `json:"role,omitempty"`
	Company          string   `json:"company,omitempty"`
	Tone             string   `json:"tone,omitempty"`
	PostingFrequency string   `json:"posting_frequency,omitempty"`
	Interests        []string `json:"interests,omitempty"`
}
