package store

import (
	"strings"
	"time"
)

// ContentType identifies the derivative content format of an artifact.
type ContentType string

const (
	TypePost       ContentType = "post"
	TypeScript     ContentType = "script"
	TypeNewsletter ContentType = "newsletter"
)

var allContentTypes = []ContentType{TypePost, TypeScript, TypeNewsletter}

// AllContentTypes returns the closed set of content types in display order.
func AllContentTypes() []ContentType {
	cp := make([]ContentType, len(allContentTypes))
	copy(cp, allContentTypes)
	return cp
}

// ParseContentType converts a string into a known ContentType.
func ParseContentType(value string) (ContentType, bool) {
	normalized := ContentType(strings.ToLower(strings.TrimSpace(value)))
	for _, t := range allContentTypes {
		if t == normalized {
			return t, true
		}
	}
	return "", false
}

// DisplayName returns the human-readable form used by the CLI and UI.
func (t ContentType) DisplayName() string {
	switch t {
	case TypePost:
		return "Post"
	case TypeScript:
		return "Video Script"
	case TypeNewsletter:
		return "Newsletter"
	default:
		return string(t)
	}
}

// Status represents the lifecycle of a content artifact.
type Status string

const (
	StatusDraft     Status = "draft"
	StatusApproved  Status = "approved"
	StatusScheduled Status = "scheduled"
	StatusPublished Status = "published"
)

var allStatuses = []Status{StatusDraft, StatusApproved, StatusScheduled, StatusPublished}

// AllStatuses returns the ordered list of known statuses.
func AllStatuses() []Status {
	cp := make([]Status, len(allStatuses))
	copy(cp, allStatuses)
	return cp
}

// ParseStatus converts a string into a known Status.
func ParseStatus(value string) (Status, bool) {
	normalized := Status(strings.ToLower(strings.TrimSpace(value)))
	for _, s := range allStatuses {
		if s == normalized {
			return s, true
		}
	}
	return "", false
}

// VoiceNote is a captured thought: uploaded audio or typed text plus its
// transcript and detected themes. Transcribed is false while the transcript
// holds only the fallback marker, so the note can be re-attempted later.
type VoiceNote struct {
	ID          int64
	AudioRef    string
	Transcript  string
	Themes      []string
	Transcribed bool
	CreatedAt   time.Time
}

// Artifact is a piece of generated content derived from a note's transcript.
// ScheduledDate is nil unless Status is StatusScheduled.
type Artifact struct {
	ID            int64
	NoteID        int64
	Type          ContentType
	Body          string
	Status        Status
	Fallback      bool
	ScheduledDate *time.Time
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// Profile holds the user's brand settings.
type Profile struct {
	ID               int64
	Name             string
	Role             string
	Company          string
	Tone             string
	PostingFrequency string
	Interests        []string
	CreatedAt        time.Time
}

// StatusCounts aggregates artifact counts per lifecycle state.
type StatusCounts map[Status]int

// Ready returns the number of artifacts approved or scheduled for posting.
func (c StatusCounts) Ready() int {
	return c[StatusApproved] + c[StatusScheduled]
}

// Total returns the total artifact count.
func (c StatusCounts) Total() int {
	total := 0
	for _, count := range c {
		total += count
	}
	return total
}
