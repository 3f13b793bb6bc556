package calendar

import (
	"context"
	"time"
)

// WeekSlot describes one week of the posting calendar.
type WeekSlot struct {
	Start     time.Time
	Capacity  int
	Artifacts []SlotEntry
}

// SlotEntry is one scheduled artifact inside a week slot.
type SlotEntry struct {
	ArtifactID int64
	NoteID     int64
	Type       string
	Date       time.Time
}

// Free returns the remaining capacity of the slot.
func (w WeekSlot) Free() int {
	free := w.Capacity - len(w.Artifacts)
	if free < 0 {
		return 0
	}
	return free
}

// Slots returns the next weeks of the calendar with their scheduled
// artifacts. A weeks value <= 0 uses the configured horizon.
func (s *Scheduler) Slots(ctx context.Context, weeks int) ([]WeekSlot, error) {
	if weeks <= 0 {
		weeks = s.horizon
	}

	start := startOfWeek(s.now())
	scheduled, err := s.store.ScheduledBetween(ctx, start, start.AddDate(0, 0, 7*weeks))
	if err != nil {
		return nil, err
	}

	slots := make([]WeekSlot, weeks)
	for i := range slots {
		slots[i] = WeekSlot{Start: start.AddDate(0, 0, 7*i), Capacity: s.capacity}
	}

	for _, artifact := range scheduled {
		if artifact.ScheduledDate == nil {
			continue
		}
		index := int(artifact.ScheduledDate.Sub(start).Hours()) / (24 * 7)
		if index < 0 || index >= weeks {
			continue
		}
		slots[index].Artifacts = append(slots[index].Artifacts, SlotEntry{
			ArtifactID: artifact.ID,
			NoteID:     artifact.NoteID,
			Type:       string(artifact.Type),
			Date:       *artifact.ScheduledDate,
		})
	}

	return slots, nil
}
