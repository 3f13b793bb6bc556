// Package calendar assigns approved content to posting slots under a weekly
// capacity, looking ahead a bounded number of weeks.
package calendar

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"brandstudio/internal/config"
	"brandstudio/internal/logging"
	"brandstudio/internal/services"
	"brandstudio/internal/store"
)

// Scheduler places artifacts into weekly posting slots. Weeks run Monday
// through Sunday in the scheduler's local time.
type Scheduler struct {
	store    *store.Store
	capacity int
	horizon  int
	now      func() time.Time
	logger   *slog.Logger
}

// Option customizes a Scheduler.
type Option func(*Scheduler)

// WithNow overrides the scheduler clock.
func WithNow(now func() time.Time) Option {
	return func(s *Scheduler) {
		s.now = now
	}
}

// NewScheduler builds a scheduler from the calendar configuration.
func NewScheduler(cfg *config.Config, st *store.Store, logger *slog.Logger, opts ...Option) *Scheduler {
	if logger == nil {
		logger = logging.NewNop()
	}
	s := &Scheduler{
		store:    st,
		capacity: cfg.Calendar.WeeklyCapacity,
		horizon:  cfg.Calendar.HorizonWeeks,
		now:      time.Now,
		logger:   logging.WithComponent(logger, "calendar"),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Schedule finds the first week with free capacity and assigns the artifact
// to it. When every week inside the horizon is full, the artifact is left
// untouched and ErrCapacityExhausted is returned.
func (s *Scheduler) Schedule(ctx context.Context, artifactID int64) (*store.Artifact, error) {
	artifact, err := s.schedulable(ctx, artifactID)
	if err != nil {
		return nil, err
	}

	today := startOfDay(s.now())
	for week := 0; week < s.horizon; week++ {
		weekStart := startOfWeek(today).AddDate(0, 0, 7*week)
		count, countErr := s.weekCount(ctx, weekStart)
		if countErr != nil {
			return nil, countErr
		}
		if count >= s.capacity {
			continue
		}

		slotDate := weekStart
		if week == 0 && today.After(weekStart) {
			slotDate = today
		}
		return s.assign(ctx, artifact, slotDate)
	}

	return nil, services.Wrap(services.ErrCapacityExhausted, "calendar", "schedule",
		fmt.Sprintf("no free slot within %d weeks", s.horizon), nil)
}

// ScheduleAt assigns the artifact to a caller-chosen date, still enforcing
// that date's weekly capacity.
func (s *Scheduler) ScheduleAt(ctx context.Context, artifactID int64, date time.Time) (*store.Artifact, error) {
	artifact, err := s.schedulable(ctx, artifactID)
	if err != nil {
		return nil, err
	}

	date = startOfDay(date)
	if date.Before(startOfDay(s.now())) {
		return nil, services.Wrap(services.ErrInvalidInput, "calendar", "schedule_at",
			"date is in the past", nil)
	}

	count, err := s.weekCount(ctx, startOfWeek(date))
	if err != nil {
		return nil, err
	}
	if count >= s.capacity {
		return nil, services.Wrap(services.ErrCapacityExhausted, "calendar", "schedule_at",
			fmt.Sprintf("week of %s is full", startOfWeek(date).Format("2006-01-02")), nil)
	}

	return s.assign(ctx, artifact, date)
}

// Move frees the artifact's current slot and re-runs the greedy search.
func (s *Scheduler) Move(ctx context.Context, artifactID int64) (*store.Artifact, error) {
	artifact, err := s.store.GetArtifact(ctx, artifactID)
	if err != nil {
		return nil, err
	}
	if artifact.Status != store.StatusScheduled {
		return nil, services.Wrap(services.ErrInvalidInput, "calendar", "move",
			fmt.Sprintf("artifact %d is not scheduled", artifactID), nil)
	}

	artifact.Status = store.StatusApproved
	artifact.ScheduledDate = nil
	if err := s.store.UpdateArtifact(ctx, artifact); err != nil {
		return nil, err
	}
	return s.Schedule(ctx, artifactID)
}

// Unschedule clears the artifact's slot and returns it to approved.
func (s *Scheduler) Unschedule(ctx context.Context, artifactID int64) (*store.Artifact, error) {
	artifact, err := s.store.GetArtifact(ctx, artifactID)
	if err != nil {
		return nil, err
	}
	if artifact.Status != store.StatusScheduled {
		return nil, services.Wrap(services.ErrInvalidInput, "calendar", "unschedule",
			fmt.Sprintf("artifact %d is not scheduled", artifactID), nil)
	}

	artifact.Status = store.StatusApproved
	artifact.ScheduledDate = nil
	if err := s.store.UpdateArtifact(ctx, artifact); err != nil {
		return nil, err
	}

	s.logger.Info("unscheduled artifact", logging.Int64("artifact_id", artifactID))
	return artifact, nil
}

func (s *Scheduler) schedulable(ctx context.Context, artifactID int64) (*store.Artifact, error) {
	artifact, err := s.store.GetArtifact(ctx, artifactID)
	if err != nil {
		return nil, err
	}
	switch artifact.Status {
	case store.StatusDraft, store.StatusApproved:
		return artifact, nil
	case store.StatusScheduled:
		return nil, services.Wrap(services.ErrConflict, "calendar", "schedule",
			fmt.Sprintf("artifact %d is already scheduled", artifactID), nil)
	default:
		return nil, services.Wrap(services.ErrConflict, "calendar", "schedule",
			fmt.Sprintf("artifact %d is %s", artifactID, artifact.Status), nil)
	}
}

func (s *Scheduler) assign(ctx context.Context, artifact *store.Artifact, date time.Time) (*store.Artifact, error) {
	artifact.Status = store.StatusScheduled
	artifact.ScheduledDate = &date
	if err := s.store.UpdateArtifact(ctx, artifact); err != nil {
		return nil, err
	}

	s.logger.Info("scheduled artifact",
		logging.Int64("artifact_id", artifact.ID),
		logging.String("date", date.Format("2006-01-02")))
	return artifact, nil
}

func (s *Scheduler) weekCount(ctx context.Context, weekStart time.Time) (int, error) {
	scheduled, err := s.store.ScheduledBetween(ctx, weekStart, weekStart.AddDate(0, 0, 7))
	if err != nil {
		return 0, err
	}
	return len(scheduled), nil
}

// startOfWeek returns the Monday of the week containing t.
func startOfWeek(t time.Time) time.Time {
	t = startOfDay(t)
	weekday := int(t.Weekday())
	if weekday == 0 {
		weekday = 7
	}
	return t.AddDate(0, 0, -(weekday - 1))
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
