package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"brandstudio/internal/services"
)

// ArtifactFilter narrows ListArtifacts results. Zero values match everything.
type ArtifactFilter struct {
	Type   ContentType
	Status Status
	NoteID int64
}

// CreateArtifact inserts a generated artifact for an existing note. The note
// must exist; nothing is written when it doesn't.
func (s *Store) CreateArtifact(ctx context.Context, noteID int64, contentType ContentType, body string, fallback bool) (*Artifact, error) {
	if body == "" {
		return nil, services.Wrap(services.ErrInvalidInput, "store", "create_artifact", "body is empty", nil)
	}
	if _, ok := ParseContentType(string(contentType)); !ok {
		return nil, services.Wrap(services.ErrInvalidInput, "store", "create_artifact",
			fmt.Sprintf("unknown content type %q", contentType), nil)
	}

	var exists int
	err := s.db.QueryRowContext(ctx, "SELECT COUNT(1) FROM voice_notes WHERE id = ?", noteID).Scan(&exists)
	if err != nil {
		return nil, fmt.Errorf("check note %d: %w", noteID, err)
	}
	if exists == 0 {
		return nil, services.Wrap(services.ErrNotFound, "store", "create_artifact",
			fmt.Sprintf("note %d not found", noteID), nil)
	}

	now := time.Now().UTC()
	result, err := s.db.ExecContext(ctx,
		`INSERT INTO content_artifacts (note_id, type, body, status, fallback, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		noteID, string(contentType), body, string(StatusDraft), boolToInt(fallback),
		now.Format(time.RFC3339Nano), now.Format(time.RFC3339Nano))
	if err != nil {
		if isConstraintError(err) {
			return nil, services.Wrap(services.ErrConflict, "store", "create_artifact",
				fmt.Sprintf("artifact for note %d conflicts with existing row", noteID), err)
		}
		return nil, fmt.Errorf("insert artifact: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("artifact insert id: %w", err)
	}

	return &Artifact{
		ID:        id,
		NoteID:    noteID,
		Type:      contentType,
		Body:      body,
		Status:    StatusDraft,
		Fallback:  fallback,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// GetArtifact retrieves an artifact by ID.
func (s *Store) GetArtifact(ctx context.Context, id int64) (*Artifact, error) {
	row := s.db.QueryRowContext(ctx, selectArtifact+" WHERE id = ?", id)

	artifact, err := scanArtifact(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, services.Wrap(services.ErrNotFound, "store", "get_artifact",
			fmt.Sprintf("artifact %d not found", id), nil)
	}
	if err != nil {
		return nil, fmt.Errorf("get artifact %d: %w", id, err)
	}
	return artifact, nil
}

// UpdateArtifact persists body, status, fallback flag, and scheduled date.
func (s *Store) UpdateArtifact(ctx context.Context, artifact *Artifact) error {
	if artifact == nil {
		return services.Wrap(services.ErrInvalidInput, "store", "update_artifact", "artifact is nil", nil)
	}
	if _, ok := ParseStatus(string(artifact.Status)); !ok {
		return services.Wrap(services.ErrInvalidInput, "store", "update_artifact",
			fmt.Sprintf("unknown status %q", artifact.Status), nil)
	}
	if artifact.Status == StatusScheduled && artifact.ScheduledDate == nil {
		return services.Wrap(services.ErrInvalidInput, "store", "update_artifact",
			"scheduled artifact needs a date", nil)
	}

	artifact.UpdatedAt = time.Now().UTC()
	result, err := s.db.ExecContext(ctx,
		`UPDATE content_artifacts
		 SET body = ?, status = ?, fallback = ?, scheduled_date = ?, updated_at = ?
		 WHERE id = ?`,
		artifact.Body, string(artifact.Status), boolToInt(artifact.Fallback),
		nullableTime(artifact.ScheduledDate), artifact.UpdatedAt.Format(time.RFC3339Nano),
		artifact.ID)
	if err != nil {
		return fmt.Errorf("update artifact %d: %w", artifact.ID, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("update artifact %d rows: %w", artifact.ID, err)
	}
	if affected == 0 {
		return services.Wrap(services.ErrNotFound, "store", "update_artifact",
			fmt.Sprintf("artifact %d not found", artifact.ID), nil)
	}
	return nil
}

// DeleteArtifact removes an artifact by ID.
func (s *Store) DeleteArtifact(ctx context.Context, id int64) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM content_artifacts WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("delete artifact %d: %w", id, err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete artifact %d rows: %w", id, err)
	}
	if affected == 0 {
		return services.Wrap(services.ErrNotFound, "store", "delete_artifact",
			fmt.Sprintf("artifact %d not found", id), nil)
	}
	return nil
}

// ListArtifacts returns artifacts matching the filter, newest first.
func (s *Store) ListArtifacts(ctx context.Context, filter ArtifactFilter) ([]*Artifact, error) {
	query := selectArtifact
	var (
		clauses []string
		args    []any
	)
	if filter.Type != "" {
		clauses = append(clauses, "type = ?")
		args = append(args, string(filter.Type))
	}
	if filter.Status != "" {
		clauses = append(clauses, "status = ?")
		args = append(args, string(filter.Status))
	}
	if filter.NoteID != 0 {
		clauses = append(clauses, "note_id = ?")
		args = append(args, filter.NoteID)
	}
	if len(clauses) > 0 {
		query += " WHERE " + strings.Join(clauses, " AND ")
	}
	query += " ORDER BY id DESC"

	return s.queryArtifacts(ctx, query, args...)
}

// ArtifactsForNote returns every artifact derived from the given note.
func (s *Store) ArtifactsForNote(ctx context.Context, noteID int64) ([]*Artifact, error) {
	return s.queryArtifacts(ctx,
		selectArtifact+" WHERE note_id = ? ORDER BY id ASC", noteID)
}

// ScheduledBetween returns scheduled artifacts with dates in [from, to),
// ordered by scheduled date.
func (s *Store) ScheduledBetween(ctx context.Context, from, to time.Time) ([]*Artifact, error) {
	return s.queryArtifacts(ctx,
		selectArtifact+` WHERE status = ? AND scheduled_date >= ? AND scheduled_date < ?
		 ORDER BY scheduled_date ASC, id ASC`,
		string(StatusScheduled),
		from.UTC().Format(time.RFC3339Nano), to.UTC().Format(time.RFC3339Nano))
}

// ArtifactStatusCounts aggregates artifact counts per status.
func (s *Store) ArtifactStatusCounts(ctx context.Context) (StatusCounts, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT status, COUNT(1) FROM content_artifacts GROUP BY status")
	if err != nil {
		return nil, fmt.Errorf("status counts: %w", err)
	}
	defer func() { _ = rows.Close() }()

	counts := make(StatusCounts)
	for rows.Next() {
		var (
			status string
			count  int
		)
		if scanErr := rows.Scan(&status, &count); scanErr != nil {
			return nil, fmt.Errorf("scan status count: %w", scanErr)
		}
		counts[Status(status)] = count
	}
	return counts, rows.Err()
}

const selectArtifact = `SELECT id, note_id, type, body, status, fallback, scheduled_date, created_at, updated_at
 FROM content_artifacts`

func (s *Store) queryArtifacts(ctx context.Context, query string, args ...any) ([]*Artifact, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query artifacts: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var artifacts []*Artifact
	for rows.Next() {
		artifact, scanErr := scanArtifact(rows)
		if scanErr != nil {
			return nil, fmt.Errorf("scan artifact: %w", scanErr)
		}
		artifacts = append(artifacts, artifact)
	}
	return artifacts, rows.Err()
}

func scanArtifact(row rowScanner) (*Artifact, error) {
	var (
		artifact  Artifact
		fallback  int
		scheduled sql.NullString
		createdAt string
		updatedAt string
	)
	if err := row.Scan(&artifact.ID, &artifact.NoteID, &artifact.Type, &artifact.Body,
		&artifact.Status, &fallback, &scheduled, &createdAt, &updatedAt); err != nil {
		return nil, err
	}

	artifact.Fallback = fallback != 0

	if scheduled.Valid && scheduled.String != "" {
		when, err := parseTimeString(scheduled.String)
		if err != nil {
			return nil, fmt.Errorf("parse scheduled_date: %w", err)
		}
		artifact.ScheduledDate = &when
	}

	created, err := parseTimeString(createdAt)
	if err != nil {
		return nil, fmt.Errorf("parse created_at: %w", err)
	}
	artifact.CreatedAt = created

	updated, err := parseTimeString(updatedAt)
	if err != nil {
		return nil, fmt.Errorf("parse updated_at: %w", err)
	}
	artifact.UpdatedAt = updated

	return &artifact, nil
}

func isConstraintError(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "constraint") || strings.Contains(msg, "unique")
}
