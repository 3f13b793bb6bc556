package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"brandstudio/internal/services"
)

// CreateNote inserts a new voice note and returns it with its assigned ID.
func (s *Store) CreateNote(ctx context.Context, audioRef, transcript string, themes []string, transcribed bool) (*VoiceNote, error) {
	if transcript == "" {
		return nil, services.Wrap(services.ErrInvalidInput, "store", "create_note", "transcript is empty", nil)
	}

	now := time.Now().UTC()
	themesJSON, err := marshalStrings(themes)
	if err != nil {
		return nil, fmt.Errorf("encode themes: %w", err)
	}

	result, err := s.db.ExecContext(ctx,
		`INSERT INTO voice_notes (audio_ref, transcript, themes_json, transcribed, created_at)
		 VALUES (?, ?, ?, ?, ?)`,
		nullableString(audioRef), transcript, themesJSON, boolToInt(transcribed),
		now.Format(time.RFC3339Nano))
	if err != nil {
		return nil, fmt.Errorf("insert note: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("note insert id: %w", err)
	}

	return &VoiceNote{
		ID:          id,
		AudioRef:    audioRef,
		Transcript:  transcript,
		Themes:      themes,
		Transcribed: transcribed,
		CreatedAt:   now,
	}, nil
}

// GetNote retrieves a note by ID.
func (s *Store) GetNote(ctx context.Context, id int64) (*VoiceNote, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, audio_ref, transcript, themes_json, transcribed, created_at
		 FROM voice_notes WHERE id = ?`, id)

	note, err := scanNote(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, services.Wrap(services.ErrNotFound, "store", "get_note",
			fmt.Sprintf("note %d not found", id), nil)
	}
	if err != nil {
		return nil, fmt.Errorf("get note %d: %w", id, err)
	}
	return note, nil
}

// ListNotes returns all notes ordered newest first.
func (s *Store) ListNotes(ctx context.Context) ([]*VoiceNote, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, audio_ref, transcript, themes_json, transcribed, created_at
		 FROM voice_notes ORDER BY id DESC`)
	if err != nil {
		return nil, fmt.Errorf("list notes: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var notes []*VoiceNote
	for rows.Next() {
		note, scanErr := scanNote(rows)
		if scanErr != nil {
			return nil, fmt.Errorf("scan note: %w", scanErr)
		}
		notes = append(notes, note)
	}
	return notes, rows.Err()
}

// UpdateNoteTranscript replaces a note's transcript and themes, typically
// after a successful re-transcription of a fallback note.
func (s *Store) UpdateNoteTranscript(ctx context.Context, id int64, transcript string, themes []string, transcribed bool) error {
	if transcript == "" {
		return services.Wrap(services.ErrInvalidInput, "store", "update_note", "transcript is empty", nil)
	}

	themesJSON, err := marshalStrings(themes)
	if err != nil {
		return fmt.Errorf("encode themes: %w", err)
	}

	result, err := s.db.ExecContext(ctx,
		`UPDATE voice_notes SET transcript = ?, themes_json = ?, transcribed = ? WHERE id = ?`,
		transcript, themesJSON, boolToInt(transcribed), id)
	if err != nil {
		return fmt.Errorf("update note %d: %w", id, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("update note %d rows: %w", id, err)
	}
	if affected == 0 {
		return services.Wrap(services.ErrNotFound, "store", "update_note",
			fmt.Sprintf("note %d not found", id), nil)
	}
	return nil
}

// ThemeCounts tallies how often each theme appears across transcribed notes.
func (s *Store) ThemeCounts(ctx context.Context) (map[string]int, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT themes_json FROM voice_notes WHERE transcribed = 1 AND themes_json IS NOT NULL")
	if err != nil {
		return nil, fmt.Errorf("theme counts: %w", err)
	}
	defer func() { _ = rows.Close() }()

	counts := make(map[string]int)
	for rows.Next() {
		var raw string
		if scanErr := rows.Scan(&raw); scanErr != nil {
			return nil, fmt.Errorf("scan themes: %w", scanErr)
		}
		themes, decodeErr := unmarshalStrings(raw)
		if decodeErr != nil {
			continue
		}
		for _, theme := range themes {
			counts[theme]++
		}
	}
	return counts, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanNote(row rowScanner) (*VoiceNote, error) {
	var (
		note       VoiceNote
		audioRef   sql.NullString
		themesJSON sql.NullString
		transcribe int
		createdAt  string
	)
	if err := row.Scan(&note.ID, &audioRef, &note.Transcript, &themesJSON, &transcribe, &createdAt); err != nil {
		return nil, err
	}

	note.AudioRef = audioRef.String
	note.Transcribed = transcribe != 0

	if themesJSON.Valid && themesJSON.String != "" {
		themes, err := unmarshalStrings(themesJSON.String)
		if err != nil {
			return nil, fmt.Errorf("decode themes: %w", err)
		}
		note.Themes = themes
	}

	created, err := parseTimeString(createdAt)
	if err != nil {
		return nil, fmt.Errorf("parse created_at: %w", err)
	}
	note.CreatedAt = created
	return &note, nil
}

func marshalStrings(values []string) (any, error) {
	if len(values) == 0 {
		return nil, nil
	}
	data, err := json.Marshal(values)
	if err != nil {
		return nil, err
	}
	return string(data), nil
}

func unmarshalStrings(raw string) ([]string, error) {
	var values []string
	if err := json.Unmarshal([]byte(raw), &values); err != nil {
		return nil, err
	}
	return values, nil
}
