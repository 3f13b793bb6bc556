package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"brandstudio/internal/services"
)

// SaveProfile stores the brand profile, replacing any existing one. A single
// profile row is kept; the newest save wins.
func (s *Store) SaveProfile(ctx context.Context, profile *Profile) error {
	if profile == nil || profile.Name == "" {
		return services.Wrap(services.ErrInvalidInput, "store", "save_profile", "profile name is required", nil)
	}

	interestsJSON, err := marshalStrings(profile.Interests)
	if err != nil {
		return fmt.Errorf("encode interests: %w", err)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin profile tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, "DELETE FROM user_profiles"); err != nil {
		return fmt.Errorf("clear profile: %w", err)
	}

	now := time.Now().UTC()
	result, err := tx.ExecContext(ctx,
		`INSERT INTO user_profiles (name, role, company, tone, posting_frequency, interests_json, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		profile.Name, nullableString(profile.Role), nullableString(profile.Company),
		nullableString(profile.Tone), nullableString(profile.PostingFrequency),
		interestsJSON, now.Format(time.RFC3339Nano))
	if err != nil {
		return fmt.Errorf("insert profile: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("profile insert id: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit profile: %w", err)
	}

	profile.ID = id
	profile.CreatedAt = now
	return nil
}

// LoadProfile returns the saved brand profile.
func (s *Store) LoadProfile(ctx context.Context) (*Profile, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, name, role, company, tone, posting_frequency, interests_json, created_at
		 FROM user_profiles ORDER BY id DESC LIMIT 1`)

	var (
		profile       Profile
		role          sql.NullString
		company       sql.NullString
		tone          sql.NullString
		frequency     sql.NullString
		interestsJSON sql.NullString
		createdAt     string
	)
	err := row.Scan(&profile.ID, &profile.Name, &role, &company, &tone, &frequency,
		&interestsJSON, &createdAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, services.Wrap(services.ErrNotFound, "store", "load_profile", "no profile saved", nil)
	}
	if err != nil {
		return nil, fmt.Errorf("load profile: %w", err)
	}

	profile.Role = role.String
	profile.Company = company.String
	profile.Tone = tone.String
	profile.PostingFrequency = frequency.String

	if interestsJSON.Valid && interestsJSON.String != "" {
		interests, decodeErr := unmarshalStrings(interestsJSON.String)
		if decodeErr != nil {
			return nil, fmt.Errorf("decode interests: %w", decodeErr)
		}
		profile.Interests = interests
	}

	created, err := parseTimeString(createdAt)
	if err != nil {
		return nil, fmt.Errorf("parse created_at: %w", err)
	}
	profile.CreatedAt = created
	return &profile, nil
}
