// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"archfolio/internal/models"
)

// JobApplicationStore manages submissions from the public careers form.
type JobApplicationStore struct {
	db *sql.DB
}

// NewJobApplicationStore returns a store backed by the given database.
func NewJobApplicationStore(db *sql.DB) *JobApplicationStore {
	return &JobApplicationStore{db: db}
}

// List returns applications newest first, with position titles resolved.
// With positionID set, only that position's applications are returned.
func (s *JobApplicationStore) List(positionID *uuid.UUID) ([]*models.JobApplication, error) {
	query := `
		SELECT a.id, a.position_id, a.name, a.email, a.cover_note, a.cv_key,
		       a.created_at, p.title
		FROM job_applications a
		JOIN job_positions p ON p.id = a.position_id`
	args := []any{}
	if positionID != nil {
		query += ` WHERE a.position_id = $1`
		args = append(args, *positionID)
	}
	query += ` ORDER BY a.created_at DESC, a.id DESC`

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("list job applications: %w", err)
	}
	defer rows.Close()

	var apps []*models.JobApplication
	for rows.Next() {
		a := &models.JobApplication{}
		if err := rows.Scan(&a.ID, &a.PositionID, &a.Name, &a.Email,
			&a.CoverNote, &a.CVKey, &a.CreatedAt, &a.PositionTitle); err != nil {
			return nil, fmt.Errorf("scan job application: %w", err)
		}
		apps = append(apps, a)
	}
	return apps, rows.Err()
}

// FindByID returns an application, or nil if it does not exist.
func (s *JobApplicationStore) FindByID(id uuid.UUID) (*models.JobApplication, error) {
	a := &models.JobApplication{}
	err := s.db.QueryRow(`
		SELECT a.id, a.position_id, a.name, a.email, a.cover_note, a.cv_key,
		       a.created_at, p.title
		FROM job_applications a
		JOIN job_positions p ON p.id = a.position_id
		WHERE a.id = $1
	`, id).Scan(&a.ID, &a.PositionID, &a.Name, &a.Email,
		&a.CoverNote, &a.CVKey, &a.CreatedAt, &a.PositionTitle)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find job application: %w", err)
	}
	return a, nil
}

// Create records a new application. cvKey may be nil when the applicant
// attached no CV.
func (s *JobApplicationStore) Create(positionID uuid.UUID, name, email, coverNote string, cvKey *string) (*models.JobApplication, error) {
	a := &models.JobApplication{}
	err := s.db.QueryRow(`
		INSERT INTO job_applications (position_id, name, email, cover_note, cv_key)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, position_id, name, email, cover_note, cv_key, created_at
	`, positionID, name, email, coverNote, cvKey).Scan(
		&a.ID, &a.PositionID, &a.Name, &a.Email, &a.CoverNote, &a.CVKey, &a.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("create job application: %w", err)
	}
	return a, nil
}

// Delete removes an application row. The caller deletes the stored CV
// first, best-effort.
func (s *JobApplicationStore) Delete(id uuid.UUID) error {
	if _, err := s.db.Exec(`DELETE FROM job_applications WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete job application: %w", err)
	}
	return nil
}

// CountByPosition returns how many applications each position has
// received, keyed by position id.
func (s *JobApplicationStore) CountByPosition() (map[uuid.UUID]int, error) {
	rows, err := s.db.Query(`
		SELECT position_id, COUNT(*) FROM job_applications GROUP BY position_id`)
	if err != nil {
		return nil, fmt.Errorf("count job applications: %w", err)
	}
	defer rows.Close()

	counts := make(map[uuid.UUID]int)
	for rows.Next() {
		var id uuid.UUID
		var n int
		if err := rows.Scan(&id, &n); err != nil {
			return nil, fmt.Errorf("scan application count: %w", err)
		}
		counts[id] = n
	}
	return counts, rows.Err()
}
