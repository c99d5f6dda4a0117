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

const jobPositionCols = `id, title, department, location, employment_type,
	description, apply_email, display_order, is_open, created_at, updated_at`

// JobPositionStore manages career openings.
type JobPositionStore struct {
	db *sql.DB
}

// NewJobPositionStore returns a store backed by the given database.
func NewJobPositionStore(db *sql.DB) *JobPositionStore {
	return &JobPositionStore{db: db}
}

func scanJobPosition(row interface{ Scan(...any) error }) (*models.JobPosition, error) {
	j := &models.JobPosition{}
	err := row.Scan(&j.ID, &j.Title, &j.Department, &j.Location,
		&j.EmploymentType, &j.Description, &j.ApplyEmail,
		&j.DisplayOrder, &j.IsOpen, &j.CreatedAt, &j.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return j, nil
}

// List returns positions in display order. With onlyOpen set, closed
// positions are excluded.
func (s *JobPositionStore) List(onlyOpen bool) ([]*models.JobPosition, error) {
	query := `SELECT ` + jobPositionCols + ` FROM job_positions`
	if onlyOpen {
		query += ` WHERE is_open`
	}
	query += ` ORDER BY display_order ASC, id ASC`

	rows, err := s.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("list job positions: %w", err)
	}
	defer rows.Close()

	var positions []*models.JobPosition
	for rows.Next() {
		j, err := scanJobPosition(rows)
		if err != nil {
			return nil, fmt.Errorf("scan job position: %w", err)
		}
		positions = append(positions, j)
	}
	return positions, rows.Err()
}

// FindByID returns a position, or nil if it does not exist.
func (s *JobPositionStore) FindByID(id uuid.UUID) (*models.JobPosition, error) {
	j, err := scanJobPosition(s.db.QueryRow(
		`SELECT `+jobPositionCols+` FROM job_positions WHERE id = $1`, id))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find job position: %w", err)
	}
	return j, nil
}

// Create appends a new position at the end of the careers list.
func (s *JobPositionStore) Create(title, department, location string, empType models.EmploymentType) (*models.JobPosition, error) {
	j, err := scanJobPosition(s.db.QueryRow(`
		INSERT INTO job_positions (title, department, location, employment_type, display_order)
		VALUES ($1, $2, $3, $4,
			(SELECT COALESCE(MAX(display_order) + 1, 0) FROM job_positions))
		RETURNING `+jobPositionCols,
		title, department, location, empType))
	if err != nil {
		return nil, fmt.Errorf("create job position: %w", err)
	}
	return j, nil
}

// Update applies a partial update and returns the new state, or nil if
// the position does not exist.
func (s *JobPositionStore) Update(id uuid.UUID, p *models.JobPositionPatch) (*models.JobPosition, error) {
	tx, err := s.db.Begin()
	if err != nil {
		return nil, fmt.Errorf("update job position: begin: %w", err)
	}
	defer tx.Rollback()

	j, err := scanJobPosition(tx.QueryRow(
		`SELECT `+jobPositionCols+` FROM job_positions WHERE id = $1 FOR UPDATE`, id))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("update job position: %w", err)
	}

	p.Apply(j)

	j, err = scanJobPosition(tx.QueryRow(`
		UPDATE job_positions
		SET title = $2, department = $3, location = $4, employment_type = $5,
		    description = $6, apply_email = $7, is_open = $8, updated_at = NOW()
		WHERE id = $1
		RETURNING `+jobPositionCols,
		id, j.Title, j.Department, j.Location, j.EmploymentType,
		j.Description, j.ApplyEmail, j.IsOpen))
	if err != nil {
		return nil, fmt.Errorf("update job position: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("update job position: commit: %w", err)
	}
	return j, nil
}

// Delete removes a position. Applications cascade away with it; the
// caller cleans up stored CVs first.
func (s *JobPositionStore) Delete(id uuid.UUID) error {
	if _, err := s.db.Exec(`DELETE FROM job_positions WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete job position: %w", err)
	}
	return nil
}

// Reorder rewrites display_order so each id takes its position in ids.
func (s *JobPositionStore) Reorder(ids []uuid.UUID) error {
	return reorderRows(s.db, "job_positions", ids)
}
