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

const timelineEntryCols = `id, year, title, description, display_order,
	is_active, created_at, updated_at`

// TimelineEntryStore manages the firm history timeline.
type TimelineEntryStore struct {
	db *sql.DB
}

// NewTimelineEntryStore returns a store backed by the given database.
func NewTimelineEntryStore(db *sql.DB) *TimelineEntryStore {
	return &TimelineEntryStore{db: db}
}

func scanTimelineEntry(row interface{ Scan(...any) error }) (*models.TimelineEntry, error) {
	e := &models.TimelineEntry{}
	err := row.Scan(&e.ID, &e.Year, &e.Title, &e.Description,
		&e.DisplayOrder, &e.IsActive, &e.CreatedAt, &e.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return e, nil
}

// List returns entries in display order. With onlyActive set, hidden
// entries are excluded.
func (s *TimelineEntryStore) List(onlyActive bool) ([]*models.TimelineEntry, error) {
	query := `SELECT ` + timelineEntryCols + ` FROM timeline_entries`
	if onlyActive {
		query += ` WHERE is_active`
	}
	query += ` ORDER BY display_order ASC, id ASC`

	rows, err := s.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("list timeline entries: %w", err)
	}
	defer rows.Close()

	var entries []*models.TimelineEntry
	for rows.Next() {
		e, err := scanTimelineEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("scan timeline entry: %w", err)
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// FindByID returns an entry, or nil if it does not exist.
func (s *TimelineEntryStore) FindByID(id uuid.UUID) (*models.TimelineEntry, error) {
	e, err := scanTimelineEntry(s.db.QueryRow(
		`SELECT `+timelineEntryCols+` FROM timeline_entries WHERE id = $1`, id))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find timeline entry: %w", err)
	}
	return e, nil
}

// Create appends a new entry at the end of the timeline.
func (s *TimelineEntryStore) Create(year int, title, description string) (*models.TimelineEntry, error) {
	e, err := scanTimelineEntry(s.db.QueryRow(`
		INSERT INTO timeline_entries (year, title, description, display_order)
		VALUES ($1, $2, $3,
			(SELECT COALESCE(MAX(display_order) + 1, 0) FROM timeline_entries))
		RETURNING `+timelineEntryCols,
		year, title, description))
	if err != nil {
		return nil, fmt.Errorf("create timeline entry: %w", err)
	}
	return e, nil
}

// Update applies a partial update and returns the new state, or nil if
// the entry does not exist.
func (s *TimelineEntryStore) Update(id uuid.UUID, p *models.TimelineEntryPatch) (*models.TimelineEntry, error) {
	tx, err := s.db.Begin()
	if err != nil {
		return nil, fmt.Errorf("update timeline entry: begin: %w", err)
	}
	defer tx.Rollback()

	e, err := scanTimelineEntry(tx.QueryRow(
		`SELECT `+timelineEntryCols+` FROM timeline_entries WHERE id = $1 FOR UPDATE`, id))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("update timeline entry: %w", err)
	}

	p.Apply(e)

	e, err = scanTimelineEntry(tx.QueryRow(`
		UPDATE timeline_entries
		SET year = $2, title = $3, description = $4, is_active = $5, updated_at = NOW()
		WHERE id = $1
		RETURNING `+timelineEntryCols,
		id, e.Year, e.Title, e.Description, e.IsActive))
	if err != nil {
		return nil, fmt.Errorf("update timeline entry: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("update timeline entry: commit: %w", err)
	}
	return e, nil
}

// Delete removes an entry. Missing rows are not an error.
func (s *TimelineEntryStore) Delete(id uuid.UUID) error {
	if _, err := s.db.Exec(`DELETE FROM timeline_entries WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete timeline entry: %w", err)
	}
	return nil
}

// Reorder rewrites display_order so each id takes its position in ids.
func (s *TimelineEntryStore) Reorder(ids []uuid.UUID) error {
	return reorderRows(s.db, "timeline_entries", ids)
}
