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

const teamMemberCols = `id, name, role, bio, photo_url, email, linkedin_url,
	display_order, is_active, created_at, updated_at`

// TeamMemberStore manages the staff page roster.
type TeamMemberStore struct {
	db *sql.DB
}

// NewTeamMemberStore returns a store backed by the given database.
func NewTeamMemberStore(db *sql.DB) *TeamMemberStore {
	return &TeamMemberStore{db: db}
}

func scanTeamMember(row interface{ Scan(...any) error }) (*models.TeamMember, error) {
	m := &models.TeamMember{}
	err := row.Scan(&m.ID, &m.Name, &m.Role, &m.Bio, &m.PhotoURL, &m.Email,
		&m.LinkedInURL, &m.DisplayOrder, &m.IsActive, &m.CreatedAt, &m.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return m, nil
}

// List returns members in display order. With onlyActive set, hidden
// members are excluded.
func (s *TeamMemberStore) List(onlyActive bool) ([]*models.TeamMember, error) {
	query := `SELECT ` + teamMemberCols + ` FROM team_members`
	if onlyActive {
		query += ` WHERE is_active`
	}
	query += ` ORDER BY display_order ASC, id ASC`

	rows, err := s.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("list team members: %w", err)
	}
	defer rows.Close()

	var members []*models.TeamMember
	for rows.Next() {
		m, err := scanTeamMember(rows)
		if err != nil {
			return nil, fmt.Errorf("scan team member: %w", err)
		}
		members = append(members, m)
	}
	return members, rows.Err()
}

// FindByID returns a member, or nil if it does not exist.
func (s *TeamMemberStore) FindByID(id uuid.UUID) (*models.TeamMember, error) {
	m, err := scanTeamMember(s.db.QueryRow(
		`SELECT `+teamMemberCols+` FROM team_members WHERE id = $1`, id))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find team member: %w", err)
	}
	return m, nil
}

// Create appends a new member at the end of the roster.
func (s *TeamMemberStore) Create(name string, role models.TeamRole, bio, photoURL, email, linkedinURL string) (*models.TeamMember, error) {
	m, err := scanTeamMember(s.db.QueryRow(`
		INSERT INTO team_members (name, role, bio, photo_url, email, linkedin_url, display_order)
		VALUES ($1, $2, $3, $4, $5, $6,
			(SELECT COALESCE(MAX(display_order) + 1, 0) FROM team_members))
		RETURNING `+teamMemberCols,
		name, role, bio, photoURL, email, linkedinURL))
	if err != nil {
		return nil, fmt.Errorf("create team member: %w", err)
	}
	return m, nil
}

// Update applies a partial update and returns the new state, or nil if
// the member does not exist.
func (s *TeamMemberStore) Update(id uuid.UUID, p *models.TeamMemberPatch) (*models.TeamMember, error) {
	tx, err := s.db.Begin()
	if err != nil {
		return nil, fmt.Errorf("update team member: begin: %w", err)
	}
	defer tx.Rollback()

	m, err := scanTeamMember(tx.QueryRow(
		`SELECT `+teamMemberCols+` FROM team_members WHERE id = $1 FOR UPDATE`, id))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("update team member: %w", err)
	}

	p.Apply(m)

	m, err = scanTeamMember(tx.QueryRow(`
		UPDATE team_members
		SET name = $2, role = $3, bio = $4, photo_url = $5, email = $6,
		    linkedin_url = $7, is_active = $8, updated_at = NOW()
		WHERE id = $1
		RETURNING `+teamMemberCols,
		id, m.Name, m.Role, m.Bio, m.PhotoURL, m.Email, m.LinkedInURL, m.IsActive))
	if err != nil {
		return nil, fmt.Errorf("update team member: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("update team member: commit: %w", err)
	}
	return m, nil
}

// Delete removes a member. Missing rows are not an error.
func (s *TeamMemberStore) Delete(id uuid.UUID) error {
	if _, err := s.db.Exec(`DELETE FROM team_members WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete team member: %w", err)
	}
	return nil
}

// Reorder rewrites display_order so each id takes its position in ids.
func (s *TeamMemberStore) Reorder(ids []uuid.UUID) error {
	return reorderRows(s.db, "team_members", ids)
}
