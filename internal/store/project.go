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

const projectCols = `p.id, p.title, p.slug, p.category_id, p.status, p.location,
	p.year, p.area_sqm, p.client, p.description, p.cover_image_url,
	p.is_featured, p.is_active, p.display_order, p.created_at, p.updated_at,
	c.name`

const projectFrom = ` FROM projects p
	LEFT JOIN project_categories c ON c.id = p.category_id`

// ProjectStore manages portfolio projects.
type ProjectStore struct {
	db *sql.DB
}

// NewProjectStore returns a store backed by the given database.
func NewProjectStore(db *sql.DB) *ProjectStore {
	return &ProjectStore{db: db}
}

func scanProject(row interface{ Scan(...any) error }) (*models.Project, error) {
	p := &models.Project{}
	err := row.Scan(&p.ID, &p.Title, &p.Slug, &p.CategoryID, &p.Status,
		&p.Location, &p.Year, &p.AreaSqm, &p.Client, &p.Description,
		&p.CoverImageURL, &p.IsFeatured, &p.IsActive, &p.DisplayOrder,
		&p.CreatedAt, &p.UpdatedAt, &p.CategoryName)
	if err != nil {
		return nil, err
	}
	return p, nil
}

// List returns projects in display order with category names resolved.
// With onlyActive set, hidden projects are excluded.
func (s *ProjectStore) List(onlyActive bool) ([]*models.Project, error) {
	query := `SELECT ` + projectCols + projectFrom
	if onlyActive {
		query += ` WHERE p.is_active`
	}
	query += ` ORDER BY p.display_order ASC, p.id ASC`

	rows, err := s.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}
	defer rows.Close()

	var projects []*models.Project
	for rows.Next() {
		p, err := scanProject(rows)
		if err != nil {
			return nil, fmt.Errorf("scan project: %w", err)
		}
		projects = append(projects, p)
	}
	return projects, rows.Err()
}

// ListFeatured returns active featured projects for the homepage, in
// display order, capped at limit.
func (s *ProjectStore) ListFeatured(limit int) ([]*models.Project, error) {
	rows, err := s.db.Query(`
		SELECT `+projectCols+projectFrom+`
		WHERE p.is_active AND p.is_featured
		ORDER BY p.display_order ASC, p.id ASC
		LIMIT $1
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("list featured projects: %w", err)
	}
	defer rows.Close()

	var projects []*models.Project
	for rows.Next() {
		p, err := scanProject(rows)
		if err != nil {
			return nil, fmt.Errorf("scan project: %w", err)
		}
		projects = append(projects, p)
	}
	return projects, rows.Err()
}

// FindByID returns a project, or nil if it does not exist.
func (s *ProjectStore) FindByID(id uuid.UUID) (*models.Project, error) {
	p, err := scanProject(s.db.QueryRow(
		`SELECT `+projectCols+projectFrom+` WHERE p.id = $1`, id))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find project: %w", err)
	}
	return p, nil
}

// FindBySlug returns a project, or nil if it does not exist.
func (s *ProjectStore) FindBySlug(slug string) (*models.Project, error) {
	p, err := scanProject(s.db.QueryRow(
		`SELECT `+projectCols+projectFrom+` WHERE p.slug = $1`, slug))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find project by slug: %w", err)
	}
	return p, nil
}

// Create appends a new project at the end of the portfolio.
func (s *ProjectStore) Create(title, slug string, categoryID *uuid.UUID, status models.ProjectStatus) (*models.Project, error) {
	var id uuid.UUID
	err := s.db.QueryRow(`
		INSERT INTO projects (title, slug, category_id, status, display_order)
		VALUES ($1, $2, $3, $4,
			(SELECT COALESCE(MAX(display_order) + 1, 0) FROM projects))
		RETURNING id
	`, title, slug, categoryID, status).Scan(&id)
	if err != nil {
		return nil, fmt.Errorf("create project: %w", err)
	}
	return s.FindByID(id)
}

// Update applies a partial update and returns the new state, or nil if
// the project does not exist.
func (s *ProjectStore) Update(id uuid.UUID, patch *models.ProjectPatch) (*models.Project, error) {
	tx, err := s.db.Begin()
	if err != nil {
		return nil, fmt.Errorf("update project: begin: %w", err)
	}
	defer tx.Rollback()

	p, err := scanProject(tx.QueryRow(
		`SELECT `+projectCols+projectFrom+` WHERE p.id = $1 FOR UPDATE OF p`, id))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("update project: %w", err)
	}

	patch.Apply(p)

	_, err = tx.Exec(`
		UPDATE projects
		SET title = $2, slug = $3, category_id = $4, status = $5, location = $6,
		    year = $7, area_sqm = $8, client = $9, description = $10,
		    cover_image_url = $11, is_featured = $12, is_active = $13,
		    updated_at = NOW()
		WHERE id = $1
	`, id, p.Title, p.Slug, p.CategoryID, p.Status, p.Location, p.Year,
		p.AreaSqm, p.Client, p.Description, p.CoverImageURL, p.IsFeatured, p.IsActive)
	if err != nil {
		return nil, fmt.Errorf("update project: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("update project: commit: %w", err)
	}
	return s.FindByID(id)
}

// Delete removes a project. Gallery rows cascade away with it; the
// caller is responsible for cleaning up stored assets first.
func (s *ProjectStore) Delete(id uuid.UUID) error {
	if _, err := s.db.Exec(`DELETE FROM projects WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete project: %w", err)
	}
	return nil
}

// Reorder rewrites display_order so each id takes its position in ids.
func (s *ProjectStore) Reorder(ids []uuid.UUID) error {
	return reorderRows(s.db, "projects", ids)
}
