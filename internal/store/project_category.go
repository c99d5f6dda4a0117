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

// ProjectCategoryStore manages portfolio categories.
type ProjectCategoryStore struct {
	db *sql.DB
}

// NewProjectCategoryStore returns a store backed by the given database.
func NewProjectCategoryStore(db *sql.DB) *ProjectCategoryStore {
	return &ProjectCategoryStore{db: db}
}

// List returns categories in display order, each with its project count.
func (s *ProjectCategoryStore) List() ([]*models.ProjectCategory, error) {
	rows, err := s.db.Query(`
		SELECT c.id, c.name, c.slug, c.display_order, c.created_at, c.updated_at,
		       COUNT(p.id)
		FROM project_categories c
		LEFT JOIN projects p ON p.category_id = c.id
		GROUP BY c.id
		ORDER BY c.display_order ASC, c.id ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("list project categories: %w", err)
	}
	defer rows.Close()

	var cats []*models.ProjectCategory
	for rows.Next() {
		c := &models.ProjectCategory{}
		if err := rows.Scan(&c.ID, &c.Name, &c.Slug, &c.DisplayOrder,
			&c.CreatedAt, &c.UpdatedAt, &c.ProjectCount); err != nil {
			return nil, fmt.Errorf("scan project category: %w", err)
		}
		cats = append(cats, c)
	}
	return cats, rows.Err()
}

// FindByID returns a category, or nil if it does not exist.
func (s *ProjectCategoryStore) FindByID(id uuid.UUID) (*models.ProjectCategory, error) {
	c := &models.ProjectCategory{}
	err := s.db.QueryRow(`
		SELECT id, name, slug, display_order, created_at, updated_at
		FROM project_categories WHERE id = $1
	`, id).Scan(&c.ID, &c.Name, &c.Slug, &c.DisplayOrder, &c.CreatedAt, &c.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find project category: %w", err)
	}
	return c, nil
}

// FindBySlug returns a category, or nil if it does not exist.
func (s *ProjectCategoryStore) FindBySlug(slug string) (*models.ProjectCategory, error) {
	c := &models.ProjectCategory{}
	err := s.db.QueryRow(`
		SELECT id, name, slug, display_order, created_at, updated_at
		FROM project_categories WHERE slug = $1
	`, slug).Scan(&c.ID, &c.Name, &c.Slug, &c.DisplayOrder, &c.CreatedAt, &c.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find project category by slug: %w", err)
	}
	return c, nil
}

// Create appends a new category at the end of the list.
func (s *ProjectCategoryStore) Create(name, slug string) (*models.ProjectCategory, error) {
	c := &models.ProjectCategory{}
	err := s.db.QueryRow(`
		INSERT INTO project_categories (name, slug, display_order)
		VALUES ($1, $2,
			(SELECT COALESCE(MAX(display_order) + 1, 0) FROM project_categories))
		RETURNING id, name, slug, display_order, created_at, updated_at
	`, name, slug).Scan(&c.ID, &c.Name, &c.Slug, &c.DisplayOrder, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("create project category: %w", err)
	}
	return c, nil
}

// Update applies a partial update and returns the new state, or nil if
// the category does not exist.
func (s *ProjectCategoryStore) Update(id uuid.UUID, p *models.ProjectCategoryPatch) (*models.ProjectCategory, error) {
	tx, err := s.db.Begin()
	if err != nil {
		return nil, fmt.Errorf("update project category: begin: %w", err)
	}
	defer tx.Rollback()

	c := &models.ProjectCategory{}
	err = tx.QueryRow(`
		SELECT id, name, slug, display_order, created_at, updated_at
		FROM project_categories WHERE id = $1 FOR UPDATE
	`, id).Scan(&c.ID, &c.Name, &c.Slug, &c.DisplayOrder, &c.CreatedAt, &c.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("update project category: %w", err)
	}

	p.Apply(c)

	err = tx.QueryRow(`
		UPDATE project_categories
		SET name = $2, slug = $3, updated_at = NOW()
		WHERE id = $1
		RETURNING id, name, slug, display_order, created_at, updated_at
	`, id, c.Name, c.Slug).Scan(&c.ID, &c.Name, &c.Slug, &c.DisplayOrder, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("update project category: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("update project category: commit: %w", err)
	}
	return c, nil
}

// Delete removes a category. Projects referencing it get their
// category_id cleared by the schema (ON DELETE SET NULL), so the
// portfolio keeps its entries.
func (s *ProjectCategoryStore) Delete(id uuid.UUID) error {
	if _, err := s.db.Exec(`DELETE FROM project_categories WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete project category: %w", err)
	}
	return nil
}

// Reorder rewrites display_order so each id takes its position in ids.
func (s *ProjectCategoryStore) Reorder(ids []uuid.UUID) error {
	return reorderRows(s.db, "project_categories", ids)
}
