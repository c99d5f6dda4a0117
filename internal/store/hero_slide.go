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

const heroSlideCols = `id, title, subtitle, image_url, cta_label, cta_url,
	display_order, is_active, created_at, updated_at`

// HeroSlideStore manages the homepage hero carousel.
type HeroSlideStore struct {
	db *sql.DB
}

// NewHeroSlideStore returns a store backed by the given database.
func NewHeroSlideStore(db *sql.DB) *HeroSlideStore {
	return &HeroSlideStore{db: db}
}

func scanHeroSlide(row interface{ Scan(...any) error }) (*models.HeroSlide, error) {
	h := &models.HeroSlide{}
	err := row.Scan(&h.ID, &h.Title, &h.Subtitle, &h.ImageURL, &h.CTALabel,
		&h.CTAURL, &h.DisplayOrder, &h.IsActive, &h.CreatedAt, &h.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return h, nil
}

// List returns slides in display order. With onlyActive set, hidden
// slides are excluded.
func (s *HeroSlideStore) List(onlyActive bool) ([]*models.HeroSlide, error) {
	query := `SELECT ` + heroSlideCols + ` FROM hero_slides`
	if onlyActive {
		query += ` WHERE is_active`
	}
	query += ` ORDER BY display_order ASC, id ASC`

	rows, err := s.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("list hero slides: %w", err)
	}
	defer rows.Close()

	var slides []*models.HeroSlide
	for rows.Next() {
		h, err := scanHeroSlide(rows)
		if err != nil {
			return nil, fmt.Errorf("scan hero slide: %w", err)
		}
		slides = append(slides, h)
	}
	return slides, rows.Err()
}

// FindByID returns a slide, or nil if it does not exist.
func (s *HeroSlideStore) FindByID(id uuid.UUID) (*models.HeroSlide, error) {
	h, err := scanHeroSlide(s.db.QueryRow(
		`SELECT `+heroSlideCols+` FROM hero_slides WHERE id = $1`, id))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find hero slide: %w", err)
	}
	return h, nil
}

// Create appends a new slide at the end of the carousel.
func (s *HeroSlideStore) Create(title, subtitle, imageURL, ctaLabel, ctaURL string) (*models.HeroSlide, error) {
	h, err := scanHeroSlide(s.db.QueryRow(`
		INSERT INTO hero_slides (title, subtitle, image_url, cta_label, cta_url, display_order)
		VALUES ($1, $2, $3, $4, $5,
			(SELECT COALESCE(MAX(display_order) + 1, 0) FROM hero_slides))
		RETURNING `+heroSlideCols,
		title, subtitle, imageURL, ctaLabel, ctaURL))
	if err != nil {
		return nil, fmt.Errorf("create hero slide: %w", err)
	}
	return h, nil
}

// Update applies a partial update and returns the new state, or nil if
// the slide does not exist. The read-modify-write runs under row lock so
// concurrent patches merge instead of clobbering.
func (s *HeroSlideStore) Update(id uuid.UUID, p *models.HeroSlidePatch) (*models.HeroSlide, error) {
	tx, err := s.db.Begin()
	if err != nil {
		return nil, fmt.Errorf("update hero slide: begin: %w", err)
	}
	defer tx.Rollback()

	h, err := scanHeroSlide(tx.QueryRow(
		`SELECT `+heroSlideCols+` FROM hero_slides WHERE id = $1 FOR UPDATE`, id))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("update hero slide: %w", err)
	}

	p.Apply(h)

	h, err = scanHeroSlide(tx.QueryRow(`
		UPDATE hero_slides
		SET title = $2, subtitle = $3, image_url = $4, cta_label = $5,
		    cta_url = $6, is_active = $7, updated_at = NOW()
		WHERE id = $1
		RETURNING `+heroSlideCols,
		id, h.Title, h.Subtitle, h.ImageURL, h.CTALabel, h.CTAURL, h.IsActive))
	if err != nil {
		return nil, fmt.Errorf("update hero slide: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("update hero slide: commit: %w", err)
	}
	return h, nil
}

// Delete removes a slide. Missing rows are not an error.
func (s *HeroSlideStore) Delete(id uuid.UUID) error {
	if _, err := s.db.Exec(`DELETE FROM hero_slides WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete hero slide: %w", err)
	}
	return nil
}

// Reorder rewrites display_order so each id takes its position in ids.
func (s *HeroSlideStore) Reorder(ids []uuid.UUID) error {
	return reorderRows(s.db, "hero_slides", ids)
}
