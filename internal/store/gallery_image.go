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

const galleryImageCols = `id, project_id, image_url, thumb_url, caption,
	display_order, created_at`

// GalleryImageStore manages per-project photo galleries.
type GalleryImageStore struct {
	db *sql.DB
}

// NewGalleryImageStore returns a store backed by the given database.
func NewGalleryImageStore(db *sql.DB) *GalleryImageStore {
	return &GalleryImageStore{db: db}
}

func scanGalleryImage(row interface{ Scan(...any) error }) (*models.GalleryImage, error) {
	g := &models.GalleryImage{}
	err := row.Scan(&g.ID, &g.ProjectID, &g.ImageURL, &g.ThumbURL,
		&g.Caption, &g.DisplayOrder, &g.CreatedAt)
	if err != nil {
		return nil, err
	}
	return g, nil
}

// ListByProject returns a project's gallery in display order.
func (s *GalleryImageStore) ListByProject(projectID uuid.UUID) ([]*models.GalleryImage, error) {
	rows, err := s.db.Query(`
		SELECT `+galleryImageCols+`
		FROM gallery_images
		WHERE project_id = $1
		ORDER BY display_order ASC, id ASC
	`, projectID)
	if err != nil {
		return nil, fmt.Errorf("list gallery images: %w", err)
	}
	defer rows.Close()

	var images []*models.GalleryImage
	for rows.Next() {
		g, err := scanGalleryImage(rows)
		if err != nil {
			return nil, fmt.Errorf("scan gallery image: %w", err)
		}
		images = append(images, g)
	}
	return images, rows.Err()
}

// FindByID returns an image, or nil if it does not exist.
func (s *GalleryImageStore) FindByID(id uuid.UUID) (*models.GalleryImage, error) {
	g, err := scanGalleryImage(s.db.QueryRow(
		`SELECT `+galleryImageCols+` FROM gallery_images WHERE id = $1`, id))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find gallery image: %w", err)
	}
	return g, nil
}

// Create appends a new image at the end of the project's gallery. The
// append position is scoped per project, not across the whole table.
func (s *GalleryImageStore) Create(projectID uuid.UUID, imageURL, thumbURL, caption string) (*models.GalleryImage, error) {
	g, err := scanGalleryImage(s.db.QueryRow(`
		INSERT INTO gallery_images (project_id, image_url, thumb_url, caption, display_order)
		VALUES ($1, $2, $3, $4,
			(SELECT COALESCE(MAX(display_order) + 1, 0) FROM gallery_images WHERE project_id = $1))
		RETURNING `+galleryImageCols,
		projectID, imageURL, thumbURL, caption))
	if err != nil {
		return nil, fmt.Errorf("create gallery image: %w", err)
	}
	return g, nil
}

// UpdateCaption applies a partial update and returns the new state, or
// nil if the image does not exist.
func (s *GalleryImageStore) UpdateCaption(id uuid.UUID, p *models.GalleryImagePatch) (*models.GalleryImage, error) {
	g, err := s.FindByID(id)
	if err != nil || g == nil {
		return g, err
	}
	p.Apply(g)

	g2, err := scanGalleryImage(s.db.QueryRow(`
		UPDATE gallery_images SET caption = $2 WHERE id = $1
		RETURNING `+galleryImageCols, id, g.Caption))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("update gallery image: %w", err)
	}
	return g2, nil
}

// Delete removes an image row. The caller deletes the stored objects
// first, best-effort.
func (s *GalleryImageStore) Delete(id uuid.UUID) error {
	if _, err := s.db.Exec(`DELETE FROM gallery_images WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete gallery image: %w", err)
	}
	return nil
}

// Reorder rewrites display_order so each id takes its position in ids.
// Callers pass ids belonging to one project's gallery.
func (s *GalleryImageStore) Reorder(ids []uuid.UUID) error {
	return reorderRows(s.db, "gallery_images", ids)
}
