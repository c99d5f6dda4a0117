// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import (
	"time"

	"github.com/google/uuid"
)

// ProjectStatus represents the lifecycle stage of a project.
type ProjectStatus string

const (
	ProjectStatusConcept   ProjectStatus = "concept"
	ProjectStatusOngoing   ProjectStatus = "ongoing"
	ProjectStatusCompleted ProjectStatus = "completed"
)

// ProjectStatuses lists every valid status, in form display order.
var ProjectStatuses = []ProjectStatus{
	ProjectStatusConcept,
	ProjectStatusOngoing,
	ProjectStatusCompleted,
}

// Valid reports whether the status is one of the known values.
func (s ProjectStatus) Valid() bool {
	switch s {
	case ProjectStatusConcept, ProjectStatusOngoing, ProjectStatusCompleted:
		return true
	}
	return false
}

// ProjectCategory groups projects on the portfolio page (e.g.
// "Residential", "Commercial"). Deleting a category does not delete its
// projects; their category reference is cleared instead.
type ProjectCategory struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Slug         string    `json:"slug"`
	DisplayOrder int       `json:"display_order"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`

	// Virtual field populated by store joins.
	ProjectCount int `json:"project_count"`
}

// ProjectCategoryPatch carries a partial update for a ProjectCategory.
type ProjectCategoryPatch struct {
	Name *string
	Slug *string
}

// Apply merges the patch into the category.
func (p *ProjectCategoryPatch) Apply(c *ProjectCategory) {
	if p.Name != nil {
		c.Name = *p.Name
	}
	if p.Slug != nil {
		c.Slug = *p.Slug
	}
}

// Project is one portfolio entry. Description is Markdown source.
type Project struct {
	ID            uuid.UUID     `json:"id"`
	Title         string        `json:"title"`
	Slug          string        `json:"slug"`
	CategoryID    *uuid.UUID    `json:"category_id,omitempty"`
	Status        ProjectStatus `json:"status"`
	Location      string        `json:"location"`
	Year          int           `json:"year"`
	AreaSqm       int           `json:"area_sqm"`
	Client        string        `json:"client"`
	Description   string        `json:"description"`
	CoverImageURL string        `json:"cover_image_url"`
	IsFeatured    bool          `json:"is_featured"`
	IsActive      bool          `json:"is_active"`
	DisplayOrder  int           `json:"display_order"`
	CreatedAt     time.Time     `json:"created_at"`
	UpdatedAt     time.Time     `json:"updated_at"`

	// Virtual field resolved by the join in list queries.
	CategoryName *string `json:"category_name,omitempty"`
}

// ProjectPatch carries a partial update for a Project. CategoryID uses a
// double pointer so the patch can distinguish "leave unchanged" (nil)
// from "clear to uncategorized" (*nil).
type ProjectPatch struct {
	Title         *string
	Slug          *string
	CategoryID    **uuid.UUID
	Status        *ProjectStatus
	Location      *string
	Year          *int
	AreaSqm       *int
	Client        *string
	Description   *string
	CoverImageURL *string
	IsFeatured    *bool
	IsActive      *bool
}

// Apply merges the patch into the project, overwriting only set fields.
func (p *ProjectPatch) Apply(pr *Project) {
	if p.Title != nil {
		pr.Title = *p.Title
	}
	if p.Slug != nil {
		pr.Slug = *p.Slug
	}
	if p.CategoryID != nil {
		pr.CategoryID = *p.CategoryID
	}
	if p.Status != nil {
		pr.Status = *p.Status
	}
	if p.Location != nil {
		pr.Location = *p.Location
	}
	if p.Year != nil {
		pr.Year = *p.Year
	}
	if p.AreaSqm != nil {
		pr.AreaSqm = *p.AreaSqm
	}
	if p.Client != nil {
		pr.Client = *p.Client
	}
	if p.Description != nil {
		pr.Description = *p.Description
	}
	if p.CoverImageURL != nil {
		pr.CoverImageURL = *p.CoverImageURL
	}
	if p.IsFeatured != nil {
		pr.IsFeatured = *p.IsFeatured
	}
	if p.IsActive != nil {
		pr.IsActive = *p.IsActive
	}
}

// GalleryImage is one photo in a project's gallery. Rows cascade away
// with their project; the stored S3 objects are cleaned up best-effort
// by the delete handlers.
type GalleryImage struct {
	ID           uuid.UUID `json:"id"`
	ProjectID    uuid.UUID `json:"project_id"`
	ImageURL     string    `json:"image_url"`
	ThumbURL     string    `json:"thumb_url"`
	Caption      string    `json:"caption"`
	DisplayOrder int       `json:"display_order"`
	CreatedAt    time.Time `json:"created_at"`
}

// GalleryImagePatch carries a partial update for a GalleryImage.
type GalleryImagePatch struct {
	Caption *string
}

// Apply merges the patch into the image.
func (p *GalleryImagePatch) Apply(g *GalleryImage) {
	if p.Caption != nil {
		g.Caption = *p.Caption
	}
}
