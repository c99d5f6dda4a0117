// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import (
	"time"

	"github.com/google/uuid"
)

// HeroSlide is one slide in the homepage hero carousel. Slides are
// ordered by DisplayOrder ascending; only active slides are shown
// publicly.
type HeroSlide struct {
	ID           uuid.UUID `json:"id"`
	Title        string    `json:"title"`
	Subtitle     string    `json:"subtitle"`
	ImageURL     string    `json:"image_url"`
	CTALabel     string    `json:"cta_label"`
	CTAURL       string    `json:"cta_url"`
	DisplayOrder int       `json:"display_order"`
	IsActive     bool      `json:"is_active"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// HeroSlidePatch carries a partial update for a HeroSlide.
// Nil fields keep their stored value.
type HeroSlidePatch struct {
	Title    *string
	Subtitle *string
	ImageURL *string
	CTALabel *string
	CTAURL   *string
	IsActive *bool
}

// Apply merges the patch into the slide, overwriting only the fields
// that are set.
func (p *HeroSlidePatch) Apply(s *HeroSlide) {
	if p.Title != nil {
		s.Title = *p.Title
	}
	if p.Subtitle != nil {
		s.Subtitle = *p.Subtitle
	}
	if p.ImageURL != nil {
		s.ImageURL = *p.ImageURL
	}
	if p.CTALabel != nil {
		s.CTALabel = *p.CTALabel
	}
	if p.CTAURL != nil {
		s.CTAURL = *p.CTAURL
	}
	if p.IsActive != nil {
		s.IsActive = *p.IsActive
	}
}
