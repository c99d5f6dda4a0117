// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import (
	"time"

	"github.com/google/uuid"
)

// TimelineEntry is one milestone in the firm history timeline on the
// about page.
type TimelineEntry struct {
	ID           uuid.UUID `json:"id"`
	Year         int       `json:"year"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	DisplayOrder int       `json:"display_order"`
	IsActive     bool      `json:"is_active"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// TimelineEntryPatch carries a partial update for a TimelineEntry.
type TimelineEntryPatch struct {
	Year        *int
	Title       *string
	Description *string
	IsActive    *bool
}

// Apply merges the patch into the entry, overwriting only set fields.
func (p *TimelineEntryPatch) Apply(e *TimelineEntry) {
	if p.Year != nil {
		e.Year = *p.Year
	}
	if p.Title != nil {
		e.Title = *p.Title
	}
	if p.Description != nil {
		e.Description = *p.Description
	}
	if p.IsActive != nil {
		e.IsActive = *p.IsActive
	}
}
