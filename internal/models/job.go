// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import (
	"time"

	"github.com/google/uuid"
)

// EmploymentType classifies a job position.
type EmploymentType string

const (
	EmploymentFullTime   EmploymentType = "full_time"
	EmploymentPartTime   EmploymentType = "part_time"
	EmploymentContract   EmploymentType = "contract"
	EmploymentInternship EmploymentType = "internship"
)

// EmploymentTypes lists every valid type, in form display order.
var EmploymentTypes = []EmploymentType{
	EmploymentFullTime,
	EmploymentPartTime,
	EmploymentContract,
	EmploymentInternship,
}

// Valid reports whether the employment type is a known value.
func (t EmploymentType) Valid() bool {
	switch t {
	case EmploymentFullTime, EmploymentPartTime, EmploymentContract, EmploymentInternship:
		return true
	}
	return false
}

// Label returns a human-readable form of the employment type.
func (t EmploymentType) Label() string {
	switch t {
	case EmploymentFullTime:
		return "Full-time"
	case EmploymentPartTime:
		return "Part-time"
	case EmploymentContract:
		return "Contract"
	case EmploymentInternship:
		return "Internship"
	}
	return string(t)
}

// JobPosition is one opening listed on the careers page. Description is
// Markdown source.
type JobPosition struct {
	ID             uuid.UUID      `json:"id"`
	Title          string         `json:"title"`
	Department     string         `json:"department"`
	Location       string         `json:"location"`
	EmploymentType EmploymentType `json:"employment_type"`
	Description    string         `json:"description"`
	ApplyEmail     string         `json:"apply_email"`
	DisplayOrder   int            `json:"display_order"`
	IsOpen         bool           `json:"is_open"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
}

// JobPositionPatch carries a partial update for a JobPosition.
type JobPositionPatch struct {
	Title          *string
	Department     *string
	Location       *string
	EmploymentType *EmploymentType
	Description    *string
	ApplyEmail     *string
	IsOpen         *bool
}

// Apply merges the patch into the position, overwriting only set fields.
func (p *JobPositionPatch) Apply(j *JobPosition) {
	if p.Title != nil {
		j.Title = *p.Title
	}
	if p.Department != nil {
		j.Department = *p.Department
	}
	if p.Location != nil {
		j.Location = *p.Location
	}
	if p.EmploymentType != nil {
		j.EmploymentType = *p.EmploymentType
	}
	if p.Description != nil {
		j.Description = *p.Description
	}
	if p.ApplyEmail != nil {
		j.ApplyEmail = *p.ApplyEmail
	}
	if p.IsOpen != nil {
		j.IsOpen = *p.IsOpen
	}
}

// JobApplication is a submission from the public careers form. The CV
// file lives in the private bucket; CVKey is its object key, resolved to
// a short-lived presigned URL when an admin views the application.
type JobApplication struct {
	ID         uuid.UUID `json:"id"`
	PositionID uuid.UUID `json:"position_id"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	CoverNote  string    `json:"cover_note"`
	CVKey      *string   `json:"-"`
	CreatedAt  time.Time `json:"created_at"`

	// Virtual field resolved by the join in list queries.
	PositionTitle string `json:"position_title,omitempty"`
}
