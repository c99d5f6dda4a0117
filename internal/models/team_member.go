// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import (
	"time"

	"github.com/google/uuid"
)

// TeamRole classifies a team member on the staff page.
type TeamRole string

const (
	TeamRolePrincipal TeamRole = "principal"
	TeamRoleArchitect TeamRole = "architect"
	TeamRoleDesigner  TeamRole = "designer"
	TeamRoleEngineer  TeamRole = "engineer"
	TeamRoleStaff     TeamRole = "staff"
)

// TeamRoles lists every valid role, in the order shown in admin forms.
var TeamRoles = []TeamRole{
	TeamRolePrincipal,
	TeamRoleArchitect,
	TeamRoleDesigner,
	TeamRoleEngineer,
	TeamRoleStaff,
}

// Valid reports whether the role is one of the known values.
func (r TeamRole) Valid() bool {
	switch r {
	case TeamRolePrincipal, TeamRoleArchitect, TeamRoleDesigner,
		TeamRoleEngineer, TeamRoleStaff:
		return true
	}
	return false
}

// TeamMember is one person on the staff page.
type TeamMember struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Role         TeamRole  `json:"role"`
	Bio          string    `json:"bio"`
	PhotoURL     string    `json:"photo_url"`
	Email        string    `json:"email"`
	LinkedInURL  string    `json:"linkedin_url"`
	DisplayOrder int       `json:"display_order"`
	IsActive     bool      `json:"is_active"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// TeamMemberPatch carries a partial update for a TeamMember.
type TeamMemberPatch struct {
	Name        *string
	Role        *TeamRole
	Bio         *string
	PhotoURL    *string
	Email       *string
	LinkedInURL *string
	IsActive    *bool
}

// Apply merges the patch into the member, overwriting only set fields.
func (p *TeamMemberPatch) Apply(m *TeamMember) {
	if p.Name != nil {
		m.Name = *p.Name
	}
	if p.Role != nil {
		m.Role = *p.Role
	}
	if p.Bio != nil {
		m.Bio = *p.Bio
	}
	if p.PhotoURL != nil {
		m.PhotoURL = *p.PhotoURL
	}
	if p.Email != nil {
		m.Email = *p.Email
	}
	if p.LinkedInURL != nil {
		m.LinkedInURL = *p.LinkedInURL
	}
	if p.IsActive != nil {
		m.IsActive = *p.IsActive
	}
}
