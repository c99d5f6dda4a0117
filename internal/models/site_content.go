// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import "time"

// SingletonID is the well-known primary key shared by all singleton
// content tables. Each of those tables carries a CHECK (id = 1)
// constraint, so "at most one row" is enforced by the schema rather
// than by application code.
const SingletonID = 1

// HomeIntro is the hero headline block on the homepage.
type HomeIntro struct {
	ID          int       `json:"id"`
	Headline    string    `json:"headline"`
	Subheadline string    `json:"subheadline"`
	CTALabel    string    `json:"cta_label"`
	CTAURL      string    `json:"cta_url"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// HomeIntroPatch carries a partial update for HomeIntro.
// Nil fields keep their stored value.
type HomeIntroPatch struct {
	Headline    *string
	Subheadline *string
	CTALabel    *string
	CTAURL      *string
}

// AboutContent is the firm profile block rendered on the about page.
// Body is Markdown source, converted to HTML at render time.
type AboutContent struct {
	ID        int       `json:"id"`
	Heading   string    `json:"heading"`
	Body      string    `json:"body"`
	Mission   string    `json:"mission"`
	Vision    string    `json:"vision"`
	ImageURL  string    `json:"image_url"`
	UpdatedAt time.Time `json:"updated_at"`
}

// AboutContentPatch carries a partial update for AboutContent.
type AboutContentPatch struct {
	Heading  *string
	Body     *string
	Mission  *string
	Vision   *string
	ImageURL *string
}

// CEOProfile is the principal's bio block. It appears on both the
// homepage and the staff page, so saving it invalidates both paths.
type CEOProfile struct {
	ID        int       `json:"id"`
	Name      string    `json:"name"`
	Title     string    `json:"title"`
	Bio       string    `json:"bio"` // Markdown
	PhotoURL  string    `json:"photo_url"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CEOProfilePatch carries a partial update for CEOProfile.
type CEOProfilePatch struct {
	Name     *string
	Title    *string
	Bio      *string
	PhotoURL *string
}

// ContactInfo is the office contact block shown on the contact page
// and in the public footer.
type ContactInfo struct {
	ID           int       `json:"id"`
	Address      string    `json:"address"`
	Phone        string    `json:"phone"`
	Email        string    `json:"email"`
	MapEmbedURL  string    `json:"map_embed_url"`
	WorkingHours string    `json:"working_hours"`
	InstagramURL string    `json:"instagram_url"`
	LinkedInURL  string    `json:"linkedin_url"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// ContactInfoPatch carries a partial update for ContactInfo.
type ContactInfoPatch struct {
	Address      *string
	Phone        *string
	Email        *string
	MapEmbedURL  *string
	WorkingHours *string
	InstagramURL *string
	LinkedInURL  *string
}

// SiteTheme holds the site-wide colors and fonts chosen in the admin
// panel. Public pages render these as CSS custom properties.
type SiteTheme struct {
	ID             int       `json:"id"`
	PrimaryColor   string    `json:"primary_color"`
	SecondaryColor string    `json:"secondary_color"`
	AccentColor    string    `json:"accent_color"`
	HeadingFont    string    `json:"heading_font"`
	BodyFont       string    `json:"body_font"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// SiteThemePatch carries a partial update for SiteTheme.
type SiteThemePatch struct {
	PrimaryColor   *string
	SecondaryColor *string
	AccentColor    *string
	HeadingFont    *string
	BodyFont       *string
}

// DefaultSiteTheme returns the fallback theme used when no theme row has
// been saved yet. Public pages must never render unstyled.
func DefaultSiteTheme() *SiteTheme {
	return &SiteTheme{
		ID:             SingletonID,
		PrimaryColor:   "#1a1a1a",
		SecondaryColor: "#f5f2ec",
		AccentColor:    "#b08d57",
		HeadingFont:    "Cormorant Garamond",
		BodyFont:       "Inter",
	}
}
