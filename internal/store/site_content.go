// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// site_content.go holds the stores for the singleton content blocks.
// Each table is pinned to a single row (CHECK (id = 1)), so every write
// is one atomic upsert-by-key: INSERT ... ON CONFLICT (id) DO UPDATE
// with COALESCE against the patch. Nil patch fields keep the stored
// value; there is no read-then-write race to lose updates to.
package store

import (
	"database/sql"
	"fmt"

	"archfolio/internal/models"
)

// HomeIntroStore manages the homepage intro block.
type HomeIntroStore struct {
	db *sql.DB
}

// NewHomeIntroStore returns a store backed by the given database.
func NewHomeIntroStore(db *sql.DB) *HomeIntroStore {
	return &HomeIntroStore{db: db}
}

// Get returns the intro block, or nil if it has never been saved.
func (s *HomeIntroStore) Get() (*models.HomeIntro, error) {
	h := &models.HomeIntro{}
	err := s.db.QueryRow(`
		SELECT id, headline, subheadline, cta_label, cta_url, updated_at
		FROM home_intro WHERE id = $1
	`, models.SingletonID).Scan(
		&h.ID, &h.Headline, &h.Subheadline, &h.CTALabel, &h.CTAURL, &h.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get home intro: %w", err)
	}
	return h, nil
}

// Upsert creates the row on first save and patches it thereafter.
func (s *HomeIntroStore) Upsert(p *models.HomeIntroPatch) (*models.HomeIntro, error) {
	h := &models.HomeIntro{}
	err := s.db.QueryRow(`
		INSERT INTO home_intro (id, headline, subheadline, cta_label, cta_url)
		VALUES ($1, COALESCE($2, ''), COALESCE($3, ''), COALESCE($4, ''), COALESCE($5, ''))
		ON CONFLICT (id) DO UPDATE SET
			headline    = COALESCE($2, home_intro.headline),
			subheadline = COALESCE($3, home_intro.subheadline),
			cta_label   = COALESCE($4, home_intro.cta_label),
			cta_url     = COALESCE($5, home_intro.cta_url),
			updated_at  = NOW()
		RETURNING id, headline, subheadline, cta_label, cta_url, updated_at
	`, models.SingletonID, p.Headline, p.Subheadline, p.CTALabel, p.CTAURL).Scan(
		&h.ID, &h.Headline, &h.Subheadline, &h.CTALabel, &h.CTAURL, &h.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("upsert home intro: %w", err)
	}
	return h, nil
}

// AboutContentStore manages the about page content block.
type AboutContentStore struct {
	db *sql.DB
}

// NewAboutContentStore returns a store backed by the given database.
func NewAboutContentStore(db *sql.DB) *AboutContentStore {
	return &AboutContentStore{db: db}
}

// Get returns the about block, or nil if it has never been saved.
func (s *AboutContentStore) Get() (*models.AboutContent, error) {
	a := &models.AboutContent{}
	err := s.db.QueryRow(`
		SELECT id, heading, body, mission, vision, image_url, updated_at
		FROM about_content WHERE id = $1
	`, models.SingletonID).Scan(
		&a.ID, &a.Heading, &a.Body, &a.Mission, &a.Vision, &a.ImageURL, &a.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get about content: %w", err)
	}
	return a, nil
}

// Upsert creates the row on first save and patches it thereafter.
func (s *AboutContentStore) Upsert(p *models.AboutContentPatch) (*models.AboutContent, error) {
	a := &models.AboutContent{}
	err := s.db.QueryRow(`
		INSERT INTO about_content (id, heading, body, mission, vision, image_url)
		VALUES ($1, COALESCE($2, ''), COALESCE($3, ''), COALESCE($4, ''), COALESCE($5, ''), COALESCE($6, ''))
		ON CONFLICT (id) DO UPDATE SET
			heading    = COALESCE($2, about_content.heading),
			body       = COALESCE($3, about_content.body),
			mission    = COALESCE($4, about_content.mission),
			vision     = COALESCE($5, about_content.vision),
			image_url  = COALESCE($6, about_content.image_url),
			updated_at = NOW()
		RETURNING id, heading, body, mission, vision, image_url, updated_at
	`, models.SingletonID, p.Heading, p.Body, p.Mission, p.Vision, p.ImageURL).Scan(
		&a.ID, &a.Heading, &a.Body, &a.Mission, &a.Vision, &a.ImageURL, &a.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("upsert about content: %w", err)
	}
	return a, nil
}

// CEOProfileStore manages the principal's bio block.
type CEOProfileStore struct {
	db *sql.DB
}

// NewCEOProfileStore returns a store backed by the given database.
func NewCEOProfileStore(db *sql.DB) *CEOProfileStore {
	return &CEOProfileStore{db: db}
}

// Get returns the profile, or nil if it has never been saved.
func (s *CEOProfileStore) Get() (*models.CEOProfile, error) {
	c := &models.CEOProfile{}
	err := s.db.QueryRow(`
		SELECT id, name, title, bio, photo_url, updated_at
		FROM ceo_profile WHERE id = $1
	`, models.SingletonID).Scan(
		&c.ID, &c.Name, &c.Title, &c.Bio, &c.PhotoURL, &c.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get ceo profile: %w", err)
	}
	return c, nil
}

// Upsert creates the row on first save and patches it thereafter.
func (s *CEOProfileStore) Upsert(p *models.CEOProfilePatch) (*models.CEOProfile, error) {
	c := &models.CEOProfile{}
	err := s.db.QueryRow(`
		INSERT INTO ceo_profile (id, name, title, bio, photo_url)
		VALUES ($1, COALESCE($2, ''), COALESCE($3, ''), COALESCE($4, ''), COALESCE($5, ''))
		ON CONFLICT (id) DO UPDATE SET
			name       = COALESCE($2, ceo_profile.name),
			title      = COALESCE($3, ceo_profile.title),
			bio        = COALESCE($4, ceo_profile.bio),
			photo_url  = COALESCE($5, ceo_profile.photo_url),
			updated_at = NOW()
		RETURNING id, name, title, bio, photo_url, updated_at
	`, models.SingletonID, p.Name, p.Title, p.Bio, p.PhotoURL).Scan(
		&c.ID, &c.Name, &c.Title, &c.Bio, &c.PhotoURL, &c.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("upsert ceo profile: %w", err)
	}
	return c, nil
}

// ContactInfoStore manages the office contact block.
type ContactInfoStore struct {
	db *sql.DB
}

// NewContactInfoStore returns a store backed by the given database.
func NewContactInfoStore(db *sql.DB) *ContactInfoStore {
	return &ContactInfoStore{db: db}
}

// Get returns the contact block, or nil if it has never been saved.
func (s *ContactInfoStore) Get() (*models.ContactInfo, error) {
	c := &models.ContactInfo{}
	err := s.db.QueryRow(`
		SELECT id, address, phone, email, map_embed_url, working_hours,
		       instagram_url, linkedin_url, updated_at
		FROM contact_info WHERE id = $1
	`, models.SingletonID).Scan(
		&c.ID, &c.Address, &c.Phone, &c.Email, &c.MapEmbedURL, &c.WorkingHours,
		&c.InstagramURL, &c.LinkedInURL, &c.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get contact info: %w", err)
	}
	return c, nil
}

// Upsert creates the row on first save and patches it thereafter.
func (s *ContactInfoStore) Upsert(p *models.ContactInfoPatch) (*models.ContactInfo, error) {
	c := &models.ContactInfo{}
	err := s.db.QueryRow(`
		INSERT INTO contact_info (id, address, phone, email, map_embed_url,
		                          working_hours, instagram_url, linkedin_url)
		VALUES ($1, COALESCE($2, ''), COALESCE($3, ''), COALESCE($4, ''), COALESCE($5, ''),
		        COALESCE($6, ''), COALESCE($7, ''), COALESCE($8, ''))
		ON CONFLICT (id) DO UPDATE SET
			address       = COALESCE($2, contact_info.address),
			phone         = COALESCE($3, contact_info.phone),
			email         = COALESCE($4, contact_info.email),
			map_embed_url = COALESCE($5, contact_info.map_embed_url),
			working_hours = COALESCE($6, contact_info.working_hours),
			instagram_url = COALESCE($7, contact_info.instagram_url),
			linkedin_url  = COALESCE($8, contact_info.linkedin_url),
			updated_at    = NOW()
		RETURNING id, address, phone, email, map_embed_url, working_hours,
		          instagram_url, linkedin_url, updated_at
	`, models.SingletonID, p.Address, p.Phone, p.Email, p.MapEmbedURL,
		p.WorkingHours, p.InstagramURL, p.LinkedInURL).Scan(
		&c.ID, &c.Address, &c.Phone, &c.Email, &c.MapEmbedURL, &c.WorkingHours,
		&c.InstagramURL, &c.LinkedInURL, &c.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("upsert contact info: %w", err)
	}
	return c, nil
}

// SiteThemeStore manages the site-wide colors and fonts.
type SiteThemeStore struct {
	db *sql.DB
}

// NewSiteThemeStore returns a store backed by the given database.
func NewSiteThemeStore(db *sql.DB) *SiteThemeStore {
	return &SiteThemeStore{db: db}
}

// Get returns the saved theme, or nil if none exists yet. Callers fall
// back to models.DefaultSiteTheme so public pages always have styling.
func (s *SiteThemeStore) Get() (*models.SiteTheme, error) {
	t := &models.SiteTheme{}
	err := s.db.QueryRow(`
		SELECT id, primary_color, secondary_color, accent_color,
		       heading_font, body_font, updated_at
		FROM site_theme WHERE id = $1
	`, models.SingletonID).Scan(
		&t.ID, &t.PrimaryColor, &t.SecondaryColor, &t.AccentColor,
		&t.HeadingFont, &t.BodyFont, &t.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get site theme: %w", err)
	}
	return t, nil
}

// Upsert creates the row on first save and patches it thereafter.
// Defaults come from the table schema so a partial first save still
// yields a complete theme.
func (s *SiteThemeStore) Upsert(p *models.SiteThemePatch) (*models.SiteTheme, error) {
	def := models.DefaultSiteTheme()
	t := &models.SiteTheme{}
	err := s.db.QueryRow(`
		INSERT INTO site_theme (id, primary_color, secondary_color, accent_color,
		                        heading_font, body_font)
		VALUES ($1, COALESCE($2, $7), COALESCE($3, $8), COALESCE($4, $9),
		        COALESCE($5, $10), COALESCE($6, $11))
		ON CONFLICT (id) DO UPDATE SET
			primary_color   = COALESCE($2, site_theme.primary_color),
			secondary_color = COALESCE($3, site_theme.secondary_color),
			accent_color    = COALESCE($4, site_theme.accent_color),
			heading_font    = COALESCE($5, site_theme.heading_font),
			body_font       = COALESCE($6, site_theme.body_font),
			updated_at      = NOW()
		RETURNING id, primary_color, secondary_color, accent_color,
		          heading_font, body_font, updated_at
	`, models.SingletonID, p.PrimaryColor, p.SecondaryColor, p.AccentColor,
		p.HeadingFont, p.BodyFont,
		def.PrimaryColor, def.SecondaryColor, def.AccentColor,
		def.HeadingFont, def.BodyFont).Scan(
		&t.ID, &t.PrimaryColor, &t.SecondaryColor, &t.AccentColor,
		&t.HeadingFont, &t.BodyFont, &t.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("upsert site theme: %w", err)
	}
	return t, nil
}
