// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"log/slog"
	"net/http"

	"archfolio/internal/models"
	"archfolio/internal/render"
)

// contentPage renders the singleton content editors (homepage intro,
// about page, principal profile, contact details) on one page.
func (a *Admin) contentPage(w http.ResponseWriter, r *http.Request, flashes []render.Flash) {
	data := map[string]any{}

	intro, err := a.stores.HomeIntro.Get()
	if err != nil {
		slog.Error("load home intro failed", "error", err)
		data["Error"] = "Could not load site content."
	}
	about, err := a.stores.About.Get()
	if err != nil {
		slog.Error("load about failed", "error", err)
		data["Error"] = "Could not load site content."
	}
	ceo, err := a.stores.CEO.Get()
	if err != nil {
		slog.Error("load ceo profile failed", "error", err)
		data["Error"] = "Could not load site content."
	}
	contact, err := a.stores.Contact.Get()
	if err != nil {
		slog.Error("load contact failed", "error", err)
		data["Error"] = "Could not load site content."
	}

	data["HomeIntro"] = intro
	data["About"] = about
	data["CEO"] = ceo
	data["Contact"] = contact

	a.renderer.Page(w, r, "content", &render.PageData{
		Title:   "Site Content",
		Section: "content",
		Data:    data,
		Flashes: flashes,
	})
}

// ContentPage renders the singleton content editors on one page.
func (a *Admin) ContentPage(w http.ResponseWriter, r *http.Request) {
	a.contentPage(w, r, nil)
}

// SaveHomeIntro upserts the homepage intro block.
func (a *Admin) SaveHomeIntro(w http.ResponseWriter, r *http.Request) {
	r.ParseForm()
	_, err := a.stores.HomeIntro.Upsert(&models.HomeIntroPatch{
		Headline:    formPtr(r, "headline"),
		Subheadline: formPtr(r, "subheadline"),
		CTALabel:    formPtr(r, "cta_label"),
		CTAURL:      formPtr(r, "cta_url"),
	})
	if err != nil {
		slog.Error("save home intro failed", "error", err)
		a.contentPage(w, r, errorFlash("Could not save the intro. Please try again."))
		return
	}
	a.invalidate(r.Context(), "/")
	http.Redirect(w, r, "/admin/content", http.StatusSeeOther)
}

// SaveAbout upserts the about page block.
func (a *Admin) SaveAbout(w http.ResponseWriter, r *http.Request) {
	r.ParseForm()
	if msg := validateMarkdownBody(r.FormValue("body")); msg != "" {
		a.contentPage(w, r, errorFlash(msg))
		return
	}
	_, err := a.stores.About.Upsert(&models.AboutContentPatch{
		Heading:  formPtr(r, "heading"),
		Body:     formPtr(r, "body"),
		Mission:  formPtr(r, "mission"),
		Vision:   formPtr(r, "vision"),
		ImageURL: formPtr(r, "image_url"),
	})
	if err != nil {
		slog.Error("save about failed", "error", err)
		a.contentPage(w, r, errorFlash("Could not save the about page. Please try again."))
		return
	}
	a.invalidate(r.Context(), "/about")
	http.Redirect(w, r, "/admin/content", http.StatusSeeOther)
}

// SaveCEO upserts the principal profile. The profile appears on both
// the homepage and the staff page, so both paths are invalidated.
func (a *Admin) SaveCEO(w http.ResponseWriter, r *http.Request) {
	r.ParseForm()
	_, err := a.stores.CEO.Upsert(&models.CEOProfilePatch{
		Name:     formPtr(r, "name"),
		Title:    formPtr(r, "title"),
		Bio:      formPtr(r, "bio"),
		PhotoURL: formPtr(r, "photo_url"),
	})
	if err != nil {
		slog.Error("save ceo profile failed", "error", err)
		a.contentPage(w, r, errorFlash("Could not save the profile. Please try again."))
		return
	}
	a.invalidate(r.Context(), "/", "/staff")
	http.Redirect(w, r, "/admin/content", http.StatusSeeOther)
}

// SaveContact upserts the office contact block. Contact details render
// in the footer of every public page, so the whole cache is dropped.
func (a *Admin) SaveContact(w http.ResponseWriter, r *http.Request) {
	r.ParseForm()
	if msg := validateOptionalEmail(r.FormValue("email")); msg != "" {
		a.contentPage(w, r, errorFlash(msg))
		return
	}
	_, err := a.stores.Contact.Upsert(&models.ContactInfoPatch{
		Address:      formPtr(r, "address"),
		Phone:        formPtr(r, "phone"),
		Email:        formPtr(r, "email"),
		MapEmbedURL:  formPtr(r, "map_embed_url"),
		WorkingHours: formPtr(r, "working_hours"),
		InstagramURL: formPtr(r, "instagram_url"),
		LinkedInURL:  formPtr(r, "linkedin_url"),
	})
	if err != nil {
		slog.Error("save contact failed", "error", err)
		a.contentPage(w, r, errorFlash("Could not save the contact details. Please try again."))
		return
	}
	if a.pageCache != nil {
		a.pageCache.InvalidateAll(r.Context())
	}
	http.Redirect(w, r, "/admin/content", http.StatusSeeOther)
}

// themePage renders the theme editor.
func (a *Admin) themePage(w http.ResponseWriter, r *http.Request, flashes []render.Flash) {
	data := map[string]any{}

	theme, err := a.stores.Theme.Get()
	if err != nil {
		slog.Error("load theme failed", "error", err)
		data["Error"] = "Could not load the theme."
	}
	if theme == nil {
		theme = models.DefaultSiteTheme()
	}
	data["Theme"] = theme

	a.renderer.Page(w, r, "theme", &render.PageData{
		Title:   "Theme",
		Section: "theme",
		Data:    data,
		Flashes: flashes,
	})
}

// ThemePage renders the theme editor.
func (a *Admin) ThemePage(w http.ResponseWriter, r *http.Request) {
	a.themePage(w, r, nil)
}

// SaveTheme upserts the site theme. Colors must be hex; fonts are free
// text. The theme styles every public page, so the whole cache drops.
func (a *Admin) SaveTheme(w http.ResponseWriter, r *http.Request) {
	r.ParseForm()
	for _, key := range []string{"primary_color", "secondary_color", "accent_color"} {
		if msg := validateHexColor(r.FormValue(key)); msg != "" {
			a.themePage(w, r, errorFlash(msg))
			return
		}
	}
	for _, key := range []string{"heading_font", "body_font"} {
		if msg := validateFontName(r.FormValue(key)); msg != "" {
			a.themePage(w, r, errorFlash(msg))
			return
		}
	}

	_, err := a.stores.Theme.Upsert(&models.SiteThemePatch{
		PrimaryColor:   formPtr(r, "primary_color"),
		SecondaryColor: formPtr(r, "secondary_color"),
		AccentColor:    formPtr(r, "accent_color"),
		HeadingFont:    formPtr(r, "heading_font"),
		BodyFont:       formPtr(r, "body_font"),
	})
	if err != nil {
		slog.Error("save theme failed", "error", err)
		a.themePage(w, r, errorFlash("Could not save the theme. Please try again."))
		return
	}
	if a.pageCache != nil {
		a.pageCache.InvalidateAll(r.Context())
	}
	http.Redirect(w, r, "/admin/theme", http.StatusSeeOther)
}
