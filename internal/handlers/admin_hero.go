// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"log/slog"
	"net/http"
	"strings"

	"archfolio/internal/models"
	"archfolio/internal/render"
)

// heroListPage renders the slide list with the add form. Mutation
// handlers re-render it with an error flash when a write fails.
func (a *Admin) heroListPage(w http.ResponseWriter, r *http.Request, flashes []render.Flash) {
	data := map[string]any{}
	slides, err := a.stores.HeroSlides.List(false)
	if err != nil {
		slog.Error("list hero slides failed", "error", err)
		data["Error"] = "Could not load the slides."
	}
	data["Slides"] = slides

	a.renderer.Page(w, r, "hero", &render.PageData{
		Title:   "Hero Slides",
		Section: "hero",
		Data:    data,
		Flashes: flashes,
	})
}

// HeroList renders the slide list with the add form.
func (a *Admin) HeroList(w http.ResponseWriter, r *http.Request) {
	a.heroListPage(w, r, nil)
}

// HeroCreate appends a new slide from the add form.
func (a *Admin) HeroCreate(w http.ResponseWriter, r *http.Request) {
	r.ParseForm()
	if msg := validateTitle(r.FormValue("title")); msg != "" {
		a.heroListPage(w, r, errorFlash(msg))
		return
	}
	if msg := validateURLField(r.FormValue("image_url")); msg != "" {
		a.heroListPage(w, r, errorFlash(msg))
		return
	}
	// The image is required: a slide without one renders as an empty
	// panel in the carousel.
	if strings.TrimSpace(r.FormValue("image_url")) == "" {
		a.heroListPage(w, r, errorFlash("A slide image is required."))
		return
	}

	_, err := a.stores.HeroSlides.Create(
		r.FormValue("title"),
		r.FormValue("subtitle"),
		r.FormValue("image_url"),
		r.FormValue("cta_label"),
		r.FormValue("cta_url"),
	)
	if err != nil {
		slog.Error("create hero slide failed", "error", err)
		a.heroListPage(w, r, errorFlash("Could not save the slide. Please try again."))
		return
	}
	a.invalidate(r.Context(), "/")
	http.Redirect(w, r, "/admin/hero", http.StatusSeeOther)
}

// HeroEditPage renders the edit form for one slide.
func (a *Admin) HeroEditPage(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(w, r)
	if !ok {
		return
	}
	slide, err := a.stores.HeroSlides.FindByID(id)
	if err != nil {
		slog.Error("find hero slide failed", "error", err)
		a.heroListPage(w, r, errorFlash("Could not load the slide. Please try again."))
		return
	}
	if slide == nil {
		http.NotFound(w, r)
		return
	}

	a.renderer.Page(w, r, "hero_edit", &render.PageData{
		Title:   "Edit Slide",
		Section: "hero",
		Data:    map[string]any{"Slide": slide},
	})
}

// HeroUpdate applies the edit form as a patch.
func (a *Admin) HeroUpdate(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(w, r)
	if !ok {
		return
	}
	r.ParseForm()
	if msg := validateTitle(r.FormValue("title")); msg != "" {
		a.heroListPage(w, r, errorFlash(msg))
		return
	}
	imageURL := formPtr(r, "image_url")
	// A submitted-but-empty image would clear the required field.
	if imageURL != nil && *imageURL == "" {
		a.heroListPage(w, r, errorFlash("A slide image is required."))
		return
	}

	slide, err := a.stores.HeroSlides.Update(id, &models.HeroSlidePatch{
		Title:    formPtr(r, "title"),
		Subtitle: formPtr(r, "subtitle"),
		ImageURL: imageURL,
		CTALabel: formPtr(r, "cta_label"),
		CTAURL:   formPtr(r, "cta_url"),
		IsActive: formBool(r, "is_active"),
	})
	if err != nil {
		slog.Error("update hero slide failed", "error", err)
		a.heroListPage(w, r, errorFlash("Could not save the slide. Please try again."))
		return
	}
	if slide == nil {
		http.NotFound(w, r)
		return
	}
	a.invalidate(r.Context(), "/")
	http.Redirect(w, r, "/admin/hero", http.StatusSeeOther)
}

// HeroDelete removes a slide and, best-effort, its stored image. The
// row goes first so the carousel never references a deleted asset.
func (a *Admin) HeroDelete(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(w, r)
	if !ok {
		return
	}
	slide, err := a.stores.HeroSlides.FindByID(id)
	if err != nil {
		slog.Error("find hero slide failed", "error", err)
		a.heroListPage(w, r, errorFlash("Could not delete the slide. Please try again."))
		return
	}
	if slide == nil {
		http.Redirect(w, r, "/admin/hero", http.StatusSeeOther)
		return
	}

	if err := a.stores.HeroSlides.Delete(id); err != nil {
		slog.Error("delete hero slide failed", "error", err)
		a.heroListPage(w, r, errorFlash("Could not delete the slide. Please try again."))
		return
	}
	if a.storageClient != nil && slide.ImageURL != "" {
		if err := a.storageClient.DeleteByURL(r.Context(), slide.ImageURL); err != nil {
			slog.Warn("slide image cleanup failed", "error", err, "url", slide.ImageURL)
		}
	}
	a.invalidate(r.Context(), "/")
	http.Redirect(w, r, "/admin/hero", http.StatusSeeOther)
}

// HeroReorder rewrites the carousel order from a comma-separated id
// list. The endpoint answers the drag-and-drop script, not a form, so
// failures come back as a plain status for the caller to report.
func (a *Admin) HeroReorder(w http.ResponseWriter, r *http.Request) {
	r.ParseForm()
	if err := a.stores.HeroSlides.Reorder(parseReorderIDs(r)); err != nil {
		slog.Error("reorder hero slides failed", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	a.invalidate(r.Context(), "/")
	w.WriteHeader(http.StatusOK)
}
