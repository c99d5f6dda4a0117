// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"bytes"
	"fmt"
	"html/template"
	"io"
	"log/slog"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"archfolio/internal/cache"
	"archfolio/internal/markdown"
	"archfolio/internal/models"
	"archfolio/internal/render"
	"archfolio/internal/storage"
)

// featuredProjectLimit caps the homepage project strip.
const featuredProjectLimit = 6

// maxCVSize caps uploaded CV files (10 MB).
const maxCVSize = 10 << 20

// Public groups handlers for the visitor-facing site. It checks the
// Valkey page cache before rendering, and stores rendered results on
// miss. Store failures degrade to empty content: the page renders with
// defaults rather than erroring, and the result is not cached.
type Public struct {
	renderer      *render.Renderer
	stores        *Stores
	storageClient *storage.Client
	pageCache     *cache.PageCache
}

// NewPublic creates a new Public handler group. storageClient and
// pageCache may be nil.
func NewPublic(renderer *render.Renderer, stores *Stores, storageClient *storage.Client, pageCache *cache.PageCache) *Public {
	return &Public{
		renderer:      renderer,
		stores:        stores,
		storageClient: storageClient,
		pageCache:     pageCache,
	}
}

// serveCached writes the cached page for the request path when one
// exists. Returns true when the response was served from cache.
func (p *Public) serveCached(w http.ResponseWriter, r *http.Request) bool {
	if p.pageCache == nil || r.URL.RawQuery != "" {
		return false
	}
	html, ok := p.pageCache.Get(r.Context(), r.URL.Path)
	if !ok {
		return false
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("X-Cache", "HIT")
	w.Write(html)
	return true
}

// renderPage executes the template, writes the response, and caches
// the result unless degraded is set. Query-string requests are never
// cached; the cache is keyed by path alone.
func (p *Public) renderPage(w http.ResponseWriter, r *http.Request, name string, data *render.PublicData, degraded bool) {
	var buf bytes.Buffer
	if err := p.renderer.Public(&buf, name, data); err != nil {
		slog.Error("public render failed", "template", name, "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	if p.pageCache != nil && !degraded && r.URL.RawQuery == "" {
		p.pageCache.Set(r.Context(), r.URL.Path, buf.Bytes())
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	io.Copy(w, &buf)
}

// siteChrome loads the theme and contact blocks shared by every public
// page. Failures log and fall back to defaults; the bool reports
// whether anything failed so the caller can skip caching.
func (p *Public) siteChrome(data *render.PublicData) bool {
	degraded := false

	theme, err := p.stores.Theme.Get()
	if err != nil {
		slog.Error("load theme failed", "error", err)
		degraded = true
	}
	if theme == nil {
		theme = models.DefaultSiteTheme()
	}
	data.Theme = theme

	contact, err := p.stores.Contact.Get()
	if err != nil {
		slog.Error("load contact failed", "error", err)
		degraded = true
	}
	if contact == nil {
		contact = &models.ContactInfo{}
	}
	data.Contact = contact

	return degraded
}

// Home renders the homepage: hero carousel, intro, featured projects,
// and the principal's profile.
func (p *Public) Home(w http.ResponseWriter, r *http.Request) {
	if p.serveCached(w, r) {
		return
	}

	data := &render.PublicData{
		Title:   "Archfolio — Architecture Studio",
		Section: "home",
		Data:    map[string]any{},
	}
	degraded := p.siteChrome(data)

	slides, err := p.stores.HeroSlides.List(true)
	if err != nil {
		slog.Error("load hero slides failed", "error", err)
		degraded = true
	}
	intro, err := p.stores.HomeIntro.Get()
	if err != nil {
		slog.Error("load home intro failed", "error", err)
		degraded = true
	}
	featured, err := p.stores.Projects.ListFeatured(featuredProjectLimit)
	if err != nil {
		slog.Error("load featured projects failed", "error", err)
		degraded = true
	}
	ceo, err := p.stores.CEO.Get()
	if err != nil {
		slog.Error("load ceo profile failed", "error", err)
		degraded = true
	}

	data.Data["Slides"] = slides
	data.Data["Intro"] = intro
	data.Data["Featured"] = featured
	data.Data["CEO"] = ceo

	p.renderPage(w, r, "home", data, degraded)
}

// About renders the firm profile with the history timeline.
func (p *Public) About(w http.ResponseWriter, r *http.Request) {
	if p.serveCached(w, r) {
		return
	}

	data := &render.PublicData{
		Title:   "About — Archfolio",
		Section: "about",
		Data:    map[string]any{},
	}
	degraded := p.siteChrome(data)

	about, err := p.stores.About.Get()
	if err != nil {
		slog.Error("load about failed", "error", err)
		degraded = true
	}
	if about != nil && about.Body != "" {
		html, err := markdown.ToHTML(about.Body)
		if err != nil {
			slog.Warn("about markdown failed", "error", err)
		} else {
			data.Data["AboutHTML"] = html
		}
	}
	timeline, err := p.stores.Timeline.List(true)
	if err != nil {
		slog.Error("load timeline failed", "error", err)
		degraded = true
	}

	data.Data["About"] = about
	data.Data["Timeline"] = timeline

	p.renderPage(w, r, "about", data, degraded)
}

// Projects renders the portfolio listing. The category query parameter
// narrows the list by category slug; filtered views are not cached.
func (p *Public) Projects(w http.ResponseWriter, r *http.Request) {
	if p.serveCached(w, r) {
		return
	}

	data := &render.PublicData{
		Title:   "Projects — Archfolio",
		Section: "projects",
		Data:    map[string]any{},
	}
	degraded := p.siteChrome(data)

	projects, err := p.stores.Projects.List(true)
	if err != nil {
		slog.Error("load projects failed", "error", err)
		degraded = true
	}
	categories, err := p.stores.Categories.List()
	if err != nil {
		slog.Error("load categories failed", "error", err)
		degraded = true
	}

	activeSlug := r.URL.Query().Get("category")
	if activeSlug != "" {
		var categoryID *uuid.UUID
		for _, c := range categories {
			if c.Slug == activeSlug {
				id := c.ID
				categoryID = &id
				break
			}
		}
		if categoryID != nil {
			projects = FilterProjects(projects, "", categoryID, "")
		} else {
			activeSlug = ""
		}
	}

	data.Data["Projects"] = projects
	data.Data["Categories"] = categories
	data.Data["ActiveCategory"] = activeSlug

	p.renderPage(w, r, "projects", data, degraded)
}

// ProjectDetail renders one project page with its gallery.
func (p *Public) ProjectDetail(w http.ResponseWriter, r *http.Request) {
	if p.serveCached(w, r) {
		return
	}

	projectSlug := chi.URLParam(r, "slug")
	project, err := p.stores.Projects.FindBySlug(projectSlug)
	if err != nil {
		slog.Error("load project failed", "error", err, "slug", projectSlug)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	if project == nil || !project.IsActive {
		http.NotFound(w, r)
		return
	}

	data := &render.PublicData{
		Title:   project.Title + " — Archfolio",
		Section: "projects",
		Data:    map[string]any{"Project": project},
	}
	degraded := p.siteChrome(data)

	if project.Description != "" {
		html, err := markdown.ToHTML(project.Description)
		if err != nil {
			slog.Warn("project markdown failed", "error", err, "slug", projectSlug)
		} else {
			data.Data["DescriptionHTML"] = html
		}
	}

	gallery, err := p.stores.Gallery.ListByProject(project.ID)
	if err != nil {
		slog.Error("load gallery failed", "error", err, "slug", projectSlug)
		degraded = true
	}
	data.Data["Gallery"] = gallery

	p.renderPage(w, r, "project_detail", data, degraded)
}

// Staff renders the team page: the principal first, then the roster.
func (p *Public) Staff(w http.ResponseWriter, r *http.Request) {
	if p.serveCached(w, r) {
		return
	}

	data := &render.PublicData{
		Title:   "Studio — Archfolio",
		Section: "staff",
		Data:    map[string]any{},
	}
	degraded := p.siteChrome(data)

	ceo, err := p.stores.CEO.Get()
	if err != nil {
		slog.Error("load ceo profile failed", "error", err)
		degraded = true
	}
	members, err := p.stores.Team.List(true)
	if err != nil {
		slog.Error("load team failed", "error", err)
		degraded = true
	}

	data.Data["CEO"] = ceo
	data.Data["Members"] = members

	p.renderPage(w, r, "staff", data, degraded)
}

// Careers renders the open positions with their application forms.
func (p *Public) Careers(w http.ResponseWriter, r *http.Request) {
	if p.serveCached(w, r) {
		return
	}

	data := &render.PublicData{
		Title:   "Careers — Archfolio",
		Section: "careers",
		Data:    map[string]any{},
	}
	degraded := p.siteChrome(data)

	positions, err := p.stores.Jobs.List(true)
	if err != nil {
		slog.Error("load job positions failed", "error", err)
		degraded = true
	}

	descriptions := make(map[uuid.UUID]template.HTML, len(positions))
	for _, pos := range positions {
		if pos.Description == "" {
			continue
		}
		html, err := markdown.ToHTML(pos.Description)
		if err != nil {
			slog.Warn("job markdown failed", "error", err, "id", pos.ID)
			continue
		}
		descriptions[pos.ID] = template.HTML(html)
	}

	data.Data["Positions"] = positions
	data.Data["DescriptionHTML"] = descriptions

	p.renderPage(w, r, "careers", data, degraded)
}

// CareersApply accepts an application for one position. An optional
// PDF CV is stored in the private bucket; its key is recorded with
// the application and resolved to a presigned URL in the admin panel.
func (p *Public) CareersApply(w http.ResponseWriter, r *http.Request) {
	positionID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "Invalid position", http.StatusBadRequest)
		return
	}

	position, err := p.stores.Jobs.FindByID(positionID)
	if err != nil {
		slog.Error("load job position failed", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	if position == nil || !position.IsOpen {
		http.NotFound(w, r)
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxCVSize+64<<10)
	if err := r.ParseMultipartForm(maxCVSize); err != nil {
		http.Error(w, "Upload too large. CVs are capped at 10 MB.", http.StatusRequestEntityTooLarge)
		return
	}

	name := strings.TrimSpace(r.FormValue("name"))
	if msg := validateName(name); msg != "" {
		http.Error(w, msg, http.StatusBadRequest)
		return
	}
	if msg := validateRequiredEmail(r.FormValue("email")); msg != "" {
		http.Error(w, msg, http.StatusBadRequest)
		return
	}

	var cvKey *string
	file, header, err := r.FormFile("cv")
	if err == nil {
		defer file.Close()
		cvData, err := io.ReadAll(io.LimitReader(file, maxCVSize+1))
		if err != nil {
			http.Error(w, "Failed to read CV.", http.StatusInternalServerError)
			return
		}
		if len(cvData) > maxCVSize {
			http.Error(w, "CV too large. Maximum size is 10 MB.", http.StatusRequestEntityTooLarge)
			return
		}
		if ct := http.DetectContentType(cvData); ct != "application/pdf" {
			http.Error(w, "CVs must be PDF files.", http.StatusBadRequest)
			return
		}
		if p.storageClient != nil {
			key := fmt.Sprintf("cv/%d/%s%s", time.Now().Year(), uuid.New(), filepath.Ext(header.Filename))
			if err := p.storageClient.UploadPrivate(r.Context(), key, "application/pdf", cvData); err != nil {
				slog.Error("cv upload failed", "error", err)
				http.Error(w, "Failed to store CV. Please try again.", http.StatusInternalServerError)
				return
			}
			cvKey = &key
		}
	}

	if _, err := p.stores.Applications.Create(positionID, name, r.FormValue("email"), r.FormValue("cover_note"), cvKey); err != nil {
		slog.Error("create application failed", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	http.Redirect(w, r, "/careers?applied=1", http.StatusSeeOther)
}

// Contact renders the office contact page.
func (p *Public) Contact(w http.ResponseWriter, r *http.Request) {
	if p.serveCached(w, r) {
		return
	}

	data := &render.PublicData{
		Title:   "Contact — Archfolio",
		Section: "contact",
		Data:    map[string]any{},
	}
	degraded := p.siteChrome(data)

	p.renderPage(w, r, "contact", data, degraded)
}
