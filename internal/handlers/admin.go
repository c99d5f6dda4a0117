// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package handlers contains the HTTP handlers for Archfolio. Handlers
// are grouped by concern (admin, public, auth) and receive their
// dependencies through the handler struct.
package handlers

import (
	"context"
	"database/sql"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"archfolio/internal/cache"
	"archfolio/internal/models"
	"archfolio/internal/render"
	"archfolio/internal/session"
	"archfolio/internal/storage"
	"archfolio/internal/store"
)

// Stores bundles every entity store the admin panel touches. It keeps
// the Admin constructor signature manageable.
type Stores struct {
	Users        *store.UserStore
	HomeIntro    *store.HomeIntroStore
	About        *store.AboutContentStore
	CEO          *store.CEOProfileStore
	Contact      *store.ContactInfoStore
	Theme        *store.SiteThemeStore
	HeroSlides   *store.HeroSlideStore
	Team         *store.TeamMemberStore
	Categories   *store.ProjectCategoryStore
	Projects     *store.ProjectStore
	Gallery      *store.GalleryImageStore
	Timeline     *store.TimelineEntryStore
	Jobs         *store.JobPositionStore
	Applications *store.JobApplicationStore
}

// NewStores constructs every entity store against the given database.
func NewStores(db *sql.DB) *Stores {
	return &Stores{
		Users:        store.NewUserStore(db),
		HomeIntro:    store.NewHomeIntroStore(db),
		About:        store.NewAboutContentStore(db),
		CEO:          store.NewCEOProfileStore(db),
		Contact:      store.NewContactInfoStore(db),
		Theme:        store.NewSiteThemeStore(db),
		HeroSlides:   store.NewHeroSlideStore(db),
		Team:         store.NewTeamMemberStore(db),
		Categories:   store.NewProjectCategoryStore(db),
		Projects:     store.NewProjectStore(db),
		Gallery:      store.NewGalleryImageStore(db),
		Timeline:     store.NewTimelineEntryStore(db),
		Jobs:         store.NewJobPositionStore(db),
		Applications: store.NewJobApplicationStore(db),
	}
}

// Admin groups all admin panel HTTP handlers and their dependencies.
// storageClient and pageCache may be nil when S3 or Valkey are not
// configured; handlers degrade accordingly.
type Admin struct {
	renderer      *render.Renderer
	sessions      *session.Store
	stores        *Stores
	storageClient *storage.Client
	pageCache     *cache.PageCache
}

// NewAdmin creates a new Admin handler group.
func NewAdmin(renderer *render.Renderer, sessions *session.Store, stores *Stores, storageClient *storage.Client, pageCache *cache.PageCache) *Admin {
	return &Admin{
		renderer:      renderer,
		sessions:      sessions,
		stores:        stores,
		storageClient: storageClient,
		pageCache:     pageCache,
	}
}

// Dashboard renders the admin landing page with content counts.
func (a *Admin) Dashboard(w http.ResponseWriter, r *http.Request) {
	data := map[string]any{
		"ProjectCount": 0,
		"TeamCount":    0,
		"SlideCount":   0,
		"OpenJobCount": 0,
	}

	projects, err := a.stores.Projects.List(false)
	if err != nil {
		slog.Error("dashboard load failed", "error", err)
		data["Error"] = "Could not load content counts."
	} else {
		data["ProjectCount"] = len(projects)
		if members, err := a.stores.Team.List(false); err == nil {
			data["TeamCount"] = len(members)
		}
		if slides, err := a.stores.HeroSlides.List(false); err == nil {
			data["SlideCount"] = len(slides)
		}
		if jobs, err := a.stores.Jobs.List(true); err == nil {
			data["OpenJobCount"] = len(jobs)
		}
	}

	a.renderer.Page(w, r, "dashboard", &render.PageData{
		Title:   "Dashboard",
		Section: "dashboard",
		Data:    data,
	})
}

// invalidate drops the given public paths from the page cache. No-op
// when Valkey is not configured.
func (a *Admin) invalidate(ctx context.Context, paths ...string) {
	if a.pageCache != nil {
		a.pageCache.Invalidate(ctx, paths...)
	}
}

// invalidateProjects drops the project listing and every detail page.
func (a *Admin) invalidateProjects(ctx context.Context) {
	if a.pageCache != nil {
		a.pageCache.InvalidatePrefix(ctx, "/projects")
		a.pageCache.Invalidate(ctx, "/")
	}
}

// errorFlash wraps a message as a single error flash for re-rendering
// a form after a failed mutation.
func errorFlash(msg string) []render.Flash {
	return []render.Flash{{Type: "error", Message: msg}}
}

// urlID parses the {id} chi URL parameter. On failure it writes a 400
// and returns false.
func urlID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "Invalid ID", http.StatusBadRequest)
		return uuid.Nil, false
	}
	return id, true
}

// formPtr returns a pointer to the trimmed form value, or nil when the
// field was absent from the submission. Present-but-empty fields yield
// a pointer to "" so they clear the stored value.
func formPtr(r *http.Request, key string) *string {
	if _, ok := r.Form[key]; !ok {
		return nil
	}
	v := strings.TrimSpace(r.FormValue(key))
	return &v
}

// formBool interprets a checkbox field: present and "true" → true,
// anything else → false. Checkbox forms always submit the full state,
// so the pointer is never nil.
func formBool(r *http.Request, key string) *bool {
	v := r.FormValue(key) == "true"
	return &v
}

// formInt parses an integer form field, returning nil when the field
// is absent or not a number.
func formInt(r *http.Request, key string) *int {
	if _, ok := r.Form[key]; !ok {
		return nil
	}
	n, err := strconv.Atoi(strings.TrimSpace(r.FormValue(key)))
	if err != nil {
		return nil
	}
	return &n
}

// parseReorderIDs reads the ids form field (comma-separated UUIDs) used
// by the drag-to-reorder endpoints. Malformed entries are skipped.
func parseReorderIDs(r *http.Request) []uuid.UUID {
	var ids []uuid.UUID
	for _, part := range strings.Split(r.FormValue("ids"), ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		if id, err := uuid.Parse(part); err == nil {
			ids = append(ids, id)
		}
	}
	return ids
}

// FilterProjects returns the projects matching every given criterion:
// case-insensitive substring match on the title, category equality, and
// status equality. An empty query, nil categoryID, and empty status each
// match everything; criteria that are set must all hold. Input order is
// preserved.
func FilterProjects(projects []*models.Project, query string, categoryID *uuid.UUID, status models.ProjectStatus) []*models.Project {
	query = strings.ToLower(strings.TrimSpace(query))
	out := make([]*models.Project, 0, len(projects))
	for _, p := range projects {
		if query != "" && !strings.Contains(strings.ToLower(p.Title), query) {
			continue
		}
		if categoryID != nil && (p.CategoryID == nil || *p.CategoryID != *categoryID) {
			continue
		}
		if status != "" && p.Status != status {
			continue
		}
		out = append(out, p)
	}
	return out
}
