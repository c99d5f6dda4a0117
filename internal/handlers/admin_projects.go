// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"archfolio/internal/models"
	"archfolio/internal/render"
	"archfolio/internal/slug"
)

// projectsListPage renders the portfolio list. The q, category, and
// status query parameters filter the list; every set criterion must
// match. Mutation handlers re-render it with an error flash when a
// write fails.
func (a *Admin) projectsListPage(w http.ResponseWriter, r *http.Request, flashes []render.Flash) {
	data := map[string]any{"Statuses": models.ProjectStatuses}

	projects, err := a.stores.Projects.List(false)
	if err != nil {
		slog.Error("list projects failed", "error", err)
		data["Error"] = "Could not load the projects."
	}
	categories, err := a.stores.Categories.List()
	if err != nil {
		slog.Error("list categories failed", "error", err)
		data["Error"] = "Could not load the projects."
	}

	var filterCategory *uuid.UUID
	if raw := r.URL.Query().Get("category"); raw != "" {
		if id, err := uuid.Parse(raw); err == nil {
			filterCategory = &id
		}
	}
	filterStatus := models.ProjectStatus(r.URL.Query().Get("status"))
	if !filterStatus.Valid() {
		filterStatus = ""
	}

	filterQuery := r.URL.Query().Get("q")

	data["Projects"] = FilterProjects(projects, filterQuery, filterCategory, filterStatus)
	data["Categories"] = categories
	data["FilterQuery"] = filterQuery
	data["FilterCategory"] = filterCategory
	data["FilterStatus"] = string(filterStatus)

	a.renderer.Page(w, r, "projects", &render.PageData{
		Title:   "Projects",
		Section: "projects",
		Data:    data,
		Flashes: flashes,
	})
}

// ProjectsList renders the filtered portfolio list.
func (a *Admin) ProjectsList(w http.ResponseWriter, r *http.Request) {
	a.projectsListPage(w, r, nil)
}

// ProjectCreate adds a new project from the add form. The slug comes
// from the title; a numeric suffix resolves collisions.
func (a *Admin) ProjectCreate(w http.ResponseWriter, r *http.Request) {
	r.ParseForm()
	title := strings.TrimSpace(r.FormValue("title"))
	if msg := validateTitle(title); msg != "" {
		a.projectsListPage(w, r, errorFlash(msg))
		return
	}

	var categoryID *uuid.UUID
	if raw := r.FormValue("category_id"); raw != "" {
		if id, err := uuid.Parse(raw); err == nil {
			categoryID = &id
		}
	}
	status := models.ProjectStatus(r.FormValue("status"))
	if !status.Valid() {
		status = models.ProjectStatusConcept
	}

	projectSlug, err := a.uniqueProjectSlug(title)
	if err != nil {
		slog.Error("slug lookup failed", "error", err)
		a.projectsListPage(w, r, errorFlash("Could not save the project. Please try again."))
		return
	}

	if _, err := a.stores.Projects.Create(title, projectSlug, categoryID, status); err != nil {
		slog.Error("create project failed", "error", err)
		a.projectsListPage(w, r, errorFlash("Could not save the project. Please try again."))
		return
	}
	a.invalidateProjects(r.Context())
	http.Redirect(w, r, "/admin/projects", http.StatusSeeOther)
}

// uniqueProjectSlug slugifies the title and appends -2, -3, ... until
// the slug is free.
func (a *Admin) uniqueProjectSlug(title string) (string, error) {
	base := slug.Generate(title)
	candidate := base
	for i := 2; ; i++ {
		existing, err := a.stores.Projects.FindBySlug(candidate)
		if err != nil {
			return "", err
		}
		if existing == nil {
			return candidate, nil
		}
		candidate = base + "-" + strconv.Itoa(i)
	}
}

// projectEditPage renders the edit form plus the project's gallery.
func (a *Admin) projectEditPage(w http.ResponseWriter, r *http.Request, id uuid.UUID, flashes []render.Flash) {
	project, err := a.stores.Projects.FindByID(id)
	if err != nil {
		slog.Error("find project failed", "error", err)
		a.projectsListPage(w, r, errorFlash("Could not load the project. Please try again."))
		return
	}
	if project == nil {
		http.NotFound(w, r)
		return
	}

	categories, _ := a.stores.Categories.List()
	gallery, err := a.stores.Gallery.ListByProject(id)
	if err != nil {
		slog.Error("list gallery failed", "error", err)
	}

	a.renderer.Page(w, r, "project_edit", &render.PageData{
		Title:   "Edit Project",
		Section: "projects",
		Data: map[string]any{
			"Project":    project,
			"Categories": categories,
			"Gallery":    gallery,
			"Statuses":   models.ProjectStatuses,
		},
		Flashes: flashes,
	})
}

// ProjectEditPage renders the edit form plus the project's gallery.
func (a *Admin) ProjectEditPage(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(w, r)
	if !ok {
		return
	}
	a.projectEditPage(w, r, id, nil)
}

// ProjectUpdate applies the edit form as a patch. An empty category
// select clears the category; the double pointer distinguishes that
// from a form without the field.
func (a *Admin) ProjectUpdate(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(w, r)
	if !ok {
		return
	}
	r.ParseForm()
	if msg := validateTitle(r.FormValue("title")); msg != "" {
		a.projectEditPage(w, r, id, errorFlash(msg))
		return
	}
	if msg := validateMarkdownBody(r.FormValue("description")); msg != "" {
		a.projectEditPage(w, r, id, errorFlash(msg))
		return
	}

	patch := &models.ProjectPatch{
		Title:         formPtr(r, "title"),
		Location:      formPtr(r, "location"),
		Year:          formInt(r, "year"),
		AreaSqm:       formInt(r, "area_sqm"),
		Client:        formPtr(r, "client"),
		Description:   formPtr(r, "description"),
		CoverImageURL: formPtr(r, "cover_image_url"),
		IsFeatured:    formBool(r, "is_featured"),
		IsActive:      formBool(r, "is_active"),
	}
	if status := models.ProjectStatus(r.FormValue("status")); status.Valid() {
		patch.Status = &status
	}
	if _, present := r.Form["category_id"]; present {
		var categoryID *uuid.UUID
		if raw := r.FormValue("category_id"); raw != "" {
			if parsed, err := uuid.Parse(raw); err == nil {
				categoryID = &parsed
			}
		}
		patch.CategoryID = &categoryID
	}

	project, err := a.stores.Projects.Update(id, patch)
	if err != nil {
		slog.Error("update project failed", "error", err)
		a.projectEditPage(w, r, id, errorFlash("Could not save the project. Please try again."))
		return
	}
	if project == nil {
		http.NotFound(w, r)
		return
	}
	a.invalidateProjects(r.Context())
	http.Redirect(w, r, "/admin/projects/"+id.String(), http.StatusSeeOther)
}

// ProjectDelete removes a project, its gallery rows (schema cascade)
// and, best-effort, every stored asset. Asset cleanup failures are
// logged and never block the delete.
func (a *Admin) ProjectDelete(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(w, r)
	if !ok {
		return
	}
	project, err := a.stores.Projects.FindByID(id)
	if err != nil {
		slog.Error("find project failed", "error", err)
		a.projectsListPage(w, r, errorFlash("Could not delete the project. Please try again."))
		return
	}
	if project == nil {
		http.Redirect(w, r, "/admin/projects", http.StatusSeeOther)
		return
	}

	gallery, err := a.stores.Gallery.ListByProject(id)
	if err != nil {
		slog.Error("list gallery failed", "error", err)
	}

	if err := a.stores.Projects.Delete(id); err != nil {
		slog.Error("delete project failed", "error", err)
		a.projectsListPage(w, r, errorFlash("Could not delete the project. Please try again."))
		return
	}

	if a.storageClient != nil {
		ctx := r.Context()
		if project.CoverImageURL != "" {
			if err := a.storageClient.DeleteByURL(ctx, project.CoverImageURL); err != nil {
				slog.Warn("cover image cleanup failed", "error", err, "url", project.CoverImageURL)
			}
		}
		for _, g := range gallery {
			if err := a.storageClient.DeleteByURL(ctx, g.ImageURL); err != nil {
				slog.Warn("gallery image cleanup failed", "error", err, "url", g.ImageURL)
			}
			if g.ThumbURL != "" {
				if err := a.storageClient.DeleteByURL(ctx, g.ThumbURL); err != nil {
					slog.Warn("gallery thumb cleanup failed", "error", err, "url", g.ThumbURL)
				}
			}
		}
	}
	a.invalidateProjects(r.Context())
	http.Redirect(w, r, "/admin/projects", http.StatusSeeOther)
}

// ProjectReorder rewrites the portfolio order.
func (a *Admin) ProjectReorder(w http.ResponseWriter, r *http.Request) {
	r.ParseForm()
	if err := a.stores.Projects.Reorder(parseReorderIDs(r)); err != nil {
		slog.Error("reorder projects failed", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	a.invalidateProjects(r.Context())
	w.WriteHeader(http.StatusOK)
}

// categoriesListPage renders the category list with counts.
func (a *Admin) categoriesListPage(w http.ResponseWriter, r *http.Request, flashes []render.Flash) {
	data := map[string]any{}
	categories, err := a.stores.Categories.List()
	if err != nil {
		slog.Error("list categories failed", "error", err)
		data["Error"] = "Could not load the categories."
	}
	data["Categories"] = categories

	a.renderer.Page(w, r, "categories", &render.PageData{
		Title:   "Categories",
		Section: "categories",
		Data:    data,
		Flashes: flashes,
	})
}

// CategoriesList renders the category list with counts.
func (a *Admin) CategoriesList(w http.ResponseWriter, r *http.Request) {
	a.categoriesListPage(w, r, nil)
}

// CategoryCreate adds a category, slugged from its name.
func (a *Admin) CategoryCreate(w http.ResponseWriter, r *http.Request) {
	r.ParseForm()
	name := strings.TrimSpace(r.FormValue("name"))
	if msg := validateName(name); msg != "" {
		a.categoriesListPage(w, r, errorFlash(msg))
		return
	}

	categorySlug := slug.Generate(name)
	if existing, err := a.stores.Categories.FindBySlug(categorySlug); err != nil {
		slog.Error("category slug lookup failed", "error", err)
		a.categoriesListPage(w, r, errorFlash("Could not save the category. Please try again."))
		return
	} else if existing != nil {
		a.categoriesListPage(w, r, errorFlash("A category with that name already exists."))
		return
	}

	if _, err := a.stores.Categories.Create(name, categorySlug); err != nil {
		slog.Error("create category failed", "error", err)
		a.categoriesListPage(w, r, errorFlash("Could not save the category. Please try again."))
		return
	}
	a.invalidateProjects(r.Context())
	http.Redirect(w, r, "/admin/categories", http.StatusSeeOther)
}

// CategoryDelete removes a category. The schema clears category_id on
// its projects, so portfolio entries survive the delete.
func (a *Admin) CategoryDelete(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(w, r)
	if !ok {
		return
	}
	if err := a.stores.Categories.Delete(id); err != nil {
		slog.Error("delete category failed", "error", err)
		a.categoriesListPage(w, r, errorFlash("Could not delete the category. Please try again."))
		return
	}
	a.invalidateProjects(r.Context())
	http.Redirect(w, r, "/admin/categories", http.StatusSeeOther)
}

// CategoryReorder rewrites the category order.
func (a *Admin) CategoryReorder(w http.ResponseWriter, r *http.Request) {
	r.ParseForm()
	if err := a.stores.Categories.Reorder(parseReorderIDs(r)); err != nil {
		slog.Error("reorder categories failed", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	a.invalidateProjects(r.Context())
	w.WriteHeader(http.StatusOK)
}

// GalleryAdd appends an image to a project's gallery. The image URL is
// required; a gallery row without one has nothing to show.
func (a *Admin) GalleryAdd(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(w, r)
	if !ok {
		return
	}
	r.ParseForm()
	imageURL := strings.TrimSpace(r.FormValue("image_url"))
	if imageURL == "" {
		a.projectEditPage(w, r, id, errorFlash("An image is required."))
		return
	}

	project, err := a.stores.Projects.FindByID(id)
	if err != nil {
		slog.Error("find project failed", "error", err)
		a.projectsListPage(w, r, errorFlash("Could not save the image. Please try again."))
		return
	}
	if project == nil {
		http.NotFound(w, r)
		return
	}

	if _, err := a.stores.Gallery.Create(id, imageURL, r.FormValue("thumb_url"), r.FormValue("caption")); err != nil {
		slog.Error("create gallery image failed", "error", err)
		a.projectEditPage(w, r, id, errorFlash("Could not save the image. Please try again."))
		return
	}
	a.invalidate(r.Context(), "/projects/"+project.Slug)
	http.Redirect(w, r, "/admin/projects/"+id.String(), http.StatusSeeOther)
}

// GalleryDelete removes a gallery image row and, best-effort, its
// stored objects.
func (a *Admin) GalleryDelete(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(w, r)
	if !ok {
		return
	}
	img, err := a.stores.Gallery.FindByID(id)
	if err != nil {
		slog.Error("find gallery image failed", "error", err)
		a.projectsListPage(w, r, errorFlash("Could not delete the image. Please try again."))
		return
	}
	if img == nil {
		http.NotFound(w, r)
		return
	}

	if err := a.stores.Gallery.Delete(id); err != nil {
		slog.Error("delete gallery image failed", "error", err)
		a.projectEditPage(w, r, img.ProjectID, errorFlash("Could not delete the image. Please try again."))
		return
	}
	if a.storageClient != nil {
		ctx := r.Context()
		if err := a.storageClient.DeleteByURL(ctx, img.ImageURL); err != nil {
			slog.Warn("gallery image cleanup failed", "error", err, "url", img.ImageURL)
		}
		if img.ThumbURL != "" {
			if err := a.storageClient.DeleteByURL(ctx, img.ThumbURL); err != nil {
				slog.Warn("gallery thumb cleanup failed", "error", err, "url", img.ThumbURL)
			}
		}
	}

	project, _ := a.stores.Projects.FindByID(img.ProjectID)
	if project != nil {
		a.invalidate(r.Context(), "/projects/"+project.Slug)
		http.Redirect(w, r, "/admin/projects/"+project.ID.String(), http.StatusSeeOther)
		return
	}
	http.Redirect(w, r, "/admin/projects", http.StatusSeeOther)
}

// GalleryReorder rewrites one gallery's order.
func (a *Admin) GalleryReorder(w http.ResponseWriter, r *http.Request) {
	r.ParseForm()
	if err := a.stores.Gallery.Reorder(parseReorderIDs(r)); err != nil {
		slog.Error("reorder gallery failed", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	a.invalidateProjects(r.Context())
	w.WriteHeader(http.StatusOK)
}
