// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"archfolio/internal/models"
	"archfolio/internal/render"
)

// cvPresignExpiry is how long a CV download link stays valid.
const cvPresignExpiry = 1 * time.Hour

// jobsListPage renders the positions list with application counts.
func (a *Admin) jobsListPage(w http.ResponseWriter, r *http.Request, flashes []render.Flash) {
	data := map[string]any{"EmploymentTypes": models.EmploymentTypes}

	positions, err := a.stores.Jobs.List(false)
	if err != nil {
		slog.Error("list job positions failed", "error", err)
		data["Error"] = "Could not load the positions."
	}
	counts, err := a.stores.Applications.CountByPosition()
	if err != nil {
		slog.Error("count applications failed", "error", err)
		counts = map[uuid.UUID]int{}
	}

	data["Positions"] = positions
	data["AppCounts"] = counts

	a.renderer.Page(w, r, "jobs", &render.PageData{
		Title:   "Careers",
		Section: "jobs",
		Data:    data,
		Flashes: flashes,
	})
}

// JobsList renders the positions list with application counts.
func (a *Admin) JobsList(w http.ResponseWriter, r *http.Request) {
	a.jobsListPage(w, r, nil)
}

// JobCreate appends a new position from the add form.
func (a *Admin) JobCreate(w http.ResponseWriter, r *http.Request) {
	r.ParseForm()
	if msg := validateTitle(r.FormValue("title")); msg != "" {
		a.jobsListPage(w, r, errorFlash(msg))
		return
	}
	empType := models.EmploymentType(r.FormValue("employment_type"))
	if !empType.Valid() {
		empType = models.EmploymentFullTime
	}

	_, err := a.stores.Jobs.Create(
		r.FormValue("title"),
		r.FormValue("department"),
		r.FormValue("location"),
		empType,
	)
	if err != nil {
		slog.Error("create job position failed", "error", err)
		a.jobsListPage(w, r, errorFlash("Could not save the position. Please try again."))
		return
	}
	a.invalidate(r.Context(), "/careers")
	http.Redirect(w, r, "/admin/jobs", http.StatusSeeOther)
}

// JobEditPage renders the edit form for one position.
func (a *Admin) JobEditPage(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(w, r)
	if !ok {
		return
	}
	position, err := a.stores.Jobs.FindByID(id)
	if err != nil {
		slog.Error("find job position failed", "error", err)
		a.jobsListPage(w, r, errorFlash("Could not load the position. Please try again."))
		return
	}
	if position == nil {
		http.NotFound(w, r)
		return
	}

	a.renderer.Page(w, r, "job_edit", &render.PageData{
		Title:   "Edit Position",
		Section: "jobs",
		Data: map[string]any{
			"Position":        position,
			"EmploymentTypes": models.EmploymentTypes,
		},
	})
}

// JobUpdate applies the edit form as a patch.
func (a *Admin) JobUpdate(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(w, r)
	if !ok {
		return
	}
	r.ParseForm()
	if msg := validateTitle(r.FormValue("title")); msg != "" {
		a.jobsListPage(w, r, errorFlash(msg))
		return
	}
	if msg := validateOptionalEmail(r.FormValue("apply_email")); msg != "" {
		a.jobsListPage(w, r, errorFlash(msg))
		return
	}

	patch := &models.JobPositionPatch{
		Title:       formPtr(r, "title"),
		Department:  formPtr(r, "department"),
		Location:    formPtr(r, "location"),
		Description: formPtr(r, "description"),
		ApplyEmail:  formPtr(r, "apply_email"),
		IsOpen:      formBool(r, "is_open"),
	}
	if empType := models.EmploymentType(r.FormValue("employment_type")); empType.Valid() {
		patch.EmploymentType = &empType
	}

	position, err := a.stores.Jobs.Update(id, patch)
	if err != nil {
		slog.Error("update job position failed", "error", err)
		a.jobsListPage(w, r, errorFlash("Could not save the position. Please try again."))
		return
	}
	if position == nil {
		http.NotFound(w, r)
		return
	}
	a.invalidate(r.Context(), "/careers")
	http.Redirect(w, r, "/admin/jobs", http.StatusSeeOther)
}

// JobDelete removes a position. Its applications cascade away, so
// their CVs are cleaned from the private bucket first, best-effort.
func (a *Admin) JobDelete(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(w, r)
	if !ok {
		return
	}

	apps, err := a.stores.Applications.List(&id)
	if err != nil {
		slog.Error("list applications failed", "error", err)
	}

	if err := a.stores.Jobs.Delete(id); err != nil {
		slog.Error("delete job position failed", "error", err)
		a.jobsListPage(w, r, errorFlash("Could not delete the position. Please try again."))
		return
	}

	if a.storageClient != nil {
		for _, app := range apps {
			if app.CVKey == nil {
				continue
			}
			if err := a.storageClient.DeletePrivate(r.Context(), *app.CVKey); err != nil {
				slog.Warn("cv cleanup failed", "error", err, "key", *app.CVKey)
			}
		}
	}
	a.invalidate(r.Context(), "/careers")
	http.Redirect(w, r, "/admin/jobs", http.StatusSeeOther)
}

// JobReorder rewrites the careers list order.
func (a *Admin) JobReorder(w http.ResponseWriter, r *http.Request) {
	r.ParseForm()
	if err := a.stores.Jobs.Reorder(parseReorderIDs(r)); err != nil {
		slog.Error("reorder job positions failed", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	a.invalidate(r.Context(), "/careers")
	w.WriteHeader(http.StatusOK)
}

// applicationView pairs an application with a short-lived download
// link for its CV, resolved from the private bucket.
type applicationView struct {
	*models.JobApplication
	CVURL string
}

// applicationsListPage renders all submitted applications, newest first.
func (a *Admin) applicationsListPage(w http.ResponseWriter, r *http.Request, flashes []render.Flash) {
	data := map[string]any{}

	apps, err := a.stores.Applications.List(nil)
	if err != nil {
		slog.Error("list applications failed", "error", err)
		data["Error"] = "Could not load the applications."
	}

	views := make([]applicationView, 0, len(apps))
	for _, app := range apps {
		v := applicationView{JobApplication: app}
		if app.CVKey != nil && a.storageClient != nil {
			url, err := a.storageClient.PresignedURL(r.Context(), *app.CVKey, cvPresignExpiry)
			if err != nil {
				slog.Warn("cv presign failed", "error", err, "key", *app.CVKey)
			} else {
				v.CVURL = url
			}
		}
		views = append(views, v)
	}
	data["Applications"] = views

	a.renderer.Page(w, r, "applications", &render.PageData{
		Title:   "Applications",
		Section: "applications",
		Data:    data,
		Flashes: flashes,
	})
}

// ApplicationsList renders all submitted applications, newest first.
func (a *Admin) ApplicationsList(w http.ResponseWriter, r *http.Request) {
	a.applicationsListPage(w, r, nil)
}

// ApplicationDelete removes an application and, best-effort, its CV.
func (a *Admin) ApplicationDelete(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(w, r)
	if !ok {
		return
	}
	app, err := a.stores.Applications.FindByID(id)
	if err != nil {
		slog.Error("find application failed", "error", err)
		a.applicationsListPage(w, r, errorFlash("Could not delete the application. Please try again."))
		return
	}
	if app == nil {
		http.Redirect(w, r, "/admin/applications", http.StatusSeeOther)
		return
	}

	if err := a.stores.Applications.Delete(id); err != nil {
		slog.Error("delete application failed", "error", err)
		a.applicationsListPage(w, r, errorFlash("Could not delete the application. Please try again."))
		return
	}
	if app.CVKey != nil && a.storageClient != nil {
		if err := a.storageClient.DeletePrivate(r.Context(), *app.CVKey); err != nil {
			slog.Warn("cv cleanup failed", "error", err, "key", *app.CVKey)
		}
	}
	http.Redirect(w, r, "/admin/applications", http.StatusSeeOther)
}
