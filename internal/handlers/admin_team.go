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

// teamListPage renders the roster with the add form.
func (a *Admin) teamListPage(w http.ResponseWriter, r *http.Request, flashes []render.Flash) {
	data := map[string]any{"Roles": models.TeamRoles}
	members, err := a.stores.Team.List(false)
	if err != nil {
		slog.Error("list team failed", "error", err)
		data["Error"] = "Could not load the team."
	}
	data["Members"] = members

	a.renderer.Page(w, r, "team", &render.PageData{
		Title:   "Team",
		Section: "team",
		Data:    data,
		Flashes: flashes,
	})
}

// TeamList renders the roster with the add form.
func (a *Admin) TeamList(w http.ResponseWriter, r *http.Request) {
	a.teamListPage(w, r, nil)
}

// TeamCreate appends a new member from the add form.
func (a *Admin) TeamCreate(w http.ResponseWriter, r *http.Request) {
	r.ParseForm()
	if msg := validateName(r.FormValue("name")); msg != "" {
		a.teamListPage(w, r, errorFlash(msg))
		return
	}
	role := models.TeamRole(r.FormValue("role"))
	if !role.Valid() {
		role = models.TeamRoleStaff
	}

	_, err := a.stores.Team.Create(
		r.FormValue("name"),
		role,
		r.FormValue("bio"),
		r.FormValue("photo_url"),
		r.FormValue("email"),
		r.FormValue("linkedin_url"),
	)
	if err != nil {
		slog.Error("create team member failed", "error", err)
		a.teamListPage(w, r, errorFlash("Could not save the member. Please try again."))
		return
	}
	a.invalidate(r.Context(), "/staff")
	http.Redirect(w, r, "/admin/team", http.StatusSeeOther)
}

// TeamEditPage renders the edit form for one member.
func (a *Admin) TeamEditPage(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(w, r)
	if !ok {
		return
	}
	member, err := a.stores.Team.FindByID(id)
	if err != nil {
		slog.Error("find team member failed", "error", err)
		a.teamListPage(w, r, errorFlash("Could not load the member. Please try again."))
		return
	}
	if member == nil {
		http.NotFound(w, r)
		return
	}

	a.renderer.Page(w, r, "team_edit", &render.PageData{
		Title:   "Edit Member",
		Section: "team",
		Data:    map[string]any{"Member": member, "Roles": models.TeamRoles},
	})
}

// TeamUpdate applies the edit form as a patch.
func (a *Admin) TeamUpdate(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(w, r)
	if !ok {
		return
	}
	r.ParseForm()
	if msg := validateName(r.FormValue("name")); msg != "" {
		a.teamListPage(w, r, errorFlash(msg))
		return
	}

	patch := &models.TeamMemberPatch{
		Name:        formPtr(r, "name"),
		Bio:         formPtr(r, "bio"),
		PhotoURL:    formPtr(r, "photo_url"),
		Email:       formPtr(r, "email"),
		LinkedInURL: formPtr(r, "linkedin_url"),
		IsActive:    formBool(r, "is_active"),
	}
	if role := models.TeamRole(r.FormValue("role")); role.Valid() {
		patch.Role = &role
	}

	member, err := a.stores.Team.Update(id, patch)
	if err != nil {
		slog.Error("update team member failed", "error", err)
		a.teamListPage(w, r, errorFlash("Could not save the member. Please try again."))
		return
	}
	if member == nil {
		http.NotFound(w, r)
		return
	}
	a.invalidate(r.Context(), "/staff")
	http.Redirect(w, r, "/admin/team", http.StatusSeeOther)
}

// TeamDelete removes a member and, best-effort, their stored photo.
func (a *Admin) TeamDelete(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(w, r)
	if !ok {
		return
	}
	member, err := a.stores.Team.FindByID(id)
	if err != nil {
		slog.Error("find team member failed", "error", err)
		a.teamListPage(w, r, errorFlash("Could not delete the member. Please try again."))
		return
	}
	if member == nil {
		http.Redirect(w, r, "/admin/team", http.StatusSeeOther)
		return
	}

	if err := a.stores.Team.Delete(id); err != nil {
		slog.Error("delete team member failed", "error", err)
		a.teamListPage(w, r, errorFlash("Could not delete the member. Please try again."))
		return
	}
	if a.storageClient != nil && member.PhotoURL != "" {
		if err := a.storageClient.DeleteByURL(r.Context(), member.PhotoURL); err != nil {
			slog.Warn("member photo cleanup failed", "error", err, "url", member.PhotoURL)
		}
	}
	a.invalidate(r.Context(), "/staff")
	http.Redirect(w, r, "/admin/team", http.StatusSeeOther)
}

// TeamReorder rewrites the roster order from a comma-separated id list.
func (a *Admin) TeamReorder(w http.ResponseWriter, r *http.Request) {
	r.ParseForm()
	if err := a.stores.Team.Reorder(parseReorderIDs(r)); err != nil {
		slog.Error("reorder team failed", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	a.invalidate(r.Context(), "/staff")
	w.WriteHeader(http.StatusOK)
}

// timelineListPage renders the timeline with the add form.
func (a *Admin) timelineListPage(w http.ResponseWriter, r *http.Request, flashes []render.Flash) {
	data := map[string]any{}
	entries, err := a.stores.Timeline.List(false)
	if err != nil {
		slog.Error("list timeline failed", "error", err)
		data["Error"] = "Could not load the timeline."
	}
	data["Entries"] = entries

	a.renderer.Page(w, r, "timeline", &render.PageData{
		Title:   "Timeline",
		Section: "timeline",
		Data:    data,
		Flashes: flashes,
	})
}

// TimelineList renders the timeline with the add form.
func (a *Admin) TimelineList(w http.ResponseWriter, r *http.Request) {
	a.timelineListPage(w, r, nil)
}

// TimelineCreate appends a new milestone.
func (a *Admin) TimelineCreate(w http.ResponseWriter, r *http.Request) {
	r.ParseForm()
	if msg := validateTitle(r.FormValue("title")); msg != "" {
		a.timelineListPage(w, r, errorFlash(msg))
		return
	}
	year := formInt(r, "year")
	if year == nil {
		a.timelineListPage(w, r, errorFlash("Year must be a number."))
		return
	}

	_, err := a.stores.Timeline.Create(*year, r.FormValue("title"), r.FormValue("description"))
	if err != nil {
		slog.Error("create timeline entry failed", "error", err)
		a.timelineListPage(w, r, errorFlash("Could not save the milestone. Please try again."))
		return
	}
	a.invalidate(r.Context(), "/about")
	http.Redirect(w, r, "/admin/timeline", http.StatusSeeOther)
}

// TimelineDelete removes a milestone.
func (a *Admin) TimelineDelete(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(w, r)
	if !ok {
		return
	}
	if err := a.stores.Timeline.Delete(id); err != nil {
		slog.Error("delete timeline entry failed", "error", err)
		a.timelineListPage(w, r, errorFlash("Could not delete the milestone. Please try again."))
		return
	}
	a.invalidate(r.Context(), "/about")
	http.Redirect(w, r, "/admin/timeline", http.StatusSeeOther)
}

// TimelineReorder rewrites the milestone order.
func (a *Admin) TimelineReorder(w http.ResponseWriter, r *http.Request) {
	r.ParseForm()
	if err := a.stores.Timeline.Reorder(parseReorderIDs(r)); err != nil {
		slog.Error("reorder timeline failed", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	a.invalidate(r.Context(), "/about")
	w.WriteHeader(http.StatusOK)
}
