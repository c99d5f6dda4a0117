// Package router sets up all HTTP routes and middleware chains for
// Archfolio. It organizes routes into public and admin groups with
// appropriate middleware stacks.
package router

import (
	"io/fs"
	"net/http"

	"github.com/go-chi/chi/v5"

	"archfolio/internal/handlers"
	"archfolio/internal/middleware"
	"archfolio/internal/session"
	"archfolio/web"
)

// New creates and returns the configured Chi router with all middleware
// and route groups wired up.
func New(sessionStore *session.Store, admin *handlers.Admin, auth *handlers.Auth, public *handlers.Public, loginLimiter, applyLimiter *middleware.RateLimiter) chi.Router {
	r := chi.NewRouter()

	// Global middleware — applied to every request.
	r.Use(middleware.Recoverer)
	r.Use(middleware.Logger)
	r.Use(middleware.SecureHeaders)
	r.Use(middleware.LoadSession(sessionStore))

	// Health check — no auth, no CSRF.
	r.Get("/health", healthHandler)

	// Embedded static assets (admin CSS/JS).
	staticFS, _ := fs.Sub(web.StaticFS, "static")
	r.Handle("/static/*", http.StripPrefix("/static/", http.FileServer(http.FS(staticFS))))

	// Admin routes — require authentication and CSRF protection.
	r.Route("/admin", func(r chi.Router) {
		r.Use(middleware.CSRF)

		// Auth pages — accessible without a session. Login attempts
		// are rate limited per IP to slow down password guessing.
		r.Get("/login", auth.LoginPage)
		r.With(loginLimiter.Middleware).Post("/login", auth.LoginSubmit)
		r.Post("/logout", auth.Logout)

		// 2FA — requires auth but NOT completed 2FA.
		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireAuth)
			r.Get("/2fa/setup", auth.TwoFASetupPage)
			r.Post("/2fa/setup", auth.TwoFAVerifySubmit)
			r.Get("/2fa/verify", auth.TwoFAVerifyPage)
			r.Post("/2fa/verify", auth.TwoFAVerifySubmit)
		})

		// Authenticated + 2FA-verified admin area.
		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireAuth)
			r.Use(middleware.Require2FA)

			// Dashboard
			r.Get("/", admin.Dashboard)

			// Singleton content blocks
			r.Get("/content", admin.ContentPage)
			r.Post("/content/home", admin.SaveHomeIntro)
			r.Post("/content/about", admin.SaveAbout)
			r.Post("/content/ceo", admin.SaveCEO)
			r.Post("/content/contact", admin.SaveContact)

			// Theme
			r.Get("/theme", admin.ThemePage)
			r.Post("/theme", admin.SaveTheme)

			// Hero carousel
			r.Route("/hero", func(r chi.Router) {
				r.Get("/", admin.HeroList)
				r.Post("/", admin.HeroCreate)
				r.Post("/reorder", admin.HeroReorder)
				r.Get("/{id}", admin.HeroEditPage)
				r.Post("/{id}", admin.HeroUpdate)
				r.Post("/{id}/delete", admin.HeroDelete)
			})

			// Team roster
			r.Route("/team", func(r chi.Router) {
				r.Get("/", admin.TeamList)
				r.Post("/", admin.TeamCreate)
				r.Post("/reorder", admin.TeamReorder)
				r.Get("/{id}", admin.TeamEditPage)
				r.Post("/{id}", admin.TeamUpdate)
				r.Post("/{id}/delete", admin.TeamDelete)
			})

			// Portfolio
			r.Route("/projects", func(r chi.Router) {
				r.Get("/", admin.ProjectsList)
				r.Post("/", admin.ProjectCreate)
				r.Post("/reorder", admin.ProjectReorder)
				r.Get("/{id}", admin.ProjectEditPage)
				r.Post("/{id}", admin.ProjectUpdate)
				r.Post("/{id}/delete", admin.ProjectDelete)
				r.Post("/{id}/gallery", admin.GalleryAdd)
			})
			r.Route("/gallery", func(r chi.Router) {
				r.Post("/reorder", admin.GalleryReorder)
				r.Post("/{id}/delete", admin.GalleryDelete)
			})
			r.Route("/categories", func(r chi.Router) {
				r.Get("/", admin.CategoriesList)
				r.Post("/", admin.CategoryCreate)
				r.Post("/reorder", admin.CategoryReorder)
				r.Post("/{id}/delete", admin.CategoryDelete)
			})

			// History timeline
			r.Route("/timeline", func(r chi.Router) {
				r.Get("/", admin.TimelineList)
				r.Post("/", admin.TimelineCreate)
				r.Post("/reorder", admin.TimelineReorder)
				r.Post("/{id}/delete", admin.TimelineDelete)
			})

			// Careers
			r.Route("/jobs", func(r chi.Router) {
				r.Get("/", admin.JobsList)
				r.Post("/", admin.JobCreate)
				r.Post("/reorder", admin.JobReorder)
				r.Get("/{id}", admin.JobEditPage)
				r.Post("/{id}", admin.JobUpdate)
				r.Post("/{id}/delete", admin.JobDelete)
			})
			r.Route("/applications", func(r chi.Router) {
				r.Get("/", admin.ApplicationsList)
				r.Post("/{id}/delete", admin.ApplicationDelete)
			})

			// Asset upload (base64 JSON)
			r.Post("/upload", admin.AssetUpload)
		})
	})

	// Public routes.
	r.Get("/", public.Home)
	r.Get("/about", public.About)
	r.Get("/projects", public.Projects)
	r.Get("/projects/{slug}", public.ProjectDetail)
	r.Get("/staff", public.Staff)
	r.Get("/careers", public.Careers)
	r.With(applyLimiter.Middleware).Post("/careers/{id}/apply", public.CareersApply)
	r.Get("/contact", public.Contact)

	return r
}

// healthHandler returns a simple JSON health check response.
func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ok"}`))
}
