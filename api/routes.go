package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

// setupPageRoutes mounts the display pages and the settings gate
func setupPageRoutes(r chi.Router, handlers *routeHandlers, authMiddleware authMiddleware) {
	r.Get("/", handlers.pageHandler.profilePage())
	r.Get("/projects", handlers.pageHandler.projectsPage())
	r.Get("/progress", handlers.pageHandler.progressPage())
	r.Get("/login", handlers.pageHandler.loginPage())
	r.With(authMiddleware.settingsGate).Get("/settings", handlers.pageHandler.settingsPage())

	if handlers.storageHandler.enabled() {
		r.Get("/storage/v1/object/public/{bucket}/*", handlers.storageHandler.getObject())
	}
}

func setupAuthRoutes(r chi.Router, handlers *routeHandlers, authMiddleware authMiddleware) {
	r.Route("/auth", func(r chi.Router) {
		r.Post("/session", handlers.authHandler.createSession())
		r.Post("/signout", handlers.authHandler.signOut())
		r.With(authMiddleware.requireSession).Get("/me", handlers.authHandler.me())
	})
}

// setupAPIRoutes mounts the JSON API. Reads are public; every write requires the admin role.
func setupAPIRoutes(r chi.Router, handlers *routeHandlers, authMiddleware authMiddleware) {
	r.Route("/api", func(r chi.Router) {
		r.Get("/navigation", handlers.pageHandler.navigation())

		r.Get("/profile", handlers.profileHandler.getProfile())
		r.With(authMiddleware.requireAdmin).Put("/profile", handlers.profileHandler.saveProfile())
		r.With(authMiddleware.requireAdmin).Post("/profile/avatar", handlers.profileHandler.uploadAvatar())

		r.Route("/projects", func(r chi.Router) {
			r.Get("/", handlers.projectHandler.getAllProjects())
			r.Group(func(r chi.Router) {
				r.Use(authMiddleware.requireAdmin)
				r.Post("/", handlers.projectHandler.createProject())
				r.Post("/thumbnail", handlers.projectHandler.uploadThumbnail())
				r.Get("/{id}", handlers.projectHandler.getProject())
				r.Put("/{id}", handlers.projectHandler.updateProject())
				r.Delete("/{id}", handlers.projectHandler.deleteProject())
			})
		})

		mountCollection(r, "/social-links", handlers.socialLinkHandler, authMiddleware)
		mountCollection(r, "/experience", handlers.experienceHandler, authMiddleware)
		mountCollection(r, "/education", handlers.educationHandler, authMiddleware)
		mountCollection(r, "/certifications", handlers.certificationHandler, authMiddleware)
	})
}

func mountCollection(r chi.Router, pattern string, h collectionHandler, authMiddleware authMiddleware) {
	r.Route(pattern, func(r chi.Router) {
		r.Get("/", h.listAll())
		r.Group(func(r chi.Router) {
			r.Use(authMiddleware.requireAdmin)
			r.Post("/", h.createOne())
			r.Get("/{id}", h.getOne())
			r.Put("/{id}", h.updateOne())
			r.Delete("/{id}", h.deleteOne())
		})
	})
}

// HealthResponse reports liveness and uptime
type HealthResponse struct {
	Status        string `json:"status"`
	UptimeSeconds int64  `json:"uptimeSeconds"`
}

func healthz(startupTime time.Time) http.HandlerFunc {
	responder := NewResponder(log.Logger)
	return func(w http.ResponseWriter, r *http.Request) {
		responder.WriteJSON(w, HealthResponse{
			Status:        "ok",
			UptimeSeconds: int64(time.Since(startupTime).Seconds()),
		})
	}
}
