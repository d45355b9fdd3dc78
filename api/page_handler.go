package api

import (
	"net/http"
	"strconv"

	"github.com/rpupo63/devfolio-backend/admin"
	"github.com/rpupo63/devfolio-backend/pages"
	"github.com/rpupo63/devfolio-backend/services"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type pageHandler struct {
	responder Responder
	logger    zerolog.Logger
	builder   *pages.Builder
	profiles  *services.ProfileService
}

func newPageHandler(builder *pages.Builder, profiles *services.ProfileService) pageHandler {
	logger := log.With().Str("handlerName", "pageHandler").Logger()

	return pageHandler{
		responder: NewResponder(logger),
		logger:    logger,
		builder:   builder,
		profiles:  profiles,
	}
}

// profilePage is the landing page
// @Summary Profile page
// @Tags Pages
// @Produce json
// @Success 200 {object} pages.ProfilePage "Profile page, or its empty state"
// @Router / [get]
func (h pageHandler) profilePage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		page, err := h.builder.ProfilePage(r.Context())
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("load", "profile page", err))
			return
		}
		h.responder.WriteJSON(w, page)
	}
}

// projectsPage lists one page of projects, optionally narrowed to a tag
// @Summary Projects page
// @Tags Pages
// @Produce json
// @Param tag query string false "Currently active tag"
// @Param page query int false "1-based page number"
// @Param select query string false "Tag chip clicked; selecting the active tag clears it"
// @Param clear query bool false "Drop the active tag"
// @Success 200 {object} pages.ProjectsPage "Projects page"
// @Router /projects [get]
func (h pageHandler) projectsPage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query()
		filter := pages.ProjectFilter{Tag: query.Get("tag"), Page: 1}
		if p, err := strconv.Atoi(query.Get("page")); err == nil {
			filter.Page = p
		}
		// Changing the filter always starts again from page 1.
		switch {
		case query.Has("clear"):
			filter = filter.Clear()
		case query.Get("select") != "":
			filter = filter.Toggle(query.Get("select"))
		}

		page, err := h.builder.ProjectsPage(r.Context(), filter)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("load", "projects page", err))
			return
		}
		h.responder.WriteJSON(w, page)
	}
}

// progressPage shows GitHub statistics for the profile's username
// @Summary Progress page
// @Tags Pages
// @Produce json
// @Success 200 {object} pages.ProgressPage "State is unconfigured, error or ok"
// @Router /progress [get]
func (h pageHandler) progressPage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		page, err := h.builder.ProgressPage(r.Context())
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("load", "progress page", err))
			return
		}
		h.responder.WriteJSON(w, page)
	}
}

// LoginPage tells the client where to exchange a Supabase token for a session
type LoginPage struct {
	SessionEndpoint string `json:"sessionEndpoint"`
}

// loginPage sends signed-in visitors home
// @Summary Login page
// @Tags Pages
// @Produce json
// @Success 200 {object} LoginPage
// @Success 303 "Already signed in"
// @Router /login [get]
func (h pageHandler) loginPage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if ctxGetSession(r.Context()) != nil {
			http.Redirect(w, r, "/", http.StatusSeeOther)
			return
		}
		h.responder.WriteJSON(w, LoginPage{SessionEndpoint: "/auth/session"})
	}
}

// SettingsPage is the settings descriptor plus the profile editor seed
type SettingsPage struct {
	admin.Settings
	ProfileForm admin.ProfileForm `json:"profileForm"`
}

// settingsPage is reachable by admins only; see authMiddleware.settingsGate
// @Summary Settings page
// @Tags Pages
// @Produce json
// @Success 200 {object} SettingsPage
// @Success 303 "Redirect to /login without a session, to / for non-admins"
// @Router /settings [get]
func (h pageHandler) settingsPage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		session := ctxGetSession(r.Context())

		profile, err := h.profiles.Get(r.Context())
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find profile", "profile", err))
			return
		}
		h.responder.WriteJSON(w, SettingsPage{
			Settings:    admin.NewSettings(session),
			ProfileForm: admin.ProfileFormFrom(profile),
		})
	}
}

// navigation lists the sidebar entries for the caller
// @Summary Navigation
// @Tags Pages
// @Produce json
// @Success 200 {object} pages.Navigation
// @Router /api/navigation [get]
func (h pageHandler) navigation() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		h.responder.WriteJSON(w, pages.NewNavigation(ctxGetSession(r.Context())))
	}
}
