package api

import (
	"net/http"

	"github.com/rpupo63/devfolio-backend/admin"
	"github.com/rpupo63/devfolio-backend/errs"
	"github.com/rpupo63/devfolio-backend/models"
	"github.com/rpupo63/devfolio-backend/services"
	"github.com/rpupo63/devfolio-backend/storage"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type profileHandler struct {
	responder Responder
	logger    zerolog.Logger
	profiles  *services.ProfileService
	editor    *admin.ProfileEditor
}

func newProfileHandler(profiles *services.ProfileService, store storage.Store) profileHandler {
	logger := log.With().Str("handlerName", "profileHandler").Logger()

	return profileHandler{
		responder: NewResponder(logger),
		logger:    logger,
		profiles:  profiles,
		editor:    admin.NewProfileEditor(profiles, store),
	}
}

// ProfileResponse wraps the profile, which is null until one is created
type ProfileResponse struct {
	Profile *models.Profile   `json:"profile"`
	Form    admin.ProfileForm `json:"form"`
}

// getProfile returns the site profile
// @Summary Get profile
// @Tags Profile
// @Produce json
// @Success 200 {object} ProfileResponse "Profile, or null when none exists yet"
// @Failure 500 {object} ErrorResponse "Internal Server Error"
// @Router /api/profile [get]
func (h profileHandler) getProfile() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		profile, err := h.profiles.Get(r.Context())
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find profile", "profile", err))
			return
		}
		h.responder.WriteJSON(w, ProfileResponse{Profile: profile, Form: admin.ProfileFormFrom(profile)})
	}
}

// saveProfile creates the profile on first save and updates it afterwards
// @Summary Save profile
// @Tags Profile
// @Accept json
// @Produce json
// @Param profile body admin.ProfileForm true "Profile data"
// @Success 200 {object} models.Profile "Saved profile"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 403 {object} ErrorResponse "Forbidden - Admin role required"
// @Router /api/profile [put]
func (h profileHandler) saveProfile() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		session := ctxGetSession(r.Context())

		var form admin.ProfileForm
		if err := decodeJSON(w, r, &form); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		profile, err := h.editor.Save(r.Context(), session.UserID, &form)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("save profile", "profile", err))
			return
		}
		h.responder.WriteJSON(w, profile)
	}
}

// uploadAvatar replaces the profile picture
// @Summary Upload avatar
// @Description Overwrites the avatar object of the signed-in user and stores its public URL on the profile
// @Tags Profile
// @Accept mpfd
// @Produce json
// @Param avatar formData file true "Image file"
// @Success 200 {object} models.Profile "Updated profile"
// @Failure 404 {object} ErrorResponse "Not Found - No profile yet"
// @Failure 502 {object} ErrorResponse "Bad Gateway - Upload failed"
// @Router /api/profile/avatar [post]
func (h profileHandler) uploadAvatar() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		session := ctxGetSession(r.Context())

		if err := parseMultipart(w, r); err != nil {
			h.responder.WriteError(w, err)
			return
		}
		upload, file, err := formUpload(r, "avatar")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}
		if upload == nil {
			h.responder.WriteError(w, errs.NewEmptyUploadError())
			return
		}
		defer file.Close()

		profile, err := h.editor.UploadAvatar(r.Context(), session.UserID, *upload)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("update avatar", "profile", err))
			return
		}
		h.responder.WriteJSON(w, profile)
	}
}
