package api

import (
	"net/http"
	"strings"
	"time"

	"github.com/rpupo63/devfolio-backend/auth"
	"github.com/rpupo63/devfolio-backend/errs"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type authHandler struct {
	responder     Responder
	logger        zerolog.Logger
	authenticator *auth.Authenticator
	secureCookies bool
}

func newAuthHandler(authenticator *auth.Authenticator, secureCookies bool) authHandler {
	logger := log.With().Str("handlerName", "authHandler").Logger()

	return authHandler{
		responder:     NewResponder(logger),
		logger:        logger,
		authenticator: authenticator,
		secureCookies: secureCookies,
	}
}

// SessionRequest carries the access token issued by Supabase auth
type SessionRequest struct {
	AccessToken string `json:"access_token"`
}

// createSession verifies a token and keeps it in an http-only cookie
// @Summary Sign in
// @Tags Auth
// @Accept json
// @Produce json
// @Param session body SessionRequest true "Supabase access token"
// @Success 200 {object} auth.Session "Signed-in session"
// @Failure 401 {object} ErrorResponse "Unauthorized - Invalid or expired token"
// @Router /auth/session [post]
func (h authHandler) createSession() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req SessionRequest
		if err := decodeJSON(w, r, &req); err != nil {
			h.responder.WriteError(w, err)
			return
		}
		token := strings.TrimSpace(req.AccessToken)
		if token == "" {
			h.responder.WriteError(w, errs.NewMissingTokenError())
			return
		}

		claims, err := h.authenticator.Verify(token)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}
		session, err := h.authenticator.Authenticate(r.Context(), token)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		http.SetCookie(w, &http.Cookie{
			Name:     auth.CookieName,
			Value:    token,
			Path:     "/",
			Expires:  claims.ExpiresAt.Time,
			HttpOnly: true,
			Secure:   h.secureCookies,
			SameSite: http.SameSiteLaxMode,
		})
		h.logger.Info().Str("userID", session.UserID.String()).Bool("isAdmin", session.IsAdmin).Msg("signed in")
		h.responder.WriteJSON(w, session)
	}
}

// signOut clears the session cookie
// @Summary Sign out
// @Tags Auth
// @Produce json
// @Success 200 {object} StatusResponse
// @Router /auth/signout [post]
func (h authHandler) signOut() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		http.SetCookie(w, clearedSessionCookie(h.secureCookies))
		h.responder.WriteJSON(w, StatusResponse{Status: "success", Message: "signed out"})
	}
}

func clearedSessionCookie(secure bool) *http.Cookie {
	return &http.Cookie{
		Name:     auth.CookieName,
		Value:    "",
		Path:     "/",
		Expires:  time.Unix(0, 0),
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	}
}

// me returns the caller's session
// @Summary Current session
// @Tags Auth
// @Produce json
// @Success 200 {object} auth.Session
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Router /auth/me [get]
func (h authHandler) me() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		h.responder.WriteJSON(w, ctxGetSession(r.Context()))
	}
}
