// Package auth verifies Supabase access tokens and resolves the caller's role.
package auth

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/rpupo63/devfolio-backend/errs"
	"github.com/rpupo63/devfolio-backend/models"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// CookieName is the cookie the browser client keeps the access token in.
const CookieName = "sb-access-token"

// Claims is the subset of a Supabase access token the service reads.
type Claims struct {
	Email string `json:"email"`
	Role  string `json:"role"`
	jwt.RegisteredClaims
}

// Session is the signed-in identity for one request.
type Session struct {
	UserID  uuid.UUID `json:"userId"`
	Email   string    `json:"email"`
	IsAdmin bool      `json:"isAdmin"`
}

// Role is the badge shown in the settings account block.
func (s *Session) Role() models.Role {
	if s.IsAdmin {
		return models.RoleAdmin
	}
	return models.RoleUser
}

type RoleLookup interface {
	HasRole(ctx context.Context, userID uuid.UUID, role models.Role) (bool, error)
}

type Authenticator struct {
	secret []byte
	parser *jwt.Parser
	roles  RoleLookup
	logger zerolog.Logger
}

// NewAuthenticator verifies HS256 tokens signed with secret. A non-empty audience must match
// the token's aud claim.
func NewAuthenticator(secret, audience string, roles RoleLookup) *Authenticator {
	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
	}
	if audience != "" {
		opts = append(opts, jwt.WithAudience(audience))
	}
	return &Authenticator{
		secret: []byte(secret),
		parser: jwt.NewParser(opts...),
		roles:  roles,
		logger: log.With().Str("component", "auth").Logger(),
	}
}

// Verify checks the signature and expiry of token.
func (a *Authenticator) Verify(token string) (*Claims, error) {
	claims := &Claims{}
	_, err := a.parser.ParseWithClaims(token, claims, func(*jwt.Token) (any, error) {
		return a.secret, nil
	})
	switch {
	case err == nil:
	case errors.Is(err, jwt.ErrTokenExpired):
		return nil, errs.NewExpiredTokenError()
	default:
		return nil, errs.NewInvalidTokenError(err)
	}
	if _, err := uuid.Parse(claims.Subject); err != nil {
		return nil, errs.NewInvalidTokenError(err)
	}
	return claims, nil
}

// Authenticate turns a token into a session. A failed role lookup yields a non-admin session
// rather than an error.
func (a *Authenticator) Authenticate(ctx context.Context, token string) (*Session, error) {
	claims, err := a.Verify(token)
	if err != nil {
		return nil, err
	}
	userID := uuid.MustParse(claims.Subject)
	session := &Session{UserID: userID, Email: claims.Email}

	isAdmin, err := a.roles.HasRole(ctx, userID, models.RoleAdmin)
	if err != nil {
		a.logger.Warn().Err(err).Str("userID", userID.String()).Msg("role lookup failed")
		return session, nil
	}
	session.IsAdmin = isAdmin
	return session, nil
}

// TokenFromRequest reads the bearer token, falling back to the session cookie.
func TokenFromRequest(r *http.Request) string {
	if header := r.Header.Get("Authorization"); strings.HasPrefix(header, "Bearer ") {
		return strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
	}
	if cookie, err := r.Cookie(CookieName); err == nil {
		return cookie.Value
	}
	return ""
}
