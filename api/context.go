package api

import (
	"context"

	"github.com/rpupo63/devfolio-backend/auth"
)

type keyType string

const (
	sessionKey   keyType = "session"
	authErrorKey keyType = "authError"
)

// ctxWithSession adds the signed-in session to the context
func ctxWithSession(ctx context.Context, session *auth.Session) context.Context {
	return context.WithValue(ctx, sessionKey, session)
}

// ctxGetSession returns nil for anonymous requests
func ctxGetSession(ctx context.Context) *auth.Session {
	session, _ := ctx.Value(sessionKey).(*auth.Session)
	return session
}

// ctxWithAuthError records why a presented token was rejected
func ctxWithAuthError(ctx context.Context, err error) context.Context {
	return context.WithValue(ctx, authErrorKey, err)
}

func ctxGetAuthError(ctx context.Context) error {
	err, _ := ctx.Value(authErrorKey).(error)
	return err
}
