package api

import (
	"context"

	"github.com/rpupo63/portfolio-cms-backend/services"
)

type keyType string

const sessionKey keyType = "session"

func ctxWithSession(ctx context.Context, session *services.SessionInfo) context.Context {
	return context.WithValue(ctx, sessionKey, session)
}

// ctxGetSession returns nil when the request did not pass the auth middleware.
func ctxGetSession(ctx context.Context) *services.SessionInfo {
	session, _ := ctx.Value(sessionKey).(*services.SessionInfo)
	return session
}
