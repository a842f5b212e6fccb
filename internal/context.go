package internal

import (
	"context"
	"time"
)

type ctxKey string

const ContextSessionKey ctxKey = "session"

// SessionPrincipal is the request-scoped identity carried from the auth gate
// into the handlers.
type SessionPrincipal struct {
	UserID int64
	Role   string
}

func SessionFromContext(ctx context.Context) (SessionPrincipal, bool) {
	if ctx == nil {
		return SessionPrincipal{}, false
	}
	if principal, ok := ctx.Value(ContextSessionKey).(SessionPrincipal); ok {
		return principal, true
	}
	return SessionPrincipal{}, false
}

func ContextWithSession(ctx context.Context, principal SessionPrincipal) context.Context {
	return context.WithValue(ctx, ContextSessionKey, principal)
}

// WithTimeout returns a context with timeout, defaulting to 5 seconds if duration is zero or negative.
func WithTimeout(ctx context.Context, duration time.Duration) (context.Context, context.CancelFunc) {
	if duration <= 0 {
		duration = 5 * time.Second
	}
	return context.WithTimeout(ctx, duration)
}
