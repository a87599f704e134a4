package middleware

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"pairup/internal/session"
)

// UnauthenticatedPath is the single endpoint that handles every
// authentication failure, whatever method the failing request used.
const UnauthenticatedPath = "/auth/unauthenticated"

type failureCtxKey int

const (
	ctxKeyAttemptedPath failureCtxKey = iota
	ctxKeyFailureMessage
)

// RequireAuth gates a route on a resolvable session principal. On failure
// the in-flight request is rewritten to POST /auth/unauthenticated and
// re-dispatched through the engine, so one handler owns the failure
// response regardless of the original method.
func RequireAuth(engine *gin.Engine, sessions *session.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		if sessions.LoggedIn(c) {
			c.Next()
			return
		}
		AuthFailure(engine, c, "", c.Request.URL.RequestURI())
	}
}

// AuthFailure routes a failed authentication through the dedicated failure
// endpoint, carrying an optional human-readable message and the originally
// attempted path. Either may be empty.
func AuthFailure(engine *gin.Engine, c *gin.Context, message, attemptedPath string) {
	ctx := c.Request.Context()
	if attemptedPath != "" {
		ctx = context.WithValue(ctx, ctxKeyAttemptedPath, attemptedPath)
	}
	if message != "" {
		ctx = context.WithValue(ctx, ctxKeyFailureMessage, message)
	}

	c.Request = c.Request.WithContext(ctx)
	c.Request.Method = http.MethodPost
	c.Request.URL.Path = UnauthenticatedPath
	c.Request.URL.RawQuery = ""

	engine.HandleContext(c)
	c.Abort()
}

// AttemptedPath returns the path the failing request originally asked for.
func AttemptedPath(r *http.Request) (string, bool) {
	path, ok := r.Context().Value(ctxKeyAttemptedPath).(string)
	return path, ok
}

// FailureMessage returns the message attached to the failure, if any.
func FailureMessage(r *http.Request) (string, bool) {
	msg, ok := r.Context().Value(ctxKeyFailureMessage).(string)
	return msg, ok
}
