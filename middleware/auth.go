package middleware

import (
	"context"
	"net/http"
	"strings"

	"user-hub/internal/domain"

	"github.com/labstack/echo/v4"
)

type contextKey struct{}

// subjectKey carries the authenticated subject through the request context.
var subjectKey contextKey

const bearerPrefix = "Bearer "

// Authenticate is the bearer-token gate applied to every route. A request
// without a recognizable `Bearer <token>` Authorization header continues
// anonymously and route policy decides what it may do. A present but invalid
// token terminates the request with 401 before any handler runs. A valid
// token attaches its subject to the request context for the rest of the
// pipeline, including guards that evaluate after the handler.
func Authenticate(verifier domain.TokenVerifier) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			raw := bearerToken(c.Request().Header.Get(echo.HeaderAuthorization))
			if raw == "" {
				return next(c)
			}

			if err := verifier.Verify(raw); err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid or expired token")
			}

			subject, err := verifier.Subject(raw)
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid or expired token")
			}

			ctx := WithSubject(c.Request().Context(), subject)
			c.SetRequest(c.Request().WithContext(ctx))
			return next(c)
		}
	}
}

// RequireIdentity rejects anonymous requests. Applied to every route except
// the whitelisted ones (user creation, login, the live stream).
func RequireIdentity() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if _, ok := SubjectFromContext(c.Request().Context()); !ok {
				return echo.NewHTTPError(http.StatusUnauthorized, "authentication required")
			}
			return next(c)
		}
	}
}

// WithSubject returns a context carrying the authenticated subject.
func WithSubject(ctx context.Context, subject string) context.Context {
	return context.WithValue(ctx, subjectKey, subject)
}

// SubjectFromContext extracts the authenticated subject, if any.
func SubjectFromContext(ctx context.Context) (string, bool) {
	subject, ok := ctx.Value(subjectKey).(string)
	return subject, ok && subject != ""
}

// bearerToken extracts the token from an Authorization header, or returns
// the empty string when the header is absent or not of Bearer shape.
func bearerToken(header string) string {
	if !strings.HasPrefix(header, bearerPrefix) {
		return ""
	}
	return strings.TrimSpace(header[len(bearerPrefix):])
}
