package handler

import (
	"errors"
	"net/http"

	"user-hub/internal/domain"

	"github.com/labstack/echo/v4"
)

// mapDomainError converts a domain error into an appropriate echo.HTTPError.
func mapDomainError(err error) *echo.HTTPError {
	switch {
	case errors.Is(err, domain.ErrInvalidToken),
		errors.Is(err, domain.ErrAuthenticationFailed):
		return echo.NewHTTPError(http.StatusUnauthorized, "authentication failed")

	case errors.Is(err, domain.ErrForbidden):
		return echo.NewHTTPError(http.StatusForbidden, "access denied")

	case errors.Is(err, domain.ErrUserNotFound):
		return echo.NewHTTPError(http.StatusNotFound, "user not found")

	case errors.Is(err, domain.ErrDuplicateEmail):
		return echo.NewHTTPError(http.StatusConflict, "email already registered")

	case errors.Is(err, domain.ErrTokenSecretMissing),
		errors.Is(err, domain.ErrTokenSecretWeak):
		return echo.NewHTTPError(http.StatusInternalServerError, "token configuration error")

	default:
		return echo.NewHTTPError(http.StatusInternalServerError, "internal error")
	}
}
