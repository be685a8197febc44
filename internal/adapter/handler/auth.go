package handler

import (
	"net/http"

	"user-hub/internal/usecase"
	"user-hub/utils/validator"

	"github.com/labstack/echo/v4"
)

// AuthHandler handles the /login endpoint.
type AuthHandler struct {
	login    *usecase.Login
	validate *validator.Validator
}

// NewAuthHandler creates a new auth handler.
func NewAuthHandler(login *usecase.Login, validate *validator.Validator) *AuthHandler {
	return &AuthHandler{login: login, validate: validate}
}

// loginRequest is the POST /login body.
type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// HandleLogin authenticates the credentials and returns the issued token in
// the Authorization response header plus the user id in the UserId header.
func (h *AuthHandler) HandleLogin(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := h.validate.Validate(req); err != nil {
		if verr, ok := err.(*validator.ValidationError); ok {
			return c.JSON(http.StatusBadRequest, verr)
		}
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	result, err := h.login.Execute(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return mapDomainError(err)
	}

	c.Response().Header().Set(echo.HeaderAuthorization, "Bearer "+result.Token)
	c.Response().Header().Set("UserId", result.UserID)
	return c.NoContent(http.StatusOK)
}
