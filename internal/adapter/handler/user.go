package handler

import (
	"net/http"
	"strconv"
	"strings"

	"user-hub/internal/domain"
	"user-hub/internal/usecase"
	"user-hub/middleware"
	"user-hub/utils/validator"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// UserHandler handles the /users endpoints.
type UserHandler struct {
	create   *usecase.CreateUser
	get      *usecase.GetUser
	list     *usecase.ListUsers
	validate *validator.Validator
}

// NewUserHandler creates a new user handler.
func NewUserHandler(create *usecase.CreateUser, get *usecase.GetUser, list *usecase.ListUsers, validate *validator.Validator) *UserHandler {
	return &UserHandler{create: create, get: get, list: list, validate: validate}
}

// createUserRequest is the POST /users body.
type createUserRequest struct {
	FirstName string `json:"firstName" validate:"required,min=2,max=50"`
	LastName  string `json:"lastName" validate:"required,min=2,max=50"`
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required,min=8,max=16"`
}

// userResponse is the user shape returned to clients; it never carries the
// password hash.
type userResponse struct {
	ID        string         `json:"id"`
	FirstName string         `json:"firstName"`
	LastName  string         `json:"lastName"`
	Email     string         `json:"email"`
	Albums    []domain.Album `json:"albums,omitempty"`
}

func toUserResponse(user *domain.User) userResponse {
	return userResponse{
		ID:        user.ID.String(),
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Email:     user.Email,
		Albums:    user.Albums,
	}
}

// HandleCreate processes POST /users. No authentication required.
func (h *UserHandler) HandleCreate(c echo.Context) error {
	var req createUserRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := h.validate.Validate(req); err != nil {
		if verr, ok := err.(*validator.ValidationError); ok {
			return c.JSON(http.StatusBadRequest, verr)
		}
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	user, err := h.create.Execute(c.Request().Context(), usecase.CreateUserInput{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Password:  req.Password,
	})
	if err != nil {
		return mapDomainError(err)
	}

	c.Response().Header().Set(echo.HeaderLocation, "/users/"+user.ID.String())
	return c.JSON(http.StatusCreated, toUserResponse(user))
}

// HandleGet processes GET /users/:id. The caller may only read their own
// record; the check runs after the handler fetched the result, so a missing
// user is still a 404.
func (h *UserHandler) HandleGet(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid user id")
	}

	ctx := c.Request().Context()
	includeAlbums := strings.Contains(c.QueryParam("include"), "albums")
	authorization := c.Request().Header.Get(echo.HeaderAuthorization)

	user, err := h.get.Execute(ctx, id, includeAlbums, authorization)
	if err != nil {
		return mapDomainError(err)
	}

	subject, _ := middleware.SubjectFromContext(ctx)
	if user.ID.String() != subject {
		return mapDomainError(domain.ErrForbidden)
	}

	return c.JSON(http.StatusOK, toUserResponse(user))
}

// HandleList processes GET /users?page=&limit=. Pages are 1-based on the
// wire.
func (h *UserHandler) HandleList(c echo.Context) error {
	page, _ := strconv.Atoi(c.QueryParam("page"))
	limit, _ := strconv.Atoi(c.QueryParam("limit"))

	users, err := h.list.Execute(c.Request().Context(), page, limit)
	if err != nil {
		return mapDomainError(err)
	}

	responses := make([]userResponse, 0, len(users))
	for i := range users {
		responses = append(responses, toUserResponse(&users[i]))
	}
	return c.JSON(http.StatusOK, responses)
}
