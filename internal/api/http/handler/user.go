package handler

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"github.com/fertitrack/fertitrack_backend/internal/api/http/middleware"
	"github.com/fertitrack/fertitrack_backend/internal/service/user"
)

type UserHandler struct {
	svc user.Service
}

func NewUserHandler(svc user.Service) *UserHandler {
	return &UserHandler{svc: svc}
}

func mapUserError(c fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, user.ErrUserNotFound):
		return notFound(c, err.Error())
	case errors.Is(err, user.ErrUsernameTaken),
		errors.Is(err, user.ErrEmailTaken),
		errors.Is(err, user.ErrDniTaken):
		return conflict(c, err.Error())
	case errors.Is(err, user.ErrInvalidRole),
		errors.Is(err, user.ErrInvalidPhone):
		return badRequest(c, err.Error())
	case errors.Is(err, user.ErrSelfDisable):
		return unprocessable(c, err.Error())
	default:
		return internalError(c)
	}
}

// POST /users/staff
func (h *UserHandler) CreateStaff(c fiber.Ctx) error {
	actor, okActor := middleware.ActorFromFiber(c)
	if !okActor {
		return unauthorized(c)
	}

	var body struct {
		Username  string  `json:"username"`
		Email     string  `json:"email"`
		Role      string  `json:"role"`
		FirstName string  `json:"first_name"`
		LastName  string  `json:"last_name"`
		Phone     *string `json:"phone"`
		DNI       *string `json:"dni"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}
	if body.Username == "" || body.Email == "" || body.Role == "" {
		return badRequest(c, "username, email and role are required")
	}

	u, err := h.svc.CreateStaff(c.Context(), actor, user.CreateStaffRequest{
		Username:  body.Username,
		Email:     body.Email,
		Role:      body.Role,
		FirstName: body.FirstName,
		LastName:  body.LastName,
		Phone:     body.Phone,
		DNI:       body.DNI,
	})
	if err != nil {
		return mapUserError(c, err)
	}

	return created(c, u)
}

// GET /users
func (h *UserHandler) List(c fiber.Ctx) error {
	actor, okActor := middleware.ActorFromFiber(c)
	if !okActor {
		return unauthorized(c)
	}

	var q struct {
		Page     int    `query:"page"`
		PageSize int    `query:"page_size"`
		Role     string `query:"role"`
		Active   *bool  `query:"active"`
	}
	_ = c.Bind().Query(&q)

	req := user.ListUsersRequest{
		Page:     q.Page,
		PageSize: q.PageSize,
		Active:   q.Active,
	}
	if q.Role != "" {
		req.Role = &q.Role
	}

	result, err := h.svc.ListUsers(c.Context(), actor, req)
	if err != nil {
		return mapUserError(c, err)
	}

	return ok(c, fiber.Map{
		"users":     result.Items,
		"total":     result.TotalCount,
		"page":      result.Page,
		"page_size": result.PageSize,
	})
}

// GET /users/:id
func (h *UserHandler) Get(c fiber.Ctx) error {
	actor, okActor := middleware.ActorFromFiber(c)
	if !okActor {
		return unauthorized(c)
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid user id")
	}

	u, err := h.svc.GetUser(c.Context(), actor, id)
	if err != nil {
		return mapUserError(c, err)
	}
	return ok(c, u)
}

// PATCH /users/:id/active
func (h *UserHandler) SetActive(c fiber.Ctx) error {
	actor, okActor := middleware.ActorFromFiber(c)
	if !okActor {
		return unauthorized(c)
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid user id")
	}

	var body struct {
		Active *bool `json:"active"`
	}
	if err := c.Bind().JSON(&body); err != nil || body.Active == nil {
		return badRequest(c, "active is required")
	}

	u, err := h.svc.SetActive(c.Context(), actor, id, *body.Active)
	if err != nil {
		return mapUserError(c, err)
	}
	return ok(c, u)
}

// GET /me
func (h *UserHandler) Profile(c fiber.Ctx) error {
	actor, okActor := middleware.ActorFromFiber(c)
	if !okActor {
		return unauthorized(c)
	}

	u, err := h.svc.GetProfile(c.Context(), actor)
	if err != nil {
		return mapUserError(c, err)
	}
	return ok(c, u)
}

// PATCH /me
func (h *UserHandler) UpdateProfile(c fiber.Ctx) error {
	actor, okActor := middleware.ActorFromFiber(c)
	if !okActor {
		return unauthorized(c)
	}

	var body struct {
		FirstName   *string `json:"first_name"`
		LastName    *string `json:"last_name"`
		Phone       *string `json:"phone"`
		DateOfBirth *string `json:"date_of_birth"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	req := user.UpdateProfileRequest{
		FirstName: body.FirstName,
		LastName:  body.LastName,
		Phone:     body.Phone,
	}
	if body.DateOfBirth != nil {
		dob, err := time.Parse("2006-01-02", *body.DateOfBirth)
		if err != nil {
			return badRequest(c, "invalid date_of_birth, expected YYYY-MM-DD")
		}
		req.DateOfBirth = &dob
	}

	u, err := h.svc.UpdateProfile(c.Context(), actor, req)
	if err != nil {
		return mapUserError(c, err)
	}
	return ok(c, u)
}
