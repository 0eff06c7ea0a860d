package handler

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v3"

	"github.com/fertitrack/fertitrack_backend/internal/api/http/middleware"
	"github.com/fertitrack/fertitrack_backend/internal/service/auth"
	pasetotoken "github.com/fertitrack/fertitrack_backend/pkg/paseto"
)

type AuthHandler struct {
	svc auth.Service
}

func NewAuthHandler(svc auth.Service) *AuthHandler {
	return &AuthHandler{svc: svc}
}

func mapAuthError(c fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, auth.ErrInvalidCredentials):
		return unauthorized(c)
	case errors.Is(err, auth.ErrAccountDisabled),
		errors.Is(err, auth.ErrAccountLocked):
		return forbidden(c)
	case errors.Is(err, auth.ErrUsernameTaken),
		errors.Is(err, auth.ErrEmailTaken),
		errors.Is(err, auth.ErrDniTaken):
		return conflict(c, err.Error())
	case errors.Is(err, auth.ErrInvalidToken),
		errors.Is(err, auth.ErrSessionNotFound),
		errors.Is(err, auth.ErrNotRefreshToken):
		return unauthorized(c)
	default:
		return internalError(c)
	}
}

// POST /api/v1/auth/register
func (h *AuthHandler) Register(c fiber.Ctx) error {
	var body struct {
		Username      string  `json:"username"`
		Email         string  `json:"email"`
		Password      string  `json:"password"`
		FirstName     string  `json:"first_name"`
		LastName      string  `json:"last_name"`
		DNI           *string `json:"dni"`
		Phone         *string `json:"phone"`
		BiologicalSex *string `json:"biological_sex"`
		DateOfBirth   *string `json:"date_of_birth"` // YYYY-MM-DD
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}
	if body.Username == "" || body.Email == "" || body.Password == "" {
		return badRequest(c, "username, email and password are required")
	}

	req := auth.RegisterRequest{
		Username:      body.Username,
		Email:         body.Email,
		Password:      body.Password,
		FirstName:     body.FirstName,
		LastName:      body.LastName,
		DNI:           body.DNI,
		Phone:         body.Phone,
		BiologicalSex: body.BiologicalSex,
	}
	if body.DateOfBirth != nil {
		dob, err := time.Parse("2006-01-02", *body.DateOfBirth)
		if err != nil {
			return badRequest(c, "invalid date_of_birth, expected YYYY-MM-DD")
		}
		req.DateOfBirth = &dob
	}

	u, err := h.svc.Register(c.Context(), req)
	if err != nil {
		return mapAuthError(c, err)
	}

	return created(c, fiber.Map{"id": u.ID, "username": u.Username})
}

// POST /api/v1/auth/login
func (h *AuthHandler) Login(c fiber.Ctx) error {
	var body struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}
	if body.Username == "" || body.Password == "" {
		return badRequest(c, "username and password are required")
	}

	result, err := h.svc.Login(c.Context(), auth.LoginRequest{
		Username: body.Username,
		Password: body.Password,
	})
	if err != nil {
		return mapAuthError(c, err)
	}

	return ok(c, fiber.Map{
		"access_token":       result.Tokens.AccessToken,
		"refresh_token":      result.Tokens.RefreshToken,
		"access_expires_in":  result.Tokens.AccessExpiresIn,
		"refresh_expires_in": result.Tokens.RefreshExpiresIn,
		"user": fiber.Map{
			"id":         result.User.ID,
			"username":   result.User.Username,
			"role":       result.User.Role,
			"first_name": result.User.FirstName,
			"last_name":  result.User.LastName,
		},
	})
}

// POST /api/v1/auth/refresh
func (h *AuthHandler) Refresh(c fiber.Ctx) error {
	var body struct {
		RefreshToken string `json:"refresh_token"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}
	if body.RefreshToken == "" {
		return badRequest(c, "refresh_token is required")
	}

	tokens, err := h.svc.Refresh(c.Context(), body.RefreshToken)
	if err != nil {
		return mapAuthError(c, err)
	}

	return ok(c, fiber.Map{
		"access_token":       tokens.AccessToken,
		"refresh_token":      tokens.RefreshToken,
		"access_expires_in":  tokens.AccessExpiresIn,
		"refresh_expires_in": tokens.RefreshExpiresIn,
	})
}

// POST /api/v1/auth/logout  (requires AuthRequired middleware)
func (h *AuthHandler) Logout(c fiber.Ctx) error {
	actor, okActor := middleware.ActorFromFiber(c)
	if !okActor {
		return unauthorized(c)
	}
	claims, _ := pasetotoken.ClaimsFromFiber(c)

	if err := h.svc.Logout(c.Context(), actor, claims.SessionID); err != nil {
		return mapAuthError(c, err)
	}
	return noContent(c)
}
