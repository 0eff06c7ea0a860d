package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/fertitrack/fertitrack_backend/internal/api/http/handler"
)

func (r *Router) registerAuthRoutes(api fiber.Router, ah *handler.AuthHandler, authRequired fiber.Handler) {
	authGroup := api.Group("/auth")

	authGroup.Post("/register", ah.Register)
	authGroup.Post("/login", ah.Login)
	authGroup.Post("/refresh", ah.Refresh)
	authGroup.Post("/logout", authRequired, ah.Logout)
}
