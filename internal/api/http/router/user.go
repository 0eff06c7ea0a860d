package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/fertitrack/fertitrack_backend/internal/api/http/handler"
	"github.com/fertitrack/fertitrack_backend/pkg/authorize"
)

func (r *Router) registerUserRoutes(
	api fiber.Router,
	uh *handler.UserHandler,
	authRequired fiber.Handler,
	requirePerm func(authorize.Resource, authorize.Action) fiber.Handler,
	requireSelf func(authorize.Resource, authorize.Action) fiber.Handler,
) {
	users := api.Group("/users", authRequired)

	users.Get("/", requirePerm(authorize.ResourceUser, authorize.ActionList), uh.List)
	users.Post("/staff", requirePerm(authorize.ResourceUser, authorize.ActionCreate), uh.CreateStaff)
	users.Get("/:id", requirePerm(authorize.ResourceUser, authorize.ActionRead), uh.Get)
	users.Patch("/:id/active", requirePerm(authorize.ResourceUser, authorize.ActionUpdate), uh.SetActive)

	me := api.Group("/me", authRequired)
	me.Get("/", requireSelf(authorize.ResourceUser, authorize.ActionRead), uh.Profile)
	me.Patch("/", requireSelf(authorize.ResourceUser, authorize.ActionUpdate), uh.UpdateProfile)
}
