package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/fertitrack/fertitrack_backend/internal/api/http/handler"
	"github.com/fertitrack/fertitrack_backend/pkg/authorize"
)

func (r *Router) registerPatientRoutes(
	api fiber.Router,
	ph *handler.PatientHandler,
	authRequired fiber.Handler,
	requirePerm func(authorize.Resource, authorize.Action) fiber.Handler,
	requireSelf func(authorize.Resource, authorize.Action) fiber.Handler,
) {
	patients := api.Group("/patients", authRequired)

	patients.Get("/", requirePerm(authorize.ResourcePatient, authorize.ActionList), ph.List)

	p := patients.Group("/:id")
	p.Get("/", requirePerm(authorize.ResourcePatient, authorize.ActionRead), ph.Get)
	p.Patch("/", requirePerm(authorize.ResourcePatient, authorize.ActionUpdate), ph.Update)

	p.Get("/medical-history", requirePerm(authorize.ResourceMedicalHistory, authorize.ActionRead), ph.GetMedicalHistory)
	p.Put("/medical-history", requirePerm(authorize.ResourceMedicalHistory, authorize.ActionUpdate), ph.PutMedicalHistory)

	p.Get("/partner", requirePerm(authorize.ResourcePartner, authorize.ActionRead), ph.GetPartner)
	p.Put("/partner", requirePerm(authorize.ResourcePartner, authorize.ActionUpdate), ph.PutPartner)

	me := api.Group("/me", authRequired)
	me.Get("/patient", requireSelf(authorize.ResourcePatient, authorize.ActionRead), ph.OwnProfile)
}
