package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/fertitrack/fertitrack_backend/internal/api/http/handler"
	"github.com/fertitrack/fertitrack_backend/pkg/authorize"
)

func (r *Router) registerTreatmentRoutes(
	api fiber.Router,
	th *handler.TreatmentHandler,
	authRequired fiber.Handler,
	requirePerm func(authorize.Resource, authorize.Action) fiber.Handler,
	requireSelf func(authorize.Resource, authorize.Action) fiber.Handler,
) {
	treatments := api.Group("/treatments", authRequired)

	treatments.Get("/", requirePerm(authorize.ResourceTreatment, authorize.ActionList), th.List)
	treatments.Post("/", requirePerm(authorize.ResourceTreatment, authorize.ActionCreate), th.Initiate)

	t := treatments.Group("/:id")
	t.Get("/", requirePerm(authorize.ResourceTreatment, authorize.ActionRead), th.Get)
	t.Patch("/", requirePerm(authorize.ResourceTreatment, authorize.ActionUpdate), th.UpdateProtocol)
	t.Patch("/status", requirePerm(authorize.ResourceTreatment, authorize.ActionUpdate), th.UpdateStatus)

	t.Get("/monitoring-days", requirePerm(authorize.ResourceMonitoringDay, authorize.ActionList), th.ListMonitoringDays)
	t.Post("/monitoring-days", requirePerm(authorize.ResourceMonitoringDay, authorize.ActionCreate), th.AddMonitoringDays)

	t.Get("/study-results", requirePerm(authorize.ResourceStudyResult, authorize.ActionList), th.ListStudyResults)
	t.Post("/study-results", requirePerm(authorize.ResourceStudyResult, authorize.ActionCreate), th.AddStudyResult)
	t.Get("/study-results/:sid/download", requirePerm(authorize.ResourceStudyResult, authorize.ActionRead), th.DownloadStudyResult)

	t.Get("/orders", requirePerm(authorize.ResourceMedicalOrder, authorize.ActionList), th.ListMedicalOrders)
	t.Post("/orders", requirePerm(authorize.ResourceMedicalOrder, authorize.ActionCreate), th.AddMedicalOrder)

	days := api.Group("/monitoring-days", authRequired)
	days.Patch("/:id", requirePerm(authorize.ResourceMonitoringDay, authorize.ActionUpdate), th.UpdateMonitoringDay)

	me := api.Group("/me", authRequired)
	me.Get("/treatments", requireSelf(authorize.ResourceTreatment, authorize.ActionList), th.MyTreatments)
	me.Get("/orders", requireSelf(authorize.ResourceMedicalOrder, authorize.ActionList), th.MyMedicalOrders)
}
