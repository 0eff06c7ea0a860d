package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/fertitrack/fertitrack_backend/internal/api/http/handler"
	"github.com/fertitrack/fertitrack_backend/pkg/authorize"
)

func (r *Router) registerLaboratoryRoutes(
	api fiber.Router,
	lh *handler.LaboratoryHandler,
	authRequired fiber.Handler,
	requirePerm func(authorize.Resource, authorize.Action) fiber.Handler,
	requireSelf func(authorize.Resource, authorize.Action) fiber.Handler,
) {
	treatments := api.Group("/treatments", authRequired)
	treatments.Post("/:id/puncture", requirePerm(authorize.ResourcePuncture, authorize.ActionCreate), lh.RegisterPuncture)
	treatments.Get("/:id/puncture", requirePerm(authorize.ResourcePuncture, authorize.ActionRead), lh.GetPunctureByTreatment)
	treatments.Get("/:id/embryos", requirePerm(authorize.ResourceEmbryo, authorize.ActionList), lh.ListEmbryos)

	punctures := api.Group("/punctures", authRequired)
	punctures.Get("/:id", requirePerm(authorize.ResourcePuncture, authorize.ActionRead), lh.GetPuncture)
	punctures.Post("/:id/oocytes", requirePerm(authorize.ResourceOocyte, authorize.ActionCreate), lh.AddOocyte)
	punctures.Get("/:id/oocytes", requirePerm(authorize.ResourceOocyte, authorize.ActionList), lh.ListOocytes)

	oocytes := api.Group("/oocytes", authRequired)
	oocytes.Get("/:id", requirePerm(authorize.ResourceOocyte, authorize.ActionRead), lh.GetOocyte)
	oocytes.Get("/:id/history", requirePerm(authorize.ResourceOocyte, authorize.ActionRead), lh.ListOocyteHistory)
	oocytes.Post("/:id/state", requirePerm(authorize.ResourceOocyte, authorize.ActionTransition), lh.UpdateOocyteState)
	oocytes.Post("/:id/embryo", requirePerm(authorize.ResourceEmbryo, authorize.ActionCreate), lh.CreateEmbryo)

	embryos := api.Group("/embryos", authRequired)
	embryos.Get("/:id", requirePerm(authorize.ResourceEmbryo, authorize.ActionRead), lh.GetEmbryo)
	embryos.Patch("/:id", requirePerm(authorize.ResourceEmbryo, authorize.ActionUpdate), lh.UpdateEmbryo)
	embryos.Post("/:id/state", requirePerm(authorize.ResourceEmbryo, authorize.ActionTransition), lh.UpdateEmbryoState)
	embryos.Post("/:id/transfer", requirePerm(authorize.ResourceEmbryoTransfer, authorize.ActionCreate), lh.RecordTransfer)

	transfers := api.Group("/transfers", authRequired)
	transfers.Patch("/:id", requirePerm(authorize.ResourceEmbryoTransfer, authorize.ActionUpdate), lh.UpdateTransferOutcome)

	me := api.Group("/me", authRequired)
	me.Get("/biological-products", requireSelf(authorize.ResourceOocyte, authorize.ActionList), lh.MyBiologicalProducts)
}
