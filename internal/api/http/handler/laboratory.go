package handler

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"github.com/fertitrack/fertitrack_backend/internal/api/http/middleware"
	"github.com/fertitrack/fertitrack_backend/internal/service/laboratory"
)

type LaboratoryHandler struct {
	svc laboratory.Service
}

func NewLaboratoryHandler(svc laboratory.Service) *LaboratoryHandler {
	return &LaboratoryHandler{svc: svc}
}

func mapLabError(c fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, laboratory.ErrTreatmentNotFound),
		errors.Is(err, laboratory.ErrPunctureNotFound),
		errors.Is(err, laboratory.ErrOocyteNotFound),
		errors.Is(err, laboratory.ErrEmbryoNotFound),
		errors.Is(err, laboratory.ErrTransferNotFound):
		return notFound(c, err.Error())
	case errors.Is(err, laboratory.ErrPunctureExists),
		errors.Is(err, laboratory.ErrOocyteCodeExists),
		errors.Is(err, laboratory.ErrEmbryoCodeExists),
		errors.Is(err, laboratory.ErrEmbryoExists),
		errors.Is(err, laboratory.ErrTransferExists):
		return conflict(c, err.Error())
	case errors.Is(err, laboratory.ErrInvalidState):
		return badRequest(c, err.Error())
	case errors.Is(err, laboratory.ErrInvalidTransition),
		errors.Is(err, laboratory.ErrFertilizeViaEmbryo),
		errors.Is(err, laboratory.ErrTransferViaRecord),
		errors.Is(err, laboratory.ErrOocyteNotMature),
		errors.Is(err, laboratory.ErrCryoLocationRequired),
		errors.Is(err, laboratory.ErrTreatmentNotActive):
		return unprocessable(c, err.Error())
	default:
		return internalError(c)
	}
}

// ---------------------------------------------------------------------------
// Punctures
// ---------------------------------------------------------------------------

// POST /treatments/:id/puncture
func (h *LaboratoryHandler) RegisterPuncture(c fiber.Ctx) error {
	actor, okActor := middleware.ActorFromFiber(c)
	if !okActor {
		return unauthorized(c)
	}

	treatmentID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid treatment id")
	}

	var body struct {
		Date          string  `json:"date"`
		OperatingRoom string  `json:"operating_room"`
		Complications *string `json:"complications"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}
	if body.OperatingRoom == "" {
		return badRequest(c, "operating_room is required")
	}
	date, err := time.Parse(time.RFC3339, body.Date)
	if err != nil {
		return badRequest(c, "invalid date, expected RFC 3339")
	}

	p, err := h.svc.RegisterPuncture(c.Context(), actor, treatmentID, laboratory.RegisterPunctureRequest{
		Date:          date,
		OperatingRoom: body.OperatingRoom,
		Complications: body.Complications,
	})
	if err != nil {
		return mapLabError(c, err)
	}
	return created(c, p)
}

// GET /treatments/:id/puncture
func (h *LaboratoryHandler) GetPunctureByTreatment(c fiber.Ctx) error {
	actor, okActor := middleware.ActorFromFiber(c)
	if !okActor {
		return unauthorized(c)
	}

	treatmentID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid treatment id")
	}

	p, err := h.svc.GetPunctureByTreatment(c.Context(), actor, treatmentID)
	if err != nil {
		return mapLabError(c, err)
	}
	return ok(c, p)
}

// GET /punctures/:id
func (h *LaboratoryHandler) GetPuncture(c fiber.Ctx) error {
	actor, okActor := middleware.ActorFromFiber(c)
	if !okActor {
		return unauthorized(c)
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid puncture id")
	}

	p, err := h.svc.GetPuncture(c.Context(), actor, id)
	if err != nil {
		return mapLabError(c, err)
	}
	return ok(c, p)
}

// ---------------------------------------------------------------------------
// Oocytes
// ---------------------------------------------------------------------------

// POST /punctures/:id/oocytes
func (h *LaboratoryHandler) AddOocyte(c fiber.Ctx) error {
	actor, okActor := middleware.ActorFromFiber(c)
	if !okActor {
		return unauthorized(c)
	}

	punctureID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid puncture id")
	}

	var body struct {
		OocyteCode          string `json:"oocyte_code"`
		InitialState        string `json:"initial_state"`
		MaturationTimeHours *int   `json:"maturation_time_hours"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}
	if body.OocyteCode == "" || body.InitialState == "" {
		return badRequest(c, "oocyte_code and initial_state are required")
	}

	oo, err := h.svc.AddOocyte(c.Context(), actor, punctureID, laboratory.AddOocyteRequest{
		OocyteCode:          body.OocyteCode,
		InitialState:        laboratory.OocyteState(body.InitialState),
		MaturationTimeHours: body.MaturationTimeHours,
	})
	if err != nil {
		return mapLabError(c, err)
	}
	return created(c, oo)
}

// GET /punctures/:id/oocytes
func (h *LaboratoryHandler) ListOocytes(c fiber.Ctx) error {
	actor, okActor := middleware.ActorFromFiber(c)
	if !okActor {
		return unauthorized(c)
	}

	punctureID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid puncture id")
	}

	oocytes, err := h.svc.ListOocytes(c.Context(), actor, punctureID)
	if err != nil {
		return mapLabError(c, err)
	}
	return ok(c, oocytes)
}

// GET /oocytes/:id
func (h *LaboratoryHandler) GetOocyte(c fiber.Ctx) error {
	actor, okActor := middleware.ActorFromFiber(c)
	if !okActor {
		return unauthorized(c)
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid oocyte id")
	}

	oo, err := h.svc.GetOocyte(c.Context(), actor, id)
	if err != nil {
		return mapLabError(c, err)
	}
	return ok(c, oo)
}

// GET /oocytes/:id/history
func (h *LaboratoryHandler) ListOocyteHistory(c fiber.Ctx) error {
	actor, okActor := middleware.ActorFromFiber(c)
	if !okActor {
		return unauthorized(c)
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid oocyte id")
	}

	rows, err := h.svc.ListOocyteHistory(c.Context(), actor, id)
	if err != nil {
		return mapLabError(c, err)
	}
	return ok(c, rows)
}

// POST /oocytes/:id/state
func (h *LaboratoryHandler) UpdateOocyteState(c fiber.Ctx) error {
	actor, okActor := middleware.ActorFromFiber(c)
	if !okActor {
		return unauthorized(c)
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid oocyte id")
	}

	var body struct {
		State               string  `json:"state"`
		Notes               *string `json:"notes"`
		DiscardReason       *string `json:"discard_reason"`
		NitrogenTube        *string `json:"nitrogen_tube"`
		RackNumber          *string `json:"rack_number"`
		MaturationTimeHours *int    `json:"maturation_time_hours"`
	}
	if err := c.Bind().JSON(&body); err != nil || body.State == "" {
		return badRequest(c, "state is required")
	}

	oo, err := h.svc.UpdateOocyteState(c.Context(), actor, id, laboratory.OocyteStateChangeRequest{
		Target:              laboratory.OocyteState(body.State),
		Notes:               body.Notes,
		DiscardReason:       body.DiscardReason,
		NitrogenTube:        body.NitrogenTube,
		RackNumber:          body.RackNumber,
		MaturationTimeHours: body.MaturationTimeHours,
	})
	if err != nil {
		return mapLabError(c, err)
	}
	return ok(c, oo)
}

// ---------------------------------------------------------------------------
// Embryos
// ---------------------------------------------------------------------------

// POST /oocytes/:id/embryo
func (h *LaboratoryHandler) CreateEmbryo(c fiber.Ctx) error {
	actor, okActor := middleware.ActorFromFiber(c)
	if !okActor {
		return unauthorized(c)
	}

	oocyteID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid oocyte id")
	}

	var body struct {
		EmbryoCode             string  `json:"embryo_code"`
		FertilizationTechnique string  `json:"fertilization_technique"`
		SpermSource            string  `json:"sperm_source"`
		Quality                int     `json:"quality"`
		PGTPerformed           bool    `json:"pgt_performed"`
		PGTResult              *bool   `json:"pgt_result"`
		Notes                  *string `json:"notes"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}
	if body.EmbryoCode == "" {
		return badRequest(c, "embryo_code is required")
	}
	if body.FertilizationTechnique != "IVF" && body.FertilizationTechnique != "ICSI" {
		return badRequest(c, "fertilization_technique must be IVF or ICSI")
	}
	if body.SpermSource != "PARTNER" && body.SpermSource != "DONOR" {
		return badRequest(c, "sperm_source must be PARTNER or DONOR")
	}
	if body.Quality < 1 || body.Quality > 5 {
		return badRequest(c, "quality must be between 1 and 5")
	}

	em, err := h.svc.CreateEmbryo(c.Context(), actor, oocyteID, laboratory.CreateEmbryoRequest{
		EmbryoCode:             body.EmbryoCode,
		FertilizationTechnique: body.FertilizationTechnique,
		SpermSource:            body.SpermSource,
		Quality:                body.Quality,
		PGTPerformed:           body.PGTPerformed,
		PGTResult:              body.PGTResult,
		Notes:                  body.Notes,
	})
	if err != nil {
		return mapLabError(c, err)
	}
	return created(c, em)
}

// GET /embryos/:id
func (h *LaboratoryHandler) GetEmbryo(c fiber.Ctx) error {
	actor, okActor := middleware.ActorFromFiber(c)
	if !okActor {
		return unauthorized(c)
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid embryo id")
	}

	em, err := h.svc.GetEmbryo(c.Context(), actor, id)
	if err != nil {
		return mapLabError(c, err)
	}
	return ok(c, em)
}

// GET /treatments/:id/embryos
func (h *LaboratoryHandler) ListEmbryos(c fiber.Ctx) error {
	actor, okActor := middleware.ActorFromFiber(c)
	if !okActor {
		return unauthorized(c)
	}

	treatmentID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid treatment id")
	}

	embryos, err := h.svc.ListEmbryos(c.Context(), actor, treatmentID)
	if err != nil {
		return mapLabError(c, err)
	}
	return ok(c, embryos)
}

// PATCH /embryos/:id
func (h *LaboratoryHandler) UpdateEmbryo(c fiber.Ctx) error {
	actor, okActor := middleware.ActorFromFiber(c)
	if !okActor {
		return unauthorized(c)
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid embryo id")
	}

	var body struct {
		Quality      *int  `json:"quality"`
		PGTPerformed *bool `json:"pgt_performed"`
		PGTResult    *bool `json:"pgt_result"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}
	if body.Quality != nil && (*body.Quality < 1 || *body.Quality > 5) {
		return badRequest(c, "quality must be between 1 and 5")
	}

	em, err := h.svc.UpdateEmbryo(c.Context(), actor, id, laboratory.UpdateEmbryoRequest{
		Quality:      body.Quality,
		PGTPerformed: body.PGTPerformed,
		PGTResult:    body.PGTResult,
	})
	if err != nil {
		return mapLabError(c, err)
	}
	return ok(c, em)
}

// POST /embryos/:id/state
func (h *LaboratoryHandler) UpdateEmbryoState(c fiber.Ctx) error {
	actor, okActor := middleware.ActorFromFiber(c)
	if !okActor {
		return unauthorized(c)
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid embryo id")
	}

	var body struct {
		State         string  `json:"state"`
		DiscardReason *string `json:"discard_reason"`
		NitrogenTube  *string `json:"nitrogen_tube"`
		RackNumber    *string `json:"rack_number"`
	}
	if err := c.Bind().JSON(&body); err != nil || body.State == "" {
		return badRequest(c, "state is required")
	}

	em, err := h.svc.UpdateEmbryoState(c.Context(), actor, id, laboratory.EmbryoStateChangeRequest{
		Target:        laboratory.EmbryoState(body.State),
		DiscardReason: body.DiscardReason,
		NitrogenTube:  body.NitrogenTube,
		RackNumber:    body.RackNumber,
	})
	if err != nil {
		return mapLabError(c, err)
	}
	return ok(c, em)
}

// ---------------------------------------------------------------------------
// Transfers
// ---------------------------------------------------------------------------

// POST /embryos/:id/transfer
func (h *LaboratoryHandler) RecordTransfer(c fiber.Ctx) error {
	actor, okActor := middleware.ActorFromFiber(c)
	if !okActor {
		return unauthorized(c)
	}

	embryoID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid embryo id")
	}

	var body struct {
		ScheduledDate string  `json:"scheduled_date"`
		PerformedDate *string `json:"performed_date"`
		Notes         *string `json:"notes"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}
	scheduled, err := time.Parse(time.RFC3339, body.ScheduledDate)
	if err != nil {
		return badRequest(c, "invalid scheduled_date, expected RFC 3339")
	}

	req := laboratory.RecordTransferRequest{
		ScheduledDate: scheduled,
		Notes:         body.Notes,
	}
	if body.PerformedDate != nil {
		performed, err := time.Parse(time.RFC3339, *body.PerformedDate)
		if err != nil {
			return badRequest(c, "invalid performed_date, expected RFC 3339")
		}
		req.PerformedDate = &performed
	}

	tr, err := h.svc.RecordTransfer(c.Context(), actor, embryoID, req)
	if err != nil {
		return mapLabError(c, err)
	}
	return created(c, tr)
}

// PATCH /transfers/:id
func (h *LaboratoryHandler) UpdateTransferOutcome(c fiber.Ctx) error {
	actor, okActor := middleware.ActorFromFiber(c)
	if !okActor {
		return unauthorized(c)
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid transfer id")
	}

	var body struct {
		PerformedDate     *string `json:"performed_date"`
		BetaPositive      *bool   `json:"beta_positive"`
		GestationalSac    *bool   `json:"gestational_sac"`
		ClinicalPregnancy *bool   `json:"clinical_pregnancy"`
		LiveBirth         *bool   `json:"live_birth"`
		Notes             *string `json:"notes"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	req := laboratory.TransferOutcomeRequest{
		BetaPositive:      body.BetaPositive,
		GestationalSac:    body.GestationalSac,
		ClinicalPregnancy: body.ClinicalPregnancy,
		LiveBirth:         body.LiveBirth,
		Notes:             body.Notes,
	}
	if body.PerformedDate != nil {
		performed, err := time.Parse(time.RFC3339, *body.PerformedDate)
		if err != nil {
			return badRequest(c, "invalid performed_date, expected RFC 3339")
		}
		req.PerformedDate = &performed
	}

	tr, err := h.svc.UpdateTransferOutcome(c.Context(), actor, id, req)
	if err != nil {
		return mapLabError(c, err)
	}
	return ok(c, tr)
}

// ---------------------------------------------------------------------------
// Patient-facing
// ---------------------------------------------------------------------------

// GET /me/biological-products
func (h *LaboratoryHandler) MyBiologicalProducts(c fiber.Ctx) error {
	actor, okActor := middleware.ActorFromFiber(c)
	if !okActor {
		return unauthorized(c)
	}

	products, err := h.svc.MyCryopreservedProducts(c.Context(), actor)
	if err != nil {
		return mapLabError(c, err)
	}
	return ok(c, fiber.Map{
		"oocytes": products.Oocytes,
		"embryos": products.Embryos,
	})
}
