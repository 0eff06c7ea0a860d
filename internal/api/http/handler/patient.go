package handler

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"github.com/fertitrack/fertitrack_backend/internal/api/http/middleware"
	"github.com/fertitrack/fertitrack_backend/internal/service/patient"
)

type PatientHandler struct {
	svc patient.Service
}

func NewPatientHandler(svc patient.Service) *PatientHandler {
	return &PatientHandler{svc: svc}
}

func mapPatientError(c fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, patient.ErrPatientNotFound),
		errors.Is(err, patient.ErrHistoryNotFound),
		errors.Is(err, patient.ErrPartnerNotFound):
		return notFound(c, err.Error())
	default:
		return internalError(c)
	}
}

// GET /patients
func (h *PatientHandler) List(c fiber.Ctx) error {
	actor, okActor := middleware.ActorFromFiber(c)
	if !okActor {
		return unauthorized(c)
	}

	var q struct {
		Page     int    `query:"page"`
		PageSize int    `query:"page_size"`
		Search   string `query:"search"`
	}
	_ = c.Bind().Query(&q)

	req := patient.ListPatientsRequest{Page: q.Page, PageSize: q.PageSize}
	if q.Search != "" {
		req.Search = &q.Search
	}

	result, err := h.svc.ListPatients(c.Context(), actor, req)
	if err != nil {
		return mapPatientError(c, err)
	}

	return ok(c, fiber.Map{
		"patients":  result.Items,
		"total":     result.TotalCount,
		"page":      result.Page,
		"page_size": result.PageSize,
	})
}

// GET /patients/:id
func (h *PatientHandler) Get(c fiber.Ctx) error {
	actor, okActor := middleware.ActorFromFiber(c)
	if !okActor {
		return unauthorized(c)
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid patient id")
	}

	p, err := h.svc.GetPatient(c.Context(), actor, id)
	if err != nil {
		return mapPatientError(c, err)
	}
	return ok(c, p)
}

// GET /me/patient
func (h *PatientHandler) OwnProfile(c fiber.Ctx) error {
	actor, okActor := middleware.ActorFromFiber(c)
	if !okActor {
		return unauthorized(c)
	}

	p, err := h.svc.GetOwnProfile(c.Context(), actor)
	if err != nil {
		return mapPatientError(c, err)
	}
	return ok(c, p)
}

type patientUpdateBody struct {
	Occupation          *string `json:"occupation"`
	MedicalCoverageID   *int    `json:"medical_coverage_id"`
	MedicalCoverageName *string `json:"medical_coverage_name"`
	MemberNumber        *string `json:"member_number"`
	FirstName           *string `json:"first_name"`
	LastName            *string `json:"last_name"`
	Phone               *string `json:"phone"`
	DateOfBirth         *string `json:"date_of_birth"`
}

func (b *patientUpdateBody) toRequest() (patient.UpdatePatientRequest, error) {
	req := patient.UpdatePatientRequest{
		Occupation:          b.Occupation,
		MedicalCoverageID:   b.MedicalCoverageID,
		MedicalCoverageName: b.MedicalCoverageName,
		MemberNumber:        b.MemberNumber,
		FirstName:           b.FirstName,
		LastName:            b.LastName,
		Phone:               b.Phone,
	}
	if b.DateOfBirth != nil {
		dob, err := time.Parse("2006-01-02", *b.DateOfBirth)
		if err != nil {
			return req, err
		}
		req.DateOfBirth = &dob
	}
	return req, nil
}

// PATCH /patients/:id
func (h *PatientHandler) Update(c fiber.Ctx) error {
	actor, okActor := middleware.ActorFromFiber(c)
	if !okActor {
		return unauthorized(c)
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid patient id")
	}

	var body patientUpdateBody
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}
	req, err := body.toRequest()
	if err != nil {
		return badRequest(c, "invalid date_of_birth, expected YYYY-MM-DD")
	}

	p, err := h.svc.UpdatePatient(c.Context(), actor, id, req)
	if err != nil {
		return mapPatientError(c, err)
	}
	return ok(c, p)
}

// GET /patients/:id/medical-history
func (h *PatientHandler) GetMedicalHistory(c fiber.Ctx) error {
	actor, okActor := middleware.ActorFromFiber(c)
	if !okActor {
		return unauthorized(c)
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid patient id")
	}

	hist, err := h.svc.GetMedicalHistory(c.Context(), actor, id)
	if err != nil {
		return mapPatientError(c, err)
	}
	return ok(c, hist)
}

// PUT /patients/:id/medical-history
func (h *PatientHandler) PutMedicalHistory(c fiber.Ctx) error {
	actor, okActor := middleware.ActorFromFiber(c)
	if !okActor {
		return unauthorized(c)
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid patient id")
	}

	var body struct {
		ClinicalBackground      *string `json:"clinical_background"`
		SurgicalBackground      *string `json:"surgical_background"`
		PersonalBackground      *string `json:"personal_background"`
		FamilyBackground        *string `json:"family_background"`
		GynecologicalBackground *string `json:"gynecological_background"`
		PhysicalExam            *string `json:"physical_exam"`
		Phenotype               *string `json:"phenotype"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	hist, err := h.svc.PutMedicalHistory(c.Context(), actor, id, patient.PutMedicalHistoryRequest{
		ClinicalBackground:      body.ClinicalBackground,
		SurgicalBackground:      body.SurgicalBackground,
		PersonalBackground:      body.PersonalBackground,
		FamilyBackground:        body.FamilyBackground,
		GynecologicalBackground: body.GynecologicalBackground,
		PhysicalExam:            body.PhysicalExam,
		Phenotype:               body.Phenotype,
	})
	if err != nil {
		return mapPatientError(c, err)
	}
	return ok(c, hist)
}

// GET /patients/:id/partner
func (h *PatientHandler) GetPartner(c fiber.Ctx) error {
	actor, okActor := middleware.ActorFromFiber(c)
	if !okActor {
		return unauthorized(c)
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid patient id")
	}

	p, err := h.svc.GetPartner(c.Context(), actor, id)
	if err != nil {
		return mapPatientError(c, err)
	}
	return ok(c, p)
}

// PUT /patients/:id/partner
func (h *PatientHandler) PutPartner(c fiber.Ctx) error {
	actor, okActor := middleware.ActorFromFiber(c)
	if !okActor {
		return unauthorized(c)
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid patient id")
	}

	var body struct {
		FirstName         string  `json:"first_name"`
		LastName          string  `json:"last_name"`
		DateOfBirth       string  `json:"date_of_birth"`
		BiologicalSex     string  `json:"biological_sex"`
		DNI               string  `json:"dni"`
		GenitalBackground *string `json:"genital_background"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}
	if body.FirstName == "" || body.LastName == "" || body.DNI == "" {
		return badRequest(c, "first_name, last_name and dni are required")
	}
	dob, err := time.Parse("2006-01-02", body.DateOfBirth)
	if err != nil {
		return badRequest(c, "invalid date_of_birth, expected YYYY-MM-DD")
	}

	p, err := h.svc.PutPartner(c.Context(), actor, id, patient.PutPartnerRequest{
		FirstName:         body.FirstName,
		LastName:          body.LastName,
		DateOfBirth:       dob,
		BiologicalSex:     body.BiologicalSex,
		DNI:               body.DNI,
		GenitalBackground: body.GenitalBackground,
	})
	if err != nil {
		return mapPatientError(c, err)
	}
	return ok(c, p)
}
