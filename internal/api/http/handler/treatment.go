package handler

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"github.com/fertitrack/fertitrack_backend/internal/api/http/middleware"
	"github.com/fertitrack/fertitrack_backend/internal/service/treatment"
)

type TreatmentHandler struct {
	svc treatment.Service
}

func NewTreatmentHandler(svc treatment.Service) *TreatmentHandler {
	return &TreatmentHandler{svc: svc}
}

func mapTreatmentError(c fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, treatment.ErrTreatmentNotFound),
		errors.Is(err, treatment.ErrPatientNotFound),
		errors.Is(err, treatment.ErrDoctorNotFound),
		errors.Is(err, treatment.ErrMonitoringDayNotFound),
		errors.Is(err, treatment.ErrStudyResultNotFound),
		errors.Is(err, treatment.ErrOrderNotFound):
		return notFound(c, err.Error())
	case errors.Is(err, treatment.ErrNotADoctor),
		errors.Is(err, treatment.ErrInvalidStatusChange),
		errors.Is(err, treatment.ErrNoResultFile):
		return badRequest(c, err.Error())
	case errors.Is(err, treatment.ErrTreatmentNotActive),
		errors.Is(err, treatment.ErrFileStorageDisabled):
		return unprocessable(c, err.Error())
	default:
		return internalError(c)
	}
}

// POST /treatments
func (h *TreatmentHandler) Initiate(c fiber.Ctx) error {
	actor, okActor := middleware.ActorFromFiber(c)
	if !okActor {
		return unauthorized(c)
	}

	var body struct {
		PatientID string  `json:"patient_id"`
		DoctorID  *string `json:"doctor_id"`
		Objective string  `json:"objective"`

		StimulationProtocol *string `json:"stimulation_protocol"`
		MedicationType      *string `json:"medication_type"`
		MedicationDose      *string `json:"medication_dose"`
		MedicationDuration  *string `json:"medication_duration"`

		MedicalHistory *struct {
			ClinicalBackground      *string `json:"clinical_background"`
			SurgicalBackground      *string `json:"surgical_background"`
			PersonalBackground      *string `json:"personal_background"`
			FamilyBackground        *string `json:"family_background"`
			GynecologicalBackground *string `json:"gynecological_background"`
			PhysicalExam            *string `json:"physical_exam"`
			Phenotype               *string `json:"phenotype"`
		} `json:"medical_history"`

		Partner *struct {
			FirstName         string  `json:"first_name"`
			LastName          string  `json:"last_name"`
			DateOfBirth       string  `json:"date_of_birth"`
			BiologicalSex     string  `json:"biological_sex"`
			DNI               string  `json:"dni"`
			GenitalBackground *string `json:"genital_background"`
		} `json:"partner"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	patientID, err := uuid.Parse(body.PatientID)
	if err != nil {
		return badRequest(c, "invalid patient_id")
	}
	if body.Objective != "PREGNANCY" && body.Objective != "OOCYTE_PRESERVATION" {
		return badRequest(c, "objective must be PREGNANCY or OOCYTE_PRESERVATION")
	}

	req := treatment.InitiateTreatmentRequest{
		PatientID:           patientID,
		Objective:           body.Objective,
		StimulationProtocol: body.StimulationProtocol,
		MedicationType:      body.MedicationType,
		MedicationDose:      body.MedicationDose,
		MedicationDuration:  body.MedicationDuration,
	}
	if body.DoctorID != nil {
		did, err := uuid.Parse(*body.DoctorID)
		if err != nil {
			return badRequest(c, "invalid doctor_id")
		}
		req.DoctorID = &did
	}
	if body.MedicalHistory != nil {
		req.MedicalHistory = &treatment.MedicalHistoryInput{
			ClinicalBackground:      body.MedicalHistory.ClinicalBackground,
			SurgicalBackground:      body.MedicalHistory.SurgicalBackground,
			PersonalBackground:      body.MedicalHistory.PersonalBackground,
			FamilyBackground:        body.MedicalHistory.FamilyBackground,
			GynecologicalBackground: body.MedicalHistory.GynecologicalBackground,
			PhysicalExam:            body.MedicalHistory.PhysicalExam,
			Phenotype:               body.MedicalHistory.Phenotype,
		}
	}
	if body.Partner != nil {
		dob, err := time.Parse("2006-01-02", body.Partner.DateOfBirth)
		if err != nil {
			return badRequest(c, "invalid partner date_of_birth, expected YYYY-MM-DD")
		}
		req.Partner = &treatment.PartnerInput{
			FirstName:         body.Partner.FirstName,
			LastName:          body.Partner.LastName,
			DateOfBirth:       dob,
			BiologicalSex:     body.Partner.BiologicalSex,
			DNI:               body.Partner.DNI,
			GenitalBackground: body.Partner.GenitalBackground,
		}
	}

	t, err := h.svc.InitiateTreatment(c.Context(), actor, req)
	if err != nil {
		return mapTreatmentError(c, err)
	}
	return created(c, t)
}

// GET /treatments
func (h *TreatmentHandler) List(c fiber.Ctx) error {
	actor, okActor := middleware.ActorFromFiber(c)
	if !okActor {
		return unauthorized(c)
	}

	var q struct {
		Page      int    `query:"page"`
		PageSize  int    `query:"page_size"`
		Status    string `query:"status"`
		PatientID string `query:"patient_id"`
	}
	_ = c.Bind().Query(&q)

	req := treatment.ListTreatmentsRequest{Page: q.Page, PageSize: q.PageSize}
	if q.Status != "" {
		req.Status = &q.Status
	}
	if q.PatientID != "" {
		pid, err := uuid.Parse(q.PatientID)
		if err != nil {
			return badRequest(c, "invalid patient_id")
		}
		req.PatientID = &pid
	}

	result, err := h.svc.ListTreatments(c.Context(), actor, req)
	if err != nil {
		return mapTreatmentError(c, err)
	}

	return ok(c, fiber.Map{
		"treatments": result.Items,
		"total":      result.TotalCount,
		"page":       result.Page,
		"page_size":  result.PageSize,
	})
}

// GET /me/treatments
func (h *TreatmentHandler) MyTreatments(c fiber.Ctx) error {
	actor, okActor := middleware.ActorFromFiber(c)
	if !okActor {
		return unauthorized(c)
	}

	items, err := h.svc.MyTreatments(c.Context(), actor)
	if err != nil {
		return mapTreatmentError(c, err)
	}
	return ok(c, items)
}

// GET /treatments/:id
func (h *TreatmentHandler) Get(c fiber.Ctx) error {
	actor, okActor := middleware.ActorFromFiber(c)
	if !okActor {
		return unauthorized(c)
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid treatment id")
	}

	t, err := h.svc.GetTreatment(c.Context(), actor, id)
	if err != nil {
		return mapTreatmentError(c, err)
	}
	return ok(c, t)
}

// PATCH /treatments/:id/status
func (h *TreatmentHandler) UpdateStatus(c fiber.Ctx) error {
	actor, okActor := middleware.ActorFromFiber(c)
	if !okActor {
		return unauthorized(c)
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid treatment id")
	}

	var body struct {
		Status string `json:"status"`
	}
	if err := c.Bind().JSON(&body); err != nil || body.Status == "" {
		return badRequest(c, "status is required")
	}

	t, err := h.svc.UpdateStatus(c.Context(), actor, id, body.Status)
	if err != nil {
		return mapTreatmentError(c, err)
	}
	return ok(c, t)
}

// PATCH /treatments/:id
func (h *TreatmentHandler) UpdateProtocol(c fiber.Ctx) error {
	actor, okActor := middleware.ActorFromFiber(c)
	if !okActor {
		return unauthorized(c)
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid treatment id")
	}

	var body struct {
		StimulationProtocol *string `json:"stimulation_protocol"`
		MedicationType      *string `json:"medication_type"`
		MedicationDose      *string `json:"medication_dose"`
		MedicationDuration  *string `json:"medication_duration"`
		OocytesViable       *bool   `json:"oocytes_viable"`
		SpermViable         *bool   `json:"sperm_viable"`
		ConsentDocumentKey  *string `json:"consent_document_key"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	t, err := h.svc.UpdateProtocol(c.Context(), actor, id, treatment.UpdateProtocolRequest{
		StimulationProtocol: body.StimulationProtocol,
		MedicationType:      body.MedicationType,
		MedicationDose:      body.MedicationDose,
		MedicationDuration:  body.MedicationDuration,
		OocytesViable:       body.OocytesViable,
		SpermViable:         body.SpermViable,
		ConsentDocumentKey:  body.ConsentDocumentKey,
	})
	if err != nil {
		return mapTreatmentError(c, err)
	}
	return ok(c, t)
}

// POST /treatments/:id/monitoring-days
func (h *TreatmentHandler) AddMonitoringDays(c fiber.Ctx) error {
	actor, okActor := middleware.ActorFromFiber(c)
	if !okActor {
		return unauthorized(c)
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid treatment id")
	}

	var body struct {
		Days []struct {
			Date  string  `json:"date"`
			Notes *string `json:"notes"`
		} `json:"days"`
	}
	if err := c.Bind().JSON(&body); err != nil || len(body.Days) == 0 {
		return badRequest(c, "days is required")
	}

	req := treatment.AddMonitoringDaysRequest{}
	for _, d := range body.Days {
		date, err := time.Parse("2006-01-02", d.Date)
		if err != nil {
			return badRequest(c, "invalid date, expected YYYY-MM-DD")
		}
		req.Days = append(req.Days, treatment.MonitoringDayInput{Date: date, Notes: d.Notes})
	}

	days, err := h.svc.AddMonitoringDays(c.Context(), actor, id, req)
	if err != nil {
		return mapTreatmentError(c, err)
	}
	return created(c, days)
}

// GET /treatments/:id/monitoring-days
func (h *TreatmentHandler) ListMonitoringDays(c fiber.Ctx) error {
	actor, okActor := middleware.ActorFromFiber(c)
	if !okActor {
		return unauthorized(c)
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid treatment id")
	}

	days, err := h.svc.ListMonitoringDays(c.Context(), actor, id)
	if err != nil {
		return mapTreatmentError(c, err)
	}
	return ok(c, days)
}

// PATCH /monitoring-days/:id
func (h *TreatmentHandler) UpdateMonitoringDay(c fiber.Ctx) error {
	actor, okActor := middleware.ActorFromFiber(c)
	if !okActor {
		return unauthorized(c)
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid monitoring day id")
	}

	var body struct {
		Date      *string `json:"date"`
		Notes     *string `json:"notes"`
		Completed *bool   `json:"completed"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	req := treatment.UpdateMonitoringDayRequest{
		Notes:     body.Notes,
		Completed: body.Completed,
	}
	if body.Date != nil {
		date, err := time.Parse("2006-01-02", *body.Date)
		if err != nil {
			return badRequest(c, "invalid date, expected YYYY-MM-DD")
		}
		req.Date = &date
	}

	day, err := h.svc.UpdateMonitoringDay(c.Context(), actor, id, req)
	if err != nil {
		return mapTreatmentError(c, err)
	}
	return ok(c, day)
}

// POST /treatments/:id/study-results
func (h *TreatmentHandler) AddStudyResult(c fiber.Ctx) error {
	actor, okActor := middleware.ActorFromFiber(c)
	if !okActor {
		return unauthorized(c)
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid treatment id")
	}

	var body struct {
		StudyType     string  `json:"study_type"`
		StudyName     string  `json:"study_name"`
		ResultFileKey *string `json:"result_file_key"`
		ResultText    *string `json:"result_text"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}
	if body.StudyType == "" || body.StudyName == "" {
		return badRequest(c, "study_type and study_name are required")
	}

	sr, err := h.svc.AddStudyResult(c.Context(), actor, id, treatment.AddStudyResultRequest{
		StudyType:     body.StudyType,
		StudyName:     body.StudyName,
		ResultFileKey: body.ResultFileKey,
		ResultText:    body.ResultText,
	})
	if err != nil {
		return mapTreatmentError(c, err)
	}
	return created(c, sr)
}

// GET /treatments/:id/study-results
func (h *TreatmentHandler) ListStudyResults(c fiber.Ctx) error {
	actor, okActor := middleware.ActorFromFiber(c)
	if !okActor {
		return unauthorized(c)
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid treatment id")
	}

	results, err := h.svc.ListStudyResults(c.Context(), actor, id)
	if err != nil {
		return mapTreatmentError(c, err)
	}
	return ok(c, results)
}

// GET /treatments/:id/study-results/:sid/download
func (h *TreatmentHandler) DownloadStudyResult(c fiber.Ctx) error {
	actor, okActor := middleware.ActorFromFiber(c)
	if !okActor {
		return unauthorized(c)
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid treatment id")
	}
	sid, err := uuid.Parse(c.Params("sid"))
	if err != nil {
		return badRequest(c, "invalid study result id")
	}

	url, err := h.svc.DownloadStudyResult(c.Context(), actor, id, sid)
	if err != nil {
		return mapTreatmentError(c, err)
	}
	return ok(c, fiber.Map{"download_url": url})
}

// POST /treatments/:id/orders
func (h *TreatmentHandler) AddMedicalOrder(c fiber.Ctx) error {
	actor, okActor := middleware.ActorFromFiber(c)
	if !okActor {
		return unauthorized(c)
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid treatment id")
	}

	var body struct {
		OrderType   string `json:"order_type"`
		Description string `json:"description"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}
	if body.OrderType == "" || body.Description == "" {
		return badRequest(c, "order_type and description are required")
	}

	o, err := h.svc.AddMedicalOrder(c.Context(), actor, id, treatment.AddMedicalOrderRequest{
		OrderType:   body.OrderType,
		Description: body.Description,
	})
	if err != nil {
		return mapTreatmentError(c, err)
	}
	return created(c, o)
}

// GET /treatments/:id/orders
func (h *TreatmentHandler) ListMedicalOrders(c fiber.Ctx) error {
	actor, okActor := middleware.ActorFromFiber(c)
	if !okActor {
		return unauthorized(c)
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid treatment id")
	}

	orders, err := h.svc.ListMedicalOrders(c.Context(), actor, id)
	if err != nil {
		return mapTreatmentError(c, err)
	}
	return ok(c, orders)
}

// GET /me/orders
func (h *TreatmentHandler) MyMedicalOrders(c fiber.Ctx) error {
	actor, okActor := middleware.ActorFromFiber(c)
	if !okActor {
		return unauthorized(c)
	}

	orders, err := h.svc.MyMedicalOrders(c.Context(), actor)
	if err != nil {
		return mapTreatmentError(c, err)
	}
	return ok(c, orders)
}
