package treatment

import (
	"context"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"

	"github.com/fertitrack/fertitrack_backend/internal/repo"
	entorder "github.com/fertitrack/fertitrack_backend/internal/repo/medicalorder"
	entmonitoring "github.com/fertitrack/fertitrack_backend/internal/repo/monitoringday"
	entpartner "github.com/fertitrack/fertitrack_backend/internal/repo/partner"
	entpatient "github.com/fertitrack/fertitrack_backend/internal/repo/patient"
	"github.com/fertitrack/fertitrack_backend/internal/repo/predicate"
	entstudy "github.com/fertitrack/fertitrack_backend/internal/repo/studyresult"
	enttreatment "github.com/fertitrack/fertitrack_backend/internal/repo/treatment"
	entuser "github.com/fertitrack/fertitrack_backend/internal/repo/user"
	"github.com/fertitrack/fertitrack_backend/pkg/authorize"
	"github.com/fertitrack/fertitrack_backend/pkg/reqctx"
	"github.com/fertitrack/fertitrack_backend/pkg/s3"
)

// PaginatedResult wraps list responses with pagination metadata.
type PaginatedResult[T any] struct {
	Items      []T `json:"items"`
	TotalCount int `json:"total_count"`
	Page       int `json:"page"`
	PageSize   int `json:"page_size"`
}

// ---------------------------------------------------------------------------
// DTOs
// ---------------------------------------------------------------------------

// MedicalHistoryInput carries the background fields captured at
// treatment initiation. All optional; missing fields stay untouched.
type MedicalHistoryInput struct {
	ClinicalBackground      *string
	SurgicalBackground      *string
	PersonalBackground      *string
	FamilyBackground        *string
	GynecologicalBackground *string
	PhysicalExam            *string
	Phenotype               *string
}

type PartnerInput struct {
	FirstName         string
	LastName          string
	DateOfBirth       time.Time
	BiologicalSex     string // M | F
	DNI               string
	GenitalBackground *string
}

type InitiateTreatmentRequest struct {
	PatientID uuid.UUID
	DoctorID  *uuid.UUID // defaults to the acting doctor
	Objective string     // PREGNANCY | OOCYTE_PRESERVATION

	StimulationProtocol *string
	MedicationType      *string
	MedicationDose      *string
	MedicationDuration  *string

	MedicalHistory *MedicalHistoryInput
	Partner        *PartnerInput
}

type UpdateProtocolRequest struct {
	StimulationProtocol *string
	MedicationType      *string
	MedicationDose      *string
	MedicationDuration  *string
	OocytesViable       *bool
	SpermViable         *bool
	ConsentDocumentKey  *string
}

type ListTreatmentsRequest struct {
	Page      int
	PageSize  int
	Status    *string
	PatientID *uuid.UUID
}

type AddMonitoringDaysRequest struct {
	Days []MonitoringDayInput
}

type MonitoringDayInput struct {
	Date  time.Time
	Notes *string
}

type UpdateMonitoringDayRequest struct {
	Date      *time.Time
	Notes     *string
	Completed *bool
}

type AddStudyResultRequest struct {
	StudyType     string
	StudyName     string
	ResultFileKey *string
	ResultText    *string
}

type AddMedicalOrderRequest struct {
	OrderType   string
	Description string
}

// ---------------------------------------------------------------------------
// Service interface
// ---------------------------------------------------------------------------

type Service interface {
	InitiateTreatment(ctx context.Context, actor reqctx.Actor, req InitiateTreatmentRequest) (*repo.Treatment, error)
	GetTreatment(ctx context.Context, actor reqctx.Actor, treatmentID uuid.UUID) (*repo.Treatment, error)
	ListTreatments(ctx context.Context, actor reqctx.Actor, req ListTreatmentsRequest) (*PaginatedResult[*repo.Treatment], error)
	MyTreatments(ctx context.Context, actor reqctx.Actor) ([]*repo.Treatment, error)
	UpdateStatus(ctx context.Context, actor reqctx.Actor, treatmentID uuid.UUID, status string) (*repo.Treatment, error)
	UpdateProtocol(ctx context.Context, actor reqctx.Actor, treatmentID uuid.UUID, req UpdateProtocolRequest) (*repo.Treatment, error)

	AddMonitoringDays(ctx context.Context, actor reqctx.Actor, treatmentID uuid.UUID, req AddMonitoringDaysRequest) ([]*repo.MonitoringDay, error)
	UpdateMonitoringDay(ctx context.Context, actor reqctx.Actor, dayID uuid.UUID, req UpdateMonitoringDayRequest) (*repo.MonitoringDay, error)
	ListMonitoringDays(ctx context.Context, actor reqctx.Actor, treatmentID uuid.UUID) ([]*repo.MonitoringDay, error)

	AddStudyResult(ctx context.Context, actor reqctx.Actor, treatmentID uuid.UUID, req AddStudyResultRequest) (*repo.StudyResult, error)
	ListStudyResults(ctx context.Context, actor reqctx.Actor, treatmentID uuid.UUID) ([]*repo.StudyResult, error)
	DownloadStudyResult(ctx context.Context, actor reqctx.Actor, treatmentID, studyResultID uuid.UUID) (string, error)

	AddMedicalOrder(ctx context.Context, actor reqctx.Actor, treatmentID uuid.UUID, req AddMedicalOrderRequest) (*repo.MedicalOrder, error)
	ListMedicalOrders(ctx context.Context, actor reqctx.Actor, treatmentID uuid.UUID) ([]*repo.MedicalOrder, error)
	MyMedicalOrders(ctx context.Context, actor reqctx.Actor) ([]*repo.MedicalOrder, error)
}

type treatmentService struct {
	db    *repo.Client
	files *s3.Client
}

// New creates the treatment service. files may be nil when object
// storage is disabled; study result downloads then fail with
// ErrFileStorageDisabled.
func New(db *repo.Client, files *s3.Client) Service {
	return &treatmentService{db: db, files: files}
}

// scope returns the visibility predicates for the acting user.
// Doctors see treatments they carry, patients see their own, the
// medical director and lab staff see everything in the clinic.
func scope(actor reqctx.Actor) []predicate.Treatment {
	switch actor.Role {
	case authorize.UserRoleDoctor:
		return []predicate.Treatment{enttreatment.DoctorID(actor.UserID)}
	case authorize.UserRolePatient:
		return []predicate.Treatment{
			enttreatment.HasPatientWith(entpatient.UserID(actor.UserID)),
		}
	default:
		return nil
	}
}

// ---------------------------------------------------------------------------
// Treatments
// ---------------------------------------------------------------------------

func (s *treatmentService) InitiateTreatment(ctx context.Context, actor reqctx.Actor, req InitiateTreatmentRequest) (t *repo.Treatment, err error) {
	doctorID := actor.UserID
	if req.DoctorID != nil {
		doctorID = *req.DoctorID
	}

	doctor, err := s.db.User.Query().
		Where(entuser.ID(doctorID), entuser.DeletedAtIsNil()).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrDoctorNotFound
		}
		return nil, fmt.Errorf("get doctor: %w", err)
	}
	if doctor.Role != entuser.RoleDOCTOR && doctor.Role != entuser.RoleMEDICAL_DIRECTOR {
		return nil, ErrNotADoctor
	}

	tx, err := s.db.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	pat, err := tx.Patient.Query().
		Where(entpatient.ID(req.PatientID)).
		WithMedicalHistory().
		WithPartner().
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrPatientNotFound
		}
		return nil, fmt.Errorf("get patient: %w", err)
	}

	c := tx.Treatment.Create().
		SetPatientID(pat.ID).
		SetDoctorID(doctorID).
		SetObjective(enttreatment.Objective(req.Objective))

	if req.StimulationProtocol != nil {
		c = c.SetNillableStimulationProtocol(req.StimulationProtocol)
	}
	if req.MedicationType != nil {
		c = c.SetNillableMedicationType(req.MedicationType)
	}
	if req.MedicationDose != nil {
		c = c.SetNillableMedicationDose(req.MedicationDose)
	}
	if req.MedicationDuration != nil {
		c = c.SetNillableMedicationDuration(req.MedicationDuration)
	}

	t, err = c.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("create treatment: %w", err)
	}

	// Medical history is attached lazily on first treatment
	if req.MedicalHistory != nil {
		if pat.Edges.MedicalHistory == nil {
			if err = applyHistoryCreate(ctx, tx, pat.ID, req.MedicalHistory); err != nil {
				return nil, err
			}
		} else {
			if err = applyHistoryUpdate(ctx, tx, pat.Edges.MedicalHistory.ID, req.MedicalHistory); err != nil {
				return nil, err
			}
		}
	}

	if req.Partner != nil && pat.Edges.Partner == nil {
		pc := tx.Partner.Create().
			SetPatientID(pat.ID).
			SetFirstName(req.Partner.FirstName).
			SetLastName(req.Partner.LastName).
			SetDateOfBirth(req.Partner.DateOfBirth).
			SetBiologicalSex(entpartner.BiologicalSex(req.Partner.BiologicalSex)).
			SetDni(req.Partner.DNI)
		if req.Partner.GenitalBackground != nil {
			pc = pc.SetNillableGenitalBackground(req.Partner.GenitalBackground)
		}
		if _, err = pc.Save(ctx); err != nil {
			return nil, fmt.Errorf("create partner: %w", err)
		}
	}

	if err = tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit tx: %w", err)
	}
	return t, nil
}

func applyHistoryCreate(ctx context.Context, tx *repo.Tx, patientID uuid.UUID, in *MedicalHistoryInput) error {
	c := tx.MedicalHistory.Create().SetPatientID(patientID)
	c = c.SetNillableClinicalBackground(in.ClinicalBackground).
		SetNillableSurgicalBackground(in.SurgicalBackground).
		SetNillablePersonalBackground(in.PersonalBackground).
		SetNillableFamilyBackground(in.FamilyBackground).
		SetNillableGynecologicalBackground(in.GynecologicalBackground).
		SetNillablePhysicalExam(in.PhysicalExam).
		SetNillablePhenotype(in.Phenotype)
	if _, err := c.Save(ctx); err != nil {
		return fmt.Errorf("create medical history: %w", err)
	}
	return nil
}

func applyHistoryUpdate(ctx context.Context, tx *repo.Tx, historyID uuid.UUID, in *MedicalHistoryInput) error {
	u := tx.MedicalHistory.UpdateOneID(historyID).
		SetNillableClinicalBackground(in.ClinicalBackground).
		SetNillableSurgicalBackground(in.SurgicalBackground).
		SetNillablePersonalBackground(in.PersonalBackground).
		SetNillableFamilyBackground(in.FamilyBackground).
		SetNillableGynecologicalBackground(in.GynecologicalBackground).
		SetNillablePhysicalExam(in.PhysicalExam).
		SetNillablePhenotype(in.Phenotype)
	if _, err := u.Save(ctx); err != nil {
		return fmt.Errorf("update medical history: %w", err)
	}
	return nil
}

func (s *treatmentService) GetTreatment(ctx context.Context, actor reqctx.Actor, treatmentID uuid.UUID) (*repo.Treatment, error) {
	q := s.db.Treatment.Query().
		Where(enttreatment.ID(treatmentID)).
		Where(scope(actor)...).
		WithPatient(func(pq *repo.PatientQuery) {
			pq.WithUser()
		}).
		WithDoctor().
		WithMonitoringDays(func(mq *repo.MonitoringDayQuery) {
			mq.Order(entmonitoring.ByDate())
		}).
		WithPuncture()

	t, err := q.Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrTreatmentNotFound
		}
		return nil, fmt.Errorf("get treatment: %w", err)
	}
	return t, nil
}

func (s *treatmentService) ListTreatments(ctx context.Context, actor reqctx.Actor, req ListTreatmentsRequest) (*PaginatedResult[*repo.Treatment], error) {
	page := req.Page
	if page < 1 {
		page = 1
	}
	pageSize := req.PageSize
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	q := s.db.Treatment.Query().Where(scope(actor)...)

	if req.Status != nil {
		q = q.Where(enttreatment.StatusEQ(enttreatment.Status(*req.Status)))
	}
	if req.PatientID != nil {
		q = q.Where(enttreatment.PatientID(*req.PatientID))
	}

	total, err := q.Clone().Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count treatments: %w", err)
	}

	items, err := q.
		WithPatient(func(pq *repo.PatientQuery) {
			pq.WithUser()
		}).
		WithDoctor().
		Order(enttreatment.ByCreatedAt(sql.OrderDesc())).
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list treatments: %w", err)
	}

	return &PaginatedResult[*repo.Treatment]{
		Items:      items,
		TotalCount: total,
		Page:       page,
		PageSize:   pageSize,
	}, nil
}

func (s *treatmentService) MyTreatments(ctx context.Context, actor reqctx.Actor) ([]*repo.Treatment, error) {
	items, err := s.db.Treatment.Query().
		Where(enttreatment.HasPatientWith(entpatient.UserID(actor.UserID))).
		WithDoctor().
		WithMonitoringDays(func(mq *repo.MonitoringDayQuery) {
			mq.Order(entmonitoring.ByDate())
		}).
		Order(enttreatment.ByCreatedAt(sql.OrderDesc())).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list own treatments: %w", err)
	}
	return items, nil
}

func (s *treatmentService) UpdateStatus(ctx context.Context, actor reqctx.Actor, treatmentID uuid.UUID, status string) (*repo.Treatment, error) {
	target := enttreatment.Status(status)
	if target != enttreatment.StatusCOMPLETED && target != enttreatment.StatusCANCELLED {
		return nil, fmt.Errorf("%w: %q", ErrInvalidStatusChange, status)
	}

	t, err := s.db.Treatment.Query().
		Where(enttreatment.ID(treatmentID)).
		Where(scope(actor)...).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrTreatmentNotFound
		}
		return nil, fmt.Errorf("get treatment: %w", err)
	}
	if t.Status != enttreatment.StatusACTIVE {
		return nil, ErrTreatmentNotActive
	}

	t, err = s.db.Treatment.UpdateOneID(treatmentID).
		SetStatus(target).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("update treatment status: %w", err)
	}
	return t, nil
}

func (s *treatmentService) UpdateProtocol(ctx context.Context, actor reqctx.Actor, treatmentID uuid.UUID, req UpdateProtocolRequest) (*repo.Treatment, error) {
	t, err := s.activeTreatment(ctx, actor, treatmentID)
	if err != nil {
		return nil, err
	}

	u := s.db.Treatment.UpdateOneID(t.ID).
		SetNillableStimulationProtocol(req.StimulationProtocol).
		SetNillableMedicationType(req.MedicationType).
		SetNillableMedicationDose(req.MedicationDose).
		SetNillableMedicationDuration(req.MedicationDuration).
		SetNillableOocytesViable(req.OocytesViable).
		SetNillableSpermViable(req.SpermViable).
		SetNillableConsentDocumentKey(req.ConsentDocumentKey)

	t, err = u.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("update treatment protocol: %w", err)
	}
	return t, nil
}

// activeTreatment loads a treatment inside the actor's scope and
// rejects anything no longer ACTIVE.
func (s *treatmentService) activeTreatment(ctx context.Context, actor reqctx.Actor, treatmentID uuid.UUID) (*repo.Treatment, error) {
	t, err := s.db.Treatment.Query().
		Where(enttreatment.ID(treatmentID)).
		Where(scope(actor)...).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrTreatmentNotFound
		}
		return nil, fmt.Errorf("get treatment: %w", err)
	}
	if t.Status != enttreatment.StatusACTIVE {
		return nil, ErrTreatmentNotActive
	}
	return t, nil
}

// visibleTreatment is like activeTreatment but without the status guard.
func (s *treatmentService) visibleTreatment(ctx context.Context, actor reqctx.Actor, treatmentID uuid.UUID) (*repo.Treatment, error) {
	t, err := s.db.Treatment.Query().
		Where(enttreatment.ID(treatmentID)).
		Where(scope(actor)...).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrTreatmentNotFound
		}
		return nil, fmt.Errorf("get treatment: %w", err)
	}
	return t, nil
}

// ---------------------------------------------------------------------------
// Monitoring days
// ---------------------------------------------------------------------------

func (s *treatmentService) AddMonitoringDays(ctx context.Context, actor reqctx.Actor, treatmentID uuid.UUID, req AddMonitoringDaysRequest) (days []*repo.MonitoringDay, err error) {
	if _, err = s.activeTreatment(ctx, actor, treatmentID); err != nil {
		return nil, err
	}

	tx, err := s.db.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	builders := make([]*repo.MonitoringDayCreate, 0, len(req.Days))
	for _, d := range req.Days {
		b := tx.MonitoringDay.Create().
			SetTreatmentID(treatmentID).
			SetDate(d.Date)
		if d.Notes != nil {
			b = b.SetNillableNotes(d.Notes)
		}
		builders = append(builders, b)
	}

	days, err = tx.MonitoringDay.CreateBulk(builders...).Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("create monitoring days: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit tx: %w", err)
	}
	return days, nil
}

func (s *treatmentService) UpdateMonitoringDay(ctx context.Context, actor reqctx.Actor, dayID uuid.UUID, req UpdateMonitoringDayRequest) (*repo.MonitoringDay, error) {
	day, err := s.db.MonitoringDay.Query().
		Where(entmonitoring.ID(dayID)).
		WithTreatment().
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrMonitoringDayNotFound
		}
		return nil, fmt.Errorf("get monitoring day: %w", err)
	}
	if _, err = s.visibleTreatment(ctx, actor, day.TreatmentID); err != nil {
		return nil, ErrMonitoringDayNotFound
	}

	u := s.db.MonitoringDay.UpdateOneID(dayID)
	if req.Date != nil {
		u = u.SetDate(*req.Date)
	}
	if req.Notes != nil {
		u = u.SetNillableNotes(req.Notes)
	}
	if req.Completed != nil {
		u = u.SetCompleted(*req.Completed)
	}

	day, err = u.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("update monitoring day: %w", err)
	}
	return day, nil
}

func (s *treatmentService) ListMonitoringDays(ctx context.Context, actor reqctx.Actor, treatmentID uuid.UUID) ([]*repo.MonitoringDay, error) {
	if _, err := s.visibleTreatment(ctx, actor, treatmentID); err != nil {
		return nil, err
	}

	days, err := s.db.MonitoringDay.Query().
		Where(entmonitoring.TreatmentID(treatmentID)).
		Order(entmonitoring.ByDate()).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list monitoring days: %w", err)
	}
	return days, nil
}

// ---------------------------------------------------------------------------
// Study results
// ---------------------------------------------------------------------------

func (s *treatmentService) AddStudyResult(ctx context.Context, actor reqctx.Actor, treatmentID uuid.UUID, req AddStudyResultRequest) (*repo.StudyResult, error) {
	if _, err := s.activeTreatment(ctx, actor, treatmentID); err != nil {
		return nil, err
	}

	c := s.db.StudyResult.Create().
		SetTreatmentID(treatmentID).
		SetStudyType(req.StudyType).
		SetStudyName(req.StudyName)

	if req.ResultFileKey != nil {
		c = c.SetNillableResultFileKey(req.ResultFileKey)
	}
	if req.ResultText != nil {
		c = c.SetNillableResultText(req.ResultText)
	}

	sr, err := c.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("create study result: %w", err)
	}
	return sr, nil
}

func (s *treatmentService) ListStudyResults(ctx context.Context, actor reqctx.Actor, treatmentID uuid.UUID) ([]*repo.StudyResult, error) {
	if _, err := s.visibleTreatment(ctx, actor, treatmentID); err != nil {
		return nil, err
	}

	results, err := s.db.StudyResult.Query().
		Where(entstudy.TreatmentID(treatmentID)).
		Order(entstudy.ByCreatedAt(sql.OrderDesc())).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list study results: %w", err)
	}
	return results, nil
}

// DownloadStudyResult returns a presigned URL for a study result file.
func (s *treatmentService) DownloadStudyResult(ctx context.Context, actor reqctx.Actor, treatmentID, studyResultID uuid.UUID) (string, error) {
	if _, err := s.visibleTreatment(ctx, actor, treatmentID); err != nil {
		return "", err
	}

	sr, err := s.db.StudyResult.Query().
		Where(entstudy.ID(studyResultID), entstudy.TreatmentID(treatmentID)).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return "", ErrStudyResultNotFound
		}
		return "", fmt.Errorf("get study result: %w", err)
	}
	if sr.ResultFileKey == nil || *sr.ResultFileKey == "" {
		return "", ErrNoResultFile
	}
	if s.files == nil {
		return "", ErrFileStorageDisabled
	}

	url, err := s.files.PresignDownload(ctx, *sr.ResultFileKey)
	if err != nil {
		return "", fmt.Errorf("presign study result: %w", err)
	}
	return url, nil
}

// ---------------------------------------------------------------------------
// Medical orders
// ---------------------------------------------------------------------------

func (s *treatmentService) AddMedicalOrder(ctx context.Context, actor reqctx.Actor, treatmentID uuid.UUID, req AddMedicalOrderRequest) (*repo.MedicalOrder, error) {
	if _, err := s.activeTreatment(ctx, actor, treatmentID); err != nil {
		return nil, err
	}

	o, err := s.db.MedicalOrder.Create().
		SetTreatmentID(treatmentID).
		SetOrderType(req.OrderType).
		SetDescription(req.Description).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("create medical order: %w", err)
	}
	return o, nil
}

func (s *treatmentService) ListMedicalOrders(ctx context.Context, actor reqctx.Actor, treatmentID uuid.UUID) ([]*repo.MedicalOrder, error) {
	if _, err := s.visibleTreatment(ctx, actor, treatmentID); err != nil {
		return nil, err
	}

	orders, err := s.db.MedicalOrder.Query().
		Where(entorder.TreatmentID(treatmentID)).
		Order(entorder.ByCreatedAt(sql.OrderDesc())).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list medical orders: %w", err)
	}
	return orders, nil
}

func (s *treatmentService) MyMedicalOrders(ctx context.Context, actor reqctx.Actor) ([]*repo.MedicalOrder, error) {
	orders, err := s.db.MedicalOrder.Query().
		Where(entorder.HasTreatmentWith(
			enttreatment.HasPatientWith(entpatient.UserID(actor.UserID)),
		)).
		Order(entorder.ByCreatedAt(sql.OrderDesc())).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list own medical orders: %w", err)
	}
	return orders, nil
}
