package patient

import (
	"context"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"

	"github.com/fertitrack/fertitrack_backend/internal/repo"
	entpartner "github.com/fertitrack/fertitrack_backend/internal/repo/partner"
	entpatient "github.com/fertitrack/fertitrack_backend/internal/repo/patient"
	"github.com/fertitrack/fertitrack_backend/internal/repo/predicate"
	enttreatment "github.com/fertitrack/fertitrack_backend/internal/repo/treatment"
	entuser "github.com/fertitrack/fertitrack_backend/internal/repo/user"
	"github.com/fertitrack/fertitrack_backend/pkg/authorize"
	"github.com/fertitrack/fertitrack_backend/pkg/reqctx"
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

type ListPatientsRequest struct {
	Page     int
	PageSize int
	Search   *string // matches name, DNI or member number
}

type UpdatePatientRequest struct {
	Occupation          *string
	MedicalCoverageID   *int
	MedicalCoverageName *string
	MemberNumber        *string

	// profile fields living on the user record
	FirstName   *string
	LastName    *string
	Phone       *string
	DateOfBirth *time.Time
}

type PutMedicalHistoryRequest struct {
	ClinicalBackground      *string
	SurgicalBackground      *string
	PersonalBackground      *string
	FamilyBackground        *string
	GynecologicalBackground *string
	PhysicalExam            *string
	Phenotype               *string
}

type PutPartnerRequest struct {
	FirstName         string
	LastName          string
	DateOfBirth       time.Time
	BiologicalSex     string // M | F
	DNI               string
	GenitalBackground *string
}

// ---------------------------------------------------------------------------
// Service interface
// ---------------------------------------------------------------------------

type Service interface {
	ListPatients(ctx context.Context, actor reqctx.Actor, req ListPatientsRequest) (*PaginatedResult[*repo.Patient], error)
	GetPatient(ctx context.Context, actor reqctx.Actor, patientID uuid.UUID) (*repo.Patient, error)
	GetOwnProfile(ctx context.Context, actor reqctx.Actor) (*repo.Patient, error)
	UpdatePatient(ctx context.Context, actor reqctx.Actor, patientID uuid.UUID, req UpdatePatientRequest) (*repo.Patient, error)

	GetMedicalHistory(ctx context.Context, actor reqctx.Actor, patientID uuid.UUID) (*repo.MedicalHistory, error)
	PutMedicalHistory(ctx context.Context, actor reqctx.Actor, patientID uuid.UUID, req PutMedicalHistoryRequest) (*repo.MedicalHistory, error)

	GetPartner(ctx context.Context, actor reqctx.Actor, patientID uuid.UUID) (*repo.Partner, error)
	PutPartner(ctx context.Context, actor reqctx.Actor, patientID uuid.UUID, req PutPartnerRequest) (*repo.Partner, error)
}

type patientService struct {
	db *repo.Client
}

func New(db *repo.Client) Service {
	return &patientService{db: db}
}

// scope restricts patient visibility. Doctors see patients with a
// treatment they carry, patients see themselves, everyone else on
// staff sees the whole roster.
func scope(actor reqctx.Actor) []predicate.Patient {
	switch actor.Role {
	case authorize.UserRoleDoctor:
		return []predicate.Patient{
			entpatient.HasTreatmentsWith(enttreatment.DoctorID(actor.UserID)),
		}
	case authorize.UserRolePatient:
		return []predicate.Patient{entpatient.UserID(actor.UserID)}
	default:
		return nil
	}
}

// ---------------------------------------------------------------------------
// Patients
// ---------------------------------------------------------------------------

func (s *patientService) ListPatients(ctx context.Context, actor reqctx.Actor, req ListPatientsRequest) (*PaginatedResult[*repo.Patient], error) {
	page := req.Page
	if page < 1 {
		page = 1
	}
	pageSize := req.PageSize
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	q := s.db.Patient.Query().Where(scope(actor)...)

	if req.Search != nil && *req.Search != "" {
		term := *req.Search
		q = q.Where(entpatient.Or(
			entpatient.HasUserWith(entuser.Or(
				entuser.FirstNameContainsFold(term),
				entuser.LastNameContainsFold(term),
				entuser.DniContainsFold(term),
			)),
			entpatient.MemberNumberContainsFold(term),
		))
	}

	total, err := q.Clone().Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count patients: %w", err)
	}

	items, err := q.
		WithUser().
		Order(entpatient.ByCreatedAt(sql.OrderDesc())).
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list patients: %w", err)
	}

	return &PaginatedResult[*repo.Patient]{
		Items:      items,
		TotalCount: total,
		Page:       page,
		PageSize:   pageSize,
	}, nil
}

func (s *patientService) GetPatient(ctx context.Context, actor reqctx.Actor, patientID uuid.UUID) (*repo.Patient, error) {
	p, err := s.db.Patient.Query().
		Where(entpatient.ID(patientID)).
		Where(scope(actor)...).
		WithUser().
		WithMedicalHistory().
		WithPartner().
		WithTreatments(func(tq *repo.TreatmentQuery) {
			tq.Order(enttreatment.ByCreatedAt(sql.OrderDesc()))
		}).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrPatientNotFound
		}
		return nil, fmt.Errorf("get patient: %w", err)
	}
	return p, nil
}

func (s *patientService) GetOwnProfile(ctx context.Context, actor reqctx.Actor) (*repo.Patient, error) {
	p, err := s.db.Patient.Query().
		Where(entpatient.UserID(actor.UserID)).
		WithUser().
		WithMedicalHistory().
		WithPartner().
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrPatientNotFound
		}
		return nil, fmt.Errorf("get own patient profile: %w", err)
	}
	return p, nil
}

func (s *patientService) UpdatePatient(ctx context.Context, actor reqctx.Actor, patientID uuid.UUID, req UpdatePatientRequest) (p *repo.Patient, err error) {
	p, err = s.db.Patient.Query().
		Where(entpatient.ID(patientID)).
		Where(scope(actor)...).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrPatientNotFound
		}
		return nil, fmt.Errorf("get patient: %w", err)
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

	p, err = tx.Patient.UpdateOneID(patientID).
		SetNillableOccupation(req.Occupation).
		SetNillableMedicalCoverageID(req.MedicalCoverageID).
		SetNillableMedicalCoverageName(req.MedicalCoverageName).
		SetNillableMemberNumber(req.MemberNumber).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("update patient: %w", err)
	}

	if req.FirstName != nil || req.LastName != nil || req.Phone != nil || req.DateOfBirth != nil {
		if _, err = tx.User.UpdateOneID(p.UserID).
			SetNillableFirstName(req.FirstName).
			SetNillableLastName(req.LastName).
			SetNillablePhone(req.Phone).
			SetNillableDateOfBirth(req.DateOfBirth).
			Save(ctx); err != nil {
			return nil, fmt.Errorf("update patient user: %w", err)
		}
	}

	if err = tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit tx: %w", err)
	}
	return p, nil
}

// ---------------------------------------------------------------------------
// Medical history
// ---------------------------------------------------------------------------

func (s *patientService) GetMedicalHistory(ctx context.Context, actor reqctx.Actor, patientID uuid.UUID) (*repo.MedicalHistory, error) {
	p, err := s.db.Patient.Query().
		Where(entpatient.ID(patientID)).
		Where(scope(actor)...).
		WithMedicalHistory().
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrPatientNotFound
		}
		return nil, fmt.Errorf("get patient: %w", err)
	}
	if p.Edges.MedicalHistory == nil {
		return nil, ErrHistoryNotFound
	}
	return p.Edges.MedicalHistory, nil
}

// PutMedicalHistory creates the history on first write and merges
// non-nil fields on subsequent ones.
func (s *patientService) PutMedicalHistory(ctx context.Context, actor reqctx.Actor, patientID uuid.UUID, req PutMedicalHistoryRequest) (*repo.MedicalHistory, error) {
	p, err := s.db.Patient.Query().
		Where(entpatient.ID(patientID)).
		Where(scope(actor)...).
		WithMedicalHistory().
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrPatientNotFound
		}
		return nil, fmt.Errorf("get patient: %w", err)
	}

	if p.Edges.MedicalHistory == nil {
		h, err := s.db.MedicalHistory.Create().
			SetPatientID(patientID).
			SetNillableClinicalBackground(req.ClinicalBackground).
			SetNillableSurgicalBackground(req.SurgicalBackground).
			SetNillablePersonalBackground(req.PersonalBackground).
			SetNillableFamilyBackground(req.FamilyBackground).
			SetNillableGynecologicalBackground(req.GynecologicalBackground).
			SetNillablePhysicalExam(req.PhysicalExam).
			SetNillablePhenotype(req.Phenotype).
			Save(ctx)
		if err != nil {
			return nil, fmt.Errorf("create medical history: %w", err)
		}
		return h, nil
	}

	h, err := s.db.MedicalHistory.UpdateOneID(p.Edges.MedicalHistory.ID).
		SetNillableClinicalBackground(req.ClinicalBackground).
		SetNillableSurgicalBackground(req.SurgicalBackground).
		SetNillablePersonalBackground(req.PersonalBackground).
		SetNillableFamilyBackground(req.FamilyBackground).
		SetNillableGynecologicalBackground(req.GynecologicalBackground).
		SetNillablePhysicalExam(req.PhysicalExam).
		SetNillablePhenotype(req.Phenotype).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("update medical history: %w", err)
	}
	return h, nil
}

// ---------------------------------------------------------------------------
// Partner
// ---------------------------------------------------------------------------

func (s *patientService) GetPartner(ctx context.Context, actor reqctx.Actor, patientID uuid.UUID) (*repo.Partner, error) {
	p, err := s.db.Patient.Query().
		Where(entpatient.ID(patientID)).
		Where(scope(actor)...).
		WithPartner().
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrPatientNotFound
		}
		return nil, fmt.Errorf("get patient: %w", err)
	}
	if p.Edges.Partner == nil {
		return nil, ErrPartnerNotFound
	}
	return p.Edges.Partner, nil
}

func (s *patientService) PutPartner(ctx context.Context, actor reqctx.Actor, patientID uuid.UUID, req PutPartnerRequest) (*repo.Partner, error) {
	p, err := s.db.Patient.Query().
		Where(entpatient.ID(patientID)).
		Where(scope(actor)...).
		WithPartner().
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrPatientNotFound
		}
		return nil, fmt.Errorf("get patient: %w", err)
	}

	if p.Edges.Partner == nil {
		c := s.db.Partner.Create().
			SetPatientID(patientID).
			SetFirstName(req.FirstName).
			SetLastName(req.LastName).
			SetDateOfBirth(req.DateOfBirth).
			SetBiologicalSex(entpartner.BiologicalSex(req.BiologicalSex)).
			SetDni(req.DNI)
		if req.GenitalBackground != nil {
			c = c.SetNillableGenitalBackground(req.GenitalBackground)
		}
		partner, err := c.Save(ctx)
		if err != nil {
			return nil, fmt.Errorf("create partner: %w", err)
		}
		return partner, nil
	}

	u := s.db.Partner.UpdateOneID(p.Edges.Partner.ID).
		SetFirstName(req.FirstName).
		SetLastName(req.LastName).
		SetDateOfBirth(req.DateOfBirth).
		SetBiologicalSex(entpartner.BiologicalSex(req.BiologicalSex)).
		SetDni(req.DNI)
	if req.GenitalBackground != nil {
		u = u.SetNillableGenitalBackground(req.GenitalBackground)
	}
	partner, err := u.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("update partner: %w", err)
	}
	return partner, nil
}
