package laboratory

import (
	"context"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"

	"github.com/fertitrack/fertitrack_backend/internal/repo"
	entembryo "github.com/fertitrack/fertitrack_backend/internal/repo/embryo"
	enttransfer "github.com/fertitrack/fertitrack_backend/internal/repo/embryotransfer"
	entoocyte "github.com/fertitrack/fertitrack_backend/internal/repo/oocyte"
	enthistory "github.com/fertitrack/fertitrack_backend/internal/repo/oocytestatehistory"
	entpatient "github.com/fertitrack/fertitrack_backend/internal/repo/patient"
	"github.com/fertitrack/fertitrack_backend/internal/repo/predicate"
	entpuncture "github.com/fertitrack/fertitrack_backend/internal/repo/puncture"
	enttreatment "github.com/fertitrack/fertitrack_backend/internal/repo/treatment"
	"github.com/fertitrack/fertitrack_backend/pkg/authorize"
	"github.com/fertitrack/fertitrack_backend/pkg/reqctx"
)

// ---------------------------------------------------------------------------
// DTOs
// ---------------------------------------------------------------------------

type RegisterPunctureRequest struct {
	Date          time.Time
	OperatingRoom string
	Complications *string
}

type AddOocyteRequest struct {
	OocyteCode          string
	InitialState        OocyteState
	MaturationTimeHours *int
}

// OocyteStateChangeRequest drives a single transition of the oocyte
// state machine. Cryostorage fields are required when the target state
// is CRYOPRESERVED.
type OocyteStateChangeRequest struct {
	Target              OocyteState
	Notes               *string
	DiscardReason       *string
	NitrogenTube        *string
	RackNumber          *string
	MaturationTimeHours *int
}

type CreateEmbryoRequest struct {
	EmbryoCode             string
	FertilizationTechnique string // IVF | ICSI
	SpermSource            string // PARTNER | DONOR
	Quality                int    // 1..5
	PGTPerformed           bool
	PGTResult              *bool
	Notes                  *string
}

type EmbryoStateChangeRequest struct {
	Target        EmbryoState
	DiscardReason *string
	NitrogenTube  *string
	RackNumber    *string
}

type UpdateEmbryoRequest struct {
	Quality      *int
	PGTPerformed *bool
	PGTResult    *bool
}

type RecordTransferRequest struct {
	ScheduledDate time.Time
	PerformedDate *time.Time
	Notes         *string
}

type TransferOutcomeRequest struct {
	PerformedDate     *time.Time
	BetaPositive      *bool
	GestationalSac    *bool
	ClinicalPregnancy *bool
	LiveBirth         *bool
	Notes             *string
}

// CryopreservedProducts is what a patient sees of their stored material.
type CryopreservedProducts struct {
	Oocytes []*repo.Oocyte
	Embryos []*repo.Embryo
}

// ---------------------------------------------------------------------------
// Service interface
// ---------------------------------------------------------------------------

type Service interface {
	// Punctures
	RegisterPuncture(ctx context.Context, actor reqctx.Actor, treatmentID uuid.UUID, req RegisterPunctureRequest) (*repo.Puncture, error)
	GetPuncture(ctx context.Context, actor reqctx.Actor, punctureID uuid.UUID) (*repo.Puncture, error)
	GetPunctureByTreatment(ctx context.Context, actor reqctx.Actor, treatmentID uuid.UUID) (*repo.Puncture, error)

	// Oocytes
	AddOocyte(ctx context.Context, actor reqctx.Actor, punctureID uuid.UUID, req AddOocyteRequest) (*repo.Oocyte, error)
	GetOocyte(ctx context.Context, actor reqctx.Actor, oocyteID uuid.UUID) (*repo.Oocyte, error)
	ListOocytes(ctx context.Context, actor reqctx.Actor, punctureID uuid.UUID) ([]*repo.Oocyte, error)
	UpdateOocyteState(ctx context.Context, actor reqctx.Actor, oocyteID uuid.UUID, req OocyteStateChangeRequest) (*repo.Oocyte, error)
	ListOocyteHistory(ctx context.Context, actor reqctx.Actor, oocyteID uuid.UUID) ([]*repo.OocyteStateHistory, error)

	// Embryos
	CreateEmbryo(ctx context.Context, actor reqctx.Actor, oocyteID uuid.UUID, req CreateEmbryoRequest) (*repo.Embryo, error)
	GetEmbryo(ctx context.Context, actor reqctx.Actor, embryoID uuid.UUID) (*repo.Embryo, error)
	ListEmbryos(ctx context.Context, actor reqctx.Actor, treatmentID uuid.UUID) ([]*repo.Embryo, error)
	UpdateEmbryo(ctx context.Context, actor reqctx.Actor, embryoID uuid.UUID, req UpdateEmbryoRequest) (*repo.Embryo, error)
	UpdateEmbryoState(ctx context.Context, actor reqctx.Actor, embryoID uuid.UUID, req EmbryoStateChangeRequest) (*repo.Embryo, error)

	// Transfers
	RecordTransfer(ctx context.Context, actor reqctx.Actor, embryoID uuid.UUID, req RecordTransferRequest) (*repo.EmbryoTransfer, error)
	UpdateTransferOutcome(ctx context.Context, actor reqctx.Actor, transferID uuid.UUID, req TransferOutcomeRequest) (*repo.EmbryoTransfer, error)

	// Patient-facing
	MyCryopreservedProducts(ctx context.Context, actor reqctx.Actor) (*CryopreservedProducts, error)
}

// ---------------------------------------------------------------------------
// Implementation
// ---------------------------------------------------------------------------

type labService struct {
	db *repo.Client
}

func New(db *repo.Client) Service {
	return &labService{db: db}
}

func isPatientActor(actor reqctx.Actor) bool {
	return actor.Role == authorize.UserRolePatient
}

// ---------------------------------------------------------------------------
// Punctures
// ---------------------------------------------------------------------------

func (s *labService) RegisterPuncture(ctx context.Context, actor reqctx.Actor, treatmentID uuid.UUID, req RegisterPunctureRequest) (*repo.Puncture, error) {
	t, err := s.db.Treatment.Query().
		Where(enttreatment.ID(treatmentID)).
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

	exists, err := s.db.Puncture.Query().
		Where(entpuncture.TreatmentID(treatmentID)).
		Exist(ctx)
	if err != nil {
		return nil, fmt.Errorf("check puncture: %w", err)
	}
	if exists {
		return nil, ErrPunctureExists
	}

	c := s.db.Puncture.Create().
		SetTreatmentID(treatmentID).
		SetDate(req.Date).
		SetOperatingRoom(req.OperatingRoom)

	if req.Complications != nil {
		c = c.SetNillableComplications(req.Complications)
	}
	if !actor.IsSystem() {
		c = c.SetOperatorID(actor.UserID)
	}

	p, err := c.Save(ctx)
	if err != nil {
		if repo.IsConstraintError(err) {
			return nil, ErrPunctureExists
		}
		return nil, fmt.Errorf("create puncture: %w", err)
	}
	return p, nil
}

func (s *labService) GetPuncture(ctx context.Context, actor reqctx.Actor, punctureID uuid.UUID) (*repo.Puncture, error) {
	q := s.db.Puncture.Query().
		Where(entpuncture.ID(punctureID)).
		WithOperator().
		WithOocytes()

	if isPatientActor(actor) {
		q = q.Where(punctureOwnedBy(actor.UserID))
	}

	p, err := q.Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrPunctureNotFound
		}
		return nil, fmt.Errorf("get puncture: %w", err)
	}
	return p, nil
}

func (s *labService) GetPunctureByTreatment(ctx context.Context, actor reqctx.Actor, treatmentID uuid.UUID) (*repo.Puncture, error) {
	q := s.db.Puncture.Query().
		Where(entpuncture.TreatmentID(treatmentID)).
		WithOperator().
		WithOocytes()

	if isPatientActor(actor) {
		q = q.Where(punctureOwnedBy(actor.UserID))
	}

	p, err := q.Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrPunctureNotFound
		}
		return nil, fmt.Errorf("get puncture by treatment: %w", err)
	}
	return p, nil
}

// ---------------------------------------------------------------------------
// Oocytes
// ---------------------------------------------------------------------------

func (s *labService) AddOocyte(ctx context.Context, actor reqctx.Actor, punctureID uuid.UUID, req AddOocyteRequest) (oo *repo.Oocyte, err error) {
	exists, err := s.db.Puncture.Query().
		Where(entpuncture.ID(punctureID)).
		Exist(ctx)
	if err != nil {
		return nil, fmt.Errorf("check puncture: %w", err)
	}
	if !exists {
		return nil, ErrPunctureNotFound
	}

	// Registration only admits pre-fertilization states
	switch req.InitialState {
	case OocyteVeryImmature, OocyteImmature, OocyteMature:
	default:
		return nil, fmt.Errorf("%w: %q is not a valid initial state", ErrInvalidState, req.InitialState)
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

	c := tx.Oocyte.Create().
		SetPunctureID(punctureID).
		SetOocyteCode(req.OocyteCode).
		SetInitialState(entoocyte.InitialState(req.InitialState)).
		SetCurrentState(entoocyte.CurrentState(req.InitialState))

	if req.MaturationTimeHours != nil {
		c = c.SetNillableMaturationTimeHours(req.MaturationTimeHours)
	}

	oo, err = c.Save(ctx)
	if err != nil {
		if repo.IsConstraintError(err) {
			return nil, ErrOocyteCodeExists
		}
		return nil, fmt.Errorf("create oocyte: %w", err)
	}

	// Creation row: from_state empty marks the start of the trail
	h := tx.OocyteStateHistory.Create().
		SetOocyteID(oo.ID).
		SetToState(string(req.InitialState))
	if !actor.IsSystem() {
		h = h.SetChangedByID(actor.UserID)
	}
	if _, err = h.Save(ctx); err != nil {
		return nil, fmt.Errorf("create oocyte history: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit tx: %w", err)
	}
	return oo, nil
}

func (s *labService) GetOocyte(ctx context.Context, actor reqctx.Actor, oocyteID uuid.UUID) (*repo.Oocyte, error) {
	q := s.db.Oocyte.Query().
		Where(entoocyte.ID(oocyteID)).
		WithEmbryo(func(eq *repo.EmbryoQuery) {
			eq.WithTransfer()
		}).
		WithStateHistory(func(hq *repo.OocyteStateHistoryQuery) {
			hq.Order(enthistory.ByCreatedAt(sql.OrderDesc()))
		})

	if isPatientActor(actor) {
		q = q.Where(oocyteOwnedBy(actor.UserID))
	}

	oo, err := q.Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrOocyteNotFound
		}
		return nil, fmt.Errorf("get oocyte: %w", err)
	}
	return oo, nil
}

func (s *labService) ListOocytes(ctx context.Context, actor reqctx.Actor, punctureID uuid.UUID) ([]*repo.Oocyte, error) {
	q := s.db.Oocyte.Query().
		Where(entoocyte.PunctureID(punctureID)).
		WithEmbryo().
		Order(entoocyte.ByOocyteCode())

	if isPatientActor(actor) {
		q = q.Where(oocyteOwnedBy(actor.UserID))
	}

	oocytes, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list oocytes: %w", err)
	}
	return oocytes, nil
}

func (s *labService) ListOocyteHistory(ctx context.Context, actor reqctx.Actor, oocyteID uuid.UUID) ([]*repo.OocyteStateHistory, error) {
	// Existence and scope check first so missing and foreign oocytes
	// are indistinguishable to the caller.
	if _, err := s.GetOocyte(ctx, actor, oocyteID); err != nil {
		return nil, err
	}

	rows, err := s.db.OocyteStateHistory.Query().
		Where(enthistory.OocyteID(oocyteID)).
		WithChangedBy().
		Order(enthistory.ByCreatedAt(sql.OrderDesc())).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list oocyte history: %w", err)
	}
	return rows, nil
}

func (s *labService) UpdateOocyteState(ctx context.Context, actor reqctx.Actor, oocyteID uuid.UUID, req OocyteStateChangeRequest) (oo *repo.Oocyte, err error) {
	if req.Target == OocyteFertilized {
		return nil, ErrFertilizeViaEmbryo
	}
	if !ValidOocyteState(req.Target) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidState, req.Target)
	}

	current, err := s.db.Oocyte.Query().
		Where(entoocyte.ID(oocyteID)).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrOocyteNotFound
		}
		return nil, fmt.Errorf("get oocyte: %w", err)
	}

	from := OocyteState(current.CurrentState)
	if !CanTransitionOocyte(from, req.Target) {
		return nil, fmt.Errorf("%w: oocyte %s -> %s", ErrInvalidTransition, from, req.Target)
	}

	if req.Target == OocyteCryopreserved {
		tube := req.NitrogenTube
		rack := req.RackNumber
		if tube == nil {
			tube = current.NitrogenTube
		}
		if rack == nil {
			rack = current.RackNumber
		}
		if tube == nil || *tube == "" || rack == nil || *rack == "" {
			return nil, ErrCryoLocationRequired
		}
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

	u := tx.Oocyte.UpdateOneID(oocyteID).
		SetCurrentState(entoocyte.CurrentState(req.Target))

	if req.DiscardReason != nil {
		u = u.SetNillableDiscardReason(req.DiscardReason)
	}
	if req.NitrogenTube != nil {
		u = u.SetNillableNitrogenTube(req.NitrogenTube)
	}
	if req.RackNumber != nil {
		u = u.SetNillableRackNumber(req.RackNumber)
	}
	if req.MaturationTimeHours != nil {
		u = u.SetNillableMaturationTimeHours(req.MaturationTimeHours)
	}

	oo, err = u.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("update oocyte state: %w", err)
	}

	h := tx.OocyteStateHistory.Create().
		SetOocyteID(oocyteID).
		SetFromState(string(from)).
		SetToState(string(req.Target))
	if req.Notes != nil {
		h = h.SetNillableNotes(req.Notes)
	}
	if !actor.IsSystem() {
		h = h.SetChangedByID(actor.UserID)
	}
	if _, err = h.Save(ctx); err != nil {
		return nil, fmt.Errorf("append oocyte history: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit tx: %w", err)
	}
	return oo, nil
}

// ---------------------------------------------------------------------------
// Embryos
// ---------------------------------------------------------------------------

// CreateEmbryo is the only path to a FERTILIZED oocyte. The embryo row,
// the oocyte state flip and the history entry commit together or not at
// all.
func (s *labService) CreateEmbryo(ctx context.Context, actor reqctx.Actor, oocyteID uuid.UUID, req CreateEmbryoRequest) (em *repo.Embryo, err error) {
	tx, err := s.db.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	oo, err := tx.Oocyte.Query().
		Where(entoocyte.ID(oocyteID)).
		WithEmbryo().
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrOocyteNotFound
		}
		return nil, fmt.Errorf("get oocyte: %w", err)
	}

	if oo.Edges.Embryo != nil {
		return nil, ErrEmbryoExists
	}
	if OocyteState(oo.CurrentState) != OocyteMature {
		return nil, ErrOocyteNotMature
	}

	c := tx.Embryo.Create().
		SetOocyteID(oocyteID).
		SetEmbryoCode(req.EmbryoCode).
		SetFertilizationTechnique(entembryo.FertilizationTechnique(req.FertilizationTechnique)).
		SetSpermSource(entembryo.SpermSource(req.SpermSource)).
		SetQuality(req.Quality).
		SetPgtPerformed(req.PGTPerformed)

	if req.PGTResult != nil {
		c = c.SetNillablePgtResult(req.PGTResult)
	}

	em, err = c.Save(ctx)
	if err != nil {
		if repo.IsConstraintError(err) {
			return nil, ErrEmbryoCodeExists
		}
		return nil, fmt.Errorf("create embryo: %w", err)
	}

	if _, err = tx.Oocyte.UpdateOneID(oocyteID).
		SetCurrentState(entoocyte.CurrentState(OocyteFertilized)).
		Save(ctx); err != nil {
		return nil, fmt.Errorf("mark oocyte fertilized: %w", err)
	}

	h := tx.OocyteStateHistory.Create().
		SetOocyteID(oocyteID).
		SetFromState(string(OocyteMature)).
		SetToState(string(OocyteFertilized))
	if req.Notes != nil {
		h = h.SetNillableNotes(req.Notes)
	}
	if !actor.IsSystem() {
		h = h.SetChangedByID(actor.UserID)
	}
	if _, err = h.Save(ctx); err != nil {
		return nil, fmt.Errorf("append oocyte history: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit tx: %w", err)
	}
	return em, nil
}

func (s *labService) GetEmbryo(ctx context.Context, actor reqctx.Actor, embryoID uuid.UUID) (*repo.Embryo, error) {
	q := s.db.Embryo.Query().
		Where(entembryo.ID(embryoID)).
		WithOocyte().
		WithTransfer()

	if isPatientActor(actor) {
		q = q.Where(embryoOwnedBy(actor.UserID))
	}

	em, err := q.Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrEmbryoNotFound
		}
		return nil, fmt.Errorf("get embryo: %w", err)
	}
	return em, nil
}

func (s *labService) ListEmbryos(ctx context.Context, actor reqctx.Actor, treatmentID uuid.UUID) ([]*repo.Embryo, error) {
	q := s.db.Embryo.Query().
		Where(entembryo.HasOocyteWith(
			entoocyte.HasPunctureWith(entpuncture.TreatmentID(treatmentID)),
		)).
		WithOocyte().
		WithTransfer().
		Order(entembryo.ByEmbryoCode())

	if isPatientActor(actor) {
		q = q.Where(embryoOwnedBy(actor.UserID))
	}

	embryos, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list embryos: %w", err)
	}
	return embryos, nil
}

func (s *labService) UpdateEmbryo(ctx context.Context, actor reqctx.Actor, embryoID uuid.UUID, req UpdateEmbryoRequest) (*repo.Embryo, error) {
	u := s.db.Embryo.UpdateOneID(embryoID)

	if req.Quality != nil {
		u = u.SetQuality(*req.Quality)
	}
	if req.PGTPerformed != nil {
		u = u.SetPgtPerformed(*req.PGTPerformed)
	}
	if req.PGTResult != nil {
		u = u.SetNillablePgtResult(req.PGTResult)
	}

	em, err := u.Save(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrEmbryoNotFound
		}
		return nil, fmt.Errorf("update embryo: %w", err)
	}
	return em, nil
}

func (s *labService) UpdateEmbryoState(ctx context.Context, actor reqctx.Actor, embryoID uuid.UUID, req EmbryoStateChangeRequest) (em *repo.Embryo, err error) {
	if req.Target == EmbryoTransferred {
		return nil, ErrTransferViaRecord
	}
	if !ValidEmbryoState(req.Target) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidState, req.Target)
	}

	current, err := s.db.Embryo.Query().
		Where(entembryo.ID(embryoID)).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrEmbryoNotFound
		}
		return nil, fmt.Errorf("get embryo: %w", err)
	}

	from := EmbryoState(current.CurrentState)
	if !CanTransitionEmbryo(from, req.Target) {
		return nil, fmt.Errorf("%w: embryo %s -> %s", ErrInvalidTransition, from, req.Target)
	}

	if req.Target == EmbryoCryopreserved {
		tube := req.NitrogenTube
		rack := req.RackNumber
		if tube == nil {
			tube = current.NitrogenTube
		}
		if rack == nil {
			rack = current.RackNumber
		}
		if tube == nil || *tube == "" || rack == nil || *rack == "" {
			return nil, ErrCryoLocationRequired
		}
	}

	u := s.db.Embryo.UpdateOneID(embryoID).
		SetCurrentState(entembryo.CurrentState(req.Target))

	if req.DiscardReason != nil {
		u = u.SetNillableDiscardReason(req.DiscardReason)
	}
	if req.NitrogenTube != nil {
		u = u.SetNillableNitrogenTube(req.NitrogenTube)
	}
	if req.RackNumber != nil {
		u = u.SetNillableRackNumber(req.RackNumber)
	}

	em, err = u.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("update embryo state: %w", err)
	}
	return em, nil
}

// ---------------------------------------------------------------------------
// Transfers
// ---------------------------------------------------------------------------

func (s *labService) RecordTransfer(ctx context.Context, actor reqctx.Actor, embryoID uuid.UUID, req RecordTransferRequest) (tr *repo.EmbryoTransfer, err error) {
	tx, err := s.db.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	em, err := tx.Embryo.Query().
		Where(entembryo.ID(embryoID)).
		WithTransfer().
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrEmbryoNotFound
		}
		return nil, fmt.Errorf("get embryo: %w", err)
	}
	if em.Edges.Transfer != nil {
		return nil, ErrTransferExists
	}

	from := EmbryoState(em.CurrentState)
	if req.PerformedDate != nil && !CanTransitionEmbryo(from, EmbryoTransferred) {
		return nil, fmt.Errorf("%w: embryo %s -> %s", ErrInvalidTransition, from, EmbryoTransferred)
	}

	c := tx.EmbryoTransfer.Create().
		SetEmbryoID(embryoID).
		SetScheduledDate(req.ScheduledDate)

	if req.PerformedDate != nil {
		c = c.SetNillablePerformedDate(req.PerformedDate)
	}
	if req.Notes != nil {
		c = c.SetNillableNotes(req.Notes)
	}

	tr, err = c.Save(ctx)
	if err != nil {
		if repo.IsConstraintError(err) {
			return nil, ErrTransferExists
		}
		return nil, fmt.Errorf("create transfer: %w", err)
	}

	// A performed transfer moves the embryo to its terminal state
	if req.PerformedDate != nil {
		if _, err = tx.Embryo.UpdateOneID(embryoID).
			SetCurrentState(entembryo.CurrentState(EmbryoTransferred)).
			Save(ctx); err != nil {
			return nil, fmt.Errorf("mark embryo transferred: %w", err)
		}
	}

	if err = tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit tx: %w", err)
	}
	return tr, nil
}

func (s *labService) UpdateTransferOutcome(ctx context.Context, actor reqctx.Actor, transferID uuid.UUID, req TransferOutcomeRequest) (tr *repo.EmbryoTransfer, err error) {
	tx, err := s.db.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	existing, err := tx.EmbryoTransfer.Query().
		Where(enttransfer.ID(transferID)).
		WithEmbryo().
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrTransferNotFound
		}
		return nil, fmt.Errorf("get transfer: %w", err)
	}

	// First time the procedure is marked performed, flip the embryo
	if req.PerformedDate != nil && existing.PerformedDate == nil {
		em := existing.Edges.Embryo
		from := EmbryoState(em.CurrentState)
		if !CanTransitionEmbryo(from, EmbryoTransferred) {
			return nil, fmt.Errorf("%w: embryo %s -> %s", ErrInvalidTransition, from, EmbryoTransferred)
		}
		if _, err = tx.Embryo.UpdateOneID(em.ID).
			SetCurrentState(entembryo.CurrentState(EmbryoTransferred)).
			Save(ctx); err != nil {
			return nil, fmt.Errorf("mark embryo transferred: %w", err)
		}
	}

	u := tx.EmbryoTransfer.UpdateOneID(transferID)

	if req.PerformedDate != nil {
		u = u.SetNillablePerformedDate(req.PerformedDate)
	}
	if req.BetaPositive != nil {
		u = u.SetNillableBetaPositive(req.BetaPositive)
	}
	if req.GestationalSac != nil {
		u = u.SetNillableGestationalSac(req.GestationalSac)
	}
	if req.ClinicalPregnancy != nil {
		u = u.SetNillableClinicalPregnancy(req.ClinicalPregnancy)
	}
	if req.LiveBirth != nil {
		u = u.SetNillableLiveBirth(req.LiveBirth)
	}
	if req.Notes != nil {
		u = u.SetNillableNotes(req.Notes)
	}

	tr, err = u.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("update transfer outcome: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit tx: %w", err)
	}
	return tr, nil
}

// ---------------------------------------------------------------------------
// Patient-facing
// ---------------------------------------------------------------------------

func (s *labService) MyCryopreservedProducts(ctx context.Context, actor reqctx.Actor) (*CryopreservedProducts, error) {
	oocytes, err := s.db.Oocyte.Query().
		Where(
			entoocyte.CurrentStateEQ(entoocyte.CurrentState(OocyteCryopreserved)),
			oocyteOwnedBy(actor.UserID),
		).
		Order(entoocyte.ByOocyteCode()).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list cryopreserved oocytes: %w", err)
	}

	embryos, err := s.db.Embryo.Query().
		Where(
			entembryo.CurrentStateEQ(entembryo.CurrentState(EmbryoCryopreserved)),
			embryoOwnedBy(actor.UserID),
		).
		Order(entembryo.ByEmbryoCode()).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list cryopreserved embryos: %w", err)
	}

	return &CryopreservedProducts{Oocytes: oocytes, Embryos: embryos}, nil
}

// ---------------------------------------------------------------------------
// Ownership predicates
// ---------------------------------------------------------------------------

// punctureOwnedBy walks puncture -> treatment -> patient -> user.
func punctureOwnedBy(userID uuid.UUID) predicate.Puncture {
	return entpuncture.HasTreatmentWith(
		enttreatment.HasPatientWith(entpatient.UserID(userID)),
	)
}

func oocyteOwnedBy(userID uuid.UUID) predicate.Oocyte {
	return entoocyte.HasPunctureWith(punctureOwnedBy(userID))
}

func embryoOwnedBy(userID uuid.UUID) predicate.Embryo {
	return entembryo.HasOocyteWith(oocyteOwnedBy(userID))
}
