// Code generated by ent, DO NOT EDIT.

package repo

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/fertitrack/fertitrack_backend/internal/repo/embryo"
	"github.com/fertitrack/fertitrack_backend/internal/repo/embryotransfer"
	"github.com/fertitrack/fertitrack_backend/internal/repo/medicalhistory"
	"github.com/fertitrack/fertitrack_backend/internal/repo/medicalorder"
	"github.com/fertitrack/fertitrack_backend/internal/repo/monitoringday"
	"github.com/fertitrack/fertitrack_backend/internal/repo/oocyte"
	"github.com/fertitrack/fertitrack_backend/internal/repo/oocytestatehistory"
	"github.com/fertitrack/fertitrack_backend/internal/repo/partner"
	"github.com/fertitrack/fertitrack_backend/internal/repo/patient"
	"github.com/fertitrack/fertitrack_backend/internal/repo/predicate"
	"github.com/fertitrack/fertitrack_backend/internal/repo/puncture"
	"github.com/fertitrack/fertitrack_backend/internal/repo/studyresult"
	"github.com/fertitrack/fertitrack_backend/internal/repo/treatment"
	"github.com/fertitrack/fertitrack_backend/internal/repo/user"
	"github.com/google/uuid"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeEmbryo             = "Embryo"
	TypeEmbryoTransfer     = "EmbryoTransfer"
	TypeMedicalHistory     = "MedicalHistory"
	TypeMedicalOrder       = "MedicalOrder"
	TypeMonitoringDay      = "MonitoringDay"
	TypeOocyte             = "Oocyte"
	TypeOocyteStateHistory = "OocyteStateHistory"
	TypePartner            = "Partner"
	TypePatient            = "Patient"
	TypePuncture           = "Puncture"
	TypeStudyResult        = "StudyResult"
	TypeTreatment          = "Treatment"
	TypeUser               = "User"
)

// EmbryoMutation represents an operation that mutates the Embryo nodes in the graph.
type EmbryoMutation struct {
	config
	op                      Op
	typ                     string
	id                      *uuid.UUID
	created_at              *time.Time
	updated_at              *time.Time
	embryo_code             *string
	fertilization_technique *embryo.FertilizationTechnique
	sperm_source            *embryo.SpermSource
	quality                 *int
	addquality              *int
	current_state           *embryo.CurrentState
	pgt_performed           *bool
	pgt_result              *bool
	nitrogen_tube           *string
	rack_number             *string
	discard_reason          *string
	clearedFields           map[string]struct{}
	oocyte                  *uuid.UUID
	clearedoocyte           bool
	transfer                *uuid.UUID
	clearedtransfer         bool
	done                    bool
	oldValue                func(context.Context) (*Embryo, error)
	predicates              []predicate.Embryo
}

var _ ent.Mutation = (*EmbryoMutation)(nil)

// embryoOption allows management of the mutation configuration using functional options.
type embryoOption func(*EmbryoMutation)

// newEmbryoMutation creates new mutation for the Embryo entity.
func newEmbryoMutation(c config, op Op, opts ...embryoOption) *EmbryoMutation {
	m := &EmbryoMutation{
		config:        c,
		op:            op,
		typ:           TypeEmbryo,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withEmbryoID sets the ID field of the mutation.
func withEmbryoID(id uuid.UUID) embryoOption {
	return func(m *EmbryoMutation) {
		var (
			err   error
			once  sync.Once
			value *Embryo
		)
		m.oldValue = func(ctx context.Context) (*Embryo, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Embryo.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withEmbryo sets the old Embryo of the mutation.
func withEmbryo(node *Embryo) embryoOption {
	return func(m *EmbryoMutation) {
		m.oldValue = func(context.Context) (*Embryo, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m EmbryoMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m EmbryoMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("repo: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Embryo entities.
func (m *EmbryoMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *EmbryoMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *EmbryoMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Embryo.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *EmbryoMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *EmbryoMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Embryo entity.
// If the Embryo object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EmbryoMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *EmbryoMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *EmbryoMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *EmbryoMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Embryo entity.
// If the Embryo object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EmbryoMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *EmbryoMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetOocyteID sets the "oocyte_id" field.
func (m *EmbryoMutation) SetOocyteID(u uuid.UUID) {
	m.oocyte = &u
}

// OocyteID returns the value of the "oocyte_id" field in the mutation.
func (m *EmbryoMutation) OocyteID() (r uuid.UUID, exists bool) {
	v := m.oocyte
	if v == nil {
		return
	}
	return *v, true
}

// OldOocyteID returns the old "oocyte_id" field's value of the Embryo entity.
// If the Embryo object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EmbryoMutation) OldOocyteID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOocyteID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOocyteID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOocyteID: %w", err)
	}
	return oldValue.OocyteID, nil
}

// ResetOocyteID resets all changes to the "oocyte_id" field.
func (m *EmbryoMutation) ResetOocyteID() {
	m.oocyte = nil
}

// SetEmbryoCode sets the "embryo_code" field.
func (m *EmbryoMutation) SetEmbryoCode(s string) {
	m.embryo_code = &s
}

// EmbryoCode returns the value of the "embryo_code" field in the mutation.
func (m *EmbryoMutation) EmbryoCode() (r string, exists bool) {
	v := m.embryo_code
	if v == nil {
		return
	}
	return *v, true
}

// OldEmbryoCode returns the old "embryo_code" field's value of the Embryo entity.
// If the Embryo object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EmbryoMutation) OldEmbryoCode(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEmbryoCode is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEmbryoCode requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEmbryoCode: %w", err)
	}
	return oldValue.EmbryoCode, nil
}

// ResetEmbryoCode resets all changes to the "embryo_code" field.
func (m *EmbryoMutation) ResetEmbryoCode() {
	m.embryo_code = nil
}

// SetFertilizationTechnique sets the "fertilization_technique" field.
func (m *EmbryoMutation) SetFertilizationTechnique(et embryo.FertilizationTechnique) {
	m.fertilization_technique = &et
}

// FertilizationTechnique returns the value of the "fertilization_technique" field in the mutation.
func (m *EmbryoMutation) FertilizationTechnique() (r embryo.FertilizationTechnique, exists bool) {
	v := m.fertilization_technique
	if v == nil {
		return
	}
	return *v, true
}

// OldFertilizationTechnique returns the old "fertilization_technique" field's value of the Embryo entity.
// If the Embryo object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EmbryoMutation) OldFertilizationTechnique(ctx context.Context) (v embryo.FertilizationTechnique, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFertilizationTechnique is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFertilizationTechnique requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFertilizationTechnique: %w", err)
	}
	return oldValue.FertilizationTechnique, nil
}

// ResetFertilizationTechnique resets all changes to the "fertilization_technique" field.
func (m *EmbryoMutation) ResetFertilizationTechnique() {
	m.fertilization_technique = nil
}

// SetSpermSource sets the "sperm_source" field.
func (m *EmbryoMutation) SetSpermSource(es embryo.SpermSource) {
	m.sperm_source = &es
}

// SpermSource returns the value of the "sperm_source" field in the mutation.
func (m *EmbryoMutation) SpermSource() (r embryo.SpermSource, exists bool) {
	v := m.sperm_source
	if v == nil {
		return
	}
	return *v, true
}

// OldSpermSource returns the old "sperm_source" field's value of the Embryo entity.
// If the Embryo object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EmbryoMutation) OldSpermSource(ctx context.Context) (v embryo.SpermSource, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSpermSource is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSpermSource requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSpermSource: %w", err)
	}
	return oldValue.SpermSource, nil
}

// ResetSpermSource resets all changes to the "sperm_source" field.
func (m *EmbryoMutation) ResetSpermSource() {
	m.sperm_source = nil
}

// SetQuality sets the "quality" field.
func (m *EmbryoMutation) SetQuality(i int) {
	m.quality = &i
	m.addquality = nil
}

// Quality returns the value of the "quality" field in the mutation.
func (m *EmbryoMutation) Quality() (r int, exists bool) {
	v := m.quality
	if v == nil {
		return
	}
	return *v, true
}

// OldQuality returns the old "quality" field's value of the Embryo entity.
// If the Embryo object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EmbryoMutation) OldQuality(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldQuality is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldQuality requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldQuality: %w", err)
	}
	return oldValue.Quality, nil
}

// AddQuality adds i to the "quality" field.
func (m *EmbryoMutation) AddQuality(i int) {
	if m.addquality != nil {
		*m.addquality += i
	} else {
		m.addquality = &i
	}
}

// AddedQuality returns the value that was added to the "quality" field in this mutation.
func (m *EmbryoMutation) AddedQuality() (r int, exists bool) {
	v := m.addquality
	if v == nil {
		return
	}
	return *v, true
}

// ResetQuality resets all changes to the "quality" field.
func (m *EmbryoMutation) ResetQuality() {
	m.quality = nil
	m.addquality = nil
}

// SetCurrentState sets the "current_state" field.
func (m *EmbryoMutation) SetCurrentState(es embryo.CurrentState) {
	m.current_state = &es
}

// CurrentState returns the value of the "current_state" field in the mutation.
func (m *EmbryoMutation) CurrentState() (r embryo.CurrentState, exists bool) {
	v := m.current_state
	if v == nil {
		return
	}
	return *v, true
}

// OldCurrentState returns the old "current_state" field's value of the Embryo entity.
// If the Embryo object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EmbryoMutation) OldCurrentState(ctx context.Context) (v embryo.CurrentState, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCurrentState is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCurrentState requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCurrentState: %w", err)
	}
	return oldValue.CurrentState, nil
}

// ResetCurrentState resets all changes to the "current_state" field.
func (m *EmbryoMutation) ResetCurrentState() {
	m.current_state = nil
}

// SetPgtPerformed sets the "pgt_performed" field.
func (m *EmbryoMutation) SetPgtPerformed(b bool) {
	m.pgt_performed = &b
}

// PgtPerformed returns the value of the "pgt_performed" field in the mutation.
func (m *EmbryoMutation) PgtPerformed() (r bool, exists bool) {
	v := m.pgt_performed
	if v == nil {
		return
	}
	return *v, true
}

// OldPgtPerformed returns the old "pgt_performed" field's value of the Embryo entity.
// If the Embryo object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EmbryoMutation) OldPgtPerformed(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPgtPerformed is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPgtPerformed requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPgtPerformed: %w", err)
	}
	return oldValue.PgtPerformed, nil
}

// ResetPgtPerformed resets all changes to the "pgt_performed" field.
func (m *EmbryoMutation) ResetPgtPerformed() {
	m.pgt_performed = nil
}

// SetPgtResult sets the "pgt_result" field.
func (m *EmbryoMutation) SetPgtResult(b bool) {
	m.pgt_result = &b
}

// PgtResult returns the value of the "pgt_result" field in the mutation.
func (m *EmbryoMutation) PgtResult() (r bool, exists bool) {
	v := m.pgt_result
	if v == nil {
		return
	}
	return *v, true
}

// OldPgtResult returns the old "pgt_result" field's value of the Embryo entity.
// If the Embryo object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EmbryoMutation) OldPgtResult(ctx context.Context) (v *bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPgtResult is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPgtResult requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPgtResult: %w", err)
	}
	return oldValue.PgtResult, nil
}

// ClearPgtResult clears the value of the "pgt_result" field.
func (m *EmbryoMutation) ClearPgtResult() {
	m.pgt_result = nil
	m.clearedFields[embryo.FieldPgtResult] = struct{}{}
}

// PgtResultCleared returns if the "pgt_result" field was cleared in this mutation.
func (m *EmbryoMutation) PgtResultCleared() bool {
	_, ok := m.clearedFields[embryo.FieldPgtResult]
	return ok
}

// ResetPgtResult resets all changes to the "pgt_result" field.
func (m *EmbryoMutation) ResetPgtResult() {
	m.pgt_result = nil
	delete(m.clearedFields, embryo.FieldPgtResult)
}

// SetNitrogenTube sets the "nitrogen_tube" field.
func (m *EmbryoMutation) SetNitrogenTube(s string) {
	m.nitrogen_tube = &s
}

// NitrogenTube returns the value of the "nitrogen_tube" field in the mutation.
func (m *EmbryoMutation) NitrogenTube() (r string, exists bool) {
	v := m.nitrogen_tube
	if v == nil {
		return
	}
	return *v, true
}

// OldNitrogenTube returns the old "nitrogen_tube" field's value of the Embryo entity.
// If the Embryo object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EmbryoMutation) OldNitrogenTube(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNitrogenTube is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNitrogenTube requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNitrogenTube: %w", err)
	}
	return oldValue.NitrogenTube, nil
}

// ClearNitrogenTube clears the value of the "nitrogen_tube" field.
func (m *EmbryoMutation) ClearNitrogenTube() {
	m.nitrogen_tube = nil
	m.clearedFields[embryo.FieldNitrogenTube] = struct{}{}
}

// NitrogenTubeCleared returns if the "nitrogen_tube" field was cleared in this mutation.
func (m *EmbryoMutation) NitrogenTubeCleared() bool {
	_, ok := m.clearedFields[embryo.FieldNitrogenTube]
	return ok
}

// ResetNitrogenTube resets all changes to the "nitrogen_tube" field.
func (m *EmbryoMutation) ResetNitrogenTube() {
	m.nitrogen_tube = nil
	delete(m.clearedFields, embryo.FieldNitrogenTube)
}

// SetRackNumber sets the "rack_number" field.
func (m *EmbryoMutation) SetRackNumber(s string) {
	m.rack_number = &s
}

// RackNumber returns the value of the "rack_number" field in the mutation.
func (m *EmbryoMutation) RackNumber() (r string, exists bool) {
	v := m.rack_number
	if v == nil {
		return
	}
	return *v, true
}

// OldRackNumber returns the old "rack_number" field's value of the Embryo entity.
// If the Embryo object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EmbryoMutation) OldRackNumber(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRackNumber is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRackNumber requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRackNumber: %w", err)
	}
	return oldValue.RackNumber, nil
}

// ClearRackNumber clears the value of the "rack_number" field.
func (m *EmbryoMutation) ClearRackNumber() {
	m.rack_number = nil
	m.clearedFields[embryo.FieldRackNumber] = struct{}{}
}

// RackNumberCleared returns if the "rack_number" field was cleared in this mutation.
func (m *EmbryoMutation) RackNumberCleared() bool {
	_, ok := m.clearedFields[embryo.FieldRackNumber]
	return ok
}

// ResetRackNumber resets all changes to the "rack_number" field.
func (m *EmbryoMutation) ResetRackNumber() {
	m.rack_number = nil
	delete(m.clearedFields, embryo.FieldRackNumber)
}

// SetDiscardReason sets the "discard_reason" field.
func (m *EmbryoMutation) SetDiscardReason(s string) {
	m.discard_reason = &s
}

// DiscardReason returns the value of the "discard_reason" field in the mutation.
func (m *EmbryoMutation) DiscardReason() (r string, exists bool) {
	v := m.discard_reason
	if v == nil {
		return
	}
	return *v, true
}

// OldDiscardReason returns the old "discard_reason" field's value of the Embryo entity.
// If the Embryo object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EmbryoMutation) OldDiscardReason(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDiscardReason is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDiscardReason requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDiscardReason: %w", err)
	}
	return oldValue.DiscardReason, nil
}

// ClearDiscardReason clears the value of the "discard_reason" field.
func (m *EmbryoMutation) ClearDiscardReason() {
	m.discard_reason = nil
	m.clearedFields[embryo.FieldDiscardReason] = struct{}{}
}

// DiscardReasonCleared returns if the "discard_reason" field was cleared in this mutation.
func (m *EmbryoMutation) DiscardReasonCleared() bool {
	_, ok := m.clearedFields[embryo.FieldDiscardReason]
	return ok
}

// ResetDiscardReason resets all changes to the "discard_reason" field.
func (m *EmbryoMutation) ResetDiscardReason() {
	m.discard_reason = nil
	delete(m.clearedFields, embryo.FieldDiscardReason)
}

// ClearOocyte clears the "oocyte" edge to the Oocyte entity.
func (m *EmbryoMutation) ClearOocyte() {
	m.clearedoocyte = true
	m.clearedFields[embryo.FieldOocyteID] = struct{}{}
}

// OocyteCleared reports if the "oocyte" edge to the Oocyte entity was cleared.
func (m *EmbryoMutation) OocyteCleared() bool {
	return m.clearedoocyte
}

// OocyteIDs returns the "oocyte" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// OocyteID instead. It exists only for internal usage by the builders.
func (m *EmbryoMutation) OocyteIDs() (ids []uuid.UUID) {
	if id := m.oocyte; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetOocyte resets all changes to the "oocyte" edge.
func (m *EmbryoMutation) ResetOocyte() {
	m.oocyte = nil
	m.clearedoocyte = false
}

// SetTransferID sets the "transfer" edge to the EmbryoTransfer entity by id.
func (m *EmbryoMutation) SetTransferID(id uuid.UUID) {
	m.transfer = &id
}

// ClearTransfer clears the "transfer" edge to the EmbryoTransfer entity.
func (m *EmbryoMutation) ClearTransfer() {
	m.clearedtransfer = true
}

// TransferCleared reports if the "transfer" edge to the EmbryoTransfer entity was cleared.
func (m *EmbryoMutation) TransferCleared() bool {
	return m.clearedtransfer
}

// TransferID returns the "transfer" edge ID in the mutation.
func (m *EmbryoMutation) TransferID() (id uuid.UUID, exists bool) {
	if m.transfer != nil {
		return *m.transfer, true
	}
	return
}

// TransferIDs returns the "transfer" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// TransferID instead. It exists only for internal usage by the builders.
func (m *EmbryoMutation) TransferIDs() (ids []uuid.UUID) {
	if id := m.transfer; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetTransfer resets all changes to the "transfer" edge.
func (m *EmbryoMutation) ResetTransfer() {
	m.transfer = nil
	m.clearedtransfer = false
}

// Where appends a list predicates to the EmbryoMutation builder.
func (m *EmbryoMutation) Where(ps ...predicate.Embryo) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the EmbryoMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *EmbryoMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Embryo, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *EmbryoMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *EmbryoMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Embryo).
func (m *EmbryoMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *EmbryoMutation) Fields() []string {
	fields := make([]string, 0, 13)
	if m.created_at != nil {
		fields = append(fields, embryo.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, embryo.FieldUpdatedAt)
	}
	if m.oocyte != nil {
		fields = append(fields, embryo.FieldOocyteID)
	}
	if m.embryo_code != nil {
		fields = append(fields, embryo.FieldEmbryoCode)
	}
	if m.fertilization_technique != nil {
		fields = append(fields, embryo.FieldFertilizationTechnique)
	}
	if m.sperm_source != nil {
		fields = append(fields, embryo.FieldSpermSource)
	}
	if m.quality != nil {
		fields = append(fields, embryo.FieldQuality)
	}
	if m.current_state != nil {
		fields = append(fields, embryo.FieldCurrentState)
	}
	if m.pgt_performed != nil {
		fields = append(fields, embryo.FieldPgtPerformed)
	}
	if m.pgt_result != nil {
		fields = append(fields, embryo.FieldPgtResult)
	}
	if m.nitrogen_tube != nil {
		fields = append(fields, embryo.FieldNitrogenTube)
	}
	if m.rack_number != nil {
		fields = append(fields, embryo.FieldRackNumber)
	}
	if m.discard_reason != nil {
		fields = append(fields, embryo.FieldDiscardReason)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *EmbryoMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case embryo.FieldCreatedAt:
		return m.CreatedAt()
	case embryo.FieldUpdatedAt:
		return m.UpdatedAt()
	case embryo.FieldOocyteID:
		return m.OocyteID()
	case embryo.FieldEmbryoCode:
		return m.EmbryoCode()
	case embryo.FieldFertilizationTechnique:
		return m.FertilizationTechnique()
	case embryo.FieldSpermSource:
		return m.SpermSource()
	case embryo.FieldQuality:
		return m.Quality()
	case embryo.FieldCurrentState:
		return m.CurrentState()
	case embryo.FieldPgtPerformed:
		return m.PgtPerformed()
	case embryo.FieldPgtResult:
		return m.PgtResult()
	case embryo.FieldNitrogenTube:
		return m.NitrogenTube()
	case embryo.FieldRackNumber:
		return m.RackNumber()
	case embryo.FieldDiscardReason:
		return m.DiscardReason()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *EmbryoMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case embryo.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case embryo.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case embryo.FieldOocyteID:
		return m.OldOocyteID(ctx)
	case embryo.FieldEmbryoCode:
		return m.OldEmbryoCode(ctx)
	case embryo.FieldFertilizationTechnique:
		return m.OldFertilizationTechnique(ctx)
	case embryo.FieldSpermSource:
		return m.OldSpermSource(ctx)
	case embryo.FieldQuality:
		return m.OldQuality(ctx)
	case embryo.FieldCurrentState:
		return m.OldCurrentState(ctx)
	case embryo.FieldPgtPerformed:
		return m.OldPgtPerformed(ctx)
	case embryo.FieldPgtResult:
		return m.OldPgtResult(ctx)
	case embryo.FieldNitrogenTube:
		return m.OldNitrogenTube(ctx)
	case embryo.FieldRackNumber:
		return m.OldRackNumber(ctx)
	case embryo.FieldDiscardReason:
		return m.OldDiscardReason(ctx)
	}
	return nil, fmt.Errorf("unknown Embryo field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *EmbryoMutation) SetField(name string, value ent.Value) error {
	switch name {
	case embryo.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case embryo.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case embryo.FieldOocyteID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOocyteID(v)
		return nil
	case embryo.FieldEmbryoCode:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEmbryoCode(v)
		return nil
	case embryo.FieldFertilizationTechnique:
		v, ok := value.(embryo.FertilizationTechnique)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFertilizationTechnique(v)
		return nil
	case embryo.FieldSpermSource:
		v, ok := value.(embryo.SpermSource)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSpermSource(v)
		return nil
	case embryo.FieldQuality:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetQuality(v)
		return nil
	case embryo.FieldCurrentState:
		v, ok := value.(embryo.CurrentState)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCurrentState(v)
		return nil
	case embryo.FieldPgtPerformed:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPgtPerformed(v)
		return nil
	case embryo.FieldPgtResult:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPgtResult(v)
		return nil
	case embryo.FieldNitrogenTube:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNitrogenTube(v)
		return nil
	case embryo.FieldRackNumber:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRackNumber(v)
		return nil
	case embryo.FieldDiscardReason:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDiscardReason(v)
		return nil
	}
	return fmt.Errorf("unknown Embryo field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *EmbryoMutation) AddedFields() []string {
	var fields []string
	if m.addquality != nil {
		fields = append(fields, embryo.FieldQuality)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *EmbryoMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case embryo.FieldQuality:
		return m.AddedQuality()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *EmbryoMutation) AddField(name string, value ent.Value) error {
	switch name {
	case embryo.FieldQuality:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddQuality(v)
		return nil
	}
	return fmt.Errorf("unknown Embryo numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *EmbryoMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(embryo.FieldPgtResult) {
		fields = append(fields, embryo.FieldPgtResult)
	}
	if m.FieldCleared(embryo.FieldNitrogenTube) {
		fields = append(fields, embryo.FieldNitrogenTube)
	}
	if m.FieldCleared(embryo.FieldRackNumber) {
		fields = append(fields, embryo.FieldRackNumber)
	}
	if m.FieldCleared(embryo.FieldDiscardReason) {
		fields = append(fields, embryo.FieldDiscardReason)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *EmbryoMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *EmbryoMutation) ClearField(name string) error {
	switch name {
	case embryo.FieldPgtResult:
		m.ClearPgtResult()
		return nil
	case embryo.FieldNitrogenTube:
		m.ClearNitrogenTube()
		return nil
	case embryo.FieldRackNumber:
		m.ClearRackNumber()
		return nil
	case embryo.FieldDiscardReason:
		m.ClearDiscardReason()
		return nil
	}
	return fmt.Errorf("unknown Embryo nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *EmbryoMutation) ResetField(name string) error {
	switch name {
	case embryo.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case embryo.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case embryo.FieldOocyteID:
		m.ResetOocyteID()
		return nil
	case embryo.FieldEmbryoCode:
		m.ResetEmbryoCode()
		return nil
	case embryo.FieldFertilizationTechnique:
		m.ResetFertilizationTechnique()
		return nil
	case embryo.FieldSpermSource:
		m.ResetSpermSource()
		return nil
	case embryo.FieldQuality:
		m.ResetQuality()
		return nil
	case embryo.FieldCurrentState:
		m.ResetCurrentState()
		return nil
	case embryo.FieldPgtPerformed:
		m.ResetPgtPerformed()
		return nil
	case embryo.FieldPgtResult:
		m.ResetPgtResult()
		return nil
	case embryo.FieldNitrogenTube:
		m.ResetNitrogenTube()
		return nil
	case embryo.FieldRackNumber:
		m.ResetRackNumber()
		return nil
	case embryo.FieldDiscardReason:
		m.ResetDiscardReason()
		return nil
	}
	return fmt.Errorf("unknown Embryo field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *EmbryoMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.oocyte != nil {
		edges = append(edges, embryo.EdgeOocyte)
	}
	if m.transfer != nil {
		edges = append(edges, embryo.EdgeTransfer)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *EmbryoMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case embryo.EdgeOocyte:
		if id := m.oocyte; id != nil {
			return []ent.Value{*id}
		}
	case embryo.EdgeTransfer:
		if id := m.transfer; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *EmbryoMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *EmbryoMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *EmbryoMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedoocyte {
		edges = append(edges, embryo.EdgeOocyte)
	}
	if m.clearedtransfer {
		edges = append(edges, embryo.EdgeTransfer)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *EmbryoMutation) EdgeCleared(name string) bool {
	switch name {
	case embryo.EdgeOocyte:
		return m.clearedoocyte
	case embryo.EdgeTransfer:
		return m.clearedtransfer
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *EmbryoMutation) ClearEdge(name string) error {
	switch name {
	case embryo.EdgeOocyte:
		m.ClearOocyte()
		return nil
	case embryo.EdgeTransfer:
		m.ClearTransfer()
		return nil
	}
	return fmt.Errorf("unknown Embryo unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *EmbryoMutation) ResetEdge(name string) error {
	switch name {
	case embryo.EdgeOocyte:
		m.ResetOocyte()
		return nil
	case embryo.EdgeTransfer:
		m.ResetTransfer()
		return nil
	}
	return fmt.Errorf("unknown Embryo edge %s", name)
}

// EmbryoTransferMutation represents an operation that mutates the EmbryoTransfer nodes in the graph.
type EmbryoTransferMutation struct {
	config
	op                 Op
	typ                string
	id                 *uuid.UUID
	created_at         *time.Time
	updated_at         *time.Time
	scheduled_date     *time.Time
	performed_date     *time.Time
	beta_positive      *bool
	gestational_sac    *bool
	clinical_pregnancy *bool
	live_birth         *bool
	notes              *string
	clearedFields      map[string]struct{}
	embryo             *uuid.UUID
	clearedembryo      bool
	done               bool
	oldValue           func(context.Context) (*EmbryoTransfer, error)
	predicates         []predicate.EmbryoTransfer
}

var _ ent.Mutation = (*EmbryoTransferMutation)(nil)

// embryotransferOption allows management of the mutation configuration using functional options.
type embryotransferOption func(*EmbryoTransferMutation)

// newEmbryoTransferMutation creates new mutation for the EmbryoTransfer entity.
func newEmbryoTransferMutation(c config, op Op, opts ...embryotransferOption) *EmbryoTransferMutation {
	m := &EmbryoTransferMutation{
		config:        c,
		op:            op,
		typ:           TypeEmbryoTransfer,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withEmbryoTransferID sets the ID field of the mutation.
func withEmbryoTransferID(id uuid.UUID) embryotransferOption {
	return func(m *EmbryoTransferMutation) {
		var (
			err   error
			once  sync.Once
			value *EmbryoTransfer
		)
		m.oldValue = func(ctx context.Context) (*EmbryoTransfer, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().EmbryoTransfer.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withEmbryoTransfer sets the old EmbryoTransfer of the mutation.
func withEmbryoTransfer(node *EmbryoTransfer) embryotransferOption {
	return func(m *EmbryoTransferMutation) {
		m.oldValue = func(context.Context) (*EmbryoTransfer, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m EmbryoTransferMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m EmbryoTransferMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("repo: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of EmbryoTransfer entities.
func (m *EmbryoTransferMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *EmbryoTransferMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *EmbryoTransferMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().EmbryoTransfer.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *EmbryoTransferMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *EmbryoTransferMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the EmbryoTransfer entity.
// If the EmbryoTransfer object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EmbryoTransferMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *EmbryoTransferMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *EmbryoTransferMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *EmbryoTransferMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the EmbryoTransfer entity.
// If the EmbryoTransfer object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EmbryoTransferMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *EmbryoTransferMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetEmbryoID sets the "embryo_id" field.
func (m *EmbryoTransferMutation) SetEmbryoID(u uuid.UUID) {
	m.embryo = &u
}

// EmbryoID returns the value of the "embryo_id" field in the mutation.
func (m *EmbryoTransferMutation) EmbryoID() (r uuid.UUID, exists bool) {
	v := m.embryo
	if v == nil {
		return
	}
	return *v, true
}

// OldEmbryoID returns the old "embryo_id" field's value of the EmbryoTransfer entity.
// If the EmbryoTransfer object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EmbryoTransferMutation) OldEmbryoID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEmbryoID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEmbryoID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEmbryoID: %w", err)
	}
	return oldValue.EmbryoID, nil
}

// ResetEmbryoID resets all changes to the "embryo_id" field.
func (m *EmbryoTransferMutation) ResetEmbryoID() {
	m.embryo = nil
}

// SetScheduledDate sets the "scheduled_date" field.
func (m *EmbryoTransferMutation) SetScheduledDate(t time.Time) {
	m.scheduled_date = &t
}

// ScheduledDate returns the value of the "scheduled_date" field in the mutation.
func (m *EmbryoTransferMutation) ScheduledDate() (r time.Time, exists bool) {
	v := m.scheduled_date
	if v == nil {
		return
	}
	return *v, true
}

// OldScheduledDate returns the old "scheduled_date" field's value of the EmbryoTransfer entity.
// If the EmbryoTransfer object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EmbryoTransferMutation) OldScheduledDate(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldScheduledDate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldScheduledDate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldScheduledDate: %w", err)
	}
	return oldValue.ScheduledDate, nil
}

// ResetScheduledDate resets all changes to the "scheduled_date" field.
func (m *EmbryoTransferMutation) ResetScheduledDate() {
	m.scheduled_date = nil
}

// SetPerformedDate sets the "performed_date" field.
func (m *EmbryoTransferMutation) SetPerformedDate(t time.Time) {
	m.performed_date = &t
}

// PerformedDate returns the value of the "performed_date" field in the mutation.
func (m *EmbryoTransferMutation) PerformedDate() (r time.Time, exists bool) {
	v := m.performed_date
	if v == nil {
		return
	}
	return *v, true
}

// OldPerformedDate returns the old "performed_date" field's value of the EmbryoTransfer entity.
// If the EmbryoTransfer object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EmbryoTransferMutation) OldPerformedDate(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPerformedDate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPerformedDate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPerformedDate: %w", err)
	}
	return oldValue.PerformedDate, nil
}

// ClearPerformedDate clears the value of the "performed_date" field.
func (m *EmbryoTransferMutation) ClearPerformedDate() {
	m.performed_date = nil
	m.clearedFields[embryotransfer.FieldPerformedDate] = struct{}{}
}

// PerformedDateCleared returns if the "performed_date" field was cleared in this mutation.
func (m *EmbryoTransferMutation) PerformedDateCleared() bool {
	_, ok := m.clearedFields[embryotransfer.FieldPerformedDate]
	return ok
}

// ResetPerformedDate resets all changes to the "performed_date" field.
func (m *EmbryoTransferMutation) ResetPerformedDate() {
	m.performed_date = nil
	delete(m.clearedFields, embryotransfer.FieldPerformedDate)
}

// SetBetaPositive sets the "beta_positive" field.
func (m *EmbryoTransferMutation) SetBetaPositive(b bool) {
	m.beta_positive = &b
}

// BetaPositive returns the value of the "beta_positive" field in the mutation.
func (m *EmbryoTransferMutation) BetaPositive() (r bool, exists bool) {
	v := m.beta_positive
	if v == nil {
		return
	}
	return *v, true
}

// OldBetaPositive returns the old "beta_positive" field's value of the EmbryoTransfer entity.
// If the EmbryoTransfer object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EmbryoTransferMutation) OldBetaPositive(ctx context.Context) (v *bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBetaPositive is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBetaPositive requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBetaPositive: %w", err)
	}
	return oldValue.BetaPositive, nil
}

// ClearBetaPositive clears the value of the "beta_positive" field.
func (m *EmbryoTransferMutation) ClearBetaPositive() {
	m.beta_positive = nil
	m.clearedFields[embryotransfer.FieldBetaPositive] = struct{}{}
}

// BetaPositiveCleared returns if the "beta_positive" field was cleared in this mutation.
func (m *EmbryoTransferMutation) BetaPositiveCleared() bool {
	_, ok := m.clearedFields[embryotransfer.FieldBetaPositive]
	return ok
}

// ResetBetaPositive resets all changes to the "beta_positive" field.
func (m *EmbryoTransferMutation) ResetBetaPositive() {
	m.beta_positive = nil
	delete(m.clearedFields, embryotransfer.FieldBetaPositive)
}

// SetGestationalSac sets the "gestational_sac" field.
func (m *EmbryoTransferMutation) SetGestationalSac(b bool) {
	m.gestational_sac = &b
}

// GestationalSac returns the value of the "gestational_sac" field in the mutation.
func (m *EmbryoTransferMutation) GestationalSac() (r bool, exists bool) {
	v := m.gestational_sac
	if v == nil {
		return
	}
	return *v, true
}

// OldGestationalSac returns the old "gestational_sac" field's value of the EmbryoTransfer entity.
// If the EmbryoTransfer object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EmbryoTransferMutation) OldGestationalSac(ctx context.Context) (v *bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldGestationalSac is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldGestationalSac requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldGestationalSac: %w", err)
	}
	return oldValue.GestationalSac, nil
}

// ClearGestationalSac clears the value of the "gestational_sac" field.
func (m *EmbryoTransferMutation) ClearGestationalSac() {
	m.gestational_sac = nil
	m.clearedFields[embryotransfer.FieldGestationalSac] = struct{}{}
}

// GestationalSacCleared returns if the "gestational_sac" field was cleared in this mutation.
func (m *EmbryoTransferMutation) GestationalSacCleared() bool {
	_, ok := m.clearedFields[embryotransfer.FieldGestationalSac]
	return ok
}

// ResetGestationalSac resets all changes to the "gestational_sac" field.
func (m *EmbryoTransferMutation) ResetGestationalSac() {
	m.gestational_sac = nil
	delete(m.clearedFields, embryotransfer.FieldGestationalSac)
}

// SetClinicalPregnancy sets the "clinical_pregnancy" field.
func (m *EmbryoTransferMutation) SetClinicalPregnancy(b bool) {
	m.clinical_pregnancy = &b
}

// ClinicalPregnancy returns the value of the "clinical_pregnancy" field in the mutation.
func (m *EmbryoTransferMutation) ClinicalPregnancy() (r bool, exists bool) {
	v := m.clinical_pregnancy
	if v == nil {
		return
	}
	return *v, true
}

// OldClinicalPregnancy returns the old "clinical_pregnancy" field's value of the EmbryoTransfer entity.
// If the EmbryoTransfer object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EmbryoTransferMutation) OldClinicalPregnancy(ctx context.Context) (v *bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldClinicalPregnancy is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldClinicalPregnancy requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldClinicalPregnancy: %w", err)
	}
	return oldValue.ClinicalPregnancy, nil
}

// ClearClinicalPregnancy clears the value of the "clinical_pregnancy" field.
func (m *EmbryoTransferMutation) ClearClinicalPregnancy() {
	m.clinical_pregnancy = nil
	m.clearedFields[embryotransfer.FieldClinicalPregnancy] = struct{}{}
}

// ClinicalPregnancyCleared returns if the "clinical_pregnancy" field was cleared in this mutation.
func (m *EmbryoTransferMutation) ClinicalPregnancyCleared() bool {
	_, ok := m.clearedFields[embryotransfer.FieldClinicalPregnancy]
	return ok
}

// ResetClinicalPregnancy resets all changes to the "clinical_pregnancy" field.
func (m *EmbryoTransferMutation) ResetClinicalPregnancy() {
	m.clinical_pregnancy = nil
	delete(m.clearedFields, embryotransfer.FieldClinicalPregnancy)
}

// SetLiveBirth sets the "live_birth" field.
func (m *EmbryoTransferMutation) SetLiveBirth(b bool) {
	m.live_birth = &b
}

// LiveBirth returns the value of the "live_birth" field in the mutation.
func (m *EmbryoTransferMutation) LiveBirth() (r bool, exists bool) {
	v := m.live_birth
	if v == nil {
		return
	}
	return *v, true
}

// OldLiveBirth returns the old "live_birth" field's value of the EmbryoTransfer entity.
// If the EmbryoTransfer object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EmbryoTransferMutation) OldLiveBirth(ctx context.Context) (v *bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLiveBirth is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLiveBirth requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLiveBirth: %w", err)
	}
	return oldValue.LiveBirth, nil
}

// ClearLiveBirth clears the value of the "live_birth" field.
func (m *EmbryoTransferMutation) ClearLiveBirth() {
	m.live_birth = nil
	m.clearedFields[embryotransfer.FieldLiveBirth] = struct{}{}
}

// LiveBirthCleared returns if the "live_birth" field was cleared in this mutation.
func (m *EmbryoTransferMutation) LiveBirthCleared() bool {
	_, ok := m.clearedFields[embryotransfer.FieldLiveBirth]
	return ok
}

// ResetLiveBirth resets all changes to the "live_birth" field.
func (m *EmbryoTransferMutation) ResetLiveBirth() {
	m.live_birth = nil
	delete(m.clearedFields, embryotransfer.FieldLiveBirth)
}

// SetNotes sets the "notes" field.
func (m *EmbryoTransferMutation) SetNotes(s string) {
	m.notes = &s
}

// Notes returns the value of the "notes" field in the mutation.
func (m *EmbryoTransferMutation) Notes() (r string, exists bool) {
	v := m.notes
	if v == nil {
		return
	}
	return *v, true
}

// OldNotes returns the old "notes" field's value of the EmbryoTransfer entity.
// If the EmbryoTransfer object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EmbryoTransferMutation) OldNotes(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNotes is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNotes requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNotes: %w", err)
	}
	return oldValue.Notes, nil
}

// ClearNotes clears the value of the "notes" field.
func (m *EmbryoTransferMutation) ClearNotes() {
	m.notes = nil
	m.clearedFields[embryotransfer.FieldNotes] = struct{}{}
}

// NotesCleared returns if the "notes" field was cleared in this mutation.
func (m *EmbryoTransferMutation) NotesCleared() bool {
	_, ok := m.clearedFields[embryotransfer.FieldNotes]
	return ok
}

// ResetNotes resets all changes to the "notes" field.
func (m *EmbryoTransferMutation) ResetNotes() {
	m.notes = nil
	delete(m.clearedFields, embryotransfer.FieldNotes)
}

// ClearEmbryo clears the "embryo" edge to the Embryo entity.
func (m *EmbryoTransferMutation) ClearEmbryo() {
	m.clearedembryo = true
	m.clearedFields[embryotransfer.FieldEmbryoID] = struct{}{}
}

// EmbryoCleared reports if the "embryo" edge to the Embryo entity was cleared.
func (m *EmbryoTransferMutation) EmbryoCleared() bool {
	return m.clearedembryo
}

// EmbryoIDs returns the "embryo" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// EmbryoID instead. It exists only for internal usage by the builders.
func (m *EmbryoTransferMutation) EmbryoIDs() (ids []uuid.UUID) {
	if id := m.embryo; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetEmbryo resets all changes to the "embryo" edge.
func (m *EmbryoTransferMutation) ResetEmbryo() {
	m.embryo = nil
	m.clearedembryo = false
}

// Where appends a list predicates to the EmbryoTransferMutation builder.
func (m *EmbryoTransferMutation) Where(ps ...predicate.EmbryoTransfer) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the EmbryoTransferMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *EmbryoTransferMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.EmbryoTransfer, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *EmbryoTransferMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *EmbryoTransferMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (EmbryoTransfer).
func (m *EmbryoTransferMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *EmbryoTransferMutation) Fields() []string {
	fields := make([]string, 0, 10)
	if m.created_at != nil {
		fields = append(fields, embryotransfer.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, embryotransfer.FieldUpdatedAt)
	}
	if m.embryo != nil {
		fields = append(fields, embryotransfer.FieldEmbryoID)
	}
	if m.scheduled_date != nil {
		fields = append(fields, embryotransfer.FieldScheduledDate)
	}
	if m.performed_date != nil {
		fields = append(fields, embryotransfer.FieldPerformedDate)
	}
	if m.beta_positive != nil {
		fields = append(fields, embryotransfer.FieldBetaPositive)
	}
	if m.gestational_sac != nil {
		fields = append(fields, embryotransfer.FieldGestationalSac)
	}
	if m.clinical_pregnancy != nil {
		fields = append(fields, embryotransfer.FieldClinicalPregnancy)
	}
	if m.live_birth != nil {
		fields = append(fields, embryotransfer.FieldLiveBirth)
	}
	if m.notes != nil {
		fields = append(fields, embryotransfer.FieldNotes)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *EmbryoTransferMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case embryotransfer.FieldCreatedAt:
		return m.CreatedAt()
	case embryotransfer.FieldUpdatedAt:
		return m.UpdatedAt()
	case embryotransfer.FieldEmbryoID:
		return m.EmbryoID()
	case embryotransfer.FieldScheduledDate:
		return m.ScheduledDate()
	case embryotransfer.FieldPerformedDate:
		return m.PerformedDate()
	case embryotransfer.FieldBetaPositive:
		return m.BetaPositive()
	case embryotransfer.FieldGestationalSac:
		return m.GestationalSac()
	case embryotransfer.FieldClinicalPregnancy:
		return m.ClinicalPregnancy()
	case embryotransfer.FieldLiveBirth:
		return m.LiveBirth()
	case embryotransfer.FieldNotes:
		return m.Notes()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *EmbryoTransferMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case embryotransfer.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case embryotransfer.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case embryotransfer.FieldEmbryoID:
		return m.OldEmbryoID(ctx)
	case embryotransfer.FieldScheduledDate:
		return m.OldScheduledDate(ctx)
	case embryotransfer.FieldPerformedDate:
		return m.OldPerformedDate(ctx)
	case embryotransfer.FieldBetaPositive:
		return m.OldBetaPositive(ctx)
	case embryotransfer.FieldGestationalSac:
		return m.OldGestationalSac(ctx)
	case embryotransfer.FieldClinicalPregnancy:
		return m.OldClinicalPregnancy(ctx)
	case embryotransfer.FieldLiveBirth:
		return m.OldLiveBirth(ctx)
	case embryotransfer.FieldNotes:
		return m.OldNotes(ctx)
	}
	return nil, fmt.Errorf("unknown EmbryoTransfer field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *EmbryoTransferMutation) SetField(name string, value ent.Value) error {
	switch name {
	case embryotransfer.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case embryotransfer.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case embryotransfer.FieldEmbryoID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEmbryoID(v)
		return nil
	case embryotransfer.FieldScheduledDate:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetScheduledDate(v)
		return nil
	case embryotransfer.FieldPerformedDate:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPerformedDate(v)
		return nil
	case embryotransfer.FieldBetaPositive:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBetaPositive(v)
		return nil
	case embryotransfer.FieldGestationalSac:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetGestationalSac(v)
		return nil
	case embryotransfer.FieldClinicalPregnancy:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetClinicalPregnancy(v)
		return nil
	case embryotransfer.FieldLiveBirth:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLiveBirth(v)
		return nil
	case embryotransfer.FieldNotes:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNotes(v)
		return nil
	}
	return fmt.Errorf("unknown EmbryoTransfer field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *EmbryoTransferMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *EmbryoTransferMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *EmbryoTransferMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown EmbryoTransfer numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *EmbryoTransferMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(embryotransfer.FieldPerformedDate) {
		fields = append(fields, embryotransfer.FieldPerformedDate)
	}
	if m.FieldCleared(embryotransfer.FieldBetaPositive) {
		fields = append(fields, embryotransfer.FieldBetaPositive)
	}
	if m.FieldCleared(embryotransfer.FieldGestationalSac) {
		fields = append(fields, embryotransfer.FieldGestationalSac)
	}
	if m.FieldCleared(embryotransfer.FieldClinicalPregnancy) {
		fields = append(fields, embryotransfer.FieldClinicalPregnancy)
	}
	if m.FieldCleared(embryotransfer.FieldLiveBirth) {
		fields = append(fields, embryotransfer.FieldLiveBirth)
	}
	if m.FieldCleared(embryotransfer.FieldNotes) {
		fields = append(fields, embryotransfer.FieldNotes)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *EmbryoTransferMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *EmbryoTransferMutation) ClearField(name string) error {
	switch name {
	case embryotransfer.FieldPerformedDate:
		m.ClearPerformedDate()
		return nil
	case embryotransfer.FieldBetaPositive:
		m.ClearBetaPositive()
		return nil
	case embryotransfer.FieldGestationalSac:
		m.ClearGestationalSac()
		return nil
	case embryotransfer.FieldClinicalPregnancy:
		m.ClearClinicalPregnancy()
		return nil
	case embryotransfer.FieldLiveBirth:
		m.ClearLiveBirth()
		return nil
	case embryotransfer.FieldNotes:
		m.ClearNotes()
		return nil
	}
	return fmt.Errorf("unknown EmbryoTransfer nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *EmbryoTransferMutation) ResetField(name string) error {
	switch name {
	case embryotransfer.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case embryotransfer.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case embryotransfer.FieldEmbryoID:
		m.ResetEmbryoID()
		return nil
	case embryotransfer.FieldScheduledDate:
		m.ResetScheduledDate()
		return nil
	case embryotransfer.FieldPerformedDate:
		m.ResetPerformedDate()
		return nil
	case embryotransfer.FieldBetaPositive:
		m.ResetBetaPositive()
		return nil
	case embryotransfer.FieldGestationalSac:
		m.ResetGestationalSac()
		return nil
	case embryotransfer.FieldClinicalPregnancy:
		m.ResetClinicalPregnancy()
		return nil
	case embryotransfer.FieldLiveBirth:
		m.ResetLiveBirth()
		return nil
	case embryotransfer.FieldNotes:
		m.ResetNotes()
		return nil
	}
	return fmt.Errorf("unknown EmbryoTransfer field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *EmbryoTransferMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.embryo != nil {
		edges = append(edges, embryotransfer.EdgeEmbryo)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *EmbryoTransferMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case embryotransfer.EdgeEmbryo:
		if id := m.embryo; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *EmbryoTransferMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *EmbryoTransferMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *EmbryoTransferMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedembryo {
		edges = append(edges, embryotransfer.EdgeEmbryo)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *EmbryoTransferMutation) EdgeCleared(name string) bool {
	switch name {
	case embryotransfer.EdgeEmbryo:
		return m.clearedembryo
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *EmbryoTransferMutation) ClearEdge(name string) error {
	switch name {
	case embryotransfer.EdgeEmbryo:
		m.ClearEmbryo()
		return nil
	}
	return fmt.Errorf("unknown EmbryoTransfer unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *EmbryoTransferMutation) ResetEdge(name string) error {
	switch name {
	case embryotransfer.EdgeEmbryo:
		m.ResetEmbryo()
		return nil
	}
	return fmt.Errorf("unknown EmbryoTransfer edge %s", name)
}

// MedicalHistoryMutation represents an operation that mutates the MedicalHistory nodes in the graph.
type MedicalHistoryMutation struct {
	config
	op                       Op
	typ                      string
	id                       *uuid.UUID
	created_at               *time.Time
	updated_at               *time.Time
	clinical_background      *string
	surgical_background      *string
	personal_background      *string
	family_background        *string
	gynecological_background *string
	physical_exam            *string
	phenotype                *string
	clearedFields            map[string]struct{}
	patient                  *uuid.UUID
	clearedpatient           bool
	done                     bool
	oldValue                 func(context.Context) (*MedicalHistory, error)
	predicates               []predicate.MedicalHistory
}

var _ ent.Mutation = (*MedicalHistoryMutation)(nil)

// medicalhistoryOption allows management of the mutation configuration using functional options.
type medicalhistoryOption func(*MedicalHistoryMutation)

// newMedicalHistoryMutation creates new mutation for the MedicalHistory entity.
func newMedicalHistoryMutation(c config, op Op, opts ...medicalhistoryOption) *MedicalHistoryMutation {
	m := &MedicalHistoryMutation{
		config:        c,
		op:            op,
		typ:           TypeMedicalHistory,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withMedicalHistoryID sets the ID field of the mutation.
func withMedicalHistoryID(id uuid.UUID) medicalhistoryOption {
	return func(m *MedicalHistoryMutation) {
		var (
			err   error
			once  sync.Once
			value *MedicalHistory
		)
		m.oldValue = func(ctx context.Context) (*MedicalHistory, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().MedicalHistory.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withMedicalHistory sets the old MedicalHistory of the mutation.
func withMedicalHistory(node *MedicalHistory) medicalhistoryOption {
	return func(m *MedicalHistoryMutation) {
		m.oldValue = func(context.Context) (*MedicalHistory, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m MedicalHistoryMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m MedicalHistoryMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("repo: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of MedicalHistory entities.
func (m *MedicalHistoryMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *MedicalHistoryMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *MedicalHistoryMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().MedicalHistory.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *MedicalHistoryMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *MedicalHistoryMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the MedicalHistory entity.
// If the MedicalHistory object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MedicalHistoryMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *MedicalHistoryMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *MedicalHistoryMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *MedicalHistoryMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the MedicalHistory entity.
// If the MedicalHistory object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MedicalHistoryMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *MedicalHistoryMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetPatientID sets the "patient_id" field.
func (m *MedicalHistoryMutation) SetPatientID(u uuid.UUID) {
	m.patient = &u
}

// PatientID returns the value of the "patient_id" field in the mutation.
func (m *MedicalHistoryMutation) PatientID() (r uuid.UUID, exists bool) {
	v := m.patient
	if v == nil {
		return
	}
	return *v, true
}

// OldPatientID returns the old "patient_id" field's value of the MedicalHistory entity.
// If the MedicalHistory object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MedicalHistoryMutation) OldPatientID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPatientID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPatientID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPatientID: %w", err)
	}
	return oldValue.PatientID, nil
}

// ResetPatientID resets all changes to the "patient_id" field.
func (m *MedicalHistoryMutation) ResetPatientID() {
	m.patient = nil
}

// SetClinicalBackground sets the "clinical_background" field.
func (m *MedicalHistoryMutation) SetClinicalBackground(s string) {
	m.clinical_background = &s
}

// ClinicalBackground returns the value of the "clinical_background" field in the mutation.
func (m *MedicalHistoryMutation) ClinicalBackground() (r string, exists bool) {
	v := m.clinical_background
	if v == nil {
		return
	}
	return *v, true
}

// OldClinicalBackground returns the old "clinical_background" field's value of the MedicalHistory entity.
// If the MedicalHistory object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MedicalHistoryMutation) OldClinicalBackground(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldClinicalBackground is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldClinicalBackground requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldClinicalBackground: %w", err)
	}
	return oldValue.ClinicalBackground, nil
}

// ClearClinicalBackground clears the value of the "clinical_background" field.
func (m *MedicalHistoryMutation) ClearClinicalBackground() {
	m.clinical_background = nil
	m.clearedFields[medicalhistory.FieldClinicalBackground] = struct{}{}
}

// ClinicalBackgroundCleared returns if the "clinical_background" field was cleared in this mutation.
func (m *MedicalHistoryMutation) ClinicalBackgroundCleared() bool {
	_, ok := m.clearedFields[medicalhistory.FieldClinicalBackground]
	return ok
}

// ResetClinicalBackground resets all changes to the "clinical_background" field.
func (m *MedicalHistoryMutation) ResetClinicalBackground() {
	m.clinical_background = nil
	delete(m.clearedFields, medicalhistory.FieldClinicalBackground)
}

// SetSurgicalBackground sets the "surgical_background" field.
func (m *MedicalHistoryMutation) SetSurgicalBackground(s string) {
	m.surgical_background = &s
}

// SurgicalBackground returns the value of the "surgical_background" field in the mutation.
func (m *MedicalHistoryMutation) SurgicalBackground() (r string, exists bool) {
	v := m.surgical_background
	if v == nil {
		return
	}
	return *v, true
}

// OldSurgicalBackground returns the old "surgical_background" field's value of the MedicalHistory entity.
// If the MedicalHistory object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MedicalHistoryMutation) OldSurgicalBackground(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSurgicalBackground is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSurgicalBackground requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSurgicalBackground: %w", err)
	}
	return oldValue.SurgicalBackground, nil
}

// ClearSurgicalBackground clears the value of the "surgical_background" field.
func (m *MedicalHistoryMutation) ClearSurgicalBackground() {
	m.surgical_background = nil
	m.clearedFields[medicalhistory.FieldSurgicalBackground] = struct{}{}
}

// SurgicalBackgroundCleared returns if the "surgical_background" field was cleared in this mutation.
func (m *MedicalHistoryMutation) SurgicalBackgroundCleared() bool {
	_, ok := m.clearedFields[medicalhistory.FieldSurgicalBackground]
	return ok
}

// ResetSurgicalBackground resets all changes to the "surgical_background" field.
func (m *MedicalHistoryMutation) ResetSurgicalBackground() {
	m.surgical_background = nil
	delete(m.clearedFields, medicalhistory.FieldSurgicalBackground)
}

// SetPersonalBackground sets the "personal_background" field.
func (m *MedicalHistoryMutation) SetPersonalBackground(s string) {
	m.personal_background = &s
}

// PersonalBackground returns the value of the "personal_background" field in the mutation.
func (m *MedicalHistoryMutation) PersonalBackground() (r string, exists bool) {
	v := m.personal_background
	if v == nil {
		return
	}
	return *v, true
}

// OldPersonalBackground returns the old "personal_background" field's value of the MedicalHistory entity.
// If the MedicalHistory object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MedicalHistoryMutation) OldPersonalBackground(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPersonalBackground is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPersonalBackground requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPersonalBackground: %w", err)
	}
	return oldValue.PersonalBackground, nil
}

// ClearPersonalBackground clears the value of the "personal_background" field.
func (m *MedicalHistoryMutation) ClearPersonalBackground() {
	m.personal_background = nil
	m.clearedFields[medicalhistory.FieldPersonalBackground] = struct{}{}
}

// PersonalBackgroundCleared returns if the "personal_background" field was cleared in this mutation.
func (m *MedicalHistoryMutation) PersonalBackgroundCleared() bool {
	_, ok := m.clearedFields[medicalhistory.FieldPersonalBackground]
	return ok
}

// ResetPersonalBackground resets all changes to the "personal_background" field.
func (m *MedicalHistoryMutation) ResetPersonalBackground() {
	m.personal_background = nil
	delete(m.clearedFields, medicalhistory.FieldPersonalBackground)
}

// SetFamilyBackground sets the "family_background" field.
func (m *MedicalHistoryMutation) SetFamilyBackground(s string) {
	m.family_background = &s
}

// FamilyBackground returns the value of the "family_background" field in the mutation.
func (m *MedicalHistoryMutation) FamilyBackground() (r string, exists bool) {
	v := m.family_background
	if v == nil {
		return
	}
	return *v, true
}

// OldFamilyBackground returns the old "family_background" field's value of the MedicalHistory entity.
// If the MedicalHistory object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MedicalHistoryMutation) OldFamilyBackground(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFamilyBackground is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFamilyBackground requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFamilyBackground: %w", err)
	}
	return oldValue.FamilyBackground, nil
}

// ClearFamilyBackground clears the value of the "family_background" field.
func (m *MedicalHistoryMutation) ClearFamilyBackground() {
	m.family_background = nil
	m.clearedFields[medicalhistory.FieldFamilyBackground] = struct{}{}
}

// FamilyBackgroundCleared returns if the "family_background" field was cleared in this mutation.
func (m *MedicalHistoryMutation) FamilyBackgroundCleared() bool {
	_, ok := m.clearedFields[medicalhistory.FieldFamilyBackground]
	return ok
}

// ResetFamilyBackground resets all changes to the "family_background" field.
func (m *MedicalHistoryMutation) ResetFamilyBackground() {
	m.family_background = nil
	delete(m.clearedFields, medicalhistory.FieldFamilyBackground)
}

// SetGynecologicalBackground sets the "gynecological_background" field.
func (m *MedicalHistoryMutation) SetGynecologicalBackground(s string) {
	m.gynecological_background = &s
}

// GynecologicalBackground returns the value of the "gynecological_background" field in the mutation.
func (m *MedicalHistoryMutation) GynecologicalBackground() (r string, exists bool) {
	v := m.gynecological_background
	if v == nil {
		return
	}
	return *v, true
}

// OldGynecologicalBackground returns the old "gynecological_background" field's value of the MedicalHistory entity.
// If the MedicalHistory object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MedicalHistoryMutation) OldGynecologicalBackground(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldGynecologicalBackground is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldGynecologicalBackground requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldGynecologicalBackground: %w", err)
	}
	return oldValue.GynecologicalBackground, nil
}

// ClearGynecologicalBackground clears the value of the "gynecological_background" field.
func (m *MedicalHistoryMutation) ClearGynecologicalBackground() {
	m.gynecological_background = nil
	m.clearedFields[medicalhistory.FieldGynecologicalBackground] = struct{}{}
}

// GynecologicalBackgroundCleared returns if the "gynecological_background" field was cleared in this mutation.
func (m *MedicalHistoryMutation) GynecologicalBackgroundCleared() bool {
	_, ok := m.clearedFields[medicalhistory.FieldGynecologicalBackground]
	return ok
}

// ResetGynecologicalBackground resets all changes to the "gynecological_background" field.
func (m *MedicalHistoryMutation) ResetGynecologicalBackground() {
	m.gynecological_background = nil
	delete(m.clearedFields, medicalhistory.FieldGynecologicalBackground)
}

// SetPhysicalExam sets the "physical_exam" field.
func (m *MedicalHistoryMutation) SetPhysicalExam(s string) {
	m.physical_exam = &s
}

// PhysicalExam returns the value of the "physical_exam" field in the mutation.
func (m *MedicalHistoryMutation) PhysicalExam() (r string, exists bool) {
	v := m.physical_exam
	if v == nil {
		return
	}
	return *v, true
}

// OldPhysicalExam returns the old "physical_exam" field's value of the MedicalHistory entity.
// If the MedicalHistory object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MedicalHistoryMutation) OldPhysicalExam(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPhysicalExam is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPhysicalExam requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPhysicalExam: %w", err)
	}
	return oldValue.PhysicalExam, nil
}

// ClearPhysicalExam clears the value of the "physical_exam" field.
func (m *MedicalHistoryMutation) ClearPhysicalExam() {
	m.physical_exam = nil
	m.clearedFields[medicalhistory.FieldPhysicalExam] = struct{}{}
}

// PhysicalExamCleared returns if the "physical_exam" field was cleared in this mutation.
func (m *MedicalHistoryMutation) PhysicalExamCleared() bool {
	_, ok := m.clearedFields[medicalhistory.FieldPhysicalExam]
	return ok
}

// ResetPhysicalExam resets all changes to the "physical_exam" field.
func (m *MedicalHistoryMutation) ResetPhysicalExam() {
	m.physical_exam = nil
	delete(m.clearedFields, medicalhistory.FieldPhysicalExam)
}

// SetPhenotype sets the "phenotype" field.
func (m *MedicalHistoryMutation) SetPhenotype(s string) {
	m.phenotype = &s
}

// Phenotype returns the value of the "phenotype" field in the mutation.
func (m *MedicalHistoryMutation) Phenotype() (r string, exists bool) {
	v := m.phenotype
	if v == nil {
		return
	}
	return *v, true
}

// OldPhenotype returns the old "phenotype" field's value of the MedicalHistory entity.
// If the MedicalHistory object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MedicalHistoryMutation) OldPhenotype(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPhenotype is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPhenotype requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPhenotype: %w", err)
	}
	return oldValue.Phenotype, nil
}

// ClearPhenotype clears the value of the "phenotype" field.
func (m *MedicalHistoryMutation) ClearPhenotype() {
	m.phenotype = nil
	m.clearedFields[medicalhistory.FieldPhenotype] = struct{}{}
}

// PhenotypeCleared returns if the "phenotype" field was cleared in this mutation.
func (m *MedicalHistoryMutation) PhenotypeCleared() bool {
	_, ok := m.clearedFields[medicalhistory.FieldPhenotype]
	return ok
}

// ResetPhenotype resets all changes to the "phenotype" field.
func (m *MedicalHistoryMutation) ResetPhenotype() {
	m.phenotype = nil
	delete(m.clearedFields, medicalhistory.FieldPhenotype)
}

// ClearPatient clears the "patient" edge to the Patient entity.
func (m *MedicalHistoryMutation) ClearPatient() {
	m.clearedpatient = true
	m.clearedFields[medicalhistory.FieldPatientID] = struct{}{}
}

// PatientCleared reports if the "patient" edge to the Patient entity was cleared.
func (m *MedicalHistoryMutation) PatientCleared() bool {
	return m.clearedpatient
}

// PatientIDs returns the "patient" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// PatientID instead. It exists only for internal usage by the builders.
func (m *MedicalHistoryMutation) PatientIDs() (ids []uuid.UUID) {
	if id := m.patient; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetPatient resets all changes to the "patient" edge.
func (m *MedicalHistoryMutation) ResetPatient() {
	m.patient = nil
	m.clearedpatient = false
}

// Where appends a list predicates to the MedicalHistoryMutation builder.
func (m *MedicalHistoryMutation) Where(ps ...predicate.MedicalHistory) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the MedicalHistoryMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *MedicalHistoryMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.MedicalHistory, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *MedicalHistoryMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *MedicalHistoryMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (MedicalHistory).
func (m *MedicalHistoryMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *MedicalHistoryMutation) Fields() []string {
	fields := make([]string, 0, 10)
	if m.created_at != nil {
		fields = append(fields, medicalhistory.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, medicalhistory.FieldUpdatedAt)
	}
	if m.patient != nil {
		fields = append(fields, medicalhistory.FieldPatientID)
	}
	if m.clinical_background != nil {
		fields = append(fields, medicalhistory.FieldClinicalBackground)
	}
	if m.surgical_background != nil {
		fields = append(fields, medicalhistory.FieldSurgicalBackground)
	}
	if m.personal_background != nil {
		fields = append(fields, medicalhistory.FieldPersonalBackground)
	}
	if m.family_background != nil {
		fields = append(fields, medicalhistory.FieldFamilyBackground)
	}
	if m.gynecological_background != nil {
		fields = append(fields, medicalhistory.FieldGynecologicalBackground)
	}
	if m.physical_exam != nil {
		fields = append(fields, medicalhistory.FieldPhysicalExam)
	}
	if m.phenotype != nil {
		fields = append(fields, medicalhistory.FieldPhenotype)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *MedicalHistoryMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case medicalhistory.FieldCreatedAt:
		return m.CreatedAt()
	case medicalhistory.FieldUpdatedAt:
		return m.UpdatedAt()
	case medicalhistory.FieldPatientID:
		return m.PatientID()
	case medicalhistory.FieldClinicalBackground:
		return m.ClinicalBackground()
	case medicalhistory.FieldSurgicalBackground:
		return m.SurgicalBackground()
	case medicalhistory.FieldPersonalBackground:
		return m.PersonalBackground()
	case medicalhistory.FieldFamilyBackground:
		return m.FamilyBackground()
	case medicalhistory.FieldGynecologicalBackground:
		return m.GynecologicalBackground()
	case medicalhistory.FieldPhysicalExam:
		return m.PhysicalExam()
	case medicalhistory.FieldPhenotype:
		return m.Phenotype()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *MedicalHistoryMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case medicalhistory.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case medicalhistory.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case medicalhistory.FieldPatientID:
		return m.OldPatientID(ctx)
	case medicalhistory.FieldClinicalBackground:
		return m.OldClinicalBackground(ctx)
	case medicalhistory.FieldSurgicalBackground:
		return m.OldSurgicalBackground(ctx)
	case medicalhistory.FieldPersonalBackground:
		return m.OldPersonalBackground(ctx)
	case medicalhistory.FieldFamilyBackground:
		return m.OldFamilyBackground(ctx)
	case medicalhistory.FieldGynecologicalBackground:
		return m.OldGynecologicalBackground(ctx)
	case medicalhistory.FieldPhysicalExam:
		return m.OldPhysicalExam(ctx)
	case medicalhistory.FieldPhenotype:
		return m.OldPhenotype(ctx)
	}
	return nil, fmt.Errorf("unknown MedicalHistory field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *MedicalHistoryMutation) SetField(name string, value ent.Value) error {
	switch name {
	case medicalhistory.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case medicalhistory.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case medicalhistory.FieldPatientID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPatientID(v)
		return nil
	case medicalhistory.FieldClinicalBackground:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetClinicalBackground(v)
		return nil
	case medicalhistory.FieldSurgicalBackground:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSurgicalBackground(v)
		return nil
	case medicalhistory.FieldPersonalBackground:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPersonalBackground(v)
		return nil
	case medicalhistory.FieldFamilyBackground:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFamilyBackground(v)
		return nil
	case medicalhistory.FieldGynecologicalBackground:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetGynecologicalBackground(v)
		return nil
	case medicalhistory.FieldPhysicalExam:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPhysicalExam(v)
		return nil
	case medicalhistory.FieldPhenotype:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPhenotype(v)
		return nil
	}
	return fmt.Errorf("unknown MedicalHistory field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *MedicalHistoryMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *MedicalHistoryMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *MedicalHistoryMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown MedicalHistory numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *MedicalHistoryMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(medicalhistory.FieldClinicalBackground) {
		fields = append(fields, medicalhistory.FieldClinicalBackground)
	}
	if m.FieldCleared(medicalhistory.FieldSurgicalBackground) {
		fields = append(fields, medicalhistory.FieldSurgicalBackground)
	}
	if m.FieldCleared(medicalhistory.FieldPersonalBackground) {
		fields = append(fields, medicalhistory.FieldPersonalBackground)
	}
	if m.FieldCleared(medicalhistory.FieldFamilyBackground) {
		fields = append(fields, medicalhistory.FieldFamilyBackground)
	}
	if m.FieldCleared(medicalhistory.FieldGynecologicalBackground) {
		fields = append(fields, medicalhistory.FieldGynecologicalBackground)
	}
	if m.FieldCleared(medicalhistory.FieldPhysicalExam) {
		fields = append(fields, medicalhistory.FieldPhysicalExam)
	}
	if m.FieldCleared(medicalhistory.FieldPhenotype) {
		fields = append(fields, medicalhistory.FieldPhenotype)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *MedicalHistoryMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *MedicalHistoryMutation) ClearField(name string) error {
	switch name {
	case medicalhistory.FieldClinicalBackground:
		m.ClearClinicalBackground()
		return nil
	case medicalhistory.FieldSurgicalBackground:
		m.ClearSurgicalBackground()
		return nil
	case medicalhistory.FieldPersonalBackground:
		m.ClearPersonalBackground()
		return nil
	case medicalhistory.FieldFamilyBackground:
		m.ClearFamilyBackground()
		return nil
	case medicalhistory.FieldGynecologicalBackground:
		m.ClearGynecologicalBackground()
		return nil
	case medicalhistory.FieldPhysicalExam:
		m.ClearPhysicalExam()
		return nil
	case medicalhistory.FieldPhenotype:
		m.ClearPhenotype()
		return nil
	}
	return fmt.Errorf("unknown MedicalHistory nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *MedicalHistoryMutation) ResetField(name string) error {
	switch name {
	case medicalhistory.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case medicalhistory.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case medicalhistory.FieldPatientID:
		m.ResetPatientID()
		return nil
	case medicalhistory.FieldClinicalBackground:
		m.ResetClinicalBackground()
		return nil
	case medicalhistory.FieldSurgicalBackground:
		m.ResetSurgicalBackground()
		return nil
	case medicalhistory.FieldPersonalBackground:
		m.ResetPersonalBackground()
		return nil
	case medicalhistory.FieldFamilyBackground:
		m.ResetFamilyBackground()
		return nil
	case medicalhistory.FieldGynecologicalBackground:
		m.ResetGynecologicalBackground()
		return nil
	case medicalhistory.FieldPhysicalExam:
		m.ResetPhysicalExam()
		return nil
	case medicalhistory.FieldPhenotype:
		m.ResetPhenotype()
		return nil
	}
	return fmt.Errorf("unknown MedicalHistory field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *MedicalHistoryMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.patient != nil {
		edges = append(edges, medicalhistory.EdgePatient)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *MedicalHistoryMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case medicalhistory.EdgePatient:
		if id := m.patient; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *MedicalHistoryMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *MedicalHistoryMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *MedicalHistoryMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedpatient {
		edges = append(edges, medicalhistory.EdgePatient)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *MedicalHistoryMutation) EdgeCleared(name string) bool {
	switch name {
	case medicalhistory.EdgePatient:
		return m.clearedpatient
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *MedicalHistoryMutation) ClearEdge(name string) error {
	switch name {
	case medicalhistory.EdgePatient:
		m.ClearPatient()
		return nil
	}
	return fmt.Errorf("unknown MedicalHistory unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *MedicalHistoryMutation) ResetEdge(name string) error {
	switch name {
	case medicalhistory.EdgePatient:
		m.ResetPatient()
		return nil
	}
	return fmt.Errorf("unknown MedicalHistory edge %s", name)
}

// MedicalOrderMutation represents an operation that mutates the MedicalOrder nodes in the graph.
type MedicalOrderMutation struct {
	config
	op               Op
	typ              string
	id               *uuid.UUID
	created_at       *time.Time
	order_type       *string
	description      *string
	clearedFields    map[string]struct{}
	treatment        *uuid.UUID
	clearedtreatment bool
	done             bool
	oldValue         func(context.Context) (*MedicalOrder, error)
	predicates       []predicate.MedicalOrder
}

var _ ent.Mutation = (*MedicalOrderMutation)(nil)

// medicalorderOption allows management of the mutation configuration using functional options.
type medicalorderOption func(*MedicalOrderMutation)

// newMedicalOrderMutation creates new mutation for the MedicalOrder entity.
func newMedicalOrderMutation(c config, op Op, opts ...medicalorderOption) *MedicalOrderMutation {
	m := &MedicalOrderMutation{
		config:        c,
		op:            op,
		typ:           TypeMedicalOrder,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withMedicalOrderID sets the ID field of the mutation.
func withMedicalOrderID(id uuid.UUID) medicalorderOption {
	return func(m *MedicalOrderMutation) {
		var (
			err   error
			once  sync.Once
			value *MedicalOrder
		)
		m.oldValue = func(ctx context.Context) (*MedicalOrder, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().MedicalOrder.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withMedicalOrder sets the old MedicalOrder of the mutation.
func withMedicalOrder(node *MedicalOrder) medicalorderOption {
	return func(m *MedicalOrderMutation) {
		m.oldValue = func(context.Context) (*MedicalOrder, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m MedicalOrderMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m MedicalOrderMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("repo: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of MedicalOrder entities.
func (m *MedicalOrderMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *MedicalOrderMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *MedicalOrderMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().MedicalOrder.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *MedicalOrderMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *MedicalOrderMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the MedicalOrder entity.
// If the MedicalOrder object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MedicalOrderMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *MedicalOrderMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetTreatmentID sets the "treatment_id" field.
func (m *MedicalOrderMutation) SetTreatmentID(u uuid.UUID) {
	m.treatment = &u
}

// TreatmentID returns the value of the "treatment_id" field in the mutation.
func (m *MedicalOrderMutation) TreatmentID() (r uuid.UUID, exists bool) {
	v := m.treatment
	if v == nil {
		return
	}
	return *v, true
}

// OldTreatmentID returns the old "treatment_id" field's value of the MedicalOrder entity.
// If the MedicalOrder object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MedicalOrderMutation) OldTreatmentID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTreatmentID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTreatmentID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTreatmentID: %w", err)
	}
	return oldValue.TreatmentID, nil
}

// ResetTreatmentID resets all changes to the "treatment_id" field.
func (m *MedicalOrderMutation) ResetTreatmentID() {
	m.treatment = nil
}

// SetOrderType sets the "order_type" field.
func (m *MedicalOrderMutation) SetOrderType(s string) {
	m.order_type = &s
}

// OrderType returns the value of the "order_type" field in the mutation.
func (m *MedicalOrderMutation) OrderType() (r string, exists bool) {
	v := m.order_type
	if v == nil {
		return
	}
	return *v, true
}

// OldOrderType returns the old "order_type" field's value of the MedicalOrder entity.
// If the MedicalOrder object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MedicalOrderMutation) OldOrderType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOrderType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOrderType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOrderType: %w", err)
	}
	return oldValue.OrderType, nil
}

// ResetOrderType resets all changes to the "order_type" field.
func (m *MedicalOrderMutation) ResetOrderType() {
	m.order_type = nil
}

// SetDescription sets the "description" field.
func (m *MedicalOrderMutation) SetDescription(s string) {
	m.description = &s
}

// Description returns the value of the "description" field in the mutation.
func (m *MedicalOrderMutation) Description() (r string, exists bool) {
	v := m.description
	if v == nil {
		return
	}
	return *v, true
}

// OldDescription returns the old "description" field's value of the MedicalOrder entity.
// If the MedicalOrder object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MedicalOrderMutation) OldDescription(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDescription is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDescription requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDescription: %w", err)
	}
	return oldValue.Description, nil
}

// ResetDescription resets all changes to the "description" field.
func (m *MedicalOrderMutation) ResetDescription() {
	m.description = nil
}

// ClearTreatment clears the "treatment" edge to the Treatment entity.
func (m *MedicalOrderMutation) ClearTreatment() {
	m.clearedtreatment = true
	m.clearedFields[medicalorder.FieldTreatmentID] = struct{}{}
}

// TreatmentCleared reports if the "treatment" edge to the Treatment entity was cleared.
func (m *MedicalOrderMutation) TreatmentCleared() bool {
	return m.clearedtreatment
}

// TreatmentIDs returns the "treatment" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// TreatmentID instead. It exists only for internal usage by the builders.
func (m *MedicalOrderMutation) TreatmentIDs() (ids []uuid.UUID) {
	if id := m.treatment; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetTreatment resets all changes to the "treatment" edge.
func (m *MedicalOrderMutation) ResetTreatment() {
	m.treatment = nil
	m.clearedtreatment = false
}

// Where appends a list predicates to the MedicalOrderMutation builder.
func (m *MedicalOrderMutation) Where(ps ...predicate.MedicalOrder) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the MedicalOrderMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *MedicalOrderMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.MedicalOrder, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *MedicalOrderMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *MedicalOrderMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (MedicalOrder).
func (m *MedicalOrderMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *MedicalOrderMutation) Fields() []string {
	fields := make([]string, 0, 4)
	if m.created_at != nil {
		fields = append(fields, medicalorder.FieldCreatedAt)
	}
	if m.treatment != nil {
		fields = append(fields, medicalorder.FieldTreatmentID)
	}
	if m.order_type != nil {
		fields = append(fields, medicalorder.FieldOrderType)
	}
	if m.description != nil {
		fields = append(fields, medicalorder.FieldDescription)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *MedicalOrderMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case medicalorder.FieldCreatedAt:
		return m.CreatedAt()
	case medicalorder.FieldTreatmentID:
		return m.TreatmentID()
	case medicalorder.FieldOrderType:
		return m.OrderType()
	case medicalorder.FieldDescription:
		return m.Description()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *MedicalOrderMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case medicalorder.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case medicalorder.FieldTreatmentID:
		return m.OldTreatmentID(ctx)
	case medicalorder.FieldOrderType:
		return m.OldOrderType(ctx)
	case medicalorder.FieldDescription:
		return m.OldDescription(ctx)
	}
	return nil, fmt.Errorf("unknown MedicalOrder field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *MedicalOrderMutation) SetField(name string, value ent.Value) error {
	switch name {
	case medicalorder.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case medicalorder.FieldTreatmentID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTreatmentID(v)
		return nil
	case medicalorder.FieldOrderType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOrderType(v)
		return nil
	case medicalorder.FieldDescription:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDescription(v)
		return nil
	}
	return fmt.Errorf("unknown MedicalOrder field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *MedicalOrderMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *MedicalOrderMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *MedicalOrderMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown MedicalOrder numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *MedicalOrderMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *MedicalOrderMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *MedicalOrderMutation) ClearField(name string) error {
	return fmt.Errorf("unknown MedicalOrder nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *MedicalOrderMutation) ResetField(name string) error {
	switch name {
	case medicalorder.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case medicalorder.FieldTreatmentID:
		m.ResetTreatmentID()
		return nil
	case medicalorder.FieldOrderType:
		m.ResetOrderType()
		return nil
	case medicalorder.FieldDescription:
		m.ResetDescription()
		return nil
	}
	return fmt.Errorf("unknown MedicalOrder field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *MedicalOrderMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.treatment != nil {
		edges = append(edges, medicalorder.EdgeTreatment)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *MedicalOrderMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case medicalorder.EdgeTreatment:
		if id := m.treatment; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *MedicalOrderMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *MedicalOrderMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *MedicalOrderMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedtreatment {
		edges = append(edges, medicalorder.EdgeTreatment)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *MedicalOrderMutation) EdgeCleared(name string) bool {
	switch name {
	case medicalorder.EdgeTreatment:
		return m.clearedtreatment
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *MedicalOrderMutation) ClearEdge(name string) error {
	switch name {
	case medicalorder.EdgeTreatment:
		m.ClearTreatment()
		return nil
	}
	return fmt.Errorf("unknown MedicalOrder unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *MedicalOrderMutation) ResetEdge(name string) error {
	switch name {
	case medicalorder.EdgeTreatment:
		m.ResetTreatment()
		return nil
	}
	return fmt.Errorf("unknown MedicalOrder edge %s", name)
}

// MonitoringDayMutation represents an operation that mutates the MonitoringDay nodes in the graph.
type MonitoringDayMutation struct {
	config
	op               Op
	typ              string
	id               *uuid.UUID
	created_at       *time.Time
	updated_at       *time.Time
	date             *time.Time
	notes            *string
	completed        *bool
	clearedFields    map[string]struct{}
	treatment        *uuid.UUID
	clearedtreatment bool
	done             bool
	oldValue         func(context.Context) (*MonitoringDay, error)
	predicates       []predicate.MonitoringDay
}

var _ ent.Mutation = (*MonitoringDayMutation)(nil)

// monitoringdayOption allows management of the mutation configuration using functional options.
type monitoringdayOption func(*MonitoringDayMutation)

// newMonitoringDayMutation creates new mutation for the MonitoringDay entity.
func newMonitoringDayMutation(c config, op Op, opts ...monitoringdayOption) *MonitoringDayMutation {
	m := &MonitoringDayMutation{
		config:        c,
		op:            op,
		typ:           TypeMonitoringDay,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withMonitoringDayID sets the ID field of the mutation.
func withMonitoringDayID(id uuid.UUID) monitoringdayOption {
	return func(m *MonitoringDayMutation) {
		var (
			err   error
			once  sync.Once
			value *MonitoringDay
		)
		m.oldValue = func(ctx context.Context) (*MonitoringDay, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().MonitoringDay.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withMonitoringDay sets the old MonitoringDay of the mutation.
func withMonitoringDay(node *MonitoringDay) monitoringdayOption {
	return func(m *MonitoringDayMutation) {
		m.oldValue = func(context.Context) (*MonitoringDay, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m MonitoringDayMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m MonitoringDayMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("repo: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of MonitoringDay entities.
func (m *MonitoringDayMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *MonitoringDayMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *MonitoringDayMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().MonitoringDay.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *MonitoringDayMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *MonitoringDayMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the MonitoringDay entity.
// If the MonitoringDay object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MonitoringDayMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *MonitoringDayMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *MonitoringDayMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *MonitoringDayMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the MonitoringDay entity.
// If the MonitoringDay object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MonitoringDayMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *MonitoringDayMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetTreatmentID sets the "treatment_id" field.
func (m *MonitoringDayMutation) SetTreatmentID(u uuid.UUID) {
	m.treatment = &u
}

// TreatmentID returns the value of the "treatment_id" field in the mutation.
func (m *MonitoringDayMutation) TreatmentID() (r uuid.UUID, exists bool) {
	v := m.treatment
	if v == nil {
		return
	}
	return *v, true
}

// OldTreatmentID returns the old "treatment_id" field's value of the MonitoringDay entity.
// If the MonitoringDay object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MonitoringDayMutation) OldTreatmentID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTreatmentID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTreatmentID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTreatmentID: %w", err)
	}
	return oldValue.TreatmentID, nil
}

// ResetTreatmentID resets all changes to the "treatment_id" field.
func (m *MonitoringDayMutation) ResetTreatmentID() {
	m.treatment = nil
}

// SetDate sets the "date" field.
func (m *MonitoringDayMutation) SetDate(t time.Time) {
	m.date = &t
}

// Date returns the value of the "date" field in the mutation.
func (m *MonitoringDayMutation) Date() (r time.Time, exists bool) {
	v := m.date
	if v == nil {
		return
	}
	return *v, true
}

// OldDate returns the old "date" field's value of the MonitoringDay entity.
// If the MonitoringDay object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MonitoringDayMutation) OldDate(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDate: %w", err)
	}
	return oldValue.Date, nil
}

// ResetDate resets all changes to the "date" field.
func (m *MonitoringDayMutation) ResetDate() {
	m.date = nil
}

// SetNotes sets the "notes" field.
func (m *MonitoringDayMutation) SetNotes(s string) {
	m.notes = &s
}

// Notes returns the value of the "notes" field in the mutation.
func (m *MonitoringDayMutation) Notes() (r string, exists bool) {
	v := m.notes
	if v == nil {
		return
	}
	return *v, true
}

// OldNotes returns the old "notes" field's value of the MonitoringDay entity.
// If the MonitoringDay object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MonitoringDayMutation) OldNotes(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNotes is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNotes requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNotes: %w", err)
	}
	return oldValue.Notes, nil
}

// ClearNotes clears the value of the "notes" field.
func (m *MonitoringDayMutation) ClearNotes() {
	m.notes = nil
	m.clearedFields[monitoringday.FieldNotes] = struct{}{}
}

// NotesCleared returns if the "notes" field was cleared in this mutation.
func (m *MonitoringDayMutation) NotesCleared() bool {
	_, ok := m.clearedFields[monitoringday.FieldNotes]
	return ok
}

// ResetNotes resets all changes to the "notes" field.
func (m *MonitoringDayMutation) ResetNotes() {
	m.notes = nil
	delete(m.clearedFields, monitoringday.FieldNotes)
}

// SetCompleted sets the "completed" field.
func (m *MonitoringDayMutation) SetCompleted(b bool) {
	m.completed = &b
}

// Completed returns the value of the "completed" field in the mutation.
func (m *MonitoringDayMutation) Completed() (r bool, exists bool) {
	v := m.completed
	if v == nil {
		return
	}
	return *v, true
}

// OldCompleted returns the old "completed" field's value of the MonitoringDay entity.
// If the MonitoringDay object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MonitoringDayMutation) OldCompleted(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompleted is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompleted requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompleted: %w", err)
	}
	return oldValue.Completed, nil
}

// ResetCompleted resets all changes to the "completed" field.
func (m *MonitoringDayMutation) ResetCompleted() {
	m.completed = nil
}

// ClearTreatment clears the "treatment" edge to the Treatment entity.
func (m *MonitoringDayMutation) ClearTreatment() {
	m.clearedtreatment = true
	m.clearedFields[monitoringday.FieldTreatmentID] = struct{}{}
}

// TreatmentCleared reports if the "treatment" edge to the Treatment entity was cleared.
func (m *MonitoringDayMutation) TreatmentCleared() bool {
	return m.clearedtreatment
}

// TreatmentIDs returns the "treatment" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// TreatmentID instead. It exists only for internal usage by the builders.
func (m *MonitoringDayMutation) TreatmentIDs() (ids []uuid.UUID) {
	if id := m.treatment; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetTreatment resets all changes to the "treatment" edge.
func (m *MonitoringDayMutation) ResetTreatment() {
	m.treatment = nil
	m.clearedtreatment = false
}

// Where appends a list predicates to the MonitoringDayMutation builder.
func (m *MonitoringDayMutation) Where(ps ...predicate.MonitoringDay) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the MonitoringDayMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *MonitoringDayMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.MonitoringDay, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *MonitoringDayMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *MonitoringDayMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (MonitoringDay).
func (m *MonitoringDayMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *MonitoringDayMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.created_at != nil {
		fields = append(fields, monitoringday.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, monitoringday.FieldUpdatedAt)
	}
	if m.treatment != nil {
		fields = append(fields, monitoringday.FieldTreatmentID)
	}
	if m.date != nil {
		fields = append(fields, monitoringday.FieldDate)
	}
	if m.notes != nil {
		fields = append(fields, monitoringday.FieldNotes)
	}
	if m.completed != nil {
		fields = append(fields, monitoringday.FieldCompleted)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *MonitoringDayMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case monitoringday.FieldCreatedAt:
		return m.CreatedAt()
	case monitoringday.FieldUpdatedAt:
		return m.UpdatedAt()
	case monitoringday.FieldTreatmentID:
		return m.TreatmentID()
	case monitoringday.FieldDate:
		return m.Date()
	case monitoringday.FieldNotes:
		return m.Notes()
	case monitoringday.FieldCompleted:
		return m.Completed()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *MonitoringDayMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case monitoringday.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case monitoringday.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case monitoringday.FieldTreatmentID:
		return m.OldTreatmentID(ctx)
	case monitoringday.FieldDate:
		return m.OldDate(ctx)
	case monitoringday.FieldNotes:
		return m.OldNotes(ctx)
	case monitoringday.FieldCompleted:
		return m.OldCompleted(ctx)
	}
	return nil, fmt.Errorf("unknown MonitoringDay field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *MonitoringDayMutation) SetField(name string, value ent.Value) error {
	switch name {
	case monitoringday.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case monitoringday.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case monitoringday.FieldTreatmentID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTreatmentID(v)
		return nil
	case monitoringday.FieldDate:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDate(v)
		return nil
	case monitoringday.FieldNotes:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNotes(v)
		return nil
	case monitoringday.FieldCompleted:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompleted(v)
		return nil
	}
	return fmt.Errorf("unknown MonitoringDay field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *MonitoringDayMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *MonitoringDayMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *MonitoringDayMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown MonitoringDay numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *MonitoringDayMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(monitoringday.FieldNotes) {
		fields = append(fields, monitoringday.FieldNotes)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *MonitoringDayMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *MonitoringDayMutation) ClearField(name string) error {
	switch name {
	case monitoringday.FieldNotes:
		m.ClearNotes()
		return nil
	}
	return fmt.Errorf("unknown MonitoringDay nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *MonitoringDayMutation) ResetField(name string) error {
	switch name {
	case monitoringday.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case monitoringday.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case monitoringday.FieldTreatmentID:
		m.ResetTreatmentID()
		return nil
	case monitoringday.FieldDate:
		m.ResetDate()
		return nil
	case monitoringday.FieldNotes:
		m.ResetNotes()
		return nil
	case monitoringday.FieldCompleted:
		m.ResetCompleted()
		return nil
	}
	return fmt.Errorf("unknown MonitoringDay field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *MonitoringDayMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.treatment != nil {
		edges = append(edges, monitoringday.EdgeTreatment)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *MonitoringDayMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case monitoringday.EdgeTreatment:
		if id := m.treatment; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *MonitoringDayMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *MonitoringDayMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *MonitoringDayMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedtreatment {
		edges = append(edges, monitoringday.EdgeTreatment)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *MonitoringDayMutation) EdgeCleared(name string) bool {
	switch name {
	case monitoringday.EdgeTreatment:
		return m.clearedtreatment
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *MonitoringDayMutation) ClearEdge(name string) error {
	switch name {
	case monitoringday.EdgeTreatment:
		m.ClearTreatment()
		return nil
	}
	return fmt.Errorf("unknown MonitoringDay unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *MonitoringDayMutation) ResetEdge(name string) error {
	switch name {
	case monitoringday.EdgeTreatment:
		m.ResetTreatment()
		return nil
	}
	return fmt.Errorf("unknown MonitoringDay edge %s", name)
}

// OocyteMutation represents an operation that mutates the Oocyte nodes in the graph.
type OocyteMutation struct {
	config
	op                       Op
	typ                      string
	id                       *uuid.UUID
	created_at               *time.Time
	updated_at               *time.Time
	oocyte_code              *string
	initial_state            *oocyte.InitialState
	current_state            *oocyte.CurrentState
	maturation_time_hours    *int
	addmaturation_time_hours *int
	discard_reason           *string
	nitrogen_tube            *string
	rack_number              *string
	clearedFields            map[string]struct{}
	puncture                 *uuid.UUID
	clearedpuncture          bool
	state_history            map[uuid.UUID]struct{}
	removedstate_history     map[uuid.UUID]struct{}
	clearedstate_history     bool
	embryo                   *uuid.UUID
	clearedembryo            bool
	done                     bool
	oldValue                 func(context.Context) (*Oocyte, error)
	predicates               []predicate.Oocyte
}

var _ ent.Mutation = (*OocyteMutation)(nil)

// oocyteOption allows management of the mutation configuration using functional options.
type oocyteOption func(*OocyteMutation)

// newOocyteMutation creates new mutation for the Oocyte entity.
func newOocyteMutation(c config, op Op, opts ...oocyteOption) *OocyteMutation {
	m := &OocyteMutation{
		config:        c,
		op:            op,
		typ:           TypeOocyte,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withOocyteID sets the ID field of the mutation.
func withOocyteID(id uuid.UUID) oocyteOption {
	return func(m *OocyteMutation) {
		var (
			err   error
			once  sync.Once
			value *Oocyte
		)
		m.oldValue = func(ctx context.Context) (*Oocyte, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Oocyte.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withOocyte sets the old Oocyte of the mutation.
func withOocyte(node *Oocyte) oocyteOption {
	return func(m *OocyteMutation) {
		m.oldValue = func(context.Context) (*Oocyte, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m OocyteMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m OocyteMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("repo: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Oocyte entities.
func (m *OocyteMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *OocyteMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *OocyteMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Oocyte.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *OocyteMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *OocyteMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Oocyte entity.
// If the Oocyte object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OocyteMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *OocyteMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *OocyteMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *OocyteMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Oocyte entity.
// If the Oocyte object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OocyteMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *OocyteMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetPunctureID sets the "puncture_id" field.
func (m *OocyteMutation) SetPunctureID(u uuid.UUID) {
	m.puncture = &u
}

// PunctureID returns the value of the "puncture_id" field in the mutation.
func (m *OocyteMutation) PunctureID() (r uuid.UUID, exists bool) {
	v := m.puncture
	if v == nil {
		return
	}
	return *v, true
}

// OldPunctureID returns the old "puncture_id" field's value of the Oocyte entity.
// If the Oocyte object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OocyteMutation) OldPunctureID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPunctureID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPunctureID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPunctureID: %w", err)
	}
	return oldValue.PunctureID, nil
}

// ResetPunctureID resets all changes to the "puncture_id" field.
func (m *OocyteMutation) ResetPunctureID() {
	m.puncture = nil
}

// SetOocyteCode sets the "oocyte_code" field.
func (m *OocyteMutation) SetOocyteCode(s string) {
	m.oocyte_code = &s
}

// OocyteCode returns the value of the "oocyte_code" field in the mutation.
func (m *OocyteMutation) OocyteCode() (r string, exists bool) {
	v := m.oocyte_code
	if v == nil {
		return
	}
	return *v, true
}

// OldOocyteCode returns the old "oocyte_code" field's value of the Oocyte entity.
// If the Oocyte object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OocyteMutation) OldOocyteCode(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOocyteCode is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOocyteCode requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOocyteCode: %w", err)
	}
	return oldValue.OocyteCode, nil
}

// ResetOocyteCode resets all changes to the "oocyte_code" field.
func (m *OocyteMutation) ResetOocyteCode() {
	m.oocyte_code = nil
}

// SetInitialState sets the "initial_state" field.
func (m *OocyteMutation) SetInitialState(os oocyte.InitialState) {
	m.initial_state = &os
}

// InitialState returns the value of the "initial_state" field in the mutation.
func (m *OocyteMutation) InitialState() (r oocyte.InitialState, exists bool) {
	v := m.initial_state
	if v == nil {
		return
	}
	return *v, true
}

// OldInitialState returns the old "initial_state" field's value of the Oocyte entity.
// If the Oocyte object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OocyteMutation) OldInitialState(ctx context.Context) (v oocyte.InitialState, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldInitialState is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldInitialState requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldInitialState: %w", err)
	}
	return oldValue.InitialState, nil
}

// ResetInitialState resets all changes to the "initial_state" field.
func (m *OocyteMutation) ResetInitialState() {
	m.initial_state = nil
}

// SetCurrentState sets the "current_state" field.
func (m *OocyteMutation) SetCurrentState(os oocyte.CurrentState) {
	m.current_state = &os
}

// CurrentState returns the value of the "current_state" field in the mutation.
func (m *OocyteMutation) CurrentState() (r oocyte.CurrentState, exists bool) {
	v := m.current_state
	if v == nil {
		return
	}
	return *v, true
}

// OldCurrentState returns the old "current_state" field's value of the Oocyte entity.
// If the Oocyte object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OocyteMutation) OldCurrentState(ctx context.Context) (v oocyte.CurrentState, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCurrentState is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCurrentState requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCurrentState: %w", err)
	}
	return oldValue.CurrentState, nil
}

// ResetCurrentState resets all changes to the "current_state" field.
func (m *OocyteMutation) ResetCurrentState() {
	m.current_state = nil
}

// SetMaturationTimeHours sets the "maturation_time_hours" field.
func (m *OocyteMutation) SetMaturationTimeHours(i int) {
	m.maturation_time_hours = &i
	m.addmaturation_time_hours = nil
}

// MaturationTimeHours returns the value of the "maturation_time_hours" field in the mutation.
func (m *OocyteMutation) MaturationTimeHours() (r int, exists bool) {
	v := m.maturation_time_hours
	if v == nil {
		return
	}
	return *v, true
}

// OldMaturationTimeHours returns the old "maturation_time_hours" field's value of the Oocyte entity.
// If the Oocyte object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OocyteMutation) OldMaturationTimeHours(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMaturationTimeHours is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMaturationTimeHours requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMaturationTimeHours: %w", err)
	}
	return oldValue.MaturationTimeHours, nil
}

// AddMaturationTimeHours adds i to the "maturation_time_hours" field.
func (m *OocyteMutation) AddMaturationTimeHours(i int) {
	if m.addmaturation_time_hours != nil {
		*m.addmaturation_time_hours += i
	} else {
		m.addmaturation_time_hours = &i
	}
}

// AddedMaturationTimeHours returns the value that was added to the "maturation_time_hours" field in this mutation.
func (m *OocyteMutation) AddedMaturationTimeHours() (r int, exists bool) {
	v := m.addmaturation_time_hours
	if v == nil {
		return
	}
	return *v, true
}

// ClearMaturationTimeHours clears the value of the "maturation_time_hours" field.
func (m *OocyteMutation) ClearMaturationTimeHours() {
	m.maturation_time_hours = nil
	m.addmaturation_time_hours = nil
	m.clearedFields[oocyte.FieldMaturationTimeHours] = struct{}{}
}

// MaturationTimeHoursCleared returns if the "maturation_time_hours" field was cleared in this mutation.
func (m *OocyteMutation) MaturationTimeHoursCleared() bool {
	_, ok := m.clearedFields[oocyte.FieldMaturationTimeHours]
	return ok
}

// ResetMaturationTimeHours resets all changes to the "maturation_time_hours" field.
func (m *OocyteMutation) ResetMaturationTimeHours() {
	m.maturation_time_hours = nil
	m.addmaturation_time_hours = nil
	delete(m.clearedFields, oocyte.FieldMaturationTimeHours)
}

// SetDiscardReason sets the "discard_reason" field.
func (m *OocyteMutation) SetDiscardReason(s string) {
	m.discard_reason = &s
}

// DiscardReason returns the value of the "discard_reason" field in the mutation.
func (m *OocyteMutation) DiscardReason() (r string, exists bool) {
	v := m.discard_reason
	if v == nil {
		return
	}
	return *v, true
}

// OldDiscardReason returns the old "discard_reason" field's value of the Oocyte entity.
// If the Oocyte object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OocyteMutation) OldDiscardReason(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDiscardReason is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDiscardReason requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDiscardReason: %w", err)
	}
	return oldValue.DiscardReason, nil
}

// ClearDiscardReason clears the value of the "discard_reason" field.
func (m *OocyteMutation) ClearDiscardReason() {
	m.discard_reason = nil
	m.clearedFields[oocyte.FieldDiscardReason] = struct{}{}
}

// DiscardReasonCleared returns if the "discard_reason" field was cleared in this mutation.
func (m *OocyteMutation) DiscardReasonCleared() bool {
	_, ok := m.clearedFields[oocyte.FieldDiscardReason]
	return ok
}

// ResetDiscardReason resets all changes to the "discard_reason" field.
func (m *OocyteMutation) ResetDiscardReason() {
	m.discard_reason = nil
	delete(m.clearedFields, oocyte.FieldDiscardReason)
}

// SetNitrogenTube sets the "nitrogen_tube" field.
func (m *OocyteMutation) SetNitrogenTube(s string) {
	m.nitrogen_tube = &s
}

// NitrogenTube returns the value of the "nitrogen_tube" field in the mutation.
func (m *OocyteMutation) NitrogenTube() (r string, exists bool) {
	v := m.nitrogen_tube
	if v == nil {
		return
	}
	return *v, true
}

// OldNitrogenTube returns the old "nitrogen_tube" field's value of the Oocyte entity.
// If the Oocyte object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OocyteMutation) OldNitrogenTube(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNitrogenTube is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNitrogenTube requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNitrogenTube: %w", err)
	}
	return oldValue.NitrogenTube, nil
}

// ClearNitrogenTube clears the value of the "nitrogen_tube" field.
func (m *OocyteMutation) ClearNitrogenTube() {
	m.nitrogen_tube = nil
	m.clearedFields[oocyte.FieldNitrogenTube] = struct{}{}
}

// NitrogenTubeCleared returns if the "nitrogen_tube" field was cleared in this mutation.
func (m *OocyteMutation) NitrogenTubeCleared() bool {
	_, ok := m.clearedFields[oocyte.FieldNitrogenTube]
	return ok
}

// ResetNitrogenTube resets all changes to the "nitrogen_tube" field.
func (m *OocyteMutation) ResetNitrogenTube() {
	m.nitrogen_tube = nil
	delete(m.clearedFields, oocyte.FieldNitrogenTube)
}

// SetRackNumber sets the "rack_number" field.
func (m *OocyteMutation) SetRackNumber(s string) {
	m.rack_number = &s
}

// RackNumber returns the value of the "rack_number" field in the mutation.
func (m *OocyteMutation) RackNumber() (r string, exists bool) {
	v := m.rack_number
	if v == nil {
		return
	}
	return *v, true
}

// OldRackNumber returns the old "rack_number" field's value of the Oocyte entity.
// If the Oocyte object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OocyteMutation) OldRackNumber(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRackNumber is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRackNumber requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRackNumber: %w", err)
	}
	return oldValue.RackNumber, nil
}

// ClearRackNumber clears the value of the "rack_number" field.
func (m *OocyteMutation) ClearRackNumber() {
	m.rack_number = nil
	m.clearedFields[oocyte.FieldRackNumber] = struct{}{}
}

// RackNumberCleared returns if the "rack_number" field was cleared in this mutation.
func (m *OocyteMutation) RackNumberCleared() bool {
	_, ok := m.clearedFields[oocyte.FieldRackNumber]
	return ok
}

// ResetRackNumber resets all changes to the "rack_number" field.
func (m *OocyteMutation) ResetRackNumber() {
	m.rack_number = nil
	delete(m.clearedFields, oocyte.FieldRackNumber)
}

// ClearPuncture clears the "puncture" edge to the Puncture entity.
func (m *OocyteMutation) ClearPuncture() {
	m.clearedpuncture = true
	m.clearedFields[oocyte.FieldPunctureID] = struct{}{}
}

// PunctureCleared reports if the "puncture" edge to the Puncture entity was cleared.
func (m *OocyteMutation) PunctureCleared() bool {
	return m.clearedpuncture
}

// PunctureIDs returns the "puncture" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// PunctureID instead. It exists only for internal usage by the builders.
func (m *OocyteMutation) PunctureIDs() (ids []uuid.UUID) {
	if id := m.puncture; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetPuncture resets all changes to the "puncture" edge.
func (m *OocyteMutation) ResetPuncture() {
	m.puncture = nil
	m.clearedpuncture = false
}

// AddStateHistoryIDs adds the "state_history" edge to the OocyteStateHistory entity by ids.
func (m *OocyteMutation) AddStateHistoryIDs(ids ...uuid.UUID) {
	if m.state_history == nil {
		m.state_history = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.state_history[ids[i]] = struct{}{}
	}
}

// ClearStateHistory clears the "state_history" edge to the OocyteStateHistory entity.
func (m *OocyteMutation) ClearStateHistory() {
	m.clearedstate_history = true
}

// StateHistoryCleared reports if the "state_history" edge to the OocyteStateHistory entity was cleared.
func (m *OocyteMutation) StateHistoryCleared() bool {
	return m.clearedstate_history
}

// RemoveStateHistoryIDs removes the "state_history" edge to the OocyteStateHistory entity by IDs.
func (m *OocyteMutation) RemoveStateHistoryIDs(ids ...uuid.UUID) {
	if m.removedstate_history == nil {
		m.removedstate_history = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.state_history, ids[i])
		m.removedstate_history[ids[i]] = struct{}{}
	}
}

// RemovedStateHistory returns the removed IDs of the "state_history" edge to the OocyteStateHistory entity.
func (m *OocyteMutation) RemovedStateHistoryIDs() (ids []uuid.UUID) {
	for id := range m.removedstate_history {
		ids = append(ids, id)
	}
	return
}

// StateHistoryIDs returns the "state_history" edge IDs in the mutation.
func (m *OocyteMutation) StateHistoryIDs() (ids []uuid.UUID) {
	for id := range m.state_history {
		ids = append(ids, id)
	}
	return
}

// ResetStateHistory resets all changes to the "state_history" edge.
func (m *OocyteMutation) ResetStateHistory() {
	m.state_history = nil
	m.clearedstate_history = false
	m.removedstate_history = nil
}

// SetEmbryoID sets the "embryo" edge to the Embryo entity by id.
func (m *OocyteMutation) SetEmbryoID(id uuid.UUID) {
	m.embryo = &id
}

// ClearEmbryo clears the "embryo" edge to the Embryo entity.
func (m *OocyteMutation) ClearEmbryo() {
	m.clearedembryo = true
}

// EmbryoCleared reports if the "embryo" edge to the Embryo entity was cleared.
func (m *OocyteMutation) EmbryoCleared() bool {
	return m.clearedembryo
}

// EmbryoID returns the "embryo" edge ID in the mutation.
func (m *OocyteMutation) EmbryoID() (id uuid.UUID, exists bool) {
	if m.embryo != nil {
		return *m.embryo, true
	}
	return
}

// EmbryoIDs returns the "embryo" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// EmbryoID instead. It exists only for internal usage by the builders.
func (m *OocyteMutation) EmbryoIDs() (ids []uuid.UUID) {
	if id := m.embryo; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetEmbryo resets all changes to the "embryo" edge.
func (m *OocyteMutation) ResetEmbryo() {
	m.embryo = nil
	m.clearedembryo = false
}

// Where appends a list predicates to the OocyteMutation builder.
func (m *OocyteMutation) Where(ps ...predicate.Oocyte) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the OocyteMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *OocyteMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Oocyte, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *OocyteMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *OocyteMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Oocyte).
func (m *OocyteMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *OocyteMutation) Fields() []string {
	fields := make([]string, 0, 10)
	if m.created_at != nil {
		fields = append(fields, oocyte.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, oocyte.FieldUpdatedAt)
	}
	if m.puncture != nil {
		fields = append(fields, oocyte.FieldPunctureID)
	}
	if m.oocyte_code != nil {
		fields = append(fields, oocyte.FieldOocyteCode)
	}
	if m.initial_state != nil {
		fields = append(fields, oocyte.FieldInitialState)
	}
	if m.current_state != nil {
		fields = append(fields, oocyte.FieldCurrentState)
	}
	if m.maturation_time_hours != nil {
		fields = append(fields, oocyte.FieldMaturationTimeHours)
	}
	if m.discard_reason != nil {
		fields = append(fields, oocyte.FieldDiscardReason)
	}
	if m.nitrogen_tube != nil {
		fields = append(fields, oocyte.FieldNitrogenTube)
	}
	if m.rack_number != nil {
		fields = append(fields, oocyte.FieldRackNumber)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *OocyteMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case oocyte.FieldCreatedAt:
		return m.CreatedAt()
	case oocyte.FieldUpdatedAt:
		return m.UpdatedAt()
	case oocyte.FieldPunctureID:
		return m.PunctureID()
	case oocyte.FieldOocyteCode:
		return m.OocyteCode()
	case oocyte.FieldInitialState:
		return m.InitialState()
	case oocyte.FieldCurrentState:
		return m.CurrentState()
	case oocyte.FieldMaturationTimeHours:
		return m.MaturationTimeHours()
	case oocyte.FieldDiscardReason:
		return m.DiscardReason()
	case oocyte.FieldNitrogenTube:
		return m.NitrogenTube()
	case oocyte.FieldRackNumber:
		return m.RackNumber()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *OocyteMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case oocyte.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case oocyte.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case oocyte.FieldPunctureID:
		return m.OldPunctureID(ctx)
	case oocyte.FieldOocyteCode:
		return m.OldOocyteCode(ctx)
	case oocyte.FieldInitialState:
		return m.OldInitialState(ctx)
	case oocyte.FieldCurrentState:
		return m.OldCurrentState(ctx)
	case oocyte.FieldMaturationTimeHours:
		return m.OldMaturationTimeHours(ctx)
	case oocyte.FieldDiscardReason:
		return m.OldDiscardReason(ctx)
	case oocyte.FieldNitrogenTube:
		return m.OldNitrogenTube(ctx)
	case oocyte.FieldRackNumber:
		return m.OldRackNumber(ctx)
	}
	return nil, fmt.Errorf("unknown Oocyte field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *OocyteMutation) SetField(name string, value ent.Value) error {
	switch name {
	case oocyte.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case oocyte.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case oocyte.FieldPunctureID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPunctureID(v)
		return nil
	case oocyte.FieldOocyteCode:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOocyteCode(v)
		return nil
	case oocyte.FieldInitialState:
		v, ok := value.(oocyte.InitialState)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetInitialState(v)
		return nil
	case oocyte.FieldCurrentState:
		v, ok := value.(oocyte.CurrentState)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCurrentState(v)
		return nil
	case oocyte.FieldMaturationTimeHours:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMaturationTimeHours(v)
		return nil
	case oocyte.FieldDiscardReason:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDiscardReason(v)
		return nil
	case oocyte.FieldNitrogenTube:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNitrogenTube(v)
		return nil
	case oocyte.FieldRackNumber:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRackNumber(v)
		return nil
	}
	return fmt.Errorf("unknown Oocyte field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *OocyteMutation) AddedFields() []string {
	var fields []string
	if m.addmaturation_time_hours != nil {
		fields = append(fields, oocyte.FieldMaturationTimeHours)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *OocyteMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case oocyte.FieldMaturationTimeHours:
		return m.AddedMaturationTimeHours()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *OocyteMutation) AddField(name string, value ent.Value) error {
	switch name {
	case oocyte.FieldMaturationTimeHours:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddMaturationTimeHours(v)
		return nil
	}
	return fmt.Errorf("unknown Oocyte numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *OocyteMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(oocyte.FieldMaturationTimeHours) {
		fields = append(fields, oocyte.FieldMaturationTimeHours)
	}
	if m.FieldCleared(oocyte.FieldDiscardReason) {
		fields = append(fields, oocyte.FieldDiscardReason)
	}
	if m.FieldCleared(oocyte.FieldNitrogenTube) {
		fields = append(fields, oocyte.FieldNitrogenTube)
	}
	if m.FieldCleared(oocyte.FieldRackNumber) {
		fields = append(fields, oocyte.FieldRackNumber)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *OocyteMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *OocyteMutation) ClearField(name string) error {
	switch name {
	case oocyte.FieldMaturationTimeHours:
		m.ClearMaturationTimeHours()
		return nil
	case oocyte.FieldDiscardReason:
		m.ClearDiscardReason()
		return nil
	case oocyte.FieldNitrogenTube:
		m.ClearNitrogenTube()
		return nil
	case oocyte.FieldRackNumber:
		m.ClearRackNumber()
		return nil
	}
	return fmt.Errorf("unknown Oocyte nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *OocyteMutation) ResetField(name string) error {
	switch name {
	case oocyte.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case oocyte.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case oocyte.FieldPunctureID:
		m.ResetPunctureID()
		return nil
	case oocyte.FieldOocyteCode:
		m.ResetOocyteCode()
		return nil
	case oocyte.FieldInitialState:
		m.ResetInitialState()
		return nil
	case oocyte.FieldCurrentState:
		m.ResetCurrentState()
		return nil
	case oocyte.FieldMaturationTimeHours:
		m.ResetMaturationTimeHours()
		return nil
	case oocyte.FieldDiscardReason:
		m.ResetDiscardReason()
		return nil
	case oocyte.FieldNitrogenTube:
		m.ResetNitrogenTube()
		return nil
	case oocyte.FieldRackNumber:
		m.ResetRackNumber()
		return nil
	}
	return fmt.Errorf("unknown Oocyte field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *OocyteMutation) AddedEdges() []string {
	edges := make([]string, 0, 3)
	if m.puncture != nil {
		edges = append(edges, oocyte.EdgePuncture)
	}
	if m.state_history != nil {
		edges = append(edges, oocyte.EdgeStateHistory)
	}
	if m.embryo != nil {
		edges = append(edges, oocyte.EdgeEmbryo)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *OocyteMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case oocyte.EdgePuncture:
		if id := m.puncture; id != nil {
			return []ent.Value{*id}
		}
	case oocyte.EdgeStateHistory:
		ids := make([]ent.Value, 0, len(m.state_history))
		for id := range m.state_history {
			ids = append(ids, id)
		}
		return ids
	case oocyte.EdgeEmbryo:
		if id := m.embryo; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *OocyteMutation) RemovedEdges() []string {
	edges := make([]string, 0, 3)
	if m.removedstate_history != nil {
		edges = append(edges, oocyte.EdgeStateHistory)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *OocyteMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case oocyte.EdgeStateHistory:
		ids := make([]ent.Value, 0, len(m.removedstate_history))
		for id := range m.removedstate_history {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *OocyteMutation) ClearedEdges() []string {
	edges := make([]string, 0, 3)
	if m.clearedpuncture {
		edges = append(edges, oocyte.EdgePuncture)
	}
	if m.clearedstate_history {
		edges = append(edges, oocyte.EdgeStateHistory)
	}
	if m.clearedembryo {
		edges = append(edges, oocyte.EdgeEmbryo)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *OocyteMutation) EdgeCleared(name string) bool {
	switch name {
	case oocyte.EdgePuncture:
		return m.clearedpuncture
	case oocyte.EdgeStateHistory:
		return m.clearedstate_history
	case oocyte.EdgeEmbryo:
		return m.clearedembryo
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *OocyteMutation) ClearEdge(name string) error {
	switch name {
	case oocyte.EdgePuncture:
		m.ClearPuncture()
		return nil
	case oocyte.EdgeEmbryo:
		m.ClearEmbryo()
		return nil
	}
	return fmt.Errorf("unknown Oocyte unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *OocyteMutation) ResetEdge(name string) error {
	switch name {
	case oocyte.EdgePuncture:
		m.ResetPuncture()
		return nil
	case oocyte.EdgeStateHistory:
		m.ResetStateHistory()
		return nil
	case oocyte.EdgeEmbryo:
		m.ResetEmbryo()
		return nil
	}
	return fmt.Errorf("unknown Oocyte edge %s", name)
}

// OocyteStateHistoryMutation represents an operation that mutates the OocyteStateHistory nodes in the graph.
type OocyteStateHistoryMutation struct {
	config
	op                Op
	typ               string
	id                *uuid.UUID
	created_at        *time.Time
	from_state        *string
	to_state          *string
	notes             *string
	clearedFields     map[string]struct{}
	oocyte            *uuid.UUID
	clearedoocyte     bool
	changed_by        *uuid.UUID
	clearedchanged_by bool
	done              bool
	oldValue          func(context.Context) (*OocyteStateHistory, error)
	predicates        []predicate.OocyteStateHistory
}

var _ ent.Mutation = (*OocyteStateHistoryMutation)(nil)

// oocytestatehistoryOption allows management of the mutation configuration using functional options.
type oocytestatehistoryOption func(*OocyteStateHistoryMutation)

// newOocyteStateHistoryMutation creates new mutation for the OocyteStateHistory entity.
func newOocyteStateHistoryMutation(c config, op Op, opts ...oocytestatehistoryOption) *OocyteStateHistoryMutation {
	m := &OocyteStateHistoryMutation{
		config:        c,
		op:            op,
		typ:           TypeOocyteStateHistory,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withOocyteStateHistoryID sets the ID field of the mutation.
func withOocyteStateHistoryID(id uuid.UUID) oocytestatehistoryOption {
	return func(m *OocyteStateHistoryMutation) {
		var (
			err   error
			once  sync.Once
			value *OocyteStateHistory
		)
		m.oldValue = func(ctx context.Context) (*OocyteStateHistory, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().OocyteStateHistory.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withOocyteStateHistory sets the old OocyteStateHistory of the mutation.
func withOocyteStateHistory(node *OocyteStateHistory) oocytestatehistoryOption {
	return func(m *OocyteStateHistoryMutation) {
		m.oldValue = func(context.Context) (*OocyteStateHistory, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m OocyteStateHistoryMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m OocyteStateHistoryMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("repo: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of OocyteStateHistory entities.
func (m *OocyteStateHistoryMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *OocyteStateHistoryMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *OocyteStateHistoryMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().OocyteStateHistory.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *OocyteStateHistoryMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *OocyteStateHistoryMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the OocyteStateHistory entity.
// If the OocyteStateHistory object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OocyteStateHistoryMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *OocyteStateHistoryMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetOocyteID sets the "oocyte_id" field.
func (m *OocyteStateHistoryMutation) SetOocyteID(u uuid.UUID) {
	m.oocyte = &u
}

// OocyteID returns the value of the "oocyte_id" field in the mutation.
func (m *OocyteStateHistoryMutation) OocyteID() (r uuid.UUID, exists bool) {
	v := m.oocyte
	if v == nil {
		return
	}
	return *v, true
}

// OldOocyteID returns the old "oocyte_id" field's value of the OocyteStateHistory entity.
// If the OocyteStateHistory object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OocyteStateHistoryMutation) OldOocyteID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOocyteID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOocyteID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOocyteID: %w", err)
	}
	return oldValue.OocyteID, nil
}

// ResetOocyteID resets all changes to the "oocyte_id" field.
func (m *OocyteStateHistoryMutation) ResetOocyteID() {
	m.oocyte = nil
}

// SetFromState sets the "from_state" field.
func (m *OocyteStateHistoryMutation) SetFromState(s string) {
	m.from_state = &s
}

// FromState returns the value of the "from_state" field in the mutation.
func (m *OocyteStateHistoryMutation) FromState() (r string, exists bool) {
	v := m.from_state
	if v == nil {
		return
	}
	return *v, true
}

// OldFromState returns the old "from_state" field's value of the OocyteStateHistory entity.
// If the OocyteStateHistory object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OocyteStateHistoryMutation) OldFromState(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFromState is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFromState requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFromState: %w", err)
	}
	return oldValue.FromState, nil
}

// ClearFromState clears the value of the "from_state" field.
func (m *OocyteStateHistoryMutation) ClearFromState() {
	m.from_state = nil
	m.clearedFields[oocytestatehistory.FieldFromState] = struct{}{}
}

// FromStateCleared returns if the "from_state" field was cleared in this mutation.
func (m *OocyteStateHistoryMutation) FromStateCleared() bool {
	_, ok := m.clearedFields[oocytestatehistory.FieldFromState]
	return ok
}

// ResetFromState resets all changes to the "from_state" field.
func (m *OocyteStateHistoryMutation) ResetFromState() {
	m.from_state = nil
	delete(m.clearedFields, oocytestatehistory.FieldFromState)
}

// SetToState sets the "to_state" field.
func (m *OocyteStateHistoryMutation) SetToState(s string) {
	m.to_state = &s
}

// ToState returns the value of the "to_state" field in the mutation.
func (m *OocyteStateHistoryMutation) ToState() (r string, exists bool) {
	v := m.to_state
	if v == nil {
		return
	}
	return *v, true
}

// OldToState returns the old "to_state" field's value of the OocyteStateHistory entity.
// If the OocyteStateHistory object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OocyteStateHistoryMutation) OldToState(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldToState is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldToState requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldToState: %w", err)
	}
	return oldValue.ToState, nil
}

// ResetToState resets all changes to the "to_state" field.
func (m *OocyteStateHistoryMutation) ResetToState() {
	m.to_state = nil
}

// SetNotes sets the "notes" field.
func (m *OocyteStateHistoryMutation) SetNotes(s string) {
	m.notes = &s
}

// Notes returns the value of the "notes" field in the mutation.
func (m *OocyteStateHistoryMutation) Notes() (r string, exists bool) {
	v := m.notes
	if v == nil {
		return
	}
	return *v, true
}

// OldNotes returns the old "notes" field's value of the OocyteStateHistory entity.
// If the OocyteStateHistory object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OocyteStateHistoryMutation) OldNotes(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNotes is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNotes requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNotes: %w", err)
	}
	return oldValue.Notes, nil
}

// ClearNotes clears the value of the "notes" field.
func (m *OocyteStateHistoryMutation) ClearNotes() {
	m.notes = nil
	m.clearedFields[oocytestatehistory.FieldNotes] = struct{}{}
}

// NotesCleared returns if the "notes" field was cleared in this mutation.
func (m *OocyteStateHistoryMutation) NotesCleared() bool {
	_, ok := m.clearedFields[oocytestatehistory.FieldNotes]
	return ok
}

// ResetNotes resets all changes to the "notes" field.
func (m *OocyteStateHistoryMutation) ResetNotes() {
	m.notes = nil
	delete(m.clearedFields, oocytestatehistory.FieldNotes)
}

// SetChangedByID sets the "changed_by_id" field.
func (m *OocyteStateHistoryMutation) SetChangedByID(u uuid.UUID) {
	m.changed_by = &u
}

// ChangedByID returns the value of the "changed_by_id" field in the mutation.
func (m *OocyteStateHistoryMutation) ChangedByID() (r uuid.UUID, exists bool) {
	v := m.changed_by
	if v == nil {
		return
	}
	return *v, true
}

// OldChangedByID returns the old "changed_by_id" field's value of the OocyteStateHistory entity.
// If the OocyteStateHistory object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OocyteStateHistoryMutation) OldChangedByID(ctx context.Context) (v *uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldChangedByID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldChangedByID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldChangedByID: %w", err)
	}
	return oldValue.ChangedByID, nil
}

// ClearChangedByID clears the value of the "changed_by_id" field.
func (m *OocyteStateHistoryMutation) ClearChangedByID() {
	m.changed_by = nil
	m.clearedFields[oocytestatehistory.FieldChangedByID] = struct{}{}
}

// ChangedByIDCleared returns if the "changed_by_id" field was cleared in this mutation.
func (m *OocyteStateHistoryMutation) ChangedByIDCleared() bool {
	_, ok := m.clearedFields[oocytestatehistory.FieldChangedByID]
	return ok
}

// ResetChangedByID resets all changes to the "changed_by_id" field.
func (m *OocyteStateHistoryMutation) ResetChangedByID() {
	m.changed_by = nil
	delete(m.clearedFields, oocytestatehistory.FieldChangedByID)
}

// ClearOocyte clears the "oocyte" edge to the Oocyte entity.
func (m *OocyteStateHistoryMutation) ClearOocyte() {
	m.clearedoocyte = true
	m.clearedFields[oocytestatehistory.FieldOocyteID] = struct{}{}
}

// OocyteCleared reports if the "oocyte" edge to the Oocyte entity was cleared.
func (m *OocyteStateHistoryMutation) OocyteCleared() bool {
	return m.clearedoocyte
}

// OocyteIDs returns the "oocyte" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// OocyteID instead. It exists only for internal usage by the builders.
func (m *OocyteStateHistoryMutation) OocyteIDs() (ids []uuid.UUID) {
	if id := m.oocyte; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetOocyte resets all changes to the "oocyte" edge.
func (m *OocyteStateHistoryMutation) ResetOocyte() {
	m.oocyte = nil
	m.clearedoocyte = false
}

// ClearChangedBy clears the "changed_by" edge to the User entity.
func (m *OocyteStateHistoryMutation) ClearChangedBy() {
	m.clearedchanged_by = true
	m.clearedFields[oocytestatehistory.FieldChangedByID] = struct{}{}
}

// ChangedByCleared reports if the "changed_by" edge to the User entity was cleared.
func (m *OocyteStateHistoryMutation) ChangedByCleared() bool {
	return m.ChangedByIDCleared() || m.clearedchanged_by
}

// ChangedByIDs returns the "changed_by" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ChangedByID instead. It exists only for internal usage by the builders.
func (m *OocyteStateHistoryMutation) ChangedByIDs() (ids []uuid.UUID) {
	if id := m.changed_by; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetChangedBy resets all changes to the "changed_by" edge.
func (m *OocyteStateHistoryMutation) ResetChangedBy() {
	m.changed_by = nil
	m.clearedchanged_by = false
}

// Where appends a list predicates to the OocyteStateHistoryMutation builder.
func (m *OocyteStateHistoryMutation) Where(ps ...predicate.OocyteStateHistory) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the OocyteStateHistoryMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *OocyteStateHistoryMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.OocyteStateHistory, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *OocyteStateHistoryMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *OocyteStateHistoryMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (OocyteStateHistory).
func (m *OocyteStateHistoryMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *OocyteStateHistoryMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.created_at != nil {
		fields = append(fields, oocytestatehistory.FieldCreatedAt)
	}
	if m.oocyte != nil {
		fields = append(fields, oocytestatehistory.FieldOocyteID)
	}
	if m.from_state != nil {
		fields = append(fields, oocytestatehistory.FieldFromState)
	}
	if m.to_state != nil {
		fields = append(fields, oocytestatehistory.FieldToState)
	}
	if m.notes != nil {
		fields = append(fields, oocytestatehistory.FieldNotes)
	}
	if m.changed_by != nil {
		fields = append(fields, oocytestatehistory.FieldChangedByID)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *OocyteStateHistoryMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case oocytestatehistory.FieldCreatedAt:
		return m.CreatedAt()
	case oocytestatehistory.FieldOocyteID:
		return m.OocyteID()
	case oocytestatehistory.FieldFromState:
		return m.FromState()
	case oocytestatehistory.FieldToState:
		return m.ToState()
	case oocytestatehistory.FieldNotes:
		return m.Notes()
	case oocytestatehistory.FieldChangedByID:
		return m.ChangedByID()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *OocyteStateHistoryMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case oocytestatehistory.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case oocytestatehistory.FieldOocyteID:
		return m.OldOocyteID(ctx)
	case oocytestatehistory.FieldFromState:
		return m.OldFromState(ctx)
	case oocytestatehistory.FieldToState:
		return m.OldToState(ctx)
	case oocytestatehistory.FieldNotes:
		return m.OldNotes(ctx)
	case oocytestatehistory.FieldChangedByID:
		return m.OldChangedByID(ctx)
	}
	return nil, fmt.Errorf("unknown OocyteStateHistory field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *OocyteStateHistoryMutation) SetField(name string, value ent.Value) error {
	switch name {
	case oocytestatehistory.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case oocytestatehistory.FieldOocyteID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOocyteID(v)
		return nil
	case oocytestatehistory.FieldFromState:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFromState(v)
		return nil
	case oocytestatehistory.FieldToState:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetToState(v)
		return nil
	case oocytestatehistory.FieldNotes:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNotes(v)
		return nil
	case oocytestatehistory.FieldChangedByID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetChangedByID(v)
		return nil
	}
	return fmt.Errorf("unknown OocyteStateHistory field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *OocyteStateHistoryMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *OocyteStateHistoryMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *OocyteStateHistoryMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown OocyteStateHistory numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *OocyteStateHistoryMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(oocytestatehistory.FieldFromState) {
		fields = append(fields, oocytestatehistory.FieldFromState)
	}
	if m.FieldCleared(oocytestatehistory.FieldNotes) {
		fields = append(fields, oocytestatehistory.FieldNotes)
	}
	if m.FieldCleared(oocytestatehistory.FieldChangedByID) {
		fields = append(fields, oocytestatehistory.FieldChangedByID)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *OocyteStateHistoryMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *OocyteStateHistoryMutation) ClearField(name string) error {
	switch name {
	case oocytestatehistory.FieldFromState:
		m.ClearFromState()
		return nil
	case oocytestatehistory.FieldNotes:
		m.ClearNotes()
		return nil
	case oocytestatehistory.FieldChangedByID:
		m.ClearChangedByID()
		return nil
	}
	return fmt.Errorf("unknown OocyteStateHistory nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *OocyteStateHistoryMutation) ResetField(name string) error {
	switch name {
	case oocytestatehistory.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case oocytestatehistory.FieldOocyteID:
		m.ResetOocyteID()
		return nil
	case oocytestatehistory.FieldFromState:
		m.ResetFromState()
		return nil
	case oocytestatehistory.FieldToState:
		m.ResetToState()
		return nil
	case oocytestatehistory.FieldNotes:
		m.ResetNotes()
		return nil
	case oocytestatehistory.FieldChangedByID:
		m.ResetChangedByID()
		return nil
	}
	return fmt.Errorf("unknown OocyteStateHistory field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *OocyteStateHistoryMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.oocyte != nil {
		edges = append(edges, oocytestatehistory.EdgeOocyte)
	}
	if m.changed_by != nil {
		edges = append(edges, oocytestatehistory.EdgeChangedBy)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *OocyteStateHistoryMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case oocytestatehistory.EdgeOocyte:
		if id := m.oocyte; id != nil {
			return []ent.Value{*id}
		}
	case oocytestatehistory.EdgeChangedBy:
		if id := m.changed_by; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *OocyteStateHistoryMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *OocyteStateHistoryMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *OocyteStateHistoryMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedoocyte {
		edges = append(edges, oocytestatehistory.EdgeOocyte)
	}
	if m.clearedchanged_by {
		edges = append(edges, oocytestatehistory.EdgeChangedBy)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *OocyteStateHistoryMutation) EdgeCleared(name string) bool {
	switch name {
	case oocytestatehistory.EdgeOocyte:
		return m.clearedoocyte
	case oocytestatehistory.EdgeChangedBy:
		return m.clearedchanged_by
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *OocyteStateHistoryMutation) ClearEdge(name string) error {
	switch name {
	case oocytestatehistory.EdgeOocyte:
		m.ClearOocyte()
		return nil
	case oocytestatehistory.EdgeChangedBy:
		m.ClearChangedBy()
		return nil
	}
	return fmt.Errorf("unknown OocyteStateHistory unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *OocyteStateHistoryMutation) ResetEdge(name string) error {
	switch name {
	case oocytestatehistory.EdgeOocyte:
		m.ResetOocyte()
		return nil
	case oocytestatehistory.EdgeChangedBy:
		m.ResetChangedBy()
		return nil
	}
	return fmt.Errorf("unknown OocyteStateHistory edge %s", name)
}

// PartnerMutation represents an operation that mutates the Partner nodes in the graph.
type PartnerMutation struct {
	config
	op                 Op
	typ                string
	id                 *uuid.UUID
	created_at         *time.Time
	updated_at         *time.Time
	first_name         *string
	last_name          *string
	date_of_birth      *time.Time
	biological_sex     *partner.BiologicalSex
	dni                *string
	genital_background *string
	clearedFields      map[string]struct{}
	patient            *uuid.UUID
	clearedpatient     bool
	done               bool
	oldValue           func(context.Context) (*Partner, error)
	predicates         []predicate.Partner
}

var _ ent.Mutation = (*PartnerMutation)(nil)

// partnerOption allows management of the mutation configuration using functional options.
type partnerOption func(*PartnerMutation)

// newPartnerMutation creates new mutation for the Partner entity.
func newPartnerMutation(c config, op Op, opts ...partnerOption) *PartnerMutation {
	m := &PartnerMutation{
		config:        c,
		op:            op,
		typ:           TypePartner,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withPartnerID sets the ID field of the mutation.
func withPartnerID(id uuid.UUID) partnerOption {
	return func(m *PartnerMutation) {
		var (
			err   error
			once  sync.Once
			value *Partner
		)
		m.oldValue = func(ctx context.Context) (*Partner, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Partner.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withPartner sets the old Partner of the mutation.
func withPartner(node *Partner) partnerOption {
	return func(m *PartnerMutation) {
		m.oldValue = func(context.Context) (*Partner, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m PartnerMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m PartnerMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("repo: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Partner entities.
func (m *PartnerMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *PartnerMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *PartnerMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Partner.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *PartnerMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *PartnerMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Partner entity.
// If the Partner object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PartnerMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *PartnerMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *PartnerMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *PartnerMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Partner entity.
// If the Partner object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PartnerMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *PartnerMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetPatientID sets the "patient_id" field.
func (m *PartnerMutation) SetPatientID(u uuid.UUID) {
	m.patient = &u
}

// PatientID returns the value of the "patient_id" field in the mutation.
func (m *PartnerMutation) PatientID() (r uuid.UUID, exists bool) {
	v := m.patient
	if v == nil {
		return
	}
	return *v, true
}

// OldPatientID returns the old "patient_id" field's value of the Partner entity.
// If the Partner object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PartnerMutation) OldPatientID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPatientID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPatientID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPatientID: %w", err)
	}
	return oldValue.PatientID, nil
}

// ResetPatientID resets all changes to the "patient_id" field.
func (m *PartnerMutation) ResetPatientID() {
	m.patient = nil
}

// SetFirstName sets the "first_name" field.
func (m *PartnerMutation) SetFirstName(s string) {
	m.first_name = &s
}

// FirstName returns the value of the "first_name" field in the mutation.
func (m *PartnerMutation) FirstName() (r string, exists bool) {
	v := m.first_name
	if v == nil {
		return
	}
	return *v, true
}

// OldFirstName returns the old "first_name" field's value of the Partner entity.
// If the Partner object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PartnerMutation) OldFirstName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFirstName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFirstName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFirstName: %w", err)
	}
	return oldValue.FirstName, nil
}

// ResetFirstName resets all changes to the "first_name" field.
func (m *PartnerMutation) ResetFirstName() {
	m.first_name = nil
}

// SetLastName sets the "last_name" field.
func (m *PartnerMutation) SetLastName(s string) {
	m.last_name = &s
}

// LastName returns the value of the "last_name" field in the mutation.
func (m *PartnerMutation) LastName() (r string, exists bool) {
	v := m.last_name
	if v == nil {
		return
	}
	return *v, true
}

// OldLastName returns the old "last_name" field's value of the Partner entity.
// If the Partner object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PartnerMutation) OldLastName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastName: %w", err)
	}
	return oldValue.LastName, nil
}

// ResetLastName resets all changes to the "last_name" field.
func (m *PartnerMutation) ResetLastName() {
	m.last_name = nil
}

// SetDateOfBirth sets the "date_of_birth" field.
func (m *PartnerMutation) SetDateOfBirth(t time.Time) {
	m.date_of_birth = &t
}

// DateOfBirth returns the value of the "date_of_birth" field in the mutation.
func (m *PartnerMutation) DateOfBirth() (r time.Time, exists bool) {
	v := m.date_of_birth
	if v == nil {
		return
	}
	return *v, true
}

// OldDateOfBirth returns the old "date_of_birth" field's value of the Partner entity.
// If the Partner object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PartnerMutation) OldDateOfBirth(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDateOfBirth is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDateOfBirth requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDateOfBirth: %w", err)
	}
	return oldValue.DateOfBirth, nil
}

// ResetDateOfBirth resets all changes to the "date_of_birth" field.
func (m *PartnerMutation) ResetDateOfBirth() {
	m.date_of_birth = nil
}

// SetBiologicalSex sets the "biological_sex" field.
func (m *PartnerMutation) SetBiologicalSex(ps partner.BiologicalSex) {
	m.biological_sex = &ps
}

// BiologicalSex returns the value of the "biological_sex" field in the mutation.
func (m *PartnerMutation) BiologicalSex() (r partner.BiologicalSex, exists bool) {
	v := m.biological_sex
	if v == nil {
		return
	}
	return *v, true
}

// OldBiologicalSex returns the old "biological_sex" field's value of the Partner entity.
// If the Partner object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PartnerMutation) OldBiologicalSex(ctx context.Context) (v partner.BiologicalSex, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBiologicalSex is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBiologicalSex requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBiologicalSex: %w", err)
	}
	return oldValue.BiologicalSex, nil
}

// ResetBiologicalSex resets all changes to the "biological_sex" field.
func (m *PartnerMutation) ResetBiologicalSex() {
	m.biological_sex = nil
}

// SetDni sets the "dni" field.
func (m *PartnerMutation) SetDni(s string) {
	m.dni = &s
}

// Dni returns the value of the "dni" field in the mutation.
func (m *PartnerMutation) Dni() (r string, exists bool) {
	v := m.dni
	if v == nil {
		return
	}
	return *v, true
}

// OldDni returns the old "dni" field's value of the Partner entity.
// If the Partner object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PartnerMutation) OldDni(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDni is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDni requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDni: %w", err)
	}
	return oldValue.Dni, nil
}

// ResetDni resets all changes to the "dni" field.
func (m *PartnerMutation) ResetDni() {
	m.dni = nil
}

// SetGenitalBackground sets the "genital_background" field.
func (m *PartnerMutation) SetGenitalBackground(s string) {
	m.genital_background = &s
}

// GenitalBackground returns the value of the "genital_background" field in the mutation.
func (m *PartnerMutation) GenitalBackground() (r string, exists bool) {
	v := m.genital_background
	if v == nil {
		return
	}
	return *v, true
}

// OldGenitalBackground returns the old "genital_background" field's value of the Partner entity.
// If the Partner object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PartnerMutation) OldGenitalBackground(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldGenitalBackground is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldGenitalBackground requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldGenitalBackground: %w", err)
	}
	return oldValue.GenitalBackground, nil
}

// ClearGenitalBackground clears the value of the "genital_background" field.
func (m *PartnerMutation) ClearGenitalBackground() {
	m.genital_background = nil
	m.clearedFields[partner.FieldGenitalBackground] = struct{}{}
}

// GenitalBackgroundCleared returns if the "genital_background" field was cleared in this mutation.
func (m *PartnerMutation) GenitalBackgroundCleared() bool {
	_, ok := m.clearedFields[partner.FieldGenitalBackground]
	return ok
}

// ResetGenitalBackground resets all changes to the "genital_background" field.
func (m *PartnerMutation) ResetGenitalBackground() {
	m.genital_background = nil
	delete(m.clearedFields, partner.FieldGenitalBackground)
}

// ClearPatient clears the "patient" edge to the Patient entity.
func (m *PartnerMutation) ClearPatient() {
	m.clearedpatient = true
	m.clearedFields[partner.FieldPatientID] = struct{}{}
}

// PatientCleared reports if the "patient" edge to the Patient entity was cleared.
func (m *PartnerMutation) PatientCleared() bool {
	return m.clearedpatient
}

// PatientIDs returns the "patient" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// PatientID instead. It exists only for internal usage by the builders.
func (m *PartnerMutation) PatientIDs() (ids []uuid.UUID) {
	if id := m.patient; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetPatient resets all changes to the "patient" edge.
func (m *PartnerMutation) ResetPatient() {
	m.patient = nil
	m.clearedpatient = false
}

// Where appends a list predicates to the PartnerMutation builder.
func (m *PartnerMutation) Where(ps ...predicate.Partner) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the PartnerMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *PartnerMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Partner, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *PartnerMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *PartnerMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Partner).
func (m *PartnerMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *PartnerMutation) Fields() []string {
	fields := make([]string, 0, 9)
	if m.created_at != nil {
		fields = append(fields, partner.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, partner.FieldUpdatedAt)
	}
	if m.patient != nil {
		fields = append(fields, partner.FieldPatientID)
	}
	if m.first_name != nil {
		fields = append(fields, partner.FieldFirstName)
	}
	if m.last_name != nil {
		fields = append(fields, partner.FieldLastName)
	}
	if m.date_of_birth != nil {
		fields = append(fields, partner.FieldDateOfBirth)
	}
	if m.biological_sex != nil {
		fields = append(fields, partner.FieldBiologicalSex)
	}
	if m.dni != nil {
		fields = append(fields, partner.FieldDni)
	}
	if m.genital_background != nil {
		fields = append(fields, partner.FieldGenitalBackground)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *PartnerMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case partner.FieldCreatedAt:
		return m.CreatedAt()
	case partner.FieldUpdatedAt:
		return m.UpdatedAt()
	case partner.FieldPatientID:
		return m.PatientID()
	case partner.FieldFirstName:
		return m.FirstName()
	case partner.FieldLastName:
		return m.LastName()
	case partner.FieldDateOfBirth:
		return m.DateOfBirth()
	case partner.FieldBiologicalSex:
		return m.BiologicalSex()
	case partner.FieldDni:
		return m.Dni()
	case partner.FieldGenitalBackground:
		return m.GenitalBackground()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *PartnerMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case partner.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case partner.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case partner.FieldPatientID:
		return m.OldPatientID(ctx)
	case partner.FieldFirstName:
		return m.OldFirstName(ctx)
	case partner.FieldLastName:
		return m.OldLastName(ctx)
	case partner.FieldDateOfBirth:
		return m.OldDateOfBirth(ctx)
	case partner.FieldBiologicalSex:
		return m.OldBiologicalSex(ctx)
	case partner.FieldDni:
		return m.OldDni(ctx)
	case partner.FieldGenitalBackground:
		return m.OldGenitalBackground(ctx)
	}
	return nil, fmt.Errorf("unknown Partner field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PartnerMutation) SetField(name string, value ent.Value) error {
	switch name {
	case partner.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case partner.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case partner.FieldPatientID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPatientID(v)
		return nil
	case partner.FieldFirstName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFirstName(v)
		return nil
	case partner.FieldLastName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastName(v)
		return nil
	case partner.FieldDateOfBirth:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDateOfBirth(v)
		return nil
	case partner.FieldBiologicalSex:
		v, ok := value.(partner.BiologicalSex)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBiologicalSex(v)
		return nil
	case partner.FieldDni:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDni(v)
		return nil
	case partner.FieldGenitalBackground:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetGenitalBackground(v)
		return nil
	}
	return fmt.Errorf("unknown Partner field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *PartnerMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *PartnerMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PartnerMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Partner numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *PartnerMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(partner.FieldGenitalBackground) {
		fields = append(fields, partner.FieldGenitalBackground)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *PartnerMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *PartnerMutation) ClearField(name string) error {
	switch name {
	case partner.FieldGenitalBackground:
		m.ClearGenitalBackground()
		return nil
	}
	return fmt.Errorf("unknown Partner nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *PartnerMutation) ResetField(name string) error {
	switch name {
	case partner.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case partner.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case partner.FieldPatientID:
		m.ResetPatientID()
		return nil
	case partner.FieldFirstName:
		m.ResetFirstName()
		return nil
	case partner.FieldLastName:
		m.ResetLastName()
		return nil
	case partner.FieldDateOfBirth:
		m.ResetDateOfBirth()
		return nil
	case partner.FieldBiologicalSex:
		m.ResetBiologicalSex()
		return nil
	case partner.FieldDni:
		m.ResetDni()
		return nil
	case partner.FieldGenitalBackground:
		m.ResetGenitalBackground()
		return nil
	}
	return fmt.Errorf("unknown Partner field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *PartnerMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.patient != nil {
		edges = append(edges, partner.EdgePatient)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *PartnerMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case partner.EdgePatient:
		if id := m.patient; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *PartnerMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *PartnerMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *PartnerMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedpatient {
		edges = append(edges, partner.EdgePatient)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *PartnerMutation) EdgeCleared(name string) bool {
	switch name {
	case partner.EdgePatient:
		return m.clearedpatient
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *PartnerMutation) ClearEdge(name string) error {
	switch name {
	case partner.EdgePatient:
		m.ClearPatient()
		return nil
	}
	return fmt.Errorf("unknown Partner unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *PartnerMutation) ResetEdge(name string) error {
	switch name {
	case partner.EdgePatient:
		m.ResetPatient()
		return nil
	}
	return fmt.Errorf("unknown Partner edge %s", name)
}

// PatientMutation represents an operation that mutates the Patient nodes in the graph.
type PatientMutation struct {
	config
	op                     Op
	typ                    string
	id                     *uuid.UUID
	created_at             *time.Time
	updated_at             *time.Time
	occupation             *string
	medical_coverage_id    *int
	addmedical_coverage_id *int
	medical_coverage_name  *string
	member_number          *string
	clearedFields          map[string]struct{}
	user                   *uuid.UUID
	cleareduser            bool
	medical_history        *uuid.UUID
	clearedmedical_history bool
	partner                *uuid.UUID
	clearedpartner         bool
	treatments             map[uuid.UUID]struct{}
	removedtreatments      map[uuid.UUID]struct{}
	clearedtreatments      bool
	done                   bool
	oldValue               func(context.Context) (*Patient, error)
	predicates             []predicate.Patient
}

var _ ent.Mutation = (*PatientMutation)(nil)

// patientOption allows management of the mutation configuration using functional options.
type patientOption func(*PatientMutation)

// newPatientMutation creates new mutation for the Patient entity.
func newPatientMutation(c config, op Op, opts ...patientOption) *PatientMutation {
	m := &PatientMutation{
		config:        c,
		op:            op,
		typ:           TypePatient,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withPatientID sets the ID field of the mutation.
func withPatientID(id uuid.UUID) patientOption {
	return func(m *PatientMutation) {
		var (
			err   error
			once  sync.Once
			value *Patient
		)
		m.oldValue = func(ctx context.Context) (*Patient, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Patient.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withPatient sets the old Patient of the mutation.
func withPatient(node *Patient) patientOption {
	return func(m *PatientMutation) {
		m.oldValue = func(context.Context) (*Patient, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m PatientMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m PatientMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("repo: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Patient entities.
func (m *PatientMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *PatientMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *PatientMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Patient.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *PatientMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *PatientMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Patient entity.
// If the Patient object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PatientMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *PatientMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *PatientMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *PatientMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Patient entity.
// If the Patient object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PatientMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *PatientMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetUserID sets the "user_id" field.
func (m *PatientMutation) SetUserID(u uuid.UUID) {
	m.user = &u
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *PatientMutation) UserID() (r uuid.UUID, exists bool) {
	v := m.user
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the Patient entity.
// If the Patient object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PatientMutation) OldUserID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ResetUserID resets all changes to the "user_id" field.
func (m *PatientMutation) ResetUserID() {
	m.user = nil
}

// SetOccupation sets the "occupation" field.
func (m *PatientMutation) SetOccupation(s string) {
	m.occupation = &s
}

// Occupation returns the value of the "occupation" field in the mutation.
func (m *PatientMutation) Occupation() (r string, exists bool) {
	v := m.occupation
	if v == nil {
		return
	}
	return *v, true
}

// OldOccupation returns the old "occupation" field's value of the Patient entity.
// If the Patient object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PatientMutation) OldOccupation(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOccupation is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOccupation requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOccupation: %w", err)
	}
	return oldValue.Occupation, nil
}

// ClearOccupation clears the value of the "occupation" field.
func (m *PatientMutation) ClearOccupation() {
	m.occupation = nil
	m.clearedFields[patient.FieldOccupation] = struct{}{}
}

// OccupationCleared returns if the "occupation" field was cleared in this mutation.
func (m *PatientMutation) OccupationCleared() bool {
	_, ok := m.clearedFields[patient.FieldOccupation]
	return ok
}

// ResetOccupation resets all changes to the "occupation" field.
func (m *PatientMutation) ResetOccupation() {
	m.occupation = nil
	delete(m.clearedFields, patient.FieldOccupation)
}

// SetMedicalCoverageID sets the "medical_coverage_id" field.
func (m *PatientMutation) SetMedicalCoverageID(i int) {
	m.medical_coverage_id = &i
	m.addmedical_coverage_id = nil
}

// MedicalCoverageID returns the value of the "medical_coverage_id" field in the mutation.
func (m *PatientMutation) MedicalCoverageID() (r int, exists bool) {
	v := m.medical_coverage_id
	if v == nil {
		return
	}
	return *v, true
}

// OldMedicalCoverageID returns the old "medical_coverage_id" field's value of the Patient entity.
// If the Patient object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PatientMutation) OldMedicalCoverageID(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMedicalCoverageID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMedicalCoverageID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMedicalCoverageID: %w", err)
	}
	return oldValue.MedicalCoverageID, nil
}

// AddMedicalCoverageID adds i to the "medical_coverage_id" field.
func (m *PatientMutation) AddMedicalCoverageID(i int) {
	if m.addmedical_coverage_id != nil {
		*m.addmedical_coverage_id += i
	} else {
		m.addmedical_coverage_id = &i
	}
}

// AddedMedicalCoverageID returns the value that was added to the "medical_coverage_id" field in this mutation.
func (m *PatientMutation) AddedMedicalCoverageID() (r int, exists bool) {
	v := m.addmedical_coverage_id
	if v == nil {
		return
	}
	return *v, true
}

// ClearMedicalCoverageID clears the value of the "medical_coverage_id" field.
func (m *PatientMutation) ClearMedicalCoverageID() {
	m.medical_coverage_id = nil
	m.addmedical_coverage_id = nil
	m.clearedFields[patient.FieldMedicalCoverageID] = struct{}{}
}

// MedicalCoverageIDCleared returns if the "medical_coverage_id" field was cleared in this mutation.
func (m *PatientMutation) MedicalCoverageIDCleared() bool {
	_, ok := m.clearedFields[patient.FieldMedicalCoverageID]
	return ok
}

// ResetMedicalCoverageID resets all changes to the "medical_coverage_id" field.
func (m *PatientMutation) ResetMedicalCoverageID() {
	m.medical_coverage_id = nil
	m.addmedical_coverage_id = nil
	delete(m.clearedFields, patient.FieldMedicalCoverageID)
}

// SetMedicalCoverageName sets the "medical_coverage_name" field.
func (m *PatientMutation) SetMedicalCoverageName(s string) {
	m.medical_coverage_name = &s
}

// MedicalCoverageName returns the value of the "medical_coverage_name" field in the mutation.
func (m *PatientMutation) MedicalCoverageName() (r string, exists bool) {
	v := m.medical_coverage_name
	if v == nil {
		return
	}
	return *v, true
}

// OldMedicalCoverageName returns the old "medical_coverage_name" field's value of the Patient entity.
// If the Patient object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PatientMutation) OldMedicalCoverageName(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMedicalCoverageName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMedicalCoverageName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMedicalCoverageName: %w", err)
	}
	return oldValue.MedicalCoverageName, nil
}

// ClearMedicalCoverageName clears the value of the "medical_coverage_name" field.
func (m *PatientMutation) ClearMedicalCoverageName() {
	m.medical_coverage_name = nil
	m.clearedFields[patient.FieldMedicalCoverageName] = struct{}{}
}

// MedicalCoverageNameCleared returns if the "medical_coverage_name" field was cleared in this mutation.
func (m *PatientMutation) MedicalCoverageNameCleared() bool {
	_, ok := m.clearedFields[patient.FieldMedicalCoverageName]
	return ok
}

// ResetMedicalCoverageName resets all changes to the "medical_coverage_name" field.
func (m *PatientMutation) ResetMedicalCoverageName() {
	m.medical_coverage_name = nil
	delete(m.clearedFields, patient.FieldMedicalCoverageName)
}

// SetMemberNumber sets the "member_number" field.
func (m *PatientMutation) SetMemberNumber(s string) {
	m.member_number = &s
}

// MemberNumber returns the value of the "member_number" field in the mutation.
func (m *PatientMutation) MemberNumber() (r string, exists bool) {
	v := m.member_number
	if v == nil {
		return
	}
	return *v, true
}

// OldMemberNumber returns the old "member_number" field's value of the Patient entity.
// If the Patient object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PatientMutation) OldMemberNumber(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMemberNumber is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMemberNumber requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMemberNumber: %w", err)
	}
	return oldValue.MemberNumber, nil
}

// ClearMemberNumber clears the value of the "member_number" field.
func (m *PatientMutation) ClearMemberNumber() {
	m.member_number = nil
	m.clearedFields[patient.FieldMemberNumber] = struct{}{}
}

// MemberNumberCleared returns if the "member_number" field was cleared in this mutation.
func (m *PatientMutation) MemberNumberCleared() bool {
	_, ok := m.clearedFields[patient.FieldMemberNumber]
	return ok
}

// ResetMemberNumber resets all changes to the "member_number" field.
func (m *PatientMutation) ResetMemberNumber() {
	m.member_number = nil
	delete(m.clearedFields, patient.FieldMemberNumber)
}

// ClearUser clears the "user" edge to the User entity.
func (m *PatientMutation) ClearUser() {
	m.cleareduser = true
	m.clearedFields[patient.FieldUserID] = struct{}{}
}

// UserCleared reports if the "user" edge to the User entity was cleared.
func (m *PatientMutation) UserCleared() bool {
	return m.cleareduser
}

// UserIDs returns the "user" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// UserID instead. It exists only for internal usage by the builders.
func (m *PatientMutation) UserIDs() (ids []uuid.UUID) {
	if id := m.user; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetUser resets all changes to the "user" edge.
func (m *PatientMutation) ResetUser() {
	m.user = nil
	m.cleareduser = false
}

// SetMedicalHistoryID sets the "medical_history" edge to the MedicalHistory entity by id.
func (m *PatientMutation) SetMedicalHistoryID(id uuid.UUID) {
	m.medical_history = &id
}

// ClearMedicalHistory clears the "medical_history" edge to the MedicalHistory entity.
func (m *PatientMutation) ClearMedicalHistory() {
	m.clearedmedical_history = true
}

// MedicalHistoryCleared reports if the "medical_history" edge to the MedicalHistory entity was cleared.
func (m *PatientMutation) MedicalHistoryCleared() bool {
	return m.clearedmedical_history
}

// MedicalHistoryID returns the "medical_history" edge ID in the mutation.
func (m *PatientMutation) MedicalHistoryID() (id uuid.UUID, exists bool) {
	if m.medical_history != nil {
		return *m.medical_history, true
	}
	return
}

// MedicalHistoryIDs returns the "medical_history" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// MedicalHistoryID instead. It exists only for internal usage by the builders.
func (m *PatientMutation) MedicalHistoryIDs() (ids []uuid.UUID) {
	if id := m.medical_history; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetMedicalHistory resets all changes to the "medical_history" edge.
func (m *PatientMutation) ResetMedicalHistory() {
	m.medical_history = nil
	m.clearedmedical_history = false
}

// SetPartnerID sets the "partner" edge to the Partner entity by id.
func (m *PatientMutation) SetPartnerID(id uuid.UUID) {
	m.partner = &id
}

// ClearPartner clears the "partner" edge to the Partner entity.
func (m *PatientMutation) ClearPartner() {
	m.clearedpartner = true
}

// PartnerCleared reports if the "partner" edge to the Partner entity was cleared.
func (m *PatientMutation) PartnerCleared() bool {
	return m.clearedpartner
}

// PartnerID returns the "partner" edge ID in the mutation.
func (m *PatientMutation) PartnerID() (id uuid.UUID, exists bool) {
	if m.partner != nil {
		return *m.partner, true
	}
	return
}

// PartnerIDs returns the "partner" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// PartnerID instead. It exists only for internal usage by the builders.
func (m *PatientMutation) PartnerIDs() (ids []uuid.UUID) {
	if id := m.partner; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetPartner resets all changes to the "partner" edge.
func (m *PatientMutation) ResetPartner() {
	m.partner = nil
	m.clearedpartner = false
}

// AddTreatmentIDs adds the "treatments" edge to the Treatment entity by ids.
func (m *PatientMutation) AddTreatmentIDs(ids ...uuid.UUID) {
	if m.treatments == nil {
		m.treatments = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.treatments[ids[i]] = struct{}{}
	}
}

// ClearTreatments clears the "treatments" edge to the Treatment entity.
func (m *PatientMutation) ClearTreatments() {
	m.clearedtreatments = true
}

// TreatmentsCleared reports if the "treatments" edge to the Treatment entity was cleared.
func (m *PatientMutation) TreatmentsCleared() bool {
	return m.clearedtreatments
}

// RemoveTreatmentIDs removes the "treatments" edge to the Treatment entity by IDs.
func (m *PatientMutation) RemoveTreatmentIDs(ids ...uuid.UUID) {
	if m.removedtreatments == nil {
		m.removedtreatments = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.treatments, ids[i])
		m.removedtreatments[ids[i]] = struct{}{}
	}
}

// RemovedTreatments returns the removed IDs of the "treatments" edge to the Treatment entity.
func (m *PatientMutation) RemovedTreatmentsIDs() (ids []uuid.UUID) {
	for id := range m.removedtreatments {
		ids = append(ids, id)
	}
	return
}

// TreatmentsIDs returns the "treatments" edge IDs in the mutation.
func (m *PatientMutation) TreatmentsIDs() (ids []uuid.UUID) {
	for id := range m.treatments {
		ids = append(ids, id)
	}
	return
}

// ResetTreatments resets all changes to the "treatments" edge.
func (m *PatientMutation) ResetTreatments() {
	m.treatments = nil
	m.clearedtreatments = false
	m.removedtreatments = nil
}

// Where appends a list predicates to the PatientMutation builder.
func (m *PatientMutation) Where(ps ...predicate.Patient) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the PatientMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *PatientMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Patient, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *PatientMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *PatientMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Patient).
func (m *PatientMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *PatientMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.created_at != nil {
		fields = append(fields, patient.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, patient.FieldUpdatedAt)
	}
	if m.user != nil {
		fields = append(fields, patient.FieldUserID)
	}
	if m.occupation != nil {
		fields = append(fields, patient.FieldOccupation)
	}
	if m.medical_coverage_id != nil {
		fields = append(fields, patient.FieldMedicalCoverageID)
	}
	if m.medical_coverage_name != nil {
		fields = append(fields, patient.FieldMedicalCoverageName)
	}
	if m.member_number != nil {
		fields = append(fields, patient.FieldMemberNumber)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *PatientMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case patient.FieldCreatedAt:
		return m.CreatedAt()
	case patient.FieldUpdatedAt:
		return m.UpdatedAt()
	case patient.FieldUserID:
		return m.UserID()
	case patient.FieldOccupation:
		return m.Occupation()
	case patient.FieldMedicalCoverageID:
		return m.MedicalCoverageID()
	case patient.FieldMedicalCoverageName:
		return m.MedicalCoverageName()
	case patient.FieldMemberNumber:
		return m.MemberNumber()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *PatientMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case patient.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case patient.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case patient.FieldUserID:
		return m.OldUserID(ctx)
	case patient.FieldOccupation:
		return m.OldOccupation(ctx)
	case patient.FieldMedicalCoverageID:
		return m.OldMedicalCoverageID(ctx)
	case patient.FieldMedicalCoverageName:
		return m.OldMedicalCoverageName(ctx)
	case patient.FieldMemberNumber:
		return m.OldMemberNumber(ctx)
	}
	return nil, fmt.Errorf("unknown Patient field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PatientMutation) SetField(name string, value ent.Value) error {
	switch name {
	case patient.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case patient.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case patient.FieldUserID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case patient.FieldOccupation:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOccupation(v)
		return nil
	case patient.FieldMedicalCoverageID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMedicalCoverageID(v)
		return nil
	case patient.FieldMedicalCoverageName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMedicalCoverageName(v)
		return nil
	case patient.FieldMemberNumber:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMemberNumber(v)
		return nil
	}
	return fmt.Errorf("unknown Patient field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *PatientMutation) AddedFields() []string {
	var fields []string
	if m.addmedical_coverage_id != nil {
		fields = append(fields, patient.FieldMedicalCoverageID)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *PatientMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case patient.FieldMedicalCoverageID:
		return m.AddedMedicalCoverageID()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PatientMutation) AddField(name string, value ent.Value) error {
	switch name {
	case patient.FieldMedicalCoverageID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddMedicalCoverageID(v)
		return nil
	}
	return fmt.Errorf("unknown Patient numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *PatientMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(patient.FieldOccupation) {
		fields = append(fields, patient.FieldOccupation)
	}
	if m.FieldCleared(patient.FieldMedicalCoverageID) {
		fields = append(fields, patient.FieldMedicalCoverageID)
	}
	if m.FieldCleared(patient.FieldMedicalCoverageName) {
		fields = append(fields, patient.FieldMedicalCoverageName)
	}
	if m.FieldCleared(patient.FieldMemberNumber) {
		fields = append(fields, patient.FieldMemberNumber)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *PatientMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *PatientMutation) ClearField(name string) error {
	switch name {
	case patient.FieldOccupation:
		m.ClearOccupation()
		return nil
	case patient.FieldMedicalCoverageID:
		m.ClearMedicalCoverageID()
		return nil
	case patient.FieldMedicalCoverageName:
		m.ClearMedicalCoverageName()
		return nil
	case patient.FieldMemberNumber:
		m.ClearMemberNumber()
		return nil
	}
	return fmt.Errorf("unknown Patient nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *PatientMutation) ResetField(name string) error {
	switch name {
	case patient.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case patient.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case patient.FieldUserID:
		m.ResetUserID()
		return nil
	case patient.FieldOccupation:
		m.ResetOccupation()
		return nil
	case patient.FieldMedicalCoverageID:
		m.ResetMedicalCoverageID()
		return nil
	case patient.FieldMedicalCoverageName:
		m.ResetMedicalCoverageName()
		return nil
	case patient.FieldMemberNumber:
		m.ResetMemberNumber()
		return nil
	}
	return fmt.Errorf("unknown Patient field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *PatientMutation) AddedEdges() []string {
	edges := make([]string, 0, 4)
	if m.user != nil {
		edges = append(edges, patient.EdgeUser)
	}
	if m.medical_history != nil {
		edges = append(edges, patient.EdgeMedicalHistory)
	}
	if m.partner != nil {
		edges = append(edges, patient.EdgePartner)
	}
	if m.treatments != nil {
		edges = append(edges, patient.EdgeTreatments)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *PatientMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case patient.EdgeUser:
		if id := m.user; id != nil {
			return []ent.Value{*id}
		}
	case patient.EdgeMedicalHistory:
		if id := m.medical_history; id != nil {
			return []ent.Value{*id}
		}
	case patient.EdgePartner:
		if id := m.partner; id != nil {
			return []ent.Value{*id}
		}
	case patient.EdgeTreatments:
		ids := make([]ent.Value, 0, len(m.treatments))
		for id := range m.treatments {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *PatientMutation) RemovedEdges() []string {
	edges := make([]string, 0, 4)
	if m.removedtreatments != nil {
		edges = append(edges, patient.EdgeTreatments)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *PatientMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case patient.EdgeTreatments:
		ids := make([]ent.Value, 0, len(m.removedtreatments))
		for id := range m.removedtreatments {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *PatientMutation) ClearedEdges() []string {
	edges := make([]string, 0, 4)
	if m.cleareduser {
		edges = append(edges, patient.EdgeUser)
	}
	if m.clearedmedical_history {
		edges = append(edges, patient.EdgeMedicalHistory)
	}
	if m.clearedpartner {
		edges = append(edges, patient.EdgePartner)
	}
	if m.clearedtreatments {
		edges = append(edges, patient.EdgeTreatments)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *PatientMutation) EdgeCleared(name string) bool {
	switch name {
	case patient.EdgeUser:
		return m.cleareduser
	case patient.EdgeMedicalHistory:
		return m.clearedmedical_history
	case patient.EdgePartner:
		return m.clearedpartner
	case patient.EdgeTreatments:
		return m.clearedtreatments
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *PatientMutation) ClearEdge(name string) error {
	switch name {
	case patient.EdgeUser:
		m.ClearUser()
		return nil
	case patient.EdgeMedicalHistory:
		m.ClearMedicalHistory()
		return nil
	case patient.EdgePartner:
		m.ClearPartner()
		return nil
	}
	return fmt.Errorf("unknown Patient unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *PatientMutation) ResetEdge(name string) error {
	switch name {
	case patient.EdgeUser:
		m.ResetUser()
		return nil
	case patient.EdgeMedicalHistory:
		m.ResetMedicalHistory()
		return nil
	case patient.EdgePartner:
		m.ResetPartner()
		return nil
	case patient.EdgeTreatments:
		m.ResetTreatments()
		return nil
	}
	return fmt.Errorf("unknown Patient edge %s", name)
}

// PunctureMutation represents an operation that mutates the Puncture nodes in the graph.
type PunctureMutation struct {
	config
	op               Op
	typ              string
	id               *uuid.UUID
	created_at       *time.Time
	date             *time.Time
	operating_room   *string
	complications    *string
	clearedFields    map[string]struct{}
	treatment        *uuid.UUID
	clearedtreatment bool
	operator         *uuid.UUID
	clearedoperator  bool
	oocytes          map[uuid.UUID]struct{}
	removedoocytes   map[uuid.UUID]struct{}
	clearedoocytes   bool
	done             bool
	oldValue         func(context.Context) (*Puncture, error)
	predicates       []predicate.Puncture
}

var _ ent.Mutation = (*PunctureMutation)(nil)

// punctureOption allows management of the mutation configuration using functional options.
type punctureOption func(*PunctureMutation)

// newPunctureMutation creates new mutation for the Puncture entity.
func newPunctureMutation(c config, op Op, opts ...punctureOption) *PunctureMutation {
	m := &PunctureMutation{
		config:        c,
		op:            op,
		typ:           TypePuncture,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withPunctureID sets the ID field of the mutation.
func withPunctureID(id uuid.UUID) punctureOption {
	return func(m *PunctureMutation) {
		var (
			err   error
			once  sync.Once
			value *Puncture
		)
		m.oldValue = func(ctx context.Context) (*Puncture, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Puncture.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withPuncture sets the old Puncture of the mutation.
func withPuncture(node *Puncture) punctureOption {
	return func(m *PunctureMutation) {
		m.oldValue = func(context.Context) (*Puncture, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m PunctureMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m PunctureMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("repo: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Puncture entities.
func (m *PunctureMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *PunctureMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *PunctureMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Puncture.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *PunctureMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *PunctureMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Puncture entity.
// If the Puncture object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PunctureMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *PunctureMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetTreatmentID sets the "treatment_id" field.
func (m *PunctureMutation) SetTreatmentID(u uuid.UUID) {
	m.treatment = &u
}

// TreatmentID returns the value of the "treatment_id" field in the mutation.
func (m *PunctureMutation) TreatmentID() (r uuid.UUID, exists bool) {
	v := m.treatment
	if v == nil {
		return
	}
	return *v, true
}

// OldTreatmentID returns the old "treatment_id" field's value of the Puncture entity.
// If the Puncture object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PunctureMutation) OldTreatmentID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTreatmentID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTreatmentID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTreatmentID: %w", err)
	}
	return oldValue.TreatmentID, nil
}

// ResetTreatmentID resets all changes to the "treatment_id" field.
func (m *PunctureMutation) ResetTreatmentID() {
	m.treatment = nil
}

// SetOperatorID sets the "operator_id" field.
func (m *PunctureMutation) SetOperatorID(u uuid.UUID) {
	m.operator = &u
}

// OperatorID returns the value of the "operator_id" field in the mutation.
func (m *PunctureMutation) OperatorID() (r uuid.UUID, exists bool) {
	v := m.operator
	if v == nil {
		return
	}
	return *v, true
}

// OldOperatorID returns the old "operator_id" field's value of the Puncture entity.
// If the Puncture object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PunctureMutation) OldOperatorID(ctx context.Context) (v *uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOperatorID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOperatorID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOperatorID: %w", err)
	}
	return oldValue.OperatorID, nil
}

// ClearOperatorID clears the value of the "operator_id" field.
func (m *PunctureMutation) ClearOperatorID() {
	m.operator = nil
	m.clearedFields[puncture.FieldOperatorID] = struct{}{}
}

// OperatorIDCleared returns if the "operator_id" field was cleared in this mutation.
func (m *PunctureMutation) OperatorIDCleared() bool {
	_, ok := m.clearedFields[puncture.FieldOperatorID]
	return ok
}

// ResetOperatorID resets all changes to the "operator_id" field.
func (m *PunctureMutation) ResetOperatorID() {
	m.operator = nil
	delete(m.clearedFields, puncture.FieldOperatorID)
}

// SetDate sets the "date" field.
func (m *PunctureMutation) SetDate(t time.Time) {
	m.date = &t
}

// Date returns the value of the "date" field in the mutation.
func (m *PunctureMutation) Date() (r time.Time, exists bool) {
	v := m.date
	if v == nil {
		return
	}
	return *v, true
}

// OldDate returns the old "date" field's value of the Puncture entity.
// If the Puncture object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PunctureMutation) OldDate(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDate: %w", err)
	}
	return oldValue.Date, nil
}

// ResetDate resets all changes to the "date" field.
func (m *PunctureMutation) ResetDate() {
	m.date = nil
}

// SetOperatingRoom sets the "operating_room" field.
func (m *PunctureMutation) SetOperatingRoom(s string) {
	m.operating_room = &s
}

// OperatingRoom returns the value of the "operating_room" field in the mutation.
func (m *PunctureMutation) OperatingRoom() (r string, exists bool) {
	v := m.operating_room
	if v == nil {
		return
	}
	return *v, true
}

// OldOperatingRoom returns the old "operating_room" field's value of the Puncture entity.
// If the Puncture object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PunctureMutation) OldOperatingRoom(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOperatingRoom is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOperatingRoom requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOperatingRoom: %w", err)
	}
	return oldValue.OperatingRoom, nil
}

// ResetOperatingRoom resets all changes to the "operating_room" field.
func (m *PunctureMutation) ResetOperatingRoom() {
	m.operating_room = nil
}

// SetComplications sets the "complications" field.
func (m *PunctureMutation) SetComplications(s string) {
	m.complications = &s
}

// Complications returns the value of the "complications" field in the mutation.
func (m *PunctureMutation) Complications() (r string, exists bool) {
	v := m.complications
	if v == nil {
		return
	}
	return *v, true
}

// OldComplications returns the old "complications" field's value of the Puncture entity.
// If the Puncture object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PunctureMutation) OldComplications(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldComplications is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldComplications requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldComplications: %w", err)
	}
	return oldValue.Complications, nil
}

// ClearComplications clears the value of the "complications" field.
func (m *PunctureMutation) ClearComplications() {
	m.complications = nil
	m.clearedFields[puncture.FieldComplications] = struct{}{}
}

// ComplicationsCleared returns if the "complications" field was cleared in this mutation.
func (m *PunctureMutation) ComplicationsCleared() bool {
	_, ok := m.clearedFields[puncture.FieldComplications]
	return ok
}

// ResetComplications resets all changes to the "complications" field.
func (m *PunctureMutation) ResetComplications() {
	m.complications = nil
	delete(m.clearedFields, puncture.FieldComplications)
}

// ClearTreatment clears the "treatment" edge to the Treatment entity.
func (m *PunctureMutation) ClearTreatment() {
	m.clearedtreatment = true
	m.clearedFields[puncture.FieldTreatmentID] = struct{}{}
}

// TreatmentCleared reports if the "treatment" edge to the Treatment entity was cleared.
func (m *PunctureMutation) TreatmentCleared() bool {
	return m.clearedtreatment
}

// TreatmentIDs returns the "treatment" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// TreatmentID instead. It exists only for internal usage by the builders.
func (m *PunctureMutation) TreatmentIDs() (ids []uuid.UUID) {
	if id := m.treatment; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetTreatment resets all changes to the "treatment" edge.
func (m *PunctureMutation) ResetTreatment() {
	m.treatment = nil
	m.clearedtreatment = false
}

// ClearOperator clears the "operator" edge to the User entity.
func (m *PunctureMutation) ClearOperator() {
	m.clearedoperator = true
	m.clearedFields[puncture.FieldOperatorID] = struct{}{}
}

// OperatorCleared reports if the "operator" edge to the User entity was cleared.
func (m *PunctureMutation) OperatorCleared() bool {
	return m.OperatorIDCleared() || m.clearedoperator
}

// OperatorIDs returns the "operator" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// OperatorID instead. It exists only for internal usage by the builders.
func (m *PunctureMutation) OperatorIDs() (ids []uuid.UUID) {
	if id := m.operator; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetOperator resets all changes to the "operator" edge.
func (m *PunctureMutation) ResetOperator() {
	m.operator = nil
	m.clearedoperator = false
}

// AddOocyteIDs adds the "oocytes" edge to the Oocyte entity by ids.
func (m *PunctureMutation) AddOocyteIDs(ids ...uuid.UUID) {
	if m.oocytes == nil {
		m.oocytes = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.oocytes[ids[i]] = struct{}{}
	}
}

// ClearOocytes clears the "oocytes" edge to the Oocyte entity.
func (m *PunctureMutation) ClearOocytes() {
	m.clearedoocytes = true
}

// OocytesCleared reports if the "oocytes" edge to the Oocyte entity was cleared.
func (m *PunctureMutation) OocytesCleared() bool {
	return m.clearedoocytes
}

// RemoveOocyteIDs removes the "oocytes" edge to the Oocyte entity by IDs.
func (m *PunctureMutation) RemoveOocyteIDs(ids ...uuid.UUID) {
	if m.removedoocytes == nil {
		m.removedoocytes = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.oocytes, ids[i])
		m.removedoocytes[ids[i]] = struct{}{}
	}
}

// RemovedOocytes returns the removed IDs of the "oocytes" edge to the Oocyte entity.
func (m *PunctureMutation) RemovedOocytesIDs() (ids []uuid.UUID) {
	for id := range m.removedoocytes {
		ids = append(ids, id)
	}
	return
}

// OocytesIDs returns the "oocytes" edge IDs in the mutation.
func (m *PunctureMutation) OocytesIDs() (ids []uuid.UUID) {
	for id := range m.oocytes {
		ids = append(ids, id)
	}
	return
}

// ResetOocytes resets all changes to the "oocytes" edge.
func (m *PunctureMutation) ResetOocytes() {
	m.oocytes = nil
	m.clearedoocytes = false
	m.removedoocytes = nil
}

// Where appends a list predicates to the PunctureMutation builder.
func (m *PunctureMutation) Where(ps ...predicate.Puncture) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the PunctureMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *PunctureMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Puncture, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *PunctureMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *PunctureMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Puncture).
func (m *PunctureMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *PunctureMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.created_at != nil {
		fields = append(fields, puncture.FieldCreatedAt)
	}
	if m.treatment != nil {
		fields = append(fields, puncture.FieldTreatmentID)
	}
	if m.operator != nil {
		fields = append(fields, puncture.FieldOperatorID)
	}
	if m.date != nil {
		fields = append(fields, puncture.FieldDate)
	}
	if m.operating_room != nil {
		fields = append(fields, puncture.FieldOperatingRoom)
	}
	if m.complications != nil {
		fields = append(fields, puncture.FieldComplications)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *PunctureMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case puncture.FieldCreatedAt:
		return m.CreatedAt()
	case puncture.FieldTreatmentID:
		return m.TreatmentID()
	case puncture.FieldOperatorID:
		return m.OperatorID()
	case puncture.FieldDate:
		return m.Date()
	case puncture.FieldOperatingRoom:
		return m.OperatingRoom()
	case puncture.FieldComplications:
		return m.Complications()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *PunctureMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case puncture.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case puncture.FieldTreatmentID:
		return m.OldTreatmentID(ctx)
	case puncture.FieldOperatorID:
		return m.OldOperatorID(ctx)
	case puncture.FieldDate:
		return m.OldDate(ctx)
	case puncture.FieldOperatingRoom:
		return m.OldOperatingRoom(ctx)
	case puncture.FieldComplications:
		return m.OldComplications(ctx)
	}
	return nil, fmt.Errorf("unknown Puncture field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PunctureMutation) SetField(name string, value ent.Value) error {
	switch name {
	case puncture.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case puncture.FieldTreatmentID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTreatmentID(v)
		return nil
	case puncture.FieldOperatorID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOperatorID(v)
		return nil
	case puncture.FieldDate:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDate(v)
		return nil
	case puncture.FieldOperatingRoom:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOperatingRoom(v)
		return nil
	case puncture.FieldComplications:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetComplications(v)
		return nil
	}
	return fmt.Errorf("unknown Puncture field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *PunctureMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *PunctureMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PunctureMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Puncture numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *PunctureMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(puncture.FieldOperatorID) {
		fields = append(fields, puncture.FieldOperatorID)
	}
	if m.FieldCleared(puncture.FieldComplications) {
		fields = append(fields, puncture.FieldComplications)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *PunctureMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *PunctureMutation) ClearField(name string) error {
	switch name {
	case puncture.FieldOperatorID:
		m.ClearOperatorID()
		return nil
	case puncture.FieldComplications:
		m.ClearComplications()
		return nil
	}
	return fmt.Errorf("unknown Puncture nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *PunctureMutation) ResetField(name string) error {
	switch name {
	case puncture.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case puncture.FieldTreatmentID:
		m.ResetTreatmentID()
		return nil
	case puncture.FieldOperatorID:
		m.ResetOperatorID()
		return nil
	case puncture.FieldDate:
		m.ResetDate()
		return nil
	case puncture.FieldOperatingRoom:
		m.ResetOperatingRoom()
		return nil
	case puncture.FieldComplications:
		m.ResetComplications()
		return nil
	}
	return fmt.Errorf("unknown Puncture field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *PunctureMutation) AddedEdges() []string {
	edges := make([]string, 0, 3)
	if m.treatment != nil {
		edges = append(edges, puncture.EdgeTreatment)
	}
	if m.operator != nil {
		edges = append(edges, puncture.EdgeOperator)
	}
	if m.oocytes != nil {
		edges = append(edges, puncture.EdgeOocytes)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *PunctureMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case puncture.EdgeTreatment:
		if id := m.treatment; id != nil {
			return []ent.Value{*id}
		}
	case puncture.EdgeOperator:
		if id := m.operator; id != nil {
			return []ent.Value{*id}
		}
	case puncture.EdgeOocytes:
		ids := make([]ent.Value, 0, len(m.oocytes))
		for id := range m.oocytes {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *PunctureMutation) RemovedEdges() []string {
	edges := make([]string, 0, 3)
	if m.removedoocytes != nil {
		edges = append(edges, puncture.EdgeOocytes)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *PunctureMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case puncture.EdgeOocytes:
		ids := make([]ent.Value, 0, len(m.removedoocytes))
		for id := range m.removedoocytes {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *PunctureMutation) ClearedEdges() []string {
	edges := make([]string, 0, 3)
	if m.clearedtreatment {
		edges = append(edges, puncture.EdgeTreatment)
	}
	if m.clearedoperator {
		edges = append(edges, puncture.EdgeOperator)
	}
	if m.clearedoocytes {
		edges = append(edges, puncture.EdgeOocytes)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *PunctureMutation) EdgeCleared(name string) bool {
	switch name {
	case puncture.EdgeTreatment:
		return m.clearedtreatment
	case puncture.EdgeOperator:
		return m.clearedoperator
	case puncture.EdgeOocytes:
		return m.clearedoocytes
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *PunctureMutation) ClearEdge(name string) error {
	switch name {
	case puncture.EdgeTreatment:
		m.ClearTreatment()
		return nil
	case puncture.EdgeOperator:
		m.ClearOperator()
		return nil
	}
	return fmt.Errorf("unknown Puncture unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *PunctureMutation) ResetEdge(name string) error {
	switch name {
	case puncture.EdgeTreatment:
		m.ResetTreatment()
		return nil
	case puncture.EdgeOperator:
		m.ResetOperator()
		return nil
	case puncture.EdgeOocytes:
		m.ResetOocytes()
		return nil
	}
	return fmt.Errorf("unknown Puncture edge %s", name)
}

// StudyResultMutation represents an operation that mutates the StudyResult nodes in the graph.
type StudyResultMutation struct {
	config
	op               Op
	typ              string
	id               *uuid.UUID
	created_at       *time.Time
	study_type       *string
	study_name       *string
	result_file_key  *string
	result_text      *string
	clearedFields    map[string]struct{}
	treatment        *uuid.UUID
	clearedtreatment bool
	done             bool
	oldValue         func(context.Context) (*StudyResult, error)
	predicates       []predicate.StudyResult
}

var _ ent.Mutation = (*StudyResultMutation)(nil)

// studyresultOption allows management of the mutation configuration using functional options.
type studyresultOption func(*StudyResultMutation)

// newStudyResultMutation creates new mutation for the StudyResult entity.
func newStudyResultMutation(c config, op Op, opts ...studyresultOption) *StudyResultMutation {
	m := &StudyResultMutation{
		config:        c,
		op:            op,
		typ:           TypeStudyResult,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withStudyResultID sets the ID field of the mutation.
func withStudyResultID(id uuid.UUID) studyresultOption {
	return func(m *StudyResultMutation) {
		var (
			err   error
			once  sync.Once
			value *StudyResult
		)
		m.oldValue = func(ctx context.Context) (*StudyResult, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().StudyResult.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withStudyResult sets the old StudyResult of the mutation.
func withStudyResult(node *StudyResult) studyresultOption {
	return func(m *StudyResultMutation) {
		m.oldValue = func(context.Context) (*StudyResult, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m StudyResultMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m StudyResultMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("repo: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of StudyResult entities.
func (m *StudyResultMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *StudyResultMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *StudyResultMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().StudyResult.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *StudyResultMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *StudyResultMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the StudyResult entity.
// If the StudyResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StudyResultMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *StudyResultMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetTreatmentID sets the "treatment_id" field.
func (m *StudyResultMutation) SetTreatmentID(u uuid.UUID) {
	m.treatment = &u
}

// TreatmentID returns the value of the "treatment_id" field in the mutation.
func (m *StudyResultMutation) TreatmentID() (r uuid.UUID, exists bool) {
	v := m.treatment
	if v == nil {
		return
	}
	return *v, true
}

// OldTreatmentID returns the old "treatment_id" field's value of the StudyResult entity.
// If the StudyResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StudyResultMutation) OldTreatmentID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTreatmentID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTreatmentID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTreatmentID: %w", err)
	}
	return oldValue.TreatmentID, nil
}

// ResetTreatmentID resets all changes to the "treatment_id" field.
func (m *StudyResultMutation) ResetTreatmentID() {
	m.treatment = nil
}

// SetStudyType sets the "study_type" field.
func (m *StudyResultMutation) SetStudyType(s string) {
	m.study_type = &s
}

// StudyType returns the value of the "study_type" field in the mutation.
func (m *StudyResultMutation) StudyType() (r string, exists bool) {
	v := m.study_type
	if v == nil {
		return
	}
	return *v, true
}

// OldStudyType returns the old "study_type" field's value of the StudyResult entity.
// If the StudyResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StudyResultMutation) OldStudyType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStudyType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStudyType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStudyType: %w", err)
	}
	return oldValue.StudyType, nil
}

// ResetStudyType resets all changes to the "study_type" field.
func (m *StudyResultMutation) ResetStudyType() {
	m.study_type = nil
}

// SetStudyName sets the "study_name" field.
func (m *StudyResultMutation) SetStudyName(s string) {
	m.study_name = &s
}

// StudyName returns the value of the "study_name" field in the mutation.
func (m *StudyResultMutation) StudyName() (r string, exists bool) {
	v := m.study_name
	if v == nil {
		return
	}
	return *v, true
}

// OldStudyName returns the old "study_name" field's value of the StudyResult entity.
// If the StudyResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StudyResultMutation) OldStudyName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStudyName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStudyName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStudyName: %w", err)
	}
	return oldValue.StudyName, nil
}

// ResetStudyName resets all changes to the "study_name" field.
func (m *StudyResultMutation) ResetStudyName() {
	m.study_name = nil
}

// SetResultFileKey sets the "result_file_key" field.
func (m *StudyResultMutation) SetResultFileKey(s string) {
	m.result_file_key = &s
}

// ResultFileKey returns the value of the "result_file_key" field in the mutation.
func (m *StudyResultMutation) ResultFileKey() (r string, exists bool) {
	v := m.result_file_key
	if v == nil {
		return
	}
	return *v, true
}

// OldResultFileKey returns the old "result_file_key" field's value of the StudyResult entity.
// If the StudyResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StudyResultMutation) OldResultFileKey(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldResultFileKey is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldResultFileKey requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldResultFileKey: %w", err)
	}
	return oldValue.ResultFileKey, nil
}

// ClearResultFileKey clears the value of the "result_file_key" field.
func (m *StudyResultMutation) ClearResultFileKey() {
	m.result_file_key = nil
	m.clearedFields[studyresult.FieldResultFileKey] = struct{}{}
}

// ResultFileKeyCleared returns if the "result_file_key" field was cleared in this mutation.
func (m *StudyResultMutation) ResultFileKeyCleared() bool {
	_, ok := m.clearedFields[studyresult.FieldResultFileKey]
	return ok
}

// ResetResultFileKey resets all changes to the "result_file_key" field.
func (m *StudyResultMutation) ResetResultFileKey() {
	m.result_file_key = nil
	delete(m.clearedFields, studyresult.FieldResultFileKey)
}

// SetResultText sets the "result_text" field.
func (m *StudyResultMutation) SetResultText(s string) {
	m.result_text = &s
}

// ResultText returns the value of the "result_text" field in the mutation.
func (m *StudyResultMutation) ResultText() (r string, exists bool) {
	v := m.result_text
	if v == nil {
		return
	}
	return *v, true
}

// OldResultText returns the old "result_text" field's value of the StudyResult entity.
// If the StudyResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StudyResultMutation) OldResultText(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldResultText is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldResultText requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldResultText: %w", err)
	}
	return oldValue.ResultText, nil
}

// ClearResultText clears the value of the "result_text" field.
func (m *StudyResultMutation) ClearResultText() {
	m.result_text = nil
	m.clearedFields[studyresult.FieldResultText] = struct{}{}
}

// ResultTextCleared returns if the "result_text" field was cleared in this mutation.
func (m *StudyResultMutation) ResultTextCleared() bool {
	_, ok := m.clearedFields[studyresult.FieldResultText]
	return ok
}

// ResetResultText resets all changes to the "result_text" field.
func (m *StudyResultMutation) ResetResultText() {
	m.result_text = nil
	delete(m.clearedFields, studyresult.FieldResultText)
}

// ClearTreatment clears the "treatment" edge to the Treatment entity.
func (m *StudyResultMutation) ClearTreatment() {
	m.clearedtreatment = true
	m.clearedFields[studyresult.FieldTreatmentID] = struct{}{}
}

// TreatmentCleared reports if the "treatment" edge to the Treatment entity was cleared.
func (m *StudyResultMutation) TreatmentCleared() bool {
	return m.clearedtreatment
}

// TreatmentIDs returns the "treatment" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// TreatmentID instead. It exists only for internal usage by the builders.
func (m *StudyResultMutation) TreatmentIDs() (ids []uuid.UUID) {
	if id := m.treatment; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetTreatment resets all changes to the "treatment" edge.
func (m *StudyResultMutation) ResetTreatment() {
	m.treatment = nil
	m.clearedtreatment = false
}

// Where appends a list predicates to the StudyResultMutation builder.
func (m *StudyResultMutation) Where(ps ...predicate.StudyResult) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the StudyResultMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *StudyResultMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.StudyResult, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *StudyResultMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *StudyResultMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (StudyResult).
func (m *StudyResultMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *StudyResultMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.created_at != nil {
		fields = append(fields, studyresult.FieldCreatedAt)
	}
	if m.treatment != nil {
		fields = append(fields, studyresult.FieldTreatmentID)
	}
	if m.study_type != nil {
		fields = append(fields, studyresult.FieldStudyType)
	}
	if m.study_name != nil {
		fields = append(fields, studyresult.FieldStudyName)
	}
	if m.result_file_key != nil {
		fields = append(fields, studyresult.FieldResultFileKey)
	}
	if m.result_text != nil {
		fields = append(fields, studyresult.FieldResultText)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *StudyResultMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case studyresult.FieldCreatedAt:
		return m.CreatedAt()
	case studyresult.FieldTreatmentID:
		return m.TreatmentID()
	case studyresult.FieldStudyType:
		return m.StudyType()
	case studyresult.FieldStudyName:
		return m.StudyName()
	case studyresult.FieldResultFileKey:
		return m.ResultFileKey()
	case studyresult.FieldResultText:
		return m.ResultText()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *StudyResultMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case studyresult.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case studyresult.FieldTreatmentID:
		return m.OldTreatmentID(ctx)
	case studyresult.FieldStudyType:
		return m.OldStudyType(ctx)
	case studyresult.FieldStudyName:
		return m.OldStudyName(ctx)
	case studyresult.FieldResultFileKey:
		return m.OldResultFileKey(ctx)
	case studyresult.FieldResultText:
		return m.OldResultText(ctx)
	}
	return nil, fmt.Errorf("unknown StudyResult field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *StudyResultMutation) SetField(name string, value ent.Value) error {
	switch name {
	case studyresult.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case studyresult.FieldTreatmentID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTreatmentID(v)
		return nil
	case studyresult.FieldStudyType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStudyType(v)
		return nil
	case studyresult.FieldStudyName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStudyName(v)
		return nil
	case studyresult.FieldResultFileKey:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetResultFileKey(v)
		return nil
	case studyresult.FieldResultText:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetResultText(v)
		return nil
	}
	return fmt.Errorf("unknown StudyResult field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *StudyResultMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *StudyResultMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *StudyResultMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown StudyResult numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *StudyResultMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(studyresult.FieldResultFileKey) {
		fields = append(fields, studyresult.FieldResultFileKey)
	}
	if m.FieldCleared(studyresult.FieldResultText) {
		fields = append(fields, studyresult.FieldResultText)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *StudyResultMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *StudyResultMutation) ClearField(name string) error {
	switch name {
	case studyresult.FieldResultFileKey:
		m.ClearResultFileKey()
		return nil
	case studyresult.FieldResultText:
		m.ClearResultText()
		return nil
	}
	return fmt.Errorf("unknown StudyResult nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *StudyResultMutation) ResetField(name string) error {
	switch name {
	case studyresult.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case studyresult.FieldTreatmentID:
		m.ResetTreatmentID()
		return nil
	case studyresult.FieldStudyType:
		m.ResetStudyType()
		return nil
	case studyresult.FieldStudyName:
		m.ResetStudyName()
		return nil
	case studyresult.FieldResultFileKey:
		m.ResetResultFileKey()
		return nil
	case studyresult.FieldResultText:
		m.ResetResultText()
		return nil
	}
	return fmt.Errorf("unknown StudyResult field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *StudyResultMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.treatment != nil {
		edges = append(edges, studyresult.EdgeTreatment)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *StudyResultMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case studyresult.EdgeTreatment:
		if id := m.treatment; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *StudyResultMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *StudyResultMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *StudyResultMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedtreatment {
		edges = append(edges, studyresult.EdgeTreatment)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *StudyResultMutation) EdgeCleared(name string) bool {
	switch name {
	case studyresult.EdgeTreatment:
		return m.clearedtreatment
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *StudyResultMutation) ClearEdge(name string) error {
	switch name {
	case studyresult.EdgeTreatment:
		m.ClearTreatment()
		return nil
	}
	return fmt.Errorf("unknown StudyResult unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *StudyResultMutation) ResetEdge(name string) error {
	switch name {
	case studyresult.EdgeTreatment:
		m.ResetTreatment()
		return nil
	}
	return fmt.Errorf("unknown StudyResult edge %s", name)
}

// TreatmentMutation represents an operation that mutates the Treatment nodes in the graph.
type TreatmentMutation struct {
	config
	op                     Op
	typ                    string
	id                     *uuid.UUID
	created_at             *time.Time
	updated_at             *time.Time
	objective              *treatment.Objective
	status                 *treatment.Status
	stimulation_protocol   *string
	medication_type        *string
	medication_dose        *string
	medication_duration    *string
	oocytes_viable         *bool
	sperm_viable           *bool
	consent_document_key   *string
	clearedFields          map[string]struct{}
	patient                *uuid.UUID
	clearedpatient         bool
	doctor                 *uuid.UUID
	cleareddoctor          bool
	monitoring_days        map[uuid.UUID]struct{}
	removedmonitoring_days map[uuid.UUID]struct{}
	clearedmonitoring_days bool
	study_results          map[uuid.UUID]struct{}
	removedstudy_results   map[uuid.UUID]struct{}
	clearedstudy_results   bool
	medical_orders         map[uuid.UUID]struct{}
	removedmedical_orders  map[uuid.UUID]struct{}
	clearedmedical_orders  bool
	puncture               *uuid.UUID
	clearedpuncture        bool
	done                   bool
	oldValue               func(context.Context) (*Treatment, error)
	predicates             []predicate.Treatment
}

var _ ent.Mutation = (*TreatmentMutation)(nil)

// treatmentOption allows management of the mutation configuration using functional options.
type treatmentOption func(*TreatmentMutation)

// newTreatmentMutation creates new mutation for the Treatment entity.
func newTreatmentMutation(c config, op Op, opts ...treatmentOption) *TreatmentMutation {
	m := &TreatmentMutation{
		config:        c,
		op:            op,
		typ:           TypeTreatment,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withTreatmentID sets the ID field of the mutation.
func withTreatmentID(id uuid.UUID) treatmentOption {
	return func(m *TreatmentMutation) {
		var (
			err   error
			once  sync.Once
			value *Treatment
		)
		m.oldValue = func(ctx context.Context) (*Treatment, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Treatment.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withTreatment sets the old Treatment of the mutation.
func withTreatment(node *Treatment) treatmentOption {
	return func(m *TreatmentMutation) {
		m.oldValue = func(context.Context) (*Treatment, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m TreatmentMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m TreatmentMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("repo: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Treatment entities.
func (m *TreatmentMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *TreatmentMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *TreatmentMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Treatment.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *TreatmentMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *TreatmentMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Treatment entity.
// If the Treatment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TreatmentMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *TreatmentMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *TreatmentMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *TreatmentMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Treatment entity.
// If the Treatment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TreatmentMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *TreatmentMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetPatientID sets the "patient_id" field.
func (m *TreatmentMutation) SetPatientID(u uuid.UUID) {
	m.patient = &u
}

// PatientID returns the value of the "patient_id" field in the mutation.
func (m *TreatmentMutation) PatientID() (r uuid.UUID, exists bool) {
	v := m.patient
	if v == nil {
		return
	}
	return *v, true
}

// OldPatientID returns the old "patient_id" field's value of the Treatment entity.
// If the Treatment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TreatmentMutation) OldPatientID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPatientID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPatientID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPatientID: %w", err)
	}
	return oldValue.PatientID, nil
}

// ResetPatientID resets all changes to the "patient_id" field.
func (m *TreatmentMutation) ResetPatientID() {
	m.patient = nil
}

// SetDoctorID sets the "doctor_id" field.
func (m *TreatmentMutation) SetDoctorID(u uuid.UUID) {
	m.doctor = &u
}

// DoctorID returns the value of the "doctor_id" field in the mutation.
func (m *TreatmentMutation) DoctorID() (r uuid.UUID, exists bool) {
	v := m.doctor
	if v == nil {
		return
	}
	return *v, true
}

// OldDoctorID returns the old "doctor_id" field's value of the Treatment entity.
// If the Treatment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TreatmentMutation) OldDoctorID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDoctorID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDoctorID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDoctorID: %w", err)
	}
	return oldValue.DoctorID, nil
}

// ResetDoctorID resets all changes to the "doctor_id" field.
func (m *TreatmentMutation) ResetDoctorID() {
	m.doctor = nil
}

// SetObjective sets the "objective" field.
func (m *TreatmentMutation) SetObjective(t treatment.Objective) {
	m.objective = &t
}

// Objective returns the value of the "objective" field in the mutation.
func (m *TreatmentMutation) Objective() (r treatment.Objective, exists bool) {
	v := m.objective
	if v == nil {
		return
	}
	return *v, true
}

// OldObjective returns the old "objective" field's value of the Treatment entity.
// If the Treatment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TreatmentMutation) OldObjective(ctx context.Context) (v treatment.Objective, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldObjective is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldObjective requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldObjective: %w", err)
	}
	return oldValue.Objective, nil
}

// ResetObjective resets all changes to the "objective" field.
func (m *TreatmentMutation) ResetObjective() {
	m.objective = nil
}

// SetStatus sets the "status" field.
func (m *TreatmentMutation) SetStatus(t treatment.Status) {
	m.status = &t
}

// Status returns the value of the "status" field in the mutation.
func (m *TreatmentMutation) Status() (r treatment.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Treatment entity.
// If the Treatment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TreatmentMutation) OldStatus(ctx context.Context) (v treatment.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *TreatmentMutation) ResetStatus() {
	m.status = nil
}

// SetStimulationProtocol sets the "stimulation_protocol" field.
func (m *TreatmentMutation) SetStimulationProtocol(s string) {
	m.stimulation_protocol = &s
}

// StimulationProtocol returns the value of the "stimulation_protocol" field in the mutation.
func (m *TreatmentMutation) StimulationProtocol() (r string, exists bool) {
	v := m.stimulation_protocol
	if v == nil {
		return
	}
	return *v, true
}

// OldStimulationProtocol returns the old "stimulation_protocol" field's value of the Treatment entity.
// If the Treatment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TreatmentMutation) OldStimulationProtocol(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStimulationProtocol is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStimulationProtocol requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStimulationProtocol: %w", err)
	}
	return oldValue.StimulationProtocol, nil
}

// ClearStimulationProtocol clears the value of the "stimulation_protocol" field.
func (m *TreatmentMutation) ClearStimulationProtocol() {
	m.stimulation_protocol = nil
	m.clearedFields[treatment.FieldStimulationProtocol] = struct{}{}
}

// StimulationProtocolCleared returns if the "stimulation_protocol" field was cleared in this mutation.
func (m *TreatmentMutation) StimulationProtocolCleared() bool {
	_, ok := m.clearedFields[treatment.FieldStimulationProtocol]
	return ok
}

// ResetStimulationProtocol resets all changes to the "stimulation_protocol" field.
func (m *TreatmentMutation) ResetStimulationProtocol() {
	m.stimulation_protocol = nil
	delete(m.clearedFields, treatment.FieldStimulationProtocol)
}

// SetMedicationType sets the "medication_type" field.
func (m *TreatmentMutation) SetMedicationType(s string) {
	m.medication_type = &s
}

// MedicationType returns the value of the "medication_type" field in the mutation.
func (m *TreatmentMutation) MedicationType() (r string, exists bool) {
	v := m.medication_type
	if v == nil {
		return
	}
	return *v, true
}

// OldMedicationType returns the old "medication_type" field's value of the Treatment entity.
// If the Treatment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TreatmentMutation) OldMedicationType(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMedicationType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMedicationType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMedicationType: %w", err)
	}
	return oldValue.MedicationType, nil
}

// ClearMedicationType clears the value of the "medication_type" field.
func (m *TreatmentMutation) ClearMedicationType() {
	m.medication_type = nil
	m.clearedFields[treatment.FieldMedicationType] = struct{}{}
}

// MedicationTypeCleared returns if the "medication_type" field was cleared in this mutation.
func (m *TreatmentMutation) MedicationTypeCleared() bool {
	_, ok := m.clearedFields[treatment.FieldMedicationType]
	return ok
}

// ResetMedicationType resets all changes to the "medication_type" field.
func (m *TreatmentMutation) ResetMedicationType() {
	m.medication_type = nil
	delete(m.clearedFields, treatment.FieldMedicationType)
}

// SetMedicationDose sets the "medication_dose" field.
func (m *TreatmentMutation) SetMedicationDose(s string) {
	m.medication_dose = &s
}

// MedicationDose returns the value of the "medication_dose" field in the mutation.
func (m *TreatmentMutation) MedicationDose() (r string, exists bool) {
	v := m.medication_dose
	if v == nil {
		return
	}
	return *v, true
}

// OldMedicationDose returns the old "medication_dose" field's value of the Treatment entity.
// If the Treatment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TreatmentMutation) OldMedicationDose(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMedicationDose is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMedicationDose requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMedicationDose: %w", err)
	}
	return oldValue.MedicationDose, nil
}

// ClearMedicationDose clears the value of the "medication_dose" field.
func (m *TreatmentMutation) ClearMedicationDose() {
	m.medication_dose = nil
	m.clearedFields[treatment.FieldMedicationDose] = struct{}{}
}

// MedicationDoseCleared returns if the "medication_dose" field was cleared in this mutation.
func (m *TreatmentMutation) MedicationDoseCleared() bool {
	_, ok := m.clearedFields[treatment.FieldMedicationDose]
	return ok
}

// ResetMedicationDose resets all changes to the "medication_dose" field.
func (m *TreatmentMutation) ResetMedicationDose() {
	m.medication_dose = nil
	delete(m.clearedFields, treatment.FieldMedicationDose)
}

// SetMedicationDuration sets the "medication_duration" field.
func (m *TreatmentMutation) SetMedicationDuration(s string) {
	m.medication_duration = &s
}

// MedicationDuration returns the value of the "medication_duration" field in the mutation.
func (m *TreatmentMutation) MedicationDuration() (r string, exists bool) {
	v := m.medication_duration
	if v == nil {
		return
	}
	return *v, true
}

// OldMedicationDuration returns the old "medication_duration" field's value of the Treatment entity.
// If the Treatment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TreatmentMutation) OldMedicationDuration(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMedicationDuration is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMedicationDuration requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMedicationDuration: %w", err)
	}
	return oldValue.MedicationDuration, nil
}

// ClearMedicationDuration clears the value of the "medication_duration" field.
func (m *TreatmentMutation) ClearMedicationDuration() {
	m.medication_duration = nil
	m.clearedFields[treatment.FieldMedicationDuration] = struct{}{}
}

// MedicationDurationCleared returns if the "medication_duration" field was cleared in this mutation.
func (m *TreatmentMutation) MedicationDurationCleared() bool {
	_, ok := m.clearedFields[treatment.FieldMedicationDuration]
	return ok
}

// ResetMedicationDuration resets all changes to the "medication_duration" field.
func (m *TreatmentMutation) ResetMedicationDuration() {
	m.medication_duration = nil
	delete(m.clearedFields, treatment.FieldMedicationDuration)
}

// SetOocytesViable sets the "oocytes_viable" field.
func (m *TreatmentMutation) SetOocytesViable(b bool) {
	m.oocytes_viable = &b
}

// OocytesViable returns the value of the "oocytes_viable" field in the mutation.
func (m *TreatmentMutation) OocytesViable() (r bool, exists bool) {
	v := m.oocytes_viable
	if v == nil {
		return
	}
	return *v, true
}

// OldOocytesViable returns the old "oocytes_viable" field's value of the Treatment entity.
// If the Treatment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TreatmentMutation) OldOocytesViable(ctx context.Context) (v *bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOocytesViable is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOocytesViable requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOocytesViable: %w", err)
	}
	return oldValue.OocytesViable, nil
}

// ClearOocytesViable clears the value of the "oocytes_viable" field.
func (m *TreatmentMutation) ClearOocytesViable() {
	m.oocytes_viable = nil
	m.clearedFields[treatment.FieldOocytesViable] = struct{}{}
}

// OocytesViableCleared returns if the "oocytes_viable" field was cleared in this mutation.
func (m *TreatmentMutation) OocytesViableCleared() bool {
	_, ok := m.clearedFields[treatment.FieldOocytesViable]
	return ok
}

// ResetOocytesViable resets all changes to the "oocytes_viable" field.
func (m *TreatmentMutation) ResetOocytesViable() {
	m.oocytes_viable = nil
	delete(m.clearedFields, treatment.FieldOocytesViable)
}

// SetSpermViable sets the "sperm_viable" field.
func (m *TreatmentMutation) SetSpermViable(b bool) {
	m.sperm_viable = &b
}

// SpermViable returns the value of the "sperm_viable" field in the mutation.
func (m *TreatmentMutation) SpermViable() (r bool, exists bool) {
	v := m.sperm_viable
	if v == nil {
		return
	}
	return *v, true
}

// OldSpermViable returns the old "sperm_viable" field's value of the Treatment entity.
// If the Treatment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TreatmentMutation) OldSpermViable(ctx context.Context) (v *bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSpermViable is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSpermViable requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSpermViable: %w", err)
	}
	return oldValue.SpermViable, nil
}

// ClearSpermViable clears the value of the "sperm_viable" field.
func (m *TreatmentMutation) ClearSpermViable() {
	m.sperm_viable = nil
	m.clearedFields[treatment.FieldSpermViable] = struct{}{}
}

// SpermViableCleared returns if the "sperm_viable" field was cleared in this mutation.
func (m *TreatmentMutation) SpermViableCleared() bool {
	_, ok := m.clearedFields[treatment.FieldSpermViable]
	return ok
}

// ResetSpermViable resets all changes to the "sperm_viable" field.
func (m *TreatmentMutation) ResetSpermViable() {
	m.sperm_viable = nil
	delete(m.clearedFields, treatment.FieldSpermViable)
}

// SetConsentDocumentKey sets the "consent_document_key" field.
func (m *TreatmentMutation) SetConsentDocumentKey(s string) {
	m.consent_document_key = &s
}

// ConsentDocumentKey returns the value of the "consent_document_key" field in the mutation.
func (m *TreatmentMutation) ConsentDocumentKey() (r string, exists bool) {
	v := m.consent_document_key
	if v == nil {
		return
	}
	return *v, true
}

// OldConsentDocumentKey returns the old "consent_document_key" field's value of the Treatment entity.
// If the Treatment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TreatmentMutation) OldConsentDocumentKey(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConsentDocumentKey is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConsentDocumentKey requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConsentDocumentKey: %w", err)
	}
	return oldValue.ConsentDocumentKey, nil
}

// ClearConsentDocumentKey clears the value of the "consent_document_key" field.
func (m *TreatmentMutation) ClearConsentDocumentKey() {
	m.consent_document_key = nil
	m.clearedFields[treatment.FieldConsentDocumentKey] = struct{}{}
}

// ConsentDocumentKeyCleared returns if the "consent_document_key" field was cleared in this mutation.
func (m *TreatmentMutation) ConsentDocumentKeyCleared() bool {
	_, ok := m.clearedFields[treatment.FieldConsentDocumentKey]
	return ok
}

// ResetConsentDocumentKey resets all changes to the "consent_document_key" field.
func (m *TreatmentMutation) ResetConsentDocumentKey() {
	m.consent_document_key = nil
	delete(m.clearedFields, treatment.FieldConsentDocumentKey)
}

// ClearPatient clears the "patient" edge to the Patient entity.
func (m *TreatmentMutation) ClearPatient() {
	m.clearedpatient = true
	m.clearedFields[treatment.FieldPatientID] = struct{}{}
}

// PatientCleared reports if the "patient" edge to the Patient entity was cleared.
func (m *TreatmentMutation) PatientCleared() bool {
	return m.clearedpatient
}

// PatientIDs returns the "patient" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// PatientID instead. It exists only for internal usage by the builders.
func (m *TreatmentMutation) PatientIDs() (ids []uuid.UUID) {
	if id := m.patient; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetPatient resets all changes to the "patient" edge.
func (m *TreatmentMutation) ResetPatient() {
	m.patient = nil
	m.clearedpatient = false
}

// ClearDoctor clears the "doctor" edge to the User entity.
func (m *TreatmentMutation) ClearDoctor() {
	m.cleareddoctor = true
	m.clearedFields[treatment.FieldDoctorID] = struct{}{}
}

// DoctorCleared reports if the "doctor" edge to the User entity was cleared.
func (m *TreatmentMutation) DoctorCleared() bool {
	return m.cleareddoctor
}

// DoctorIDs returns the "doctor" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// DoctorID instead. It exists only for internal usage by the builders.
func (m *TreatmentMutation) DoctorIDs() (ids []uuid.UUID) {
	if id := m.doctor; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetDoctor resets all changes to the "doctor" edge.
func (m *TreatmentMutation) ResetDoctor() {
	m.doctor = nil
	m.cleareddoctor = false
}

// AddMonitoringDayIDs adds the "monitoring_days" edge to the MonitoringDay entity by ids.
func (m *TreatmentMutation) AddMonitoringDayIDs(ids ...uuid.UUID) {
	if m.monitoring_days == nil {
		m.monitoring_days = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.monitoring_days[ids[i]] = struct{}{}
	}
}

// ClearMonitoringDays clears the "monitoring_days" edge to the MonitoringDay entity.
func (m *TreatmentMutation) ClearMonitoringDays() {
	m.clearedmonitoring_days = true
}

// MonitoringDaysCleared reports if the "monitoring_days" edge to the MonitoringDay entity was cleared.
func (m *TreatmentMutation) MonitoringDaysCleared() bool {
	return m.clearedmonitoring_days
}

// RemoveMonitoringDayIDs removes the "monitoring_days" edge to the MonitoringDay entity by IDs.
func (m *TreatmentMutation) RemoveMonitoringDayIDs(ids ...uuid.UUID) {
	if m.removedmonitoring_days == nil {
		m.removedmonitoring_days = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.monitoring_days, ids[i])
		m.removedmonitoring_days[ids[i]] = struct{}{}
	}
}

// RemovedMonitoringDays returns the removed IDs of the "monitoring_days" edge to the MonitoringDay entity.
func (m *TreatmentMutation) RemovedMonitoringDaysIDs() (ids []uuid.UUID) {
	for id := range m.removedmonitoring_days {
		ids = append(ids, id)
	}
	return
}

// MonitoringDaysIDs returns the "monitoring_days" edge IDs in the mutation.
func (m *TreatmentMutation) MonitoringDaysIDs() (ids []uuid.UUID) {
	for id := range m.monitoring_days {
		ids = append(ids, id)
	}
	return
}

// ResetMonitoringDays resets all changes to the "monitoring_days" edge.
func (m *TreatmentMutation) ResetMonitoringDays() {
	m.monitoring_days = nil
	m.clearedmonitoring_days = false
	m.removedmonitoring_days = nil
}

// AddStudyResultIDs adds the "study_results" edge to the StudyResult entity by ids.
func (m *TreatmentMutation) AddStudyResultIDs(ids ...uuid.UUID) {
	if m.study_results == nil {
		m.study_results = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.study_results[ids[i]] = struct{}{}
	}
}

// ClearStudyResults clears the "study_results" edge to the StudyResult entity.
func (m *TreatmentMutation) ClearStudyResults() {
	m.clearedstudy_results = true
}

// StudyResultsCleared reports if the "study_results" edge to the StudyResult entity was cleared.
func (m *TreatmentMutation) StudyResultsCleared() bool {
	return m.clearedstudy_results
}

// RemoveStudyResultIDs removes the "study_results" edge to the StudyResult entity by IDs.
func (m *TreatmentMutation) RemoveStudyResultIDs(ids ...uuid.UUID) {
	if m.removedstudy_results == nil {
		m.removedstudy_results = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.study_results, ids[i])
		m.removedstudy_results[ids[i]] = struct{}{}
	}
}

// RemovedStudyResults returns the removed IDs of the "study_results" edge to the StudyResult entity.
func (m *TreatmentMutation) RemovedStudyResultsIDs() (ids []uuid.UUID) {
	for id := range m.removedstudy_results {
		ids = append(ids, id)
	}
	return
}

// StudyResultsIDs returns the "study_results" edge IDs in the mutation.
func (m *TreatmentMutation) StudyResultsIDs() (ids []uuid.UUID) {
	for id := range m.study_results {
		ids = append(ids, id)
	}
	return
}

// ResetStudyResults resets all changes to the "study_results" edge.
func (m *TreatmentMutation) ResetStudyResults() {
	m.study_results = nil
	m.clearedstudy_results = false
	m.removedstudy_results = nil
}

// AddMedicalOrderIDs adds the "medical_orders" edge to the MedicalOrder entity by ids.
func (m *TreatmentMutation) AddMedicalOrderIDs(ids ...uuid.UUID) {
	if m.medical_orders == nil {
		m.medical_orders = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.medical_orders[ids[i]] = struct{}{}
	}
}

// ClearMedicalOrders clears the "medical_orders" edge to the MedicalOrder entity.
func (m *TreatmentMutation) ClearMedicalOrders() {
	m.clearedmedical_orders = true
}

// MedicalOrdersCleared reports if the "medical_orders" edge to the MedicalOrder entity was cleared.
func (m *TreatmentMutation) MedicalOrdersCleared() bool {
	return m.clearedmedical_orders
}

// RemoveMedicalOrderIDs removes the "medical_orders" edge to the MedicalOrder entity by IDs.
func (m *TreatmentMutation) RemoveMedicalOrderIDs(ids ...uuid.UUID) {
	if m.removedmedical_orders == nil {
		m.removedmedical_orders = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.medical_orders, ids[i])
		m.removedmedical_orders[ids[i]] = struct{}{}
	}
}

// RemovedMedicalOrders returns the removed IDs of the "medical_orders" edge to the MedicalOrder entity.
func (m *TreatmentMutation) RemovedMedicalOrdersIDs() (ids []uuid.UUID) {
	for id := range m.removedmedical_orders {
		ids = append(ids, id)
	}
	return
}

// MedicalOrdersIDs returns the "medical_orders" edge IDs in the mutation.
func (m *TreatmentMutation) MedicalOrdersIDs() (ids []uuid.UUID) {
	for id := range m.medical_orders {
		ids = append(ids, id)
	}
	return
}

// ResetMedicalOrders resets all changes to the "medical_orders" edge.
func (m *TreatmentMutation) ResetMedicalOrders() {
	m.medical_orders = nil
	m.clearedmedical_orders = false
	m.removedmedical_orders = nil
}

// SetPunctureID sets the "puncture" edge to the Puncture entity by id.
func (m *TreatmentMutation) SetPunctureID(id uuid.UUID) {
	m.puncture = &id
}

// ClearPuncture clears the "puncture" edge to the Puncture entity.
func (m *TreatmentMutation) ClearPuncture() {
	m.clearedpuncture = true
}

// PunctureCleared reports if the "puncture" edge to the Puncture entity was cleared.
func (m *TreatmentMutation) PunctureCleared() bool {
	return m.clearedpuncture
}

// PunctureID returns the "puncture" edge ID in the mutation.
func (m *TreatmentMutation) PunctureID() (id uuid.UUID, exists bool) {
	if m.puncture != nil {
		return *m.puncture, true
	}
	return
}

// PunctureIDs returns the "puncture" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// PunctureID instead. It exists only for internal usage by the builders.
func (m *TreatmentMutation) PunctureIDs() (ids []uuid.UUID) {
	if id := m.puncture; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetPuncture resets all changes to the "puncture" edge.
func (m *TreatmentMutation) ResetPuncture() {
	m.puncture = nil
	m.clearedpuncture = false
}

// Where appends a list predicates to the TreatmentMutation builder.
func (m *TreatmentMutation) Where(ps ...predicate.Treatment) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the TreatmentMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *TreatmentMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Treatment, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *TreatmentMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *TreatmentMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Treatment).
func (m *TreatmentMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *TreatmentMutation) Fields() []string {
	fields := make([]string, 0, 13)
	if m.created_at != nil {
		fields = append(fields, treatment.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, treatment.FieldUpdatedAt)
	}
	if m.patient != nil {
		fields = append(fields, treatment.FieldPatientID)
	}
	if m.doctor != nil {
		fields = append(fields, treatment.FieldDoctorID)
	}
	if m.objective != nil {
		fields = append(fields, treatment.FieldObjective)
	}
	if m.status != nil {
		fields = append(fields, treatment.FieldStatus)
	}
	if m.stimulation_protocol != nil {
		fields = append(fields, treatment.FieldStimulationProtocol)
	}
	if m.medication_type != nil {
		fields = append(fields, treatment.FieldMedicationType)
	}
	if m.medication_dose != nil {
		fields = append(fields, treatment.FieldMedicationDose)
	}
	if m.medication_duration != nil {
		fields = append(fields, treatment.FieldMedicationDuration)
	}
	if m.oocytes_viable != nil {
		fields = append(fields, treatment.FieldOocytesViable)
	}
	if m.sperm_viable != nil {
		fields = append(fields, treatment.FieldSpermViable)
	}
	if m.consent_document_key != nil {
		fields = append(fields, treatment.FieldConsentDocumentKey)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *TreatmentMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case treatment.FieldCreatedAt:
		return m.CreatedAt()
	case treatment.FieldUpdatedAt:
		return m.UpdatedAt()
	case treatment.FieldPatientID:
		return m.PatientID()
	case treatment.FieldDoctorID:
		return m.DoctorID()
	case treatment.FieldObjective:
		return m.Objective()
	case treatment.FieldStatus:
		return m.Status()
	case treatment.FieldStimulationProtocol:
		return m.StimulationProtocol()
	case treatment.FieldMedicationType:
		return m.MedicationType()
	case treatment.FieldMedicationDose:
		return m.MedicationDose()
	case treatment.FieldMedicationDuration:
		return m.MedicationDuration()
	case treatment.FieldOocytesViable:
		return m.OocytesViable()
	case treatment.FieldSpermViable:
		return m.SpermViable()
	case treatment.FieldConsentDocumentKey:
		return m.ConsentDocumentKey()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *TreatmentMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case treatment.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case treatment.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case treatment.FieldPatientID:
		return m.OldPatientID(ctx)
	case treatment.FieldDoctorID:
		return m.OldDoctorID(ctx)
	case treatment.FieldObjective:
		return m.OldObjective(ctx)
	case treatment.FieldStatus:
		return m.OldStatus(ctx)
	case treatment.FieldStimulationProtocol:
		return m.OldStimulationProtocol(ctx)
	case treatment.FieldMedicationType:
		return m.OldMedicationType(ctx)
	case treatment.FieldMedicationDose:
		return m.OldMedicationDose(ctx)
	case treatment.FieldMedicationDuration:
		return m.OldMedicationDuration(ctx)
	case treatment.FieldOocytesViable:
		return m.OldOocytesViable(ctx)
	case treatment.FieldSpermViable:
		return m.OldSpermViable(ctx)
	case treatment.FieldConsentDocumentKey:
		return m.OldConsentDocumentKey(ctx)
	}
	return nil, fmt.Errorf("unknown Treatment field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TreatmentMutation) SetField(name string, value ent.Value) error {
	switch name {
	case treatment.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case treatment.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case treatment.FieldPatientID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPatientID(v)
		return nil
	case treatment.FieldDoctorID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDoctorID(v)
		return nil
	case treatment.FieldObjective:
		v, ok := value.(treatment.Objective)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetObjective(v)
		return nil
	case treatment.FieldStatus:
		v, ok := value.(treatment.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case treatment.FieldStimulationProtocol:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStimulationProtocol(v)
		return nil
	case treatment.FieldMedicationType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMedicationType(v)
		return nil
	case treatment.FieldMedicationDose:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMedicationDose(v)
		return nil
	case treatment.FieldMedicationDuration:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMedicationDuration(v)
		return nil
	case treatment.FieldOocytesViable:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOocytesViable(v)
		return nil
	case treatment.FieldSpermViable:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSpermViable(v)
		return nil
	case treatment.FieldConsentDocumentKey:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConsentDocumentKey(v)
		return nil
	}
	return fmt.Errorf("unknown Treatment field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *TreatmentMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *TreatmentMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TreatmentMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Treatment numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *TreatmentMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(treatment.FieldStimulationProtocol) {
		fields = append(fields, treatment.FieldStimulationProtocol)
	}
	if m.FieldCleared(treatment.FieldMedicationType) {
		fields = append(fields, treatment.FieldMedicationType)
	}
	if m.FieldCleared(treatment.FieldMedicationDose) {
		fields = append(fields, treatment.FieldMedicationDose)
	}
	if m.FieldCleared(treatment.FieldMedicationDuration) {
		fields = append(fields, treatment.FieldMedicationDuration)
	}
	if m.FieldCleared(treatment.FieldOocytesViable) {
		fields = append(fields, treatment.FieldOocytesViable)
	}
	if m.FieldCleared(treatment.FieldSpermViable) {
		fields = append(fields, treatment.FieldSpermViable)
	}
	if m.FieldCleared(treatment.FieldConsentDocumentKey) {
		fields = append(fields, treatment.FieldConsentDocumentKey)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *TreatmentMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *TreatmentMutation) ClearField(name string) error {
	switch name {
	case treatment.FieldStimulationProtocol:
		m.ClearStimulationProtocol()
		return nil
	case treatment.FieldMedicationType:
		m.ClearMedicationType()
		return nil
	case treatment.FieldMedicationDose:
		m.ClearMedicationDose()
		return nil
	case treatment.FieldMedicationDuration:
		m.ClearMedicationDuration()
		return nil
	case treatment.FieldOocytesViable:
		m.ClearOocytesViable()
		return nil
	case treatment.FieldSpermViable:
		m.ClearSpermViable()
		return nil
	case treatment.FieldConsentDocumentKey:
		m.ClearConsentDocumentKey()
		return nil
	}
	return fmt.Errorf("unknown Treatment nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *TreatmentMutation) ResetField(name string) error {
	switch name {
	case treatment.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case treatment.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case treatment.FieldPatientID:
		m.ResetPatientID()
		return nil
	case treatment.FieldDoctorID:
		m.ResetDoctorID()
		return nil
	case treatment.FieldObjective:
		m.ResetObjective()
		return nil
	case treatment.FieldStatus:
		m.ResetStatus()
		return nil
	case treatment.FieldStimulationProtocol:
		m.ResetStimulationProtocol()
		return nil
	case treatment.FieldMedicationType:
		m.ResetMedicationType()
		return nil
	case treatment.FieldMedicationDose:
		m.ResetMedicationDose()
		return nil
	case treatment.FieldMedicationDuration:
		m.ResetMedicationDuration()
		return nil
	case treatment.FieldOocytesViable:
		m.ResetOocytesViable()
		return nil
	case treatment.FieldSpermViable:
		m.ResetSpermViable()
		return nil
	case treatment.FieldConsentDocumentKey:
		m.ResetConsentDocumentKey()
		return nil
	}
	return fmt.Errorf("unknown Treatment field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *TreatmentMutation) AddedEdges() []string {
	edges := make([]string, 0, 6)
	if m.patient != nil {
		edges = append(edges, treatment.EdgePatient)
	}
	if m.doctor != nil {
		edges = append(edges, treatment.EdgeDoctor)
	}
	if m.monitoring_days != nil {
		edges = append(edges, treatment.EdgeMonitoringDays)
	}
	if m.study_results != nil {
		edges = append(edges, treatment.EdgeStudyResults)
	}
	if m.medical_orders != nil {
		edges = append(edges, treatment.EdgeMedicalOrders)
	}
	if m.puncture != nil {
		edges = append(edges, treatment.EdgePuncture)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *TreatmentMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case treatment.EdgePatient:
		if id := m.patient; id != nil {
			return []ent.Value{*id}
		}
	case treatment.EdgeDoctor:
		if id := m.doctor; id != nil {
			return []ent.Value{*id}
		}
	case treatment.EdgeMonitoringDays:
		ids := make([]ent.Value, 0, len(m.monitoring_days))
		for id := range m.monitoring_days {
			ids = append(ids, id)
		}
		return ids
	case treatment.EdgeStudyResults:
		ids := make([]ent.Value, 0, len(m.study_results))
		for id := range m.study_results {
			ids = append(ids, id)
		}
		return ids
	case treatment.EdgeMedicalOrders:
		ids := make([]ent.Value, 0, len(m.medical_orders))
		for id := range m.medical_orders {
			ids = append(ids, id)
		}
		return ids
	case treatment.EdgePuncture:
		if id := m.puncture; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *TreatmentMutation) RemovedEdges() []string {
	edges := make([]string, 0, 6)
	if m.removedmonitoring_days != nil {
		edges = append(edges, treatment.EdgeMonitoringDays)
	}
	if m.removedstudy_results != nil {
		edges = append(edges, treatment.EdgeStudyResults)
	}
	if m.removedmedical_orders != nil {
		edges = append(edges, treatment.EdgeMedicalOrders)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *TreatmentMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case treatment.EdgeMonitoringDays:
		ids := make([]ent.Value, 0, len(m.removedmonitoring_days))
		for id := range m.removedmonitoring_days {
			ids = append(ids, id)
		}
		return ids
	case treatment.EdgeStudyResults:
		ids := make([]ent.Value, 0, len(m.removedstudy_results))
		for id := range m.removedstudy_results {
			ids = append(ids, id)
		}
		return ids
	case treatment.EdgeMedicalOrders:
		ids := make([]ent.Value, 0, len(m.removedmedical_orders))
		for id := range m.removedmedical_orders {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *TreatmentMutation) ClearedEdges() []string {
	edges := make([]string, 0, 6)
	if m.clearedpatient {
		edges = append(edges, treatment.EdgePatient)
	}
	if m.cleareddoctor {
		edges = append(edges, treatment.EdgeDoctor)
	}
	if m.clearedmonitoring_days {
		edges = append(edges, treatment.EdgeMonitoringDays)
	}
	if m.clearedstudy_results {
		edges = append(edges, treatment.EdgeStudyResults)
	}
	if m.clearedmedical_orders {
		edges = append(edges, treatment.EdgeMedicalOrders)
	}
	if m.clearedpuncture {
		edges = append(edges, treatment.EdgePuncture)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *TreatmentMutation) EdgeCleared(name string) bool {
	switch name {
	case treatment.EdgePatient:
		return m.clearedpatient
	case treatment.EdgeDoctor:
		return m.cleareddoctor
	case treatment.EdgeMonitoringDays:
		return m.clearedmonitoring_days
	case treatment.EdgeStudyResults:
		return m.clearedstudy_results
	case treatment.EdgeMedicalOrders:
		return m.clearedmedical_orders
	case treatment.EdgePuncture:
		return m.clearedpuncture
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *TreatmentMutation) ClearEdge(name string) error {
	switch name {
	case treatment.EdgePatient:
		m.ClearPatient()
		return nil
	case treatment.EdgeDoctor:
		m.ClearDoctor()
		return nil
	case treatment.EdgePuncture:
		m.ClearPuncture()
		return nil
	}
	return fmt.Errorf("unknown Treatment unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *TreatmentMutation) ResetEdge(name string) error {
	switch name {
	case treatment.EdgePatient:
		m.ResetPatient()
		return nil
	case treatment.EdgeDoctor:
		m.ResetDoctor()
		return nil
	case treatment.EdgeMonitoringDays:
		m.ResetMonitoringDays()
		return nil
	case treatment.EdgeStudyResults:
		m.ResetStudyResults()
		return nil
	case treatment.EdgeMedicalOrders:
		m.ResetMedicalOrders()
		return nil
	case treatment.EdgePuncture:
		m.ResetPuncture()
		return nil
	}
	return fmt.Errorf("unknown Treatment edge %s", name)
}

// UserMutation represents an operation that mutates the User nodes in the graph.
type UserMutation struct {
	config
	op                          Op
	typ                         string
	id                          *uuid.UUID
	created_at                  *time.Time
	updated_at                  *time.Time
	deleted_at                  *time.Time
	username                    *string
	email                       *string
	password_hash               *string
	role                        *user.Role
	first_name                  *string
	last_name                   *string
	phone                       *string
	dni                         *string
	biological_sex              *user.BiologicalSex
	date_of_birth               *time.Time
	is_active                   *bool
	last_login_at               *time.Time
	failed_login_attempts       *int
	addfailed_login_attempts    *int
	clearedFields               map[string]struct{}
	patient_profile             *uuid.UUID
	clearedpatient_profile      bool
	treatments_as_doctor        map[uuid.UUID]struct{}
	removedtreatments_as_doctor map[uuid.UUID]struct{}
	clearedtreatments_as_doctor bool
	punctures_performed         map[uuid.UUID]struct{}
	removedpunctures_performed  map[uuid.UUID]struct{}
	clearedpunctures_performed  bool
	done                        bool
	oldValue                    func(context.Context) (*User, error)
	predicates                  []predicate.User
}

var _ ent.Mutation = (*UserMutation)(nil)

// userOption allows management of the mutation configuration using functional options.
type userOption func(*UserMutation)

// newUserMutation creates new mutation for the User entity.
func newUserMutation(c config, op Op, opts ...userOption) *UserMutation {
	m := &UserMutation{
		config:        c,
		op:            op,
		typ:           TypeUser,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withUserID sets the ID field of the mutation.
func withUserID(id uuid.UUID) userOption {
	return func(m *UserMutation) {
		var (
			err   error
			once  sync.Once
			value *User
		)
		m.oldValue = func(ctx context.Context) (*User, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().User.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withUser sets the old User of the mutation.
func withUser(node *User) userOption {
	return func(m *UserMutation) {
		m.oldValue = func(context.Context) (*User, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m UserMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m UserMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("repo: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of User entities.
func (m *UserMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *UserMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *UserMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().User.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *UserMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *UserMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *UserMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *UserMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *UserMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *UserMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetDeletedAt sets the "deleted_at" field.
func (m *UserMutation) SetDeletedAt(t time.Time) {
	m.deleted_at = &t
}

// DeletedAt returns the value of the "deleted_at" field in the mutation.
func (m *UserMutation) DeletedAt() (r time.Time, exists bool) {
	v := m.deleted_at
	if v == nil {
		return
	}
	return *v, true
}

// OldDeletedAt returns the old "deleted_at" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldDeletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDeletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDeletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDeletedAt: %w", err)
	}
	return oldValue.DeletedAt, nil
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (m *UserMutation) ClearDeletedAt() {
	m.deleted_at = nil
	m.clearedFields[user.FieldDeletedAt] = struct{}{}
}

// DeletedAtCleared returns if the "deleted_at" field was cleared in this mutation.
func (m *UserMutation) DeletedAtCleared() bool {
	_, ok := m.clearedFields[user.FieldDeletedAt]
	return ok
}

// ResetDeletedAt resets all changes to the "deleted_at" field.
func (m *UserMutation) ResetDeletedAt() {
	m.deleted_at = nil
	delete(m.clearedFields, user.FieldDeletedAt)
}

// SetUsername sets the "username" field.
func (m *UserMutation) SetUsername(s string) {
	m.username = &s
}

// Username returns the value of the "username" field in the mutation.
func (m *UserMutation) Username() (r string, exists bool) {
	v := m.username
	if v == nil {
		return
	}
	return *v, true
}

// OldUsername returns the old "username" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldUsername(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUsername is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUsername requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUsername: %w", err)
	}
	return oldValue.Username, nil
}

// ResetUsername resets all changes to the "username" field.
func (m *UserMutation) ResetUsername() {
	m.username = nil
}

// SetEmail sets the "email" field.
func (m *UserMutation) SetEmail(s string) {
	m.email = &s
}

// Email returns the value of the "email" field in the mutation.
func (m *UserMutation) Email() (r string, exists bool) {
	v := m.email
	if v == nil {
		return
	}
	return *v, true
}

// OldEmail returns the old "email" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldEmail(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEmail is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEmail requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEmail: %w", err)
	}
	return oldValue.Email, nil
}

// ClearEmail clears the value of the "email" field.
func (m *UserMutation) ClearEmail() {
	m.email = nil
	m.clearedFields[user.FieldEmail] = struct{}{}
}

// EmailCleared returns if the "email" field was cleared in this mutation.
func (m *UserMutation) EmailCleared() bool {
	_, ok := m.clearedFields[user.FieldEmail]
	return ok
}

// ResetEmail resets all changes to the "email" field.
func (m *UserMutation) ResetEmail() {
	m.email = nil
	delete(m.clearedFields, user.FieldEmail)
}

// SetPasswordHash sets the "password_hash" field.
func (m *UserMutation) SetPasswordHash(s string) {
	m.password_hash = &s
}

// PasswordHash returns the value of the "password_hash" field in the mutation.
func (m *UserMutation) PasswordHash() (r string, exists bool) {
	v := m.password_hash
	if v == nil {
		return
	}
	return *v, true
}

// OldPasswordHash returns the old "password_hash" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldPasswordHash(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPasswordHash is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPasswordHash requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPasswordHash: %w", err)
	}
	return oldValue.PasswordHash, nil
}

// ClearPasswordHash clears the value of the "password_hash" field.
func (m *UserMutation) ClearPasswordHash() {
	m.password_hash = nil
	m.clearedFields[user.FieldPasswordHash] = struct{}{}
}

// PasswordHashCleared returns if the "password_hash" field was cleared in this mutation.
func (m *UserMutation) PasswordHashCleared() bool {
	_, ok := m.clearedFields[user.FieldPasswordHash]
	return ok
}

// ResetPasswordHash resets all changes to the "password_hash" field.
func (m *UserMutation) ResetPasswordHash() {
	m.password_hash = nil
	delete(m.clearedFields, user.FieldPasswordHash)
}

// SetRole sets the "role" field.
func (m *UserMutation) SetRole(u user.Role) {
	m.role = &u
}

// Role returns the value of the "role" field in the mutation.
func (m *UserMutation) Role() (r user.Role, exists bool) {
	v := m.role
	if v == nil {
		return
	}
	return *v, true
}

// OldRole returns the old "role" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldRole(ctx context.Context) (v user.Role, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRole is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRole requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRole: %w", err)
	}
	return oldValue.Role, nil
}

// ResetRole resets all changes to the "role" field.
func (m *UserMutation) ResetRole() {
	m.role = nil
}

// SetFirstName sets the "first_name" field.
func (m *UserMutation) SetFirstName(s string) {
	m.first_name = &s
}

// FirstName returns the value of the "first_name" field in the mutation.
func (m *UserMutation) FirstName() (r string, exists bool) {
	v := m.first_name
	if v == nil {
		return
	}
	return *v, true
}

// OldFirstName returns the old "first_name" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldFirstName(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFirstName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFirstName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFirstName: %w", err)
	}
	return oldValue.FirstName, nil
}

// ClearFirstName clears the value of the "first_name" field.
func (m *UserMutation) ClearFirstName() {
	m.first_name = nil
	m.clearedFields[user.FieldFirstName] = struct{}{}
}

// FirstNameCleared returns if the "first_name" field was cleared in this mutation.
func (m *UserMutation) FirstNameCleared() bool {
	_, ok := m.clearedFields[user.FieldFirstName]
	return ok
}

// ResetFirstName resets all changes to the "first_name" field.
func (m *UserMutation) ResetFirstName() {
	m.first_name = nil
	delete(m.clearedFields, user.FieldFirstName)
}

// SetLastName sets the "last_name" field.
func (m *UserMutation) SetLastName(s string) {
	m.last_name = &s
}

// LastName returns the value of the "last_name" field in the mutation.
func (m *UserMutation) LastName() (r string, exists bool) {
	v := m.last_name
	if v == nil {
		return
	}
	return *v, true
}

// OldLastName returns the old "last_name" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldLastName(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastName: %w", err)
	}
	return oldValue.LastName, nil
}

// ClearLastName clears the value of the "last_name" field.
func (m *UserMutation) ClearLastName() {
	m.last_name = nil
	m.clearedFields[user.FieldLastName] = struct{}{}
}

// LastNameCleared returns if the "last_name" field was cleared in this mutation.
func (m *UserMutation) LastNameCleared() bool {
	_, ok := m.clearedFields[user.FieldLastName]
	return ok
}

// ResetLastName resets all changes to the "last_name" field.
func (m *UserMutation) ResetLastName() {
	m.last_name = nil
	delete(m.clearedFields, user.FieldLastName)
}

// SetPhone sets the "phone" field.
func (m *UserMutation) SetPhone(s string) {
	m.phone = &s
}

// Phone returns the value of the "phone" field in the mutation.
func (m *UserMutation) Phone() (r string, exists bool) {
	v := m.phone
	if v == nil {
		return
	}
	return *v, true
}

// OldPhone returns the old "phone" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldPhone(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPhone is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPhone requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPhone: %w", err)
	}
	return oldValue.Phone, nil
}

// ClearPhone clears the value of the "phone" field.
func (m *UserMutation) ClearPhone() {
	m.phone = nil
	m.clearedFields[user.FieldPhone] = struct{}{}
}

// PhoneCleared returns if the "phone" field was cleared in this mutation.
func (m *UserMutation) PhoneCleared() bool {
	_, ok := m.clearedFields[user.FieldPhone]
	return ok
}

// ResetPhone resets all changes to the "phone" field.
func (m *UserMutation) ResetPhone() {
	m.phone = nil
	delete(m.clearedFields, user.FieldPhone)
}

// SetDni sets the "dni" field.
func (m *UserMutation) SetDni(s string) {
	m.dni = &s
}

// Dni returns the value of the "dni" field in the mutation.
func (m *UserMutation) Dni() (r string, exists bool) {
	v := m.dni
	if v == nil {
		return
	}
	return *v, true
}

// OldDni returns the old "dni" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldDni(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDni is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDni requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDni: %w", err)
	}
	return oldValue.Dni, nil
}

// ClearDni clears the value of the "dni" field.
func (m *UserMutation) ClearDni() {
	m.dni = nil
	m.clearedFields[user.FieldDni] = struct{}{}
}

// DniCleared returns if the "dni" field was cleared in this mutation.
func (m *UserMutation) DniCleared() bool {
	_, ok := m.clearedFields[user.FieldDni]
	return ok
}

// ResetDni resets all changes to the "dni" field.
func (m *UserMutation) ResetDni() {
	m.dni = nil
	delete(m.clearedFields, user.FieldDni)
}

// SetBiologicalSex sets the "biological_sex" field.
func (m *UserMutation) SetBiologicalSex(us user.BiologicalSex) {
	m.biological_sex = &us
}

// BiologicalSex returns the value of the "biological_sex" field in the mutation.
func (m *UserMutation) BiologicalSex() (r user.BiologicalSex, exists bool) {
	v := m.biological_sex
	if v == nil {
		return
	}
	return *v, true
}

// OldBiologicalSex returns the old "biological_sex" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldBiologicalSex(ctx context.Context) (v *user.BiologicalSex, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBiologicalSex is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBiologicalSex requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBiologicalSex: %w", err)
	}
	return oldValue.BiologicalSex, nil
}

// ClearBiologicalSex clears the value of the "biological_sex" field.
func (m *UserMutation) ClearBiologicalSex() {
	m.biological_sex = nil
	m.clearedFields[user.FieldBiologicalSex] = struct{}{}
}

// BiologicalSexCleared returns if the "biological_sex" field was cleared in this mutation.
func (m *UserMutation) BiologicalSexCleared() bool {
	_, ok := m.clearedFields[user.FieldBiologicalSex]
	return ok
}

// ResetBiologicalSex resets all changes to the "biological_sex" field.
func (m *UserMutation) ResetBiologicalSex() {
	m.biological_sex = nil
	delete(m.clearedFields, user.FieldBiologicalSex)
}

// SetDateOfBirth sets the "date_of_birth" field.
func (m *UserMutation) SetDateOfBirth(t time.Time) {
	m.date_of_birth = &t
}

// DateOfBirth returns the value of the "date_of_birth" field in the mutation.
func (m *UserMutation) DateOfBirth() (r time.Time, exists bool) {
	v := m.date_of_birth
	if v == nil {
		return
	}
	return *v, true
}

// OldDateOfBirth returns the old "date_of_birth" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldDateOfBirth(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDateOfBirth is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDateOfBirth requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDateOfBirth: %w", err)
	}
	return oldValue.DateOfBirth, nil
}

// ClearDateOfBirth clears the value of the "date_of_birth" field.
func (m *UserMutation) ClearDateOfBirth() {
	m.date_of_birth = nil
	m.clearedFields[user.FieldDateOfBirth] = struct{}{}
}

// DateOfBirthCleared returns if the "date_of_birth" field was cleared in this mutation.
func (m *UserMutation) DateOfBirthCleared() bool {
	_, ok := m.clearedFields[user.FieldDateOfBirth]
	return ok
}

// ResetDateOfBirth resets all changes to the "date_of_birth" field.
func (m *UserMutation) ResetDateOfBirth() {
	m.date_of_birth = nil
	delete(m.clearedFields, user.FieldDateOfBirth)
}

// SetIsActive sets the "is_active" field.
func (m *UserMutation) SetIsActive(b bool) {
	m.is_active = &b
}

// IsActive returns the value of the "is_active" field in the mutation.
func (m *UserMutation) IsActive() (r bool, exists bool) {
	v := m.is_active
	if v == nil {
		return
	}
	return *v, true
}

// OldIsActive returns the old "is_active" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldIsActive(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsActive is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsActive requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsActive: %w", err)
	}
	return oldValue.IsActive, nil
}

// ResetIsActive resets all changes to the "is_active" field.
func (m *UserMutation) ResetIsActive() {
	m.is_active = nil
}

// SetLastLoginAt sets the "last_login_at" field.
func (m *UserMutation) SetLastLoginAt(t time.Time) {
	m.last_login_at = &t
}

// LastLoginAt returns the value of the "last_login_at" field in the mutation.
func (m *UserMutation) LastLoginAt() (r time.Time, exists bool) {
	v := m.last_login_at
	if v == nil {
		return
	}
	return *v, true
}

// OldLastLoginAt returns the old "last_login_at" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldLastLoginAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastLoginAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastLoginAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastLoginAt: %w", err)
	}
	return oldValue.LastLoginAt, nil
}

// ClearLastLoginAt clears the value of the "last_login_at" field.
func (m *UserMutation) ClearLastLoginAt() {
	m.last_login_at = nil
	m.clearedFields[user.FieldLastLoginAt] = struct{}{}
}

// LastLoginAtCleared returns if the "last_login_at" field was cleared in this mutation.
func (m *UserMutation) LastLoginAtCleared() bool {
	_, ok := m.clearedFields[user.FieldLastLoginAt]
	return ok
}

// ResetLastLoginAt resets all changes to the "last_login_at" field.
func (m *UserMutation) ResetLastLoginAt() {
	m.last_login_at = nil
	delete(m.clearedFields, user.FieldLastLoginAt)
}

// SetFailedLoginAttempts sets the "failed_login_attempts" field.
func (m *UserMutation) SetFailedLoginAttempts(i int) {
	m.failed_login_attempts = &i
	m.addfailed_login_attempts = nil
}

// FailedLoginAttempts returns the value of the "failed_login_attempts" field in the mutation.
func (m *UserMutation) FailedLoginAttempts() (r int, exists bool) {
	v := m.failed_login_attempts
	if v == nil {
		return
	}
	return *v, true
}

// OldFailedLoginAttempts returns the old "failed_login_attempts" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldFailedLoginAttempts(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFailedLoginAttempts is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFailedLoginAttempts requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFailedLoginAttempts: %w", err)
	}
	return oldValue.FailedLoginAttempts, nil
}

// AddFailedLoginAttempts adds i to the "failed_login_attempts" field.
func (m *UserMutation) AddFailedLoginAttempts(i int) {
	if m.addfailed_login_attempts != nil {
		*m.addfailed_login_attempts += i
	} else {
		m.addfailed_login_attempts = &i
	}
}

// AddedFailedLoginAttempts returns the value that was added to the "failed_login_attempts" field in this mutation.
func (m *UserMutation) AddedFailedLoginAttempts() (r int, exists bool) {
	v := m.addfailed_login_attempts
	if v == nil {
		return
	}
	return *v, true
}

// ResetFailedLoginAttempts resets all changes to the "failed_login_attempts" field.
func (m *UserMutation) ResetFailedLoginAttempts() {
	m.failed_login_attempts = nil
	m.addfailed_login_attempts = nil
}

// SetPatientProfileID sets the "patient_profile" edge to the Patient entity by id.
func (m *UserMutation) SetPatientProfileID(id uuid.UUID) {
	m.patient_profile = &id
}

// ClearPatientProfile clears the "patient_profile" edge to the Patient entity.
func (m *UserMutation) ClearPatientProfile() {
	m.clearedpatient_profile = true
}

// PatientProfileCleared reports if the "patient_profile" edge to the Patient entity was cleared.
func (m *UserMutation) PatientProfileCleared() bool {
	return m.clearedpatient_profile
}

// PatientProfileID returns the "patient_profile" edge ID in the mutation.
func (m *UserMutation) PatientProfileID() (id uuid.UUID, exists bool) {
	if m.patient_profile != nil {
		return *m.patient_profile, true
	}
	return
}

// PatientProfileIDs returns the "patient_profile" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// PatientProfileID instead. It exists only for internal usage by the builders.
func (m *UserMutation) PatientProfileIDs() (ids []uuid.UUID) {
	if id := m.patient_profile; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetPatientProfile resets all changes to the "patient_profile" edge.
func (m *UserMutation) ResetPatientProfile() {
	m.patient_profile = nil
	m.clearedpatient_profile = false
}

// AddTreatmentsAsDoctorIDs adds the "treatments_as_doctor" edge to the Treatment entity by ids.
func (m *UserMutation) AddTreatmentsAsDoctorIDs(ids ...uuid.UUID) {
	if m.treatments_as_doctor == nil {
		m.treatments_as_doctor = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.treatments_as_doctor[ids[i]] = struct{}{}
	}
}

// ClearTreatmentsAsDoctor clears the "treatments_as_doctor" edge to the Treatment entity.
func (m *UserMutation) ClearTreatmentsAsDoctor() {
	m.clearedtreatments_as_doctor = true
}

// TreatmentsAsDoctorCleared reports if the "treatments_as_doctor" edge to the Treatment entity was cleared.
func (m *UserMutation) TreatmentsAsDoctorCleared() bool {
	return m.clearedtreatments_as_doctor
}

// RemoveTreatmentsAsDoctorIDs removes the "treatments_as_doctor" edge to the Treatment entity by IDs.
func (m *UserMutation) RemoveTreatmentsAsDoctorIDs(ids ...uuid.UUID) {
	if m.removedtreatments_as_doctor == nil {
		m.removedtreatments_as_doctor = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.treatments_as_doctor, ids[i])
		m.removedtreatments_as_doctor[ids[i]] = struct{}{}
	}
}

// RemovedTreatmentsAsDoctor returns the removed IDs of the "treatments_as_doctor" edge to the Treatment entity.
func (m *UserMutation) RemovedTreatmentsAsDoctorIDs() (ids []uuid.UUID) {
	for id := range m.removedtreatments_as_doctor {
		ids = append(ids, id)
	}
	return
}

// TreatmentsAsDoctorIDs returns the "treatments_as_doctor" edge IDs in the mutation.
func (m *UserMutation) TreatmentsAsDoctorIDs() (ids []uuid.UUID) {
	for id := range m.treatments_as_doctor {
		ids = append(ids, id)
	}
	return
}

// ResetTreatmentsAsDoctor resets all changes to the "treatments_as_doctor" edge.
func (m *UserMutation) ResetTreatmentsAsDoctor() {
	m.treatments_as_doctor = nil
	m.clearedtreatments_as_doctor = false
	m.removedtreatments_as_doctor = nil
}

// AddPuncturesPerformedIDs adds the "punctures_performed" edge to the Puncture entity by ids.
func (m *UserMutation) AddPuncturesPerformedIDs(ids ...uuid.UUID) {
	if m.punctures_performed == nil {
		m.punctures_performed = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.punctures_performed[ids[i]] = struct{}{}
	}
}

// ClearPuncturesPerformed clears the "punctures_performed" edge to the Puncture entity.
func (m *UserMutation) ClearPuncturesPerformed() {
	m.clearedpunctures_performed = true
}

// PuncturesPerformedCleared reports if the "punctures_performed" edge to the Puncture entity was cleared.
func (m *UserMutation) PuncturesPerformedCleared() bool {
	return m.clearedpunctures_performed
}

// RemovePuncturesPerformedIDs removes the "punctures_performed" edge to the Puncture entity by IDs.
func (m *UserMutation) RemovePuncturesPerformedIDs(ids ...uuid.UUID) {
	if m.removedpunctures_performed == nil {
		m.removedpunctures_performed = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.punctures_performed, ids[i])
		m.removedpunctures_performed[ids[i]] = struct{}{}
	}
}

// RemovedPuncturesPerformed returns the removed IDs of the "punctures_performed" edge to the Puncture entity.
func (m *UserMutation) RemovedPuncturesPerformedIDs() (ids []uuid.UUID) {
	for id := range m.removedpunctures_performed {
		ids = append(ids, id)
	}
	return
}

// PuncturesPerformedIDs returns the "punctures_performed" edge IDs in the mutation.
func (m *UserMutation) PuncturesPerformedIDs() (ids []uuid.UUID) {
	for id := range m.punctures_performed {
		ids = append(ids, id)
	}
	return
}

// ResetPuncturesPerformed resets all changes to the "punctures_performed" edge.
func (m *UserMutation) ResetPuncturesPerformed() {
	m.punctures_performed = nil
	m.clearedpunctures_performed = false
	m.removedpunctures_performed = nil
}

// Where appends a list predicates to the UserMutation builder.
func (m *UserMutation) Where(ps ...predicate.User) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the UserMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *UserMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.User, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *UserMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *UserMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (User).
func (m *UserMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *UserMutation) Fields() []string {
	fields := make([]string, 0, 16)
	if m.created_at != nil {
		fields = append(fields, user.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, user.FieldUpdatedAt)
	}
	if m.deleted_at != nil {
		fields = append(fields, user.FieldDeletedAt)
	}
	if m.username != nil {
		fields = append(fields, user.FieldUsername)
	}
	if m.email != nil {
		fields = append(fields, user.FieldEmail)
	}
	if m.password_hash != nil {
		fields = append(fields, user.FieldPasswordHash)
	}
	if m.role != nil {
		fields = append(fields, user.FieldRole)
	}
	if m.first_name != nil {
		fields = append(fields, user.FieldFirstName)
	}
	if m.last_name != nil {
		fields = append(fields, user.FieldLastName)
	}
	if m.phone != nil {
		fields = append(fields, user.FieldPhone)
	}
	if m.dni != nil {
		fields = append(fields, user.FieldDni)
	}
	if m.biological_sex != nil {
		fields = append(fields, user.FieldBiologicalSex)
	}
	if m.date_of_birth != nil {
		fields = append(fields, user.FieldDateOfBirth)
	}
	if m.is_active != nil {
		fields = append(fields, user.FieldIsActive)
	}
	if m.last_login_at != nil {
		fields = append(fields, user.FieldLastLoginAt)
	}
	if m.failed_login_attempts != nil {
		fields = append(fields, user.FieldFailedLoginAttempts)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *UserMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case user.FieldCreatedAt:
		return m.CreatedAt()
	case user.FieldUpdatedAt:
		return m.UpdatedAt()
	case user.FieldDeletedAt:
		return m.DeletedAt()
	case user.FieldUsername:
		return m.Username()
	case user.FieldEmail:
		return m.Email()
	case user.FieldPasswordHash:
		return m.PasswordHash()
	case user.FieldRole:
		return m.Role()
	case user.FieldFirstName:
		return m.FirstName()
	case user.FieldLastName:
		return m.LastName()
	case user.FieldPhone:
		return m.Phone()
	case user.FieldDni:
		return m.Dni()
	case user.FieldBiologicalSex:
		return m.BiologicalSex()
	case user.FieldDateOfBirth:
		return m.DateOfBirth()
	case user.FieldIsActive:
		return m.IsActive()
	case user.FieldLastLoginAt:
		return m.LastLoginAt()
	case user.FieldFailedLoginAttempts:
		return m.FailedLoginAttempts()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *UserMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case user.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case user.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case user.FieldDeletedAt:
		return m.OldDeletedAt(ctx)
	case user.FieldUsername:
		return m.OldUsername(ctx)
	case user.FieldEmail:
		return m.OldEmail(ctx)
	case user.FieldPasswordHash:
		return m.OldPasswordHash(ctx)
	case user.FieldRole:
		return m.OldRole(ctx)
	case user.FieldFirstName:
		return m.OldFirstName(ctx)
	case user.FieldLastName:
		return m.OldLastName(ctx)
	case user.FieldPhone:
		return m.OldPhone(ctx)
	case user.FieldDni:
		return m.OldDni(ctx)
	case user.FieldBiologicalSex:
		return m.OldBiologicalSex(ctx)
	case user.FieldDateOfBirth:
		return m.OldDateOfBirth(ctx)
	case user.FieldIsActive:
		return m.OldIsActive(ctx)
	case user.FieldLastLoginAt:
		return m.OldLastLoginAt(ctx)
	case user.FieldFailedLoginAttempts:
		return m.OldFailedLoginAttempts(ctx)
	}
	return nil, fmt.Errorf("unknown User field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *UserMutation) SetField(name string, value ent.Value) error {
	switch name {
	case user.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case user.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case user.FieldDeletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDeletedAt(v)
		return nil
	case user.FieldUsername:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUsername(v)
		return nil
	case user.FieldEmail:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEmail(v)
		return nil
	case user.FieldPasswordHash:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPasswordHash(v)
		return nil
	case user.FieldRole:
		v, ok := value.(user.Role)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRole(v)
		return nil
	case user.FieldFirstName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFirstName(v)
		return nil
	case user.FieldLastName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastName(v)
		return nil
	case user.FieldPhone:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPhone(v)
		return nil
	case user.FieldDni:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDni(v)
		return nil
	case user.FieldBiologicalSex:
		v, ok := value.(user.BiologicalSex)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBiologicalSex(v)
		return nil
	case user.FieldDateOfBirth:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDateOfBirth(v)
		return nil
	case user.FieldIsActive:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsActive(v)
		return nil
	case user.FieldLastLoginAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastLoginAt(v)
		return nil
	case user.FieldFailedLoginAttempts:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFailedLoginAttempts(v)
		return nil
	}
	return fmt.Errorf("unknown User field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *UserMutation) AddedFields() []string {
	var fields []string
	if m.addfailed_login_attempts != nil {
		fields = append(fields, user.FieldFailedLoginAttempts)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *UserMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case user.FieldFailedLoginAttempts:
		return m.AddedFailedLoginAttempts()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *UserMutation) AddField(name string, value ent.Value) error {
	switch name {
	case user.FieldFailedLoginAttempts:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddFailedLoginAttempts(v)
		return nil
	}
	return fmt.Errorf("unknown User numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *UserMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(user.FieldDeletedAt) {
		fields = append(fields, user.FieldDeletedAt)
	}
	if m.FieldCleared(user.FieldEmail) {
		fields = append(fields, user.FieldEmail)
	}
	if m.FieldCleared(user.FieldPasswordHash) {
		fields = append(fields, user.FieldPasswordHash)
	}
	if m.FieldCleared(user.FieldFirstName) {
		fields = append(fields, user.FieldFirstName)
	}
	if m.FieldCleared(user.FieldLastName) {
		fields = append(fields, user.FieldLastName)
	}
	if m.FieldCleared(user.FieldPhone) {
		fields = append(fields, user.FieldPhone)
	}
	if m.FieldCleared(user.FieldDni) {
		fields = append(fields, user.FieldDni)
	}
	if m.FieldCleared(user.FieldBiologicalSex) {
		fields = append(fields, user.FieldBiologicalSex)
	}
	if m.FieldCleared(user.FieldDateOfBirth) {
		fields = append(fields, user.FieldDateOfBirth)
	}
	if m.FieldCleared(user.FieldLastLoginAt) {
		fields = append(fields, user.FieldLastLoginAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *UserMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *UserMutation) ClearField(name string) error {
	switch name {
	case user.FieldDeletedAt:
		m.ClearDeletedAt()
		return nil
	case user.FieldEmail:
		m.ClearEmail()
		return nil
	case user.FieldPasswordHash:
		m.ClearPasswordHash()
		return nil
	case user.FieldFirstName:
		m.ClearFirstName()
		return nil
	case user.FieldLastName:
		m.ClearLastName()
		return nil
	case user.FieldPhone:
		m.ClearPhone()
		return nil
	case user.FieldDni:
		m.ClearDni()
		return nil
	case user.FieldBiologicalSex:
		m.ClearBiologicalSex()
		return nil
	case user.FieldDateOfBirth:
		m.ClearDateOfBirth()
		return nil
	case user.FieldLastLoginAt:
		m.ClearLastLoginAt()
		return nil
	}
	return fmt.Errorf("unknown User nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *UserMutation) ResetField(name string) error {
	switch name {
	case user.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case user.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case user.FieldDeletedAt:
		m.ResetDeletedAt()
		return nil
	case user.FieldUsername:
		m.ResetUsername()
		return nil
	case user.FieldEmail:
		m.ResetEmail()
		return nil
	case user.FieldPasswordHash:
		m.ResetPasswordHash()
		return nil
	case user.FieldRole:
		m.ResetRole()
		return nil
	case user.FieldFirstName:
		m.ResetFirstName()
		return nil
	case user.FieldLastName:
		m.ResetLastName()
		return nil
	case user.FieldPhone:
		m.ResetPhone()
		return nil
	case user.FieldDni:
		m.ResetDni()
		return nil
	case user.FieldBiologicalSex:
		m.ResetBiologicalSex()
		return nil
	case user.FieldDateOfBirth:
		m.ResetDateOfBirth()
		return nil
	case user.FieldIsActive:
		m.ResetIsActive()
		return nil
	case user.FieldLastLoginAt:
		m.ResetLastLoginAt()
		return nil
	case user.FieldFailedLoginAttempts:
		m.ResetFailedLoginAttempts()
		return nil
	}
	return fmt.Errorf("unknown User field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *UserMutation) AddedEdges() []string {
	edges := make([]string, 0, 3)
	if m.patient_profile != nil {
		edges = append(edges, user.EdgePatientProfile)
	}
	if m.treatments_as_doctor != nil {
		edges = append(edges, user.EdgeTreatmentsAsDoctor)
	}
	if m.punctures_performed != nil {
		edges = append(edges, user.EdgePuncturesPerformed)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *UserMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case user.EdgePatientProfile:
		if id := m.patient_profile; id != nil {
			return []ent.Value{*id}
		}
	case user.EdgeTreatmentsAsDoctor:
		ids := make([]ent.Value, 0, len(m.treatments_as_doctor))
		for id := range m.treatments_as_doctor {
			ids = append(ids, id)
		}
		return ids
	case user.EdgePuncturesPerformed:
		ids := make([]ent.Value, 0, len(m.punctures_performed))
		for id := range m.punctures_performed {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *UserMutation) RemovedEdges() []string {
	edges := make([]string, 0, 3)
	if m.removedtreatments_as_doctor != nil {
		edges = append(edges, user.EdgeTreatmentsAsDoctor)
	}
	if m.removedpunctures_performed != nil {
		edges = append(edges, user.EdgePuncturesPerformed)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *UserMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case user.EdgeTreatmentsAsDoctor:
		ids := make([]ent.Value, 0, len(m.removedtreatments_as_doctor))
		for id := range m.removedtreatments_as_doctor {
			ids = append(ids, id)
		}
		return ids
	case user.EdgePuncturesPerformed:
		ids := make([]ent.Value, 0, len(m.removedpunctures_performed))
		for id := range m.removedpunctures_performed {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *UserMutation) ClearedEdges() []string {
	edges := make([]string, 0, 3)
	if m.clearedpatient_profile {
		edges = append(edges, user.EdgePatientProfile)
	}
	if m.clearedtreatments_as_doctor {
		edges = append(edges, user.EdgeTreatmentsAsDoctor)
	}
	if m.clearedpunctures_performed {
		edges = append(edges, user.EdgePuncturesPerformed)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *UserMutation) EdgeCleared(name string) bool {
	switch name {
	case user.EdgePatientProfile:
		return m.clearedpatient_profile
	case user.EdgeTreatmentsAsDoctor:
		return m.clearedtreatments_as_doctor
	case user.EdgePuncturesPerformed:
		return m.clearedpunctures_performed
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *UserMutation) ClearEdge(name string) error {
	switch name {
	case user.EdgePatientProfile:
		m.ClearPatientProfile()
		return nil
	}
	return fmt.Errorf("unknown User unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *UserMutation) ResetEdge(name string) error {
	switch name {
	case user.EdgePatientProfile:
		m.ResetPatientProfile()
		return nil
	case user.EdgeTreatmentsAsDoctor:
		m.ResetTreatmentsAsDoctor()
		return nil
	case user.EdgePuncturesPerformed:
		m.ResetPuncturesPerformed()
		return nil
	}
	return fmt.Errorf("unknown User edge %s", name)
}
