// Code generated by ent, DO NOT EDIT.

package repo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/fertitrack/fertitrack_backend/internal/repo/embryo"
	"github.com/fertitrack/fertitrack_backend/internal/repo/embryotransfer"
	"github.com/fertitrack/fertitrack_backend/internal/repo/oocyte"
	"github.com/google/uuid"
)

// EmbryoCreate is the builder for creating a Embryo entity.
type EmbryoCreate struct {
	config
	mutation *EmbryoMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetCreatedAt sets the "created_at" field.
func (_c *EmbryoCreate) SetCreatedAt(v time.Time) *EmbryoCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *EmbryoCreate) SetNillableCreatedAt(v *time.Time) *EmbryoCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *EmbryoCreate) SetUpdatedAt(v time.Time) *EmbryoCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *EmbryoCreate) SetNillableUpdatedAt(v *time.Time) *EmbryoCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetOocyteID sets the "oocyte_id" field.
func (_c *EmbryoCreate) SetOocyteID(v uuid.UUID) *EmbryoCreate {
	_c.mutation.SetOocyteID(v)
	return _c
}

// SetEmbryoCode sets the "embryo_code" field.
func (_c *EmbryoCreate) SetEmbryoCode(v string) *EmbryoCreate {
	_c.mutation.SetEmbryoCode(v)
	return _c
}

// SetFertilizationTechnique sets the "fertilization_technique" field.
func (_c *EmbryoCreate) SetFertilizationTechnique(v embryo.FertilizationTechnique) *EmbryoCreate {
	_c.mutation.SetFertilizationTechnique(v)
	return _c
}

// SetSpermSource sets the "sperm_source" field.
func (_c *EmbryoCreate) SetSpermSource(v embryo.SpermSource) *EmbryoCreate {
	_c.mutation.SetSpermSource(v)
	return _c
}

// SetQuality sets the "quality" field.
func (_c *EmbryoCreate) SetQuality(v int) *EmbryoCreate {
	_c.mutation.SetQuality(v)
	return _c
}

// SetCurrentState sets the "current_state" field.
func (_c *EmbryoCreate) SetCurrentState(v embryo.CurrentState) *EmbryoCreate {
	_c.mutation.SetCurrentState(v)
	return _c
}

// SetNillableCurrentState sets the "current_state" field if the given value is not nil.
func (_c *EmbryoCreate) SetNillableCurrentState(v *embryo.CurrentState) *EmbryoCreate {
	if v != nil {
		_c.SetCurrentState(*v)
	}
	return _c
}

// SetPgtPerformed sets the "pgt_performed" field.
func (_c *EmbryoCreate) SetPgtPerformed(v bool) *EmbryoCreate {
	_c.mutation.SetPgtPerformed(v)
	return _c
}

// SetNillablePgtPerformed sets the "pgt_performed" field if the given value is not nil.
func (_c *EmbryoCreate) SetNillablePgtPerformed(v *bool) *EmbryoCreate {
	if v != nil {
		_c.SetPgtPerformed(*v)
	}
	return _c
}

// SetPgtResult sets the "pgt_result" field.
func (_c *EmbryoCreate) SetPgtResult(v bool) *EmbryoCreate {
	_c.mutation.SetPgtResult(v)
	return _c
}

// SetNillablePgtResult sets the "pgt_result" field if the given value is not nil.
func (_c *EmbryoCreate) SetNillablePgtResult(v *bool) *EmbryoCreate {
	if v != nil {
		_c.SetPgtResult(*v)
	}
	return _c
}

// SetNitrogenTube sets the "nitrogen_tube" field.
func (_c *EmbryoCreate) SetNitrogenTube(v string) *EmbryoCreate {
	_c.mutation.SetNitrogenTube(v)
	return _c
}

// SetNillableNitrogenTube sets the "nitrogen_tube" field if the given value is not nil.
func (_c *EmbryoCreate) SetNillableNitrogenTube(v *string) *EmbryoCreate {
	if v != nil {
		_c.SetNitrogenTube(*v)
	}
	return _c
}

// SetRackNumber sets the "rack_number" field.
func (_c *EmbryoCreate) SetRackNumber(v string) *EmbryoCreate {
	_c.mutation.SetRackNumber(v)
	return _c
}

// SetNillableRackNumber sets the "rack_number" field if the given value is not nil.
func (_c *EmbryoCreate) SetNillableRackNumber(v *string) *EmbryoCreate {
	if v != nil {
		_c.SetRackNumber(*v)
	}
	return _c
}

// SetDiscardReason sets the "discard_reason" field.
func (_c *EmbryoCreate) SetDiscardReason(v string) *EmbryoCreate {
	_c.mutation.SetDiscardReason(v)
	return _c
}

// SetNillableDiscardReason sets the "discard_reason" field if the given value is not nil.
func (_c *EmbryoCreate) SetNillableDiscardReason(v *string) *EmbryoCreate {
	if v != nil {
		_c.SetDiscardReason(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *EmbryoCreate) SetID(v uuid.UUID) *EmbryoCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *EmbryoCreate) SetNillableID(v *uuid.UUID) *EmbryoCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetOocyte sets the "oocyte" edge to the Oocyte entity.
func (_c *EmbryoCreate) SetOocyte(v *Oocyte) *EmbryoCreate {
	return _c.SetOocyteID(v.ID)
}

// SetTransferID sets the "transfer" edge to the EmbryoTransfer entity by ID.
func (_c *EmbryoCreate) SetTransferID(id uuid.UUID) *EmbryoCreate {
	_c.mutation.SetTransferID(id)
	return _c
}

// SetNillableTransferID sets the "transfer" edge to the EmbryoTransfer entity by ID if the given value is not nil.
func (_c *EmbryoCreate) SetNillableTransferID(id *uuid.UUID) *EmbryoCreate {
	if id != nil {
		_c = _c.SetTransferID(*id)
	}
	return _c
}

// SetTransfer sets the "transfer" edge to the EmbryoTransfer entity.
func (_c *EmbryoCreate) SetTransfer(v *EmbryoTransfer) *EmbryoCreate {
	return _c.SetTransferID(v.ID)
}

// Mutation returns the EmbryoMutation object of the builder.
func (_c *EmbryoCreate) Mutation() *EmbryoMutation {
	return _c.mutation
}

// Save creates the Embryo in the database.
func (_c *EmbryoCreate) Save(ctx context.Context) (*Embryo, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *EmbryoCreate) SaveX(ctx context.Context) *Embryo {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *EmbryoCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *EmbryoCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *EmbryoCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := embryo.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := embryo.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.CurrentState(); !ok {
		v := embryo.DefaultCurrentState
		_c.mutation.SetCurrentState(v)
	}
	if _, ok := _c.mutation.PgtPerformed(); !ok {
		v := embryo.DefaultPgtPerformed
		_c.mutation.SetPgtPerformed(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := embryo.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *EmbryoCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`repo: missing required field "Embryo.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`repo: missing required field "Embryo.updated_at"`)}
	}
	if _, ok := _c.mutation.OocyteID(); !ok {
		return &ValidationError{Name: "oocyte_id", err: errors.New(`repo: missing required field "Embryo.oocyte_id"`)}
	}
	if _, ok := _c.mutation.EmbryoCode(); !ok {
		return &ValidationError{Name: "embryo_code", err: errors.New(`repo: missing required field "Embryo.embryo_code"`)}
	}
	if v, ok := _c.mutation.EmbryoCode(); ok {
		if err := embryo.EmbryoCodeValidator(v); err != nil {
			return &ValidationError{Name: "embryo_code", err: fmt.Errorf(`repo: validator failed for field "Embryo.embryo_code": %w`, err)}
		}
	}
	if _, ok := _c.mutation.FertilizationTechnique(); !ok {
		return &ValidationError{Name: "fertilization_technique", err: errors.New(`repo: missing required field "Embryo.fertilization_technique"`)}
	}
	if v, ok := _c.mutation.FertilizationTechnique(); ok {
		if err := embryo.FertilizationTechniqueValidator(v); err != nil {
			return &ValidationError{Name: "fertilization_technique", err: fmt.Errorf(`repo: validator failed for field "Embryo.fertilization_technique": %w`, err)}
		}
	}
	if _, ok := _c.mutation.SpermSource(); !ok {
		return &ValidationError{Name: "sperm_source", err: errors.New(`repo: missing required field "Embryo.sperm_source"`)}
	}
	if v, ok := _c.mutation.SpermSource(); ok {
		if err := embryo.SpermSourceValidator(v); err != nil {
			return &ValidationError{Name: "sperm_source", err: fmt.Errorf(`repo: validator failed for field "Embryo.sperm_source": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Quality(); !ok {
		return &ValidationError{Name: "quality", err: errors.New(`repo: missing required field "Embryo.quality"`)}
	}
	if v, ok := _c.mutation.Quality(); ok {
		if err := embryo.QualityValidator(v); err != nil {
			return &ValidationError{Name: "quality", err: fmt.Errorf(`repo: validator failed for field "Embryo.quality": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CurrentState(); !ok {
		return &ValidationError{Name: "current_state", err: errors.New(`repo: missing required field "Embryo.current_state"`)}
	}
	if v, ok := _c.mutation.CurrentState(); ok {
		if err := embryo.CurrentStateValidator(v); err != nil {
			return &ValidationError{Name: "current_state", err: fmt.Errorf(`repo: validator failed for field "Embryo.current_state": %w`, err)}
		}
	}
	if _, ok := _c.mutation.PgtPerformed(); !ok {
		return &ValidationError{Name: "pgt_performed", err: errors.New(`repo: missing required field "Embryo.pgt_performed"`)}
	}
	if v, ok := _c.mutation.NitrogenTube(); ok {
		if err := embryo.NitrogenTubeValidator(v); err != nil {
			return &ValidationError{Name: "nitrogen_tube", err: fmt.Errorf(`repo: validator failed for field "Embryo.nitrogen_tube": %w`, err)}
		}
	}
	if v, ok := _c.mutation.RackNumber(); ok {
		if err := embryo.RackNumberValidator(v); err != nil {
			return &ValidationError{Name: "rack_number", err: fmt.Errorf(`repo: validator failed for field "Embryo.rack_number": %w`, err)}
		}
	}
	if len(_c.mutation.OocyteIDs()) == 0 {
		return &ValidationError{Name: "oocyte", err: errors.New(`repo: missing required edge "Embryo.oocyte"`)}
	}
	return nil
}

func (_c *EmbryoCreate) sqlSave(ctx context.Context) (*Embryo, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(*uuid.UUID); ok {
			_node.ID = *id
		} else if err := _node.ID.Scan(_spec.ID.Value); err != nil {
			return nil, err
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *EmbryoCreate) createSpec() (*Embryo, *sqlgraph.CreateSpec) {
	var (
		_node = &Embryo{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(embryo.Table, sqlgraph.NewFieldSpec(embryo.FieldID, field.TypeUUID))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(embryo.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(embryo.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.EmbryoCode(); ok {
		_spec.SetField(embryo.FieldEmbryoCode, field.TypeString, value)
		_node.EmbryoCode = value
	}
	if value, ok := _c.mutation.FertilizationTechnique(); ok {
		_spec.SetField(embryo.FieldFertilizationTechnique, field.TypeEnum, value)
		_node.FertilizationTechnique = value
	}
	if value, ok := _c.mutation.SpermSource(); ok {
		_spec.SetField(embryo.FieldSpermSource, field.TypeEnum, value)
		_node.SpermSource = value
	}
	if value, ok := _c.mutation.Quality(); ok {
		_spec.SetField(embryo.FieldQuality, field.TypeInt, value)
		_node.Quality = value
	}
	if value, ok := _c.mutation.CurrentState(); ok {
		_spec.SetField(embryo.FieldCurrentState, field.TypeEnum, value)
		_node.CurrentState = value
	}
	if value, ok := _c.mutation.PgtPerformed(); ok {
		_spec.SetField(embryo.FieldPgtPerformed, field.TypeBool, value)
		_node.PgtPerformed = value
	}
	if value, ok := _c.mutation.PgtResult(); ok {
		_spec.SetField(embryo.FieldPgtResult, field.TypeBool, value)
		_node.PgtResult = &value
	}
	if value, ok := _c.mutation.NitrogenTube(); ok {
		_spec.SetField(embryo.FieldNitrogenTube, field.TypeString, value)
		_node.NitrogenTube = &value
	}
	if value, ok := _c.mutation.RackNumber(); ok {
		_spec.SetField(embryo.FieldRackNumber, field.TypeString, value)
		_node.RackNumber = &value
	}
	if value, ok := _c.mutation.DiscardReason(); ok {
		_spec.SetField(embryo.FieldDiscardReason, field.TypeString, value)
		_node.DiscardReason = &value
	}
	if nodes := _c.mutation.OocyteIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: true,
			Table:   embryo.OocyteTable,
			Columns: []string{embryo.OocyteColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(oocyte.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.OocyteID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.TransferIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: false,
			Table:   embryo.TransferTable,
			Columns: []string{embryo.TransferColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(embryotransfer.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Embryo.Create().
//		SetCreatedAt(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.EmbryoUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *EmbryoCreate) OnConflict(opts ...sql.ConflictOption) *EmbryoUpsertOne {
	_c.conflict = opts
	return &EmbryoUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Embryo.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *EmbryoCreate) OnConflictColumns(columns ...string) *EmbryoUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &EmbryoUpsertOne{
		create: _c,
	}
}

type (
	// EmbryoUpsertOne is the builder for "upsert"-ing
	//  one Embryo node.
	EmbryoUpsertOne struct {
		create *EmbryoCreate
	}

	// EmbryoUpsert is the "OnConflict" setter.
	EmbryoUpsert struct {
		*sql.UpdateSet
	}
)

// SetUpdatedAt sets the "updated_at" field.
func (u *EmbryoUpsert) SetUpdatedAt(v time.Time) *EmbryoUpsert {
	u.Set(embryo.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *EmbryoUpsert) UpdateUpdatedAt() *EmbryoUpsert {
	u.SetExcluded(embryo.FieldUpdatedAt)
	return u
}

// SetOocyteID sets the "oocyte_id" field.
func (u *EmbryoUpsert) SetOocyteID(v uuid.UUID) *EmbryoUpsert {
	u.Set(embryo.FieldOocyteID, v)
	return u
}

// UpdateOocyteID sets the "oocyte_id" field to the value that was provided on create.
func (u *EmbryoUpsert) UpdateOocyteID() *EmbryoUpsert {
	u.SetExcluded(embryo.FieldOocyteID)
	return u
}

// SetEmbryoCode sets the "embryo_code" field.
func (u *EmbryoUpsert) SetEmbryoCode(v string) *EmbryoUpsert {
	u.Set(embryo.FieldEmbryoCode, v)
	return u
}

// UpdateEmbryoCode sets the "embryo_code" field to the value that was provided on create.
func (u *EmbryoUpsert) UpdateEmbryoCode() *EmbryoUpsert {
	u.SetExcluded(embryo.FieldEmbryoCode)
	return u
}

// SetFertilizationTechnique sets the "fertilization_technique" field.
func (u *EmbryoUpsert) SetFertilizationTechnique(v embryo.FertilizationTechnique) *EmbryoUpsert {
	u.Set(embryo.FieldFertilizationTechnique, v)
	return u
}

// UpdateFertilizationTechnique sets the "fertilization_technique" field to the value that was provided on create.
func (u *EmbryoUpsert) UpdateFertilizationTechnique() *EmbryoUpsert {
	u.SetExcluded(embryo.FieldFertilizationTechnique)
	return u
}

// SetSpermSource sets the "sperm_source" field.
func (u *EmbryoUpsert) SetSpermSource(v embryo.SpermSource) *EmbryoUpsert {
	u.Set(embryo.FieldSpermSource, v)
	return u
}

// UpdateSpermSource sets the "sperm_source" field to the value that was provided on create.
func (u *EmbryoUpsert) UpdateSpermSource() *EmbryoUpsert {
	u.SetExcluded(embryo.FieldSpermSource)
	return u
}

// SetQuality sets the "quality" field.
func (u *EmbryoUpsert) SetQuality(v int) *EmbryoUpsert {
	u.Set(embryo.FieldQuality, v)
	return u
}

// UpdateQuality sets the "quality" field to the value that was provided on create.
func (u *EmbryoUpsert) UpdateQuality() *EmbryoUpsert {
	u.SetExcluded(embryo.FieldQuality)
	return u
}

// AddQuality adds v to the "quality" field.
func (u *EmbryoUpsert) AddQuality(v int) *EmbryoUpsert {
	u.Add(embryo.FieldQuality, v)
	return u
}

// SetCurrentState sets the "current_state" field.
func (u *EmbryoUpsert) SetCurrentState(v embryo.CurrentState) *EmbryoUpsert {
	u.Set(embryo.FieldCurrentState, v)
	return u
}

// UpdateCurrentState sets the "current_state" field to the value that was provided on create.
func (u *EmbryoUpsert) UpdateCurrentState() *EmbryoUpsert {
	u.SetExcluded(embryo.FieldCurrentState)
	return u
}

// SetPgtPerformed sets the "pgt_performed" field.
func (u *EmbryoUpsert) SetPgtPerformed(v bool) *EmbryoUpsert {
	u.Set(embryo.FieldPgtPerformed, v)
	return u
}

// UpdatePgtPerformed sets the "pgt_performed" field to the value that was provided on create.
func (u *EmbryoUpsert) UpdatePgtPerformed() *EmbryoUpsert {
	u.SetExcluded(embryo.FieldPgtPerformed)
	return u
}

// SetPgtResult sets the "pgt_result" field.
func (u *EmbryoUpsert) SetPgtResult(v bool) *EmbryoUpsert {
	u.Set(embryo.FieldPgtResult, v)
	return u
}

// UpdatePgtResult sets the "pgt_result" field to the value that was provided on create.
func (u *EmbryoUpsert) UpdatePgtResult() *EmbryoUpsert {
	u.SetExcluded(embryo.FieldPgtResult)
	return u
}

// ClearPgtResult clears the value of the "pgt_result" field.
func (u *EmbryoUpsert) ClearPgtResult() *EmbryoUpsert {
	u.SetNull(embryo.FieldPgtResult)
	return u
}

// SetNitrogenTube sets the "nitrogen_tube" field.
func (u *EmbryoUpsert) SetNitrogenTube(v string) *EmbryoUpsert {
	u.Set(embryo.FieldNitrogenTube, v)
	return u
}

// UpdateNitrogenTube sets the "nitrogen_tube" field to the value that was provided on create.
func (u *EmbryoUpsert) UpdateNitrogenTube() *EmbryoUpsert {
	u.SetExcluded(embryo.FieldNitrogenTube)
	return u
}

// ClearNitrogenTube clears the value of the "nitrogen_tube" field.
func (u *EmbryoUpsert) ClearNitrogenTube() *EmbryoUpsert {
	u.SetNull(embryo.FieldNitrogenTube)
	return u
}

// SetRackNumber sets the "rack_number" field.
func (u *EmbryoUpsert) SetRackNumber(v string) *EmbryoUpsert {
	u.Set(embryo.FieldRackNumber, v)
	return u
}

// UpdateRackNumber sets the "rack_number" field to the value that was provided on create.
func (u *EmbryoUpsert) UpdateRackNumber() *EmbryoUpsert {
	u.SetExcluded(embryo.FieldRackNumber)
	return u
}

// ClearRackNumber clears the value of the "rack_number" field.
func (u *EmbryoUpsert) ClearRackNumber() *EmbryoUpsert {
	u.SetNull(embryo.FieldRackNumber)
	return u
}

// SetDiscardReason sets the "discard_reason" field.
func (u *EmbryoUpsert) SetDiscardReason(v string) *EmbryoUpsert {
	u.Set(embryo.FieldDiscardReason, v)
	return u
}

// UpdateDiscardReason sets the "discard_reason" field to the value that was provided on create.
func (u *EmbryoUpsert) UpdateDiscardReason() *EmbryoUpsert {
	u.SetExcluded(embryo.FieldDiscardReason)
	return u
}

// ClearDiscardReason clears the value of the "discard_reason" field.
func (u *EmbryoUpsert) ClearDiscardReason() *EmbryoUpsert {
	u.SetNull(embryo.FieldDiscardReason)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.Embryo.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(embryo.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *EmbryoUpsertOne) UpdateNewValues() *EmbryoUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(embryo.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(embryo.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Embryo.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *EmbryoUpsertOne) Ignore() *EmbryoUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *EmbryoUpsertOne) DoNothing() *EmbryoUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the EmbryoCreate.OnConflict
// documentation for more info.
func (u *EmbryoUpsertOne) Update(set func(*EmbryoUpsert)) *EmbryoUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&EmbryoUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *EmbryoUpsertOne) SetUpdatedAt(v time.Time) *EmbryoUpsertOne {
	return u.Update(func(s *EmbryoUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *EmbryoUpsertOne) UpdateUpdatedAt() *EmbryoUpsertOne {
	return u.Update(func(s *EmbryoUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetOocyteID sets the "oocyte_id" field.
func (u *EmbryoUpsertOne) SetOocyteID(v uuid.UUID) *EmbryoUpsertOne {
	return u.Update(func(s *EmbryoUpsert) {
		s.SetOocyteID(v)
	})
}

// UpdateOocyteID sets the "oocyte_id" field to the value that was provided on create.
func (u *EmbryoUpsertOne) UpdateOocyteID() *EmbryoUpsertOne {
	return u.Update(func(s *EmbryoUpsert) {
		s.UpdateOocyteID()
	})
}

// SetEmbryoCode sets the "embryo_code" field.
func (u *EmbryoUpsertOne) SetEmbryoCode(v string) *EmbryoUpsertOne {
	return u.Update(func(s *EmbryoUpsert) {
		s.SetEmbryoCode(v)
	})
}

// UpdateEmbryoCode sets the "embryo_code" field to the value that was provided on create.
func (u *EmbryoUpsertOne) UpdateEmbryoCode() *EmbryoUpsertOne {
	return u.Update(func(s *EmbryoUpsert) {
		s.UpdateEmbryoCode()
	})
}

// SetFertilizationTechnique sets the "fertilization_technique" field.
func (u *EmbryoUpsertOne) SetFertilizationTechnique(v embryo.FertilizationTechnique) *EmbryoUpsertOne {
	return u.Update(func(s *EmbryoUpsert) {
		s.SetFertilizationTechnique(v)
	})
}

// UpdateFertilizationTechnique sets the "fertilization_technique" field to the value that was provided on create.
func (u *EmbryoUpsertOne) UpdateFertilizationTechnique() *EmbryoUpsertOne {
	return u.Update(func(s *EmbryoUpsert) {
		s.UpdateFertilizationTechnique()
	})
}

// SetSpermSource sets the "sperm_source" field.
func (u *EmbryoUpsertOne) SetSpermSource(v embryo.SpermSource) *EmbryoUpsertOne {
	return u.Update(func(s *EmbryoUpsert) {
		s.SetSpermSource(v)
	})
}

// UpdateSpermSource sets the "sperm_source" field to the value that was provided on create.
func (u *EmbryoUpsertOne) UpdateSpermSource() *EmbryoUpsertOne {
	return u.Update(func(s *EmbryoUpsert) {
		s.UpdateSpermSource()
	})
}

// SetQuality sets the "quality" field.
func (u *EmbryoUpsertOne) SetQuality(v int) *EmbryoUpsertOne {
	return u.Update(func(s *EmbryoUpsert) {
		s.SetQuality(v)
	})
}

// AddQuality adds v to the "quality" field.
func (u *EmbryoUpsertOne) AddQuality(v int) *EmbryoUpsertOne {
	return u.Update(func(s *EmbryoUpsert) {
		s.AddQuality(v)
	})
}

// UpdateQuality sets the "quality" field to the value that was provided on create.
func (u *EmbryoUpsertOne) UpdateQuality() *EmbryoUpsertOne {
	return u.Update(func(s *EmbryoUpsert) {
		s.UpdateQuality()
	})
}

// SetCurrentState sets the "current_state" field.
func (u *EmbryoUpsertOne) SetCurrentState(v embryo.CurrentState) *EmbryoUpsertOne {
	return u.Update(func(s *EmbryoUpsert) {
		s.SetCurrentState(v)
	})
}

// UpdateCurrentState sets the "current_state" field to the value that was provided on create.
func (u *EmbryoUpsertOne) UpdateCurrentState() *EmbryoUpsertOne {
	return u.Update(func(s *EmbryoUpsert) {
		s.UpdateCurrentState()
	})
}

// SetPgtPerformed sets the "pgt_performed" field.
func (u *EmbryoUpsertOne) SetPgtPerformed(v bool) *EmbryoUpsertOne {
	return u.Update(func(s *EmbryoUpsert) {
		s.SetPgtPerformed(v)
	})
}

// UpdatePgtPerformed sets the "pgt_performed" field to the value that was provided on create.
func (u *EmbryoUpsertOne) UpdatePgtPerformed() *EmbryoUpsertOne {
	return u.Update(func(s *EmbryoUpsert) {
		s.UpdatePgtPerformed()
	})
}

// SetPgtResult sets the "pgt_result" field.
func (u *EmbryoUpsertOne) SetPgtResult(v bool) *EmbryoUpsertOne {
	return u.Update(func(s *EmbryoUpsert) {
		s.SetPgtResult(v)
	})
}

// UpdatePgtResult sets the "pgt_result" field to the value that was provided on create.
func (u *EmbryoUpsertOne) UpdatePgtResult() *EmbryoUpsertOne {
	return u.Update(func(s *EmbryoUpsert) {
		s.UpdatePgtResult()
	})
}

// ClearPgtResult clears the value of the "pgt_result" field.
func (u *EmbryoUpsertOne) ClearPgtResult() *EmbryoUpsertOne {
	return u.Update(func(s *EmbryoUpsert) {
		s.ClearPgtResult()
	})
}

// SetNitrogenTube sets the "nitrogen_tube" field.
func (u *EmbryoUpsertOne) SetNitrogenTube(v string) *EmbryoUpsertOne {
	return u.Update(func(s *EmbryoUpsert) {
		s.SetNitrogenTube(v)
	})
}

// UpdateNitrogenTube sets the "nitrogen_tube" field to the value that was provided on create.
func (u *EmbryoUpsertOne) UpdateNitrogenTube() *EmbryoUpsertOne {
	return u.Update(func(s *EmbryoUpsert) {
		s.UpdateNitrogenTube()
	})
}

// ClearNitrogenTube clears the value of the "nitrogen_tube" field.
func (u *EmbryoUpsertOne) ClearNitrogenTube() *EmbryoUpsertOne {
	return u.Update(func(s *EmbryoUpsert) {
		s.ClearNitrogenTube()
	})
}

// SetRackNumber sets the "rack_number" field.
func (u *EmbryoUpsertOne) SetRackNumber(v string) *EmbryoUpsertOne {
	return u.Update(func(s *EmbryoUpsert) {
		s.SetRackNumber(v)
	})
}

// UpdateRackNumber sets the "rack_number" field to the value that was provided on create.
func (u *EmbryoUpsertOne) UpdateRackNumber() *EmbryoUpsertOne {
	return u.Update(func(s *EmbryoUpsert) {
		s.UpdateRackNumber()
	})
}

// ClearRackNumber clears the value of the "rack_number" field.
func (u *EmbryoUpsertOne) ClearRackNumber() *EmbryoUpsertOne {
	return u.Update(func(s *EmbryoUpsert) {
		s.ClearRackNumber()
	})
}

// SetDiscardReason sets the "discard_reason" field.
func (u *EmbryoUpsertOne) SetDiscardReason(v string) *EmbryoUpsertOne {
	return u.Update(func(s *EmbryoUpsert) {
		s.SetDiscardReason(v)
	})
}

// UpdateDiscardReason sets the "discard_reason" field to the value that was provided on create.
func (u *EmbryoUpsertOne) UpdateDiscardReason() *EmbryoUpsertOne {
	return u.Update(func(s *EmbryoUpsert) {
		s.UpdateDiscardReason()
	})
}

// ClearDiscardReason clears the value of the "discard_reason" field.
func (u *EmbryoUpsertOne) ClearDiscardReason() *EmbryoUpsertOne {
	return u.Update(func(s *EmbryoUpsert) {
		s.ClearDiscardReason()
	})
}

// Exec executes the query.
func (u *EmbryoUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for EmbryoCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *EmbryoUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *EmbryoUpsertOne) ID(ctx context.Context) (id uuid.UUID, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("repo: EmbryoUpsertOne.ID is not supported by MySQL driver. Use EmbryoUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *EmbryoUpsertOne) IDX(ctx context.Context) uuid.UUID {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// EmbryoCreateBulk is the builder for creating many Embryo entities in bulk.
type EmbryoCreateBulk struct {
	config
	err      error
	builders []*EmbryoCreate
	conflict []sql.ConflictOption
}

// Save creates the Embryo entities in the database.
func (_c *EmbryoCreateBulk) Save(ctx context.Context) ([]*Embryo, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Embryo, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*EmbryoMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					spec.OnConflict = _c.conflict
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *EmbryoCreateBulk) SaveX(ctx context.Context) []*Embryo {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *EmbryoCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *EmbryoCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Embryo.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.EmbryoUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *EmbryoCreateBulk) OnConflict(opts ...sql.ConflictOption) *EmbryoUpsertBulk {
	_c.conflict = opts
	return &EmbryoUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Embryo.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *EmbryoCreateBulk) OnConflictColumns(columns ...string) *EmbryoUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &EmbryoUpsertBulk{
		create: _c,
	}
}

// EmbryoUpsertBulk is the builder for "upsert"-ing
// a bulk of Embryo nodes.
type EmbryoUpsertBulk struct {
	create *EmbryoCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Embryo.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(embryo.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *EmbryoUpsertBulk) UpdateNewValues() *EmbryoUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(embryo.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(embryo.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Embryo.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *EmbryoUpsertBulk) Ignore() *EmbryoUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *EmbryoUpsertBulk) DoNothing() *EmbryoUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the EmbryoCreateBulk.OnConflict
// documentation for more info.
func (u *EmbryoUpsertBulk) Update(set func(*EmbryoUpsert)) *EmbryoUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&EmbryoUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *EmbryoUpsertBulk) SetUpdatedAt(v time.Time) *EmbryoUpsertBulk {
	return u.Update(func(s *EmbryoUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *EmbryoUpsertBulk) UpdateUpdatedAt() *EmbryoUpsertBulk {
	return u.Update(func(s *EmbryoUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetOocyteID sets the "oocyte_id" field.
func (u *EmbryoUpsertBulk) SetOocyteID(v uuid.UUID) *EmbryoUpsertBulk {
	return u.Update(func(s *EmbryoUpsert) {
		s.SetOocyteID(v)
	})
}

// UpdateOocyteID sets the "oocyte_id" field to the value that was provided on create.
func (u *EmbryoUpsertBulk) UpdateOocyteID() *EmbryoUpsertBulk {
	return u.Update(func(s *EmbryoUpsert) {
		s.UpdateOocyteID()
	})
}

// SetEmbryoCode sets the "embryo_code" field.
func (u *EmbryoUpsertBulk) SetEmbryoCode(v string) *EmbryoUpsertBulk {
	return u.Update(func(s *EmbryoUpsert) {
		s.SetEmbryoCode(v)
	})
}

// UpdateEmbryoCode sets the "embryo_code" field to the value that was provided on create.
func (u *EmbryoUpsertBulk) UpdateEmbryoCode() *EmbryoUpsertBulk {
	return u.Update(func(s *EmbryoUpsert) {
		s.UpdateEmbryoCode()
	})
}

// SetFertilizationTechnique sets the "fertilization_technique" field.
func (u *EmbryoUpsertBulk) SetFertilizationTechnique(v embryo.FertilizationTechnique) *EmbryoUpsertBulk {
	return u.Update(func(s *EmbryoUpsert) {
		s.SetFertilizationTechnique(v)
	})
}

// UpdateFertilizationTechnique sets the "fertilization_technique" field to the value that was provided on create.
func (u *EmbryoUpsertBulk) UpdateFertilizationTechnique() *EmbryoUpsertBulk {
	return u.Update(func(s *EmbryoUpsert) {
		s.UpdateFertilizationTechnique()
	})
}

// SetSpermSource sets the "sperm_source" field.
func (u *EmbryoUpsertBulk) SetSpermSource(v embryo.SpermSource) *EmbryoUpsertBulk {
	return u.Update(func(s *EmbryoUpsert) {
		s.SetSpermSource(v)
	})
}

// UpdateSpermSource sets the "sperm_source" field to the value that was provided on create.
func (u *EmbryoUpsertBulk) UpdateSpermSource() *EmbryoUpsertBulk {
	return u.Update(func(s *EmbryoUpsert) {
		s.UpdateSpermSource()
	})
}

// SetQuality sets the "quality" field.
func (u *EmbryoUpsertBulk) SetQuality(v int) *EmbryoUpsertBulk {
	return u.Update(func(s *EmbryoUpsert) {
		s.SetQuality(v)
	})
}

// AddQuality adds v to the "quality" field.
func (u *EmbryoUpsertBulk) AddQuality(v int) *EmbryoUpsertBulk {
	return u.Update(func(s *EmbryoUpsert) {
		s.AddQuality(v)
	})
}

// UpdateQuality sets the "quality" field to the value that was provided on create.
func (u *EmbryoUpsertBulk) UpdateQuality() *EmbryoUpsertBulk {
	return u.Update(func(s *EmbryoUpsert) {
		s.UpdateQuality()
	})
}

// SetCurrentState sets the "current_state" field.
func (u *EmbryoUpsertBulk) SetCurrentState(v embryo.CurrentState) *EmbryoUpsertBulk {
	return u.Update(func(s *EmbryoUpsert) {
		s.SetCurrentState(v)
	})
}

// UpdateCurrentState sets the "current_state" field to the value that was provided on create.
func (u *EmbryoUpsertBulk) UpdateCurrentState() *EmbryoUpsertBulk {
	return u.Update(func(s *EmbryoUpsert) {
		s.UpdateCurrentState()
	})
}

// SetPgtPerformed sets the "pgt_performed" field.
func (u *EmbryoUpsertBulk) SetPgtPerformed(v bool) *EmbryoUpsertBulk {
	return u.Update(func(s *EmbryoUpsert) {
		s.SetPgtPerformed(v)
	})
}

// UpdatePgtPerformed sets the "pgt_performed" field to the value that was provided on create.
func (u *EmbryoUpsertBulk) UpdatePgtPerformed() *EmbryoUpsertBulk {
	return u.Update(func(s *EmbryoUpsert) {
		s.UpdatePgtPerformed()
	})
}

// SetPgtResult sets the "pgt_result" field.
func (u *EmbryoUpsertBulk) SetPgtResult(v bool) *EmbryoUpsertBulk {
	return u.Update(func(s *EmbryoUpsert) {
		s.SetPgtResult(v)
	})
}

// UpdatePgtResult sets the "pgt_result" field to the value that was provided on create.
func (u *EmbryoUpsertBulk) UpdatePgtResult() *EmbryoUpsertBulk {
	return u.Update(func(s *EmbryoUpsert) {
		s.UpdatePgtResult()
	})
}

// ClearPgtResult clears the value of the "pgt_result" field.
func (u *EmbryoUpsertBulk) ClearPgtResult() *EmbryoUpsertBulk {
	return u.Update(func(s *EmbryoUpsert) {
		s.ClearPgtResult()
	})
}

// SetNitrogenTube sets the "nitrogen_tube" field.
func (u *EmbryoUpsertBulk) SetNitrogenTube(v string) *EmbryoUpsertBulk {
	return u.Update(func(s *EmbryoUpsert) {
		s.SetNitrogenTube(v)
	})
}

// UpdateNitrogenTube sets the "nitrogen_tube" field to the value that was provided on create.
func (u *EmbryoUpsertBulk) UpdateNitrogenTube() *EmbryoUpsertBulk {
	return u.Update(func(s *EmbryoUpsert) {
		s.UpdateNitrogenTube()
	})
}

// ClearNitrogenTube clears the value of the "nitrogen_tube" field.
func (u *EmbryoUpsertBulk) ClearNitrogenTube() *EmbryoUpsertBulk {
	return u.Update(func(s *EmbryoUpsert) {
		s.ClearNitrogenTube()
	})
}

// SetRackNumber sets the "rack_number" field.
func (u *EmbryoUpsertBulk) SetRackNumber(v string) *EmbryoUpsertBulk {
	return u.Update(func(s *EmbryoUpsert) {
		s.SetRackNumber(v)
	})
}

// UpdateRackNumber sets the "rack_number" field to the value that was provided on create.
func (u *EmbryoUpsertBulk) UpdateRackNumber() *EmbryoUpsertBulk {
	return u.Update(func(s *EmbryoUpsert) {
		s.UpdateRackNumber()
	})
}

// ClearRackNumber clears the value of the "rack_number" field.
func (u *EmbryoUpsertBulk) ClearRackNumber() *EmbryoUpsertBulk {
	return u.Update(func(s *EmbryoUpsert) {
		s.ClearRackNumber()
	})
}

// SetDiscardReason sets the "discard_reason" field.
func (u *EmbryoUpsertBulk) SetDiscardReason(v string) *EmbryoUpsertBulk {
	return u.Update(func(s *EmbryoUpsert) {
		s.SetDiscardReason(v)
	})
}

// UpdateDiscardReason sets the "discard_reason" field to the value that was provided on create.
func (u *EmbryoUpsertBulk) UpdateDiscardReason() *EmbryoUpsertBulk {
	return u.Update(func(s *EmbryoUpsert) {
		s.UpdateDiscardReason()
	})
}

// ClearDiscardReason clears the value of the "discard_reason" field.
func (u *EmbryoUpsertBulk) ClearDiscardReason() *EmbryoUpsertBulk {
	return u.Update(func(s *EmbryoUpsert) {
		s.ClearDiscardReason()
	})
}

// Exec executes the query.
func (u *EmbryoUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("repo: OnConflict was set for builder %d. Set it on the EmbryoCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for EmbryoCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *EmbryoUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
