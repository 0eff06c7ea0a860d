// Code generated by ent, DO NOT EDIT.

package repo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/fertitrack/fertitrack_backend/internal/repo/embryo"
	"github.com/fertitrack/fertitrack_backend/internal/repo/embryotransfer"
	"github.com/fertitrack/fertitrack_backend/internal/repo/oocyte"
	"github.com/fertitrack/fertitrack_backend/internal/repo/predicate"
	"github.com/google/uuid"
)

// EmbryoUpdate is the builder for updating Embryo entities.
type EmbryoUpdate struct {
	config
	hooks    []Hook
	mutation *EmbryoMutation
}

// Where appends a list predicates to the EmbryoUpdate builder.
func (_u *EmbryoUpdate) Where(ps ...predicate.Embryo) *EmbryoUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *EmbryoUpdate) SetUpdatedAt(v time.Time) *EmbryoUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetOocyteID sets the "oocyte_id" field.
func (_u *EmbryoUpdate) SetOocyteID(v uuid.UUID) *EmbryoUpdate {
	_u.mutation.SetOocyteID(v)
	return _u
}

// SetNillableOocyteID sets the "oocyte_id" field if the given value is not nil.
func (_u *EmbryoUpdate) SetNillableOocyteID(v *uuid.UUID) *EmbryoUpdate {
	if v != nil {
		_u.SetOocyteID(*v)
	}
	return _u
}

// SetEmbryoCode sets the "embryo_code" field.
func (_u *EmbryoUpdate) SetEmbryoCode(v string) *EmbryoUpdate {
	_u.mutation.SetEmbryoCode(v)
	return _u
}

// SetNillableEmbryoCode sets the "embryo_code" field if the given value is not nil.
func (_u *EmbryoUpdate) SetNillableEmbryoCode(v *string) *EmbryoUpdate {
	if v != nil {
		_u.SetEmbryoCode(*v)
	}
	return _u
}

// SetFertilizationTechnique sets the "fertilization_technique" field.
func (_u *EmbryoUpdate) SetFertilizationTechnique(v embryo.FertilizationTechnique) *EmbryoUpdate {
	_u.mutation.SetFertilizationTechnique(v)
	return _u
}

// SetNillableFertilizationTechnique sets the "fertilization_technique" field if the given value is not nil.
func (_u *EmbryoUpdate) SetNillableFertilizationTechnique(v *embryo.FertilizationTechnique) *EmbryoUpdate {
	if v != nil {
		_u.SetFertilizationTechnique(*v)
	}
	return _u
}

// SetSpermSource sets the "sperm_source" field.
func (_u *EmbryoUpdate) SetSpermSource(v embryo.SpermSource) *EmbryoUpdate {
	_u.mutation.SetSpermSource(v)
	return _u
}

// SetNillableSpermSource sets the "sperm_source" field if the given value is not nil.
func (_u *EmbryoUpdate) SetNillableSpermSource(v *embryo.SpermSource) *EmbryoUpdate {
	if v != nil {
		_u.SetSpermSource(*v)
	}
	return _u
}

// SetQuality sets the "quality" field.
func (_u *EmbryoUpdate) SetQuality(v int) *EmbryoUpdate {
	_u.mutation.ResetQuality()
	_u.mutation.SetQuality(v)
	return _u
}

// SetNillableQuality sets the "quality" field if the given value is not nil.
func (_u *EmbryoUpdate) SetNillableQuality(v *int) *EmbryoUpdate {
	if v != nil {
		_u.SetQuality(*v)
	}
	return _u
}

// AddQuality adds value to the "quality" field.
func (_u *EmbryoUpdate) AddQuality(v int) *EmbryoUpdate {
	_u.mutation.AddQuality(v)
	return _u
}

// SetCurrentState sets the "current_state" field.
func (_u *EmbryoUpdate) SetCurrentState(v embryo.CurrentState) *EmbryoUpdate {
	_u.mutation.SetCurrentState(v)
	return _u
}

// SetNillableCurrentState sets the "current_state" field if the given value is not nil.
func (_u *EmbryoUpdate) SetNillableCurrentState(v *embryo.CurrentState) *EmbryoUpdate {
	if v != nil {
		_u.SetCurrentState(*v)
	}
	return _u
}

// SetPgtPerformed sets the "pgt_performed" field.
func (_u *EmbryoUpdate) SetPgtPerformed(v bool) *EmbryoUpdate {
	_u.mutation.SetPgtPerformed(v)
	return _u
}

// SetNillablePgtPerformed sets the "pgt_performed" field if the given value is not nil.
func (_u *EmbryoUpdate) SetNillablePgtPerformed(v *bool) *EmbryoUpdate {
	if v != nil {
		_u.SetPgtPerformed(*v)
	}
	return _u
}

// SetPgtResult sets the "pgt_result" field.
func (_u *EmbryoUpdate) SetPgtResult(v bool) *EmbryoUpdate {
	_u.mutation.SetPgtResult(v)
	return _u
}

// SetNillablePgtResult sets the "pgt_result" field if the given value is not nil.
func (_u *EmbryoUpdate) SetNillablePgtResult(v *bool) *EmbryoUpdate {
	if v != nil {
		_u.SetPgtResult(*v)
	}
	return _u
}

// ClearPgtResult clears the value of the "pgt_result" field.
func (_u *EmbryoUpdate) ClearPgtResult() *EmbryoUpdate {
	_u.mutation.ClearPgtResult()
	return _u
}

// SetNitrogenTube sets the "nitrogen_tube" field.
func (_u *EmbryoUpdate) SetNitrogenTube(v string) *EmbryoUpdate {
	_u.mutation.SetNitrogenTube(v)
	return _u
}

// SetNillableNitrogenTube sets the "nitrogen_tube" field if the given value is not nil.
func (_u *EmbryoUpdate) SetNillableNitrogenTube(v *string) *EmbryoUpdate {
	if v != nil {
		_u.SetNitrogenTube(*v)
	}
	return _u
}

// ClearNitrogenTube clears the value of the "nitrogen_tube" field.
func (_u *EmbryoUpdate) ClearNitrogenTube() *EmbryoUpdate {
	_u.mutation.ClearNitrogenTube()
	return _u
}

// SetRackNumber sets the "rack_number" field.
func (_u *EmbryoUpdate) SetRackNumber(v string) *EmbryoUpdate {
	_u.mutation.SetRackNumber(v)
	return _u
}

// SetNillableRackNumber sets the "rack_number" field if the given value is not nil.
func (_u *EmbryoUpdate) SetNillableRackNumber(v *string) *EmbryoUpdate {
	if v != nil {
		_u.SetRackNumber(*v)
	}
	return _u
}

// ClearRackNumber clears the value of the "rack_number" field.
func (_u *EmbryoUpdate) ClearRackNumber() *EmbryoUpdate {
	_u.mutation.ClearRackNumber()
	return _u
}

// SetDiscardReason sets the "discard_reason" field.
func (_u *EmbryoUpdate) SetDiscardReason(v string) *EmbryoUpdate {
	_u.mutation.SetDiscardReason(v)
	return _u
}

// SetNillableDiscardReason sets the "discard_reason" field if the given value is not nil.
func (_u *EmbryoUpdate) SetNillableDiscardReason(v *string) *EmbryoUpdate {
	if v != nil {
		_u.SetDiscardReason(*v)
	}
	return _u
}

// ClearDiscardReason clears the value of the "discard_reason" field.
func (_u *EmbryoUpdate) ClearDiscardReason() *EmbryoUpdate {
	_u.mutation.ClearDiscardReason()
	return _u
}

// SetOocyte sets the "oocyte" edge to the Oocyte entity.
func (_u *EmbryoUpdate) SetOocyte(v *Oocyte) *EmbryoUpdate {
	return _u.SetOocyteID(v.ID)
}

// SetTransferID sets the "transfer" edge to the EmbryoTransfer entity by ID.
func (_u *EmbryoUpdate) SetTransferID(id uuid.UUID) *EmbryoUpdate {
	_u.mutation.SetTransferID(id)
	return _u
}

// SetNillableTransferID sets the "transfer" edge to the EmbryoTransfer entity by ID if the given value is not nil.
func (_u *EmbryoUpdate) SetNillableTransferID(id *uuid.UUID) *EmbryoUpdate {
	if id != nil {
		_u = _u.SetTransferID(*id)
	}
	return _u
}

// SetTransfer sets the "transfer" edge to the EmbryoTransfer entity.
func (_u *EmbryoUpdate) SetTransfer(v *EmbryoTransfer) *EmbryoUpdate {
	return _u.SetTransferID(v.ID)
}

// Mutation returns the EmbryoMutation object of the builder.
func (_u *EmbryoUpdate) Mutation() *EmbryoMutation {
	return _u.mutation
}

// ClearOocyte clears the "oocyte" edge to the Oocyte entity.
func (_u *EmbryoUpdate) ClearOocyte() *EmbryoUpdate {
	_u.mutation.ClearOocyte()
	return _u
}

// ClearTransfer clears the "transfer" edge to the EmbryoTransfer entity.
func (_u *EmbryoUpdate) ClearTransfer() *EmbryoUpdate {
	_u.mutation.ClearTransfer()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *EmbryoUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *EmbryoUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *EmbryoUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *EmbryoUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *EmbryoUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := embryo.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *EmbryoUpdate) check() error {
	if v, ok := _u.mutation.EmbryoCode(); ok {
		if err := embryo.EmbryoCodeValidator(v); err != nil {
			return &ValidationError{Name: "embryo_code", err: fmt.Errorf(`repo: validator failed for field "Embryo.embryo_code": %w`, err)}
		}
	}
	if v, ok := _u.mutation.FertilizationTechnique(); ok {
		if err := embryo.FertilizationTechniqueValidator(v); err != nil {
			return &ValidationError{Name: "fertilization_technique", err: fmt.Errorf(`repo: validator failed for field "Embryo.fertilization_technique": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SpermSource(); ok {
		if err := embryo.SpermSourceValidator(v); err != nil {
			return &ValidationError{Name: "sperm_source", err: fmt.Errorf(`repo: validator failed for field "Embryo.sperm_source": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Quality(); ok {
		if err := embryo.QualityValidator(v); err != nil {
			return &ValidationError{Name: "quality", err: fmt.Errorf(`repo: validator failed for field "Embryo.quality": %w`, err)}
		}
	}
	if v, ok := _u.mutation.CurrentState(); ok {
		if err := embryo.CurrentStateValidator(v); err != nil {
			return &ValidationError{Name: "current_state", err: fmt.Errorf(`repo: validator failed for field "Embryo.current_state": %w`, err)}
		}
	}
	if v, ok := _u.mutation.NitrogenTube(); ok {
		if err := embryo.NitrogenTubeValidator(v); err != nil {
			return &ValidationError{Name: "nitrogen_tube", err: fmt.Errorf(`repo: validator failed for field "Embryo.nitrogen_tube": %w`, err)}
		}
	}
	if v, ok := _u.mutation.RackNumber(); ok {
		if err := embryo.RackNumberValidator(v); err != nil {
			return &ValidationError{Name: "rack_number", err: fmt.Errorf(`repo: validator failed for field "Embryo.rack_number": %w`, err)}
		}
	}
	if _u.mutation.OocyteCleared() && len(_u.mutation.OocyteIDs()) > 0 {
		return errors.New(`repo: clearing a required unique edge "Embryo.oocyte"`)
	}
	return nil
}

func (_u *EmbryoUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(embryo.Table, embryo.Columns, sqlgraph.NewFieldSpec(embryo.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(embryo.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.EmbryoCode(); ok {
		_spec.SetField(embryo.FieldEmbryoCode, field.TypeString, value)
	}
	if value, ok := _u.mutation.FertilizationTechnique(); ok {
		_spec.SetField(embryo.FieldFertilizationTechnique, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.SpermSource(); ok {
		_spec.SetField(embryo.FieldSpermSource, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Quality(); ok {
		_spec.SetField(embryo.FieldQuality, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedQuality(); ok {
		_spec.AddField(embryo.FieldQuality, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CurrentState(); ok {
		_spec.SetField(embryo.FieldCurrentState, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.PgtPerformed(); ok {
		_spec.SetField(embryo.FieldPgtPerformed, field.TypeBool, value)
	}
	if value, ok := _u.mutation.PgtResult(); ok {
		_spec.SetField(embryo.FieldPgtResult, field.TypeBool, value)
	}
	if _u.mutation.PgtResultCleared() {
		_spec.ClearField(embryo.FieldPgtResult, field.TypeBool)
	}
	if value, ok := _u.mutation.NitrogenTube(); ok {
		_spec.SetField(embryo.FieldNitrogenTube, field.TypeString, value)
	}
	if _u.mutation.NitrogenTubeCleared() {
		_spec.ClearField(embryo.FieldNitrogenTube, field.TypeString)
	}
	if value, ok := _u.mutation.RackNumber(); ok {
		_spec.SetField(embryo.FieldRackNumber, field.TypeString, value)
	}
	if _u.mutation.RackNumberCleared() {
		_spec.ClearField(embryo.FieldRackNumber, field.TypeString)
	}
	if value, ok := _u.mutation.DiscardReason(); ok {
		_spec.SetField(embryo.FieldDiscardReason, field.TypeString, value)
	}
	if _u.mutation.DiscardReasonCleared() {
		_spec.ClearField(embryo.FieldDiscardReason, field.TypeString)
	}
	if _u.mutation.OocyteCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.OocyteIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.TransferCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.TransferIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{embryo.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// EmbryoUpdateOne is the builder for updating a single Embryo entity.
type EmbryoUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *EmbryoMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *EmbryoUpdateOne) SetUpdatedAt(v time.Time) *EmbryoUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetOocyteID sets the "oocyte_id" field.
func (_u *EmbryoUpdateOne) SetOocyteID(v uuid.UUID) *EmbryoUpdateOne {
	_u.mutation.SetOocyteID(v)
	return _u
}

// SetNillableOocyteID sets the "oocyte_id" field if the given value is not nil.
func (_u *EmbryoUpdateOne) SetNillableOocyteID(v *uuid.UUID) *EmbryoUpdateOne {
	if v != nil {
		_u.SetOocyteID(*v)
	}
	return _u
}

// SetEmbryoCode sets the "embryo_code" field.
func (_u *EmbryoUpdateOne) SetEmbryoCode(v string) *EmbryoUpdateOne {
	_u.mutation.SetEmbryoCode(v)
	return _u
}

// SetNillableEmbryoCode sets the "embryo_code" field if the given value is not nil.
func (_u *EmbryoUpdateOne) SetNillableEmbryoCode(v *string) *EmbryoUpdateOne {
	if v != nil {
		_u.SetEmbryoCode(*v)
	}
	return _u
}

// SetFertilizationTechnique sets the "fertilization_technique" field.
func (_u *EmbryoUpdateOne) SetFertilizationTechnique(v embryo.FertilizationTechnique) *EmbryoUpdateOne {
	_u.mutation.SetFertilizationTechnique(v)
	return _u
}

// SetNillableFertilizationTechnique sets the "fertilization_technique" field if the given value is not nil.
func (_u *EmbryoUpdateOne) SetNillableFertilizationTechnique(v *embryo.FertilizationTechnique) *EmbryoUpdateOne {
	if v != nil {
		_u.SetFertilizationTechnique(*v)
	}
	return _u
}

// SetSpermSource sets the "sperm_source" field.
func (_u *EmbryoUpdateOne) SetSpermSource(v embryo.SpermSource) *EmbryoUpdateOne {
	_u.mutation.SetSpermSource(v)
	return _u
}

// SetNillableSpermSource sets the "sperm_source" field if the given value is not nil.
func (_u *EmbryoUpdateOne) SetNillableSpermSource(v *embryo.SpermSource) *EmbryoUpdateOne {
	if v != nil {
		_u.SetSpermSource(*v)
	}
	return _u
}

// SetQuality sets the "quality" field.
func (_u *EmbryoUpdateOne) SetQuality(v int) *EmbryoUpdateOne {
	_u.mutation.ResetQuality()
	_u.mutation.SetQuality(v)
	return _u
}

// SetNillableQuality sets the "quality" field if the given value is not nil.
func (_u *EmbryoUpdateOne) SetNillableQuality(v *int) *EmbryoUpdateOne {
	if v != nil {
		_u.SetQuality(*v)
	}
	return _u
}

// AddQuality adds value to the "quality" field.
func (_u *EmbryoUpdateOne) AddQuality(v int) *EmbryoUpdateOne {
	_u.mutation.AddQuality(v)
	return _u
}

// SetCurrentState sets the "current_state" field.
func (_u *EmbryoUpdateOne) SetCurrentState(v embryo.CurrentState) *EmbryoUpdateOne {
	_u.mutation.SetCurrentState(v)
	return _u
}

// SetNillableCurrentState sets the "current_state" field if the given value is not nil.
func (_u *EmbryoUpdateOne) SetNillableCurrentState(v *embryo.CurrentState) *EmbryoUpdateOne {
	if v != nil {
		_u.SetCurrentState(*v)
	}
	return _u
}

// SetPgtPerformed sets the "pgt_performed" field.
func (_u *EmbryoUpdateOne) SetPgtPerformed(v bool) *EmbryoUpdateOne {
	_u.mutation.SetPgtPerformed(v)
	return _u
}

// SetNillablePgtPerformed sets the "pgt_performed" field if the given value is not nil.
func (_u *EmbryoUpdateOne) SetNillablePgtPerformed(v *bool) *EmbryoUpdateOne {
	if v != nil {
		_u.SetPgtPerformed(*v)
	}
	return _u
}

// SetPgtResult sets the "pgt_result" field.
func (_u *EmbryoUpdateOne) SetPgtResult(v bool) *EmbryoUpdateOne {
	_u.mutation.SetPgtResult(v)
	return _u
}

// SetNillablePgtResult sets the "pgt_result" field if the given value is not nil.
func (_u *EmbryoUpdateOne) SetNillablePgtResult(v *bool) *EmbryoUpdateOne {
	if v != nil {
		_u.SetPgtResult(*v)
	}
	return _u
}

// ClearPgtResult clears the value of the "pgt_result" field.
func (_u *EmbryoUpdateOne) ClearPgtResult() *EmbryoUpdateOne {
	_u.mutation.ClearPgtResult()
	return _u
}

// SetNitrogenTube sets the "nitrogen_tube" field.
func (_u *EmbryoUpdateOne) SetNitrogenTube(v string) *EmbryoUpdateOne {
	_u.mutation.SetNitrogenTube(v)
	return _u
}

// SetNillableNitrogenTube sets the "nitrogen_tube" field if the given value is not nil.
func (_u *EmbryoUpdateOne) SetNillableNitrogenTube(v *string) *EmbryoUpdateOne {
	if v != nil {
		_u.SetNitrogenTube(*v)
	}
	return _u
}

// ClearNitrogenTube clears the value of the "nitrogen_tube" field.
func (_u *EmbryoUpdateOne) ClearNitrogenTube() *EmbryoUpdateOne {
	_u.mutation.ClearNitrogenTube()
	return _u
}

// SetRackNumber sets the "rack_number" field.
func (_u *EmbryoUpdateOne) SetRackNumber(v string) *EmbryoUpdateOne {
	_u.mutation.SetRackNumber(v)
	return _u
}

// SetNillableRackNumber sets the "rack_number" field if the given value is not nil.
func (_u *EmbryoUpdateOne) SetNillableRackNumber(v *string) *EmbryoUpdateOne {
	if v != nil {
		_u.SetRackNumber(*v)
	}
	return _u
}

// ClearRackNumber clears the value of the "rack_number" field.
func (_u *EmbryoUpdateOne) ClearRackNumber() *EmbryoUpdateOne {
	_u.mutation.ClearRackNumber()
	return _u
}

// SetDiscardReason sets the "discard_reason" field.
func (_u *EmbryoUpdateOne) SetDiscardReason(v string) *EmbryoUpdateOne {
	_u.mutation.SetDiscardReason(v)
	return _u
}

// SetNillableDiscardReason sets the "discard_reason" field if the given value is not nil.
func (_u *EmbryoUpdateOne) SetNillableDiscardReason(v *string) *EmbryoUpdateOne {
	if v != nil {
		_u.SetDiscardReason(*v)
	}
	return _u
}

// ClearDiscardReason clears the value of the "discard_reason" field.
func (_u *EmbryoUpdateOne) ClearDiscardReason() *EmbryoUpdateOne {
	_u.mutation.ClearDiscardReason()
	return _u
}

// SetOocyte sets the "oocyte" edge to the Oocyte entity.
func (_u *EmbryoUpdateOne) SetOocyte(v *Oocyte) *EmbryoUpdateOne {
	return _u.SetOocyteID(v.ID)
}

// SetTransferID sets the "transfer" edge to the EmbryoTransfer entity by ID.
func (_u *EmbryoUpdateOne) SetTransferID(id uuid.UUID) *EmbryoUpdateOne {
	_u.mutation.SetTransferID(id)
	return _u
}

// SetNillableTransferID sets the "transfer" edge to the EmbryoTransfer entity by ID if the given value is not nil.
func (_u *EmbryoUpdateOne) SetNillableTransferID(id *uuid.UUID) *EmbryoUpdateOne {
	if id != nil {
		_u = _u.SetTransferID(*id)
	}
	return _u
}

// SetTransfer sets the "transfer" edge to the EmbryoTransfer entity.
func (_u *EmbryoUpdateOne) SetTransfer(v *EmbryoTransfer) *EmbryoUpdateOne {
	return _u.SetTransferID(v.ID)
}

// Mutation returns the EmbryoMutation object of the builder.
func (_u *EmbryoUpdateOne) Mutation() *EmbryoMutation {
	return _u.mutation
}

// ClearOocyte clears the "oocyte" edge to the Oocyte entity.
func (_u *EmbryoUpdateOne) ClearOocyte() *EmbryoUpdateOne {
	_u.mutation.ClearOocyte()
	return _u
}

// ClearTransfer clears the "transfer" edge to the EmbryoTransfer entity.
func (_u *EmbryoUpdateOne) ClearTransfer() *EmbryoUpdateOne {
	_u.mutation.ClearTransfer()
	return _u
}

// Where appends a list predicates to the EmbryoUpdate builder.
func (_u *EmbryoUpdateOne) Where(ps ...predicate.Embryo) *EmbryoUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *EmbryoUpdateOne) Select(field string, fields ...string) *EmbryoUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Embryo entity.
func (_u *EmbryoUpdateOne) Save(ctx context.Context) (*Embryo, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *EmbryoUpdateOne) SaveX(ctx context.Context) *Embryo {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *EmbryoUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *EmbryoUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *EmbryoUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := embryo.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *EmbryoUpdateOne) check() error {
	if v, ok := _u.mutation.EmbryoCode(); ok {
		if err := embryo.EmbryoCodeValidator(v); err != nil {
			return &ValidationError{Name: "embryo_code", err: fmt.Errorf(`repo: validator failed for field "Embryo.embryo_code": %w`, err)}
		}
	}
	if v, ok := _u.mutation.FertilizationTechnique(); ok {
		if err := embryo.FertilizationTechniqueValidator(v); err != nil {
			return &ValidationError{Name: "fertilization_technique", err: fmt.Errorf(`repo: validator failed for field "Embryo.fertilization_technique": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SpermSource(); ok {
		if err := embryo.SpermSourceValidator(v); err != nil {
			return &ValidationError{Name: "sperm_source", err: fmt.Errorf(`repo: validator failed for field "Embryo.sperm_source": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Quality(); ok {
		if err := embryo.QualityValidator(v); err != nil {
			return &ValidationError{Name: "quality", err: fmt.Errorf(`repo: validator failed for field "Embryo.quality": %w`, err)}
		}
	}
	if v, ok := _u.mutation.CurrentState(); ok {
		if err := embryo.CurrentStateValidator(v); err != nil {
			return &ValidationError{Name: "current_state", err: fmt.Errorf(`repo: validator failed for field "Embryo.current_state": %w`, err)}
		}
	}
	if v, ok := _u.mutation.NitrogenTube(); ok {
		if err := embryo.NitrogenTubeValidator(v); err != nil {
			return &ValidationError{Name: "nitrogen_tube", err: fmt.Errorf(`repo: validator failed for field "Embryo.nitrogen_tube": %w`, err)}
		}
	}
	if v, ok := _u.mutation.RackNumber(); ok {
		if err := embryo.RackNumberValidator(v); err != nil {
			return &ValidationError{Name: "rack_number", err: fmt.Errorf(`repo: validator failed for field "Embryo.rack_number": %w`, err)}
		}
	}
	if _u.mutation.OocyteCleared() && len(_u.mutation.OocyteIDs()) > 0 {
		return errors.New(`repo: clearing a required unique edge "Embryo.oocyte"`)
	}
	return nil
}

func (_u *EmbryoUpdateOne) sqlSave(ctx context.Context) (_node *Embryo, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(embryo.Table, embryo.Columns, sqlgraph.NewFieldSpec(embryo.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`repo: missing "Embryo.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, embryo.FieldID)
		for _, f := range fields {
			if !embryo.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("repo: invalid field %q for query", f)}
			}
			if f != embryo.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(embryo.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.EmbryoCode(); ok {
		_spec.SetField(embryo.FieldEmbryoCode, field.TypeString, value)
	}
	if value, ok := _u.mutation.FertilizationTechnique(); ok {
		_spec.SetField(embryo.FieldFertilizationTechnique, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.SpermSource(); ok {
		_spec.SetField(embryo.FieldSpermSource, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Quality(); ok {
		_spec.SetField(embryo.FieldQuality, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedQuality(); ok {
		_spec.AddField(embryo.FieldQuality, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CurrentState(); ok {
		_spec.SetField(embryo.FieldCurrentState, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.PgtPerformed(); ok {
		_spec.SetField(embryo.FieldPgtPerformed, field.TypeBool, value)
	}
	if value, ok := _u.mutation.PgtResult(); ok {
		_spec.SetField(embryo.FieldPgtResult, field.TypeBool, value)
	}
	if _u.mutation.PgtResultCleared() {
		_spec.ClearField(embryo.FieldPgtResult, field.TypeBool)
	}
	if value, ok := _u.mutation.NitrogenTube(); ok {
		_spec.SetField(embryo.FieldNitrogenTube, field.TypeString, value)
	}
	if _u.mutation.NitrogenTubeCleared() {
		_spec.ClearField(embryo.FieldNitrogenTube, field.TypeString)
	}
	if value, ok := _u.mutation.RackNumber(); ok {
		_spec.SetField(embryo.FieldRackNumber, field.TypeString, value)
	}
	if _u.mutation.RackNumberCleared() {
		_spec.ClearField(embryo.FieldRackNumber, field.TypeString)
	}
	if value, ok := _u.mutation.DiscardReason(); ok {
		_spec.SetField(embryo.FieldDiscardReason, field.TypeString, value)
	}
	if _u.mutation.DiscardReasonCleared() {
		_spec.ClearField(embryo.FieldDiscardReason, field.TypeString)
	}
	if _u.mutation.OocyteCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.OocyteIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.TransferCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.TransferIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Embryo{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{embryo.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
