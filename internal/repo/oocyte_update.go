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
	"github.com/fertitrack/fertitrack_backend/internal/repo/oocyte"
	"github.com/fertitrack/fertitrack_backend/internal/repo/oocytestatehistory"
	"github.com/fertitrack/fertitrack_backend/internal/repo/predicate"
	"github.com/fertitrack/fertitrack_backend/internal/repo/puncture"
	"github.com/google/uuid"
)

// OocyteUpdate is the builder for updating Oocyte entities.
type OocyteUpdate struct {
	config
	hooks    []Hook
	mutation *OocyteMutation
}

// Where appends a list predicates to the OocyteUpdate builder.
func (_u *OocyteUpdate) Where(ps ...predicate.Oocyte) *OocyteUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *OocyteUpdate) SetUpdatedAt(v time.Time) *OocyteUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetPunctureID sets the "puncture_id" field.
func (_u *OocyteUpdate) SetPunctureID(v uuid.UUID) *OocyteUpdate {
	_u.mutation.SetPunctureID(v)
	return _u
}

// SetNillablePunctureID sets the "puncture_id" field if the given value is not nil.
func (_u *OocyteUpdate) SetNillablePunctureID(v *uuid.UUID) *OocyteUpdate {
	if v != nil {
		_u.SetPunctureID(*v)
	}
	return _u
}

// SetOocyteCode sets the "oocyte_code" field.
func (_u *OocyteUpdate) SetOocyteCode(v string) *OocyteUpdate {
	_u.mutation.SetOocyteCode(v)
	return _u
}

// SetNillableOocyteCode sets the "oocyte_code" field if the given value is not nil.
func (_u *OocyteUpdate) SetNillableOocyteCode(v *string) *OocyteUpdate {
	if v != nil {
		_u.SetOocyteCode(*v)
	}
	return _u
}

// SetCurrentState sets the "current_state" field.
func (_u *OocyteUpdate) SetCurrentState(v oocyte.CurrentState) *OocyteUpdate {
	_u.mutation.SetCurrentState(v)
	return _u
}

// SetNillableCurrentState sets the "current_state" field if the given value is not nil.
func (_u *OocyteUpdate) SetNillableCurrentState(v *oocyte.CurrentState) *OocyteUpdate {
	if v != nil {
		_u.SetCurrentState(*v)
	}
	return _u
}

// SetMaturationTimeHours sets the "maturation_time_hours" field.
func (_u *OocyteUpdate) SetMaturationTimeHours(v int) *OocyteUpdate {
	_u.mutation.ResetMaturationTimeHours()
	_u.mutation.SetMaturationTimeHours(v)
	return _u
}

// SetNillableMaturationTimeHours sets the "maturation_time_hours" field if the given value is not nil.
func (_u *OocyteUpdate) SetNillableMaturationTimeHours(v *int) *OocyteUpdate {
	if v != nil {
		_u.SetMaturationTimeHours(*v)
	}
	return _u
}

// AddMaturationTimeHours adds value to the "maturation_time_hours" field.
func (_u *OocyteUpdate) AddMaturationTimeHours(v int) *OocyteUpdate {
	_u.mutation.AddMaturationTimeHours(v)
	return _u
}

// ClearMaturationTimeHours clears the value of the "maturation_time_hours" field.
func (_u *OocyteUpdate) ClearMaturationTimeHours() *OocyteUpdate {
	_u.mutation.ClearMaturationTimeHours()
	return _u
}

// SetDiscardReason sets the "discard_reason" field.
func (_u *OocyteUpdate) SetDiscardReason(v string) *OocyteUpdate {
	_u.mutation.SetDiscardReason(v)
	return _u
}

// SetNillableDiscardReason sets the "discard_reason" field if the given value is not nil.
func (_u *OocyteUpdate) SetNillableDiscardReason(v *string) *OocyteUpdate {
	if v != nil {
		_u.SetDiscardReason(*v)
	}
	return _u
}

// ClearDiscardReason clears the value of the "discard_reason" field.
func (_u *OocyteUpdate) ClearDiscardReason() *OocyteUpdate {
	_u.mutation.ClearDiscardReason()
	return _u
}

// SetNitrogenTube sets the "nitrogen_tube" field.
func (_u *OocyteUpdate) SetNitrogenTube(v string) *OocyteUpdate {
	_u.mutation.SetNitrogenTube(v)
	return _u
}

// SetNillableNitrogenTube sets the "nitrogen_tube" field if the given value is not nil.
func (_u *OocyteUpdate) SetNillableNitrogenTube(v *string) *OocyteUpdate {
	if v != nil {
		_u.SetNitrogenTube(*v)
	}
	return _u
}

// ClearNitrogenTube clears the value of the "nitrogen_tube" field.
func (_u *OocyteUpdate) ClearNitrogenTube() *OocyteUpdate {
	_u.mutation.ClearNitrogenTube()
	return _u
}

// SetRackNumber sets the "rack_number" field.
func (_u *OocyteUpdate) SetRackNumber(v string) *OocyteUpdate {
	_u.mutation.SetRackNumber(v)
	return _u
}

// SetNillableRackNumber sets the "rack_number" field if the given value is not nil.
func (_u *OocyteUpdate) SetNillableRackNumber(v *string) *OocyteUpdate {
	if v != nil {
		_u.SetRackNumber(*v)
	}
	return _u
}

// ClearRackNumber clears the value of the "rack_number" field.
func (_u *OocyteUpdate) ClearRackNumber() *OocyteUpdate {
	_u.mutation.ClearRackNumber()
	return _u
}

// SetPuncture sets the "puncture" edge to the Puncture entity.
func (_u *OocyteUpdate) SetPuncture(v *Puncture) *OocyteUpdate {
	return _u.SetPunctureID(v.ID)
}

// AddStateHistoryIDs adds the "state_history" edge to the OocyteStateHistory entity by IDs.
func (_u *OocyteUpdate) AddStateHistoryIDs(ids ...uuid.UUID) *OocyteUpdate {
	_u.mutation.AddStateHistoryIDs(ids...)
	return _u
}

// AddStateHistory adds the "state_history" edges to the OocyteStateHistory entity.
func (_u *OocyteUpdate) AddStateHistory(v ...*OocyteStateHistory) *OocyteUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddStateHistoryIDs(ids...)
}

// SetEmbryoID sets the "embryo" edge to the Embryo entity by ID.
func (_u *OocyteUpdate) SetEmbryoID(id uuid.UUID) *OocyteUpdate {
	_u.mutation.SetEmbryoID(id)
	return _u
}

// SetNillableEmbryoID sets the "embryo" edge to the Embryo entity by ID if the given value is not nil.
func (_u *OocyteUpdate) SetNillableEmbryoID(id *uuid.UUID) *OocyteUpdate {
	if id != nil {
		_u = _u.SetEmbryoID(*id)
	}
	return _u
}

// SetEmbryo sets the "embryo" edge to the Embryo entity.
func (_u *OocyteUpdate) SetEmbryo(v *Embryo) *OocyteUpdate {
	return _u.SetEmbryoID(v.ID)
}

// Mutation returns the OocyteMutation object of the builder.
func (_u *OocyteUpdate) Mutation() *OocyteMutation {
	return _u.mutation
}

// ClearPuncture clears the "puncture" edge to the Puncture entity.
func (_u *OocyteUpdate) ClearPuncture() *OocyteUpdate {
	_u.mutation.ClearPuncture()
	return _u
}

// ClearStateHistory clears all "state_history" edges to the OocyteStateHistory entity.
func (_u *OocyteUpdate) ClearStateHistory() *OocyteUpdate {
	_u.mutation.ClearStateHistory()
	return _u
}

// RemoveStateHistoryIDs removes the "state_history" edge to OocyteStateHistory entities by IDs.
func (_u *OocyteUpdate) RemoveStateHistoryIDs(ids ...uuid.UUID) *OocyteUpdate {
	_u.mutation.RemoveStateHistoryIDs(ids...)
	return _u
}

// RemoveStateHistory removes "state_history" edges to OocyteStateHistory entities.
func (_u *OocyteUpdate) RemoveStateHistory(v ...*OocyteStateHistory) *OocyteUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveStateHistoryIDs(ids...)
}

// ClearEmbryo clears the "embryo" edge to the Embryo entity.
func (_u *OocyteUpdate) ClearEmbryo() *OocyteUpdate {
	_u.mutation.ClearEmbryo()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *OocyteUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *OocyteUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *OocyteUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *OocyteUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *OocyteUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := oocyte.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *OocyteUpdate) check() error {
	if v, ok := _u.mutation.OocyteCode(); ok {
		if err := oocyte.OocyteCodeValidator(v); err != nil {
			return &ValidationError{Name: "oocyte_code", err: fmt.Errorf(`repo: validator failed for field "Oocyte.oocyte_code": %w`, err)}
		}
	}
	if v, ok := _u.mutation.CurrentState(); ok {
		if err := oocyte.CurrentStateValidator(v); err != nil {
			return &ValidationError{Name: "current_state", err: fmt.Errorf(`repo: validator failed for field "Oocyte.current_state": %w`, err)}
		}
	}
	if v, ok := _u.mutation.NitrogenTube(); ok {
		if err := oocyte.NitrogenTubeValidator(v); err != nil {
			return &ValidationError{Name: "nitrogen_tube", err: fmt.Errorf(`repo: validator failed for field "Oocyte.nitrogen_tube": %w`, err)}
		}
	}
	if v, ok := _u.mutation.RackNumber(); ok {
		if err := oocyte.RackNumberValidator(v); err != nil {
			return &ValidationError{Name: "rack_number", err: fmt.Errorf(`repo: validator failed for field "Oocyte.rack_number": %w`, err)}
		}
	}
	if _u.mutation.PunctureCleared() && len(_u.mutation.PunctureIDs()) > 0 {
		return errors.New(`repo: clearing a required unique edge "Oocyte.puncture"`)
	}
	return nil
}

func (_u *OocyteUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(oocyte.Table, oocyte.Columns, sqlgraph.NewFieldSpec(oocyte.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(oocyte.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.OocyteCode(); ok {
		_spec.SetField(oocyte.FieldOocyteCode, field.TypeString, value)
	}
	if value, ok := _u.mutation.CurrentState(); ok {
		_spec.SetField(oocyte.FieldCurrentState, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.MaturationTimeHours(); ok {
		_spec.SetField(oocyte.FieldMaturationTimeHours, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMaturationTimeHours(); ok {
		_spec.AddField(oocyte.FieldMaturationTimeHours, field.TypeInt, value)
	}
	if _u.mutation.MaturationTimeHoursCleared() {
		_spec.ClearField(oocyte.FieldMaturationTimeHours, field.TypeInt)
	}
	if value, ok := _u.mutation.DiscardReason(); ok {
		_spec.SetField(oocyte.FieldDiscardReason, field.TypeString, value)
	}
	if _u.mutation.DiscardReasonCleared() {
		_spec.ClearField(oocyte.FieldDiscardReason, field.TypeString)
	}
	if value, ok := _u.mutation.NitrogenTube(); ok {
		_spec.SetField(oocyte.FieldNitrogenTube, field.TypeString, value)
	}
	if _u.mutation.NitrogenTubeCleared() {
		_spec.ClearField(oocyte.FieldNitrogenTube, field.TypeString)
	}
	if value, ok := _u.mutation.RackNumber(); ok {
		_spec.SetField(oocyte.FieldRackNumber, field.TypeString, value)
	}
	if _u.mutation.RackNumberCleared() {
		_spec.ClearField(oocyte.FieldRackNumber, field.TypeString)
	}
	if _u.mutation.PunctureCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   oocyte.PunctureTable,
			Columns: []string{oocyte.PunctureColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(puncture.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.PunctureIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   oocyte.PunctureTable,
			Columns: []string{oocyte.PunctureColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(puncture.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.StateHistoryCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   oocyte.StateHistoryTable,
			Columns: []string{oocyte.StateHistoryColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(oocytestatehistory.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedStateHistoryIDs(); len(nodes) > 0 && !_u.mutation.StateHistoryCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   oocyte.StateHistoryTable,
			Columns: []string{oocyte.StateHistoryColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(oocytestatehistory.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.StateHistoryIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   oocyte.StateHistoryTable,
			Columns: []string{oocyte.StateHistoryColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(oocytestatehistory.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.EmbryoCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: false,
			Table:   oocyte.EmbryoTable,
			Columns: []string{oocyte.EmbryoColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(embryo.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.EmbryoIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: false,
			Table:   oocyte.EmbryoTable,
			Columns: []string{oocyte.EmbryoColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(embryo.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{oocyte.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// OocyteUpdateOne is the builder for updating a single Oocyte entity.
type OocyteUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *OocyteMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *OocyteUpdateOne) SetUpdatedAt(v time.Time) *OocyteUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetPunctureID sets the "puncture_id" field.
func (_u *OocyteUpdateOne) SetPunctureID(v uuid.UUID) *OocyteUpdateOne {
	_u.mutation.SetPunctureID(v)
	return _u
}

// SetNillablePunctureID sets the "puncture_id" field if the given value is not nil.
func (_u *OocyteUpdateOne) SetNillablePunctureID(v *uuid.UUID) *OocyteUpdateOne {
	if v != nil {
		_u.SetPunctureID(*v)
	}
	return _u
}

// SetOocyteCode sets the "oocyte_code" field.
func (_u *OocyteUpdateOne) SetOocyteCode(v string) *OocyteUpdateOne {
	_u.mutation.SetOocyteCode(v)
	return _u
}

// SetNillableOocyteCode sets the "oocyte_code" field if the given value is not nil.
func (_u *OocyteUpdateOne) SetNillableOocyteCode(v *string) *OocyteUpdateOne {
	if v != nil {
		_u.SetOocyteCode(*v)
	}
	return _u
}

// SetCurrentState sets the "current_state" field.
func (_u *OocyteUpdateOne) SetCurrentState(v oocyte.CurrentState) *OocyteUpdateOne {
	_u.mutation.SetCurrentState(v)
	return _u
}

// SetNillableCurrentState sets the "current_state" field if the given value is not nil.
func (_u *OocyteUpdateOne) SetNillableCurrentState(v *oocyte.CurrentState) *OocyteUpdateOne {
	if v != nil {
		_u.SetCurrentState(*v)
	}
	return _u
}

// SetMaturationTimeHours sets the "maturation_time_hours" field.
func (_u *OocyteUpdateOne) SetMaturationTimeHours(v int) *OocyteUpdateOne {
	_u.mutation.ResetMaturationTimeHours()
	_u.mutation.SetMaturationTimeHours(v)
	return _u
}

// SetNillableMaturationTimeHours sets the "maturation_time_hours" field if the given value is not nil.
func (_u *OocyteUpdateOne) SetNillableMaturationTimeHours(v *int) *OocyteUpdateOne {
	if v != nil {
		_u.SetMaturationTimeHours(*v)
	}
	return _u
}

// AddMaturationTimeHours adds value to the "maturation_time_hours" field.
func (_u *OocyteUpdateOne) AddMaturationTimeHours(v int) *OocyteUpdateOne {
	_u.mutation.AddMaturationTimeHours(v)
	return _u
}

// ClearMaturationTimeHours clears the value of the "maturation_time_hours" field.
func (_u *OocyteUpdateOne) ClearMaturationTimeHours() *OocyteUpdateOne {
	_u.mutation.ClearMaturationTimeHours()
	return _u
}

// SetDiscardReason sets the "discard_reason" field.
func (_u *OocyteUpdateOne) SetDiscardReason(v string) *OocyteUpdateOne {
	_u.mutation.SetDiscardReason(v)
	return _u
}

// SetNillableDiscardReason sets the "discard_reason" field if the given value is not nil.
func (_u *OocyteUpdateOne) SetNillableDiscardReason(v *string) *OocyteUpdateOne {
	if v != nil {
		_u.SetDiscardReason(*v)
	}
	return _u
}

// ClearDiscardReason clears the value of the "discard_reason" field.
func (_u *OocyteUpdateOne) ClearDiscardReason() *OocyteUpdateOne {
	_u.mutation.ClearDiscardReason()
	return _u
}

// SetNitrogenTube sets the "nitrogen_tube" field.
func (_u *OocyteUpdateOne) SetNitrogenTube(v string) *OocyteUpdateOne {
	_u.mutation.SetNitrogenTube(v)
	return _u
}

// SetNillableNitrogenTube sets the "nitrogen_tube" field if the given value is not nil.
func (_u *OocyteUpdateOne) SetNillableNitrogenTube(v *string) *OocyteUpdateOne {
	if v != nil {
		_u.SetNitrogenTube(*v)
	}
	return _u
}

// ClearNitrogenTube clears the value of the "nitrogen_tube" field.
func (_u *OocyteUpdateOne) ClearNitrogenTube() *OocyteUpdateOne {
	_u.mutation.ClearNitrogenTube()
	return _u
}

// SetRackNumber sets the "rack_number" field.
func (_u *OocyteUpdateOne) SetRackNumber(v string) *OocyteUpdateOne {
	_u.mutation.SetRackNumber(v)
	return _u
}

// SetNillableRackNumber sets the "rack_number" field if the given value is not nil.
func (_u *OocyteUpdateOne) SetNillableRackNumber(v *string) *OocyteUpdateOne {
	if v != nil {
		_u.SetRackNumber(*v)
	}
	return _u
}

// ClearRackNumber clears the value of the "rack_number" field.
func (_u *OocyteUpdateOne) ClearRackNumber() *OocyteUpdateOne {
	_u.mutation.ClearRackNumber()
	return _u
}

// SetPuncture sets the "puncture" edge to the Puncture entity.
func (_u *OocyteUpdateOne) SetPuncture(v *Puncture) *OocyteUpdateOne {
	return _u.SetPunctureID(v.ID)
}

// AddStateHistoryIDs adds the "state_history" edge to the OocyteStateHistory entity by IDs.
func (_u *OocyteUpdateOne) AddStateHistoryIDs(ids ...uuid.UUID) *OocyteUpdateOne {
	_u.mutation.AddStateHistoryIDs(ids...)
	return _u
}

// AddStateHistory adds the "state_history" edges to the OocyteStateHistory entity.
func (_u *OocyteUpdateOne) AddStateHistory(v ...*OocyteStateHistory) *OocyteUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddStateHistoryIDs(ids...)
}

// SetEmbryoID sets the "embryo" edge to the Embryo entity by ID.
func (_u *OocyteUpdateOne) SetEmbryoID(id uuid.UUID) *OocyteUpdateOne {
	_u.mutation.SetEmbryoID(id)
	return _u
}

// SetNillableEmbryoID sets the "embryo" edge to the Embryo entity by ID if the given value is not nil.
func (_u *OocyteUpdateOne) SetNillableEmbryoID(id *uuid.UUID) *OocyteUpdateOne {
	if id != nil {
		_u = _u.SetEmbryoID(*id)
	}
	return _u
}

// SetEmbryo sets the "embryo" edge to the Embryo entity.
func (_u *OocyteUpdateOne) SetEmbryo(v *Embryo) *OocyteUpdateOne {
	return _u.SetEmbryoID(v.ID)
}

// Mutation returns the OocyteMutation object of the builder.
func (_u *OocyteUpdateOne) Mutation() *OocyteMutation {
	return _u.mutation
}

// ClearPuncture clears the "puncture" edge to the Puncture entity.
func (_u *OocyteUpdateOne) ClearPuncture() *OocyteUpdateOne {
	_u.mutation.ClearPuncture()
	return _u
}

// ClearStateHistory clears all "state_history" edges to the OocyteStateHistory entity.
func (_u *OocyteUpdateOne) ClearStateHistory() *OocyteUpdateOne {
	_u.mutation.ClearStateHistory()
	return _u
}

// RemoveStateHistoryIDs removes the "state_history" edge to OocyteStateHistory entities by IDs.
func (_u *OocyteUpdateOne) RemoveStateHistoryIDs(ids ...uuid.UUID) *OocyteUpdateOne {
	_u.mutation.RemoveStateHistoryIDs(ids...)
	return _u
}

// RemoveStateHistory removes "state_history" edges to OocyteStateHistory entities.
func (_u *OocyteUpdateOne) RemoveStateHistory(v ...*OocyteStateHistory) *OocyteUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveStateHistoryIDs(ids...)
}

// ClearEmbryo clears the "embryo" edge to the Embryo entity.
func (_u *OocyteUpdateOne) ClearEmbryo() *OocyteUpdateOne {
	_u.mutation.ClearEmbryo()
	return _u
}

// Where appends a list predicates to the OocyteUpdate builder.
func (_u *OocyteUpdateOne) Where(ps ...predicate.Oocyte) *OocyteUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *OocyteUpdateOne) Select(field string, fields ...string) *OocyteUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Oocyte entity.
func (_u *OocyteUpdateOne) Save(ctx context.Context) (*Oocyte, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *OocyteUpdateOne) SaveX(ctx context.Context) *Oocyte {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *OocyteUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *OocyteUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *OocyteUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := oocyte.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *OocyteUpdateOne) check() error {
	if v, ok := _u.mutation.OocyteCode(); ok {
		if err := oocyte.OocyteCodeValidator(v); err != nil {
			return &ValidationError{Name: "oocyte_code", err: fmt.Errorf(`repo: validator failed for field "Oocyte.oocyte_code": %w`, err)}
		}
	}
	if v, ok := _u.mutation.CurrentState(); ok {
		if err := oocyte.CurrentStateValidator(v); err != nil {
			return &ValidationError{Name: "current_state", err: fmt.Errorf(`repo: validator failed for field "Oocyte.current_state": %w`, err)}
		}
	}
	if v, ok := _u.mutation.NitrogenTube(); ok {
		if err := oocyte.NitrogenTubeValidator(v); err != nil {
			return &ValidationError{Name: "nitrogen_tube", err: fmt.Errorf(`repo: validator failed for field "Oocyte.nitrogen_tube": %w`, err)}
		}
	}
	if v, ok := _u.mutation.RackNumber(); ok {
		if err := oocyte.RackNumberValidator(v); err != nil {
			return &ValidationError{Name: "rack_number", err: fmt.Errorf(`repo: validator failed for field "Oocyte.rack_number": %w`, err)}
		}
	}
	if _u.mutation.PunctureCleared() && len(_u.mutation.PunctureIDs()) > 0 {
		return errors.New(`repo: clearing a required unique edge "Oocyte.puncture"`)
	}
	return nil
}

func (_u *OocyteUpdateOne) sqlSave(ctx context.Context) (_node *Oocyte, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(oocyte.Table, oocyte.Columns, sqlgraph.NewFieldSpec(oocyte.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`repo: missing "Oocyte.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, oocyte.FieldID)
		for _, f := range fields {
			if !oocyte.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("repo: invalid field %q for query", f)}
			}
			if f != oocyte.FieldID {
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
		_spec.SetField(oocyte.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.OocyteCode(); ok {
		_spec.SetField(oocyte.FieldOocyteCode, field.TypeString, value)
	}
	if value, ok := _u.mutation.CurrentState(); ok {
		_spec.SetField(oocyte.FieldCurrentState, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.MaturationTimeHours(); ok {
		_spec.SetField(oocyte.FieldMaturationTimeHours, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMaturationTimeHours(); ok {
		_spec.AddField(oocyte.FieldMaturationTimeHours, field.TypeInt, value)
	}
	if _u.mutation.MaturationTimeHoursCleared() {
		_spec.ClearField(oocyte.FieldMaturationTimeHours, field.TypeInt)
	}
	if value, ok := _u.mutation.DiscardReason(); ok {
		_spec.SetField(oocyte.FieldDiscardReason, field.TypeString, value)
	}
	if _u.mutation.DiscardReasonCleared() {
		_spec.ClearField(oocyte.FieldDiscardReason, field.TypeString)
	}
	if value, ok := _u.mutation.NitrogenTube(); ok {
		_spec.SetField(oocyte.FieldNitrogenTube, field.TypeString, value)
	}
	if _u.mutation.NitrogenTubeCleared() {
		_spec.ClearField(oocyte.FieldNitrogenTube, field.TypeString)
	}
	if value, ok := _u.mutation.RackNumber(); ok {
		_spec.SetField(oocyte.FieldRackNumber, field.TypeString, value)
	}
	if _u.mutation.RackNumberCleared() {
		_spec.ClearField(oocyte.FieldRackNumber, field.TypeString)
	}
	if _u.mutation.PunctureCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   oocyte.PunctureTable,
			Columns: []string{oocyte.PunctureColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(puncture.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.PunctureIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   oocyte.PunctureTable,
			Columns: []string{oocyte.PunctureColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(puncture.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.StateHistoryCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   oocyte.StateHistoryTable,
			Columns: []string{oocyte.StateHistoryColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(oocytestatehistory.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedStateHistoryIDs(); len(nodes) > 0 && !_u.mutation.StateHistoryCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   oocyte.StateHistoryTable,
			Columns: []string{oocyte.StateHistoryColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(oocytestatehistory.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.StateHistoryIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   oocyte.StateHistoryTable,
			Columns: []string{oocyte.StateHistoryColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(oocytestatehistory.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.EmbryoCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: false,
			Table:   oocyte.EmbryoTable,
			Columns: []string{oocyte.EmbryoColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(embryo.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.EmbryoIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: false,
			Table:   oocyte.EmbryoTable,
			Columns: []string{oocyte.EmbryoColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(embryo.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Oocyte{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{oocyte.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
