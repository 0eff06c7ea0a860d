// Code generated by ent, DO NOT EDIT.

package repo

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/fertitrack/fertitrack_backend/internal/repo/oocyte"
	"github.com/fertitrack/fertitrack_backend/internal/repo/oocytestatehistory"
	"github.com/fertitrack/fertitrack_backend/internal/repo/predicate"
	"github.com/fertitrack/fertitrack_backend/internal/repo/user"
	"github.com/google/uuid"
)

// OocyteStateHistoryUpdate is the builder for updating OocyteStateHistory entities.
type OocyteStateHistoryUpdate struct {
	config
	hooks    []Hook
	mutation *OocyteStateHistoryMutation
}

// Where appends a list predicates to the OocyteStateHistoryUpdate builder.
func (_u *OocyteStateHistoryUpdate) Where(ps ...predicate.OocyteStateHistory) *OocyteStateHistoryUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetOocyteID sets the "oocyte_id" field.
func (_u *OocyteStateHistoryUpdate) SetOocyteID(v uuid.UUID) *OocyteStateHistoryUpdate {
	_u.mutation.SetOocyteID(v)
	return _u
}

// SetNillableOocyteID sets the "oocyte_id" field if the given value is not nil.
func (_u *OocyteStateHistoryUpdate) SetNillableOocyteID(v *uuid.UUID) *OocyteStateHistoryUpdate {
	if v != nil {
		_u.SetOocyteID(*v)
	}
	return _u
}

// SetFromState sets the "from_state" field.
func (_u *OocyteStateHistoryUpdate) SetFromState(v string) *OocyteStateHistoryUpdate {
	_u.mutation.SetFromState(v)
	return _u
}

// SetNillableFromState sets the "from_state" field if the given value is not nil.
func (_u *OocyteStateHistoryUpdate) SetNillableFromState(v *string) *OocyteStateHistoryUpdate {
	if v != nil {
		_u.SetFromState(*v)
	}
	return _u
}

// ClearFromState clears the value of the "from_state" field.
func (_u *OocyteStateHistoryUpdate) ClearFromState() *OocyteStateHistoryUpdate {
	_u.mutation.ClearFromState()
	return _u
}

// SetToState sets the "to_state" field.
func (_u *OocyteStateHistoryUpdate) SetToState(v string) *OocyteStateHistoryUpdate {
	_u.mutation.SetToState(v)
	return _u
}

// SetNillableToState sets the "to_state" field if the given value is not nil.
func (_u *OocyteStateHistoryUpdate) SetNillableToState(v *string) *OocyteStateHistoryUpdate {
	if v != nil {
		_u.SetToState(*v)
	}
	return _u
}

// SetNotes sets the "notes" field.
func (_u *OocyteStateHistoryUpdate) SetNotes(v string) *OocyteStateHistoryUpdate {
	_u.mutation.SetNotes(v)
	return _u
}

// SetNillableNotes sets the "notes" field if the given value is not nil.
func (_u *OocyteStateHistoryUpdate) SetNillableNotes(v *string) *OocyteStateHistoryUpdate {
	if v != nil {
		_u.SetNotes(*v)
	}
	return _u
}

// ClearNotes clears the value of the "notes" field.
func (_u *OocyteStateHistoryUpdate) ClearNotes() *OocyteStateHistoryUpdate {
	_u.mutation.ClearNotes()
	return _u
}

// SetChangedByID sets the "changed_by_id" field.
func (_u *OocyteStateHistoryUpdate) SetChangedByID(v uuid.UUID) *OocyteStateHistoryUpdate {
	_u.mutation.SetChangedByID(v)
	return _u
}

// SetNillableChangedByID sets the "changed_by_id" field if the given value is not nil.
func (_u *OocyteStateHistoryUpdate) SetNillableChangedByID(v *uuid.UUID) *OocyteStateHistoryUpdate {
	if v != nil {
		_u.SetChangedByID(*v)
	}
	return _u
}

// ClearChangedByID clears the value of the "changed_by_id" field.
func (_u *OocyteStateHistoryUpdate) ClearChangedByID() *OocyteStateHistoryUpdate {
	_u.mutation.ClearChangedByID()
	return _u
}

// SetOocyte sets the "oocyte" edge to the Oocyte entity.
func (_u *OocyteStateHistoryUpdate) SetOocyte(v *Oocyte) *OocyteStateHistoryUpdate {
	return _u.SetOocyteID(v.ID)
}

// SetChangedBy sets the "changed_by" edge to the User entity.
func (_u *OocyteStateHistoryUpdate) SetChangedBy(v *User) *OocyteStateHistoryUpdate {
	return _u.SetChangedByID(v.ID)
}

// Mutation returns the OocyteStateHistoryMutation object of the builder.
func (_u *OocyteStateHistoryUpdate) Mutation() *OocyteStateHistoryMutation {
	return _u.mutation
}

// ClearOocyte clears the "oocyte" edge to the Oocyte entity.
func (_u *OocyteStateHistoryUpdate) ClearOocyte() *OocyteStateHistoryUpdate {
	_u.mutation.ClearOocyte()
	return _u
}

// ClearChangedBy clears the "changed_by" edge to the User entity.
func (_u *OocyteStateHistoryUpdate) ClearChangedBy() *OocyteStateHistoryUpdate {
	_u.mutation.ClearChangedBy()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *OocyteStateHistoryUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *OocyteStateHistoryUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *OocyteStateHistoryUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *OocyteStateHistoryUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *OocyteStateHistoryUpdate) check() error {
	if v, ok := _u.mutation.FromState(); ok {
		if err := oocytestatehistory.FromStateValidator(v); err != nil {
			return &ValidationError{Name: "from_state", err: fmt.Errorf(`repo: validator failed for field "OocyteStateHistory.from_state": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ToState(); ok {
		if err := oocytestatehistory.ToStateValidator(v); err != nil {
			return &ValidationError{Name: "to_state", err: fmt.Errorf(`repo: validator failed for field "OocyteStateHistory.to_state": %w`, err)}
		}
	}
	if _u.mutation.OocyteCleared() && len(_u.mutation.OocyteIDs()) > 0 {
		return errors.New(`repo: clearing a required unique edge "OocyteStateHistory.oocyte"`)
	}
	return nil
}

func (_u *OocyteStateHistoryUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(oocytestatehistory.Table, oocytestatehistory.Columns, sqlgraph.NewFieldSpec(oocytestatehistory.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.FromState(); ok {
		_spec.SetField(oocytestatehistory.FieldFromState, field.TypeString, value)
	}
	if _u.mutation.FromStateCleared() {
		_spec.ClearField(oocytestatehistory.FieldFromState, field.TypeString)
	}
	if value, ok := _u.mutation.ToState(); ok {
		_spec.SetField(oocytestatehistory.FieldToState, field.TypeString, value)
	}
	if value, ok := _u.mutation.Notes(); ok {
		_spec.SetField(oocytestatehistory.FieldNotes, field.TypeString, value)
	}
	if _u.mutation.NotesCleared() {
		_spec.ClearField(oocytestatehistory.FieldNotes, field.TypeString)
	}
	if _u.mutation.OocyteCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   oocytestatehistory.OocyteTable,
			Columns: []string{oocytestatehistory.OocyteColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(oocyte.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.OocyteIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   oocytestatehistory.OocyteTable,
			Columns: []string{oocytestatehistory.OocyteColumn},
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
	if _u.mutation.ChangedByCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: false,
			Table:   oocytestatehistory.ChangedByTable,
			Columns: []string{oocytestatehistory.ChangedByColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(user.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ChangedByIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: false,
			Table:   oocytestatehistory.ChangedByTable,
			Columns: []string{oocytestatehistory.ChangedByColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(user.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{oocytestatehistory.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// OocyteStateHistoryUpdateOne is the builder for updating a single OocyteStateHistory entity.
type OocyteStateHistoryUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *OocyteStateHistoryMutation
}

// SetOocyteID sets the "oocyte_id" field.
func (_u *OocyteStateHistoryUpdateOne) SetOocyteID(v uuid.UUID) *OocyteStateHistoryUpdateOne {
	_u.mutation.SetOocyteID(v)
	return _u
}

// SetNillableOocyteID sets the "oocyte_id" field if the given value is not nil.
func (_u *OocyteStateHistoryUpdateOne) SetNillableOocyteID(v *uuid.UUID) *OocyteStateHistoryUpdateOne {
	if v != nil {
		_u.SetOocyteID(*v)
	}
	return _u
}

// SetFromState sets the "from_state" field.
func (_u *OocyteStateHistoryUpdateOne) SetFromState(v string) *OocyteStateHistoryUpdateOne {
	_u.mutation.SetFromState(v)
	return _u
}

// SetNillableFromState sets the "from_state" field if the given value is not nil.
func (_u *OocyteStateHistoryUpdateOne) SetNillableFromState(v *string) *OocyteStateHistoryUpdateOne {
	if v != nil {
		_u.SetFromState(*v)
	}
	return _u
}

// ClearFromState clears the value of the "from_state" field.
func (_u *OocyteStateHistoryUpdateOne) ClearFromState() *OocyteStateHistoryUpdateOne {
	_u.mutation.ClearFromState()
	return _u
}

// SetToState sets the "to_state" field.
func (_u *OocyteStateHistoryUpdateOne) SetToState(v string) *OocyteStateHistoryUpdateOne {
	_u.mutation.SetToState(v)
	return _u
}

// SetNillableToState sets the "to_state" field if the given value is not nil.
func (_u *OocyteStateHistoryUpdateOne) SetNillableToState(v *string) *OocyteStateHistoryUpdateOne {
	if v != nil {
		_u.SetToState(*v)
	}
	return _u
}

// SetNotes sets the "notes" field.
func (_u *OocyteStateHistoryUpdateOne) SetNotes(v string) *OocyteStateHistoryUpdateOne {
	_u.mutation.SetNotes(v)
	return _u
}

// SetNillableNotes sets the "notes" field if the given value is not nil.
func (_u *OocyteStateHistoryUpdateOne) SetNillableNotes(v *string) *OocyteStateHistoryUpdateOne {
	if v != nil {
		_u.SetNotes(*v)
	}
	return _u
}

// ClearNotes clears the value of the "notes" field.
func (_u *OocyteStateHistoryUpdateOne) ClearNotes() *OocyteStateHistoryUpdateOne {
	_u.mutation.ClearNotes()
	return _u
}

// SetChangedByID sets the "changed_by_id" field.
func (_u *OocyteStateHistoryUpdateOne) SetChangedByID(v uuid.UUID) *OocyteStateHistoryUpdateOne {
	_u.mutation.SetChangedByID(v)
	return _u
}

// SetNillableChangedByID sets the "changed_by_id" field if the given value is not nil.
func (_u *OocyteStateHistoryUpdateOne) SetNillableChangedByID(v *uuid.UUID) *OocyteStateHistoryUpdateOne {
	if v != nil {
		_u.SetChangedByID(*v)
	}
	return _u
}

// ClearChangedByID clears the value of the "changed_by_id" field.
func (_u *OocyteStateHistoryUpdateOne) ClearChangedByID() *OocyteStateHistoryUpdateOne {
	_u.mutation.ClearChangedByID()
	return _u
}

// SetOocyte sets the "oocyte" edge to the Oocyte entity.
func (_u *OocyteStateHistoryUpdateOne) SetOocyte(v *Oocyte) *OocyteStateHistoryUpdateOne {
	return _u.SetOocyteID(v.ID)
}

// SetChangedBy sets the "changed_by" edge to the User entity.
func (_u *OocyteStateHistoryUpdateOne) SetChangedBy(v *User) *OocyteStateHistoryUpdateOne {
	return _u.SetChangedByID(v.ID)
}

// Mutation returns the OocyteStateHistoryMutation object of the builder.
func (_u *OocyteStateHistoryUpdateOne) Mutation() *OocyteStateHistoryMutation {
	return _u.mutation
}

// ClearOocyte clears the "oocyte" edge to the Oocyte entity.
func (_u *OocyteStateHistoryUpdateOne) ClearOocyte() *OocyteStateHistoryUpdateOne {
	_u.mutation.ClearOocyte()
	return _u
}

// ClearChangedBy clears the "changed_by" edge to the User entity.
func (_u *OocyteStateHistoryUpdateOne) ClearChangedBy() *OocyteStateHistoryUpdateOne {
	_u.mutation.ClearChangedBy()
	return _u
}

// Where appends a list predicates to the OocyteStateHistoryUpdate builder.
func (_u *OocyteStateHistoryUpdateOne) Where(ps ...predicate.OocyteStateHistory) *OocyteStateHistoryUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *OocyteStateHistoryUpdateOne) Select(field string, fields ...string) *OocyteStateHistoryUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated OocyteStateHistory entity.
func (_u *OocyteStateHistoryUpdateOne) Save(ctx context.Context) (*OocyteStateHistory, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *OocyteStateHistoryUpdateOne) SaveX(ctx context.Context) *OocyteStateHistory {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *OocyteStateHistoryUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *OocyteStateHistoryUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *OocyteStateHistoryUpdateOne) check() error {
	if v, ok := _u.mutation.FromState(); ok {
		if err := oocytestatehistory.FromStateValidator(v); err != nil {
			return &ValidationError{Name: "from_state", err: fmt.Errorf(`repo: validator failed for field "OocyteStateHistory.from_state": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ToState(); ok {
		if err := oocytestatehistory.ToStateValidator(v); err != nil {
			return &ValidationError{Name: "to_state", err: fmt.Errorf(`repo: validator failed for field "OocyteStateHistory.to_state": %w`, err)}
		}
	}
	if _u.mutation.OocyteCleared() && len(_u.mutation.OocyteIDs()) > 0 {
		return errors.New(`repo: clearing a required unique edge "OocyteStateHistory.oocyte"`)
	}
	return nil
}

func (_u *OocyteStateHistoryUpdateOne) sqlSave(ctx context.Context) (_node *OocyteStateHistory, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(oocytestatehistory.Table, oocytestatehistory.Columns, sqlgraph.NewFieldSpec(oocytestatehistory.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`repo: missing "OocyteStateHistory.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, oocytestatehistory.FieldID)
		for _, f := range fields {
			if !oocytestatehistory.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("repo: invalid field %q for query", f)}
			}
			if f != oocytestatehistory.FieldID {
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
	if value, ok := _u.mutation.FromState(); ok {
		_spec.SetField(oocytestatehistory.FieldFromState, field.TypeString, value)
	}
	if _u.mutation.FromStateCleared() {
		_spec.ClearField(oocytestatehistory.FieldFromState, field.TypeString)
	}
	if value, ok := _u.mutation.ToState(); ok {
		_spec.SetField(oocytestatehistory.FieldToState, field.TypeString, value)
	}
	if value, ok := _u.mutation.Notes(); ok {
		_spec.SetField(oocytestatehistory.FieldNotes, field.TypeString, value)
	}
	if _u.mutation.NotesCleared() {
		_spec.ClearField(oocytestatehistory.FieldNotes, field.TypeString)
	}
	if _u.mutation.OocyteCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   oocytestatehistory.OocyteTable,
			Columns: []string{oocytestatehistory.OocyteColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(oocyte.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.OocyteIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   oocytestatehistory.OocyteTable,
			Columns: []string{oocytestatehistory.OocyteColumn},
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
	if _u.mutation.ChangedByCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: false,
			Table:   oocytestatehistory.ChangedByTable,
			Columns: []string{oocytestatehistory.ChangedByColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(user.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ChangedByIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: false,
			Table:   oocytestatehistory.ChangedByTable,
			Columns: []string{oocytestatehistory.ChangedByColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(user.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &OocyteStateHistory{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{oocytestatehistory.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
