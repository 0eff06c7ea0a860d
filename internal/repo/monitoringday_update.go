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
	"github.com/fertitrack/fertitrack_backend/internal/repo/monitoringday"
	"github.com/fertitrack/fertitrack_backend/internal/repo/predicate"
	"github.com/fertitrack/fertitrack_backend/internal/repo/treatment"
	"github.com/google/uuid"
)

// MonitoringDayUpdate is the builder for updating MonitoringDay entities.
type MonitoringDayUpdate struct {
	config
	hooks    []Hook
	mutation *MonitoringDayMutation
}

// Where appends a list predicates to the MonitoringDayUpdate builder.
func (_u *MonitoringDayUpdate) Where(ps ...predicate.MonitoringDay) *MonitoringDayUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *MonitoringDayUpdate) SetUpdatedAt(v time.Time) *MonitoringDayUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetTreatmentID sets the "treatment_id" field.
func (_u *MonitoringDayUpdate) SetTreatmentID(v uuid.UUID) *MonitoringDayUpdate {
	_u.mutation.SetTreatmentID(v)
	return _u
}

// SetNillableTreatmentID sets the "treatment_id" field if the given value is not nil.
func (_u *MonitoringDayUpdate) SetNillableTreatmentID(v *uuid.UUID) *MonitoringDayUpdate {
	if v != nil {
		_u.SetTreatmentID(*v)
	}
	return _u
}

// SetDate sets the "date" field.
func (_u *MonitoringDayUpdate) SetDate(v time.Time) *MonitoringDayUpdate {
	_u.mutation.SetDate(v)
	return _u
}

// SetNillableDate sets the "date" field if the given value is not nil.
func (_u *MonitoringDayUpdate) SetNillableDate(v *time.Time) *MonitoringDayUpdate {
	if v != nil {
		_u.SetDate(*v)
	}
	return _u
}

// SetNotes sets the "notes" field.
func (_u *MonitoringDayUpdate) SetNotes(v string) *MonitoringDayUpdate {
	_u.mutation.SetNotes(v)
	return _u
}

// SetNillableNotes sets the "notes" field if the given value is not nil.
func (_u *MonitoringDayUpdate) SetNillableNotes(v *string) *MonitoringDayUpdate {
	if v != nil {
		_u.SetNotes(*v)
	}
	return _u
}

// ClearNotes clears the value of the "notes" field.
func (_u *MonitoringDayUpdate) ClearNotes() *MonitoringDayUpdate {
	_u.mutation.ClearNotes()
	return _u
}

// SetCompleted sets the "completed" field.
func (_u *MonitoringDayUpdate) SetCompleted(v bool) *MonitoringDayUpdate {
	_u.mutation.SetCompleted(v)
	return _u
}

// SetNillableCompleted sets the "completed" field if the given value is not nil.
func (_u *MonitoringDayUpdate) SetNillableCompleted(v *bool) *MonitoringDayUpdate {
	if v != nil {
		_u.SetCompleted(*v)
	}
	return _u
}

// SetTreatment sets the "treatment" edge to the Treatment entity.
func (_u *MonitoringDayUpdate) SetTreatment(v *Treatment) *MonitoringDayUpdate {
	return _u.SetTreatmentID(v.ID)
}

// Mutation returns the MonitoringDayMutation object of the builder.
func (_u *MonitoringDayUpdate) Mutation() *MonitoringDayMutation {
	return _u.mutation
}

// ClearTreatment clears the "treatment" edge to the Treatment entity.
func (_u *MonitoringDayUpdate) ClearTreatment() *MonitoringDayUpdate {
	_u.mutation.ClearTreatment()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *MonitoringDayUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *MonitoringDayUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *MonitoringDayUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *MonitoringDayUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *MonitoringDayUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := monitoringday.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *MonitoringDayUpdate) check() error {
	if _u.mutation.TreatmentCleared() && len(_u.mutation.TreatmentIDs()) > 0 {
		return errors.New(`repo: clearing a required unique edge "MonitoringDay.treatment"`)
	}
	return nil
}

func (_u *MonitoringDayUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(monitoringday.Table, monitoringday.Columns, sqlgraph.NewFieldSpec(monitoringday.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(monitoringday.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Date(); ok {
		_spec.SetField(monitoringday.FieldDate, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Notes(); ok {
		_spec.SetField(monitoringday.FieldNotes, field.TypeString, value)
	}
	if _u.mutation.NotesCleared() {
		_spec.ClearField(monitoringday.FieldNotes, field.TypeString)
	}
	if value, ok := _u.mutation.Completed(); ok {
		_spec.SetField(monitoringday.FieldCompleted, field.TypeBool, value)
	}
	if _u.mutation.TreatmentCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   monitoringday.TreatmentTable,
			Columns: []string{monitoringday.TreatmentColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(treatment.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.TreatmentIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   monitoringday.TreatmentTable,
			Columns: []string{monitoringday.TreatmentColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(treatment.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{monitoringday.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// MonitoringDayUpdateOne is the builder for updating a single MonitoringDay entity.
type MonitoringDayUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *MonitoringDayMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *MonitoringDayUpdateOne) SetUpdatedAt(v time.Time) *MonitoringDayUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetTreatmentID sets the "treatment_id" field.
func (_u *MonitoringDayUpdateOne) SetTreatmentID(v uuid.UUID) *MonitoringDayUpdateOne {
	_u.mutation.SetTreatmentID(v)
	return _u
}

// SetNillableTreatmentID sets the "treatment_id" field if the given value is not nil.
func (_u *MonitoringDayUpdateOne) SetNillableTreatmentID(v *uuid.UUID) *MonitoringDayUpdateOne {
	if v != nil {
		_u.SetTreatmentID(*v)
	}
	return _u
}

// SetDate sets the "date" field.
func (_u *MonitoringDayUpdateOne) SetDate(v time.Time) *MonitoringDayUpdateOne {
	_u.mutation.SetDate(v)
	return _u
}

// SetNillableDate sets the "date" field if the given value is not nil.
func (_u *MonitoringDayUpdateOne) SetNillableDate(v *time.Time) *MonitoringDayUpdateOne {
	if v != nil {
		_u.SetDate(*v)
	}
	return _u
}

// SetNotes sets the "notes" field.
func (_u *MonitoringDayUpdateOne) SetNotes(v string) *MonitoringDayUpdateOne {
	_u.mutation.SetNotes(v)
	return _u
}

// SetNillableNotes sets the "notes" field if the given value is not nil.
func (_u *MonitoringDayUpdateOne) SetNillableNotes(v *string) *MonitoringDayUpdateOne {
	if v != nil {
		_u.SetNotes(*v)
	}
	return _u
}

// ClearNotes clears the value of the "notes" field.
func (_u *MonitoringDayUpdateOne) ClearNotes() *MonitoringDayUpdateOne {
	_u.mutation.ClearNotes()
	return _u
}

// SetCompleted sets the "completed" field.
func (_u *MonitoringDayUpdateOne) SetCompleted(v bool) *MonitoringDayUpdateOne {
	_u.mutation.SetCompleted(v)
	return _u
}

// SetNillableCompleted sets the "completed" field if the given value is not nil.
func (_u *MonitoringDayUpdateOne) SetNillableCompleted(v *bool) *MonitoringDayUpdateOne {
	if v != nil {
		_u.SetCompleted(*v)
	}
	return _u
}

// SetTreatment sets the "treatment" edge to the Treatment entity.
func (_u *MonitoringDayUpdateOne) SetTreatment(v *Treatment) *MonitoringDayUpdateOne {
	return _u.SetTreatmentID(v.ID)
}

// Mutation returns the MonitoringDayMutation object of the builder.
func (_u *MonitoringDayUpdateOne) Mutation() *MonitoringDayMutation {
	return _u.mutation
}

// ClearTreatment clears the "treatment" edge to the Treatment entity.
func (_u *MonitoringDayUpdateOne) ClearTreatment() *MonitoringDayUpdateOne {
	_u.mutation.ClearTreatment()
	return _u
}

// Where appends a list predicates to the MonitoringDayUpdate builder.
func (_u *MonitoringDayUpdateOne) Where(ps ...predicate.MonitoringDay) *MonitoringDayUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *MonitoringDayUpdateOne) Select(field string, fields ...string) *MonitoringDayUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated MonitoringDay entity.
func (_u *MonitoringDayUpdateOne) Save(ctx context.Context) (*MonitoringDay, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *MonitoringDayUpdateOne) SaveX(ctx context.Context) *MonitoringDay {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *MonitoringDayUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *MonitoringDayUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *MonitoringDayUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := monitoringday.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *MonitoringDayUpdateOne) check() error {
	if _u.mutation.TreatmentCleared() && len(_u.mutation.TreatmentIDs()) > 0 {
		return errors.New(`repo: clearing a required unique edge "MonitoringDay.treatment"`)
	}
	return nil
}

func (_u *MonitoringDayUpdateOne) sqlSave(ctx context.Context) (_node *MonitoringDay, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(monitoringday.Table, monitoringday.Columns, sqlgraph.NewFieldSpec(monitoringday.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`repo: missing "MonitoringDay.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, monitoringday.FieldID)
		for _, f := range fields {
			if !monitoringday.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("repo: invalid field %q for query", f)}
			}
			if f != monitoringday.FieldID {
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
		_spec.SetField(monitoringday.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Date(); ok {
		_spec.SetField(monitoringday.FieldDate, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Notes(); ok {
		_spec.SetField(monitoringday.FieldNotes, field.TypeString, value)
	}
	if _u.mutation.NotesCleared() {
		_spec.ClearField(monitoringday.FieldNotes, field.TypeString)
	}
	if value, ok := _u.mutation.Completed(); ok {
		_spec.SetField(monitoringday.FieldCompleted, field.TypeBool, value)
	}
	if _u.mutation.TreatmentCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   monitoringday.TreatmentTable,
			Columns: []string{monitoringday.TreatmentColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(treatment.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.TreatmentIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   monitoringday.TreatmentTable,
			Columns: []string{monitoringday.TreatmentColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(treatment.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &MonitoringDay{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{monitoringday.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
