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
	"github.com/fertitrack/fertitrack_backend/internal/repo/oocyte"
	"github.com/fertitrack/fertitrack_backend/internal/repo/predicate"
	"github.com/fertitrack/fertitrack_backend/internal/repo/puncture"
	"github.com/fertitrack/fertitrack_backend/internal/repo/treatment"
	"github.com/fertitrack/fertitrack_backend/internal/repo/user"
	"github.com/google/uuid"
)

// PunctureUpdate is the builder for updating Puncture entities.
type PunctureUpdate struct {
	config
	hooks    []Hook
	mutation *PunctureMutation
}

// Where appends a list predicates to the PunctureUpdate builder.
func (_u *PunctureUpdate) Where(ps ...predicate.Puncture) *PunctureUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetTreatmentID sets the "treatment_id" field.
func (_u *PunctureUpdate) SetTreatmentID(v uuid.UUID) *PunctureUpdate {
	_u.mutation.SetTreatmentID(v)
	return _u
}

// SetNillableTreatmentID sets the "treatment_id" field if the given value is not nil.
func (_u *PunctureUpdate) SetNillableTreatmentID(v *uuid.UUID) *PunctureUpdate {
	if v != nil {
		_u.SetTreatmentID(*v)
	}
	return _u
}

// SetOperatorID sets the "operator_id" field.
func (_u *PunctureUpdate) SetOperatorID(v uuid.UUID) *PunctureUpdate {
	_u.mutation.SetOperatorID(v)
	return _u
}

// SetNillableOperatorID sets the "operator_id" field if the given value is not nil.
func (_u *PunctureUpdate) SetNillableOperatorID(v *uuid.UUID) *PunctureUpdate {
	if v != nil {
		_u.SetOperatorID(*v)
	}
	return _u
}

// ClearOperatorID clears the value of the "operator_id" field.
func (_u *PunctureUpdate) ClearOperatorID() *PunctureUpdate {
	_u.mutation.ClearOperatorID()
	return _u
}

// SetDate sets the "date" field.
func (_u *PunctureUpdate) SetDate(v time.Time) *PunctureUpdate {
	_u.mutation.SetDate(v)
	return _u
}

// SetNillableDate sets the "date" field if the given value is not nil.
func (_u *PunctureUpdate) SetNillableDate(v *time.Time) *PunctureUpdate {
	if v != nil {
		_u.SetDate(*v)
	}
	return _u
}

// SetOperatingRoom sets the "operating_room" field.
func (_u *PunctureUpdate) SetOperatingRoom(v string) *PunctureUpdate {
	_u.mutation.SetOperatingRoom(v)
	return _u
}

// SetNillableOperatingRoom sets the "operating_room" field if the given value is not nil.
func (_u *PunctureUpdate) SetNillableOperatingRoom(v *string) *PunctureUpdate {
	if v != nil {
		_u.SetOperatingRoom(*v)
	}
	return _u
}

// SetComplications sets the "complications" field.
func (_u *PunctureUpdate) SetComplications(v string) *PunctureUpdate {
	_u.mutation.SetComplications(v)
	return _u
}

// SetNillableComplications sets the "complications" field if the given value is not nil.
func (_u *PunctureUpdate) SetNillableComplications(v *string) *PunctureUpdate {
	if v != nil {
		_u.SetComplications(*v)
	}
	return _u
}

// ClearComplications clears the value of the "complications" field.
func (_u *PunctureUpdate) ClearComplications() *PunctureUpdate {
	_u.mutation.ClearComplications()
	return _u
}

// SetTreatment sets the "treatment" edge to the Treatment entity.
func (_u *PunctureUpdate) SetTreatment(v *Treatment) *PunctureUpdate {
	return _u.SetTreatmentID(v.ID)
}

// SetOperator sets the "operator" edge to the User entity.
func (_u *PunctureUpdate) SetOperator(v *User) *PunctureUpdate {
	return _u.SetOperatorID(v.ID)
}

// AddOocyteIDs adds the "oocytes" edge to the Oocyte entity by IDs.
func (_u *PunctureUpdate) AddOocyteIDs(ids ...uuid.UUID) *PunctureUpdate {
	_u.mutation.AddOocyteIDs(ids...)
	return _u
}

// AddOocytes adds the "oocytes" edges to the Oocyte entity.
func (_u *PunctureUpdate) AddOocytes(v ...*Oocyte) *PunctureUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddOocyteIDs(ids...)
}

// Mutation returns the PunctureMutation object of the builder.
func (_u *PunctureUpdate) Mutation() *PunctureMutation {
	return _u.mutation
}

// ClearTreatment clears the "treatment" edge to the Treatment entity.
func (_u *PunctureUpdate) ClearTreatment() *PunctureUpdate {
	_u.mutation.ClearTreatment()
	return _u
}

// ClearOperator clears the "operator" edge to the User entity.
func (_u *PunctureUpdate) ClearOperator() *PunctureUpdate {
	_u.mutation.ClearOperator()
	return _u
}

// ClearOocytes clears all "oocytes" edges to the Oocyte entity.
func (_u *PunctureUpdate) ClearOocytes() *PunctureUpdate {
	_u.mutation.ClearOocytes()
	return _u
}

// RemoveOocyteIDs removes the "oocytes" edge to Oocyte entities by IDs.
func (_u *PunctureUpdate) RemoveOocyteIDs(ids ...uuid.UUID) *PunctureUpdate {
	_u.mutation.RemoveOocyteIDs(ids...)
	return _u
}

// RemoveOocytes removes "oocytes" edges to Oocyte entities.
func (_u *PunctureUpdate) RemoveOocytes(v ...*Oocyte) *PunctureUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveOocyteIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *PunctureUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PunctureUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *PunctureUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PunctureUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PunctureUpdate) check() error {
	if v, ok := _u.mutation.OperatingRoom(); ok {
		if err := puncture.OperatingRoomValidator(v); err != nil {
			return &ValidationError{Name: "operating_room", err: fmt.Errorf(`repo: validator failed for field "Puncture.operating_room": %w`, err)}
		}
	}
	if _u.mutation.TreatmentCleared() && len(_u.mutation.TreatmentIDs()) > 0 {
		return errors.New(`repo: clearing a required unique edge "Puncture.treatment"`)
	}
	return nil
}

func (_u *PunctureUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(puncture.Table, puncture.Columns, sqlgraph.NewFieldSpec(puncture.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Date(); ok {
		_spec.SetField(puncture.FieldDate, field.TypeTime, value)
	}
	if value, ok := _u.mutation.OperatingRoom(); ok {
		_spec.SetField(puncture.FieldOperatingRoom, field.TypeString, value)
	}
	if value, ok := _u.mutation.Complications(); ok {
		_spec.SetField(puncture.FieldComplications, field.TypeString, value)
	}
	if _u.mutation.ComplicationsCleared() {
		_spec.ClearField(puncture.FieldComplications, field.TypeString)
	}
	if _u.mutation.TreatmentCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: true,
			Table:   puncture.TreatmentTable,
			Columns: []string{puncture.TreatmentColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(treatment.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.TreatmentIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: true,
			Table:   puncture.TreatmentTable,
			Columns: []string{puncture.TreatmentColumn},
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
	if _u.mutation.OperatorCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: false,
			Table:   puncture.OperatorTable,
			Columns: []string{puncture.OperatorColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(user.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.OperatorIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: false,
			Table:   puncture.OperatorTable,
			Columns: []string{puncture.OperatorColumn},
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
	if _u.mutation.OocytesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   puncture.OocytesTable,
			Columns: []string{puncture.OocytesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(oocyte.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedOocytesIDs(); len(nodes) > 0 && !_u.mutation.OocytesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   puncture.OocytesTable,
			Columns: []string{puncture.OocytesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(oocyte.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.OocytesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   puncture.OocytesTable,
			Columns: []string{puncture.OocytesColumn},
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
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{puncture.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// PunctureUpdateOne is the builder for updating a single Puncture entity.
type PunctureUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *PunctureMutation
}

// SetTreatmentID sets the "treatment_id" field.
func (_u *PunctureUpdateOne) SetTreatmentID(v uuid.UUID) *PunctureUpdateOne {
	_u.mutation.SetTreatmentID(v)
	return _u
}

// SetNillableTreatmentID sets the "treatment_id" field if the given value is not nil.
func (_u *PunctureUpdateOne) SetNillableTreatmentID(v *uuid.UUID) *PunctureUpdateOne {
	if v != nil {
		_u.SetTreatmentID(*v)
	}
	return _u
}

// SetOperatorID sets the "operator_id" field.
func (_u *PunctureUpdateOne) SetOperatorID(v uuid.UUID) *PunctureUpdateOne {
	_u.mutation.SetOperatorID(v)
	return _u
}

// SetNillableOperatorID sets the "operator_id" field if the given value is not nil.
func (_u *PunctureUpdateOne) SetNillableOperatorID(v *uuid.UUID) *PunctureUpdateOne {
	if v != nil {
		_u.SetOperatorID(*v)
	}
	return _u
}

// ClearOperatorID clears the value of the "operator_id" field.
func (_u *PunctureUpdateOne) ClearOperatorID() *PunctureUpdateOne {
	_u.mutation.ClearOperatorID()
	return _u
}

// SetDate sets the "date" field.
func (_u *PunctureUpdateOne) SetDate(v time.Time) *PunctureUpdateOne {
	_u.mutation.SetDate(v)
	return _u
}

// SetNillableDate sets the "date" field if the given value is not nil.
func (_u *PunctureUpdateOne) SetNillableDate(v *time.Time) *PunctureUpdateOne {
	if v != nil {
		_u.SetDate(*v)
	}
	return _u
}

// SetOperatingRoom sets the "operating_room" field.
func (_u *PunctureUpdateOne) SetOperatingRoom(v string) *PunctureUpdateOne {
	_u.mutation.SetOperatingRoom(v)
	return _u
}

// SetNillableOperatingRoom sets the "operating_room" field if the given value is not nil.
func (_u *PunctureUpdateOne) SetNillableOperatingRoom(v *string) *PunctureUpdateOne {
	if v != nil {
		_u.SetOperatingRoom(*v)
	}
	return _u
}

// SetComplications sets the "complications" field.
func (_u *PunctureUpdateOne) SetComplications(v string) *PunctureUpdateOne {
	_u.mutation.SetComplications(v)
	return _u
}

// SetNillableComplications sets the "complications" field if the given value is not nil.
func (_u *PunctureUpdateOne) SetNillableComplications(v *string) *PunctureUpdateOne {
	if v != nil {
		_u.SetComplications(*v)
	}
	return _u
}

// ClearComplications clears the value of the "complications" field.
func (_u *PunctureUpdateOne) ClearComplications() *PunctureUpdateOne {
	_u.mutation.ClearComplications()
	return _u
}

// SetTreatment sets the "treatment" edge to the Treatment entity.
func (_u *PunctureUpdateOne) SetTreatment(v *Treatment) *PunctureUpdateOne {
	return _u.SetTreatmentID(v.ID)
}

// SetOperator sets the "operator" edge to the User entity.
func (_u *PunctureUpdateOne) SetOperator(v *User) *PunctureUpdateOne {
	return _u.SetOperatorID(v.ID)
}

// AddOocyteIDs adds the "oocytes" edge to the Oocyte entity by IDs.
func (_u *PunctureUpdateOne) AddOocyteIDs(ids ...uuid.UUID) *PunctureUpdateOne {
	_u.mutation.AddOocyteIDs(ids...)
	return _u
}

// AddOocytes adds the "oocytes" edges to the Oocyte entity.
func (_u *PunctureUpdateOne) AddOocytes(v ...*Oocyte) *PunctureUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddOocyteIDs(ids...)
}

// Mutation returns the PunctureMutation object of the builder.
func (_u *PunctureUpdateOne) Mutation() *PunctureMutation {
	return _u.mutation
}

// ClearTreatment clears the "treatment" edge to the Treatment entity.
func (_u *PunctureUpdateOne) ClearTreatment() *PunctureUpdateOne {
	_u.mutation.ClearTreatment()
	return _u
}

// ClearOperator clears the "operator" edge to the User entity.
func (_u *PunctureUpdateOne) ClearOperator() *PunctureUpdateOne {
	_u.mutation.ClearOperator()
	return _u
}

// ClearOocytes clears all "oocytes" edges to the Oocyte entity.
func (_u *PunctureUpdateOne) ClearOocytes() *PunctureUpdateOne {
	_u.mutation.ClearOocytes()
	return _u
}

// RemoveOocyteIDs removes the "oocytes" edge to Oocyte entities by IDs.
func (_u *PunctureUpdateOne) RemoveOocyteIDs(ids ...uuid.UUID) *PunctureUpdateOne {
	_u.mutation.RemoveOocyteIDs(ids...)
	return _u
}

// RemoveOocytes removes "oocytes" edges to Oocyte entities.
func (_u *PunctureUpdateOne) RemoveOocytes(v ...*Oocyte) *PunctureUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveOocyteIDs(ids...)
}

// Where appends a list predicates to the PunctureUpdate builder.
func (_u *PunctureUpdateOne) Where(ps ...predicate.Puncture) *PunctureUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *PunctureUpdateOne) Select(field string, fields ...string) *PunctureUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Puncture entity.
func (_u *PunctureUpdateOne) Save(ctx context.Context) (*Puncture, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PunctureUpdateOne) SaveX(ctx context.Context) *Puncture {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *PunctureUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PunctureUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PunctureUpdateOne) check() error {
	if v, ok := _u.mutation.OperatingRoom(); ok {
		if err := puncture.OperatingRoomValidator(v); err != nil {
			return &ValidationError{Name: "operating_room", err: fmt.Errorf(`repo: validator failed for field "Puncture.operating_room": %w`, err)}
		}
	}
	if _u.mutation.TreatmentCleared() && len(_u.mutation.TreatmentIDs()) > 0 {
		return errors.New(`repo: clearing a required unique edge "Puncture.treatment"`)
	}
	return nil
}

func (_u *PunctureUpdateOne) sqlSave(ctx context.Context) (_node *Puncture, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(puncture.Table, puncture.Columns, sqlgraph.NewFieldSpec(puncture.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`repo: missing "Puncture.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, puncture.FieldID)
		for _, f := range fields {
			if !puncture.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("repo: invalid field %q for query", f)}
			}
			if f != puncture.FieldID {
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
	if value, ok := _u.mutation.Date(); ok {
		_spec.SetField(puncture.FieldDate, field.TypeTime, value)
	}
	if value, ok := _u.mutation.OperatingRoom(); ok {
		_spec.SetField(puncture.FieldOperatingRoom, field.TypeString, value)
	}
	if value, ok := _u.mutation.Complications(); ok {
		_spec.SetField(puncture.FieldComplications, field.TypeString, value)
	}
	if _u.mutation.ComplicationsCleared() {
		_spec.ClearField(puncture.FieldComplications, field.TypeString)
	}
	if _u.mutation.TreatmentCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: true,
			Table:   puncture.TreatmentTable,
			Columns: []string{puncture.TreatmentColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(treatment.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.TreatmentIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: true,
			Table:   puncture.TreatmentTable,
			Columns: []string{puncture.TreatmentColumn},
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
	if _u.mutation.OperatorCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: false,
			Table:   puncture.OperatorTable,
			Columns: []string{puncture.OperatorColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(user.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.OperatorIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: false,
			Table:   puncture.OperatorTable,
			Columns: []string{puncture.OperatorColumn},
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
	if _u.mutation.OocytesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   puncture.OocytesTable,
			Columns: []string{puncture.OocytesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(oocyte.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedOocytesIDs(); len(nodes) > 0 && !_u.mutation.OocytesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   puncture.OocytesTable,
			Columns: []string{puncture.OocytesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(oocyte.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.OocytesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   puncture.OocytesTable,
			Columns: []string{puncture.OocytesColumn},
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
	_node = &Puncture{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{puncture.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
