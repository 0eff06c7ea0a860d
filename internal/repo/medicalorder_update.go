// Code generated by ent, DO NOT EDIT.

package repo

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/fertitrack/fertitrack_backend/internal/repo/medicalorder"
	"github.com/fertitrack/fertitrack_backend/internal/repo/predicate"
	"github.com/fertitrack/fertitrack_backend/internal/repo/treatment"
	"github.com/google/uuid"
)

// MedicalOrderUpdate is the builder for updating MedicalOrder entities.
type MedicalOrderUpdate struct {
	config
	hooks    []Hook
	mutation *MedicalOrderMutation
}

// Where appends a list predicates to the MedicalOrderUpdate builder.
func (_u *MedicalOrderUpdate) Where(ps ...predicate.MedicalOrder) *MedicalOrderUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetTreatmentID sets the "treatment_id" field.
func (_u *MedicalOrderUpdate) SetTreatmentID(v uuid.UUID) *MedicalOrderUpdate {
	_u.mutation.SetTreatmentID(v)
	return _u
}

// SetNillableTreatmentID sets the "treatment_id" field if the given value is not nil.
func (_u *MedicalOrderUpdate) SetNillableTreatmentID(v *uuid.UUID) *MedicalOrderUpdate {
	if v != nil {
		_u.SetTreatmentID(*v)
	}
	return _u
}

// SetOrderType sets the "order_type" field.
func (_u *MedicalOrderUpdate) SetOrderType(v string) *MedicalOrderUpdate {
	_u.mutation.SetOrderType(v)
	return _u
}

// SetNillableOrderType sets the "order_type" field if the given value is not nil.
func (_u *MedicalOrderUpdate) SetNillableOrderType(v *string) *MedicalOrderUpdate {
	if v != nil {
		_u.SetOrderType(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *MedicalOrderUpdate) SetDescription(v string) *MedicalOrderUpdate {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *MedicalOrderUpdate) SetNillableDescription(v *string) *MedicalOrderUpdate {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// SetTreatment sets the "treatment" edge to the Treatment entity.
func (_u *MedicalOrderUpdate) SetTreatment(v *Treatment) *MedicalOrderUpdate {
	return _u.SetTreatmentID(v.ID)
}

// Mutation returns the MedicalOrderMutation object of the builder.
func (_u *MedicalOrderUpdate) Mutation() *MedicalOrderMutation {
	return _u.mutation
}

// ClearTreatment clears the "treatment" edge to the Treatment entity.
func (_u *MedicalOrderUpdate) ClearTreatment() *MedicalOrderUpdate {
	_u.mutation.ClearTreatment()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *MedicalOrderUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *MedicalOrderUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *MedicalOrderUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *MedicalOrderUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *MedicalOrderUpdate) check() error {
	if v, ok := _u.mutation.OrderType(); ok {
		if err := medicalorder.OrderTypeValidator(v); err != nil {
			return &ValidationError{Name: "order_type", err: fmt.Errorf(`repo: validator failed for field "MedicalOrder.order_type": %w`, err)}
		}
	}
	if _u.mutation.TreatmentCleared() && len(_u.mutation.TreatmentIDs()) > 0 {
		return errors.New(`repo: clearing a required unique edge "MedicalOrder.treatment"`)
	}
	return nil
}

func (_u *MedicalOrderUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(medicalorder.Table, medicalorder.Columns, sqlgraph.NewFieldSpec(medicalorder.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.OrderType(); ok {
		_spec.SetField(medicalorder.FieldOrderType, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(medicalorder.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.TreatmentCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   medicalorder.TreatmentTable,
			Columns: []string{medicalorder.TreatmentColumn},
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
			Table:   medicalorder.TreatmentTable,
			Columns: []string{medicalorder.TreatmentColumn},
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
			err = &NotFoundError{medicalorder.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// MedicalOrderUpdateOne is the builder for updating a single MedicalOrder entity.
type MedicalOrderUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *MedicalOrderMutation
}

// SetTreatmentID sets the "treatment_id" field.
func (_u *MedicalOrderUpdateOne) SetTreatmentID(v uuid.UUID) *MedicalOrderUpdateOne {
	_u.mutation.SetTreatmentID(v)
	return _u
}

// SetNillableTreatmentID sets the "treatment_id" field if the given value is not nil.
func (_u *MedicalOrderUpdateOne) SetNillableTreatmentID(v *uuid.UUID) *MedicalOrderUpdateOne {
	if v != nil {
		_u.SetTreatmentID(*v)
	}
	return _u
}

// SetOrderType sets the "order_type" field.
func (_u *MedicalOrderUpdateOne) SetOrderType(v string) *MedicalOrderUpdateOne {
	_u.mutation.SetOrderType(v)
	return _u
}

// SetNillableOrderType sets the "order_type" field if the given value is not nil.
func (_u *MedicalOrderUpdateOne) SetNillableOrderType(v *string) *MedicalOrderUpdateOne {
	if v != nil {
		_u.SetOrderType(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *MedicalOrderUpdateOne) SetDescription(v string) *MedicalOrderUpdateOne {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *MedicalOrderUpdateOne) SetNillableDescription(v *string) *MedicalOrderUpdateOne {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// SetTreatment sets the "treatment" edge to the Treatment entity.
func (_u *MedicalOrderUpdateOne) SetTreatment(v *Treatment) *MedicalOrderUpdateOne {
	return _u.SetTreatmentID(v.ID)
}

// Mutation returns the MedicalOrderMutation object of the builder.
func (_u *MedicalOrderUpdateOne) Mutation() *MedicalOrderMutation {
	return _u.mutation
}

// ClearTreatment clears the "treatment" edge to the Treatment entity.
func (_u *MedicalOrderUpdateOne) ClearTreatment() *MedicalOrderUpdateOne {
	_u.mutation.ClearTreatment()
	return _u
}

// Where appends a list predicates to the MedicalOrderUpdate builder.
func (_u *MedicalOrderUpdateOne) Where(ps ...predicate.MedicalOrder) *MedicalOrderUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *MedicalOrderUpdateOne) Select(field string, fields ...string) *MedicalOrderUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated MedicalOrder entity.
func (_u *MedicalOrderUpdateOne) Save(ctx context.Context) (*MedicalOrder, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *MedicalOrderUpdateOne) SaveX(ctx context.Context) *MedicalOrder {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *MedicalOrderUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *MedicalOrderUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *MedicalOrderUpdateOne) check() error {
	if v, ok := _u.mutation.OrderType(); ok {
		if err := medicalorder.OrderTypeValidator(v); err != nil {
			return &ValidationError{Name: "order_type", err: fmt.Errorf(`repo: validator failed for field "MedicalOrder.order_type": %w`, err)}
		}
	}
	if _u.mutation.TreatmentCleared() && len(_u.mutation.TreatmentIDs()) > 0 {
		return errors.New(`repo: clearing a required unique edge "MedicalOrder.treatment"`)
	}
	return nil
}

func (_u *MedicalOrderUpdateOne) sqlSave(ctx context.Context) (_node *MedicalOrder, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(medicalorder.Table, medicalorder.Columns, sqlgraph.NewFieldSpec(medicalorder.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`repo: missing "MedicalOrder.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, medicalorder.FieldID)
		for _, f := range fields {
			if !medicalorder.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("repo: invalid field %q for query", f)}
			}
			if f != medicalorder.FieldID {
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
	if value, ok := _u.mutation.OrderType(); ok {
		_spec.SetField(medicalorder.FieldOrderType, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(medicalorder.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.TreatmentCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   medicalorder.TreatmentTable,
			Columns: []string{medicalorder.TreatmentColumn},
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
			Table:   medicalorder.TreatmentTable,
			Columns: []string{medicalorder.TreatmentColumn},
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
	_node = &MedicalOrder{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{medicalorder.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
