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
	"github.com/fertitrack/fertitrack_backend/internal/repo/partner"
	"github.com/fertitrack/fertitrack_backend/internal/repo/patient"
	"github.com/fertitrack/fertitrack_backend/internal/repo/predicate"
	"github.com/google/uuid"
)

// PartnerUpdate is the builder for updating Partner entities.
type PartnerUpdate struct {
	config
	hooks    []Hook
	mutation *PartnerMutation
}

// Where appends a list predicates to the PartnerUpdate builder.
func (_u *PartnerUpdate) Where(ps ...predicate.Partner) *PartnerUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *PartnerUpdate) SetUpdatedAt(v time.Time) *PartnerUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetPatientID sets the "patient_id" field.
func (_u *PartnerUpdate) SetPatientID(v uuid.UUID) *PartnerUpdate {
	_u.mutation.SetPatientID(v)
	return _u
}

// SetNillablePatientID sets the "patient_id" field if the given value is not nil.
func (_u *PartnerUpdate) SetNillablePatientID(v *uuid.UUID) *PartnerUpdate {
	if v != nil {
		_u.SetPatientID(*v)
	}
	return _u
}

// SetFirstName sets the "first_name" field.
func (_u *PartnerUpdate) SetFirstName(v string) *PartnerUpdate {
	_u.mutation.SetFirstName(v)
	return _u
}

// SetNillableFirstName sets the "first_name" field if the given value is not nil.
func (_u *PartnerUpdate) SetNillableFirstName(v *string) *PartnerUpdate {
	if v != nil {
		_u.SetFirstName(*v)
	}
	return _u
}

// SetLastName sets the "last_name" field.
func (_u *PartnerUpdate) SetLastName(v string) *PartnerUpdate {
	_u.mutation.SetLastName(v)
	return _u
}

// SetNillableLastName sets the "last_name" field if the given value is not nil.
func (_u *PartnerUpdate) SetNillableLastName(v *string) *PartnerUpdate {
	if v != nil {
		_u.SetLastName(*v)
	}
	return _u
}

// SetDateOfBirth sets the "date_of_birth" field.
func (_u *PartnerUpdate) SetDateOfBirth(v time.Time) *PartnerUpdate {
	_u.mutation.SetDateOfBirth(v)
	return _u
}

// SetNillableDateOfBirth sets the "date_of_birth" field if the given value is not nil.
func (_u *PartnerUpdate) SetNillableDateOfBirth(v *time.Time) *PartnerUpdate {
	if v != nil {
		_u.SetDateOfBirth(*v)
	}
	return _u
}

// SetBiologicalSex sets the "biological_sex" field.
func (_u *PartnerUpdate) SetBiologicalSex(v partner.BiologicalSex) *PartnerUpdate {
	_u.mutation.SetBiologicalSex(v)
	return _u
}

// SetNillableBiologicalSex sets the "biological_sex" field if the given value is not nil.
func (_u *PartnerUpdate) SetNillableBiologicalSex(v *partner.BiologicalSex) *PartnerUpdate {
	if v != nil {
		_u.SetBiologicalSex(*v)
	}
	return _u
}

// SetDni sets the "dni" field.
func (_u *PartnerUpdate) SetDni(v string) *PartnerUpdate {
	_u.mutation.SetDni(v)
	return _u
}

// SetNillableDni sets the "dni" field if the given value is not nil.
func (_u *PartnerUpdate) SetNillableDni(v *string) *PartnerUpdate {
	if v != nil {
		_u.SetDni(*v)
	}
	return _u
}

// SetGenitalBackground sets the "genital_background" field.
func (_u *PartnerUpdate) SetGenitalBackground(v string) *PartnerUpdate {
	_u.mutation.SetGenitalBackground(v)
	return _u
}

// SetNillableGenitalBackground sets the "genital_background" field if the given value is not nil.
func (_u *PartnerUpdate) SetNillableGenitalBackground(v *string) *PartnerUpdate {
	if v != nil {
		_u.SetGenitalBackground(*v)
	}
	return _u
}

// ClearGenitalBackground clears the value of the "genital_background" field.
func (_u *PartnerUpdate) ClearGenitalBackground() *PartnerUpdate {
	_u.mutation.ClearGenitalBackground()
	return _u
}

// SetPatient sets the "patient" edge to the Patient entity.
func (_u *PartnerUpdate) SetPatient(v *Patient) *PartnerUpdate {
	return _u.SetPatientID(v.ID)
}

// Mutation returns the PartnerMutation object of the builder.
func (_u *PartnerUpdate) Mutation() *PartnerMutation {
	return _u.mutation
}

// ClearPatient clears the "patient" edge to the Patient entity.
func (_u *PartnerUpdate) ClearPatient() *PartnerUpdate {
	_u.mutation.ClearPatient()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *PartnerUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PartnerUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *PartnerUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PartnerUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *PartnerUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := partner.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PartnerUpdate) check() error {
	if v, ok := _u.mutation.FirstName(); ok {
		if err := partner.FirstNameValidator(v); err != nil {
			return &ValidationError{Name: "first_name", err: fmt.Errorf(`repo: validator failed for field "Partner.first_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.LastName(); ok {
		if err := partner.LastNameValidator(v); err != nil {
			return &ValidationError{Name: "last_name", err: fmt.Errorf(`repo: validator failed for field "Partner.last_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.BiologicalSex(); ok {
		if err := partner.BiologicalSexValidator(v); err != nil {
			return &ValidationError{Name: "biological_sex", err: fmt.Errorf(`repo: validator failed for field "Partner.biological_sex": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Dni(); ok {
		if err := partner.DniValidator(v); err != nil {
			return &ValidationError{Name: "dni", err: fmt.Errorf(`repo: validator failed for field "Partner.dni": %w`, err)}
		}
	}
	if _u.mutation.PatientCleared() && len(_u.mutation.PatientIDs()) > 0 {
		return errors.New(`repo: clearing a required unique edge "Partner.patient"`)
	}
	return nil
}

func (_u *PartnerUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(partner.Table, partner.Columns, sqlgraph.NewFieldSpec(partner.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(partner.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.FirstName(); ok {
		_spec.SetField(partner.FieldFirstName, field.TypeString, value)
	}
	if value, ok := _u.mutation.LastName(); ok {
		_spec.SetField(partner.FieldLastName, field.TypeString, value)
	}
	if value, ok := _u.mutation.DateOfBirth(); ok {
		_spec.SetField(partner.FieldDateOfBirth, field.TypeTime, value)
	}
	if value, ok := _u.mutation.BiologicalSex(); ok {
		_spec.SetField(partner.FieldBiologicalSex, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Dni(); ok {
		_spec.SetField(partner.FieldDni, field.TypeString, value)
	}
	if value, ok := _u.mutation.GenitalBackground(); ok {
		_spec.SetField(partner.FieldGenitalBackground, field.TypeString, value)
	}
	if _u.mutation.GenitalBackgroundCleared() {
		_spec.ClearField(partner.FieldGenitalBackground, field.TypeString)
	}
	if _u.mutation.PatientCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: true,
			Table:   partner.PatientTable,
			Columns: []string{partner.PatientColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(patient.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.PatientIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: true,
			Table:   partner.PatientTable,
			Columns: []string{partner.PatientColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(patient.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{partner.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// PartnerUpdateOne is the builder for updating a single Partner entity.
type PartnerUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *PartnerMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *PartnerUpdateOne) SetUpdatedAt(v time.Time) *PartnerUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetPatientID sets the "patient_id" field.
func (_u *PartnerUpdateOne) SetPatientID(v uuid.UUID) *PartnerUpdateOne {
	_u.mutation.SetPatientID(v)
	return _u
}

// SetNillablePatientID sets the "patient_id" field if the given value is not nil.
func (_u *PartnerUpdateOne) SetNillablePatientID(v *uuid.UUID) *PartnerUpdateOne {
	if v != nil {
		_u.SetPatientID(*v)
	}
	return _u
}

// SetFirstName sets the "first_name" field.
func (_u *PartnerUpdateOne) SetFirstName(v string) *PartnerUpdateOne {
	_u.mutation.SetFirstName(v)
	return _u
}

// SetNillableFirstName sets the "first_name" field if the given value is not nil.
func (_u *PartnerUpdateOne) SetNillableFirstName(v *string) *PartnerUpdateOne {
	if v != nil {
		_u.SetFirstName(*v)
	}
	return _u
}

// SetLastName sets the "last_name" field.
func (_u *PartnerUpdateOne) SetLastName(v string) *PartnerUpdateOne {
	_u.mutation.SetLastName(v)
	return _u
}

// SetNillableLastName sets the "last_name" field if the given value is not nil.
func (_u *PartnerUpdateOne) SetNillableLastName(v *string) *PartnerUpdateOne {
	if v != nil {
		_u.SetLastName(*v)
	}
	return _u
}

// SetDateOfBirth sets the "date_of_birth" field.
func (_u *PartnerUpdateOne) SetDateOfBirth(v time.Time) *PartnerUpdateOne {
	_u.mutation.SetDateOfBirth(v)
	return _u
}

// SetNillableDateOfBirth sets the "date_of_birth" field if the given value is not nil.
func (_u *PartnerUpdateOne) SetNillableDateOfBirth(v *time.Time) *PartnerUpdateOne {
	if v != nil {
		_u.SetDateOfBirth(*v)
	}
	return _u
}

// SetBiologicalSex sets the "biological_sex" field.
func (_u *PartnerUpdateOne) SetBiologicalSex(v partner.BiologicalSex) *PartnerUpdateOne {
	_u.mutation.SetBiologicalSex(v)
	return _u
}

// SetNillableBiologicalSex sets the "biological_sex" field if the given value is not nil.
func (_u *PartnerUpdateOne) SetNillableBiologicalSex(v *partner.BiologicalSex) *PartnerUpdateOne {
	if v != nil {
		_u.SetBiologicalSex(*v)
	}
	return _u
}

// SetDni sets the "dni" field.
func (_u *PartnerUpdateOne) SetDni(v string) *PartnerUpdateOne {
	_u.mutation.SetDni(v)
	return _u
}

// SetNillableDni sets the "dni" field if the given value is not nil.
func (_u *PartnerUpdateOne) SetNillableDni(v *string) *PartnerUpdateOne {
	if v != nil {
		_u.SetDni(*v)
	}
	return _u
}

// SetGenitalBackground sets the "genital_background" field.
func (_u *PartnerUpdateOne) SetGenitalBackground(v string) *PartnerUpdateOne {
	_u.mutation.SetGenitalBackground(v)
	return _u
}

// SetNillableGenitalBackground sets the "genital_background" field if the given value is not nil.
func (_u *PartnerUpdateOne) SetNillableGenitalBackground(v *string) *PartnerUpdateOne {
	if v != nil {
		_u.SetGenitalBackground(*v)
	}
	return _u
}

// ClearGenitalBackground clears the value of the "genital_background" field.
func (_u *PartnerUpdateOne) ClearGenitalBackground() *PartnerUpdateOne {
	_u.mutation.ClearGenitalBackground()
	return _u
}

// SetPatient sets the "patient" edge to the Patient entity.
func (_u *PartnerUpdateOne) SetPatient(v *Patient) *PartnerUpdateOne {
	return _u.SetPatientID(v.ID)
}

// Mutation returns the PartnerMutation object of the builder.
func (_u *PartnerUpdateOne) Mutation() *PartnerMutation {
	return _u.mutation
}

// ClearPatient clears the "patient" edge to the Patient entity.
func (_u *PartnerUpdateOne) ClearPatient() *PartnerUpdateOne {
	_u.mutation.ClearPatient()
	return _u
}

// Where appends a list predicates to the PartnerUpdate builder.
func (_u *PartnerUpdateOne) Where(ps ...predicate.Partner) *PartnerUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *PartnerUpdateOne) Select(field string, fields ...string) *PartnerUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Partner entity.
func (_u *PartnerUpdateOne) Save(ctx context.Context) (*Partner, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PartnerUpdateOne) SaveX(ctx context.Context) *Partner {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *PartnerUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PartnerUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *PartnerUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := partner.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PartnerUpdateOne) check() error {
	if v, ok := _u.mutation.FirstName(); ok {
		if err := partner.FirstNameValidator(v); err != nil {
			return &ValidationError{Name: "first_name", err: fmt.Errorf(`repo: validator failed for field "Partner.first_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.LastName(); ok {
		if err := partner.LastNameValidator(v); err != nil {
			return &ValidationError{Name: "last_name", err: fmt.Errorf(`repo: validator failed for field "Partner.last_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.BiologicalSex(); ok {
		if err := partner.BiologicalSexValidator(v); err != nil {
			return &ValidationError{Name: "biological_sex", err: fmt.Errorf(`repo: validator failed for field "Partner.biological_sex": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Dni(); ok {
		if err := partner.DniValidator(v); err != nil {
			return &ValidationError{Name: "dni", err: fmt.Errorf(`repo: validator failed for field "Partner.dni": %w`, err)}
		}
	}
	if _u.mutation.PatientCleared() && len(_u.mutation.PatientIDs()) > 0 {
		return errors.New(`repo: clearing a required unique edge "Partner.patient"`)
	}
	return nil
}

func (_u *PartnerUpdateOne) sqlSave(ctx context.Context) (_node *Partner, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(partner.Table, partner.Columns, sqlgraph.NewFieldSpec(partner.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`repo: missing "Partner.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, partner.FieldID)
		for _, f := range fields {
			if !partner.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("repo: invalid field %q for query", f)}
			}
			if f != partner.FieldID {
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
		_spec.SetField(partner.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.FirstName(); ok {
		_spec.SetField(partner.FieldFirstName, field.TypeString, value)
	}
	if value, ok := _u.mutation.LastName(); ok {
		_spec.SetField(partner.FieldLastName, field.TypeString, value)
	}
	if value, ok := _u.mutation.DateOfBirth(); ok {
		_spec.SetField(partner.FieldDateOfBirth, field.TypeTime, value)
	}
	if value, ok := _u.mutation.BiologicalSex(); ok {
		_spec.SetField(partner.FieldBiologicalSex, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Dni(); ok {
		_spec.SetField(partner.FieldDni, field.TypeString, value)
	}
	if value, ok := _u.mutation.GenitalBackground(); ok {
		_spec.SetField(partner.FieldGenitalBackground, field.TypeString, value)
	}
	if _u.mutation.GenitalBackgroundCleared() {
		_spec.ClearField(partner.FieldGenitalBackground, field.TypeString)
	}
	if _u.mutation.PatientCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: true,
			Table:   partner.PatientTable,
			Columns: []string{partner.PatientColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(patient.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.PatientIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: true,
			Table:   partner.PatientTable,
			Columns: []string{partner.PatientColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(patient.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Partner{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{partner.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
