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
	"github.com/fertitrack/fertitrack_backend/internal/repo/medicalhistory"
	"github.com/fertitrack/fertitrack_backend/internal/repo/partner"
	"github.com/fertitrack/fertitrack_backend/internal/repo/patient"
	"github.com/fertitrack/fertitrack_backend/internal/repo/treatment"
	"github.com/fertitrack/fertitrack_backend/internal/repo/user"
	"github.com/google/uuid"
)

// PatientCreate is the builder for creating a Patient entity.
type PatientCreate struct {
	config
	mutation *PatientMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetCreatedAt sets the "created_at" field.
func (_c *PatientCreate) SetCreatedAt(v time.Time) *PatientCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *PatientCreate) SetNillableCreatedAt(v *time.Time) *PatientCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *PatientCreate) SetUpdatedAt(v time.Time) *PatientCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *PatientCreate) SetNillableUpdatedAt(v *time.Time) *PatientCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetUserID sets the "user_id" field.
func (_c *PatientCreate) SetUserID(v uuid.UUID) *PatientCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetOccupation sets the "occupation" field.
func (_c *PatientCreate) SetOccupation(v string) *PatientCreate {
	_c.mutation.SetOccupation(v)
	return _c
}

// SetNillableOccupation sets the "occupation" field if the given value is not nil.
func (_c *PatientCreate) SetNillableOccupation(v *string) *PatientCreate {
	if v != nil {
		_c.SetOccupation(*v)
	}
	return _c
}

// SetMedicalCoverageID sets the "medical_coverage_id" field.
func (_c *PatientCreate) SetMedicalCoverageID(v int) *PatientCreate {
	_c.mutation.SetMedicalCoverageID(v)
	return _c
}

// SetNillableMedicalCoverageID sets the "medical_coverage_id" field if the given value is not nil.
func (_c *PatientCreate) SetNillableMedicalCoverageID(v *int) *PatientCreate {
	if v != nil {
		_c.SetMedicalCoverageID(*v)
	}
	return _c
}

// SetMedicalCoverageName sets the "medical_coverage_name" field.
func (_c *PatientCreate) SetMedicalCoverageName(v string) *PatientCreate {
	_c.mutation.SetMedicalCoverageName(v)
	return _c
}

// SetNillableMedicalCoverageName sets the "medical_coverage_name" field if the given value is not nil.
func (_c *PatientCreate) SetNillableMedicalCoverageName(v *string) *PatientCreate {
	if v != nil {
		_c.SetMedicalCoverageName(*v)
	}
	return _c
}

// SetMemberNumber sets the "member_number" field.
func (_c *PatientCreate) SetMemberNumber(v string) *PatientCreate {
	_c.mutation.SetMemberNumber(v)
	return _c
}

// SetNillableMemberNumber sets the "member_number" field if the given value is not nil.
func (_c *PatientCreate) SetNillableMemberNumber(v *string) *PatientCreate {
	if v != nil {
		_c.SetMemberNumber(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *PatientCreate) SetID(v uuid.UUID) *PatientCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *PatientCreate) SetNillableID(v *uuid.UUID) *PatientCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetUser sets the "user" edge to the User entity.
func (_c *PatientCreate) SetUser(v *User) *PatientCreate {
	return _c.SetUserID(v.ID)
}

// SetMedicalHistoryID sets the "medical_history" edge to the MedicalHistory entity by ID.
func (_c *PatientCreate) SetMedicalHistoryID(id uuid.UUID) *PatientCreate {
	_c.mutation.SetMedicalHistoryID(id)
	return _c
}

// SetNillableMedicalHistoryID sets the "medical_history" edge to the MedicalHistory entity by ID if the given value is not nil.
func (_c *PatientCreate) SetNillableMedicalHistoryID(id *uuid.UUID) *PatientCreate {
	if id != nil {
		_c = _c.SetMedicalHistoryID(*id)
	}
	return _c
}

// SetMedicalHistory sets the "medical_history" edge to the MedicalHistory entity.
func (_c *PatientCreate) SetMedicalHistory(v *MedicalHistory) *PatientCreate {
	return _c.SetMedicalHistoryID(v.ID)
}

// SetPartnerID sets the "partner" edge to the Partner entity by ID.
func (_c *PatientCreate) SetPartnerID(id uuid.UUID) *PatientCreate {
	_c.mutation.SetPartnerID(id)
	return _c
}

// SetNillablePartnerID sets the "partner" edge to the Partner entity by ID if the given value is not nil.
func (_c *PatientCreate) SetNillablePartnerID(id *uuid.UUID) *PatientCreate {
	if id != nil {
		_c = _c.SetPartnerID(*id)
	}
	return _c
}

// SetPartner sets the "partner" edge to the Partner entity.
func (_c *PatientCreate) SetPartner(v *Partner) *PatientCreate {
	return _c.SetPartnerID(v.ID)
}

// AddTreatmentIDs adds the "treatments" edge to the Treatment entity by IDs.
func (_c *PatientCreate) AddTreatmentIDs(ids ...uuid.UUID) *PatientCreate {
	_c.mutation.AddTreatmentIDs(ids...)
	return _c
}

// AddTreatments adds the "treatments" edges to the Treatment entity.
func (_c *PatientCreate) AddTreatments(v ...*Treatment) *PatientCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddTreatmentIDs(ids...)
}

// Mutation returns the PatientMutation object of the builder.
func (_c *PatientCreate) Mutation() *PatientMutation {
	return _c.mutation
}

// Save creates the Patient in the database.
func (_c *PatientCreate) Save(ctx context.Context) (*Patient, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *PatientCreate) SaveX(ctx context.Context) *Patient {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PatientCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PatientCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *PatientCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := patient.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := patient.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := patient.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *PatientCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`repo: missing required field "Patient.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`repo: missing required field "Patient.updated_at"`)}
	}
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`repo: missing required field "Patient.user_id"`)}
	}
	if v, ok := _c.mutation.Occupation(); ok {
		if err := patient.OccupationValidator(v); err != nil {
			return &ValidationError{Name: "occupation", err: fmt.Errorf(`repo: validator failed for field "Patient.occupation": %w`, err)}
		}
	}
	if v, ok := _c.mutation.MedicalCoverageName(); ok {
		if err := patient.MedicalCoverageNameValidator(v); err != nil {
			return &ValidationError{Name: "medical_coverage_name", err: fmt.Errorf(`repo: validator failed for field "Patient.medical_coverage_name": %w`, err)}
		}
	}
	if v, ok := _c.mutation.MemberNumber(); ok {
		if err := patient.MemberNumberValidator(v); err != nil {
			return &ValidationError{Name: "member_number", err: fmt.Errorf(`repo: validator failed for field "Patient.member_number": %w`, err)}
		}
	}
	if len(_c.mutation.UserIDs()) == 0 {
		return &ValidationError{Name: "user", err: errors.New(`repo: missing required edge "Patient.user"`)}
	}
	return nil
}

func (_c *PatientCreate) sqlSave(ctx context.Context) (*Patient, error) {
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

func (_c *PatientCreate) createSpec() (*Patient, *sqlgraph.CreateSpec) {
	var (
		_node = &Patient{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(patient.Table, sqlgraph.NewFieldSpec(patient.FieldID, field.TypeUUID))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(patient.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(patient.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.Occupation(); ok {
		_spec.SetField(patient.FieldOccupation, field.TypeString, value)
		_node.Occupation = &value
	}
	if value, ok := _c.mutation.MedicalCoverageID(); ok {
		_spec.SetField(patient.FieldMedicalCoverageID, field.TypeInt, value)
		_node.MedicalCoverageID = &value
	}
	if value, ok := _c.mutation.MedicalCoverageName(); ok {
		_spec.SetField(patient.FieldMedicalCoverageName, field.TypeString, value)
		_node.MedicalCoverageName = &value
	}
	if value, ok := _c.mutation.MemberNumber(); ok {
		_spec.SetField(patient.FieldMemberNumber, field.TypeString, value)
		_node.MemberNumber = &value
	}
	if nodes := _c.mutation.UserIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: true,
			Table:   patient.UserTable,
			Columns: []string{patient.UserColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(user.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.UserID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.MedicalHistoryIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: false,
			Table:   patient.MedicalHistoryTable,
			Columns: []string{patient.MedicalHistoryColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(medicalhistory.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.PartnerIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: false,
			Table:   patient.PartnerTable,
			Columns: []string{patient.PartnerColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(partner.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.TreatmentsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   patient.TreatmentsTable,
			Columns: []string{patient.TreatmentsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(treatment.FieldID, field.TypeUUID),
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
//	client.Patient.Create().
//		SetCreatedAt(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.PatientUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *PatientCreate) OnConflict(opts ...sql.ConflictOption) *PatientUpsertOne {
	_c.conflict = opts
	return &PatientUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Patient.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *PatientCreate) OnConflictColumns(columns ...string) *PatientUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &PatientUpsertOne{
		create: _c,
	}
}

type (
	// PatientUpsertOne is the builder for "upsert"-ing
	//  one Patient node.
	PatientUpsertOne struct {
		create *PatientCreate
	}

	// PatientUpsert is the "OnConflict" setter.
	PatientUpsert struct {
		*sql.UpdateSet
	}
)

// SetUpdatedAt sets the "updated_at" field.
func (u *PatientUpsert) SetUpdatedAt(v time.Time) *PatientUpsert {
	u.Set(patient.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *PatientUpsert) UpdateUpdatedAt() *PatientUpsert {
	u.SetExcluded(patient.FieldUpdatedAt)
	return u
}

// SetUserID sets the "user_id" field.
func (u *PatientUpsert) SetUserID(v uuid.UUID) *PatientUpsert {
	u.Set(patient.FieldUserID, v)
	return u
}

// UpdateUserID sets the "user_id" field to the value that was provided on create.
func (u *PatientUpsert) UpdateUserID() *PatientUpsert {
	u.SetExcluded(patient.FieldUserID)
	return u
}

// SetOccupation sets the "occupation" field.
func (u *PatientUpsert) SetOccupation(v string) *PatientUpsert {
	u.Set(patient.FieldOccupation, v)
	return u
}

// UpdateOccupation sets the "occupation" field to the value that was provided on create.
func (u *PatientUpsert) UpdateOccupation() *PatientUpsert {
	u.SetExcluded(patient.FieldOccupation)
	return u
}

// ClearOccupation clears the value of the "occupation" field.
func (u *PatientUpsert) ClearOccupation() *PatientUpsert {
	u.SetNull(patient.FieldOccupation)
	return u
}

// SetMedicalCoverageID sets the "medical_coverage_id" field.
func (u *PatientUpsert) SetMedicalCoverageID(v int) *PatientUpsert {
	u.Set(patient.FieldMedicalCoverageID, v)
	return u
}

// UpdateMedicalCoverageID sets the "medical_coverage_id" field to the value that was provided on create.
func (u *PatientUpsert) UpdateMedicalCoverageID() *PatientUpsert {
	u.SetExcluded(patient.FieldMedicalCoverageID)
	return u
}

// AddMedicalCoverageID adds v to the "medical_coverage_id" field.
func (u *PatientUpsert) AddMedicalCoverageID(v int) *PatientUpsert {
	u.Add(patient.FieldMedicalCoverageID, v)
	return u
}

// ClearMedicalCoverageID clears the value of the "medical_coverage_id" field.
func (u *PatientUpsert) ClearMedicalCoverageID() *PatientUpsert {
	u.SetNull(patient.FieldMedicalCoverageID)
	return u
}

// SetMedicalCoverageName sets the "medical_coverage_name" field.
func (u *PatientUpsert) SetMedicalCoverageName(v string) *PatientUpsert {
	u.Set(patient.FieldMedicalCoverageName, v)
	return u
}

// UpdateMedicalCoverageName sets the "medical_coverage_name" field to the value that was provided on create.
func (u *PatientUpsert) UpdateMedicalCoverageName() *PatientUpsert {
	u.SetExcluded(patient.FieldMedicalCoverageName)
	return u
}

// ClearMedicalCoverageName clears the value of the "medical_coverage_name" field.
func (u *PatientUpsert) ClearMedicalCoverageName() *PatientUpsert {
	u.SetNull(patient.FieldMedicalCoverageName)
	return u
}

// SetMemberNumber sets the "member_number" field.
func (u *PatientUpsert) SetMemberNumber(v string) *PatientUpsert {
	u.Set(patient.FieldMemberNumber, v)
	return u
}

// UpdateMemberNumber sets the "member_number" field to the value that was provided on create.
func (u *PatientUpsert) UpdateMemberNumber() *PatientUpsert {
	u.SetExcluded(patient.FieldMemberNumber)
	return u
}

// ClearMemberNumber clears the value of the "member_number" field.
func (u *PatientUpsert) ClearMemberNumber() *PatientUpsert {
	u.SetNull(patient.FieldMemberNumber)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.Patient.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(patient.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *PatientUpsertOne) UpdateNewValues() *PatientUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(patient.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(patient.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Patient.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *PatientUpsertOne) Ignore() *PatientUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *PatientUpsertOne) DoNothing() *PatientUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the PatientCreate.OnConflict
// documentation for more info.
func (u *PatientUpsertOne) Update(set func(*PatientUpsert)) *PatientUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&PatientUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *PatientUpsertOne) SetUpdatedAt(v time.Time) *PatientUpsertOne {
	return u.Update(func(s *PatientUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *PatientUpsertOne) UpdateUpdatedAt() *PatientUpsertOne {
	return u.Update(func(s *PatientUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetUserID sets the "user_id" field.
func (u *PatientUpsertOne) SetUserID(v uuid.UUID) *PatientUpsertOne {
	return u.Update(func(s *PatientUpsert) {
		s.SetUserID(v)
	})
}

// UpdateUserID sets the "user_id" field to the value that was provided on create.
func (u *PatientUpsertOne) UpdateUserID() *PatientUpsertOne {
	return u.Update(func(s *PatientUpsert) {
		s.UpdateUserID()
	})
}

// SetOccupation sets the "occupation" field.
func (u *PatientUpsertOne) SetOccupation(v string) *PatientUpsertOne {
	return u.Update(func(s *PatientUpsert) {
		s.SetOccupation(v)
	})
}

// UpdateOccupation sets the "occupation" field to the value that was provided on create.
func (u *PatientUpsertOne) UpdateOccupation() *PatientUpsertOne {
	return u.Update(func(s *PatientUpsert) {
		s.UpdateOccupation()
	})
}

// ClearOccupation clears the value of the "occupation" field.
func (u *PatientUpsertOne) ClearOccupation() *PatientUpsertOne {
	return u.Update(func(s *PatientUpsert) {
		s.ClearOccupation()
	})
}

// SetMedicalCoverageID sets the "medical_coverage_id" field.
func (u *PatientUpsertOne) SetMedicalCoverageID(v int) *PatientUpsertOne {
	return u.Update(func(s *PatientUpsert) {
		s.SetMedicalCoverageID(v)
	})
}

// AddMedicalCoverageID adds v to the "medical_coverage_id" field.
func (u *PatientUpsertOne) AddMedicalCoverageID(v int) *PatientUpsertOne {
	return u.Update(func(s *PatientUpsert) {
		s.AddMedicalCoverageID(v)
	})
}

// UpdateMedicalCoverageID sets the "medical_coverage_id" field to the value that was provided on create.
func (u *PatientUpsertOne) UpdateMedicalCoverageID() *PatientUpsertOne {
	return u.Update(func(s *PatientUpsert) {
		s.UpdateMedicalCoverageID()
	})
}

// ClearMedicalCoverageID clears the value of the "medical_coverage_id" field.
func (u *PatientUpsertOne) ClearMedicalCoverageID() *PatientUpsertOne {
	return u.Update(func(s *PatientUpsert) {
		s.ClearMedicalCoverageID()
	})
}

// SetMedicalCoverageName sets the "medical_coverage_name" field.
func (u *PatientUpsertOne) SetMedicalCoverageName(v string) *PatientUpsertOne {
	return u.Update(func(s *PatientUpsert) {
		s.SetMedicalCoverageName(v)
	})
}

// UpdateMedicalCoverageName sets the "medical_coverage_name" field to the value that was provided on create.
func (u *PatientUpsertOne) UpdateMedicalCoverageName() *PatientUpsertOne {
	return u.Update(func(s *PatientUpsert) {
		s.UpdateMedicalCoverageName()
	})
}

// ClearMedicalCoverageName clears the value of the "medical_coverage_name" field.
func (u *PatientUpsertOne) ClearMedicalCoverageName() *PatientUpsertOne {
	return u.Update(func(s *PatientUpsert) {
		s.ClearMedicalCoverageName()
	})
}

// SetMemberNumber sets the "member_number" field.
func (u *PatientUpsertOne) SetMemberNumber(v string) *PatientUpsertOne {
	return u.Update(func(s *PatientUpsert) {
		s.SetMemberNumber(v)
	})
}

// UpdateMemberNumber sets the "member_number" field to the value that was provided on create.
func (u *PatientUpsertOne) UpdateMemberNumber() *PatientUpsertOne {
	return u.Update(func(s *PatientUpsert) {
		s.UpdateMemberNumber()
	})
}

// ClearMemberNumber clears the value of the "member_number" field.
func (u *PatientUpsertOne) ClearMemberNumber() *PatientUpsertOne {
	return u.Update(func(s *PatientUpsert) {
		s.ClearMemberNumber()
	})
}

// Exec executes the query.
func (u *PatientUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for PatientCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *PatientUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *PatientUpsertOne) ID(ctx context.Context) (id uuid.UUID, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("repo: PatientUpsertOne.ID is not supported by MySQL driver. Use PatientUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *PatientUpsertOne) IDX(ctx context.Context) uuid.UUID {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// PatientCreateBulk is the builder for creating many Patient entities in bulk.
type PatientCreateBulk struct {
	config
	err      error
	builders []*PatientCreate
	conflict []sql.ConflictOption
}

// Save creates the Patient entities in the database.
func (_c *PatientCreateBulk) Save(ctx context.Context) ([]*Patient, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Patient, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*PatientMutation)
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
func (_c *PatientCreateBulk) SaveX(ctx context.Context) []*Patient {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PatientCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PatientCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Patient.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.PatientUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *PatientCreateBulk) OnConflict(opts ...sql.ConflictOption) *PatientUpsertBulk {
	_c.conflict = opts
	return &PatientUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Patient.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *PatientCreateBulk) OnConflictColumns(columns ...string) *PatientUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &PatientUpsertBulk{
		create: _c,
	}
}

// PatientUpsertBulk is the builder for "upsert"-ing
// a bulk of Patient nodes.
type PatientUpsertBulk struct {
	create *PatientCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Patient.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(patient.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *PatientUpsertBulk) UpdateNewValues() *PatientUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(patient.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(patient.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Patient.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *PatientUpsertBulk) Ignore() *PatientUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *PatientUpsertBulk) DoNothing() *PatientUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the PatientCreateBulk.OnConflict
// documentation for more info.
func (u *PatientUpsertBulk) Update(set func(*PatientUpsert)) *PatientUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&PatientUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *PatientUpsertBulk) SetUpdatedAt(v time.Time) *PatientUpsertBulk {
	return u.Update(func(s *PatientUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *PatientUpsertBulk) UpdateUpdatedAt() *PatientUpsertBulk {
	return u.Update(func(s *PatientUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetUserID sets the "user_id" field.
func (u *PatientUpsertBulk) SetUserID(v uuid.UUID) *PatientUpsertBulk {
	return u.Update(func(s *PatientUpsert) {
		s.SetUserID(v)
	})
}

// UpdateUserID sets the "user_id" field to the value that was provided on create.
func (u *PatientUpsertBulk) UpdateUserID() *PatientUpsertBulk {
	return u.Update(func(s *PatientUpsert) {
		s.UpdateUserID()
	})
}

// SetOccupation sets the "occupation" field.
func (u *PatientUpsertBulk) SetOccupation(v string) *PatientUpsertBulk {
	return u.Update(func(s *PatientUpsert) {
		s.SetOccupation(v)
	})
}

// UpdateOccupation sets the "occupation" field to the value that was provided on create.
func (u *PatientUpsertBulk) UpdateOccupation() *PatientUpsertBulk {
	return u.Update(func(s *PatientUpsert) {
		s.UpdateOccupation()
	})
}

// ClearOccupation clears the value of the "occupation" field.
func (u *PatientUpsertBulk) ClearOccupation() *PatientUpsertBulk {
	return u.Update(func(s *PatientUpsert) {
		s.ClearOccupation()
	})
}

// SetMedicalCoverageID sets the "medical_coverage_id" field.
func (u *PatientUpsertBulk) SetMedicalCoverageID(v int) *PatientUpsertBulk {
	return u.Update(func(s *PatientUpsert) {
		s.SetMedicalCoverageID(v)
	})
}

// AddMedicalCoverageID adds v to the "medical_coverage_id" field.
func (u *PatientUpsertBulk) AddMedicalCoverageID(v int) *PatientUpsertBulk {
	return u.Update(func(s *PatientUpsert) {
		s.AddMedicalCoverageID(v)
	})
}

// UpdateMedicalCoverageID sets the "medical_coverage_id" field to the value that was provided on create.
func (u *PatientUpsertBulk) UpdateMedicalCoverageID() *PatientUpsertBulk {
	return u.Update(func(s *PatientUpsert) {
		s.UpdateMedicalCoverageID()
	})
}

// ClearMedicalCoverageID clears the value of the "medical_coverage_id" field.
func (u *PatientUpsertBulk) ClearMedicalCoverageID() *PatientUpsertBulk {
	return u.Update(func(s *PatientUpsert) {
		s.ClearMedicalCoverageID()
	})
}

// SetMedicalCoverageName sets the "medical_coverage_name" field.
func (u *PatientUpsertBulk) SetMedicalCoverageName(v string) *PatientUpsertBulk {
	return u.Update(func(s *PatientUpsert) {
		s.SetMedicalCoverageName(v)
	})
}

// UpdateMedicalCoverageName sets the "medical_coverage_name" field to the value that was provided on create.
func (u *PatientUpsertBulk) UpdateMedicalCoverageName() *PatientUpsertBulk {
	return u.Update(func(s *PatientUpsert) {
		s.UpdateMedicalCoverageName()
	})
}

// ClearMedicalCoverageName clears the value of the "medical_coverage_name" field.
func (u *PatientUpsertBulk) ClearMedicalCoverageName() *PatientUpsertBulk {
	return u.Update(func(s *PatientUpsert) {
		s.ClearMedicalCoverageName()
	})
}

// SetMemberNumber sets the "member_number" field.
func (u *PatientUpsertBulk) SetMemberNumber(v string) *PatientUpsertBulk {
	return u.Update(func(s *PatientUpsert) {
		s.SetMemberNumber(v)
	})
}

// UpdateMemberNumber sets the "member_number" field to the value that was provided on create.
func (u *PatientUpsertBulk) UpdateMemberNumber() *PatientUpsertBulk {
	return u.Update(func(s *PatientUpsert) {
		s.UpdateMemberNumber()
	})
}

// ClearMemberNumber clears the value of the "member_number" field.
func (u *PatientUpsertBulk) ClearMemberNumber() *PatientUpsertBulk {
	return u.Update(func(s *PatientUpsert) {
		s.ClearMemberNumber()
	})
}

// Exec executes the query.
func (u *PatientUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("repo: OnConflict was set for builder %d. Set it on the PatientCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for PatientCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *PatientUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
