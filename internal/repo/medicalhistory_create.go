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
	"github.com/fertitrack/fertitrack_backend/internal/repo/patient"
	"github.com/google/uuid"
)

// MedicalHistoryCreate is the builder for creating a MedicalHistory entity.
type MedicalHistoryCreate struct {
	config
	mutation *MedicalHistoryMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetCreatedAt sets the "created_at" field.
func (_c *MedicalHistoryCreate) SetCreatedAt(v time.Time) *MedicalHistoryCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *MedicalHistoryCreate) SetNillableCreatedAt(v *time.Time) *MedicalHistoryCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *MedicalHistoryCreate) SetUpdatedAt(v time.Time) *MedicalHistoryCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *MedicalHistoryCreate) SetNillableUpdatedAt(v *time.Time) *MedicalHistoryCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetPatientID sets the "patient_id" field.
func (_c *MedicalHistoryCreate) SetPatientID(v uuid.UUID) *MedicalHistoryCreate {
	_c.mutation.SetPatientID(v)
	return _c
}

// SetClinicalBackground sets the "clinical_background" field.
func (_c *MedicalHistoryCreate) SetClinicalBackground(v string) *MedicalHistoryCreate {
	_c.mutation.SetClinicalBackground(v)
	return _c
}

// SetNillableClinicalBackground sets the "clinical_background" field if the given value is not nil.
func (_c *MedicalHistoryCreate) SetNillableClinicalBackground(v *string) *MedicalHistoryCreate {
	if v != nil {
		_c.SetClinicalBackground(*v)
	}
	return _c
}

// SetSurgicalBackground sets the "surgical_background" field.
func (_c *MedicalHistoryCreate) SetSurgicalBackground(v string) *MedicalHistoryCreate {
	_c.mutation.SetSurgicalBackground(v)
	return _c
}

// SetNillableSurgicalBackground sets the "surgical_background" field if the given value is not nil.
func (_c *MedicalHistoryCreate) SetNillableSurgicalBackground(v *string) *MedicalHistoryCreate {
	if v != nil {
		_c.SetSurgicalBackground(*v)
	}
	return _c
}

// SetPersonalBackground sets the "personal_background" field.
func (_c *MedicalHistoryCreate) SetPersonalBackground(v string) *MedicalHistoryCreate {
	_c.mutation.SetPersonalBackground(v)
	return _c
}

// SetNillablePersonalBackground sets the "personal_background" field if the given value is not nil.
func (_c *MedicalHistoryCreate) SetNillablePersonalBackground(v *string) *MedicalHistoryCreate {
	if v != nil {
		_c.SetPersonalBackground(*v)
	}
	return _c
}

// SetFamilyBackground sets the "family_background" field.
func (_c *MedicalHistoryCreate) SetFamilyBackground(v string) *MedicalHistoryCreate {
	_c.mutation.SetFamilyBackground(v)
	return _c
}

// SetNillableFamilyBackground sets the "family_background" field if the given value is not nil.
func (_c *MedicalHistoryCreate) SetNillableFamilyBackground(v *string) *MedicalHistoryCreate {
	if v != nil {
		_c.SetFamilyBackground(*v)
	}
	return _c
}

// SetGynecologicalBackground sets the "gynecological_background" field.
func (_c *MedicalHistoryCreate) SetGynecologicalBackground(v string) *MedicalHistoryCreate {
	_c.mutation.SetGynecologicalBackground(v)
	return _c
}

// SetNillableGynecologicalBackground sets the "gynecological_background" field if the given value is not nil.
func (_c *MedicalHistoryCreate) SetNillableGynecologicalBackground(v *string) *MedicalHistoryCreate {
	if v != nil {
		_c.SetGynecologicalBackground(*v)
	}
	return _c
}

// SetPhysicalExam sets the "physical_exam" field.
func (_c *MedicalHistoryCreate) SetPhysicalExam(v string) *MedicalHistoryCreate {
	_c.mutation.SetPhysicalExam(v)
	return _c
}

// SetNillablePhysicalExam sets the "physical_exam" field if the given value is not nil.
func (_c *MedicalHistoryCreate) SetNillablePhysicalExam(v *string) *MedicalHistoryCreate {
	if v != nil {
		_c.SetPhysicalExam(*v)
	}
	return _c
}

// SetPhenotype sets the "phenotype" field.
func (_c *MedicalHistoryCreate) SetPhenotype(v string) *MedicalHistoryCreate {
	_c.mutation.SetPhenotype(v)
	return _c
}

// SetNillablePhenotype sets the "phenotype" field if the given value is not nil.
func (_c *MedicalHistoryCreate) SetNillablePhenotype(v *string) *MedicalHistoryCreate {
	if v != nil {
		_c.SetPhenotype(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *MedicalHistoryCreate) SetID(v uuid.UUID) *MedicalHistoryCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *MedicalHistoryCreate) SetNillableID(v *uuid.UUID) *MedicalHistoryCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetPatient sets the "patient" edge to the Patient entity.
func (_c *MedicalHistoryCreate) SetPatient(v *Patient) *MedicalHistoryCreate {
	return _c.SetPatientID(v.ID)
}

// Mutation returns the MedicalHistoryMutation object of the builder.
func (_c *MedicalHistoryCreate) Mutation() *MedicalHistoryMutation {
	return _c.mutation
}

// Save creates the MedicalHistory in the database.
func (_c *MedicalHistoryCreate) Save(ctx context.Context) (*MedicalHistory, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *MedicalHistoryCreate) SaveX(ctx context.Context) *MedicalHistory {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *MedicalHistoryCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *MedicalHistoryCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *MedicalHistoryCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := medicalhistory.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := medicalhistory.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := medicalhistory.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *MedicalHistoryCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`repo: missing required field "MedicalHistory.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`repo: missing required field "MedicalHistory.updated_at"`)}
	}
	if _, ok := _c.mutation.PatientID(); !ok {
		return &ValidationError{Name: "patient_id", err: errors.New(`repo: missing required field "MedicalHistory.patient_id"`)}
	}
	if len(_c.mutation.PatientIDs()) == 0 {
		return &ValidationError{Name: "patient", err: errors.New(`repo: missing required edge "MedicalHistory.patient"`)}
	}
	return nil
}

func (_c *MedicalHistoryCreate) sqlSave(ctx context.Context) (*MedicalHistory, error) {
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

func (_c *MedicalHistoryCreate) createSpec() (*MedicalHistory, *sqlgraph.CreateSpec) {
	var (
		_node = &MedicalHistory{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(medicalhistory.Table, sqlgraph.NewFieldSpec(medicalhistory.FieldID, field.TypeUUID))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(medicalhistory.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(medicalhistory.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.ClinicalBackground(); ok {
		_spec.SetField(medicalhistory.FieldClinicalBackground, field.TypeString, value)
		_node.ClinicalBackground = &value
	}
	if value, ok := _c.mutation.SurgicalBackground(); ok {
		_spec.SetField(medicalhistory.FieldSurgicalBackground, field.TypeString, value)
		_node.SurgicalBackground = &value
	}
	if value, ok := _c.mutation.PersonalBackground(); ok {
		_spec.SetField(medicalhistory.FieldPersonalBackground, field.TypeString, value)
		_node.PersonalBackground = &value
	}
	if value, ok := _c.mutation.FamilyBackground(); ok {
		_spec.SetField(medicalhistory.FieldFamilyBackground, field.TypeString, value)
		_node.FamilyBackground = &value
	}
	if value, ok := _c.mutation.GynecologicalBackground(); ok {
		_spec.SetField(medicalhistory.FieldGynecologicalBackground, field.TypeString, value)
		_node.GynecologicalBackground = &value
	}
	if value, ok := _c.mutation.PhysicalExam(); ok {
		_spec.SetField(medicalhistory.FieldPhysicalExam, field.TypeString, value)
		_node.PhysicalExam = &value
	}
	if value, ok := _c.mutation.Phenotype(); ok {
		_spec.SetField(medicalhistory.FieldPhenotype, field.TypeString, value)
		_node.Phenotype = &value
	}
	if nodes := _c.mutation.PatientIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: true,
			Table:   medicalhistory.PatientTable,
			Columns: []string{medicalhistory.PatientColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(patient.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.PatientID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.MedicalHistory.Create().
//		SetCreatedAt(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.MedicalHistoryUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *MedicalHistoryCreate) OnConflict(opts ...sql.ConflictOption) *MedicalHistoryUpsertOne {
	_c.conflict = opts
	return &MedicalHistoryUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.MedicalHistory.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *MedicalHistoryCreate) OnConflictColumns(columns ...string) *MedicalHistoryUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &MedicalHistoryUpsertOne{
		create: _c,
	}
}

type (
	// MedicalHistoryUpsertOne is the builder for "upsert"-ing
	//  one MedicalHistory node.
	MedicalHistoryUpsertOne struct {
		create *MedicalHistoryCreate
	}

	// MedicalHistoryUpsert is the "OnConflict" setter.
	MedicalHistoryUpsert struct {
		*sql.UpdateSet
	}
)

// SetUpdatedAt sets the "updated_at" field.
func (u *MedicalHistoryUpsert) SetUpdatedAt(v time.Time) *MedicalHistoryUpsert {
	u.Set(medicalhistory.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *MedicalHistoryUpsert) UpdateUpdatedAt() *MedicalHistoryUpsert {
	u.SetExcluded(medicalhistory.FieldUpdatedAt)
	return u
}

// SetPatientID sets the "patient_id" field.
func (u *MedicalHistoryUpsert) SetPatientID(v uuid.UUID) *MedicalHistoryUpsert {
	u.Set(medicalhistory.FieldPatientID, v)
	return u
}

// UpdatePatientID sets the "patient_id" field to the value that was provided on create.
func (u *MedicalHistoryUpsert) UpdatePatientID() *MedicalHistoryUpsert {
	u.SetExcluded(medicalhistory.FieldPatientID)
	return u
}

// SetClinicalBackground sets the "clinical_background" field.
func (u *MedicalHistoryUpsert) SetClinicalBackground(v string) *MedicalHistoryUpsert {
	u.Set(medicalhistory.FieldClinicalBackground, v)
	return u
}

// UpdateClinicalBackground sets the "clinical_background" field to the value that was provided on create.
func (u *MedicalHistoryUpsert) UpdateClinicalBackground() *MedicalHistoryUpsert {
	u.SetExcluded(medicalhistory.FieldClinicalBackground)
	return u
}

// ClearClinicalBackground clears the value of the "clinical_background" field.
func (u *MedicalHistoryUpsert) ClearClinicalBackground() *MedicalHistoryUpsert {
	u.SetNull(medicalhistory.FieldClinicalBackground)
	return u
}

// SetSurgicalBackground sets the "surgical_background" field.
func (u *MedicalHistoryUpsert) SetSurgicalBackground(v string) *MedicalHistoryUpsert {
	u.Set(medicalhistory.FieldSurgicalBackground, v)
	return u
}

// UpdateSurgicalBackground sets the "surgical_background" field to the value that was provided on create.
func (u *MedicalHistoryUpsert) UpdateSurgicalBackground() *MedicalHistoryUpsert {
	u.SetExcluded(medicalhistory.FieldSurgicalBackground)
	return u
}

// ClearSurgicalBackground clears the value of the "surgical_background" field.
func (u *MedicalHistoryUpsert) ClearSurgicalBackground() *MedicalHistoryUpsert {
	u.SetNull(medicalhistory.FieldSurgicalBackground)
	return u
}

// SetPersonalBackground sets the "personal_background" field.
func (u *MedicalHistoryUpsert) SetPersonalBackground(v string) *MedicalHistoryUpsert {
	u.Set(medicalhistory.FieldPersonalBackground, v)
	return u
}

// UpdatePersonalBackground sets the "personal_background" field to the value that was provided on create.
func (u *MedicalHistoryUpsert) UpdatePersonalBackground() *MedicalHistoryUpsert {
	u.SetExcluded(medicalhistory.FieldPersonalBackground)
	return u
}

// ClearPersonalBackground clears the value of the "personal_background" field.
func (u *MedicalHistoryUpsert) ClearPersonalBackground() *MedicalHistoryUpsert {
	u.SetNull(medicalhistory.FieldPersonalBackground)
	return u
}

// SetFamilyBackground sets the "family_background" field.
func (u *MedicalHistoryUpsert) SetFamilyBackground(v string) *MedicalHistoryUpsert {
	u.Set(medicalhistory.FieldFamilyBackground, v)
	return u
}

// UpdateFamilyBackground sets the "family_background" field to the value that was provided on create.
func (u *MedicalHistoryUpsert) UpdateFamilyBackground() *MedicalHistoryUpsert {
	u.SetExcluded(medicalhistory.FieldFamilyBackground)
	return u
}

// ClearFamilyBackground clears the value of the "family_background" field.
func (u *MedicalHistoryUpsert) ClearFamilyBackground() *MedicalHistoryUpsert {
	u.SetNull(medicalhistory.FieldFamilyBackground)
	return u
}

// SetGynecologicalBackground sets the "gynecological_background" field.
func (u *MedicalHistoryUpsert) SetGynecologicalBackground(v string) *MedicalHistoryUpsert {
	u.Set(medicalhistory.FieldGynecologicalBackground, v)
	return u
}

// UpdateGynecologicalBackground sets the "gynecological_background" field to the value that was provided on create.
func (u *MedicalHistoryUpsert) UpdateGynecologicalBackground() *MedicalHistoryUpsert {
	u.SetExcluded(medicalhistory.FieldGynecologicalBackground)
	return u
}

// ClearGynecologicalBackground clears the value of the "gynecological_background" field.
func (u *MedicalHistoryUpsert) ClearGynecologicalBackground() *MedicalHistoryUpsert {
	u.SetNull(medicalhistory.FieldGynecologicalBackground)
	return u
}

// SetPhysicalExam sets the "physical_exam" field.
func (u *MedicalHistoryUpsert) SetPhysicalExam(v string) *MedicalHistoryUpsert {
	u.Set(medicalhistory.FieldPhysicalExam, v)
	return u
}

// UpdatePhysicalExam sets the "physical_exam" field to the value that was provided on create.
func (u *MedicalHistoryUpsert) UpdatePhysicalExam() *MedicalHistoryUpsert {
	u.SetExcluded(medicalhistory.FieldPhysicalExam)
	return u
}

// ClearPhysicalExam clears the value of the "physical_exam" field.
func (u *MedicalHistoryUpsert) ClearPhysicalExam() *MedicalHistoryUpsert {
	u.SetNull(medicalhistory.FieldPhysicalExam)
	return u
}

// SetPhenotype sets the "phenotype" field.
func (u *MedicalHistoryUpsert) SetPhenotype(v string) *MedicalHistoryUpsert {
	u.Set(medicalhistory.FieldPhenotype, v)
	return u
}

// UpdatePhenotype sets the "phenotype" field to the value that was provided on create.
func (u *MedicalHistoryUpsert) UpdatePhenotype() *MedicalHistoryUpsert {
	u.SetExcluded(medicalhistory.FieldPhenotype)
	return u
}

// ClearPhenotype clears the value of the "phenotype" field.
func (u *MedicalHistoryUpsert) ClearPhenotype() *MedicalHistoryUpsert {
	u.SetNull(medicalhistory.FieldPhenotype)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.MedicalHistory.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(medicalhistory.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *MedicalHistoryUpsertOne) UpdateNewValues() *MedicalHistoryUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(medicalhistory.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(medicalhistory.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.MedicalHistory.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *MedicalHistoryUpsertOne) Ignore() *MedicalHistoryUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *MedicalHistoryUpsertOne) DoNothing() *MedicalHistoryUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the MedicalHistoryCreate.OnConflict
// documentation for more info.
func (u *MedicalHistoryUpsertOne) Update(set func(*MedicalHistoryUpsert)) *MedicalHistoryUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&MedicalHistoryUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *MedicalHistoryUpsertOne) SetUpdatedAt(v time.Time) *MedicalHistoryUpsertOne {
	return u.Update(func(s *MedicalHistoryUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *MedicalHistoryUpsertOne) UpdateUpdatedAt() *MedicalHistoryUpsertOne {
	return u.Update(func(s *MedicalHistoryUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetPatientID sets the "patient_id" field.
func (u *MedicalHistoryUpsertOne) SetPatientID(v uuid.UUID) *MedicalHistoryUpsertOne {
	return u.Update(func(s *MedicalHistoryUpsert) {
		s.SetPatientID(v)
	})
}

// UpdatePatientID sets the "patient_id" field to the value that was provided on create.
func (u *MedicalHistoryUpsertOne) UpdatePatientID() *MedicalHistoryUpsertOne {
	return u.Update(func(s *MedicalHistoryUpsert) {
		s.UpdatePatientID()
	})
}

// SetClinicalBackground sets the "clinical_background" field.
func (u *MedicalHistoryUpsertOne) SetClinicalBackground(v string) *MedicalHistoryUpsertOne {
	return u.Update(func(s *MedicalHistoryUpsert) {
		s.SetClinicalBackground(v)
	})
}

// UpdateClinicalBackground sets the "clinical_background" field to the value that was provided on create.
func (u *MedicalHistoryUpsertOne) UpdateClinicalBackground() *MedicalHistoryUpsertOne {
	return u.Update(func(s *MedicalHistoryUpsert) {
		s.UpdateClinicalBackground()
	})
}

// ClearClinicalBackground clears the value of the "clinical_background" field.
func (u *MedicalHistoryUpsertOne) ClearClinicalBackground() *MedicalHistoryUpsertOne {
	return u.Update(func(s *MedicalHistoryUpsert) {
		s.ClearClinicalBackground()
	})
}

// SetSurgicalBackground sets the "surgical_background" field.
func (u *MedicalHistoryUpsertOne) SetSurgicalBackground(v string) *MedicalHistoryUpsertOne {
	return u.Update(func(s *MedicalHistoryUpsert) {
		s.SetSurgicalBackground(v)
	})
}

// UpdateSurgicalBackground sets the "surgical_background" field to the value that was provided on create.
func (u *MedicalHistoryUpsertOne) UpdateSurgicalBackground() *MedicalHistoryUpsertOne {
	return u.Update(func(s *MedicalHistoryUpsert) {
		s.UpdateSurgicalBackground()
	})
}

// ClearSurgicalBackground clears the value of the "surgical_background" field.
func (u *MedicalHistoryUpsertOne) ClearSurgicalBackground() *MedicalHistoryUpsertOne {
	return u.Update(func(s *MedicalHistoryUpsert) {
		s.ClearSurgicalBackground()
	})
}

// SetPersonalBackground sets the "personal_background" field.
func (u *MedicalHistoryUpsertOne) SetPersonalBackground(v string) *MedicalHistoryUpsertOne {
	return u.Update(func(s *MedicalHistoryUpsert) {
		s.SetPersonalBackground(v)
	})
}

// UpdatePersonalBackground sets the "personal_background" field to the value that was provided on create.
func (u *MedicalHistoryUpsertOne) UpdatePersonalBackground() *MedicalHistoryUpsertOne {
	return u.Update(func(s *MedicalHistoryUpsert) {
		s.UpdatePersonalBackground()
	})
}

// ClearPersonalBackground clears the value of the "personal_background" field.
func (u *MedicalHistoryUpsertOne) ClearPersonalBackground() *MedicalHistoryUpsertOne {
	return u.Update(func(s *MedicalHistoryUpsert) {
		s.ClearPersonalBackground()
	})
}

// SetFamilyBackground sets the "family_background" field.
func (u *MedicalHistoryUpsertOne) SetFamilyBackground(v string) *MedicalHistoryUpsertOne {
	return u.Update(func(s *MedicalHistoryUpsert) {
		s.SetFamilyBackground(v)
	})
}

// UpdateFamilyBackground sets the "family_background" field to the value that was provided on create.
func (u *MedicalHistoryUpsertOne) UpdateFamilyBackground() *MedicalHistoryUpsertOne {
	return u.Update(func(s *MedicalHistoryUpsert) {
		s.UpdateFamilyBackground()
	})
}

// ClearFamilyBackground clears the value of the "family_background" field.
func (u *MedicalHistoryUpsertOne) ClearFamilyBackground() *MedicalHistoryUpsertOne {
	return u.Update(func(s *MedicalHistoryUpsert) {
		s.ClearFamilyBackground()
	})
}

// SetGynecologicalBackground sets the "gynecological_background" field.
func (u *MedicalHistoryUpsertOne) SetGynecologicalBackground(v string) *MedicalHistoryUpsertOne {
	return u.Update(func(s *MedicalHistoryUpsert) {
		s.SetGynecologicalBackground(v)
	})
}

// UpdateGynecologicalBackground sets the "gynecological_background" field to the value that was provided on create.
func (u *MedicalHistoryUpsertOne) UpdateGynecologicalBackground() *MedicalHistoryUpsertOne {
	return u.Update(func(s *MedicalHistoryUpsert) {
		s.UpdateGynecologicalBackground()
	})
}

// ClearGynecologicalBackground clears the value of the "gynecological_background" field.
func (u *MedicalHistoryUpsertOne) ClearGynecologicalBackground() *MedicalHistoryUpsertOne {
	return u.Update(func(s *MedicalHistoryUpsert) {
		s.ClearGynecologicalBackground()
	})
}

// SetPhysicalExam sets the "physical_exam" field.
func (u *MedicalHistoryUpsertOne) SetPhysicalExam(v string) *MedicalHistoryUpsertOne {
	return u.Update(func(s *MedicalHistoryUpsert) {
		s.SetPhysicalExam(v)
	})
}

// UpdatePhysicalExam sets the "physical_exam" field to the value that was provided on create.
func (u *MedicalHistoryUpsertOne) UpdatePhysicalExam() *MedicalHistoryUpsertOne {
	return u.Update(func(s *MedicalHistoryUpsert) {
		s.UpdatePhysicalExam()
	})
}

// ClearPhysicalExam clears the value of the "physical_exam" field.
func (u *MedicalHistoryUpsertOne) ClearPhysicalExam() *MedicalHistoryUpsertOne {
	return u.Update(func(s *MedicalHistoryUpsert) {
		s.ClearPhysicalExam()
	})
}

// SetPhenotype sets the "phenotype" field.
func (u *MedicalHistoryUpsertOne) SetPhenotype(v string) *MedicalHistoryUpsertOne {
	return u.Update(func(s *MedicalHistoryUpsert) {
		s.SetPhenotype(v)
	})
}

// UpdatePhenotype sets the "phenotype" field to the value that was provided on create.
func (u *MedicalHistoryUpsertOne) UpdatePhenotype() *MedicalHistoryUpsertOne {
	return u.Update(func(s *MedicalHistoryUpsert) {
		s.UpdatePhenotype()
	})
}

// ClearPhenotype clears the value of the "phenotype" field.
func (u *MedicalHistoryUpsertOne) ClearPhenotype() *MedicalHistoryUpsertOne {
	return u.Update(func(s *MedicalHistoryUpsert) {
		s.ClearPhenotype()
	})
}

// Exec executes the query.
func (u *MedicalHistoryUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for MedicalHistoryCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *MedicalHistoryUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *MedicalHistoryUpsertOne) ID(ctx context.Context) (id uuid.UUID, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("repo: MedicalHistoryUpsertOne.ID is not supported by MySQL driver. Use MedicalHistoryUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *MedicalHistoryUpsertOne) IDX(ctx context.Context) uuid.UUID {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// MedicalHistoryCreateBulk is the builder for creating many MedicalHistory entities in bulk.
type MedicalHistoryCreateBulk struct {
	config
	err      error
	builders []*MedicalHistoryCreate
	conflict []sql.ConflictOption
}

// Save creates the MedicalHistory entities in the database.
func (_c *MedicalHistoryCreateBulk) Save(ctx context.Context) ([]*MedicalHistory, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*MedicalHistory, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*MedicalHistoryMutation)
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
func (_c *MedicalHistoryCreateBulk) SaveX(ctx context.Context) []*MedicalHistory {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *MedicalHistoryCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *MedicalHistoryCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.MedicalHistory.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.MedicalHistoryUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *MedicalHistoryCreateBulk) OnConflict(opts ...sql.ConflictOption) *MedicalHistoryUpsertBulk {
	_c.conflict = opts
	return &MedicalHistoryUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.MedicalHistory.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *MedicalHistoryCreateBulk) OnConflictColumns(columns ...string) *MedicalHistoryUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &MedicalHistoryUpsertBulk{
		create: _c,
	}
}

// MedicalHistoryUpsertBulk is the builder for "upsert"-ing
// a bulk of MedicalHistory nodes.
type MedicalHistoryUpsertBulk struct {
	create *MedicalHistoryCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.MedicalHistory.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(medicalhistory.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *MedicalHistoryUpsertBulk) UpdateNewValues() *MedicalHistoryUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(medicalhistory.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(medicalhistory.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.MedicalHistory.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *MedicalHistoryUpsertBulk) Ignore() *MedicalHistoryUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *MedicalHistoryUpsertBulk) DoNothing() *MedicalHistoryUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the MedicalHistoryCreateBulk.OnConflict
// documentation for more info.
func (u *MedicalHistoryUpsertBulk) Update(set func(*MedicalHistoryUpsert)) *MedicalHistoryUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&MedicalHistoryUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *MedicalHistoryUpsertBulk) SetUpdatedAt(v time.Time) *MedicalHistoryUpsertBulk {
	return u.Update(func(s *MedicalHistoryUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *MedicalHistoryUpsertBulk) UpdateUpdatedAt() *MedicalHistoryUpsertBulk {
	return u.Update(func(s *MedicalHistoryUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetPatientID sets the "patient_id" field.
func (u *MedicalHistoryUpsertBulk) SetPatientID(v uuid.UUID) *MedicalHistoryUpsertBulk {
	return u.Update(func(s *MedicalHistoryUpsert) {
		s.SetPatientID(v)
	})
}

// UpdatePatientID sets the "patient_id" field to the value that was provided on create.
func (u *MedicalHistoryUpsertBulk) UpdatePatientID() *MedicalHistoryUpsertBulk {
	return u.Update(func(s *MedicalHistoryUpsert) {
		s.UpdatePatientID()
	})
}

// SetClinicalBackground sets the "clinical_background" field.
func (u *MedicalHistoryUpsertBulk) SetClinicalBackground(v string) *MedicalHistoryUpsertBulk {
	return u.Update(func(s *MedicalHistoryUpsert) {
		s.SetClinicalBackground(v)
	})
}

// UpdateClinicalBackground sets the "clinical_background" field to the value that was provided on create.
func (u *MedicalHistoryUpsertBulk) UpdateClinicalBackground() *MedicalHistoryUpsertBulk {
	return u.Update(func(s *MedicalHistoryUpsert) {
		s.UpdateClinicalBackground()
	})
}

// ClearClinicalBackground clears the value of the "clinical_background" field.
func (u *MedicalHistoryUpsertBulk) ClearClinicalBackground() *MedicalHistoryUpsertBulk {
	return u.Update(func(s *MedicalHistoryUpsert) {
		s.ClearClinicalBackground()
	})
}

// SetSurgicalBackground sets the "surgical_background" field.
func (u *MedicalHistoryUpsertBulk) SetSurgicalBackground(v string) *MedicalHistoryUpsertBulk {
	return u.Update(func(s *MedicalHistoryUpsert) {
		s.SetSurgicalBackground(v)
	})
}

// UpdateSurgicalBackground sets the "surgical_background" field to the value that was provided on create.
func (u *MedicalHistoryUpsertBulk) UpdateSurgicalBackground() *MedicalHistoryUpsertBulk {
	return u.Update(func(s *MedicalHistoryUpsert) {
		s.UpdateSurgicalBackground()
	})
}

// ClearSurgicalBackground clears the value of the "surgical_background" field.
func (u *MedicalHistoryUpsertBulk) ClearSurgicalBackground() *MedicalHistoryUpsertBulk {
	return u.Update(func(s *MedicalHistoryUpsert) {
		s.ClearSurgicalBackground()
	})
}

// SetPersonalBackground sets the "personal_background" field.
func (u *MedicalHistoryUpsertBulk) SetPersonalBackground(v string) *MedicalHistoryUpsertBulk {
	return u.Update(func(s *MedicalHistoryUpsert) {
		s.SetPersonalBackground(v)
	})
}

// UpdatePersonalBackground sets the "personal_background" field to the value that was provided on create.
func (u *MedicalHistoryUpsertBulk) UpdatePersonalBackground() *MedicalHistoryUpsertBulk {
	return u.Update(func(s *MedicalHistoryUpsert) {
		s.UpdatePersonalBackground()
	})
}

// ClearPersonalBackground clears the value of the "personal_background" field.
func (u *MedicalHistoryUpsertBulk) ClearPersonalBackground() *MedicalHistoryUpsertBulk {
	return u.Update(func(s *MedicalHistoryUpsert) {
		s.ClearPersonalBackground()
	})
}

// SetFamilyBackground sets the "family_background" field.
func (u *MedicalHistoryUpsertBulk) SetFamilyBackground(v string) *MedicalHistoryUpsertBulk {
	return u.Update(func(s *MedicalHistoryUpsert) {
		s.SetFamilyBackground(v)
	})
}

// UpdateFamilyBackground sets the "family_background" field to the value that was provided on create.
func (u *MedicalHistoryUpsertBulk) UpdateFamilyBackground() *MedicalHistoryUpsertBulk {
	return u.Update(func(s *MedicalHistoryUpsert) {
		s.UpdateFamilyBackground()
	})
}

// ClearFamilyBackground clears the value of the "family_background" field.
func (u *MedicalHistoryUpsertBulk) ClearFamilyBackground() *MedicalHistoryUpsertBulk {
	return u.Update(func(s *MedicalHistoryUpsert) {
		s.ClearFamilyBackground()
	})
}

// SetGynecologicalBackground sets the "gynecological_background" field.
func (u *MedicalHistoryUpsertBulk) SetGynecologicalBackground(v string) *MedicalHistoryUpsertBulk {
	return u.Update(func(s *MedicalHistoryUpsert) {
		s.SetGynecologicalBackground(v)
	})
}

// UpdateGynecologicalBackground sets the "gynecological_background" field to the value that was provided on create.
func (u *MedicalHistoryUpsertBulk) UpdateGynecologicalBackground() *MedicalHistoryUpsertBulk {
	return u.Update(func(s *MedicalHistoryUpsert) {
		s.UpdateGynecologicalBackground()
	})
}

// ClearGynecologicalBackground clears the value of the "gynecological_background" field.
func (u *MedicalHistoryUpsertBulk) ClearGynecologicalBackground() *MedicalHistoryUpsertBulk {
	return u.Update(func(s *MedicalHistoryUpsert) {
		s.ClearGynecologicalBackground()
	})
}

// SetPhysicalExam sets the "physical_exam" field.
func (u *MedicalHistoryUpsertBulk) SetPhysicalExam(v string) *MedicalHistoryUpsertBulk {
	return u.Update(func(s *MedicalHistoryUpsert) {
		s.SetPhysicalExam(v)
	})
}

// UpdatePhysicalExam sets the "physical_exam" field to the value that was provided on create.
func (u *MedicalHistoryUpsertBulk) UpdatePhysicalExam() *MedicalHistoryUpsertBulk {
	return u.Update(func(s *MedicalHistoryUpsert) {
		s.UpdatePhysicalExam()
	})
}

// ClearPhysicalExam clears the value of the "physical_exam" field.
func (u *MedicalHistoryUpsertBulk) ClearPhysicalExam() *MedicalHistoryUpsertBulk {
	return u.Update(func(s *MedicalHistoryUpsert) {
		s.ClearPhysicalExam()
	})
}

// SetPhenotype sets the "phenotype" field.
func (u *MedicalHistoryUpsertBulk) SetPhenotype(v string) *MedicalHistoryUpsertBulk {
	return u.Update(func(s *MedicalHistoryUpsert) {
		s.SetPhenotype(v)
	})
}

// UpdatePhenotype sets the "phenotype" field to the value that was provided on create.
func (u *MedicalHistoryUpsertBulk) UpdatePhenotype() *MedicalHistoryUpsertBulk {
	return u.Update(func(s *MedicalHistoryUpsert) {
		s.UpdatePhenotype()
	})
}

// ClearPhenotype clears the value of the "phenotype" field.
func (u *MedicalHistoryUpsertBulk) ClearPhenotype() *MedicalHistoryUpsertBulk {
	return u.Update(func(s *MedicalHistoryUpsert) {
		s.ClearPhenotype()
	})
}

// Exec executes the query.
func (u *MedicalHistoryUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("repo: OnConflict was set for builder %d. Set it on the MedicalHistoryCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for MedicalHistoryCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *MedicalHistoryUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
