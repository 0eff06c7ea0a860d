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
	"github.com/fertitrack/fertitrack_backend/internal/repo/medicalhistory"
	"github.com/fertitrack/fertitrack_backend/internal/repo/patient"
	"github.com/fertitrack/fertitrack_backend/internal/repo/predicate"
	"github.com/google/uuid"
)

// MedicalHistoryUpdate is the builder for updating MedicalHistory entities.
type MedicalHistoryUpdate struct {
	config
	hooks    []Hook
	mutation *MedicalHistoryMutation
}

// Where appends a list predicates to the MedicalHistoryUpdate builder.
func (_u *MedicalHistoryUpdate) Where(ps ...predicate.MedicalHistory) *MedicalHistoryUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *MedicalHistoryUpdate) SetUpdatedAt(v time.Time) *MedicalHistoryUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetPatientID sets the "patient_id" field.
func (_u *MedicalHistoryUpdate) SetPatientID(v uuid.UUID) *MedicalHistoryUpdate {
	_u.mutation.SetPatientID(v)
	return _u
}

// SetNillablePatientID sets the "patient_id" field if the given value is not nil.
func (_u *MedicalHistoryUpdate) SetNillablePatientID(v *uuid.UUID) *MedicalHistoryUpdate {
	if v != nil {
		_u.SetPatientID(*v)
	}
	return _u
}

// SetClinicalBackground sets the "clinical_background" field.
func (_u *MedicalHistoryUpdate) SetClinicalBackground(v string) *MedicalHistoryUpdate {
	_u.mutation.SetClinicalBackground(v)
	return _u
}

// SetNillableClinicalBackground sets the "clinical_background" field if the given value is not nil.
func (_u *MedicalHistoryUpdate) SetNillableClinicalBackground(v *string) *MedicalHistoryUpdate {
	if v != nil {
		_u.SetClinicalBackground(*v)
	}
	return _u
}

// ClearClinicalBackground clears the value of the "clinical_background" field.
func (_u *MedicalHistoryUpdate) ClearClinicalBackground() *MedicalHistoryUpdate {
	_u.mutation.ClearClinicalBackground()
	return _u
}

// SetSurgicalBackground sets the "surgical_background" field.
func (_u *MedicalHistoryUpdate) SetSurgicalBackground(v string) *MedicalHistoryUpdate {
	_u.mutation.SetSurgicalBackground(v)
	return _u
}

// SetNillableSurgicalBackground sets the "surgical_background" field if the given value is not nil.
func (_u *MedicalHistoryUpdate) SetNillableSurgicalBackground(v *string) *MedicalHistoryUpdate {
	if v != nil {
		_u.SetSurgicalBackground(*v)
	}
	return _u
}

// ClearSurgicalBackground clears the value of the "surgical_background" field.
func (_u *MedicalHistoryUpdate) ClearSurgicalBackground() *MedicalHistoryUpdate {
	_u.mutation.ClearSurgicalBackground()
	return _u
}

// SetPersonalBackground sets the "personal_background" field.
func (_u *MedicalHistoryUpdate) SetPersonalBackground(v string) *MedicalHistoryUpdate {
	_u.mutation.SetPersonalBackground(v)
	return _u
}

// SetNillablePersonalBackground sets the "personal_background" field if the given value is not nil.
func (_u *MedicalHistoryUpdate) SetNillablePersonalBackground(v *string) *MedicalHistoryUpdate {
	if v != nil {
		_u.SetPersonalBackground(*v)
	}
	return _u
}

// ClearPersonalBackground clears the value of the "personal_background" field.
func (_u *MedicalHistoryUpdate) ClearPersonalBackground() *MedicalHistoryUpdate {
	_u.mutation.ClearPersonalBackground()
	return _u
}

// SetFamilyBackground sets the "family_background" field.
func (_u *MedicalHistoryUpdate) SetFamilyBackground(v string) *MedicalHistoryUpdate {
	_u.mutation.SetFamilyBackground(v)
	return _u
}

// SetNillableFamilyBackground sets the "family_background" field if the given value is not nil.
func (_u *MedicalHistoryUpdate) SetNillableFamilyBackground(v *string) *MedicalHistoryUpdate {
	if v != nil {
		_u.SetFamilyBackground(*v)
	}
	return _u
}

// ClearFamilyBackground clears the value of the "family_background" field.
func (_u *MedicalHistoryUpdate) ClearFamilyBackground() *MedicalHistoryUpdate {
	_u.mutation.ClearFamilyBackground()
	return _u
}

// SetGynecologicalBackground sets the "gynecological_background" field.
func (_u *MedicalHistoryUpdate) SetGynecologicalBackground(v string) *MedicalHistoryUpdate {
	_u.mutation.SetGynecologicalBackground(v)
	return _u
}

// SetNillableGynecologicalBackground sets the "gynecological_background" field if the given value is not nil.
func (_u *MedicalHistoryUpdate) SetNillableGynecologicalBackground(v *string) *MedicalHistoryUpdate {
	if v != nil {
		_u.SetGynecologicalBackground(*v)
	}
	return _u
}

// ClearGynecologicalBackground clears the value of the "gynecological_background" field.
func (_u *MedicalHistoryUpdate) ClearGynecologicalBackground() *MedicalHistoryUpdate {
	_u.mutation.ClearGynecologicalBackground()
	return _u
}

// SetPhysicalExam sets the "physical_exam" field.
func (_u *MedicalHistoryUpdate) SetPhysicalExam(v string) *MedicalHistoryUpdate {
	_u.mutation.SetPhysicalExam(v)
	return _u
}

// SetNillablePhysicalExam sets the "physical_exam" field if the given value is not nil.
func (_u *MedicalHistoryUpdate) SetNillablePhysicalExam(v *string) *MedicalHistoryUpdate {
	if v != nil {
		_u.SetPhysicalExam(*v)
	}
	return _u
}

// ClearPhysicalExam clears the value of the "physical_exam" field.
func (_u *MedicalHistoryUpdate) ClearPhysicalExam() *MedicalHistoryUpdate {
	_u.mutation.ClearPhysicalExam()
	return _u
}

// SetPhenotype sets the "phenotype" field.
func (_u *MedicalHistoryUpdate) SetPhenotype(v string) *MedicalHistoryUpdate {
	_u.mutation.SetPhenotype(v)
	return _u
}

// SetNillablePhenotype sets the "phenotype" field if the given value is not nil.
func (_u *MedicalHistoryUpdate) SetNillablePhenotype(v *string) *MedicalHistoryUpdate {
	if v != nil {
		_u.SetPhenotype(*v)
	}
	return _u
}

// ClearPhenotype clears the value of the "phenotype" field.
func (_u *MedicalHistoryUpdate) ClearPhenotype() *MedicalHistoryUpdate {
	_u.mutation.ClearPhenotype()
	return _u
}

// SetPatient sets the "patient" edge to the Patient entity.
func (_u *MedicalHistoryUpdate) SetPatient(v *Patient) *MedicalHistoryUpdate {
	return _u.SetPatientID(v.ID)
}

// Mutation returns the MedicalHistoryMutation object of the builder.
func (_u *MedicalHistoryUpdate) Mutation() *MedicalHistoryMutation {
	return _u.mutation
}

// ClearPatient clears the "patient" edge to the Patient entity.
func (_u *MedicalHistoryUpdate) ClearPatient() *MedicalHistoryUpdate {
	_u.mutation.ClearPatient()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *MedicalHistoryUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *MedicalHistoryUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *MedicalHistoryUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *MedicalHistoryUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *MedicalHistoryUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := medicalhistory.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *MedicalHistoryUpdate) check() error {
	if _u.mutation.PatientCleared() && len(_u.mutation.PatientIDs()) > 0 {
		return errors.New(`repo: clearing a required unique edge "MedicalHistory.patient"`)
	}
	return nil
}

func (_u *MedicalHistoryUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(medicalhistory.Table, medicalhistory.Columns, sqlgraph.NewFieldSpec(medicalhistory.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(medicalhistory.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.ClinicalBackground(); ok {
		_spec.SetField(medicalhistory.FieldClinicalBackground, field.TypeString, value)
	}
	if _u.mutation.ClinicalBackgroundCleared() {
		_spec.ClearField(medicalhistory.FieldClinicalBackground, field.TypeString)
	}
	if value, ok := _u.mutation.SurgicalBackground(); ok {
		_spec.SetField(medicalhistory.FieldSurgicalBackground, field.TypeString, value)
	}
	if _u.mutation.SurgicalBackgroundCleared() {
		_spec.ClearField(medicalhistory.FieldSurgicalBackground, field.TypeString)
	}
	if value, ok := _u.mutation.PersonalBackground(); ok {
		_spec.SetField(medicalhistory.FieldPersonalBackground, field.TypeString, value)
	}
	if _u.mutation.PersonalBackgroundCleared() {
		_spec.ClearField(medicalhistory.FieldPersonalBackground, field.TypeString)
	}
	if value, ok := _u.mutation.FamilyBackground(); ok {
		_spec.SetField(medicalhistory.FieldFamilyBackground, field.TypeString, value)
	}
	if _u.mutation.FamilyBackgroundCleared() {
		_spec.ClearField(medicalhistory.FieldFamilyBackground, field.TypeString)
	}
	if value, ok := _u.mutation.GynecologicalBackground(); ok {
		_spec.SetField(medicalhistory.FieldGynecologicalBackground, field.TypeString, value)
	}
	if _u.mutation.GynecologicalBackgroundCleared() {
		_spec.ClearField(medicalhistory.FieldGynecologicalBackground, field.TypeString)
	}
	if value, ok := _u.mutation.PhysicalExam(); ok {
		_spec.SetField(medicalhistory.FieldPhysicalExam, field.TypeString, value)
	}
	if _u.mutation.PhysicalExamCleared() {
		_spec.ClearField(medicalhistory.FieldPhysicalExam, field.TypeString)
	}
	if value, ok := _u.mutation.Phenotype(); ok {
		_spec.SetField(medicalhistory.FieldPhenotype, field.TypeString, value)
	}
	if _u.mutation.PhenotypeCleared() {
		_spec.ClearField(medicalhistory.FieldPhenotype, field.TypeString)
	}
	if _u.mutation.PatientCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.PatientIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{medicalhistory.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// MedicalHistoryUpdateOne is the builder for updating a single MedicalHistory entity.
type MedicalHistoryUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *MedicalHistoryMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *MedicalHistoryUpdateOne) SetUpdatedAt(v time.Time) *MedicalHistoryUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetPatientID sets the "patient_id" field.
func (_u *MedicalHistoryUpdateOne) SetPatientID(v uuid.UUID) *MedicalHistoryUpdateOne {
	_u.mutation.SetPatientID(v)
	return _u
}

// SetNillablePatientID sets the "patient_id" field if the given value is not nil.
func (_u *MedicalHistoryUpdateOne) SetNillablePatientID(v *uuid.UUID) *MedicalHistoryUpdateOne {
	if v != nil {
		_u.SetPatientID(*v)
	}
	return _u
}

// SetClinicalBackground sets the "clinical_background" field.
func (_u *MedicalHistoryUpdateOne) SetClinicalBackground(v string) *MedicalHistoryUpdateOne {
	_u.mutation.SetClinicalBackground(v)
	return _u
}

// SetNillableClinicalBackground sets the "clinical_background" field if the given value is not nil.
func (_u *MedicalHistoryUpdateOne) SetNillableClinicalBackground(v *string) *MedicalHistoryUpdateOne {
	if v != nil {
		_u.SetClinicalBackground(*v)
	}
	return _u
}

// ClearClinicalBackground clears the value of the "clinical_background" field.
func (_u *MedicalHistoryUpdateOne) ClearClinicalBackground() *MedicalHistoryUpdateOne {
	_u.mutation.ClearClinicalBackground()
	return _u
}

// SetSurgicalBackground sets the "surgical_background" field.
func (_u *MedicalHistoryUpdateOne) SetSurgicalBackground(v string) *MedicalHistoryUpdateOne {
	_u.mutation.SetSurgicalBackground(v)
	return _u
}

// SetNillableSurgicalBackground sets the "surgical_background" field if the given value is not nil.
func (_u *MedicalHistoryUpdateOne) SetNillableSurgicalBackground(v *string) *MedicalHistoryUpdateOne {
	if v != nil {
		_u.SetSurgicalBackground(*v)
	}
	return _u
}

// ClearSurgicalBackground clears the value of the "surgical_background" field.
func (_u *MedicalHistoryUpdateOne) ClearSurgicalBackground() *MedicalHistoryUpdateOne {
	_u.mutation.ClearSurgicalBackground()
	return _u
}

// SetPersonalBackground sets the "personal_background" field.
func (_u *MedicalHistoryUpdateOne) SetPersonalBackground(v string) *MedicalHistoryUpdateOne {
	_u.mutation.SetPersonalBackground(v)
	return _u
}

// SetNillablePersonalBackground sets the "personal_background" field if the given value is not nil.
func (_u *MedicalHistoryUpdateOne) SetNillablePersonalBackground(v *string) *MedicalHistoryUpdateOne {
	if v != nil {
		_u.SetPersonalBackground(*v)
	}
	return _u
}

// ClearPersonalBackground clears the value of the "personal_background" field.
func (_u *MedicalHistoryUpdateOne) ClearPersonalBackground() *MedicalHistoryUpdateOne {
	_u.mutation.ClearPersonalBackground()
	return _u
}

// SetFamilyBackground sets the "family_background" field.
func (_u *MedicalHistoryUpdateOne) SetFamilyBackground(v string) *MedicalHistoryUpdateOne {
	_u.mutation.SetFamilyBackground(v)
	return _u
}

// SetNillableFamilyBackground sets the "family_background" field if the given value is not nil.
func (_u *MedicalHistoryUpdateOne) SetNillableFamilyBackground(v *string) *MedicalHistoryUpdateOne {
	if v != nil {
		_u.SetFamilyBackground(*v)
	}
	return _u
}

// ClearFamilyBackground clears the value of the "family_background" field.
func (_u *MedicalHistoryUpdateOne) ClearFamilyBackground() *MedicalHistoryUpdateOne {
	_u.mutation.ClearFamilyBackground()
	return _u
}

// SetGynecologicalBackground sets the "gynecological_background" field.
func (_u *MedicalHistoryUpdateOne) SetGynecologicalBackground(v string) *MedicalHistoryUpdateOne {
	_u.mutation.SetGynecologicalBackground(v)
	return _u
}

// SetNillableGynecologicalBackground sets the "gynecological_background" field if the given value is not nil.
func (_u *MedicalHistoryUpdateOne) SetNillableGynecologicalBackground(v *string) *MedicalHistoryUpdateOne {
	if v != nil {
		_u.SetGynecologicalBackground(*v)
	}
	return _u
}

// ClearGynecologicalBackground clears the value of the "gynecological_background" field.
func (_u *MedicalHistoryUpdateOne) ClearGynecologicalBackground() *MedicalHistoryUpdateOne {
	_u.mutation.ClearGynecologicalBackground()
	return _u
}

// SetPhysicalExam sets the "physical_exam" field.
func (_u *MedicalHistoryUpdateOne) SetPhysicalExam(v string) *MedicalHistoryUpdateOne {
	_u.mutation.SetPhysicalExam(v)
	return _u
}

// SetNillablePhysicalExam sets the "physical_exam" field if the given value is not nil.
func (_u *MedicalHistoryUpdateOne) SetNillablePhysicalExam(v *string) *MedicalHistoryUpdateOne {
	if v != nil {
		_u.SetPhysicalExam(*v)
	}
	return _u
}

// ClearPhysicalExam clears the value of the "physical_exam" field.
func (_u *MedicalHistoryUpdateOne) ClearPhysicalExam() *MedicalHistoryUpdateOne {
	_u.mutation.ClearPhysicalExam()
	return _u
}

// SetPhenotype sets the "phenotype" field.
func (_u *MedicalHistoryUpdateOne) SetPhenotype(v string) *MedicalHistoryUpdateOne {
	_u.mutation.SetPhenotype(v)
	return _u
}

// SetNillablePhenotype sets the "phenotype" field if the given value is not nil.
func (_u *MedicalHistoryUpdateOne) SetNillablePhenotype(v *string) *MedicalHistoryUpdateOne {
	if v != nil {
		_u.SetPhenotype(*v)
	}
	return _u
}

// ClearPhenotype clears the value of the "phenotype" field.
func (_u *MedicalHistoryUpdateOne) ClearPhenotype() *MedicalHistoryUpdateOne {
	_u.mutation.ClearPhenotype()
	return _u
}

// SetPatient sets the "patient" edge to the Patient entity.
func (_u *MedicalHistoryUpdateOne) SetPatient(v *Patient) *MedicalHistoryUpdateOne {
	return _u.SetPatientID(v.ID)
}

// Mutation returns the MedicalHistoryMutation object of the builder.
func (_u *MedicalHistoryUpdateOne) Mutation() *MedicalHistoryMutation {
	return _u.mutation
}

// ClearPatient clears the "patient" edge to the Patient entity.
func (_u *MedicalHistoryUpdateOne) ClearPatient() *MedicalHistoryUpdateOne {
	_u.mutation.ClearPatient()
	return _u
}

// Where appends a list predicates to the MedicalHistoryUpdate builder.
func (_u *MedicalHistoryUpdateOne) Where(ps ...predicate.MedicalHistory) *MedicalHistoryUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *MedicalHistoryUpdateOne) Select(field string, fields ...string) *MedicalHistoryUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated MedicalHistory entity.
func (_u *MedicalHistoryUpdateOne) Save(ctx context.Context) (*MedicalHistory, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *MedicalHistoryUpdateOne) SaveX(ctx context.Context) *MedicalHistory {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *MedicalHistoryUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *MedicalHistoryUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *MedicalHistoryUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := medicalhistory.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *MedicalHistoryUpdateOne) check() error {
	if _u.mutation.PatientCleared() && len(_u.mutation.PatientIDs()) > 0 {
		return errors.New(`repo: clearing a required unique edge "MedicalHistory.patient"`)
	}
	return nil
}

func (_u *MedicalHistoryUpdateOne) sqlSave(ctx context.Context) (_node *MedicalHistory, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(medicalhistory.Table, medicalhistory.Columns, sqlgraph.NewFieldSpec(medicalhistory.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`repo: missing "MedicalHistory.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, medicalhistory.FieldID)
		for _, f := range fields {
			if !medicalhistory.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("repo: invalid field %q for query", f)}
			}
			if f != medicalhistory.FieldID {
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
		_spec.SetField(medicalhistory.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.ClinicalBackground(); ok {
		_spec.SetField(medicalhistory.FieldClinicalBackground, field.TypeString, value)
	}
	if _u.mutation.ClinicalBackgroundCleared() {
		_spec.ClearField(medicalhistory.FieldClinicalBackground, field.TypeString)
	}
	if value, ok := _u.mutation.SurgicalBackground(); ok {
		_spec.SetField(medicalhistory.FieldSurgicalBackground, field.TypeString, value)
	}
	if _u.mutation.SurgicalBackgroundCleared() {
		_spec.ClearField(medicalhistory.FieldSurgicalBackground, field.TypeString)
	}
	if value, ok := _u.mutation.PersonalBackground(); ok {
		_spec.SetField(medicalhistory.FieldPersonalBackground, field.TypeString, value)
	}
	if _u.mutation.PersonalBackgroundCleared() {
		_spec.ClearField(medicalhistory.FieldPersonalBackground, field.TypeString)
	}
	if value, ok := _u.mutation.FamilyBackground(); ok {
		_spec.SetField(medicalhistory.FieldFamilyBackground, field.TypeString, value)
	}
	if _u.mutation.FamilyBackgroundCleared() {
		_spec.ClearField(medicalhistory.FieldFamilyBackground, field.TypeString)
	}
	if value, ok := _u.mutation.GynecologicalBackground(); ok {
		_spec.SetField(medicalhistory.FieldGynecologicalBackground, field.TypeString, value)
	}
	if _u.mutation.GynecologicalBackgroundCleared() {
		_spec.ClearField(medicalhistory.FieldGynecologicalBackground, field.TypeString)
	}
	if value, ok := _u.mutation.PhysicalExam(); ok {
		_spec.SetField(medicalhistory.FieldPhysicalExam, field.TypeString, value)
	}
	if _u.mutation.PhysicalExamCleared() {
		_spec.ClearField(medicalhistory.FieldPhysicalExam, field.TypeString)
	}
	if value, ok := _u.mutation.Phenotype(); ok {
		_spec.SetField(medicalhistory.FieldPhenotype, field.TypeString, value)
	}
	if _u.mutation.PhenotypeCleared() {
		_spec.ClearField(medicalhistory.FieldPhenotype, field.TypeString)
	}
	if _u.mutation.PatientCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.PatientIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &MedicalHistory{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{medicalhistory.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
