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
	"github.com/fertitrack/fertitrack_backend/internal/repo/partner"
	"github.com/fertitrack/fertitrack_backend/internal/repo/patient"
	"github.com/fertitrack/fertitrack_backend/internal/repo/predicate"
	"github.com/fertitrack/fertitrack_backend/internal/repo/treatment"
	"github.com/fertitrack/fertitrack_backend/internal/repo/user"
	"github.com/google/uuid"
)

// PatientUpdate is the builder for updating Patient entities.
type PatientUpdate struct {
	config
	hooks    []Hook
	mutation *PatientMutation
}

// Where appends a list predicates to the PatientUpdate builder.
func (_u *PatientUpdate) Where(ps ...predicate.Patient) *PatientUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *PatientUpdate) SetUpdatedAt(v time.Time) *PatientUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *PatientUpdate) SetUserID(v uuid.UUID) *PatientUpdate {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *PatientUpdate) SetNillableUserID(v *uuid.UUID) *PatientUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetOccupation sets the "occupation" field.
func (_u *PatientUpdate) SetOccupation(v string) *PatientUpdate {
	_u.mutation.SetOccupation(v)
	return _u
}

// SetNillableOccupation sets the "occupation" field if the given value is not nil.
func (_u *PatientUpdate) SetNillableOccupation(v *string) *PatientUpdate {
	if v != nil {
		_u.SetOccupation(*v)
	}
	return _u
}

// ClearOccupation clears the value of the "occupation" field.
func (_u *PatientUpdate) ClearOccupation() *PatientUpdate {
	_u.mutation.ClearOccupation()
	return _u
}

// SetMedicalCoverageID sets the "medical_coverage_id" field.
func (_u *PatientUpdate) SetMedicalCoverageID(v int) *PatientUpdate {
	_u.mutation.ResetMedicalCoverageID()
	_u.mutation.SetMedicalCoverageID(v)
	return _u
}

// SetNillableMedicalCoverageID sets the "medical_coverage_id" field if the given value is not nil.
func (_u *PatientUpdate) SetNillableMedicalCoverageID(v *int) *PatientUpdate {
	if v != nil {
		_u.SetMedicalCoverageID(*v)
	}
	return _u
}

// AddMedicalCoverageID adds value to the "medical_coverage_id" field.
func (_u *PatientUpdate) AddMedicalCoverageID(v int) *PatientUpdate {
	_u.mutation.AddMedicalCoverageID(v)
	return _u
}

// ClearMedicalCoverageID clears the value of the "medical_coverage_id" field.
func (_u *PatientUpdate) ClearMedicalCoverageID() *PatientUpdate {
	_u.mutation.ClearMedicalCoverageID()
	return _u
}

// SetMedicalCoverageName sets the "medical_coverage_name" field.
func (_u *PatientUpdate) SetMedicalCoverageName(v string) *PatientUpdate {
	_u.mutation.SetMedicalCoverageName(v)
	return _u
}

// SetNillableMedicalCoverageName sets the "medical_coverage_name" field if the given value is not nil.
func (_u *PatientUpdate) SetNillableMedicalCoverageName(v *string) *PatientUpdate {
	if v != nil {
		_u.SetMedicalCoverageName(*v)
	}
	return _u
}

// ClearMedicalCoverageName clears the value of the "medical_coverage_name" field.
func (_u *PatientUpdate) ClearMedicalCoverageName() *PatientUpdate {
	_u.mutation.ClearMedicalCoverageName()
	return _u
}

// SetMemberNumber sets the "member_number" field.
func (_u *PatientUpdate) SetMemberNumber(v string) *PatientUpdate {
	_u.mutation.SetMemberNumber(v)
	return _u
}

// SetNillableMemberNumber sets the "member_number" field if the given value is not nil.
func (_u *PatientUpdate) SetNillableMemberNumber(v *string) *PatientUpdate {
	if v != nil {
		_u.SetMemberNumber(*v)
	}
	return _u
}

// ClearMemberNumber clears the value of the "member_number" field.
func (_u *PatientUpdate) ClearMemberNumber() *PatientUpdate {
	_u.mutation.ClearMemberNumber()
	return _u
}

// SetUser sets the "user" edge to the User entity.
func (_u *PatientUpdate) SetUser(v *User) *PatientUpdate {
	return _u.SetUserID(v.ID)
}

// SetMedicalHistoryID sets the "medical_history" edge to the MedicalHistory entity by ID.
func (_u *PatientUpdate) SetMedicalHistoryID(id uuid.UUID) *PatientUpdate {
	_u.mutation.SetMedicalHistoryID(id)
	return _u
}

// SetNillableMedicalHistoryID sets the "medical_history" edge to the MedicalHistory entity by ID if the given value is not nil.
func (_u *PatientUpdate) SetNillableMedicalHistoryID(id *uuid.UUID) *PatientUpdate {
	if id != nil {
		_u = _u.SetMedicalHistoryID(*id)
	}
	return _u
}

// SetMedicalHistory sets the "medical_history" edge to the MedicalHistory entity.
func (_u *PatientUpdate) SetMedicalHistory(v *MedicalHistory) *PatientUpdate {
	return _u.SetMedicalHistoryID(v.ID)
}

// SetPartnerID sets the "partner" edge to the Partner entity by ID.
func (_u *PatientUpdate) SetPartnerID(id uuid.UUID) *PatientUpdate {
	_u.mutation.SetPartnerID(id)
	return _u
}

// SetNillablePartnerID sets the "partner" edge to the Partner entity by ID if the given value is not nil.
func (_u *PatientUpdate) SetNillablePartnerID(id *uuid.UUID) *PatientUpdate {
	if id != nil {
		_u = _u.SetPartnerID(*id)
	}
	return _u
}

// SetPartner sets the "partner" edge to the Partner entity.
func (_u *PatientUpdate) SetPartner(v *Partner) *PatientUpdate {
	return _u.SetPartnerID(v.ID)
}

// AddTreatmentIDs adds the "treatments" edge to the Treatment entity by IDs.
func (_u *PatientUpdate) AddTreatmentIDs(ids ...uuid.UUID) *PatientUpdate {
	_u.mutation.AddTreatmentIDs(ids...)
	return _u
}

// AddTreatments adds the "treatments" edges to the Treatment entity.
func (_u *PatientUpdate) AddTreatments(v ...*Treatment) *PatientUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddTreatmentIDs(ids...)
}

// Mutation returns the PatientMutation object of the builder.
func (_u *PatientUpdate) Mutation() *PatientMutation {
	return _u.mutation
}

// ClearUser clears the "user" edge to the User entity.
func (_u *PatientUpdate) ClearUser() *PatientUpdate {
	_u.mutation.ClearUser()
	return _u
}

// ClearMedicalHistory clears the "medical_history" edge to the MedicalHistory entity.
func (_u *PatientUpdate) ClearMedicalHistory() *PatientUpdate {
	_u.mutation.ClearMedicalHistory()
	return _u
}

// ClearPartner clears the "partner" edge to the Partner entity.
func (_u *PatientUpdate) ClearPartner() *PatientUpdate {
	_u.mutation.ClearPartner()
	return _u
}

// ClearTreatments clears all "treatments" edges to the Treatment entity.
func (_u *PatientUpdate) ClearTreatments() *PatientUpdate {
	_u.mutation.ClearTreatments()
	return _u
}

// RemoveTreatmentIDs removes the "treatments" edge to Treatment entities by IDs.
func (_u *PatientUpdate) RemoveTreatmentIDs(ids ...uuid.UUID) *PatientUpdate {
	_u.mutation.RemoveTreatmentIDs(ids...)
	return _u
}

// RemoveTreatments removes "treatments" edges to Treatment entities.
func (_u *PatientUpdate) RemoveTreatments(v ...*Treatment) *PatientUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveTreatmentIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *PatientUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PatientUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *PatientUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PatientUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *PatientUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := patient.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PatientUpdate) check() error {
	if v, ok := _u.mutation.Occupation(); ok {
		if err := patient.OccupationValidator(v); err != nil {
			return &ValidationError{Name: "occupation", err: fmt.Errorf(`repo: validator failed for field "Patient.occupation": %w`, err)}
		}
	}
	if v, ok := _u.mutation.MedicalCoverageName(); ok {
		if err := patient.MedicalCoverageNameValidator(v); err != nil {
			return &ValidationError{Name: "medical_coverage_name", err: fmt.Errorf(`repo: validator failed for field "Patient.medical_coverage_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.MemberNumber(); ok {
		if err := patient.MemberNumberValidator(v); err != nil {
			return &ValidationError{Name: "member_number", err: fmt.Errorf(`repo: validator failed for field "Patient.member_number": %w`, err)}
		}
	}
	if _u.mutation.UserCleared() && len(_u.mutation.UserIDs()) > 0 {
		return errors.New(`repo: clearing a required unique edge "Patient.user"`)
	}
	return nil
}

func (_u *PatientUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(patient.Table, patient.Columns, sqlgraph.NewFieldSpec(patient.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(patient.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Occupation(); ok {
		_spec.SetField(patient.FieldOccupation, field.TypeString, value)
	}
	if _u.mutation.OccupationCleared() {
		_spec.ClearField(patient.FieldOccupation, field.TypeString)
	}
	if value, ok := _u.mutation.MedicalCoverageID(); ok {
		_spec.SetField(patient.FieldMedicalCoverageID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMedicalCoverageID(); ok {
		_spec.AddField(patient.FieldMedicalCoverageID, field.TypeInt, value)
	}
	if _u.mutation.MedicalCoverageIDCleared() {
		_spec.ClearField(patient.FieldMedicalCoverageID, field.TypeInt)
	}
	if value, ok := _u.mutation.MedicalCoverageName(); ok {
		_spec.SetField(patient.FieldMedicalCoverageName, field.TypeString, value)
	}
	if _u.mutation.MedicalCoverageNameCleared() {
		_spec.ClearField(patient.FieldMedicalCoverageName, field.TypeString)
	}
	if value, ok := _u.mutation.MemberNumber(); ok {
		_spec.SetField(patient.FieldMemberNumber, field.TypeString, value)
	}
	if _u.mutation.MemberNumberCleared() {
		_spec.ClearField(patient.FieldMemberNumber, field.TypeString)
	}
	if _u.mutation.UserCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.UserIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.MedicalHistoryCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.MedicalHistoryIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.PartnerCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.PartnerIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.TreatmentsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedTreatmentsIDs(); len(nodes) > 0 && !_u.mutation.TreatmentsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.TreatmentsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{patient.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// PatientUpdateOne is the builder for updating a single Patient entity.
type PatientUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *PatientMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *PatientUpdateOne) SetUpdatedAt(v time.Time) *PatientUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *PatientUpdateOne) SetUserID(v uuid.UUID) *PatientUpdateOne {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *PatientUpdateOne) SetNillableUserID(v *uuid.UUID) *PatientUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetOccupation sets the "occupation" field.
func (_u *PatientUpdateOne) SetOccupation(v string) *PatientUpdateOne {
	_u.mutation.SetOccupation(v)
	return _u
}

// SetNillableOccupation sets the "occupation" field if the given value is not nil.
func (_u *PatientUpdateOne) SetNillableOccupation(v *string) *PatientUpdateOne {
	if v != nil {
		_u.SetOccupation(*v)
	}
	return _u
}

// ClearOccupation clears the value of the "occupation" field.
func (_u *PatientUpdateOne) ClearOccupation() *PatientUpdateOne {
	_u.mutation.ClearOccupation()
	return _u
}

// SetMedicalCoverageID sets the "medical_coverage_id" field.
func (_u *PatientUpdateOne) SetMedicalCoverageID(v int) *PatientUpdateOne {
	_u.mutation.ResetMedicalCoverageID()
	_u.mutation.SetMedicalCoverageID(v)
	return _u
}

// SetNillableMedicalCoverageID sets the "medical_coverage_id" field if the given value is not nil.
func (_u *PatientUpdateOne) SetNillableMedicalCoverageID(v *int) *PatientUpdateOne {
	if v != nil {
		_u.SetMedicalCoverageID(*v)
	}
	return _u
}

// AddMedicalCoverageID adds value to the "medical_coverage_id" field.
func (_u *PatientUpdateOne) AddMedicalCoverageID(v int) *PatientUpdateOne {
	_u.mutation.AddMedicalCoverageID(v)
	return _u
}

// ClearMedicalCoverageID clears the value of the "medical_coverage_id" field.
func (_u *PatientUpdateOne) ClearMedicalCoverageID() *PatientUpdateOne {
	_u.mutation.ClearMedicalCoverageID()
	return _u
}

// SetMedicalCoverageName sets the "medical_coverage_name" field.
func (_u *PatientUpdateOne) SetMedicalCoverageName(v string) *PatientUpdateOne {
	_u.mutation.SetMedicalCoverageName(v)
	return _u
}

// SetNillableMedicalCoverageName sets the "medical_coverage_name" field if the given value is not nil.
func (_u *PatientUpdateOne) SetNillableMedicalCoverageName(v *string) *PatientUpdateOne {
	if v != nil {
		_u.SetMedicalCoverageName(*v)
	}
	return _u
}

// ClearMedicalCoverageName clears the value of the "medical_coverage_name" field.
func (_u *PatientUpdateOne) ClearMedicalCoverageName() *PatientUpdateOne {
	_u.mutation.ClearMedicalCoverageName()
	return _u
}

// SetMemberNumber sets the "member_number" field.
func (_u *PatientUpdateOne) SetMemberNumber(v string) *PatientUpdateOne {
	_u.mutation.SetMemberNumber(v)
	return _u
}

// SetNillableMemberNumber sets the "member_number" field if the given value is not nil.
func (_u *PatientUpdateOne) SetNillableMemberNumber(v *string) *PatientUpdateOne {
	if v != nil {
		_u.SetMemberNumber(*v)
	}
	return _u
}

// ClearMemberNumber clears the value of the "member_number" field.
func (_u *PatientUpdateOne) ClearMemberNumber() *PatientUpdateOne {
	_u.mutation.ClearMemberNumber()
	return _u
}

// SetUser sets the "user" edge to the User entity.
func (_u *PatientUpdateOne) SetUser(v *User) *PatientUpdateOne {
	return _u.SetUserID(v.ID)
}

// SetMedicalHistoryID sets the "medical_history" edge to the MedicalHistory entity by ID.
func (_u *PatientUpdateOne) SetMedicalHistoryID(id uuid.UUID) *PatientUpdateOne {
	_u.mutation.SetMedicalHistoryID(id)
	return _u
}

// SetNillableMedicalHistoryID sets the "medical_history" edge to the MedicalHistory entity by ID if the given value is not nil.
func (_u *PatientUpdateOne) SetNillableMedicalHistoryID(id *uuid.UUID) *PatientUpdateOne {
	if id != nil {
		_u = _u.SetMedicalHistoryID(*id)
	}
	return _u
}

// SetMedicalHistory sets the "medical_history" edge to the MedicalHistory entity.
func (_u *PatientUpdateOne) SetMedicalHistory(v *MedicalHistory) *PatientUpdateOne {
	return _u.SetMedicalHistoryID(v.ID)
}

// SetPartnerID sets the "partner" edge to the Partner entity by ID.
func (_u *PatientUpdateOne) SetPartnerID(id uuid.UUID) *PatientUpdateOne {
	_u.mutation.SetPartnerID(id)
	return _u
}

// SetNillablePartnerID sets the "partner" edge to the Partner entity by ID if the given value is not nil.
func (_u *PatientUpdateOne) SetNillablePartnerID(id *uuid.UUID) *PatientUpdateOne {
	if id != nil {
		_u = _u.SetPartnerID(*id)
	}
	return _u
}

// SetPartner sets the "partner" edge to the Partner entity.
func (_u *PatientUpdateOne) SetPartner(v *Partner) *PatientUpdateOne {
	return _u.SetPartnerID(v.ID)
}

// AddTreatmentIDs adds the "treatments" edge to the Treatment entity by IDs.
func (_u *PatientUpdateOne) AddTreatmentIDs(ids ...uuid.UUID) *PatientUpdateOne {
	_u.mutation.AddTreatmentIDs(ids...)
	return _u
}

// AddTreatments adds the "treatments" edges to the Treatment entity.
func (_u *PatientUpdateOne) AddTreatments(v ...*Treatment) *PatientUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddTreatmentIDs(ids...)
}

// Mutation returns the PatientMutation object of the builder.
func (_u *PatientUpdateOne) Mutation() *PatientMutation {
	return _u.mutation
}

// ClearUser clears the "user" edge to the User entity.
func (_u *PatientUpdateOne) ClearUser() *PatientUpdateOne {
	_u.mutation.ClearUser()
	return _u
}

// ClearMedicalHistory clears the "medical_history" edge to the MedicalHistory entity.
func (_u *PatientUpdateOne) ClearMedicalHistory() *PatientUpdateOne {
	_u.mutation.ClearMedicalHistory()
	return _u
}

// ClearPartner clears the "partner" edge to the Partner entity.
func (_u *PatientUpdateOne) ClearPartner() *PatientUpdateOne {
	_u.mutation.ClearPartner()
	return _u
}

// ClearTreatments clears all "treatments" edges to the Treatment entity.
func (_u *PatientUpdateOne) ClearTreatments() *PatientUpdateOne {
	_u.mutation.ClearTreatments()
	return _u
}

// RemoveTreatmentIDs removes the "treatments" edge to Treatment entities by IDs.
func (_u *PatientUpdateOne) RemoveTreatmentIDs(ids ...uuid.UUID) *PatientUpdateOne {
	_u.mutation.RemoveTreatmentIDs(ids...)
	return _u
}

// RemoveTreatments removes "treatments" edges to Treatment entities.
func (_u *PatientUpdateOne) RemoveTreatments(v ...*Treatment) *PatientUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveTreatmentIDs(ids...)
}

// Where appends a list predicates to the PatientUpdate builder.
func (_u *PatientUpdateOne) Where(ps ...predicate.Patient) *PatientUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *PatientUpdateOne) Select(field string, fields ...string) *PatientUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Patient entity.
func (_u *PatientUpdateOne) Save(ctx context.Context) (*Patient, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PatientUpdateOne) SaveX(ctx context.Context) *Patient {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *PatientUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PatientUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *PatientUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := patient.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PatientUpdateOne) check() error {
	if v, ok := _u.mutation.Occupation(); ok {
		if err := patient.OccupationValidator(v); err != nil {
			return &ValidationError{Name: "occupation", err: fmt.Errorf(`repo: validator failed for field "Patient.occupation": %w`, err)}
		}
	}
	if v, ok := _u.mutation.MedicalCoverageName(); ok {
		if err := patient.MedicalCoverageNameValidator(v); err != nil {
			return &ValidationError{Name: "medical_coverage_name", err: fmt.Errorf(`repo: validator failed for field "Patient.medical_coverage_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.MemberNumber(); ok {
		if err := patient.MemberNumberValidator(v); err != nil {
			return &ValidationError{Name: "member_number", err: fmt.Errorf(`repo: validator failed for field "Patient.member_number": %w`, err)}
		}
	}
	if _u.mutation.UserCleared() && len(_u.mutation.UserIDs()) > 0 {
		return errors.New(`repo: clearing a required unique edge "Patient.user"`)
	}
	return nil
}

func (_u *PatientUpdateOne) sqlSave(ctx context.Context) (_node *Patient, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(patient.Table, patient.Columns, sqlgraph.NewFieldSpec(patient.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`repo: missing "Patient.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, patient.FieldID)
		for _, f := range fields {
			if !patient.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("repo: invalid field %q for query", f)}
			}
			if f != patient.FieldID {
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
		_spec.SetField(patient.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Occupation(); ok {
		_spec.SetField(patient.FieldOccupation, field.TypeString, value)
	}
	if _u.mutation.OccupationCleared() {
		_spec.ClearField(patient.FieldOccupation, field.TypeString)
	}
	if value, ok := _u.mutation.MedicalCoverageID(); ok {
		_spec.SetField(patient.FieldMedicalCoverageID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMedicalCoverageID(); ok {
		_spec.AddField(patient.FieldMedicalCoverageID, field.TypeInt, value)
	}
	if _u.mutation.MedicalCoverageIDCleared() {
		_spec.ClearField(patient.FieldMedicalCoverageID, field.TypeInt)
	}
	if value, ok := _u.mutation.MedicalCoverageName(); ok {
		_spec.SetField(patient.FieldMedicalCoverageName, field.TypeString, value)
	}
	if _u.mutation.MedicalCoverageNameCleared() {
		_spec.ClearField(patient.FieldMedicalCoverageName, field.TypeString)
	}
	if value, ok := _u.mutation.MemberNumber(); ok {
		_spec.SetField(patient.FieldMemberNumber, field.TypeString, value)
	}
	if _u.mutation.MemberNumberCleared() {
		_spec.ClearField(patient.FieldMemberNumber, field.TypeString)
	}
	if _u.mutation.UserCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.UserIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.MedicalHistoryCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.MedicalHistoryIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.PartnerCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.PartnerIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.TreatmentsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedTreatmentsIDs(); len(nodes) > 0 && !_u.mutation.TreatmentsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.TreatmentsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Patient{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{patient.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
