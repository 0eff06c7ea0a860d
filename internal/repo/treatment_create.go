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
	"github.com/fertitrack/fertitrack_backend/internal/repo/medicalorder"
	"github.com/fertitrack/fertitrack_backend/internal/repo/monitoringday"
	"github.com/fertitrack/fertitrack_backend/internal/repo/patient"
	"github.com/fertitrack/fertitrack_backend/internal/repo/puncture"
	"github.com/fertitrack/fertitrack_backend/internal/repo/studyresult"
	"github.com/fertitrack/fertitrack_backend/internal/repo/treatment"
	"github.com/fertitrack/fertitrack_backend/internal/repo/user"
	"github.com/google/uuid"
)

// TreatmentCreate is the builder for creating a Treatment entity.
type TreatmentCreate struct {
	config
	mutation *TreatmentMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetCreatedAt sets the "created_at" field.
func (_c *TreatmentCreate) SetCreatedAt(v time.Time) *TreatmentCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *TreatmentCreate) SetNillableCreatedAt(v *time.Time) *TreatmentCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *TreatmentCreate) SetUpdatedAt(v time.Time) *TreatmentCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *TreatmentCreate) SetNillableUpdatedAt(v *time.Time) *TreatmentCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetPatientID sets the "patient_id" field.
func (_c *TreatmentCreate) SetPatientID(v uuid.UUID) *TreatmentCreate {
	_c.mutation.SetPatientID(v)
	return _c
}

// SetDoctorID sets the "doctor_id" field.
func (_c *TreatmentCreate) SetDoctorID(v uuid.UUID) *TreatmentCreate {
	_c.mutation.SetDoctorID(v)
	return _c
}

// SetObjective sets the "objective" field.
func (_c *TreatmentCreate) SetObjective(v treatment.Objective) *TreatmentCreate {
	_c.mutation.SetObjective(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *TreatmentCreate) SetStatus(v treatment.Status) *TreatmentCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *TreatmentCreate) SetNillableStatus(v *treatment.Status) *TreatmentCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetStimulationProtocol sets the "stimulation_protocol" field.
func (_c *TreatmentCreate) SetStimulationProtocol(v string) *TreatmentCreate {
	_c.mutation.SetStimulationProtocol(v)
	return _c
}

// SetNillableStimulationProtocol sets the "stimulation_protocol" field if the given value is not nil.
func (_c *TreatmentCreate) SetNillableStimulationProtocol(v *string) *TreatmentCreate {
	if v != nil {
		_c.SetStimulationProtocol(*v)
	}
	return _c
}

// SetMedicationType sets the "medication_type" field.
func (_c *TreatmentCreate) SetMedicationType(v string) *TreatmentCreate {
	_c.mutation.SetMedicationType(v)
	return _c
}

// SetNillableMedicationType sets the "medication_type" field if the given value is not nil.
func (_c *TreatmentCreate) SetNillableMedicationType(v *string) *TreatmentCreate {
	if v != nil {
		_c.SetMedicationType(*v)
	}
	return _c
}

// SetMedicationDose sets the "medication_dose" field.
func (_c *TreatmentCreate) SetMedicationDose(v string) *TreatmentCreate {
	_c.mutation.SetMedicationDose(v)
	return _c
}

// SetNillableMedicationDose sets the "medication_dose" field if the given value is not nil.
func (_c *TreatmentCreate) SetNillableMedicationDose(v *string) *TreatmentCreate {
	if v != nil {
		_c.SetMedicationDose(*v)
	}
	return _c
}

// SetMedicationDuration sets the "medication_duration" field.
func (_c *TreatmentCreate) SetMedicationDuration(v string) *TreatmentCreate {
	_c.mutation.SetMedicationDuration(v)
	return _c
}

// SetNillableMedicationDuration sets the "medication_duration" field if the given value is not nil.
func (_c *TreatmentCreate) SetNillableMedicationDuration(v *string) *TreatmentCreate {
	if v != nil {
		_c.SetMedicationDuration(*v)
	}
	return _c
}

// SetOocytesViable sets the "oocytes_viable" field.
func (_c *TreatmentCreate) SetOocytesViable(v bool) *TreatmentCreate {
	_c.mutation.SetOocytesViable(v)
	return _c
}

// SetNillableOocytesViable sets the "oocytes_viable" field if the given value is not nil.
func (_c *TreatmentCreate) SetNillableOocytesViable(v *bool) *TreatmentCreate {
	if v != nil {
		_c.SetOocytesViable(*v)
	}
	return _c
}

// SetSpermViable sets the "sperm_viable" field.
func (_c *TreatmentCreate) SetSpermViable(v bool) *TreatmentCreate {
	_c.mutation.SetSpermViable(v)
	return _c
}

// SetNillableSpermViable sets the "sperm_viable" field if the given value is not nil.
func (_c *TreatmentCreate) SetNillableSpermViable(v *bool) *TreatmentCreate {
	if v != nil {
		_c.SetSpermViable(*v)
	}
	return _c
}

// SetConsentDocumentKey sets the "consent_document_key" field.
func (_c *TreatmentCreate) SetConsentDocumentKey(v string) *TreatmentCreate {
	_c.mutation.SetConsentDocumentKey(v)
	return _c
}

// SetNillableConsentDocumentKey sets the "consent_document_key" field if the given value is not nil.
func (_c *TreatmentCreate) SetNillableConsentDocumentKey(v *string) *TreatmentCreate {
	if v != nil {
		_c.SetConsentDocumentKey(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *TreatmentCreate) SetID(v uuid.UUID) *TreatmentCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *TreatmentCreate) SetNillableID(v *uuid.UUID) *TreatmentCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetPatient sets the "patient" edge to the Patient entity.
func (_c *TreatmentCreate) SetPatient(v *Patient) *TreatmentCreate {
	return _c.SetPatientID(v.ID)
}

// SetDoctor sets the "doctor" edge to the User entity.
func (_c *TreatmentCreate) SetDoctor(v *User) *TreatmentCreate {
	return _c.SetDoctorID(v.ID)
}

// AddMonitoringDayIDs adds the "monitoring_days" edge to the MonitoringDay entity by IDs.
func (_c *TreatmentCreate) AddMonitoringDayIDs(ids ...uuid.UUID) *TreatmentCreate {
	_c.mutation.AddMonitoringDayIDs(ids...)
	return _c
}

// AddMonitoringDays adds the "monitoring_days" edges to the MonitoringDay entity.
func (_c *TreatmentCreate) AddMonitoringDays(v ...*MonitoringDay) *TreatmentCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddMonitoringDayIDs(ids...)
}

// AddStudyResultIDs adds the "study_results" edge to the StudyResult entity by IDs.
func (_c *TreatmentCreate) AddStudyResultIDs(ids ...uuid.UUID) *TreatmentCreate {
	_c.mutation.AddStudyResultIDs(ids...)
	return _c
}

// AddStudyResults adds the "study_results" edges to the StudyResult entity.
func (_c *TreatmentCreate) AddStudyResults(v ...*StudyResult) *TreatmentCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddStudyResultIDs(ids...)
}

// AddMedicalOrderIDs adds the "medical_orders" edge to the MedicalOrder entity by IDs.
func (_c *TreatmentCreate) AddMedicalOrderIDs(ids ...uuid.UUID) *TreatmentCreate {
	_c.mutation.AddMedicalOrderIDs(ids...)
	return _c
}

// AddMedicalOrders adds the "medical_orders" edges to the MedicalOrder entity.
func (_c *TreatmentCreate) AddMedicalOrders(v ...*MedicalOrder) *TreatmentCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddMedicalOrderIDs(ids...)
}

// SetPunctureID sets the "puncture" edge to the Puncture entity by ID.
func (_c *TreatmentCreate) SetPunctureID(id uuid.UUID) *TreatmentCreate {
	_c.mutation.SetPunctureID(id)
	return _c
}

// SetNillablePunctureID sets the "puncture" edge to the Puncture entity by ID if the given value is not nil.
func (_c *TreatmentCreate) SetNillablePunctureID(id *uuid.UUID) *TreatmentCreate {
	if id != nil {
		_c = _c.SetPunctureID(*id)
	}
	return _c
}

// SetPuncture sets the "puncture" edge to the Puncture entity.
func (_c *TreatmentCreate) SetPuncture(v *Puncture) *TreatmentCreate {
	return _c.SetPunctureID(v.ID)
}

// Mutation returns the TreatmentMutation object of the builder.
func (_c *TreatmentCreate) Mutation() *TreatmentMutation {
	return _c.mutation
}

// Save creates the Treatment in the database.
func (_c *TreatmentCreate) Save(ctx context.Context) (*Treatment, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *TreatmentCreate) SaveX(ctx context.Context) *Treatment {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TreatmentCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TreatmentCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *TreatmentCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := treatment.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := treatment.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.Status(); !ok {
		v := treatment.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := treatment.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *TreatmentCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`repo: missing required field "Treatment.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`repo: missing required field "Treatment.updated_at"`)}
	}
	if _, ok := _c.mutation.PatientID(); !ok {
		return &ValidationError{Name: "patient_id", err: errors.New(`repo: missing required field "Treatment.patient_id"`)}
	}
	if _, ok := _c.mutation.DoctorID(); !ok {
		return &ValidationError{Name: "doctor_id", err: errors.New(`repo: missing required field "Treatment.doctor_id"`)}
	}
	if _, ok := _c.mutation.Objective(); !ok {
		return &ValidationError{Name: "objective", err: errors.New(`repo: missing required field "Treatment.objective"`)}
	}
	if v, ok := _c.mutation.Objective(); ok {
		if err := treatment.ObjectiveValidator(v); err != nil {
			return &ValidationError{Name: "objective", err: fmt.Errorf(`repo: validator failed for field "Treatment.objective": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`repo: missing required field "Treatment.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := treatment.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`repo: validator failed for field "Treatment.status": %w`, err)}
		}
	}
	if v, ok := _c.mutation.MedicationType(); ok {
		if err := treatment.MedicationTypeValidator(v); err != nil {
			return &ValidationError{Name: "medication_type", err: fmt.Errorf(`repo: validator failed for field "Treatment.medication_type": %w`, err)}
		}
	}
	if v, ok := _c.mutation.MedicationDose(); ok {
		if err := treatment.MedicationDoseValidator(v); err != nil {
			return &ValidationError{Name: "medication_dose", err: fmt.Errorf(`repo: validator failed for field "Treatment.medication_dose": %w`, err)}
		}
	}
	if v, ok := _c.mutation.MedicationDuration(); ok {
		if err := treatment.MedicationDurationValidator(v); err != nil {
			return &ValidationError{Name: "medication_duration", err: fmt.Errorf(`repo: validator failed for field "Treatment.medication_duration": %w`, err)}
		}
	}
	if v, ok := _c.mutation.ConsentDocumentKey(); ok {
		if err := treatment.ConsentDocumentKeyValidator(v); err != nil {
			return &ValidationError{Name: "consent_document_key", err: fmt.Errorf(`repo: validator failed for field "Treatment.consent_document_key": %w`, err)}
		}
	}
	if len(_c.mutation.PatientIDs()) == 0 {
		return &ValidationError{Name: "patient", err: errors.New(`repo: missing required edge "Treatment.patient"`)}
	}
	if len(_c.mutation.DoctorIDs()) == 0 {
		return &ValidationError{Name: "doctor", err: errors.New(`repo: missing required edge "Treatment.doctor"`)}
	}
	return nil
}

func (_c *TreatmentCreate) sqlSave(ctx context.Context) (*Treatment, error) {
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

func (_c *TreatmentCreate) createSpec() (*Treatment, *sqlgraph.CreateSpec) {
	var (
		_node = &Treatment{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(treatment.Table, sqlgraph.NewFieldSpec(treatment.FieldID, field.TypeUUID))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(treatment.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(treatment.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.Objective(); ok {
		_spec.SetField(treatment.FieldObjective, field.TypeEnum, value)
		_node.Objective = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(treatment.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.StimulationProtocol(); ok {
		_spec.SetField(treatment.FieldStimulationProtocol, field.TypeString, value)
		_node.StimulationProtocol = &value
	}
	if value, ok := _c.mutation.MedicationType(); ok {
		_spec.SetField(treatment.FieldMedicationType, field.TypeString, value)
		_node.MedicationType = &value
	}
	if value, ok := _c.mutation.MedicationDose(); ok {
		_spec.SetField(treatment.FieldMedicationDose, field.TypeString, value)
		_node.MedicationDose = &value
	}
	if value, ok := _c.mutation.MedicationDuration(); ok {
		_spec.SetField(treatment.FieldMedicationDuration, field.TypeString, value)
		_node.MedicationDuration = &value
	}
	if value, ok := _c.mutation.OocytesViable(); ok {
		_spec.SetField(treatment.FieldOocytesViable, field.TypeBool, value)
		_node.OocytesViable = &value
	}
	if value, ok := _c.mutation.SpermViable(); ok {
		_spec.SetField(treatment.FieldSpermViable, field.TypeBool, value)
		_node.SpermViable = &value
	}
	if value, ok := _c.mutation.ConsentDocumentKey(); ok {
		_spec.SetField(treatment.FieldConsentDocumentKey, field.TypeString, value)
		_node.ConsentDocumentKey = &value
	}
	if nodes := _c.mutation.PatientIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   treatment.PatientTable,
			Columns: []string{treatment.PatientColumn},
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
	if nodes := _c.mutation.DoctorIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: false,
			Table:   treatment.DoctorTable,
			Columns: []string{treatment.DoctorColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(user.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.DoctorID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.MonitoringDaysIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   treatment.MonitoringDaysTable,
			Columns: []string{treatment.MonitoringDaysColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(monitoringday.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.StudyResultsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   treatment.StudyResultsTable,
			Columns: []string{treatment.StudyResultsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(studyresult.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.MedicalOrdersIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   treatment.MedicalOrdersTable,
			Columns: []string{treatment.MedicalOrdersColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(medicalorder.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.PunctureIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: false,
			Table:   treatment.PunctureTable,
			Columns: []string{treatment.PunctureColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(puncture.FieldID, field.TypeUUID),
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
//	client.Treatment.Create().
//		SetCreatedAt(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.TreatmentUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *TreatmentCreate) OnConflict(opts ...sql.ConflictOption) *TreatmentUpsertOne {
	_c.conflict = opts
	return &TreatmentUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Treatment.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *TreatmentCreate) OnConflictColumns(columns ...string) *TreatmentUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &TreatmentUpsertOne{
		create: _c,
	}
}

type (
	// TreatmentUpsertOne is the builder for "upsert"-ing
	//  one Treatment node.
	TreatmentUpsertOne struct {
		create *TreatmentCreate
	}

	// TreatmentUpsert is the "OnConflict" setter.
	TreatmentUpsert struct {
		*sql.UpdateSet
	}
)

// SetUpdatedAt sets the "updated_at" field.
func (u *TreatmentUpsert) SetUpdatedAt(v time.Time) *TreatmentUpsert {
	u.Set(treatment.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *TreatmentUpsert) UpdateUpdatedAt() *TreatmentUpsert {
	u.SetExcluded(treatment.FieldUpdatedAt)
	return u
}

// SetPatientID sets the "patient_id" field.
func (u *TreatmentUpsert) SetPatientID(v uuid.UUID) *TreatmentUpsert {
	u.Set(treatment.FieldPatientID, v)
	return u
}

// UpdatePatientID sets the "patient_id" field to the value that was provided on create.
func (u *TreatmentUpsert) UpdatePatientID() *TreatmentUpsert {
	u.SetExcluded(treatment.FieldPatientID)
	return u
}

// SetDoctorID sets the "doctor_id" field.
func (u *TreatmentUpsert) SetDoctorID(v uuid.UUID) *TreatmentUpsert {
	u.Set(treatment.FieldDoctorID, v)
	return u
}

// UpdateDoctorID sets the "doctor_id" field to the value that was provided on create.
func (u *TreatmentUpsert) UpdateDoctorID() *TreatmentUpsert {
	u.SetExcluded(treatment.FieldDoctorID)
	return u
}

// SetObjective sets the "objective" field.
func (u *TreatmentUpsert) SetObjective(v treatment.Objective) *TreatmentUpsert {
	u.Set(treatment.FieldObjective, v)
	return u
}

// UpdateObjective sets the "objective" field to the value that was provided on create.
func (u *TreatmentUpsert) UpdateObjective() *TreatmentUpsert {
	u.SetExcluded(treatment.FieldObjective)
	return u
}

// SetStatus sets the "status" field.
func (u *TreatmentUpsert) SetStatus(v treatment.Status) *TreatmentUpsert {
	u.Set(treatment.FieldStatus, v)
	return u
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *TreatmentUpsert) UpdateStatus() *TreatmentUpsert {
	u.SetExcluded(treatment.FieldStatus)
	return u
}

// SetStimulationProtocol sets the "stimulation_protocol" field.
func (u *TreatmentUpsert) SetStimulationProtocol(v string) *TreatmentUpsert {
	u.Set(treatment.FieldStimulationProtocol, v)
	return u
}

// UpdateStimulationProtocol sets the "stimulation_protocol" field to the value that was provided on create.
func (u *TreatmentUpsert) UpdateStimulationProtocol() *TreatmentUpsert {
	u.SetExcluded(treatment.FieldStimulationProtocol)
	return u
}

// ClearStimulationProtocol clears the value of the "stimulation_protocol" field.
func (u *TreatmentUpsert) ClearStimulationProtocol() *TreatmentUpsert {
	u.SetNull(treatment.FieldStimulationProtocol)
	return u
}

// SetMedicationType sets the "medication_type" field.
func (u *TreatmentUpsert) SetMedicationType(v string) *TreatmentUpsert {
	u.Set(treatment.FieldMedicationType, v)
	return u
}

// UpdateMedicationType sets the "medication_type" field to the value that was provided on create.
func (u *TreatmentUpsert) UpdateMedicationType() *TreatmentUpsert {
	u.SetExcluded(treatment.FieldMedicationType)
	return u
}

// ClearMedicationType clears the value of the "medication_type" field.
func (u *TreatmentUpsert) ClearMedicationType() *TreatmentUpsert {
	u.SetNull(treatment.FieldMedicationType)
	return u
}

// SetMedicationDose sets the "medication_dose" field.
func (u *TreatmentUpsert) SetMedicationDose(v string) *TreatmentUpsert {
	u.Set(treatment.FieldMedicationDose, v)
	return u
}

// UpdateMedicationDose sets the "medication_dose" field to the value that was provided on create.
func (u *TreatmentUpsert) UpdateMedicationDose() *TreatmentUpsert {
	u.SetExcluded(treatment.FieldMedicationDose)
	return u
}

// ClearMedicationDose clears the value of the "medication_dose" field.
func (u *TreatmentUpsert) ClearMedicationDose() *TreatmentUpsert {
	u.SetNull(treatment.FieldMedicationDose)
	return u
}

// SetMedicationDuration sets the "medication_duration" field.
func (u *TreatmentUpsert) SetMedicationDuration(v string) *TreatmentUpsert {
	u.Set(treatment.FieldMedicationDuration, v)
	return u
}

// UpdateMedicationDuration sets the "medication_duration" field to the value that was provided on create.
func (u *TreatmentUpsert) UpdateMedicationDuration() *TreatmentUpsert {
	u.SetExcluded(treatment.FieldMedicationDuration)
	return u
}

// ClearMedicationDuration clears the value of the "medication_duration" field.
func (u *TreatmentUpsert) ClearMedicationDuration() *TreatmentUpsert {
	u.SetNull(treatment.FieldMedicationDuration)
	return u
}

// SetOocytesViable sets the "oocytes_viable" field.
func (u *TreatmentUpsert) SetOocytesViable(v bool) *TreatmentUpsert {
	u.Set(treatment.FieldOocytesViable, v)
	return u
}

// UpdateOocytesViable sets the "oocytes_viable" field to the value that was provided on create.
func (u *TreatmentUpsert) UpdateOocytesViable() *TreatmentUpsert {
	u.SetExcluded(treatment.FieldOocytesViable)
	return u
}

// ClearOocytesViable clears the value of the "oocytes_viable" field.
func (u *TreatmentUpsert) ClearOocytesViable() *TreatmentUpsert {
	u.SetNull(treatment.FieldOocytesViable)
	return u
}

// SetSpermViable sets the "sperm_viable" field.
func (u *TreatmentUpsert) SetSpermViable(v bool) *TreatmentUpsert {
	u.Set(treatment.FieldSpermViable, v)
	return u
}

// UpdateSpermViable sets the "sperm_viable" field to the value that was provided on create.
func (u *TreatmentUpsert) UpdateSpermViable() *TreatmentUpsert {
	u.SetExcluded(treatment.FieldSpermViable)
	return u
}

// ClearSpermViable clears the value of the "sperm_viable" field.
func (u *TreatmentUpsert) ClearSpermViable() *TreatmentUpsert {
	u.SetNull(treatment.FieldSpermViable)
	return u
}

// SetConsentDocumentKey sets the "consent_document_key" field.
func (u *TreatmentUpsert) SetConsentDocumentKey(v string) *TreatmentUpsert {
	u.Set(treatment.FieldConsentDocumentKey, v)
	return u
}

// UpdateConsentDocumentKey sets the "consent_document_key" field to the value that was provided on create.
func (u *TreatmentUpsert) UpdateConsentDocumentKey() *TreatmentUpsert {
	u.SetExcluded(treatment.FieldConsentDocumentKey)
	return u
}

// ClearConsentDocumentKey clears the value of the "consent_document_key" field.
func (u *TreatmentUpsert) ClearConsentDocumentKey() *TreatmentUpsert {
	u.SetNull(treatment.FieldConsentDocumentKey)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.Treatment.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(treatment.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *TreatmentUpsertOne) UpdateNewValues() *TreatmentUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(treatment.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(treatment.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Treatment.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *TreatmentUpsertOne) Ignore() *TreatmentUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *TreatmentUpsertOne) DoNothing() *TreatmentUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the TreatmentCreate.OnConflict
// documentation for more info.
func (u *TreatmentUpsertOne) Update(set func(*TreatmentUpsert)) *TreatmentUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&TreatmentUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *TreatmentUpsertOne) SetUpdatedAt(v time.Time) *TreatmentUpsertOne {
	return u.Update(func(s *TreatmentUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *TreatmentUpsertOne) UpdateUpdatedAt() *TreatmentUpsertOne {
	return u.Update(func(s *TreatmentUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetPatientID sets the "patient_id" field.
func (u *TreatmentUpsertOne) SetPatientID(v uuid.UUID) *TreatmentUpsertOne {
	return u.Update(func(s *TreatmentUpsert) {
		s.SetPatientID(v)
	})
}

// UpdatePatientID sets the "patient_id" field to the value that was provided on create.
func (u *TreatmentUpsertOne) UpdatePatientID() *TreatmentUpsertOne {
	return u.Update(func(s *TreatmentUpsert) {
		s.UpdatePatientID()
	})
}

// SetDoctorID sets the "doctor_id" field.
func (u *TreatmentUpsertOne) SetDoctorID(v uuid.UUID) *TreatmentUpsertOne {
	return u.Update(func(s *TreatmentUpsert) {
		s.SetDoctorID(v)
	})
}

// UpdateDoctorID sets the "doctor_id" field to the value that was provided on create.
func (u *TreatmentUpsertOne) UpdateDoctorID() *TreatmentUpsertOne {
	return u.Update(func(s *TreatmentUpsert) {
		s.UpdateDoctorID()
	})
}

// SetObjective sets the "objective" field.
func (u *TreatmentUpsertOne) SetObjective(v treatment.Objective) *TreatmentUpsertOne {
	return u.Update(func(s *TreatmentUpsert) {
		s.SetObjective(v)
	})
}

// UpdateObjective sets the "objective" field to the value that was provided on create.
func (u *TreatmentUpsertOne) UpdateObjective() *TreatmentUpsertOne {
	return u.Update(func(s *TreatmentUpsert) {
		s.UpdateObjective()
	})
}

// SetStatus sets the "status" field.
func (u *TreatmentUpsertOne) SetStatus(v treatment.Status) *TreatmentUpsertOne {
	return u.Update(func(s *TreatmentUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *TreatmentUpsertOne) UpdateStatus() *TreatmentUpsertOne {
	return u.Update(func(s *TreatmentUpsert) {
		s.UpdateStatus()
	})
}

// SetStimulationProtocol sets the "stimulation_protocol" field.
func (u *TreatmentUpsertOne) SetStimulationProtocol(v string) *TreatmentUpsertOne {
	return u.Update(func(s *TreatmentUpsert) {
		s.SetStimulationProtocol(v)
	})
}

// UpdateStimulationProtocol sets the "stimulation_protocol" field to the value that was provided on create.
func (u *TreatmentUpsertOne) UpdateStimulationProtocol() *TreatmentUpsertOne {
	return u.Update(func(s *TreatmentUpsert) {
		s.UpdateStimulationProtocol()
	})
}

// ClearStimulationProtocol clears the value of the "stimulation_protocol" field.
func (u *TreatmentUpsertOne) ClearStimulationProtocol() *TreatmentUpsertOne {
	return u.Update(func(s *TreatmentUpsert) {
		s.ClearStimulationProtocol()
	})
}

// SetMedicationType sets the "medication_type" field.
func (u *TreatmentUpsertOne) SetMedicationType(v string) *TreatmentUpsertOne {
	return u.Update(func(s *TreatmentUpsert) {
		s.SetMedicationType(v)
	})
}

// UpdateMedicationType sets the "medication_type" field to the value that was provided on create.
func (u *TreatmentUpsertOne) UpdateMedicationType() *TreatmentUpsertOne {
	return u.Update(func(s *TreatmentUpsert) {
		s.UpdateMedicationType()
	})
}

// ClearMedicationType clears the value of the "medication_type" field.
func (u *TreatmentUpsertOne) ClearMedicationType() *TreatmentUpsertOne {
	return u.Update(func(s *TreatmentUpsert) {
		s.ClearMedicationType()
	})
}

// SetMedicationDose sets the "medication_dose" field.
func (u *TreatmentUpsertOne) SetMedicationDose(v string) *TreatmentUpsertOne {
	return u.Update(func(s *TreatmentUpsert) {
		s.SetMedicationDose(v)
	})
}

// UpdateMedicationDose sets the "medication_dose" field to the value that was provided on create.
func (u *TreatmentUpsertOne) UpdateMedicationDose() *TreatmentUpsertOne {
	return u.Update(func(s *TreatmentUpsert) {
		s.UpdateMedicationDose()
	})
}

// ClearMedicationDose clears the value of the "medication_dose" field.
func (u *TreatmentUpsertOne) ClearMedicationDose() *TreatmentUpsertOne {
	return u.Update(func(s *TreatmentUpsert) {
		s.ClearMedicationDose()
	})
}

// SetMedicationDuration sets the "medication_duration" field.
func (u *TreatmentUpsertOne) SetMedicationDuration(v string) *TreatmentUpsertOne {
	return u.Update(func(s *TreatmentUpsert) {
		s.SetMedicationDuration(v)
	})
}

// UpdateMedicationDuration sets the "medication_duration" field to the value that was provided on create.
func (u *TreatmentUpsertOne) UpdateMedicationDuration() *TreatmentUpsertOne {
	return u.Update(func(s *TreatmentUpsert) {
		s.UpdateMedicationDuration()
	})
}

// ClearMedicationDuration clears the value of the "medication_duration" field.
func (u *TreatmentUpsertOne) ClearMedicationDuration() *TreatmentUpsertOne {
	return u.Update(func(s *TreatmentUpsert) {
		s.ClearMedicationDuration()
	})
}

// SetOocytesViable sets the "oocytes_viable" field.
func (u *TreatmentUpsertOne) SetOocytesViable(v bool) *TreatmentUpsertOne {
	return u.Update(func(s *TreatmentUpsert) {
		s.SetOocytesViable(v)
	})
}

// UpdateOocytesViable sets the "oocytes_viable" field to the value that was provided on create.
func (u *TreatmentUpsertOne) UpdateOocytesViable() *TreatmentUpsertOne {
	return u.Update(func(s *TreatmentUpsert) {
		s.UpdateOocytesViable()
	})
}

// ClearOocytesViable clears the value of the "oocytes_viable" field.
func (u *TreatmentUpsertOne) ClearOocytesViable() *TreatmentUpsertOne {
	return u.Update(func(s *TreatmentUpsert) {
		s.ClearOocytesViable()
	})
}

// SetSpermViable sets the "sperm_viable" field.
func (u *TreatmentUpsertOne) SetSpermViable(v bool) *TreatmentUpsertOne {
	return u.Update(func(s *TreatmentUpsert) {
		s.SetSpermViable(v)
	})
}

// UpdateSpermViable sets the "sperm_viable" field to the value that was provided on create.
func (u *TreatmentUpsertOne) UpdateSpermViable() *TreatmentUpsertOne {
	return u.Update(func(s *TreatmentUpsert) {
		s.UpdateSpermViable()
	})
}

// ClearSpermViable clears the value of the "sperm_viable" field.
func (u *TreatmentUpsertOne) ClearSpermViable() *TreatmentUpsertOne {
	return u.Update(func(s *TreatmentUpsert) {
		s.ClearSpermViable()
	})
}

// SetConsentDocumentKey sets the "consent_document_key" field.
func (u *TreatmentUpsertOne) SetConsentDocumentKey(v string) *TreatmentUpsertOne {
	return u.Update(func(s *TreatmentUpsert) {
		s.SetConsentDocumentKey(v)
	})
}

// UpdateConsentDocumentKey sets the "consent_document_key" field to the value that was provided on create.
func (u *TreatmentUpsertOne) UpdateConsentDocumentKey() *TreatmentUpsertOne {
	return u.Update(func(s *TreatmentUpsert) {
		s.UpdateConsentDocumentKey()
	})
}

// ClearConsentDocumentKey clears the value of the "consent_document_key" field.
func (u *TreatmentUpsertOne) ClearConsentDocumentKey() *TreatmentUpsertOne {
	return u.Update(func(s *TreatmentUpsert) {
		s.ClearConsentDocumentKey()
	})
}

// Exec executes the query.
func (u *TreatmentUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for TreatmentCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *TreatmentUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *TreatmentUpsertOne) ID(ctx context.Context) (id uuid.UUID, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("repo: TreatmentUpsertOne.ID is not supported by MySQL driver. Use TreatmentUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *TreatmentUpsertOne) IDX(ctx context.Context) uuid.UUID {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// TreatmentCreateBulk is the builder for creating many Treatment entities in bulk.
type TreatmentCreateBulk struct {
	config
	err      error
	builders []*TreatmentCreate
	conflict []sql.ConflictOption
}

// Save creates the Treatment entities in the database.
func (_c *TreatmentCreateBulk) Save(ctx context.Context) ([]*Treatment, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Treatment, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*TreatmentMutation)
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
func (_c *TreatmentCreateBulk) SaveX(ctx context.Context) []*Treatment {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TreatmentCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TreatmentCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Treatment.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.TreatmentUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *TreatmentCreateBulk) OnConflict(opts ...sql.ConflictOption) *TreatmentUpsertBulk {
	_c.conflict = opts
	return &TreatmentUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Treatment.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *TreatmentCreateBulk) OnConflictColumns(columns ...string) *TreatmentUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &TreatmentUpsertBulk{
		create: _c,
	}
}

// TreatmentUpsertBulk is the builder for "upsert"-ing
// a bulk of Treatment nodes.
type TreatmentUpsertBulk struct {
	create *TreatmentCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Treatment.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(treatment.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *TreatmentUpsertBulk) UpdateNewValues() *TreatmentUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(treatment.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(treatment.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Treatment.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *TreatmentUpsertBulk) Ignore() *TreatmentUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *TreatmentUpsertBulk) DoNothing() *TreatmentUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the TreatmentCreateBulk.OnConflict
// documentation for more info.
func (u *TreatmentUpsertBulk) Update(set func(*TreatmentUpsert)) *TreatmentUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&TreatmentUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *TreatmentUpsertBulk) SetUpdatedAt(v time.Time) *TreatmentUpsertBulk {
	return u.Update(func(s *TreatmentUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *TreatmentUpsertBulk) UpdateUpdatedAt() *TreatmentUpsertBulk {
	return u.Update(func(s *TreatmentUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetPatientID sets the "patient_id" field.
func (u *TreatmentUpsertBulk) SetPatientID(v uuid.UUID) *TreatmentUpsertBulk {
	return u.Update(func(s *TreatmentUpsert) {
		s.SetPatientID(v)
	})
}

// UpdatePatientID sets the "patient_id" field to the value that was provided on create.
func (u *TreatmentUpsertBulk) UpdatePatientID() *TreatmentUpsertBulk {
	return u.Update(func(s *TreatmentUpsert) {
		s.UpdatePatientID()
	})
}

// SetDoctorID sets the "doctor_id" field.
func (u *TreatmentUpsertBulk) SetDoctorID(v uuid.UUID) *TreatmentUpsertBulk {
	return u.Update(func(s *TreatmentUpsert) {
		s.SetDoctorID(v)
	})
}

// UpdateDoctorID sets the "doctor_id" field to the value that was provided on create.
func (u *TreatmentUpsertBulk) UpdateDoctorID() *TreatmentUpsertBulk {
	return u.Update(func(s *TreatmentUpsert) {
		s.UpdateDoctorID()
	})
}

// SetObjective sets the "objective" field.
func (u *TreatmentUpsertBulk) SetObjective(v treatment.Objective) *TreatmentUpsertBulk {
	return u.Update(func(s *TreatmentUpsert) {
		s.SetObjective(v)
	})
}

// UpdateObjective sets the "objective" field to the value that was provided on create.
func (u *TreatmentUpsertBulk) UpdateObjective() *TreatmentUpsertBulk {
	return u.Update(func(s *TreatmentUpsert) {
		s.UpdateObjective()
	})
}

// SetStatus sets the "status" field.
func (u *TreatmentUpsertBulk) SetStatus(v treatment.Status) *TreatmentUpsertBulk {
	return u.Update(func(s *TreatmentUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *TreatmentUpsertBulk) UpdateStatus() *TreatmentUpsertBulk {
	return u.Update(func(s *TreatmentUpsert) {
		s.UpdateStatus()
	})
}

// SetStimulationProtocol sets the "stimulation_protocol" field.
func (u *TreatmentUpsertBulk) SetStimulationProtocol(v string) *TreatmentUpsertBulk {
	return u.Update(func(s *TreatmentUpsert) {
		s.SetStimulationProtocol(v)
	})
}

// UpdateStimulationProtocol sets the "stimulation_protocol" field to the value that was provided on create.
func (u *TreatmentUpsertBulk) UpdateStimulationProtocol() *TreatmentUpsertBulk {
	return u.Update(func(s *TreatmentUpsert) {
		s.UpdateStimulationProtocol()
	})
}

// ClearStimulationProtocol clears the value of the "stimulation_protocol" field.
func (u *TreatmentUpsertBulk) ClearStimulationProtocol() *TreatmentUpsertBulk {
	return u.Update(func(s *TreatmentUpsert) {
		s.ClearStimulationProtocol()
	})
}

// SetMedicationType sets the "medication_type" field.
func (u *TreatmentUpsertBulk) SetMedicationType(v string) *TreatmentUpsertBulk {
	return u.Update(func(s *TreatmentUpsert) {
		s.SetMedicationType(v)
	})
}

// UpdateMedicationType sets the "medication_type" field to the value that was provided on create.
func (u *TreatmentUpsertBulk) UpdateMedicationType() *TreatmentUpsertBulk {
	return u.Update(func(s *TreatmentUpsert) {
		s.UpdateMedicationType()
	})
}

// ClearMedicationType clears the value of the "medication_type" field.
func (u *TreatmentUpsertBulk) ClearMedicationType() *TreatmentUpsertBulk {
	return u.Update(func(s *TreatmentUpsert) {
		s.ClearMedicationType()
	})
}

// SetMedicationDose sets the "medication_dose" field.
func (u *TreatmentUpsertBulk) SetMedicationDose(v string) *TreatmentUpsertBulk {
	return u.Update(func(s *TreatmentUpsert) {
		s.SetMedicationDose(v)
	})
}

// UpdateMedicationDose sets the "medication_dose" field to the value that was provided on create.
func (u *TreatmentUpsertBulk) UpdateMedicationDose() *TreatmentUpsertBulk {
	return u.Update(func(s *TreatmentUpsert) {
		s.UpdateMedicationDose()
	})
}

// ClearMedicationDose clears the value of the "medication_dose" field.
func (u *TreatmentUpsertBulk) ClearMedicationDose() *TreatmentUpsertBulk {
	return u.Update(func(s *TreatmentUpsert) {
		s.ClearMedicationDose()
	})
}

// SetMedicationDuration sets the "medication_duration" field.
func (u *TreatmentUpsertBulk) SetMedicationDuration(v string) *TreatmentUpsertBulk {
	return u.Update(func(s *TreatmentUpsert) {
		s.SetMedicationDuration(v)
	})
}

// UpdateMedicationDuration sets the "medication_duration" field to the value that was provided on create.
func (u *TreatmentUpsertBulk) UpdateMedicationDuration() *TreatmentUpsertBulk {
	return u.Update(func(s *TreatmentUpsert) {
		s.UpdateMedicationDuration()
	})
}

// ClearMedicationDuration clears the value of the "medication_duration" field.
func (u *TreatmentUpsertBulk) ClearMedicationDuration() *TreatmentUpsertBulk {
	return u.Update(func(s *TreatmentUpsert) {
		s.ClearMedicationDuration()
	})
}

// SetOocytesViable sets the "oocytes_viable" field.
func (u *TreatmentUpsertBulk) SetOocytesViable(v bool) *TreatmentUpsertBulk {
	return u.Update(func(s *TreatmentUpsert) {
		s.SetOocytesViable(v)
	})
}

// UpdateOocytesViable sets the "oocytes_viable" field to the value that was provided on create.
func (u *TreatmentUpsertBulk) UpdateOocytesViable() *TreatmentUpsertBulk {
	return u.Update(func(s *TreatmentUpsert) {
		s.UpdateOocytesViable()
	})
}

// ClearOocytesViable clears the value of the "oocytes_viable" field.
func (u *TreatmentUpsertBulk) ClearOocytesViable() *TreatmentUpsertBulk {
	return u.Update(func(s *TreatmentUpsert) {
		s.ClearOocytesViable()
	})
}

// SetSpermViable sets the "sperm_viable" field.
func (u *TreatmentUpsertBulk) SetSpermViable(v bool) *TreatmentUpsertBulk {
	return u.Update(func(s *TreatmentUpsert) {
		s.SetSpermViable(v)
	})
}

// UpdateSpermViable sets the "sperm_viable" field to the value that was provided on create.
func (u *TreatmentUpsertBulk) UpdateSpermViable() *TreatmentUpsertBulk {
	return u.Update(func(s *TreatmentUpsert) {
		s.UpdateSpermViable()
	})
}

// ClearSpermViable clears the value of the "sperm_viable" field.
func (u *TreatmentUpsertBulk) ClearSpermViable() *TreatmentUpsertBulk {
	return u.Update(func(s *TreatmentUpsert) {
		s.ClearSpermViable()
	})
}

// SetConsentDocumentKey sets the "consent_document_key" field.
func (u *TreatmentUpsertBulk) SetConsentDocumentKey(v string) *TreatmentUpsertBulk {
	return u.Update(func(s *TreatmentUpsert) {
		s.SetConsentDocumentKey(v)
	})
}

// UpdateConsentDocumentKey sets the "consent_document_key" field to the value that was provided on create.
func (u *TreatmentUpsertBulk) UpdateConsentDocumentKey() *TreatmentUpsertBulk {
	return u.Update(func(s *TreatmentUpsert) {
		s.UpdateConsentDocumentKey()
	})
}

// ClearConsentDocumentKey clears the value of the "consent_document_key" field.
func (u *TreatmentUpsertBulk) ClearConsentDocumentKey() *TreatmentUpsertBulk {
	return u.Update(func(s *TreatmentUpsert) {
		s.ClearConsentDocumentKey()
	})
}

// Exec executes the query.
func (u *TreatmentUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("repo: OnConflict was set for builder %d. Set it on the TreatmentCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for TreatmentCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *TreatmentUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
