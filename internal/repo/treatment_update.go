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
	"github.com/fertitrack/fertitrack_backend/internal/repo/medicalorder"
	"github.com/fertitrack/fertitrack_backend/internal/repo/monitoringday"
	"github.com/fertitrack/fertitrack_backend/internal/repo/patient"
	"github.com/fertitrack/fertitrack_backend/internal/repo/predicate"
	"github.com/fertitrack/fertitrack_backend/internal/repo/puncture"
	"github.com/fertitrack/fertitrack_backend/internal/repo/studyresult"
	"github.com/fertitrack/fertitrack_backend/internal/repo/treatment"
	"github.com/fertitrack/fertitrack_backend/internal/repo/user"
	"github.com/google/uuid"
)

// TreatmentUpdate is the builder for updating Treatment entities.
type TreatmentUpdate struct {
	config
	hooks    []Hook
	mutation *TreatmentMutation
}

// Where appends a list predicates to the TreatmentUpdate builder.
func (_u *TreatmentUpdate) Where(ps ...predicate.Treatment) *TreatmentUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *TreatmentUpdate) SetUpdatedAt(v time.Time) *TreatmentUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetPatientID sets the "patient_id" field.
func (_u *TreatmentUpdate) SetPatientID(v uuid.UUID) *TreatmentUpdate {
	_u.mutation.SetPatientID(v)
	return _u
}

// SetNillablePatientID sets the "patient_id" field if the given value is not nil.
func (_u *TreatmentUpdate) SetNillablePatientID(v *uuid.UUID) *TreatmentUpdate {
	if v != nil {
		_u.SetPatientID(*v)
	}
	return _u
}

// SetDoctorID sets the "doctor_id" field.
func (_u *TreatmentUpdate) SetDoctorID(v uuid.UUID) *TreatmentUpdate {
	_u.mutation.SetDoctorID(v)
	return _u
}

// SetNillableDoctorID sets the "doctor_id" field if the given value is not nil.
func (_u *TreatmentUpdate) SetNillableDoctorID(v *uuid.UUID) *TreatmentUpdate {
	if v != nil {
		_u.SetDoctorID(*v)
	}
	return _u
}

// SetObjective sets the "objective" field.
func (_u *TreatmentUpdate) SetObjective(v treatment.Objective) *TreatmentUpdate {
	_u.mutation.SetObjective(v)
	return _u
}

// SetNillableObjective sets the "objective" field if the given value is not nil.
func (_u *TreatmentUpdate) SetNillableObjective(v *treatment.Objective) *TreatmentUpdate {
	if v != nil {
		_u.SetObjective(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *TreatmentUpdate) SetStatus(v treatment.Status) *TreatmentUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *TreatmentUpdate) SetNillableStatus(v *treatment.Status) *TreatmentUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetStimulationProtocol sets the "stimulation_protocol" field.
func (_u *TreatmentUpdate) SetStimulationProtocol(v string) *TreatmentUpdate {
	_u.mutation.SetStimulationProtocol(v)
	return _u
}

// SetNillableStimulationProtocol sets the "stimulation_protocol" field if the given value is not nil.
func (_u *TreatmentUpdate) SetNillableStimulationProtocol(v *string) *TreatmentUpdate {
	if v != nil {
		_u.SetStimulationProtocol(*v)
	}
	return _u
}

// ClearStimulationProtocol clears the value of the "stimulation_protocol" field.
func (_u *TreatmentUpdate) ClearStimulationProtocol() *TreatmentUpdate {
	_u.mutation.ClearStimulationProtocol()
	return _u
}

// SetMedicationType sets the "medication_type" field.
func (_u *TreatmentUpdate) SetMedicationType(v string) *TreatmentUpdate {
	_u.mutation.SetMedicationType(v)
	return _u
}

// SetNillableMedicationType sets the "medication_type" field if the given value is not nil.
func (_u *TreatmentUpdate) SetNillableMedicationType(v *string) *TreatmentUpdate {
	if v != nil {
		_u.SetMedicationType(*v)
	}
	return _u
}

// ClearMedicationType clears the value of the "medication_type" field.
func (_u *TreatmentUpdate) ClearMedicationType() *TreatmentUpdate {
	_u.mutation.ClearMedicationType()
	return _u
}

// SetMedicationDose sets the "medication_dose" field.
func (_u *TreatmentUpdate) SetMedicationDose(v string) *TreatmentUpdate {
	_u.mutation.SetMedicationDose(v)
	return _u
}

// SetNillableMedicationDose sets the "medication_dose" field if the given value is not nil.
func (_u *TreatmentUpdate) SetNillableMedicationDose(v *string) *TreatmentUpdate {
	if v != nil {
		_u.SetMedicationDose(*v)
	}
	return _u
}

// ClearMedicationDose clears the value of the "medication_dose" field.
func (_u *TreatmentUpdate) ClearMedicationDose() *TreatmentUpdate {
	_u.mutation.ClearMedicationDose()
	return _u
}

// SetMedicationDuration sets the "medication_duration" field.
func (_u *TreatmentUpdate) SetMedicationDuration(v string) *TreatmentUpdate {
	_u.mutation.SetMedicationDuration(v)
	return _u
}

// SetNillableMedicationDuration sets the "medication_duration" field if the given value is not nil.
func (_u *TreatmentUpdate) SetNillableMedicationDuration(v *string) *TreatmentUpdate {
	if v != nil {
		_u.SetMedicationDuration(*v)
	}
	return _u
}

// ClearMedicationDuration clears the value of the "medication_duration" field.
func (_u *TreatmentUpdate) ClearMedicationDuration() *TreatmentUpdate {
	_u.mutation.ClearMedicationDuration()
	return _u
}

// SetOocytesViable sets the "oocytes_viable" field.
func (_u *TreatmentUpdate) SetOocytesViable(v bool) *TreatmentUpdate {
	_u.mutation.SetOocytesViable(v)
	return _u
}

// SetNillableOocytesViable sets the "oocytes_viable" field if the given value is not nil.
func (_u *TreatmentUpdate) SetNillableOocytesViable(v *bool) *TreatmentUpdate {
	if v != nil {
		_u.SetOocytesViable(*v)
	}
	return _u
}

// ClearOocytesViable clears the value of the "oocytes_viable" field.
func (_u *TreatmentUpdate) ClearOocytesViable() *TreatmentUpdate {
	_u.mutation.ClearOocytesViable()
	return _u
}

// SetSpermViable sets the "sperm_viable" field.
func (_u *TreatmentUpdate) SetSpermViable(v bool) *TreatmentUpdate {
	_u.mutation.SetSpermViable(v)
	return _u
}

// SetNillableSpermViable sets the "sperm_viable" field if the given value is not nil.
func (_u *TreatmentUpdate) SetNillableSpermViable(v *bool) *TreatmentUpdate {
	if v != nil {
		_u.SetSpermViable(*v)
	}
	return _u
}

// ClearSpermViable clears the value of the "sperm_viable" field.
func (_u *TreatmentUpdate) ClearSpermViable() *TreatmentUpdate {
	_u.mutation.ClearSpermViable()
	return _u
}

// SetConsentDocumentKey sets the "consent_document_key" field.
func (_u *TreatmentUpdate) SetConsentDocumentKey(v string) *TreatmentUpdate {
	_u.mutation.SetConsentDocumentKey(v)
	return _u
}

// SetNillableConsentDocumentKey sets the "consent_document_key" field if the given value is not nil.
func (_u *TreatmentUpdate) SetNillableConsentDocumentKey(v *string) *TreatmentUpdate {
	if v != nil {
		_u.SetConsentDocumentKey(*v)
	}
	return _u
}

// ClearConsentDocumentKey clears the value of the "consent_document_key" field.
func (_u *TreatmentUpdate) ClearConsentDocumentKey() *TreatmentUpdate {
	_u.mutation.ClearConsentDocumentKey()
	return _u
}

// SetPatient sets the "patient" edge to the Patient entity.
func (_u *TreatmentUpdate) SetPatient(v *Patient) *TreatmentUpdate {
	return _u.SetPatientID(v.ID)
}

// SetDoctor sets the "doctor" edge to the User entity.
func (_u *TreatmentUpdate) SetDoctor(v *User) *TreatmentUpdate {
	return _u.SetDoctorID(v.ID)
}

// AddMonitoringDayIDs adds the "monitoring_days" edge to the MonitoringDay entity by IDs.
func (_u *TreatmentUpdate) AddMonitoringDayIDs(ids ...uuid.UUID) *TreatmentUpdate {
	_u.mutation.AddMonitoringDayIDs(ids...)
	return _u
}

// AddMonitoringDays adds the "monitoring_days" edges to the MonitoringDay entity.
func (_u *TreatmentUpdate) AddMonitoringDays(v ...*MonitoringDay) *TreatmentUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddMonitoringDayIDs(ids...)
}

// AddStudyResultIDs adds the "study_results" edge to the StudyResult entity by IDs.
func (_u *TreatmentUpdate) AddStudyResultIDs(ids ...uuid.UUID) *TreatmentUpdate {
	_u.mutation.AddStudyResultIDs(ids...)
	return _u
}

// AddStudyResults adds the "study_results" edges to the StudyResult entity.
func (_u *TreatmentUpdate) AddStudyResults(v ...*StudyResult) *TreatmentUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddStudyResultIDs(ids...)
}

// AddMedicalOrderIDs adds the "medical_orders" edge to the MedicalOrder entity by IDs.
func (_u *TreatmentUpdate) AddMedicalOrderIDs(ids ...uuid.UUID) *TreatmentUpdate {
	_u.mutation.AddMedicalOrderIDs(ids...)
	return _u
}

// AddMedicalOrders adds the "medical_orders" edges to the MedicalOrder entity.
func (_u *TreatmentUpdate) AddMedicalOrders(v ...*MedicalOrder) *TreatmentUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddMedicalOrderIDs(ids...)
}

// SetPunctureID sets the "puncture" edge to the Puncture entity by ID.
func (_u *TreatmentUpdate) SetPunctureID(id uuid.UUID) *TreatmentUpdate {
	_u.mutation.SetPunctureID(id)
	return _u
}

// SetNillablePunctureID sets the "puncture" edge to the Puncture entity by ID if the given value is not nil.
func (_u *TreatmentUpdate) SetNillablePunctureID(id *uuid.UUID) *TreatmentUpdate {
	if id != nil {
		_u = _u.SetPunctureID(*id)
	}
	return _u
}

// SetPuncture sets the "puncture" edge to the Puncture entity.
func (_u *TreatmentUpdate) SetPuncture(v *Puncture) *TreatmentUpdate {
	return _u.SetPunctureID(v.ID)
}

// Mutation returns the TreatmentMutation object of the builder.
func (_u *TreatmentUpdate) Mutation() *TreatmentMutation {
	return _u.mutation
}

// ClearPatient clears the "patient" edge to the Patient entity.
func (_u *TreatmentUpdate) ClearPatient() *TreatmentUpdate {
	_u.mutation.ClearPatient()
	return _u
}

// ClearDoctor clears the "doctor" edge to the User entity.
func (_u *TreatmentUpdate) ClearDoctor() *TreatmentUpdate {
	_u.mutation.ClearDoctor()
	return _u
}

// ClearMonitoringDays clears all "monitoring_days" edges to the MonitoringDay entity.
func (_u *TreatmentUpdate) ClearMonitoringDays() *TreatmentUpdate {
	_u.mutation.ClearMonitoringDays()
	return _u
}

// RemoveMonitoringDayIDs removes the "monitoring_days" edge to MonitoringDay entities by IDs.
func (_u *TreatmentUpdate) RemoveMonitoringDayIDs(ids ...uuid.UUID) *TreatmentUpdate {
	_u.mutation.RemoveMonitoringDayIDs(ids...)
	return _u
}

// RemoveMonitoringDays removes "monitoring_days" edges to MonitoringDay entities.
func (_u *TreatmentUpdate) RemoveMonitoringDays(v ...*MonitoringDay) *TreatmentUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveMonitoringDayIDs(ids...)
}

// ClearStudyResults clears all "study_results" edges to the StudyResult entity.
func (_u *TreatmentUpdate) ClearStudyResults() *TreatmentUpdate {
	_u.mutation.ClearStudyResults()
	return _u
}

// RemoveStudyResultIDs removes the "study_results" edge to StudyResult entities by IDs.
func (_u *TreatmentUpdate) RemoveStudyResultIDs(ids ...uuid.UUID) *TreatmentUpdate {
	_u.mutation.RemoveStudyResultIDs(ids...)
	return _u
}

// RemoveStudyResults removes "study_results" edges to StudyResult entities.
func (_u *TreatmentUpdate) RemoveStudyResults(v ...*StudyResult) *TreatmentUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveStudyResultIDs(ids...)
}

// ClearMedicalOrders clears all "medical_orders" edges to the MedicalOrder entity.
func (_u *TreatmentUpdate) ClearMedicalOrders() *TreatmentUpdate {
	_u.mutation.ClearMedicalOrders()
	return _u
}

// RemoveMedicalOrderIDs removes the "medical_orders" edge to MedicalOrder entities by IDs.
func (_u *TreatmentUpdate) RemoveMedicalOrderIDs(ids ...uuid.UUID) *TreatmentUpdate {
	_u.mutation.RemoveMedicalOrderIDs(ids...)
	return _u
}

// RemoveMedicalOrders removes "medical_orders" edges to MedicalOrder entities.
func (_u *TreatmentUpdate) RemoveMedicalOrders(v ...*MedicalOrder) *TreatmentUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveMedicalOrderIDs(ids...)
}

// ClearPuncture clears the "puncture" edge to the Puncture entity.
func (_u *TreatmentUpdate) ClearPuncture() *TreatmentUpdate {
	_u.mutation.ClearPuncture()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *TreatmentUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TreatmentUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *TreatmentUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TreatmentUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *TreatmentUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := treatment.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TreatmentUpdate) check() error {
	if v, ok := _u.mutation.Objective(); ok {
		if err := treatment.ObjectiveValidator(v); err != nil {
			return &ValidationError{Name: "objective", err: fmt.Errorf(`repo: validator failed for field "Treatment.objective": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := treatment.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`repo: validator failed for field "Treatment.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.MedicationType(); ok {
		if err := treatment.MedicationTypeValidator(v); err != nil {
			return &ValidationError{Name: "medication_type", err: fmt.Errorf(`repo: validator failed for field "Treatment.medication_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.MedicationDose(); ok {
		if err := treatment.MedicationDoseValidator(v); err != nil {
			return &ValidationError{Name: "medication_dose", err: fmt.Errorf(`repo: validator failed for field "Treatment.medication_dose": %w`, err)}
		}
	}
	if v, ok := _u.mutation.MedicationDuration(); ok {
		if err := treatment.MedicationDurationValidator(v); err != nil {
			return &ValidationError{Name: "medication_duration", err: fmt.Errorf(`repo: validator failed for field "Treatment.medication_duration": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ConsentDocumentKey(); ok {
		if err := treatment.ConsentDocumentKeyValidator(v); err != nil {
			return &ValidationError{Name: "consent_document_key", err: fmt.Errorf(`repo: validator failed for field "Treatment.consent_document_key": %w`, err)}
		}
	}
	if _u.mutation.PatientCleared() && len(_u.mutation.PatientIDs()) > 0 {
		return errors.New(`repo: clearing a required unique edge "Treatment.patient"`)
	}
	if _u.mutation.DoctorCleared() && len(_u.mutation.DoctorIDs()) > 0 {
		return errors.New(`repo: clearing a required unique edge "Treatment.doctor"`)
	}
	return nil
}

func (_u *TreatmentUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(treatment.Table, treatment.Columns, sqlgraph.NewFieldSpec(treatment.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(treatment.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Objective(); ok {
		_spec.SetField(treatment.FieldObjective, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(treatment.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.StimulationProtocol(); ok {
		_spec.SetField(treatment.FieldStimulationProtocol, field.TypeString, value)
	}
	if _u.mutation.StimulationProtocolCleared() {
		_spec.ClearField(treatment.FieldStimulationProtocol, field.TypeString)
	}
	if value, ok := _u.mutation.MedicationType(); ok {
		_spec.SetField(treatment.FieldMedicationType, field.TypeString, value)
	}
	if _u.mutation.MedicationTypeCleared() {
		_spec.ClearField(treatment.FieldMedicationType, field.TypeString)
	}
	if value, ok := _u.mutation.MedicationDose(); ok {
		_spec.SetField(treatment.FieldMedicationDose, field.TypeString, value)
	}
	if _u.mutation.MedicationDoseCleared() {
		_spec.ClearField(treatment.FieldMedicationDose, field.TypeString)
	}
	if value, ok := _u.mutation.MedicationDuration(); ok {
		_spec.SetField(treatment.FieldMedicationDuration, field.TypeString, value)
	}
	if _u.mutation.MedicationDurationCleared() {
		_spec.ClearField(treatment.FieldMedicationDuration, field.TypeString)
	}
	if value, ok := _u.mutation.OocytesViable(); ok {
		_spec.SetField(treatment.FieldOocytesViable, field.TypeBool, value)
	}
	if _u.mutation.OocytesViableCleared() {
		_spec.ClearField(treatment.FieldOocytesViable, field.TypeBool)
	}
	if value, ok := _u.mutation.SpermViable(); ok {
		_spec.SetField(treatment.FieldSpermViable, field.TypeBool, value)
	}
	if _u.mutation.SpermViableCleared() {
		_spec.ClearField(treatment.FieldSpermViable, field.TypeBool)
	}
	if value, ok := _u.mutation.ConsentDocumentKey(); ok {
		_spec.SetField(treatment.FieldConsentDocumentKey, field.TypeString, value)
	}
	if _u.mutation.ConsentDocumentKeyCleared() {
		_spec.ClearField(treatment.FieldConsentDocumentKey, field.TypeString)
	}
	if _u.mutation.PatientCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.PatientIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.DoctorCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.DoctorIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.MonitoringDaysCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedMonitoringDaysIDs(); len(nodes) > 0 && !_u.mutation.MonitoringDaysCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.MonitoringDaysIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.StudyResultsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedStudyResultsIDs(); len(nodes) > 0 && !_u.mutation.StudyResultsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.StudyResultsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.MedicalOrdersCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedMedicalOrdersIDs(); len(nodes) > 0 && !_u.mutation.MedicalOrdersCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.MedicalOrdersIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.PunctureCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.PunctureIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{treatment.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// TreatmentUpdateOne is the builder for updating a single Treatment entity.
type TreatmentUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *TreatmentMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *TreatmentUpdateOne) SetUpdatedAt(v time.Time) *TreatmentUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetPatientID sets the "patient_id" field.
func (_u *TreatmentUpdateOne) SetPatientID(v uuid.UUID) *TreatmentUpdateOne {
	_u.mutation.SetPatientID(v)
	return _u
}

// SetNillablePatientID sets the "patient_id" field if the given value is not nil.
func (_u *TreatmentUpdateOne) SetNillablePatientID(v *uuid.UUID) *TreatmentUpdateOne {
	if v != nil {
		_u.SetPatientID(*v)
	}
	return _u
}

// SetDoctorID sets the "doctor_id" field.
func (_u *TreatmentUpdateOne) SetDoctorID(v uuid.UUID) *TreatmentUpdateOne {
	_u.mutation.SetDoctorID(v)
	return _u
}

// SetNillableDoctorID sets the "doctor_id" field if the given value is not nil.
func (_u *TreatmentUpdateOne) SetNillableDoctorID(v *uuid.UUID) *TreatmentUpdateOne {
	if v != nil {
		_u.SetDoctorID(*v)
	}
	return _u
}

// SetObjective sets the "objective" field.
func (_u *TreatmentUpdateOne) SetObjective(v treatment.Objective) *TreatmentUpdateOne {
	_u.mutation.SetObjective(v)
	return _u
}

// SetNillableObjective sets the "objective" field if the given value is not nil.
func (_u *TreatmentUpdateOne) SetNillableObjective(v *treatment.Objective) *TreatmentUpdateOne {
	if v != nil {
		_u.SetObjective(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *TreatmentUpdateOne) SetStatus(v treatment.Status) *TreatmentUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *TreatmentUpdateOne) SetNillableStatus(v *treatment.Status) *TreatmentUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetStimulationProtocol sets the "stimulation_protocol" field.
func (_u *TreatmentUpdateOne) SetStimulationProtocol(v string) *TreatmentUpdateOne {
	_u.mutation.SetStimulationProtocol(v)
	return _u
}

// SetNillableStimulationProtocol sets the "stimulation_protocol" field if the given value is not nil.
func (_u *TreatmentUpdateOne) SetNillableStimulationProtocol(v *string) *TreatmentUpdateOne {
	if v != nil {
		_u.SetStimulationProtocol(*v)
	}
	return _u
}

// ClearStimulationProtocol clears the value of the "stimulation_protocol" field.
func (_u *TreatmentUpdateOne) ClearStimulationProtocol() *TreatmentUpdateOne {
	_u.mutation.ClearStimulationProtocol()
	return _u
}

// SetMedicationType sets the "medication_type" field.
func (_u *TreatmentUpdateOne) SetMedicationType(v string) *TreatmentUpdateOne {
	_u.mutation.SetMedicationType(v)
	return _u
}

// SetNillableMedicationType sets the "medication_type" field if the given value is not nil.
func (_u *TreatmentUpdateOne) SetNillableMedicationType(v *string) *TreatmentUpdateOne {
	if v != nil {
		_u.SetMedicationType(*v)
	}
	return _u
}

// ClearMedicationType clears the value of the "medication_type" field.
func (_u *TreatmentUpdateOne) ClearMedicationType() *TreatmentUpdateOne {
	_u.mutation.ClearMedicationType()
	return _u
}

// SetMedicationDose sets the "medication_dose" field.
func (_u *TreatmentUpdateOne) SetMedicationDose(v string) *TreatmentUpdateOne {
	_u.mutation.SetMedicationDose(v)
	return _u
}

// SetNillableMedicationDose sets the "medication_dose" field if the given value is not nil.
func (_u *TreatmentUpdateOne) SetNillableMedicationDose(v *string) *TreatmentUpdateOne {
	if v != nil {
		_u.SetMedicationDose(*v)
	}
	return _u
}

// ClearMedicationDose clears the value of the "medication_dose" field.
func (_u *TreatmentUpdateOne) ClearMedicationDose() *TreatmentUpdateOne {
	_u.mutation.ClearMedicationDose()
	return _u
}

// SetMedicationDuration sets the "medication_duration" field.
func (_u *TreatmentUpdateOne) SetMedicationDuration(v string) *TreatmentUpdateOne {
	_u.mutation.SetMedicationDuration(v)
	return _u
}

// SetNillableMedicationDuration sets the "medication_duration" field if the given value is not nil.
func (_u *TreatmentUpdateOne) SetNillableMedicationDuration(v *string) *TreatmentUpdateOne {
	if v != nil {
		_u.SetMedicationDuration(*v)
	}
	return _u
}

// ClearMedicationDuration clears the value of the "medication_duration" field.
func (_u *TreatmentUpdateOne) ClearMedicationDuration() *TreatmentUpdateOne {
	_u.mutation.ClearMedicationDuration()
	return _u
}

// SetOocytesViable sets the "oocytes_viable" field.
func (_u *TreatmentUpdateOne) SetOocytesViable(v bool) *TreatmentUpdateOne {
	_u.mutation.SetOocytesViable(v)
	return _u
}

// SetNillableOocytesViable sets the "oocytes_viable" field if the given value is not nil.
func (_u *TreatmentUpdateOne) SetNillableOocytesViable(v *bool) *TreatmentUpdateOne {
	if v != nil {
		_u.SetOocytesViable(*v)
	}
	return _u
}

// ClearOocytesViable clears the value of the "oocytes_viable" field.
func (_u *TreatmentUpdateOne) ClearOocytesViable() *TreatmentUpdateOne {
	_u.mutation.ClearOocytesViable()
	return _u
}

// SetSpermViable sets the "sperm_viable" field.
func (_u *TreatmentUpdateOne) SetSpermViable(v bool) *TreatmentUpdateOne {
	_u.mutation.SetSpermViable(v)
	return _u
}

// SetNillableSpermViable sets the "sperm_viable" field if the given value is not nil.
func (_u *TreatmentUpdateOne) SetNillableSpermViable(v *bool) *TreatmentUpdateOne {
	if v != nil {
		_u.SetSpermViable(*v)
	}
	return _u
}

// ClearSpermViable clears the value of the "sperm_viable" field.
func (_u *TreatmentUpdateOne) ClearSpermViable() *TreatmentUpdateOne {
	_u.mutation.ClearSpermViable()
	return _u
}

// SetConsentDocumentKey sets the "consent_document_key" field.
func (_u *TreatmentUpdateOne) SetConsentDocumentKey(v string) *TreatmentUpdateOne {
	_u.mutation.SetConsentDocumentKey(v)
	return _u
}

// SetNillableConsentDocumentKey sets the "consent_document_key" field if the given value is not nil.
func (_u *TreatmentUpdateOne) SetNillableConsentDocumentKey(v *string) *TreatmentUpdateOne {
	if v != nil {
		_u.SetConsentDocumentKey(*v)
	}
	return _u
}

// ClearConsentDocumentKey clears the value of the "consent_document_key" field.
func (_u *TreatmentUpdateOne) ClearConsentDocumentKey() *TreatmentUpdateOne {
	_u.mutation.ClearConsentDocumentKey()
	return _u
}

// SetPatient sets the "patient" edge to the Patient entity.
func (_u *TreatmentUpdateOne) SetPatient(v *Patient) *TreatmentUpdateOne {
	return _u.SetPatientID(v.ID)
}

// SetDoctor sets the "doctor" edge to the User entity.
func (_u *TreatmentUpdateOne) SetDoctor(v *User) *TreatmentUpdateOne {
	return _u.SetDoctorID(v.ID)
}

// AddMonitoringDayIDs adds the "monitoring_days" edge to the MonitoringDay entity by IDs.
func (_u *TreatmentUpdateOne) AddMonitoringDayIDs(ids ...uuid.UUID) *TreatmentUpdateOne {
	_u.mutation.AddMonitoringDayIDs(ids...)
	return _u
}

// AddMonitoringDays adds the "monitoring_days" edges to the MonitoringDay entity.
func (_u *TreatmentUpdateOne) AddMonitoringDays(v ...*MonitoringDay) *TreatmentUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddMonitoringDayIDs(ids...)
}

// AddStudyResultIDs adds the "study_results" edge to the StudyResult entity by IDs.
func (_u *TreatmentUpdateOne) AddStudyResultIDs(ids ...uuid.UUID) *TreatmentUpdateOne {
	_u.mutation.AddStudyResultIDs(ids...)
	return _u
}

// AddStudyResults adds the "study_results" edges to the StudyResult entity.
func (_u *TreatmentUpdateOne) AddStudyResults(v ...*StudyResult) *TreatmentUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddStudyResultIDs(ids...)
}

// AddMedicalOrderIDs adds the "medical_orders" edge to the MedicalOrder entity by IDs.
func (_u *TreatmentUpdateOne) AddMedicalOrderIDs(ids ...uuid.UUID) *TreatmentUpdateOne {
	_u.mutation.AddMedicalOrderIDs(ids...)
	return _u
}

// AddMedicalOrders adds the "medical_orders" edges to the MedicalOrder entity.
func (_u *TreatmentUpdateOne) AddMedicalOrders(v ...*MedicalOrder) *TreatmentUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddMedicalOrderIDs(ids...)
}

// SetPunctureID sets the "puncture" edge to the Puncture entity by ID.
func (_u *TreatmentUpdateOne) SetPunctureID(id uuid.UUID) *TreatmentUpdateOne {
	_u.mutation.SetPunctureID(id)
	return _u
}

// SetNillablePunctureID sets the "puncture" edge to the Puncture entity by ID if the given value is not nil.
func (_u *TreatmentUpdateOne) SetNillablePunctureID(id *uuid.UUID) *TreatmentUpdateOne {
	if id != nil {
		_u = _u.SetPunctureID(*id)
	}
	return _u
}

// SetPuncture sets the "puncture" edge to the Puncture entity.
func (_u *TreatmentUpdateOne) SetPuncture(v *Puncture) *TreatmentUpdateOne {
	return _u.SetPunctureID(v.ID)
}

// Mutation returns the TreatmentMutation object of the builder.
func (_u *TreatmentUpdateOne) Mutation() *TreatmentMutation {
	return _u.mutation
}

// ClearPatient clears the "patient" edge to the Patient entity.
func (_u *TreatmentUpdateOne) ClearPatient() *TreatmentUpdateOne {
	_u.mutation.ClearPatient()
	return _u
}

// ClearDoctor clears the "doctor" edge to the User entity.
func (_u *TreatmentUpdateOne) ClearDoctor() *TreatmentUpdateOne {
	_u.mutation.ClearDoctor()
	return _u
}

// ClearMonitoringDays clears all "monitoring_days" edges to the MonitoringDay entity.
func (_u *TreatmentUpdateOne) ClearMonitoringDays() *TreatmentUpdateOne {
	_u.mutation.ClearMonitoringDays()
	return _u
}

// RemoveMonitoringDayIDs removes the "monitoring_days" edge to MonitoringDay entities by IDs.
func (_u *TreatmentUpdateOne) RemoveMonitoringDayIDs(ids ...uuid.UUID) *TreatmentUpdateOne {
	_u.mutation.RemoveMonitoringDayIDs(ids...)
	return _u
}

// RemoveMonitoringDays removes "monitoring_days" edges to MonitoringDay entities.
func (_u *TreatmentUpdateOne) RemoveMonitoringDays(v ...*MonitoringDay) *TreatmentUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveMonitoringDayIDs(ids...)
}

// ClearStudyResults clears all "study_results" edges to the StudyResult entity.
func (_u *TreatmentUpdateOne) ClearStudyResults() *TreatmentUpdateOne {
	_u.mutation.ClearStudyResults()
	return _u
}

// RemoveStudyResultIDs removes the "study_results" edge to StudyResult entities by IDs.
func (_u *TreatmentUpdateOne) RemoveStudyResultIDs(ids ...uuid.UUID) *TreatmentUpdateOne {
	_u.mutation.RemoveStudyResultIDs(ids...)
	return _u
}

// RemoveStudyResults removes "study_results" edges to StudyResult entities.
func (_u *TreatmentUpdateOne) RemoveStudyResults(v ...*StudyResult) *TreatmentUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveStudyResultIDs(ids...)
}

// ClearMedicalOrders clears all "medical_orders" edges to the MedicalOrder entity.
func (_u *TreatmentUpdateOne) ClearMedicalOrders() *TreatmentUpdateOne {
	_u.mutation.ClearMedicalOrders()
	return _u
}

// RemoveMedicalOrderIDs removes the "medical_orders" edge to MedicalOrder entities by IDs.
func (_u *TreatmentUpdateOne) RemoveMedicalOrderIDs(ids ...uuid.UUID) *TreatmentUpdateOne {
	_u.mutation.RemoveMedicalOrderIDs(ids...)
	return _u
}

// RemoveMedicalOrders removes "medical_orders" edges to MedicalOrder entities.
func (_u *TreatmentUpdateOne) RemoveMedicalOrders(v ...*MedicalOrder) *TreatmentUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveMedicalOrderIDs(ids...)
}

// ClearPuncture clears the "puncture" edge to the Puncture entity.
func (_u *TreatmentUpdateOne) ClearPuncture() *TreatmentUpdateOne {
	_u.mutation.ClearPuncture()
	return _u
}

// Where appends a list predicates to the TreatmentUpdate builder.
func (_u *TreatmentUpdateOne) Where(ps ...predicate.Treatment) *TreatmentUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *TreatmentUpdateOne) Select(field string, fields ...string) *TreatmentUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Treatment entity.
func (_u *TreatmentUpdateOne) Save(ctx context.Context) (*Treatment, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TreatmentUpdateOne) SaveX(ctx context.Context) *Treatment {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *TreatmentUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TreatmentUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *TreatmentUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := treatment.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TreatmentUpdateOne) check() error {
	if v, ok := _u.mutation.Objective(); ok {
		if err := treatment.ObjectiveValidator(v); err != nil {
			return &ValidationError{Name: "objective", err: fmt.Errorf(`repo: validator failed for field "Treatment.objective": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := treatment.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`repo: validator failed for field "Treatment.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.MedicationType(); ok {
		if err := treatment.MedicationTypeValidator(v); err != nil {
			return &ValidationError{Name: "medication_type", err: fmt.Errorf(`repo: validator failed for field "Treatment.medication_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.MedicationDose(); ok {
		if err := treatment.MedicationDoseValidator(v); err != nil {
			return &ValidationError{Name: "medication_dose", err: fmt.Errorf(`repo: validator failed for field "Treatment.medication_dose": %w`, err)}
		}
	}
	if v, ok := _u.mutation.MedicationDuration(); ok {
		if err := treatment.MedicationDurationValidator(v); err != nil {
			return &ValidationError{Name: "medication_duration", err: fmt.Errorf(`repo: validator failed for field "Treatment.medication_duration": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ConsentDocumentKey(); ok {
		if err := treatment.ConsentDocumentKeyValidator(v); err != nil {
			return &ValidationError{Name: "consent_document_key", err: fmt.Errorf(`repo: validator failed for field "Treatment.consent_document_key": %w`, err)}
		}
	}
	if _u.mutation.PatientCleared() && len(_u.mutation.PatientIDs()) > 0 {
		return errors.New(`repo: clearing a required unique edge "Treatment.patient"`)
	}
	if _u.mutation.DoctorCleared() && len(_u.mutation.DoctorIDs()) > 0 {
		return errors.New(`repo: clearing a required unique edge "Treatment.doctor"`)
	}
	return nil
}

func (_u *TreatmentUpdateOne) sqlSave(ctx context.Context) (_node *Treatment, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(treatment.Table, treatment.Columns, sqlgraph.NewFieldSpec(treatment.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`repo: missing "Treatment.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, treatment.FieldID)
		for _, f := range fields {
			if !treatment.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("repo: invalid field %q for query", f)}
			}
			if f != treatment.FieldID {
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
		_spec.SetField(treatment.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Objective(); ok {
		_spec.SetField(treatment.FieldObjective, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(treatment.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.StimulationProtocol(); ok {
		_spec.SetField(treatment.FieldStimulationProtocol, field.TypeString, value)
	}
	if _u.mutation.StimulationProtocolCleared() {
		_spec.ClearField(treatment.FieldStimulationProtocol, field.TypeString)
	}
	if value, ok := _u.mutation.MedicationType(); ok {
		_spec.SetField(treatment.FieldMedicationType, field.TypeString, value)
	}
	if _u.mutation.MedicationTypeCleared() {
		_spec.ClearField(treatment.FieldMedicationType, field.TypeString)
	}
	if value, ok := _u.mutation.MedicationDose(); ok {
		_spec.SetField(treatment.FieldMedicationDose, field.TypeString, value)
	}
	if _u.mutation.MedicationDoseCleared() {
		_spec.ClearField(treatment.FieldMedicationDose, field.TypeString)
	}
	if value, ok := _u.mutation.MedicationDuration(); ok {
		_spec.SetField(treatment.FieldMedicationDuration, field.TypeString, value)
	}
	if _u.mutation.MedicationDurationCleared() {
		_spec.ClearField(treatment.FieldMedicationDuration, field.TypeString)
	}
	if value, ok := _u.mutation.OocytesViable(); ok {
		_spec.SetField(treatment.FieldOocytesViable, field.TypeBool, value)
	}
	if _u.mutation.OocytesViableCleared() {
		_spec.ClearField(treatment.FieldOocytesViable, field.TypeBool)
	}
	if value, ok := _u.mutation.SpermViable(); ok {
		_spec.SetField(treatment.FieldSpermViable, field.TypeBool, value)
	}
	if _u.mutation.SpermViableCleared() {
		_spec.ClearField(treatment.FieldSpermViable, field.TypeBool)
	}
	if value, ok := _u.mutation.ConsentDocumentKey(); ok {
		_spec.SetField(treatment.FieldConsentDocumentKey, field.TypeString, value)
	}
	if _u.mutation.ConsentDocumentKeyCleared() {
		_spec.ClearField(treatment.FieldConsentDocumentKey, field.TypeString)
	}
	if _u.mutation.PatientCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.PatientIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.DoctorCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.DoctorIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.MonitoringDaysCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedMonitoringDaysIDs(); len(nodes) > 0 && !_u.mutation.MonitoringDaysCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.MonitoringDaysIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.StudyResultsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedStudyResultsIDs(); len(nodes) > 0 && !_u.mutation.StudyResultsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.StudyResultsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.MedicalOrdersCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedMedicalOrdersIDs(); len(nodes) > 0 && !_u.mutation.MedicalOrdersCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.MedicalOrdersIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.PunctureCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.PunctureIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Treatment{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{treatment.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
