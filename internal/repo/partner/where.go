// Code generated by ent, DO NOT EDIT.

package partner

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/fertitrack/fertitrack_backend/internal/repo/predicate"
	"github.com/google/uuid"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.Partner {
	return predicate.Partner(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.Partner {
	return predicate.Partner(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.Partner {
	return predicate.Partner(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.Partner {
	return predicate.Partner(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.Partner {
	return predicate.Partner(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.Partner {
	return predicate.Partner(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.Partner {
	return predicate.Partner(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.Partner {
	return predicate.Partner(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.Partner {
	return predicate.Partner(sql.FieldLTE(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Partner {
	return predicate.Partner(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Partner {
	return predicate.Partner(sql.FieldEQ(FieldUpdatedAt, v))
}

// PatientID applies equality check predicate on the "patient_id" field. It's identical to PatientIDEQ.
func PatientID(v uuid.UUID) predicate.Partner {
	return predicate.Partner(sql.FieldEQ(FieldPatientID, v))
}

// FirstName applies equality check predicate on the "first_name" field. It's identical to FirstNameEQ.
func FirstName(v string) predicate.Partner {
	return predicate.Partner(sql.FieldEQ(FieldFirstName, v))
}

// LastName applies equality check predicate on the "last_name" field. It's identical to LastNameEQ.
func LastName(v string) predicate.Partner {
	return predicate.Partner(sql.FieldEQ(FieldLastName, v))
}

// DateOfBirth applies equality check predicate on the "date_of_birth" field. It's identical to DateOfBirthEQ.
func DateOfBirth(v time.Time) predicate.Partner {
	return predicate.Partner(sql.FieldEQ(FieldDateOfBirth, v))
}

// Dni applies equality check predicate on the "dni" field. It's identical to DniEQ.
func Dni(v string) predicate.Partner {
	return predicate.Partner(sql.FieldEQ(FieldDni, v))
}

// GenitalBackground applies equality check predicate on the "genital_background" field. It's identical to GenitalBackgroundEQ.
func GenitalBackground(v string) predicate.Partner {
	return predicate.Partner(sql.FieldEQ(FieldGenitalBackground, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Partner {
	return predicate.Partner(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Partner {
	return predicate.Partner(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Partner {
	return predicate.Partner(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Partner {
	return predicate.Partner(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Partner {
	return predicate.Partner(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Partner {
	return predicate.Partner(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Partner {
	return predicate.Partner(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Partner {
	return predicate.Partner(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Partner {
	return predicate.Partner(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Partner {
	return predicate.Partner(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Partner {
	return predicate.Partner(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Partner {
	return predicate.Partner(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Partner {
	return predicate.Partner(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Partner {
	return predicate.Partner(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Partner {
	return predicate.Partner(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Partner {
	return predicate.Partner(sql.FieldLTE(FieldUpdatedAt, v))
}

// PatientIDEQ applies the EQ predicate on the "patient_id" field.
func PatientIDEQ(v uuid.UUID) predicate.Partner {
	return predicate.Partner(sql.FieldEQ(FieldPatientID, v))
}

// PatientIDNEQ applies the NEQ predicate on the "patient_id" field.
func PatientIDNEQ(v uuid.UUID) predicate.Partner {
	return predicate.Partner(sql.FieldNEQ(FieldPatientID, v))
}

// PatientIDIn applies the In predicate on the "patient_id" field.
func PatientIDIn(vs ...uuid.UUID) predicate.Partner {
	return predicate.Partner(sql.FieldIn(FieldPatientID, vs...))
}

// PatientIDNotIn applies the NotIn predicate on the "patient_id" field.
func PatientIDNotIn(vs ...uuid.UUID) predicate.Partner {
	return predicate.Partner(sql.FieldNotIn(FieldPatientID, vs...))
}

// FirstNameEQ applies the EQ predicate on the "first_name" field.
func FirstNameEQ(v string) predicate.Partner {
	return predicate.Partner(sql.FieldEQ(FieldFirstName, v))
}

// FirstNameNEQ applies the NEQ predicate on the "first_name" field.
func FirstNameNEQ(v string) predicate.Partner {
	return predicate.Partner(sql.FieldNEQ(FieldFirstName, v))
}

// FirstNameIn applies the In predicate on the "first_name" field.
func FirstNameIn(vs ...string) predicate.Partner {
	return predicate.Partner(sql.FieldIn(FieldFirstName, vs...))
}

// FirstNameNotIn applies the NotIn predicate on the "first_name" field.
func FirstNameNotIn(vs ...string) predicate.Partner {
	return predicate.Partner(sql.FieldNotIn(FieldFirstName, vs...))
}

// FirstNameGT applies the GT predicate on the "first_name" field.
func FirstNameGT(v string) predicate.Partner {
	return predicate.Partner(sql.FieldGT(FieldFirstName, v))
}

// FirstNameGTE applies the GTE predicate on the "first_name" field.
func FirstNameGTE(v string) predicate.Partner {
	return predicate.Partner(sql.FieldGTE(FieldFirstName, v))
}

// FirstNameLT applies the LT predicate on the "first_name" field.
func FirstNameLT(v string) predicate.Partner {
	return predicate.Partner(sql.FieldLT(FieldFirstName, v))
}

// FirstNameLTE applies the LTE predicate on the "first_name" field.
func FirstNameLTE(v string) predicate.Partner {
	return predicate.Partner(sql.FieldLTE(FieldFirstName, v))
}

// FirstNameContains applies the Contains predicate on the "first_name" field.
func FirstNameContains(v string) predicate.Partner {
	return predicate.Partner(sql.FieldContains(FieldFirstName, v))
}

// FirstNameHasPrefix applies the HasPrefix predicate on the "first_name" field.
func FirstNameHasPrefix(v string) predicate.Partner {
	return predicate.Partner(sql.FieldHasPrefix(FieldFirstName, v))
}

// FirstNameHasSuffix applies the HasSuffix predicate on the "first_name" field.
func FirstNameHasSuffix(v string) predicate.Partner {
	return predicate.Partner(sql.FieldHasSuffix(FieldFirstName, v))
}

// FirstNameEqualFold applies the EqualFold predicate on the "first_name" field.
func FirstNameEqualFold(v string) predicate.Partner {
	return predicate.Partner(sql.FieldEqualFold(FieldFirstName, v))
}

// FirstNameContainsFold applies the ContainsFold predicate on the "first_name" field.
func FirstNameContainsFold(v string) predicate.Partner {
	return predicate.Partner(sql.FieldContainsFold(FieldFirstName, v))
}

// LastNameEQ applies the EQ predicate on the "last_name" field.
func LastNameEQ(v string) predicate.Partner {
	return predicate.Partner(sql.FieldEQ(FieldLastName, v))
}

// LastNameNEQ applies the NEQ predicate on the "last_name" field.
func LastNameNEQ(v string) predicate.Partner {
	return predicate.Partner(sql.FieldNEQ(FieldLastName, v))
}

// LastNameIn applies the In predicate on the "last_name" field.
func LastNameIn(vs ...string) predicate.Partner {
	return predicate.Partner(sql.FieldIn(FieldLastName, vs...))
}

// LastNameNotIn applies the NotIn predicate on the "last_name" field.
func LastNameNotIn(vs ...string) predicate.Partner {
	return predicate.Partner(sql.FieldNotIn(FieldLastName, vs...))
}

// LastNameGT applies the GT predicate on the "last_name" field.
func LastNameGT(v string) predicate.Partner {
	return predicate.Partner(sql.FieldGT(FieldLastName, v))
}

// LastNameGTE applies the GTE predicate on the "last_name" field.
func LastNameGTE(v string) predicate.Partner {
	return predicate.Partner(sql.FieldGTE(FieldLastName, v))
}

// LastNameLT applies the LT predicate on the "last_name" field.
func LastNameLT(v string) predicate.Partner {
	return predicate.Partner(sql.FieldLT(FieldLastName, v))
}

// LastNameLTE applies the LTE predicate on the "last_name" field.
func LastNameLTE(v string) predicate.Partner {
	return predicate.Partner(sql.FieldLTE(FieldLastName, v))
}

// LastNameContains applies the Contains predicate on the "last_name" field.
func LastNameContains(v string) predicate.Partner {
	return predicate.Partner(sql.FieldContains(FieldLastName, v))
}

// LastNameHasPrefix applies the HasPrefix predicate on the "last_name" field.
func LastNameHasPrefix(v string) predicate.Partner {
	return predicate.Partner(sql.FieldHasPrefix(FieldLastName, v))
}

// LastNameHasSuffix applies the HasSuffix predicate on the "last_name" field.
func LastNameHasSuffix(v string) predicate.Partner {
	return predicate.Partner(sql.FieldHasSuffix(FieldLastName, v))
}

// LastNameEqualFold applies the EqualFold predicate on the "last_name" field.
func LastNameEqualFold(v string) predicate.Partner {
	return predicate.Partner(sql.FieldEqualFold(FieldLastName, v))
}

// LastNameContainsFold applies the ContainsFold predicate on the "last_name" field.
func LastNameContainsFold(v string) predicate.Partner {
	return predicate.Partner(sql.FieldContainsFold(FieldLastName, v))
}

// DateOfBirthEQ applies the EQ predicate on the "date_of_birth" field.
func DateOfBirthEQ(v time.Time) predicate.Partner {
	return predicate.Partner(sql.FieldEQ(FieldDateOfBirth, v))
}

// DateOfBirthNEQ applies the NEQ predicate on the "date_of_birth" field.
func DateOfBirthNEQ(v time.Time) predicate.Partner {
	return predicate.Partner(sql.FieldNEQ(FieldDateOfBirth, v))
}

// DateOfBirthIn applies the In predicate on the "date_of_birth" field.
func DateOfBirthIn(vs ...time.Time) predicate.Partner {
	return predicate.Partner(sql.FieldIn(FieldDateOfBirth, vs...))
}

// DateOfBirthNotIn applies the NotIn predicate on the "date_of_birth" field.
func DateOfBirthNotIn(vs ...time.Time) predicate.Partner {
	return predicate.Partner(sql.FieldNotIn(FieldDateOfBirth, vs...))
}

// DateOfBirthGT applies the GT predicate on the "date_of_birth" field.
func DateOfBirthGT(v time.Time) predicate.Partner {
	return predicate.Partner(sql.FieldGT(FieldDateOfBirth, v))
}

// DateOfBirthGTE applies the GTE predicate on the "date_of_birth" field.
func DateOfBirthGTE(v time.Time) predicate.Partner {
	return predicate.Partner(sql.FieldGTE(FieldDateOfBirth, v))
}

// DateOfBirthLT applies the LT predicate on the "date_of_birth" field.
func DateOfBirthLT(v time.Time) predicate.Partner {
	return predicate.Partner(sql.FieldLT(FieldDateOfBirth, v))
}

// DateOfBirthLTE applies the LTE predicate on the "date_of_birth" field.
func DateOfBirthLTE(v time.Time) predicate.Partner {
	return predicate.Partner(sql.FieldLTE(FieldDateOfBirth, v))
}

// BiologicalSexEQ applies the EQ predicate on the "biological_sex" field.
func BiologicalSexEQ(v BiologicalSex) predicate.Partner {
	return predicate.Partner(sql.FieldEQ(FieldBiologicalSex, v))
}

// BiologicalSexNEQ applies the NEQ predicate on the "biological_sex" field.
func BiologicalSexNEQ(v BiologicalSex) predicate.Partner {
	return predicate.Partner(sql.FieldNEQ(FieldBiologicalSex, v))
}

// BiologicalSexIn applies the In predicate on the "biological_sex" field.
func BiologicalSexIn(vs ...BiologicalSex) predicate.Partner {
	return predicate.Partner(sql.FieldIn(FieldBiologicalSex, vs...))
}

// BiologicalSexNotIn applies the NotIn predicate on the "biological_sex" field.
func BiologicalSexNotIn(vs ...BiologicalSex) predicate.Partner {
	return predicate.Partner(sql.FieldNotIn(FieldBiologicalSex, vs...))
}

// DniEQ applies the EQ predicate on the "dni" field.
func DniEQ(v string) predicate.Partner {
	return predicate.Partner(sql.FieldEQ(FieldDni, v))
}

// DniNEQ applies the NEQ predicate on the "dni" field.
func DniNEQ(v string) predicate.Partner {
	return predicate.Partner(sql.FieldNEQ(FieldDni, v))
}

// DniIn applies the In predicate on the "dni" field.
func DniIn(vs ...string) predicate.Partner {
	return predicate.Partner(sql.FieldIn(FieldDni, vs...))
}

// DniNotIn applies the NotIn predicate on the "dni" field.
func DniNotIn(vs ...string) predicate.Partner {
	return predicate.Partner(sql.FieldNotIn(FieldDni, vs...))
}

// DniGT applies the GT predicate on the "dni" field.
func DniGT(v string) predicate.Partner {
	return predicate.Partner(sql.FieldGT(FieldDni, v))
}

// DniGTE applies the GTE predicate on the "dni" field.
func DniGTE(v string) predicate.Partner {
	return predicate.Partner(sql.FieldGTE(FieldDni, v))
}

// DniLT applies the LT predicate on the "dni" field.
func DniLT(v string) predicate.Partner {
	return predicate.Partner(sql.FieldLT(FieldDni, v))
}

// DniLTE applies the LTE predicate on the "dni" field.
func DniLTE(v string) predicate.Partner {
	return predicate.Partner(sql.FieldLTE(FieldDni, v))
}

// DniContains applies the Contains predicate on the "dni" field.
func DniContains(v string) predicate.Partner {
	return predicate.Partner(sql.FieldContains(FieldDni, v))
}

// DniHasPrefix applies the HasPrefix predicate on the "dni" field.
func DniHasPrefix(v string) predicate.Partner {
	return predicate.Partner(sql.FieldHasPrefix(FieldDni, v))
}

// DniHasSuffix applies the HasSuffix predicate on the "dni" field.
func DniHasSuffix(v string) predicate.Partner {
	return predicate.Partner(sql.FieldHasSuffix(FieldDni, v))
}

// DniEqualFold applies the EqualFold predicate on the "dni" field.
func DniEqualFold(v string) predicate.Partner {
	return predicate.Partner(sql.FieldEqualFold(FieldDni, v))
}

// DniContainsFold applies the ContainsFold predicate on the "dni" field.
func DniContainsFold(v string) predicate.Partner {
	return predicate.Partner(sql.FieldContainsFold(FieldDni, v))
}

// GenitalBackgroundEQ applies the EQ predicate on the "genital_background" field.
func GenitalBackgroundEQ(v string) predicate.Partner {
	return predicate.Partner(sql.FieldEQ(FieldGenitalBackground, v))
}

// GenitalBackgroundNEQ applies the NEQ predicate on the "genital_background" field.
func GenitalBackgroundNEQ(v string) predicate.Partner {
	return predicate.Partner(sql.FieldNEQ(FieldGenitalBackground, v))
}

// GenitalBackgroundIn applies the In predicate on the "genital_background" field.
func GenitalBackgroundIn(vs ...string) predicate.Partner {
	return predicate.Partner(sql.FieldIn(FieldGenitalBackground, vs...))
}

// GenitalBackgroundNotIn applies the NotIn predicate on the "genital_background" field.
func GenitalBackgroundNotIn(vs ...string) predicate.Partner {
	return predicate.Partner(sql.FieldNotIn(FieldGenitalBackground, vs...))
}

// GenitalBackgroundGT applies the GT predicate on the "genital_background" field.
func GenitalBackgroundGT(v string) predicate.Partner {
	return predicate.Partner(sql.FieldGT(FieldGenitalBackground, v))
}

// GenitalBackgroundGTE applies the GTE predicate on the "genital_background" field.
func GenitalBackgroundGTE(v string) predicate.Partner {
	return predicate.Partner(sql.FieldGTE(FieldGenitalBackground, v))
}

// GenitalBackgroundLT applies the LT predicate on the "genital_background" field.
func GenitalBackgroundLT(v string) predicate.Partner {
	return predicate.Partner(sql.FieldLT(FieldGenitalBackground, v))
}

// GenitalBackgroundLTE applies the LTE predicate on the "genital_background" field.
func GenitalBackgroundLTE(v string) predicate.Partner {
	return predicate.Partner(sql.FieldLTE(FieldGenitalBackground, v))
}

// GenitalBackgroundContains applies the Contains predicate on the "genital_background" field.
func GenitalBackgroundContains(v string) predicate.Partner {
	return predicate.Partner(sql.FieldContains(FieldGenitalBackground, v))
}

// GenitalBackgroundHasPrefix applies the HasPrefix predicate on the "genital_background" field.
func GenitalBackgroundHasPrefix(v string) predicate.Partner {
	return predicate.Partner(sql.FieldHasPrefix(FieldGenitalBackground, v))
}

// GenitalBackgroundHasSuffix applies the HasSuffix predicate on the "genital_background" field.
func GenitalBackgroundHasSuffix(v string) predicate.Partner {
	return predicate.Partner(sql.FieldHasSuffix(FieldGenitalBackground, v))
}

// GenitalBackgroundIsNil applies the IsNil predicate on the "genital_background" field.
func GenitalBackgroundIsNil() predicate.Partner {
	return predicate.Partner(sql.FieldIsNull(FieldGenitalBackground))
}

// GenitalBackgroundNotNil applies the NotNil predicate on the "genital_background" field.
func GenitalBackgroundNotNil() predicate.Partner {
	return predicate.Partner(sql.FieldNotNull(FieldGenitalBackground))
}

// GenitalBackgroundEqualFold applies the EqualFold predicate on the "genital_background" field.
func GenitalBackgroundEqualFold(v string) predicate.Partner {
	return predicate.Partner(sql.FieldEqualFold(FieldGenitalBackground, v))
}

// GenitalBackgroundContainsFold applies the ContainsFold predicate on the "genital_background" field.
func GenitalBackgroundContainsFold(v string) predicate.Partner {
	return predicate.Partner(sql.FieldContainsFold(FieldGenitalBackground, v))
}

// HasPatient applies the HasEdge predicate on the "patient" edge.
func HasPatient() predicate.Partner {
	return predicate.Partner(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2O, true, PatientTable, PatientColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasPatientWith applies the HasEdge predicate on the "patient" edge with a given conditions (other predicates).
func HasPatientWith(preds ...predicate.Patient) predicate.Partner {
	return predicate.Partner(func(s *sql.Selector) {
		step := newPatientStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Partner) predicate.Partner {
	return predicate.Partner(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Partner) predicate.Partner {
	return predicate.Partner(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Partner) predicate.Partner {
	return predicate.Partner(sql.NotPredicates(p))
}
