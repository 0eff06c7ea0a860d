// Code generated by ent, DO NOT EDIT.

package patient

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/fertitrack/fertitrack_backend/internal/repo/predicate"
	"github.com/google/uuid"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.Patient {
	return predicate.Patient(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.Patient {
	return predicate.Patient(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.Patient {
	return predicate.Patient(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.Patient {
	return predicate.Patient(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.Patient {
	return predicate.Patient(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.Patient {
	return predicate.Patient(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.Patient {
	return predicate.Patient(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.Patient {
	return predicate.Patient(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.Patient {
	return predicate.Patient(sql.FieldLTE(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Patient {
	return predicate.Patient(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Patient {
	return predicate.Patient(sql.FieldEQ(FieldUpdatedAt, v))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v uuid.UUID) predicate.Patient {
	return predicate.Patient(sql.FieldEQ(FieldUserID, v))
}

// Occupation applies equality check predicate on the "occupation" field. It's identical to OccupationEQ.
func Occupation(v string) predicate.Patient {
	return predicate.Patient(sql.FieldEQ(FieldOccupation, v))
}

// MedicalCoverageID applies equality check predicate on the "medical_coverage_id" field. It's identical to MedicalCoverageIDEQ.
func MedicalCoverageID(v int) predicate.Patient {
	return predicate.Patient(sql.FieldEQ(FieldMedicalCoverageID, v))
}

// MedicalCoverageName applies equality check predicate on the "medical_coverage_name" field. It's identical to MedicalCoverageNameEQ.
func MedicalCoverageName(v string) predicate.Patient {
	return predicate.Patient(sql.FieldEQ(FieldMedicalCoverageName, v))
}

// MemberNumber applies equality check predicate on the "member_number" field. It's identical to MemberNumberEQ.
func MemberNumber(v string) predicate.Patient {
	return predicate.Patient(sql.FieldEQ(FieldMemberNumber, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Patient {
	return predicate.Patient(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Patient {
	return predicate.Patient(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Patient {
	return predicate.Patient(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Patient {
	return predicate.Patient(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Patient {
	return predicate.Patient(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Patient {
	return predicate.Patient(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Patient {
	return predicate.Patient(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Patient {
	return predicate.Patient(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Patient {
	return predicate.Patient(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Patient {
	return predicate.Patient(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Patient {
	return predicate.Patient(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Patient {
	return predicate.Patient(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Patient {
	return predicate.Patient(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Patient {
	return predicate.Patient(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Patient {
	return predicate.Patient(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Patient {
	return predicate.Patient(sql.FieldLTE(FieldUpdatedAt, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v uuid.UUID) predicate.Patient {
	return predicate.Patient(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v uuid.UUID) predicate.Patient {
	return predicate.Patient(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...uuid.UUID) predicate.Patient {
	return predicate.Patient(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...uuid.UUID) predicate.Patient {
	return predicate.Patient(sql.FieldNotIn(FieldUserID, vs...))
}

// OccupationEQ applies the EQ predicate on the "occupation" field.
func OccupationEQ(v string) predicate.Patient {
	return predicate.Patient(sql.FieldEQ(FieldOccupation, v))
}

// OccupationNEQ applies the NEQ predicate on the "occupation" field.
func OccupationNEQ(v string) predicate.Patient {
	return predicate.Patient(sql.FieldNEQ(FieldOccupation, v))
}

// OccupationIn applies the In predicate on the "occupation" field.
func OccupationIn(vs ...string) predicate.Patient {
	return predicate.Patient(sql.FieldIn(FieldOccupation, vs...))
}

// OccupationNotIn applies the NotIn predicate on the "occupation" field.
func OccupationNotIn(vs ...string) predicate.Patient {
	return predicate.Patient(sql.FieldNotIn(FieldOccupation, vs...))
}

// OccupationGT applies the GT predicate on the "occupation" field.
func OccupationGT(v string) predicate.Patient {
	return predicate.Patient(sql.FieldGT(FieldOccupation, v))
}

// OccupationGTE applies the GTE predicate on the "occupation" field.
func OccupationGTE(v string) predicate.Patient {
	return predicate.Patient(sql.FieldGTE(FieldOccupation, v))
}

// OccupationLT applies the LT predicate on the "occupation" field.
func OccupationLT(v string) predicate.Patient {
	return predicate.Patient(sql.FieldLT(FieldOccupation, v))
}

// OccupationLTE applies the LTE predicate on the "occupation" field.
func OccupationLTE(v string) predicate.Patient {
	return predicate.Patient(sql.FieldLTE(FieldOccupation, v))
}

// OccupationContains applies the Contains predicate on the "occupation" field.
func OccupationContains(v string) predicate.Patient {
	return predicate.Patient(sql.FieldContains(FieldOccupation, v))
}

// OccupationHasPrefix applies the HasPrefix predicate on the "occupation" field.
func OccupationHasPrefix(v string) predicate.Patient {
	return predicate.Patient(sql.FieldHasPrefix(FieldOccupation, v))
}

// OccupationHasSuffix applies the HasSuffix predicate on the "occupation" field.
func OccupationHasSuffix(v string) predicate.Patient {
	return predicate.Patient(sql.FieldHasSuffix(FieldOccupation, v))
}

// OccupationIsNil applies the IsNil predicate on the "occupation" field.
func OccupationIsNil() predicate.Patient {
	return predicate.Patient(sql.FieldIsNull(FieldOccupation))
}

// OccupationNotNil applies the NotNil predicate on the "occupation" field.
func OccupationNotNil() predicate.Patient {
	return predicate.Patient(sql.FieldNotNull(FieldOccupation))
}

// OccupationEqualFold applies the EqualFold predicate on the "occupation" field.
func OccupationEqualFold(v string) predicate.Patient {
	return predicate.Patient(sql.FieldEqualFold(FieldOccupation, v))
}

// OccupationContainsFold applies the ContainsFold predicate on the "occupation" field.
func OccupationContainsFold(v string) predicate.Patient {
	return predicate.Patient(sql.FieldContainsFold(FieldOccupation, v))
}

// MedicalCoverageIDEQ applies the EQ predicate on the "medical_coverage_id" field.
func MedicalCoverageIDEQ(v int) predicate.Patient {
	return predicate.Patient(sql.FieldEQ(FieldMedicalCoverageID, v))
}

// MedicalCoverageIDNEQ applies the NEQ predicate on the "medical_coverage_id" field.
func MedicalCoverageIDNEQ(v int) predicate.Patient {
	return predicate.Patient(sql.FieldNEQ(FieldMedicalCoverageID, v))
}

// MedicalCoverageIDIn applies the In predicate on the "medical_coverage_id" field.
func MedicalCoverageIDIn(vs ...int) predicate.Patient {
	return predicate.Patient(sql.FieldIn(FieldMedicalCoverageID, vs...))
}

// MedicalCoverageIDNotIn applies the NotIn predicate on the "medical_coverage_id" field.
func MedicalCoverageIDNotIn(vs ...int) predicate.Patient {
	return predicate.Patient(sql.FieldNotIn(FieldMedicalCoverageID, vs...))
}

// MedicalCoverageIDGT applies the GT predicate on the "medical_coverage_id" field.
func MedicalCoverageIDGT(v int) predicate.Patient {
	return predicate.Patient(sql.FieldGT(FieldMedicalCoverageID, v))
}

// MedicalCoverageIDGTE applies the GTE predicate on the "medical_coverage_id" field.
func MedicalCoverageIDGTE(v int) predicate.Patient {
	return predicate.Patient(sql.FieldGTE(FieldMedicalCoverageID, v))
}

// MedicalCoverageIDLT applies the LT predicate on the "medical_coverage_id" field.
func MedicalCoverageIDLT(v int) predicate.Patient {
	return predicate.Patient(sql.FieldLT(FieldMedicalCoverageID, v))
}

// MedicalCoverageIDLTE applies the LTE predicate on the "medical_coverage_id" field.
func MedicalCoverageIDLTE(v int) predicate.Patient {
	return predicate.Patient(sql.FieldLTE(FieldMedicalCoverageID, v))
}

// MedicalCoverageIDIsNil applies the IsNil predicate on the "medical_coverage_id" field.
func MedicalCoverageIDIsNil() predicate.Patient {
	return predicate.Patient(sql.FieldIsNull(FieldMedicalCoverageID))
}

// MedicalCoverageIDNotNil applies the NotNil predicate on the "medical_coverage_id" field.
func MedicalCoverageIDNotNil() predicate.Patient {
	return predicate.Patient(sql.FieldNotNull(FieldMedicalCoverageID))
}

// MedicalCoverageNameEQ applies the EQ predicate on the "medical_coverage_name" field.
func MedicalCoverageNameEQ(v string) predicate.Patient {
	return predicate.Patient(sql.FieldEQ(FieldMedicalCoverageName, v))
}

// MedicalCoverageNameNEQ applies the NEQ predicate on the "medical_coverage_name" field.
func MedicalCoverageNameNEQ(v string) predicate.Patient {
	return predicate.Patient(sql.FieldNEQ(FieldMedicalCoverageName, v))
}

// MedicalCoverageNameIn applies the In predicate on the "medical_coverage_name" field.
func MedicalCoverageNameIn(vs ...string) predicate.Patient {
	return predicate.Patient(sql.FieldIn(FieldMedicalCoverageName, vs...))
}

// MedicalCoverageNameNotIn applies the NotIn predicate on the "medical_coverage_name" field.
func MedicalCoverageNameNotIn(vs ...string) predicate.Patient {
	return predicate.Patient(sql.FieldNotIn(FieldMedicalCoverageName, vs...))
}

// MedicalCoverageNameGT applies the GT predicate on the "medical_coverage_name" field.
func MedicalCoverageNameGT(v string) predicate.Patient {
	return predicate.Patient(sql.FieldGT(FieldMedicalCoverageName, v))
}

// MedicalCoverageNameGTE applies the GTE predicate on the "medical_coverage_name" field.
func MedicalCoverageNameGTE(v string) predicate.Patient {
	return predicate.Patient(sql.FieldGTE(FieldMedicalCoverageName, v))
}

// MedicalCoverageNameLT applies the LT predicate on the "medical_coverage_name" field.
func MedicalCoverageNameLT(v string) predicate.Patient {
	return predicate.Patient(sql.FieldLT(FieldMedicalCoverageName, v))
}

// MedicalCoverageNameLTE applies the LTE predicate on the "medical_coverage_name" field.
func MedicalCoverageNameLTE(v string) predicate.Patient {
	return predicate.Patient(sql.FieldLTE(FieldMedicalCoverageName, v))
}

// MedicalCoverageNameContains applies the Contains predicate on the "medical_coverage_name" field.
func MedicalCoverageNameContains(v string) predicate.Patient {
	return predicate.Patient(sql.FieldContains(FieldMedicalCoverageName, v))
}

// MedicalCoverageNameHasPrefix applies the HasPrefix predicate on the "medical_coverage_name" field.
func MedicalCoverageNameHasPrefix(v string) predicate.Patient {
	return predicate.Patient(sql.FieldHasPrefix(FieldMedicalCoverageName, v))
}

// MedicalCoverageNameHasSuffix applies the HasSuffix predicate on the "medical_coverage_name" field.
func MedicalCoverageNameHasSuffix(v string) predicate.Patient {
	return predicate.Patient(sql.FieldHasSuffix(FieldMedicalCoverageName, v))
}

// MedicalCoverageNameIsNil applies the IsNil predicate on the "medical_coverage_name" field.
func MedicalCoverageNameIsNil() predicate.Patient {
	return predicate.Patient(sql.FieldIsNull(FieldMedicalCoverageName))
}

// MedicalCoverageNameNotNil applies the NotNil predicate on the "medical_coverage_name" field.
func MedicalCoverageNameNotNil() predicate.Patient {
	return predicate.Patient(sql.FieldNotNull(FieldMedicalCoverageName))
}

// MedicalCoverageNameEqualFold applies the EqualFold predicate on the "medical_coverage_name" field.
func MedicalCoverageNameEqualFold(v string) predicate.Patient {
	return predicate.Patient(sql.FieldEqualFold(FieldMedicalCoverageName, v))
}

// MedicalCoverageNameContainsFold applies the ContainsFold predicate on the "medical_coverage_name" field.
func MedicalCoverageNameContainsFold(v string) predicate.Patient {
	return predicate.Patient(sql.FieldContainsFold(FieldMedicalCoverageName, v))
}

// MemberNumberEQ applies the EQ predicate on the "member_number" field.
func MemberNumberEQ(v string) predicate.Patient {
	return predicate.Patient(sql.FieldEQ(FieldMemberNumber, v))
}

// MemberNumberNEQ applies the NEQ predicate on the "member_number" field.
func MemberNumberNEQ(v string) predicate.Patient {
	return predicate.Patient(sql.FieldNEQ(FieldMemberNumber, v))
}

// MemberNumberIn applies the In predicate on the "member_number" field.
func MemberNumberIn(vs ...string) predicate.Patient {
	return predicate.Patient(sql.FieldIn(FieldMemberNumber, vs...))
}

// MemberNumberNotIn applies the NotIn predicate on the "member_number" field.
func MemberNumberNotIn(vs ...string) predicate.Patient {
	return predicate.Patient(sql.FieldNotIn(FieldMemberNumber, vs...))
}

// MemberNumberGT applies the GT predicate on the "member_number" field.
func MemberNumberGT(v string) predicate.Patient {
	return predicate.Patient(sql.FieldGT(FieldMemberNumber, v))
}

// MemberNumberGTE applies the GTE predicate on the "member_number" field.
func MemberNumberGTE(v string) predicate.Patient {
	return predicate.Patient(sql.FieldGTE(FieldMemberNumber, v))
}

// MemberNumberLT applies the LT predicate on the "member_number" field.
func MemberNumberLT(v string) predicate.Patient {
	return predicate.Patient(sql.FieldLT(FieldMemberNumber, v))
}

// MemberNumberLTE applies the LTE predicate on the "member_number" field.
func MemberNumberLTE(v string) predicate.Patient {
	return predicate.Patient(sql.FieldLTE(FieldMemberNumber, v))
}

// MemberNumberContains applies the Contains predicate on the "member_number" field.
func MemberNumberContains(v string) predicate.Patient {
	return predicate.Patient(sql.FieldContains(FieldMemberNumber, v))
}

// MemberNumberHasPrefix applies the HasPrefix predicate on the "member_number" field.
func MemberNumberHasPrefix(v string) predicate.Patient {
	return predicate.Patient(sql.FieldHasPrefix(FieldMemberNumber, v))
}

// MemberNumberHasSuffix applies the HasSuffix predicate on the "member_number" field.
func MemberNumberHasSuffix(v string) predicate.Patient {
	return predicate.Patient(sql.FieldHasSuffix(FieldMemberNumber, v))
}

// MemberNumberIsNil applies the IsNil predicate on the "member_number" field.
func MemberNumberIsNil() predicate.Patient {
	return predicate.Patient(sql.FieldIsNull(FieldMemberNumber))
}

// MemberNumberNotNil applies the NotNil predicate on the "member_number" field.
func MemberNumberNotNil() predicate.Patient {
	return predicate.Patient(sql.FieldNotNull(FieldMemberNumber))
}

// MemberNumberEqualFold applies the EqualFold predicate on the "member_number" field.
func MemberNumberEqualFold(v string) predicate.Patient {
	return predicate.Patient(sql.FieldEqualFold(FieldMemberNumber, v))
}

// MemberNumberContainsFold applies the ContainsFold predicate on the "member_number" field.
func MemberNumberContainsFold(v string) predicate.Patient {
	return predicate.Patient(sql.FieldContainsFold(FieldMemberNumber, v))
}

// HasUser applies the HasEdge predicate on the "user" edge.
func HasUser() predicate.Patient {
	return predicate.Patient(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2O, true, UserTable, UserColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasUserWith applies the HasEdge predicate on the "user" edge with a given conditions (other predicates).
func HasUserWith(preds ...predicate.User) predicate.Patient {
	return predicate.Patient(func(s *sql.Selector) {
		step := newUserStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasMedicalHistory applies the HasEdge predicate on the "medical_history" edge.
func HasMedicalHistory() predicate.Patient {
	return predicate.Patient(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2O, false, MedicalHistoryTable, MedicalHistoryColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasMedicalHistoryWith applies the HasEdge predicate on the "medical_history" edge with a given conditions (other predicates).
func HasMedicalHistoryWith(preds ...predicate.MedicalHistory) predicate.Patient {
	return predicate.Patient(func(s *sql.Selector) {
		step := newMedicalHistoryStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasPartner applies the HasEdge predicate on the "partner" edge.
func HasPartner() predicate.Patient {
	return predicate.Patient(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2O, false, PartnerTable, PartnerColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasPartnerWith applies the HasEdge predicate on the "partner" edge with a given conditions (other predicates).
func HasPartnerWith(preds ...predicate.Partner) predicate.Patient {
	return predicate.Patient(func(s *sql.Selector) {
		step := newPartnerStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasTreatments applies the HasEdge predicate on the "treatments" edge.
func HasTreatments() predicate.Patient {
	return predicate.Patient(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, TreatmentsTable, TreatmentsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasTreatmentsWith applies the HasEdge predicate on the "treatments" edge with a given conditions (other predicates).
func HasTreatmentsWith(preds ...predicate.Treatment) predicate.Patient {
	return predicate.Patient(func(s *sql.Selector) {
		step := newTreatmentsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Patient) predicate.Patient {
	return predicate.Patient(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Patient) predicate.Patient {
	return predicate.Patient(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Patient) predicate.Patient {
	return predicate.Patient(sql.NotPredicates(p))
}
