// Code generated by ent, DO NOT EDIT.

package studyresult

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/fertitrack/fertitrack_backend/internal/repo/predicate"
	"github.com/google/uuid"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.StudyResult {
	return predicate.StudyResult(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.StudyResult {
	return predicate.StudyResult(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.StudyResult {
	return predicate.StudyResult(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.StudyResult {
	return predicate.StudyResult(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.StudyResult {
	return predicate.StudyResult(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.StudyResult {
	return predicate.StudyResult(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.StudyResult {
	return predicate.StudyResult(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.StudyResult {
	return predicate.StudyResult(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.StudyResult {
	return predicate.StudyResult(sql.FieldLTE(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.StudyResult {
	return predicate.StudyResult(sql.FieldEQ(FieldCreatedAt, v))
}

// TreatmentID applies equality check predicate on the "treatment_id" field. It's identical to TreatmentIDEQ.
func TreatmentID(v uuid.UUID) predicate.StudyResult {
	return predicate.StudyResult(sql.FieldEQ(FieldTreatmentID, v))
}

// StudyType applies equality check predicate on the "study_type" field. It's identical to StudyTypeEQ.
func StudyType(v string) predicate.StudyResult {
	return predicate.StudyResult(sql.FieldEQ(FieldStudyType, v))
}

// StudyName applies equality check predicate on the "study_name" field. It's identical to StudyNameEQ.
func StudyName(v string) predicate.StudyResult {
	return predicate.StudyResult(sql.FieldEQ(FieldStudyName, v))
}

// ResultFileKey applies equality check predicate on the "result_file_key" field. It's identical to ResultFileKeyEQ.
func ResultFileKey(v string) predicate.StudyResult {
	return predicate.StudyResult(sql.FieldEQ(FieldResultFileKey, v))
}

// ResultText applies equality check predicate on the "result_text" field. It's identical to ResultTextEQ.
func ResultText(v string) predicate.StudyResult {
	return predicate.StudyResult(sql.FieldEQ(FieldResultText, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.StudyResult {
	return predicate.StudyResult(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.StudyResult {
	return predicate.StudyResult(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.StudyResult {
	return predicate.StudyResult(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.StudyResult {
	return predicate.StudyResult(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.StudyResult {
	return predicate.StudyResult(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.StudyResult {
	return predicate.StudyResult(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.StudyResult {
	return predicate.StudyResult(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.StudyResult {
	return predicate.StudyResult(sql.FieldLTE(FieldCreatedAt, v))
}

// TreatmentIDEQ applies the EQ predicate on the "treatment_id" field.
func TreatmentIDEQ(v uuid.UUID) predicate.StudyResult {
	return predicate.StudyResult(sql.FieldEQ(FieldTreatmentID, v))
}

// TreatmentIDNEQ applies the NEQ predicate on the "treatment_id" field.
func TreatmentIDNEQ(v uuid.UUID) predicate.StudyResult {
	return predicate.StudyResult(sql.FieldNEQ(FieldTreatmentID, v))
}

// TreatmentIDIn applies the In predicate on the "treatment_id" field.
func TreatmentIDIn(vs ...uuid.UUID) predicate.StudyResult {
	return predicate.StudyResult(sql.FieldIn(FieldTreatmentID, vs...))
}

// TreatmentIDNotIn applies the NotIn predicate on the "treatment_id" field.
func TreatmentIDNotIn(vs ...uuid.UUID) predicate.StudyResult {
	return predicate.StudyResult(sql.FieldNotIn(FieldTreatmentID, vs...))
}

// StudyTypeEQ applies the EQ predicate on the "study_type" field.
func StudyTypeEQ(v string) predicate.StudyResult {
	return predicate.StudyResult(sql.FieldEQ(FieldStudyType, v))
}

// StudyTypeNEQ applies the NEQ predicate on the "study_type" field.
func StudyTypeNEQ(v string) predicate.StudyResult {
	return predicate.StudyResult(sql.FieldNEQ(FieldStudyType, v))
}

// StudyTypeIn applies the In predicate on the "study_type" field.
func StudyTypeIn(vs ...string) predicate.StudyResult {
	return predicate.StudyResult(sql.FieldIn(FieldStudyType, vs...))
}

// StudyTypeNotIn applies the NotIn predicate on the "study_type" field.
func StudyTypeNotIn(vs ...string) predicate.StudyResult {
	return predicate.StudyResult(sql.FieldNotIn(FieldStudyType, vs...))
}

// StudyTypeGT applies the GT predicate on the "study_type" field.
func StudyTypeGT(v string) predicate.StudyResult {
	return predicate.StudyResult(sql.FieldGT(FieldStudyType, v))
}

// StudyTypeGTE applies the GTE predicate on the "study_type" field.
func StudyTypeGTE(v string) predicate.StudyResult {
	return predicate.StudyResult(sql.FieldGTE(FieldStudyType, v))
}

// StudyTypeLT applies the LT predicate on the "study_type" field.
func StudyTypeLT(v string) predicate.StudyResult {
	return predicate.StudyResult(sql.FieldLT(FieldStudyType, v))
}

// StudyTypeLTE applies the LTE predicate on the "study_type" field.
func StudyTypeLTE(v string) predicate.StudyResult {
	return predicate.StudyResult(sql.FieldLTE(FieldStudyType, v))
}

// StudyTypeContains applies the Contains predicate on the "study_type" field.
func StudyTypeContains(v string) predicate.StudyResult {
	return predicate.StudyResult(sql.FieldContains(FieldStudyType, v))
}

// StudyTypeHasPrefix applies the HasPrefix predicate on the "study_type" field.
func StudyTypeHasPrefix(v string) predicate.StudyResult {
	return predicate.StudyResult(sql.FieldHasPrefix(FieldStudyType, v))
}

// StudyTypeHasSuffix applies the HasSuffix predicate on the "study_type" field.
func StudyTypeHasSuffix(v string) predicate.StudyResult {
	return predicate.StudyResult(sql.FieldHasSuffix(FieldStudyType, v))
}

// StudyTypeEqualFold applies the EqualFold predicate on the "study_type" field.
func StudyTypeEqualFold(v string) predicate.StudyResult {
	return predicate.StudyResult(sql.FieldEqualFold(FieldStudyType, v))
}

// StudyTypeContainsFold applies the ContainsFold predicate on the "study_type" field.
func StudyTypeContainsFold(v string) predicate.StudyResult {
	return predicate.StudyResult(sql.FieldContainsFold(FieldStudyType, v))
}

// StudyNameEQ applies the EQ predicate on the "study_name" field.
func StudyNameEQ(v string) predicate.StudyResult {
	return predicate.StudyResult(sql.FieldEQ(FieldStudyName, v))
}

// StudyNameNEQ applies the NEQ predicate on the "study_name" field.
func StudyNameNEQ(v string) predicate.StudyResult {
	return predicate.StudyResult(sql.FieldNEQ(FieldStudyName, v))
}

// StudyNameIn applies the In predicate on the "study_name" field.
func StudyNameIn(vs ...string) predicate.StudyResult {
	return predicate.StudyResult(sql.FieldIn(FieldStudyName, vs...))
}

// StudyNameNotIn applies the NotIn predicate on the "study_name" field.
func StudyNameNotIn(vs ...string) predicate.StudyResult {
	return predicate.StudyResult(sql.FieldNotIn(FieldStudyName, vs...))
}

// StudyNameGT applies the GT predicate on the "study_name" field.
func StudyNameGT(v string) predicate.StudyResult {
	return predicate.StudyResult(sql.FieldGT(FieldStudyName, v))
}

// StudyNameGTE applies the GTE predicate on the "study_name" field.
func StudyNameGTE(v string) predicate.StudyResult {
	return predicate.StudyResult(sql.FieldGTE(FieldStudyName, v))
}

// StudyNameLT applies the LT predicate on the "study_name" field.
func StudyNameLT(v string) predicate.StudyResult {
	return predicate.StudyResult(sql.FieldLT(FieldStudyName, v))
}

// StudyNameLTE applies the LTE predicate on the "study_name" field.
func StudyNameLTE(v string) predicate.StudyResult {
	return predicate.StudyResult(sql.FieldLTE(FieldStudyName, v))
}

// StudyNameContains applies the Contains predicate on the "study_name" field.
func StudyNameContains(v string) predicate.StudyResult {
	return predicate.StudyResult(sql.FieldContains(FieldStudyName, v))
}

// StudyNameHasPrefix applies the HasPrefix predicate on the "study_name" field.
func StudyNameHasPrefix(v string) predicate.StudyResult {
	return predicate.StudyResult(sql.FieldHasPrefix(FieldStudyName, v))
}

// StudyNameHasSuffix applies the HasSuffix predicate on the "study_name" field.
func StudyNameHasSuffix(v string) predicate.StudyResult {
	return predicate.StudyResult(sql.FieldHasSuffix(FieldStudyName, v))
}

// StudyNameEqualFold applies the EqualFold predicate on the "study_name" field.
func StudyNameEqualFold(v string) predicate.StudyResult {
	return predicate.StudyResult(sql.FieldEqualFold(FieldStudyName, v))
}

// StudyNameContainsFold applies the ContainsFold predicate on the "study_name" field.
func StudyNameContainsFold(v string) predicate.StudyResult {
	return predicate.StudyResult(sql.FieldContainsFold(FieldStudyName, v))
}

// ResultFileKeyEQ applies the EQ predicate on the "result_file_key" field.
func ResultFileKeyEQ(v string) predicate.StudyResult {
	return predicate.StudyResult(sql.FieldEQ(FieldResultFileKey, v))
}

// ResultFileKeyNEQ applies the NEQ predicate on the "result_file_key" field.
func ResultFileKeyNEQ(v string) predicate.StudyResult {
	return predicate.StudyResult(sql.FieldNEQ(FieldResultFileKey, v))
}

// ResultFileKeyIn applies the In predicate on the "result_file_key" field.
func ResultFileKeyIn(vs ...string) predicate.StudyResult {
	return predicate.StudyResult(sql.FieldIn(FieldResultFileKey, vs...))
}

// ResultFileKeyNotIn applies the NotIn predicate on the "result_file_key" field.
func ResultFileKeyNotIn(vs ...string) predicate.StudyResult {
	return predicate.StudyResult(sql.FieldNotIn(FieldResultFileKey, vs...))
}

// ResultFileKeyGT applies the GT predicate on the "result_file_key" field.
func ResultFileKeyGT(v string) predicate.StudyResult {
	return predicate.StudyResult(sql.FieldGT(FieldResultFileKey, v))
}

// ResultFileKeyGTE applies the GTE predicate on the "result_file_key" field.
func ResultFileKeyGTE(v string) predicate.StudyResult {
	return predicate.StudyResult(sql.FieldGTE(FieldResultFileKey, v))
}

// ResultFileKeyLT applies the LT predicate on the "result_file_key" field.
func ResultFileKeyLT(v string) predicate.StudyResult {
	return predicate.StudyResult(sql.FieldLT(FieldResultFileKey, v))
}

// ResultFileKeyLTE applies the LTE predicate on the "result_file_key" field.
func ResultFileKeyLTE(v string) predicate.StudyResult {
	return predicate.StudyResult(sql.FieldLTE(FieldResultFileKey, v))
}

// ResultFileKeyContains applies the Contains predicate on the "result_file_key" field.
func ResultFileKeyContains(v string) predicate.StudyResult {
	return predicate.StudyResult(sql.FieldContains(FieldResultFileKey, v))
}

// ResultFileKeyHasPrefix applies the HasPrefix predicate on the "result_file_key" field.
func ResultFileKeyHasPrefix(v string) predicate.StudyResult {
	return predicate.StudyResult(sql.FieldHasPrefix(FieldResultFileKey, v))
}

// ResultFileKeyHasSuffix applies the HasSuffix predicate on the "result_file_key" field.
func ResultFileKeyHasSuffix(v string) predicate.StudyResult {
	return predicate.StudyResult(sql.FieldHasSuffix(FieldResultFileKey, v))
}

// ResultFileKeyIsNil applies the IsNil predicate on the "result_file_key" field.
func ResultFileKeyIsNil() predicate.StudyResult {
	return predicate.StudyResult(sql.FieldIsNull(FieldResultFileKey))
}

// ResultFileKeyNotNil applies the NotNil predicate on the "result_file_key" field.
func ResultFileKeyNotNil() predicate.StudyResult {
	return predicate.StudyResult(sql.FieldNotNull(FieldResultFileKey))
}

// ResultFileKeyEqualFold applies the EqualFold predicate on the "result_file_key" field.
func ResultFileKeyEqualFold(v string) predicate.StudyResult {
	return predicate.StudyResult(sql.FieldEqualFold(FieldResultFileKey, v))
}

// ResultFileKeyContainsFold applies the ContainsFold predicate on the "result_file_key" field.
func ResultFileKeyContainsFold(v string) predicate.StudyResult {
	return predicate.StudyResult(sql.FieldContainsFold(FieldResultFileKey, v))
}

// ResultTextEQ applies the EQ predicate on the "result_text" field.
func ResultTextEQ(v string) predicate.StudyResult {
	return predicate.StudyResult(sql.FieldEQ(FieldResultText, v))
}

// ResultTextNEQ applies the NEQ predicate on the "result_text" field.
func ResultTextNEQ(v string) predicate.StudyResult {
	return predicate.StudyResult(sql.FieldNEQ(FieldResultText, v))
}

// ResultTextIn applies the In predicate on the "result_text" field.
func ResultTextIn(vs ...string) predicate.StudyResult {
	return predicate.StudyResult(sql.FieldIn(FieldResultText, vs...))
}

// ResultTextNotIn applies the NotIn predicate on the "result_text" field.
func ResultTextNotIn(vs ...string) predicate.StudyResult {
	return predicate.StudyResult(sql.FieldNotIn(FieldResultText, vs...))
}

// ResultTextGT applies the GT predicate on the "result_text" field.
func ResultTextGT(v string) predicate.StudyResult {
	return predicate.StudyResult(sql.FieldGT(FieldResultText, v))
}

// ResultTextGTE applies the GTE predicate on the "result_text" field.
func ResultTextGTE(v string) predicate.StudyResult {
	return predicate.StudyResult(sql.FieldGTE(FieldResultText, v))
}

// ResultTextLT applies the LT predicate on the "result_text" field.
func ResultTextLT(v string) predicate.StudyResult {
	return predicate.StudyResult(sql.FieldLT(FieldResultText, v))
}

// ResultTextLTE applies the LTE predicate on the "result_text" field.
func ResultTextLTE(v string) predicate.StudyResult {
	return predicate.StudyResult(sql.FieldLTE(FieldResultText, v))
}

// ResultTextContains applies the Contains predicate on the "result_text" field.
func ResultTextContains(v string) predicate.StudyResult {
	return predicate.StudyResult(sql.FieldContains(FieldResultText, v))
}

// ResultTextHasPrefix applies the HasPrefix predicate on the "result_text" field.
func ResultTextHasPrefix(v string) predicate.StudyResult {
	return predicate.StudyResult(sql.FieldHasPrefix(FieldResultText, v))
}

// ResultTextHasSuffix applies the HasSuffix predicate on the "result_text" field.
func ResultTextHasSuffix(v string) predicate.StudyResult {
	return predicate.StudyResult(sql.FieldHasSuffix(FieldResultText, v))
}

// ResultTextIsNil applies the IsNil predicate on the "result_text" field.
func ResultTextIsNil() predicate.StudyResult {
	return predicate.StudyResult(sql.FieldIsNull(FieldResultText))
}

// ResultTextNotNil applies the NotNil predicate on the "result_text" field.
func ResultTextNotNil() predicate.StudyResult {
	return predicate.StudyResult(sql.FieldNotNull(FieldResultText))
}

// ResultTextEqualFold applies the EqualFold predicate on the "result_text" field.
func ResultTextEqualFold(v string) predicate.StudyResult {
	return predicate.StudyResult(sql.FieldEqualFold(FieldResultText, v))
}

// ResultTextContainsFold applies the ContainsFold predicate on the "result_text" field.
func ResultTextContainsFold(v string) predicate.StudyResult {
	return predicate.StudyResult(sql.FieldContainsFold(FieldResultText, v))
}

// HasTreatment applies the HasEdge predicate on the "treatment" edge.
func HasTreatment() predicate.StudyResult {
	return predicate.StudyResult(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, TreatmentTable, TreatmentColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasTreatmentWith applies the HasEdge predicate on the "treatment" edge with a given conditions (other predicates).
func HasTreatmentWith(preds ...predicate.Treatment) predicate.StudyResult {
	return predicate.StudyResult(func(s *sql.Selector) {
		step := newTreatmentStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.StudyResult) predicate.StudyResult {
	return predicate.StudyResult(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.StudyResult) predicate.StudyResult {
	return predicate.StudyResult(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.StudyResult) predicate.StudyResult {
	return predicate.StudyResult(sql.NotPredicates(p))
}
