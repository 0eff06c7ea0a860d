// Code generated by ent, DO NOT EDIT.

package monitoringday

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/fertitrack/fertitrack_backend/internal/repo/predicate"
	"github.com/google/uuid"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.MonitoringDay {
	return predicate.MonitoringDay(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.MonitoringDay {
	return predicate.MonitoringDay(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.MonitoringDay {
	return predicate.MonitoringDay(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.MonitoringDay {
	return predicate.MonitoringDay(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.MonitoringDay {
	return predicate.MonitoringDay(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.MonitoringDay {
	return predicate.MonitoringDay(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.MonitoringDay {
	return predicate.MonitoringDay(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.MonitoringDay {
	return predicate.MonitoringDay(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.MonitoringDay {
	return predicate.MonitoringDay(sql.FieldLTE(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.MonitoringDay {
	return predicate.MonitoringDay(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.MonitoringDay {
	return predicate.MonitoringDay(sql.FieldEQ(FieldUpdatedAt, v))
}

// TreatmentID applies equality check predicate on the "treatment_id" field. It's identical to TreatmentIDEQ.
func TreatmentID(v uuid.UUID) predicate.MonitoringDay {
	return predicate.MonitoringDay(sql.FieldEQ(FieldTreatmentID, v))
}

// Date applies equality check predicate on the "date" field. It's identical to DateEQ.
func Date(v time.Time) predicate.MonitoringDay {
	return predicate.MonitoringDay(sql.FieldEQ(FieldDate, v))
}

// Notes applies equality check predicate on the "notes" field. It's identical to NotesEQ.
func Notes(v string) predicate.MonitoringDay {
	return predicate.MonitoringDay(sql.FieldEQ(FieldNotes, v))
}

// Completed applies equality check predicate on the "completed" field. It's identical to CompletedEQ.
func Completed(v bool) predicate.MonitoringDay {
	return predicate.MonitoringDay(sql.FieldEQ(FieldCompleted, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.MonitoringDay {
	return predicate.MonitoringDay(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.MonitoringDay {
	return predicate.MonitoringDay(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.MonitoringDay {
	return predicate.MonitoringDay(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.MonitoringDay {
	return predicate.MonitoringDay(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.MonitoringDay {
	return predicate.MonitoringDay(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.MonitoringDay {
	return predicate.MonitoringDay(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.MonitoringDay {
	return predicate.MonitoringDay(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.MonitoringDay {
	return predicate.MonitoringDay(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.MonitoringDay {
	return predicate.MonitoringDay(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.MonitoringDay {
	return predicate.MonitoringDay(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.MonitoringDay {
	return predicate.MonitoringDay(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.MonitoringDay {
	return predicate.MonitoringDay(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.MonitoringDay {
	return predicate.MonitoringDay(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.MonitoringDay {
	return predicate.MonitoringDay(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.MonitoringDay {
	return predicate.MonitoringDay(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.MonitoringDay {
	return predicate.MonitoringDay(sql.FieldLTE(FieldUpdatedAt, v))
}

// TreatmentIDEQ applies the EQ predicate on the "treatment_id" field.
func TreatmentIDEQ(v uuid.UUID) predicate.MonitoringDay {
	return predicate.MonitoringDay(sql.FieldEQ(FieldTreatmentID, v))
}

// TreatmentIDNEQ applies the NEQ predicate on the "treatment_id" field.
func TreatmentIDNEQ(v uuid.UUID) predicate.MonitoringDay {
	return predicate.MonitoringDay(sql.FieldNEQ(FieldTreatmentID, v))
}

// TreatmentIDIn applies the In predicate on the "treatment_id" field.
func TreatmentIDIn(vs ...uuid.UUID) predicate.MonitoringDay {
	return predicate.MonitoringDay(sql.FieldIn(FieldTreatmentID, vs...))
}

// TreatmentIDNotIn applies the NotIn predicate on the "treatment_id" field.
func TreatmentIDNotIn(vs ...uuid.UUID) predicate.MonitoringDay {
	return predicate.MonitoringDay(sql.FieldNotIn(FieldTreatmentID, vs...))
}

// DateEQ applies the EQ predicate on the "date" field.
func DateEQ(v time.Time) predicate.MonitoringDay {
	return predicate.MonitoringDay(sql.FieldEQ(FieldDate, v))
}

// DateNEQ applies the NEQ predicate on the "date" field.
func DateNEQ(v time.Time) predicate.MonitoringDay {
	return predicate.MonitoringDay(sql.FieldNEQ(FieldDate, v))
}

// DateIn applies the In predicate on the "date" field.
func DateIn(vs ...time.Time) predicate.MonitoringDay {
	return predicate.MonitoringDay(sql.FieldIn(FieldDate, vs...))
}

// DateNotIn applies the NotIn predicate on the "date" field.
func DateNotIn(vs ...time.Time) predicate.MonitoringDay {
	return predicate.MonitoringDay(sql.FieldNotIn(FieldDate, vs...))
}

// DateGT applies the GT predicate on the "date" field.
func DateGT(v time.Time) predicate.MonitoringDay {
	return predicate.MonitoringDay(sql.FieldGT(FieldDate, v))
}

// DateGTE applies the GTE predicate on the "date" field.
func DateGTE(v time.Time) predicate.MonitoringDay {
	return predicate.MonitoringDay(sql.FieldGTE(FieldDate, v))
}

// DateLT applies the LT predicate on the "date" field.
func DateLT(v time.Time) predicate.MonitoringDay {
	return predicate.MonitoringDay(sql.FieldLT(FieldDate, v))
}

// DateLTE applies the LTE predicate on the "date" field.
func DateLTE(v time.Time) predicate.MonitoringDay {
	return predicate.MonitoringDay(sql.FieldLTE(FieldDate, v))
}

// NotesEQ applies the EQ predicate on the "notes" field.
func NotesEQ(v string) predicate.MonitoringDay {
	return predicate.MonitoringDay(sql.FieldEQ(FieldNotes, v))
}

// NotesNEQ applies the NEQ predicate on the "notes" field.
func NotesNEQ(v string) predicate.MonitoringDay {
	return predicate.MonitoringDay(sql.FieldNEQ(FieldNotes, v))
}

// NotesIn applies the In predicate on the "notes" field.
func NotesIn(vs ...string) predicate.MonitoringDay {
	return predicate.MonitoringDay(sql.FieldIn(FieldNotes, vs...))
}

// NotesNotIn applies the NotIn predicate on the "notes" field.
func NotesNotIn(vs ...string) predicate.MonitoringDay {
	return predicate.MonitoringDay(sql.FieldNotIn(FieldNotes, vs...))
}

// NotesGT applies the GT predicate on the "notes" field.
func NotesGT(v string) predicate.MonitoringDay {
	return predicate.MonitoringDay(sql.FieldGT(FieldNotes, v))
}

// NotesGTE applies the GTE predicate on the "notes" field.
func NotesGTE(v string) predicate.MonitoringDay {
	return predicate.MonitoringDay(sql.FieldGTE(FieldNotes, v))
}

// NotesLT applies the LT predicate on the "notes" field.
func NotesLT(v string) predicate.MonitoringDay {
	return predicate.MonitoringDay(sql.FieldLT(FieldNotes, v))
}

// NotesLTE applies the LTE predicate on the "notes" field.
func NotesLTE(v string) predicate.MonitoringDay {
	return predicate.MonitoringDay(sql.FieldLTE(FieldNotes, v))
}

// NotesContains applies the Contains predicate on the "notes" field.
func NotesContains(v string) predicate.MonitoringDay {
	return predicate.MonitoringDay(sql.FieldContains(FieldNotes, v))
}

// NotesHasPrefix applies the HasPrefix predicate on the "notes" field.
func NotesHasPrefix(v string) predicate.MonitoringDay {
	return predicate.MonitoringDay(sql.FieldHasPrefix(FieldNotes, v))
}

// NotesHasSuffix applies the HasSuffix predicate on the "notes" field.
func NotesHasSuffix(v string) predicate.MonitoringDay {
	return predicate.MonitoringDay(sql.FieldHasSuffix(FieldNotes, v))
}

// NotesIsNil applies the IsNil predicate on the "notes" field.
func NotesIsNil() predicate.MonitoringDay {
	return predicate.MonitoringDay(sql.FieldIsNull(FieldNotes))
}

// NotesNotNil applies the NotNil predicate on the "notes" field.
func NotesNotNil() predicate.MonitoringDay {
	return predicate.MonitoringDay(sql.FieldNotNull(FieldNotes))
}

// NotesEqualFold applies the EqualFold predicate on the "notes" field.
func NotesEqualFold(v string) predicate.MonitoringDay {
	return predicate.MonitoringDay(sql.FieldEqualFold(FieldNotes, v))
}

// NotesContainsFold applies the ContainsFold predicate on the "notes" field.
func NotesContainsFold(v string) predicate.MonitoringDay {
	return predicate.MonitoringDay(sql.FieldContainsFold(FieldNotes, v))
}

// CompletedEQ applies the EQ predicate on the "completed" field.
func CompletedEQ(v bool) predicate.MonitoringDay {
	return predicate.MonitoringDay(sql.FieldEQ(FieldCompleted, v))
}

// CompletedNEQ applies the NEQ predicate on the "completed" field.
func CompletedNEQ(v bool) predicate.MonitoringDay {
	return predicate.MonitoringDay(sql.FieldNEQ(FieldCompleted, v))
}

// HasTreatment applies the HasEdge predicate on the "treatment" edge.
func HasTreatment() predicate.MonitoringDay {
	return predicate.MonitoringDay(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, TreatmentTable, TreatmentColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasTreatmentWith applies the HasEdge predicate on the "treatment" edge with a given conditions (other predicates).
func HasTreatmentWith(preds ...predicate.Treatment) predicate.MonitoringDay {
	return predicate.MonitoringDay(func(s *sql.Selector) {
		step := newTreatmentStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.MonitoringDay) predicate.MonitoringDay {
	return predicate.MonitoringDay(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.MonitoringDay) predicate.MonitoringDay {
	return predicate.MonitoringDay(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.MonitoringDay) predicate.MonitoringDay {
	return predicate.MonitoringDay(sql.NotPredicates(p))
}
