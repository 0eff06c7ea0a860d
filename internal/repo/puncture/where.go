// Code generated by ent, DO NOT EDIT.

package puncture

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/fertitrack/fertitrack_backend/internal/repo/predicate"
	"github.com/google/uuid"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.Puncture {
	return predicate.Puncture(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.Puncture {
	return predicate.Puncture(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.Puncture {
	return predicate.Puncture(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.Puncture {
	return predicate.Puncture(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.Puncture {
	return predicate.Puncture(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.Puncture {
	return predicate.Puncture(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.Puncture {
	return predicate.Puncture(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.Puncture {
	return predicate.Puncture(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.Puncture {
	return predicate.Puncture(sql.FieldLTE(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Puncture {
	return predicate.Puncture(sql.FieldEQ(FieldCreatedAt, v))
}

// TreatmentID applies equality check predicate on the "treatment_id" field. It's identical to TreatmentIDEQ.
func TreatmentID(v uuid.UUID) predicate.Puncture {
	return predicate.Puncture(sql.FieldEQ(FieldTreatmentID, v))
}

// OperatorID applies equality check predicate on the "operator_id" field. It's identical to OperatorIDEQ.
func OperatorID(v uuid.UUID) predicate.Puncture {
	return predicate.Puncture(sql.FieldEQ(FieldOperatorID, v))
}

// Date applies equality check predicate on the "date" field. It's identical to DateEQ.
func Date(v time.Time) predicate.Puncture {
	return predicate.Puncture(sql.FieldEQ(FieldDate, v))
}

// OperatingRoom applies equality check predicate on the "operating_room" field. It's identical to OperatingRoomEQ.
func OperatingRoom(v string) predicate.Puncture {
	return predicate.Puncture(sql.FieldEQ(FieldOperatingRoom, v))
}

// Complications applies equality check predicate on the "complications" field. It's identical to ComplicationsEQ.
func Complications(v string) predicate.Puncture {
	return predicate.Puncture(sql.FieldEQ(FieldComplications, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Puncture {
	return predicate.Puncture(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Puncture {
	return predicate.Puncture(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Puncture {
	return predicate.Puncture(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Puncture {
	return predicate.Puncture(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Puncture {
	return predicate.Puncture(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Puncture {
	return predicate.Puncture(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Puncture {
	return predicate.Puncture(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Puncture {
	return predicate.Puncture(sql.FieldLTE(FieldCreatedAt, v))
}

// TreatmentIDEQ applies the EQ predicate on the "treatment_id" field.
func TreatmentIDEQ(v uuid.UUID) predicate.Puncture {
	return predicate.Puncture(sql.FieldEQ(FieldTreatmentID, v))
}

// TreatmentIDNEQ applies the NEQ predicate on the "treatment_id" field.
func TreatmentIDNEQ(v uuid.UUID) predicate.Puncture {
	return predicate.Puncture(sql.FieldNEQ(FieldTreatmentID, v))
}

// TreatmentIDIn applies the In predicate on the "treatment_id" field.
func TreatmentIDIn(vs ...uuid.UUID) predicate.Puncture {
	return predicate.Puncture(sql.FieldIn(FieldTreatmentID, vs...))
}

// TreatmentIDNotIn applies the NotIn predicate on the "treatment_id" field.
func TreatmentIDNotIn(vs ...uuid.UUID) predicate.Puncture {
	return predicate.Puncture(sql.FieldNotIn(FieldTreatmentID, vs...))
}

// OperatorIDEQ applies the EQ predicate on the "operator_id" field.
func OperatorIDEQ(v uuid.UUID) predicate.Puncture {
	return predicate.Puncture(sql.FieldEQ(FieldOperatorID, v))
}

// OperatorIDNEQ applies the NEQ predicate on the "operator_id" field.
func OperatorIDNEQ(v uuid.UUID) predicate.Puncture {
	return predicate.Puncture(sql.FieldNEQ(FieldOperatorID, v))
}

// OperatorIDIn applies the In predicate on the "operator_id" field.
func OperatorIDIn(vs ...uuid.UUID) predicate.Puncture {
	return predicate.Puncture(sql.FieldIn(FieldOperatorID, vs...))
}

// OperatorIDNotIn applies the NotIn predicate on the "operator_id" field.
func OperatorIDNotIn(vs ...uuid.UUID) predicate.Puncture {
	return predicate.Puncture(sql.FieldNotIn(FieldOperatorID, vs...))
}

// OperatorIDIsNil applies the IsNil predicate on the "operator_id" field.
func OperatorIDIsNil() predicate.Puncture {
	return predicate.Puncture(sql.FieldIsNull(FieldOperatorID))
}

// OperatorIDNotNil applies the NotNil predicate on the "operator_id" field.
func OperatorIDNotNil() predicate.Puncture {
	return predicate.Puncture(sql.FieldNotNull(FieldOperatorID))
}

// DateEQ applies the EQ predicate on the "date" field.
func DateEQ(v time.Time) predicate.Puncture {
	return predicate.Puncture(sql.FieldEQ(FieldDate, v))
}

// DateNEQ applies the NEQ predicate on the "date" field.
func DateNEQ(v time.Time) predicate.Puncture {
	return predicate.Puncture(sql.FieldNEQ(FieldDate, v))
}

// DateIn applies the In predicate on the "date" field.
func DateIn(vs ...time.Time) predicate.Puncture {
	return predicate.Puncture(sql.FieldIn(FieldDate, vs...))
}

// DateNotIn applies the NotIn predicate on the "date" field.
func DateNotIn(vs ...time.Time) predicate.Puncture {
	return predicate.Puncture(sql.FieldNotIn(FieldDate, vs...))
}

// DateGT applies the GT predicate on the "date" field.
func DateGT(v time.Time) predicate.Puncture {
	return predicate.Puncture(sql.FieldGT(FieldDate, v))
}

// DateGTE applies the GTE predicate on the "date" field.
func DateGTE(v time.Time) predicate.Puncture {
	return predicate.Puncture(sql.FieldGTE(FieldDate, v))
}

// DateLT applies the LT predicate on the "date" field.
func DateLT(v time.Time) predicate.Puncture {
	return predicate.Puncture(sql.FieldLT(FieldDate, v))
}

// DateLTE applies the LTE predicate on the "date" field.
func DateLTE(v time.Time) predicate.Puncture {
	return predicate.Puncture(sql.FieldLTE(FieldDate, v))
}

// OperatingRoomEQ applies the EQ predicate on the "operating_room" field.
func OperatingRoomEQ(v string) predicate.Puncture {
	return predicate.Puncture(sql.FieldEQ(FieldOperatingRoom, v))
}

// OperatingRoomNEQ applies the NEQ predicate on the "operating_room" field.
func OperatingRoomNEQ(v string) predicate.Puncture {
	return predicate.Puncture(sql.FieldNEQ(FieldOperatingRoom, v))
}

// OperatingRoomIn applies the In predicate on the "operating_room" field.
func OperatingRoomIn(vs ...string) predicate.Puncture {
	return predicate.Puncture(sql.FieldIn(FieldOperatingRoom, vs...))
}

// OperatingRoomNotIn applies the NotIn predicate on the "operating_room" field.
func OperatingRoomNotIn(vs ...string) predicate.Puncture {
	return predicate.Puncture(sql.FieldNotIn(FieldOperatingRoom, vs...))
}

// OperatingRoomGT applies the GT predicate on the "operating_room" field.
func OperatingRoomGT(v string) predicate.Puncture {
	return predicate.Puncture(sql.FieldGT(FieldOperatingRoom, v))
}

// OperatingRoomGTE applies the GTE predicate on the "operating_room" field.
func OperatingRoomGTE(v string) predicate.Puncture {
	return predicate.Puncture(sql.FieldGTE(FieldOperatingRoom, v))
}

// OperatingRoomLT applies the LT predicate on the "operating_room" field.
func OperatingRoomLT(v string) predicate.Puncture {
	return predicate.Puncture(sql.FieldLT(FieldOperatingRoom, v))
}

// OperatingRoomLTE applies the LTE predicate on the "operating_room" field.
func OperatingRoomLTE(v string) predicate.Puncture {
	return predicate.Puncture(sql.FieldLTE(FieldOperatingRoom, v))
}

// OperatingRoomContains applies the Contains predicate on the "operating_room" field.
func OperatingRoomContains(v string) predicate.Puncture {
	return predicate.Puncture(sql.FieldContains(FieldOperatingRoom, v))
}

// OperatingRoomHasPrefix applies the HasPrefix predicate on the "operating_room" field.
func OperatingRoomHasPrefix(v string) predicate.Puncture {
	return predicate.Puncture(sql.FieldHasPrefix(FieldOperatingRoom, v))
}

// OperatingRoomHasSuffix applies the HasSuffix predicate on the "operating_room" field.
func OperatingRoomHasSuffix(v string) predicate.Puncture {
	return predicate.Puncture(sql.FieldHasSuffix(FieldOperatingRoom, v))
}

// OperatingRoomEqualFold applies the EqualFold predicate on the "operating_room" field.
func OperatingRoomEqualFold(v string) predicate.Puncture {
	return predicate.Puncture(sql.FieldEqualFold(FieldOperatingRoom, v))
}

// OperatingRoomContainsFold applies the ContainsFold predicate on the "operating_room" field.
func OperatingRoomContainsFold(v string) predicate.Puncture {
	return predicate.Puncture(sql.FieldContainsFold(FieldOperatingRoom, v))
}

// ComplicationsEQ applies the EQ predicate on the "complications" field.
func ComplicationsEQ(v string) predicate.Puncture {
	return predicate.Puncture(sql.FieldEQ(FieldComplications, v))
}

// ComplicationsNEQ applies the NEQ predicate on the "complications" field.
func ComplicationsNEQ(v string) predicate.Puncture {
	return predicate.Puncture(sql.FieldNEQ(FieldComplications, v))
}

// ComplicationsIn applies the In predicate on the "complications" field.
func ComplicationsIn(vs ...string) predicate.Puncture {
	return predicate.Puncture(sql.FieldIn(FieldComplications, vs...))
}

// ComplicationsNotIn applies the NotIn predicate on the "complications" field.
func ComplicationsNotIn(vs ...string) predicate.Puncture {
	return predicate.Puncture(sql.FieldNotIn(FieldComplications, vs...))
}

// ComplicationsGT applies the GT predicate on the "complications" field.
func ComplicationsGT(v string) predicate.Puncture {
	return predicate.Puncture(sql.FieldGT(FieldComplications, v))
}

// ComplicationsGTE applies the GTE predicate on the "complications" field.
func ComplicationsGTE(v string) predicate.Puncture {
	return predicate.Puncture(sql.FieldGTE(FieldComplications, v))
}

// ComplicationsLT applies the LT predicate on the "complications" field.
func ComplicationsLT(v string) predicate.Puncture {
	return predicate.Puncture(sql.FieldLT(FieldComplications, v))
}

// ComplicationsLTE applies the LTE predicate on the "complications" field.
func ComplicationsLTE(v string) predicate.Puncture {
	return predicate.Puncture(sql.FieldLTE(FieldComplications, v))
}

// ComplicationsContains applies the Contains predicate on the "complications" field.
func ComplicationsContains(v string) predicate.Puncture {
	return predicate.Puncture(sql.FieldContains(FieldComplications, v))
}

// ComplicationsHasPrefix applies the HasPrefix predicate on the "complications" field.
func ComplicationsHasPrefix(v string) predicate.Puncture {
	return predicate.Puncture(sql.FieldHasPrefix(FieldComplications, v))
}

// ComplicationsHasSuffix applies the HasSuffix predicate on the "complications" field.
func ComplicationsHasSuffix(v string) predicate.Puncture {
	return predicate.Puncture(sql.FieldHasSuffix(FieldComplications, v))
}

// ComplicationsIsNil applies the IsNil predicate on the "complications" field.
func ComplicationsIsNil() predicate.Puncture {
	return predicate.Puncture(sql.FieldIsNull(FieldComplications))
}

// ComplicationsNotNil applies the NotNil predicate on the "complications" field.
func ComplicationsNotNil() predicate.Puncture {
	return predicate.Puncture(sql.FieldNotNull(FieldComplications))
}

// ComplicationsEqualFold applies the EqualFold predicate on the "complications" field.
func ComplicationsEqualFold(v string) predicate.Puncture {
	return predicate.Puncture(sql.FieldEqualFold(FieldComplications, v))
}

// ComplicationsContainsFold applies the ContainsFold predicate on the "complications" field.
func ComplicationsContainsFold(v string) predicate.Puncture {
	return predicate.Puncture(sql.FieldContainsFold(FieldComplications, v))
}

// HasTreatment applies the HasEdge predicate on the "treatment" edge.
func HasTreatment() predicate.Puncture {
	return predicate.Puncture(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2O, true, TreatmentTable, TreatmentColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasTreatmentWith applies the HasEdge predicate on the "treatment" edge with a given conditions (other predicates).
func HasTreatmentWith(preds ...predicate.Treatment) predicate.Puncture {
	return predicate.Puncture(func(s *sql.Selector) {
		step := newTreatmentStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasOperator applies the HasEdge predicate on the "operator" edge.
func HasOperator() predicate.Puncture {
	return predicate.Puncture(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, false, OperatorTable, OperatorColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasOperatorWith applies the HasEdge predicate on the "operator" edge with a given conditions (other predicates).
func HasOperatorWith(preds ...predicate.User) predicate.Puncture {
	return predicate.Puncture(func(s *sql.Selector) {
		step := newOperatorStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasOocytes applies the HasEdge predicate on the "oocytes" edge.
func HasOocytes() predicate.Puncture {
	return predicate.Puncture(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, OocytesTable, OocytesColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasOocytesWith applies the HasEdge predicate on the "oocytes" edge with a given conditions (other predicates).
func HasOocytesWith(preds ...predicate.Oocyte) predicate.Puncture {
	return predicate.Puncture(func(s *sql.Selector) {
		step := newOocytesStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Puncture) predicate.Puncture {
	return predicate.Puncture(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Puncture) predicate.Puncture {
	return predicate.Puncture(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Puncture) predicate.Puncture {
	return predicate.Puncture(sql.NotPredicates(p))
}
