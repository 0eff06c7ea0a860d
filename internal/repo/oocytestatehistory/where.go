// Code generated by ent, DO NOT EDIT.

package oocytestatehistory

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/fertitrack/fertitrack_backend/internal/repo/predicate"
	"github.com/google/uuid"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.OocyteStateHistory {
	return predicate.OocyteStateHistory(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.OocyteStateHistory {
	return predicate.OocyteStateHistory(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.OocyteStateHistory {
	return predicate.OocyteStateHistory(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.OocyteStateHistory {
	return predicate.OocyteStateHistory(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.OocyteStateHistory {
	return predicate.OocyteStateHistory(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.OocyteStateHistory {
	return predicate.OocyteStateHistory(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.OocyteStateHistory {
	return predicate.OocyteStateHistory(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.OocyteStateHistory {
	return predicate.OocyteStateHistory(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.OocyteStateHistory {
	return predicate.OocyteStateHistory(sql.FieldLTE(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.OocyteStateHistory {
	return predicate.OocyteStateHistory(sql.FieldEQ(FieldCreatedAt, v))
}

// OocyteID applies equality check predicate on the "oocyte_id" field. It's identical to OocyteIDEQ.
func OocyteID(v uuid.UUID) predicate.OocyteStateHistory {
	return predicate.OocyteStateHistory(sql.FieldEQ(FieldOocyteID, v))
}

// FromState applies equality check predicate on the "from_state" field. It's identical to FromStateEQ.
func FromState(v string) predicate.OocyteStateHistory {
	return predicate.OocyteStateHistory(sql.FieldEQ(FieldFromState, v))
}

// ToState applies equality check predicate on the "to_state" field. It's identical to ToStateEQ.
func ToState(v string) predicate.OocyteStateHistory {
	return predicate.OocyteStateHistory(sql.FieldEQ(FieldToState, v))
}

// Notes applies equality check predicate on the "notes" field. It's identical to NotesEQ.
func Notes(v string) predicate.OocyteStateHistory {
	return predicate.OocyteStateHistory(sql.FieldEQ(FieldNotes, v))
}

// ChangedByID applies equality check predicate on the "changed_by_id" field. It's identical to ChangedByIDEQ.
func ChangedByID(v uuid.UUID) predicate.OocyteStateHistory {
	return predicate.OocyteStateHistory(sql.FieldEQ(FieldChangedByID, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.OocyteStateHistory {
	return predicate.OocyteStateHistory(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.OocyteStateHistory {
	return predicate.OocyteStateHistory(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.OocyteStateHistory {
	return predicate.OocyteStateHistory(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.OocyteStateHistory {
	return predicate.OocyteStateHistory(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.OocyteStateHistory {
	return predicate.OocyteStateHistory(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.OocyteStateHistory {
	return predicate.OocyteStateHistory(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.OocyteStateHistory {
	return predicate.OocyteStateHistory(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.OocyteStateHistory {
	return predicate.OocyteStateHistory(sql.FieldLTE(FieldCreatedAt, v))
}

// OocyteIDEQ applies the EQ predicate on the "oocyte_id" field.
func OocyteIDEQ(v uuid.UUID) predicate.OocyteStateHistory {
	return predicate.OocyteStateHistory(sql.FieldEQ(FieldOocyteID, v))
}

// OocyteIDNEQ applies the NEQ predicate on the "oocyte_id" field.
func OocyteIDNEQ(v uuid.UUID) predicate.OocyteStateHistory {
	return predicate.OocyteStateHistory(sql.FieldNEQ(FieldOocyteID, v))
}

// OocyteIDIn applies the In predicate on the "oocyte_id" field.
func OocyteIDIn(vs ...uuid.UUID) predicate.OocyteStateHistory {
	return predicate.OocyteStateHistory(sql.FieldIn(FieldOocyteID, vs...))
}

// OocyteIDNotIn applies the NotIn predicate on the "oocyte_id" field.
func OocyteIDNotIn(vs ...uuid.UUID) predicate.OocyteStateHistory {
	return predicate.OocyteStateHistory(sql.FieldNotIn(FieldOocyteID, vs...))
}

// FromStateEQ applies the EQ predicate on the "from_state" field.
func FromStateEQ(v string) predicate.OocyteStateHistory {
	return predicate.OocyteStateHistory(sql.FieldEQ(FieldFromState, v))
}

// FromStateNEQ applies the NEQ predicate on the "from_state" field.
func FromStateNEQ(v string) predicate.OocyteStateHistory {
	return predicate.OocyteStateHistory(sql.FieldNEQ(FieldFromState, v))
}

// FromStateIn applies the In predicate on the "from_state" field.
func FromStateIn(vs ...string) predicate.OocyteStateHistory {
	return predicate.OocyteStateHistory(sql.FieldIn(FieldFromState, vs...))
}

// FromStateNotIn applies the NotIn predicate on the "from_state" field.
func FromStateNotIn(vs ...string) predicate.OocyteStateHistory {
	return predicate.OocyteStateHistory(sql.FieldNotIn(FieldFromState, vs...))
}

// FromStateGT applies the GT predicate on the "from_state" field.
func FromStateGT(v string) predicate.OocyteStateHistory {
	return predicate.OocyteStateHistory(sql.FieldGT(FieldFromState, v))
}

// FromStateGTE applies the GTE predicate on the "from_state" field.
func FromStateGTE(v string) predicate.OocyteStateHistory {
	return predicate.OocyteStateHistory(sql.FieldGTE(FieldFromState, v))
}

// FromStateLT applies the LT predicate on the "from_state" field.
func FromStateLT(v string) predicate.OocyteStateHistory {
	return predicate.OocyteStateHistory(sql.FieldLT(FieldFromState, v))
}

// FromStateLTE applies the LTE predicate on the "from_state" field.
func FromStateLTE(v string) predicate.OocyteStateHistory {
	return predicate.OocyteStateHistory(sql.FieldLTE(FieldFromState, v))
}

// FromStateContains applies the Contains predicate on the "from_state" field.
func FromStateContains(v string) predicate.OocyteStateHistory {
	return predicate.OocyteStateHistory(sql.FieldContains(FieldFromState, v))
}

// FromStateHasPrefix applies the HasPrefix predicate on the "from_state" field.
func FromStateHasPrefix(v string) predicate.OocyteStateHistory {
	return predicate.OocyteStateHistory(sql.FieldHasPrefix(FieldFromState, v))
}

// FromStateHasSuffix applies the HasSuffix predicate on the "from_state" field.
func FromStateHasSuffix(v string) predicate.OocyteStateHistory {
	return predicate.OocyteStateHistory(sql.FieldHasSuffix(FieldFromState, v))
}

// FromStateIsNil applies the IsNil predicate on the "from_state" field.
func FromStateIsNil() predicate.OocyteStateHistory {
	return predicate.OocyteStateHistory(sql.FieldIsNull(FieldFromState))
}

// FromStateNotNil applies the NotNil predicate on the "from_state" field.
func FromStateNotNil() predicate.OocyteStateHistory {
	return predicate.OocyteStateHistory(sql.FieldNotNull(FieldFromState))
}

// FromStateEqualFold applies the EqualFold predicate on the "from_state" field.
func FromStateEqualFold(v string) predicate.OocyteStateHistory {
	return predicate.OocyteStateHistory(sql.FieldEqualFold(FieldFromState, v))
}

// FromStateContainsFold applies the ContainsFold predicate on the "from_state" field.
func FromStateContainsFold(v string) predicate.OocyteStateHistory {
	return predicate.OocyteStateHistory(sql.FieldContainsFold(FieldFromState, v))
}

// ToStateEQ applies the EQ predicate on the "to_state" field.
func ToStateEQ(v string) predicate.OocyteStateHistory {
	return predicate.OocyteStateHistory(sql.FieldEQ(FieldToState, v))
}

// ToStateNEQ applies the NEQ predicate on the "to_state" field.
func ToStateNEQ(v string) predicate.OocyteStateHistory {
	return predicate.OocyteStateHistory(sql.FieldNEQ(FieldToState, v))
}

// ToStateIn applies the In predicate on the "to_state" field.
func ToStateIn(vs ...string) predicate.OocyteStateHistory {
	return predicate.OocyteStateHistory(sql.FieldIn(FieldToState, vs...))
}

// ToStateNotIn applies the NotIn predicate on the "to_state" field.
func ToStateNotIn(vs ...string) predicate.OocyteStateHistory {
	return predicate.OocyteStateHistory(sql.FieldNotIn(FieldToState, vs...))
}

// ToStateGT applies the GT predicate on the "to_state" field.
func ToStateGT(v string) predicate.OocyteStateHistory {
	return predicate.OocyteStateHistory(sql.FieldGT(FieldToState, v))
}

// ToStateGTE applies the GTE predicate on the "to_state" field.
func ToStateGTE(v string) predicate.OocyteStateHistory {
	return predicate.OocyteStateHistory(sql.FieldGTE(FieldToState, v))
}

// ToStateLT applies the LT predicate on the "to_state" field.
func ToStateLT(v string) predicate.OocyteStateHistory {
	return predicate.OocyteStateHistory(sql.FieldLT(FieldToState, v))
}

// ToStateLTE applies the LTE predicate on the "to_state" field.
func ToStateLTE(v string) predicate.OocyteStateHistory {
	return predicate.OocyteStateHistory(sql.FieldLTE(FieldToState, v))
}

// ToStateContains applies the Contains predicate on the "to_state" field.
func ToStateContains(v string) predicate.OocyteStateHistory {
	return predicate.OocyteStateHistory(sql.FieldContains(FieldToState, v))
}

// ToStateHasPrefix applies the HasPrefix predicate on the "to_state" field.
func ToStateHasPrefix(v string) predicate.OocyteStateHistory {
	return predicate.OocyteStateHistory(sql.FieldHasPrefix(FieldToState, v))
}

// ToStateHasSuffix applies the HasSuffix predicate on the "to_state" field.
func ToStateHasSuffix(v string) predicate.OocyteStateHistory {
	return predicate.OocyteStateHistory(sql.FieldHasSuffix(FieldToState, v))
}

// ToStateEqualFold applies the EqualFold predicate on the "to_state" field.
func ToStateEqualFold(v string) predicate.OocyteStateHistory {
	return predicate.OocyteStateHistory(sql.FieldEqualFold(FieldToState, v))
}

// ToStateContainsFold applies the ContainsFold predicate on the "to_state" field.
func ToStateContainsFold(v string) predicate.OocyteStateHistory {
	return predicate.OocyteStateHistory(sql.FieldContainsFold(FieldToState, v))
}

// NotesEQ applies the EQ predicate on the "notes" field.
func NotesEQ(v string) predicate.OocyteStateHistory {
	return predicate.OocyteStateHistory(sql.FieldEQ(FieldNotes, v))
}

// NotesNEQ applies the NEQ predicate on the "notes" field.
func NotesNEQ(v string) predicate.OocyteStateHistory {
	return predicate.OocyteStateHistory(sql.FieldNEQ(FieldNotes, v))
}

// NotesIn applies the In predicate on the "notes" field.
func NotesIn(vs ...string) predicate.OocyteStateHistory {
	return predicate.OocyteStateHistory(sql.FieldIn(FieldNotes, vs...))
}

// NotesNotIn applies the NotIn predicate on the "notes" field.
func NotesNotIn(vs ...string) predicate.OocyteStateHistory {
	return predicate.OocyteStateHistory(sql.FieldNotIn(FieldNotes, vs...))
}

// NotesGT applies the GT predicate on the "notes" field.
func NotesGT(v string) predicate.OocyteStateHistory {
	return predicate.OocyteStateHistory(sql.FieldGT(FieldNotes, v))
}

// NotesGTE applies the GTE predicate on the "notes" field.
func NotesGTE(v string) predicate.OocyteStateHistory {
	return predicate.OocyteStateHistory(sql.FieldGTE(FieldNotes, v))
}

// NotesLT applies the LT predicate on the "notes" field.
func NotesLT(v string) predicate.OocyteStateHistory {
	return predicate.OocyteStateHistory(sql.FieldLT(FieldNotes, v))
}

// NotesLTE applies the LTE predicate on the "notes" field.
func NotesLTE(v string) predicate.OocyteStateHistory {
	return predicate.OocyteStateHistory(sql.FieldLTE(FieldNotes, v))
}

// NotesContains applies the Contains predicate on the "notes" field.
func NotesContains(v string) predicate.OocyteStateHistory {
	return predicate.OocyteStateHistory(sql.FieldContains(FieldNotes, v))
}

// NotesHasPrefix applies the HasPrefix predicate on the "notes" field.
func NotesHasPrefix(v string) predicate.OocyteStateHistory {
	return predicate.OocyteStateHistory(sql.FieldHasPrefix(FieldNotes, v))
}

// NotesHasSuffix applies the HasSuffix predicate on the "notes" field.
func NotesHasSuffix(v string) predicate.OocyteStateHistory {
	return predicate.OocyteStateHistory(sql.FieldHasSuffix(FieldNotes, v))
}

// NotesIsNil applies the IsNil predicate on the "notes" field.
func NotesIsNil() predicate.OocyteStateHistory {
	return predicate.OocyteStateHistory(sql.FieldIsNull(FieldNotes))
}

// NotesNotNil applies the NotNil predicate on the "notes" field.
func NotesNotNil() predicate.OocyteStateHistory {
	return predicate.OocyteStateHistory(sql.FieldNotNull(FieldNotes))
}

// NotesEqualFold applies the EqualFold predicate on the "notes" field.
func NotesEqualFold(v string) predicate.OocyteStateHistory {
	return predicate.OocyteStateHistory(sql.FieldEqualFold(FieldNotes, v))
}

// NotesContainsFold applies the ContainsFold predicate on the "notes" field.
func NotesContainsFold(v string) predicate.OocyteStateHistory {
	return predicate.OocyteStateHistory(sql.FieldContainsFold(FieldNotes, v))
}

// ChangedByIDEQ applies the EQ predicate on the "changed_by_id" field.
func ChangedByIDEQ(v uuid.UUID) predicate.OocyteStateHistory {
	return predicate.OocyteStateHistory(sql.FieldEQ(FieldChangedByID, v))
}

// ChangedByIDNEQ applies the NEQ predicate on the "changed_by_id" field.
func ChangedByIDNEQ(v uuid.UUID) predicate.OocyteStateHistory {
	return predicate.OocyteStateHistory(sql.FieldNEQ(FieldChangedByID, v))
}

// ChangedByIDIn applies the In predicate on the "changed_by_id" field.
func ChangedByIDIn(vs ...uuid.UUID) predicate.OocyteStateHistory {
	return predicate.OocyteStateHistory(sql.FieldIn(FieldChangedByID, vs...))
}

// ChangedByIDNotIn applies the NotIn predicate on the "changed_by_id" field.
func ChangedByIDNotIn(vs ...uuid.UUID) predicate.OocyteStateHistory {
	return predicate.OocyteStateHistory(sql.FieldNotIn(FieldChangedByID, vs...))
}

// ChangedByIDIsNil applies the IsNil predicate on the "changed_by_id" field.
func ChangedByIDIsNil() predicate.OocyteStateHistory {
	return predicate.OocyteStateHistory(sql.FieldIsNull(FieldChangedByID))
}

// ChangedByIDNotNil applies the NotNil predicate on the "changed_by_id" field.
func ChangedByIDNotNil() predicate.OocyteStateHistory {
	return predicate.OocyteStateHistory(sql.FieldNotNull(FieldChangedByID))
}

// HasOocyte applies the HasEdge predicate on the "oocyte" edge.
func HasOocyte() predicate.OocyteStateHistory {
	return predicate.OocyteStateHistory(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, OocyteTable, OocyteColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasOocyteWith applies the HasEdge predicate on the "oocyte" edge with a given conditions (other predicates).
func HasOocyteWith(preds ...predicate.Oocyte) predicate.OocyteStateHistory {
	return predicate.OocyteStateHistory(func(s *sql.Selector) {
		step := newOocyteStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasChangedBy applies the HasEdge predicate on the "changed_by" edge.
func HasChangedBy() predicate.OocyteStateHistory {
	return predicate.OocyteStateHistory(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, false, ChangedByTable, ChangedByColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasChangedByWith applies the HasEdge predicate on the "changed_by" edge with a given conditions (other predicates).
func HasChangedByWith(preds ...predicate.User) predicate.OocyteStateHistory {
	return predicate.OocyteStateHistory(func(s *sql.Selector) {
		step := newChangedByStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.OocyteStateHistory) predicate.OocyteStateHistory {
	return predicate.OocyteStateHistory(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.OocyteStateHistory) predicate.OocyteStateHistory {
	return predicate.OocyteStateHistory(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.OocyteStateHistory) predicate.OocyteStateHistory {
	return predicate.OocyteStateHistory(sql.NotPredicates(p))
}
