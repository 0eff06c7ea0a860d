// Code generated by ent, DO NOT EDIT.

package medicalorder

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/fertitrack/fertitrack_backend/internal/repo/predicate"
	"github.com/google/uuid"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.MedicalOrder {
	return predicate.MedicalOrder(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.MedicalOrder {
	return predicate.MedicalOrder(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.MedicalOrder {
	return predicate.MedicalOrder(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.MedicalOrder {
	return predicate.MedicalOrder(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.MedicalOrder {
	return predicate.MedicalOrder(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.MedicalOrder {
	return predicate.MedicalOrder(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.MedicalOrder {
	return predicate.MedicalOrder(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.MedicalOrder {
	return predicate.MedicalOrder(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.MedicalOrder {
	return predicate.MedicalOrder(sql.FieldLTE(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.MedicalOrder {
	return predicate.MedicalOrder(sql.FieldEQ(FieldCreatedAt, v))
}

// TreatmentID applies equality check predicate on the "treatment_id" field. It's identical to TreatmentIDEQ.
func TreatmentID(v uuid.UUID) predicate.MedicalOrder {
	return predicate.MedicalOrder(sql.FieldEQ(FieldTreatmentID, v))
}

// OrderType applies equality check predicate on the "order_type" field. It's identical to OrderTypeEQ.
func OrderType(v string) predicate.MedicalOrder {
	return predicate.MedicalOrder(sql.FieldEQ(FieldOrderType, v))
}

// Description applies equality check predicate on the "description" field. It's identical to DescriptionEQ.
func Description(v string) predicate.MedicalOrder {
	return predicate.MedicalOrder(sql.FieldEQ(FieldDescription, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.MedicalOrder {
	return predicate.MedicalOrder(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.MedicalOrder {
	return predicate.MedicalOrder(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.MedicalOrder {
	return predicate.MedicalOrder(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.MedicalOrder {
	return predicate.MedicalOrder(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.MedicalOrder {
	return predicate.MedicalOrder(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.MedicalOrder {
	return predicate.MedicalOrder(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.MedicalOrder {
	return predicate.MedicalOrder(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.MedicalOrder {
	return predicate.MedicalOrder(sql.FieldLTE(FieldCreatedAt, v))
}

// TreatmentIDEQ applies the EQ predicate on the "treatment_id" field.
func TreatmentIDEQ(v uuid.UUID) predicate.MedicalOrder {
	return predicate.MedicalOrder(sql.FieldEQ(FieldTreatmentID, v))
}

// TreatmentIDNEQ applies the NEQ predicate on the "treatment_id" field.
func TreatmentIDNEQ(v uuid.UUID) predicate.MedicalOrder {
	return predicate.MedicalOrder(sql.FieldNEQ(FieldTreatmentID, v))
}

// TreatmentIDIn applies the In predicate on the "treatment_id" field.
func TreatmentIDIn(vs ...uuid.UUID) predicate.MedicalOrder {
	return predicate.MedicalOrder(sql.FieldIn(FieldTreatmentID, vs...))
}

// TreatmentIDNotIn applies the NotIn predicate on the "treatment_id" field.
func TreatmentIDNotIn(vs ...uuid.UUID) predicate.MedicalOrder {
	return predicate.MedicalOrder(sql.FieldNotIn(FieldTreatmentID, vs...))
}

// OrderTypeEQ applies the EQ predicate on the "order_type" field.
func OrderTypeEQ(v string) predicate.MedicalOrder {
	return predicate.MedicalOrder(sql.FieldEQ(FieldOrderType, v))
}

// OrderTypeNEQ applies the NEQ predicate on the "order_type" field.
func OrderTypeNEQ(v string) predicate.MedicalOrder {
	return predicate.MedicalOrder(sql.FieldNEQ(FieldOrderType, v))
}

// OrderTypeIn applies the In predicate on the "order_type" field.
func OrderTypeIn(vs ...string) predicate.MedicalOrder {
	return predicate.MedicalOrder(sql.FieldIn(FieldOrderType, vs...))
}

// OrderTypeNotIn applies the NotIn predicate on the "order_type" field.
func OrderTypeNotIn(vs ...string) predicate.MedicalOrder {
	return predicate.MedicalOrder(sql.FieldNotIn(FieldOrderType, vs...))
}

// OrderTypeGT applies the GT predicate on the "order_type" field.
func OrderTypeGT(v string) predicate.MedicalOrder {
	return predicate.MedicalOrder(sql.FieldGT(FieldOrderType, v))
}

// OrderTypeGTE applies the GTE predicate on the "order_type" field.
func OrderTypeGTE(v string) predicate.MedicalOrder {
	return predicate.MedicalOrder(sql.FieldGTE(FieldOrderType, v))
}

// OrderTypeLT applies the LT predicate on the "order_type" field.
func OrderTypeLT(v string) predicate.MedicalOrder {
	return predicate.MedicalOrder(sql.FieldLT(FieldOrderType, v))
}

// OrderTypeLTE applies the LTE predicate on the "order_type" field.
func OrderTypeLTE(v string) predicate.MedicalOrder {
	return predicate.MedicalOrder(sql.FieldLTE(FieldOrderType, v))
}

// OrderTypeContains applies the Contains predicate on the "order_type" field.
func OrderTypeContains(v string) predicate.MedicalOrder {
	return predicate.MedicalOrder(sql.FieldContains(FieldOrderType, v))
}

// OrderTypeHasPrefix applies the HasPrefix predicate on the "order_type" field.
func OrderTypeHasPrefix(v string) predicate.MedicalOrder {
	return predicate.MedicalOrder(sql.FieldHasPrefix(FieldOrderType, v))
}

// OrderTypeHasSuffix applies the HasSuffix predicate on the "order_type" field.
func OrderTypeHasSuffix(v string) predicate.MedicalOrder {
	return predicate.MedicalOrder(sql.FieldHasSuffix(FieldOrderType, v))
}

// OrderTypeEqualFold applies the EqualFold predicate on the "order_type" field.
func OrderTypeEqualFold(v string) predicate.MedicalOrder {
	return predicate.MedicalOrder(sql.FieldEqualFold(FieldOrderType, v))
}

// OrderTypeContainsFold applies the ContainsFold predicate on the "order_type" field.
func OrderTypeContainsFold(v string) predicate.MedicalOrder {
	return predicate.MedicalOrder(sql.FieldContainsFold(FieldOrderType, v))
}

// DescriptionEQ applies the EQ predicate on the "description" field.
func DescriptionEQ(v string) predicate.MedicalOrder {
	return predicate.MedicalOrder(sql.FieldEQ(FieldDescription, v))
}

// DescriptionNEQ applies the NEQ predicate on the "description" field.
func DescriptionNEQ(v string) predicate.MedicalOrder {
	return predicate.MedicalOrder(sql.FieldNEQ(FieldDescription, v))
}

// DescriptionIn applies the In predicate on the "description" field.
func DescriptionIn(vs ...string) predicate.MedicalOrder {
	return predicate.MedicalOrder(sql.FieldIn(FieldDescription, vs...))
}

// DescriptionNotIn applies the NotIn predicate on the "description" field.
func DescriptionNotIn(vs ...string) predicate.MedicalOrder {
	return predicate.MedicalOrder(sql.FieldNotIn(FieldDescription, vs...))
}

// DescriptionGT applies the GT predicate on the "description" field.
func DescriptionGT(v string) predicate.MedicalOrder {
	return predicate.MedicalOrder(sql.FieldGT(FieldDescription, v))
}

// DescriptionGTE applies the GTE predicate on the "description" field.
func DescriptionGTE(v string) predicate.MedicalOrder {
	return predicate.MedicalOrder(sql.FieldGTE(FieldDescription, v))
}

// DescriptionLT applies the LT predicate on the "description" field.
func DescriptionLT(v string) predicate.MedicalOrder {
	return predicate.MedicalOrder(sql.FieldLT(FieldDescription, v))
}

// DescriptionLTE applies the LTE predicate on the "description" field.
func DescriptionLTE(v string) predicate.MedicalOrder {
	return predicate.MedicalOrder(sql.FieldLTE(FieldDescription, v))
}

// DescriptionContains applies the Contains predicate on the "description" field.
func DescriptionContains(v string) predicate.MedicalOrder {
	return predicate.MedicalOrder(sql.FieldContains(FieldDescription, v))
}

// DescriptionHasPrefix applies the HasPrefix predicate on the "description" field.
func DescriptionHasPrefix(v string) predicate.MedicalOrder {
	return predicate.MedicalOrder(sql.FieldHasPrefix(FieldDescription, v))
}

// DescriptionHasSuffix applies the HasSuffix predicate on the "description" field.
func DescriptionHasSuffix(v string) predicate.MedicalOrder {
	return predicate.MedicalOrder(sql.FieldHasSuffix(FieldDescription, v))
}

// DescriptionEqualFold applies the EqualFold predicate on the "description" field.
func DescriptionEqualFold(v string) predicate.MedicalOrder {
	return predicate.MedicalOrder(sql.FieldEqualFold(FieldDescription, v))
}

// DescriptionContainsFold applies the ContainsFold predicate on the "description" field.
func DescriptionContainsFold(v string) predicate.MedicalOrder {
	return predicate.MedicalOrder(sql.FieldContainsFold(FieldDescription, v))
}

// HasTreatment applies the HasEdge predicate on the "treatment" edge.
func HasTreatment() predicate.MedicalOrder {
	return predicate.MedicalOrder(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, TreatmentTable, TreatmentColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasTreatmentWith applies the HasEdge predicate on the "treatment" edge with a given conditions (other predicates).
func HasTreatmentWith(preds ...predicate.Treatment) predicate.MedicalOrder {
	return predicate.MedicalOrder(func(s *sql.Selector) {
		step := newTreatmentStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.MedicalOrder) predicate.MedicalOrder {
	return predicate.MedicalOrder(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.MedicalOrder) predicate.MedicalOrder {
	return predicate.MedicalOrder(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.MedicalOrder) predicate.MedicalOrder {
	return predicate.MedicalOrder(sql.NotPredicates(p))
}
