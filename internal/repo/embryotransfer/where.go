// Code generated by ent, DO NOT EDIT.

package embryotransfer

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/fertitrack/fertitrack_backend/internal/repo/predicate"
	"github.com/google/uuid"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.EmbryoTransfer {
	return predicate.EmbryoTransfer(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.EmbryoTransfer {
	return predicate.EmbryoTransfer(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.EmbryoTransfer {
	return predicate.EmbryoTransfer(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.EmbryoTransfer {
	return predicate.EmbryoTransfer(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.EmbryoTransfer {
	return predicate.EmbryoTransfer(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.EmbryoTransfer {
	return predicate.EmbryoTransfer(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.EmbryoTransfer {
	return predicate.EmbryoTransfer(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.EmbryoTransfer {
	return predicate.EmbryoTransfer(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.EmbryoTransfer {
	return predicate.EmbryoTransfer(sql.FieldLTE(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.EmbryoTransfer {
	return predicate.EmbryoTransfer(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.EmbryoTransfer {
	return predicate.EmbryoTransfer(sql.FieldEQ(FieldUpdatedAt, v))
}

// EmbryoID applies equality check predicate on the "embryo_id" field. It's identical to EmbryoIDEQ.
func EmbryoID(v uuid.UUID) predicate.EmbryoTransfer {
	return predicate.EmbryoTransfer(sql.FieldEQ(FieldEmbryoID, v))
}

// ScheduledDate applies equality check predicate on the "scheduled_date" field. It's identical to ScheduledDateEQ.
func ScheduledDate(v time.Time) predicate.EmbryoTransfer {
	return predicate.EmbryoTransfer(sql.FieldEQ(FieldScheduledDate, v))
}

// PerformedDate applies equality check predicate on the "performed_date" field. It's identical to PerformedDateEQ.
func PerformedDate(v time.Time) predicate.EmbryoTransfer {
	return predicate.EmbryoTransfer(sql.FieldEQ(FieldPerformedDate, v))
}

// BetaPositive applies equality check predicate on the "beta_positive" field. It's identical to BetaPositiveEQ.
func BetaPositive(v bool) predicate.EmbryoTransfer {
	return predicate.EmbryoTransfer(sql.FieldEQ(FieldBetaPositive, v))
}

// GestationalSac applies equality check predicate on the "gestational_sac" field. It's identical to GestationalSacEQ.
func GestationalSac(v bool) predicate.EmbryoTransfer {
	return predicate.EmbryoTransfer(sql.FieldEQ(FieldGestationalSac, v))
}

// ClinicalPregnancy applies equality check predicate on the "clinical_pregnancy" field. It's identical to ClinicalPregnancyEQ.
func ClinicalPregnancy(v bool) predicate.EmbryoTransfer {
	return predicate.EmbryoTransfer(sql.FieldEQ(FieldClinicalPregnancy, v))
}

// LiveBirth applies equality check predicate on the "live_birth" field. It's identical to LiveBirthEQ.
func LiveBirth(v bool) predicate.EmbryoTransfer {
	return predicate.EmbryoTransfer(sql.FieldEQ(FieldLiveBirth, v))
}

// Notes applies equality check predicate on the "notes" field. It's identical to NotesEQ.
func Notes(v string) predicate.EmbryoTransfer {
	return predicate.EmbryoTransfer(sql.FieldEQ(FieldNotes, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.EmbryoTransfer {
	return predicate.EmbryoTransfer(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.EmbryoTransfer {
	return predicate.EmbryoTransfer(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.EmbryoTransfer {
	return predicate.EmbryoTransfer(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.EmbryoTransfer {
	return predicate.EmbryoTransfer(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.EmbryoTransfer {
	return predicate.EmbryoTransfer(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.EmbryoTransfer {
	return predicate.EmbryoTransfer(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.EmbryoTransfer {
	return predicate.EmbryoTransfer(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.EmbryoTransfer {
	return predicate.EmbryoTransfer(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.EmbryoTransfer {
	return predicate.EmbryoTransfer(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.EmbryoTransfer {
	return predicate.EmbryoTransfer(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.EmbryoTransfer {
	return predicate.EmbryoTransfer(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.EmbryoTransfer {
	return predicate.EmbryoTransfer(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.EmbryoTransfer {
	return predicate.EmbryoTransfer(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.EmbryoTransfer {
	return predicate.EmbryoTransfer(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.EmbryoTransfer {
	return predicate.EmbryoTransfer(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.EmbryoTransfer {
	return predicate.EmbryoTransfer(sql.FieldLTE(FieldUpdatedAt, v))
}

// EmbryoIDEQ applies the EQ predicate on the "embryo_id" field.
func EmbryoIDEQ(v uuid.UUID) predicate.EmbryoTransfer {
	return predicate.EmbryoTransfer(sql.FieldEQ(FieldEmbryoID, v))
}

// EmbryoIDNEQ applies the NEQ predicate on the "embryo_id" field.
func EmbryoIDNEQ(v uuid.UUID) predicate.EmbryoTransfer {
	return predicate.EmbryoTransfer(sql.FieldNEQ(FieldEmbryoID, v))
}

// EmbryoIDIn applies the In predicate on the "embryo_id" field.
func EmbryoIDIn(vs ...uuid.UUID) predicate.EmbryoTransfer {
	return predicate.EmbryoTransfer(sql.FieldIn(FieldEmbryoID, vs...))
}

// EmbryoIDNotIn applies the NotIn predicate on the "embryo_id" field.
func EmbryoIDNotIn(vs ...uuid.UUID) predicate.EmbryoTransfer {
	return predicate.EmbryoTransfer(sql.FieldNotIn(FieldEmbryoID, vs...))
}

// ScheduledDateEQ applies the EQ predicate on the "scheduled_date" field.
func ScheduledDateEQ(v time.Time) predicate.EmbryoTransfer {
	return predicate.EmbryoTransfer(sql.FieldEQ(FieldScheduledDate, v))
}

// ScheduledDateNEQ applies the NEQ predicate on the "scheduled_date" field.
func ScheduledDateNEQ(v time.Time) predicate.EmbryoTransfer {
	return predicate.EmbryoTransfer(sql.FieldNEQ(FieldScheduledDate, v))
}

// ScheduledDateIn applies the In predicate on the "scheduled_date" field.
func ScheduledDateIn(vs ...time.Time) predicate.EmbryoTransfer {
	return predicate.EmbryoTransfer(sql.FieldIn(FieldScheduledDate, vs...))
}

// ScheduledDateNotIn applies the NotIn predicate on the "scheduled_date" field.
func ScheduledDateNotIn(vs ...time.Time) predicate.EmbryoTransfer {
	return predicate.EmbryoTransfer(sql.FieldNotIn(FieldScheduledDate, vs...))
}

// ScheduledDateGT applies the GT predicate on the "scheduled_date" field.
func ScheduledDateGT(v time.Time) predicate.EmbryoTransfer {
	return predicate.EmbryoTransfer(sql.FieldGT(FieldScheduledDate, v))
}

// ScheduledDateGTE applies the GTE predicate on the "scheduled_date" field.
func ScheduledDateGTE(v time.Time) predicate.EmbryoTransfer {
	return predicate.EmbryoTransfer(sql.FieldGTE(FieldScheduledDate, v))
}

// ScheduledDateLT applies the LT predicate on the "scheduled_date" field.
func ScheduledDateLT(v time.Time) predicate.EmbryoTransfer {
	return predicate.EmbryoTransfer(sql.FieldLT(FieldScheduledDate, v))
}

// ScheduledDateLTE applies the LTE predicate on the "scheduled_date" field.
func ScheduledDateLTE(v time.Time) predicate.EmbryoTransfer {
	return predicate.EmbryoTransfer(sql.FieldLTE(FieldScheduledDate, v))
}

// PerformedDateEQ applies the EQ predicate on the "performed_date" field.
func PerformedDateEQ(v time.Time) predicate.EmbryoTransfer {
	return predicate.EmbryoTransfer(sql.FieldEQ(FieldPerformedDate, v))
}

// PerformedDateNEQ applies the NEQ predicate on the "performed_date" field.
func PerformedDateNEQ(v time.Time) predicate.EmbryoTransfer {
	return predicate.EmbryoTransfer(sql.FieldNEQ(FieldPerformedDate, v))
}

// PerformedDateIn applies the In predicate on the "performed_date" field.
func PerformedDateIn(vs ...time.Time) predicate.EmbryoTransfer {
	return predicate.EmbryoTransfer(sql.FieldIn(FieldPerformedDate, vs...))
}

// PerformedDateNotIn applies the NotIn predicate on the "performed_date" field.
func PerformedDateNotIn(vs ...time.Time) predicate.EmbryoTransfer {
	return predicate.EmbryoTransfer(sql.FieldNotIn(FieldPerformedDate, vs...))
}

// PerformedDateGT applies the GT predicate on the "performed_date" field.
func PerformedDateGT(v time.Time) predicate.EmbryoTransfer {
	return predicate.EmbryoTransfer(sql.FieldGT(FieldPerformedDate, v))
}

// PerformedDateGTE applies the GTE predicate on the "performed_date" field.
func PerformedDateGTE(v time.Time) predicate.EmbryoTransfer {
	return predicate.EmbryoTransfer(sql.FieldGTE(FieldPerformedDate, v))
}

// PerformedDateLT applies the LT predicate on the "performed_date" field.
func PerformedDateLT(v time.Time) predicate.EmbryoTransfer {
	return predicate.EmbryoTransfer(sql.FieldLT(FieldPerformedDate, v))
}

// PerformedDateLTE applies the LTE predicate on the "performed_date" field.
func PerformedDateLTE(v time.Time) predicate.EmbryoTransfer {
	return predicate.EmbryoTransfer(sql.FieldLTE(FieldPerformedDate, v))
}

// PerformedDateIsNil applies the IsNil predicate on the "performed_date" field.
func PerformedDateIsNil() predicate.EmbryoTransfer {
	return predicate.EmbryoTransfer(sql.FieldIsNull(FieldPerformedDate))
}

// PerformedDateNotNil applies the NotNil predicate on the "performed_date" field.
func PerformedDateNotNil() predicate.EmbryoTransfer {
	return predicate.EmbryoTransfer(sql.FieldNotNull(FieldPerformedDate))
}

// BetaPositiveEQ applies the EQ predicate on the "beta_positive" field.
func BetaPositiveEQ(v bool) predicate.EmbryoTransfer {
	return predicate.EmbryoTransfer(sql.FieldEQ(FieldBetaPositive, v))
}

// BetaPositiveNEQ applies the NEQ predicate on the "beta_positive" field.
func BetaPositiveNEQ(v bool) predicate.EmbryoTransfer {
	return predicate.EmbryoTransfer(sql.FieldNEQ(FieldBetaPositive, v))
}

// BetaPositiveIsNil applies the IsNil predicate on the "beta_positive" field.
func BetaPositiveIsNil() predicate.EmbryoTransfer {
	return predicate.EmbryoTransfer(sql.FieldIsNull(FieldBetaPositive))
}

// BetaPositiveNotNil applies the NotNil predicate on the "beta_positive" field.
func BetaPositiveNotNil() predicate.EmbryoTransfer {
	return predicate.EmbryoTransfer(sql.FieldNotNull(FieldBetaPositive))
}

// GestationalSacEQ applies the EQ predicate on the "gestational_sac" field.
func GestationalSacEQ(v bool) predicate.EmbryoTransfer {
	return predicate.EmbryoTransfer(sql.FieldEQ(FieldGestationalSac, v))
}

// GestationalSacNEQ applies the NEQ predicate on the "gestational_sac" field.
func GestationalSacNEQ(v bool) predicate.EmbryoTransfer {
	return predicate.EmbryoTransfer(sql.FieldNEQ(FieldGestationalSac, v))
}

// GestationalSacIsNil applies the IsNil predicate on the "gestational_sac" field.
func GestationalSacIsNil() predicate.EmbryoTransfer {
	return predicate.EmbryoTransfer(sql.FieldIsNull(FieldGestationalSac))
}

// GestationalSacNotNil applies the NotNil predicate on the "gestational_sac" field.
func GestationalSacNotNil() predicate.EmbryoTransfer {
	return predicate.EmbryoTransfer(sql.FieldNotNull(FieldGestationalSac))
}

// ClinicalPregnancyEQ applies the EQ predicate on the "clinical_pregnancy" field.
func ClinicalPregnancyEQ(v bool) predicate.EmbryoTransfer {
	return predicate.EmbryoTransfer(sql.FieldEQ(FieldClinicalPregnancy, v))
}

// ClinicalPregnancyNEQ applies the NEQ predicate on the "clinical_pregnancy" field.
func ClinicalPregnancyNEQ(v bool) predicate.EmbryoTransfer {
	return predicate.EmbryoTransfer(sql.FieldNEQ(FieldClinicalPregnancy, v))
}

// ClinicalPregnancyIsNil applies the IsNil predicate on the "clinical_pregnancy" field.
func ClinicalPregnancyIsNil() predicate.EmbryoTransfer {
	return predicate.EmbryoTransfer(sql.FieldIsNull(FieldClinicalPregnancy))
}

// ClinicalPregnancyNotNil applies the NotNil predicate on the "clinical_pregnancy" field.
func ClinicalPregnancyNotNil() predicate.EmbryoTransfer {
	return predicate.EmbryoTransfer(sql.FieldNotNull(FieldClinicalPregnancy))
}

// LiveBirthEQ applies the EQ predicate on the "live_birth" field.
func LiveBirthEQ(v bool) predicate.EmbryoTransfer {
	return predicate.EmbryoTransfer(sql.FieldEQ(FieldLiveBirth, v))
}

// LiveBirthNEQ applies the NEQ predicate on the "live_birth" field.
func LiveBirthNEQ(v bool) predicate.EmbryoTransfer {
	return predicate.EmbryoTransfer(sql.FieldNEQ(FieldLiveBirth, v))
}

// LiveBirthIsNil applies the IsNil predicate on the "live_birth" field.
func LiveBirthIsNil() predicate.EmbryoTransfer {
	return predicate.EmbryoTransfer(sql.FieldIsNull(FieldLiveBirth))
}

// LiveBirthNotNil applies the NotNil predicate on the "live_birth" field.
func LiveBirthNotNil() predicate.EmbryoTransfer {
	return predicate.EmbryoTransfer(sql.FieldNotNull(FieldLiveBirth))
}

// NotesEQ applies the EQ predicate on the "notes" field.
func NotesEQ(v string) predicate.EmbryoTransfer {
	return predicate.EmbryoTransfer(sql.FieldEQ(FieldNotes, v))
}

// NotesNEQ applies the NEQ predicate on the "notes" field.
func NotesNEQ(v string) predicate.EmbryoTransfer {
	return predicate.EmbryoTransfer(sql.FieldNEQ(FieldNotes, v))
}

// NotesIn applies the In predicate on the "notes" field.
func NotesIn(vs ...string) predicate.EmbryoTransfer {
	return predicate.EmbryoTransfer(sql.FieldIn(FieldNotes, vs...))
}

// NotesNotIn applies the NotIn predicate on the "notes" field.
func NotesNotIn(vs ...string) predicate.EmbryoTransfer {
	return predicate.EmbryoTransfer(sql.FieldNotIn(FieldNotes, vs...))
}

// NotesGT applies the GT predicate on the "notes" field.
func NotesGT(v string) predicate.EmbryoTransfer {
	return predicate.EmbryoTransfer(sql.FieldGT(FieldNotes, v))
}

// NotesGTE applies the GTE predicate on the "notes" field.
func NotesGTE(v string) predicate.EmbryoTransfer {
	return predicate.EmbryoTransfer(sql.FieldGTE(FieldNotes, v))
}

// NotesLT applies the LT predicate on the "notes" field.
func NotesLT(v string) predicate.EmbryoTransfer {
	return predicate.EmbryoTransfer(sql.FieldLT(FieldNotes, v))
}

// NotesLTE applies the LTE predicate on the "notes" field.
func NotesLTE(v string) predicate.EmbryoTransfer {
	return predicate.EmbryoTransfer(sql.FieldLTE(FieldNotes, v))
}

// NotesContains applies the Contains predicate on the "notes" field.
func NotesContains(v string) predicate.EmbryoTransfer {
	return predicate.EmbryoTransfer(sql.FieldContains(FieldNotes, v))
}

// NotesHasPrefix applies the HasPrefix predicate on the "notes" field.
func NotesHasPrefix(v string) predicate.EmbryoTransfer {
	return predicate.EmbryoTransfer(sql.FieldHasPrefix(FieldNotes, v))
}

// NotesHasSuffix applies the HasSuffix predicate on the "notes" field.
func NotesHasSuffix(v string) predicate.EmbryoTransfer {
	return predicate.EmbryoTransfer(sql.FieldHasSuffix(FieldNotes, v))
}

// NotesIsNil applies the IsNil predicate on the "notes" field.
func NotesIsNil() predicate.EmbryoTransfer {
	return predicate.EmbryoTransfer(sql.FieldIsNull(FieldNotes))
}

// NotesNotNil applies the NotNil predicate on the "notes" field.
func NotesNotNil() predicate.EmbryoTransfer {
	return predicate.EmbryoTransfer(sql.FieldNotNull(FieldNotes))
}

// NotesEqualFold applies the EqualFold predicate on the "notes" field.
func NotesEqualFold(v string) predicate.EmbryoTransfer {
	return predicate.EmbryoTransfer(sql.FieldEqualFold(FieldNotes, v))
}

// NotesContainsFold applies the ContainsFold predicate on the "notes" field.
func NotesContainsFold(v string) predicate.EmbryoTransfer {
	return predicate.EmbryoTransfer(sql.FieldContainsFold(FieldNotes, v))
}

// HasEmbryo applies the HasEdge predicate on the "embryo" edge.
func HasEmbryo() predicate.EmbryoTransfer {
	return predicate.EmbryoTransfer(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2O, true, EmbryoTable, EmbryoColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasEmbryoWith applies the HasEdge predicate on the "embryo" edge with a given conditions (other predicates).
func HasEmbryoWith(preds ...predicate.Embryo) predicate.EmbryoTransfer {
	return predicate.EmbryoTransfer(func(s *sql.Selector) {
		step := newEmbryoStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.EmbryoTransfer) predicate.EmbryoTransfer {
	return predicate.EmbryoTransfer(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.EmbryoTransfer) predicate.EmbryoTransfer {
	return predicate.EmbryoTransfer(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.EmbryoTransfer) predicate.EmbryoTransfer {
	return predicate.EmbryoTransfer(sql.NotPredicates(p))
}
