package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

// Treatment is the central aggregate of a fertility cycle: one patient,
// one assigned doctor, a stimulation protocol and its child records.
// Treatments are never deleted, only status-transitioned.
type Treatment struct {
	ent.Schema
}

func (Treatment) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		TimeStampedMixin{},
	}
}

func (Treatment) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("patient_id", uuid.UUID{}),

		field.UUID("doctor_id", uuid.UUID{}).
			Comment("FK → users.id (role DOCTOR or MEDICAL_DIRECTOR)"),

		field.Enum("objective").
			Values("PREGNANCY", "OOCYTE_PRESERVATION"),

		field.Enum("status").
			Values("ACTIVE", "COMPLETED", "CANCELLED").
			Default("ACTIVE"),

		field.Text("stimulation_protocol").
			Optional().
			Nillable(),

		field.String("medication_type").
			Optional().
			Nillable().
			MaxLen(100),

		field.String("medication_dose").
			Optional().
			Nillable().
			MaxLen(100),

		field.String("medication_duration").
			Optional().
			Nillable().
			MaxLen(100),

		field.Bool("oocytes_viable").
			Optional().
			Nillable(),

		field.Bool("sperm_viable").
			Optional().
			Nillable(),

		field.String("consent_document_key").
			Optional().
			Nillable().
			MaxLen(512).
			Comment("Object storage key of the signed consent document"),
	}
}

func (Treatment) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("patient", Patient.Type).
			Ref("treatments").
			Unique().
			Required().
			Field("patient_id"),
		edge.To("doctor", User.Type).
			Unique().
			Required().
			Field("doctor_id"),
		edge.To("monitoring_days", MonitoringDay.Type),
		edge.To("study_results", StudyResult.Type),
		edge.To("medical_orders", MedicalOrder.Type),
		edge.To("puncture", Puncture.Type).
			Unique(),
	}
}

func (Treatment) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("patient_id"),
		index.Fields("doctor_id"),
		index.Fields("status"),
	}
}
