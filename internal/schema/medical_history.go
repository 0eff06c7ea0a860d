package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"

	"github.com/google/uuid"
)

// MedicalHistory holds a patient's clinical background. Created on first
// treatment initiation or when the patient completes their profile.
type MedicalHistory struct {
	ent.Schema
}

func (MedicalHistory) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		TimeStampedMixin{},
	}
}

func (MedicalHistory) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("patient_id", uuid.UUID{}).
			Unique(),

		field.Text("clinical_background").
			Optional().
			Nillable(),

		field.Text("surgical_background").
			Optional().
			Nillable(),

		field.Text("personal_background").
			Optional().
			Nillable(),

		field.Text("family_background").
			Optional().
			Nillable(),

		field.Text("gynecological_background").
			Optional().
			Nillable(),

		field.Text("physical_exam").
			Optional().
			Nillable(),

		field.Text("phenotype").
			Optional().
			Nillable(),
	}
}

func (MedicalHistory) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("patient", Patient.Type).
			Ref("medical_history").
			Unique().
			Required().
			Field("patient_id"),
	}
}
