package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

// Patient extends a User (role PATIENT) with clinic-specific data.
// Created at registration; medical history and partner are attached lazily.
type Patient struct {
	ent.Schema
}

func (Patient) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		TimeStampedMixin{},
	}
}

func (Patient) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("user_id", uuid.UUID{}).
			Unique().
			Comment("FK → users.id (the patient's user account)"),

		field.String("occupation").
			Optional().
			Nillable().
			MaxLen(100),

		field.Int("medical_coverage_id").
			Optional().
			Nillable(),

		field.String("medical_coverage_name").
			Optional().
			Nillable().
			MaxLen(100),

		field.String("member_number").
			Optional().
			Nillable().
			MaxLen(50),
	}
}

func (Patient) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("user", User.Type).
			Ref("patient_profile").
			Unique().
			Required().
			Field("user_id"),
		edge.To("medical_history", MedicalHistory.Type).
			Unique(),
		edge.To("partner", Partner.Type).
			Unique(),
		edge.To("treatments", Treatment.Type),
	}
}

func (Patient) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id").Unique(),
	}
}
