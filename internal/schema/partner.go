package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"

	"github.com/google/uuid"
)

// Partner is the optional couple-partner record for a patient in
// couples treatment.
type Partner struct {
	ent.Schema
}

func (Partner) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		TimeStampedMixin{},
	}
}

func (Partner) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("patient_id", uuid.UUID{}).
			Unique(),

		field.String("first_name").
			MaxLen(100),

		field.String("last_name").
			MaxLen(100),

		field.Time("date_of_birth"),

		field.Enum("biological_sex").
			Values("M", "F"),

		field.String("dni").
			MaxLen(20),

		field.Text("genital_background").
			Optional().
			Nillable(),
	}
}

func (Partner) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("patient", Patient.Type).
			Ref("partner").
			Unique().
			Required().
			Field("patient_id"),
	}
}
