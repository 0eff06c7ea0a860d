package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

// Puncture records the oocyte extraction procedure. Exactly one per
// treatment.
type Puncture struct {
	ent.Schema
}

func (Puncture) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		CreatedAtMixin{},
	}
}

func (Puncture) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("treatment_id", uuid.UUID{}).
			Unique(),

		field.UUID("operator_id", uuid.UUID{}).
			Optional().
			Nillable().
			Comment("FK → users.id (the lab operator who performed it)"),

		field.Time("date"),

		field.String("operating_room").
			MaxLen(50),

		field.Text("complications").
			Optional().
			Nillable(),
	}
}

func (Puncture) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("treatment", Treatment.Type).
			Ref("puncture").
			Unique().
			Required().
			Field("treatment_id"),
		edge.To("operator", User.Type).
			Unique().
			Field("operator_id"),
		edge.To("oocytes", Oocyte.Type),
	}
}

func (Puncture) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("treatment_id").Unique(),
	}
}
