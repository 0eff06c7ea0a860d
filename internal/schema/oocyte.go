package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

// Oocyte is an egg cell extracted during a puncture. initial_state is
// frozen at creation for audit purposes; current_state moves through the
// lifecycle and every change appends an OocyteStateHistory row.
type Oocyte struct {
	ent.Schema
}

func (Oocyte) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		TimeStampedMixin{},
	}
}

func (Oocyte) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("puncture_id", uuid.UUID{}),

		field.String("oocyte_code").
			Unique().
			MaxLen(100).
			Comment("Business-facing oocyte identifier"),

		field.Enum("initial_state").
			Values("VERY_IMMATURE", "IMMATURE", "MATURE", "FERTILIZED", "DISCARDED", "CRYOPRESERVED").
			Immutable(),

		field.Enum("current_state").
			Values("VERY_IMMATURE", "IMMATURE", "MATURE", "FERTILIZED", "DISCARDED", "CRYOPRESERVED"),

		field.Int("maturation_time_hours").
			Optional().
			Nillable(),

		field.Text("discard_reason").
			Optional().
			Nillable(),

		// cryostorage location
		field.String("nitrogen_tube").
			Optional().
			Nillable().
			MaxLen(50),

		field.String("rack_number").
			Optional().
			Nillable().
			MaxLen(50),
	}
}

func (Oocyte) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("puncture", Puncture.Type).
			Ref("oocytes").
			Unique().
			Required().
			Field("puncture_id"),
		edge.To("state_history", OocyteStateHistory.Type),
		edge.To("embryo", Embryo.Type).
			Unique(),
	}
}

func (Oocyte) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("puncture_id"),
		index.Fields("current_state"),
	}
}
