package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

// Embryo is the product of fertilizing a mature oocyte. Created only
// through the atomic fertilization operation in the laboratory service.
type Embryo struct {
	ent.Schema
}

func (Embryo) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		TimeStampedMixin{},
	}
}

func (Embryo) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("oocyte_id", uuid.UUID{}).
			Unique(),

		field.String("embryo_code").
			Unique().
			MaxLen(100).
			Comment("Business-facing embryo identifier"),

		field.Enum("fertilization_technique").
			Values("IVF", "ICSI"),

		field.Enum("sperm_source").
			Values("PARTNER", "DONOR"),

		field.Int("quality").
			Min(1).
			Max(5),

		field.Enum("current_state").
			Values("DEVELOPING", "TRANSFERRED", "CRYOPRESERVED", "DISCARDED").
			Default("DEVELOPING"),

		// preimplantation genetic testing
		field.Bool("pgt_performed").
			Default(false),

		field.Bool("pgt_result").
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

		field.Text("discard_reason").
			Optional().
			Nillable(),
	}
}

func (Embryo) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("oocyte", Oocyte.Type).
			Ref("embryo").
			Unique().
			Required().
			Field("oocyte_id"),
		edge.To("transfer", EmbryoTransfer.Type).
			Unique(),
	}
}

func (Embryo) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("oocyte_id").Unique(),
		index.Fields("current_state"),
	}
}
