package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

// EmbryoTransfer is the scheduled transfer procedure and its outcome.
// Outcome fields stay null until each milestone is recorded.
type EmbryoTransfer struct {
	ent.Schema
}

func (EmbryoTransfer) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		TimeStampedMixin{},
	}
}

func (EmbryoTransfer) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("embryo_id", uuid.UUID{}).
			Unique(),

		field.Time("scheduled_date"),

		field.Time("performed_date").
			Optional().
			Nillable(),

		field.Bool("beta_positive").
			Optional().
			Nillable(),

		field.Bool("gestational_sac").
			Optional().
			Nillable(),

		field.Bool("clinical_pregnancy").
			Optional().
			Nillable(),

		field.Bool("live_birth").
			Optional().
			Nillable(),

		field.Text("notes").
			Optional().
			Nillable(),
	}
}

func (EmbryoTransfer) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("embryo", Embryo.Type).
			Ref("transfer").
			Unique().
			Required().
			Field("embryo_id"),
	}
}

func (EmbryoTransfer) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("embryo_id").Unique(),
	}
}
