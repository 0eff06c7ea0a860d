package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

// OocyteStateHistory is the append-only audit trail of oocyte state
// changes. from_state is empty on the creation row.
type OocyteStateHistory struct {
	ent.Schema
}

func (OocyteStateHistory) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		CreatedAtMixin{},
	}
}

func (OocyteStateHistory) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("oocyte_id", uuid.UUID{}),

		field.String("from_state").
			Optional().
			MaxLen(20),

		field.String("to_state").
			MaxLen(20),

		field.Text("notes").
			Optional().
			Nillable(),

		field.UUID("changed_by_id", uuid.UUID{}).
			Optional().
			Nillable(),
	}
}

func (OocyteStateHistory) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("oocyte", Oocyte.Type).
			Ref("state_history").
			Unique().
			Required().
			Field("oocyte_id"),
		edge.To("changed_by", User.Type).
			Unique().
			Field("changed_by_id"),
	}
}

func (OocyteStateHistory) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("oocyte_id", "created_at"),
	}
}
