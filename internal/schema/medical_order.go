package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

// MedicalOrder is a doctor-issued order (studies, medication, procedures)
// attached to a treatment. Append-only.
type MedicalOrder struct {
	ent.Schema
}

func (MedicalOrder) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		CreatedAtMixin{},
	}
}

func (MedicalOrder) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("treatment_id", uuid.UUID{}),

		field.String("order_type").
			MaxLen(100),

		field.Text("description"),
	}
}

func (MedicalOrder) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("treatment", Treatment.Type).
			Ref("medical_orders").
			Unique().
			Required().
			Field("treatment_id"),
	}
}

func (MedicalOrder) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("treatment_id"),
	}
}
