package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

// MonitoringDay is a scheduled follicular monitoring visit in a treatment.
type MonitoringDay struct {
	ent.Schema
}

func (MonitoringDay) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		TimeStampedMixin{},
	}
}

func (MonitoringDay) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("treatment_id", uuid.UUID{}),

		field.Time("date"),

		field.Text("notes").
			Optional().
			Nillable(),

		field.Bool("completed").
			Default(false),
	}
}

func (MonitoringDay) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("treatment", Treatment.Type).
			Ref("monitoring_days").
			Unique().
			Required().
			Field("treatment_id"),
	}
}

func (MonitoringDay) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("treatment_id", "date"),
	}
}
