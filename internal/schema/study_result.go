package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

// StudyResult is an uploaded lab/imaging study attached to a treatment.
// Append-only.
type StudyResult struct {
	ent.Schema
}

func (StudyResult) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		CreatedAtMixin{},
	}
}

func (StudyResult) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("treatment_id", uuid.UUID{}),

		field.String("study_type").
			MaxLen(100),

		field.String("study_name").
			MaxLen(255),

		field.String("result_file_key").
			Optional().
			Nillable().
			MaxLen(512).
			Comment("Object storage key of the uploaded result file"),

		field.Text("result_text").
			Optional().
			Nillable(),
	}
}

func (StudyResult) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("treatment", Treatment.Type).
			Ref("study_results").
			Unique().
			Required().
			Field("treatment_id"),
	}
}

func (StudyResult) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("treatment_id"),
	}
}
