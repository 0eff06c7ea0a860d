package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// User is the identity record for everyone who can sign in: clinic staff
// and patients alike. The role is fixed at creation and drives every
// authorization decision downstream.
type User struct {
	ent.Schema
}

func (User) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		TimeStampedMixin{},
		SoftDeleteMixin{},
	}
}

func (User) Fields() []ent.Field {
	return []ent.Field{
		field.String("username").
			Unique().
			MaxLen(150),

		field.String("email").
			Optional().
			Nillable().
			Unique().
			MaxLen(255),

		field.String("password_hash").
			Optional().
			Nillable().
			Sensitive(),

		field.Enum("role").
			Values("ADMIN", "MEDICAL_DIRECTOR", "DOCTOR", "LAB_OPERATOR", "PATIENT").
			Default("PATIENT").
			Immutable(),

		field.String("first_name").
			Optional().
			Nillable().
			MaxLen(100),

		field.String("last_name").
			Optional().
			Nillable().
			MaxLen(100),

		field.String("phone").
			Optional().
			Nillable().
			MaxLen(20),

		field.String("dni").
			Optional().
			Nillable().
			Unique().
			MaxLen(20).
			Comment("National identity document number"),

		field.Enum("biological_sex").
			Values("M", "F").
			Optional().
			Nillable(),

		field.Time("date_of_birth").
			Optional().
			Nillable(),

		field.Bool("is_active").
			Default(true),

		// audit
		field.Time("last_login_at").
			Optional().
			Nillable(),

		field.Int("failed_login_attempts").
			Default(0).
			NonNegative(),
	}
}

func (User) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("patient_profile", Patient.Type).
			Unique(),
		edge.From("treatments_as_doctor", Treatment.Type).
			Ref("doctor"),
		edge.From("punctures_performed", Puncture.Type).
			Ref("operator"),
	}
}

func (User) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("role"),
	}
}
