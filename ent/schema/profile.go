package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
)

// Profile holds the student's onboarding answers. A single row; the
// pipeline refuses to generate until one exists.
type Profile struct {
	ent.Schema
}

func (Profile) Fields() []ent.Field {
	return []ent.Field{
		field.String("target_role"),
		field.String("experience_level").
			Default("beginner"),
		field.JSON("interests", []string{}).
			Optional(),
		field.Text("resume_text").
			Optional().
			Comment("Optional pasted resume, forwarded to the pipeline"),
	}
}
