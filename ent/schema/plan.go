package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Plan stores one generated roadmap. A regeneration deletes the prior row
// and its progress records; only one plan is live at a time.
type Plan struct {
	ent.Schema
}

func (Plan) Fields() []ent.Field {
	return []ent.Field{
		field.String("plan_id").
			Unique().
			Immutable().
			Comment("UUID assigned at generation"),
		field.String("roadmap_type").
			Default("internship-prep"),
		field.JSON("personalization_factors", []string{}).
			Optional(),
		field.Time("generated_at").
			Default(time.Now).
			Immutable(),
		field.JSON("weeks", []map[string]any{}).
			Comment("Ordered week entities as JSON"),
	}
}

func (Plan) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("generated_at"),
	}
}
