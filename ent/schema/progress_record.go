package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ProgressRecord stores per-week completion state for the live plan.
// Exactly one row per week; rows are replaced wholesale on every persist
// (the progress array is the unit of write, not the delta).
type ProgressRecord struct {
	ent.Schema
}

func (ProgressRecord) Fields() []ent.Field {
	return []ent.Field{
		field.Int("week_number").
			Unique(),
		field.JSON("completed_tasks", []string{}).
			Optional().
			Comment("Completed task ids; task-<i> and subtopic-<i> schemes coexist"),
		field.Int("total_tasks").
			Default(0),
		field.Int("completion_percentage").
			Default(0).
			Comment("Derived from completed_tasks/total_tasks; recomputed on load"),
		field.Time("last_updated").
			Default(time.Now),
	}
}

func (ProgressRecord) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("week_number"),
	}
}
