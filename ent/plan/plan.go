// Code generated by ent, DO NOT EDIT.

package plan

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the plan type in the database.
	Label = "plan"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldPlanID holds the string denoting the plan_id field in the database.
	FieldPlanID = "plan_id"
	// FieldRoadmapType holds the string denoting the roadmap_type field in the database.
	FieldRoadmapType = "roadmap_type"
	// FieldPersonalizationFactors holds the string denoting the personalization_factors field in the database.
	FieldPersonalizationFactors = "personalization_factors"
	// FieldGeneratedAt holds the string denoting the generated_at field in the database.
	FieldGeneratedAt = "generated_at"
	// FieldWeeks holds the string denoting the weeks field in the database.
	FieldWeeks = "weeks"
	// Table holds the table name of the plan in the database.
	Table = "plans"
)

// Columns holds all SQL columns for plan fields.
var Columns = []string{
	FieldID,
	FieldPlanID,
	FieldRoadmapType,
	FieldPersonalizationFactors,
	FieldGeneratedAt,
	FieldWeeks,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultRoadmapType holds the default value on creation for the "roadmap_type" field.
	DefaultRoadmapType string
	// DefaultGeneratedAt holds the default value on creation for the "generated_at" field.
	DefaultGeneratedAt func() time.Time
)

// OrderOption defines the ordering options for the Plan queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByPlanID orders the results by the plan_id field.
func ByPlanID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPlanID, opts...).ToFunc()
}

// ByRoadmapType orders the results by the roadmap_type field.
func ByRoadmapType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRoadmapType, opts...).ToFunc()
}

// ByGeneratedAt orders the results by the generated_at field.
func ByGeneratedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldGeneratedAt, opts...).ToFunc()
}
