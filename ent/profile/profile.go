// Code generated by ent, DO NOT EDIT.

package profile

import (
	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the profile type in the database.
	Label = "profile"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldTargetRole holds the string denoting the target_role field in the database.
	FieldTargetRole = "target_role"
	// FieldExperienceLevel holds the string denoting the experience_level field in the database.
	FieldExperienceLevel = "experience_level"
	// FieldInterests holds the string denoting the interests field in the database.
	FieldInterests = "interests"
	// FieldResumeText holds the string denoting the resume_text field in the database.
	FieldResumeText = "resume_text"
	// Table holds the table name of the profile in the database.
	Table = "profiles"
)

// Columns holds all SQL columns for profile fields.
var Columns = []string{
	FieldID,
	FieldTargetRole,
	FieldExperienceLevel,
	FieldInterests,
	FieldResumeText,
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
	// DefaultExperienceLevel holds the default value on creation for the "experience_level" field.
	DefaultExperienceLevel string
)

// OrderOption defines the ordering options for the Profile queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByTargetRole orders the results by the target_role field.
func ByTargetRole(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTargetRole, opts...).ToFunc()
}

// ByExperienceLevel orders the results by the experience_level field.
func ByExperienceLevel(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldExperienceLevel, opts...).ToFunc()
}

// ByResumeText orders the results by the resume_text field.
func ByResumeText(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldResumeText, opts...).ToFunc()
}
