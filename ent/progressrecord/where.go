// Code generated by ent, DO NOT EDIT.

package progressrecord

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/ritam/preptrail/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.ProgressRecord {
	return predicate.ProgressRecord(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.ProgressRecord {
	return predicate.ProgressRecord(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.ProgressRecord {
	return predicate.ProgressRecord(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.ProgressRecord {
	return predicate.ProgressRecord(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.ProgressRecord {
	return predicate.ProgressRecord(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.ProgressRecord {
	return predicate.ProgressRecord(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.ProgressRecord {
	return predicate.ProgressRecord(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.ProgressRecord {
	return predicate.ProgressRecord(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.ProgressRecord {
	return predicate.ProgressRecord(sql.FieldLTE(FieldID, id))
}

// WeekNumber applies equality check predicate on the "week_number" field. It's identical to WeekNumberEQ.
func WeekNumber(v int) predicate.ProgressRecord {
	return predicate.ProgressRecord(sql.FieldEQ(FieldWeekNumber, v))
}

// TotalTasks applies equality check predicate on the "total_tasks" field. It's identical to TotalTasksEQ.
func TotalTasks(v int) predicate.ProgressRecord {
	return predicate.ProgressRecord(sql.FieldEQ(FieldTotalTasks, v))
}

// CompletionPercentage applies equality check predicate on the "completion_percentage" field. It's identical to CompletionPercentageEQ.
func CompletionPercentage(v int) predicate.ProgressRecord {
	return predicate.ProgressRecord(sql.FieldEQ(FieldCompletionPercentage, v))
}

// LastUpdated applies equality check predicate on the "last_updated" field. It's identical to LastUpdatedEQ.
func LastUpdated(v time.Time) predicate.ProgressRecord {
	return predicate.ProgressRecord(sql.FieldEQ(FieldLastUpdated, v))
}

// WeekNumberEQ applies the EQ predicate on the "week_number" field.
func WeekNumberEQ(v int) predicate.ProgressRecord {
	return predicate.ProgressRecord(sql.FieldEQ(FieldWeekNumber, v))
}

// WeekNumberNEQ applies the NEQ predicate on the "week_number" field.
func WeekNumberNEQ(v int) predicate.ProgressRecord {
	return predicate.ProgressRecord(sql.FieldNEQ(FieldWeekNumber, v))
}

// WeekNumberIn applies the In predicate on the "week_number" field.
func WeekNumberIn(vs ...int) predicate.ProgressRecord {
	return predicate.ProgressRecord(sql.FieldIn(FieldWeekNumber, vs...))
}

// WeekNumberNotIn applies the NotIn predicate on the "week_number" field.
func WeekNumberNotIn(vs ...int) predicate.ProgressRecord {
	return predicate.ProgressRecord(sql.FieldNotIn(FieldWeekNumber, vs...))
}

// WeekNumberGT applies the GT predicate on the "week_number" field.
func WeekNumberGT(v int) predicate.ProgressRecord {
	return predicate.ProgressRecord(sql.FieldGT(FieldWeekNumber, v))
}

// WeekNumberGTE applies the GTE predicate on the "week_number" field.
func WeekNumberGTE(v int) predicate.ProgressRecord {
	return predicate.ProgressRecord(sql.FieldGTE(FieldWeekNumber, v))
}

// WeekNumberLT applies the LT predicate on the "week_number" field.
func WeekNumberLT(v int) predicate.ProgressRecord {
	return predicate.ProgressRecord(sql.FieldLT(FieldWeekNumber, v))
}

// WeekNumberLTE applies the LTE predicate on the "week_number" field.
func WeekNumberLTE(v int) predicate.ProgressRecord {
	return predicate.ProgressRecord(sql.FieldLTE(FieldWeekNumber, v))
}

// CompletedTasksIsNil applies the IsNil predicate on the "completed_tasks" field.
func CompletedTasksIsNil() predicate.ProgressRecord {
	return predicate.ProgressRecord(sql.FieldIsNull(FieldCompletedTasks))
}

// CompletedTasksNotNil applies the NotNil predicate on the "completed_tasks" field.
func CompletedTasksNotNil() predicate.ProgressRecord {
	return predicate.ProgressRecord(sql.FieldNotNull(FieldCompletedTasks))
}

// TotalTasksEQ applies the EQ predicate on the "total_tasks" field.
func TotalTasksEQ(v int) predicate.ProgressRecord {
	return predicate.ProgressRecord(sql.FieldEQ(FieldTotalTasks, v))
}

// TotalTasksNEQ applies the NEQ predicate on the "total_tasks" field.
func TotalTasksNEQ(v int) predicate.ProgressRecord {
	return predicate.ProgressRecord(sql.FieldNEQ(FieldTotalTasks, v))
}

// TotalTasksIn applies the In predicate on the "total_tasks" field.
func TotalTasksIn(vs ...int) predicate.ProgressRecord {
	return predicate.ProgressRecord(sql.FieldIn(FieldTotalTasks, vs...))
}

// TotalTasksNotIn applies the NotIn predicate on the "total_tasks" field.
func TotalTasksNotIn(vs ...int) predicate.ProgressRecord {
	return predicate.ProgressRecord(sql.FieldNotIn(FieldTotalTasks, vs...))
}

// TotalTasksGT applies the GT predicate on the "total_tasks" field.
func TotalTasksGT(v int) predicate.ProgressRecord {
	return predicate.ProgressRecord(sql.FieldGT(FieldTotalTasks, v))
}

// TotalTasksGTE applies the GTE predicate on the "total_tasks" field.
func TotalTasksGTE(v int) predicate.ProgressRecord {
	return predicate.ProgressRecord(sql.FieldGTE(FieldTotalTasks, v))
}

// TotalTasksLT applies the LT predicate on the "total_tasks" field.
func TotalTasksLT(v int) predicate.ProgressRecord {
	return predicate.ProgressRecord(sql.FieldLT(FieldTotalTasks, v))
}

// TotalTasksLTE applies the LTE predicate on the "total_tasks" field.
func TotalTasksLTE(v int) predicate.ProgressRecord {
	return predicate.ProgressRecord(sql.FieldLTE(FieldTotalTasks, v))
}

// CompletionPercentageEQ applies the EQ predicate on the "completion_percentage" field.
func CompletionPercentageEQ(v int) predicate.ProgressRecord {
	return predicate.ProgressRecord(sql.FieldEQ(FieldCompletionPercentage, v))
}

// CompletionPercentageNEQ applies the NEQ predicate on the "completion_percentage" field.
func CompletionPercentageNEQ(v int) predicate.ProgressRecord {
	return predicate.ProgressRecord(sql.FieldNEQ(FieldCompletionPercentage, v))
}

// CompletionPercentageIn applies the In predicate on the "completion_percentage" field.
func CompletionPercentageIn(vs ...int) predicate.ProgressRecord {
	return predicate.ProgressRecord(sql.FieldIn(FieldCompletionPercentage, vs...))
}

// CompletionPercentageNotIn applies the NotIn predicate on the "completion_percentage" field.
func CompletionPercentageNotIn(vs ...int) predicate.ProgressRecord {
	return predicate.ProgressRecord(sql.FieldNotIn(FieldCompletionPercentage, vs...))
}

// CompletionPercentageGT applies the GT predicate on the "completion_percentage" field.
func CompletionPercentageGT(v int) predicate.ProgressRecord {
	return predicate.ProgressRecord(sql.FieldGT(FieldCompletionPercentage, v))
}

// CompletionPercentageGTE applies the GTE predicate on the "completion_percentage" field.
func CompletionPercentageGTE(v int) predicate.ProgressRecord {
	return predicate.ProgressRecord(sql.FieldGTE(FieldCompletionPercentage, v))
}

// CompletionPercentageLT applies the LT predicate on the "completion_percentage" field.
func CompletionPercentageLT(v int) predicate.ProgressRecord {
	return predicate.ProgressRecord(sql.FieldLT(FieldCompletionPercentage, v))
}

// CompletionPercentageLTE applies the LTE predicate on the "completion_percentage" field.
func CompletionPercentageLTE(v int) predicate.ProgressRecord {
	return predicate.ProgressRecord(sql.FieldLTE(FieldCompletionPercentage, v))
}

// LastUpdatedEQ applies the EQ predicate on the "last_updated" field.
func LastUpdatedEQ(v time.Time) predicate.ProgressRecord {
	return predicate.ProgressRecord(sql.FieldEQ(FieldLastUpdated, v))
}

// LastUpdatedNEQ applies the NEQ predicate on the "last_updated" field.
func LastUpdatedNEQ(v time.Time) predicate.ProgressRecord {
	return predicate.ProgressRecord(sql.FieldNEQ(FieldLastUpdated, v))
}

// LastUpdatedIn applies the In predicate on the "last_updated" field.
func LastUpdatedIn(vs ...time.Time) predicate.ProgressRecord {
	return predicate.ProgressRecord(sql.FieldIn(FieldLastUpdated, vs...))
}

// LastUpdatedNotIn applies the NotIn predicate on the "last_updated" field.
func LastUpdatedNotIn(vs ...time.Time) predicate.ProgressRecord {
	return predicate.ProgressRecord(sql.FieldNotIn(FieldLastUpdated, vs...))
}

// LastUpdatedGT applies the GT predicate on the "last_updated" field.
func LastUpdatedGT(v time.Time) predicate.ProgressRecord {
	return predicate.ProgressRecord(sql.FieldGT(FieldLastUpdated, v))
}

// LastUpdatedGTE applies the GTE predicate on the "last_updated" field.
func LastUpdatedGTE(v time.Time) predicate.ProgressRecord {
	return predicate.ProgressRecord(sql.FieldGTE(FieldLastUpdated, v))
}

// LastUpdatedLT applies the LT predicate on the "last_updated" field.
func LastUpdatedLT(v time.Time) predicate.ProgressRecord {
	return predicate.ProgressRecord(sql.FieldLT(FieldLastUpdated, v))
}

// LastUpdatedLTE applies the LTE predicate on the "last_updated" field.
func LastUpdatedLTE(v time.Time) predicate.ProgressRecord {
	return predicate.ProgressRecord(sql.FieldLTE(FieldLastUpdated, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ProgressRecord) predicate.ProgressRecord {
	return predicate.ProgressRecord(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ProgressRecord) predicate.ProgressRecord {
	return predicate.ProgressRecord(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ProgressRecord) predicate.ProgressRecord {
	return predicate.ProgressRecord(sql.NotPredicates(p))
}
