// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/ritam/preptrail/ent/predicate"
	"github.com/ritam/preptrail/ent/progressrecord"
)

// ProgressRecordUpdate is the builder for updating ProgressRecord entities.
type ProgressRecordUpdate struct {
	config
	hooks    []Hook
	mutation *ProgressRecordMutation
}

// Where appends a list predicates to the ProgressRecordUpdate builder.
func (_u *ProgressRecordUpdate) Where(ps ...predicate.ProgressRecord) *ProgressRecordUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetWeekNumber sets the "week_number" field.
func (_u *ProgressRecordUpdate) SetWeekNumber(v int) *ProgressRecordUpdate {
	_u.mutation.ResetWeekNumber()
	_u.mutation.SetWeekNumber(v)
	return _u
}

// SetNillableWeekNumber sets the "week_number" field if the given value is not nil.
func (_u *ProgressRecordUpdate) SetNillableWeekNumber(v *int) *ProgressRecordUpdate {
	if v != nil {
		_u.SetWeekNumber(*v)
	}
	return _u
}

// AddWeekNumber adds value to the "week_number" field.
func (_u *ProgressRecordUpdate) AddWeekNumber(v int) *ProgressRecordUpdate {
	_u.mutation.AddWeekNumber(v)
	return _u
}

// SetCompletedTasks sets the "completed_tasks" field.
func (_u *ProgressRecordUpdate) SetCompletedTasks(v []string) *ProgressRecordUpdate {
	_u.mutation.SetCompletedTasks(v)
	return _u
}

// AppendCompletedTasks appends value to the "completed_tasks" field.
func (_u *ProgressRecordUpdate) AppendCompletedTasks(v []string) *ProgressRecordUpdate {
	_u.mutation.AppendCompletedTasks(v)
	return _u
}

// ClearCompletedTasks clears the value of the "completed_tasks" field.
func (_u *ProgressRecordUpdate) ClearCompletedTasks() *ProgressRecordUpdate {
	_u.mutation.ClearCompletedTasks()
	return _u
}

// SetTotalTasks sets the "total_tasks" field.
func (_u *ProgressRecordUpdate) SetTotalTasks(v int) *ProgressRecordUpdate {
	_u.mutation.ResetTotalTasks()
	_u.mutation.SetTotalTasks(v)
	return _u
}

// SetNillableTotalTasks sets the "total_tasks" field if the given value is not nil.
func (_u *ProgressRecordUpdate) SetNillableTotalTasks(v *int) *ProgressRecordUpdate {
	if v != nil {
		_u.SetTotalTasks(*v)
	}
	return _u
}

// AddTotalTasks adds value to the "total_tasks" field.
func (_u *ProgressRecordUpdate) AddTotalTasks(v int) *ProgressRecordUpdate {
	_u.mutation.AddTotalTasks(v)
	return _u
}

// SetCompletionPercentage sets the "completion_percentage" field.
func (_u *ProgressRecordUpdate) SetCompletionPercentage(v int) *ProgressRecordUpdate {
	_u.mutation.ResetCompletionPercentage()
	_u.mutation.SetCompletionPercentage(v)
	return _u
}

// SetNillableCompletionPercentage sets the "completion_percentage" field if the given value is not nil.
func (_u *ProgressRecordUpdate) SetNillableCompletionPercentage(v *int) *ProgressRecordUpdate {
	if v != nil {
		_u.SetCompletionPercentage(*v)
	}
	return _u
}

// AddCompletionPercentage adds value to the "completion_percentage" field.
func (_u *ProgressRecordUpdate) AddCompletionPercentage(v int) *ProgressRecordUpdate {
	_u.mutation.AddCompletionPercentage(v)
	return _u
}

// SetLastUpdated sets the "last_updated" field.
func (_u *ProgressRecordUpdate) SetLastUpdated(v time.Time) *ProgressRecordUpdate {
	_u.mutation.SetLastUpdated(v)
	return _u
}

// SetNillableLastUpdated sets the "last_updated" field if the given value is not nil.
func (_u *ProgressRecordUpdate) SetNillableLastUpdated(v *time.Time) *ProgressRecordUpdate {
	if v != nil {
		_u.SetLastUpdated(*v)
	}
	return _u
}

// Mutation returns the ProgressRecordMutation object of the builder.
func (_u *ProgressRecordUpdate) Mutation() *ProgressRecordMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ProgressRecordUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ProgressRecordUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ProgressRecordUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ProgressRecordUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *ProgressRecordUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(progressrecord.Table, progressrecord.Columns, sqlgraph.NewFieldSpec(progressrecord.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.WeekNumber(); ok {
		_spec.SetField(progressrecord.FieldWeekNumber, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedWeekNumber(); ok {
		_spec.AddField(progressrecord.FieldWeekNumber, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CompletedTasks(); ok {
		_spec.SetField(progressrecord.FieldCompletedTasks, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedCompletedTasks(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, progressrecord.FieldCompletedTasks, value)
		})
	}
	if _u.mutation.CompletedTasksCleared() {
		_spec.ClearField(progressrecord.FieldCompletedTasks, field.TypeJSON)
	}
	if value, ok := _u.mutation.TotalTasks(); ok {
		_spec.SetField(progressrecord.FieldTotalTasks, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalTasks(); ok {
		_spec.AddField(progressrecord.FieldTotalTasks, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CompletionPercentage(); ok {
		_spec.SetField(progressrecord.FieldCompletionPercentage, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCompletionPercentage(); ok {
		_spec.AddField(progressrecord.FieldCompletionPercentage, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LastUpdated(); ok {
		_spec.SetField(progressrecord.FieldLastUpdated, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{progressrecord.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ProgressRecordUpdateOne is the builder for updating a single ProgressRecord entity.
type ProgressRecordUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ProgressRecordMutation
}

// SetWeekNumber sets the "week_number" field.
func (_u *ProgressRecordUpdateOne) SetWeekNumber(v int) *ProgressRecordUpdateOne {
	_u.mutation.ResetWeekNumber()
	_u.mutation.SetWeekNumber(v)
	return _u
}

// SetNillableWeekNumber sets the "week_number" field if the given value is not nil.
func (_u *ProgressRecordUpdateOne) SetNillableWeekNumber(v *int) *ProgressRecordUpdateOne {
	if v != nil {
		_u.SetWeekNumber(*v)
	}
	return _u
}

// AddWeekNumber adds value to the "week_number" field.
func (_u *ProgressRecordUpdateOne) AddWeekNumber(v int) *ProgressRecordUpdateOne {
	_u.mutation.AddWeekNumber(v)
	return _u
}

// SetCompletedTasks sets the "completed_tasks" field.
func (_u *ProgressRecordUpdateOne) SetCompletedTasks(v []string) *ProgressRecordUpdateOne {
	_u.mutation.SetCompletedTasks(v)
	return _u
}

// AppendCompletedTasks appends value to the "completed_tasks" field.
func (_u *ProgressRecordUpdateOne) AppendCompletedTasks(v []string) *ProgressRecordUpdateOne {
	_u.mutation.AppendCompletedTasks(v)
	return _u
}

// ClearCompletedTasks clears the value of the "completed_tasks" field.
func (_u *ProgressRecordUpdateOne) ClearCompletedTasks() *ProgressRecordUpdateOne {
	_u.mutation.ClearCompletedTasks()
	return _u
}

// SetTotalTasks sets the "total_tasks" field.
func (_u *ProgressRecordUpdateOne) SetTotalTasks(v int) *ProgressRecordUpdateOne {
	_u.mutation.ResetTotalTasks()
	_u.mutation.SetTotalTasks(v)
	return _u
}

// SetNillableTotalTasks sets the "total_tasks" field if the given value is not nil.
func (_u *ProgressRecordUpdateOne) SetNillableTotalTasks(v *int) *ProgressRecordUpdateOne {
	if v != nil {
		_u.SetTotalTasks(*v)
	}
	return _u
}

// AddTotalTasks adds value to the "total_tasks" field.
func (_u *ProgressRecordUpdateOne) AddTotalTasks(v int) *ProgressRecordUpdateOne {
	_u.mutation.AddTotalTasks(v)
	return _u
}

// SetCompletionPercentage sets the "completion_percentage" field.
func (_u *ProgressRecordUpdateOne) SetCompletionPercentage(v int) *ProgressRecordUpdateOne {
	_u.mutation.ResetCompletionPercentage()
	_u.mutation.SetCompletionPercentage(v)
	return _u
}

// SetNillableCompletionPercentage sets the "completion_percentage" field if the given value is not nil.
func (_u *ProgressRecordUpdateOne) SetNillableCompletionPercentage(v *int) *ProgressRecordUpdateOne {
	if v != nil {
		_u.SetCompletionPercentage(*v)
	}
	return _u
}

// AddCompletionPercentage adds value to the "completion_percentage" field.
func (_u *ProgressRecordUpdateOne) AddCompletionPercentage(v int) *ProgressRecordUpdateOne {
	_u.mutation.AddCompletionPercentage(v)
	return _u
}

// SetLastUpdated sets the "last_updated" field.
func (_u *ProgressRecordUpdateOne) SetLastUpdated(v time.Time) *ProgressRecordUpdateOne {
	_u.mutation.SetLastUpdated(v)
	return _u
}

// SetNillableLastUpdated sets the "last_updated" field if the given value is not nil.
func (_u *ProgressRecordUpdateOne) SetNillableLastUpdated(v *time.Time) *ProgressRecordUpdateOne {
	if v != nil {
		_u.SetLastUpdated(*v)
	}
	return _u
}

// Mutation returns the ProgressRecordMutation object of the builder.
func (_u *ProgressRecordUpdateOne) Mutation() *ProgressRecordMutation {
	return _u.mutation
}

// Where appends a list predicates to the ProgressRecordUpdate builder.
func (_u *ProgressRecordUpdateOne) Where(ps ...predicate.ProgressRecord) *ProgressRecordUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ProgressRecordUpdateOne) Select(field string, fields ...string) *ProgressRecordUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ProgressRecord entity.
func (_u *ProgressRecordUpdateOne) Save(ctx context.Context) (*ProgressRecord, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ProgressRecordUpdateOne) SaveX(ctx context.Context) *ProgressRecord {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ProgressRecordUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ProgressRecordUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *ProgressRecordUpdateOne) sqlSave(ctx context.Context) (_node *ProgressRecord, err error) {
	_spec := sqlgraph.NewUpdateSpec(progressrecord.Table, progressrecord.Columns, sqlgraph.NewFieldSpec(progressrecord.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ProgressRecord.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, progressrecord.FieldID)
		for _, f := range fields {
			if !progressrecord.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != progressrecord.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.WeekNumber(); ok {
		_spec.SetField(progressrecord.FieldWeekNumber, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedWeekNumber(); ok {
		_spec.AddField(progressrecord.FieldWeekNumber, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CompletedTasks(); ok {
		_spec.SetField(progressrecord.FieldCompletedTasks, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedCompletedTasks(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, progressrecord.FieldCompletedTasks, value)
		})
	}
	if _u.mutation.CompletedTasksCleared() {
		_spec.ClearField(progressrecord.FieldCompletedTasks, field.TypeJSON)
	}
	if value, ok := _u.mutation.TotalTasks(); ok {
		_spec.SetField(progressrecord.FieldTotalTasks, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalTasks(); ok {
		_spec.AddField(progressrecord.FieldTotalTasks, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CompletionPercentage(); ok {
		_spec.SetField(progressrecord.FieldCompletionPercentage, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCompletionPercentage(); ok {
		_spec.AddField(progressrecord.FieldCompletionPercentage, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LastUpdated(); ok {
		_spec.SetField(progressrecord.FieldLastUpdated, field.TypeTime, value)
	}
	_node = &ProgressRecord{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{progressrecord.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
