// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/ritam/preptrail/ent/progressrecord"
)

// ProgressRecordCreate is the builder for creating a ProgressRecord entity.
type ProgressRecordCreate struct {
	config
	mutation *ProgressRecordMutation
	hooks    []Hook
}

// SetWeekNumber sets the "week_number" field.
func (_c *ProgressRecordCreate) SetWeekNumber(v int) *ProgressRecordCreate {
	_c.mutation.SetWeekNumber(v)
	return _c
}

// SetCompletedTasks sets the "completed_tasks" field.
func (_c *ProgressRecordCreate) SetCompletedTasks(v []string) *ProgressRecordCreate {
	_c.mutation.SetCompletedTasks(v)
	return _c
}

// SetTotalTasks sets the "total_tasks" field.
func (_c *ProgressRecordCreate) SetTotalTasks(v int) *ProgressRecordCreate {
	_c.mutation.SetTotalTasks(v)
	return _c
}

// SetNillableTotalTasks sets the "total_tasks" field if the given value is not nil.
func (_c *ProgressRecordCreate) SetNillableTotalTasks(v *int) *ProgressRecordCreate {
	if v != nil {
		_c.SetTotalTasks(*v)
	}
	return _c
}

// SetCompletionPercentage sets the "completion_percentage" field.
func (_c *ProgressRecordCreate) SetCompletionPercentage(v int) *ProgressRecordCreate {
	_c.mutation.SetCompletionPercentage(v)
	return _c
}

// SetNillableCompletionPercentage sets the "completion_percentage" field if the given value is not nil.
func (_c *ProgressRecordCreate) SetNillableCompletionPercentage(v *int) *ProgressRecordCreate {
	if v != nil {
		_c.SetCompletionPercentage(*v)
	}
	return _c
}

// SetLastUpdated sets the "last_updated" field.
func (_c *ProgressRecordCreate) SetLastUpdated(v time.Time) *ProgressRecordCreate {
	_c.mutation.SetLastUpdated(v)
	return _c
}

// SetNillableLastUpdated sets the "last_updated" field if the given value is not nil.
func (_c *ProgressRecordCreate) SetNillableLastUpdated(v *time.Time) *ProgressRecordCreate {
	if v != nil {
		_c.SetLastUpdated(*v)
	}
	return _c
}

// Mutation returns the ProgressRecordMutation object of the builder.
func (_c *ProgressRecordCreate) Mutation() *ProgressRecordMutation {
	return _c.mutation
}

// Save creates the ProgressRecord in the database.
func (_c *ProgressRecordCreate) Save(ctx context.Context) (*ProgressRecord, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ProgressRecordCreate) SaveX(ctx context.Context) *ProgressRecord {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ProgressRecordCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ProgressRecordCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ProgressRecordCreate) defaults() {
	if _, ok := _c.mutation.TotalTasks(); !ok {
		v := progressrecord.DefaultTotalTasks
		_c.mutation.SetTotalTasks(v)
	}
	if _, ok := _c.mutation.CompletionPercentage(); !ok {
		v := progressrecord.DefaultCompletionPercentage
		_c.mutation.SetCompletionPercentage(v)
	}
	if _, ok := _c.mutation.LastUpdated(); !ok {
		v := progressrecord.DefaultLastUpdated()
		_c.mutation.SetLastUpdated(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ProgressRecordCreate) check() error {
	if _, ok := _c.mutation.WeekNumber(); !ok {
		return &ValidationError{Name: "week_number", err: errors.New(`ent: missing required field "ProgressRecord.week_number"`)}
	}
	if _, ok := _c.mutation.TotalTasks(); !ok {
		return &ValidationError{Name: "total_tasks", err: errors.New(`ent: missing required field "ProgressRecord.total_tasks"`)}
	}
	if _, ok := _c.mutation.CompletionPercentage(); !ok {
		return &ValidationError{Name: "completion_percentage", err: errors.New(`ent: missing required field "ProgressRecord.completion_percentage"`)}
	}
	if _, ok := _c.mutation.LastUpdated(); !ok {
		return &ValidationError{Name: "last_updated", err: errors.New(`ent: missing required field "ProgressRecord.last_updated"`)}
	}
	return nil
}

func (_c *ProgressRecordCreate) sqlSave(ctx context.Context) (*ProgressRecord, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ProgressRecordCreate) createSpec() (*ProgressRecord, *sqlgraph.CreateSpec) {
	var (
		_node = &ProgressRecord{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(progressrecord.Table, sqlgraph.NewFieldSpec(progressrecord.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.WeekNumber(); ok {
		_spec.SetField(progressrecord.FieldWeekNumber, field.TypeInt, value)
		_node.WeekNumber = value
	}
	if value, ok := _c.mutation.CompletedTasks(); ok {
		_spec.SetField(progressrecord.FieldCompletedTasks, field.TypeJSON, value)
		_node.CompletedTasks = value
	}
	if value, ok := _c.mutation.TotalTasks(); ok {
		_spec.SetField(progressrecord.FieldTotalTasks, field.TypeInt, value)
		_node.TotalTasks = value
	}
	if value, ok := _c.mutation.CompletionPercentage(); ok {
		_spec.SetField(progressrecord.FieldCompletionPercentage, field.TypeInt, value)
		_node.CompletionPercentage = value
	}
	if value, ok := _c.mutation.LastUpdated(); ok {
		_spec.SetField(progressrecord.FieldLastUpdated, field.TypeTime, value)
		_node.LastUpdated = value
	}
	return _node, _spec
}

// ProgressRecordCreateBulk is the builder for creating many ProgressRecord entities in bulk.
type ProgressRecordCreateBulk struct {
	config
	err      error
	builders []*ProgressRecordCreate
}

// Save creates the ProgressRecord entities in the database.
func (_c *ProgressRecordCreateBulk) Save(ctx context.Context) ([]*ProgressRecord, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ProgressRecord, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ProgressRecordMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *ProgressRecordCreateBulk) SaveX(ctx context.Context) []*ProgressRecord {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ProgressRecordCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ProgressRecordCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
