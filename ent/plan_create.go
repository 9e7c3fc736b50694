// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/ritam/preptrail/ent/plan"
)

// PlanCreate is the builder for creating a Plan entity.
type PlanCreate struct {
	config
	mutation *PlanMutation
	hooks    []Hook
}

// SetPlanID sets the "plan_id" field.
func (_c *PlanCreate) SetPlanID(v string) *PlanCreate {
	_c.mutation.SetPlanID(v)
	return _c
}

// SetRoadmapType sets the "roadmap_type" field.
func (_c *PlanCreate) SetRoadmapType(v string) *PlanCreate {
	_c.mutation.SetRoadmapType(v)
	return _c
}

// SetNillableRoadmapType sets the "roadmap_type" field if the given value is not nil.
func (_c *PlanCreate) SetNillableRoadmapType(v *string) *PlanCreate {
	if v != nil {
		_c.SetRoadmapType(*v)
	}
	return _c
}

// SetPersonalizationFactors sets the "personalization_factors" field.
func (_c *PlanCreate) SetPersonalizationFactors(v []string) *PlanCreate {
	_c.mutation.SetPersonalizationFactors(v)
	return _c
}

// SetGeneratedAt sets the "generated_at" field.
func (_c *PlanCreate) SetGeneratedAt(v time.Time) *PlanCreate {
	_c.mutation.SetGeneratedAt(v)
	return _c
}

// SetNillableGeneratedAt sets the "generated_at" field if the given value is not nil.
func (_c *PlanCreate) SetNillableGeneratedAt(v *time.Time) *PlanCreate {
	if v != nil {
		_c.SetGeneratedAt(*v)
	}
	return _c
}

// SetWeeks sets the "weeks" field.
func (_c *PlanCreate) SetWeeks(v []map[string]interface{}) *PlanCreate {
	_c.mutation.SetWeeks(v)
	return _c
}

// Mutation returns the PlanMutation object of the builder.
func (_c *PlanCreate) Mutation() *PlanMutation {
	return _c.mutation
}

// Save creates the Plan in the database.
func (_c *PlanCreate) Save(ctx context.Context) (*Plan, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *PlanCreate) SaveX(ctx context.Context) *Plan {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PlanCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PlanCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *PlanCreate) defaults() {
	if _, ok := _c.mutation.RoadmapType(); !ok {
		v := plan.DefaultRoadmapType
		_c.mutation.SetRoadmapType(v)
	}
	if _, ok := _c.mutation.GeneratedAt(); !ok {
		v := plan.DefaultGeneratedAt()
		_c.mutation.SetGeneratedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *PlanCreate) check() error {
	if _, ok := _c.mutation.PlanID(); !ok {
		return &ValidationError{Name: "plan_id", err: errors.New(`ent: missing required field "Plan.plan_id"`)}
	}
	if _, ok := _c.mutation.RoadmapType(); !ok {
		return &ValidationError{Name: "roadmap_type", err: errors.New(`ent: missing required field "Plan.roadmap_type"`)}
	}
	if _, ok := _c.mutation.GeneratedAt(); !ok {
		return &ValidationError{Name: "generated_at", err: errors.New(`ent: missing required field "Plan.generated_at"`)}
	}
	if _, ok := _c.mutation.Weeks(); !ok {
		return &ValidationError{Name: "weeks", err: errors.New(`ent: missing required field "Plan.weeks"`)}
	}
	return nil
}

func (_c *PlanCreate) sqlSave(ctx context.Context) (*Plan, error) {
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

func (_c *PlanCreate) createSpec() (*Plan, *sqlgraph.CreateSpec) {
	var (
		_node = &Plan{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(plan.Table, sqlgraph.NewFieldSpec(plan.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.PlanID(); ok {
		_spec.SetField(plan.FieldPlanID, field.TypeString, value)
		_node.PlanID = value
	}
	if value, ok := _c.mutation.RoadmapType(); ok {
		_spec.SetField(plan.FieldRoadmapType, field.TypeString, value)
		_node.RoadmapType = value
	}
	if value, ok := _c.mutation.PersonalizationFactors(); ok {
		_spec.SetField(plan.FieldPersonalizationFactors, field.TypeJSON, value)
		_node.PersonalizationFactors = value
	}
	if value, ok := _c.mutation.GeneratedAt(); ok {
		_spec.SetField(plan.FieldGeneratedAt, field.TypeTime, value)
		_node.GeneratedAt = value
	}
	if value, ok := _c.mutation.Weeks(); ok {
		_spec.SetField(plan.FieldWeeks, field.TypeJSON, value)
		_node.Weeks = value
	}
	return _node, _spec
}

// PlanCreateBulk is the builder for creating many Plan entities in bulk.
type PlanCreateBulk struct {
	config
	err      error
	builders []*PlanCreate
}

// Save creates the Plan entities in the database.
func (_c *PlanCreateBulk) Save(ctx context.Context) ([]*Plan, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Plan, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*PlanMutation)
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
func (_c *PlanCreateBulk) SaveX(ctx context.Context) []*Plan {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PlanCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PlanCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
