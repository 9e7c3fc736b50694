// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/ritam/preptrail/ent/plan"
	"github.com/ritam/preptrail/ent/predicate"
)

// PlanUpdate is the builder for updating Plan entities.
type PlanUpdate struct {
	config
	hooks    []Hook
	mutation *PlanMutation
}

// Where appends a list predicates to the PlanUpdate builder.
func (_u *PlanUpdate) Where(ps ...predicate.Plan) *PlanUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetRoadmapType sets the "roadmap_type" field.
func (_u *PlanUpdate) SetRoadmapType(v string) *PlanUpdate {
	_u.mutation.SetRoadmapType(v)
	return _u
}

// SetNillableRoadmapType sets the "roadmap_type" field if the given value is not nil.
func (_u *PlanUpdate) SetNillableRoadmapType(v *string) *PlanUpdate {
	if v != nil {
		_u.SetRoadmapType(*v)
	}
	return _u
}

// SetPersonalizationFactors sets the "personalization_factors" field.
func (_u *PlanUpdate) SetPersonalizationFactors(v []string) *PlanUpdate {
	_u.mutation.SetPersonalizationFactors(v)
	return _u
}

// AppendPersonalizationFactors appends value to the "personalization_factors" field.
func (_u *PlanUpdate) AppendPersonalizationFactors(v []string) *PlanUpdate {
	_u.mutation.AppendPersonalizationFactors(v)
	return _u
}

// ClearPersonalizationFactors clears the value of the "personalization_factors" field.
func (_u *PlanUpdate) ClearPersonalizationFactors() *PlanUpdate {
	_u.mutation.ClearPersonalizationFactors()
	return _u
}

// SetWeeks sets the "weeks" field.
func (_u *PlanUpdate) SetWeeks(v []map[string]interface{}) *PlanUpdate {
	_u.mutation.SetWeeks(v)
	return _u
}

// AppendWeeks appends value to the "weeks" field.
func (_u *PlanUpdate) AppendWeeks(v []map[string]interface{}) *PlanUpdate {
	_u.mutation.AppendWeeks(v)
	return _u
}

// Mutation returns the PlanMutation object of the builder.
func (_u *PlanUpdate) Mutation() *PlanMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *PlanUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PlanUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *PlanUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PlanUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *PlanUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(plan.Table, plan.Columns, sqlgraph.NewFieldSpec(plan.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.RoadmapType(); ok {
		_spec.SetField(plan.FieldRoadmapType, field.TypeString, value)
	}
	if value, ok := _u.mutation.PersonalizationFactors(); ok {
		_spec.SetField(plan.FieldPersonalizationFactors, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedPersonalizationFactors(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, plan.FieldPersonalizationFactors, value)
		})
	}
	if _u.mutation.PersonalizationFactorsCleared() {
		_spec.ClearField(plan.FieldPersonalizationFactors, field.TypeJSON)
	}
	if value, ok := _u.mutation.Weeks(); ok {
		_spec.SetField(plan.FieldWeeks, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedWeeks(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, plan.FieldWeeks, value)
		})
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{plan.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// PlanUpdateOne is the builder for updating a single Plan entity.
type PlanUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *PlanMutation
}

// SetRoadmapType sets the "roadmap_type" field.
func (_u *PlanUpdateOne) SetRoadmapType(v string) *PlanUpdateOne {
	_u.mutation.SetRoadmapType(v)
	return _u
}

// SetNillableRoadmapType sets the "roadmap_type" field if the given value is not nil.
func (_u *PlanUpdateOne) SetNillableRoadmapType(v *string) *PlanUpdateOne {
	if v != nil {
		_u.SetRoadmapType(*v)
	}
	return _u
}

// SetPersonalizationFactors sets the "personalization_factors" field.
func (_u *PlanUpdateOne) SetPersonalizationFactors(v []string) *PlanUpdateOne {
	_u.mutation.SetPersonalizationFactors(v)
	return _u
}

// AppendPersonalizationFactors appends value to the "personalization_factors" field.
func (_u *PlanUpdateOne) AppendPersonalizationFactors(v []string) *PlanUpdateOne {
	_u.mutation.AppendPersonalizationFactors(v)
	return _u
}

// ClearPersonalizationFactors clears the value of the "personalization_factors" field.
func (_u *PlanUpdateOne) ClearPersonalizationFactors() *PlanUpdateOne {
	_u.mutation.ClearPersonalizationFactors()
	return _u
}

// SetWeeks sets the "weeks" field.
func (_u *PlanUpdateOne) SetWeeks(v []map[string]interface{}) *PlanUpdateOne {
	_u.mutation.SetWeeks(v)
	return _u
}

// AppendWeeks appends value to the "weeks" field.
func (_u *PlanUpdateOne) AppendWeeks(v []map[string]interface{}) *PlanUpdateOne {
	_u.mutation.AppendWeeks(v)
	return _u
}

// Mutation returns the PlanMutation object of the builder.
func (_u *PlanUpdateOne) Mutation() *PlanMutation {
	return _u.mutation
}

// Where appends a list predicates to the PlanUpdate builder.
func (_u *PlanUpdateOne) Where(ps ...predicate.Plan) *PlanUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *PlanUpdateOne) Select(field string, fields ...string) *PlanUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Plan entity.
func (_u *PlanUpdateOne) Save(ctx context.Context) (*Plan, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PlanUpdateOne) SaveX(ctx context.Context) *Plan {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *PlanUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PlanUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *PlanUpdateOne) sqlSave(ctx context.Context) (_node *Plan, err error) {
	_spec := sqlgraph.NewUpdateSpec(plan.Table, plan.Columns, sqlgraph.NewFieldSpec(plan.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Plan.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, plan.FieldID)
		for _, f := range fields {
			if !plan.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != plan.FieldID {
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
	if value, ok := _u.mutation.RoadmapType(); ok {
		_spec.SetField(plan.FieldRoadmapType, field.TypeString, value)
	}
	if value, ok := _u.mutation.PersonalizationFactors(); ok {
		_spec.SetField(plan.FieldPersonalizationFactors, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedPersonalizationFactors(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, plan.FieldPersonalizationFactors, value)
		})
	}
	if _u.mutation.PersonalizationFactorsCleared() {
		_spec.ClearField(plan.FieldPersonalizationFactors, field.TypeJSON)
	}
	if value, ok := _u.mutation.Weeks(); ok {
		_spec.SetField(plan.FieldWeeks, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedWeeks(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, plan.FieldWeeks, value)
		})
	}
	_node = &Plan{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{plan.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
