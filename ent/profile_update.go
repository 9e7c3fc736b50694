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
	"github.com/ritam/preptrail/ent/predicate"
	"github.com/ritam/preptrail/ent/profile"
)

// ProfileUpdate is the builder for updating Profile entities.
type ProfileUpdate struct {
	config
	hooks    []Hook
	mutation *ProfileMutation
}

// Where appends a list predicates to the ProfileUpdate builder.
func (_u *ProfileUpdate) Where(ps ...predicate.Profile) *ProfileUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetTargetRole sets the "target_role" field.
func (_u *ProfileUpdate) SetTargetRole(v string) *ProfileUpdate {
	_u.mutation.SetTargetRole(v)
	return _u
}

// SetNillableTargetRole sets the "target_role" field if the given value is not nil.
func (_u *ProfileUpdate) SetNillableTargetRole(v *string) *ProfileUpdate {
	if v != nil {
		_u.SetTargetRole(*v)
	}
	return _u
}

// SetExperienceLevel sets the "experience_level" field.
func (_u *ProfileUpdate) SetExperienceLevel(v string) *ProfileUpdate {
	_u.mutation.SetExperienceLevel(v)
	return _u
}

// SetNillableExperienceLevel sets the "experience_level" field if the given value is not nil.
func (_u *ProfileUpdate) SetNillableExperienceLevel(v *string) *ProfileUpdate {
	if v != nil {
		_u.SetExperienceLevel(*v)
	}
	return _u
}

// SetInterests sets the "interests" field.
func (_u *ProfileUpdate) SetInterests(v []string) *ProfileUpdate {
	_u.mutation.SetInterests(v)
	return _u
}

// AppendInterests appends value to the "interests" field.
func (_u *ProfileUpdate) AppendInterests(v []string) *ProfileUpdate {
	_u.mutation.AppendInterests(v)
	return _u
}

// ClearInterests clears the value of the "interests" field.
func (_u *ProfileUpdate) ClearInterests() *ProfileUpdate {
	_u.mutation.ClearInterests()
	return _u
}

// SetResumeText sets the "resume_text" field.
func (_u *ProfileUpdate) SetResumeText(v string) *ProfileUpdate {
	_u.mutation.SetResumeText(v)
	return _u
}

// SetNillableResumeText sets the "resume_text" field if the given value is not nil.
func (_u *ProfileUpdate) SetNillableResumeText(v *string) *ProfileUpdate {
	if v != nil {
		_u.SetResumeText(*v)
	}
	return _u
}

// ClearResumeText clears the value of the "resume_text" field.
func (_u *ProfileUpdate) ClearResumeText() *ProfileUpdate {
	_u.mutation.ClearResumeText()
	return _u
}

// Mutation returns the ProfileMutation object of the builder.
func (_u *ProfileUpdate) Mutation() *ProfileMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ProfileUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ProfileUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ProfileUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ProfileUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *ProfileUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(profile.Table, profile.Columns, sqlgraph.NewFieldSpec(profile.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.TargetRole(); ok {
		_spec.SetField(profile.FieldTargetRole, field.TypeString, value)
	}
	if value, ok := _u.mutation.ExperienceLevel(); ok {
		_spec.SetField(profile.FieldExperienceLevel, field.TypeString, value)
	}
	if value, ok := _u.mutation.Interests(); ok {
		_spec.SetField(profile.FieldInterests, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedInterests(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, profile.FieldInterests, value)
		})
	}
	if _u.mutation.InterestsCleared() {
		_spec.ClearField(profile.FieldInterests, field.TypeJSON)
	}
	if value, ok := _u.mutation.ResumeText(); ok {
		_spec.SetField(profile.FieldResumeText, field.TypeString, value)
	}
	if _u.mutation.ResumeTextCleared() {
		_spec.ClearField(profile.FieldResumeText, field.TypeString)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{profile.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ProfileUpdateOne is the builder for updating a single Profile entity.
type ProfileUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ProfileMutation
}

// SetTargetRole sets the "target_role" field.
func (_u *ProfileUpdateOne) SetTargetRole(v string) *ProfileUpdateOne {
	_u.mutation.SetTargetRole(v)
	return _u
}

// SetNillableTargetRole sets the "target_role" field if the given value is not nil.
func (_u *ProfileUpdateOne) SetNillableTargetRole(v *string) *ProfileUpdateOne {
	if v != nil {
		_u.SetTargetRole(*v)
	}
	return _u
}

// SetExperienceLevel sets the "experience_level" field.
func (_u *ProfileUpdateOne) SetExperienceLevel(v string) *ProfileUpdateOne {
	_u.mutation.SetExperienceLevel(v)
	return _u
}

// SetNillableExperienceLevel sets the "experience_level" field if the given value is not nil.
func (_u *ProfileUpdateOne) SetNillableExperienceLevel(v *string) *ProfileUpdateOne {
	if v != nil {
		_u.SetExperienceLevel(*v)
	}
	return _u
}

// SetInterests sets the "interests" field.
func (_u *ProfileUpdateOne) SetInterests(v []string) *ProfileUpdateOne {
	_u.mutation.SetInterests(v)
	return _u
}

// AppendInterests appends value to the "interests" field.
func (_u *ProfileUpdateOne) AppendInterests(v []string) *ProfileUpdateOne {
	_u.mutation.AppendInterests(v)
	return _u
}

// ClearInterests clears the value of the "interests" field.
func (_u *ProfileUpdateOne) ClearInterests() *ProfileUpdateOne {
	_u.mutation.ClearInterests()
	return _u
}

// SetResumeText sets the "resume_text" field.
func (_u *ProfileUpdateOne) SetResumeText(v string) *ProfileUpdateOne {
	_u.mutation.SetResumeText(v)
	return _u
}

// SetNillableResumeText sets the "resume_text" field if the given value is not nil.
func (_u *ProfileUpdateOne) SetNillableResumeText(v *string) *ProfileUpdateOne {
	if v != nil {
		_u.SetResumeText(*v)
	}
	return _u
}

// ClearResumeText clears the value of the "resume_text" field.
func (_u *ProfileUpdateOne) ClearResumeText() *ProfileUpdateOne {
	_u.mutation.ClearResumeText()
	return _u
}

// Mutation returns the ProfileMutation object of the builder.
func (_u *ProfileUpdateOne) Mutation() *ProfileMutation {
	return _u.mutation
}

// Where appends a list predicates to the ProfileUpdate builder.
func (_u *ProfileUpdateOne) Where(ps ...predicate.Profile) *ProfileUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ProfileUpdateOne) Select(field string, fields ...string) *ProfileUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Profile entity.
func (_u *ProfileUpdateOne) Save(ctx context.Context) (*Profile, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ProfileUpdateOne) SaveX(ctx context.Context) *Profile {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ProfileUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ProfileUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *ProfileUpdateOne) sqlSave(ctx context.Context) (_node *Profile, err error) {
	_spec := sqlgraph.NewUpdateSpec(profile.Table, profile.Columns, sqlgraph.NewFieldSpec(profile.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Profile.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, profile.FieldID)
		for _, f := range fields {
			if !profile.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != profile.FieldID {
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
	if value, ok := _u.mutation.TargetRole(); ok {
		_spec.SetField(profile.FieldTargetRole, field.TypeString, value)
	}
	if value, ok := _u.mutation.ExperienceLevel(); ok {
		_spec.SetField(profile.FieldExperienceLevel, field.TypeString, value)
	}
	if value, ok := _u.mutation.Interests(); ok {
		_spec.SetField(profile.FieldInterests, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedInterests(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, profile.FieldInterests, value)
		})
	}
	if _u.mutation.InterestsCleared() {
		_spec.ClearField(profile.FieldInterests, field.TypeJSON)
	}
	if value, ok := _u.mutation.ResumeText(); ok {
		_spec.SetField(profile.FieldResumeText, field.TypeString, value)
	}
	if _u.mutation.ResumeTextCleared() {
		_spec.ClearField(profile.FieldResumeText, field.TypeString)
	}
	_node = &Profile{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{profile.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
