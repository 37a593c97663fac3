// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/pathfinder/ent/assessmentevent"
	"github.com/abhisek/pathfinder/ent/predicate"
)

// AssessmentEventUpdate is the builder for updating AssessmentEvent entities.
type AssessmentEventUpdate struct {
	config
	hooks    []Hook
	mutation *AssessmentEventMutation
}

// Where appends a list predicates to the AssessmentEventUpdate builder.
func (_u *AssessmentEventUpdate) Where(ps ...predicate.AssessmentEvent) *AssessmentEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *AssessmentEventUpdate) SetSessionID(v string) *AssessmentEventUpdate {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *AssessmentEventUpdate) SetNillableSessionID(v *string) *AssessmentEventUpdate {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetTargetRole sets the "target_role" field.
func (_u *AssessmentEventUpdate) SetTargetRole(v string) *AssessmentEventUpdate {
	_u.mutation.SetTargetRole(v)
	return _u
}

// SetNillableTargetRole sets the "target_role" field if the given value is not nil.
func (_u *AssessmentEventUpdate) SetNillableTargetRole(v *string) *AssessmentEventUpdate {
	if v != nil {
		_u.SetTargetRole(*v)
	}
	return _u
}

// SetOverallScore sets the "overall_score" field.
func (_u *AssessmentEventUpdate) SetOverallScore(v float64) *AssessmentEventUpdate {
	_u.mutation.ResetOverallScore()
	_u.mutation.SetOverallScore(v)
	return _u
}

// SetNillableOverallScore sets the "overall_score" field if the given value is not nil.
func (_u *AssessmentEventUpdate) SetNillableOverallScore(v *float64) *AssessmentEventUpdate {
	if v != nil {
		_u.SetOverallScore(*v)
	}
	return _u
}

// AddOverallScore adds value to the "overall_score" field.
func (_u *AssessmentEventUpdate) AddOverallScore(v float64) *AssessmentEventUpdate {
	_u.mutation.AddOverallScore(v)
	return _u
}

// SetReadinessLevel sets the "readiness_level" field.
func (_u *AssessmentEventUpdate) SetReadinessLevel(v string) *AssessmentEventUpdate {
	_u.mutation.SetReadinessLevel(v)
	return _u
}

// SetNillableReadinessLevel sets the "readiness_level" field if the given value is not nil.
func (_u *AssessmentEventUpdate) SetNillableReadinessLevel(v *string) *AssessmentEventUpdate {
	if v != nil {
		_u.SetReadinessLevel(*v)
	}
	return _u
}

// SetMissingCount sets the "missing_count" field.
func (_u *AssessmentEventUpdate) SetMissingCount(v int) *AssessmentEventUpdate {
	_u.mutation.ResetMissingCount()
	_u.mutation.SetMissingCount(v)
	return _u
}

// SetNillableMissingCount sets the "missing_count" field if the given value is not nil.
func (_u *AssessmentEventUpdate) SetNillableMissingCount(v *int) *AssessmentEventUpdate {
	if v != nil {
		_u.SetMissingCount(*v)
	}
	return _u
}

// AddMissingCount adds value to the "missing_count" field.
func (_u *AssessmentEventUpdate) AddMissingCount(v int) *AssessmentEventUpdate {
	_u.mutation.AddMissingCount(v)
	return _u
}

// SetNiceToHaveCount sets the "nice_to_have_count" field.
func (_u *AssessmentEventUpdate) SetNiceToHaveCount(v int) *AssessmentEventUpdate {
	_u.mutation.ResetNiceToHaveCount()
	_u.mutation.SetNiceToHaveCount(v)
	return _u
}

// SetNillableNiceToHaveCount sets the "nice_to_have_count" field if the given value is not nil.
func (_u *AssessmentEventUpdate) SetNillableNiceToHaveCount(v *int) *AssessmentEventUpdate {
	if v != nil {
		_u.SetNiceToHaveCount(*v)
	}
	return _u
}

// AddNiceToHaveCount adds value to the "nice_to_have_count" field.
func (_u *AssessmentEventUpdate) AddNiceToHaveCount(v int) *AssessmentEventUpdate {
	_u.mutation.AddNiceToHaveCount(v)
	return _u
}

// SetRoadmapHours sets the "roadmap_hours" field.
func (_u *AssessmentEventUpdate) SetRoadmapHours(v int) *AssessmentEventUpdate {
	_u.mutation.ResetRoadmapHours()
	_u.mutation.SetRoadmapHours(v)
	return _u
}

// SetNillableRoadmapHours sets the "roadmap_hours" field if the given value is not nil.
func (_u *AssessmentEventUpdate) SetNillableRoadmapHours(v *int) *AssessmentEventUpdate {
	if v != nil {
		_u.SetRoadmapHours(*v)
	}
	return _u
}

// AddRoadmapHours adds value to the "roadmap_hours" field.
func (_u *AssessmentEventUpdate) AddRoadmapHours(v int) *AssessmentEventUpdate {
	_u.mutation.AddRoadmapHours(v)
	return _u
}

// SetRoadmapSource sets the "roadmap_source" field.
func (_u *AssessmentEventUpdate) SetRoadmapSource(v string) *AssessmentEventUpdate {
	_u.mutation.SetRoadmapSource(v)
	return _u
}

// SetNillableRoadmapSource sets the "roadmap_source" field if the given value is not nil.
func (_u *AssessmentEventUpdate) SetNillableRoadmapSource(v *string) *AssessmentEventUpdate {
	if v != nil {
		_u.SetRoadmapSource(*v)
	}
	return _u
}

// SetDurationMs sets the "duration_ms" field.
func (_u *AssessmentEventUpdate) SetDurationMs(v int64) *AssessmentEventUpdate {
	_u.mutation.ResetDurationMs()
	_u.mutation.SetDurationMs(v)
	return _u
}

// SetNillableDurationMs sets the "duration_ms" field if the given value is not nil.
func (_u *AssessmentEventUpdate) SetNillableDurationMs(v *int64) *AssessmentEventUpdate {
	if v != nil {
		_u.SetDurationMs(*v)
	}
	return _u
}

// AddDurationMs adds value to the "duration_ms" field.
func (_u *AssessmentEventUpdate) AddDurationMs(v int64) *AssessmentEventUpdate {
	_u.mutation.AddDurationMs(v)
	return _u
}

// Mutation returns the AssessmentEventMutation object of the builder.
func (_u *AssessmentEventUpdate) Mutation() *AssessmentEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *AssessmentEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AssessmentEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *AssessmentEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AssessmentEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AssessmentEventUpdate) check() error {
	if v, ok := _u.mutation.SessionID(); ok {
		if err := assessmentevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "AssessmentEvent.session_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.TargetRole(); ok {
		if err := assessmentevent.TargetRoleValidator(v); err != nil {
			return &ValidationError{Name: "target_role", err: fmt.Errorf(`ent: validator failed for field "AssessmentEvent.target_role": %w`, err)}
		}
	}
	return nil
}

func (_u *AssessmentEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(assessmentevent.Table, assessmentevent.Columns, sqlgraph.NewFieldSpec(assessmentevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(assessmentevent.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.TargetRole(); ok {
		_spec.SetField(assessmentevent.FieldTargetRole, field.TypeString, value)
	}
	if value, ok := _u.mutation.OverallScore(); ok {
		_spec.SetField(assessmentevent.FieldOverallScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedOverallScore(); ok {
		_spec.AddField(assessmentevent.FieldOverallScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.ReadinessLevel(); ok {
		_spec.SetField(assessmentevent.FieldReadinessLevel, field.TypeString, value)
	}
	if value, ok := _u.mutation.MissingCount(); ok {
		_spec.SetField(assessmentevent.FieldMissingCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMissingCount(); ok {
		_spec.AddField(assessmentevent.FieldMissingCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.NiceToHaveCount(); ok {
		_spec.SetField(assessmentevent.FieldNiceToHaveCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedNiceToHaveCount(); ok {
		_spec.AddField(assessmentevent.FieldNiceToHaveCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.RoadmapHours(); ok {
		_spec.SetField(assessmentevent.FieldRoadmapHours, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRoadmapHours(); ok {
		_spec.AddField(assessmentevent.FieldRoadmapHours, field.TypeInt, value)
	}
	if value, ok := _u.mutation.RoadmapSource(); ok {
		_spec.SetField(assessmentevent.FieldRoadmapSource, field.TypeString, value)
	}
	if value, ok := _u.mutation.DurationMs(); ok {
		_spec.SetField(assessmentevent.FieldDurationMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedDurationMs(); ok {
		_spec.AddField(assessmentevent.FieldDurationMs, field.TypeInt64, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{assessmentevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// AssessmentEventUpdateOne is the builder for updating a single AssessmentEvent entity.
type AssessmentEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AssessmentEventMutation
}

// SetSessionID sets the "session_id" field.
func (_u *AssessmentEventUpdateOne) SetSessionID(v string) *AssessmentEventUpdateOne {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *AssessmentEventUpdateOne) SetNillableSessionID(v *string) *AssessmentEventUpdateOne {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetTargetRole sets the "target_role" field.
func (_u *AssessmentEventUpdateOne) SetTargetRole(v string) *AssessmentEventUpdateOne {
	_u.mutation.SetTargetRole(v)
	return _u
}

// SetNillableTargetRole sets the "target_role" field if the given value is not nil.
func (_u *AssessmentEventUpdateOne) SetNillableTargetRole(v *string) *AssessmentEventUpdateOne {
	if v != nil {
		_u.SetTargetRole(*v)
	}
	return _u
}

// SetOverallScore sets the "overall_score" field.
func (_u *AssessmentEventUpdateOne) SetOverallScore(v float64) *AssessmentEventUpdateOne {
	_u.mutation.ResetOverallScore()
	_u.mutation.SetOverallScore(v)
	return _u
}

// SetNillableOverallScore sets the "overall_score" field if the given value is not nil.
func (_u *AssessmentEventUpdateOne) SetNillableOverallScore(v *float64) *AssessmentEventUpdateOne {
	if v != nil {
		_u.SetOverallScore(*v)
	}
	return _u
}

// AddOverallScore adds value to the "overall_score" field.
func (_u *AssessmentEventUpdateOne) AddOverallScore(v float64) *AssessmentEventUpdateOne {
	_u.mutation.AddOverallScore(v)
	return _u
}

// SetReadinessLevel sets the "readiness_level" field.
func (_u *AssessmentEventUpdateOne) SetReadinessLevel(v string) *AssessmentEventUpdateOne {
	_u.mutation.SetReadinessLevel(v)
	return _u
}

// SetNillableReadinessLevel sets the "readiness_level" field if the given value is not nil.
func (_u *AssessmentEventUpdateOne) SetNillableReadinessLevel(v *string) *AssessmentEventUpdateOne {
	if v != nil {
		_u.SetReadinessLevel(*v)
	}
	return _u
}

// SetMissingCount sets the "missing_count" field.
func (_u *AssessmentEventUpdateOne) SetMissingCount(v int) *AssessmentEventUpdateOne {
	_u.mutation.ResetMissingCount()
	_u.mutation.SetMissingCount(v)
	return _u
}

// SetNillableMissingCount sets the "missing_count" field if the given value is not nil.
func (_u *AssessmentEventUpdateOne) SetNillableMissingCount(v *int) *AssessmentEventUpdateOne {
	if v != nil {
		_u.SetMissingCount(*v)
	}
	return _u
}

// AddMissingCount adds value to the "missing_count" field.
func (_u *AssessmentEventUpdateOne) AddMissingCount(v int) *AssessmentEventUpdateOne {
	_u.mutation.AddMissingCount(v)
	return _u
}

// SetNiceToHaveCount sets the "nice_to_have_count" field.
func (_u *AssessmentEventUpdateOne) SetNiceToHaveCount(v int) *AssessmentEventUpdateOne {
	_u.mutation.ResetNiceToHaveCount()
	_u.mutation.SetNiceToHaveCount(v)
	return _u
}

// SetNillableNiceToHaveCount sets the "nice_to_have_count" field if the given value is not nil.
func (_u *AssessmentEventUpdateOne) SetNillableNiceToHaveCount(v *int) *AssessmentEventUpdateOne {
	if v != nil {
		_u.SetNiceToHaveCount(*v)
	}
	return _u
}

// AddNiceToHaveCount adds value to the "nice_to_have_count" field.
func (_u *AssessmentEventUpdateOne) AddNiceToHaveCount(v int) *AssessmentEventUpdateOne {
	_u.mutation.AddNiceToHaveCount(v)
	return _u
}

// SetRoadmapHours sets the "roadmap_hours" field.
func (_u *AssessmentEventUpdateOne) SetRoadmapHours(v int) *AssessmentEventUpdateOne {
	_u.mutation.ResetRoadmapHours()
	_u.mutation.SetRoadmapHours(v)
	return _u
}

// SetNillableRoadmapHours sets the "roadmap_hours" field if the given value is not nil.
func (_u *AssessmentEventUpdateOne) SetNillableRoadmapHours(v *int) *AssessmentEventUpdateOne {
	if v != nil {
		_u.SetRoadmapHours(*v)
	}
	return _u
}

// AddRoadmapHours adds value to the "roadmap_hours" field.
func (_u *AssessmentEventUpdateOne) AddRoadmapHours(v int) *AssessmentEventUpdateOne {
	_u.mutation.AddRoadmapHours(v)
	return _u
}

// SetRoadmapSource sets the "roadmap_source" field.
func (_u *AssessmentEventUpdateOne) SetRoadmapSource(v string) *AssessmentEventUpdateOne {
	_u.mutation.SetRoadmapSource(v)
	return _u
}

// SetNillableRoadmapSource sets the "roadmap_source" field if the given value is not nil.
func (_u *AssessmentEventUpdateOne) SetNillableRoadmapSource(v *string) *AssessmentEventUpdateOne {
	if v != nil {
		_u.SetRoadmapSource(*v)
	}
	return _u
}

// SetDurationMs sets the "duration_ms" field.
func (_u *AssessmentEventUpdateOne) SetDurationMs(v int64) *AssessmentEventUpdateOne {
	_u.mutation.ResetDurationMs()
	_u.mutation.SetDurationMs(v)
	return _u
}

// SetNillableDurationMs sets the "duration_ms" field if the given value is not nil.
func (_u *AssessmentEventUpdateOne) SetNillableDurationMs(v *int64) *AssessmentEventUpdateOne {
	if v != nil {
		_u.SetDurationMs(*v)
	}
	return _u
}

// AddDurationMs adds value to the "duration_ms" field.
func (_u *AssessmentEventUpdateOne) AddDurationMs(v int64) *AssessmentEventUpdateOne {
	_u.mutation.AddDurationMs(v)
	return _u
}

// Mutation returns the AssessmentEventMutation object of the builder.
func (_u *AssessmentEventUpdateOne) Mutation() *AssessmentEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the AssessmentEventUpdate builder.
func (_u *AssessmentEventUpdateOne) Where(ps ...predicate.AssessmentEvent) *AssessmentEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *AssessmentEventUpdateOne) Select(field string, fields ...string) *AssessmentEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated AssessmentEvent entity.
func (_u *AssessmentEventUpdateOne) Save(ctx context.Context) (*AssessmentEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AssessmentEventUpdateOne) SaveX(ctx context.Context) *AssessmentEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *AssessmentEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AssessmentEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AssessmentEventUpdateOne) check() error {
	if v, ok := _u.mutation.SessionID(); ok {
		if err := assessmentevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "AssessmentEvent.session_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.TargetRole(); ok {
		if err := assessmentevent.TargetRoleValidator(v); err != nil {
			return &ValidationError{Name: "target_role", err: fmt.Errorf(`ent: validator failed for field "AssessmentEvent.target_role": %w`, err)}
		}
	}
	return nil
}

func (_u *AssessmentEventUpdateOne) sqlSave(ctx context.Context) (_node *AssessmentEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(assessmentevent.Table, assessmentevent.Columns, sqlgraph.NewFieldSpec(assessmentevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "AssessmentEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, assessmentevent.FieldID)
		for _, f := range fields {
			if !assessmentevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != assessmentevent.FieldID {
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
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(assessmentevent.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.TargetRole(); ok {
		_spec.SetField(assessmentevent.FieldTargetRole, field.TypeString, value)
	}
	if value, ok := _u.mutation.OverallScore(); ok {
		_spec.SetField(assessmentevent.FieldOverallScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedOverallScore(); ok {
		_spec.AddField(assessmentevent.FieldOverallScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.ReadinessLevel(); ok {
		_spec.SetField(assessmentevent.FieldReadinessLevel, field.TypeString, value)
	}
	if value, ok := _u.mutation.MissingCount(); ok {
		_spec.SetField(assessmentevent.FieldMissingCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMissingCount(); ok {
		_spec.AddField(assessmentevent.FieldMissingCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.NiceToHaveCount(); ok {
		_spec.SetField(assessmentevent.FieldNiceToHaveCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedNiceToHaveCount(); ok {
		_spec.AddField(assessmentevent.FieldNiceToHaveCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.RoadmapHours(); ok {
		_spec.SetField(assessmentevent.FieldRoadmapHours, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRoadmapHours(); ok {
		_spec.AddField(assessmentevent.FieldRoadmapHours, field.TypeInt, value)
	}
	if value, ok := _u.mutation.RoadmapSource(); ok {
		_spec.SetField(assessmentevent.FieldRoadmapSource, field.TypeString, value)
	}
	if value, ok := _u.mutation.DurationMs(); ok {
		_spec.SetField(assessmentevent.FieldDurationMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedDurationMs(); ok {
		_spec.AddField(assessmentevent.FieldDurationMs, field.TypeInt64, value)
	}
	_node = &AssessmentEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{assessmentevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
