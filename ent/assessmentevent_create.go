// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/pathfinder/ent/assessmentevent"
)

// AssessmentEventCreate is the builder for creating a AssessmentEvent entity.
type AssessmentEventCreate struct {
	config
	mutation *AssessmentEventMutation
	hooks    []Hook
}

// SetSequence sets the "sequence" field.
func (_c *AssessmentEventCreate) SetSequence(v int64) *AssessmentEventCreate {
	_c.mutation.SetSequence(v)
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *AssessmentEventCreate) SetTimestamp(v time.Time) *AssessmentEventCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *AssessmentEventCreate) SetNillableTimestamp(v *time.Time) *AssessmentEventCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// SetSessionID sets the "session_id" field.
func (_c *AssessmentEventCreate) SetSessionID(v string) *AssessmentEventCreate {
	_c.mutation.SetSessionID(v)
	return _c
}

// SetTargetRole sets the "target_role" field.
func (_c *AssessmentEventCreate) SetTargetRole(v string) *AssessmentEventCreate {
	_c.mutation.SetTargetRole(v)
	return _c
}

// SetOverallScore sets the "overall_score" field.
func (_c *AssessmentEventCreate) SetOverallScore(v float64) *AssessmentEventCreate {
	_c.mutation.SetOverallScore(v)
	return _c
}

// SetNillableOverallScore sets the "overall_score" field if the given value is not nil.
func (_c *AssessmentEventCreate) SetNillableOverallScore(v *float64) *AssessmentEventCreate {
	if v != nil {
		_c.SetOverallScore(*v)
	}
	return _c
}

// SetReadinessLevel sets the "readiness_level" field.
func (_c *AssessmentEventCreate) SetReadinessLevel(v string) *AssessmentEventCreate {
	_c.mutation.SetReadinessLevel(v)
	return _c
}

// SetNillableReadinessLevel sets the "readiness_level" field if the given value is not nil.
func (_c *AssessmentEventCreate) SetNillableReadinessLevel(v *string) *AssessmentEventCreate {
	if v != nil {
		_c.SetReadinessLevel(*v)
	}
	return _c
}

// SetMissingCount sets the "missing_count" field.
func (_c *AssessmentEventCreate) SetMissingCount(v int) *AssessmentEventCreate {
	_c.mutation.SetMissingCount(v)
	return _c
}

// SetNillableMissingCount sets the "missing_count" field if the given value is not nil.
func (_c *AssessmentEventCreate) SetNillableMissingCount(v *int) *AssessmentEventCreate {
	if v != nil {
		_c.SetMissingCount(*v)
	}
	return _c
}

// SetNiceToHaveCount sets the "nice_to_have_count" field.
func (_c *AssessmentEventCreate) SetNiceToHaveCount(v int) *AssessmentEventCreate {
	_c.mutation.SetNiceToHaveCount(v)
	return _c
}

// SetNillableNiceToHaveCount sets the "nice_to_have_count" field if the given value is not nil.
func (_c *AssessmentEventCreate) SetNillableNiceToHaveCount(v *int) *AssessmentEventCreate {
	if v != nil {
		_c.SetNiceToHaveCount(*v)
	}
	return _c
}

// SetRoadmapHours sets the "roadmap_hours" field.
func (_c *AssessmentEventCreate) SetRoadmapHours(v int) *AssessmentEventCreate {
	_c.mutation.SetRoadmapHours(v)
	return _c
}

// SetNillableRoadmapHours sets the "roadmap_hours" field if the given value is not nil.
func (_c *AssessmentEventCreate) SetNillableRoadmapHours(v *int) *AssessmentEventCreate {
	if v != nil {
		_c.SetRoadmapHours(*v)
	}
	return _c
}

// SetRoadmapSource sets the "roadmap_source" field.
func (_c *AssessmentEventCreate) SetRoadmapSource(v string) *AssessmentEventCreate {
	_c.mutation.SetRoadmapSource(v)
	return _c
}

// SetNillableRoadmapSource sets the "roadmap_source" field if the given value is not nil.
func (_c *AssessmentEventCreate) SetNillableRoadmapSource(v *string) *AssessmentEventCreate {
	if v != nil {
		_c.SetRoadmapSource(*v)
	}
	return _c
}

// SetDurationMs sets the "duration_ms" field.
func (_c *AssessmentEventCreate) SetDurationMs(v int64) *AssessmentEventCreate {
	_c.mutation.SetDurationMs(v)
	return _c
}

// SetNillableDurationMs sets the "duration_ms" field if the given value is not nil.
func (_c *AssessmentEventCreate) SetNillableDurationMs(v *int64) *AssessmentEventCreate {
	if v != nil {
		_c.SetDurationMs(*v)
	}
	return _c
}

// Mutation returns the AssessmentEventMutation object of the builder.
func (_c *AssessmentEventCreate) Mutation() *AssessmentEventMutation {
	return _c.mutation
}

// Save creates the AssessmentEvent in the database.
func (_c *AssessmentEventCreate) Save(ctx context.Context) (*AssessmentEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *AssessmentEventCreate) SaveX(ctx context.Context) *AssessmentEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AssessmentEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AssessmentEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *AssessmentEventCreate) defaults() {
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := assessmentevent.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
	if _, ok := _c.mutation.OverallScore(); !ok {
		v := assessmentevent.DefaultOverallScore
		_c.mutation.SetOverallScore(v)
	}
	if _, ok := _c.mutation.ReadinessLevel(); !ok {
		v := assessmentevent.DefaultReadinessLevel
		_c.mutation.SetReadinessLevel(v)
	}
	if _, ok := _c.mutation.MissingCount(); !ok {
		v := assessmentevent.DefaultMissingCount
		_c.mutation.SetMissingCount(v)
	}
	if _, ok := _c.mutation.NiceToHaveCount(); !ok {
		v := assessmentevent.DefaultNiceToHaveCount
		_c.mutation.SetNiceToHaveCount(v)
	}
	if _, ok := _c.mutation.RoadmapHours(); !ok {
		v := assessmentevent.DefaultRoadmapHours
		_c.mutation.SetRoadmapHours(v)
	}
	if _, ok := _c.mutation.RoadmapSource(); !ok {
		v := assessmentevent.DefaultRoadmapSource
		_c.mutation.SetRoadmapSource(v)
	}
	if _, ok := _c.mutation.DurationMs(); !ok {
		v := assessmentevent.DefaultDurationMs
		_c.mutation.SetDurationMs(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *AssessmentEventCreate) check() error {
	if _, ok := _c.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "AssessmentEvent.sequence"`)}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "AssessmentEvent.timestamp"`)}
	}
	if _, ok := _c.mutation.SessionID(); !ok {
		return &ValidationError{Name: "session_id", err: errors.New(`ent: missing required field "AssessmentEvent.session_id"`)}
	}
	if v, ok := _c.mutation.SessionID(); ok {
		if err := assessmentevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "AssessmentEvent.session_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.TargetRole(); !ok {
		return &ValidationError{Name: "target_role", err: errors.New(`ent: missing required field "AssessmentEvent.target_role"`)}
	}
	if v, ok := _c.mutation.TargetRole(); ok {
		if err := assessmentevent.TargetRoleValidator(v); err != nil {
			return &ValidationError{Name: "target_role", err: fmt.Errorf(`ent: validator failed for field "AssessmentEvent.target_role": %w`, err)}
		}
	}
	if _, ok := _c.mutation.OverallScore(); !ok {
		return &ValidationError{Name: "overall_score", err: errors.New(`ent: missing required field "AssessmentEvent.overall_score"`)}
	}
	if _, ok := _c.mutation.ReadinessLevel(); !ok {
		return &ValidationError{Name: "readiness_level", err: errors.New(`ent: missing required field "AssessmentEvent.readiness_level"`)}
	}
	if _, ok := _c.mutation.MissingCount(); !ok {
		return &ValidationError{Name: "missing_count", err: errors.New(`ent: missing required field "AssessmentEvent.missing_count"`)}
	}
	if _, ok := _c.mutation.NiceToHaveCount(); !ok {
		return &ValidationError{Name: "nice_to_have_count", err: errors.New(`ent: missing required field "AssessmentEvent.nice_to_have_count"`)}
	}
	if _, ok := _c.mutation.RoadmapHours(); !ok {
		return &ValidationError{Name: "roadmap_hours", err: errors.New(`ent: missing required field "AssessmentEvent.roadmap_hours"`)}
	}
	if _, ok := _c.mutation.RoadmapSource(); !ok {
		return &ValidationError{Name: "roadmap_source", err: errors.New(`ent: missing required field "AssessmentEvent.roadmap_source"`)}
	}
	if _, ok := _c.mutation.DurationMs(); !ok {
		return &ValidationError{Name: "duration_ms", err: errors.New(`ent: missing required field "AssessmentEvent.duration_ms"`)}
	}
	return nil
}

func (_c *AssessmentEventCreate) sqlSave(ctx context.Context) (*AssessmentEvent, error) {
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

func (_c *AssessmentEventCreate) createSpec() (*AssessmentEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &AssessmentEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(assessmentevent.Table, sqlgraph.NewFieldSpec(assessmentevent.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Sequence(); ok {
		_spec.SetField(assessmentevent.FieldSequence, field.TypeInt64, value)
		_node.Sequence = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(assessmentevent.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.SessionID(); ok {
		_spec.SetField(assessmentevent.FieldSessionID, field.TypeString, value)
		_node.SessionID = value
	}
	if value, ok := _c.mutation.TargetRole(); ok {
		_spec.SetField(assessmentevent.FieldTargetRole, field.TypeString, value)
		_node.TargetRole = value
	}
	if value, ok := _c.mutation.OverallScore(); ok {
		_spec.SetField(assessmentevent.FieldOverallScore, field.TypeFloat64, value)
		_node.OverallScore = value
	}
	if value, ok := _c.mutation.ReadinessLevel(); ok {
		_spec.SetField(assessmentevent.FieldReadinessLevel, field.TypeString, value)
		_node.ReadinessLevel = value
	}
	if value, ok := _c.mutation.MissingCount(); ok {
		_spec.SetField(assessmentevent.FieldMissingCount, field.TypeInt, value)
		_node.MissingCount = value
	}
	if value, ok := _c.mutation.NiceToHaveCount(); ok {
		_spec.SetField(assessmentevent.FieldNiceToHaveCount, field.TypeInt, value)
		_node.NiceToHaveCount = value
	}
	if value, ok := _c.mutation.RoadmapHours(); ok {
		_spec.SetField(assessmentevent.FieldRoadmapHours, field.TypeInt, value)
		_node.RoadmapHours = value
	}
	if value, ok := _c.mutation.RoadmapSource(); ok {
		_spec.SetField(assessmentevent.FieldRoadmapSource, field.TypeString, value)
		_node.RoadmapSource = value
	}
	if value, ok := _c.mutation.DurationMs(); ok {
		_spec.SetField(assessmentevent.FieldDurationMs, field.TypeInt64, value)
		_node.DurationMs = value
	}
	return _node, _spec
}

// AssessmentEventCreateBulk is the builder for creating many AssessmentEvent entities in bulk.
type AssessmentEventCreateBulk struct {
	config
	err      error
	builders []*AssessmentEventCreate
}

// Save creates the AssessmentEvent entities in the database.
func (_c *AssessmentEventCreateBulk) Save(ctx context.Context) ([]*AssessmentEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*AssessmentEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*AssessmentEventMutation)
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
func (_c *AssessmentEventCreateBulk) SaveX(ctx context.Context) []*AssessmentEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AssessmentEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AssessmentEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
