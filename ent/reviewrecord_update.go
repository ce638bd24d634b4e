// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/voiceops/callaudit/ent/event"
	"github.com/voiceops/callaudit/ent/predicate"
	"github.com/voiceops/callaudit/ent/reviewrecord"
)

// ReviewRecordUpdate is the builder for updating ReviewRecord entities.
type ReviewRecordUpdate struct {
	config
	hooks    []Hook
	mutation *ReviewRecordMutation
}

// Where appends a list predicates to the ReviewRecordUpdate builder.
func (_u *ReviewRecordUpdate) Where(ps ...predicate.ReviewRecord) *ReviewRecordUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetAgentID sets the "agent_id" field.
func (_u *ReviewRecordUpdate) SetAgentID(v string) *ReviewRecordUpdate {
	_u.mutation.SetAgentID(v)
	return _u
}

// SetNillableAgentID sets the "agent_id" field if the given value is not nil.
func (_u *ReviewRecordUpdate) SetNillableAgentID(v *string) *ReviewRecordUpdate {
	if v != nil {
		_u.SetAgentID(*v)
	}
	return _u
}

// ClearAgentID clears the value of the "agent_id" field.
func (_u *ReviewRecordUpdate) ClearAgentID() *ReviewRecordUpdate {
	_u.mutation.ClearAgentID()
	return _u
}

// SetStatus sets the "status" field.
func (_u *ReviewRecordUpdate) SetStatus(v reviewrecord.Status) *ReviewRecordUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ReviewRecordUpdate) SetNillableStatus(v *reviewrecord.Status) *ReviewRecordUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetReviewResult sets the "review_result" field.
func (_u *ReviewRecordUpdate) SetReviewResult(v map[string]interface{}) *ReviewRecordUpdate {
	_u.mutation.SetReviewResult(v)
	return _u
}

// ClearReviewResult clears the value of the "review_result" field.
func (_u *ReviewRecordUpdate) ClearReviewResult() *ReviewRecordUpdate {
	_u.mutation.ClearReviewResult()
	return _u
}

// SetErrorCount sets the "error_count" field.
func (_u *ReviewRecordUpdate) SetErrorCount(v int) *ReviewRecordUpdate {
	_u.mutation.ResetErrorCount()
	_u.mutation.SetErrorCount(v)
	return _u
}

// SetNillableErrorCount sets the "error_count" field if the given value is not nil.
func (_u *ReviewRecordUpdate) SetNillableErrorCount(v *int) *ReviewRecordUpdate {
	if v != nil {
		_u.SetErrorCount(*v)
	}
	return _u
}

// AddErrorCount adds value to the "error_count" field.
func (_u *ReviewRecordUpdate) AddErrorCount(v int) *ReviewRecordUpdate {
	_u.mutation.AddErrorCount(v)
	return _u
}

// SetHasAPIFailures sets the "has_api_failures" field.
func (_u *ReviewRecordUpdate) SetHasAPIFailures(v bool) *ReviewRecordUpdate {
	_u.mutation.SetHasAPIFailures(v)
	return _u
}

// SetNillableHasAPIFailures sets the "has_api_failures" field if the given value is not nil.
func (_u *ReviewRecordUpdate) SetNillableHasAPIFailures(v *bool) *ReviewRecordUpdate {
	if v != nil {
		_u.SetHasAPIFailures(*v)
	}
	return _u
}

// SetHasWrongActions sets the "has_wrong_actions" field.
func (_u *ReviewRecordUpdate) SetHasWrongActions(v bool) *ReviewRecordUpdate {
	_u.mutation.SetHasWrongActions(v)
	return _u
}

// SetNillableHasWrongActions sets the "has_wrong_actions" field if the given value is not nil.
func (_u *ReviewRecordUpdate) SetNillableHasWrongActions(v *bool) *ReviewRecordUpdate {
	if v != nil {
		_u.SetHasWrongActions(*v)
	}
	return _u
}

// SetHasWrongOutputs sets the "has_wrong_outputs" field.
func (_u *ReviewRecordUpdate) SetHasWrongOutputs(v bool) *ReviewRecordUpdate {
	_u.mutation.SetHasWrongOutputs(v)
	return _u
}

// SetNillableHasWrongOutputs sets the "has_wrong_outputs" field if the given value is not nil.
func (_u *ReviewRecordUpdate) SetNillableHasWrongOutputs(v *bool) *ReviewRecordUpdate {
	if v != nil {
		_u.SetHasWrongOutputs(*v)
	}
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *ReviewRecordUpdate) SetErrorMessage(v string) *ReviewRecordUpdate {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *ReviewRecordUpdate) SetNillableErrorMessage(v *string) *ReviewRecordUpdate {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *ReviewRecordUpdate) ClearErrorMessage() *ReviewRecordUpdate {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetReviewedAt sets the "reviewed_at" field.
func (_u *ReviewRecordUpdate) SetReviewedAt(v time.Time) *ReviewRecordUpdate {
	_u.mutation.SetReviewedAt(v)
	return _u
}

// SetNillableReviewedAt sets the "reviewed_at" field if the given value is not nil.
func (_u *ReviewRecordUpdate) SetNillableReviewedAt(v *time.Time) *ReviewRecordUpdate {
	if v != nil {
		_u.SetReviewedAt(*v)
	}
	return _u
}

// ClearReviewedAt clears the value of the "reviewed_at" field.
func (_u *ReviewRecordUpdate) ClearReviewedAt() *ReviewRecordUpdate {
	_u.mutation.ClearReviewedAt()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *ReviewRecordUpdate) SetCreatedAt(v time.Time) *ReviewRecordUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *ReviewRecordUpdate) SetNillableCreatedAt(v *time.Time) *ReviewRecordUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ReviewRecordUpdate) SetUpdatedAt(v time.Time) *ReviewRecordUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetPodID sets the "pod_id" field.
func (_u *ReviewRecordUpdate) SetPodID(v string) *ReviewRecordUpdate {
	_u.mutation.SetPodID(v)
	return _u
}

// SetNillablePodID sets the "pod_id" field if the given value is not nil.
func (_u *ReviewRecordUpdate) SetNillablePodID(v *string) *ReviewRecordUpdate {
	if v != nil {
		_u.SetPodID(*v)
	}
	return _u
}

// ClearPodID clears the value of the "pod_id" field.
func (_u *ReviewRecordUpdate) ClearPodID() *ReviewRecordUpdate {
	_u.mutation.ClearPodID()
	return _u
}

// SetLastInteractionAt sets the "last_interaction_at" field.
func (_u *ReviewRecordUpdate) SetLastInteractionAt(v time.Time) *ReviewRecordUpdate {
	_u.mutation.SetLastInteractionAt(v)
	return _u
}

// SetNillableLastInteractionAt sets the "last_interaction_at" field if the given value is not nil.
func (_u *ReviewRecordUpdate) SetNillableLastInteractionAt(v *time.Time) *ReviewRecordUpdate {
	if v != nil {
		_u.SetLastInteractionAt(*v)
	}
	return _u
}

// ClearLastInteractionAt clears the value of the "last_interaction_at" field.
func (_u *ReviewRecordUpdate) ClearLastInteractionAt() *ReviewRecordUpdate {
	_u.mutation.ClearLastInteractionAt()
	return _u
}

// AddEventIDs adds the "events" edge to the Event entity by IDs.
func (_u *ReviewRecordUpdate) AddEventIDs(ids ...int) *ReviewRecordUpdate {
	_u.mutation.AddEventIDs(ids...)
	return _u
}

// AddEvents adds the "events" edges to the Event entity.
func (_u *ReviewRecordUpdate) AddEvents(v ...*Event) *ReviewRecordUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddEventIDs(ids...)
}

// Mutation returns the ReviewRecordMutation object of the builder.
func (_u *ReviewRecordUpdate) Mutation() *ReviewRecordMutation {
	return _u.mutation
}

// ClearEvents clears all "events" edges to the Event entity.
func (_u *ReviewRecordUpdate) ClearEvents() *ReviewRecordUpdate {
	_u.mutation.ClearEvents()
	return _u
}

// RemoveEventIDs removes the "events" edge to Event entities by IDs.
func (_u *ReviewRecordUpdate) RemoveEventIDs(ids ...int) *ReviewRecordUpdate {
	_u.mutation.RemoveEventIDs(ids...)
	return _u
}

// RemoveEvents removes "events" edges to Event entities.
func (_u *ReviewRecordUpdate) RemoveEvents(v ...*Event) *ReviewRecordUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveEventIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ReviewRecordUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ReviewRecordUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ReviewRecordUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ReviewRecordUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ReviewRecordUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := reviewrecord.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ReviewRecordUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := reviewrecord.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "ReviewRecord.status": %w`, err)}
		}
	}
	return nil
}

func (_u *ReviewRecordUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(reviewrecord.Table, reviewrecord.Columns, sqlgraph.NewFieldSpec(reviewrecord.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.AgentID(); ok {
		_spec.SetField(reviewrecord.FieldAgentID, field.TypeString, value)
	}
	if _u.mutation.AgentIDCleared() {
		_spec.ClearField(reviewrecord.FieldAgentID, field.TypeString)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(reviewrecord.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ReviewResult(); ok {
		_spec.SetField(reviewrecord.FieldReviewResult, field.TypeJSON, value)
	}
	if _u.mutation.ReviewResultCleared() {
		_spec.ClearField(reviewrecord.FieldReviewResult, field.TypeJSON)
	}
	if value, ok := _u.mutation.ErrorCount(); ok {
		_spec.SetField(reviewrecord.FieldErrorCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedErrorCount(); ok {
		_spec.AddField(reviewrecord.FieldErrorCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.HasAPIFailures(); ok {
		_spec.SetField(reviewrecord.FieldHasAPIFailures, field.TypeBool, value)
	}
	if value, ok := _u.mutation.HasWrongActions(); ok {
		_spec.SetField(reviewrecord.FieldHasWrongActions, field.TypeBool, value)
	}
	if value, ok := _u.mutation.HasWrongOutputs(); ok {
		_spec.SetField(reviewrecord.FieldHasWrongOutputs, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(reviewrecord.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(reviewrecord.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.ReviewedAt(); ok {
		_spec.SetField(reviewrecord.FieldReviewedAt, field.TypeTime, value)
	}
	if _u.mutation.ReviewedAtCleared() {
		_spec.ClearField(reviewrecord.FieldReviewedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(reviewrecord.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(reviewrecord.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.PodID(); ok {
		_spec.SetField(reviewrecord.FieldPodID, field.TypeString, value)
	}
	if _u.mutation.PodIDCleared() {
		_spec.ClearField(reviewrecord.FieldPodID, field.TypeString)
	}
	if value, ok := _u.mutation.LastInteractionAt(); ok {
		_spec.SetField(reviewrecord.FieldLastInteractionAt, field.TypeTime, value)
	}
	if _u.mutation.LastInteractionAtCleared() {
		_spec.ClearField(reviewrecord.FieldLastInteractionAt, field.TypeTime)
	}
	if _u.mutation.EventsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   reviewrecord.EventsTable,
			Columns: []string{reviewrecord.EventsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(event.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedEventsIDs(); len(nodes) > 0 && !_u.mutation.EventsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   reviewrecord.EventsTable,
			Columns: []string{reviewrecord.EventsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(event.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.EventsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   reviewrecord.EventsTable,
			Columns: []string{reviewrecord.EventsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(event.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{reviewrecord.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ReviewRecordUpdateOne is the builder for updating a single ReviewRecord entity.
type ReviewRecordUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ReviewRecordMutation
}

// SetAgentID sets the "agent_id" field.
func (_u *ReviewRecordUpdateOne) SetAgentID(v string) *ReviewRecordUpdateOne {
	_u.mutation.SetAgentID(v)
	return _u
}

// SetNillableAgentID sets the "agent_id" field if the given value is not nil.
func (_u *ReviewRecordUpdateOne) SetNillableAgentID(v *string) *ReviewRecordUpdateOne {
	if v != nil {
		_u.SetAgentID(*v)
	}
	return _u
}

// ClearAgentID clears the value of the "agent_id" field.
func (_u *ReviewRecordUpdateOne) ClearAgentID() *ReviewRecordUpdateOne {
	_u.mutation.ClearAgentID()
	return _u
}

// SetStatus sets the "status" field.
func (_u *ReviewRecordUpdateOne) SetStatus(v reviewrecord.Status) *ReviewRecordUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ReviewRecordUpdateOne) SetNillableStatus(v *reviewrecord.Status) *ReviewRecordUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetReviewResult sets the "review_result" field.
func (_u *ReviewRecordUpdateOne) SetReviewResult(v map[string]interface{}) *ReviewRecordUpdateOne {
	_u.mutation.SetReviewResult(v)
	return _u
}

// ClearReviewResult clears the value of the "review_result" field.
func (_u *ReviewRecordUpdateOne) ClearReviewResult() *ReviewRecordUpdateOne {
	_u.mutation.ClearReviewResult()
	return _u
}

// SetErrorCount sets the "error_count" field.
func (_u *ReviewRecordUpdateOne) SetErrorCount(v int) *ReviewRecordUpdateOne {
	_u.mutation.ResetErrorCount()
	_u.mutation.SetErrorCount(v)
	return _u
}

// SetNillableErrorCount sets the "error_count" field if the given value is not nil.
func (_u *ReviewRecordUpdateOne) SetNillableErrorCount(v *int) *ReviewRecordUpdateOne {
	if v != nil {
		_u.SetErrorCount(*v)
	}
	return _u
}

// AddErrorCount adds value to the "error_count" field.
func (_u *ReviewRecordUpdateOne) AddErrorCount(v int) *ReviewRecordUpdateOne {
	_u.mutation.AddErrorCount(v)
	return _u
}

// SetHasAPIFailures sets the "has_api_failures" field.
func (_u *ReviewRecordUpdateOne) SetHasAPIFailures(v bool) *ReviewRecordUpdateOne {
	_u.mutation.SetHasAPIFailures(v)
	return _u
}

// SetNillableHasAPIFailures sets the "has_api_failures" field if the given value is not nil.
func (_u *ReviewRecordUpdateOne) SetNillableHasAPIFailures(v *bool) *ReviewRecordUpdateOne {
	if v != nil {
		_u.SetHasAPIFailures(*v)
	}
	return _u
}

// SetHasWrongActions sets the "has_wrong_actions" field.
func (_u *ReviewRecordUpdateOne) SetHasWrongActions(v bool) *ReviewRecordUpdateOne {
	_u.mutation.SetHasWrongActions(v)
	return _u
}

// SetNillableHasWrongActions sets the "has_wrong_actions" field if the given value is not nil.
func (_u *ReviewRecordUpdateOne) SetNillableHasWrongActions(v *bool) *ReviewRecordUpdateOne {
	if v != nil {
		_u.SetHasWrongActions(*v)
	}
	return _u
}

// SetHasWrongOutputs sets the "has_wrong_outputs" field.
func (_u *ReviewRecordUpdateOne) SetHasWrongOutputs(v bool) *ReviewRecordUpdateOne {
	_u.mutation.SetHasWrongOutputs(v)
	return _u
}

// SetNillableHasWrongOutputs sets the "has_wrong_outputs" field if the given value is not nil.
func (_u *ReviewRecordUpdateOne) SetNillableHasWrongOutputs(v *bool) *ReviewRecordUpdateOne {
	if v != nil {
		_u.SetHasWrongOutputs(*v)
	}
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *ReviewRecordUpdateOne) SetErrorMessage(v string) *ReviewRecordUpdateOne {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *ReviewRecordUpdateOne) SetNillableErrorMessage(v *string) *ReviewRecordUpdateOne {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *ReviewRecordUpdateOne) ClearErrorMessage() *ReviewRecordUpdateOne {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetReviewedAt sets the "reviewed_at" field.
func (_u *ReviewRecordUpdateOne) SetReviewedAt(v time.Time) *ReviewRecordUpdateOne {
	_u.mutation.SetReviewedAt(v)
	return _u
}

// SetNillableReviewedAt sets the "reviewed_at" field if the given value is not nil.
func (_u *ReviewRecordUpdateOne) SetNillableReviewedAt(v *time.Time) *ReviewRecordUpdateOne {
	if v != nil {
		_u.SetReviewedAt(*v)
	}
	return _u
}

// ClearReviewedAt clears the value of the "reviewed_at" field.
func (_u *ReviewRecordUpdateOne) ClearReviewedAt() *ReviewRecordUpdateOne {
	_u.mutation.ClearReviewedAt()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *ReviewRecordUpdateOne) SetCreatedAt(v time.Time) *ReviewRecordUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *ReviewRecordUpdateOne) SetNillableCreatedAt(v *time.Time) *ReviewRecordUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ReviewRecordUpdateOne) SetUpdatedAt(v time.Time) *ReviewRecordUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetPodID sets the "pod_id" field.
func (_u *ReviewRecordUpdateOne) SetPodID(v string) *ReviewRecordUpdateOne {
	_u.mutation.SetPodID(v)
	return _u
}

// SetNillablePodID sets the "pod_id" field if the given value is not nil.
func (_u *ReviewRecordUpdateOne) SetNillablePodID(v *string) *ReviewRecordUpdateOne {
	if v != nil {
		_u.SetPodID(*v)
	}
	return _u
}

// ClearPodID clears the value of the "pod_id" field.
func (_u *ReviewRecordUpdateOne) ClearPodID() *ReviewRecordUpdateOne {
	_u.mutation.ClearPodID()
	return _u
}

// SetLastInteractionAt sets the "last_interaction_at" field.
func (_u *ReviewRecordUpdateOne) SetLastInteractionAt(v time.Time) *ReviewRecordUpdateOne {
	_u.mutation.SetLastInteractionAt(v)
	return _u
}

// SetNillableLastInteractionAt sets the "last_interaction_at" field if the given value is not nil.
func (_u *ReviewRecordUpdateOne) SetNillableLastInteractionAt(v *time.Time) *ReviewRecordUpdateOne {
	if v != nil {
		_u.SetLastInteractionAt(*v)
	}
	return _u
}

// ClearLastInteractionAt clears the value of the "last_interaction_at" field.
func (_u *ReviewRecordUpdateOne) ClearLastInteractionAt() *ReviewRecordUpdateOne {
	_u.mutation.ClearLastInteractionAt()
	return _u
}

// AddEventIDs adds the "events" edge to the Event entity by IDs.
func (_u *ReviewRecordUpdateOne) AddEventIDs(ids ...int) *ReviewRecordUpdateOne {
	_u.mutation.AddEventIDs(ids...)
	return _u
}

// AddEvents adds the "events" edges to the Event entity.
func (_u *ReviewRecordUpdateOne) AddEvents(v ...*Event) *ReviewRecordUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddEventIDs(ids...)
}

// Mutation returns the ReviewRecordMutation object of the builder.
func (_u *ReviewRecordUpdateOne) Mutation() *ReviewRecordMutation {
	return _u.mutation
}

// ClearEvents clears all "events" edges to the Event entity.
func (_u *ReviewRecordUpdateOne) ClearEvents() *ReviewRecordUpdateOne {
	_u.mutation.ClearEvents()
	return _u
}

// RemoveEventIDs removes the "events" edge to Event entities by IDs.
func (_u *ReviewRecordUpdateOne) RemoveEventIDs(ids ...int) *ReviewRecordUpdateOne {
	_u.mutation.RemoveEventIDs(ids...)
	return _u
}

// RemoveEvents removes "events" edges to Event entities.
func (_u *ReviewRecordUpdateOne) RemoveEvents(v ...*Event) *ReviewRecordUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveEventIDs(ids...)
}

// Where appends a list predicates to the ReviewRecordUpdate builder.
func (_u *ReviewRecordUpdateOne) Where(ps ...predicate.ReviewRecord) *ReviewRecordUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ReviewRecordUpdateOne) Select(field string, fields ...string) *ReviewRecordUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ReviewRecord entity.
func (_u *ReviewRecordUpdateOne) Save(ctx context.Context) (*ReviewRecord, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ReviewRecordUpdateOne) SaveX(ctx context.Context) *ReviewRecord {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ReviewRecordUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ReviewRecordUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ReviewRecordUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := reviewrecord.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ReviewRecordUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := reviewrecord.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "ReviewRecord.status": %w`, err)}
		}
	}
	return nil
}

func (_u *ReviewRecordUpdateOne) sqlSave(ctx context.Context) (_node *ReviewRecord, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(reviewrecord.Table, reviewrecord.Columns, sqlgraph.NewFieldSpec(reviewrecord.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ReviewRecord.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, reviewrecord.FieldID)
		for _, f := range fields {
			if !reviewrecord.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != reviewrecord.FieldID {
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
	if value, ok := _u.mutation.AgentID(); ok {
		_spec.SetField(reviewrecord.FieldAgentID, field.TypeString, value)
	}
	if _u.mutation.AgentIDCleared() {
		_spec.ClearField(reviewrecord.FieldAgentID, field.TypeString)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(reviewrecord.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ReviewResult(); ok {
		_spec.SetField(reviewrecord.FieldReviewResult, field.TypeJSON, value)
	}
	if _u.mutation.ReviewResultCleared() {
		_spec.ClearField(reviewrecord.FieldReviewResult, field.TypeJSON)
	}
	if value, ok := _u.mutation.ErrorCount(); ok {
		_spec.SetField(reviewrecord.FieldErrorCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedErrorCount(); ok {
		_spec.AddField(reviewrecord.FieldErrorCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.HasAPIFailures(); ok {
		_spec.SetField(reviewrecord.FieldHasAPIFailures, field.TypeBool, value)
	}
	if value, ok := _u.mutation.HasWrongActions(); ok {
		_spec.SetField(reviewrecord.FieldHasWrongActions, field.TypeBool, value)
	}
	if value, ok := _u.mutation.HasWrongOutputs(); ok {
		_spec.SetField(reviewrecord.FieldHasWrongOutputs, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(reviewrecord.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(reviewrecord.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.ReviewedAt(); ok {
		_spec.SetField(reviewrecord.FieldReviewedAt, field.TypeTime, value)
	}
	if _u.mutation.ReviewedAtCleared() {
		_spec.ClearField(reviewrecord.FieldReviewedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(reviewrecord.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(reviewrecord.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.PodID(); ok {
		_spec.SetField(reviewrecord.FieldPodID, field.TypeString, value)
	}
	if _u.mutation.PodIDCleared() {
		_spec.ClearField(reviewrecord.FieldPodID, field.TypeString)
	}
	if value, ok := _u.mutation.LastInteractionAt(); ok {
		_spec.SetField(reviewrecord.FieldLastInteractionAt, field.TypeTime, value)
	}
	if _u.mutation.LastInteractionAtCleared() {
		_spec.ClearField(reviewrecord.FieldLastInteractionAt, field.TypeTime)
	}
	if _u.mutation.EventsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   reviewrecord.EventsTable,
			Columns: []string{reviewrecord.EventsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(event.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedEventsIDs(); len(nodes) > 0 && !_u.mutation.EventsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   reviewrecord.EventsTable,
			Columns: []string{reviewrecord.EventsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(event.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.EventsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   reviewrecord.EventsTable,
			Columns: []string{reviewrecord.EventsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(event.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &ReviewRecord{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{reviewrecord.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
