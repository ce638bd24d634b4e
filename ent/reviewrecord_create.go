// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/voiceops/callaudit/ent/event"
	"github.com/voiceops/callaudit/ent/reviewrecord"
)

// ReviewRecordCreate is the builder for creating a ReviewRecord entity.
type ReviewRecordCreate struct {
	config
	mutation *ReviewRecordMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetAgentID sets the "agent_id" field.
func (_c *ReviewRecordCreate) SetAgentID(v string) *ReviewRecordCreate {
	_c.mutation.SetAgentID(v)
	return _c
}

// SetNillableAgentID sets the "agent_id" field if the given value is not nil.
func (_c *ReviewRecordCreate) SetNillableAgentID(v *string) *ReviewRecordCreate {
	if v != nil {
		_c.SetAgentID(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *ReviewRecordCreate) SetStatus(v reviewrecord.Status) *ReviewRecordCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *ReviewRecordCreate) SetNillableStatus(v *reviewrecord.Status) *ReviewRecordCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetReviewResult sets the "review_result" field.
func (_c *ReviewRecordCreate) SetReviewResult(v map[string]interface{}) *ReviewRecordCreate {
	_c.mutation.SetReviewResult(v)
	return _c
}

// SetErrorCount sets the "error_count" field.
func (_c *ReviewRecordCreate) SetErrorCount(v int) *ReviewRecordCreate {
	_c.mutation.SetErrorCount(v)
	return _c
}

// SetNillableErrorCount sets the "error_count" field if the given value is not nil.
func (_c *ReviewRecordCreate) SetNillableErrorCount(v *int) *ReviewRecordCreate {
	if v != nil {
		_c.SetErrorCount(*v)
	}
	return _c
}

// SetHasAPIFailures sets the "has_api_failures" field.
func (_c *ReviewRecordCreate) SetHasAPIFailures(v bool) *ReviewRecordCreate {
	_c.mutation.SetHasAPIFailures(v)
	return _c
}

// SetNillableHasAPIFailures sets the "has_api_failures" field if the given value is not nil.
func (_c *ReviewRecordCreate) SetNillableHasAPIFailures(v *bool) *ReviewRecordCreate {
	if v != nil {
		_c.SetHasAPIFailures(*v)
	}
	return _c
}

// SetHasWrongActions sets the "has_wrong_actions" field.
func (_c *ReviewRecordCreate) SetHasWrongActions(v bool) *ReviewRecordCreate {
	_c.mutation.SetHasWrongActions(v)
	return _c
}

// SetNillableHasWrongActions sets the "has_wrong_actions" field if the given value is not nil.
func (_c *ReviewRecordCreate) SetNillableHasWrongActions(v *bool) *ReviewRecordCreate {
	if v != nil {
		_c.SetHasWrongActions(*v)
	}
	return _c
}

// SetHasWrongOutputs sets the "has_wrong_outputs" field.
func (_c *ReviewRecordCreate) SetHasWrongOutputs(v bool) *ReviewRecordCreate {
	_c.mutation.SetHasWrongOutputs(v)
	return _c
}

// SetNillableHasWrongOutputs sets the "has_wrong_outputs" field if the given value is not nil.
func (_c *ReviewRecordCreate) SetNillableHasWrongOutputs(v *bool) *ReviewRecordCreate {
	if v != nil {
		_c.SetHasWrongOutputs(*v)
	}
	return _c
}

// SetErrorMessage sets the "error_message" field.
func (_c *ReviewRecordCreate) SetErrorMessage(v string) *ReviewRecordCreate {
	_c.mutation.SetErrorMessage(v)
	return _c
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_c *ReviewRecordCreate) SetNillableErrorMessage(v *string) *ReviewRecordCreate {
	if v != nil {
		_c.SetErrorMessage(*v)
	}
	return _c
}

// SetReviewedAt sets the "reviewed_at" field.
func (_c *ReviewRecordCreate) SetReviewedAt(v time.Time) *ReviewRecordCreate {
	_c.mutation.SetReviewedAt(v)
	return _c
}

// SetNillableReviewedAt sets the "reviewed_at" field if the given value is not nil.
func (_c *ReviewRecordCreate) SetNillableReviewedAt(v *time.Time) *ReviewRecordCreate {
	if v != nil {
		_c.SetReviewedAt(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ReviewRecordCreate) SetCreatedAt(v time.Time) *ReviewRecordCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ReviewRecordCreate) SetNillableCreatedAt(v *time.Time) *ReviewRecordCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *ReviewRecordCreate) SetUpdatedAt(v time.Time) *ReviewRecordCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *ReviewRecordCreate) SetNillableUpdatedAt(v *time.Time) *ReviewRecordCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetPodID sets the "pod_id" field.
func (_c *ReviewRecordCreate) SetPodID(v string) *ReviewRecordCreate {
	_c.mutation.SetPodID(v)
	return _c
}

// SetNillablePodID sets the "pod_id" field if the given value is not nil.
func (_c *ReviewRecordCreate) SetNillablePodID(v *string) *ReviewRecordCreate {
	if v != nil {
		_c.SetPodID(*v)
	}
	return _c
}

// SetLastInteractionAt sets the "last_interaction_at" field.
func (_c *ReviewRecordCreate) SetLastInteractionAt(v time.Time) *ReviewRecordCreate {
	_c.mutation.SetLastInteractionAt(v)
	return _c
}

// SetNillableLastInteractionAt sets the "last_interaction_at" field if the given value is not nil.
func (_c *ReviewRecordCreate) SetNillableLastInteractionAt(v *time.Time) *ReviewRecordCreate {
	if v != nil {
		_c.SetLastInteractionAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ReviewRecordCreate) SetID(v string) *ReviewRecordCreate {
	_c.mutation.SetID(v)
	return _c
}

// AddEventIDs adds the "events" edge to the Event entity by IDs.
func (_c *ReviewRecordCreate) AddEventIDs(ids ...int) *ReviewRecordCreate {
	_c.mutation.AddEventIDs(ids...)
	return _c
}

// AddEvents adds the "events" edges to the Event entity.
func (_c *ReviewRecordCreate) AddEvents(v ...*Event) *ReviewRecordCreate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddEventIDs(ids...)
}

// Mutation returns the ReviewRecordMutation object of the builder.
func (_c *ReviewRecordCreate) Mutation() *ReviewRecordMutation {
	return _c.mutation
}

// Save creates the ReviewRecord in the database.
func (_c *ReviewRecordCreate) Save(ctx context.Context) (*ReviewRecord, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ReviewRecordCreate) SaveX(ctx context.Context) *ReviewRecord {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ReviewRecordCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ReviewRecordCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ReviewRecordCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := reviewrecord.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.ErrorCount(); !ok {
		v := reviewrecord.DefaultErrorCount
		_c.mutation.SetErrorCount(v)
	}
	if _, ok := _c.mutation.HasAPIFailures(); !ok {
		v := reviewrecord.DefaultHasAPIFailures
		_c.mutation.SetHasAPIFailures(v)
	}
	if _, ok := _c.mutation.HasWrongActions(); !ok {
		v := reviewrecord.DefaultHasWrongActions
		_c.mutation.SetHasWrongActions(v)
	}
	if _, ok := _c.mutation.HasWrongOutputs(); !ok {
		v := reviewrecord.DefaultHasWrongOutputs
		_c.mutation.SetHasWrongOutputs(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := reviewrecord.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := reviewrecord.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ReviewRecordCreate) check() error {
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "ReviewRecord.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := reviewrecord.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "ReviewRecord.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ErrorCount(); !ok {
		return &ValidationError{Name: "error_count", err: errors.New(`ent: missing required field "ReviewRecord.error_count"`)}
	}
	if _, ok := _c.mutation.HasAPIFailures(); !ok {
		return &ValidationError{Name: "has_api_failures", err: errors.New(`ent: missing required field "ReviewRecord.has_api_failures"`)}
	}
	if _, ok := _c.mutation.HasWrongActions(); !ok {
		return &ValidationError{Name: "has_wrong_actions", err: errors.New(`ent: missing required field "ReviewRecord.has_wrong_actions"`)}
	}
	if _, ok := _c.mutation.HasWrongOutputs(); !ok {
		return &ValidationError{Name: "has_wrong_outputs", err: errors.New(`ent: missing required field "ReviewRecord.has_wrong_outputs"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "ReviewRecord.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "ReviewRecord.updated_at"`)}
	}
	return nil
}

func (_c *ReviewRecordCreate) sqlSave(ctx context.Context) (*ReviewRecord, error) {
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
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected ReviewRecord.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ReviewRecordCreate) createSpec() (*ReviewRecord, *sqlgraph.CreateSpec) {
	var (
		_node = &ReviewRecord{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(reviewrecord.Table, sqlgraph.NewFieldSpec(reviewrecord.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.AgentID(); ok {
		_spec.SetField(reviewrecord.FieldAgentID, field.TypeString, value)
		_node.AgentID = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(reviewrecord.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.ReviewResult(); ok {
		_spec.SetField(reviewrecord.FieldReviewResult, field.TypeJSON, value)
		_node.ReviewResult = value
	}
	if value, ok := _c.mutation.ErrorCount(); ok {
		_spec.SetField(reviewrecord.FieldErrorCount, field.TypeInt, value)
		_node.ErrorCount = value
	}
	if value, ok := _c.mutation.HasAPIFailures(); ok {
		_spec.SetField(reviewrecord.FieldHasAPIFailures, field.TypeBool, value)
		_node.HasAPIFailures = value
	}
	if value, ok := _c.mutation.HasWrongActions(); ok {
		_spec.SetField(reviewrecord.FieldHasWrongActions, field.TypeBool, value)
		_node.HasWrongActions = value
	}
	if value, ok := _c.mutation.HasWrongOutputs(); ok {
		_spec.SetField(reviewrecord.FieldHasWrongOutputs, field.TypeBool, value)
		_node.HasWrongOutputs = value
	}
	if value, ok := _c.mutation.ErrorMessage(); ok {
		_spec.SetField(reviewrecord.FieldErrorMessage, field.TypeString, value)
		_node.ErrorMessage = &value
	}
	if value, ok := _c.mutation.ReviewedAt(); ok {
		_spec.SetField(reviewrecord.FieldReviewedAt, field.TypeTime, value)
		_node.ReviewedAt = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(reviewrecord.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(reviewrecord.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.PodID(); ok {
		_spec.SetField(reviewrecord.FieldPodID, field.TypeString, value)
		_node.PodID = &value
	}
	if value, ok := _c.mutation.LastInteractionAt(); ok {
		_spec.SetField(reviewrecord.FieldLastInteractionAt, field.TypeTime, value)
		_node.LastInteractionAt = &value
	}
	if nodes := _c.mutation.EventsIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.ReviewRecord.Create().
//		SetAgentID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ReviewRecordUpsert) {
//			SetAgentID(v+v).
//		}).
//		Exec(ctx)
func (_c *ReviewRecordCreate) OnConflict(opts ...sql.ConflictOption) *ReviewRecordUpsertOne {
	_c.conflict = opts
	return &ReviewRecordUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.ReviewRecord.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ReviewRecordCreate) OnConflictColumns(columns ...string) *ReviewRecordUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ReviewRecordUpsertOne{
		create: _c,
	}
}

type (
	// ReviewRecordUpsertOne is the builder for "upsert"-ing
	//  one ReviewRecord node.
	ReviewRecordUpsertOne struct {
		create *ReviewRecordCreate
	}

	// ReviewRecordUpsert is the "OnConflict" setter.
	ReviewRecordUpsert struct {
		*sql.UpdateSet
	}
)

// SetAgentID sets the "agent_id" field.
func (u *ReviewRecordUpsert) SetAgentID(v string) *ReviewRecordUpsert {
	u.Set(reviewrecord.FieldAgentID, v)
	return u
}

// UpdateAgentID sets the "agent_id" field to the value that was provided on create.
func (u *ReviewRecordUpsert) UpdateAgentID() *ReviewRecordUpsert {
	u.SetExcluded(reviewrecord.FieldAgentID)
	return u
}

// ClearAgentID clears the value of the "agent_id" field.
func (u *ReviewRecordUpsert) ClearAgentID() *ReviewRecordUpsert {
	u.SetNull(reviewrecord.FieldAgentID)
	return u
}

// SetStatus sets the "status" field.
func (u *ReviewRecordUpsert) SetStatus(v reviewrecord.Status) *ReviewRecordUpsert {
	u.Set(reviewrecord.FieldStatus, v)
	return u
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *ReviewRecordUpsert) UpdateStatus() *ReviewRecordUpsert {
	u.SetExcluded(reviewrecord.FieldStatus)
	return u
}

// SetReviewResult sets the "review_result" field.
func (u *ReviewRecordUpsert) SetReviewResult(v map[string]interface{}) *ReviewRecordUpsert {
	u.Set(reviewrecord.FieldReviewResult, v)
	return u
}

// UpdateReviewResult sets the "review_result" field to the value that was provided on create.
func (u *ReviewRecordUpsert) UpdateReviewResult() *ReviewRecordUpsert {
	u.SetExcluded(reviewrecord.FieldReviewResult)
	return u
}

// ClearReviewResult clears the value of the "review_result" field.
func (u *ReviewRecordUpsert) ClearReviewResult() *ReviewRecordUpsert {
	u.SetNull(reviewrecord.FieldReviewResult)
	return u
}

// SetErrorCount sets the "error_count" field.
func (u *ReviewRecordUpsert) SetErrorCount(v int) *ReviewRecordUpsert {
	u.Set(reviewrecord.FieldErrorCount, v)
	return u
}

// UpdateErrorCount sets the "error_count" field to the value that was provided on create.
func (u *ReviewRecordUpsert) UpdateErrorCount() *ReviewRecordUpsert {
	u.SetExcluded(reviewrecord.FieldErrorCount)
	return u
}

// AddErrorCount adds v to the "error_count" field.
func (u *ReviewRecordUpsert) AddErrorCount(v int) *ReviewRecordUpsert {
	u.Add(reviewrecord.FieldErrorCount, v)
	return u
}

// SetHasAPIFailures sets the "has_api_failures" field.
func (u *ReviewRecordUpsert) SetHasAPIFailures(v bool) *ReviewRecordUpsert {
	u.Set(reviewrecord.FieldHasAPIFailures, v)
	return u
}

// UpdateHasAPIFailures sets the "has_api_failures" field to the value that was provided on create.
func (u *ReviewRecordUpsert) UpdateHasAPIFailures() *ReviewRecordUpsert {
	u.SetExcluded(reviewrecord.FieldHasAPIFailures)
	return u
}

// SetHasWrongActions sets the "has_wrong_actions" field.
func (u *ReviewRecordUpsert) SetHasWrongActions(v bool) *ReviewRecordUpsert {
	u.Set(reviewrecord.FieldHasWrongActions, v)
	return u
}

// UpdateHasWrongActions sets the "has_wrong_actions" field to the value that was provided on create.
func (u *ReviewRecordUpsert) UpdateHasWrongActions() *ReviewRecordUpsert {
	u.SetExcluded(reviewrecord.FieldHasWrongActions)
	return u
}

// SetHasWrongOutputs sets the "has_wrong_outputs" field.
func (u *ReviewRecordUpsert) SetHasWrongOutputs(v bool) *ReviewRecordUpsert {
	u.Set(reviewrecord.FieldHasWrongOutputs, v)
	return u
}

// UpdateHasWrongOutputs sets the "has_wrong_outputs" field to the value that was provided on create.
func (u *ReviewRecordUpsert) UpdateHasWrongOutputs() *ReviewRecordUpsert {
	u.SetExcluded(reviewrecord.FieldHasWrongOutputs)
	return u
}

// SetErrorMessage sets the "error_message" field.
func (u *ReviewRecordUpsert) SetErrorMessage(v string) *ReviewRecordUpsert {
	u.Set(reviewrecord.FieldErrorMessage, v)
	return u
}

// UpdateErrorMessage sets the "error_message" field to the value that was provided on create.
func (u *ReviewRecordUpsert) UpdateErrorMessage() *ReviewRecordUpsert {
	u.SetExcluded(reviewrecord.FieldErrorMessage)
	return u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (u *ReviewRecordUpsert) ClearErrorMessage() *ReviewRecordUpsert {
	u.SetNull(reviewrecord.FieldErrorMessage)
	return u
}

// SetReviewedAt sets the "reviewed_at" field.
func (u *ReviewRecordUpsert) SetReviewedAt(v time.Time) *ReviewRecordUpsert {
	u.Set(reviewrecord.FieldReviewedAt, v)
	return u
}

// UpdateReviewedAt sets the "reviewed_at" field to the value that was provided on create.
func (u *ReviewRecordUpsert) UpdateReviewedAt() *ReviewRecordUpsert {
	u.SetExcluded(reviewrecord.FieldReviewedAt)
	return u
}

// ClearReviewedAt clears the value of the "reviewed_at" field.
func (u *ReviewRecordUpsert) ClearReviewedAt() *ReviewRecordUpsert {
	u.SetNull(reviewrecord.FieldReviewedAt)
	return u
}

// SetCreatedAt sets the "created_at" field.
func (u *ReviewRecordUpsert) SetCreatedAt(v time.Time) *ReviewRecordUpsert {
	u.Set(reviewrecord.FieldCreatedAt, v)
	return u
}

// UpdateCreatedAt sets the "created_at" field to the value that was provided on create.
func (u *ReviewRecordUpsert) UpdateCreatedAt() *ReviewRecordUpsert {
	u.SetExcluded(reviewrecord.FieldCreatedAt)
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *ReviewRecordUpsert) SetUpdatedAt(v time.Time) *ReviewRecordUpsert {
	u.Set(reviewrecord.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *ReviewRecordUpsert) UpdateUpdatedAt() *ReviewRecordUpsert {
	u.SetExcluded(reviewrecord.FieldUpdatedAt)
	return u
}

// SetPodID sets the "pod_id" field.
func (u *ReviewRecordUpsert) SetPodID(v string) *ReviewRecordUpsert {
	u.Set(reviewrecord.FieldPodID, v)
	return u
}

// UpdatePodID sets the "pod_id" field to the value that was provided on create.
func (u *ReviewRecordUpsert) UpdatePodID() *ReviewRecordUpsert {
	u.SetExcluded(reviewrecord.FieldPodID)
	return u
}

// ClearPodID clears the value of the "pod_id" field.
func (u *ReviewRecordUpsert) ClearPodID() *ReviewRecordUpsert {
	u.SetNull(reviewrecord.FieldPodID)
	return u
}

// SetLastInteractionAt sets the "last_interaction_at" field.
func (u *ReviewRecordUpsert) SetLastInteractionAt(v time.Time) *ReviewRecordUpsert {
	u.Set(reviewrecord.FieldLastInteractionAt, v)
	return u
}

// UpdateLastInteractionAt sets the "last_interaction_at" field to the value that was provided on create.
func (u *ReviewRecordUpsert) UpdateLastInteractionAt() *ReviewRecordUpsert {
	u.SetExcluded(reviewrecord.FieldLastInteractionAt)
	return u
}

// ClearLastInteractionAt clears the value of the "last_interaction_at" field.
func (u *ReviewRecordUpsert) ClearLastInteractionAt() *ReviewRecordUpsert {
	u.SetNull(reviewrecord.FieldLastInteractionAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.ReviewRecord.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(reviewrecord.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *ReviewRecordUpsertOne) UpdateNewValues() *ReviewRecordUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(reviewrecord.FieldID)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.ReviewRecord.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *ReviewRecordUpsertOne) Ignore() *ReviewRecordUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ReviewRecordUpsertOne) DoNothing() *ReviewRecordUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ReviewRecordCreate.OnConflict
// documentation for more info.
func (u *ReviewRecordUpsertOne) Update(set func(*ReviewRecordUpsert)) *ReviewRecordUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ReviewRecordUpsert{UpdateSet: update})
	}))
	return u
}

// SetAgentID sets the "agent_id" field.
func (u *ReviewRecordUpsertOne) SetAgentID(v string) *ReviewRecordUpsertOne {
	return u.Update(func(s *ReviewRecordUpsert) {
		s.SetAgentID(v)
	})
}

// UpdateAgentID sets the "agent_id" field to the value that was provided on create.
func (u *ReviewRecordUpsertOne) UpdateAgentID() *ReviewRecordUpsertOne {
	return u.Update(func(s *ReviewRecordUpsert) {
		s.UpdateAgentID()
	})
}

// ClearAgentID clears the value of the "agent_id" field.
func (u *ReviewRecordUpsertOne) ClearAgentID() *ReviewRecordUpsertOne {
	return u.Update(func(s *ReviewRecordUpsert) {
		s.ClearAgentID()
	})
}

// SetStatus sets the "status" field.
func (u *ReviewRecordUpsertOne) SetStatus(v reviewrecord.Status) *ReviewRecordUpsertOne {
	return u.Update(func(s *ReviewRecordUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *ReviewRecordUpsertOne) UpdateStatus() *ReviewRecordUpsertOne {
	return u.Update(func(s *ReviewRecordUpsert) {
		s.UpdateStatus()
	})
}

// SetReviewResult sets the "review_result" field.
func (u *ReviewRecordUpsertOne) SetReviewResult(v map[string]interface{}) *ReviewRecordUpsertOne {
	return u.Update(func(s *ReviewRecordUpsert) {
		s.SetReviewResult(v)
	})
}

// UpdateReviewResult sets the "review_result" field to the value that was provided on create.
func (u *ReviewRecordUpsertOne) UpdateReviewResult() *ReviewRecordUpsertOne {
	return u.Update(func(s *ReviewRecordUpsert) {
		s.UpdateReviewResult()
	})
}

// ClearReviewResult clears the value of the "review_result" field.
func (u *ReviewRecordUpsertOne) ClearReviewResult() *ReviewRecordUpsertOne {
	return u.Update(func(s *ReviewRecordUpsert) {
		s.ClearReviewResult()
	})
}

// SetErrorCount sets the "error_count" field.
func (u *ReviewRecordUpsertOne) SetErrorCount(v int) *ReviewRecordUpsertOne {
	return u.Update(func(s *ReviewRecordUpsert) {
		s.SetErrorCount(v)
	})
}

// AddErrorCount adds v to the "error_count" field.
func (u *ReviewRecordUpsertOne) AddErrorCount(v int) *ReviewRecordUpsertOne {
	return u.Update(func(s *ReviewRecordUpsert) {
		s.AddErrorCount(v)
	})
}

// UpdateErrorCount sets the "error_count" field to the value that was provided on create.
func (u *ReviewRecordUpsertOne) UpdateErrorCount() *ReviewRecordUpsertOne {
	return u.Update(func(s *ReviewRecordUpsert) {
		s.UpdateErrorCount()
	})
}

// SetHasAPIFailures sets the "has_api_failures" field.
func (u *ReviewRecordUpsertOne) SetHasAPIFailures(v bool) *ReviewRecordUpsertOne {
	return u.Update(func(s *ReviewRecordUpsert) {
		s.SetHasAPIFailures(v)
	})
}

// UpdateHasAPIFailures sets the "has_api_failures" field to the value that was provided on create.
func (u *ReviewRecordUpsertOne) UpdateHasAPIFailures() *ReviewRecordUpsertOne {
	return u.Update(func(s *ReviewRecordUpsert) {
		s.UpdateHasAPIFailures()
	})
}

// SetHasWrongActions sets the "has_wrong_actions" field.
func (u *ReviewRecordUpsertOne) SetHasWrongActions(v bool) *ReviewRecordUpsertOne {
	return u.Update(func(s *ReviewRecordUpsert) {
		s.SetHasWrongActions(v)
	})
}

// UpdateHasWrongActions sets the "has_wrong_actions" field to the value that was provided on create.
func (u *ReviewRecordUpsertOne) UpdateHasWrongActions() *ReviewRecordUpsertOne {
	return u.Update(func(s *ReviewRecordUpsert) {
		s.UpdateHasWrongActions()
	})
}

// SetHasWrongOutputs sets the "has_wrong_outputs" field.
func (u *ReviewRecordUpsertOne) SetHasWrongOutputs(v bool) *ReviewRecordUpsertOne {
	return u.Update(func(s *ReviewRecordUpsert) {
		s.SetHasWrongOutputs(v)
	})
}

// UpdateHasWrongOutputs sets the "has_wrong_outputs" field to the value that was provided on create.
func (u *ReviewRecordUpsertOne) UpdateHasWrongOutputs() *ReviewRecordUpsertOne {
	return u.Update(func(s *ReviewRecordUpsert) {
		s.UpdateHasWrongOutputs()
	})
}

// SetErrorMessage sets the "error_message" field.
func (u *ReviewRecordUpsertOne) SetErrorMessage(v string) *ReviewRecordUpsertOne {
	return u.Update(func(s *ReviewRecordUpsert) {
		s.SetErrorMessage(v)
	})
}

// UpdateErrorMessage sets the "error_message" field to the value that was provided on create.
func (u *ReviewRecordUpsertOne) UpdateErrorMessage() *ReviewRecordUpsertOne {
	return u.Update(func(s *ReviewRecordUpsert) {
		s.UpdateErrorMessage()
	})
}

// ClearErrorMessage clears the value of the "error_message" field.
func (u *ReviewRecordUpsertOne) ClearErrorMessage() *ReviewRecordUpsertOne {
	return u.Update(func(s *ReviewRecordUpsert) {
		s.ClearErrorMessage()
	})
}

// SetReviewedAt sets the "reviewed_at" field.
func (u *ReviewRecordUpsertOne) SetReviewedAt(v time.Time) *ReviewRecordUpsertOne {
	return u.Update(func(s *ReviewRecordUpsert) {
		s.SetReviewedAt(v)
	})
}

// UpdateReviewedAt sets the "reviewed_at" field to the value that was provided on create.
func (u *ReviewRecordUpsertOne) UpdateReviewedAt() *ReviewRecordUpsertOne {
	return u.Update(func(s *ReviewRecordUpsert) {
		s.UpdateReviewedAt()
	})
}

// ClearReviewedAt clears the value of the "reviewed_at" field.
func (u *ReviewRecordUpsertOne) ClearReviewedAt() *ReviewRecordUpsertOne {
	return u.Update(func(s *ReviewRecordUpsert) {
		s.ClearReviewedAt()
	})
}

// SetCreatedAt sets the "created_at" field.
func (u *ReviewRecordUpsertOne) SetCreatedAt(v time.Time) *ReviewRecordUpsertOne {
	return u.Update(func(s *ReviewRecordUpsert) {
		s.SetCreatedAt(v)
	})
}

// UpdateCreatedAt sets the "created_at" field to the value that was provided on create.
func (u *ReviewRecordUpsertOne) UpdateCreatedAt() *ReviewRecordUpsertOne {
	return u.Update(func(s *ReviewRecordUpsert) {
		s.UpdateCreatedAt()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *ReviewRecordUpsertOne) SetUpdatedAt(v time.Time) *ReviewRecordUpsertOne {
	return u.Update(func(s *ReviewRecordUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *ReviewRecordUpsertOne) UpdateUpdatedAt() *ReviewRecordUpsertOne {
	return u.Update(func(s *ReviewRecordUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetPodID sets the "pod_id" field.
func (u *ReviewRecordUpsertOne) SetPodID(v string) *ReviewRecordUpsertOne {
	return u.Update(func(s *ReviewRecordUpsert) {
		s.SetPodID(v)
	})
}

// UpdatePodID sets the "pod_id" field to the value that was provided on create.
func (u *ReviewRecordUpsertOne) UpdatePodID() *ReviewRecordUpsertOne {
	return u.Update(func(s *ReviewRecordUpsert) {
		s.UpdatePodID()
	})
}

// ClearPodID clears the value of the "pod_id" field.
func (u *ReviewRecordUpsertOne) ClearPodID() *ReviewRecordUpsertOne {
	return u.Update(func(s *ReviewRecordUpsert) {
		s.ClearPodID()
	})
}

// SetLastInteractionAt sets the "last_interaction_at" field.
func (u *ReviewRecordUpsertOne) SetLastInteractionAt(v time.Time) *ReviewRecordUpsertOne {
	return u.Update(func(s *ReviewRecordUpsert) {
		s.SetLastInteractionAt(v)
	})
}

// UpdateLastInteractionAt sets the "last_interaction_at" field to the value that was provided on create.
func (u *ReviewRecordUpsertOne) UpdateLastInteractionAt() *ReviewRecordUpsertOne {
	return u.Update(func(s *ReviewRecordUpsert) {
		s.UpdateLastInteractionAt()
	})
}

// ClearLastInteractionAt clears the value of the "last_interaction_at" field.
func (u *ReviewRecordUpsertOne) ClearLastInteractionAt() *ReviewRecordUpsertOne {
	return u.Update(func(s *ReviewRecordUpsert) {
		s.ClearLastInteractionAt()
	})
}

// Exec executes the query.
func (u *ReviewRecordUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for ReviewRecordCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ReviewRecordUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *ReviewRecordUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: ReviewRecordUpsertOne.ID is not supported by MySQL driver. Use ReviewRecordUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *ReviewRecordUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// ReviewRecordCreateBulk is the builder for creating many ReviewRecord entities in bulk.
type ReviewRecordCreateBulk struct {
	config
	err      error
	builders []*ReviewRecordCreate
	conflict []sql.ConflictOption
}

// Save creates the ReviewRecord entities in the database.
func (_c *ReviewRecordCreateBulk) Save(ctx context.Context) ([]*ReviewRecord, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ReviewRecord, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ReviewRecordMutation)
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
					spec.OnConflict = _c.conflict
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
func (_c *ReviewRecordCreateBulk) SaveX(ctx context.Context) []*ReviewRecord {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ReviewRecordCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ReviewRecordCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.ReviewRecord.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ReviewRecordUpsert) {
//			SetAgentID(v+v).
//		}).
//		Exec(ctx)
func (_c *ReviewRecordCreateBulk) OnConflict(opts ...sql.ConflictOption) *ReviewRecordUpsertBulk {
	_c.conflict = opts
	return &ReviewRecordUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.ReviewRecord.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ReviewRecordCreateBulk) OnConflictColumns(columns ...string) *ReviewRecordUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ReviewRecordUpsertBulk{
		create: _c,
	}
}

// ReviewRecordUpsertBulk is the builder for "upsert"-ing
// a bulk of ReviewRecord nodes.
type ReviewRecordUpsertBulk struct {
	create *ReviewRecordCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.ReviewRecord.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(reviewrecord.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *ReviewRecordUpsertBulk) UpdateNewValues() *ReviewRecordUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(reviewrecord.FieldID)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.ReviewRecord.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *ReviewRecordUpsertBulk) Ignore() *ReviewRecordUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ReviewRecordUpsertBulk) DoNothing() *ReviewRecordUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ReviewRecordCreateBulk.OnConflict
// documentation for more info.
func (u *ReviewRecordUpsertBulk) Update(set func(*ReviewRecordUpsert)) *ReviewRecordUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ReviewRecordUpsert{UpdateSet: update})
	}))
	return u
}

// SetAgentID sets the "agent_id" field.
func (u *ReviewRecordUpsertBulk) SetAgentID(v string) *ReviewRecordUpsertBulk {
	return u.Update(func(s *ReviewRecordUpsert) {
		s.SetAgentID(v)
	})
}

// UpdateAgentID sets the "agent_id" field to the value that was provided on create.
func (u *ReviewRecordUpsertBulk) UpdateAgentID() *ReviewRecordUpsertBulk {
	return u.Update(func(s *ReviewRecordUpsert) {
		s.UpdateAgentID()
	})
}

// ClearAgentID clears the value of the "agent_id" field.
func (u *ReviewRecordUpsertBulk) ClearAgentID() *ReviewRecordUpsertBulk {
	return u.Update(func(s *ReviewRecordUpsert) {
		s.ClearAgentID()
	})
}

// SetStatus sets the "status" field.
func (u *ReviewRecordUpsertBulk) SetStatus(v reviewrecord.Status) *ReviewRecordUpsertBulk {
	return u.Update(func(s *ReviewRecordUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *ReviewRecordUpsertBulk) UpdateStatus() *ReviewRecordUpsertBulk {
	return u.Update(func(s *ReviewRecordUpsert) {
		s.UpdateStatus()
	})
}

// SetReviewResult sets the "review_result" field.
func (u *ReviewRecordUpsertBulk) SetReviewResult(v map[string]interface{}) *ReviewRecordUpsertBulk {
	return u.Update(func(s *ReviewRecordUpsert) {
		s.SetReviewResult(v)
	})
}

// UpdateReviewResult sets the "review_result" field to the value that was provided on create.
func (u *ReviewRecordUpsertBulk) UpdateReviewResult() *ReviewRecordUpsertBulk {
	return u.Update(func(s *ReviewRecordUpsert) {
		s.UpdateReviewResult()
	})
}

// ClearReviewResult clears the value of the "review_result" field.
func (u *ReviewRecordUpsertBulk) ClearReviewResult() *ReviewRecordUpsertBulk {
	return u.Update(func(s *ReviewRecordUpsert) {
		s.ClearReviewResult()
	})
}

// SetErrorCount sets the "error_count" field.
func (u *ReviewRecordUpsertBulk) SetErrorCount(v int) *ReviewRecordUpsertBulk {
	return u.Update(func(s *ReviewRecordUpsert) {
		s.SetErrorCount(v)
	})
}

// AddErrorCount adds v to the "error_count" field.
func (u *ReviewRecordUpsertBulk) AddErrorCount(v int) *ReviewRecordUpsertBulk {
	return u.Update(func(s *ReviewRecordUpsert) {
		s.AddErrorCount(v)
	})
}

// UpdateErrorCount sets the "error_count" field to the value that was provided on create.
func (u *ReviewRecordUpsertBulk) UpdateErrorCount() *ReviewRecordUpsertBulk {
	return u.Update(func(s *ReviewRecordUpsert) {
		s.UpdateErrorCount()
	})
}

// SetHasAPIFailures sets the "has_api_failures" field.
func (u *ReviewRecordUpsertBulk) SetHasAPIFailures(v bool) *ReviewRecordUpsertBulk {
	return u.Update(func(s *ReviewRecordUpsert) {
		s.SetHasAPIFailures(v)
	})
}

// UpdateHasAPIFailures sets the "has_api_failures" field to the value that was provided on create.
func (u *ReviewRecordUpsertBulk) UpdateHasAPIFailures() *ReviewRecordUpsertBulk {
	return u.Update(func(s *ReviewRecordUpsert) {
		s.UpdateHasAPIFailures()
	})
}

// SetHasWrongActions sets the "has_wrong_actions" field.
func (u *ReviewRecordUpsertBulk) SetHasWrongActions(v bool) *ReviewRecordUpsertBulk {
	return u.Update(func(s *ReviewRecordUpsert) {
		s.SetHasWrongActions(v)
	})
}

// UpdateHasWrongActions sets the "has_wrong_actions" field to the value that was provided on create.
func (u *ReviewRecordUpsertBulk) UpdateHasWrongActions() *ReviewRecordUpsertBulk {
	return u.Update(func(s *ReviewRecordUpsert) {
		s.UpdateHasWrongActions()
	})
}

// SetHasWrongOutputs sets the "has_wrong_outputs" field.
func (u *ReviewRecordUpsertBulk) SetHasWrongOutputs(v bool) *ReviewRecordUpsertBulk {
	return u.Update(func(s *ReviewRecordUpsert) {
		s.SetHasWrongOutputs(v)
	})
}

// UpdateHasWrongOutputs sets the "has_wrong_outputs" field to the value that was provided on create.
func (u *ReviewRecordUpsertBulk) UpdateHasWrongOutputs() *ReviewRecordUpsertBulk {
	return u.Update(func(s *ReviewRecordUpsert) {
		s.UpdateHasWrongOutputs()
	})
}

// SetErrorMessage sets the "error_message" field.
func (u *ReviewRecordUpsertBulk) SetErrorMessage(v string) *ReviewRecordUpsertBulk {
	return u.Update(func(s *ReviewRecordUpsert) {
		s.SetErrorMessage(v)
	})
}

// UpdateErrorMessage sets the "error_message" field to the value that was provided on create.
func (u *ReviewRecordUpsertBulk) UpdateErrorMessage() *ReviewRecordUpsertBulk {
	return u.Update(func(s *ReviewRecordUpsert) {
		s.UpdateErrorMessage()
	})
}

// ClearErrorMessage clears the value of the "error_message" field.
func (u *ReviewRecordUpsertBulk) ClearErrorMessage() *ReviewRecordUpsertBulk {
	return u.Update(func(s *ReviewRecordUpsert) {
		s.ClearErrorMessage()
	})
}

// SetReviewedAt sets the "reviewed_at" field.
func (u *ReviewRecordUpsertBulk) SetReviewedAt(v time.Time) *ReviewRecordUpsertBulk {
	return u.Update(func(s *ReviewRecordUpsert) {
		s.SetReviewedAt(v)
	})
}

// UpdateReviewedAt sets the "reviewed_at" field to the value that was provided on create.
func (u *ReviewRecordUpsertBulk) UpdateReviewedAt() *ReviewRecordUpsertBulk {
	return u.Update(func(s *ReviewRecordUpsert) {
		s.UpdateReviewedAt()
	})
}

// ClearReviewedAt clears the value of the "reviewed_at" field.
func (u *ReviewRecordUpsertBulk) ClearReviewedAt() *ReviewRecordUpsertBulk {
	return u.Update(func(s *ReviewRecordUpsert) {
		s.ClearReviewedAt()
	})
}

// SetCreatedAt sets the "created_at" field.
func (u *ReviewRecordUpsertBulk) SetCreatedAt(v time.Time) *ReviewRecordUpsertBulk {
	return u.Update(func(s *ReviewRecordUpsert) {
		s.SetCreatedAt(v)
	})
}

// UpdateCreatedAt sets the "created_at" field to the value that was provided on create.
func (u *ReviewRecordUpsertBulk) UpdateCreatedAt() *ReviewRecordUpsertBulk {
	return u.Update(func(s *ReviewRecordUpsert) {
		s.UpdateCreatedAt()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *ReviewRecordUpsertBulk) SetUpdatedAt(v time.Time) *ReviewRecordUpsertBulk {
	return u.Update(func(s *ReviewRecordUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *ReviewRecordUpsertBulk) UpdateUpdatedAt() *ReviewRecordUpsertBulk {
	return u.Update(func(s *ReviewRecordUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetPodID sets the "pod_id" field.
func (u *ReviewRecordUpsertBulk) SetPodID(v string) *ReviewRecordUpsertBulk {
	return u.Update(func(s *ReviewRecordUpsert) {
		s.SetPodID(v)
	})
}

// UpdatePodID sets the "pod_id" field to the value that was provided on create.
func (u *ReviewRecordUpsertBulk) UpdatePodID() *ReviewRecordUpsertBulk {
	return u.Update(func(s *ReviewRecordUpsert) {
		s.UpdatePodID()
	})
}

// ClearPodID clears the value of the "pod_id" field.
func (u *ReviewRecordUpsertBulk) ClearPodID() *ReviewRecordUpsertBulk {
	return u.Update(func(s *ReviewRecordUpsert) {
		s.ClearPodID()
	})
}

// SetLastInteractionAt sets the "last_interaction_at" field.
func (u *ReviewRecordUpsertBulk) SetLastInteractionAt(v time.Time) *ReviewRecordUpsertBulk {
	return u.Update(func(s *ReviewRecordUpsert) {
		s.SetLastInteractionAt(v)
	})
}

// UpdateLastInteractionAt sets the "last_interaction_at" field to the value that was provided on create.
func (u *ReviewRecordUpsertBulk) UpdateLastInteractionAt() *ReviewRecordUpsertBulk {
	return u.Update(func(s *ReviewRecordUpsert) {
		s.UpdateLastInteractionAt()
	})
}

// ClearLastInteractionAt clears the value of the "last_interaction_at" field.
func (u *ReviewRecordUpsertBulk) ClearLastInteractionAt() *ReviewRecordUpsertBulk {
	return u.Update(func(s *ReviewRecordUpsert) {
		s.ClearLastInteractionAt()
	})
}

// Exec executes the query.
func (u *ReviewRecordUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the ReviewRecordCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for ReviewRecordCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ReviewRecordUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
