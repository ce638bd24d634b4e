// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/voiceops/callaudit/ent/event"
	"github.com/voiceops/callaudit/ent/predicate"
	"github.com/voiceops/callaudit/ent/reviewrecord"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeEvent        = "Event"
	TypeReviewRecord = "ReviewRecord"
)

// EventMutation represents an operation that mutates the Event nodes in the graph.
type EventMutation struct {
	config
	op            Op
	typ           string
	id            *int
	channel       *string
	payload       *map[string]interface{}
	created_at    *time.Time
	clearedFields map[string]struct{}
	review        *string
	clearedreview bool
	done          bool
	oldValue      func(context.Context) (*Event, error)
	predicates    []predicate.Event
}

var _ ent.Mutation = (*EventMutation)(nil)

// eventOption allows management of the mutation configuration using functional options.
type eventOption func(*EventMutation)

// newEventMutation creates new mutation for the Event entity.
func newEventMutation(c config, op Op, opts ...eventOption) *EventMutation {
	m := &EventMutation{
		config:        c,
		op:            op,
		typ:           TypeEvent,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withEventID sets the ID field of the mutation.
func withEventID(id int) eventOption {
	return func(m *EventMutation) {
		var (
			err   error
			once  sync.Once
			value *Event
		)
		m.oldValue = func(ctx context.Context) (*Event, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Event.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withEvent sets the old Event of the mutation.
func withEvent(node *Event) eventOption {
	return func(m *EventMutation) {
		m.oldValue = func(context.Context) (*Event, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m EventMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m EventMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Event entities.
func (m *EventMutation) SetID(id int) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *EventMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *EventMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Event.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetReviewID sets the "review_id" field.
func (m *EventMutation) SetReviewID(s string) {
	m.review = &s
}

// ReviewID returns the value of the "review_id" field in the mutation.
func (m *EventMutation) ReviewID() (r string, exists bool) {
	v := m.review
	if v == nil {
		return
	}
	return *v, true
}

// OldReviewID returns the old "review_id" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldReviewID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReviewID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReviewID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReviewID: %w", err)
	}
	return oldValue.ReviewID, nil
}

// ResetReviewID resets all changes to the "review_id" field.
func (m *EventMutation) ResetReviewID() {
	m.review = nil
}

// SetChannel sets the "channel" field.
func (m *EventMutation) SetChannel(s string) {
	m.channel = &s
}

// Channel returns the value of the "channel" field in the mutation.
func (m *EventMutation) Channel() (r string, exists bool) {
	v := m.channel
	if v == nil {
		return
	}
	return *v, true
}

// OldChannel returns the old "channel" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldChannel(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldChannel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldChannel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldChannel: %w", err)
	}
	return oldValue.Channel, nil
}

// ResetChannel resets all changes to the "channel" field.
func (m *EventMutation) ResetChannel() {
	m.channel = nil
}

// SetPayload sets the "payload" field.
func (m *EventMutation) SetPayload(value map[string]interface{}) {
	m.payload = &value
}

// Payload returns the value of the "payload" field in the mutation.
func (m *EventMutation) Payload() (r map[string]interface{}, exists bool) {
	v := m.payload
	if v == nil {
		return
	}
	return *v, true
}

// OldPayload returns the old "payload" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldPayload(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPayload is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPayload requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPayload: %w", err)
	}
	return oldValue.Payload, nil
}

// ResetPayload resets all changes to the "payload" field.
func (m *EventMutation) ResetPayload() {
	m.payload = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *EventMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *EventMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *EventMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearReview clears the "review" edge to the ReviewRecord entity.
func (m *EventMutation) ClearReview() {
	m.clearedreview = true
	m.clearedFields[event.FieldReviewID] = struct{}{}
}

// ReviewCleared reports if the "review" edge to the ReviewRecord entity was cleared.
func (m *EventMutation) ReviewCleared() bool {
	return m.clearedreview
}

// ReviewIDs returns the "review" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ReviewID instead. It exists only for internal usage by the builders.
func (m *EventMutation) ReviewIDs() (ids []string) {
	if id := m.review; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetReview resets all changes to the "review" edge.
func (m *EventMutation) ResetReview() {
	m.review = nil
	m.clearedreview = false
}

// Where appends a list predicates to the EventMutation builder.
func (m *EventMutation) Where(ps ...predicate.Event) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the EventMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *EventMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Event, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *EventMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *EventMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Event).
func (m *EventMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *EventMutation) Fields() []string {
	fields := make([]string, 0, 4)
	if m.review != nil {
		fields = append(fields, event.FieldReviewID)
	}
	if m.channel != nil {
		fields = append(fields, event.FieldChannel)
	}
	if m.payload != nil {
		fields = append(fields, event.FieldPayload)
	}
	if m.created_at != nil {
		fields = append(fields, event.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *EventMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case event.FieldReviewID:
		return m.ReviewID()
	case event.FieldChannel:
		return m.Channel()
	case event.FieldPayload:
		return m.Payload()
	case event.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *EventMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case event.FieldReviewID:
		return m.OldReviewID(ctx)
	case event.FieldChannel:
		return m.OldChannel(ctx)
	case event.FieldPayload:
		return m.OldPayload(ctx)
	case event.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Event field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *EventMutation) SetField(name string, value ent.Value) error {
	switch name {
	case event.FieldReviewID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReviewID(v)
		return nil
	case event.FieldChannel:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetChannel(v)
		return nil
	case event.FieldPayload:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPayload(v)
		return nil
	case event.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Event field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *EventMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *EventMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *EventMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Event numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *EventMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *EventMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *EventMutation) ClearField(name string) error {
	return fmt.Errorf("unknown Event nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *EventMutation) ResetField(name string) error {
	switch name {
	case event.FieldReviewID:
		m.ResetReviewID()
		return nil
	case event.FieldChannel:
		m.ResetChannel()
		return nil
	case event.FieldPayload:
		m.ResetPayload()
		return nil
	case event.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown Event field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *EventMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.review != nil {
		edges = append(edges, event.EdgeReview)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *EventMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case event.EdgeReview:
		if id := m.review; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *EventMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *EventMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *EventMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedreview {
		edges = append(edges, event.EdgeReview)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *EventMutation) EdgeCleared(name string) bool {
	switch name {
	case event.EdgeReview:
		return m.clearedreview
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *EventMutation) ClearEdge(name string) error {
	switch name {
	case event.EdgeReview:
		m.ClearReview()
		return nil
	}
	return fmt.Errorf("unknown Event unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *EventMutation) ResetEdge(name string) error {
	switch name {
	case event.EdgeReview:
		m.ResetReview()
		return nil
	}
	return fmt.Errorf("unknown Event edge %s", name)
}

// ReviewRecordMutation represents an operation that mutates the ReviewRecord nodes in the graph.
type ReviewRecordMutation struct {
	config
	op                  Op
	typ                 string
	id                  *string
	agent_id            *string
	status              *reviewrecord.Status
	review_result       *map[string]interface{}
	error_count         *int
	adderror_count      *int
	has_api_failures    *bool
	has_wrong_actions   *bool
	has_wrong_outputs   *bool
	error_message       *string
	reviewed_at         *time.Time
	created_at          *time.Time
	updated_at          *time.Time
	pod_id              *string
	last_interaction_at *time.Time
	clearedFields       map[string]struct{}
	events              map[int]struct{}
	removedevents       map[int]struct{}
	clearedevents       bool
	done                bool
	oldValue            func(context.Context) (*ReviewRecord, error)
	predicates          []predicate.ReviewRecord
}

var _ ent.Mutation = (*ReviewRecordMutation)(nil)

// reviewrecordOption allows management of the mutation configuration using functional options.
type reviewrecordOption func(*ReviewRecordMutation)

// newReviewRecordMutation creates new mutation for the ReviewRecord entity.
func newReviewRecordMutation(c config, op Op, opts ...reviewrecordOption) *ReviewRecordMutation {
	m := &ReviewRecordMutation{
		config:        c,
		op:            op,
		typ:           TypeReviewRecord,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withReviewRecordID sets the ID field of the mutation.
func withReviewRecordID(id string) reviewrecordOption {
	return func(m *ReviewRecordMutation) {
		var (
			err   error
			once  sync.Once
			value *ReviewRecord
		)
		m.oldValue = func(ctx context.Context) (*ReviewRecord, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ReviewRecord.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withReviewRecord sets the old ReviewRecord of the mutation.
func withReviewRecord(node *ReviewRecord) reviewrecordOption {
	return func(m *ReviewRecordMutation) {
		m.oldValue = func(context.Context) (*ReviewRecord, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ReviewRecordMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ReviewRecordMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of ReviewRecord entities.
func (m *ReviewRecordMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ReviewRecordMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ReviewRecordMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ReviewRecord.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetAgentID sets the "agent_id" field.
func (m *ReviewRecordMutation) SetAgentID(s string) {
	m.agent_id = &s
}

// AgentID returns the value of the "agent_id" field in the mutation.
func (m *ReviewRecordMutation) AgentID() (r string, exists bool) {
	v := m.agent_id
	if v == nil {
		return
	}
	return *v, true
}

// OldAgentID returns the old "agent_id" field's value of the ReviewRecord entity.
// If the ReviewRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReviewRecordMutation) OldAgentID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAgentID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAgentID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAgentID: %w", err)
	}
	return oldValue.AgentID, nil
}

// ClearAgentID clears the value of the "agent_id" field.
func (m *ReviewRecordMutation) ClearAgentID() {
	m.agent_id = nil
	m.clearedFields[reviewrecord.FieldAgentID] = struct{}{}
}

// AgentIDCleared returns if the "agent_id" field was cleared in this mutation.
func (m *ReviewRecordMutation) AgentIDCleared() bool {
	_, ok := m.clearedFields[reviewrecord.FieldAgentID]
	return ok
}

// ResetAgentID resets all changes to the "agent_id" field.
func (m *ReviewRecordMutation) ResetAgentID() {
	m.agent_id = nil
	delete(m.clearedFields, reviewrecord.FieldAgentID)
}

// SetStatus sets the "status" field.
func (m *ReviewRecordMutation) SetStatus(r reviewrecord.Status) {
	m.status = &r
}

// Status returns the value of the "status" field in the mutation.
func (m *ReviewRecordMutation) Status() (r reviewrecord.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the ReviewRecord entity.
// If the ReviewRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReviewRecordMutation) OldStatus(ctx context.Context) (v reviewrecord.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *ReviewRecordMutation) ResetStatus() {
	m.status = nil
}

// SetReviewResult sets the "review_result" field.
func (m *ReviewRecordMutation) SetReviewResult(value map[string]interface{}) {
	m.review_result = &value
}

// ReviewResult returns the value of the "review_result" field in the mutation.
func (m *ReviewRecordMutation) ReviewResult() (r map[string]interface{}, exists bool) {
	v := m.review_result
	if v == nil {
		return
	}
	return *v, true
}

// OldReviewResult returns the old "review_result" field's value of the ReviewRecord entity.
// If the ReviewRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReviewRecordMutation) OldReviewResult(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReviewResult is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReviewResult requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReviewResult: %w", err)
	}
	return oldValue.ReviewResult, nil
}

// ClearReviewResult clears the value of the "review_result" field.
func (m *ReviewRecordMutation) ClearReviewResult() {
	m.review_result = nil
	m.clearedFields[reviewrecord.FieldReviewResult] = struct{}{}
}

// ReviewResultCleared returns if the "review_result" field was cleared in this mutation.
func (m *ReviewRecordMutation) ReviewResultCleared() bool {
	_, ok := m.clearedFields[reviewrecord.FieldReviewResult]
	return ok
}

// ResetReviewResult resets all changes to the "review_result" field.
func (m *ReviewRecordMutation) ResetReviewResult() {
	m.review_result = nil
	delete(m.clearedFields, reviewrecord.FieldReviewResult)
}

// SetErrorCount sets the "error_count" field.
func (m *ReviewRecordMutation) SetErrorCount(i int) {
	m.error_count = &i
	m.adderror_count = nil
}

// ErrorCount returns the value of the "error_count" field in the mutation.
func (m *ReviewRecordMutation) ErrorCount() (r int, exists bool) {
	v := m.error_count
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorCount returns the old "error_count" field's value of the ReviewRecord entity.
// If the ReviewRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReviewRecordMutation) OldErrorCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorCount: %w", err)
	}
	return oldValue.ErrorCount, nil
}

// AddErrorCount adds i to the "error_count" field.
func (m *ReviewRecordMutation) AddErrorCount(i int) {
	if m.adderror_count != nil {
		*m.adderror_count += i
	} else {
		m.adderror_count = &i
	}
}

// AddedErrorCount returns the value that was added to the "error_count" field in this mutation.
func (m *ReviewRecordMutation) AddedErrorCount() (r int, exists bool) {
	v := m.adderror_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetErrorCount resets all changes to the "error_count" field.
func (m *ReviewRecordMutation) ResetErrorCount() {
	m.error_count = nil
	m.adderror_count = nil
}

// SetHasAPIFailures sets the "has_api_failures" field.
func (m *ReviewRecordMutation) SetHasAPIFailures(b bool) {
	m.has_api_failures = &b
}

// HasAPIFailures returns the value of the "has_api_failures" field in the mutation.
func (m *ReviewRecordMutation) HasAPIFailures() (r bool, exists bool) {
	v := m.has_api_failures
	if v == nil {
		return
	}
	return *v, true
}

// OldHasAPIFailures returns the old "has_api_failures" field's value of the ReviewRecord entity.
// If the ReviewRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReviewRecordMutation) OldHasAPIFailures(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldHasAPIFailures is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldHasAPIFailures requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldHasAPIFailures: %w", err)
	}
	return oldValue.HasAPIFailures, nil
}

// ResetHasAPIFailures resets all changes to the "has_api_failures" field.
func (m *ReviewRecordMutation) ResetHasAPIFailures() {
	m.has_api_failures = nil
}

// SetHasWrongActions sets the "has_wrong_actions" field.
func (m *ReviewRecordMutation) SetHasWrongActions(b bool) {
	m.has_wrong_actions = &b
}

// HasWrongActions returns the value of the "has_wrong_actions" field in the mutation.
func (m *ReviewRecordMutation) HasWrongActions() (r bool, exists bool) {
	v := m.has_wrong_actions
	if v == nil {
		return
	}
	return *v, true
}

// OldHasWrongActions returns the old "has_wrong_actions" field's value of the ReviewRecord entity.
// If the ReviewRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReviewRecordMutation) OldHasWrongActions(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldHasWrongActions is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldHasWrongActions requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldHasWrongActions: %w", err)
	}
	return oldValue.HasWrongActions, nil
}

// ResetHasWrongActions resets all changes to the "has_wrong_actions" field.
func (m *ReviewRecordMutation) ResetHasWrongActions() {
	m.has_wrong_actions = nil
}

// SetHasWrongOutputs sets the "has_wrong_outputs" field.
func (m *ReviewRecordMutation) SetHasWrongOutputs(b bool) {
	m.has_wrong_outputs = &b
}

// HasWrongOutputs returns the value of the "has_wrong_outputs" field in the mutation.
func (m *ReviewRecordMutation) HasWrongOutputs() (r bool, exists bool) {
	v := m.has_wrong_outputs
	if v == nil {
		return
	}
	return *v, true
}

// OldHasWrongOutputs returns the old "has_wrong_outputs" field's value of the ReviewRecord entity.
// If the ReviewRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReviewRecordMutation) OldHasWrongOutputs(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldHasWrongOutputs is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldHasWrongOutputs requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldHasWrongOutputs: %w", err)
	}
	return oldValue.HasWrongOutputs, nil
}

// ResetHasWrongOutputs resets all changes to the "has_wrong_outputs" field.
func (m *ReviewRecordMutation) ResetHasWrongOutputs() {
	m.has_wrong_outputs = nil
}

// SetErrorMessage sets the "error_message" field.
func (m *ReviewRecordMutation) SetErrorMessage(s string) {
	m.error_message = &s
}

// ErrorMessage returns the value of the "error_message" field in the mutation.
func (m *ReviewRecordMutation) ErrorMessage() (r string, exists bool) {
	v := m.error_message
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorMessage returns the old "error_message" field's value of the ReviewRecord entity.
// If the ReviewRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReviewRecordMutation) OldErrorMessage(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorMessage: %w", err)
	}
	return oldValue.ErrorMessage, nil
}

// ClearErrorMessage clears the value of the "error_message" field.
func (m *ReviewRecordMutation) ClearErrorMessage() {
	m.error_message = nil
	m.clearedFields[reviewrecord.FieldErrorMessage] = struct{}{}
}

// ErrorMessageCleared returns if the "error_message" field was cleared in this mutation.
func (m *ReviewRecordMutation) ErrorMessageCleared() bool {
	_, ok := m.clearedFields[reviewrecord.FieldErrorMessage]
	return ok
}

// ResetErrorMessage resets all changes to the "error_message" field.
func (m *ReviewRecordMutation) ResetErrorMessage() {
	m.error_message = nil
	delete(m.clearedFields, reviewrecord.FieldErrorMessage)
}

// SetReviewedAt sets the "reviewed_at" field.
func (m *ReviewRecordMutation) SetReviewedAt(t time.Time) {
	m.reviewed_at = &t
}

// ReviewedAt returns the value of the "reviewed_at" field in the mutation.
func (m *ReviewRecordMutation) ReviewedAt() (r time.Time, exists bool) {
	v := m.reviewed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldReviewedAt returns the old "reviewed_at" field's value of the ReviewRecord entity.
// If the ReviewRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReviewRecordMutation) OldReviewedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReviewedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReviewedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReviewedAt: %w", err)
	}
	return oldValue.ReviewedAt, nil
}

// ClearReviewedAt clears the value of the "reviewed_at" field.
func (m *ReviewRecordMutation) ClearReviewedAt() {
	m.reviewed_at = nil
	m.clearedFields[reviewrecord.FieldReviewedAt] = struct{}{}
}

// ReviewedAtCleared returns if the "reviewed_at" field was cleared in this mutation.
func (m *ReviewRecordMutation) ReviewedAtCleared() bool {
	_, ok := m.clearedFields[reviewrecord.FieldReviewedAt]
	return ok
}

// ResetReviewedAt resets all changes to the "reviewed_at" field.
func (m *ReviewRecordMutation) ResetReviewedAt() {
	m.reviewed_at = nil
	delete(m.clearedFields, reviewrecord.FieldReviewedAt)
}

// SetCreatedAt sets the "created_at" field.
func (m *ReviewRecordMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ReviewRecordMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the ReviewRecord entity.
// If the ReviewRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReviewRecordMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ReviewRecordMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *ReviewRecordMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *ReviewRecordMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the ReviewRecord entity.
// If the ReviewRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReviewRecordMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *ReviewRecordMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetPodID sets the "pod_id" field.
func (m *ReviewRecordMutation) SetPodID(s string) {
	m.pod_id = &s
}

// PodID returns the value of the "pod_id" field in the mutation.
func (m *ReviewRecordMutation) PodID() (r string, exists bool) {
	v := m.pod_id
	if v == nil {
		return
	}
	return *v, true
}

// OldPodID returns the old "pod_id" field's value of the ReviewRecord entity.
// If the ReviewRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReviewRecordMutation) OldPodID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPodID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPodID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPodID: %w", err)
	}
	return oldValue.PodID, nil
}

// ClearPodID clears the value of the "pod_id" field.
func (m *ReviewRecordMutation) ClearPodID() {
	m.pod_id = nil
	m.clearedFields[reviewrecord.FieldPodID] = struct{}{}
}

// PodIDCleared returns if the "pod_id" field was cleared in this mutation.
func (m *ReviewRecordMutation) PodIDCleared() bool {
	_, ok := m.clearedFields[reviewrecord.FieldPodID]
	return ok
}

// ResetPodID resets all changes to the "pod_id" field.
func (m *ReviewRecordMutation) ResetPodID() {
	m.pod_id = nil
	delete(m.clearedFields, reviewrecord.FieldPodID)
}

// SetLastInteractionAt sets the "last_interaction_at" field.
func (m *ReviewRecordMutation) SetLastInteractionAt(t time.Time) {
	m.last_interaction_at = &t
}

// LastInteractionAt returns the value of the "last_interaction_at" field in the mutation.
func (m *ReviewRecordMutation) LastInteractionAt() (r time.Time, exists bool) {
	v := m.last_interaction_at
	if v == nil {
		return
	}
	return *v, true
}

// OldLastInteractionAt returns the old "last_interaction_at" field's value of the ReviewRecord entity.
// If the ReviewRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReviewRecordMutation) OldLastInteractionAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastInteractionAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastInteractionAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastInteractionAt: %w", err)
	}
	return oldValue.LastInteractionAt, nil
}

// ClearLastInteractionAt clears the value of the "last_interaction_at" field.
func (m *ReviewRecordMutation) ClearLastInteractionAt() {
	m.last_interaction_at = nil
	m.clearedFields[reviewrecord.FieldLastInteractionAt] = struct{}{}
}

// LastInteractionAtCleared returns if the "last_interaction_at" field was cleared in this mutation.
func (m *ReviewRecordMutation) LastInteractionAtCleared() bool {
	_, ok := m.clearedFields[reviewrecord.FieldLastInteractionAt]
	return ok
}

// ResetLastInteractionAt resets all changes to the "last_interaction_at" field.
func (m *ReviewRecordMutation) ResetLastInteractionAt() {
	m.last_interaction_at = nil
	delete(m.clearedFields, reviewrecord.FieldLastInteractionAt)
}

// AddEventIDs adds the "events" edge to the Event entity by ids.
func (m *ReviewRecordMutation) AddEventIDs(ids ...int) {
	if m.events == nil {
		m.events = make(map[int]struct{})
	}
	for i := range ids {
		m.events[ids[i]] = struct{}{}
	}
}

// ClearEvents clears the "events" edge to the Event entity.
func (m *ReviewRecordMutation) ClearEvents() {
	m.clearedevents = true
}

// EventsCleared reports if the "events" edge to the Event entity was cleared.
func (m *ReviewRecordMutation) EventsCleared() bool {
	return m.clearedevents
}

// RemoveEventIDs removes the "events" edge to the Event entity by IDs.
func (m *ReviewRecordMutation) RemoveEventIDs(ids ...int) {
	if m.removedevents == nil {
		m.removedevents = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.events, ids[i])
		m.removedevents[ids[i]] = struct{}{}
	}
}

// RemovedEvents returns the removed IDs of the "events" edge to the Event entity.
func (m *ReviewRecordMutation) RemovedEventsIDs() (ids []int) {
	for id := range m.removedevents {
		ids = append(ids, id)
	}
	return
}

// EventsIDs returns the "events" edge IDs in the mutation.
func (m *ReviewRecordMutation) EventsIDs() (ids []int) {
	for id := range m.events {
		ids = append(ids, id)
	}
	return
}

// ResetEvents resets all changes to the "events" edge.
func (m *ReviewRecordMutation) ResetEvents() {
	m.events = nil
	m.clearedevents = false
	m.removedevents = nil
}

// Where appends a list predicates to the ReviewRecordMutation builder.
func (m *ReviewRecordMutation) Where(ps ...predicate.ReviewRecord) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ReviewRecordMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ReviewRecordMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ReviewRecord, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ReviewRecordMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ReviewRecordMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ReviewRecord).
func (m *ReviewRecordMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ReviewRecordMutation) Fields() []string {
	fields := make([]string, 0, 13)
	if m.agent_id != nil {
		fields = append(fields, reviewrecord.FieldAgentID)
	}
	if m.status != nil {
		fields = append(fields, reviewrecord.FieldStatus)
	}
	if m.review_result != nil {
		fields = append(fields, reviewrecord.FieldReviewResult)
	}
	if m.error_count != nil {
		fields = append(fields, reviewrecord.FieldErrorCount)
	}
	if m.has_api_failures != nil {
		fields = append(fields, reviewrecord.FieldHasAPIFailures)
	}
	if m.has_wrong_actions != nil {
		fields = append(fields, reviewrecord.FieldHasWrongActions)
	}
	if m.has_wrong_outputs != nil {
		fields = append(fields, reviewrecord.FieldHasWrongOutputs)
	}
	if m.error_message != nil {
		fields = append(fields, reviewrecord.FieldErrorMessage)
	}
	if m.reviewed_at != nil {
		fields = append(fields, reviewrecord.FieldReviewedAt)
	}
	if m.created_at != nil {
		fields = append(fields, reviewrecord.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, reviewrecord.FieldUpdatedAt)
	}
	if m.pod_id != nil {
		fields = append(fields, reviewrecord.FieldPodID)
	}
	if m.last_interaction_at != nil {
		fields = append(fields, reviewrecord.FieldLastInteractionAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ReviewRecordMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case reviewrecord.FieldAgentID:
		return m.AgentID()
	case reviewrecord.FieldStatus:
		return m.Status()
	case reviewrecord.FieldReviewResult:
		return m.ReviewResult()
	case reviewrecord.FieldErrorCount:
		return m.ErrorCount()
	case reviewrecord.FieldHasAPIFailures:
		return m.HasAPIFailures()
	case reviewrecord.FieldHasWrongActions:
		return m.HasWrongActions()
	case reviewrecord.FieldHasWrongOutputs:
		return m.HasWrongOutputs()
	case reviewrecord.FieldErrorMessage:
		return m.ErrorMessage()
	case reviewrecord.FieldReviewedAt:
		return m.ReviewedAt()
	case reviewrecord.FieldCreatedAt:
		return m.CreatedAt()
	case reviewrecord.FieldUpdatedAt:
		return m.UpdatedAt()
	case reviewrecord.FieldPodID:
		return m.PodID()
	case reviewrecord.FieldLastInteractionAt:
		return m.LastInteractionAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ReviewRecordMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case reviewrecord.FieldAgentID:
		return m.OldAgentID(ctx)
	case reviewrecord.FieldStatus:
		return m.OldStatus(ctx)
	case reviewrecord.FieldReviewResult:
		return m.OldReviewResult(ctx)
	case reviewrecord.FieldErrorCount:
		return m.OldErrorCount(ctx)
	case reviewrecord.FieldHasAPIFailures:
		return m.OldHasAPIFailures(ctx)
	case reviewrecord.FieldHasWrongActions:
		return m.OldHasWrongActions(ctx)
	case reviewrecord.FieldHasWrongOutputs:
		return m.OldHasWrongOutputs(ctx)
	case reviewrecord.FieldErrorMessage:
		return m.OldErrorMessage(ctx)
	case reviewrecord.FieldReviewedAt:
		return m.OldReviewedAt(ctx)
	case reviewrecord.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case reviewrecord.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case reviewrecord.FieldPodID:
		return m.OldPodID(ctx)
	case reviewrecord.FieldLastInteractionAt:
		return m.OldLastInteractionAt(ctx)
	}
	return nil, fmt.Errorf("unknown ReviewRecord field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ReviewRecordMutation) SetField(name string, value ent.Value) error {
	switch name {
	case reviewrecord.FieldAgentID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAgentID(v)
		return nil
	case reviewrecord.FieldStatus:
		v, ok := value.(reviewrecord.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case reviewrecord.FieldReviewResult:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReviewResult(v)
		return nil
	case reviewrecord.FieldErrorCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorCount(v)
		return nil
	case reviewrecord.FieldHasAPIFailures:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetHasAPIFailures(v)
		return nil
	case reviewrecord.FieldHasWrongActions:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetHasWrongActions(v)
		return nil
	case reviewrecord.FieldHasWrongOutputs:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetHasWrongOutputs(v)
		return nil
	case reviewrecord.FieldErrorMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorMessage(v)
		return nil
	case reviewrecord.FieldReviewedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReviewedAt(v)
		return nil
	case reviewrecord.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case reviewrecord.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case reviewrecord.FieldPodID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPodID(v)
		return nil
	case reviewrecord.FieldLastInteractionAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastInteractionAt(v)
		return nil
	}
	return fmt.Errorf("unknown ReviewRecord field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ReviewRecordMutation) AddedFields() []string {
	var fields []string
	if m.adderror_count != nil {
		fields = append(fields, reviewrecord.FieldErrorCount)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ReviewRecordMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case reviewrecord.FieldErrorCount:
		return m.AddedErrorCount()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ReviewRecordMutation) AddField(name string, value ent.Value) error {
	switch name {
	case reviewrecord.FieldErrorCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddErrorCount(v)
		return nil
	}
	return fmt.Errorf("unknown ReviewRecord numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ReviewRecordMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(reviewrecord.FieldAgentID) {
		fields = append(fields, reviewrecord.FieldAgentID)
	}
	if m.FieldCleared(reviewrecord.FieldReviewResult) {
		fields = append(fields, reviewrecord.FieldReviewResult)
	}
	if m.FieldCleared(reviewrecord.FieldErrorMessage) {
		fields = append(fields, reviewrecord.FieldErrorMessage)
	}
	if m.FieldCleared(reviewrecord.FieldReviewedAt) {
		fields = append(fields, reviewrecord.FieldReviewedAt)
	}
	if m.FieldCleared(reviewrecord.FieldPodID) {
		fields = append(fields, reviewrecord.FieldPodID)
	}
	if m.FieldCleared(reviewrecord.FieldLastInteractionAt) {
		fields = append(fields, reviewrecord.FieldLastInteractionAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ReviewRecordMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ReviewRecordMutation) ClearField(name string) error {
	switch name {
	case reviewrecord.FieldAgentID:
		m.ClearAgentID()
		return nil
	case reviewrecord.FieldReviewResult:
		m.ClearReviewResult()
		return nil
	case reviewrecord.FieldErrorMessage:
		m.ClearErrorMessage()
		return nil
	case reviewrecord.FieldReviewedAt:
		m.ClearReviewedAt()
		return nil
	case reviewrecord.FieldPodID:
		m.ClearPodID()
		return nil
	case reviewrecord.FieldLastInteractionAt:
		m.ClearLastInteractionAt()
		return nil
	}
	return fmt.Errorf("unknown ReviewRecord nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ReviewRecordMutation) ResetField(name string) error {
	switch name {
	case reviewrecord.FieldAgentID:
		m.ResetAgentID()
		return nil
	case reviewrecord.FieldStatus:
		m.ResetStatus()
		return nil
	case reviewrecord.FieldReviewResult:
		m.ResetReviewResult()
		return nil
	case reviewrecord.FieldErrorCount:
		m.ResetErrorCount()
		return nil
	case reviewrecord.FieldHasAPIFailures:
		m.ResetHasAPIFailures()
		return nil
	case reviewrecord.FieldHasWrongActions:
		m.ResetHasWrongActions()
		return nil
	case reviewrecord.FieldHasWrongOutputs:
		m.ResetHasWrongOutputs()
		return nil
	case reviewrecord.FieldErrorMessage:
		m.ResetErrorMessage()
		return nil
	case reviewrecord.FieldReviewedAt:
		m.ResetReviewedAt()
		return nil
	case reviewrecord.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case reviewrecord.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case reviewrecord.FieldPodID:
		m.ResetPodID()
		return nil
	case reviewrecord.FieldLastInteractionAt:
		m.ResetLastInteractionAt()
		return nil
	}
	return fmt.Errorf("unknown ReviewRecord field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ReviewRecordMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.events != nil {
		edges = append(edges, reviewrecord.EdgeEvents)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ReviewRecordMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case reviewrecord.EdgeEvents:
		ids := make([]ent.Value, 0, len(m.events))
		for id := range m.events {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ReviewRecordMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	if m.removedevents != nil {
		edges = append(edges, reviewrecord.EdgeEvents)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ReviewRecordMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case reviewrecord.EdgeEvents:
		ids := make([]ent.Value, 0, len(m.removedevents))
		for id := range m.removedevents {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ReviewRecordMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedevents {
		edges = append(edges, reviewrecord.EdgeEvents)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ReviewRecordMutation) EdgeCleared(name string) bool {
	switch name {
	case reviewrecord.EdgeEvents:
		return m.clearedevents
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ReviewRecordMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown ReviewRecord unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ReviewRecordMutation) ResetEdge(name string) error {
	switch name {
	case reviewrecord.EdgeEvents:
		m.ResetEvents()
		return nil
	}
	return fmt.Errorf("unknown ReviewRecord edge %s", name)
}
