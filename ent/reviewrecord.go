// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/voiceops/callaudit/ent/reviewrecord"
)

// ReviewRecord is the model entity for the ReviewRecord schema.
type ReviewRecord struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// Voice agent that handled the call
	AgentID string `json:"agent_id,omitempty"`
	// Status holds the value of the "status" field.
	Status reviewrecord.Status `json:"status,omitempty"`
	// Full judge verdict (completed records only)
	ReviewResult map[string]interface{} `json:"review_result,omitempty"`
	// ErrorCount holds the value of the "error_count" field.
	ErrorCount int `json:"error_count,omitempty"`
	// HasAPIFailures holds the value of the "has_api_failures" field.
	HasAPIFailures bool `json:"has_api_failures,omitempty"`
	// HasWrongActions holds the value of the "has_wrong_actions" field.
	HasWrongActions bool `json:"has_wrong_actions,omitempty"`
	// HasWrongOutputs holds the value of the "has_wrong_outputs" field.
	HasWrongOutputs bool `json:"has_wrong_outputs,omitempty"`
	// Failure reason (failed records only)
	ErrorMessage *string `json:"error_message,omitempty"`
	// When the record reached a terminal state
	ReviewedAt *time.Time `json:"reviewed_at,omitempty"`
	// When the review was queued
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// For multi-replica coordination
	PodID *string `json:"pod_id,omitempty"`
	// Worker heartbeat, for orphan detection
	LastInteractionAt *time.Time `json:"last_interaction_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the ReviewRecordQuery when eager-loading is set.
	Edges        ReviewRecordEdges `json:"edges"`
	selectValues sql.SelectValues
}

// ReviewRecordEdges holds the relations/edges for other nodes in the graph.
type ReviewRecordEdges struct {
	// Events holds the value of the events edge.
	Events []*Event `json:"events,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// EventsOrErr returns the Events value or an error if the edge
// was not loaded in eager-loading.
func (e ReviewRecordEdges) EventsOrErr() ([]*Event, error) {
	if e.loadedTypes[0] {
		return e.Events, nil
	}
	return nil, &NotLoadedError{edge: "events"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ReviewRecord) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case reviewrecord.FieldReviewResult:
			values[i] = new([]byte)
		case reviewrecord.FieldHasAPIFailures, reviewrecord.FieldHasWrongActions, reviewrecord.FieldHasWrongOutputs:
			values[i] = new(sql.NullBool)
		case reviewrecord.FieldErrorCount:
			values[i] = new(sql.NullInt64)
		case reviewrecord.FieldID, reviewrecord.FieldAgentID, reviewrecord.FieldStatus, reviewrecord.FieldErrorMessage, reviewrecord.FieldPodID:
			values[i] = new(sql.NullString)
		case reviewrecord.FieldReviewedAt, reviewrecord.FieldCreatedAt, reviewrecord.FieldUpdatedAt, reviewrecord.FieldLastInteractionAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ReviewRecord fields.
func (_m *ReviewRecord) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case reviewrecord.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case reviewrecord.FieldAgentID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field agent_id", values[i])
			} else if value.Valid {
				_m.AgentID = value.String
			}
		case reviewrecord.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = reviewrecord.Status(value.String)
			}
		case reviewrecord.FieldReviewResult:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field review_result", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.ReviewResult); err != nil {
					return fmt.Errorf("unmarshal field review_result: %w", err)
				}
			}
		case reviewrecord.FieldErrorCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field error_count", values[i])
			} else if value.Valid {
				_m.ErrorCount = int(value.Int64)
			}
		case reviewrecord.FieldHasAPIFailures:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field has_api_failures", values[i])
			} else if value.Valid {
				_m.HasAPIFailures = value.Bool
			}
		case reviewrecord.FieldHasWrongActions:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field has_wrong_actions", values[i])
			} else if value.Valid {
				_m.HasWrongActions = value.Bool
			}
		case reviewrecord.FieldHasWrongOutputs:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field has_wrong_outputs", values[i])
			} else if value.Valid {
				_m.HasWrongOutputs = value.Bool
			}
		case reviewrecord.FieldErrorMessage:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field error_message", values[i])
			} else if value.Valid {
				_m.ErrorMessage = new(string)
				*_m.ErrorMessage = value.String
			}
		case reviewrecord.FieldReviewedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field reviewed_at", values[i])
			} else if value.Valid {
				_m.ReviewedAt = new(time.Time)
				*_m.ReviewedAt = value.Time
			}
		case reviewrecord.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case reviewrecord.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		case reviewrecord.FieldPodID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field pod_id", values[i])
			} else if value.Valid {
				_m.PodID = new(string)
				*_m.PodID = value.String
			}
		case reviewrecord.FieldLastInteractionAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field last_interaction_at", values[i])
			} else if value.Valid {
				_m.LastInteractionAt = new(time.Time)
				*_m.LastInteractionAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the ReviewRecord.
// This includes values selected through modifiers, order, etc.
func (_m *ReviewRecord) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryEvents queries the "events" edge of the ReviewRecord entity.
func (_m *ReviewRecord) QueryEvents() *EventQuery {
	return NewReviewRecordClient(_m.config).QueryEvents(_m)
}

// Update returns a builder for updating this ReviewRecord.
// Note that you need to call ReviewRecord.Unwrap() before calling this method if this ReviewRecord
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ReviewRecord) Update() *ReviewRecordUpdateOne {
	return NewReviewRecordClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ReviewRecord entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ReviewRecord) Unwrap() *ReviewRecord {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: ReviewRecord is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ReviewRecord) String() string {
	var builder strings.Builder
	builder.WriteString("ReviewRecord(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("agent_id=")
	builder.WriteString(_m.AgentID)
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	builder.WriteString("review_result=")
	builder.WriteString(fmt.Sprintf("%v", _m.ReviewResult))
	builder.WriteString(", ")
	builder.WriteString("error_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.ErrorCount))
	builder.WriteString(", ")
	builder.WriteString("has_api_failures=")
	builder.WriteString(fmt.Sprintf("%v", _m.HasAPIFailures))
	builder.WriteString(", ")
	builder.WriteString("has_wrong_actions=")
	builder.WriteString(fmt.Sprintf("%v", _m.HasWrongActions))
	builder.WriteString(", ")
	builder.WriteString("has_wrong_outputs=")
	builder.WriteString(fmt.Sprintf("%v", _m.HasWrongOutputs))
	builder.WriteString(", ")
	if v := _m.ErrorMessage; v != nil {
		builder.WriteString("error_message=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.ReviewedAt; v != nil {
		builder.WriteString("reviewed_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	if v := _m.PodID; v != nil {
		builder.WriteString("pod_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.LastInteractionAt; v != nil {
		builder.WriteString("last_interaction_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteByte(')')
	return builder.String()
}

// ReviewRecords is a parsable slice of ReviewRecord.
type ReviewRecords []*ReviewRecord
