package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ReviewRecord holds the schema definition for the ReviewRecord entity:
// one row per reviewed call, keyed by the call log ID.
type ReviewRecord struct {
	ent.Schema
}

// Fields of the ReviewRecord.
func (ReviewRecord) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("call_log_id").
			Unique().
			Immutable(),
		field.String("agent_id").
			Optional().
			Comment("Voice agent that handled the call"),
		field.Enum("status").
			Values("pending", "processing", "completed", "failed").
			Default("pending"),
		field.JSON("review_result", map[string]interface{}{}).
			Optional().
			Comment("Full judge verdict (completed records only)"),
		field.Int("error_count").
			Default(0),
		field.Bool("has_api_failures").
			Default(false),
		field.Bool("has_wrong_actions").
			Default(false),
		field.Bool("has_wrong_outputs").
			Default(false),
		field.String("error_message").
			Optional().
			Nillable().
			Comment("Failure reason (failed records only)"),
		field.Time("reviewed_at").
			Optional().
			Nillable().
			Comment("When the record reached a terminal state"),
		field.Time("created_at").
			Default(time.Now).
			Comment("When the review was queued"),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
		field.String("pod_id").
			Optional().
			Nillable().
			Comment("For multi-replica coordination"),
		field.Time("last_interaction_at").
			Optional().
			Nillable().
			Comment("Worker heartbeat, for orphan detection"),
	}
}

// Edges of the ReviewRecord.
func (ReviewRecord) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("events", Event.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the ReviewRecord.
func (ReviewRecord) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("status"),
		index.Fields("agent_id"),

		// Claim query ordering and orphan sweep
		index.Fields("status", "created_at"),
		index.Fields("status", "last_interaction_at"),
	}
}
