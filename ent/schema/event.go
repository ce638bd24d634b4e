package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Event holds the schema definition for persisted WebSocket events.
// Rows are written by the publisher inside the same transaction as the
// pg_notify, so catchup queries see exactly the notified events.
type Event struct {
	ent.Schema
}

// Fields of the Event.
func (Event) Fields() []ent.Field {
	return []ent.Field{
		// Autoincrement bigint ID doubles as the catchup cursor.
		field.Int("id").
			Unique().
			Immutable(),
		field.String("review_id").
			Immutable().
			Comment("Owning review record (call_log_id)"),
		field.String("channel").
			Comment("NOTIFY channel the event was broadcast on"),
		field.JSON("payload", map[string]interface{}{}),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the Event.
func (Event) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("review", ReviewRecord.Type).
			Ref("events").
			Field("review_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the Event.
func (Event) Indexes() []ent.Index {
	return []ent.Index{
		// Catchup query: WHERE channel = $1 AND id > $2 ORDER BY id
		index.Fields("channel", "id"),
		index.Fields("review_id"),
	}
}
