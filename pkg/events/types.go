// Package events provides real-time review status delivery via WebSocket
// and PostgreSQL NOTIFY/LISTEN for cross-pod distribution.
//
// Every review state transition produces one review.status event. The
// event is persisted to the events table and broadcast via pg_notify in
// the same transaction, so subscribers that reconnect can catch up from
// the table without missing transitions. A transient copy goes to the
// global reviews channel for list views.
package events

// Persistent event types (stored in DB + NOTIFY).
const (
	// Review lifecycle — one event per state transition.
	EventTypeReviewStatus = "review.status"
)

// GlobalReviewsChannel is the channel for review-level status events.
// Dashboard list pages subscribe to this for real-time updates.
const GlobalReviewsChannel = "reviews"

// ReviewChannel returns the channel name for a specific call's review
// events. Format: "review:{call_log_id}"
func ReviewChannel(callLogID string) string {
	return "review:" + callLogID
}

// ClientMessage is the JSON structure for client → server WebSocket messages.
type ClientMessage struct {
	Action      string `json:"action"`                  // "subscribe", "unsubscribe", "catchup", "ping"
	Channel     string `json:"channel,omitempty"`       // Channel name (e.g., "review:call-123")
	LastEventID *int   `json:"last_event_id,omitempty"` // For catchup
}
