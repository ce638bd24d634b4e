package services

import (
	"context"
	"fmt"
	"time"

	"github.com/voiceops/callaudit/ent"
	"github.com/voiceops/callaudit/ent/event"
	"github.com/voiceops/callaudit/pkg/events"
)

// EventService manages persisted WebSocket events. The publisher writes
// rows directly (it needs the INSERT inside the pg_notify transaction);
// this service covers catchup reads and cleanup.
type EventService struct {
	client *ent.Client
}

// NewEventService creates a new EventService
func NewEventService(client *ent.Client) *EventService {
	return &EventService{client: client}
}

// GetEventsSince retrieves events on a channel after the given ID.
func (s *EventService) GetEventsSince(ctx context.Context, channel string, sinceID int) ([]*ent.Event, error) {
	evts, err := s.client.Event.Query().
		Where(
			event.ChannelEQ(channel),
			event.IDGT(sinceID),
		).
		Order(ent.Asc(event.FieldID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get events: %w", err)
	}
	return evts, nil
}

// GetCatchupEvents implements events.CatchupQuerier for the
// ConnectionManager's catchup protocol.
func (s *EventService) GetCatchupEvents(ctx context.Context, channel string, sinceID, limit int) ([]events.CatchupEvent, error) {
	evts, err := s.client.Event.Query().
		Where(
			event.ChannelEQ(channel),
			event.IDGT(sinceID),
		).
		Order(ent.Asc(event.FieldID)).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query catchup events: %w", err)
	}

	result := make([]events.CatchupEvent, 0, len(evts))
	for _, evt := range evts {
		result = append(result, events.CatchupEvent{
			ID:      evt.ID,
			Payload: evt.Payload,
		})
	}
	return result, nil
}

// CleanupReviewEvents removes all events for a review record.
func (s *EventService) CleanupReviewEvents(ctx context.Context, callLogID string) (int, error) {
	writeCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	count, err := s.client.Event.Delete().
		Where(event.ReviewIDEQ(callLogID)).
		Exec(writeCtx)
	if err != nil {
		return 0, fmt.Errorf("failed to cleanup review events: %w", err)
	}
	return count, nil
}

// CleanupExpiredEvents removes events older than the TTL.
func (s *EventService) CleanupExpiredEvents(ctx context.Context, ttl time.Duration) (int, error) {
	cutoff := time.Now().Add(-ttl)

	writeCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	count, err := s.client.Event.Delete().
		Where(event.CreatedAtLT(cutoff)).
		Exec(writeCtx)
	if err != nil {
		return 0, fmt.Errorf("failed to cleanup expired events: %w", err)
	}
	return count, nil
}
