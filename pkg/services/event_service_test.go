package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/voiceops/callaudit/ent"
	"github.com/voiceops/callaudit/pkg/events"
	testdb "github.com/voiceops/callaudit/test/database"
)

func insertEvent(t *testing.T, client *ent.Client, reviewID, channel string, createdAt time.Time) *ent.Event {
	t.Helper()
	evt, err := client.Event.Create().
		SetReviewID(reviewID).
		SetChannel(channel).
		SetPayload(map[string]any{"type": events.EventTypeReviewStatus, "call_log_id": reviewID}).
		SetCreatedAt(createdAt).
		Save(context.Background())
	require.NoError(t, err)
	return evt
}

func setupEventFixtures(t *testing.T) (*ent.Client, *EventService) {
	client := testdb.NewTestClient(t)
	svc := NewReviewService(client.Client)
	require.NoError(t, svc.UpsertPending(context.Background(), "call-1", ""))
	require.NoError(t, svc.UpsertPending(context.Background(), "call-2", ""))
	return client.Client, NewEventService(client.Client)
}

func TestGetEventsSince(t *testing.T) {
	client, svc := setupEventFixtures(t)
	ctx := context.Background()

	first := insertEvent(t, client, "call-1", events.ReviewChannel("call-1"), time.Now())
	second := insertEvent(t, client, "call-1", events.ReviewChannel("call-1"), time.Now())
	insertEvent(t, client, "call-2", events.ReviewChannel("call-2"), time.Now())

	evts, err := svc.GetEventsSince(ctx, events.ReviewChannel("call-1"), 0)
	require.NoError(t, err)
	require.Len(t, evts, 2)
	assert.Equal(t, first.ID, evts[0].ID)
	assert.Equal(t, second.ID, evts[1].ID)

	after, err := svc.GetEventsSince(ctx, events.ReviewChannel("call-1"), first.ID)
	require.NoError(t, err)
	require.Len(t, after, 1)
	assert.Equal(t, second.ID, after[0].ID)
}

func TestGetCatchupEvents(t *testing.T) {
	client, svc := setupEventFixtures(t)
	ctx := context.Background()

	channel := events.ReviewChannel("call-1")
	var ids []int
	for i := 0; i < 5; i++ {
		evt := insertEvent(t, client, "call-1", channel, time.Now())
		ids = append(ids, evt.ID)
	}

	caught, err := svc.GetCatchupEvents(ctx, channel, ids[1], 2)
	require.NoError(t, err)
	require.Len(t, caught, 2)
	assert.Equal(t, ids[2], caught[0].ID)
	assert.Equal(t, ids[3], caught[1].ID)
	assert.Equal(t, "call-1", caught[0].Payload["call_log_id"])
}

func TestCleanupReviewEvents(t *testing.T) {
	client, svc := setupEventFixtures(t)
	ctx := context.Background()

	insertEvent(t, client, "call-1", events.ReviewChannel("call-1"), time.Now())
	insertEvent(t, client, "call-1", events.ReviewChannel("call-1"), time.Now())
	insertEvent(t, client, "call-2", events.ReviewChannel("call-2"), time.Now())

	count, err := svc.CleanupReviewEvents(ctx, "call-1")
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	remaining, err := client.Event.Query().Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, remaining)
}

func TestCleanupExpiredEvents(t *testing.T) {
	client, svc := setupEventFixtures(t)
	ctx := context.Background()

	insertEvent(t, client, "call-1", events.ReviewChannel("call-1"), time.Now().Add(-48*time.Hour))
	insertEvent(t, client, "call-1", events.ReviewChannel("call-1"), time.Now())

	count, err := svc.CleanupExpiredEvents(ctx, 24*time.Hour)
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	remaining, err := client.Event.Query().Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, remaining)
}
