package queue

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/voiceops/callaudit/ent"
	"github.com/voiceops/callaudit/ent/reviewrecord"
	testdb "github.com/voiceops/callaudit/test/database"
)

func createProcessing(t *testing.T, client *ent.Client, callLogID, podID string, lastInteraction time.Time) {
	t.Helper()
	err := client.ReviewRecord.Create().
		SetID(callLogID).
		SetStatus(reviewrecord.StatusProcessing).
		SetPodID(podID).
		SetLastInteractionAt(lastInteraction).
		Exec(context.Background())
	require.NoError(t, err)
}

func TestRequeueOrphans_StaleHeartbeat(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()

	cfg := testQueueConfig()
	cfg.OrphanThreshold = time.Minute

	createProcessing(t, client.Client, "stale", "pod-gone", time.Now().Add(-10*time.Minute))
	createProcessing(t, client.Client, "fresh", "pod-1", time.Now())

	pool := NewWorkerPool("pod-1", client.Client, cfg, &recordingExecutor{})
	require.NoError(t, pool.requeueOrphans(ctx))

	stale, err := client.ReviewRecord.Get(ctx, "stale")
	require.NoError(t, err)
	assert.Equal(t, reviewrecord.StatusPending, stale.Status)
	assert.Nil(t, stale.PodID)
	assert.Nil(t, stale.LastInteractionAt)

	fresh, err := client.ReviewRecord.Get(ctx, "fresh")
	require.NoError(t, err)
	assert.Equal(t, reviewrecord.StatusProcessing, fresh.Status)

	health := pool.Health()
	assert.Equal(t, 1, health.OrphansRequeued)
	assert.False(t, health.LastOrphanScan.IsZero())
}

func TestRequeueOrphans_TerminalRecordsUntouched(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()

	cfg := testQueueConfig()
	cfg.OrphanThreshold = time.Minute

	// Completed records keep their state even with a stale heartbeat field.
	err := client.ReviewRecord.Create().
		SetID("done").
		SetStatus(reviewrecord.StatusCompleted).
		SetLastInteractionAt(time.Now().Add(-time.Hour)).
		Exec(ctx)
	require.NoError(t, err)

	pool := NewWorkerPool("pod-1", client.Client, cfg, &recordingExecutor{})
	require.NoError(t, pool.requeueOrphans(ctx))

	record, err := client.ReviewRecord.Get(ctx, "done")
	require.NoError(t, err)
	assert.Equal(t, reviewrecord.StatusCompleted, record.Status)
}

func TestRequeueStartupOrphans_OnlyOwnPod(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()

	createProcessing(t, client.Client, "mine", "pod-1", time.Now())
	createProcessing(t, client.Client, "other", "pod-2", time.Now())

	require.NoError(t, RequeueStartupOrphans(ctx, client.Client, "pod-1"))

	mine, err := client.ReviewRecord.Get(ctx, "mine")
	require.NoError(t, err)
	assert.Equal(t, reviewrecord.StatusPending, mine.Status)
	assert.Nil(t, mine.PodID)

	other, err := client.ReviewRecord.Get(ctx, "other")
	require.NoError(t, err)
	assert.Equal(t, reviewrecord.StatusProcessing, other.Status)
}

func TestRequeueStartupOrphans_NoOrphans(t *testing.T) {
	client := testdb.NewTestClient(t)
	require.NoError(t, RequeueStartupOrphans(context.Background(), client.Client, "pod-1"))
}
