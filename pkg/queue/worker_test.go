package queue

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/voiceops/callaudit/ent"
	"github.com/voiceops/callaudit/ent/reviewrecord"
	"github.com/voiceops/callaudit/pkg/config"
	testdb "github.com/voiceops/callaudit/test/database"
)

// recordingExecutor captures executed records and returns a canned result.
type recordingExecutor struct {
	mu       sync.Mutex
	executed []string
	result   *ExecutionResult
	block    chan struct{} // when non-nil, Execute blocks until closed
}

func (e *recordingExecutor) Execute(ctx context.Context, record *ent.ReviewRecord) *ExecutionResult {
	e.mu.Lock()
	e.executed = append(e.executed, record.ID)
	e.mu.Unlock()

	if e.block != nil {
		select {
		case <-e.block:
		case <-ctx.Done():
		}
	}

	if e.result != nil {
		return e.result
	}
	return &ExecutionResult{Status: reviewrecord.StatusCompleted}
}

func (e *recordingExecutor) executedIDs() []string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return append([]string(nil), e.executed...)
}

// noopRegistry satisfies ReviewRegistry for direct Worker tests.
type noopRegistry struct{}

func (noopRegistry) RegisterReview(string, context.CancelFunc) {}
func (noopRegistry) UnregisterReview(string)                   {}

func testQueueConfig() *config.QueueConfig {
	cfg := config.DefaultQueueConfig()
	cfg.WorkerCount = 1
	cfg.PollInterval = 50 * time.Millisecond
	cfg.PollIntervalJitter = 0
	cfg.ReviewTimeout = 10 * time.Second
	cfg.HeartbeatInterval = 50 * time.Millisecond
	return cfg
}

func createPending(t *testing.T, client *ent.Client, callLogID string, createdAt time.Time) {
	t.Helper()
	err := client.ReviewRecord.Create().
		SetID(callLogID).
		SetStatus(reviewrecord.StatusPending).
		SetCreatedAt(createdAt).
		Exec(context.Background())
	require.NoError(t, err)
}

func TestClaimNextReview_OldestFirst(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()

	now := time.Now()
	createPending(t, client.Client, "call-new", now)
	createPending(t, client.Client, "call-old", now.Add(-time.Hour))

	worker := NewWorker("w-1", "pod-1", client.Client, testQueueConfig(), &recordingExecutor{}, noopRegistry{})

	record, err := worker.claimNextReview(ctx)
	require.NoError(t, err)
	assert.Equal(t, "call-old", record.ID)
	assert.Equal(t, reviewrecord.StatusProcessing, record.Status)
	require.NotNil(t, record.PodID)
	assert.Equal(t, "pod-1", *record.PodID)
	assert.NotNil(t, record.LastInteractionAt)
}

func TestClaimNextReview_NoPending(t *testing.T) {
	client := testdb.NewTestClient(t)
	worker := NewWorker("w-1", "pod-1", client.Client, testQueueConfig(), &recordingExecutor{}, noopRegistry{})

	_, err := worker.claimNextReview(context.Background())
	require.ErrorIs(t, err, ErrNoReviewsAvailable)
}

func TestClaimNextReview_NoDoubleClaim(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()

	createPending(t, client.Client, "call-1", time.Now())

	cfg := testQueueConfig()
	w1 := NewWorker("w-1", "pod-1", client.Client, cfg, &recordingExecutor{}, noopRegistry{})
	w2 := NewWorker("w-2", "pod-1", client.Client, cfg, &recordingExecutor{}, noopRegistry{})

	_, err := w1.claimNextReview(ctx)
	require.NoError(t, err)

	_, err = w2.claimNextReview(ctx)
	require.ErrorIs(t, err, ErrNoReviewsAvailable)
}

func TestPollAndProcess_AtCapacity(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()

	cfg := testQueueConfig()
	cfg.MaxConcurrentReviews = 1

	// One record already processing fills the global budget.
	err := client.ReviewRecord.Create().
		SetID("busy").
		SetStatus(reviewrecord.StatusProcessing).
		Exec(ctx)
	require.NoError(t, err)
	createPending(t, client.Client, "call-1", time.Now())

	executor := &recordingExecutor{}
	worker := NewWorker("w-1", "pod-1", client.Client, cfg, executor, noopRegistry{})

	err = worker.pollAndProcess(ctx)
	require.ErrorIs(t, err, ErrAtCapacity)
	assert.Empty(t, executor.executedIDs())
}

func TestWorkerPool_ProcessesPendingReview(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()

	createPending(t, client.Client, "call-1", time.Now())

	executor := &recordingExecutor{}
	pool := NewWorkerPool("pod-1", client.Client, testQueueConfig(), executor)
	require.NoError(t, pool.Start(ctx))
	defer pool.Stop()

	require.Eventually(t, func() bool {
		return len(executor.executedIDs()) == 1
	}, 5*time.Second, 50*time.Millisecond)
	assert.Equal(t, []string{"call-1"}, executor.executedIDs())
}

func TestWorkerPool_CancelReview(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()

	createPending(t, client.Client, "call-1", time.Now())

	executor := &recordingExecutor{block: make(chan struct{})}
	pool := NewWorkerPool("pod-1", client.Client, testQueueConfig(), executor)
	require.NoError(t, pool.Start(ctx))
	defer pool.Stop()
	defer close(executor.block)

	require.Eventually(t, func() bool {
		return len(executor.executedIDs()) == 1
	}, 5*time.Second, 50*time.Millisecond)

	assert.True(t, pool.CancelReview("call-1"))
	assert.False(t, pool.CancelReview("unknown"))
}

func TestWorkerPool_Health(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()

	createPending(t, client.Client, "call-queued", time.Now())

	pool := NewWorkerPool("pod-1", client.Client, testQueueConfig(), &recordingExecutor{})
	require.NoError(t, pool.Start(ctx))
	defer pool.Stop()

	health := pool.Health()
	assert.True(t, health.DBReachable)
	assert.Equal(t, "pod-1", health.PodID)
	assert.Equal(t, 1, health.TotalWorkers)
	assert.Len(t, health.WorkerStats, 1)
}

func TestHeartbeat_RefreshesLastInteraction(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()

	stale := time.Now().Add(-time.Hour)
	err := client.ReviewRecord.Create().
		SetID("call-1").
		SetStatus(reviewrecord.StatusProcessing).
		SetLastInteractionAt(stale).
		Exec(ctx)
	require.NoError(t, err)

	worker := NewWorker("w-1", "pod-1", client.Client, testQueueConfig(), &recordingExecutor{}, noopRegistry{})

	hbCtx, cancel := context.WithCancel(ctx)
	go worker.runHeartbeat(hbCtx, "call-1")

	require.Eventually(t, func() bool {
		record, err := client.ReviewRecord.Get(ctx, "call-1")
		require.NoError(t, err)
		return record.LastInteractionAt != nil && record.LastInteractionAt.After(stale)
	}, 5*time.Second, 50*time.Millisecond)
	cancel()
}
