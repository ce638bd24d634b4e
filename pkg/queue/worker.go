package queue

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"sync"
	"time"

	"entgo.io/ent/dialect/sql"

	"github.com/voiceops/callaudit/ent"
	"github.com/voiceops/callaudit/ent/event"
	"github.com/voiceops/callaudit/ent/reviewrecord"
	"github.com/voiceops/callaudit/pkg/config"
)

// WorkerStatus represents the current state of a worker.
type WorkerStatus string

// Worker status constants.
const (
	WorkerStatusIdle    WorkerStatus = "idle"
	WorkerStatusWorking WorkerStatus = "working"
)

// Worker is a single queue worker that polls for and processes reviews.
type Worker struct {
	id       string
	podID    string
	client   *ent.Client
	config   *config.QueueConfig
	executor ReviewExecutor
	pool     ReviewRegistry
	stopCh   chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup

	// Health tracking
	mu               sync.RWMutex
	status           WorkerStatus
	currentCallLogID string
	reviewsProcessed int
	lastActivity     time.Time
}

// ReviewRegistry is the subset of WorkerPool used by Worker for review registration.
type ReviewRegistry interface {
	RegisterReview(callLogID string, cancel context.CancelFunc)
	UnregisterReview(callLogID string)
}

// NewWorker creates a new queue worker.
func NewWorker(id, podID string, client *ent.Client, cfg *config.QueueConfig, executor ReviewExecutor, pool ReviewRegistry) *Worker {
	return &Worker{
		id:           id,
		podID:        podID,
		client:       client,
		config:       cfg,
		executor:     executor,
		pool:         pool,
		stopCh:       make(chan struct{}),
		status:       WorkerStatusIdle,
		lastActivity: time.Now(),
	}
}

// Start begins the worker polling loop in a goroutine.
func (w *Worker) Start(ctx context.Context) {
	w.wg.Add(1)
	go w.run(ctx)
}

// Stop signals the worker to stop and waits for it to finish.
// It is safe to call Stop multiple times.
func (w *Worker) Stop() {
	w.stopOnce.Do(func() { close(w.stopCh) })
	w.wg.Wait()
}

// Health returns the current worker health status.
func (w *Worker) Health() WorkerHealth {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return WorkerHealth{
		ID:               w.id,
		Status:           string(w.status),
		CurrentCallLogID: w.currentCallLogID,
		ReviewsProcessed: w.reviewsProcessed,
		LastActivity:     w.lastActivity,
	}
}

// run is the main worker loop.
func (w *Worker) run(ctx context.Context) {
	defer w.wg.Done()

	log := slog.With("worker_id", w.id, "pod_id", w.podID)
	log.Info("Worker started")

	for {
		select {
		case <-w.stopCh:
			log.Info("Worker shutting down")
			return
		case <-ctx.Done():
			log.Info("Context cancelled, worker shutting down")
			return
		default:
			if err := w.pollAndProcess(ctx); err != nil {
				if errors.Is(err, ErrNoReviewsAvailable) || errors.Is(err, ErrAtCapacity) {
					w.sleep(w.pollInterval())
					continue
				}
				log.Error("Error processing review", "error", err)
				w.sleep(time.Second) // Brief backoff on error
			}
		}
	}
}

// sleep waits for the given duration or until stop is signalled.
func (w *Worker) sleep(d time.Duration) {
	select {
	case <-w.stopCh:
	case <-time.After(d):
	}
}

// pollAndProcess checks capacity, claims a review, and processes it.
func (w *Worker) pollAndProcess(ctx context.Context) error {
	// Global capacity check (best-effort; racy with concurrent workers but
	// bounded by WorkerCount and mitigated by poll jitter).
	activeCount, err := w.client.ReviewRecord.Query().
		Where(reviewrecord.StatusEQ(reviewrecord.StatusProcessing)).
		Count(ctx)
	if err != nil {
		return fmt.Errorf("checking active reviews: %w", err)
	}
	if activeCount >= w.config.MaxConcurrentReviews {
		return ErrAtCapacity
	}

	record, err := w.claimNextReview(ctx)
	if err != nil {
		return err
	}

	log := slog.With("call_log_id", record.ID, "worker_id", w.id)
	log.Info("Review claimed")

	w.setStatus(WorkerStatusWorking, record.ID)
	defer w.setStatus(WorkerStatusIdle, "")

	reviewCtx, cancelReview := context.WithTimeout(ctx, w.config.ReviewTimeout)
	defer cancelReview()

	// Register cancel function for API-triggered cancellation
	w.pool.RegisterReview(record.ID, cancelReview)
	defer w.pool.UnregisterReview(record.ID)

	heartbeatCtx, cancelHeartbeat := context.WithCancel(reviewCtx)
	go w.runHeartbeat(heartbeatCtx, record.ID)

	// The executor persists the terminal state itself; the result is only
	// for worker bookkeeping.
	result := w.executor.Execute(reviewCtx, record)
	cancelHeartbeat()

	if result == nil {
		result = &ExecutionResult{
			Status: reviewrecord.StatusFailed,
			Error:  fmt.Errorf("executor returned nil result"),
		}
	}

	// Cleanup persisted events after a grace period so clients receive the
	// final events before they are deleted.
	w.scheduleEventCleanup(record.ID)

	w.mu.Lock()
	w.reviewsProcessed++
	w.mu.Unlock()

	log.Info("Review processing complete", "status", result.Status, "error_count", result.ErrorCount)
	return nil
}

// claimNextReview atomically claims the oldest pending review using
// FOR UPDATE SKIP LOCKED, so concurrent workers never double-claim.
func (w *Worker) claimNextReview(ctx context.Context) (*ent.ReviewRecord, error) {
	tx, err := w.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	record, err := tx.ReviewRecord.Query().
		Where(reviewrecord.StatusEQ(reviewrecord.StatusPending)).
		Order(ent.Asc(reviewrecord.FieldCreatedAt)).
		Limit(1).
		ForUpdate(sql.WithLockAction(sql.SkipLocked)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNoReviewsAvailable
		}
		return nil, fmt.Errorf("failed to query pending review: %w", err)
	}

	now := time.Now()
	record, err = record.Update().
		SetStatus(reviewrecord.StatusProcessing).
		SetPodID(w.podID).
		SetLastInteractionAt(now).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to claim review: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit claim: %w", err)
	}

	return record, nil
}

// runHeartbeat periodically updates last_interaction_at for orphan detection.
func (w *Worker) runHeartbeat(ctx context.Context, callLogID string) {
	ticker := time.NewTicker(w.config.HeartbeatInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := w.client.ReviewRecord.UpdateOneID(callLogID).
				SetLastInteractionAt(time.Now()).
				Exec(ctx); err != nil {
				slog.Warn("Heartbeat update failed", "call_log_id", callLogID, "error", err)
			}
		}
	}
}

// scheduleEventCleanup deletes persisted events after a 60-second grace
// period, allowing WebSocket clients to receive the final events.
func (w *Worker) scheduleEventCleanup(callLogID string) {
	time.AfterFunc(60*time.Second, func() {
		_, err := w.client.Event.Delete().
			Where(event.ReviewIDEQ(callLogID)).
			Exec(context.Background())
		if err != nil {
			slog.Warn("Failed to cleanup review events after grace period",
				"call_log_id", callLogID, "error", err)
		}
	})
}

// pollInterval returns the poll duration with jitter.
func (w *Worker) pollInterval() time.Duration {
	base := w.config.PollInterval
	jitter := w.config.PollIntervalJitter
	if jitter <= 0 {
		return base
	}
	// Range: [base - jitter, base + jitter]
	offset := time.Duration(rand.Int64N(int64(2 * jitter)))
	return base - jitter + offset
}

// setStatus updates the worker's health tracking state.
func (w *Worker) setStatus(status WorkerStatus, callLogID string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.status = status
	w.currentCallLogID = callLogID
	w.lastActivity = time.Now()
}
