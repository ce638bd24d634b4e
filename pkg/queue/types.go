// Package queue provides review queue management and processing infrastructure.
package queue

import (
	"context"
	"errors"
	"time"

	"github.com/voiceops/callaudit/ent"
	"github.com/voiceops/callaudit/ent/reviewrecord"
)

// Sentinel errors for queue operations.
var (
	// ErrNoReviewsAvailable indicates no pending reviews are in the queue.
	ErrNoReviewsAvailable = errors.New("no reviews available")

	// ErrAtCapacity indicates the global concurrent review limit has been reached.
	ErrAtCapacity = errors.New("at capacity")
)

// ReviewExecutor is the interface for review processing.
//
// The executor owns the review pipeline end to end: fetching the call
// session, invoking the judge, and writing the terminal record state.
// The worker only handles claiming, heartbeat, and event cleanup.
type ReviewExecutor interface {
	Execute(ctx context.Context, record *ent.ReviewRecord) *ExecutionResult
}

// ExecutionResult is lightweight — just the terminal outcome for worker
// bookkeeping. The verdict itself was already persisted by the executor.
type ExecutionResult struct {
	Status     reviewrecord.Status // completed or failed
	ErrorCount int                 // findings in the verdict (if completed)
	Error      error               // error details (if failed)
}

// PoolHealth contains health information for the entire worker pool.
type PoolHealth struct {
	IsHealthy        bool           `json:"is_healthy"`
	DBReachable      bool           `json:"db_reachable"`
	DBError          string         `json:"db_error,omitempty"`
	PodID            string         `json:"pod_id"`
	ActiveWorkers    int            `json:"active_workers"`
	TotalWorkers     int            `json:"total_workers"`
	ActiveReviews    int            `json:"active_reviews"`
	MaxConcurrent    int            `json:"max_concurrent"`
	QueueDepth       int            `json:"queue_depth"`
	WorkerStats      []WorkerHealth `json:"worker_stats"`
	LastOrphanScan   time.Time      `json:"last_orphan_scan"`
	OrphansRequeued  int            `json:"orphans_requeued"`
}

// WorkerHealth contains health information for a single worker.
type WorkerHealth struct {
	ID               string    `json:"id"`
	Status           string    `json:"status"` // "idle" or "working"
	CurrentCallLogID string    `json:"current_call_log_id,omitempty"`
	ReviewsProcessed int       `json:"reviews_processed"`
	LastActivity     time.Time `json:"last_activity"`
}
