package queue

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/voiceops/callaudit/ent"
	"github.com/voiceops/callaudit/ent/reviewrecord"
	"github.com/voiceops/callaudit/pkg/config"
)

// WorkerPool manages a pool of queue workers.
type WorkerPool struct {
	podID    string
	client   *ent.Client
	config   *config.QueueConfig
	executor ReviewExecutor
	workers  []*Worker
	stopCh   chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup

	// Review cancel registry: call_log_id → cancel function
	activeReviews map[string]context.CancelFunc
	mu            sync.RWMutex
	started       bool

	// Orphan detection state
	orphans orphanState
}

// NewWorkerPool creates a new worker pool.
func NewWorkerPool(podID string, client *ent.Client, cfg *config.QueueConfig, executor ReviewExecutor) *WorkerPool {
	return &WorkerPool{
		podID:         podID,
		client:        client,
		config:        cfg,
		executor:      executor,
		workers:       make([]*Worker, 0, cfg.WorkerCount),
		stopCh:        make(chan struct{}),
		activeReviews: make(map[string]context.CancelFunc),
	}
}

// Start spawns worker goroutines and the orphan detection background task.
// It is safe to call multiple times; subsequent calls are no-ops.
func (p *WorkerPool) Start(ctx context.Context) error {
	if p.started {
		slog.Warn("Worker pool already started, ignoring duplicate Start call", "pod_id", p.podID)
		return nil
	}
	p.started = true

	slog.Info("Starting worker pool", "pod_id", p.podID, "worker_count", p.config.WorkerCount)

	for i := 0; i < p.config.WorkerCount; i++ {
		workerID := fmt.Sprintf("%s-worker-%d", p.podID, i)
		worker := NewWorker(workerID, p.podID, p.client, p.config, p.executor, p)
		p.workers = append(p.workers, worker)
		worker.Start(ctx)
	}

	p.wg.Add(1)
	go func() {
		defer p.wg.Done()
		p.runOrphanDetection(ctx)
	}()

	slog.Info("Worker pool started")
	return nil
}

// Stop signals all workers to stop and waits for them to finish.
// Workers finish their current reviews before exiting (graceful shutdown).
func (p *WorkerPool) Stop() {
	slog.Info("Stopping worker pool gracefully")

	active := p.getActiveCallLogIDs()
	if len(active) > 0 {
		slog.Info("Waiting for active reviews to complete",
			"count", len(active),
			"call_log_ids", active)
	}

	for _, worker := range p.workers {
		worker.Stop()
	}

	p.stopOnce.Do(func() { close(p.stopCh) })
	p.wg.Wait()

	slog.Info("Worker pool stopped gracefully")
}

// RegisterReview stores a cancel function for manual cancellation.
func (p *WorkerPool) RegisterReview(callLogID string, cancel context.CancelFunc) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.activeReviews[callLogID] = cancel
}

// UnregisterReview removes the cancel function when processing ends.
func (p *WorkerPool) UnregisterReview(callLogID string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	delete(p.activeReviews, callLogID)
}

// CancelReview triggers context cancellation for a review on this pod.
// Returns true if the review was found and cancelled on this pod.
func (p *WorkerPool) CancelReview(callLogID string) bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if cancel, ok := p.activeReviews[callLogID]; ok {
		cancel()
		return true
	}
	return false
}

// Health returns the current health status of the pool.
func (p *WorkerPool) Health() *PoolHealth {
	ctx := context.Background()

	queueDepth, errQ := p.client.ReviewRecord.Query().
		Where(reviewrecord.StatusEQ(reviewrecord.StatusPending)).
		Count(ctx)
	if errQ != nil {
		slog.Error("Failed to query queue depth for health check",
			"pod_id", p.podID,
			"error", errQ)
	}

	activeReviews, errA := p.client.ReviewRecord.Query().
		Where(
			reviewrecord.StatusEQ(reviewrecord.StatusProcessing),
			reviewrecord.PodIDEQ(p.podID),
		).
		Count(ctx)
	if errA != nil {
		slog.Error("Failed to query active reviews for health check",
			"pod_id", p.podID,
			"error", errA)
	}

	workerStats := make([]WorkerHealth, len(p.workers))
	activeWorkers := 0
	for i, worker := range p.workers {
		stats := worker.Health()
		workerStats[i] = stats
		if stats.Status == string(WorkerStatusWorking) {
			activeWorkers++
		}
	}

	// An unreachable DB means the pool cannot claim or persist anything.
	dbHealthy := errQ == nil && errA == nil
	isHealthy := len(p.workers) > 0 && activeReviews <= p.config.MaxConcurrentReviews && dbHealthy

	p.orphans.mu.Lock()
	lastOrphanScan := p.orphans.lastOrphanScan
	orphansRequeued := p.orphans.orphansRequeued
	p.orphans.mu.Unlock()

	var dbError string
	if !dbHealthy {
		if errQ != nil {
			dbError = fmt.Sprintf("queue depth query failed: %v", errQ)
		} else if errA != nil {
			dbError = fmt.Sprintf("active reviews query failed: %v", errA)
		}
	}

	return &PoolHealth{
		IsHealthy:       isHealthy,
		DBReachable:     dbHealthy,
		DBError:         dbError,
		PodID:           p.podID,
		ActiveWorkers:   activeWorkers,
		TotalWorkers:    len(p.workers),
		ActiveReviews:   activeReviews,
		MaxConcurrent:   p.config.MaxConcurrentReviews,
		QueueDepth:      queueDepth,
		WorkerStats:     workerStats,
		LastOrphanScan:  lastOrphanScan,
		OrphansRequeued: orphansRequeued,
	}
}

// getActiveCallLogIDs returns IDs of currently processing reviews (for logging).
func (p *WorkerPool) getActiveCallLogIDs() []string {
	p.mu.RLock()
	defer p.mu.RUnlock()
	ids := make([]string, 0, len(p.activeReviews))
	for id := range p.activeReviews {
		ids = append(ids, id)
	}
	return ids
}
