package queue

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/voiceops/callaudit/ent"
	"github.com/voiceops/callaudit/ent/reviewrecord"
)

// orphanState tracks orphan detection metrics (thread-safe).
type orphanState struct {
	mu              sync.Mutex
	lastOrphanScan  time.Time
	orphansRequeued int
}

// runOrphanDetection periodically scans for orphaned reviews.
// All pods run this independently — operations are idempotent.
func (p *WorkerPool) runOrphanDetection(ctx context.Context) {
	ticker := time.NewTicker(p.config.OrphanDetectionInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-p.stopCh:
			return
		case <-ticker.C:
			if err := p.requeueOrphans(ctx); err != nil {
				slog.Error("Orphan detection failed", "error", err)
			}
		}
	}
}

// requeueOrphans finds processing reviews with stale heartbeats and
// resets them to pending. Reviews are idempotent upserts, so rerunning
// a half-finished one is safe; requeue beats marking it failed.
func (p *WorkerPool) requeueOrphans(ctx context.Context) error {
	threshold := time.Now().Add(-p.config.OrphanThreshold)

	orphans, err := p.client.ReviewRecord.Query().
		Where(
			reviewrecord.StatusEQ(reviewrecord.StatusProcessing),
			reviewrecord.LastInteractionAtNotNil(),
			reviewrecord.LastInteractionAtLT(threshold),
		).
		All(ctx)
	if err != nil {
		return fmt.Errorf("failed to query orphaned reviews: %w", err)
	}

	if len(orphans) == 0 {
		p.orphans.mu.Lock()
		p.orphans.lastOrphanScan = time.Now()
		p.orphans.mu.Unlock()
		return nil
	}

	slog.Warn("Detected orphaned reviews", "count", len(orphans))

	requeued := 0
	for _, record := range orphans {
		if err := requeueOrphanedReview(ctx, record); err != nil {
			slog.Error("Failed to requeue orphaned review",
				"call_log_id", record.ID,
				"error", err)
			continue
		}
		requeued++
	}

	p.orphans.mu.Lock()
	p.orphans.lastOrphanScan = time.Now()
	p.orphans.orphansRequeued += requeued
	p.orphans.mu.Unlock()

	return nil
}

// requeueOrphanedReview resets a single orphaned review to pending.
func requeueOrphanedReview(ctx context.Context, record *ent.ReviewRecord) error {
	lastHeartbeat := "unknown"
	if record.LastInteractionAt != nil {
		lastHeartbeat = record.LastInteractionAt.Format(time.RFC3339)
	}

	podID := "unknown"
	if record.PodID != nil {
		podID = *record.PodID
	}

	err := record.Update().
		SetStatus(reviewrecord.StatusPending).
		ClearPodID().
		ClearLastInteractionAt().
		SetUpdatedAt(time.Now()).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to requeue review: %w", err)
	}

	slog.Warn("Orphaned review requeued",
		"call_log_id", record.ID,
		"old_pod_id", podID,
		"last_heartbeat", lastHeartbeat)
	return nil
}

// RequeueStartupOrphans performs a one-time requeue of reviews owned by
// this pod that were processing when the pod previously crashed.
// Called once during startup, before the worker pool begins processing.
func RequeueStartupOrphans(ctx context.Context, client *ent.Client, podID string) error {
	orphans, err := client.ReviewRecord.Query().
		Where(
			reviewrecord.StatusEQ(reviewrecord.StatusProcessing),
			reviewrecord.PodIDEQ(podID),
		).
		All(ctx)
	if err != nil {
		return fmt.Errorf("failed to query startup orphans: %w", err)
	}

	if len(orphans) == 0 {
		return nil
	}

	slog.Warn("Found startup orphans from previous run",
		"pod_id", podID,
		"count", len(orphans))

	for _, record := range orphans {
		if err := requeueOrphanedReview(ctx, record); err != nil {
			slog.Error("Failed to requeue startup orphan",
				"call_log_id", record.ID,
				"error", err)
			continue
		}
		slog.Info("Startup orphan requeued", "call_log_id", record.ID)
	}

	return nil
}
