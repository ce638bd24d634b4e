package queue

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/voiceops/callaudit/ent"
	"github.com/voiceops/callaudit/ent/reviewrecord"
	"github.com/voiceops/callaudit/pkg/models"
	"github.com/voiceops/callaudit/pkg/review"
)

// SessionFetcher retrieves the full call session from the call store.
type SessionFetcher interface {
	GetCallSession(ctx context.Context, callLogID string) (*models.CallSession, error)
}

// Executor runs one claimed review: it fetches the call session and
// hands it to the orchestrator, which owns the pipeline and all terminal
// persistence. Implements ReviewExecutor.
type Executor struct {
	orchestrator *review.Orchestrator
	fetcher      SessionFetcher
	logger       *slog.Logger
}

// NewExecutor creates an Executor.
func NewExecutor(orchestrator *review.Orchestrator, fetcher SessionFetcher, logger *slog.Logger) *Executor {
	if logger == nil {
		logger = slog.Default()
	}
	return &Executor{
		orchestrator: orchestrator,
		fetcher:      fetcher,
		logger:       logger,
	}
}

// Execute processes one claimed review record end to end. It never
// leaves the record in processing: fetch and pipeline failures both end
// in the failed state before the error surfaces here.
func (e *Executor) Execute(ctx context.Context, record *ent.ReviewRecord) *ExecutionResult {
	session, err := e.fetcher.GetCallSession(ctx, record.ID)
	if err != nil {
		fetchErr := fmt.Errorf("fetching call session: %w", err)
		if markErr := e.orchestrator.MarkFailed(record.ID, fetchErr); markErr != nil {
			e.logger.Error("Failed to record fetch failure",
				"call_log_id", record.ID, "error", markErr)
		}
		return &ExecutionResult{Status: reviewrecord.StatusFailed, Error: fetchErr}
	}
	if session.CallID == "" {
		session.CallID = record.ID
	}

	result, err := e.orchestrator.ReviewCallLog(ctx, session, record.AgentID)
	if err != nil {
		return &ExecutionResult{Status: reviewrecord.StatusFailed, Error: err}
	}

	errorCount, _, _, _ := result.Counts()
	return &ExecutionResult{Status: reviewrecord.StatusCompleted, ErrorCount: errorCount}
}
