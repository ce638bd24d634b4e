package review

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/voiceops/callaudit/pkg/events"
	"github.com/voiceops/callaudit/pkg/extract"
	"github.com/voiceops/callaudit/pkg/judge"
	"github.com/voiceops/callaudit/pkg/models"
)

// Store is the persisted review state machine. Every write is an upsert
// keyed by call_log_id, so transitions are idempotent and safe to replay.
type Store interface {
	UpsertPending(ctx context.Context, callLogID, agentID string) error
	UpsertProcessing(ctx context.Context, callLogID, agentID string) error
	UpsertCompleted(ctx context.Context, callLogID string, result *models.ReviewResult) error
	UpsertFailed(ctx context.Context, callLogID, errorMessage string) error
}

// Broadcaster publishes review state transitions to live subscribers.
type Broadcaster interface {
	PublishReviewStatus(ctx context.Context, payload events.ReviewStatusPayload) error
}

// CallSource fetches auxiliary call data from the storage backend.
// Both methods may return nothing — the extractor degrades gracefully.
type CallSource interface {
	AgentConfiguration(ctx context.Context, callID string) (map[string]any, error)
	Telemetry(ctx context.Context, callID string) (*models.TelemetryData, error)
}

// Orchestrator composes extraction, assembly, judge invocation,
// validation, and persistence into the end-to-end review of one call.
// One orchestrator is shared by all workers; per-call state lives on the
// stack of each ReviewCallLog run.
type Orchestrator struct {
	store       Store
	broadcaster Broadcaster // nil means broadcasting is disabled
	judgeClient judge.Client
	source      CallSource // nil means no auxiliary fetches
	extractor   *extract.Extractor
	logger      *slog.Logger
}

// NewOrchestrator creates an Orchestrator. broadcaster and source may be
// nil; a nil broadcaster is a valid no-op configuration.
func NewOrchestrator(store Store, judgeClient judge.Client, broadcaster Broadcaster, source CallSource, logger *slog.Logger) *Orchestrator {
	if logger == nil {
		logger = slog.Default()
	}
	return &Orchestrator{
		store:       store,
		broadcaster: broadcaster,
		judgeClient: judgeClient,
		source:      source,
		extractor:   extract.NewExtractor(logger),
		logger:      logger,
	}
}

// QueueReview creates or resets the pending record for a call and
// broadcasts it. It does not run the pipeline — workers pick up pending
// records separately.
func (o *Orchestrator) QueueReview(ctx context.Context, callLogID, agentID string) error {
	if callLogID == "" {
		return fmt.Errorf("call_log_id is required")
	}
	if err := o.store.UpsertPending(ctx, callLogID, agentID); err != nil {
		return fmt.Errorf("queueing review for %s: %w", callLogID, err)
	}
	o.broadcast(ctx, events.ReviewStatusPayload{
		Type:      events.EventTypeReviewStatus,
		CallLogID: callLogID,
		Status:    models.ReviewStatusPending,
		Timestamp: time.Now().Format(time.RFC3339Nano),
	})
	return nil
}

// ReviewCallLog runs the full pipeline for one call session. It always
// leaves the record in a terminal state — completed with the verdict, or
// failed with a human-readable message — unless the terminal write itself
// fails, in which case the error is propagated after a best-effort
// failure broadcast.
func (o *Orchestrator) ReviewCallLog(ctx context.Context, session *models.CallSession, agentID string) (*models.ReviewResult, error) {
	callLogID := session.CallID
	log := o.logger.With("call_log_id", callLogID, "agent_id", agentID)

	if err := o.store.UpsertProcessing(ctx, callLogID, agentID); err != nil {
		// No durable record exists to retry against; broadcast best-effort
		// and propagate.
		o.broadcastFailed(callLogID, "persistence failure: "+err.Error())
		return nil, fmt.Errorf("marking review processing for %s: %w", callLogID, err)
	}
	o.broadcast(ctx, events.ReviewStatusPayload{
		Type:      events.EventTypeReviewStatus,
		CallLogID: callLogID,
		Status:    models.ReviewStatusProcessing,
		Timestamp: time.Now().Format(time.RFC3339Nano),
	})

	result, err := o.runPipeline(ctx, session, log)
	if err != nil {
		return nil, o.failReview(callLogID, err, log)
	}

	// Terminal writes use a fresh context: the run context may already be
	// cancelled and the outcome must still be recorded.
	writeCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := o.store.UpsertCompleted(writeCtx, callLogID, result); err != nil {
		o.broadcastFailed(callLogID, "persistence failure: "+err.Error())
		return nil, fmt.Errorf("persisting completed review for %s: %w", callLogID, err)
	}

	errorCount, apiFailures, wrongActions, wrongOutputs := result.Counts()
	o.broadcast(writeCtx, events.ReviewStatusPayload{
		Type:            events.EventTypeReviewStatus,
		CallLogID:       callLogID,
		Status:          models.ReviewStatusCompleted,
		ErrorCount:      &errorCount,
		HasApiFailures:  &apiFailures,
		HasWrongActions: &wrongActions,
		HasWrongOutputs: &wrongOutputs,
		Timestamp:       time.Now().Format(time.RFC3339Nano),
	})

	log.Info("Review completed", "error_count", errorCount)
	return result, nil
}

// runPipeline executes the sequential extraction → assembly → judge →
// validation chain and returns the typed verdict.
func (o *Orchestrator) runPipeline(ctx context.Context, session *models.CallSession, log *slog.Logger) (*models.ReviewResult, error) {
	o.fetchAuxiliary(ctx, session, log)

	skeleton := o.extractor.Extract(session)
	payload := AssemblePayload(session, skeleton)

	document, err := AssembleDocument(payload)
	if err != nil {
		return nil, err
	}

	raw, err := o.judgeClient.Review(ctx, document)
	if err != nil {
		return nil, err
	}

	result, err := ParseVerdict(raw)
	if err != nil {
		var mv *MalformedVerdictError
		if errors.As(err, &mv) {
			// Raw text is logged for diagnosis but never persisted.
			log.Error("Judge verdict failed validation", "reason", mv.Reason, "raw", mv.Raw)
		}
		return nil, err
	}
	return result, nil
}

// fetchAuxiliary pulls agent configuration and telemetry from the call
// source when the session does not already carry them. Failures here are
// degraded extraction, not pipeline failures.
func (o *Orchestrator) fetchAuxiliary(ctx context.Context, session *models.CallSession, log *slog.Logger) {
	if o.source == nil {
		return
	}

	hasConfig := session.CompleteConfiguration != nil ||
		(session.Metadata != nil && session.Metadata.CompleteConfiguration != nil)
	if !hasConfig {
		cfg, err := o.source.AgentConfiguration(ctx, session.CallID)
		if err != nil {
			log.Warn("Agent configuration unavailable, continuing without", "error", err)
		} else {
			session.CompleteConfiguration = cfg
		}
	}

	if session.TelemetryData == nil {
		telemetry, err := o.source.Telemetry(ctx, session.CallID)
		if err != nil {
			log.Warn("Telemetry unavailable, continuing without", "error", err)
		} else {
			session.TelemetryData = telemetry
		}
	}
}

// MarkFailed records a terminal failure for a call that never reached
// the pipeline, e.g. when the call session could not be fetched.
func (o *Orchestrator) MarkFailed(callLogID string, cause error) error {
	return o.failReview(callLogID, cause, o.logger.With("call_log_id", callLogID))
}

// failReview records the terminal failed state, broadcasts it, and
// returns the original error to the caller.
func (o *Orchestrator) failReview(callLogID string, cause error, log *slog.Logger) error {
	message := failureMessage(cause)
	log.Error("Review failed", "error", cause)

	writeCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := o.store.UpsertFailed(writeCtx, callLogID, message); err != nil {
		log.Error("Failed to persist failed review", "error", err)
		o.broadcastFailed(callLogID, message)
		return errors.Join(cause, fmt.Errorf("persisting failed review for %s: %w", callLogID, err))
	}

	payload := events.ReviewStatusPayload{
		Type:         events.EventTypeReviewStatus,
		CallLogID:    callLogID,
		Status:       models.ReviewStatusFailed,
		ErrorMessage: message,
		Timestamp:    time.Now().Format(time.RFC3339Nano),
	}
	o.broadcast(writeCtx, payload)
	return cause
}

// failureMessage maps a pipeline error to the human-readable message
// stored on the record.
func failureMessage(err error) string {
	var unavailable *judge.UnavailableError
	var malformed *MalformedVerdictError
	switch {
	case errors.As(err, &unavailable):
		return "judge unavailable: " + unavailable.Message
	case errors.Is(err, judge.ErrEmptyVerdict):
		return "judge returned no usable content"
	case errors.As(err, &malformed):
		return "malformed judge verdict: " + malformed.Reason
	default:
		return err.Error()
	}
}

// broadcast publishes a status payload. Fire-and-forget: a missing
// broadcaster or a publish error never fails or delays the pipeline.
func (o *Orchestrator) broadcast(ctx context.Context, payload events.ReviewStatusPayload) {
	if o.broadcaster == nil {
		return
	}
	if err := o.broadcaster.PublishReviewStatus(ctx, payload); err != nil {
		o.logger.Warn("Failed to publish review status",
			"call_log_id", payload.CallLogID, "status", payload.Status, "error", err)
	}
}

// broadcastFailed publishes a failure payload on a fresh context, used
// when no durable record could be written.
func (o *Orchestrator) broadcastFailed(callLogID, message string) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	o.broadcast(ctx, events.ReviewStatusPayload{
		Type:         events.EventTypeReviewStatus,
		CallLogID:    callLogID,
		Status:       models.ReviewStatusFailed,
		ErrorMessage: message,
		Timestamp:    time.Now().Format(time.RFC3339Nano),
	})
}
