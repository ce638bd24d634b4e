package services

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/voiceops/callaudit/ent"
	"github.com/voiceops/callaudit/ent/reviewrecord"
	"github.com/voiceops/callaudit/pkg/models"
)

// ReviewService manages review record lifecycle. All state transitions
// are upserts keyed by call_log_id, so re-submitting a call resets its
// record instead of duplicating it.
type ReviewService struct {
	client *ent.Client
}

// NewReviewService creates a new ReviewService
func NewReviewService(client *ent.Client) *ReviewService {
	return &ReviewService{client: client}
}

// UpsertPending creates or resets the record for a call to pending,
// clearing any previous verdict or failure.
func (s *ReviewService) UpsertPending(httpCtx context.Context, callLogID, agentID string) error {
	if callLogID == "" {
		return NewValidationError("call_log_id", "required")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	builder := s.client.ReviewRecord.Create().
		SetID(callLogID).
		SetStatus(reviewrecord.StatusPending)
	if agentID != "" {
		builder.SetAgentID(agentID)
	}

	err := builder.
		OnConflictColumns(reviewrecord.FieldID).
		Update(func(u *ent.ReviewRecordUpsert) {
			u.SetStatus(reviewrecord.StatusPending)
			if agentID != "" {
				u.SetAgentID(agentID)
			}
			clearOutcome(u)
			u.SetUpdatedAt(time.Now())
		}).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to upsert pending review: %w", err)
	}
	return nil
}

// UpsertProcessing creates or moves the record for a call to processing.
func (s *ReviewService) UpsertProcessing(httpCtx context.Context, callLogID, agentID string) error {
	if callLogID == "" {
		return NewValidationError("call_log_id", "required")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	now := time.Now()
	builder := s.client.ReviewRecord.Create().
		SetID(callLogID).
		SetStatus(reviewrecord.StatusProcessing).
		SetLastInteractionAt(now)
	if agentID != "" {
		builder.SetAgentID(agentID)
	}

	err := builder.
		OnConflictColumns(reviewrecord.FieldID).
		Update(func(u *ent.ReviewRecordUpsert) {
			u.SetStatus(reviewrecord.StatusProcessing)
			if agentID != "" {
				u.SetAgentID(agentID)
			}
			clearOutcome(u)
			u.SetLastInteractionAt(now)
			u.SetUpdatedAt(now)
		}).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to upsert processing review: %w", err)
	}
	return nil
}

// UpsertCompleted writes the terminal completed state with the full
// verdict and the derived summary fields.
func (s *ReviewService) UpsertCompleted(httpCtx context.Context, callLogID string, result *models.ReviewResult) error {
	if callLogID == "" {
		return NewValidationError("call_log_id", "required")
	}
	if result == nil {
		return NewValidationError("review_result", "required")
	}

	resultJSON, err := resultToMap(result)
	if err != nil {
		return err
	}
	errorCount, apiFailures, wrongActions, wrongOutputs := result.Counts()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	now := time.Now()
	err = s.client.ReviewRecord.Create().
		SetID(callLogID).
		SetStatus(reviewrecord.StatusCompleted).
		SetReviewResult(resultJSON).
		SetErrorCount(errorCount).
		SetHasAPIFailures(apiFailures).
		SetHasWrongActions(wrongActions).
		SetHasWrongOutputs(wrongOutputs).
		SetReviewedAt(now).
		OnConflictColumns(reviewrecord.FieldID).
		Update(func(u *ent.ReviewRecordUpsert) {
			u.SetStatus(reviewrecord.StatusCompleted)
			u.SetReviewResult(resultJSON)
			u.SetErrorCount(errorCount)
			u.SetHasAPIFailures(apiFailures)
			u.SetHasWrongActions(wrongActions)
			u.SetHasWrongOutputs(wrongOutputs)
			u.ClearErrorMessage()
			u.SetReviewedAt(now)
			u.SetUpdatedAt(now)
		}).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to upsert completed review: %w", err)
	}
	return nil
}

// UpsertFailed writes the terminal failed state with a human-readable
// message. Any stale verdict from an earlier run is cleared.
func (s *ReviewService) UpsertFailed(httpCtx context.Context, callLogID, errorMessage string) error {
	if callLogID == "" {
		return NewValidationError("call_log_id", "required")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	now := time.Now()
	err := s.client.ReviewRecord.Create().
		SetID(callLogID).
		SetStatus(reviewrecord.StatusFailed).
		SetErrorMessage(errorMessage).
		SetReviewedAt(now).
		OnConflictColumns(reviewrecord.FieldID).
		Update(func(u *ent.ReviewRecordUpsert) {
			u.SetStatus(reviewrecord.StatusFailed)
			u.SetErrorMessage(errorMessage)
			u.ClearReviewResult()
			u.SetErrorCount(0)
			u.SetHasAPIFailures(false)
			u.SetHasWrongActions(false)
			u.SetHasWrongOutputs(false)
			u.SetReviewedAt(now)
			u.SetUpdatedAt(now)
		}).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to upsert failed review: %w", err)
	}
	return nil
}

// GetReview retrieves a review record by call log ID.
func (s *ReviewService) GetReview(ctx context.Context, callLogID string) (*ent.ReviewRecord, error) {
	record, err := s.client.ReviewRecord.Query().
		Where(reviewrecord.IDEQ(callLogID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get review: %w", err)
	}
	return record, nil
}

// ListReviews lists review records with filtering and pagination.
func (s *ReviewService) ListReviews(ctx context.Context, filters models.ReviewFilters) (*models.ReviewListResult, error) {
	query := s.client.ReviewRecord.Query()

	if filters.Status != "" {
		if !models.ValidReviewStatus(models.ReviewStatus(filters.Status)) {
			return nil, NewValidationError("status", "unknown status value")
		}
		query = query.Where(reviewrecord.StatusEQ(reviewrecord.Status(filters.Status)))
	}
	if filters.AgentID != "" {
		query = query.Where(reviewrecord.AgentIDEQ(filters.AgentID))
	}
	if filters.OnlyWithErrors {
		query = query.Where(reviewrecord.ErrorCountGT(0))
	}

	total, err := query.Clone().Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count reviews: %w", err)
	}

	limit := filters.Limit
	if limit <= 0 || limit > 100 {
		limit = 50
	}
	offset := max(filters.Offset, 0)

	records, err := query.
		Order(ent.Desc(reviewrecord.FieldCreatedAt)).
		Limit(limit).
		Offset(offset).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list reviews: %w", err)
	}

	return &models.ReviewListResult{
		Records: records,
		Total:   total,
		Limit:   limit,
		Offset:  offset,
	}, nil
}

// CountByStatus returns the number of records in the given status.
func (s *ReviewService) CountByStatus(ctx context.Context, status models.ReviewStatus) (int, error) {
	count, err := s.client.ReviewRecord.Query().
		Where(reviewrecord.StatusEQ(reviewrecord.Status(status))).
		Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to count reviews by status: %w", err)
	}
	return count, nil
}

// clearOutcome resets the terminal fields when a record re-enters the
// active part of the lifecycle.
func clearOutcome(u *ent.ReviewRecordUpsert) {
	u.ClearReviewResult()
	u.SetErrorCount(0)
	u.SetHasAPIFailures(false)
	u.SetHasWrongActions(false)
	u.SetHasWrongOutputs(false)
	u.ClearErrorMessage()
	u.ClearReviewedAt()
}

// resultToMap converts the typed verdict into the generic map stored in
// the JSON column.
func resultToMap(result *models.ReviewResult) (map[string]interface{}, error) {
	raw, err := json.Marshal(result)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal review result: %w", err)
	}
	var m map[string]interface{}
	if err := json.Unmarshal(raw, &m); err != nil {
		return nil, fmt.Errorf("failed to convert review result: %w", err)
	}
	return m, nil
}
