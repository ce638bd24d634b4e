package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/voiceops/callaudit/ent/reviewrecord"
	"github.com/voiceops/callaudit/pkg/models"
	testdb "github.com/voiceops/callaudit/test/database"
)

func sampleResult() *models.ReviewResult {
	return &models.ReviewResult{
		CallTimestamp: "2026-08-01T12:00:00Z",
		AnalysisDate:  "2026-08-02",
		Errors: []models.Finding{
			{
				Type:        models.FindingAPIFailure,
				Title:       "Booking API returned 503",
				Description: "Booking failed while agent confirmed",
				Evidence: models.FindingEvidence{
					TranscriptExcerpt: "Your appointment is confirmed.",
					Expected:          "successful booking",
					Actual:            "HTTP 503",
				},
				Timestamp: "2026-08-01T12:01:30Z",
				Impact:    "Phantom appointment",
			},
		},
	}
}

func TestUpsertPending_CreatesRecord(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewReviewService(client.Client)
	ctx := context.Background()

	require.NoError(t, svc.UpsertPending(ctx, "call-1", "agent-1"))

	record, err := svc.GetReview(ctx, "call-1")
	require.NoError(t, err)
	assert.Equal(t, reviewrecord.StatusPending, record.Status)
	assert.Equal(t, "agent-1", record.AgentID)
	assert.Zero(t, record.ErrorCount)
}

func TestUpsertPending_RequiresCallLogID(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewReviewService(client.Client)

	err := svc.UpsertPending(context.Background(), "", "agent-1")
	require.Error(t, err)
	assert.True(t, IsValidationError(err))
}

func TestUpsertPending_ResubmitResetsTerminalRecord(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewReviewService(client.Client)
	ctx := context.Background()

	require.NoError(t, svc.UpsertPending(ctx, "call-1", "agent-1"))
	require.NoError(t, svc.UpsertCompleted(ctx, "call-1", sampleResult()))

	// Re-submission resets the record rather than duplicating it.
	require.NoError(t, svc.UpsertPending(ctx, "call-1", "agent-1"))

	record, err := svc.GetReview(ctx, "call-1")
	require.NoError(t, err)
	assert.Equal(t, reviewrecord.StatusPending, record.Status)
	assert.Nil(t, record.ReviewResult)
	assert.Zero(t, record.ErrorCount)
	assert.False(t, record.HasAPIFailures)
	assert.Nil(t, record.ReviewedAt)

	total, err := client.ReviewRecord.Query().Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, total)
}

func TestUpsertProcessing_SetsHeartbeat(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewReviewService(client.Client)
	ctx := context.Background()

	require.NoError(t, svc.UpsertProcessing(ctx, "call-1", "agent-1"))

	record, err := svc.GetReview(ctx, "call-1")
	require.NoError(t, err)
	assert.Equal(t, reviewrecord.StatusProcessing, record.Status)
	assert.NotNil(t, record.LastInteractionAt)
}

func TestUpsertCompleted_PersistsVerdictAndSummary(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewReviewService(client.Client)
	ctx := context.Background()

	require.NoError(t, svc.UpsertProcessing(ctx, "call-1", "agent-1"))
	require.NoError(t, svc.UpsertCompleted(ctx, "call-1", sampleResult()))

	record, err := svc.GetReview(ctx, "call-1")
	require.NoError(t, err)
	assert.Equal(t, reviewrecord.StatusCompleted, record.Status)
	assert.Equal(t, 1, record.ErrorCount)
	assert.True(t, record.HasAPIFailures)
	assert.False(t, record.HasWrongActions)
	assert.False(t, record.HasWrongOutputs)
	assert.NotNil(t, record.ReviewedAt)
	assert.Nil(t, record.ErrorMessage)

	require.NotNil(t, record.ReviewResult)
	errs, ok := record.ReviewResult["errors"].([]any)
	require.True(t, ok)
	assert.Len(t, errs, 1)
}

func TestUpsertCompleted_DirectInsertWithoutPriorRecord(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewReviewService(client.Client)
	ctx := context.Background()

	// Completed upsert works even when no pending record existed.
	require.NoError(t, svc.UpsertCompleted(ctx, "call-1", sampleResult()))

	record, err := svc.GetReview(ctx, "call-1")
	require.NoError(t, err)
	assert.Equal(t, reviewrecord.StatusCompleted, record.Status)
}

func TestUpsertFailed_ClearsStaleVerdict(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewReviewService(client.Client)
	ctx := context.Background()

	require.NoError(t, svc.UpsertCompleted(ctx, "call-1", sampleResult()))
	require.NoError(t, svc.UpsertFailed(ctx, "call-1", "judge unavailable: quota exceeded"))

	record, err := svc.GetReview(ctx, "call-1")
	require.NoError(t, err)
	assert.Equal(t, reviewrecord.StatusFailed, record.Status)
	require.NotNil(t, record.ErrorMessage)
	assert.Equal(t, "judge unavailable: quota exceeded", *record.ErrorMessage)
	assert.Nil(t, record.ReviewResult)
	assert.Zero(t, record.ErrorCount)
	assert.False(t, record.HasAPIFailures)
}

func TestGetReview_NotFound(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewReviewService(client.Client)

	_, err := svc.GetReview(context.Background(), "missing")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestListReviews_Filters(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewReviewService(client.Client)
	ctx := context.Background()

	require.NoError(t, svc.UpsertPending(ctx, "call-1", "agent-a"))
	require.NoError(t, svc.UpsertPending(ctx, "call-2", "agent-b"))
	require.NoError(t, svc.UpsertCompleted(ctx, "call-3", sampleResult()))
	require.NoError(t, svc.UpsertCompleted(ctx, "call-4", &models.ReviewResult{Errors: []models.Finding{}}))

	all, err := svc.ListReviews(ctx, models.ReviewFilters{})
	require.NoError(t, err)
	assert.Equal(t, 4, all.Total)
	assert.Len(t, all.Records, 4)

	pending, err := svc.ListReviews(ctx, models.ReviewFilters{Status: "pending"})
	require.NoError(t, err)
	assert.Equal(t, 2, pending.Total)

	byAgent, err := svc.ListReviews(ctx, models.ReviewFilters{AgentID: "agent-a"})
	require.NoError(t, err)
	require.Len(t, byAgent.Records, 1)
	assert.Equal(t, "call-1", byAgent.Records[0].ID)

	withErrors, err := svc.ListReviews(ctx, models.ReviewFilters{OnlyWithErrors: true})
	require.NoError(t, err)
	require.Len(t, withErrors.Records, 1)
	assert.Equal(t, "call-3", withErrors.Records[0].ID)
}

func TestListReviews_UnknownStatusRejected(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewReviewService(client.Client)

	_, err := svc.ListReviews(context.Background(), models.ReviewFilters{Status: "archived"})
	require.Error(t, err)
	assert.True(t, IsValidationError(err))
}

func TestListReviews_Pagination(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewReviewService(client.Client)
	ctx := context.Background()

	for _, id := range []string{"call-1", "call-2", "call-3"} {
		require.NoError(t, svc.UpsertPending(ctx, id, ""))
	}

	page, err := svc.ListReviews(ctx, models.ReviewFilters{Limit: 2})
	require.NoError(t, err)
	assert.Equal(t, 3, page.Total)
	assert.Len(t, page.Records, 2)
	assert.Equal(t, 2, page.Limit)

	next, err := svc.ListReviews(ctx, models.ReviewFilters{Limit: 2, Offset: 2})
	require.NoError(t, err)
	assert.Len(t, next.Records, 1)

	// Out-of-range limits fall back to the default.
	fallback, err := svc.ListReviews(ctx, models.ReviewFilters{Limit: 500})
	require.NoError(t, err)
	assert.Equal(t, 50, fallback.Limit)
}

func TestCountByStatus(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewReviewService(client.Client)
	ctx := context.Background()

	require.NoError(t, svc.UpsertPending(ctx, "call-1", ""))
	require.NoError(t, svc.UpsertPending(ctx, "call-2", ""))
	require.NoError(t, svc.UpsertProcessing(ctx, "call-3", ""))

	pending, err := svc.CountByStatus(ctx, models.ReviewStatusPending)
	require.NoError(t, err)
	assert.Equal(t, 2, pending)

	processing, err := svc.CountByStatus(ctx, models.ReviewStatusProcessing)
	require.NoError(t, err)
	assert.Equal(t, 1, processing)

	failed, err := svc.CountByStatus(ctx, models.ReviewStatusFailed)
	require.NoError(t, err)
	assert.Zero(t, failed)
}
