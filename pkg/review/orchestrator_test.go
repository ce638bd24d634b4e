package review

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/voiceops/callaudit/pkg/events"
	"github.com/voiceops/callaudit/pkg/judge"
	"github.com/voiceops/callaudit/pkg/models"
)

// fakeStore records every transition applied to it.
type fakeStore struct {
	pending    []string
	processing []string
	completed  map[string]*models.ReviewResult
	failed     map[string]string

	failProcessing bool
	failCompleted  bool
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		completed: make(map[string]*models.ReviewResult),
		failed:    make(map[string]string),
	}
}

func (s *fakeStore) UpsertPending(_ context.Context, callLogID, _ string) error {
	s.pending = append(s.pending, callLogID)
	return nil
}

func (s *fakeStore) UpsertProcessing(_ context.Context, callLogID, _ string) error {
	if s.failProcessing {
		return errors.New("db down")
	}
	s.processing = append(s.processing, callLogID)
	return nil
}

func (s *fakeStore) UpsertCompleted(_ context.Context, callLogID string, result *models.ReviewResult) error {
	if s.failCompleted {
		return errors.New("db down")
	}
	s.completed[callLogID] = result
	return nil
}

func (s *fakeStore) UpsertFailed(_ context.Context, callLogID, errorMessage string) error {
	s.failed[callLogID] = errorMessage
	return nil
}

// fakeBroadcaster captures published payloads.
type fakeBroadcaster struct {
	payloads []events.ReviewStatusPayload
	err      error
}

func (b *fakeBroadcaster) PublishReviewStatus(_ context.Context, payload events.ReviewStatusPayload) error {
	b.payloads = append(b.payloads, payload)
	return b.err
}

func (b *fakeBroadcaster) statuses() []models.ReviewStatus {
	out := make([]models.ReviewStatus, 0, len(b.payloads))
	for _, p := range b.payloads {
		out = append(out, p.Status)
	}
	return out
}

// fakeJudge returns a canned response or error.
type fakeJudge struct {
	response string
	err      error
	called   int
}

func (j *fakeJudge) Review(_ context.Context, _ string) (string, error) {
	j.called++
	if j.err != nil {
		return "", j.err
	}
	return j.response, nil
}

// fakeSource serves auxiliary data.
type fakeSource struct {
	config    map[string]any
	telemetry *models.TelemetryData
	err       error

	configCalls    int
	telemetryCalls int
}

func (s *fakeSource) AgentConfiguration(_ context.Context, _ string) (map[string]any, error) {
	s.configCalls++
	return s.config, s.err
}

func (s *fakeSource) Telemetry(_ context.Context, _ string) (*models.TelemetryData, error) {
	s.telemetryCalls++
	return s.telemetry, s.err
}

func testSession() *models.CallSession {
	return &models.CallSession{
		CallID:  "call-1",
		AgentID: "agent-1",
		TranscriptJSON: []models.TranscriptTurn{
			{TurnID: "t1", UserText: "hi", AgentText: "hello"},
		},
	}
}

func TestReviewCallLog_CleanCall(t *testing.T) {
	store := newFakeStore()
	broadcaster := &fakeBroadcaster{}
	judgeClient := &fakeJudge{response: `{"errors": []}`}
	o := NewOrchestrator(store, judgeClient, broadcaster, nil, nil)

	result, err := o.ReviewCallLog(context.Background(), testSession(), "agent-1")
	require.NoError(t, err)

	assert.Equal(t, 1, judgeClient.called)
	assert.Empty(t, result.Errors)
	require.Contains(t, store.completed, "call-1")
	assert.Empty(t, store.failed)

	assert.Equal(t, []models.ReviewStatus{
		models.ReviewStatusProcessing,
		models.ReviewStatusCompleted,
	}, broadcaster.statuses())

	final := broadcaster.payloads[len(broadcaster.payloads)-1]
	require.NotNil(t, final.ErrorCount)
	assert.Zero(t, *final.ErrorCount)
	require.NotNil(t, final.HasApiFailures)
	assert.False(t, *final.HasApiFailures)
}

func TestReviewCallLog_CompletedPayloadCounts(t *testing.T) {
	store := newFakeStore()
	broadcaster := &fakeBroadcaster{}
	judgeClient := &fakeJudge{response: `{"errors": [` + validFinding + `]}`}
	o := NewOrchestrator(store, judgeClient, broadcaster, nil, nil)

	result, err := o.ReviewCallLog(context.Background(), testSession(), "agent-1")
	require.NoError(t, err)
	require.Len(t, result.Errors, 1)

	final := broadcaster.payloads[len(broadcaster.payloads)-1]
	assert.Equal(t, models.ReviewStatusCompleted, final.Status)
	require.NotNil(t, final.ErrorCount)
	assert.Equal(t, 1, *final.ErrorCount)
	require.NotNil(t, final.HasApiFailures)
	assert.True(t, *final.HasApiFailures)
	require.NotNil(t, final.HasWrongActions)
	assert.False(t, *final.HasWrongActions)
}

func TestReviewCallLog_JudgeUnavailable(t *testing.T) {
	store := newFakeStore()
	broadcaster := &fakeBroadcaster{}
	judgeClient := &fakeJudge{err: &judge.UnavailableError{Op: "request", Message: "connection refused"}}
	o := NewOrchestrator(store, judgeClient, broadcaster, nil, nil)

	_, err := o.ReviewCallLog(context.Background(), testSession(), "agent-1")
	require.Error(t, err)
	assert.True(t, judge.IsUnavailable(err))

	assert.Equal(t, "judge unavailable: connection refused", store.failed["call-1"])
	assert.Empty(t, store.completed)

	final := broadcaster.payloads[len(broadcaster.payloads)-1]
	assert.Equal(t, models.ReviewStatusFailed, final.Status)
	assert.Equal(t, "judge unavailable: connection refused", final.ErrorMessage)
}

func TestReviewCallLog_EmptyVerdict(t *testing.T) {
	store := newFakeStore()
	judgeClient := &fakeJudge{err: judge.ErrEmptyVerdict}
	o := NewOrchestrator(store, judgeClient, nil, nil, nil)

	_, err := o.ReviewCallLog(context.Background(), testSession(), "agent-1")
	require.ErrorIs(t, err, judge.ErrEmptyVerdict)
	assert.Equal(t, "judge returned no usable content", store.failed["call-1"])
}

func TestReviewCallLog_MalformedVerdict(t *testing.T) {
	store := newFakeStore()
	judgeClient := &fakeJudge{response: "I could not analyze this call."}
	o := NewOrchestrator(store, judgeClient, nil, nil, nil)

	_, err := o.ReviewCallLog(context.Background(), testSession(), "agent-1")
	require.Error(t, err)

	var mv *MalformedVerdictError
	require.ErrorAs(t, err, &mv)
	assert.Contains(t, store.failed["call-1"], "malformed judge verdict")
	// Single invocation, no retry on malformed output.
	assert.Equal(t, 1, judgeClient.called)
}

func TestReviewCallLog_ProcessingUpsertFailure(t *testing.T) {
	store := newFakeStore()
	store.failProcessing = true
	broadcaster := &fakeBroadcaster{}
	judgeClient := &fakeJudge{response: `{"errors": []}`}
	o := NewOrchestrator(store, judgeClient, broadcaster, nil, nil)

	_, err := o.ReviewCallLog(context.Background(), testSession(), "agent-1")
	require.Error(t, err)

	// Judge never consulted when the record cannot be claimed durably.
	assert.Zero(t, judgeClient.called)
	require.NotEmpty(t, broadcaster.payloads)
	assert.Equal(t, models.ReviewStatusFailed, broadcaster.payloads[0].Status)
}

func TestReviewCallLog_CompletedPersistFailure(t *testing.T) {
	store := newFakeStore()
	store.failCompleted = true
	broadcaster := &fakeBroadcaster{}
	judgeClient := &fakeJudge{response: `{"errors": []}`}
	o := NewOrchestrator(store, judgeClient, broadcaster, nil, nil)

	_, err := o.ReviewCallLog(context.Background(), testSession(), "agent-1")
	require.Error(t, err)

	final := broadcaster.payloads[len(broadcaster.payloads)-1]
	assert.Equal(t, models.ReviewStatusFailed, final.Status)
}

func TestReviewCallLog_NilBroadcasterIsSafe(t *testing.T) {
	store := newFakeStore()
	judgeClient := &fakeJudge{response: `{"errors": []}`}
	o := NewOrchestrator(store, judgeClient, nil, nil, nil)

	result, err := o.ReviewCallLog(context.Background(), testSession(), "agent-1")
	require.NoError(t, err)
	assert.NotNil(t, result)
}

func TestReviewCallLog_BroadcastErrorDoesNotFailPipeline(t *testing.T) {
	store := newFakeStore()
	broadcaster := &fakeBroadcaster{err: errors.New("notify down")}
	judgeClient := &fakeJudge{response: `{"errors": []}`}
	o := NewOrchestrator(store, judgeClient, broadcaster, nil, nil)

	_, err := o.ReviewCallLog(context.Background(), testSession(), "agent-1")
	require.NoError(t, err)
	require.Contains(t, store.completed, "call-1")
}

func TestReviewCallLog_FetchesMissingAuxiliaryData(t *testing.T) {
	store := newFakeStore()
	source := &fakeSource{
		config: map[string]any{"instructions": "be nice"},
		telemetry: &models.TelemetryData{
			SessionTraces: []models.TelemetryTurn{{TurnID: "x1", UserText: "hi"}},
		},
	}
	judgeClient := &fakeJudge{response: `{"errors": []}`}
	o := NewOrchestrator(store, judgeClient, nil, source, nil)

	session := &models.CallSession{CallID: "call-1"}
	_, err := o.ReviewCallLog(context.Background(), session, "agent-1")
	require.NoError(t, err)

	assert.Equal(t, 1, source.configCalls)
	assert.Equal(t, 1, source.telemetryCalls)
	assert.NotNil(t, session.CompleteConfiguration)
	assert.NotNil(t, session.TelemetryData)
}

func TestReviewCallLog_SkipsAuxiliaryFetchWhenPresent(t *testing.T) {
	store := newFakeStore()
	source := &fakeSource{}
	judgeClient := &fakeJudge{response: `{"errors": []}`}
	o := NewOrchestrator(store, judgeClient, nil, source, nil)

	session := testSession()
	session.CompleteConfiguration = map[string]any{"instructions": "existing"}
	session.TelemetryData = &models.TelemetryData{}

	_, err := o.ReviewCallLog(context.Background(), session, "agent-1")
	require.NoError(t, err)

	assert.Zero(t, source.configCalls)
	assert.Zero(t, source.telemetryCalls)
}

func TestReviewCallLog_AuxiliaryFetchFailureTolerated(t *testing.T) {
	store := newFakeStore()
	source := &fakeSource{err: errors.New("store unreachable")}
	judgeClient := &fakeJudge{response: `{"errors": []}`}
	o := NewOrchestrator(store, judgeClient, nil, source, nil)

	_, err := o.ReviewCallLog(context.Background(), &models.CallSession{CallID: "call-1"}, "agent-1")
	require.NoError(t, err)
	require.Contains(t, store.completed, "call-1")
}

func TestQueueReview(t *testing.T) {
	store := newFakeStore()
	broadcaster := &fakeBroadcaster{}
	o := NewOrchestrator(store, &fakeJudge{}, broadcaster, nil, nil)

	require.NoError(t, o.QueueReview(context.Background(), "call-1", "agent-1"))

	assert.Equal(t, []string{"call-1"}, store.pending)
	require.Len(t, broadcaster.payloads, 1)
	assert.Equal(t, models.ReviewStatusPending, broadcaster.payloads[0].Status)
}

func TestQueueReview_RequiresCallLogID(t *testing.T) {
	o := NewOrchestrator(newFakeStore(), &fakeJudge{}, nil, nil, nil)
	assert.Error(t, o.QueueReview(context.Background(), "", "agent-1"))
}

func TestMarkFailed(t *testing.T) {
	store := newFakeStore()
	broadcaster := &fakeBroadcaster{}
	o := NewOrchestrator(store, &fakeJudge{}, broadcaster, nil, nil)

	cause := errors.New("fetching call session: not found")
	err := o.MarkFailed("call-1", cause)
	require.ErrorIs(t, err, cause)

	assert.Equal(t, "fetching call session: not found", store.failed["call-1"])
	require.Len(t, broadcaster.payloads, 1)
	assert.Equal(t, models.ReviewStatusFailed, broadcaster.payloads[0].Status)
}
