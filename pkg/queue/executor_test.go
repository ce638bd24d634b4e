package queue

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/voiceops/callaudit/ent"
	"github.com/voiceops/callaudit/ent/reviewrecord"
	"github.com/voiceops/callaudit/pkg/models"
	"github.com/voiceops/callaudit/pkg/review"
)

// memStore is an in-memory review.Store for executor tests.
type memStore struct {
	statuses map[string]models.ReviewStatus
	failures map[string]string
}

func newMemStore() *memStore {
	return &memStore{
		statuses: make(map[string]models.ReviewStatus),
		failures: make(map[string]string),
	}
}

func (s *memStore) UpsertPending(_ context.Context, id, _ string) error {
	s.statuses[id] = models.ReviewStatusPending
	return nil
}

func (s *memStore) UpsertProcessing(_ context.Context, id, _ string) error {
	s.statuses[id] = models.ReviewStatusProcessing
	return nil
}

func (s *memStore) UpsertCompleted(_ context.Context, id string, _ *models.ReviewResult) error {
	s.statuses[id] = models.ReviewStatusCompleted
	return nil
}

func (s *memStore) UpsertFailed(_ context.Context, id, message string) error {
	s.statuses[id] = models.ReviewStatusFailed
	s.failures[id] = message
	return nil
}

type stubJudge struct{ response string }

func (j stubJudge) Review(context.Context, string) (string, error) {
	return j.response, nil
}

// stubFetcher serves call sessions from a map.
type stubFetcher struct {
	sessions map[string]*models.CallSession
}

func (f *stubFetcher) GetCallSession(_ context.Context, callLogID string) (*models.CallSession, error) {
	session, ok := f.sessions[callLogID]
	if !ok {
		return nil, errors.New("not found")
	}
	return session, nil
}

func claimedRecord(id, agentID string) *ent.ReviewRecord {
	return &ent.ReviewRecord{ID: id, AgentID: agentID, Status: reviewrecord.StatusProcessing}
}

func TestExecutor_Success(t *testing.T) {
	store := newMemStore()
	orchestrator := review.NewOrchestrator(store, stubJudge{response: `{"errors": []}`}, nil, nil, nil)
	fetcher := &stubFetcher{sessions: map[string]*models.CallSession{
		"call-1": {CallID: "call-1"},
	}}
	executor := NewExecutor(orchestrator, fetcher, nil)

	result := executor.Execute(context.Background(), claimedRecord("call-1", "agent-1"))

	require.NotNil(t, result)
	assert.Equal(t, reviewrecord.StatusCompleted, result.Status)
	assert.Zero(t, result.ErrorCount)
	assert.NoError(t, result.Error)
	assert.Equal(t, models.ReviewStatusCompleted, store.statuses["call-1"])
}

func TestExecutor_FetchFailureMarksFailed(t *testing.T) {
	store := newMemStore()
	orchestrator := review.NewOrchestrator(store, stubJudge{response: `{"errors": []}`}, nil, nil, nil)
	executor := NewExecutor(orchestrator, &stubFetcher{sessions: map[string]*models.CallSession{}}, nil)

	result := executor.Execute(context.Background(), claimedRecord("call-1", ""))

	require.NotNil(t, result)
	assert.Equal(t, reviewrecord.StatusFailed, result.Status)
	require.Error(t, result.Error)
	assert.Equal(t, models.ReviewStatusFailed, store.statuses["call-1"])
	assert.Contains(t, store.failures["call-1"], "fetching call session")
}

func TestExecutor_BackfillsCallID(t *testing.T) {
	store := newMemStore()
	orchestrator := review.NewOrchestrator(store, stubJudge{response: `{"errors": []}`}, nil, nil, nil)
	fetcher := &stubFetcher{sessions: map[string]*models.CallSession{
		"call-1": {}, // store row without call_id populated
	}}
	executor := NewExecutor(orchestrator, fetcher, nil)

	result := executor.Execute(context.Background(), claimedRecord("call-1", ""))

	require.NotNil(t, result)
	assert.Equal(t, reviewrecord.StatusCompleted, result.Status)
	assert.Equal(t, models.ReviewStatusCompleted, store.statuses["call-1"])
}
