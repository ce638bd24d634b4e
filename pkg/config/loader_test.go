package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "callaudit.yaml"), []byte(content), 0o600))
	return dir
}

const minimalConfig = `
call_store:
  base_url: https://store.example.com
`

func TestInitialize_DefaultsApplied(t *testing.T) {
	dir := writeConfig(t, minimalConfig)

	cfg, err := Initialize(context.Background(), dir)
	require.NoError(t, err)

	assert.Equal(t, JudgeBackendGemini, cfg.Judge.Backend)
	assert.Equal(t, "gemini-2.5-flash", cfg.Judge.Model)
	assert.Equal(t, 2*time.Minute, cfg.Judge.Timeout)
	assert.Equal(t, "GOOGLE_API_KEY", cfg.Judge.APIKeyEnv)

	assert.Equal(t, 5, cfg.Queue.WorkerCount)
	assert.Equal(t, 10, cfg.Queue.MaxConcurrentReviews)
	assert.Equal(t, 5*time.Minute, cfg.Queue.ReviewTimeout)

	assert.Equal(t, "https://store.example.com", cfg.CallStore.BaseURL)
	assert.Equal(t, "CALL_STORE_API_KEY", cfg.CallStore.APIKeyEnv)

	assert.Equal(t, 24*time.Hour, cfg.Retention.EventTTL)
}

func TestInitialize_UserValuesOverrideDefaults(t *testing.T) {
	dir := writeConfig(t, `
judge:
  backend: vertex
  project: my-project
  model: gemini-2.5-pro
queue:
  worker_count: 2
  review_timeout: 10m
call_store:
  base_url: https://store.example.com
system:
  allowed_ws_origins:
    - https://dashboard.example.com
  retention:
    event_ttl: 48h
`)

	cfg, err := Initialize(context.Background(), dir)
	require.NoError(t, err)

	assert.Equal(t, JudgeBackendVertex, cfg.Judge.Backend)
	assert.Equal(t, "my-project", cfg.Judge.Project)
	assert.Equal(t, "gemini-2.5-pro", cfg.Judge.Model)
	// Unset fields keep defaults
	assert.Equal(t, "us-central1", cfg.Judge.Location)

	assert.Equal(t, 2, cfg.Queue.WorkerCount)
	assert.Equal(t, 10*time.Minute, cfg.Queue.ReviewTimeout)
	assert.Equal(t, 10, cfg.Queue.MaxConcurrentReviews)

	assert.Equal(t, []string{"https://dashboard.example.com"}, cfg.AllowedWSOrigins)
	assert.Equal(t, 48*time.Hour, cfg.Retention.EventTTL)
}

func TestInitialize_EnvExpansion(t *testing.T) {
	t.Setenv("STORE_BASE_URL", "https://env.example.com")

	dir := writeConfig(t, `
call_store:
  base_url: "{{.STORE_BASE_URL}}"
`)

	cfg, err := Initialize(context.Background(), dir)
	require.NoError(t, err)
	assert.Equal(t, "https://env.example.com", cfg.CallStore.BaseURL)
}

func TestInitialize_MissingFile(t *testing.T) {
	_, err := Initialize(context.Background(), t.TempDir())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrConfigNotFound)
}

func TestInitialize_InvalidYAML(t *testing.T) {
	dir := writeConfig(t, "call_store: [not: valid: yaml")
	_, err := Initialize(context.Background(), dir)
	require.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(cfg *Config)
		wantErr bool
	}{
		{
			name:    "valid defaults",
			mutate:  func(*Config) {},
			wantErr: false,
		},
		{
			name: "unknown judge backend",
			mutate: func(cfg *Config) {
				cfg.Judge.Backend = "anthropic"
			},
			wantErr: true,
		},
		{
			name: "gemini without api_key_env",
			mutate: func(cfg *Config) {
				cfg.Judge.APIKeyEnv = ""
			},
			wantErr: true,
		},
		{
			name: "vertex without project",
			mutate: func(cfg *Config) {
				cfg.Judge.Backend = JudgeBackendVertex
				cfg.Judge.Project = ""
			},
			wantErr: true,
		},
		{
			name: "vertex with project and location",
			mutate: func(cfg *Config) {
				cfg.Judge.Backend = JudgeBackendVertex
				cfg.Judge.Project = "my-project"
			},
			wantErr: false,
		},
		{
			name: "missing model",
			mutate: func(cfg *Config) {
				cfg.Judge.Model = ""
			},
			wantErr: true,
		},
		{
			name: "zero worker count",
			mutate: func(cfg *Config) {
				cfg.Queue.WorkerCount = 0
			},
			wantErr: true,
		},
		{
			name: "heartbeat not under orphan threshold",
			mutate: func(cfg *Config) {
				cfg.Queue.HeartbeatInterval = cfg.Queue.OrphanThreshold
			},
			wantErr: true,
		},
		{
			name: "missing call store base url",
			mutate: func(cfg *Config) {
				cfg.CallStore.BaseURL = ""
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{
				Judge:     DefaultJudgeConfig(),
				Queue:     DefaultQueueConfig(),
				CallStore: DefaultCallStoreConfig(),
				Retention: DefaultRetentionConfig(),
			}
			cfg.CallStore.BaseURL = "https://store.example.com"
			tt.mutate(cfg)

			err := validate(cfg)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
