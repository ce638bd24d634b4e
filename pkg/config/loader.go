package config

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"dario.cat/mergo"
	"gopkg.in/yaml.v3"
)

// CallauditYAMLConfig represents the complete callaudit.yaml file structure
type CallauditYAMLConfig struct {
	System    *SystemYAMLConfig `yaml:"system"`
	Judge     *JudgeConfig      `yaml:"judge"`
	Queue     *QueueConfig      `yaml:"queue"`
	CallStore *CallStoreConfig  `yaml:"call_store"`
}

// SystemYAMLConfig groups system-wide infrastructure settings.
type SystemYAMLConfig struct {
	AllowedWSOrigins []string         `yaml:"allowed_ws_origins"`
	Retention        *RetentionConfig `yaml:"retention"`
}

// Initialize loads, validates, and returns ready-to-use configuration.
// This is the primary entry point for configuration loading.
//
// Steps performed:
//  1. Load callaudit.yaml from configDir
//  2. Expand environment variables
//  3. Merge user-provided values over built-in defaults
//  4. Validate the result
func Initialize(ctx context.Context, configDir string) (*Config, error) {
	log := slog.With("config_dir", configDir)
	log.Info("Initializing configuration")

	cfg, err := load(ctx, configDir)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidationFailed, err)
	}

	log.Info("Configuration initialized successfully",
		"judge_backend", cfg.Judge.Backend,
		"judge_model", cfg.Judge.Model,
		"worker_count", cfg.Queue.WorkerCount)

	return cfg, nil
}

// load is the internal loader (not exported)
func load(_ context.Context, configDir string) (*Config, error) {
	var fileConfig CallauditYAMLConfig
	if err := loadYAML(configDir, "callaudit.yaml", &fileConfig); err != nil {
		return nil, NewLoadError("callaudit.yaml", err)
	}

	// Start with defaults, then merge user config on top so unset fields
	// keep their default values.
	judgeConfig := DefaultJudgeConfig()
	if fileConfig.Judge != nil {
		if err := mergo.Merge(judgeConfig, fileConfig.Judge, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("failed to merge judge config: %w", err)
		}
	}

	queueConfig := DefaultQueueConfig()
	if fileConfig.Queue != nil {
		if err := mergo.Merge(queueConfig, fileConfig.Queue, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("failed to merge queue config: %w", err)
		}
	}

	callStoreConfig := DefaultCallStoreConfig()
	if fileConfig.CallStore != nil {
		if err := mergo.Merge(callStoreConfig, fileConfig.CallStore, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("failed to merge call store config: %w", err)
		}
	}

	retentionConfig := DefaultRetentionConfig()
	var allowedWSOrigins []string
	if fileConfig.System != nil {
		allowedWSOrigins = fileConfig.System.AllowedWSOrigins
		if fileConfig.System.Retention != nil {
			if err := mergo.Merge(retentionConfig, fileConfig.System.Retention, mergo.WithOverride); err != nil {
				return nil, fmt.Errorf("failed to merge retention config: %w", err)
			}
		}
	}

	return &Config{
		configDir:        configDir,
		Judge:            judgeConfig,
		Queue:            queueConfig,
		CallStore:        callStoreConfig,
		Retention:        retentionConfig,
		AllowedWSOrigins: allowedWSOrigins,
	}, nil
}

// loadYAML reads a config file, expands environment variables, and
// parses the YAML into target.
func loadYAML(configDir, filename string, target any) error {
	path := filepath.Join(configDir, filename)

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("%w: %s", ErrConfigNotFound, path)
		}
		return err
	}

	// {{.VAR}} template syntax; literal $ characters pass through.
	data = ExpandEnv(data)

	if err := yaml.Unmarshal(data, target); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidYAML, err)
	}
	return nil
}

// validate performs cross-field validation on the loaded configuration.
func validate(cfg *Config) error {
	j := cfg.Judge
	switch j.Backend {
	case JudgeBackendGemini:
		if j.APIKeyEnv == "" {
			return NewValidationError("judge", j.Backend, "api_key_env", ErrMissingRequiredField)
		}
	case JudgeBackendVertex:
		if j.Project == "" {
			return NewValidationError("judge", j.Backend, "project", ErrMissingRequiredField)
		}
		if j.Location == "" {
			return NewValidationError("judge", j.Backend, "location", ErrMissingRequiredField)
		}
	default:
		return NewValidationError("judge", j.Backend, "backend", ErrInvalidValue)
	}
	if j.Model == "" {
		return NewValidationError("judge", j.Backend, "model", ErrMissingRequiredField)
	}
	if j.Timeout <= 0 {
		return NewValidationError("judge", j.Backend, "timeout", ErrInvalidValue)
	}

	q := cfg.Queue
	if q.WorkerCount <= 0 {
		return NewValidationError("queue", "queue", "worker_count", ErrInvalidValue)
	}
	if q.MaxConcurrentReviews <= 0 {
		return NewValidationError("queue", "queue", "max_concurrent_reviews", ErrInvalidValue)
	}
	if q.HeartbeatInterval >= q.OrphanThreshold {
		return NewValidationError("queue", "queue", "heartbeat_interval", ErrInvalidValue)
	}

	if cfg.CallStore.BaseURL == "" {
		return NewValidationError("call_store", "call_store", "base_url", ErrMissingRequiredField)
	}

	return nil
}
