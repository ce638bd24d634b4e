package config

import "time"

// QueueConfig contains queue and worker pool configuration.
// These values control how pending reviews are polled, claimed, and
// processed.
type QueueConfig struct {
	// WorkerCount is the number of worker goroutines per replica/pod.
	// Each worker independently polls and processes reviews.
	WorkerCount int `yaml:"worker_count"`

	// MaxConcurrentReviews is the global limit of concurrent reviews being
	// processed across ALL replicas/pods. Enforced by database COUNT(*) check.
	MaxConcurrentReviews int `yaml:"max_concurrent_reviews"`

	// PollInterval is the base interval for checking pending reviews.
	PollInterval time.Duration `yaml:"poll_interval"`

	// PollIntervalJitter is the random jitter added to PollInterval.
	// Actual interval: PollInterval ± PollIntervalJitter.
	PollIntervalJitter time.Duration `yaml:"poll_interval_jitter"`

	// ReviewTimeout is the maximum time one review can be processed.
	ReviewTimeout time.Duration `yaml:"review_timeout"`

	// GracefulShutdownTimeout is the max time to wait for active reviews
	// to complete during shutdown. Should match ReviewTimeout.
	GracefulShutdownTimeout time.Duration `yaml:"graceful_shutdown_timeout"`

	// HeartbeatInterval is how often a worker refreshes last_interaction_at
	// on the record it is processing.
	HeartbeatInterval time.Duration `yaml:"heartbeat_interval"`

	// OrphanDetectionInterval is how often to scan for orphaned reviews.
	OrphanDetectionInterval time.Duration `yaml:"orphan_detection_interval"`

	// OrphanThreshold is how long a processing record can go without a
	// heartbeat before it is considered orphaned and requeued.
	OrphanThreshold time.Duration `yaml:"orphan_threshold"`
}

// DefaultQueueConfig returns the built-in queue defaults.
func DefaultQueueConfig() *QueueConfig {
	return &QueueConfig{
		WorkerCount:             5,
		MaxConcurrentReviews:    10,
		PollInterval:            1 * time.Second,
		PollIntervalJitter:      500 * time.Millisecond,
		ReviewTimeout:           5 * time.Minute,
		GracefulShutdownTimeout: 5 * time.Minute,
		HeartbeatInterval:       30 * time.Second,
		OrphanDetectionInterval: 2 * time.Minute,
		OrphanThreshold:         3 * time.Minute,
	}
}
