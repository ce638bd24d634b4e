package config

import "time"

// RetentionConfig controls event retention and cleanup behavior.
type RetentionConfig struct {
	// EventTTL is the maximum age of Event rows before deletion.
	// Per-review cleanup handles the normal case; this is a safety net.
	EventTTL time.Duration `yaml:"event_ttl"`

	// CleanupInterval is how often the cleanup loop runs.
	CleanupInterval time.Duration `yaml:"cleanup_interval"`
}

// DefaultRetentionConfig returns the built-in retention defaults.
func DefaultRetentionConfig() *RetentionConfig {
	return &RetentionConfig{
		EventTTL:        24 * time.Hour,
		CleanupInterval: 12 * time.Hour,
	}
}
