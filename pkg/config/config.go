// Package config loads and validates the callaudit.yaml configuration.
package config

// Config is the umbrella configuration object returned by Initialize()
// and used throughout the application.
type Config struct {
	configDir string

	// Judge model configuration
	Judge *JudgeConfig

	// Queue and worker pool configuration
	Queue *QueueConfig

	// Call store (voice platform storage API) configuration
	CallStore *CallStoreConfig

	// Event retention and cleanup configuration
	Retention *RetentionConfig

	// AllowedWSOrigins are extra WebSocket origin patterns beyond localhost.
	AllowedWSOrigins []string
}

// ConfigDir returns the configuration directory path
func (c *Config) ConfigDir() string {
	return c.configDir
}
