package config

import "time"

// CallStoreConfig points at the voice platform's storage REST API, where
// call sessions, agent configurations, and telemetry live.
type CallStoreConfig struct {
	// BaseURL is the storage API root, e.g. "https://store.example.com/rest/v1".
	BaseURL string `yaml:"base_url"`

	// APIKeyEnv names the environment variable holding the API key. The
	// key is sent as both the apikey header and a bearer token.
	APIKeyEnv string `yaml:"api_key_env"`

	// Timeout bounds one storage API request.
	Timeout time.Duration `yaml:"timeout"`
}

// DefaultCallStoreConfig returns the built-in call store defaults.
func DefaultCallStoreConfig() *CallStoreConfig {
	return &CallStoreConfig{
		APIKeyEnv: "CALL_STORE_API_KEY",
		Timeout:   30 * time.Second,
	}
}
