package config

import "time"

// Judge backend identifiers.
const (
	JudgeBackendGemini = "gemini"
	JudgeBackendVertex = "vertex"
)

// JudgeConfig selects and parameterizes the LLM judge backend.
type JudgeConfig struct {
	// Backend is "gemini" (API key via the genai SDK) or "vertex"
	// (Vertex AI REST endpoint with service-account credentials).
	Backend string `yaml:"backend"`

	// Model is the model identifier, e.g. "gemini-2.5-flash".
	Model string `yaml:"model"`

	// Timeout bounds one judge request end to end.
	Timeout time.Duration `yaml:"timeout"`

	// APIKeyEnv names the environment variable holding the Gemini API key.
	APIKeyEnv string `yaml:"api_key_env"`

	// Project and Location select the Vertex AI deployment.
	Project  string `yaml:"project"`
	Location string `yaml:"location"`

	// ServiceAccountKeyEnv names the environment variable holding the
	// path to the service-account JSON key file for the vertex backend.
	ServiceAccountKeyEnv string `yaml:"service_account_key_env"`
}

// DefaultJudgeConfig returns the built-in judge defaults.
func DefaultJudgeConfig() *JudgeConfig {
	return &JudgeConfig{
		Backend:              JudgeBackendGemini,
		Model:                "gemini-2.5-flash",
		Timeout:              2 * time.Minute,
		APIKeyEnv:            "GOOGLE_API_KEY",
		Location:             "us-central1",
		ServiceAccountKeyEnv: "GOOGLE_SERVICE_ACCOUNT_KEY",
	}
}
