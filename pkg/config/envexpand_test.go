package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"gopkg.in/yaml.v3"
)

func TestExpandEnv(t *testing.T) {
	tests := []struct {
		name  string
		input string
		env   map[string]string
		want  string
	}{
		{
			name:  "simple substitution with {{.VAR}}",
			input: "api_key_env: {{.JUDGE_KEY_VAR}}",
			env:   map[string]string{"JUDGE_KEY_VAR": "GOOGLE_API_KEY"},
			want:  "api_key_env: GOOGLE_API_KEY",
		},
		{
			name:  "literal ${VAR} is NOT expanded (no collision)",
			input: "pattern: ${CALL_ID}",
			env:   map[string]string{"CALL_ID": "123"},
			want:  "pattern: ${CALL_ID}",
		},
		{
			name:  "literal $VAR is NOT expanded (no collision)",
			input: "regex: ^secret.*$",
			env:   map[string]string{},
			want:  "regex: ^secret.*$",
		},
		{
			name:  "multiple substitutions in one line",
			input: "base_url: {{.PROTOCOL}}://{{.HOST}}:{{.PORT}}",
			env: map[string]string{
				"PROTOCOL": "https",
				"HOST":     "store.example.com",
				"PORT":     "443",
			},
			want: "base_url: https://store.example.com:443",
		},
		{
			name:  "missing variable expands to empty",
			input: "endpoint: {{.MISSING_VAR}}",
			env:   map[string]string{},
			want:  "endpoint: ",
		},
		{
			name:  "no substitution when no variables",
			input: "static: value",
			env:   map[string]string{"UNUSED": "value"},
			want:  "static: value",
		},
		{
			name:  "variables in nested YAML structure",
			input: "call_store:\n  base_url: {{.STORE_URL}}\n  timeout: {{.STORE_TIMEOUT}}",
			env: map[string]string{
				"STORE_URL":     "https://store.internal",
				"STORE_TIMEOUT": "30s",
			},
			want: "call_store:\n  base_url: https://store.internal\n  timeout: 30s",
		},
		{
			name:  "special characters in expanded value",
			input: "password: {{.PASSWORD}}",
			env:   map[string]string{"PASSWORD": "p@ssw0rd!#$%"},
			want:  "password: p@ssw0rd!#$%",
		},
		{
			name:  "literal dollar sign is preserved",
			input: "password: p@ss$word",
			env:   map[string]string{},
			want:  "password: p@ss$word",
		},
		{
			name:  "adjacent variables without separator",
			input: "{{.VAR1}}{{.VAR2}}",
			env: map[string]string{
				"VAR1": "hello",
				"VAR2": "world",
			},
			want: "helloworld",
		},
		{
			name:  "empty string variable",
			input: "value: {{.EMPTY}}",
			env:   map[string]string{"EMPTY": ""},
			want:  "value: ",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			result := ExpandEnv([]byte(tt.input))
			assert.Equal(t, tt.want, string(result))
		})
	}
}

func TestExpandEnvPreservesOriginalWhenNoVariables(t *testing.T) {
	input := `
# This is a comment
judge:
  backend: gemini
  model: "gemini-2.5-flash"
queue:
  worker_count: 5
`

	result := ExpandEnv([]byte(input))
	assert.Equal(t, input, string(result), "Content without variables should be unchanged")
}

// Malformed template syntax passes through unchanged so the YAML parser
// can surface a clearer error.
func TestExpandEnvMalformedTemplates(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{
			name:  "unclosed template",
			input: "api_key_env: {{.API_KEY",
		},
		{
			name:  "only opening braces",
			input: "api_key_env: {{",
		},
		{
			name:  "missing one closing brace",
			input: "api_key_env: {{.API_KEY}",
		},
		{
			name:  "variable without leading dot",
			input: "api_key_env: {{API_KEY}}",
		},
		{
			name:  "space in variable name",
			input: "api_key_env: {{.API KEY}}",
		},
		{
			name:  "unclosed template in middle of valid YAML",
			input: "host: localhost\napi_key_env: {{.API_KEY\nport: 8080",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("API_KEY", "should-not-appear")

			result := ExpandEnv([]byte(tt.input))

			assert.Equal(t, tt.input, string(result),
				"Malformed template should be passed through unchanged")
			assert.NotContains(t, string(result), "should-not-appear",
				"Malformed template should not expand environment variables")
		})
	}
}

func TestExpandEnvPassThroughToYAMLParser(t *testing.T) {
	// Malformed template in a quoted string is treated as a literal and the
	// surrounding YAML still parses.
	input := `
judge:
  backend: gemini
  api_key_env: "{{.API_KEY"
`
	expanded := ExpandEnv([]byte(input))

	var result map[string]any
	err := yaml.Unmarshal(expanded, &result)
	assert.NoError(t, err)
	assert.NotNil(t, result)
}
