package extract

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTruncate(t *testing.T) {
	tests := []struct {
		name  string
		input string
		limit int
		want  string
	}{
		{
			name:  "short string unchanged",
			input: "hello",
			limit: 10,
			want:  "hello",
		},
		{
			name:  "exactly at limit unchanged",
			input: "hello",
			limit: 5,
			want:  "hello",
		},
		{
			name:  "over limit gets marker",
			input: "hello world",
			limit: 5,
			want:  "hello" + TruncationMarker,
		},
		{
			name:  "empty string",
			input: "",
			limit: 5,
			want:  "",
		},
		{
			name:  "zero limit disables truncation",
			input: "hello",
			limit: 0,
			want:  "hello",
		},
		{
			name:  "negative limit disables truncation",
			input: "hello",
			limit: -1,
			want:  "hello",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Truncate(tt.input, tt.limit))
		})
	}
}

func TestTruncateAtFieldBudgets(t *testing.T) {
	long := strings.Repeat("x", 20000)

	turn := Truncate(long, MaxTurnTextChars)
	assert.Len(t, turn, MaxTurnTextChars+len(TruncationMarker))
	assert.True(t, strings.HasSuffix(turn, TruncationMarker))

	instr := Truncate(long, MaxInstructionChars)
	assert.Len(t, instr, MaxInstructionChars+len(TruncationMarker))

	body := Truncate(long, MaxBodyChars)
	assert.Len(t, body, MaxBodyChars+len(TruncationMarker))
}
