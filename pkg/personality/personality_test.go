package personality

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		input    string
		expected Personality
	}{
		{"helpful", Helpful},
		{"formal", Formal},
		{"casual", Casual},
		{"  Formal ", Formal},
		{"CASUAL", Casual},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			p, err := Parse(tt.input)

			require.NoError(t, err)
			assert.Equal(t, tt.expected, p)
		})
	}
}

func TestParseUnknown(t *testing.T) {
	for _, input := range []string{"", "grumpy", "helpful!"} {
		_, err := Parse(input)

		assert.Error(t, err, "input %q", input)
	}
}

func TestCopyDiffersPerPersonality(t *testing.T) {
	seen := map[string]bool{}

	for _, p := range All {
		assert.NotEmpty(t, p.Label())
		assert.NotEmpty(t, p.UploadPrompt())
		assert.NotEmpty(t, p.ChatPlaceholder())

		assert.False(t, seen[p.ChatPlaceholder()], "duplicate placeholder for %s", p)
		seen[p.ChatPlaceholder()] = true
	}

	assert.Equal(t, "Enter your inquiry...", Formal.ChatPlaceholder())
	assert.Equal(t, Helpful, Default)
}
