package theme

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/adrianliechti/wingman-research/pkg/personality"
)

func TestParseLuma(t *testing.T) {
	tests := []struct {
		name  string
		input string
		light bool
	}{
		{"white", "\x1b]11;rgb:ffff/ffff/ffff\x07", true},
		{"black", "\x1b]11;rgb:0000/0000/0000\x07", false},
		{"short hex", "\x1b]11;rgb:e8/e9/ec\x1b\\", true},
		{"garbage", "nothing here", false},
		{"truncated", "rgb:ffff/ffff", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.light, parseLuma(tt.input) > 0.5)
		})
	}
}

func TestColorFGBG(t *testing.T) {
	t.Setenv("COLORFGBG", "0;15")
	assert.True(t, isLightBackground())

	t.Setenv("COLORFGBG", "15;default;0")
	assert.False(t, isLightBackground())
}

func TestAccent(t *testing.T) {
	SetDark()

	assert.Equal(t, Default.Helpful, Default.Accent(personality.Helpful))
	assert.Equal(t, Default.Formal, Default.Accent(personality.Formal))
	assert.Equal(t, Default.Casual, Default.Accent(personality.Casual))
	assert.Equal(t, Default.Helpful, Default.Accent(""))

	SetLight()

	assert.True(t, Default.IsLight)
	assert.NotEqual(t, Default.Accent(personality.Formal), Default.Accent(personality.Casual))
}
