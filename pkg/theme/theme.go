package theme

import (
	"github.com/gdamore/tcell/v2"

	"github.com/adrianliechti/wingman-research/pkg/personality"
)

var Default Theme

// Auto picks the dark or light palette from the terminal background.
func Auto() {
	SetDark()

	if isLightBackground() {
		SetLight()
	}
}

type Theme struct {
	IsLight bool

	Background tcell.Color
	Foreground tcell.Color
	Selection  tcell.Color
	Muted      tcell.Color

	Red     tcell.Color
	Green   tcell.Color
	Yellow  tcell.Color
	Blue    tcell.Color
	Magenta tcell.Color
	Cyan    tcell.Color

	Helpful tcell.Color
	Formal  tcell.Color
	Casual  tcell.Color
}

// Accent is the highlight color of a personality.
func (t Theme) Accent(p personality.Personality) tcell.Color {
	switch p {
	case personality.Formal:
		return t.Formal
	case personality.Casual:
		return t.Casual
	default:
		return t.Helpful
	}
}

func SetDark() {
	Default = Theme{
		IsLight: false,

		Background: tcell.GetColor("#161821"),
		Foreground: tcell.GetColor("#c6c8d1"),
		Selection:  tcell.GetColor("#272c42"),
		Muted:      tcell.GetColor("#6b7089"),

		Red:     tcell.GetColor("#e27878"),
		Green:   tcell.GetColor("#b4be82"),
		Yellow:  tcell.GetColor("#e2a478"),
		Blue:    tcell.GetColor("#84a0c6"),
		Magenta: tcell.GetColor("#a093c7"),
		Cyan:    tcell.GetColor("#89b8c2"),

		// turquoise, burgundy (lifted for dark backgrounds), coral
		Helpful: tcell.GetColor("#14b8a6"),
		Formal:  tcell.GetColor("#c0506a"),
		Casual:  tcell.GetColor("#fb7185"),
	}
}

func SetLight() {
	Default = Theme{
		IsLight: true,

		Background: tcell.GetColor("#e8e9ec"),
		Foreground: tcell.GetColor("#33374c"),
		Selection:  tcell.GetColor("#cacdd7"),
		Muted:      tcell.GetColor("#8389a3"),

		Red:     tcell.GetColor("#cc517a"),
		Green:   tcell.GetColor("#668e3d"),
		Yellow:  tcell.GetColor("#c57339"),
		Blue:    tcell.GetColor("#2d539e"),
		Magenta: tcell.GetColor("#7759b4"),
		Cyan:    tcell.GetColor("#3f83a6"),

		Helpful: tcell.GetColor("#0f8a7d"),
		Formal:  tcell.GetColor("#800020"),
		Casual:  tcell.GetColor("#e11d48"),
	}
}
