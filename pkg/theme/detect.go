package theme

import (
	"os"
	"strconv"
	"strings"
)

func isLightBackground() bool {
	// COLORFGBG is "fg;bg" (sometimes "fg;default;bg"), 7 and 15 are white
	if val := os.Getenv("COLORFGBG"); val != "" {
		parts := strings.Split(val, ";")

		if len(parts) >= 2 {
			bg, _ := strconv.Atoi(parts[len(parts)-1])
			return bg == 7 || bg == 15
		}
	}

	return queryTerminalBackground()
}

// parseLuma reads an OSC 11 reply ("rgb:rrrr/gggg/bbbb") and returns the
// relative luminance in [0, 1].
func parseLuma(s string) float64 {
	i := strings.Index(s, "rgb:")

	if i == -1 {
		return 0
	}

	parts := strings.SplitN(s[i+4:], "/", 3)

	if len(parts) < 3 {
		return 0
	}

	r := parseHex(parts[0])
	g := parseHex(parts[1])
	b := parseHex(strings.TrimRight(parts[2], "\x07\x1b\\"))

	return 0.299*float64(r)/255 + 0.587*float64(g)/255 + 0.114*float64(b)/255
}

func parseHex(s string) int {
	if len(s) == 4 {
		s = s[:2]
	}

	v, _ := strconv.ParseInt(s, 16, 32)

	return int(v)
}
