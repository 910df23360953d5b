package markdown

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// tview color and style tags, e.g. [red], [#ff0000::b], [-]
var tagRe = regexp.MustCompile(`\[[a-zA-Z0-9#:,_-]*\]`)

func visibleLen(s string) int {
	return utf8.RuneCountInString(tagRe.ReplaceAllString(s, ""))
}

// wrapLine breaks line at spaces so that no piece is wider than width
// visible runes. Tags do not count towards the width. Words longer than
// width are kept whole.
func wrapLine(line string, width int) []string {
	if width <= 0 || visibleLen(line) <= width {
		return []string{line}
	}

	var lines []string

	var current strings.Builder
	currentLen := 0

	for _, word := range strings.Split(line, " ") {
		wordLen := visibleLen(word)

		if currentLen > 0 && currentLen+1+wordLen > width {
			lines = append(lines, current.String())
			current.Reset()
			currentLen = 0
		}

		if currentLen > 0 {
			current.WriteByte(' ')
			currentLen++
		}

		current.WriteString(word)
		currentLen += wordLen
	}

	if current.Len() > 0 {
		lines = append(lines, current.String())
	}

	return lines
}
