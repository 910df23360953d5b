package markdown

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"github.com/adrianliechti/wingman-research/pkg/theme"
)

const (
	indent   = "  "
	barWidth = 2
)

// bar prefixes every wrapped line of content with a colored bar.
func bar(content string, color tcell.Color, width int) string {
	contentWidth := width - len(indent) - barWidth

	var result strings.Builder

	for _, line := range strings.Split(content, "\n") {
		for _, wl := range wrapLine(line, contentWidth) {
			fmt.Fprintf(&result, "%s[%s]┃[-] %s\n", indent, color, wl)
		}
	}

	result.WriteString("\n")

	return result.String()
}

// FormatUserMessage renders a transcript line typed by the user. The text
// is shown literally.
func FormatUserMessage(prefix, content string, accent tcell.Color, width int) string {
	line := fmt.Sprintf("[%s::b]%s:[-::-] %s", accent, prefix, tview.Escape(content))

	return bar(line, accent, width)
}

// FormatAssistantMessage renders a reply, which may contain markdown.
func FormatAssistantMessage(prefix, content string, width int) string {
	t := theme.Default

	line := fmt.Sprintf("[%s::b]%s:[-::-] %s", t.Blue, prefix, Render(content))

	return bar(line, t.Blue, width)
}

// FormatPanel renders a titled block of markdown, used for the summary and
// the converted document.
func FormatPanel(title, content string, accent tcell.Color, width int) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "[%s::b]%s[-::-]\n", accent, tview.Escape(title))
	sb.WriteString(Render(content))

	return bar(sb.String(), accent, width)
}

func FormatError(title, message string, width int) string {
	t := theme.Default

	var sb strings.Builder

	fmt.Fprintf(&sb, "[%s::b]⚠ %s[-::-]", t.Yellow, tview.Escape(title))

	for _, line := range strings.Split(message, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}

		fmt.Fprintf(&sb, "\n[%s]%s[-]", t.Muted, tview.Escape(line))
	}

	return bar(sb.String(), t.Red, width)
}

func FormatStatus(message string, width int) string {
	t := theme.Default

	return bar(fmt.Sprintf("[%s]%s[-]", t.Cyan, tview.Escape(message)), t.Cyan, width)
}

const maxToolOutput = 500

// FormatToolProgress renders a tool call that has not returned yet.
func FormatToolProgress(name, hint string, width int) string {
	t := theme.Default

	return bar(toolTitle(name, hint, "running..."), t.Yellow, width)
}

// FormatToolCall renders a finished tool call. Long output is truncated.
func FormatToolCall(name, hint, output string, isError bool, width int) string {
	t := theme.Default

	color := t.Yellow

	if isError {
		color = t.Red
	}

	if r := []rune(output); len(r) > maxToolOutput {
		output = string(r[:maxToolOutput]) + "..."
	}

	var sb strings.Builder

	sb.WriteString(toolTitle(name, hint, ""))

	for _, line := range strings.Split(strings.TrimRight(output, "\n"), "\n") {
		fmt.Fprintf(&sb, "\n[%s]%s[-]", t.Muted, tview.Escape(line))
	}

	return bar(sb.String(), color, width)
}

func toolTitle(name, hint, fallback string) string {
	t := theme.Default

	if hint == "" {
		hint = fallback
	}

	title := fmt.Sprintf("[%s::b]⚡ %s[-::-]", t.Yellow, tview.Escape(name))

	if hint != "" {
		title += fmt.Sprintf(" [%s]%s[-]", t.Muted, tview.Escape(hint))
	}

	return title
}
