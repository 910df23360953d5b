package markdown

import (
	"strings"
	"testing"

	"github.com/rivo/tview"
	"github.com/stretchr/testify/assert"

	"github.com/adrianliechti/wingman-research/pkg/theme"
)

// strip returns the visible text of tagged s.
func strip(s string) string {
	view := tview.NewTextView().SetDynamicColors(true)
	view.SetText(s)

	return view.GetText(true)
}

func TestRender(t *testing.T) {
	theme.SetDark()

	tests := []struct {
		name     string
		input    string
		contains []string
	}{
		{"heading", "# Title\n\nBody text", []string{"# Title", "Body text"}},
		{"emphasis", "some **bold** and *italic*", []string{"[::b]bold[::-]", "[::i]italic[::-]"}},
		{"list", "- one\n- two", []string{"•[-] one", "•[-] two"}},
		{"ordered list", "3. three\n4. four", []string{"3.", "4.", "four"}},
		{"code span", "run `go test`", []string{"go test"}},
		{"fenced code", "```go\nfunc main() {}\n```", []string{"│", "main"}},
		{"link", "[docs](https://example.com)", []string{"docs", "(https://example.com)"}},
		{"table", "| a | b |\n|---|---|\n| 1 | 2 |", []string{"a", "│", "1", "2"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Render(tt.input)

			for _, s := range tt.contains {
				assert.Contains(t, result, s)
			}
		})
	}
}

func TestRenderEscapesTags(t *testing.T) {
	result := Render("value [red] here")

	assert.Contains(t, result, "[red[]")
}

func TestRenderPlainSummary(t *testing.T) {
	result := Render("S")

	assert.Equal(t, "S", result)
}

func TestWrapLine(t *testing.T) {
	tests := []struct {
		name     string
		line     string
		width    int
		expected []string
	}{
		{"fits", "hello world", 20, []string{"hello world"}},
		{"wraps", "hello world again", 11, []string{"hello world", "again"}},
		{"long word", "abcdefghijkl mn", 5, []string{"abcdefghijkl", "mn"}},
		{"tags ignored", "[red]hello[-] world", 11, []string{"[red]hello[-] world"}},
		{"no width", "hello world", 0, []string{"hello world"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, wrapLine(tt.line, tt.width))
		})
	}
}

func TestFormatMessages(t *testing.T) {
	theme.SetDark()

	user := strip(FormatUserMessage("You", "Hello [world]", theme.Default.Helpful, 80))
	assert.Contains(t, user, "You: Hello [world]")

	assistant := strip(FormatAssistantMessage("Assistant", "Hi there", 80))
	assert.Contains(t, assistant, "Assistant: Hi there")

	panel := strip(FormatPanel("Summary", "S", theme.Default.Formal, 80))
	assert.Contains(t, panel, "Summary")
	assert.Contains(t, panel, "S")

	for _, line := range strings.Split(strings.Trim(panel, "\n"), "\n") {
		assert.True(t, strings.HasPrefix(line, "  ┃"), "line %q", line)
	}
}

func TestFormatError(t *testing.T) {
	result := strip(FormatError("Upload failed", "500 Internal Server Error\n\nSummarization failed", 80))

	assert.Contains(t, result, "Upload failed")
	assert.Contains(t, result, "Summarization failed")
	assert.Equal(t, 3, strings.Count(result, "┃"))
}

func TestFormatToolCall(t *testing.T) {
	theme.SetDark()

	progress := strip(FormatToolProgress("create_agent", "", 80))
	assert.Contains(t, progress, "create_agent running...")

	result := strip(FormatToolCall("send_message", "Hi", "echo: [Hi]", false, 80))
	assert.Contains(t, result, "send_message Hi")
	assert.Contains(t, result, "echo: [Hi]")

	long := strip(FormatToolCall("get_state", "", strings.Repeat("x", 2*maxToolOutput), true, 2*maxToolOutput))
	assert.Contains(t, long, strings.Repeat("x", maxToolOutput)+"...")
	assert.NotContains(t, long, strings.Repeat("x", maxToolOutput+1))
}
