package app

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"github.com/adrianliechti/wingman-research/pkg/markdown"
	"github.com/adrianliechti/wingman-research/pkg/session"
	"github.com/adrianliechti/wingman-research/pkg/theme"
)

const title = "Research Assistant"

func (a *App) setupUI() {
	t := theme.Default

	a.header = tview.NewTextView().
		SetDynamicColors(true)
	a.header.SetBackgroundColor(tcell.ColorDefault)

	a.chatView = tview.NewTextView().
		SetDynamicColors(true).
		SetWordWrap(false).
		SetScrollable(true)
	a.chatView.SetBorder(false)
	a.chatView.SetBackgroundColor(tcell.ColorDefault)

	inputBgColor := t.Selection
	a.input = tview.NewTextArea()
	a.input.SetBackgroundColor(inputBgColor)
	a.input.SetBorder(false)
	a.input.SetTextStyle(tcell.StyleDefault.Foreground(t.Foreground).Background(inputBgColor))
	a.input.SetPlaceholderStyle(tcell.StyleDefault.Foreground(t.Muted).Background(inputBgColor))
}

func (a *App) buildLayout() *tview.Flex {
	t := theme.Default
	inputBgColor := t.Selection

	a.inputFrame = tview.NewFrame(a.input).
		SetBorders(1, 1, 0, 0, 1, 1)
	a.inputFrame.SetBackgroundColor(inputBgColor)
	a.inputFrame.SetBorder(false)

	a.input.SetChangedFunc(func() {
		a.updateInputHeight()

		if !a.spinner.IsActive() {
			a.updateInputHint()
		}
	})

	bottomBar := tview.NewFlex().SetDirection(tview.FlexColumn)

	a.inputHint = tview.NewTextView().
		SetDynamicColors(true)
	a.inputHint.SetBackgroundColor(tcell.ColorDefault)
	a.updateInputHint()

	a.statusBar = tview.NewTextView().
		SetDynamicColors(true).
		SetTextAlign(tview.AlignRight)
	a.statusBar.SetBackgroundColor(tcell.ColorDefault)

	bottomBar.AddItem(a.inputHint, 0, 1, false)
	bottomBar.AddItem(a.statusBar, 0, 1, false)

	bottomBarContainer := tview.NewFlex().SetDirection(tview.FlexColumn)
	bottomBarContainer.AddItem(nil, 4, 0, false)
	bottomBarContainer.AddItem(bottomBar, 0, 1, false)
	bottomBarContainer.AddItem(nil, 4, 0, false)

	inputContainer := tview.NewFlex().SetDirection(tview.FlexColumn)
	inputContainer.AddItem(nil, 4, 0, false)
	inputContainer.AddItem(a.inputFrame, 0, 1, true)
	inputContainer.AddItem(nil, 4, 0, false)

	headerContainer := tview.NewFlex().SetDirection(tview.FlexColumn)
	headerContainer.AddItem(nil, 4, 0, false)
	headerContainer.AddItem(a.header, 0, 1, false)
	headerContainer.AddItem(nil, 4, 0, false)

	a.inputSection = tview.NewFlex().SetDirection(tview.FlexRow)
	a.inputSection.AddItem(inputContainer, 0, 1, true)
	a.inputSection.AddItem(bottomBarContainer, 1, 0, false)

	a.chatContainer = tview.NewFlex().SetDirection(tview.FlexColumn)
	a.chatContainer.AddItem(nil, 2, 0, false)
	a.chatContainer.AddItem(a.chatView, 0, 1, false)
	a.chatContainer.AddItem(nil, 4, 0, false)

	a.chatContainer.SetDrawFunc(func(screen tcell.Screen, x, y, width, height int) (int, int, int, int) {
		if newWidth := width - 6; newWidth != a.chatWidth {
			a.chatWidth = newWidth
			a.renderChat(a.session.Snapshot())
		}

		return x, y, width, height
	})

	a.mainLayout = tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(headerContainer, 3, 0, false).
		AddItem(a.chatContainer, 0, 1, false).
		AddItem(a.inputSection, 6, 0, true)

	a.app.SetInputCapture(a.handleInput)

	return a.mainLayout
}

// refresh redraws everything derived from the session state
func (a *App) refresh() {
	snap := a.session.Snapshot()

	a.updateHeader(snap)
	a.updateStatusBar()
	a.renderChat(snap)

	a.input.SetPlaceholder(snap.Personality.ChatPlaceholder())

	if !a.spinner.IsActive() {
		a.updateInputHint()
	}
}

func (a *App) updateInputHeight() {
	text := a.input.GetText()
	lines := strings.Count(text, "\n") + 1

	minHeight := 6
	maxHeight := 13
	height := min(max(lines+5, minHeight), maxHeight)

	a.mainLayout.ResizeItem(a.inputSection, height, 0)
}

func (a *App) updateHeader(snap session.Snapshot) {
	t := theme.Default
	accent := t.Accent(snap.Personality)

	var sb strings.Builder

	fmt.Fprintf(&sb, "\n[%s::b]%s[-::-]  [%s]•[-]  [%s]%s[-]", accent, title, t.Muted, accent, snap.Personality.Label())

	if snap.Locked {
		fmt.Fprintf(&sb, " [%s](locked)[-]", t.Muted)
	}

	a.header.SetText(sb.String())
}

func (a *App) updateStatusBar() {
	t := theme.Default
	snap := a.session.Snapshot()

	var parts []string

	if snap.Agent != nil {
		parts = append(parts, fmt.Sprintf("[%s]agent[-] [%s]%s[-]", t.Muted, t.Accent(snap.Personality), tview.Escape(snap.Agent.Name)))
	} else {
		parts = append(parts, fmt.Sprintf("[%s]no agent[-]", t.Muted))
	}

	if snap.File != nil {
		parts = append(parts, fmt.Sprintf("[%s]file[-] [%s]%s[-]", t.Muted, t.Foreground, tview.Escape(snap.File.Name)))
	}

	a.statusBar.SetText(strings.Join(parts, fmt.Sprintf(" [%s]•[-] ", t.Muted)))
}

func (a *App) updateInputHint() {
	t := theme.Default

	if a.input.GetText() == "" {
		a.inputHint.SetText(fmt.Sprintf("[%s]enter[-] [%s]send[-]  [%s]/help[-] [%s]commands[-]", t.Muted, t.Foreground, t.Muted, t.Foreground))
	} else {
		a.inputHint.SetText(fmt.Sprintf("[%s]enter[-] [%s]send[-]", t.Muted, t.Foreground))
	}
}

// renderChat rebuilds the scrollable content from a snapshot
func (a *App) renderChat(snap session.Snapshot) {
	t := theme.Default
	accent := t.Accent(snap.Personality)

	width := a.chatWidth

	if width <= 0 {
		width = 80
	}

	var sb strings.Builder

	sb.WriteString("\n")
	sb.WriteString(markdown.FormatPanel(snap.Personality.UploadPrompt(), fileLine(snap), accent, width))

	if snap.Summary != "" {
		sb.WriteString(markdown.FormatPanel("Summary", snap.Summary, accent, width))
	}

	if snap.Markdown != "" {
		sb.WriteString(markdown.FormatPanel("Document", snap.Markdown, accent, width))
	}

	for _, s := range snap.Statuses {
		sb.WriteString(markdown.FormatStatus(fmt.Sprintf("%s: %s", s.FileID, s.Status), width))
	}

	for _, e := range snap.Transcript {
		switch e.Speaker {
		case session.SpeakerUser:
			sb.WriteString(markdown.FormatUserMessage(string(e.Speaker), e.Text, accent, width))
		default:
			sb.WriteString(markdown.FormatAssistantMessage(string(e.Speaker), e.Text, width))
		}
	}

	a.chatView.SetText(sb.String())
	a.chatView.ScrollToEnd()
}

// fileLine describes the selected document as markdown
func fileLine(snap session.Snapshot) string {
	if snap.File == nil {
		return "No file selected. Use `/file` to pick a PDF or DOCX document."
	}

	line := fmt.Sprintf("Selected: **%s** (%s)", snap.File.Name, formatSize(snap.File.Size))

	if snap.Upload != nil && snap.Upload.Source == snap.File.Name {
		line += ", uploaded"
	} else {
		line += ", use `/upload` to send it"
	}

	return line
}

func formatSize(size int64) string {
	if size >= 1<<20 {
		return fmt.Sprintf("%.1f MB", float64(size)/(1<<20))
	}

	if size >= 1<<10 {
		return fmt.Sprintf("%.1f KB", float64(size)/(1<<10))
	}

	return fmt.Sprintf("%d B", size)
}
