package app

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"github.com/adrianliechti/wingman-research/pkg/markdown"
	"github.com/adrianliechti/wingman-research/pkg/server"
	"github.com/adrianliechti/wingman-research/pkg/theme"
)

// ServerUI shows the tool calls served by the MCP server
type ServerUI struct {
	app      *tview.Application
	logView  *tview.TextView
	hintView *tview.TextView
	infoView *tview.TextView

	stopChan chan struct{}

	width     int
	toolCount int
	addr      string
}

// NewServerUI creates the UI and the server options that feed it
func NewServerUI() (*ServerUI, *server.Options) {
	ui := &ServerUI{
		app:      tview.NewApplication(),
		stopChan: make(chan struct{}),
		width:    80,
	}

	ui.setup()

	opts := &server.Options{
		OnToolStart: func(ctx context.Context, name string, args string) {
			hint := extractToolHint(args)

			ui.app.QueueUpdateDraw(func() {
				ui.renderToolStart(name, hint)
			})
		},

		OnToolComplete: func(ctx context.Context, name string, args string, result string) {
			hint := extractToolHint(args)

			ui.app.QueueUpdateDraw(func() {
				ui.renderToolComplete(name, hint, result, false)
			})
		},

		OnToolError: func(ctx context.Context, name string, args string, err error) {
			hint := extractToolHint(args)

			ui.app.QueueUpdateDraw(func() {
				ui.renderToolComplete(name, hint, err.Error(), true)
			})
		},
	}

	return ui, opts
}

func (ui *ServerUI) setup() {
	t := theme.Default

	titleView := tview.NewTextView().
		SetDynamicColors(true).
		SetTextAlign(tview.AlignCenter)
	titleView.SetText(fmt.Sprintf("\n[%s::b]%s[-::-]\n[%s]MCP server[-]", t.Helpful, title, t.Muted))
	titleView.SetBackgroundColor(t.Background)

	ui.logView = tview.NewTextView().
		SetDynamicColors(true).
		SetScrollable(true).
		SetWordWrap(true)
	ui.logView.SetBackgroundColor(t.Background)

	ui.hintView = tview.NewTextView().
		SetDynamicColors(true)
	ui.hintView.SetBackgroundColor(t.Background)
	ui.hintView.SetText(fmt.Sprintf("  [%s]Press [%s::b]Ctrl+C[-::-] [%s]to quit[-]", t.Muted, t.Yellow, t.Muted))

	ui.infoView = tview.NewTextView().
		SetDynamicColors(true).
		SetTextAlign(tview.AlignRight)
	ui.infoView.SetBackgroundColor(t.Background)
	ui.updateInfoView()

	bottomBar := tview.NewFlex().SetDirection(tview.FlexColumn)
	bottomBar.AddItem(ui.hintView, 0, 1, false)
	bottomBar.AddItem(ui.infoView, 0, 1, false)

	flex := tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(titleView, 4, 0, false).
		AddItem(ui.logView, 0, 1, false).
		AddItem(bottomBar, 1, 0, false)

	flex.SetBackgroundColor(t.Background)

	flex.SetDrawFunc(func(screen tcell.Screen, x, y, width, height int) (int, int, int, int) {
		ui.width = width
		return x, y, width, height
	})

	ui.app.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		if event.Key() == tcell.KeyCtrlC || event.Key() == tcell.KeyEscape {
			ui.Stop()
			return nil
		}

		return event
	})

	ui.app.SetRoot(flex, true)
}

// SetServerInfo shows the listen address (call before Run)
func (ui *ServerUI) SetServerInfo(addr string) {
	ui.addr = addr
	ui.updateInfoView()
	ui.showConnectionGuide()
}

func (ui *ServerUI) showConnectionGuide() {
	t := theme.Default

	host := ui.addr

	if host == "" || host[0] == ':' {
		host = "localhost" + host
	}

	ui.logView.Clear()
	fmt.Fprintf(ui.logView, "\n")
	fmt.Fprintf(ui.logView, "  [%s]Configure your MCP client with:[-]\n\n", t.Muted)
	fmt.Fprintf(ui.logView, "  [%s::b]http://%s/mcp[-::-]\n", t.Cyan, host)
}

func (ui *ServerUI) updateInfoView() {
	t := theme.Default

	if ui.toolCount == 0 {
		ui.infoView.SetText(fmt.Sprintf("[%s]Waiting for connections...[-]  ", t.Muted))
		return
	}

	parts := []string{
		fmt.Sprintf("[%s]%d tool calls[-]", t.Muted, ui.toolCount),
	}

	if ui.addr != "" {
		parts = append(parts, fmt.Sprintf("[%s]%s[-]", t.Cyan, ui.addr))
	}

	ui.infoView.SetText(strings.Join(parts, fmt.Sprintf(" [%s]•[-] ", t.Muted)) + "  ")
}

func (ui *ServerUI) Run() error {
	return ui.app.Run()
}

// Stop stops the UI; safe to call more than once
func (ui *ServerUI) Stop() {
	select {
	case <-ui.stopChan:
	default:
		close(ui.stopChan)
	}

	ui.app.Stop()
}

// StopChan is closed when the UI is stopped
func (ui *ServerUI) StopChan() <-chan struct{} {
	return ui.stopChan
}

func (ui *ServerUI) renderToolStart(name string, hint string) {
	if ui.toolCount == 0 {
		ui.logView.Clear()
	}

	fmt.Fprint(ui.logView, markdown.FormatToolProgress(name, hint, ui.width))
	ui.logView.ScrollToEnd()
}

func (ui *ServerUI) renderToolComplete(name string, hint string, output string, isError bool) {
	ui.toolCount++
	ui.updateInfoView()

	fmt.Fprint(ui.logView, markdown.FormatToolCall(name, hint, output, isError, ui.width))
	ui.logView.ScrollToEnd()
}

// extractToolHint picks a short display hint from tool arguments
func extractToolHint(argsJSON string) string {
	var args map[string]any

	if err := json.Unmarshal([]byte(argsJSON), &args); err != nil {
		return ""
	}

	for _, key := range []string{"message", "path", "name", "personality"} {
		if val, ok := args[key].(string); ok && val != "" {
			val = strings.Join(strings.Fields(val), " ")

			if r := []rune(val); len(r) > 50 {
				val = string(r[:47]) + "..."
			}

			return val
		}
	}

	return ""
}
