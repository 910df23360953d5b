package app

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"github.com/adrianliechti/wingman-research/pkg/clipboard"
	"github.com/adrianliechti/wingman-research/pkg/personality"
	"github.com/adrianliechti/wingman-research/pkg/session"
	"github.com/adrianliechti/wingman-research/pkg/theme"
)

func (a *App) handleInput(event *tcell.EventKey) *tcell.EventKey {
	if event.Key() == tcell.KeyCtrlC {
		a.stop()
		return nil
	}

	if a.activeModal != ModalNone {
		return event
	}

	switch event.Key() {
	case tcell.KeyEnter:
		if event.Modifiers()&tcell.ModAlt == 0 {
			a.submitInput()
			return nil
		}

	case tcell.KeyCtrlV:
		a.paste()
		return nil
	}

	return event
}

func (a *App) submitInput() {
	text := a.input.GetText()

	if strings.TrimSpace(text) == "" {
		if err := blankInputError(a.session.Snapshot()); err != nil {
			a.showError(session.KindChat, err)
		}

		return
	}

	cmd, ok := parseCommand(text)

	if !ok {
		a.sendMessage(text)
		return
	}

	a.input.SetText("", true)

	switch cmd.Name {
	case "quit":
		a.stop()

	case "help":
		a.showHelp()

	case "personality":
		a.choosePersonality(cmd.Arg)

	case "agent":
		a.createAgent(cmd.Arg)

	case "file":
		a.chooseFile(cmd.Arg)

	case "upload":
		a.dispatch(session.KindUpload, a.session.Upload, nil)

	case "copy":
		a.copyLast()

	case "status":
		a.dispatch(session.KindStatus, func(ctx context.Context) error {
			_, err := a.session.CheckStatus(ctx)
			return err
		}, nil)
	}
}

// sendMessage sends text as the draft. The input keeps the text until the
// reply arrives so a failed message can be retried.
func (a *App) sendMessage(text string) {
	a.dispatch(session.KindChat, func(ctx context.Context) error {
		a.session.SetDraft(text)

		_, err := a.session.SendDraft(ctx)
		return err
	}, func(err error) {
		if err == nil && a.input.GetText() == text {
			a.input.SetText("", true)
		}
	})
}

// blankInputError reports why an empty submission cannot be sent. Without
// an agent nothing can be sent at all; with one the input is ignored.
func blankInputError(snap session.Snapshot) error {
	if snap.Agent == nil {
		return session.ErrNoAgent
	}

	return nil
}

func (a *App) createAgent(name string) {
	if name == "" {
		name = a.config.AgentName
	}

	var agent *session.Agent

	a.dispatch(session.KindCreateAgent, func(ctx context.Context) error {
		var err error
		agent, err = a.session.CreateAgent(ctx, name)
		return err
	}, func(err error) {
		if err != nil {
			return
		}

		a.showNotice(agentNotice(agent))
	})
}

func agentNotice(agent *session.Agent) notice {
	return notice{
		Title: "Agent created",
		Body:  fmt.Sprintf("%s\nID: %s", tview.Escape(agent.Name), tview.Escape(agent.ID)),
	}
}

func (a *App) choosePersonality(arg string) {
	snap := a.session.Snapshot()

	if snap.Locked {
		a.showFailure("Personality", session.ErrPersonalityLocked)
		return
	}

	if arg != "" {
		p, err := personality.Parse(arg)

		if err == nil {
			err = a.session.SetPersonality(p)
		}

		if err != nil {
			a.showFailure("Personality", err)
		}

		a.refresh()
		return
	}

	a.showPersonalityPicker(snap.Personality, func(p personality.Personality) {
		if err := a.session.SetPersonality(p); err != nil {
			a.showFailure("Personality", err)
		}

		a.refresh()
	})
}

func (a *App) chooseFile(arg string) {
	if arg == "" {
		go a.showFilePicker("", a.selectFile)
		return
	}

	a.selectFile(arg)
}

func (a *App) selectFile(path string) {
	if !filepath.IsAbs(path) {
		path = filepath.Join(a.config.WorkingDir, filepath.FromSlash(path))
	}

	if _, err := a.session.SelectFile(path); err != nil {
		a.showFailure("File not selected", err)
	}

	a.refresh()
}

func (a *App) showHelp() {
	t := theme.Default

	var sb strings.Builder

	for i, c := range commands {
		if i > 0 {
			sb.WriteString("\n")
		}

		fmt.Fprintf(&sb, "[%s]%s[-] %s", t.Cyan, tview.Escape(fmt.Sprintf("%-22s", c.Usage)), c.Help)
	}

	sb.WriteString("\n\nAnything else is sent to the agent.")

	a.showNotice(notice{
		Title: "Commands",
		Body:  sb.String(),
	})
}

// copyLast puts the latest reply, or the summary before the first reply,
// on the clipboard
func (a *App) copyLast() {
	snap := a.session.Snapshot()

	text := snap.Summary

	for _, e := range snap.Transcript {
		if e.Speaker == session.SpeakerAssistant {
			text = e.Text
		}
	}

	if text == "" {
		a.showFailure("Nothing to copy", errors.New("there is no reply or summary yet"))
		return
	}

	if err := clipboard.WriteText(text); err != nil {
		a.showFailure("Copy failed", err)
		return
	}

	t := theme.Default
	a.inputHint.SetText(fmt.Sprintf("[%s]copied to clipboard[-]", t.Green))
}

func (a *App) paste() {
	text, err := clipboard.ReadText()

	if err != nil || text == "" {
		return
	}

	_, start, end := a.input.GetSelection()
	a.input.Replace(start, end, text)
}
