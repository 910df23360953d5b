package app

import (
	"errors"
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"github.com/adrianliechti/wingman-research/pkg/client"
	"github.com/adrianliechti/wingman-research/pkg/markdown"
	"github.com/adrianliechti/wingman-research/pkg/session"
	"github.com/adrianliechti/wingman-research/pkg/theme"
)

const (
	noticePageID = "notice"
	noticeWidth  = 72
)

// notice is a blocking message the user has to dismiss
type notice struct {
	Title string
	Body  string

	Error error
}

func (a *App) showError(kind session.Kind, err error) {
	a.showFailure(actionTitle(kind), err)
}

func (a *App) showFailure(title string, err error) {
	a.showNotice(notice{
		Title: title,
		Error: err,
	})
}

// showNotice opens n, or queues it behind the notice already shown
func (a *App) showNotice(n notice) {
	if a.activeModal == ModalNotice {
		a.notices = append(a.notices, n)
		return
	}

	if a.activeModal != ModalNone {
		a.closeModal()
	}

	a.activeModal = ModalNotice
	t := theme.Default

	contentWidth := noticeWidth - 6

	var text string
	color := t.Cyan

	if n.Error != nil {
		color = t.Red
		text = markdown.FormatError(n.Title, describeError(n.Error), contentWidth)
	} else {
		text = fmt.Sprintf("[%s::b]%s[-::-]\n\n%s", t.Cyan, tview.Escape(n.Title), n.Body)
	}

	view := tview.NewTextView().
		SetDynamicColors(true).
		SetWordWrap(true)
	view.SetText(strings.TrimRight(text, "\n"))
	view.SetBackgroundColor(tview.Styles.PrimitiveBackgroundColor)

	hint := tview.NewTextView().
		SetDynamicColors(true).
		SetTextAlign(tview.AlignRight)
	hint.SetText(fmt.Sprintf("[%s]enter[-] [%s]dismiss[-]", t.Muted, t.Foreground))
	hint.SetBackgroundColor(tview.Styles.PrimitiveBackgroundColor)

	view.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch event.Key() {
		case tcell.KeyEnter, tcell.KeyEscape:
			a.closeNotice()
			return nil
		}

		return event
	})

	lines := strings.Count(view.GetText(true), "\n") + 1
	boxHeight := min(lines+5, 20)

	box := tview.NewFlex().SetDirection(tview.FlexRow)
	box.Box = tview.NewBox()
	box.AddItem(view, 0, 1, true)
	box.AddItem(hint, 1, 0, false)
	box.SetBorder(true)
	box.SetBorderColor(color)
	box.SetBackgroundColor(tview.Styles.PrimitiveBackgroundColor)
	box.SetBorderPadding(1, 0, 2, 2)

	modal := tview.NewFlex().
		AddItem(nil, 0, 1, false).
		AddItem(tview.NewFlex().SetDirection(tview.FlexRow).
			AddItem(nil, 0, 1, false).
			AddItem(box, boxHeight, 0, true).
			AddItem(nil, 0, 1, false), noticeWidth, 0, true).
		AddItem(nil, 0, 1, false)
	modal.SetBackgroundColor(tcell.ColorDefault)

	a.pages.AddPage(noticePageID, modal, true, true)
	a.app.SetFocus(view)
}

func (a *App) closeNotice() {
	a.activeModal = ModalNone
	a.pages.RemovePage(noticePageID)
	a.app.SetFocus(a.input)

	if len(a.notices) > 0 {
		next := a.notices[0]
		a.notices = a.notices[1:]

		a.showNotice(next)
	}
}

// closeModal drops whatever overlay is open so a notice can take its place
func (a *App) closeModal() {
	switch a.activeModal {
	case ModalPicker:
		a.closePicker()
	case ModalFilePicker:
		a.closeFilePicker()
	case ModalNotice:
		a.closeNotice()
	}
}

// describeError turns err into the lines shown below the notice title
func describeError(err error) string {
	var apiErr *client.Error

	if errors.As(err, &apiErr) {
		if apiErr.Message == "" {
			return apiErr.Status
		}

		return apiErr.Status + "\n" + apiErr.Message
	}

	return err.Error()
}
