package app

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"github.com/adrianliechti/wingman-research/pkg/personality"
	"github.com/adrianliechti/wingman-research/pkg/theme"
)

const pickerPageID = "picker"

// personalityOption is one row of the personality picker
type personalityOption struct {
	Personality personality.Personality

	Label   string
	Hint    string
	Current bool
}

func personalityOptions(current personality.Personality) []personalityOption {
	if !current.Valid() {
		current = personality.Helpful
	}

	options := make([]personalityOption, 0, len(personality.All))

	for _, p := range personality.All {
		options = append(options, personalityOption{
			Personality: p,

			Label:   p.Label(),
			Hint:    p.ChatPlaceholder(),
			Current: p == current,
		})
	}

	return options
}

// mainText renders the row label in the personality's accent, with a
// marker on the active one
func (o personalityOption) mainText(t theme.Theme) string {
	marker := " "

	if o.Current {
		marker = "●"
	}

	return fmt.Sprintf("[%s]%s[-] %s", t.Accent(o.Personality), marker, tview.Escape(o.Label))
}

// showPersonalityPicker lists the personalities. Digits pick directly and
// the preview line follows the highlighted row.
func (a *App) showPersonalityPicker(current personality.Personality, onSelect func(p personality.Personality)) {
	if a.activeModal != ModalNone {
		return
	}

	options := personalityOptions(current)

	a.activeModal = ModalPicker
	t := theme.Default

	list := tview.NewList().
		ShowSecondaryText(false).
		SetHighlightFullLine(true)
	list.SetBackgroundColor(tview.Styles.PrimitiveBackgroundColor)
	list.SetMainTextColor(t.Foreground)
	list.SetSelectedTextColor(t.Foreground)
	list.SetSelectedBackgroundColor(t.Selection)
	list.SetShortcutColor(t.Muted)

	preview := tview.NewTextView().
		SetDynamicColors(true).
		SetWrap(true)
	preview.SetBackgroundColor(tview.Styles.PrimitiveBackgroundColor)

	box := tview.NewFlex().SetDirection(tview.FlexRow)
	box.Box = tview.NewBox()

	width := 0
	index := 0

	for i, o := range options {
		if o.Current {
			index = i
		}

		width = max(width, len(o.Label), len(o.Hint))

		list.AddItem(o.mainText(t), "", rune('1'+i), nil)
	}

	highlight := func(i int) {
		o := options[i]

		preview.SetText(fmt.Sprintf("[%s::i]%s[-::-]", t.Muted, tview.Escape(o.Hint)))
		box.SetBorderColor(t.Accent(o.Personality))
		box.SetTitleColor(t.Accent(o.Personality))
	}

	list.SetChangedFunc(func(i int, _ string, _ string, _ rune) {
		highlight(i)
	})

	list.SetSelectedFunc(func(i int, _ string, _ string, _ rune) {
		a.closePicker()

		if onSelect != nil && !options[i].Current {
			onSelect(options[i].Personality)
		}
	})

	list.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		if event.Key() == tcell.KeyEscape || event.Key() == tcell.KeyCtrlC {
			a.closePicker()
			return nil
		}

		return event
	})

	list.SetCurrentItem(index)
	highlight(index)

	box.AddItem(list, len(options), 0, true)
	box.AddItem(nil, 1, 0, false)
	box.AddItem(preview, 1, 0, false)
	box.SetBorder(true)
	box.SetTitle(" Personality ")
	box.SetTitleAlign(tview.AlignCenter)
	box.SetBackgroundColor(tview.Styles.PrimitiveBackgroundColor)
	box.SetBorderPadding(1, 1, 2, 2)

	boxWidth := width + 12
	boxHeight := len(options) + 6

	modal := tview.NewFlex().
		AddItem(nil, 0, 1, false).
		AddItem(tview.NewFlex().SetDirection(tview.FlexRow).
			AddItem(nil, 0, 1, false).
			AddItem(box, boxHeight, 0, true).
			AddItem(nil, 0, 1, false), boxWidth, 0, true).
		AddItem(nil, 0, 1, false)

	modal.SetBackgroundColor(tcell.ColorDefault)

	a.pages.AddPage(pickerPageID, modal, true, true)
	a.app.SetFocus(list)
}

func (a *App) closePicker() {
	a.activeModal = ModalNone
	a.pages.RemovePage(pickerPageID)
	a.app.SetFocus(a.input)
}
