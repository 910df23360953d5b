package app

import (
	"fmt"
	"os"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"github.com/adrianliechti/wingman-research/pkg/files"
	"github.com/adrianliechti/wingman-research/pkg/theme"
)

const filePickerPageID = "file-picker"

// showFilePicker lists the documents below the working directory with a
// search field. Must be called from a goroutine as it walks the tree before
// showing the UI.
func (a *App) showFilePicker(initialQuery string, onSelect func(path string)) {
	matches := files.Discover(os.DirFS(a.config.WorkingDir))

	a.app.QueueUpdateDraw(func() {
		if a.activeModal != ModalNone {
			return
		}

		if len(matches) == 0 {
			a.showFailure("No documents found", fmt.Errorf("no PDF or DOCX files below %s", a.config.WorkingDir))
			return
		}

		a.activeModal = ModalFilePicker
		t := theme.Default
		filtered := files.Filter(matches, initialQuery)

		list := tview.NewList().
			ShowSecondaryText(false)
		list.SetBackgroundColor(tview.Styles.PrimitiveBackgroundColor)
		list.SetMainTextColor(t.Foreground)
		list.SetSelectedTextColor(t.Cyan)
		list.SetSelectedBackgroundColor(tview.Styles.PrimitiveBackgroundColor)

		searchInput := tview.NewInputField()
		searchInput.SetLabel("/ ")
		searchInput.SetLabelColor(t.Cyan)
		searchInput.SetFieldBackgroundColor(tview.Styles.PrimitiveBackgroundColor)
		searchInput.SetFieldTextColor(t.Foreground)
		searchInput.SetText(initialQuery)

		updateList := func(query string) {
			list.Clear()
			filtered = files.Filter(matches, query)

			for _, f := range filtered {
				list.AddItem("  "+f.Path, "", 0, nil)
			}

			if len(filtered) > 0 {
				list.SetCurrentItem(0)
			}
		}

		updateList(initialQuery)

		searchInput.SetChangedFunc(func(text string) {
			updateList(text)
		})

		selectFile := func() {
			idx := list.GetCurrentItem()

			if idx >= 0 && idx < len(filtered) {
				a.closeFilePicker()

				if onSelect != nil {
					onSelect(filtered[idx].Path)
				}
			}
		}

		list.SetSelectedFunc(func(index int, mainText string, secondaryText string, shortcut rune) {
			selectFile()
		})

		searchInput.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
			switch event.Key() {
			case tcell.KeyCtrlC, tcell.KeyEscape:
				a.closeFilePicker()

				return nil
			case tcell.KeyEnter, tcell.KeyTab:
				selectFile()

				return nil
			case tcell.KeyDown:

				if idx := list.GetCurrentItem(); idx < list.GetItemCount()-1 {
					list.SetCurrentItem(idx + 1)
				}

				return nil
			case tcell.KeyUp:

				if idx := list.GetCurrentItem(); idx > 0 {
					list.SetCurrentItem(idx - 1)
				}

				return nil
			}

			return event
		})

		list.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
			if event.Key() == tcell.KeyEscape || event.Key() == tcell.KeyCtrlC {
				a.closeFilePicker()

				return nil
			}

			if event.Key() == tcell.KeyRune {
				searchInput.SetText(searchInput.GetText() + string(event.Rune()))

				return nil
			}

			if event.Key() == tcell.KeyBackspace || event.Key() == tcell.KeyBackspace2 {
				if t := searchInput.GetText(); len(t) > 0 {
					searchInput.SetText(t[:len(t)-1])
				}

				return nil
			}

			return event
		})

		boxWidth := 60
		boxHeight := min(len(filtered)+6, 20)

		content := tview.NewFlex().SetDirection(tview.FlexRow)
		content.AddItem(searchInput, 1, 0, true)
		content.AddItem(list, 0, 1, false)

		box := tview.NewFlex().SetDirection(tview.FlexRow)
		box.Box = tview.NewBox()
		box.AddItem(content, 0, 1, true)
		box.SetBorder(true)
		box.SetBorderColor(t.Cyan)
		box.SetTitle(" Select Document ")
		box.SetTitleColor(t.Cyan)
		box.SetTitleAlign(tview.AlignCenter)
		box.SetBackgroundColor(tview.Styles.PrimitiveBackgroundColor)
		box.SetBorderPadding(1, 1, 2, 2)

		modal := tview.NewFlex().
			AddItem(nil, 0, 1, false).
			AddItem(tview.NewFlex().SetDirection(tview.FlexRow).
				AddItem(nil, 0, 1, false).
				AddItem(box, boxHeight, 0, true).
				AddItem(nil, 0, 1, false), boxWidth, 0, true).
			AddItem(nil, 0, 1, false)
		modal.SetBackgroundColor(tcell.ColorDefault)

		a.pages.AddPage(filePickerPageID, modal, true, true)
		a.app.SetFocus(searchInput)
	})
}

func (a *App) closeFilePicker() {
	a.activeModal = ModalNone

	a.pages.RemovePage(filePickerPageID)
	a.app.SetFocus(a.input)
}
