package app

import (
	"context"
	"log/slog"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"github.com/adrianliechti/wingman-research/pkg/config"
	"github.com/adrianliechti/wingman-research/pkg/session"
)

type App struct {
	// Core dependencies
	app     *tview.Application
	session *session.Session
	config  *config.Config

	ctx    context.Context
	cancel context.CancelFunc

	// UI Components
	pages      *tview.Pages
	header     *tview.TextView
	chatView   *tview.TextView
	input      *tview.TextArea
	statusBar  *tview.TextView
	inputHint  *tview.TextView
	inputFrame *tview.Frame

	// Layout containers
	chatContainer *tview.Flex
	inputSection  *tview.Flex
	mainLayout    *tview.Flex

	// Components
	spinner *Spinner

	// State, only touched on the event loop
	activeModal Modal
	notices     []notice
	pending     map[session.Kind]int
	chatWidth   int
}

func New(ctx context.Context, cfg *config.Config, s *session.Session) *App {
	ctx, cancel := context.WithCancel(ctx)

	return &App{
		app:     tview.NewApplication(),
		session: s,
		config:  cfg,

		ctx:    ctx,
		cancel: cancel,

		pending: make(map[session.Kind]int),
	}
}

// stop cancels outstanding requests and leaves the event loop
func (a *App) stop() {
	a.cancel()

	a.app.EnableMouse(false)
	a.app.Stop()
}

func (a *App) Run() error {
	defer a.cancel()

	a.build()

	slog.Info("ui started", "base_url", a.config.BaseURL, "personality", a.config.Personality)

	return a.app.SetRoot(a.pages, true).EnableMouse(true).Run()
}

// build creates the widgets and pages without touching the terminal
func (a *App) build() {
	a.setupUI()

	mainLayout := a.buildLayout()
	a.spinner = NewSpinner(a.app, a.inputHint, a.updateInputHint)

	a.pages = tview.NewPages()
	a.pages.SetBackgroundColor(tcell.ColorDefault)
	a.pages.AddPage("main", mainLayout, true, true)

	a.refresh()
}

// dispatch runs fn off the event loop and reports its outcome back on it.
// A second request of the same kind is refused while one is pending.
func (a *App) dispatch(kind session.Kind, fn func(ctx context.Context) error, done func(err error)) {
	if a.pending[kind] > 0 {
		a.showError(kind, session.ErrBusy)
		return
	}

	a.pending[kind]++
	a.updateSpinner()
	a.updateStatusBar()

	go func() {
		err := fn(a.ctx)

		a.app.QueueUpdateDraw(func() {
			a.pending[kind]--

			if done != nil {
				done(err)
			}

			a.refresh()
			a.updateSpinner()

			if err != nil && a.ctx.Err() == nil {
				a.showError(kind, err)
			}
		})
	}()
}

func (a *App) updateSpinner() {
	for _, kind := range session.Kinds {
		if a.pending[kind] > 0 {
			a.spinner.Start(kind)
			return
		}
	}

	a.spinner.Stop()
}
