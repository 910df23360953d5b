package app

import (
	"fmt"
	"sync"
	"time"

	"github.com/rivo/tview"

	"github.com/adrianliechti/wingman-research/pkg/session"
)

var spinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

// Spinner provides an animated status indicator
type Spinner struct {
	view     *tview.TextView
	app      *tview.Application
	ticker   *time.Ticker
	stopChan chan struct{}

	mu     sync.Mutex
	active bool
	frame  int
	kind   session.Kind

	// Callback to restore hint when stopped
	onStop func()
}

// NewSpinner creates a new spinner component that renders to the given view
func NewSpinner(app *tview.Application, view *tview.TextView, onStop func()) *Spinner {
	return &Spinner{
		view:     view,
		app:      app,
		stopChan: make(chan struct{}),
		onStop:   onStop,
	}
}

// Start begins the animation for the given action, or switches to it when
// already running
func (s *Spinner) Start(kind session.Kind) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.kind = kind

	if s.active {
		s.render()
		return
	}

	s.active = true
	s.frame = 0
	s.ticker = time.NewTicker(100 * time.Millisecond)
	s.stopChan = make(chan struct{})

	s.render()
	go s.run()
}

// Stop halts the spinner animation
func (s *Spinner) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.active {
		return
	}

	s.active = false

	if s.ticker != nil {
		s.ticker.Stop()
	}

	close(s.stopChan)

	if s.onStop != nil {
		s.onStop()
	}
}

func (s *Spinner) IsActive() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.active
}

func (s *Spinner) run() {
	for {
		select {
		case <-s.stopChan:
			return

		case <-s.ticker.C:
			s.mu.Lock()

			if !s.active {
				s.mu.Unlock()
				return
			}

			s.frame = (s.frame + 1) % len(spinnerFrames)
			s.render()
			s.mu.Unlock()

			s.app.QueueUpdateDraw(func() {})
		}
	}
}

func (s *Spinner) render() {
	config := GetPhaseConfig(s.kind)

	if config.Message == "" {
		return
	}

	frame := spinnerFrames[s.frame]

	s.view.SetText(fmt.Sprintf("[%s]%s %s[-]", config.Color, frame, config.Message))
}
