package app

import (
	"github.com/gdamore/tcell/v2"

	"github.com/adrianliechti/wingman-research/pkg/session"
	"github.com/adrianliechti/wingman-research/pkg/theme"
)

// PhaseConfig holds the spinner display of an in-flight action
type PhaseConfig struct {
	Message string
	Color   tcell.Color
}

// GetPhaseConfig returns the spinner display for an in-flight action
func GetPhaseConfig(kind session.Kind) PhaseConfig {
	t := theme.Default

	switch kind {
	case session.KindCreateAgent:
		return PhaseConfig{
			Message: "Creating agent...",
			Color:   t.Magenta,
		}
	case session.KindUpload:
		return PhaseConfig{
			Message: "Uploading and summarizing...",
			Color:   t.Yellow,
		}
	case session.KindChat:
		return PhaseConfig{
			Message: "Thinking...",
			Color:   t.Cyan,
		}
	case session.KindStatus:
		return PhaseConfig{
			Message: "Checking status...",
			Color:   t.Blue,
		}
	default:
		return PhaseConfig{
			Color: t.Muted,
		}
	}
}

// Modal is the overlay currently shown above the main layout
type Modal int

const (
	ModalNone Modal = iota
	ModalPicker
	ModalFilePicker
	ModalNotice
)

// actionTitle is the heading of a failure notice
func actionTitle(kind session.Kind) string {
	switch kind {
	case session.KindCreateAgent:
		return "Could not create agent"
	case session.KindUpload:
		return "Upload failed"
	case session.KindChat:
		return "Message not sent"
	case session.KindStatus:
		return "Status check failed"
	default:
		return "Error"
	}
}
