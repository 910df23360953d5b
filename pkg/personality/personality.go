package personality

import (
	"fmt"
	"strings"
)

// Personality is forwarded to the backend when an agent is created.
type Personality string

const (
	Helpful Personality = "helpful"
	Formal  Personality = "formal"
	Casual  Personality = "casual"
)

const Default = Helpful

var All = []Personality{
	Helpful,
	Formal,
	Casual,
}

func Parse(s string) (Personality, error) {
	p := Personality(strings.ToLower(strings.TrimSpace(s)))

	if !p.Valid() {
		return "", fmt.Errorf("unknown personality %q (expected helpful, formal or casual)", s)
	}

	return p, nil
}

func (p Personality) Valid() bool {
	switch p {
	case Helpful, Formal, Casual:
		return true
	}

	return false
}

func (p Personality) String() string {
	return string(p)
}

// Label is the human readable name shown in pickers.
func (p Personality) Label() string {
	switch p {
	case Formal:
		return "Formal"
	case Casual:
		return "Casual"
	default:
		return "Helpful (Default)"
	}
}

// UploadPrompt is the heading shown above the document upload.
func (p Personality) UploadPrompt() string {
	switch p {
	case Formal:
		return "Please upload a relevant research document for my analysis."
	case Casual:
		return "Hey ya! Drop a research doc here and I'll check it out!"
	default:
		return "Upload a relevant research document you'd like me to read"
	}
}

// ChatPlaceholder is the hint shown in an empty chat input.
func (p Personality) ChatPlaceholder() string {
	switch p {
	case Formal:
		return "Enter your inquiry..."
	case Casual:
		return "Got a question? Shoot!"
	default:
		return "Ask me something about your uploaded documents..."
	}
}
