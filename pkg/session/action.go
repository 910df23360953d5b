package session

// Kind names one user triggered action.
type Kind int

const (
	KindCreateAgent Kind = iota
	KindUpload
	KindChat
	KindStatus

	kindCount
)

var Kinds = []Kind{
	KindCreateAgent,
	KindUpload,
	KindChat,
	KindStatus,
}

func (k Kind) String() string {
	switch k {
	case KindCreateAgent:
		return "create agent"
	case KindUpload:
		return "upload"
	case KindChat:
		return "chat"
	case KindStatus:
		return "upload status"
	}

	return "unknown"
}

// Phase is the lifecycle of a single action.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseInFlight
	PhaseSucceeded
	PhaseFailed
)

func (p Phase) String() string {
	switch p {
	case PhaseInFlight:
		return "in-flight"
	case PhaseSucceeded:
		return "succeeded"
	case PhaseFailed:
		return "failed"
	}

	return "idle"
}

// Action is the state of one action. Err is set only in PhaseFailed.
type Action struct {
	Phase Phase
	Err   error
}

func (a Action) InFlight() bool {
	return a.Phase == PhaseInFlight
}

func idle() Action {
	return Action{Phase: PhaseIdle}
}

func inFlight() Action {
	return Action{Phase: PhaseInFlight}
}

func succeeded() Action {
	return Action{Phase: PhaseSucceeded}
}

func failed(err error) Action {
	return Action{Phase: PhaseFailed, Err: err}
}
