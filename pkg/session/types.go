package session

import (
	"context"
	"errors"
	"io"

	"github.com/adrianliechti/wingman-research/pkg/client"
	"github.com/adrianliechti/wingman-research/pkg/personality"
)

var (
	ErrNoAgent           = errors.New("no agent created yet")
	ErrAgentExists       = errors.New("agent already created")
	ErrNoFile            = errors.New("please select a file first")
	ErrNoUpload          = errors.New("no document uploaded yet")
	ErrEmptyMessage      = errors.New("message is empty")
	ErrBusy              = errors.New("request already in progress")
	ErrPersonalityLocked = errors.New("personality is locked once the agent exists")
)

// Backend is the subset of the backend API the session drives.
type Backend interface {
	CreateAgent(ctx context.Context, name string, p personality.Personality) (*client.Agent, error)
	Upload(ctx context.Context, agentID, filename string, r io.Reader) (*client.UploadResult, error)
	UploadStatus(ctx context.Context, agentID, folderID, fileID string) (*client.UploadStatus, error)
	Chat(ctx context.Context, agentID, message string) (*client.ChatResult, error)
}

var _ Backend = (*client.Client)(nil)

type Agent struct {
	ID       string
	Name     string
	FolderID string
}

type File struct {
	Path string
	Name string
	Size int64
}

// Upload references the backend files created by the last upload.
type Upload struct {
	Source   string
	FolderID string

	SummaryFileID  string
	MarkdownFileID string
}

func (u Upload) fileIDs() []string {
	var ids []string

	for _, id := range []string{u.SummaryFileID, u.MarkdownFileID} {
		if id != "" {
			ids = append(ids, id)
		}
	}

	return ids
}

type Speaker string

const (
	SpeakerUser      Speaker = "You"
	SpeakerAssistant Speaker = "Assistant"
)

type Entry struct {
	Speaker Speaker
	Text    string
}

func (e Entry) String() string {
	return string(e.Speaker) + ": " + e.Text
}

type FileStatus struct {
	FileID string
	Status string
}

// Snapshot is a copy of the session state for rendering.
type Snapshot struct {
	Personality personality.Personality
	Locked      bool

	Agent *Agent
	File  *File

	Summary  string
	Markdown string
	Upload   *Upload
	Statuses []FileStatus

	Transcript []Entry
	Draft      string

	Actions [kindCount]Action
}

func (s Snapshot) Action(k Kind) Action {
	return s.Actions[k]
}

// Busy reports whether any action is in flight.
func (s Snapshot) Busy() bool {
	for _, a := range s.Actions {
		if a.InFlight() {
			return true
		}
	}

	return false
}

func (s Snapshot) Lines() []string {
	lines := make([]string, 0, len(s.Transcript))

	for _, e := range s.Transcript {
		lines = append(lines, e.String())
	}

	return lines
}
