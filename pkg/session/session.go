package session

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"sync"

	"github.com/adrianliechti/wingman-research/pkg/personality"
)

// Session is the client state container. Every operation issues at most one
// backend request per action and never mutates state on failure.
type Session struct {
	backend Backend

	mu sync.Mutex

	personality personality.Personality

	agent *Agent
	file  *File

	summary  string
	markdown string
	upload   *Upload
	statuses []FileStatus

	transcript []Entry
	draft      string

	actions [kindCount]Action
}

func New(backend Backend, p personality.Personality) *Session {
	if !p.Valid() {
		p = personality.Default
	}

	s := &Session{
		backend:     backend,
		personality: p,
	}

	for i := range s.actions {
		s.actions[i] = idle()
	}

	return s
}

func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap := Snapshot{
		Personality: s.personality,
		Locked:      s.lockedLocked(),

		Summary:  s.summary,
		Markdown: s.markdown,
		Statuses: slices.Clone(s.statuses),

		Transcript: slices.Clone(s.transcript),
		Draft:      s.draft,

		Actions: s.actions,
	}

	if s.agent != nil {
		agent := *s.agent
		snap.Agent = &agent
	}

	if s.file != nil {
		file := *s.file
		snap.File = &file
	}

	if s.upload != nil {
		upload := *s.upload
		snap.Upload = &upload
	}

	return snap
}

func (s *Session) lockedLocked() bool {
	return s.agent != nil || s.actions[KindCreateAgent].InFlight()
}

func (s *Session) SetPersonality(p personality.Personality) error {
	if !p.Valid() {
		return fmt.Errorf("unknown personality %q", p)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.lockedLocked() {
		return ErrPersonalityLocked
	}

	s.personality = p

	return nil
}

// SelectFile replaces the selected document.
func (s *Session) SelectFile(path string) (*File, error) {
	info, err := os.Stat(path)

	if err != nil {
		return nil, fmt.Errorf("cannot select file: %w", err)
	}

	if info.IsDir() {
		return nil, fmt.Errorf("cannot select file: %s is a directory", path)
	}

	file := &File{
		Path: path,
		Name: filepath.Base(path),
		Size: info.Size(),
	}

	s.mu.Lock()
	s.file = file
	s.mu.Unlock()

	slog.Debug("file selected", "path", path, "size", info.Size())

	result := *file
	return &result, nil
}

func (s *Session) SetDraft(text string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.draft = text
}

// begin moves kind to in-flight. Must be called with mu held.
func (s *Session) begin(kind Kind) error {
	if s.actions[kind].InFlight() {
		return ErrBusy
	}

	s.actions[kind] = inFlight()

	return nil
}

func (s *Session) fail(kind Kind, err error) error {
	s.mu.Lock()
	s.actions[kind] = failed(err)
	s.mu.Unlock()

	slog.Error("request failed", "action", kind.String(), "error", err)

	return err
}

func (s *Session) CreateAgent(ctx context.Context, name string) (*Agent, error) {
	name = strings.TrimSpace(name)

	if name == "" {
		name = "no_name"
	}

	s.mu.Lock()

	if s.agent != nil {
		s.mu.Unlock()
		return nil, ErrAgentExists
	}

	if err := s.begin(KindCreateAgent); err != nil {
		s.mu.Unlock()
		return nil, err
	}

	p := s.personality

	s.mu.Unlock()

	result, err := s.backend.CreateAgent(ctx, name, p)

	if err != nil {
		return nil, s.fail(KindCreateAgent, err)
	}

	agent := &Agent{
		ID:       result.ID,
		Name:     name,
		FolderID: result.FolderID,
	}

	if result.Name != "" {
		agent.Name = result.Name
	}

	s.mu.Lock()
	s.agent = agent
	s.actions[KindCreateAgent] = succeeded()
	s.mu.Unlock()

	slog.Info("agent created", "agent_id", agent.ID, "name", agent.Name, "personality", p)

	created := *agent
	return &created, nil
}

// Upload sends the selected file and replaces summary and markdown.
func (s *Session) Upload(ctx context.Context) error {
	s.mu.Lock()

	if s.file == nil {
		s.mu.Unlock()
		return ErrNoFile
	}

	if s.agent == nil {
		s.mu.Unlock()
		return ErrNoAgent
	}

	if err := s.begin(KindUpload); err != nil {
		s.mu.Unlock()
		return err
	}

	file := *s.file
	agent := *s.agent

	s.mu.Unlock()

	f, err := os.Open(file.Path)

	if err != nil {
		return s.fail(KindUpload, fmt.Errorf("cannot open %s: %w", file.Name, err))
	}

	defer f.Close()

	result, err := s.backend.Upload(ctx, agent.ID, file.Name, f)

	if err != nil {
		return s.fail(KindUpload, err)
	}

	upload := &Upload{
		Source:   file.Name,
		FolderID: result.FolderID,

		SummaryFileID:  result.SummaryFileID,
		MarkdownFileID: result.MarkdownFileID,
	}

	if upload.FolderID == "" {
		upload.FolderID = agent.FolderID
	}

	if upload.MarkdownFileID == "" {
		upload.MarkdownFileID = result.FileID
	}

	s.mu.Lock()
	s.summary = result.Summary
	s.markdown = result.MarkdownText
	s.upload = upload
	s.statuses = nil
	s.actions[KindUpload] = succeeded()
	s.mu.Unlock()

	slog.Info("document uploaded", "file", file.Name, "agent_id", agent.ID, "folder_id", upload.FolderID)

	return nil
}

// Send sends text to the agent and appends the exchange to the transcript.
func (s *Session) Send(ctx context.Context, text string) (string, error) {
	return s.send(ctx, text, false)
}

// SendDraft sends the current draft and clears it on success.
func (s *Session) SendDraft(ctx context.Context) (string, error) {
	s.mu.Lock()
	text := s.draft
	s.mu.Unlock()

	return s.send(ctx, text, true)
}

func (s *Session) send(ctx context.Context, text string, draft bool) (string, error) {
	s.mu.Lock()

	if s.agent == nil {
		s.mu.Unlock()
		return "", ErrNoAgent
	}

	if strings.TrimSpace(text) == "" {
		s.mu.Unlock()
		return "", ErrEmptyMessage
	}

	if err := s.begin(KindChat); err != nil {
		s.mu.Unlock()
		return "", err
	}

	agentID := s.agent.ID

	s.mu.Unlock()

	result, err := s.backend.Chat(ctx, agentID, text)

	if err != nil {
		return "", s.fail(KindChat, err)
	}

	s.mu.Lock()

	s.transcript = append(s.transcript,
		Entry{Speaker: SpeakerUser, Text: text},
		Entry{Speaker: SpeakerAssistant, Text: result.Reply},
	)

	if draft && s.draft == text {
		s.draft = ""
	}

	s.actions[KindChat] = succeeded()

	s.mu.Unlock()

	slog.Debug("chat exchange", "agent_id", agentID, "message", text, "reply", result.Reply)

	return result.Reply, nil
}

// CheckStatus queries the processing status of the files created by the
// last upload.
func (s *Session) CheckStatus(ctx context.Context) ([]FileStatus, error) {
	s.mu.Lock()

	if s.agent == nil {
		s.mu.Unlock()
		return nil, ErrNoAgent
	}

	if s.upload == nil || len(s.upload.fileIDs()) == 0 {
		s.mu.Unlock()
		return nil, ErrNoUpload
	}

	if err := s.begin(KindStatus); err != nil {
		s.mu.Unlock()
		return nil, err
	}

	agentID := s.agent.ID
	upload := *s.upload

	s.mu.Unlock()

	var statuses []FileStatus

	for _, id := range upload.fileIDs() {
		status, err := s.backend.UploadStatus(ctx, agentID, upload.FolderID, id)

		if err != nil {
			return nil, s.fail(KindStatus, err)
		}

		statuses = append(statuses, FileStatus{
			FileID: id,
			Status: status.Status,
		})
	}

	s.mu.Lock()
	s.statuses = statuses
	s.actions[KindStatus] = succeeded()
	s.mu.Unlock()

	slog.Info("upload status", "folder_id", upload.FolderID, "statuses", statuses)

	return slices.Clone(statuses), nil
}
