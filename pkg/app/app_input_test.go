package app

import (
	"context"
	"io"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adrianliechti/wingman-research/pkg/client"
	"github.com/adrianliechti/wingman-research/pkg/config"
	"github.com/adrianliechti/wingman-research/pkg/personality"
	"github.com/adrianliechti/wingman-research/pkg/session"
	"github.com/adrianliechti/wingman-research/pkg/theme"
)

const (
	timeout = 2 * time.Second
	tick    = 5 * time.Millisecond
)

// chatBackend holds every chat call until release is closed
type chatBackend struct {
	mu       sync.Mutex
	messages []string

	started chan struct{}
	release chan struct{}
}

func newChatBackend() *chatBackend {
	return &chatBackend{
		started: make(chan struct{}, 8),
		release: make(chan struct{}),
	}
}

func (b *chatBackend) CreateAgent(ctx context.Context, name string, p personality.Personality) (*client.Agent, error) {
	return &client.Agent{ID: "a1", Name: name}, nil
}

func (b *chatBackend) Upload(ctx context.Context, agentID, filename string, r io.Reader) (*client.UploadResult, error) {
	return &client.UploadResult{}, nil
}

func (b *chatBackend) UploadStatus(ctx context.Context, agentID, folderID, fileID string) (*client.UploadStatus, error) {
	return &client.UploadStatus{}, nil
}

func (b *chatBackend) Chat(ctx context.Context, agentID, message string) (*client.ChatResult, error) {
	b.mu.Lock()
	b.messages = append(b.messages, message)
	b.mu.Unlock()

	b.started <- struct{}{}

	select {
	case <-b.release:
	case <-ctx.Done():
		return nil, ctx.Err()
	}

	return &client.ChatResult{Reply: "echo: " + message}, nil
}

func (b *chatBackend) Messages() []string {
	b.mu.Lock()
	defer b.mu.Unlock()

	return append([]string(nil), b.messages...)
}

func newTestApp(t *testing.T, backend session.Backend) *App {
	t.Helper()

	theme.SetDark()

	cfg := &config.Config{
		BaseURL:     "http://localhost:8000",
		Timeout:     time.Second,
		AgentName:   "Research Assistant",
		Personality: personality.Helpful,
		WorkingDir:  t.TempDir(),
	}

	a := New(context.Background(), cfg, session.New(backend, personality.Helpful))
	a.build()

	t.Cleanup(func() {
		a.cancel()
		a.spinner.Stop()
	})

	return a
}

func TestBlankInputWithoutAgent(t *testing.T) {
	a := newTestApp(t, newChatBackend())

	a.input.SetText("   \n", true)
	a.submitInput()

	assert.Equal(t, ModalNotice, a.activeModal)
	assert.Zero(t, a.pending[session.KindChat])
	assert.Equal(t, "   \n", a.input.GetText())
}

func TestBlankInputWithAgent(t *testing.T) {
	a := newTestApp(t, newChatBackend())

	_, err := a.session.CreateAgent(context.Background(), "bot1")
	require.NoError(t, err)

	a.input.SetText("  ", true)
	a.submitInput()

	assert.Equal(t, ModalNone, a.activeModal)
	assert.Zero(t, a.pending[session.KindChat])
}

func TestBlankInputError(t *testing.T) {
	assert.ErrorIs(t, blankInputError(session.Snapshot{}), session.ErrNoAgent)
	assert.NoError(t, blankInputError(session.Snapshot{Agent: &session.Agent{ID: "a1"}}))
}

func TestBusyChatKeepsDraft(t *testing.T) {
	backend := newChatBackend()
	a := newTestApp(t, backend)

	_, err := a.session.CreateAgent(context.Background(), "bot1")
	require.NoError(t, err)

	a.sendMessage("first")

	select {
	case <-backend.started:
	case <-time.After(timeout):
		t.Fatal("chat did not reach the backend")
	}

	a.sendMessage("second")

	assert.Equal(t, ModalNotice, a.activeModal)
	assert.Equal(t, "first", a.session.Snapshot().Draft)

	close(backend.release)

	assert.Eventually(t, func() bool {
		snap := a.session.Snapshot()
		return len(snap.Transcript) == 2 && snap.Draft == ""
	}, timeout, tick)

	assert.Equal(t, []string{"first"}, backend.Messages())
	assert.Equal(t, []string{"You: first", "Assistant: echo: first"}, a.session.Snapshot().Lines())
}

func TestAgentNotice(t *testing.T) {
	n := agentNotice(&session.Agent{ID: "a1", Name: "bot [1]"})

	assert.Equal(t, "Agent created", n.Title)
	assert.Equal(t, "bot [1[]\nID: a1", n.Body)
	assert.NoError(t, n.Error)
}

func TestPersonalityOptions(t *testing.T) {
	options := personalityOptions(personality.Formal)

	require.Len(t, options, len(personality.All))

	for i, o := range options {
		assert.Equal(t, personality.All[i], o.Personality)
		assert.Equal(t, o.Personality == personality.Formal, o.Current)
		assert.Equal(t, o.Personality.ChatPlaceholder(), o.Hint)
	}
}

func TestPersonalityOptionsUnknown(t *testing.T) {
	options := personalityOptions("")

	for _, o := range options {
		assert.Equal(t, o.Personality == personality.Helpful, o.Current)
	}
}

func TestPersonalityOptionMarker(t *testing.T) {
	theme.SetDark()

	current := personalityOption{Personality: personality.Casual, Label: "Casual", Current: true}
	other := personalityOption{Personality: personality.Formal, Label: "Formal"}

	assert.Contains(t, current.mainText(theme.Default), "●[-] Casual")
	assert.Contains(t, other.mainText(theme.Default), " [-] Formal")
	assert.NotContains(t, other.mainText(theme.Default), "●")
}

func TestPersonalityPickerOpensAndCloses(t *testing.T) {
	a := newTestApp(t, newChatBackend())

	a.choosePersonality("")

	require.Equal(t, ModalPicker, a.activeModal)
	assert.True(t, a.pages.HasPage(pickerPageID))

	a.closePicker()

	assert.Equal(t, ModalNone, a.activeModal)
	assert.False(t, a.pages.HasPage(pickerPageID))
}

func TestPersonalityLockedAfterAgent(t *testing.T) {
	a := newTestApp(t, newChatBackend())

	_, err := a.session.CreateAgent(context.Background(), "bot1")
	require.NoError(t, err)

	a.choosePersonality("casual")

	assert.Equal(t, ModalNotice, a.activeModal)
	assert.Equal(t, personality.Helpful, a.session.Snapshot().Personality)
}
