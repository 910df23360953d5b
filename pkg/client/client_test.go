package client

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adrianliechti/wingman-research/pkg/config"
	"github.com/adrianliechti/wingman-research/pkg/personality"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	return New(&config.Config{
		BaseURL: srv.URL + "/",
		Timeout: 5 * time.Second,
	})
}

func TestCreateAgent(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/agent/create", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))

		assert.Equal(t, "bot1", body["agent_name"])
		assert.Equal(t, "formal", body["personality"])

		w.Header().Set("Content-Type", "application/json")
		io.WriteString(w, `{"agent_id":"a1","agent_name":"bot1","folder_id":"f1","personality":"formal","message":"Agent created successfully"}`)
	})

	agent, err := c.CreateAgent(context.Background(), "bot1", personality.Formal)
	require.NoError(t, err)

	assert.Equal(t, "a1", agent.ID)
	assert.Equal(t, "f1", agent.FolderID)
	assert.Equal(t, personality.Formal, agent.Personality)
}

func TestCreateAgentMissingID(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, `{"message":"ok"}`)
	})

	_, err := c.CreateAgent(context.Background(), "bot1", personality.Helpful)
	assert.Error(t, err)
}

func TestListAgents(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/agent/list", r.URL.Path)

		io.WriteString(w, `{"agents":[{"agent_id":"a1","agent_name":"bot1"},{"agent_id":"a2","agent_name":"bot2"}]}`)
	})

	agents, err := c.ListAgents(context.Background())
	require.NoError(t, err)

	require.Len(t, agents, 2)
	assert.Equal(t, "a2", agents[1].ID)
}

func TestUpload(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/upload", r.URL.Path)

		require.NoError(t, r.ParseMultipartForm(1<<20))

		assert.Equal(t, "a1", r.FormValue("agent_id"))

		f, header, err := r.FormFile("file")
		require.NoError(t, err)
		defer f.Close()

		data, _ := io.ReadAll(f)

		assert.Equal(t, "report.pdf", header.Filename)
		assert.Equal(t, "%PDF-1.4 test", string(data))

		io.WriteString(w, `{"summary":"S","markdown_text":"M","file_id_summary":"fs","file_id_markdown":"fm","folder_id":"f1","agent_id":"a1"}`)
	})

	result, err := c.Upload(context.Background(), "a1", "report.pdf", strings.NewReader("%PDF-1.4 test"))
	require.NoError(t, err)

	assert.Equal(t, "S", result.Summary)
	assert.Equal(t, "M", result.MarkdownText)
	assert.Equal(t, "fs", result.SummaryFileID)
	assert.Equal(t, "fm", result.MarkdownFileID)
	assert.Equal(t, "f1", result.FolderID)
}

func TestUploadStatus(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/upload/status", r.URL.Path)

		q := r.URL.Query()

		assert.Equal(t, "f1", q.Get("folder_id"))
		assert.Equal(t, "file 1", q.Get("file_id"))
		assert.Equal(t, "a1", q.Get("agent_id"))

		io.WriteString(w, `{"file_id":"file 1","status":"completed"}`)
	})

	status, err := c.UploadStatus(context.Background(), "a1", "f1", "file 1")
	require.NoError(t, err)

	assert.Equal(t, "completed", status.Status)
}

func TestChat(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/chat", r.URL.Path)

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))

		assert.Equal(t, "a1", body["agent_id"])
		assert.Equal(t, "Hello", body["message"])

		io.WriteString(w, `{"reply":"Hi there","conversation":[{"role":"user","content":"Hello","timestamp":null},{"role":"assistant","content":"Hi there"}]}`)
	})

	result, err := c.Chat(context.Background(), "a1", "Hello")
	require.NoError(t, err)

	assert.Equal(t, "Hi there", result.Reply)
	require.Len(t, result.Conversation, 2)
	assert.Equal(t, "assistant", result.Conversation[1].Role)
}

func TestErrors(t *testing.T) {
	tests := []struct {
		name        string
		status      int
		contentType string
		body        string
		expected    string
	}{
		{"json error", http.StatusBadRequest, "application/json", `{"error":"Missing or invalid agent_id"}`, "Missing or invalid agent_id"},
		{"json message", http.StatusInternalServerError, "application/json", `{"message":"boom"}`, "boom"},
		{"html", http.StatusInternalServerError, "text/html", `<html><body><h1>Internal Server Error</h1></body></html>`, "Internal Server Error"},
		{"plain", http.StatusBadGateway, "text/plain", "upstream down\n", "upstream down"},
		{"empty", http.StatusNotFound, "text/plain", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", tt.contentType)
				w.WriteHeader(tt.status)
				io.WriteString(w, tt.body)
			})

			_, err := c.Chat(context.Background(), "a1", "Hello")
			require.Error(t, err)

			var apiErr *Error
			require.True(t, errors.As(err, &apiErr))

			assert.Equal(t, tt.status, apiErr.StatusCode)
			assert.Equal(t, "chat", apiErr.Op)
			assert.Contains(t, apiErr.Message, tt.expected)
			assert.Contains(t, err.Error(), "chat failed")
		})
	}
}

func TestTransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	c := New(&config.Config{BaseURL: srv.URL, Timeout: time.Second})

	_, err := c.CreateAgent(context.Background(), "bot1", personality.Helpful)
	require.Error(t, err)

	var apiErr *Error
	assert.False(t, errors.As(err, &apiErr))
}

func TestContextCanceled(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := c.Chat(ctx, "a1", "Hello")
	assert.ErrorIs(t, err, context.Canceled)
}
