package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strings"

	"github.com/adrianliechti/wingman-research/pkg/config"
	"github.com/adrianliechti/wingman-research/pkg/personality"
)

// Client talks to the research backend. It holds no session state.
type Client struct {
	baseURL string
	client  *http.Client
}

type Option func(*Client)

func WithHTTPClient(c *http.Client) Option {
	return func(client *Client) {
		client.client = c
	}
}

func New(cfg *config.Config, options ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),

		client: &http.Client{
			Timeout: cfg.Timeout,
		},
	}

	for _, option := range options {
		option(c)
	}

	return c
}

func (c *Client) CreateAgent(ctx context.Context, name string, p personality.Personality) (*Agent, error) {
	body := createAgentRequest{
		AgentName:   name,
		Personality: p,
	}

	var result Agent

	if err := c.doJSON(ctx, "create agent", http.MethodPost, "/api/agent/create", body, &result); err != nil {
		return nil, err
	}

	if result.ID == "" {
		return nil, fmt.Errorf("create agent failed: response has no agent_id")
	}

	return &result, nil
}

func (c *Client) ListAgents(ctx context.Context) ([]Agent, error) {
	var result agentList

	if err := c.doJSON(ctx, "list agents", http.MethodGet, "/api/agent/list", nil, &result); err != nil {
		return nil, err
	}

	return result.Agents, nil
}

// Upload sends the document as multipart form data. The backend converts it
// to markdown and summarizes it before responding.
func (c *Client) Upload(ctx context.Context, agentID, filename string, r io.Reader) (*UploadResult, error) {
	var buf bytes.Buffer

	w := multipart.NewWriter(&buf)

	part, err := w.CreateFormFile("file", filename)

	if err != nil {
		return nil, err
	}

	if _, err := io.Copy(part, r); err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", filename, err)
	}

	if err := w.WriteField("agent_id", agentID); err != nil {
		return nil, err
	}

	if err := w.Close(); err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/upload", &buf)

	if err != nil {
		return nil, err
	}

	req.Header.Set("Content-Type", w.FormDataContentType())

	var result UploadResult

	if err := c.do(req, "upload", &result); err != nil {
		return nil, err
	}

	return &result, nil
}

func (c *Client) UploadStatus(ctx context.Context, agentID, folderID, fileID string) (*UploadStatus, error) {
	values := url.Values{}
	values.Set("folder_id", folderID)
	values.Set("file_id", fileID)
	values.Set("agent_id", agentID)

	var result UploadStatus

	if err := c.doJSON(ctx, "upload status", http.MethodGet, "/api/upload/status?"+values.Encode(), nil, &result); err != nil {
		return nil, err
	}

	return &result, nil
}

func (c *Client) Chat(ctx context.Context, agentID, message string) (*ChatResult, error) {
	body := chatRequest{
		AgentID: agentID,
		Message: message,
	}

	var result ChatResult

	if err := c.doJSON(ctx, "chat", http.MethodPost, "/api/chat", body, &result); err != nil {
		return nil, err
	}

	return &result, nil
}

func (c *Client) doJSON(ctx context.Context, op, method, path string, body, result any) error {
	var reader io.Reader

	if body != nil {
		data, err := json.Marshal(body)

		if err != nil {
			return err
		}

		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)

	if err != nil {
		return err
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	return c.do(req, op, result)
}

func (c *Client) do(req *http.Request, op string, result any) error {
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)

	if err != nil {
		return fmt.Errorf("%s failed: %w", op, err)
	}

	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return newError(op, resp)
	}

	if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
		return fmt.Errorf("%s failed: invalid response: %w", op, err)
	}

	return nil
}
