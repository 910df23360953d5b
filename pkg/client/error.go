package client

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	htmltomarkdown "github.com/JohannesKaufmann/html-to-markdown/v2"
)

const maxErrorBody = 64 << 10

// Error is returned for any non-2xx backend response.
type Error struct {
	Op         string
	StatusCode int
	Status     string
	Message    string
}

func (e *Error) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("%s failed: %s", e.Op, e.Status)
	}

	return fmt.Sprintf("%s failed: %s - %s", e.Op, e.Status, e.Message)
}

func newError(op string, resp *http.Response) *Error {
	body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))

	status := resp.Status

	if status == "" {
		status = fmt.Sprintf("%d %s", resp.StatusCode, http.StatusText(resp.StatusCode))
	}

	return &Error{
		Op:         op,
		StatusCode: resp.StatusCode,
		Status:     status,
		Message:    errorMessage(resp.Header.Get("Content-Type"), body),
	}
}

// errorMessage extracts a diagnostic from an error body: the JSON error
// field, HTML converted to text, or the raw body.
func errorMessage(contentType string, body []byte) string {
	text := strings.TrimSpace(string(body))

	if text == "" {
		return ""
	}

	var payload struct {
		Error   string `json:"error"`
		Message string `json:"message"`
		Detail  string `json:"detail"`
	}

	if err := json.Unmarshal(body, &payload); err == nil {
		for _, s := range []string{payload.Error, payload.Message, payload.Detail} {
			if s != "" {
				return s
			}
		}
	}

	if strings.Contains(contentType, "html") || strings.HasPrefix(text, "<") {
		if md, err := htmltomarkdown.ConvertString(text); err == nil && strings.TrimSpace(md) != "" {
			return strings.TrimSpace(md)
		}
	}

	return text
}
