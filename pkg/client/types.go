package client

import (
	"github.com/adrianliechti/wingman-research/pkg/personality"
)

type createAgentRequest struct {
	AgentName   string                  `json:"agent_name"`
	Personality personality.Personality `json:"personality"`
}

type Agent struct {
	ID       string `json:"agent_id"`
	Name     string `json:"agent_name,omitempty"`
	FolderID string `json:"folder_id,omitempty"`

	Personality personality.Personality `json:"personality,omitempty"`

	Message string `json:"message,omitempty"`
}

type agentList struct {
	Agents []Agent `json:"agents"`
}

type UploadResult struct {
	Summary      string `json:"summary"`
	MarkdownText string `json:"markdown_text"`

	FileID         string `json:"file_id,omitempty"`
	SummaryFileID  string `json:"file_id_summary,omitempty"`
	MarkdownFileID string `json:"file_id_markdown,omitempty"`

	FolderID string `json:"folder_id,omitempty"`
	AgentID  string `json:"agent_id,omitempty"`
}

type UploadStatus struct {
	FileID string `json:"file_id"`
	Status string `json:"status"`
}

type chatRequest struct {
	AgentID string `json:"agent_id"`
	Message string `json:"message"`
}

type ChatResult struct {
	Reply string `json:"reply"`

	Conversation []Message `json:"conversation,omitempty"`
}

type Message struct {
	Role      string `json:"role"`
	Content   string `json:"content"`
	Timestamp string `json:"timestamp,omitempty"`
}
