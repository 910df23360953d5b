package server

import (
	"context"
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/google/jsonschema-go/jsonschema"

	"github.com/adrianliechti/wingman-research/pkg/config"
	"github.com/adrianliechti/wingman-research/pkg/personality"
	"github.com/adrianliechti/wingman-research/pkg/session"
)

type Tool struct {
	Name        string
	Description string

	Schema *jsonschema.Schema

	Execute func(ctx context.Context, args map[string]any) (string, error)
}

func objectSchema(properties map[string]*jsonschema.Schema, required ...string) *jsonschema.Schema {
	if properties == nil {
		properties = map[string]*jsonschema.Schema{}
	}

	return &jsonschema.Schema{
		Type:       "object",
		Properties: properties,
		Required:   required,
	}
}

// Tools returns the research session operations as tools
func Tools(s *session.Session, cfg *config.Config) []Tool {
	var personalities []any

	for _, p := range personality.All {
		personalities = append(personalities, p.String())
	}

	return []Tool{
		{
			Name:        "set_personality",
			Description: "Choose the personality of the agent. Only possible before the agent is created.",

			Schema: objectSchema(map[string]*jsonschema.Schema{
				"personality": {
					Type:        "string",
					Description: "How the assistant talks",
					Enum:        personalities,
				},
			}, "personality"),

			Execute: func(ctx context.Context, args map[string]any) (string, error) {
				p, err := personality.Parse(stringArg(args, "personality"))

				if err != nil {
					return "", err
				}

				if err := s.SetPersonality(p); err != nil {
					return "", err
				}

				return "personality set to " + p.String(), nil
			},
		},
		{
			Name:        "create_agent",
			Description: "Create the research agent with the selected personality.",

			Schema: objectSchema(map[string]*jsonschema.Schema{
				"name": {
					Type:        "string",
					Description: "Name of the agent",
				},
			}),

			Execute: func(ctx context.Context, args map[string]any) (string, error) {
				name := stringArg(args, "name")

				if name == "" {
					name = cfg.AgentName
				}

				agent, err := s.CreateAgent(ctx, name)

				if err != nil {
					return "", err
				}

				return fmt.Sprintf("created agent %s (%s)", agent.Name, agent.ID), nil
			},
		},
		{
			Name:        "select_file",
			Description: "Select a PDF or DOCX document to upload. Relative paths are resolved against the working directory.",

			Schema: objectSchema(map[string]*jsonschema.Schema{
				"path": {
					Type:        "string",
					Description: "Path of the document",
				},
			}, "path"),

			Execute: func(ctx context.Context, args map[string]any) (string, error) {
				path := stringArg(args, "path")

				if path == "" {
					return "", session.ErrNoFile
				}

				if !filepath.IsAbs(path) {
					path = filepath.Join(cfg.WorkingDir, path)
				}

				file, err := s.SelectFile(path)

				if err != nil {
					return "", err
				}

				return fmt.Sprintf("selected %s (%d bytes)", file.Name, file.Size), nil
			},
		},
		{
			Name:        "upload_document",
			Description: "Upload the selected document to the agent and return its summary.",

			Schema: objectSchema(nil),

			Execute: func(ctx context.Context, args map[string]any) (string, error) {
				if err := s.Upload(ctx); err != nil {
					return "", err
				}

				return s.Snapshot().Summary, nil
			},
		},
		{
			Name:        "upload_status",
			Description: "Check the processing status of the uploaded document.",

			Schema: objectSchema(nil),

			Execute: func(ctx context.Context, args map[string]any) (string, error) {
				statuses, err := s.CheckStatus(ctx)

				if err != nil {
					return "", err
				}

				var lines []string

				for _, status := range statuses {
					lines = append(lines, status.FileID+": "+status.Status)
				}

				return strings.Join(lines, "\n"), nil
			},
		},
		{
			Name:        "send_message",
			Description: "Send a chat message to the agent and return its reply.",

			Schema: objectSchema(map[string]*jsonschema.Schema{
				"message": {
					Type:        "string",
					Description: "The question or message",
				},
			}, "message"),

			Execute: func(ctx context.Context, args map[string]any) (string, error) {
				message, _ := args["message"].(string)
				return s.Send(ctx, message)
			},
		},
		{
			Name:        "get_state",
			Description: "Return the current session state as JSON.",

			Schema: objectSchema(nil),

			Execute: func(ctx context.Context, args map[string]any) (string, error) {
				data, err := json.MarshalIndent(newState(s.Snapshot()), "", "  ")

				if err != nil {
					return "", err
				}

				return string(data), nil
			},
		},
	}
}

func stringArg(args map[string]any, key string) string {
	val, _ := args[key].(string)
	return strings.TrimSpace(val)
}

type state struct {
	Personality string `json:"personality"`
	Locked      bool   `json:"locked"`

	AgentID   string `json:"agent_id,omitempty"`
	AgentName string `json:"agent_name,omitempty"`
	File      string `json:"file,omitempty"`

	Summary  string `json:"summary,omitempty"`
	Markdown string `json:"markdown,omitempty"`

	Statuses   []string `json:"statuses,omitempty"`
	Transcript []string `json:"transcript,omitempty"`

	Actions map[string]string `json:"actions"`
}

func newState(snap session.Snapshot) state {
	st := state{
		Personality: snap.Personality.String(),
		Locked:      snap.Locked,

		Summary:  snap.Summary,
		Markdown: snap.Markdown,

		Transcript: snap.Lines(),

		Actions: make(map[string]string),
	}

	if snap.Agent != nil {
		st.AgentID = snap.Agent.ID
		st.AgentName = snap.Agent.Name
	}

	if snap.File != nil {
		st.File = snap.File.Path
	}

	for _, status := range snap.Statuses {
		st.Statuses = append(st.Statuses, status.FileID+": "+status.Status)
	}

	for _, kind := range session.Kinds {
		action := snap.Action(kind)
		phase := action.Phase.String()

		if action.Err != nil {
			phase += ": " + action.Err.Error()
		}

		st.Actions[kind.String()] = phase
	}

	return st
}
