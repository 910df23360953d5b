package server

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/rs/cors"

	"github.com/adrianliechti/wingman-research/pkg/config"
	"github.com/adrianliechti/wingman-research/pkg/session"
)

// Options hooks into tool calls, e.g. to show them in a UI
type Options struct {
	OnToolStart    func(ctx context.Context, name string, args string)
	OnToolComplete func(ctx context.Context, name string, args string, result string)
	OnToolError    func(ctx context.Context, name string, args string, err error)
}

type Server struct {
	handler http.Handler
}

// New exposes the session as MCP tools over streamable HTTP
func New(s *session.Session, cfg *config.Config, options *Options) *Server {
	if options == nil {
		options = &Options{}
	}

	mcpServer := mcp.NewServer(&mcp.Implementation{
		Name:    "wingman-research",
		Version: "1.0.0",
	}, nil)

	for _, t := range Tools(s, cfg) {
		addTool(mcpServer, t, options)
	}

	handler := mcp.NewStreamableHTTPHandler(func(r *http.Request) *mcp.Server {
		return mcpServer
	}, &mcp.StreamableHTTPOptions{
		Stateless: true,
	})

	corsHandler := cors.AllowAll().Handler(handler)

	return &Server{
		handler: corsHandler,
	}
}

func (s *Server) Handler() http.Handler {
	return s.handler
}

func (s *Server) ListenAndServe(addr string) error {
	return http.ListenAndServe(addr, s.handler)
}

func addTool(s *mcp.Server, t Tool, options *Options) {
	mcpTool := &mcp.Tool{
		Name:        t.Name,
		Description: t.Description,

		InputSchema: t.Schema,
	}

	s.AddTool(mcpTool, func(ctx context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		raw := string(req.Params.Arguments)

		if options.OnToolStart != nil {
			options.OnToolStart(ctx, t.Name, raw)
		}

		args := make(map[string]any)

		if len(req.Params.Arguments) > 0 {
			if err := json.Unmarshal(req.Params.Arguments, &args); err != nil {
				return toolError(ctx, t.Name, raw, options, err), nil
			}
		}

		result, err := t.Execute(ctx, args)

		if err != nil {
			return toolError(ctx, t.Name, raw, options, err), nil
		}

		if options.OnToolComplete != nil {
			options.OnToolComplete(ctx, t.Name, raw, result)
		}

		return &mcp.CallToolResult{
			Content: []mcp.Content{&mcp.TextContent{Text: result}},
		}, nil
	})
}

// toolError reports err as an error result, never as a protocol error
func toolError(ctx context.Context, name, args string, options *Options, err error) *mcp.CallToolResult {
	slog.Warn("tool failed", "tool", name, "error", err)

	if options.OnToolError != nil {
		options.OnToolError(ctx, name, args, err)
	}

	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: err.Error()}},
		IsError: true,
	}
}
