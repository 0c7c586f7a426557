// Package mcpserver exposes the adapters as MCP tools.
package mcpserver

import (
	"context"
	"encoding/json"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/moamenhredeen/contentapi/internal/adapters"
	"github.com/moamenhredeen/contentapi/internal/client"
	"github.com/moamenhredeen/contentapi/internal/models"
	"github.com/rs/zerolog"
)

// Options configures the server
type Options struct {
	Name     string
	Version  string
	Defaults adapters.Defaults
}

// New registers one tool per adapter. Adapters missing from list are skipped.
func New(list []*adapters.Adapter, opts Options, logger zerolog.Logger) *mcp.Server {
	if opts.Name == "" {
		opts.Name = "contentapi"
	}
	server := mcp.NewServer(&mcp.Implementation{Name: opts.Name, Version: opts.Version}, nil)
	log := logger.With().Str("component", "mcp").Logger()

	if a, ok := adapters.Find(list, adapters.NameContent); ok {
		mcp.AddTool(server, tool(a), handler(a, opts.Defaults, log, adapters.ContentParams.Request))
	}
	if a, ok := adapters.Find(list, adapters.NameExportManifest); ok {
		mcp.AddTool(server, tool(a), handler(a, opts.Defaults, log, adapters.ManifestParams.Request))
	}
	if a, ok := adapters.Find(list, adapters.NameListContentTypes); ok {
		mcp.AddTool(server, tool(a), handler(a, opts.Defaults, log, adapters.ContentTypeParams.Request))
	}

	return server
}

// Serve runs the server over stdio until ctx is done or the client disconnects
func Serve(ctx context.Context, server *mcp.Server) error {
	return server.Run(ctx, &mcp.StdioTransport{})
}

func tool(a *adapters.Adapter) *mcp.Tool {
	return &mcp.Tool{
		Name:        a.Name(),
		Description: a.Description(),
	}
}

func handler[In any](
	a *adapters.Adapter,
	defaults adapters.Defaults,
	log zerolog.Logger,
	toRequest func(In) adapters.Request,
) mcp.ToolHandlerFor[In, any] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, in In) (*mcp.CallToolResult, any, error) {
		req := toRequest(in).WithDefaults(defaults)

		env, err := a.Call(ctx, req)
		if err != nil {
			log.Debug().Err(err).Str("tool", a.Name()).Str("kind", client.Classify(env, err).String()).Msg("tool call failed")
			return errorResult(err), nil, nil
		}

		res, err := envelopeResult(env)
		if err != nil {
			return errorResult(err), nil, nil
		}
		return res, env, nil
	}
}

func envelopeResult(env *models.Envelope) (*mcp.CallToolResult, error) {
	data, err := json.MarshalIndent(env, "", "  ")
	if err != nil {
		return nil, err
	}
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: string(data)}},
	}, nil
}

func errorResult(err error) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		IsError: true,
		Content: []mcp.Content{&mcp.TextContent{Text: err.Error()}},
	}
}
