// Package mcp exposes hypermedia browsing as MCP tools so agents can fetch
// documents and follow their links without hand-building HTTP requests.
package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/aretw0/hyperdoc"
	"github.com/aretw0/hyperdoc/pkg/codecs/corejson"
	"github.com/aretw0/hyperdoc/pkg/domain"
	"github.com/aretw0/hyperdoc/pkg/ports"
)

// Server wraps a hyperdoc Client and a document store and exposes them as an
// MCP server. The store keeps the last fetched document so follow-up tool
// calls can act on it.
type Server struct {
	client    *hyperdoc.Client
	store     ports.DocumentStore
	codec     *corejson.Codec
	mcpServer *server.MCPServer
}

// historyKey is where the last fetched document is stored between calls.
const historyKey = "history:last"

// NewServer creates an MCP server over the given client and store.
func NewServer(client *hyperdoc.Client, store ports.DocumentStore) *Server {
	s := &Server{
		client:    client,
		store:     store,
		codec:     corejson.New(),
		mcpServer: server.NewMCPServer("hyperdoc-mcp", strings.TrimSpace(hyperdoc.Version)),
	}
	s.registerTools()
	return s
}

// ServeStdio starts the server on Stdin/Stdout.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcpServer)
}

func (s *Server) registerTools() {
	// TOOL: get
	getTool := mcp.NewTool("get",
		mcp.WithDescription("Fetch the document at a URL and return it as Core JSON."),
		mcp.WithString("url", mcp.Required(), mcp.Description("The URL to fetch")),
	)
	s.mcpServer.AddTool(getTool, s.handleGet)

	// TOOL: action
	actionTool := mcp.NewTool("action",
		mcp.WithDescription("Follow a link in the last fetched document. Keys is a JSON array path to the link, e.g. [\"items\", 0, \"add\"]."),
		mcp.WithString("keys", mcp.Required(), mcp.Description("JSON array of keys and indexes locating the link")),
		mcp.WithString("params", mcp.Description("JSON object of parameters for the link's fields")),
	)
	s.mcpServer.AddTool(actionTool, s.handleAction)

	// TOOL: show
	showTool := mcp.NewTool("show",
		mcp.WithDescription("Pretty-print the last fetched document, including its links and their fields."),
	)
	s.mcpServer.AddTool(showTool, s.handleShow)
}

func (s *Server) handleGet(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	target, err := request.RequireString("url")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result, err := s.client.Get(ctx, target)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("get failed: %v", err)), nil
	}
	return s.remember(ctx, result)
}

func (s *Server) handleAction(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	keysJSON, err := request.RequireString("keys")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	var keys []any
	if err := json.Unmarshal([]byte(keysJSON), &keys); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("invalid keys: %v", err)), nil
	}
	// JSON numbers arrive as float64; the resolver wants integer indexes.
	for i, key := range keys {
		if f, ok := key.(float64); ok {
			keys[i] = int(f)
		}
	}

	params := hyperdoc.Params{}
	if paramsJSON := request.GetString("params", ""); paramsJSON != "" {
		if err := json.Unmarshal([]byte(paramsJSON), &params); err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("invalid params: %v", err)), nil
		}
	}

	doc, err := s.store.Load(ctx, historyKey)
	if err != nil {
		return mcp.NewToolResultError("no document fetched yet; call get first"), nil
	}

	result, err := s.client.Action(ctx, doc, keys, params)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("action failed: %v", err)), nil
	}
	return s.remember(ctx, result)
}

func (s *Server) handleShow(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	doc, err := s.store.Load(ctx, historyKey)
	if err != nil {
		return mcp.NewToolResultError("no document fetched yet; call get first"), nil
	}
	return mcp.NewToolResultText(doc.String()), nil
}

// remember stores a fetched document for follow-up calls and renders the
// result as Core JSON.
func (s *Server) remember(ctx context.Context, result domain.Value) (*mcp.CallToolResult, error) {
	if doc, ok := result.(*domain.Document); ok {
		if err := s.store.Save(ctx, historyKey, doc); err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("saving history: %v", err)), nil
		}
	}
	if result == nil {
		return mcp.NewToolResultText("null"), nil
	}
	data, err := s.codec.Encode(result)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("encoding result: %v", err)), nil
	}
	return mcp.NewToolResultText(string(data)), nil
}
