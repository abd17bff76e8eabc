package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/aretw0/espalier"
	"github.com/aretw0/espalier/pkg/domain"
)

// Analyzer defines the analysis surface exposed over MCP.
type Analyzer interface {
	Nodes() []*domain.StateNode
	Edges() ([]domain.Edge, error)
	Adjacency() (domain.AdjacencyMap, error)
	Paths() (domain.PathMap, error)
	Mermaid() (string, error)
}

// Server wraps a chart and exposes its analysis operations as MCP tools,
// so agent tooling (doc generators, test-path planners) can query machine
// structure without linking the library.
type Server struct {
	chart     Analyzer
	mcpServer *server.MCPServer
}

// NewServer creates a new MCP server instance for the given chart.
func NewServer(chart Analyzer) *Server {
	s := &Server{
		chart:     chart,
		mcpServer: server.NewMCPServer("espalier-mcp", strings.TrimSpace(espalier.Version)),
	}
	s.registerTools()
	return s
}

// ServeStdio starts the server on Stdin/Stdout.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcpServer)
}

func (s *Server) registerTools() {
	s.mcpServer.AddTool(mcp.NewTool("list_nodes",
		mcp.WithDescription("List all state nodes of the machine (flat, pre-order, root excluded)."),
	), func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return jsonResult(s.chart.Nodes(), nil)
	})

	s.mcpServer.AddTool(mcp.NewTool("list_edges",
		mcp.WithDescription("List the declared transition edges (source, event, nominal target)."),
	), func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		edges, err := s.chart.Edges()
		return jsonResult(edges, err)
	})

	s.mcpServer.AddTool(mcp.NewTool("get_adjacency",
		mcp.WithDescription("Get every state's effective transitions, including those inherited from enclosing states."),
	), func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		adjacency, err := s.chart.Adjacency()
		return jsonResult(adjacency, err)
	})

	s.mcpServer.AddTool(mcp.NewTool("shortest_paths",
		mcp.WithDescription("Get the shortest event path from the initial state to every reachable state."),
	), func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		paths, err := s.chart.Paths()
		return jsonResult(paths, err)
	})

	s.mcpServer.AddTool(mcp.NewTool("get_graph",
		mcp.WithDescription("Get a Mermaid flowchart of the machine for visualization."),
	), func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		output, err := s.chart.Mermaid()
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("graph generation failed: %v", err)), nil
		}
		return mcp.NewToolResultText(output), nil
	})
}

func jsonResult(v any, err error) (*mcp.CallToolResult, error) {
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("analysis failed: %v", err)), nil
	}
	data, err := json.Marshal(v)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("encoding failed: %v", err)), nil
	}
	return mcp.NewToolResultText(string(data)), nil
}
