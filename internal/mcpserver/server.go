package mcpserver

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"os"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"codesearch/apimodels"
	"codesearch/internal/analyzer"
	"codesearch/internal/llm"
)

const (
	serverName    = "codesearch"
	serverVersion = "0.2.0"
	toolName      = "search"
)

// Server exposes the analyzer as an MCP stdio server with a single tool.
// Unknown methods and tool names are rejected by the SDK's dispatcher.
type Server struct {
	mcp      *server.MCPServer
	analyzer *analyzer.Analyzer
}

func New(a *analyzer.Analyzer) *Server {
	s := &Server{analyzer: a}

	m := server.NewMCPServer(
		serverName,
		serverVersion,
		server.WithToolCapabilities(false),
		server.WithRecovery(),
	)
	m.AddTool(searchTool(), s.handleSearch)

	s.mcp = m
	return s
}

func searchTool() mcp.Tool {
	return mcp.NewTool(
		toolName,
		mcp.WithDescription("Analyze a coding question, optionally with a source snippet, and return a structured report covering root cause, solution steps, prevention and code examples."),
		mcp.WithString("query", mcp.Required(), mcp.Description("The coding question or error message to analyze.")),
		mcp.WithString("code", mcp.Description("Optional source snippet related to the question.")),
		mcp.WithString("language", mcp.DefaultString("auto"), mcp.Description("Language of the snippet, or \"auto\".")),
	)
}

func (s *Server) handleSearch(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	query, err := request.RequireString("query")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	req := apimodels.SearchRequest{
		Query:    query,
		Code:     request.GetString("code", ""),
		Language: request.GetString("language", "auto"),
	}

	resp, err := s.analyzer.Search(ctx, req)
	if err != nil {
		// upstream faults become error-flagged tool results; anything
		// else is a handler fault for the SDK to report
		if errors.Is(err, llm.ErrUpstream) {
			slog.Warn("search returned upstream error", "error", err)
			return mcp.NewToolResultError(fmt.Sprintf("search failed: %v", err)), nil
		}
		return nil, err
	}

	return mcp.NewToolResultText(resp.Result), nil
}

// ServeStdio blocks reading MCP requests from stdin until the context is
// canceled or stdin closes. Protocol traffic owns stdout, so SDK errors are
// logged to stderr.
func (s *Server) ServeStdio(ctx context.Context) error {
	stdio := server.NewStdioServer(s.mcp)
	stdio.SetErrorLogger(log.New(os.Stderr, "", log.LstdFlags))

	slog.Info("mcp server listening on stdio", "tool", toolName)
	return stdio.Listen(ctx, os.Stdin, os.Stdout)
}
