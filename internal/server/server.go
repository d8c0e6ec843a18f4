// Package server exposes window enumeration as Model Context Protocol tools.
package server

import (
	"fmt"
	"log/slog"
	"sync"

	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/mj1618/winlist/internal/version"
)

// Config holds MCP server configuration.
type Config struct {
	Transport string
	Port      int
}

// Server wraps the MCP server. Tool calls are serialized so only one
// enumeration runs at a time.
type Server struct {
	logger     *slog.Logger
	providerMu sync.Mutex
	mcp        *mcpserver.MCPServer
}

// New creates an MCP server with the winlist tools registered.
func New(logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	s := &Server{logger: logger}
	s.mcp = mcpserver.NewMCPServer(
		"winlist",
		version.Version,
	)
	s.registerTools()
	return s
}

// Serve starts the MCP server with the configured transport. It blocks until
// the transport shuts down.
func (s *Server) Serve(cfg Config) error {
	switch cfg.Transport {
	case "stdio":
		return mcpserver.ServeStdio(s.mcp)
	case "streamable-http":
		addr := fmt.Sprintf(":%d", cfg.Port)
		s.logger.Info("serving MCP over streamable HTTP", "addr", addr)
		httpServer := mcpserver.NewStreamableHTTPServer(s.mcp)
		return httpServer.Start(addr)
	default:
		return fmt.Errorf("unsupported transport: %s (use stdio or streamable-http)", cfg.Transport)
	}
}

func (s *Server) registerTools() {
	// list_windows
	s.mcp.AddTool(
		mcp.NewTool("list_windows",
			mcp.WithDescription("List the on-screen windows front to back with owner, title, bounds, layer, and window-server flags"),
			mcp.WithString("app", mcp.Description("Filter by owning application name (case-insensitive)")),
			mcp.WithNumber("pid", mcp.Description("Filter by owning process ID")),
			mcp.WithNumber("layer", mcp.Description("Filter by window-server layer (0 = normal application windows)")),
			mcp.WithString("bbox", mcp.Description("Only windows intersecting this rectangle, as x,y,w,h")),
			mcp.WithBoolean("apps", mcp.Description("List owning applications instead of windows")),
			mcp.WithString("format", mcp.Description("Result format: yaml (default) or json")),
		),
		s.handleListWindows,
	)

	// list_window_descriptions
	s.mcp.AddTool(
		mcp.NewTool("list_window_descriptions",
			mcp.WithDescription("Return the window server's raw property-list description of each on-screen window, without decoding"),
		),
		s.handleListDescriptions,
	)
}
