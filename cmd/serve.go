package cmd

import (
	"fmt"

	"github.com/mj1618/winlist/internal/server"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start an MCP server exposing window listing tools",
	Long: `Start a Model Context Protocol (MCP) server that exposes window listing as
tools. AI agents can call tools directly without shell overhead.

Tools:
  list_windows               Decoded windows, with app/pid/layer/bbox filters
  list_window_descriptions   Raw window-server descriptions

Supported transports:
  stdio             Standard I/O (default, for MCP clients)
  streamable-http   Streamable HTTP transport (for remote agents)

Examples:
  winlist serve
  winlist serve --transport streamable-http --port 8080`,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().String("transport", "stdio", "Transport: stdio, streamable-http")
	serveCmd.Flags().Int("port", 8080, "HTTP port for streamable-http transport")
}

func serveConfig(cmd *cobra.Command) server.Config {
	sc := server.Config{
		Transport: cfg.Serve.Transport,
		Port:      cfg.Serve.Port,
	}
	if cmd.Flags().Changed("transport") {
		sc.Transport, _ = cmd.Flags().GetString("transport")
	}
	if cmd.Flags().Changed("port") {
		sc.Port, _ = cmd.Flags().GetInt("port")
	}
	return sc
}

func runServe(cmd *cobra.Command, args []string) error {
	sc := serveConfig(cmd)
	if err := server.New(logger).Serve(sc); err != nil {
		return fmt.Errorf("MCP server: %w", err)
	}
	return nil
}
