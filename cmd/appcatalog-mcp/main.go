package main

import (
	"context"
	"flag"
	"log"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	mcpadapter "appcatalog/internal/adapters/mcp"
	"appcatalog/internal/bootstrap"
	"appcatalog/internal/config"
)

func main() {
	cfg := config.LoadOrDefault()
	flag.StringVar(&cfg.DBPath, "db", cfg.DBPath, "path to the registry database")
	flag.StringVar(&cfg.Locale, "locale", cfg.Locale, "locale used to compare app names")
	flag.Parse()

	rt, err := bootstrap.Open(cfg, "mcp")
	if err != nil {
		log.Fatalf("appcatalog-mcp: %v", err)
	}
	defer rt.Close()

	mcpServer := server.NewMCPServer(
		"appcatalog-mcp",
		"0.1.0",
		server.WithToolCapabilities(true),
	)

	mcpServer.AddTool(
		mcp.NewTool("ping",
			mcp.WithDescription("Health check, returns pong"),
		),
		func(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return mcp.NewToolResultText("pong"), nil
		},
	)

	mcpadapter.RegisterReadTools(mcpServer, rt.Engine)
	mcpadapter.RegisterWriteTools(mcpServer, rt.Engine)

	if err := server.ServeStdio(mcpServer); err != nil {
		rt.Log.Error().Err(err).Msg("stdio server stopped")
		log.Fatalf("appcatalog-mcp: %v", err)
	}
}
