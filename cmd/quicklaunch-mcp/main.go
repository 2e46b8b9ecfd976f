package main

import (
	"context"
	"flag"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"quicklaunch/internal/adapters/browser"
	"quicklaunch/internal/adapters/jsonstore"
	"quicklaunch/internal/adapters/launcher"
	mcpadapter "quicklaunch/internal/adapters/mcp"
	"quicklaunch/internal/adapters/sqlite"
	"quicklaunch/internal/config"
	"quicklaunch/internal/logging"
)

func main() {
	dataFlag := flag.String("data", config.DataPath(), "path to the shortcut data file")
	flag.Parse()

	logger := logging.New()

	store := jsonstore.NewStore(*dataFlag)
	locator := browser.NewLocator()
	dispatcher := launcher.NewLauncher(store, locator)

	index := sqlite.NewIndex()
	if err := index.Open(store.Path()); err != nil {
		logger.Fatal().Err(err).Msg("failed to open search index")
	}
	defer index.Close()

	if index.NeedsFullRebuild() {
		logger.Info().Msg("search index is stale, rebuilding on first search")
	}

	mcpServer := server.NewMCPServer(
		"quicklaunch-mcp",
		"0.1.0",
		server.WithToolCapabilities(true),
	)

	mcpServer.AddTool(
		mcp.NewTool("ping",
			mcp.WithDescription("Health check — returns pong"),
		),
		func(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return mcp.NewToolResultText("pong"), nil
		},
	)

	mcpadapter.RegisterReadTools(mcpServer, store, index, locator)
	mcpadapter.RegisterWriteTools(mcpServer, store, dispatcher)

	logger.Info().Str("data", store.Path()).Msg("serving shortcut tools over stdio")
	if err := server.ServeStdio(mcpServer); err != nil {
		logger.Fatal().Err(err).Msg("quicklaunch-mcp")
	}
}
