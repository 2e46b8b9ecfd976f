package mcp

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"quicklaunch/internal/application/commands"
	"quicklaunch/internal/domain"
	"quicklaunch/internal/ports"
)

// RegisterReadTools adds all read-only shortcut tools to the MCP server.
func RegisterReadTools(s *server.MCPServer, store ports.ShortcutStore, index ports.ShortcutIndex, locator ports.BrowserLocator) {
	s.AddTool(listTool(), listHandler(store))
	s.AddTool(getTool(), getHandler(store))
	s.AddTool(searchTool(), searchHandler(store, index))
	s.AddTool(browsersTool(), browsersHandler(locator))
}

// --- list ---

func listTool() mcp.Tool {
	return mcp.NewTool("list",
		mcp.WithDescription("List shortcuts. Optionally filter by type (program, folder, url)."),
		mcp.WithString("filter",
			mcp.Description("Type filter: all, program, folder, or url. Omit to list everything."),
		),
	)
}

func listHandler(store ports.ShortcutStore) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		filter := domain.ParseFilter(req.GetString("filter", ""))

		cmd := commands.NewListCommand(store, filter)
		shortcuts, err := cmd.Execute(ctx)
		if err != nil {
			return toolError(err)
		}

		if len(shortcuts) == 0 {
			return mcp.NewToolResultText("No shortcuts."), nil
		}

		var sb strings.Builder
		for _, sc := range shortcuts {
			sb.WriteString(formatShortcut(sc))
			sb.WriteByte('\n')
		}
		return mcp.NewToolResultText(sb.String()), nil
	}
}

// --- get ---

func getTool() mcp.Tool {
	return mcp.NewTool("get",
		mcp.WithDescription("Get a single shortcut by its ID."),
		mcp.WithString("id",
			mcp.Description("Shortcut ID"),
			mcp.Required(),
		),
	)
}

func getHandler(store ports.ShortcutStore) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		cmd := commands.NewGetCommand(store, req.GetString("id", ""))
		shortcut, err := cmd.Execute(ctx)
		if err != nil {
			return toolError(err)
		}

		return mcp.NewToolResultText(formatShortcut(*shortcut)), nil
	}
}

// --- search ---

func searchTool() mcp.Tool {
	return mcp.NewTool("search",
		mcp.WithDescription("Search shortcuts by keyword. Matches names and targets."),
		mcp.WithString("query",
			mcp.Description("Search query"),
			mcp.Required(),
		),
	)
}

func searchHandler(store ports.ShortcutStore, index ports.ShortcutIndex) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		query := req.GetString("query", "")
		if query == "" {
			return toolError(fmt.Errorf("query is required"))
		}

		cmd := commands.NewSearchCommand(store, index, query)
		results, err := cmd.Execute(ctx)
		if err != nil {
			return toolError(err)
		}

		if len(results) == 0 {
			return mcp.NewToolResultText("No results found."), nil
		}

		var sb strings.Builder
		for _, sc := range results {
			sb.WriteString(formatShortcut(sc))
			sb.WriteByte('\n')
		}
		return mcp.NewToolResultText(sb.String()), nil
	}
}

// --- browsers ---

func browsersTool() mcp.Tool {
	return mcp.NewTool("browsers",
		mcp.WithDescription("List the web browsers detected on this machine."),
	)
}

func browsersHandler(locator ports.BrowserLocator) server.ToolHandlerFunc {
	return func(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		browsers := locator.Detect()
		if len(browsers) == 0 {
			return mcp.NewToolResultText("No browsers detected."), nil
		}

		var sb strings.Builder
		for _, b := range browsers {
			fmt.Fprintf(&sb, "%s  %s  %s\n", b.ID, b.Name, b.Path)
		}
		return mcp.NewToolResultText(sb.String()), nil
	}
}

// --- helpers ---

func toolError(err error) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultError(err.Error()), nil
}

func formatShortcut(sc domain.Shortcut) string {
	line := fmt.Sprintf("%s  [%s]  %s  %s", sc.ID, sc.Type, sc.Name, sc.Target)
	if sc.Gesture != "" {
		line += "  gesture:" + sc.Gesture
	}
	return line
}
