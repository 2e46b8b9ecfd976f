package mcp

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"quicklaunch/internal/application/commands"
	"quicklaunch/internal/domain"
	"quicklaunch/internal/ports"
)

// RegisterWriteTools adds all mutating shortcut tools to the MCP server.
func RegisterWriteTools(s *server.MCPServer, store ports.ShortcutStore, launcher ports.Launcher) {
	s.AddTool(addTool(), addHandler(store))
	s.AddTool(updateTool(), updateHandler(store))
	s.AddTool(deleteTool(), deleteHandler(store))
	s.AddTool(launchTool(), launchHandler(store, launcher))
}

// --- add ---

func addTool() mcp.Tool {
	return mcp.NewTool("add",
		mcp.WithDescription("Create a new shortcut."),
		mcp.WithString("name",
			mcp.Description("Display name for the shortcut"),
			mcp.Required(),
		),
		mcp.WithString("type",
			mcp.Description("Shortcut type: program, folder, or url"),
			mcp.Required(),
		),
		mcp.WithString("target",
			mcp.Description("Executable path, folder path, or URL"),
			mcp.Required(),
		),
		mcp.WithString("gesture",
			mcp.Description("Optional key gesture, e.g. ctrl+1"),
		),
	)
}

func addHandler(store ports.ShortcutStore) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		cmd := commands.NewAddCommand(store,
			req.GetString("name", ""),
			domain.ParseType(req.GetString("type", "")),
			req.GetString("target", ""),
			req.GetString("gesture", ""),
		)
		result, err := cmd.Execute(ctx)
		if err != nil {
			return toolError(err)
		}

		return mcp.NewToolResultText(result.Message + " (id: " + result.Shortcut.ID + ")"), nil
	}
}

// --- update ---

func updateTool() mcp.Tool {
	return mcp.NewTool("update",
		mcp.WithDescription("Update fields of an existing shortcut. Omitted fields are left unchanged."),
		mcp.WithString("id",
			mcp.Description("Shortcut ID"),
			mcp.Required(),
		),
		mcp.WithString("name",
			mcp.Description("New display name"),
		),
		mcp.WithString("type",
			mcp.Description("New type: program, folder, or url"),
		),
		mcp.WithString("target",
			mcp.Description("New target"),
		),
		mcp.WithString("gesture",
			mcp.Description("New gesture; pass an empty string to clear it"),
		),
	)
}

func updateHandler(store ports.ShortcutStore) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		args := req.GetArguments()

		var fields ports.ShortcutFields
		if raw, ok := args["name"].(string); ok {
			fields.Name = &raw
		}
		if raw, ok := args["type"].(string); ok {
			typ := domain.ParseType(raw)
			fields.Type = &typ
		}
		if raw, ok := args["target"].(string); ok {
			fields.Target = &raw
		}
		if raw, ok := args["gesture"].(string); ok {
			fields.Gesture = &raw
		}

		cmd := commands.NewUpdateCommand(store, req.GetString("id", ""), fields)
		result, err := cmd.Execute(ctx)
		if err != nil {
			return toolError(err)
		}

		return mcp.NewToolResultText(result.Message), nil
	}
}

// --- delete ---

func deleteTool() mcp.Tool {
	return mcp.NewTool("delete",
		mcp.WithDescription("Delete a shortcut by its ID."),
		mcp.WithString("id",
			mcp.Description("Shortcut ID"),
			mcp.Required(),
		),
	)
}

func deleteHandler(store ports.ShortcutStore) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		cmd := commands.NewDeleteCommand(store, req.GetString("id", ""))
		result, err := cmd.Execute(ctx)
		if err != nil {
			return toolError(err)
		}

		return mcp.NewToolResultText(result.Message), nil
	}
}

// --- launch ---

func launchTool() mcp.Tool {
	return mcp.NewTool("launch",
		mcp.WithDescription("Launch a shortcut by its ID or name."),
		mcp.WithString("ref",
			mcp.Description("Shortcut ID or display name"),
			mcp.Required(),
		),
	)
}

func launchHandler(store ports.ShortcutStore, launcher ports.Launcher) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		cmd := commands.NewRunCommand(store, launcher, req.GetString("ref", ""))
		result, err := cmd.Execute(ctx)
		if err != nil {
			return toolError(err)
		}

		return mcp.NewToolResultText(result.Message), nil
	}
}
