package mcp

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"appcatalog/internal/application"
	"appcatalog/internal/application/commands"
)

// RegisterWriteTools adds the preference tools to the MCP server.
func RegisterWriteTools(s *server.MCPServer, engine *application.Engine) {
	s.AddTool(setSortTool(), setSortHandler(engine))
}

// --- set_sort ---

func setSortTool() mcp.Tool {
	return mcp.NewTool("set_sort",
		mcp.WithDescription("Save the sort order used when listing apps."),
		mcp.WithString("sort",
			mcp.Description("Sort order"),
			mcp.Required(),
			mcp.Enum(sortNames()...),
		),
	)
}

func setSortHandler(engine *application.Engine) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		action := application.ParseSortAction(req.GetString("sort", ""))

		result, err := commands.NewSetSortCommand(engine, action).Execute(ctx)
		if err != nil {
			return toolError(err)
		}

		return mcp.NewToolResultText(result.Message), nil
	}
}
