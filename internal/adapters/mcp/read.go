package mcp

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"appcatalog/internal/application"
	"appcatalog/internal/application/commands"
	"appcatalog/internal/domain"
)

// RegisterReadTools adds the catalog query tools to the MCP server.
func RegisterReadTools(s *server.MCPServer, engine *application.Engine) {
	s.AddTool(listAppsTool(), listAppsHandler(engine))
	s.AddTool(resolveSettingsTool(), resolveSettingsHandler(engine))
}

// --- list_apps ---

func listAppsTool() mcp.Tool {
	return mcp.NewTool("list_apps",
		mcp.WithDescription("List installed apps across user profiles in the saved sort order."),
		mcp.WithBoolean("refresh",
			mcp.Description("Re-read the package registry instead of using the cached list"),
		),
		mcp.WithNumber("user_id",
			mcp.Description("Only list apps of this user profile. Omit for all users."),
		),
		mcp.WithString("sort",
			mcp.Description("Override the saved sort order for this call"),
			mcp.Enum(sortNames()...),
		),
	)
}

func listAppsHandler(engine *application.Engine) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		cmd := commands.NewListAppsCommand(engine)
		cmd.Refresh = req.GetBool("refresh", false)
		cmd.UserID = req.GetInt("user_id", commands.AllUsers)
		if s := req.GetString("sort", ""); s != "" {
			mode, ok := domain.ParseSortMode(s)
			if !ok {
				return toolError(fmt.Errorf("unknown sort %q", s))
			}
			cmd.Mode = &mode
		}

		result, err := cmd.Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		var sb strings.Builder
		if result.FetchErr != nil {
			fmt.Fprintf(&sb, "warning: %v\n", result.FetchErr)
		}
		if len(result.Apps) == 0 {
			sb.WriteString("No apps.")
			return mcp.NewToolResultText(sb.String()), nil
		}

		fmt.Fprintf(&sb, "sorted by %s\n", result.Mode)
		for _, a := range result.Apps {
			sb.WriteString(formatApp(a))
			sb.WriteByte('\n')
		}
		return mcp.NewToolResultText(sb.String()), nil
	}
}

// --- resolve_settings ---

func resolveSettingsTool() mcp.Tool {
	return mcp.NewTool("resolve_settings",
		mcp.WithDescription("Find the activity that opens an app's settings, falling back to its launcher activity."),
		mcp.WithString("package",
			mcp.Description("Package name (e.g. org.example.module)"),
			mcp.Required(),
		),
		mcp.WithNumber("user_id",
			mcp.Description("User profile the app is installed for (default 0)"),
		),
	)
}

func resolveSettingsHandler(engine *application.Engine) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		pkg := req.GetString("package", "")
		userID := req.GetInt("user_id", 0)

		intent, err := commands.NewResolveSettingsCommand(engine, pkg, userID).Execute(ctx)
		if errors.Is(err, application.ErrNotFound) {
			return mcp.NewToolResultText(fmt.Sprintf("%s has no settings entry point for user %d.", pkg, userID)), nil
		}
		if err != nil {
			return toolError(err)
		}

		return mcp.NewToolResultText(formatIntent(intent, userID)), nil
	}
}

// --- helpers ---

func toolError(err error) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultError(err.Error()), nil
}

func formatApp(a domain.AppRecord) string {
	line := fmt.Sprintf("%s  %s  user=%d  installed=%s  updated=%s",
		a.PackageName, a.Label, a.UserID,
		time.UnixMilli(a.FirstInstallTime).UTC().Format(time.DateOnly),
		time.UnixMilli(a.LastUpdateTime).UTC().Format(time.DateOnly))
	if a.Uninstalled {
		line += "  (uninstalled)"
	}
	return line
}

func formatIntent(i *domain.Intent, userID int) string {
	return fmt.Sprintf("component: %s\ncategory: %s\ncommand: am %s",
		i.Component(), i.Category, strings.Join(i.AmStartArgs(userID), " "))
}

func sortNames() []string {
	actions := domain.SortActions()
	names := make([]string, len(actions))
	for i, a := range actions {
		names[i] = a.String()
	}
	return names
}
