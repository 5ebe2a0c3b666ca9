package mcp

import (
	"context"
	"fmt"
	"strings"

	"github.com/projectops/assistant/internal/chat"
	"github.com/projectops/assistant/internal/repository"
	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
)

// AskParams are the inputs for the ask tool.
type AskParams struct {
	Query string `json:"query" jsonschema:"Plain-English question about projects, meetings, issues, or client updates"`
}

// ListProjectsParams are the inputs for the list_projects tool.
type ListProjectsParams struct{}

func registerTools(server *sdkmcp.Server, bot *chat.Bot, projects repository.ProjectRepository) {
	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "ask",
		Description: "Ask a plain-English question about projects, meetings, issues, or client updates",
	}, func(ctx context.Context, req *sdkmcp.CallToolRequest, args AskParams) (*sdkmcp.CallToolResult, any, error) {
		answer, err := bot.Answer(ctx, args.Query, getTenantID(ctx))
		if err != nil {
			return nil, nil, fmt.Errorf("answering query: %w", err)
		}
		return textResult(answer), nil, nil
	})

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "list_projects",
		Description: "List every project visible to the current account",
	}, func(ctx context.Context, req *sdkmcp.CallToolRequest, args ListProjectsParams) (*sdkmcp.CallToolResult, any, error) {
		list, err := projects.List(ctx, getTenantID(ctx))
		if err != nil {
			return nil, nil, fmt.Errorf("listing projects: %w", err)
		}
		if len(list) == 0 {
			return textResult("No projects found."), nil, nil
		}
		var sb strings.Builder
		for _, proj := range list {
			fmt.Fprintf(&sb, "%s (%s) - %s\n", proj.Name, proj.ClientName, proj.Status)
		}
		return textResult(sb.String()), nil, nil
	})
}

func textResult(text string) *sdkmcp.CallToolResult {
	return &sdkmcp.CallToolResult{
		Content: []sdkmcp.Content{&sdkmcp.TextContent{Text: text}},
	}
}
