package mcp

import (
	"context"

	"github.com/projectops/assistant/internal/chat"
	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
)

const helpResourceURI = "projectops://help"

// registerHelpResource exposes the assistant's usage guide so MCP
// clients can read accepted phrasings without burning a tool call.
func registerHelpResource(server *sdkmcp.Server) {
	content := chat.HelpMessage()

	server.AddResource(&sdkmcp.Resource{
		URI:         helpResourceURI,
		Name:        "help",
		Title:       "ProjectOps Assistant usage guide",
		Description: "Accepted question phrasings for the ask tool",
		MIMEType:    "text/markdown",
		Size:        int64(len(content)),
	}, func(_ context.Context, req *sdkmcp.ReadResourceRequest) (*sdkmcp.ReadResourceResult, error) {
		uri := helpResourceURI
		if req != nil && req.Params != nil && req.Params.URI != "" {
			uri = req.Params.URI
		}
		return &sdkmcp.ReadResourceResult{
			Contents: []*sdkmcp.ResourceContents{{
				URI:      uri,
				MIMEType: "text/markdown",
				Text:     content,
			}},
		}, nil
	})
}
