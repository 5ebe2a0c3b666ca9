package mcp

import (
	"log/slog"

	"github.com/projectops/assistant/internal/chat"
	"github.com/projectops/assistant/internal/repository"
	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
)

const serverInstructions = `ProjectOps Assistant answers questions about Projects, Meetings, Issues, and Client Updates.

Use the ask tool with a plain-English question, e.g. "What's the status of Epicor for LTA?" or "List all meetings this month". Read the projectops://help resource for every accepted phrasing.

Answers are scoped to your account when authentication is enabled; otherwise queries run globally.`

// Config contains server configuration.
type Config struct {
	Bot           *chat.Bot
	Projects      repository.ProjectRepository
	Resolver      TenantResolver
	AuthEnabled   bool
	TransportMode string // "stdio" or "http"
	Logger        *slog.Logger
}

// NewServer creates and configures an MCP server with all tools and middleware.
func NewServer(cfg Config) *sdkmcp.Server {
	server := sdkmcp.NewServer(&sdkmcp.Implementation{
		Name:    "projectops",
		Version: "0.1.0",
	}, &sdkmcp.ServerOptions{
		Instructions: serverInstructions,
		Logger:       cfg.Logger,
	})

	registerHelpResource(server)

	// Stdio mode is local-only: auth off, queries unscoped.
	if cfg.TransportMode == "stdio" {
		server.AddReceivingMiddleware(noAuthMiddleware(""))
	} else if cfg.AuthEnabled {
		server.AddReceivingMiddleware(authMiddleware(cfg.Resolver))
	} else {
		server.AddReceivingMiddleware(noAuthMiddleware(""))
	}
	server.AddReceivingMiddleware(trafficLoggingMiddleware(cfg.Logger, "inbound"))
	server.AddSendingMiddleware(trafficLoggingMiddleware(cfg.Logger, "outbound"))

	registerTools(server, cfg.Bot, cfg.Projects)

	return server
}
