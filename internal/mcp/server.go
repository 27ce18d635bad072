package mcp

import (
	"context"
	"log"
	"net/http"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

const (
	ServerName    = "pr-agent"
	ServerVersion = "1.0.0"
)

type ToolAdapter interface {
	ToolAdapter(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error)
}

type Server struct {
	MCP     *server.MCPServer
	HTTP    *server.StreamableHTTPServer
	Handler http.Handler
}

// ToolDefinitions returns the schema of every tool the server can expose.
func ToolDefinitions(defaultMaxDiffLines int) map[string]mcp.Tool {
	return map[string]mcp.Tool{
		"analyze_file_changes": mcp.NewTool("analyze_file_changes",
			mcp.WithDescription("Get the diff, changed files, stat summary and commits between a base branch and HEAD in the current git repository. Large diffs are truncated to max_diff_lines to stay under the response size limit."),
			mcp.WithString("base_branch",
				mcp.Description("Base branch to compare against (default: main)"),
				mcp.DefaultString("main"),
			),
			mcp.WithBoolean("include_diff",
				mcp.Description("Include the full diff content (default: true)"),
				mcp.DefaultBool(true),
			),
			mcp.WithNumber("max_diff_lines",
				mcp.Description("Maximum number of diff lines to return; raise it to see more of a truncated diff"),
				mcp.DefaultNumber(float64(defaultMaxDiffLines)),
			),
			mcp.WithString("working_directory",
				mcp.Description("Optional: directory of the repository to inspect. Defaults to the client's root, then the server's working directory."),
			),
		),
		"get_pr_templates": mcp.NewTool("get_pr_templates",
			mcp.WithDescription("List available PR templates with their content."),
		),
		"suggest_template": mcp.NewTool("suggest_template",
			mcp.WithDescription("Suggest the most appropriate PR template for a change you have analyzed."),
			mcp.WithString("changes_summary",
				mcp.Required(),
				mcp.Description("Your analysis of what the changes do"),
			),
			mcp.WithString("change_type",
				mcp.Required(),
				mcp.Description("The type of change you've identified (bug, feature, docs, refactor, test, performance, security)"),
			),
		),
		"get_repository_info": mcp.NewTool("get_repository_info",
			mcp.WithDescription("Report the origin URL, current branch and last commit of the repository."),
			mcp.WithString("working_directory",
				mcp.Description("Optional: directory of the repository to inspect"),
			),
		),
		"create_custom_template": mcp.NewTool("create_custom_template",
			mcp.WithDescription("Create or overwrite a custom PR template in the template directory."),
			mcp.WithString("template_name",
				mcp.Required(),
				mcp.Description("File name of the template; .md is appended when missing"),
			),
			mcp.WithString("template_content",
				mcp.Required(),
				mcp.Description("Markdown content of the template"),
			),
		),
		"analyze_commit_messages": mcp.NewTool("analyze_commit_messages",
			mcp.WithDescription("Classify the commit subjects between a base branch and HEAD and suggest a template category. Commits matching no category are counted as other; other is never suggested, so an all-other history suggests feature."),
			mcp.WithString("base_branch",
				mcp.Description("Base branch to compare against (default: main)"),
				mcp.DefaultString("main"),
			),
			mcp.WithString("working_directory",
				mcp.Description("Optional: directory of the repository to inspect"),
			),
		),
	}
}

func New(cfg Config) *Server {
	mcpServer := server.NewMCPServer(
		ServerName,
		ServerVersion,
		server.WithToolCapabilities(true),
		server.WithRecovery(),
	)
	if cfg.Roots != nil {
		cfg.Roots.attach(mcpServer)
	}

	toolDefinitions := ToolDefinitions(cfg.DefaultMaxDiffLines)
	for name, adapter := range cfg.ToolAdapters {
		tool, ok := toolDefinitions[name]
		if !ok {
			log.Printf("no definition for tool %q; skipping", name)
			continue
		}
		mcpServer.AddTool(tool, func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return adapter.ToolAdapter(ctx, req)
		})
	}

	httpServer := server.NewStreamableHTTPServer(mcpServer, cfg.Options...)

	return &Server{
		MCP:     mcpServer,
		HTTP:    httpServer,
		Handler: httpServer,
	}
}

// ServeStdio serves MCP over stdin/stdout until the client disconnects.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.MCP)
}
