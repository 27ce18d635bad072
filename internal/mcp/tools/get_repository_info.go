package tools

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/Rontor3/mcp-course/internal/changes"
)

type RepositoryInspector interface {
	RepositoryInfo(ctx context.Context, workingDirectory string) (changes.RepositoryInfo, error)
}

type GetRepositoryInfoHandler struct {
	Service RepositoryInspector
}

func (h *GetRepositoryInfoHandler) ToolAdapter(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	info, err := h.Service.RepositoryInfo(ctx, stringArgument(req.GetArguments(), "working_directory", ""))
	if err != nil {
		return errorResult(err.Error())
	}
	return jsonResult(info)
}
