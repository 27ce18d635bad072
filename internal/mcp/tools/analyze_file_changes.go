package tools

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/Rontor3/mcp-course/internal/changes"
)

type ChangeAnalyzer interface {
	Analyze(ctx context.Context, req changes.Request) (changes.Report, error)
	DefaultMaxDiffLines() int
}

type AnalyzeFileChangesHandler struct {
	Service ChangeAnalyzer
}

func (h *AnalyzeFileChangesHandler) ToolAdapter(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := req.GetArguments()
	maxLines := intArgument(args, "max_diff_lines", h.Service.DefaultMaxDiffLines())
	if maxLines < 0 {
		maxLines = h.Service.DefaultMaxDiffLines()
	}
	report, err := h.Service.Analyze(ctx, changes.Request{
		BaseBranch:       stringArgument(args, "base_branch", "main"),
		IncludeDiff:      boolArgument(args, "include_diff", true),
		MaxDiffLines:     maxLines,
		WorkingDirectory: stringArgument(args, "working_directory", ""),
	})
	if err != nil {
		return errorResult(err.Error())
	}
	return jsonResult(report)
}
