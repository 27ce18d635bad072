package tools

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/Rontor3/mcp-course/internal/changes"
	"github.com/Rontor3/mcp-course/internal/mcp/tools/types"
	"github.com/Rontor3/mcp-course/internal/templates"
)

type CommitAnalyzer interface {
	AnalyzeCommits(ctx context.Context, baseBranch, workingDirectory string) (changes.CommitAnalysis, error)
}

type AnalyzeCommitMessagesHandler struct {
	Service CommitAnalyzer
}

func (h *AnalyzeCommitMessagesHandler) ToolAdapter(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := req.GetArguments()
	analysis, err := h.Service.AnalyzeCommits(ctx,
		stringArgument(args, "base_branch", "main"),
		stringArgument(args, "working_directory", ""),
	)
	if err != nil {
		return errorResult(err.Error())
	}
	return jsonResult(types.CommitAnalysisResult{
		CommitAnalysis:        analysis,
		SuggestedTemplateFile: templates.FilenameFor(analysis.SuggestedTemplate),
	})
}
