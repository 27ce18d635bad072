package tools

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/Rontor3/mcp-course/internal/mcp/tools/types"
	"github.com/Rontor3/mcp-course/internal/templates"
)

const suggestionUsageHint = "Claude can help you fill out this template based on the specific changes in your PR."

type TemplateClassifier interface {
	Classify(changeType string) (templates.Descriptor, error)
}

type SuggestTemplateHandler struct {
	Service TemplateClassifier
}

func (h *SuggestTemplateHandler) ToolAdapter(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := req.GetArguments()
	summary, _ := args["changes_summary"].(string)
	changeType, _ := args["change_type"].(string)
	selected, err := h.Service.Classify(changeType)
	if err != nil {
		return errorResult(err.Error())
	}
	return jsonResult(types.Suggestion{
		RecommendedTemplate: selected,
		Reasoning:           fmt.Sprintf("Based on your analysis: '%s', this appears to be a %s change.", summary, changeType),
		TemplateContent:     selected.Content,
		TemplateSections:    templates.Sections(selected.Content),
		UsageHint:           suggestionUsageHint,
	})
}
