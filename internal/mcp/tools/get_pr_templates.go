package tools

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/Rontor3/mcp-course/internal/templates"
)

type TemplateLister interface {
	List() ([]templates.Descriptor, error)
}

type GetPRTemplatesHandler struct {
	Service TemplateLister
}

func (h *GetPRTemplatesHandler) ToolAdapter(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	all, err := h.Service.List()
	if err != nil {
		return errorResult(err.Error())
	}
	return jsonResult(all)
}
