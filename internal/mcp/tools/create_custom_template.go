package tools

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/Rontor3/mcp-course/internal/mcp/tools/types"
)

type TemplateWriter interface {
	Create(name, content string) (string, error)
}

type CreateCustomTemplateHandler struct {
	Service TemplateWriter
}

func (h *CreateCustomTemplateHandler) ToolAdapter(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := req.GetArguments()
	name, _ := args["template_name"].(string)
	content, ok := args["template_content"].(string)
	if name == "" {
		return errorResult("template_name is required")
	}
	if !ok {
		return errorResult("template_content is required")
	}

	path, err := h.Service.Create(name, content)
	if err != nil {
		return errorResult(err.Error())
	}
	return jsonResult(types.CreateTemplateResult{
		Success:      true,
		TemplatePath: path,
		Message:      fmt.Sprintf("Template '%s' created successfully", filepath.Base(path)),
	})
}
