package types

import "github.com/Rontor3/mcp-course/internal/templates"

type Suggestion struct {
	RecommendedTemplate templates.Descriptor `json:"recommended_template"`
	Reasoning           string               `json:"reasoning"`
	TemplateContent     string               `json:"template_content"`
	TemplateSections    []string             `json:"template_sections"`
	UsageHint           string               `json:"usage_hint"`
}
