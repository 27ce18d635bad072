package types

import "github.com/Rontor3/mcp-course/internal/changes"

type CreateTemplateResult struct {
	Success      bool   `json:"success"`
	TemplatePath string `json:"template_path"`
	Message      string `json:"message"`
}

type CommitAnalysisResult struct {
	changes.CommitAnalysis
	SuggestedTemplateFile string `json:"suggested_template_file"`
}
