package changes

import "github.com/Rontor3/mcp-course/internal/workdir"

// Request parameterises one change analysis.
type Request struct {
	BaseBranch       string
	IncludeDiff      bool
	MaxDiffLines     int
	WorkingDirectory string
}

// Report is the result of analyze_file_changes.
type Report struct {
	BaseBranch          string              `json:"base_branch"`
	FilesChanged        string              `json:"files_changed"`
	Statistics          string              `json:"statistics"`
	Commits             string              `json:"commits"`
	Diff                string              `json:"diff"`
	Truncated           bool                `json:"truncated"`
	TotalDiffLines      int                 `json:"total_diff_lines"`
	EstimatedDiffTokens int                 `json:"estimated_diff_tokens"`
	GeneratedFiles      []string            `json:"generated_files,omitempty"`
	Warnings            []string            `json:"warnings,omitempty"`
	Debug               workdir.Diagnostics `json:"_debug"`
}

// CommitAnalysis is the result of analyze_commit_messages.
type CommitAnalysis struct {
	TotalCommits      int            `json:"total_commits"`
	CommitTypes       map[string]int `json:"commit_types"`
	CommitMessages    []string       `json:"commit_messages"`
	SuggestedTemplate string         `json:"suggested_template"`
	WorkingDirectory  string         `json:"working_directory"`
}

// RepositoryInfo is the result of get_repository_info.
type RepositoryInfo struct {
	RepositoryURL    string      `json:"repository_url"`
	CurrentBranch    string      `json:"current_branch"`
	LastCommit       string      `json:"last_commit"`
	WorkingDirectory string      `json:"working_directory"`
	Repository       *Repository `json:"repository,omitempty"`
	LastCommitInfo   *CommitInfo `json:"last_commit_details,omitempty"`
}

type Repository struct {
	Host     string `json:"host"`
	Owner    string `json:"owner"`
	Name     string `json:"name"`
	FullName string `json:"full_name"`
}

type CommitInfo struct {
	Hash    string `json:"hash"`
	Author  string `json:"author"`
	Date    string `json:"date"`
	Subject string `json:"subject"`
}
