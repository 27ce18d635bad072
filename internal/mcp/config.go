package mcp

import (
	"github.com/mark3labs/mcp-go/server"

	"github.com/Rontor3/mcp-course/internal/changes"
	"github.com/Rontor3/mcp-course/internal/config"
	"github.com/Rontor3/mcp-course/internal/gitrepo"
	"github.com/Rontor3/mcp-course/internal/logging"
	"github.com/Rontor3/mcp-course/internal/mcp/tools"
	"github.com/Rontor3/mcp-course/internal/templates"
	"github.com/Rontor3/mcp-course/internal/workdir"
)

type Config struct {
	ToolAdapters        map[string]ToolAdapter
	Options             []server.StreamableHTTPOption
	Roots               *RootsBridge
	DefaultMaxDiffLines int
}

// Services are the domain components behind the tools.
type Services struct {
	Analyzer *changes.Analyzer
	Catalog  *templates.Catalog
}

// NewServices builds the analyzer and template catalog from configuration.
// roots may be nil, in which case resolution skips straight to the process
// working directory.
func NewServices(log logging.Logger, roots workdir.RootsLister) Services {
	resolver := workdir.NewResolver(roots, log)
	runner := gitrepo.NewRunner(config.GitBinary(), config.GitTimeout(), log)
	analyzer := changes.NewAnalyzer(changes.Config{
		DefaultMaxDiffLines: config.MaxDiffLines(),
		MaxResponseTokens:   config.MaxResponseTokens(),
	}, resolver, runner, log)
	return Services{
		Analyzer: analyzer,
		Catalog:  templates.NewCatalog(config.TemplatesDir(), log),
	}
}

// Adapters maps every tool name to its handler.
func (s Services) Adapters() map[string]ToolAdapter {
	return map[string]ToolAdapter{
		"analyze_file_changes":    &tools.AnalyzeFileChangesHandler{Service: s.Analyzer},
		"get_pr_templates":        &tools.GetPRTemplatesHandler{Service: s.Catalog},
		"suggest_template":        &tools.SuggestTemplateHandler{Service: s.Catalog},
		"get_repository_info":     &tools.GetRepositoryInfoHandler{Service: s.Analyzer},
		"create_custom_template":  &tools.CreateCustomTemplateHandler{Service: s.Catalog},
		"analyze_commit_messages": &tools.AnalyzeCommitMessagesHandler{Service: s.Analyzer},
	}
}

func DefaultConfig() Config {
	baseLogger := logging.New(logging.WithLevel(config.LogLevel()))
	roots := NewRootsBridge()
	services := NewServices(baseLogger, roots)

	if config.SeedTemplates() {
		if _, err := services.Catalog.Seed(); err != nil {
			baseLogger.Error(err, "seeding default templates failed", "dir", config.TemplatesDir())
		}
	}

	return Config{
		ToolAdapters: services.Adapters(),
		Options: []server.StreamableHTTPOption{
			server.WithEndpointPath(config.EndpointPath()),
		},
		Roots:               roots,
		DefaultMaxDiffLines: services.Analyzer.DefaultMaxDiffLines(),
	}
}
