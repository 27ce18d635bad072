package changes

import (
	"context"
	"fmt"
	"strings"

	"github.com/Rontor3/mcp-course/internal/gitrepo"
	"github.com/Rontor3/mcp-course/internal/logging"
	"github.com/Rontor3/mcp-course/internal/workdir"
)

type Resolver interface {
	Resolve(ctx context.Context, explicit string) workdir.Resolution
}

type GitRunner interface {
	Run(ctx context.Context, dir string, q gitrepo.Query, mode gitrepo.Mode) (gitrepo.CommandResult, error)
}

type Config struct {
	DefaultMaxDiffLines int
	MaxResponseTokens   int
}

type Analyzer struct {
	cfg      Config
	resolver Resolver
	git      GitRunner
	log      logging.Logger
}

func NewAnalyzer(cfg Config, resolver Resolver, git GitRunner, log logging.Logger) *Analyzer {
	if cfg.DefaultMaxDiffLines <= 0 {
		cfg.DefaultMaxDiffLines = DefaultMaxDiffLines
	}
	if cfg.MaxResponseTokens <= 0 {
		cfg.MaxResponseTokens = DefaultMaxResponseTokens
	}
	return &Analyzer{cfg: cfg, resolver: resolver, git: git, log: log.WithName("changes")}
}

func (a *Analyzer) DefaultMaxDiffLines() int { return a.cfg.DefaultMaxDiffLines }

// Analyze gathers name-status, stat, diff and log output for base...HEAD.
// Only the name-status query is strict: its failure is returned as a
// *gitrepo.GitError and aborts the analysis.
func (a *Analyzer) Analyze(ctx context.Context, req Request) (Report, error) {
	base, err := normalizeBaseBranch(req.BaseBranch)
	if err != nil {
		return Report{}, err
	}
	maxLines := req.MaxDiffLines
	if maxLines < 0 {
		maxLines = a.cfg.DefaultMaxDiffLines
	}

	res := a.resolver.Resolve(ctx, req.WorkingDirectory)
	dir := res.Dir
	log := a.log.WithValues("dir", dir, "base", base)

	files, err := a.git.Run(ctx, dir, gitrepo.NameStatus(base), gitrepo.Strict)
	if err != nil {
		log.Debug("name-status failed", "error", err.Error())
		return Report{}, err
	}
	stat, _ := a.git.Run(ctx, dir, gitrepo.Stat(base), gitrepo.BestEffort)

	report := Report{
		BaseBranch:     base,
		FilesChanged:   files.Stdout,
		Statistics:     stat.Stdout,
		Diff:           diffOmittedPlaceholder,
		GeneratedFiles: generatedFiles(files.Stdout),
		Debug:          res.Diagnostics,
	}

	if req.IncludeDiff {
		full, _ := a.git.Run(ctx, dir, gitrepo.FullDiff(base), gitrepo.BestEffort)
		report.Diff, report.Truncated, report.TotalDiffLines = Bound(full.Stdout, maxLines)
		report.EstimatedDiffTokens = estimateTokens(report.Diff)
		if report.EstimatedDiffTokens > a.cfg.MaxResponseTokens {
			report.Warnings = append(report.Warnings, fmt.Sprintf(
				"diff is estimated at %d tokens which exceeds the %d token response limit; lower max_diff_lines",
				report.EstimatedDiffTokens, a.cfg.MaxResponseTokens))
		}
	}

	commits, _ := a.git.Run(ctx, dir, gitrepo.OnelineLog(base), gitrepo.BestEffort)
	report.Commits = commits.Stdout

	log.Info("analyzed changes",
		"truncated", report.Truncated,
		"total_diff_lines", report.TotalDiffLines,
		"estimated_tokens", report.EstimatedDiffTokens,
	)
	return report, nil
}

// normalizeBaseBranch defaults to main and refuses refs git would parse as
// an option.
func normalizeBaseBranch(base string) (string, error) {
	base = strings.TrimSpace(base)
	if base == "" {
		return "main", nil
	}
	if strings.HasPrefix(base, "-") {
		return "", fmt.Errorf("invalid base branch %q", base)
	}
	return base, nil
}
