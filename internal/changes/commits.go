package changes

import (
	"context"
	"strings"

	"github.com/Rontor3/mcp-course/internal/gitrepo"
)

const (
	CategoryFeature     = "feature"
	CategoryBug         = "bug"
	CategoryDocs        = "docs"
	CategoryRefactor    = "refactor"
	CategoryTest        = "test"
	CategoryPerformance = "performance"
	CategorySecurity    = "security"
	CategoryOther       = "other"
)

type commitCategory struct {
	name     string
	keywords []string
}

// commitCategories is in priority order: a subject is credited to the first
// category with a matching keyword.
var commitCategories = []commitCategory{
	{CategoryFeature, []string{"feat", "feature", "add", "implement", "introduce"}},
	{CategoryBug, []string{"fix", "bug", "issue", "patch", "resolve", "hotfix"}},
	{CategoryDocs, []string{"docs", "documentation", "readme", "comment"}},
	{CategoryRefactor, []string{"refactor", "cleanup", "clean up", "restructure", "rename"}},
	{CategoryTest, []string{"test", "coverage"}},
	{CategoryPerformance, []string{"perf", "performance", "optimize", "optimise", "speed"}},
	{CategorySecurity, []string{"security", "vulnerability", "cve", "sanitize", "xss"}},
}

// ClassifyCommit returns the category of a commit subject.
func ClassifyCommit(subject string) string {
	lower := strings.ToLower(subject)
	for _, c := range commitCategories {
		for _, kw := range c.keywords {
			if strings.Contains(lower, kw) {
				return c.name
			}
		}
	}
	return CategoryOther
}

// ClassifyCommits tallies subjects per category and picks the category with
// the highest count. Ties go to the category seen first in priority order;
// "other" is never suggested and an empty tally suggests feature.
func ClassifyCommits(subjects []string) (counts map[string]int, suggested string) {
	counts = make(map[string]int, len(commitCategories)+1)
	for _, c := range commitCategories {
		counts[c.name] = 0
	}
	counts[CategoryOther] = 0
	for _, s := range subjects {
		counts[ClassifyCommit(s)]++
	}

	suggested = CategoryFeature
	best := 0
	for _, c := range commitCategories {
		if counts[c.name] > best {
			best = counts[c.name]
			suggested = c.name
		}
	}
	return counts, suggested
}

// AnalyzeCommits classifies the commit subjects in base..HEAD. The log
// query is best-effort; an invalid base yields an empty analysis.
func (a *Analyzer) AnalyzeCommits(ctx context.Context, baseBranch, workingDirectory string) (CommitAnalysis, error) {
	base, err := normalizeBaseBranch(baseBranch)
	if err != nil {
		return CommitAnalysis{}, err
	}
	res := a.resolver.Resolve(ctx, workingDirectory)

	out, _ := a.git.Run(ctx, res.Dir, gitrepo.SubjectLog(base), gitrepo.BestEffort)
	subjects := splitLines(out.Stdout)
	counts, suggested := ClassifyCommits(subjects)

	a.log.Debug("classified commits", "dir", res.Dir, "base", base, "commits", len(subjects), "suggested", suggested)
	return CommitAnalysis{
		TotalCommits:      len(subjects),
		CommitTypes:       counts,
		CommitMessages:    subjects,
		SuggestedTemplate: suggested,
		WorkingDirectory:  res.Dir,
	}, nil
}

func splitLines(s string) []string {
	lines := []string{}
	for _, l := range strings.Split(s, "\n") {
		if l = strings.TrimRight(l, "\r"); strings.TrimSpace(l) != "" {
			lines = append(lines, l)
		}
	}
	return lines
}
