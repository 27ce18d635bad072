package changes

import (
	"context"
	"strings"

	vcsurl "github.com/gitsight/go-vcsurl"

	"github.com/Rontor3/mcp-course/internal/gitrepo"
)

// RepositoryInfo reports the origin URL, current branch and last commit of
// the resolved directory. Every query is best-effort.
func (a *Analyzer) RepositoryInfo(ctx context.Context, workingDirectory string) (RepositoryInfo, error) {
	res := a.resolver.Resolve(ctx, workingDirectory)
	dir := res.Dir

	remote, _ := a.git.Run(ctx, dir, gitrepo.RemoteURL(), gitrepo.BestEffort)
	branch, _ := a.git.Run(ctx, dir, gitrepo.CurrentBranch(), gitrepo.BestEffort)
	last, _ := a.git.Run(ctx, dir, gitrepo.LastCommit(), gitrepo.BestEffort)

	info := RepositoryInfo{
		RepositoryURL:    strings.TrimSpace(remote.Stdout),
		CurrentBranch:    strings.TrimSpace(branch.Stdout),
		WorkingDirectory: dir,
	}
	if details := parseLastCommit(last.Stdout); details != nil {
		info.LastCommitInfo = details
		info.LastCommit = formatCommit(*details)
	}
	info.Repository = parseRepository(info.RepositoryURL)
	return info, nil
}

func parseLastCommit(out string) *CommitInfo {
	out = strings.TrimSpace(out)
	if out == "" {
		return nil
	}
	parts := strings.SplitN(out, "\t", 4)
	if len(parts) != 4 {
		return &CommitInfo{Subject: out}
	}
	return &CommitInfo{Hash: parts[0], Author: parts[1], Date: parts[2], Subject: parts[3]}
}

func formatCommit(c CommitInfo) string {
	if c.Hash == "" {
		return c.Subject
	}
	short := c.Hash
	if len(short) > 7 {
		short = short[:7]
	}
	return short + " - " + c.Subject + " (" + c.Author + ", " + c.Date + ")"
}

func parseRepository(remote string) *Repository {
	if remote == "" {
		return nil
	}
	info, err := vcsurl.Parse(remote)
	if err != nil {
		return nil
	}
	return &Repository{
		Host:     string(info.Host),
		Owner:    info.Username,
		Name:     info.Name,
		FullName: info.FullName,
	}
}
