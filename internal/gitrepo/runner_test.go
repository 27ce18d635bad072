package gitrepo

import (
	"context"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Rontor3/mcp-course/internal/gitrepo/gittest"
	"github.com/Rontor3/mcp-course/internal/logging"
)

func newTestRunner() Runner {
	return NewRunner("git", 0, logging.Discard())
}

func TestRunStrictSuccess(t *testing.T) {
	repo := gittest.New(t)
	repo.Branch("feature")
	repo.Commit("a.txt", "a\n", "add a")

	res, err := newTestRunner().Run(context.Background(), repo.Dir, NameStatus("main"), Strict)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !res.OK() {
		t.Fatalf("expected success, got %s", res.Status)
	}
	if strings.TrimSpace(res.Stdout) != "A\ta.txt" {
		t.Fatalf("unexpected name-status output %q", res.Stdout)
	}
}

func TestRunStrictBadRefReturnsGitError(t *testing.T) {
	repo := gittest.New(t)

	res, err := newTestRunner().Run(context.Background(), repo.Dir, NameStatus("does-not-exist"), Strict)
	var gitErr *GitError
	if !errors.As(err, &gitErr) {
		t.Fatalf("expected GitError, got %v", err)
	}
	if !strings.HasPrefix(gitErr.Error(), "Git error: ") {
		t.Fatalf("unexpected message %q", gitErr.Error())
	}
	if gitErr.Stderr == "" {
		t.Fatalf("expected captured stderr")
	}
	if gitErr.Stderr != res.Stderr || !strings.HasSuffix(gitErr.Error(), "\n") {
		t.Fatalf("stderr must be kept verbatim, got %q", gitErr.Error())
	}
	if res.Status != StatusExitError || res.ExitCode == 0 {
		t.Fatalf("unexpected status %s/%d", res.Status, res.ExitCode)
	}
}

func TestRunBestEffortSwallowsFailure(t *testing.T) {
	repo := gittest.New(t)

	res, err := newTestRunner().Run(context.Background(), repo.Dir, Stat("does-not-exist"), BestEffort)
	if err != nil {
		t.Fatalf("best-effort query must not fail: %v", err)
	}
	if res.Status != StatusExitError {
		t.Fatalf("expected exit error status, got %s", res.Status)
	}
	if res.Stdout != "" {
		t.Fatalf("expected empty stdout, got %q", res.Stdout)
	}
}

func TestRunStrictMissingDirectory(t *testing.T) {
	gittest.New(t)
	dir := filepath.Join(t.TempDir(), "missing")

	res, err := newTestRunner().Run(context.Background(), dir, NameStatus("main"), Strict)
	if err == nil {
		t.Fatalf("expected error for missing directory")
	}
	var gitErr *GitError
	if errors.As(err, &gitErr) {
		t.Fatalf("missing directory must not be reported as a git error")
	}
	if res.Status != StatusExecFailure {
		t.Fatalf("expected exec failure, got %s", res.Status)
	}
}

func TestRunMissingBinary(t *testing.T) {
	r := NewRunner("definitely-not-git-binary", 0, logging.Discard())
	res, err := r.Run(context.Background(), t.TempDir(), CurrentBranch(), BestEffort)
	if err != nil {
		t.Fatalf("best-effort must not fail: %v", err)
	}
	if res.Status != StatusExecFailure {
		t.Fatalf("expected exec failure, got %s", res.Status)
	}
}

func TestQueriesUseArgumentVectors(t *testing.T) {
	branch := "main; rm -rf /"
	q := NameStatus(branch)
	if len(q.Args) != 3 || q.Args[2] != branch+"...HEAD" {
		t.Fatalf("unexpected args %v", q.Args)
	}
	if got := FullDiff("main").Args; got[len(got)-1] != "main..HEAD" {
		t.Fatalf("full diff must use two-dot range, got %v", got)
	}
}
