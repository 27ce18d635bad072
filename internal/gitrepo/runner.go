package gitrepo

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
	"time"

	"github.com/Rontor3/mcp-course/internal/logging"
)

type Mode int

const (
	// Strict turns a non-zero exit into a *GitError.
	Strict Mode = iota
	// BestEffort never fails; callers use whatever stdout was captured.
	BestEffort
)

type Status string

const (
	StatusSuccess     Status = "success"
	StatusExitError   Status = "exit_error"
	StatusExecFailure Status = "exec_failure"
)

// CommandResult captures one git invocation.
type CommandResult struct {
	Query    string
	Args     []string
	Stdout   string
	Stderr   string
	Status   Status
	ExitCode int
	Err      error
}

func (r CommandResult) OK() bool { return r.Status == StatusSuccess }

// GitError reports a strict query that exited non-zero, which usually means
// the base ref does not exist or the directory is not a repository. Stderr is
// kept exactly as git wrote it, trailing newline included.
type GitError struct {
	Args   []string
	Stderr string
}

func (e *GitError) Error() string {
	return "Git error: " + e.Stderr
}

type Runner struct {
	Binary  string
	Timeout time.Duration
	Log     logging.Logger
}

func NewRunner(binary string, timeout time.Duration, log logging.Logger) Runner {
	if binary == "" {
		binary = "git"
	}
	return Runner{Binary: binary, Timeout: timeout, Log: log.WithName("gitrepo")}
}

// Run executes q in dir. In Strict mode a non-zero exit is returned as a
// *GitError and an execution failure as a wrapped error; in BestEffort mode
// the error is always nil.
func (r Runner) Run(ctx context.Context, dir string, q Query, mode Mode) (CommandResult, error) {
	res := r.exec(ctx, dir, q)
	switch res.Status {
	case StatusSuccess:
		return res, nil
	case StatusExitError:
		if mode == Strict {
			return res, &GitError{Args: res.Args, Stderr: res.Stderr}
		}
	case StatusExecFailure:
		if mode == Strict {
			return res, formatGitError(res.Args, res.Err, res.Stderr)
		}
	}
	r.Log.Debug("best-effort git query failed", "query", q.Name, "dir", dir, "status", res.Status, "stderr", strings.TrimSpace(res.Stderr))
	return res, nil
}

func (r Runner) exec(ctx context.Context, dir string, q Query) CommandResult {
	if r.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.Timeout)
		defer cancel()
	}
	binary := r.Binary
	if binary == "" {
		binary = "git"
	}

	c := exec.CommandContext(ctx, binary, q.Args...)
	c.Dir = dir
	var stdout, stderr bytes.Buffer
	c.Stdout = &stdout
	c.Stderr = &stderr

	res := CommandResult{Query: q.Name, Args: q.Args}
	err := c.Run()
	res.Stdout = stdout.String()
	res.Stderr = stderr.String()

	var exitErr *exec.ExitError
	switch {
	case err == nil:
		res.Status = StatusSuccess
	case ctx.Err() != nil:
		res.Status = StatusExecFailure
		res.ExitCode = -1
		res.Err = formatGitContextError(ctx.Err(), r.Timeout)
	case errors.As(err, &exitErr):
		res.Status = StatusExitError
		res.ExitCode = exitErr.ExitCode()
		res.Err = err
	default:
		res.Status = StatusExecFailure
		res.ExitCode = -1
		res.Err = err
	}
	return res
}

func formatGitError(args []string, cause error, stderr string) error {
	cmd := strings.Join(args, " ")
	stderr = strings.TrimSpace(stderr)
	if stderr != "" {
		return fmt.Errorf("git %s: %w: %s", cmd, cause, stderr)
	}
	return fmt.Errorf("git %s: %w", cmd, cause)
}

func formatGitContextError(cause error, timeout time.Duration) error {
	if errors.Is(cause, context.DeadlineExceeded) && timeout > 0 {
		return fmt.Errorf("command timed out after %s: %w", timeout, cause)
	}
	return cause
}
