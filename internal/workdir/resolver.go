// Package workdir decides which directory git commands run in. The agent's
// notion of "current directory" and the server process's cwd often differ,
// so resolution never fails and always records how it decided.
package workdir

import (
	"context"
	"errors"
	"net/url"
	"os"
	"strings"

	"github.com/Rontor3/mcp-course/internal/logging"
)

const (
	SourceExplicit = "explicit"
	SourceRoots    = "roots"
	SourceProcess  = "process"
)

// RootsLister asks the connected client for its filesystem roots.
type RootsLister interface {
	ListRoots(ctx context.Context) ([]string, error)
}

// RootsCheck is the outcome of the roots query.
type RootsCheck struct {
	Found bool     `json:"found"`
	Count int      `json:"count"`
	Roots []string `json:"roots,omitempty"`
	Error string   `json:"error,omitempty"`
}

// Diagnostics is attached to reports as "_debug".
type Diagnostics struct {
	ProvidedWorkingDirectory *string     `json:"provided_working_directory"`
	ActualCWD                string      `json:"actual_cwd"`
	Source                   string      `json:"source"`
	ServerProcessCWD         string      `json:"server_process_cwd"`
	RootsCheck               *RootsCheck `json:"roots_check"`
}

type Resolution struct {
	Dir         string
	Diagnostics Diagnostics
}

type strategy struct {
	source  string
	resolve func(ctx context.Context) (string, bool)
}

type Resolver struct {
	roots RootsLister
	getwd func() (string, error)
	log   logging.Logger
}

func NewResolver(roots RootsLister, log logging.Logger) *Resolver {
	return &Resolver{roots: roots, getwd: os.Getwd, log: log.WithName("workdir")}
}

// Resolve picks the first strategy that yields a directory: the explicit
// argument, the client's first root, then the process working directory.
func (r *Resolver) Resolve(ctx context.Context, explicit string) Resolution {
	check, roots := r.queryRoots(ctx)
	processCWD := r.processDir()

	strategies := []strategy{
		{SourceExplicit, func(context.Context) (string, bool) { return explicit, explicit != "" }},
		{SourceRoots, func(context.Context) (string, bool) {
			if len(roots) == 0 {
				return "", false
			}
			return roots[0], roots[0] != ""
		}},
		{SourceProcess, func(context.Context) (string, bool) { return processCWD, true }},
	}

	diag := Diagnostics{ServerProcessCWD: processCWD, RootsCheck: check}
	if explicit != "" {
		diag.ProvidedWorkingDirectory = &explicit
	}
	for _, s := range strategies {
		if dir, ok := s.resolve(ctx); ok {
			diag.ActualCWD = dir
			diag.Source = s.source
			break
		}
	}

	r.log.Debug("resolved working directory", "dir", diag.ActualCWD, "source", diag.Source, "roots_found", check.Found)
	return Resolution{Dir: diag.ActualCWD, Diagnostics: diag}
}

func (r *Resolver) processDir() string {
	getwd := r.getwd
	if getwd == nil {
		getwd = os.Getwd
	}
	dir, err := getwd()
	if err != nil || dir == "" {
		return "."
	}
	return dir
}

func (r *Resolver) queryRoots(ctx context.Context) (check *RootsCheck, paths []string) {
	check = &RootsCheck{}
	defer func() {
		if rec := recover(); rec != nil {
			check = &RootsCheck{Error: "roots query panicked"}
			paths = nil
		}
	}()

	if r.roots == nil {
		check.Error = "roots capability not available"
		return check, nil
	}
	uris, err := r.roots.ListRoots(ctx)
	if err != nil {
		check.Error = err.Error()
		return check, nil
	}
	if len(uris) == 0 {
		check.Error = errNoRoots.Error()
		return check, nil
	}

	check.Found = true
	check.Count = len(uris)
	check.Roots = uris
	for _, u := range uris {
		paths = append(paths, URIToPath(u))
	}
	return check, paths
}

var errNoRoots = errors.New("client returned no roots")

// URIToPath converts a file:// URI to a filesystem path. Anything that is not
// a file URI is returned unchanged.
func URIToPath(uri string) string {
	if !strings.HasPrefix(uri, "file:") {
		return uri
	}
	u, err := url.Parse(uri)
	if err != nil || u.Path == "" {
		return strings.TrimPrefix(strings.TrimPrefix(uri, "file:"), "//")
	}
	return u.Path
}
