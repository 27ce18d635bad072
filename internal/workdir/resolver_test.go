package workdir

import (
	"context"
	"errors"
	"testing"

	"github.com/Rontor3/mcp-course/internal/logging"
)

type fakeRoots struct {
	uris []string
	err  error
}

func (f fakeRoots) ListRoots(context.Context) ([]string, error) { return f.uris, f.err }

type panickingRoots struct{}

func (panickingRoots) ListRoots(context.Context) ([]string, error) { panic("boom") }

func newTestResolver(roots RootsLister) *Resolver {
	r := NewResolver(roots, logging.Discard())
	r.getwd = func() (string, error) { return "/srv/process", nil }
	return r
}

func TestResolveExplicitWins(t *testing.T) {
	r := newTestResolver(fakeRoots{uris: []string{"file:///home/dev/project"}})
	res := r.Resolve(context.Background(), "relative/dir")
	if res.Dir != "relative/dir" {
		t.Fatalf("expected explicit dir verbatim, got %q", res.Dir)
	}
	if res.Diagnostics.Source != SourceExplicit {
		t.Fatalf("unexpected source %q", res.Diagnostics.Source)
	}
	if res.Diagnostics.ProvidedWorkingDirectory == nil || *res.Diagnostics.ProvidedWorkingDirectory != "relative/dir" {
		t.Fatalf("expected provided dir recorded")
	}
	if !res.Diagnostics.RootsCheck.Found {
		t.Fatalf("roots check should still run with an explicit dir")
	}
}

func TestResolveUsesFirstRoot(t *testing.T) {
	r := newTestResolver(fakeRoots{uris: []string{"file:///home/dev/project", "file:///other"}})
	res := r.Resolve(context.Background(), "")
	if res.Dir != "/home/dev/project" {
		t.Fatalf("expected first root path, got %q", res.Dir)
	}
	if res.Diagnostics.Source != SourceRoots {
		t.Fatalf("unexpected source %q", res.Diagnostics.Source)
	}
	if res.Diagnostics.RootsCheck.Count != 2 {
		t.Fatalf("expected 2 roots, got %d", res.Diagnostics.RootsCheck.Count)
	}
	if res.Diagnostics.ProvidedWorkingDirectory != nil {
		t.Fatalf("no directory was provided")
	}
}

func TestResolveFallsBackToProcess(t *testing.T) {
	cases := map[string]RootsLister{
		"unsupported": fakeRoots{err: errors.New("roots not supported")},
		"empty":       fakeRoots{},
		"nil lister":  nil,
		"panic":       panickingRoots{},
	}
	for name, lister := range cases {
		t.Run(name, func(t *testing.T) {
			res := newTestResolver(lister).Resolve(context.Background(), "")
			if res.Dir != "/srv/process" {
				t.Fatalf("expected process dir, got %q", res.Dir)
			}
			if res.Diagnostics.Source != SourceProcess {
				t.Fatalf("unexpected source %q", res.Diagnostics.Source)
			}
			check := res.Diagnostics.RootsCheck
			if check.Found {
				t.Fatalf("roots must not be reported as found")
			}
			if check.Error == "" {
				t.Fatalf("expected failure reason recorded")
			}
		})
	}
}

func TestResolveUnsupportedRecordsReason(t *testing.T) {
	res := newTestResolver(fakeRoots{err: errors.New("roots not supported")}).Resolve(context.Background(), "")
	if res.Diagnostics.RootsCheck.Error != "roots not supported" {
		t.Fatalf("unexpected reason %q", res.Diagnostics.RootsCheck.Error)
	}
}

func TestResolveGetwdFailure(t *testing.T) {
	r := NewResolver(nil, logging.Discard())
	r.getwd = func() (string, error) { return "", errors.New("cwd removed") }
	if res := r.Resolve(context.Background(), ""); res.Dir != "." {
		t.Fatalf("expected '.', got %q", res.Dir)
	}
}

func TestURIToPath(t *testing.T) {
	cases := map[string]string{
		"file:///home/dev/project":     "/home/dev/project",
		"file:///tmp/with%20space":     "/tmp/with space",
		"/already/a/path":              "/already/a/path",
		"file://localhost/var/project": "/var/project",
	}
	for in, want := range cases {
		if got := URIToPath(in); got != want {
			t.Fatalf("URIToPath(%q) = %q, want %q", in, got, want)
		}
	}
}
