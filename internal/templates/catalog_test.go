package templates

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/Rontor3/mcp-course/internal/logging"
)

func seededCatalog(t *testing.T) *Catalog {
	t.Helper()
	c := NewCatalog(filepath.Join(t.TempDir(), "templates"), logging.Discard())
	if _, err := c.Seed(); err != nil {
		t.Fatalf("seed: %v", err)
	}
	return c
}

func TestListDefaultOrder(t *testing.T) {
	c := seededCatalog(t)
	got, err := c.List()
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	want := []string{"bug.md", "feature.md", "docs.md", "refactor.md", "test.md", "performance.md", "security.md"}
	if len(got) != len(want) {
		t.Fatalf("expected %d templates, got %d", len(want), len(got))
	}
	for i, d := range got {
		if d.Filename != want[i] {
			t.Fatalf("entry %d = %s, want %s", i, d.Filename, want[i])
		}
		if d.Content == "" {
			t.Fatalf("%s has no content", d.Filename)
		}
	}
	if got[0].Category != "Bug Fix" || got[2].Category != "Documentation" {
		t.Fatalf("unexpected categories %q %q", got[0].Category, got[2].Category)
	}
}

func TestListIsIdempotent(t *testing.T) {
	c := seededCatalog(t)
	first, err := c.List()
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	second, err := c.List()
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("listing changed without filesystem changes")
	}
}

func TestListSeesEditsImmediately(t *testing.T) {
	c := seededCatalog(t)
	if err := os.WriteFile(filepath.Join(c.Dir, "docs.md"), []byte("edited"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	got, err := c.List()
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if got[2].Content != "edited" {
		t.Fatalf("expected edited content, got %q", got[2].Content)
	}
}

func TestListFailsWhenDefaultMissing(t *testing.T) {
	c := seededCatalog(t)
	if err := os.Remove(filepath.Join(c.Dir, "test.md")); err != nil {
		t.Fatalf("remove: %v", err)
	}
	if _, err := c.List(); err == nil {
		t.Fatalf("expected error for missing default template")
	}
}

func TestListMissingDirectory(t *testing.T) {
	c := NewCatalog(filepath.Join(t.TempDir(), "absent"), logging.Discard())
	if _, err := c.List(); err == nil {
		t.Fatalf("expected error for missing directory")
	}
}

func TestCreateRoundTrip(t *testing.T) {
	c := seededCatalog(t)
	path, err := c.Create("foo", "X")
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if filepath.Base(path) != "foo.md" {
		t.Fatalf("unexpected path %s", path)
	}
	if _, err := c.Create("foo.md", "Y"); err != nil {
		t.Fatalf("create suffixed: %v", err)
	}
	if _, err := os.Stat(filepath.Join(c.Dir, "foo.md.md")); !os.IsNotExist(err) {
		t.Fatalf("foo.md.md must not exist")
	}

	all, err := c.List()
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	last := all[len(all)-1]
	if last.Filename != "foo.md" || last.Content != "Y" || last.Category != CustomCategory {
		t.Fatalf("unexpected custom entry %+v", last)
	}
}

func TestCreateMakesDirectory(t *testing.T) {
	c := NewCatalog(filepath.Join(t.TempDir(), "a", "b"), logging.Discard())
	if _, err := c.Create("release", "notes"); err != nil {
		t.Fatalf("create: %v", err)
	}
	data, err := os.ReadFile(filepath.Join(c.Dir, "release.md"))
	if err != nil || string(data) != "notes" {
		t.Fatalf("unexpected file %q: %v", data, err)
	}
}

func TestCreateRejectsPaths(t *testing.T) {
	c := seededCatalog(t)
	for _, name := range []string{"", "  ", "../escape", "sub/dir", `win\path`, ".."} {
		if _, err := c.Create(name, "x"); !errors.Is(err, ErrInvalidName) {
			t.Fatalf("Create(%q) error = %v, want ErrInvalidName", name, err)
		}
	}
}

func TestCreateAllowsDotsInsideName(t *testing.T) {
	c := seededCatalog(t)
	path, err := c.Create("v1..2", "notes")
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if filepath.Base(path) != "v1..2.md" || filepath.Dir(path) != c.Dir {
		t.Fatalf("unexpected path %s", path)
	}
}

func TestSeedKeepsExistingFiles(t *testing.T) {
	c := seededCatalog(t)
	path := filepath.Join(c.Dir, "bug.md")
	if err := os.WriteFile(path, []byte("mine"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if err := os.Remove(filepath.Join(c.Dir, "security.md")); err != nil {
		t.Fatalf("remove: %v", err)
	}
	written, err := c.Seed()
	if err != nil {
		t.Fatalf("seed: %v", err)
	}
	if !reflect.DeepEqual(written, []string{"security.md"}) {
		t.Fatalf("unexpected seeded files %v", written)
	}
	data, _ := os.ReadFile(path)
	if string(data) != "mine" {
		t.Fatalf("seed overwrote an existing template")
	}
}

func TestClassify(t *testing.T) {
	c := seededCatalog(t)
	cases := map[string]string{
		"bug":          "bug.md",
		"BUG":          "bug.md",
		"Fix":          "bug.md",
		"enhancment":   "feature.md",
		"docs":         "docs.md",
		"refactor":     "refactor.md",
		"cleanup":      "refactor.md",
		"testing":      "test.md",
		"optimization": "performance.md",
		"security":     "security.md",
		"":             "feature.md",
		" bug ":        "feature.md",
		"something":    "feature.md",
	}
	for in, want := range cases {
		got, err := c.Classify(in)
		if err != nil {
			t.Fatalf("classify %q: %v", in, err)
		}
		if got.Filename != want {
			t.Fatalf("Classify(%q) = %s, want %s", in, got.Filename, want)
		}
	}
}

func TestClassifyFallsBackToFirstEntry(t *testing.T) {
	c := seededCatalog(t)
	c.def.Synonyms = map[string]string{"bug": "gone.md"}
	got, err := c.Classify("bug")
	if err != nil {
		t.Fatalf("classify: %v", err)
	}
	if got.Filename != "bug.md" {
		t.Fatalf("expected first catalog entry, got %s", got.Filename)
	}
}

func TestLoadDefinitionValidates(t *testing.T) {
	bad := []string{
		"templates: []\ndefault: a.md\n",
		"templates:\n  - filename: a.md\n    category: A\ndefault: b.md\n",
		"templates:\n  - filename: a.md\n    category: A\ndefault: a.md\nsynonyms:\n  x: b.md\n",
		"templates: [",
	}
	for _, doc := range bad {
		if _, err := LoadDefinition([]byte(doc)); err == nil {
			t.Fatalf("expected error for %q", doc)
		}
	}
}

func TestBuiltinDefinitionHasBodies(t *testing.T) {
	for _, e := range builtin.Templates {
		if _, err := defaultBody(e.Filename); err != nil {
			t.Fatalf("missing built-in body for %s: %v", e.Filename, err)
		}
	}
}

func TestSections(t *testing.T) {
	got := Sections("## Bug Fix\n\n### Description\ntext\n# Title\n#### Deep  \n")
	want := []string{"Bug Fix", "Description", "Deep"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Sections = %v, want %v", got, want)
	}
}

func TestFilenameFor(t *testing.T) {
	if FilenameFor("performance") != "performance.md" {
		t.Fatalf("unexpected mapping for performance")
	}
	if FilenameFor("other") != "feature.md" {
		t.Fatalf("unknown types map to the default template")
	}
}
