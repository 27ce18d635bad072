package templates

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	"github.com/Rontor3/mcp-course/internal/logging"
)

const (
	Extension      = ".md"
	CustomCategory = "Custom"
)

// Descriptor is one template file.
type Descriptor struct {
	Filename string `json:"filename"`
	Category string `json:"type"`
	Content  string `json:"content"`
}

var ErrInvalidName = errors.New("invalid template name")

// Catalog reads templates from Dir on every call; nothing is cached so edits
// on disk are visible immediately.
type Catalog struct {
	Dir string
	def Definition
	log logging.Logger
}

func NewCatalog(dir string, log logging.Logger) *Catalog {
	return &Catalog{Dir: dir, def: builtin, log: log.WithName("templates")}
}

// List returns the default templates in declared order followed by any other
// *.md files in Dir sorted by name. A missing or unreadable default fails the
// whole listing.
func (c *Catalog) List() ([]Descriptor, error) {
	out := make([]Descriptor, 0, len(c.def.Templates))
	defaults := make(map[string]struct{}, len(c.def.Templates))
	for _, e := range c.def.Templates {
		content, err := os.ReadFile(filepath.Join(c.Dir, e.Filename))
		if err != nil {
			return nil, fmt.Errorf("read template %s: %w", e.Filename, err)
		}
		defaults[e.Filename] = struct{}{}
		out = append(out, Descriptor{Filename: e.Filename, Category: e.Category, Content: string(content)})
	}

	custom, err := c.customFiles(defaults)
	if err != nil {
		return nil, err
	}
	for _, name := range custom {
		content, err := os.ReadFile(filepath.Join(c.Dir, name))
		if err != nil {
			return nil, fmt.Errorf("read template %s: %w", name, err)
		}
		out = append(out, Descriptor{Filename: name, Category: CustomCategory, Content: string(content)})
	}
	return out, nil
}

func (c *Catalog) customFiles(skip map[string]struct{}) ([]string, error) {
	entries, err := os.ReadDir(c.Dir)
	if err != nil {
		return nil, fmt.Errorf("read template directory: %w", err)
	}
	var names []string
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || !strings.HasSuffix(name, Extension) {
			continue
		}
		if _, ok := skip[name]; ok {
			continue
		}
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}

// Classify maps a free-form change type to a template from a fresh listing.
// Matching is case-insensitive but otherwise exact, so " bug " is unknown.
// Unknown types select the default template; if the selected file is gone
// the first listed template is returned instead.
func (c *Catalog) Classify(changeType string) (Descriptor, error) {
	all, err := c.List()
	if err != nil {
		return Descriptor{}, err
	}
	if len(all) == 0 {
		return Descriptor{}, errors.New("template catalog is empty")
	}
	want := c.def.FilenameFor(changeType)
	for _, d := range all {
		if d.Filename == want {
			return d, nil
		}
	}
	c.log.Debug("mapped template missing; using first entry", "change_type", changeType, "wanted", want, "using", all[0].Filename)
	return all[0], nil
}

// Create writes content to name (with the .md extension appended if absent),
// creating Dir if needed and overwriting any existing file.
func (c *Catalog) Create(name, content string) (string, error) {
	filename, err := normalizeName(name)
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(c.Dir, 0o755); err != nil {
		return "", fmt.Errorf("create template directory: %w", err)
	}
	path := filepath.Join(c.Dir, filename)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return "", fmt.Errorf("write template %s: %w", filename, err)
	}
	c.log.Info("template written", "path", path)
	return path, nil
}

// Seed writes the built-in body of every default template that is missing
// from Dir. Existing files are left alone. It returns the files written.
func (c *Catalog) Seed() ([]string, error) {
	if err := os.MkdirAll(c.Dir, 0o755); err != nil {
		return nil, fmt.Errorf("create template directory: %w", err)
	}
	var written []string
	for _, e := range c.def.Templates {
		path := filepath.Join(c.Dir, e.Filename)
		if _, err := os.Stat(path); err == nil {
			continue
		} else if !errors.Is(err, os.ErrNotExist) {
			return written, fmt.Errorf("stat template %s: %w", e.Filename, err)
		}
		body, err := defaultBody(e.Filename)
		if err != nil {
			return written, fmt.Errorf("load built-in template %s: %w", e.Filename, err)
		}
		if err := os.WriteFile(path, body, 0o644); err != nil {
			return written, fmt.Errorf("write template %s: %w", e.Filename, err)
		}
		written = append(written, e.Filename)
	}
	if len(written) > 0 {
		c.log.Info("seeded default templates", "dir", c.Dir, "files", written)
	}
	return written, nil
}

func normalizeName(name string) (string, error) {
	if strings.TrimSpace(name) == "" {
		return "", fmt.Errorf("%w: name is empty", ErrInvalidName)
	}
	if strings.ContainsAny(name, `/\`) || name == "." || name == ".." {
		return "", fmt.Errorf("%w: %q must be a plain file name", ErrInvalidName, name)
	}
	if !strings.HasSuffix(name, Extension) {
		name += Extension
	}
	return name, nil
}

var headingRegexp = regexp.MustCompile(`(?m)^#{2,6}\s+(.+?)\s*$`)

// Sections lists the markdown headings of a template body so an agent knows
// which parts it has to fill in.
func Sections(content string) []string {
	matches := headingRegexp.FindAllStringSubmatch(content, -1)
	sections := make([]string, 0, len(matches))
	for _, m := range matches {
		sections = append(sections, m[1])
	}
	return sections
}

func normalizeChangeType(s string) string {
	return strings.ToLower(s)
}
