package templates

import (
	"embed"
	"fmt"

	"sigs.k8s.io/yaml"
)

//go:embed catalog.yaml
var catalogYAML []byte

//go:embed defaults/*.md
var defaultBodies embed.FS

// Entry is a default template and its category label.
type Entry struct {
	Filename string `json:"filename"`
	Category string `json:"category"`
}

// Definition is the fixed part of the catalog: default templates in listing
// order plus the change-type synonym table.
type Definition struct {
	Templates []Entry           `json:"templates"`
	Default   string            `json:"default"`
	Synonyms  map[string]string `json:"synonyms"`
}

var builtin = mustLoadDefinition(catalogYAML)

func mustLoadDefinition(data []byte) Definition {
	def, err := LoadDefinition(data)
	if err != nil {
		panic(err)
	}
	return def
}

// LoadDefinition parses a catalog definition and checks that every synonym
// and the default point at a declared template.
func LoadDefinition(data []byte) (Definition, error) {
	var def Definition
	if err := yaml.Unmarshal(data, &def); err != nil {
		return Definition{}, fmt.Errorf("parse catalog definition: %w", err)
	}
	if len(def.Templates) == 0 {
		return Definition{}, fmt.Errorf("catalog definition declares no templates")
	}
	known := make(map[string]struct{}, len(def.Templates))
	for _, e := range def.Templates {
		if e.Filename == "" {
			return Definition{}, fmt.Errorf("catalog entry %q has no filename", e.Category)
		}
		known[e.Filename] = struct{}{}
	}
	if _, ok := known[def.Default]; !ok {
		return Definition{}, fmt.Errorf("default template %q is not declared", def.Default)
	}
	for word, file := range def.Synonyms {
		if _, ok := known[file]; !ok {
			return Definition{}, fmt.Errorf("synonym %q maps to undeclared template %q", word, file)
		}
	}
	return def, nil
}

// FilenameFor maps a change type to a template filename, falling back to the
// default template.
func (d Definition) FilenameFor(changeType string) string {
	if file, ok := d.Synonyms[normalizeChangeType(changeType)]; ok {
		return file
	}
	return d.Default
}

// FilenameFor resolves a change type against the built-in definition.
func FilenameFor(changeType string) string {
	return builtin.FilenameFor(changeType)
}

func defaultBody(filename string) ([]byte, error) {
	return defaultBodies.ReadFile("defaults/" + filename)
}
