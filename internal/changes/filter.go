package changes

import (
	"regexp"
	"sort"
	"strings"
)

var generatedPatternMap = map[string]string{
	"package-lock":     `package-lock\.json$`,
	"yarn-lock":        `yarn\.lock$`,
	"pnpm-lock":        `pnpm-lock\.yaml$`,
	"npm-shrinkwrap":   `npm-shrinkwrap\.json$`,
	"go-sum":           `go\.sum$`,
	"go-work-sum":      `go\.work\.sum$`,
	"vendor":           `(^|/)vendor/`,
	"node_modules":     `(^|/)node_modules/`,
	"generated-go":     `\.(?:pb|pb\.gw|pb\.json|pb\.grpc)\.go$`,
	"generated-client": `\.generated\.(?:ts|js|py|go|rs|java)$`,
	"snapshots":        `\.snap$`,
	"helm-render":      `.*chart\.lock$`,
	"lockfiles":        `\.lock$`,
	"generated-json":   `.*\.swagger\.json$`,
}

var generatedPatterns = buildGeneratedPatterns()

func buildGeneratedPatterns() map[string]*regexp.Regexp {
	compiled := make(map[string]*regexp.Regexp, len(generatedPatternMap))
	for reason, pattern := range generatedPatternMap {
		compiled[reason] = regexp.MustCompile(pattern)
	}
	return compiled
}

func isGeneratedFile(path string) bool {
	for _, rx := range generatedPatterns {
		if rx.MatchString(path) {
			return true
		}
	}
	return false
}

// generatedFiles returns the paths in a `git diff --name-status` listing that
// look like lock files or generated code. For renames and copies the
// destination path is checked.
func generatedFiles(nameStatus string) []string {
	seen := map[string]struct{}{}
	for _, line := range strings.Split(nameStatus, "\n") {
		fields := strings.Split(strings.TrimRight(line, "\r"), "\t")
		if len(fields) < 2 {
			continue
		}
		path := fields[len(fields)-1]
		if isGeneratedFile(path) {
			seen[path] = struct{}{}
		}
	}
	if len(seen) == 0 {
		return nil
	}
	out := make([]string, 0, len(seen))
	for p := range seen {
		out = append(out, p)
	}
	sort.Strings(out)
	return out
}
