package search

import "strings"

// Common shorthand recruiters type into the skill filter, mapped onto the
// names the extractor produces.
var skillAliases = map[string]string{
	"js":       "javascript",
	"ts":       "typescript",
	"golang":   "go",
	"postgres": "postgresql",
	"k8s":      "kubernetes",
	"ml":       "machine learning",
	"ai":       "artificial intelligence",
	"node":     "node.js",
	"nodejs":   "node.js",
}

// CanonicalSkill lowercases the query and resolves known aliases so a filter
// on "k8s" finds candidates extracted with "Kubernetes".
func CanonicalSkill(query string) string {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return ""
	}
	if canonical, ok := skillAliases[q]; ok {
		return canonical
	}
	return q
}

// CanonicalSkills maps a filter list through CanonicalSkill, dropping empties.
func CanonicalSkills(queries []string) []string {
	out := make([]string, 0, len(queries))
	for _, q := range queries {
		if c := CanonicalSkill(q); c != "" {
			out = append(out, c)
		}
	}
	return out
}
