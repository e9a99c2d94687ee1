package suite

import (
	"path/filepath"
	"strings"

	"mockcheck/internal/domain"
)

// Filter filters test cases by name pattern
type Filter struct{}

// NewFilter creates a new Filter
func NewFilter() *Filter {
	return &Filter{}
}

// FilterByName keeps cases whose name matches pattern, ignoring case.
// Supports patterns like "Create*" or "*contact*"; a pattern without
// wildcards matches any name containing it.
func (f *Filter) FilterByName(cases []domain.TestCase, pattern string) []domain.TestCase {
	if pattern == "" {
		return cases
	}

	pattern = strings.ToLower(pattern)
	hasWildcard := strings.ContainsAny(pattern, "*?")

	var filtered []domain.TestCase
	for _, tc := range cases {
		name := strings.ToLower(tc.Name)

		if !hasWildcard {
			if strings.Contains(name, pattern) {
				filtered = append(filtered, tc)
			}
			continue
		}

		// filepath.Match supports * and ? wildcards
		if matched, err := filepath.Match(pattern, name); err == nil && matched {
			filtered = append(filtered, tc)
			continue
		}

		// Fall back to requiring every non-empty part in order, for names
		// that contain a path separator and so defeat filepath.Match
		if matchParts(name, strings.Split(pattern, "*")) {
			filtered = append(filtered, tc)
		}
	}

	return filtered
}

// matchParts reports whether name contains the non-empty parts in order,
// anchored at the start and end unless the pattern begins or ends with *.
func matchParts(name string, parts []string) bool {
	nonEmpty := false
	rest := name
	last := len(parts) - 1
	for i, part := range parts {
		if part == "" {
			continue
		}
		if strings.Contains(part, "?") {
			return false
		}
		nonEmpty = true
		switch {
		case i == 0:
			if !strings.HasPrefix(rest, part) {
				return false
			}
			rest = rest[len(part):]
		case i == last:
			if !strings.HasSuffix(rest, part) {
				return false
			}
			rest = ""
		default:
			idx := strings.Index(rest, part)
			if idx < 0 {
				return false
			}
			rest = rest[idx+len(part):]
		}
	}
	return nonEmpty
}
