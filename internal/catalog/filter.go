package catalog

import (
	"path/filepath"
	"strings"

	"gvcheck/internal/domain"
)

// FilterByName filters cataloged checks by name pattern using wildcard
// matching. Supports patterns like "de*" or "*clust*"; a pattern without
// wildcards is a substring match.
func FilterByName(examples []domain.Example, pattern string) []domain.Example {
	if pattern == "" {
		return examples
	}

	var filtered []domain.Example

	for _, ex := range examples {
		if matched, err := filepath.Match(pattern, ex.Name); err == nil && matched {
			filtered = append(filtered, ex)
			continue
		}

		// Wildcard pattern that filepath.Match rejected: fall back to
		// requiring every non-wildcard fragment as a substring, so
		// "*clust*" style patterns still work.
		if strings.Contains(pattern, "*") {
			parts := strings.Split(pattern, "*")
			allMatch := true
			hasNonEmpty := false
			for _, part := range parts {
				if part == "" {
					continue
				}
				hasNonEmpty = true
				if !strings.Contains(ex.Name, part) {
					allMatch = false
					break
				}
			}
			if allMatch && hasNonEmpty {
				filtered = append(filtered, ex)
			}
			continue
		}

		if !strings.Contains(pattern, "?") && strings.Contains(ex.Name, pattern) {
			filtered = append(filtered, ex)
		}
	}

	return filtered
}

// FilterByKind keeps only checks of the given kind; an empty kind keeps all.
func FilterByKind(examples []domain.Example, kind string) []domain.Example {
	if kind == "" {
		return examples
	}
	var filtered []domain.Example
	for _, ex := range examples {
		if string(ex.Kind) == kind {
			filtered = append(filtered, ex)
		}
	}
	return filtered
}
