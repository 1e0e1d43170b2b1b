// Package query implements substring search over the level catalog.
package query

import (
	"strconv"
	"strings"

	"level_tracker_backend/internal/model"
)

// Options toggles per-surface search behaviour.
type Options struct {
	// IncludeReason also matches a copy's reason text (moderator surface).
	IncludeReason bool
}

// Search returns the levels matching query, in catalog order. An empty or
// whitespace-only query returns the catalog unchanged. Callers reset the
// current page to 1 after every search.
func Search(levels []model.Level, query string, opts Options) []model.Level {
	if strings.TrimSpace(query) == "" {
		return levels
	}
	indices := SearchIndices(levels, query, opts)
	matched := make([]model.Level, len(indices))
	for i, idx := range indices {
		matched[i] = levels[idx]
	}
	return matched
}

// SearchIndices is Search returning catalog indices instead of levels.
func SearchIndices(levels []model.Level, query string, opts Options) []int {
	needle := strings.ToLower(strings.TrimSpace(query))
	indices := make([]int, 0, len(levels))
	for i, level := range levels {
		if needle == "" || MatchLevel(level, needle, opts) {
			indices = append(indices, i)
		}
	}
	return indices
}

// MatchLevel reports whether the level or any of its copies contains needle.
// needle must already be trimmed and lowercased.
func MatchLevel(level model.Level, needle string, opts Options) bool {
	if contains(level.Name, needle) ||
		contains(level.Creator, needle) ||
		strings.Contains(strconv.Itoa(level.ID), needle) ||
		contains(level.Description, needle) {
		return true
	}
	for _, c := range level.Copies {
		if matchCopy(c, needle, opts) {
			return true
		}
	}
	return false
}

func matchCopy(c model.Copy, needle string, opts Options) bool {
	if contains(c.Creator, needle) ||
		strings.Contains(strconv.Itoa(c.ID), needle) ||
		contains(string(c.Status), needle) ||
		contains(c.Name, needle) {
		return true
	}
	return opts.IncludeReason && contains(c.Reason, needle)
}

func contains(field, needle string) bool {
	if field == "" {
		return false
	}
	return strings.Contains(strings.ToLower(field), needle)
}
