package query

import (
	"sort"
	"strconv"
	"strings"

	"level_tracker_backend/internal/model"
	"level_tracker_backend/internal/util"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

// FindByName returns the first level whose name contains name, case-insensitively.
func FindByName(levels []model.Level, name string) (model.Level, error) {
	needle := strings.ToLower(strings.TrimSpace(name))
	if needle == "" {
		return model.Level{}, util.ErrEmptyQuery
	}
	for _, l := range levels {
		if strings.Contains(strings.ToLower(l.Name), needle) {
			return l, nil
		}
	}
	return model.Level{}, util.ErrLevelNotFound
}

func FindByExactName(levels []model.Level, name string) (model.Level, error) {
	needle := strings.TrimSpace(name)
	if needle == "" {
		return model.Level{}, util.ErrEmptyQuery
	}
	for _, l := range levels {
		if strings.EqualFold(l.Name, needle) {
			return l, nil
		}
	}
	return model.Level{}, util.ErrLevelNotFound
}

func FindByID(levels []model.Level, id int) (model.Level, error) {
	for _, l := range levels {
		if l.ID == id {
			return l, nil
		}
	}
	return model.Level{}, util.ErrLevelNotFound
}

// SearchLevelFields matches only level name, creator, description and id.
// Unlike Search an empty query is rejected.
func SearchLevelFields(levels []model.Level, query string) ([]model.Level, error) {
	needle := strings.ToLower(strings.TrimSpace(query))
	if needle == "" {
		return nil, util.ErrEmptyQuery
	}
	matched := make([]model.Level, 0)
	for _, l := range levels {
		if contains(l.Name, needle) ||
			contains(l.Creator, needle) ||
			contains(l.Description, needle) ||
			strings.Contains(strconv.Itoa(l.ID), needle) {
			matched = append(matched, l)
		}
	}
	return matched, nil
}

// Suggest ranks level names fuzzily against name, closest first, and
// returns at most limit of them. It is only used to hint after a miss.
func Suggest(levels []model.Level, name string, limit int) []string {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" || limit <= 0 {
		return nil
	}
	names := make([]string, len(levels))
	for i, l := range levels {
		names[i] = l.Name
	}
	ranks := fuzzy.RankFindNormalizedFold(trimmed, names)
	if len(ranks) == 0 {
		return nil
	}
	sortRanks(ranks)
	if len(ranks) > limit {
		ranks = ranks[:limit]
	}
	out := make([]string, len(ranks))
	for i, r := range ranks {
		out[i] = r.Target
	}
	return out
}

func sortRanks(ranks fuzzy.Ranks) {
	sort.SliceStable(ranks, func(i, j int) bool {
		if ranks[i].Distance != ranks[j].Distance {
			return ranks[i].Distance < ranks[j].Distance
		}
		return ranks[i].OriginalIndex < ranks[j].OriginalIndex
	})
}
