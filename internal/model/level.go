package model

import (
	"sort"
	"strings"
)

// swagger:model Level
type Level struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Creator     string `json:"creator"`
	Description string `json:"description,omitempty"`
	Copies      []Copy `json:"copies"`
}

// StatusCounts 副本审核状态统计
type StatusCounts struct {
	Approved int `json:"approved"`
	Pending  int `json:"pending"`
	Rejected int `json:"rejected"`
	Total    int `json:"total"`
}

// Validate checks the required fields of a level. Copies are not validated here.
func (l Level) Validate() error {
	if strings.TrimSpace(l.Name) == "" {
		return &ValidationError{Field: "name", Message: "level name is required"}
	}
	if strings.TrimSpace(l.Creator) == "" {
		return &ValidationError{Field: "creator", Message: "level creator is required"}
	}
	return nil
}

// Normalize trims text fields and guarantees a non-nil copies slice.
func (l *Level) Normalize() {
	l.Name = strings.TrimSpace(l.Name)
	l.Creator = strings.TrimSpace(l.Creator)
	l.Description = strings.TrimSpace(l.Description)
	if l.Copies == nil {
		l.Copies = []Copy{}
	}
	for i := range l.Copies {
		l.Copies[i].Normalize()
	}
}

func (l Level) Counts() StatusCounts {
	counts := StatusCounts{Total: len(l.Copies)}
	for _, c := range l.Copies {
		switch c.Status {
		case CopyStatusApproved:
			counts.Approved++
		case CopyStatusPending:
			counts.Pending++
		case CopyStatusRejected:
			counts.Rejected++
		}
	}
	return counts
}

// Clone returns a deep copy; the result shares no slices with l.
func (l Level) Clone() Level {
	out := l
	out.Copies = make([]Copy, len(l.Copies))
	for i, c := range l.Copies {
		out.Copies[i] = c.Clone()
	}
	return out
}

func CloneLevels(levels []Level) []Level {
	out := make([]Level, len(levels))
	for i, l := range levels {
		out[i] = l.Clone()
	}
	return out
}

// SortByID sorts levels ascending by id. Ties keep their relative order.
func SortByID(levels []Level) {
	sort.SliceStable(levels, func(i, j int) bool {
		return levels[i].ID < levels[j].ID
	})
}
