package model

import "fmt"

// Problem is one finding of CheckCatalog.
type Problem struct {
	Level   int    `json:"level"` // index in the document
	Copy    int    `json:"copy"`  // -1 when the problem is on the level
	Warning bool   `json:"warning"`
	Message string `json:"message"`
}

func (p Problem) String() string {
	if p.Copy >= 0 {
		return fmt.Sprintf("level[%d].copies[%d]: %s", p.Level, p.Copy, p.Message)
	}
	return fmt.Sprintf("level[%d]: %s", p.Level, p.Message)
}

// CheckCatalog reports duplicate level ids and missing required fields.
// Repeated copy ids within a level are only warnings since nothing enforces
// them unique.
func CheckCatalog(levels []Level) []Problem {
	var problems []Problem
	seen := make(map[int]int, len(levels))
	for i, l := range levels {
		if first, ok := seen[l.ID]; ok {
			problems = append(problems, Problem{Level: i, Copy: -1,
				Message: fmt.Sprintf("id %d already used by level[%d]", l.ID, first)})
		} else {
			seen[l.ID] = i
		}
		if err := l.Validate(); err != nil {
			problems = append(problems, Problem{Level: i, Copy: -1, Message: err.Error()})
		}

		copyIDs := make(map[int]bool, len(l.Copies))
		for j, c := range l.Copies {
			c.Normalize()
			if err := c.Validate(); err != nil {
				problems = append(problems, Problem{Level: i, Copy: j, Message: err.Error()})
			}
			if copyIDs[c.ID] {
				problems = append(problems, Problem{Level: i, Copy: j, Warning: true,
					Message: fmt.Sprintf("copy id %d repeated", c.ID)})
			}
			copyIDs[c.ID] = true
		}
	}
	return problems
}
