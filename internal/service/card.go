package service

import (
	"sort"

	"level_tracker_backend/internal/model"
)

// LevelCard is the display form of a level. Index is the level's position in
// the catalog, used by the moderator surface to address edits.
type LevelCard struct {
	Index       int                `json:"index"`
	ID          int                `json:"id"`
	Name        string             `json:"name"`
	Creator     string             `json:"creator"`
	Description string             `json:"description,omitempty"`
	Counts      model.StatusCounts `json:"counts"`
	Copies      []CopyCard         `json:"copies"`
}

// CopyCard keeps the copy's original index even when copies are resorted.
type CopyCard struct {
	Index      int              `json:"index"`
	ID         int              `json:"id"`
	Name       string           `json:"name"`
	Creator    string           `json:"creator"`
	Status     model.CopyStatus `json:"status"`
	StatusIcon string           `json:"statusIcon"`
	Tooltip    string           `json:"tooltip,omitempty"`
	Tags       []string         `json:"tags,omitempty"`
}

func NewLevelCard(index int, level model.Level, approvedFirst bool) LevelCard {
	copies := make([]CopyCard, len(level.Copies))
	for i, c := range level.Copies {
		copies[i] = NewCopyCard(i, c)
	}
	if approvedFirst {
		copies = sortCardsApprovedFirst(copies)
	}
	return LevelCard{
		Index:       index,
		ID:          level.ID,
		Name:        level.Name,
		Creator:     level.Creator,
		Description: level.Description,
		Counts:      level.Counts(),
		Copies:      copies,
	}
}

func NewCopyCard(index int, c model.Copy) CopyCard {
	card := CopyCard{
		Index:      index,
		ID:         c.ID,
		Name:       c.DisplayName(),
		Creator:    c.Creator,
		Status:     c.Status,
		StatusIcon: c.Status.Icon(),
		Tags:       c.Tags,
	}
	if c.HasReason() {
		card.Tooltip = c.Reason
	}
	return card
}

func sortCardsApprovedFirst(cards []CopyCard) []CopyCard {
	sort.SliceStable(cards, func(i, j int) bool {
		return cards[i].Status.Rank() < cards[j].Status.Rank()
	})
	return cards
}
