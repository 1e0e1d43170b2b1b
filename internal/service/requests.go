package service

import (
	"fmt"

	"level_tracker_backend/internal/model"
)

// LevelRequest is a level with its copies in one body, for direct writes.
// Copies left out of an update keep the level's current copies.
type LevelRequest struct {
	model.LevelForm
	Copies []model.CopyForm `json:"copies" binding:"omitempty,dive"`
}

func (r LevelRequest) Level() (model.Level, error) {
	level, err := r.LevelForm.Level()
	if err != nil {
		return model.Level{}, err
	}
	if r.Copies == nil {
		level.Copies = nil
		return level, nil
	}
	level.Copies = make([]model.Copy, len(r.Copies))
	for i, f := range r.Copies {
		c, err := f.Copy()
		if err != nil {
			return model.Level{}, fmt.Errorf("copy %d: %w", i, err)
		}
		level.Copies[i] = c
	}
	return level, nil
}

// OpenLevelRequest opens the level dialog; a nil Index adds a new level.
type OpenLevelRequest struct {
	Index *int `json:"index"`
}

// OpenCopyRequest opens the copy dialog; a nil CopyIndex adds a new copy.
type OpenCopyRequest struct {
	CopyIndex *int `json:"copyIndex"`
}
