package repository

import (
	"fmt"
	"sync"

	"level_tracker_backend/internal/model"
	"level_tracker_backend/internal/util"
)

// DuplicateIDError is returned when a level write would reuse an id that
// another level already has.
type DuplicateIDError struct {
	ID int
}

func (e *DuplicateIDError) Error() string {
	return fmt.Sprintf("a level with id %d already exists", e.ID)
}

// CatalogRepository is the in-memory owner of every level and copy. Level
// writes keep the catalog sorted ascending by id, so indices obtained before
// CreateLevel or UpdateLevel must be discarded afterwards.
type CatalogRepository struct {
	mu       sync.RWMutex
	levels   []model.Level
	revision uint64
}

func NewCatalogRepository(levels []model.Level) *CatalogRepository {
	r := &CatalogRepository{}
	r.Replace(levels)
	return r
}

// Replace swaps the whole catalog, as after a load. Load order is kept.
func (r *CatalogRepository) Replace(levels []model.Level) {
	cloned := model.CloneLevels(levels)
	for i := range cloned {
		cloned[i].Normalize()
	}
	r.mu.Lock()
	r.levels = cloned
	r.revision++
	r.mu.Unlock()
}

// Levels returns a deep copy of the catalog in stored order.
func (r *CatalogRepository) Levels() []model.Level {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return model.CloneLevels(r.levels)
}

func (r *CatalogRepository) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.levels)
}

// Revision changes on every write; views compare it to drop cached results.
func (r *CatalogRepository) Revision() uint64 {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.revision
}

func (r *CatalogRepository) Level(index int) (model.Level, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if index < 0 || index >= len(r.levels) {
		return model.Level{}, fmt.Errorf("level %d: %w", index, util.ErrIndexOutOfRange)
	}
	return r.levels[index].Clone(), nil
}

// IndexOf returns the index of the level with id, or -1.
func (r *CatalogRepository) IndexOf(id int) int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.indexOf(id, -1)
}

func (r *CatalogRepository) indexOf(id, skip int) int {
	for i, l := range r.levels {
		if i != skip && l.ID == id {
			return i
		}
	}
	return -1
}

// CreateLevel appends level and re-sorts. It returns the new index.
func (r *CatalogRepository) CreateLevel(level model.Level) (int, error) {
	level = level.Clone()
	level.Normalize()
	if err := level.Validate(); err != nil {
		return -1, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if r.indexOf(level.ID, -1) >= 0 {
		return -1, &DuplicateIDError{ID: level.ID}
	}
	r.levels = append(r.levels, level)
	return r.commitSorted(level.ID), nil
}

// UpdateLevel replaces the level at index and re-sorts. The id check only
// runs when the id changes. It returns the level's index after sorting.
func (r *CatalogRepository) UpdateLevel(index int, level model.Level) (int, error) {
	level = level.Clone()
	level.Normalize()
	if err := level.Validate(); err != nil {
		return -1, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if index < 0 || index >= len(r.levels) {
		return -1, fmt.Errorf("level %d: %w", index, util.ErrIndexOutOfRange)
	}
	if level.ID != r.levels[index].ID && r.indexOf(level.ID, index) >= 0 {
		return -1, &DuplicateIDError{ID: level.ID}
	}
	r.levels[index] = level
	return r.commitSorted(level.ID), nil
}

// commitSorted must be called with mu held.
func (r *CatalogRepository) commitSorted(id int) int {
	model.SortByID(r.levels)
	r.revision++
	return r.indexOf(id, -1)
}

// DeleteLevel removes the level at index. It is irreversible.
func (r *CatalogRepository) DeleteLevel(index int) (model.Level, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if index < 0 || index >= len(r.levels) {
		return model.Level{}, fmt.Errorf("level %d: %w", index, util.ErrIndexOutOfRange)
	}
	removed := r.levels[index]
	r.levels = append(r.levels[:index:index], r.levels[index+1:]...)
	r.revision++
	return removed, nil
}

// AddCopy appends c to the level's copies. Copy ids are not checked for
// uniqueness.
func (r *CatalogRepository) AddCopy(levelIndex int, c model.Copy) (int, error) {
	c = c.Clone()
	c.Normalize()
	if err := c.Validate(); err != nil {
		return -1, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if levelIndex < 0 || levelIndex >= len(r.levels) {
		return -1, fmt.Errorf("level %d: %w", levelIndex, util.ErrIndexOutOfRange)
	}
	level := &r.levels[levelIndex]
	if level.Copies == nil {
		level.Copies = []model.Copy{}
	}
	level.Copies = append(level.Copies, c)
	r.revision++
	return len(level.Copies) - 1, nil
}

func (r *CatalogRepository) UpdateCopy(levelIndex, copyIndex int, c model.Copy) error {
	c = c.Clone()
	c.Normalize()
	if err := c.Validate(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	level, err := r.copyTarget(levelIndex, copyIndex)
	if err != nil {
		return err
	}
	level.Copies[copyIndex] = c
	r.revision++
	return nil
}

func (r *CatalogRepository) DeleteCopy(levelIndex, copyIndex int) (model.Copy, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	level, err := r.copyTarget(levelIndex, copyIndex)
	if err != nil {
		return model.Copy{}, err
	}
	removed := level.Copies[copyIndex]
	level.Copies = append(level.Copies[:copyIndex:copyIndex], level.Copies[copyIndex+1:]...)
	r.revision++
	return removed, nil
}

func (r *CatalogRepository) copyTarget(levelIndex, copyIndex int) (*model.Level, error) {
	if levelIndex < 0 || levelIndex >= len(r.levels) {
		return nil, fmt.Errorf("level %d: %w", levelIndex, util.ErrIndexOutOfRange)
	}
	level := &r.levels[levelIndex]
	if copyIndex < 0 || copyIndex >= len(level.Copies) {
		return nil, fmt.Errorf("copy %d of level %d: %w", copyIndex, levelIndex, util.ErrIndexOutOfRange)
	}
	return level, nil
}
