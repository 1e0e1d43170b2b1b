package session

import (
	"fmt"

	"level_tracker_backend/internal/model"
	"level_tracker_backend/internal/util"
)

// Store is the part of the catalog repository an edit session writes to.
type Store interface {
	Level(index int) (model.Level, error)
	CreateLevel(level model.Level) (int, error)
	UpdateLevel(index int, level model.Level) (int, error)
	AddCopy(levelIndex int, c model.Copy) (int, error)
	UpdateCopy(levelIndex, copyIndex int, c model.Copy) error
	DeleteCopy(levelIndex, copyIndex int) (model.Copy, error)
}

// Session is a single edit session. It is not safe for concurrent use; the
// owning workspace serializes access.
type Session struct {
	store  Store
	state  State
	drafts []model.Copy
}

func New(store Store) *Session {
	return &Session{store: store, state: Idle{}}
}

func (s *Session) State() State { return s.state }

func (s *Session) Active() bool {
	_, idle := s.state.(Idle)
	return !idle
}

// DraftCopies returns a copy of the draft buffer of the level being created.
func (s *Session) DraftCopies() []model.Copy {
	out := make([]model.Copy, len(s.drafts))
	for i, c := range s.drafts {
		out[i] = c.Clone()
	}
	return out
}

// Reset drops any edit in progress, e.g. after the catalog is reloaded.
func (s *Session) Reset() {
	s.state = Idle{}
	s.drafts = nil
}

// OpenAddLevel starts creating a new level with an empty draft buffer.
func (s *Session) OpenAddLevel() error {
	if err := s.requireIdle(); err != nil {
		return err
	}
	s.drafts = nil
	s.state = EditingLevel{Level: NewLevel()}
	return nil
}

// OpenEditLevel starts editing the level at index and returns its form values.
func (s *Session) OpenEditLevel(index int) (model.LevelForm, error) {
	if err := s.requireIdle(); err != nil {
		return model.LevelForm{}, err
	}
	level, err := s.store.Level(index)
	if err != nil {
		return model.LevelForm{}, err
	}
	s.drafts = nil
	s.state = EditingLevel{Level: ExistingLevel(index)}
	return model.LevelFormFrom(level), nil
}

// Copies returns the copies shown in the level dialog: the draft buffer for a
// new level, the stored copies of an existing one.
func (s *Session) Copies() ([]model.Copy, error) {
	target, err := s.levelTarget()
	if err != nil {
		return nil, err
	}
	return s.copiesOf(target)
}

func (s *Session) copiesOf(target LevelTarget) ([]model.Copy, error) {
	index, ok := target.Index()
	if !ok {
		return s.DraftCopies(), nil
	}
	level, err := s.store.Level(index)
	if err != nil {
		return nil, err
	}
	return level.Copies, nil
}

// OpenAddCopy opens the copy dialog for a new copy of the level being edited.
func (s *Session) OpenAddCopy() error {
	editing, err := s.editingLevel()
	if err != nil {
		return err
	}
	s.state = EditingCopy{Level: editing.Level, Copy: NewCopy()}
	return nil
}

// OpenEditCopy opens the copy dialog for the copy at copyIndex of the level
// being edited and returns its form values.
func (s *Session) OpenEditCopy(copyIndex int) (model.CopyForm, error) {
	editing, err := s.editingLevel()
	if err != nil {
		return model.CopyForm{}, err
	}
	copies, err := s.copiesOf(editing.Level)
	if err != nil {
		return model.CopyForm{}, err
	}
	if copyIndex < 0 || copyIndex >= len(copies) {
		return model.CopyForm{}, fmt.Errorf("copy %d: %w", copyIndex, util.ErrIndexOutOfRange)
	}
	s.state = EditingCopy{Level: editing.Level, Copy: ExistingCopy(copyIndex)}
	return model.CopyFormFrom(copies[copyIndex]), nil
}

// RemoveCopy removes a copy from the level dialog. For an existing level the
// copy is deleted from the catalog right away.
func (s *Session) RemoveCopy(copyIndex int) error {
	editing, err := s.editingLevel()
	if err != nil {
		return err
	}
	index, ok := editing.Level.Index()
	if ok {
		_, err := s.store.DeleteCopy(index, copyIndex)
		return err
	}
	if copyIndex < 0 || copyIndex >= len(s.drafts) {
		return fmt.Errorf("draft copy %d: %w", copyIndex, util.ErrIndexOutOfRange)
	}
	s.drafts = append(s.drafts[:copyIndex:copyIndex], s.drafts[copyIndex+1:]...)
	return nil
}

// SubmitCopy validates the copy form, writes it to the parent buffer and
// returns to the level dialog. On error the copy dialog stays open.
func (s *Session) SubmitCopy(form model.CopyForm) error {
	editing, ok := s.state.(EditingCopy)
	if !ok {
		return s.wrongState()
	}
	c, err := form.Copy()
	if err != nil {
		return err
	}

	levelIndex, existingLevel := editing.Level.Index()
	copyIndex, existingCopy := editing.Copy.Index()
	switch {
	case existingLevel && existingCopy:
		err = s.store.UpdateCopy(levelIndex, copyIndex, c)
	case existingLevel:
		_, err = s.store.AddCopy(levelIndex, c)
	case existingCopy:
		if copyIndex >= len(s.drafts) {
			err = fmt.Errorf("draft copy %d: %w", copyIndex, util.ErrIndexOutOfRange)
		} else {
			s.drafts[copyIndex] = c
		}
	default:
		s.drafts = append(s.drafts, c)
	}
	if err != nil {
		return err
	}
	s.state = EditingLevel{Level: editing.Level}
	return nil
}

// CancelCopy closes the copy dialog, discarding the uncommitted form only.
func (s *Session) CancelCopy() error {
	editing, ok := s.state.(EditingCopy)
	if !ok {
		return s.wrongState()
	}
	s.state = EditingLevel{Level: editing.Level}
	return nil
}

// SubmitLevel validates the level form and commits it to the catalog with
// either the draft copies or the level's live copies. It returns the level's
// index after the catalog is re-sorted. On error the session is unchanged.
func (s *Session) SubmitLevel(form model.LevelForm) (int, error) {
	editing, err := s.editingLevel()
	if err != nil {
		return -1, err
	}
	level, err := form.Level()
	if err != nil {
		return -1, err
	}

	var index int
	if existing, ok := editing.Level.Index(); ok {
		current, err := s.store.Level(existing)
		if err != nil {
			return -1, err
		}
		level.Copies = current.Copies
		index, err = s.store.UpdateLevel(existing, level)
		if err != nil {
			return -1, err
		}
	} else {
		level.Copies = s.DraftCopies()
		index, err = s.store.CreateLevel(level)
		if err != nil {
			return -1, err
		}
	}
	s.Reset()
	return index, nil
}

// CancelLevel discards the level dialog and the draft buffer. Copy changes
// already applied to an existing level stay in the catalog.
func (s *Session) CancelLevel() error {
	if _, err := s.editingLevel(); err != nil {
		return err
	}
	s.Reset()
	return nil
}

func (s *Session) requireIdle() error {
	if s.Active() {
		return fmt.Errorf("%s: %w", s.state.Name(), util.ErrInvalidTransition)
	}
	return nil
}

func (s *Session) editingLevel() (EditingLevel, error) {
	editing, ok := s.state.(EditingLevel)
	if !ok {
		return EditingLevel{}, s.wrongState()
	}
	return editing, nil
}

func (s *Session) levelTarget() (LevelTarget, error) {
	switch st := s.state.(type) {
	case EditingLevel:
		return st.Level, nil
	case EditingCopy:
		return st.Level, nil
	}
	return LevelTarget{}, util.ErrNoEditSession
}

func (s *Session) wrongState() error {
	if !s.Active() {
		return util.ErrNoEditSession
	}
	return fmt.Errorf("%s: %w", s.state.Name(), util.ErrInvalidTransition)
}
