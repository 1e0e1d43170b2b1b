// Package session tracks the in-progress add/edit of a level and of the
// copies nested inside it.
//
// The state is a closed set of types (Idle, EditingLevel, EditingCopy). A
// copy can only be edited from inside a level edit, and a copy of a level
// that does not exist yet is written to the draft copies buffer instead of
// the catalog.
package session

import "fmt"

// LevelTarget is either a level being created or the index of an existing one.
type LevelTarget struct {
	index int
	isNew bool
}

func NewLevel() LevelTarget { return LevelTarget{index: -1, isNew: true} }

func ExistingLevel(index int) LevelTarget { return LevelTarget{index: index} }

func (t LevelTarget) IsNew() bool { return t.isNew }

// Index returns the catalog index and false for a new level.
func (t LevelTarget) Index() (int, bool) {
	if t.isNew {
		return -1, false
	}
	return t.index, true
}

func (t LevelTarget) String() string {
	if t.isNew {
		return "new"
	}
	return fmt.Sprintf("#%d", t.index)
}

// CopyTarget is either a copy being added or the index of one in its buffer.
type CopyTarget struct {
	index int
	isNew bool
}

func NewCopy() CopyTarget { return CopyTarget{index: -1, isNew: true} }

func ExistingCopy(index int) CopyTarget { return CopyTarget{index: index} }

func (t CopyTarget) IsNew() bool { return t.isNew }

func (t CopyTarget) Index() (int, bool) {
	if t.isNew {
		return -1, false
	}
	return t.index, true
}

// State is one of Idle, EditingLevel or EditingCopy.
type State interface {
	Name() string
	isState()
}

type Idle struct{}

type EditingLevel struct {
	Level LevelTarget
}

// EditingCopy is always nested inside a level edit. The copy's parent buffer
// follows from Level: the draft buffer for a new level, the level's live
// copies otherwise.
type EditingCopy struct {
	Level LevelTarget
	Copy  CopyTarget
}

func (Idle) Name() string         { return "idle" }
func (EditingLevel) Name() string { return "editing_level" }
func (EditingCopy) Name() string  { return "editing_copy" }

func (Idle) isState()         {}
func (EditingLevel) isState() {}
func (EditingCopy) isState()  {}

// DraftParent reports whether the copy is written to the draft buffer.
func (s EditingCopy) DraftParent() bool { return s.Level.IsNew() }
