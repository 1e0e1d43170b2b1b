package service

import (
	"level_tracker_backend/internal/model"
	"level_tracker_backend/internal/session"
	"level_tracker_backend/internal/util"
)

// SessionView is what the level and copy dialogs render.
type SessionView struct {
	State       string           `json:"state"`
	LevelIndex  *int             `json:"levelIndex,omitempty"`
	NewLevel    bool             `json:"newLevel"`
	CopyIndex   *int             `json:"copyIndex,omitempty"`
	NewCopy     bool             `json:"newCopy"`
	DraftParent bool             `json:"draftParent"`
	Copies      []CopyCard       `json:"copies,omitempty"`
	LevelForm   *model.LevelForm `json:"levelForm,omitempty"`
	CopyForm    *model.CopyForm  `json:"copyForm,omitempty"`
}

// must be called with mu held
func (w *Workspace) sessionView() SessionView {
	view := SessionView{State: w.session.State().Name()}
	var target session.LevelTarget
	switch st := w.session.State().(type) {
	case session.Idle:
		return view
	case session.EditingLevel:
		target = st.Level
	case session.EditingCopy:
		target = st.Level
		view.DraftParent = st.DraftParent()
		if i, ok := st.Copy.Index(); ok {
			view.CopyIndex = &i
		} else {
			view.NewCopy = true
		}
	}
	if i, ok := target.Index(); ok {
		view.LevelIndex = &i
	} else {
		view.NewLevel = true
	}
	if copies, err := w.session.Copies(); err == nil {
		view.Copies = make([]CopyCard, len(copies))
		for i, c := range copies {
			view.Copies[i] = NewCopyCard(i, c)
		}
	}
	return view
}

func (w *Workspace) Session() SessionView {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.sessionView()
}

func (w *Workspace) OpenAddLevel() (SessionView, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if err := w.session.OpenAddLevel(); err != nil {
		return SessionView{}, err
	}
	return w.sessionView(), nil
}

// OpenEditLevel opens the level dialog prefilled with the level at index.
func (w *Workspace) OpenEditLevel(index int) (SessionView, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	form, err := w.session.OpenEditLevel(index)
	if err != nil {
		return SessionView{}, err
	}
	view := w.sessionView()
	view.LevelForm = &form
	return view, nil
}

func (w *Workspace) OpenAddCopy() (SessionView, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if err := w.session.OpenAddCopy(); err != nil {
		return SessionView{}, err
	}
	return w.sessionView(), nil
}

func (w *Workspace) OpenEditCopy(copyIndex int) (SessionView, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	form, err := w.session.OpenEditCopy(copyIndex)
	if err != nil {
		return SessionView{}, err
	}
	view := w.sessionView()
	view.CopyForm = &form
	return view, nil
}

// RemoveCopy removes a copy from the open level dialog after confirmation.
func (w *Workspace) RemoveCopy(copyIndex int, confirmed bool) (SessionView, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if !w.session.Active() {
		return SessionView{}, util.ErrNoEditSession
	}
	if err := requireConfirm(confirmed, util.ConfirmRemoveCopy); err != nil {
		return SessionView{}, err
	}
	err := w.mutate("remove_copy", func() error {
		return w.session.RemoveCopy(copyIndex)
	})
	if err != nil {
		return SessionView{}, err
	}
	return w.sessionView(), nil
}

func (w *Workspace) SubmitCopy(form model.CopyForm) (SessionView, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	err := w.mutate("submit_copy", func() error {
		return w.session.SubmitCopy(form)
	})
	if err != nil {
		return SessionView{}, err
	}
	return w.sessionView(), nil
}

func (w *Workspace) CancelCopy() (SessionView, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if err := w.session.CancelCopy(); err != nil {
		return SessionView{}, err
	}
	return w.sessionView(), nil
}

// SubmitLevel commits the level dialog. It returns the level's new index and
// whether the level was created rather than updated.
func (w *Workspace) SubmitLevel(form model.LevelForm) (index int, created bool, err error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if st, ok := w.session.State().(session.EditingLevel); ok {
		created = st.Level.IsNew()
	}
	err = w.mutate("submit_level", func() (err error) {
		index, err = w.session.SubmitLevel(form)
		return err
	})
	return index, created, err
}

func (w *Workspace) CancelLevel() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.session.CancelLevel()
}
