package service

import (
	"context"
	"fmt"
	"io"
	"sync"

	"level_tracker_backend/internal/model"
	"level_tracker_backend/internal/repository"
	"level_tracker_backend/internal/session"
	"level_tracker_backend/internal/source"
	"level_tracker_backend/internal/util"
	"level_tracker_backend/pkg/logger"
	"level_tracker_backend/pkg/monitoring"

	"go.uber.org/zap"
)

// Workspace is the moderator's application state: the catalog store, the
// list view over it, the single edit session and the unsaved-changes flag.
// Every method holds one lock, so operations never interleave.
type Workspace struct {
	mu      sync.Mutex
	loader  source.Loader
	store   *repository.CatalogRepository
	view    *View
	session *session.Session

	unsaved bool
	loadErr error
}

func NewWorkspace(loader source.Loader, opts SurfaceOptions) *Workspace {
	store := repository.NewCatalogRepository(nil)
	return &Workspace{
		loader:  loader,
		store:   store,
		view:    NewView(store, opts),
		session: session.New(store),
	}
}

// Load replaces the catalog from the source. On failure the catalog is left
// empty and the error is kept for display; it is also returned.
func (w *Workspace) Load(ctx context.Context) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	levels, err := w.loader.Load(ctx)
	monitoring.ObserveLoad(err)
	w.session.Reset()
	w.unsaved = false
	if err != nil {
		logger.Log.Error("Failed to load moderator catalog",
			zap.String("source", w.loader.Describe()),
			zap.Error(err),
		)
		w.store.Replace(nil)
		w.loadErr = err
		w.view.SetQuery("")
		return err
	}
	w.store.Replace(levels)
	w.loadErr = nil
	w.view.SetQuery("")
	monitoring.ObserveCatalog(levels)
	logger.Log.Info("Moderator catalog loaded",
		zap.String("source", w.loader.Describe()),
		zap.Int("levels", len(levels)),
	)
	return nil
}

// List renders the current page. A changed query runs a new search from page
// 1 and ignores page; otherwise a positive page moves the view there.
func (w *Workspace) List(q string, page int) PageResult {
	w.mu.Lock()
	defer w.mu.Unlock()
	if q != w.view.Query() {
		w.view.SetQuery(q)
	} else if page > 0 {
		w.view.GoToPage(page)
	}
	result := w.view.Current()
	if w.loadErr != nil {
		result.LoadError = loadErrorMessage(w.loadErr)
	}
	return result
}

// Status reports the unsaved flag and the edit session.
type Status struct {
	Unsaved bool        `json:"unsaved"`
	Levels  int         `json:"levels"`
	Session SessionView `json:"session"`
}

func (w *Workspace) Status() Status {
	w.mu.Lock()
	defer w.mu.Unlock()
	return Status{Unsaved: w.unsaved, Levels: w.store.Len(), Session: w.sessionView()}
}

func (w *Workspace) Levels() []model.Level {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.store.Levels()
}

// mutate runs op and marks the workspace unsaved when the catalog changed.
// Must be called with mu held.
func (w *Workspace) mutate(name string, op func() error) error {
	before := w.store.Revision()
	err := op()
	monitoring.ObserveMutation(name, err)
	if w.store.Revision() != before {
		w.unsaved = true
		monitoring.ObserveCatalog(w.store.Levels())
	}
	if err != nil {
		logger.Log.Debug("Catalog operation rejected", zap.String("op", name), zap.Error(err))
		return err
	}
	logger.Log.Info("Catalog updated", zap.String("op", name))
	return nil
}

// direct card operations are refused while a dialog is open
func (w *Workspace) requireIdle() error {
	if w.session.Active() {
		return fmt.Errorf("edit session open: %w", util.ErrInvalidTransition)
	}
	return nil
}

func requireConfirm(confirmed bool, message string) error {
	if !confirmed {
		return &ConfirmationError{Message: message}
	}
	return nil
}

// ConfirmationError asks the caller to confirm an irreversible action.
type ConfirmationError struct {
	Message string
}

func (e *ConfirmationError) Error() string { return e.Message }

func (e *ConfirmationError) Unwrap() error { return util.ErrConfirmationRequired }

// CreateLevel adds a complete level, copies included.
func (w *Workspace) CreateLevel(level model.Level) (int, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if err := w.requireIdle(); err != nil {
		return -1, err
	}
	if err := validateCopies(level.Copies); err != nil {
		return -1, err
	}
	var index int
	err := w.mutate("create_level", func() (err error) {
		index, err = w.store.CreateLevel(level)
		return err
	})
	return index, err
}

// UpdateLevel replaces the level at index, keeping its copies when level has none.
func (w *Workspace) UpdateLevel(index int, level model.Level) (int, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if err := w.requireIdle(); err != nil {
		return -1, err
	}
	if level.Copies == nil {
		current, err := w.store.Level(index)
		if err != nil {
			return -1, err
		}
		level.Copies = current.Copies
	} else if err := validateCopies(level.Copies); err != nil {
		return -1, err
	}
	var newIndex int
	err := w.mutate("update_level", func() (err error) {
		newIndex, err = w.store.UpdateLevel(index, level)
		return err
	})
	return newIndex, err
}

func (w *Workspace) DeleteLevel(index int, confirmed bool) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if err := w.requireIdle(); err != nil {
		return err
	}
	if err := requireConfirm(confirmed, util.ConfirmDeleteLevel); err != nil {
		return err
	}
	return w.mutate("delete_level", func() error {
		_, err := w.store.DeleteLevel(index)
		return err
	})
}

func (w *Workspace) AddCopy(levelIndex int, form model.CopyForm) (int, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if err := w.requireIdle(); err != nil {
		return -1, err
	}
	c, err := form.Copy()
	if err != nil {
		return -1, err
	}
	var copyIndex int
	err = w.mutate("add_copy", func() (err error) {
		copyIndex, err = w.store.AddCopy(levelIndex, c)
		return err
	})
	return copyIndex, err
}

func (w *Workspace) UpdateCopy(levelIndex, copyIndex int, form model.CopyForm) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if err := w.requireIdle(); err != nil {
		return err
	}
	c, err := form.Copy()
	if err != nil {
		return err
	}
	return w.mutate("update_copy", func() error {
		return w.store.UpdateCopy(levelIndex, copyIndex, c)
	})
}

func (w *Workspace) DeleteCopy(levelIndex, copyIndex int, confirmed bool) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if err := w.requireIdle(); err != nil {
		return err
	}
	if err := requireConfirm(confirmed, util.ConfirmDeleteCopy); err != nil {
		return err
	}
	return w.mutate("delete_copy", func() error {
		_, err := w.store.DeleteCopy(levelIndex, copyIndex)
		return err
	})
}

// Export writes the whole catalog as levels.json and clears the unsaved flag.
func (w *Workspace) Export(out io.Writer) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if err := source.Encode(out, w.store.Levels()); err != nil {
		return err
	}
	w.unsaved = false
	logger.Log.Info("Catalog exported", zap.Int("levels", w.store.Len()))
	return nil
}

func validateCopies(copies []model.Copy) error {
	for i := range copies {
		c := copies[i]
		c.Normalize()
		if err := c.Validate(); err != nil {
			return fmt.Errorf("copy %d: %w", i, err)
		}
	}
	return nil
}
