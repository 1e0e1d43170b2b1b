package service

import (
	"context"
	"errors"

	"level_tracker_backend/internal/model"
	"level_tracker_backend/internal/query"
	"level_tracker_backend/internal/source"
	"level_tracker_backend/pkg/logger"
	"level_tracker_backend/pkg/monitoring"

	"go.uber.org/zap"
)

const suggestionLimit = 5

// SnapshotLoader is a source that can also drop its cached document.
type SnapshotLoader interface {
	Load(ctx context.Context) ([]model.Level, error)
	Describe() string
	Clear()
}

// BrowseService serves the read-only surface over the loaded snapshot. It
// keeps no per-user state: each request builds its own View.
type BrowseService struct {
	Loader SnapshotLoader
	Opts   SurfaceOptions
}

func NewBrowseService(loader SnapshotLoader, opts SurfaceOptions) *BrowseService {
	return &BrowseService{Loader: loader, Opts: opts}
}

// snapshot loads the catalog. A failure is logged and yields an empty catalog
// along with the error for display.
func (s *BrowseService) snapshot(ctx context.Context) ([]model.Level, error) {
	levels, err := s.Loader.Load(ctx)
	monitoring.ObserveLoad(err)
	if err != nil {
		logger.Log.Error("Failed to load catalog",
			zap.String("source", s.Loader.Describe()),
			zap.Error(err),
		)
		return []model.Level{}, err
	}
	return levels, nil
}

// List searches the snapshot and renders one page.
func (s *BrowseService) List(ctx context.Context, q string, page int) PageResult {
	levels, err := s.snapshot(ctx)
	view := NewView(StaticCatalog(levels), s.Opts)
	view.SetQuery(q)
	view.GoToPage(page)
	result := view.Current()
	if err != nil {
		result.LoadError = loadErrorMessage(err)
	}
	return result
}

func (s *BrowseService) All(ctx context.Context) ([]model.Level, error) {
	return s.snapshot(ctx)
}

func (s *BrowseService) Get(ctx context.Context, id int) (model.Level, error) {
	levels, err := s.snapshot(ctx)
	if err != nil {
		return model.Level{}, err
	}
	return query.FindByID(levels, id)
}

// LookupResult carries the matched level or, after a miss, close names.
type LookupResult struct {
	Level       *model.Level `json:"level"`
	Suggestions []string     `json:"suggestions,omitempty"`
}

// Lookup finds a level by partial or exact name.
func (s *BrowseService) Lookup(ctx context.Context, name string, exact bool) (LookupResult, error) {
	levels, err := s.snapshot(ctx)
	if err != nil {
		return LookupResult{}, err
	}
	find := query.FindByName
	if exact {
		find = query.FindByExactName
	}
	level, err := find(levels, name)
	if err != nil {
		return LookupResult{Suggestions: query.Suggest(levels, name, suggestionLimit)}, err
	}
	return LookupResult{Level: &level}, nil
}

// Reload drops the cached snapshot so the next request fetches the source.
func (s *BrowseService) Reload() {
	s.Loader.Clear()
}

func loadErrorMessage(err error) string {
	var loadErr *source.LoadError
	if errors.As(err, &loadErr) {
		return loadErr.Message()
	}
	return err.Error()
}
