package service

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"level_tracker_backend/internal/model"
	"level_tracker_backend/internal/pagination"
	"level_tracker_backend/internal/query"
	"level_tracker_backend/internal/repository"
	"level_tracker_backend/internal/source"
	"level_tracker_backend/internal/util"
)

type stubLoader struct {
	levels  []model.Level
	err     error
	cleared int
}

func (l *stubLoader) Load(context.Context) ([]model.Level, error) {
	if l.err != nil {
		return nil, l.err
	}
	return model.CloneLevels(l.levels), nil
}

func (l *stubLoader) Describe() string { return "stub" }

func (l *stubLoader) Clear() { l.cleared++ }

func makeLevels(n int) []model.Level {
	levels := make([]model.Level, n)
	for i := range levels {
		levels[i] = model.Level{ID: i + 1, Name: "Level", Creator: "RobTop", Copies: []model.Copy{}}
	}
	return levels
}

var moderatorOpts = SurfaceOptions{ItemsPerPage: 6, Style: pagination.StyleCompact, Search: query.Options{IncludeReason: true}}

func TestViewPagesAndResetsOnQuery(t *testing.T) {
	store := repository.NewCatalogRepository(makeLevels(20))
	view := NewView(store, moderatorOpts)

	view.GoToPage(3)
	result := view.Current()
	if result.Page != 3 || len(result.Items) != 6 || result.Items[0].ID != 13 {
		t.Fatalf("unexpected page 3: %+v", result)
	}
	if result.ResultsText != "13-18 of 20" {
		t.Fatalf("unexpected results text %q", result.ResultsText)
	}

	view.SetQuery("1")
	if view.CurrentPage() != 1 {
		t.Fatalf("expected a new search to reset to page 1, got %d", view.CurrentPage())
	}

	view.GoToPage(99)
	if view.CurrentPage() != view.TotalPages() {
		t.Fatalf("expected page clamped to %d, got %d", view.TotalPages(), view.CurrentPage())
	}
}

func TestViewDropsCacheOnStoreWrite(t *testing.T) {
	store := repository.NewCatalogRepository(makeLevels(20))
	view := NewView(store, moderatorOpts)
	view.GoToPage(2)

	if _, err := store.CreateLevel(model.Level{ID: 100, Name: "Fresh", Creator: "c"}); err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	result := view.Current()
	if result.Page != 1 {
		t.Fatalf("expected edit to reset to page 1, got %d", result.Page)
	}
	if result.Total != 21 {
		t.Fatalf("expected re-query to see the new level, got %d", result.Total)
	}
}

func TestLevelCardSortsCopiesApprovedFirst(t *testing.T) {
	level := model.Level{ID: 1, Name: "a", Creator: "b", Copies: []model.Copy{
		{ID: 1, Creator: "x", Status: model.CopyStatusRejected, Reason: "bad"},
		{ID: 2, Creator: "y", Status: model.CopyStatusPending},
		{ID: 3, Name: "Named", Creator: "z", Status: model.CopyStatusApproved},
	}}
	card := NewLevelCard(0, level, true)
	if card.Copies[0].ID != 3 || card.Copies[1].ID != 2 || card.Copies[2].ID != 1 {
		t.Fatalf("expected approved, pending, rejected order, got %+v", card.Copies)
	}
	if card.Copies[0].Index != 2 {
		t.Fatalf("expected original copy index kept, got %d", card.Copies[0].Index)
	}
	if card.Copies[2].Tooltip != "bad" || card.Copies[1].Name != model.UnnamedCopy {
		t.Fatalf("unexpected card fields %+v", card.Copies)
	}

	unsorted := NewLevelCard(0, level, false)
	if unsorted.Copies[0].ID != 1 {
		t.Fatalf("expected stored order without sorting, got %+v", unsorted.Copies)
	}
}

func TestBrowseServiceLoadErrorIsNonFatal(t *testing.T) {
	loader := &stubLoader{err: &source.LoadError{Source: "stub", Err: errors.New("missing")}}
	browse := NewBrowseService(loader, SurfaceOptions{ItemsPerPage: 12, Style: pagination.StyleSliding})

	result := browse.List(context.Background(), "", 1)
	if !result.Empty || result.LoadError == "" {
		t.Fatalf("expected empty result with a load error, got %+v", result)
	}
	if !strings.Contains(result.LoadError, "levels.json") {
		t.Fatalf("unexpected load error message %q", result.LoadError)
	}
}

func TestBrowseServiceLookupSuggests(t *testing.T) {
	loader := &stubLoader{levels: []model.Level{
		{ID: 1, Name: "Stereo Madness", Creator: "RobTop"},
		{ID: 2, Name: "Back On Track", Creator: "RobTop"},
	}}
	browse := NewBrowseService(loader, SurfaceOptions{ItemsPerPage: 12})

	result, err := browse.Lookup(context.Background(), "stereo madness", true)
	if err != nil || result.Level == nil || result.Level.ID != 1 {
		t.Fatalf("expected exact hit, got %+v %v", result, err)
	}
	result, err = browse.Lookup(context.Background(), "stereo", true)
	if !errors.Is(err, util.ErrLevelNotFound) {
		t.Fatalf("expected exact lookup to miss, got %v", err)
	}
	if len(result.Suggestions) == 0 || result.Suggestions[0] != "Stereo Madness" {
		t.Fatalf("expected suggestion, got %v", result.Suggestions)
	}

	browse.Reload()
	if loader.cleared != 1 {
		t.Fatalf("expected reload to clear the cache")
	}
}

func newWorkspace(t *testing.T, levels []model.Level) *Workspace {
	t.Helper()
	w := NewWorkspace(&stubLoader{levels: levels}, moderatorOpts)
	if err := w.Load(context.Background()); err != nil {
		t.Fatalf("load: %v", err)
	}
	return w
}

func TestWorkspaceDeleteNeedsConfirmation(t *testing.T) {
	w := newWorkspace(t, makeLevels(2))

	err := w.DeleteLevel(0, false)
	var confirm *ConfirmationError
	if !errors.As(err, &confirm) || confirm.Message != util.ConfirmDeleteLevel {
		t.Fatalf("expected confirmation request, got %v", err)
	}
	if !errors.Is(err, util.ErrConfirmationRequired) {
		t.Fatalf("expected ErrConfirmationRequired in the chain")
	}
	if w.Status().Levels != 2 || w.Status().Unsaved {
		t.Fatalf("expected nothing deleted yet")
	}

	if err := w.DeleteLevel(0, true); err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	if w.Status().Levels != 1 || !w.Status().Unsaved {
		t.Fatalf("expected level deleted and unsaved set, got %+v", w.Status())
	}
}

func TestWorkspaceRejectedCreateStaysSaved(t *testing.T) {
	w := newWorkspace(t, makeLevels(1))
	_, err := w.CreateLevel(model.Level{ID: 1, Name: "dup", Creator: "c"})
	var dup *repository.DuplicateIDError
	if !errors.As(err, &dup) {
		t.Fatalf("expected DuplicateIDError, got %v", err)
	}
	if w.Status().Unsaved || w.Status().Levels != 1 {
		t.Fatalf("expected failed create to change nothing, got %+v", w.Status())
	}
}

func TestWorkspaceUpdateKeepsCopiesWhenOmitted(t *testing.T) {
	w := newWorkspace(t, []model.Level{{ID: 1, Name: "a", Creator: "b", Copies: []model.Copy{
		{ID: 10, Creator: "x", Status: model.CopyStatusApproved},
	}}})
	index, err := w.UpdateLevel(0, model.Level{ID: 1, Name: "renamed", Creator: "b"})
	if err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	level := w.Levels()[index]
	if level.Name != "renamed" || len(level.Copies) != 1 {
		t.Fatalf("expected copies kept, got %+v", level)
	}
}

func TestWorkspaceDirectEditsBlockedDuringSession(t *testing.T) {
	w := newWorkspace(t, makeLevels(2))
	if _, err := w.OpenEditLevel(0); err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	if err := w.DeleteLevel(1, true); !errors.Is(err, util.ErrInvalidTransition) {
		t.Fatalf("expected delete refused while editing, got %v", err)
	}
	if _, err := w.AddCopy(0, model.CopyForm{ID: "1", Creator: "x", Status: "approved"}); !errors.Is(err, util.ErrInvalidTransition) {
		t.Fatalf("expected add copy refused while editing, got %v", err)
	}
}

func TestWorkspaceSessionFlow(t *testing.T) {
	w := newWorkspace(t, makeLevels(2))

	view, err := w.OpenAddLevel()
	if err != nil || !view.NewLevel || view.State != "editing_level" {
		t.Fatalf("unexpected session view %+v %v", view, err)
	}
	if _, err := w.OpenAddCopy(); err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	view, err = w.SubmitCopy(model.CopyForm{ID: "7", Creator: "x", Status: "pending"})
	if err != nil || len(view.Copies) != 1 {
		t.Fatalf("expected one draft copy in the dialog, got %+v %v", view, err)
	}
	if w.Status().Unsaved {
		t.Fatalf("expected draft edits to leave the catalog saved")
	}

	if _, err := w.RemoveCopy(0, false); !errors.Is(err, util.ErrConfirmationRequired) {
		t.Fatalf("expected confirmation request, got %v", err)
	}

	index, created, err := w.SubmitLevel(model.LevelForm{ID: "0", Name: "Zero", Creator: "c"})
	if err != nil || !created || index != 0 {
		t.Fatalf("expected created level at 0, got %d %v %v", index, created, err)
	}
	status := w.Status()
	if !status.Unsaved || status.Levels != 3 || status.Session.State != "idle" {
		t.Fatalf("unexpected status %+v", status)
	}
}

func TestWorkspaceListAndExport(t *testing.T) {
	w := newWorkspace(t, []model.Level{
		{ID: 2, Name: "Back On Track", Creator: "RobTop", Copies: []model.Copy{
			{ID: 201, Creator: "V", Status: model.CopyStatusRejected, Reason: "low quality"},
		}},
	})
	result := w.List("low quality", 0)
	if result.Total != 1 {
		t.Fatalf("expected reason search on the moderator surface, got %d", result.Total)
	}

	if _, err := w.AddCopy(0, model.CopyForm{ID: "202", Creator: "W", Status: "approved"}); err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	var buf bytes.Buffer
	if err := w.Export(&buf); err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	if w.Status().Unsaved {
		t.Fatalf("expected export to clear the unsaved flag")
	}
	exported, err := source.Decode(&buf)
	if err != nil || len(exported) != 1 || len(exported[0].Copies) != 2 {
		t.Fatalf("expected exported catalog with both copies, got %+v %v", exported, err)
	}
}

func TestWorkspaceLoadFailureLeavesEmptyCatalog(t *testing.T) {
	w := NewWorkspace(&stubLoader{err: &source.LoadError{Source: "stub", Err: errors.New("gone")}}, moderatorOpts)
	if err := w.Load(context.Background()); err == nil {
		t.Fatalf("expected load error")
	}
	result := w.List("", 1)
	if !result.Empty || result.LoadError == "" {
		t.Fatalf("expected empty list with load error, got %+v", result)
	}
}
