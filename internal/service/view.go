package service

import (
	"level_tracker_backend/internal/config"
	"level_tracker_backend/internal/model"
	"level_tracker_backend/internal/pagination"
	"level_tracker_backend/internal/query"
)

// SurfaceOptions is the per-surface list configuration.
type SurfaceOptions struct {
	ItemsPerPage      int
	SortApprovedFirst bool
	Style             pagination.Style
	Search            query.Options
}

func SurfaceOptionsFrom(cfg config.SurfaceConfig) SurfaceOptions {
	style, err := pagination.ParseStyle(cfg.PaginationStyle)
	if err != nil {
		style = pagination.StyleSliding
	}
	return SurfaceOptions{
		ItemsPerPage:      cfg.ItemsPerPage,
		SortApprovedFirst: cfg.SortApprovedFirst,
		Style:             style,
		Search:            query.Options{IncludeReason: cfg.IncludeReasonSearch},
	}
}

// Catalog is what a View reads from.
type Catalog interface {
	Levels() []model.Level
	Revision() uint64
}

// StaticCatalog is an immutable snapshot, as served by the read-only surface.
type StaticCatalog []model.Level

func (c StaticCatalog) Levels() []model.Level { return c }
func (c StaticCatalog) Revision() uint64      { return 0 }

// View holds a surface's search query, current page and the cached result of
// the last search. The cache is dropped whenever the catalog revision moves.
type View struct {
	opts    SurfaceOptions
	catalog Catalog

	query    string
	page     int
	levels   []model.Level
	indices  []int
	revision uint64
	valid    bool
}

func NewView(catalog Catalog, opts SurfaceOptions) *View {
	return &View{catalog: catalog, opts: opts, page: 1}
}

func (v *View) Query() string { return v.query }

func (v *View) CurrentPage() int { return v.page }

// SetQuery runs a new search and resets the current page to 1.
func (v *View) SetQuery(q string) {
	v.query = q
	v.search()
}

// GoToPage changes the current page only; the filtered list is untouched.
func (v *View) GoToPage(page int) {
	v.refresh()
	v.page = pagination.ClampPage(page, v.TotalPages())
}

// refresh re-runs the search when the catalog changed since the last one.
func (v *View) refresh() {
	if !v.valid || v.catalog.Revision() != v.revision {
		v.search()
	}
}

func (v *View) search() {
	v.levels = v.catalog.Levels()
	v.revision = v.catalog.Revision()
	v.indices = query.SearchIndices(v.levels, v.query, v.opts.Search)
	v.page = 1
	v.valid = true
}

// Results returns the filtered levels, in catalog order.
func (v *View) Results() []model.Level {
	v.refresh()
	out := make([]model.Level, len(v.indices))
	for i, idx := range v.indices {
		out[i] = v.levels[idx]
	}
	return out
}

func (v *View) TotalPages() int {
	v.refresh()
	return pagination.TotalPages(len(v.indices), v.opts.ItemsPerPage)
}

// PageResult is what renderList and renderPaginationControls draw.
type PageResult struct {
	Query       string              `json:"query"`
	Page        int                 `json:"page"`
	PerPage     int                 `json:"perPage"`
	Total       int                 `json:"total"`
	TotalPages  int                 `json:"totalPages"`
	ResultsText string              `json:"resultsText"`
	Empty       bool                `json:"empty"`
	Items       []LevelCard         `json:"items"`
	Pagination  pagination.Controls `json:"pagination"`
	LoadError   string              `json:"loadError,omitempty"`
}

// Current renders the current page of results.
func (v *View) Current() PageResult {
	v.refresh()
	total := len(v.indices)
	totalPages := pagination.TotalPages(total, v.opts.ItemsPerPage)
	pageIndices := pagination.Paginate(v.indices, v.page, v.opts.ItemsPerPage)

	items := make([]LevelCard, len(pageIndices))
	for i, idx := range pageIndices {
		items[i] = NewLevelCard(idx, v.levels[idx], v.opts.SortApprovedFirst)
	}
	return PageResult{
		Query:       v.query,
		Page:        v.page,
		PerPage:     v.opts.ItemsPerPage,
		Total:       total,
		TotalPages:  totalPages,
		ResultsText: pagination.ResultsText(v.page, v.opts.ItemsPerPage, total),
		Empty:       total == 0,
		Items:       items,
		Pagination:  pagination.Window(v.page, totalPages, v.opts.Style),
	}
}
