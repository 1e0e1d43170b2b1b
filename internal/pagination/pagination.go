// Package pagination slices result lists into fixed-size pages and computes
// the numbered page controls shown under them.
package pagination

import "fmt"

// TotalPages is ceil(count / perPage). A non-positive perPage yields 0.
func TotalPages(count, perPage int) int {
	if count <= 0 || perPage <= 0 {
		return 0
	}
	return (count + perPage - 1) / perPage
}

// Paginate returns list[(page-1)*perPage : page*perPage], clamped to the list.
// Pages outside the list yield an empty slice.
func Paginate[T any](list []T, page, perPage int) []T {
	if page < 1 || perPage <= 0 {
		return list[:0:0]
	}
	start := (page - 1) * perPage
	if start >= len(list) {
		return list[:0:0]
	}
	end := start + perPage
	if end > len(list) {
		end = len(list)
	}
	return list[start:end]
}

// ClampPage keeps page inside [1, totalPages]; with no pages it returns 1.
func ClampPage(page, totalPages int) int {
	if page < 1 || totalPages < 1 {
		return 1
	}
	if page > totalPages {
		return totalPages
	}
	return page
}

// ResultsText is the result counter: "0" when empty, the plain count when
// everything fits on one page, otherwise "first-last of count".
func ResultsText(page, perPage, count int) string {
	if count <= 0 {
		return "0"
	}
	if TotalPages(count, perPage) <= 1 {
		return fmt.Sprintf("%d", count)
	}
	first := (page-1)*perPage + 1
	last := page * perPage
	if last > count {
		last = count
	}
	return fmt.Sprintf("%d-%d of %d", first, last, count)
}
