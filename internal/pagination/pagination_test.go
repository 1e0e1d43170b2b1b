package pagination

import (
	"reflect"
	"testing"
)

func seq(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i
	}
	return out
}

func TestPaginateLengthAndReconstruction(t *testing.T) {
	for _, n := range []int{0, 1, 5, 6, 7, 12, 13, 25} {
		for _, per := range []int{1, 6, 12} {
			list := seq(n)
			var joined []int
			pages := TotalPages(n, per)
			for p := 1; p <= pages+1; p++ {
				page := Paginate(list, p, per)
				want := min(per, max(0, n-(p-1)*per))
				if len(page) != want {
					t.Fatalf("n=%d per=%d page=%d: expected len %d, got %d", n, per, p, want, len(page))
				}
				joined = append(joined, page...)
			}
			if n == 0 {
				if len(joined) != 0 {
					t.Fatalf("expected nothing for an empty list, got %v", joined)
				}
				continue
			}
			if !reflect.DeepEqual(joined, list) {
				t.Fatalf("n=%d per=%d: pages do not reconstruct the list: %v", n, per, joined)
			}
		}
	}
}

func TestPaginateDoesNotMutateList(t *testing.T) {
	list := seq(10)
	_ = Paginate(list, 2, 3)
	_ = Paginate(list, 9, 3)
	if !reflect.DeepEqual(list, seq(10)) {
		t.Fatalf("expected list untouched, got %v", list)
	}
}

func TestTotalPagesAndClamp(t *testing.T) {
	if got := TotalPages(13, 12); got != 2 {
		t.Fatalf("expected 2 pages, got %d", got)
	}
	if got := TotalPages(0, 12); got != 0 {
		t.Fatalf("expected 0 pages, got %d", got)
	}
	if got := ClampPage(5, 3); got != 3 {
		t.Fatalf("expected clamp to 3, got %d", got)
	}
	if got := ClampPage(0, 3); got != 1 {
		t.Fatalf("expected clamp to 1, got %d", got)
	}
	if got := ClampPage(4, 0); got != 1 {
		t.Fatalf("expected page 1 with no pages, got %d", got)
	}
}

func TestResultsText(t *testing.T) {
	cases := []struct {
		page, per, count int
		want             string
	}{
		{1, 12, 0, "0"},
		{1, 12, 5, "5"},
		{1, 12, 12, "12"},
		{1, 12, 30, "1-12 of 30"},
		{3, 12, 30, "25-30 of 30"},
	}
	for _, tc := range cases {
		if got := ResultsText(tc.page, tc.per, tc.count); got != tc.want {
			t.Fatalf("ResultsText(%d,%d,%d): expected %q, got %q", tc.page, tc.per, tc.count, tc.want, got)
		}
	}
}
