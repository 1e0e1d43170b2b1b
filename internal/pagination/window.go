package pagination

import (
	"fmt"
	"strconv"
	"strings"
)

type Style string

const (
	// StyleSliding shows up to MaxVisiblePages numbers around the current page.
	StyleSliding Style = "sliding"
	// StyleCompact shows first, current and last plus jump buttons.
	StyleCompact Style = "compact"
)

const MaxVisiblePages = 7

func ParseStyle(s string) (Style, error) {
	switch Style(strings.ToLower(strings.TrimSpace(s))) {
	case StyleSliding:
		return StyleSliding, nil
	case StyleCompact:
		return StyleCompact, nil
	}
	return "", fmt.Errorf("unknown pagination style %q", s)
}

type ControlKind string

const (
	KindFirst    ControlKind = "first"
	KindPrev     ControlKind = "prev"
	KindPage     ControlKind = "page"
	KindEllipsis ControlKind = "ellipsis"
	KindNext     ControlKind = "next"
	KindLast     ControlKind = "last"
)

// Control is one button or marker of the page window. Page is the target
// page for buttons and 0 for ellipsis markers.
type Control struct {
	Kind     ControlKind `json:"kind"`
	Label    string      `json:"label"`
	Page     int         `json:"page,omitempty"`
	Active   bool        `json:"active,omitempty"`
	Disabled bool        `json:"disabled,omitempty"`
}

type Controls struct {
	Hidden      bool      `json:"hidden"`
	CurrentPage int       `json:"currentPage"`
	TotalPages  int       `json:"totalPages"`
	Items       []Control `json:"items"`
}

// Window builds the page controls for current out of total pages. The
// control is hidden entirely when there is at most one page.
func Window(current, total int, style Style) Controls {
	c := Controls{CurrentPage: current, TotalPages: total, Items: []Control{}}
	if total <= 1 {
		c.Hidden = true
		return c
	}
	current = ClampPage(current, total)
	c.CurrentPage = current
	if style == StyleCompact {
		c.Items = compact(current, total)
	} else {
		c.Items = sliding(current, total)
	}
	return c
}

func sliding(current, total int) []Control {
	half := MaxVisiblePages / 2
	start := max(1, current-half)
	end := min(total, start+MaxVisiblePages-1)
	if end-start < MaxVisiblePages-1 {
		start = max(1, end-MaxVisiblePages+1)
	}

	items := []Control{prev(current)}
	if start > 1 {
		items = append(items, page(1, current))
		if start > 2 {
			items = append(items, ellipsis())
		}
	}
	for i := start; i <= end; i++ {
		items = append(items, page(i, current))
	}
	if end < total {
		if end < total-1 {
			items = append(items, ellipsis())
		}
		items = append(items, page(total, current))
	}
	return append(items, next(current, total))
}

func compact(current, total int) []Control {
	items := []Control{
		{Kind: KindFirst, Label: "First", Page: 1, Disabled: current == 1},
		prev(current),
	}
	shown := []int{1}
	if current != 1 && current != total {
		shown = append(shown, current)
	}
	shown = append(shown, total)
	for i, p := range shown {
		if i > 0 && p-shown[i-1] > 1 {
			items = append(items, ellipsis())
		}
		items = append(items, page(p, current))
	}
	return append(items,
		next(current, total),
		Control{Kind: KindLast, Label: "Last", Page: total, Disabled: current == total},
	)
}

func page(p, current int) Control {
	return Control{Kind: KindPage, Label: strconv.Itoa(p), Page: p, Active: p == current}
}

func ellipsis() Control {
	return Control{Kind: KindEllipsis, Label: "..."}
}

func prev(current int) Control {
	return Control{Kind: KindPrev, Label: "← Previous", Page: max(1, current-1), Disabled: current == 1}
}

func next(current, total int) Control {
	return Control{Kind: KindNext, Label: "Next →", Page: min(total, current+1), Disabled: current == total}
}
