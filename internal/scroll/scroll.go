// Package scroll tracks a selection and a viewport offset over a list made
// of a fixed number of static items followed by data-driven items. Only the
// data-driven part scrolls; the static items are always on screen.
package scroll

import "iter"

type List struct {
	fixed    int
	dynamic  int
	viewport int
	selected int
	offset   int
}

// New returns a list with fixed static items, no dynamic items yet, and
// viewport visible dynamic rows.
func New(fixed, viewport int) *List {
	if fixed < 0 {
		fixed = 0
	}
	if viewport < 0 {
		viewport = 0
	}
	return &List{fixed: fixed, viewport: viewport}
}

func (l *List) Fixed() int    { return l.fixed }
func (l *List) Dynamic() int  { return l.dynamic }
func (l *List) Viewport() int { return l.viewport }
func (l *List) Total() int    { return l.fixed + l.dynamic }
func (l *List) Selected() int { return l.selected }
func (l *List) Offset() int   { return l.offset }

// InFixed reports whether a static item is selected.
func (l *List) InFixed() bool {
	return l.selected < l.fixed
}

// DynamicIndex returns the selected dynamic item, if the selection is in the
// dynamic region.
func (l *List) DynamicIndex() (int, bool) {
	if l.Total() == 0 || l.selected < l.fixed {
		return 0, false
	}
	return l.selected - l.fixed, true
}

// SetDynamic updates the number of dynamic items and re-clamps the
// selection and offset, e.g. after a delete or a new search.
func (l *List) SetDynamic(n int) {
	if n < 0 {
		n = 0
	}
	l.dynamic = n
	if total := l.Total(); l.selected >= total {
		l.selected = total - 1
	}
	if l.selected < 0 {
		l.selected = 0
	}
	if max := l.maxOffset(); l.offset > max {
		l.offset = max
	}
	l.follow()
}

func (l *List) MoveNext() {
	total := l.Total()
	if total == 0 {
		return
	}
	if l.selected < total-1 {
		l.selected++
	} else {
		l.selected = 0
	}
	l.follow()
}

func (l *List) MovePrevious() {
	total := l.Total()
	if total == 0 {
		return
	}
	if l.selected > 0 {
		l.selected--
	} else {
		l.selected = total - 1
	}
	l.follow()
}

// Select moves the selection to i, clamped into range.
func (l *List) Select(i int) {
	total := l.Total()
	switch {
	case total == 0 || i < 0:
		i = 0
	case i >= total:
		i = total - 1
	}
	l.selected = i
	l.follow()
}

// Reset selects the first item and scrolls to the top.
func (l *List) Reset() {
	l.selected = 0
	l.offset = 0
}

// Visible yields the dynamic indices currently inside the viewport.
func (l *List) Visible() iter.Seq[int] {
	start, end := l.offset, l.offset+l.viewport
	if end > l.dynamic {
		end = l.dynamic
	}
	return func(yield func(int) bool) {
		for i := start; i < end; i++ {
			if !yield(i) {
				return
			}
		}
	}
}

// Overflows reports whether some dynamic items are off screen.
func (l *List) Overflows() bool {
	return l.dynamic > l.viewport
}

// Indicator returns the scroll thumb row relative to the first viewport row.
func (l *List) Indicator() (int, bool) {
	if !l.Overflows() || l.viewport == 0 {
		return 0, false
	}
	return l.offset * (l.viewport - 1) / (l.dynamic - l.viewport), true
}

func (l *List) maxOffset() int {
	if l.dynamic > l.viewport {
		return l.dynamic - l.viewport
	}
	return 0
}

// follow keeps the selected dynamic row inside the viewport. A static
// selection scrolls back to the top.
func (l *List) follow() {
	i, ok := l.DynamicIndex()
	if !ok || l.viewport == 0 {
		l.offset = 0
		return
	}
	if i < l.offset {
		l.offset = i
	}
	if i >= l.offset+l.viewport {
		l.offset = i - l.viewport + 1
	}
	if max := l.maxOffset(); l.offset > max {
		l.offset = max
	}
}
