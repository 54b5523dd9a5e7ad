// Package render draws the session onto a fixed character grid backed by a
// tcell screen. The renderer keeps no view state; callers clear and redraw
// the whole grid on every change.
package render

import (
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// Default grid size.
const (
	DefaultWidth  = 80
	DefaultHeight = 24
)

type Style int

const (
	Default Style = iota
	Selected
	Warning
	Muted
	Header
	Button
	Calories
	Carbs
	Protein
	Fat
)

// Theme maps semantic styles onto terminal attributes.
type Theme map[Style]tcell.Style

func DefaultTheme() Theme {
	base := tcell.StyleDefault
	return Theme{
		Default:  base,
		Selected: base.Reverse(true).Bold(true),
		Warning:  base.Foreground(tcell.ColorRed).Bold(true),
		Muted:    base.Dim(true),
		Header:   base.Foreground(tcell.ColorYellow).Bold(true),
		Button:   base.Foreground(tcell.ColorWhite),
		Calories: base.Foreground(tcell.ColorGreen),
		Carbs:    base.Foreground(tcell.ColorAqua),
		Protein:  base.Foreground(tcell.ColorFuchsia),
		Fat:      base.Foreground(tcell.ColorOlive),
	}
}

// Span is a run of text sharing one style.
type Span struct {
	Text  string
	Style Style
}

type Renderer struct {
	screen tcell.Screen
	width  int
	height int
	theme  Theme
}

// New returns a renderer for a width x height grid on screen. Non-positive
// sizes fall back to 80x24.
func New(screen tcell.Screen, width, height int) *Renderer {
	if width <= 0 {
		width = DefaultWidth
	}
	if height <= 0 {
		height = DefaultHeight
	}
	return &Renderer{screen: screen, width: width, height: height, theme: DefaultTheme()}
}

func (r *Renderer) Width() int  { return r.width }
func (r *Renderer) Height() int { return r.height }

func (r *Renderer) style(s Style) tcell.Style {
	if st, ok := r.theme[s]; ok {
		return st
	}
	return tcell.StyleDefault
}

func (r *Renderer) Clear() {
	r.screen.Clear()
}

func (r *Renderer) set(x, y int, ch rune, st tcell.Style) {
	if x < 0 || y < 0 || x >= r.width || y >= r.height {
		return
	}
	r.screen.SetContent(x, y, ch, nil, st)
}

// Text draws s at (x, y), clipped to the grid, and returns the column after
// the last cell written.
func (r *Renderer) Text(x, y int, s string, style Style) int {
	st := r.style(style)
	for _, ch := range s {
		w := runewidth.RuneWidth(ch)
		if w == 0 {
			continue
		}
		r.set(x, y, ch, st)
		x += w
	}
	return x
}

// Spans draws the spans one after another starting at (x, y).
func (r *Renderer) Spans(x, y int, spans ...Span) int {
	for _, sp := range spans {
		x = r.Text(x, y, sp.Text, sp.Style)
	}
	return x
}

// CenterX returns the column that centres s on the grid.
func (r *Renderer) CenterX(s string) int {
	x := (r.width - runewidth.StringWidth(s)) / 2
	if x < 0 {
		return 0
	}
	return x
}

// Centered draws s centred on row y and returns its starting column.
func (r *Renderer) Centered(y int, s string, style Style) int {
	x := r.CenterX(s)
	r.Text(x, y, s, style)
	return x
}

// CenteredSpans centres the concatenation of spans on row y.
func (r *Renderer) CenteredSpans(y int, spans ...Span) int {
	var b strings.Builder
	for _, sp := range spans {
		b.WriteString(sp.Text)
	}
	x := r.CenterX(b.String())
	r.Spans(x, y, spans...)
	return x
}

// Button draws "[label]" centred on row y.
func (r *Renderer) Button(y int, label string, selected bool) int {
	style := Button
	if selected {
		style = Selected
	}
	return r.Centered(y, "["+label+"]", style)
}

// HRule fills row y with ch.
func (r *Renderer) HRule(y int, ch rune, style Style) {
	st := r.style(style)
	for x := 0; x < r.width; x++ {
		r.set(x, y, ch, st)
	}
}

// Box draws a bordered rectangle and blanks its interior.
func (r *Renderer) Box(x, y, w, h int, style Style) {
	if w < 2 || h < 2 {
		return
	}
	st := r.style(style)
	for row := y; row < y+h; row++ {
		for col := x; col < x+w; col++ {
			r.set(col, row, ' ', r.style(Default))
		}
	}
	for col := x + 1; col < x+w-1; col++ {
		r.set(col, y, tcell.RuneHLine, st)
		r.set(col, y+h-1, tcell.RuneHLine, st)
	}
	for row := y + 1; row < y+h-1; row++ {
		r.set(x, row, tcell.RuneVLine, st)
		r.set(x+w-1, row, tcell.RuneVLine, st)
	}
	r.set(x, y, tcell.RuneULCorner, st)
	r.set(x+w-1, y, tcell.RuneURCorner, st)
	r.set(x, y+h-1, tcell.RuneLLCorner, st)
	r.set(x+w-1, y+h-1, tcell.RuneLRCorner, st)
}

// Tips draws the key help: a muted rule on row H-3 and the text centred on
// row H-2.
func (r *Renderer) Tips(text string) {
	r.HRule(r.height-3, '-', Muted)
	r.Centered(r.height-2, text, Muted)
}

// Status writes a one-line message on the bottom row.
func (r *Renderer) Status(text string, style Style) {
	if text == "" {
		return
	}
	r.Text(0, r.height-1, runewidth.Truncate(text, r.width, ""), style)
}

func (r *Renderer) ShowCursor(x, y int) {
	r.screen.ShowCursor(x, y)
}

func (r *Renderer) HideCursor() {
	r.screen.HideCursor()
}

func (r *Renderer) Show() {
	r.screen.Show()
}

// Beep rings the terminal bell.
func (r *Renderer) Beep() error {
	return r.screen.Beep()
}
