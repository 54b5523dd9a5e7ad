package tui

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/saadjs/kcal-tui/internal/render"
)

// readLine captures one line of input at (x, y). Each key repaints the
// screen with paint and then the buffer over a blanked area of width
// cells. Up to limit runes are accepted. ok is false when the user
// abandons the edit with Escape.
func (s *Session) readLine(x, y, width, limit int, paint func()) (string, bool, error) {
	var buf []rune
	for {
		paint()
		s.r.Text(x, y, strings.Repeat(" ", width), render.Default)
		end := s.r.Text(x, y, string(buf), render.Default)
		s.r.ShowCursor(end, y)
		s.r.Show()

		k, err := s.keys.ReadKey()
		if err != nil {
			s.r.HideCursor()
			return "", false, err
		}
		switch k.Kind {
		case KeyEnter:
			s.r.HideCursor()
			return string(buf), true, nil
		case KeyEscape:
			s.r.HideCursor()
			return "", false, nil
		case KeyBackspace:
			if len(buf) > 0 {
				buf = buf[:len(buf)-1]
			}
		case KeyRune:
			if unicode.IsPrint(k.Rune) && len(buf) < limit {
				buf = append(buf, k.Rune)
			}
		}
	}
}

// editSearch appends a printable rune to term or removes its last rune.
func editSearch(term string, k Key) string {
	switch k.Kind {
	case KeyBackspace:
		if term == "" {
			return term
		}
		_, size := utf8.DecodeLastRuneInString(term)
		return term[:len(term)-size]
	case KeyRune:
		if unicode.IsPrint(k.Rune) {
			return term + string(k.Rune)
		}
	}
	return term
}
