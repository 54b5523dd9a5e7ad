package tui

import (
	"errors"

	"github.com/gdamore/tcell/v2"
)

// ErrInputClosed is returned by a KeySource once no more keys will arrive.
var ErrInputClosed = errors.New("input closed")

type KeyKind int

const (
	KeyRune KeyKind = iota
	KeyEnter
	KeyBackspace
	KeyEscape
	// KeyRedraw asks the session to paint the current screen again, e.g.
	// after a terminal resize.
	KeyRedraw
)

type Key struct {
	Kind KeyKind
	Rune rune
}

func Rune(r rune) Key {
	return Key{Kind: KeyRune, Rune: r}
}

// Is reports whether k is the printable rune r.
func (k Key) Is(r rune) bool {
	return k.Kind == KeyRune && k.Rune == r
}

// KeySource blocks until the next key press.
type KeySource interface {
	ReadKey() (Key, error)
}

// ScreenKeys reads keys from a tcell screen. Events the session has no use
// for are skipped.
type ScreenKeys struct {
	screen tcell.Screen
}

func NewScreenKeys(s tcell.Screen) *ScreenKeys {
	return &ScreenKeys{screen: s}
}

func (k *ScreenKeys) ReadKey() (Key, error) {
	for {
		switch ev := k.screen.PollEvent().(type) {
		case nil:
			return Key{}, ErrInputClosed
		case *tcell.EventResize:
			k.screen.Sync()
			return Key{Kind: KeyRedraw}, nil
		case *tcell.EventKey:
			if key, ok := translate(ev); ok {
				return key, nil
			}
			if ev.Key() == tcell.KeyCtrlC {
				return Key{}, ErrInputClosed
			}
		}
	}
}

func translate(ev *tcell.EventKey) (Key, bool) {
	switch ev.Key() {
	case tcell.KeyEnter:
		return Key{Kind: KeyEnter}, true
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		return Key{Kind: KeyBackspace}, true
	case tcell.KeyEscape:
		return Key{Kind: KeyEscape}, true
	case tcell.KeyRune:
		return Rune(ev.Rune()), true
	}
	return Key{}, false
}
