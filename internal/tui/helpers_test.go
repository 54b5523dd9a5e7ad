package tui_test

import (
	"context"
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/require"

	"github.com/saadjs/kcal-tui/internal/calendar"
	"github.com/saadjs/kcal-tui/internal/catalog"
	"github.com/saadjs/kcal-tui/internal/model"
	"github.com/saadjs/kcal-tui/internal/render"
	"github.com/saadjs/kcal-tui/internal/store"
	"github.com/saadjs/kcal-tui/internal/tui"
)

var testDate = calendar.New(2024, 3, 15)

// script replays keys; '\r' is Enter, '\b' Backspace and '\x1b' Escape.
type script struct {
	keys []tui.Key
}

func newScript(s string) *script {
	sc := &script{}
	for _, r := range s {
		switch r {
		case '\r':
			sc.keys = append(sc.keys, tui.Key{Kind: tui.KeyEnter})
		case '\b':
			sc.keys = append(sc.keys, tui.Key{Kind: tui.KeyBackspace})
		case '\x1b':
			sc.keys = append(sc.keys, tui.Key{Kind: tui.KeyEscape})
		default:
			sc.keys = append(sc.keys, tui.Rune(r))
		}
	}
	return sc
}

func (s *script) ReadKey() (tui.Key, error) {
	if len(s.keys) == 0 {
		return tui.Key{}, tui.ErrInputClosed
	}
	k := s.keys[0]
	s.keys = s.keys[1:]
	return k, nil
}

type harness struct {
	screen  tcell.SimulationScreen
	session *tui.Session
	manager *store.Manager
	catalog *catalog.Catalog
}

// loadedManager returns a manager whose goals are already configured.
func loadedManager(t *testing.T) *store.Manager {
	t.Helper()
	return loadedWith(t, store.NewMemoryBackend())
}

func loadedWith(t *testing.T, b store.Backend) *store.Manager {
	t.Helper()
	m := store.NewManager(b)
	_, _, _, err := m.LoadAll(context.Background())
	require.NoError(t, err)
	require.NoError(t, m.SaveAll(context.Background()))
	return m
}

func newHarness(t *testing.T, m *store.Manager, cat *catalog.Catalog, keys string) *harness {
	t.Helper()
	return newSizedHarness(t, m, cat, keys, render.DefaultWidth, render.DefaultHeight)
}

func newSizedHarness(t *testing.T, m *store.Manager, cat *catalog.Catalog, keys string, width, height int) *harness {
	t.Helper()
	screen := tcell.NewSimulationScreen("")
	require.NoError(t, screen.Init())
	t.Cleanup(screen.Fini)
	screen.SetSize(width, height)
	if cat == nil {
		cat = catalog.New()
	}
	r := render.New(screen, width, height)
	s := tui.New(r, m, cat, newScript(keys), tui.Options{Date: testDate})
	return &harness{screen: screen, session: s, manager: m, catalog: cat}
}

// run plays the whole script. A script that does not quit ends with
// ErrInputClosed.
func (h *harness) run(t *testing.T) error {
	t.Helper()
	return h.session.Run(context.Background())
}

func (h *harness) row(y int) string {
	w, _ := h.screen.Size()
	var b strings.Builder
	for x := 0; x < w; x++ {
		ch, _, _, _ := h.screen.GetContent(x, y)
		if ch == 0 {
			ch = ' '
		}
		b.WriteRune(ch)
	}
	return b.String()
}

func (h *harness) foods(d calendar.Date) []model.FoodEntry {
	rec, ok := h.manager.Lookup(d)
	if !ok {
		return nil
	}
	return rec.Foods
}
