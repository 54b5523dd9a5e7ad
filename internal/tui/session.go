// Package tui runs the interactive session: a main menu over one tracked
// day, a month calendar, and modal flows for adding, editing and goal
// setting. Every state change repaints the whole grid.
package tui

import (
	"context"

	"github.com/saadjs/kcal-tui/internal/calendar"
	"github.com/saadjs/kcal-tui/internal/catalog"
	"github.com/saadjs/kcal-tui/internal/logging"
	"github.com/saadjs/kcal-tui/internal/render"
	"github.com/saadjs/kcal-tui/internal/scroll"
	"github.com/saadjs/kcal-tui/internal/store"
)

type State int

const (
	StateMainMenu State = iota
	StateCalendar
	StateQuit
)

// Outcome is how a modal flow ended.
type Outcome int

const (
	Cancelled Outcome = iota
	Committed
)

func (o Outcome) String() string {
	if o == Committed {
		return "committed"
	}
	return "cancelled"
}

// Options tune a session. Zero values pick a no-op logger, silent
// feedback and today's date.
type Options struct {
	Logger   logging.Logger
	Feedback Feedback
	Date     calendar.Date
}

type Session struct {
	r       *render.Renderer
	store   *store.Manager
	catalog *catalog.Catalog
	keys    KeySource
	log     logging.Logger
	fb      Feedback

	state  State
	date   calendar.Date
	menu   *scroll.List
	status string

	calCursor   int
	calOriginal calendar.Date
}

// New wires a session. The manager must already be loaded.
func New(r *render.Renderer, m *store.Manager, cat *catalog.Catalog, keys KeySource, opts Options) *Session {
	if opts.Logger == nil {
		opts.Logger = logging.Nop{}
	}
	if opts.Feedback == nil {
		opts.Feedback = Silent{}
	}
	if !opts.Date.Valid() {
		opts.Date = calendar.Today()
	}
	return &Session{
		r:       r,
		store:   m,
		catalog: cat,
		keys:    keys,
		log:     opts.Logger,
		fb:      opts.Feedback,
		state:   StateMainMenu,
		date:    opts.Date,
		menu:    scroll.New(len(menuItems), foodViewport(r.Height())),
	}
}

func (s *Session) State() State        { return s.state }
func (s *Session) Date() calendar.Date { return s.date }
func (s *Session) Status() string      { return s.status }
func (s *Session) Selection() int      { return s.menu.Selected() }

// Run drives the session until the user quits or input ends. On a first
// run the goal form is shown before the main menu.
func (s *Session) Run(ctx context.Context) error {
	s.log.Info(ctx, "session started", "date", s.date.String(), "first_run", s.store.FirstRun())
	defer s.log.Info(ctx, "session stopped")
	s.r.HideCursor()

	if s.store.FirstRun() {
		out, err := s.startGoals(ctx)
		if err != nil {
			return err
		}
		s.log.Debug(ctx, "flow finished", "flow", "start_goals", "outcome", out.String())
	}

	for s.state != StateQuit {
		if err := ctx.Err(); err != nil {
			return err
		}
		var err error
		switch s.state {
		case StateMainMenu:
			err = s.mainMenuStep(ctx)
		case StateCalendar:
			err = s.calendarStep(ctx)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

// persist saves everything. A failure is logged and shown on the status
// line; the in-memory change is kept.
func (s *Session) persist(ctx context.Context, action string) {
	if err := s.store.SaveAll(ctx); err != nil {
		s.log.Error(ctx, "save failed", "action", action, "err", err)
		s.status = "Save failed: " + err.Error()
		return
	}
	s.log.Debug(ctx, "saved", "action", action, "date", s.date.String())
}
