package tui

import (
	"context"
	"fmt"

	"github.com/saadjs/kcal-tui/internal/calendar"
	"github.com/saadjs/kcal-tui/internal/render"
)

const calendarTips = "[q] Back  [j/k] Down/Up  [h/l] Left/Right  [b/w] Previous/Next  [Enter] Select"

func (s *Session) openCalendar() {
	s.calOriginal = s.date
	s.calCursor = 1
	s.state = StateCalendar
}

// CalendarCursor is the highlighted day while the calendar is open.
func (s *Session) CalendarCursor() int {
	return s.calCursor
}

func (s *Session) paintCalendar() {
	r := s.r
	r.Clear()
	y, m := s.date.Year, s.date.Month
	rows := calendar.GridRows(y, m)
	top := max(0, (r.Height()-(2+rows))/2)

	r.Centered(top, fmt.Sprintf("%s %d", calendar.MonthName(m), y), render.Header)
	colStart := r.Centered(top+1, calendar.WeekdayHeader, render.Header)

	for d := 1; d <= calendar.DaysInMonth(y, m); d++ {
		row, col := calendar.Cell(y, m, d)
		day := calendar.New(y, m, d)
		style := render.Default
		switch {
		case d == s.calCursor:
			style = render.Selected
		case day == s.calOriginal:
			style = render.Header
		case s.store.HasFoods(day):
			style = render.Calories
		}
		r.Text(colStart+col*3, top+2+row, fmt.Sprintf("%3d", d), style)
	}

	r.Tips(calendarTips)
	r.Status(s.status, render.Warning)
}

func (s *Session) calendarStep(ctx context.Context) error {
	s.paintCalendar()
	s.r.Show()

	k, err := s.keys.ReadKey()
	if err != nil {
		return err
	}

	y, m := s.date.Year, s.date.Month
	days := calendar.DaysInMonth(y, m)
	_, col := calendar.Cell(y, m, s.calCursor)

	switch {
	case k.Is('b'):
		s.date = s.date.ShiftMonth(-1)
		s.calCursor = 1
		s.fb.PageSwitch()
	case k.Is('w'):
		s.date = s.date.ShiftMonth(1)
		s.calCursor = 1
		s.fb.PageSwitch()
	case k.Is('h'):
		if s.calCursor > 1 && col > 0 {
			s.calCursor--
			s.fb.Navigate()
		}
	case k.Is('l'):
		if col < 6 && s.calCursor < days {
			s.calCursor++
			s.fb.Navigate()
		}
	case k.Is('j'):
		if s.calCursor+7 <= days {
			s.calCursor += 7
			s.fb.Navigate()
		}
	case k.Is('k'):
		if s.calCursor-7 >= 1 {
			s.calCursor -= 7
			s.fb.Navigate()
		}
	case k.Is('q'):
		s.fb.Select()
		s.date = s.calOriginal
		s.state = StateMainMenu
		s.log.Debug(ctx, "flow finished", "flow", "calendar", "outcome", Cancelled.String())
	case k.Kind == KeyEnter:
		s.fb.Select()
		s.date = s.date.WithDay(s.calCursor)
		s.state = StateMainMenu
		s.menu.Reset()
		s.log.Debug(ctx, "flow finished", "flow", "calendar", "outcome", Committed.String(), "date", s.date.String())
	}
	return nil
}
