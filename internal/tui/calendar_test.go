package tui_test

import (
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/saadjs/kcal-tui/internal/calendar"
	"github.com/saadjs/kcal-tui/internal/model"
	"github.com/saadjs/kcal-tui/internal/render"
	"github.com/saadjs/kcal-tui/internal/tui"
)

const openCalendar = "jj\r"

func TestCalendarLayout(t *testing.T) {
	m := loadedManager(t)
	h := newHarness(t, m, nil, openCalendar)
	require.ErrorIs(t, h.run(t), tui.ErrInputClosed)
	assert.Equal(t, tui.StateCalendar, h.session.State())
	assert.Equal(t, 1, h.session.CalendarCursor())

	// March 2024 starts on a Friday and spans 6 week rows: block of 8 rows.
	assert.Equal(t, "March 2024", strings.TrimSpace(h.row(8)))
	assert.Equal(t, calendar.WeekdayHeader, strings.TrimSpace(h.row(9)))
	assert.Equal(t, "1  2", strings.TrimSpace(h.row(10)))
	assert.True(t, strings.HasSuffix(strings.TrimRight(h.row(15), " "), "31"))
	assert.Contains(t, h.row(22), "[b/w] Previous/Next")
}

func TestCalendarMoveAndSelect(t *testing.T) {
	m := loadedManager(t)
	// l to the 2nd (Saturday), l is blocked at the end of the week, j +7.
	h := newHarness(t, m, nil, openCalendar+"lljh\r")
	require.ErrorIs(t, h.run(t), tui.ErrInputClosed)
	assert.Equal(t, tui.StateMainMenu, h.session.State())
	assert.Equal(t, calendar.New(2024, 3, 8), h.session.Date())
}

func TestCalendarEdgesBlockMoves(t *testing.T) {
	m := loadedManager(t)
	h := newHarness(t, m, nil, openCalendar+"hk")
	require.ErrorIs(t, h.run(t), tui.ErrInputClosed)
	assert.Equal(t, 1, h.session.CalendarCursor())

	h = newHarness(t, m, nil, openCalendar+"jjjjjj")
	require.ErrorIs(t, h.run(t), tui.ErrInputClosed)
	assert.Equal(t, 29, h.session.CalendarCursor())
}

func TestCalendarMonthSwitchAndCancel(t *testing.T) {
	m := loadedManager(t)
	h := newHarness(t, m, nil, openCalendar+"wlq")
	require.ErrorIs(t, h.run(t), tui.ErrInputClosed)
	assert.Equal(t, tui.StateMainMenu, h.session.State())
	assert.Equal(t, testDate, h.session.Date())

	h = newHarness(t, m, nil, openCalendar+"bb\r")
	require.ErrorIs(t, h.run(t), tui.ErrInputClosed)
	assert.Equal(t, calendar.New(2024, 1, 1), h.session.Date())

	h = newHarness(t, m, nil, openCalendar+"w")
	require.ErrorIs(t, h.run(t), tui.ErrInputClosed)
	assert.Equal(t, "April 2024", strings.TrimSpace(h.row(8)))
	assert.Equal(t, 1, h.session.CalendarCursor())
}

func TestCalendarMarksLoggedDays(t *testing.T) {
	m := loadedManager(t)
	m.GetOrCreateRecord(calendar.New(2024, 3, 20)).Append(model.FoodEntry{Name: "Egg", Calories: 70})

	h := newHarness(t, m, nil, openCalendar)
	require.ErrorIs(t, h.run(t), tui.ErrInputClosed)

	theme := render.DefaultTheme()
	style := func(day int) tcell.Style {
		row, col := calendar.Cell(2024, 3, day)
		x := (80-len(calendar.WeekdayHeader))/2 + col*3 + 2
		_, _, st, _ := h.screen.GetContent(x, 10+row)
		return st
	}
	assert.Equal(t, theme[render.Selected], style(1))
	assert.Equal(t, theme[render.Header], style(15))
	assert.Equal(t, theme[render.Calories], style(20))
	assert.Equal(t, theme[render.Default], style(21))
}
