package calendar_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/saadjs/kcal-tui/internal/calendar"
)

func TestDaysInMonth(t *testing.T) {
	t.Parallel()
	tests := []struct {
		year, month, want int
	}{
		{2024, 2, 29},
		{2023, 2, 28},
		{2000, 2, 29},
		{1900, 2, 28},
		{2025, 4, 30},
		{2025, 1, 31},
		{2025, 12, 31},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, calendar.DaysInMonth(tc.year, tc.month), "%d-%02d", tc.year, tc.month)
	}
}

func TestFirstWeekdayMatchesTimePackage(t *testing.T) {
	t.Parallel()
	for year := 1999; year <= 2031; year++ {
		for month := 1; month <= 12; month++ {
			want := int(time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC).Weekday())
			require.Equal(t, want, calendar.FirstWeekday(year, month), "%d-%02d", year, month)
		}
	}
}

func TestDayRollover(t *testing.T) {
	t.Parallel()
	for year := 2020; year <= 2030; year++ {
		last := calendar.New(year, 12, calendar.DaysInMonth(year, 12))
		next := last.NextDay()
		assert.Equal(t, calendar.New(year+1, 1, 1), next)
		assert.Equal(t, last, next.PrevDay())
		assert.Equal(t, (last.Weekday()+1)%7, next.Weekday())
	}

	assert.Equal(t, calendar.New(2024, 3, 1), calendar.New(2024, 2, 29).NextDay())
	assert.Equal(t, calendar.New(2023, 2, 28), calendar.New(2023, 3, 1).PrevDay())
	assert.Equal(t, calendar.New(2024, 1, 10), calendar.New(2023, 12, 31).AddDays(10))
	assert.Equal(t, calendar.New(2023, 12, 31), calendar.New(2024, 1, 10).AddDays(-10))
}

func TestShiftMonthHoldsDay(t *testing.T) {
	t.Parallel()
	assert.Equal(t, calendar.New(2025, 12, 15), calendar.New(2026, 1, 15).ShiftMonth(-1))
	assert.Equal(t, calendar.New(2027, 1, 15), calendar.New(2026, 12, 15).ShiftMonth(1))
	assert.Equal(t, calendar.New(2024, 2, 29), calendar.New(2024, 1, 31).ShiftMonth(1))
	assert.Equal(t, calendar.New(2023, 2, 28), calendar.New(2023, 3, 31).ShiftMonth(-1))
	assert.Equal(t, calendar.New(2026, 6, 30), calendar.New(2025, 6, 30).ShiftMonth(12))
}

func TestParseAndFormat(t *testing.T) {
	t.Parallel()
	d, err := calendar.Parse("05/03/2024")
	require.NoError(t, err)
	assert.Equal(t, calendar.New(2024, 3, 5), d)
	assert.Equal(t, "05/03/2024", d.String())
	assert.Equal(t, "2024-03-05", d.ISO())
	assert.Equal(t, "05/03/2024 - Tuesday", d.Display())

	iso, err := calendar.Parse("2024-03-05")
	require.NoError(t, err)
	assert.Equal(t, d, iso)

	for _, bad := range []string{"", "2024/03", "31/02/2024", "aa/bb/cccc", "2024-13-01"} {
		_, err := calendar.Parse(bad)
		assert.Error(t, err, bad)
	}
}

func TestGridCells(t *testing.T) {
	t.Parallel()
	// March 2024 starts on a Friday.
	assert.Equal(t, 5, calendar.FirstWeekday(2024, 3))
	assert.Equal(t, 6, calendar.GridRows(2024, 3))
	row, col := calendar.Cell(2024, 3, 1)
	assert.Equal(t, 0, row)
	assert.Equal(t, 5, col)
	row, col = calendar.Cell(2024, 3, 31)
	assert.Equal(t, 5, row)
	assert.Equal(t, 0, col)
	// February 2015 starts on Sunday and fits four rows.
	assert.Equal(t, 4, calendar.GridRows(2015, 2))
}
