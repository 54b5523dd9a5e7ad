// Package calendar implements the Gregorian date arithmetic used by the
// session: month lengths, weekday of the first day, day stepping and month
// shifting. Everything here is a pure function of a (year, month, day) triple.
package calendar

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Date is a calendar day. Month is 1..12 and Day is 1..DaysInMonth.
type Date struct {
	Year  int
	Month int
	Day   int
}

func New(year, month, day int) Date {
	return Date{Year: year, Month: month, Day: day}
}

func FromTime(t time.Time) Date {
	return Date{Year: t.Year(), Month: int(t.Month()), Day: t.Day()}
}

func Today() Date {
	return FromTime(time.Now())
}

func IsLeapYear(year int) bool {
	if year%400 == 0 {
		return true
	}
	if year%100 == 0 {
		return false
	}
	return year%4 == 0
}

func DaysInMonth(year, month int) int {
	switch month {
	case 1, 3, 5, 7, 8, 10, 12:
		return 31
	case 4, 6, 9, 11:
		return 30
	case 2:
		if IsLeapYear(year) {
			return 29
		}
		return 28
	default:
		return 30
	}
}

// weekday returns 0=Sunday..6=Saturday (Sakamoto).
func weekday(year, month, day int) int {
	tbl := [...]int{0, 3, 2, 5, 0, 3, 5, 1, 4, 6, 2, 4}
	y := year
	if month < 3 {
		y--
	}
	w := (y + y/4 - y/100 + y/400 + tbl[month-1] + day) % 7
	if w < 0 {
		w += 7
	}
	return w
}

// FirstWeekday returns the weekday of day 1 of the month, 0=Sunday.
func FirstWeekday(year, month int) int {
	return weekday(year, month, 1)
}

// Weekday returns the weekday of d, 0=Sunday.
func (d Date) Weekday() int {
	return weekday(d.Year, d.Month, d.Day)
}

func (d Date) Valid() bool {
	return d.Month >= 1 && d.Month <= 12 && d.Day >= 1 && d.Day <= DaysInMonth(d.Year, d.Month)
}

func (d Date) NextDay() Date {
	d.Day++
	if d.Day <= DaysInMonth(d.Year, d.Month) {
		return d
	}
	d.Day = 1
	d.Month++
	if d.Month <= 12 {
		return d
	}
	return Date{Year: d.Year + 1, Month: 1, Day: 1}
}

func (d Date) PrevDay() Date {
	d.Day--
	if d.Day >= 1 {
		return d
	}
	d.Month--
	if d.Month < 1 {
		d.Year--
		d.Month = 12
	}
	d.Day = DaysInMonth(d.Year, d.Month)
	return d
}

// AddDays steps n days forward (or backward when n is negative).
func (d Date) AddDays(n int) Date {
	for ; n > 0; n-- {
		d = d.NextDay()
	}
	for ; n < 0; n++ {
		d = d.PrevDay()
	}
	return d
}

// ShiftMonth moves delta months holding the day of month. A day that does
// not exist in the target month is clamped to its last day.
func (d Date) ShiftMonth(delta int) Date {
	y := d.Year
	m := d.Month + delta
	for m < 1 {
		m += 12
		y--
	}
	for m > 12 {
		m -= 12
		y++
	}
	return Date{Year: y, Month: m, Day: clampDay(y, m, d.Day)}
}

// WithDay returns d moved to another day of the same month, clamped.
func (d Date) WithDay(day int) Date {
	if day < 1 {
		day = 1
	}
	d.Day = clampDay(d.Year, d.Month, day)
	return d
}

func clampDay(year, month, day int) int {
	max := DaysInMonth(year, month)
	if day > max {
		return max
	}
	return day
}

// String formats d as DD/MM/YYYY.
func (d Date) String() string {
	return fmt.Sprintf("%02d/%02d/%04d", d.Day, d.Month, d.Year)
}

// ISO formats d as YYYY-MM-DD.
func (d Date) ISO() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, d.Month, d.Day)
}

// Display formats d as "DD/MM/YYYY - Weekday".
func (d Date) Display() string {
	return d.String() + " - " + WeekdayName(d.Weekday())
}

// Parse accepts DD/MM/YYYY or YYYY-MM-DD.
func Parse(s string) (Date, error) {
	s = strings.TrimSpace(s)
	var parts []string
	var d Date
	switch {
	case strings.Count(s, "/") == 2:
		parts = strings.Split(s, "/")
		day, err1 := strconv.Atoi(parts[0])
		month, err2 := strconv.Atoi(parts[1])
		year, err3 := strconv.Atoi(parts[2])
		if err1 != nil || err2 != nil || err3 != nil {
			return Date{}, fmt.Errorf("invalid date %q, expected DD/MM/YYYY", s)
		}
		d = Date{Year: year, Month: month, Day: day}
	case strings.Count(s, "-") == 2:
		parts = strings.Split(s, "-")
		year, err1 := strconv.Atoi(parts[0])
		month, err2 := strconv.Atoi(parts[1])
		day, err3 := strconv.Atoi(parts[2])
		if err1 != nil || err2 != nil || err3 != nil {
			return Date{}, fmt.Errorf("invalid date %q, expected YYYY-MM-DD", s)
		}
		d = Date{Year: year, Month: month, Day: day}
	default:
		return Date{}, fmt.Errorf("invalid date %q, expected DD/MM/YYYY or YYYY-MM-DD", s)
	}
	if !d.Valid() {
		return Date{}, fmt.Errorf("date %q is out of range", s)
	}
	return d, nil
}

var monthNames = [...]string{
	"January", "February", "March", "April", "May", "June",
	"July", "August", "September", "October", "November", "December",
}

func MonthName(month int) string {
	if month < 1 || month > 12 {
		return "Month"
	}
	return monthNames[month-1]
}

var weekdayNames = [...]string{"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday"}

func WeekdayName(wd int) string {
	if wd < 0 || wd > 6 {
		return "??"
	}
	return weekdayNames[wd]
}

// WeekdayHeader is the two-letter weekday row drawn above a month grid.
const WeekdayHeader = "Su Mo Tu We Th Fr Sa"

// GridRows is the number of week rows a month occupies when weeks start on Sunday.
func GridRows(year, month int) int {
	return (FirstWeekday(year, month) + DaysInMonth(year, month) + 6) / 7
}

// Cell returns the zero-based (row, col) of day within its month grid.
func Cell(year, month, day int) (row, col int) {
	i := FirstWeekday(year, month) + day - 1
	return i / 7, i % 7
}
