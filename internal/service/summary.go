package service

import (
	"github.com/saadjs/kcal-tui/internal/calendar"
	"github.com/saadjs/kcal-tui/internal/model"
	"github.com/saadjs/kcal-tui/internal/store"
)

type DaySummary struct {
	Date      calendar.Date
	Foods     []model.FoodEntry
	Totals    model.Totals
	Goals     model.Goals
	Remaining model.Totals
}

// TodaySummary reports the intake logged on date against the goals. It
// does not create a record for an empty day.
func TodaySummary(m *store.Manager, date calendar.Date) DaySummary {
	s := DaySummary{Date: date, Goals: m.Goals()}
	if r, ok := m.Lookup(date); ok {
		s.Foods = r.Foods
		s.Totals = r.Totals()
	}
	s.Remaining = model.Totals{
		Calories: s.Goals.Calories - s.Totals.Calories,
		Carbs:    s.Goals.Carbs - s.Totals.Carbs,
		Protein:  s.Goals.Protein - s.Totals.Protein,
		Fat:      s.Goals.Fat - s.Totals.Fat,
	}
	return s
}
