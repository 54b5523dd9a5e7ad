package model

import (
	"strings"

	"github.com/saadjs/kcal-tui/internal/calendar"
)

// MaxNameLen is the widest food name the main table can show.
const MaxNameLen = 21

// EmptyName stands in for a food saved without a name.
const EmptyName = "<empty>"

type Goals struct {
	Calories int
	Carbs    int
	Protein  int
	Fat      int
}

// DefaultGoals are used until the user enters their own.
var DefaultGoals = Goals{Calories: 2000, Carbs: 250, Protein: 150, Fat: 70}

type FoodEntry struct {
	Name     string
	Calories int
	Carbs    int
	Protein  int
	Fat      int
	Grams    int
}

// FoodTemplate holds nutrients per 100 g. Grams stays 0.
type FoodTemplate struct {
	Name     string
	Calories int
	Carbs    int
	Protein  int
	Fat      int
	Grams    int
}

type DailyRecord struct {
	Date  calendar.Date
	Foods []FoodEntry
}

type Totals struct {
	Calories int
	Carbs    int
	Protein  int
	Fat      int
}

func (r *DailyRecord) Totals() Totals {
	var t Totals
	if r == nil {
		return t
	}
	for _, f := range r.Foods {
		t.Calories += f.Calories
		t.Carbs += f.Carbs
		t.Protein += f.Protein
		t.Fat += f.Fat
	}
	return t
}

func (r *DailyRecord) Append(f FoodEntry) {
	r.Foods = append(r.Foods, f)
}

// Remove deletes the entry at i. It reports false when i is out of range.
func (r *DailyRecord) Remove(i int) bool {
	if i < 0 || i >= len(r.Foods) {
		return false
	}
	r.Foods = append(r.Foods[:i], r.Foods[i+1:]...)
	return true
}

// Over reports which totals exceed their goal.
func (t Totals) Over(g Goals) (calories, carbs, protein, fat bool) {
	return t.Calories > g.Calories, t.Carbs > g.Carbs, t.Protein > g.Protein, t.Fat > g.Fat
}

// TruncateName trims s and cuts it to MaxNameLen runes.
func TruncateName(s string) string {
	s = strings.TrimSpace(s)
	r := []rune(s)
	if len(r) > MaxNameLen {
		r = r[:MaxNameLen]
	}
	return strings.TrimSpace(string(r))
}

// DisplayName substitutes EmptyName for a blank name.
func DisplayName(s string) string {
	if strings.TrimSpace(s) == "" {
		return EmptyName
	}
	return s
}
