package model_test

import (
	"strings"
	"testing"

	"github.com/saadjs/kcal-tui/internal/model"
)

func TestTotalsSumAllFoods(t *testing.T) {
	t.Parallel()
	r := &model.DailyRecord{}
	r.Append(model.FoodEntry{Name: "Egg", Calories: 70, Carbs: 1, Protein: 6, Fat: 5, Grams: 50})
	r.Append(model.FoodEntry{Name: "Toast", Calories: 120, Carbs: 22, Protein: 4, Fat: 2, Grams: 40})

	got := r.Totals()
	want := model.Totals{Calories: 190, Carbs: 23, Protein: 10, Fat: 7}
	if got != want {
		t.Fatalf("expected totals %+v, got %+v", want, got)
	}

	if !r.Remove(0) {
		t.Fatalf("expected remove of index 0 to succeed")
	}
	if r.Remove(5) {
		t.Fatalf("expected remove of index 5 to fail")
	}
	if got := r.Totals(); got.Calories != 120 {
		t.Fatalf("expected 120 kcal after removal, got %d", got.Calories)
	}

	var nilRecord *model.DailyRecord
	if got := nilRecord.Totals(); got != (model.Totals{}) {
		t.Fatalf("expected zero totals for nil record, got %+v", got)
	}
}

func TestTotalsOverUsesUnclampedValues(t *testing.T) {
	t.Parallel()
	totals := model.Totals{Calories: 12000, Carbs: 10, Protein: 1500, Fat: 70}
	cal, carbs, protein, fat := totals.Over(model.Goals{Calories: 9999, Carbs: 10, Protein: 999, Fat: 69})
	if !cal || carbs || !protein || !fat {
		t.Fatalf("unexpected over flags: cal=%v carbs=%v protein=%v fat=%v", cal, carbs, protein, fat)
	}
}

func TestTruncateName(t *testing.T) {
	t.Parallel()
	long := strings.Repeat("a", 30)
	if got := model.TruncateName(long); len(got) != model.MaxNameLen {
		t.Fatalf("expected %d chars, got %d", model.MaxNameLen, len(got))
	}
	if got := model.TruncateName("  Oats  "); got != "Oats" {
		t.Fatalf("expected trimmed name, got %q", got)
	}
	if got := model.TruncateName("Chicken breast grilled x"); got != "Chicken breast grilled"[:21] {
		t.Fatalf("unexpected truncation %q", got)
	}
	if got := model.DisplayName(" "); got != model.EmptyName {
		t.Fatalf("expected placeholder, got %q", got)
	}
}
