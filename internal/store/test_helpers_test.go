package store_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/saadjs/kcal-tui/internal/calendar"
	"github.com/saadjs/kcal-tui/internal/model"
	"github.com/saadjs/kcal-tui/internal/store"
)

func newSQLiteBackend(t *testing.T) *store.SQLiteBackend {
	t.Helper()
	b, err := store.OpenSQLite(filepath.Join(t.TempDir(), "data", "kcal.db"))
	if err != nil {
		t.Fatalf("open sqlite backend: %v", err)
	}
	t.Cleanup(func() { _ = b.Close() })
	return b
}

func sampleSnapshot() store.Snapshot {
	return store.Snapshot{
		Goals: model.Goals{Calories: 1800, Carbs: 200, Protein: 120, Fat: 60},
		Records: []*model.DailyRecord{
			{
				Date: calendar.New(2024, 3, 5),
				Foods: []model.FoodEntry{
					{Name: "Egg", Calories: 70, Carbs: 1, Protein: 6, Fat: 5, Grams: 50},
					{Name: "Rice", Calories: 195, Carbs: 42, Protein: 3, Fat: 0, Grams: 150},
				},
			},
			{Date: calendar.New(2024, 3, 4)},
			{
				Date:  calendar.New(2023, 12, 31),
				Foods: []model.FoodEntry{{Name: "Cake", Calories: 350, Carbs: 50, Protein: 4, Fat: 15, Grams: 100}},
			},
		},
	}
}

func assertSnapshotEqual(t *testing.T, want, got store.Snapshot) {
	t.Helper()
	if want.Goals != got.Goals {
		t.Fatalf("expected goals %+v, got %+v", want.Goals, got.Goals)
	}
	if len(want.Records) != len(got.Records) {
		t.Fatalf("expected %d records, got %d", len(want.Records), len(got.Records))
	}
	for i := range want.Records {
		w, g := want.Records[i], got.Records[i]
		if w.Date != g.Date {
			t.Fatalf("record %d: expected date %s, got %s", i, w.Date, g.Date)
		}
		if len(w.Foods) != len(g.Foods) {
			t.Fatalf("record %s: expected %d foods, got %d", w.Date, len(w.Foods), len(g.Foods))
		}
		for j := range w.Foods {
			if w.Foods[j] != g.Foods[j] {
				t.Fatalf("record %s food %d: expected %+v, got %+v", w.Date, j, w.Foods[j], g.Foods[j])
			}
		}
	}
}

func roundTrip(t *testing.T, b store.Backend) {
	t.Helper()
	ctx := context.Background()

	snap, firstRun, err := b.Load(ctx)
	if err != nil {
		t.Fatalf("initial load: %v", err)
	}
	if !firstRun {
		t.Fatalf("expected first run on empty backend")
	}
	if snap.Goals != model.DefaultGoals {
		t.Fatalf("expected default goals, got %+v", snap.Goals)
	}

	want := sampleSnapshot()
	if err := b.Save(ctx, want); err != nil {
		t.Fatalf("save: %v", err)
	}
	got, firstRun, err := b.Load(ctx)
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if firstRun {
		t.Fatalf("expected saved backend not to be a first run")
	}
	assertSnapshotEqual(t, want, got)

	// A second save replaces rather than appends.
	want.Records = want.Records[:1]
	want.Records[0].Foods = want.Records[0].Foods[1:]
	if err := b.Save(ctx, want); err != nil {
		t.Fatalf("second save: %v", err)
	}
	got, _, err = b.Load(ctx)
	if err != nil {
		t.Fatalf("second reload: %v", err)
	}
	assertSnapshotEqual(t, want, got)
}
