package tui

import (
	"context"

	"github.com/saadjs/kcal-tui/internal/model"
)

const startTips = "[q] Cancel  [j/k] Down/Up  [Enter] Select"

func foodFields(f model.FoodEntry) []Field {
	return []Field{
		textField("Food Name", f.Name),
		intField("Calories", f.Calories),
		intField("Carbs", f.Carbs),
		intField("Protein", f.Protein),
		intField("Fat", f.Fat),
		intField("Grams", f.Grams),
	}
}

func entryFromFields(fields []Field) model.FoodEntry {
	return model.FoodEntry{
		Name:     model.DisplayName(fields[0].Text),
		Calories: fields[1].Int,
		Carbs:    fields[2].Int,
		Protein:  fields[3].Int,
		Fat:      fields[4].Int,
		Grams:    fields[5].Int,
	}
}

func goalFields(g model.Goals) []Field {
	return []Field{
		intField("Calories", g.Calories),
		intField("Carbs", g.Carbs),
		intField("Protein", g.Protein),
		intField("Fat", g.Fat),
	}
}

func goalsFromFields(fields []Field) model.Goals {
	return model.Goals{Calories: fields[0].Int, Carbs: fields[1].Int, Protein: fields[2].Int, Fat: fields[3].Int}
}

// editFood edits the i-th food of the tracked day in place.
func (s *Session) editFood(ctx context.Context, i int) (Outcome, error) {
	rec, ok := s.store.Lookup(s.date)
	if !ok || i < 0 || i >= len(rec.Foods) {
		return Cancelled, nil
	}
	return s.runForm(ctx, &form{
		name:    "edit_food",
		fields:  foodFields(rec.Foods[i]),
		confirm: "Update",
		tips:    formTips,
		commit: func(ctx context.Context, fields []Field) {
			rec.Foods[i] = entryFromFields(fields)
			s.persist(ctx, "edit food")
		},
	})
}

func (s *Session) addCustomFood(ctx context.Context) (Outcome, error) {
	return s.runForm(ctx, &form{
		name:    "add_custom_food",
		fields:  foodFields(model.FoodEntry{}),
		confirm: "Add",
		tips:    formTips,
		commit: func(ctx context.Context, fields []Field) {
			s.store.GetOrCreateRecord(s.date).Append(entryFromFields(fields))
			s.persist(ctx, "add custom food")
		},
	})
}

// startGoals asks for the first goals. Backing out keeps the defaults and
// the next run asks again.
func (s *Session) startGoals(ctx context.Context) (Outcome, error) {
	return s.runForm(ctx, &form{
		name:    "start_goals",
		fields:  goalFields(model.Goals{}),
		confirm: "Start",
		tips:    startTips,
		commit: func(ctx context.Context, fields []Field) {
			s.store.SetGoals(goalsFromFields(fields))
			s.persist(ctx, "start goals")
		},
	})
}

func (s *Session) resetGoals(ctx context.Context) (Outcome, error) {
	return s.runForm(ctx, &form{
		name:    "reset_goals",
		fields:  goalFields(s.store.Goals()),
		confirm: "Update",
		tips:    formTips,
		commit: func(ctx context.Context, fields []Field) {
			s.store.SetGoals(goalsFromFields(fields))
			s.persist(ctx, "reset goals")
		},
	})
}
