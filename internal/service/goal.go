package service

import (
	"context"

	"github.com/saadjs/kcal-tui/internal/model"
	"github.com/saadjs/kcal-tui/internal/store"
)

type SetGoalInput struct {
	Calories int
	Carbs    int
	Protein  int
	Fat      int
}

func SetGoal(ctx context.Context, m *store.Manager, in SetGoalInput) error {
	if err := requireNonNegative(
		namedInt{"calories", in.Calories},
		namedInt{"carbs", in.Carbs},
		namedInt{"protein", in.Protein},
		namedInt{"fat", in.Fat},
	); err != nil {
		return err
	}
	m.SetGoals(model.Goals{Calories: in.Calories, Carbs: in.Carbs, Protein: in.Protein, Fat: in.Fat})
	return m.SaveAll(ctx)
}

// CurrentGoal returns the stored goals. configured is false when nothing
// has been saved yet and the defaults are in effect.
func CurrentGoal(m *store.Manager) (goals model.Goals, configured bool) {
	return m.Goals(), !m.FirstRun()
}
