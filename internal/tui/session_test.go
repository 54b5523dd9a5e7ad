package tui_test

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/saadjs/kcal-tui/internal/calendar"
	"github.com/saadjs/kcal-tui/internal/catalog"
	"github.com/saadjs/kcal-tui/internal/model"
	"github.com/saadjs/kcal-tui/internal/render"
	"github.com/saadjs/kcal-tui/internal/store"
	"github.com/saadjs/kcal-tui/internal/tui"
)

const addEgg = "j\r" + "\rEgg\r" + "j\r70\r" + "j\r1\r" + "j\r6\r" + "j\r5\r" + "j\r50\r" + "j\r"

func TestAddCustomFoodThenDelete(t *testing.T) {
	backend := store.NewMemoryBackend()
	m := loadedWith(t, backend)

	h := newHarness(t, m, nil, addEgg+"q")
	require.NoError(t, h.run(t))
	assert.Equal(t, tui.StateQuit, h.session.State())

	foods := h.foods(testDate)
	require.Len(t, foods, 1)
	assert.Equal(t, model.FoodEntry{Name: "Egg", Calories: 70, Carbs: 1, Protein: 6, Fat: 5, Grams: 50}, foods[0])
	rec, _ := m.Lookup(testDate)
	assert.Equal(t, model.Totals{Calories: 70, Carbs: 1, Protein: 6, Fat: 5}, rec.Totals())

	h = newHarness(t, m, nil, "jjjj")
	require.ErrorIs(t, h.run(t), tui.ErrInputClosed)
	assert.True(t, strings.HasPrefix(h.row(11), "Egg"))
	assert.Contains(t, h.row(11), "0050 grams 0070 calories 001 carbs 006 protein 005 fat")
	assert.Contains(t, h.row(2), "Calories: 0070 / 2000")
	assert.Contains(t, h.row(3), "Carbs: 001 / 250  Protein: 006 / 150  Fat: 005 / 070")

	h = newHarness(t, m, nil, "jjjjxq")
	require.NoError(t, h.run(t))
	assert.Empty(t, h.foods(testDate))
	rec, _ = m.Lookup(testDate)
	assert.Equal(t, model.Totals{}, rec.Totals())
	assert.Equal(t, 3, h.session.Selection())

	// The deletion reached the backend.
	snap, _, err := backend.Load(context.Background())
	require.NoError(t, err)
	require.Len(t, snap.Records, 1)
	assert.Empty(t, snap.Records[0].Foods)
}

func TestMainMenuLayout(t *testing.T) {
	m := loadedManager(t)
	h := newHarness(t, m, nil, "")
	require.ErrorIs(t, h.run(t), tui.ErrInputClosed)

	assert.True(t, strings.HasPrefix(h.row(0), "15/03/2024 - Friday"))
	assert.Equal(t, strings.Repeat("=", 80), h.row(5))
	assert.Equal(t, strings.Repeat("=", 80), h.row(10))
	assert.Contains(t, h.row(6), "[Add from templates]")
	assert.Contains(t, h.row(7), "[Add custom food]")
	assert.Contains(t, h.row(8), "[Calendar]")
	assert.Contains(t, h.row(9), "[Reset goals]")
	assert.Contains(t, h.row(22), "[q] Quit  [j/k] Down/Up")
	assert.Equal(t, strings.Repeat("-", 80), h.row(21))
}

func TestOverGoalNumbersUseWarningStyle(t *testing.T) {
	m := loadedManager(t)
	m.SetGoals(model.Goals{Calories: 100, Carbs: 250, Protein: 150, Fat: 70})
	m.GetOrCreateRecord(testDate).Append(model.FoodEntry{Name: "Cake", Calories: 150, Carbs: 20, Protein: 2, Fat: 9, Grams: 80})

	h := newHarness(t, m, nil, "")
	require.ErrorIs(t, h.run(t), tui.ErrInputClosed)

	line := h.row(2)
	x := strings.Index(line, "0150")
	require.GreaterOrEqual(t, x, 0)
	_, _, style, _ := h.screen.GetContent(x, 2)
	assert.Equal(t, render.DefaultTheme()[render.Warning], style)

	line = h.row(3)
	x = strings.Index(line, "020")
	require.GreaterOrEqual(t, x, 0)
	_, _, style, _ = h.screen.GetContent(x, 3)
	assert.Equal(t, render.DefaultTheme()[render.Default], style)
}

func TestDayNavigationResetsSelection(t *testing.T) {
	m := loadedManager(t)
	h := newHarness(t, m, nil, "jjhlll")
	require.ErrorIs(t, h.run(t), tui.ErrInputClosed)
	assert.Equal(t, calendar.New(2024, 3, 17), h.session.Date())
	assert.Equal(t, 0, h.session.Selection())
	assert.True(t, strings.HasPrefix(h.row(0), "17/03/2024 - Sunday"))
}

func TestSelectionWrapsAndScrolls(t *testing.T) {
	m := loadedManager(t)
	rec := m.GetOrCreateRecord(testDate)
	for i := 0; i < 15; i++ {
		rec.Append(model.FoodEntry{Name: fmt.Sprintf("Food%02d", i), Calories: i})
	}

	h := newHarness(t, m, nil, "k")
	require.ErrorIs(t, h.run(t), tui.ErrInputClosed)
	assert.Equal(t, 18, h.session.Selection())
	assert.True(t, strings.HasPrefix(h.row(11), "Food05"))
	assert.True(t, strings.HasPrefix(h.row(20), "Food14"))

	// Offset 5 of 5 puts the thumb on the last viewport row.
	last := []rune(h.row(11))
	assert.Equal(t, '|', last[len(last)-1])
	last = []rune(h.row(20))
	assert.NotEqual(t, '|', last[len(last)-1])

	h = newHarness(t, m, nil, "kj")
	require.ErrorIs(t, h.run(t), tui.ErrInputClosed)
	assert.Equal(t, 0, h.session.Selection())
	assert.True(t, strings.HasPrefix(h.row(11), "Food00"))
}

func TestEditFood(t *testing.T) {
	m := loadedManager(t)
	m.GetOrCreateRecord(testDate).Append(model.FoodEntry{Name: "Egg", Calories: 70, Carbs: 1, Protein: 6, Fat: 5, Grams: 50})

	h := newHarness(t, m, nil, "jjjj\r"+"j\r80\r"+"j\rabc\r"+"jjjj\r"+"q")
	require.NoError(t, h.run(t))
	assert.Equal(t, model.FoodEntry{Name: "Egg", Calories: 80, Carbs: 1, Protein: 6, Fat: 5, Grams: 50}, h.foods(testDate)[0])
}

func TestEditFoodCancelKeepsEntry(t *testing.T) {
	m := loadedManager(t)
	m.GetOrCreateRecord(testDate).Append(model.FoodEntry{Name: "Egg", Calories: 70})

	h := newHarness(t, m, nil, "jjjj\r"+"\rOmelette\r"+"q"+"q")
	require.NoError(t, h.run(t))
	assert.Equal(t, "Egg", h.foods(testDate)[0].Name)
}

func TestFieldEditingRules(t *testing.T) {
	m := loadedManager(t)
	long := strings.Repeat("x", 30)
	keys := "j\r" +
		"\r" + long + "\r" + // truncated to 21
		"j\r12\x1b" + // escape keeps 0
		"j\r-4\r" + // negative rejected
		"j\r9\b7\r" + // backspace
		"jjj\r" + "q"
	h := newHarness(t, m, nil, keys)
	require.NoError(t, h.run(t))

	foods := h.foods(testDate)
	require.Len(t, foods, 1)
	assert.Equal(t, strings.Repeat("x", model.MaxNameLen), foods[0].Name)
	assert.Equal(t, 0, foods[0].Calories)
	assert.Equal(t, 0, foods[0].Carbs)
	assert.Equal(t, 7, foods[0].Protein)
}

func TestEmptyNameBecomesPlaceholder(t *testing.T) {
	m := loadedManager(t)
	h := newHarness(t, m, nil, "j\r"+"jjjjjj\r"+"q")
	require.NoError(t, h.run(t))
	require.Len(t, h.foods(testDate), 1)
	assert.Equal(t, model.EmptyName, h.foods(testDate)[0].Name)
}

func TestFormLayout(t *testing.T) {
	m := loadedManager(t)
	h := newHarness(t, m, nil, "j\r")
	require.ErrorIs(t, h.run(t), tui.ErrInputClosed)

	assert.Contains(t, h.row(8), "[Food Name: <empty>]")
	assert.Contains(t, h.row(9), "[Calories: 0]")
	assert.Contains(t, h.row(13), "[Grams: 0]")
	assert.Equal(t, strings.Repeat(" ", 80), h.row(14))
	assert.Contains(t, h.row(15), "[Add]")
	assert.Contains(t, h.row(22), "[q] Back  [j/k] Down/Up  [Enter] Select")
}

func TestFirstRunAsksForGoals(t *testing.T) {
	m := store.NewManager(store.NewMemoryBackend())
	_, _, firstRun, err := m.LoadAll(context.Background())
	require.NoError(t, err)
	require.True(t, firstRun)

	keys := "\r2200\r" + "j\r300\r" + "j\r120\r" + "j\r60\r" + "j\r" + "q"
	h := newHarness(t, m, nil, keys)
	require.NoError(t, h.run(t))
	assert.Equal(t, model.Goals{Calories: 2200, Carbs: 300, Protein: 120, Fat: 60}, m.Goals())
	assert.False(t, m.FirstRun())
}

func TestFirstRunCancelKeepsDefaults(t *testing.T) {
	m := store.NewManager(store.NewMemoryBackend())
	_, _, _, err := m.LoadAll(context.Background())
	require.NoError(t, err)

	h := newHarness(t, m, nil, "qq")
	require.NoError(t, h.run(t))
	assert.Equal(t, model.DefaultGoals, m.Goals())
	assert.True(t, m.FirstRun())
}

func TestStartGoalsLayout(t *testing.T) {
	m := store.NewManager(store.NewMemoryBackend())
	_, _, _, err := m.LoadAll(context.Background())
	require.NoError(t, err)

	h := newHarness(t, m, nil, "")
	require.ErrorIs(t, h.run(t), tui.ErrInputClosed)
	assert.Contains(t, h.row(8), "[Calories: 0]")
	assert.Contains(t, h.row(11), "[Fat: 0]")
	assert.Contains(t, h.row(13), "[Start]")
	assert.Contains(t, h.row(22), "[q] Cancel  [j/k] Down/Up  [Enter] Select")
}

func TestResetGoals(t *testing.T) {
	m := loadedManager(t)
	h := newHarness(t, m, nil, "jjj\r"+"\r1800\r"+"jjjj\r"+"q")
	require.NoError(t, h.run(t))
	assert.Equal(t, 1800, m.Goals().Calories)
	assert.Equal(t, model.DefaultGoals.Fat, m.Goals().Fat)

	h = newHarness(t, m, nil, "jjj\r"+"\r999\r"+"q"+"q")
	require.NoError(t, h.run(t))
	assert.Equal(t, 1800, m.Goals().Calories)
}

type brokenDisk struct{}

func (brokenDisk) Load(context.Context) (store.Snapshot, bool, error) {
	return store.Snapshot{Goals: model.DefaultGoals}, false, nil
}

func (brokenDisk) Save(context.Context, store.Snapshot) error {
	return errors.New("disk full")
}

func TestSaveFailureShowsStatus(t *testing.T) {
	m := store.NewManager(brokenDisk{})
	_, _, _, err := m.LoadAll(context.Background())
	require.NoError(t, err)

	h := newHarness(t, m, nil, "j\r"+"\rEgg\r"+"jjjjjj\r")
	require.ErrorIs(t, h.run(t), tui.ErrInputClosed)
	assert.Contains(t, h.session.Status(), "disk full")
	assert.True(t, strings.HasPrefix(h.row(23), "Save failed: save records: disk full"))
	require.Len(t, h.foods(testDate), 1)

	// The next key clears the message.
	h = newHarness(t, m, nil, "j\r"+"\rToast\r"+"jjjjjj\r"+"j")
	require.ErrorIs(t, h.run(t), tui.ErrInputClosed)
	assert.Empty(t, h.session.Status())
	assert.Equal(t, strings.Repeat(" ", 80), h.row(23))
	assert.Len(t, h.foods(testDate), 2)
}

func TestRedrawKeyChangesNothing(t *testing.T) {
	m := loadedManager(t)
	screen := newHarness(t, m, nil, "").screen
	r := render.New(screen, 0, 0)
	keys := &script{keys: []tui.Key{{Kind: tui.KeyRedraw}, tui.Rune('j'), {Kind: tui.KeyRedraw}}}
	s := tui.New(r, m, catalog.New(), keys, tui.Options{Date: testDate})
	require.ErrorIs(t, s.Run(context.Background()), tui.ErrInputClosed)
	assert.Equal(t, 1, s.Selection())
	assert.Equal(t, tui.StateMainMenu, s.State())
}

func TestRunStopsOnCancelledContext(t *testing.T) {
	m := loadedManager(t)
	h := newHarness(t, m, nil, "jjjj")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	require.ErrorIs(t, h.session.Run(ctx), context.Canceled)
}

type countingBeeper struct{ n int }

func (c *countingBeeper) Beep() error {
	c.n++
	return nil
}

func TestBellFeedback(t *testing.T) {
	m := loadedManager(t)
	b := &countingBeeper{}
	screen := newHarness(t, m, nil, "").screen
	s := tui.New(render.New(screen, 0, 0), m, catalog.New(), newScript("jkhq"), tui.Options{
		Date:     testDate,
		Feedback: tui.NewBell(b),
	})
	require.NoError(t, s.Run(context.Background()))
	assert.Equal(t, 4, b.n)
}
