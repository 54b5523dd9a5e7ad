package tui

import (
	"context"
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/saadjs/kcal-tui/internal/calendar"
	"github.com/saadjs/kcal-tui/internal/model"
	"github.com/saadjs/kcal-tui/internal/render"
)

var menuItems = []string{"Add from templates", "Add custom food", "Calendar", "Reset goals"}

const (
	menuAddTemplate = iota
	menuAddCustom
	menuCalendar
	menuResetGoals
)

// Main menu rows.
const (
	headerRow   = 0
	caloriesRow = 2
	macrosRow   = 3
	menuRow     = 6
	foodTop     = 11
	detailsX    = model.MaxNameLen + 1
)

const mainTips = "[q] Quit  [j/k] Down/Up  [h/l] Prev Day/Next Day  [Enter] Select  [x] Delete"

// foodViewport is the number of food rows between the lower rule and the
// tips.
func foodViewport(height int) int {
	return max(0, height-4-(foodTop-1))
}

func (s *Session) foods() []model.FoodEntry {
	if rec, ok := s.store.Lookup(s.date); ok {
		return rec.Foods
	}
	return nil
}

func (s *Session) paintMainMenu() {
	foods := s.foods()
	s.menu.SetDynamic(len(foods))

	r := s.r
	r.Clear()
	r.Text(0, headerRow, s.date.Display(), render.Header)

	goals := s.store.Goals()
	var totals model.Totals
	if rec, ok := s.store.Lookup(s.date); ok {
		totals = rec.Totals()
	}
	overCal, overCarbs, overProtein, overFat := totals.Over(goals)
	r.CenteredSpans(caloriesRow,
		render.Span{Text: "Calories: ", Style: render.Calories},
		render.Span{Text: render.Pad4(totals.Calories), Style: warnIf(overCal)},
		render.Span{Text: " / " + render.Pad4(goals.Calories)},
	)
	r.CenteredSpans(macrosRow,
		render.Span{Text: "Carbs: ", Style: render.Carbs},
		render.Span{Text: render.Pad3(totals.Carbs), Style: warnIf(overCarbs)},
		render.Span{Text: " / " + render.Pad3(goals.Carbs) + "  "},
		render.Span{Text: "Protein: ", Style: render.Protein},
		render.Span{Text: render.Pad3(totals.Protein), Style: warnIf(overProtein)},
		render.Span{Text: " / " + render.Pad3(goals.Protein) + "  "},
		render.Span{Text: "Fat: ", Style: render.Fat},
		render.Span{Text: render.Pad3(totals.Fat), Style: warnIf(overFat)},
		render.Span{Text: " / " + render.Pad3(goals.Fat)},
	)

	r.HRule(menuRow-1, '=', render.Default)
	for i, item := range menuItems {
		r.Button(menuRow+i, item, s.menu.Selected() == i)
	}
	r.HRule(foodTop-1, '=', render.Default)

	sel, hasSel := s.menu.DynamicIndex()
	for i := range s.menu.Visible() {
		y := foodTop + i - s.menu.Offset()
		style := render.Default
		if hasSel && i == sel {
			style = render.Selected
		}
		s.paintFoodRow(y, foods[i], style)
	}
	s.paintScrollbar(r.Width()-1, foodTop)

	r.Tips(mainTips)
	r.Status(s.status, render.Warning)
}

func (s *Session) paintFoodRow(y int, f model.FoodEntry, style render.Style) {
	s.r.Text(0, y, render.PadRight(model.DisplayName(f.Name), model.MaxNameLen), style)
	details := foodDetails(render.Pad4(f.Grams)+" grams", f.Calories, f.Carbs, f.Protein, f.Fat)
	x := detailsX + (s.r.Width() - 1 - detailsX - runewidth.StringWidth(details))
	s.r.Text(max(x, detailsX), y, details, style)
}

func foodDetails(lead string, cal, carbs, protein, fat int) string {
	return fmt.Sprintf("%s %s calories %s carbs %s protein %s fat",
		lead, render.Pad4(cal), render.Pad3(carbs), render.Pad3(protein), render.Pad3(fat))
}

// paintScrollbar draws a track with a thumb in column x when the list has
// rows off screen.
func (s *Session) paintScrollbar(x, top int) {
	thumb, ok := s.menu.Indicator()
	if !ok {
		return
	}
	paintTrack(s.r, x, top, s.menu.Viewport(), thumb)
}

func paintTrack(r *render.Renderer, x, top, rows, thumb int) {
	for i := 0; i < rows; i++ {
		r.Text(x, top+i, "|", render.Muted)
	}
	r.Text(x, top+thumb, string(tcell.RuneBlock), render.Header)
}

func warnIf(over bool) render.Style {
	if over {
		return render.Warning
	}
	return render.Default
}

func (s *Session) mainMenuStep(ctx context.Context) error {
	s.paintMainMenu()
	s.r.Show()

	k, err := s.keys.ReadKey()
	if err != nil {
		return err
	}
	if k.Kind == KeyRedraw {
		return nil
	}
	s.status = ""

	switch {
	case k.Is('j'):
		s.menu.MoveNext()
		s.fb.Navigate()
	case k.Is('k'):
		s.menu.MovePrevious()
		s.fb.Navigate()
	case k.Is('h'):
		s.switchDay(s.date.PrevDay())
	case k.Is('l'):
		s.switchDay(s.date.NextDay())
	case k.Is('x'):
		s.deleteSelected(ctx)
	case k.Is('q'):
		s.fb.Select()
		s.state = StateQuit
	case k.Kind == KeyEnter:
		s.fb.Select()
		return s.dispatch(ctx)
	}
	return nil
}

func (s *Session) switchDay(d calendar.Date) {
	s.date = d
	s.menu.Reset()
	s.fb.PageSwitch()
}

func (s *Session) deleteSelected(ctx context.Context) {
	i, ok := s.menu.DynamicIndex()
	if !ok {
		return
	}
	rec, found := s.store.Lookup(s.date)
	if !found || !rec.Remove(i) {
		return
	}
	s.menu.SetDynamic(len(rec.Foods))
	s.fb.Select()
	s.persist(ctx, "delete food")
}

func (s *Session) dispatch(ctx context.Context) error {
	if !s.menu.InFixed() {
		i, _ := s.menu.DynamicIndex()
		_, err := s.editFood(ctx, i)
		return err
	}
	var err error
	switch s.menu.Selected() {
	case menuAddTemplate:
		_, err = s.addFromTemplate(ctx)
	case menuAddCustom:
		_, err = s.addCustomFood(ctx)
	case menuCalendar:
		s.openCalendar()
	case menuResetGoals:
		_, err = s.resetGoals(ctx)
	}
	return err
}
