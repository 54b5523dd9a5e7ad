package tui

import (
	"context"
	"strconv"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/saadjs/kcal-tui/internal/catalog"
	"github.com/saadjs/kcal-tui/internal/model"
	"github.com/saadjs/kcal-tui/internal/render"
	"github.com/saadjs/kcal-tui/internal/scroll"
)

const templateTips = "[q] Back  [j/k] Down/Up  [Enter] Select  [x] Delete"

const (
	itemSearch = iota
	itemCreate
	templateFixed
)

const gramsInputLimit = 6

// templatePicker is the state of one pass through "Add from templates".
type templatePicker struct {
	term    string
	editing bool
	list    *scroll.List
	matches []model.FoodTemplate
}

func (s *Session) pickerTop() int {
	return s.r.Height()/2 - 4
}

func (s *Session) newPicker() *templatePicker {
	top := s.pickerTop()
	return &templatePicker{list: scroll.New(templateFixed, max(0, s.r.Height()-top-6))}
}

func (p *templatePicker) refresh(cat *catalog.Catalog) {
	p.matches = cat.Search(p.term)
	p.list.SetDynamic(len(p.matches))
}

func (s *Session) paintPicker(p *templatePicker) {
	r := s.r
	r.Clear()
	top := s.pickerTop()
	sel := p.list.Selected()

	search := "[Search: " + p.term + "]"
	searchStyle := render.Button
	if sel == itemSearch {
		searchStyle = render.Selected
	}
	x := r.Centered(top, search, searchStyle)
	r.Button(top+1, "Create new template", sel == itemCreate)

	listTop := top + 3
	cur, hasCur := p.list.DynamicIndex()
	for i := range p.list.Visible() {
		t := p.matches[i]
		line := render.PadRight(t.Name, model.MaxNameLen) + " " +
			foodDetails("per 100g", t.Calories, t.Carbs, t.Protein, t.Fat)
		style := render.Default
		if hasCur && i == cur {
			style = render.Selected
		}
		r.Centered(listTop+i-p.list.Offset(), line, style)
	}
	if thumb, ok := p.list.Indicator(); ok {
		paintTrack(r, r.Width()-2, listTop, p.list.Viewport(), thumb)
	}

	r.Tips(templateTips)
	r.Status(s.status, render.Warning)
	if p.editing {
		r.ShowCursor(x+runewidth.StringWidth("[Search: "+p.term), top)
	} else {
		r.HideCursor()
	}
}

// addFromTemplate lets the user search the catalog and log a template
// scaled to some grams. It returns Committed once an entry is added.
func (s *Session) addFromTemplate(ctx context.Context) (Outcome, error) {
	p := s.newPicker()
	for {
		p.refresh(s.catalog)
		s.paintPicker(p)
		s.r.Show()

		k, err := s.keys.ReadKey()
		if err != nil {
			return Cancelled, err
		}
		if p.editing {
			if k.Kind == KeyEnter {
				p.editing = false
				s.r.HideCursor()
			} else {
				p.term = editSearch(p.term, k)
			}
			continue
		}

		switch {
		case k.Is('j'):
			p.list.MoveNext()
			s.fb.Navigate()
		case k.Is('k'):
			p.list.MovePrevious()
			s.fb.Navigate()
		case k.Is('q'):
			s.fb.Select()
			s.log.Debug(ctx, "flow finished", "flow", "add_from_template", "outcome", Cancelled.String())
			return Cancelled, nil
		case k.Is('x'):
			if i, ok := p.list.DynamicIndex(); ok {
				name := p.matches[i].Name
				n := s.catalog.Remove(name)
				s.log.Debug(ctx, "templates removed", "name", name, "count", n)
				p.term = ""
				p.list.Reset()
				s.fb.Select()
			}
		case k.Kind == KeyEnter:
			s.fb.Select()
			out, err := s.pickerSelect(ctx, p)
			if err != nil || out == Committed {
				if out == Committed {
					s.log.Debug(ctx, "flow finished", "flow", "add_from_template", "outcome", Committed.String())
				}
				return out, err
			}
		}
	}
}

// pickerSelect acts on Enter. Only logging a template ends the flow.
func (s *Session) pickerSelect(ctx context.Context, p *templatePicker) (Outcome, error) {
	switch p.list.Selected() {
	case itemSearch:
		p.editing = true
	case itemCreate:
		out, err := s.createTemplate(ctx)
		if err != nil {
			return Cancelled, err
		}
		if out == Committed {
			p.term = ""
			p.refresh(s.catalog)
			p.list.Select(templateFixed)
		}
	default:
		i, _ := p.list.DynamicIndex()
		return s.logTemplate(ctx, p.matches[i])
	}
	return Cancelled, nil
}

func (s *Session) createTemplate(ctx context.Context) (Outcome, error) {
	return s.runForm(ctx, &form{
		name: "create_template",
		fields: []Field{
			textField("Template Name", ""),
			intField("Calories", 0),
			intField("Carbs", 0),
			intField("Protein", 0),
			intField("Fat", 0),
		},
		confirm: "Add",
		tips:    formTips,
		commit: func(ctx context.Context, fields []Field) {
			t := model.FoodTemplate{
				Name:     model.DisplayName(fields[0].Text),
				Calories: fields[1].Int,
				Carbs:    fields[2].Int,
				Protein:  fields[3].Int,
				Fat:      fields[4].Int,
			}
			s.catalog.Add(t)
			s.log.Info(ctx, "template created", "name", t.Name)
		},
	})
}

// logTemplate asks for grams and appends the scaled entry to the tracked
// day. Anything but a non-negative integer goes back to the list.
func (s *Session) logTemplate(ctx context.Context, t model.FoodTemplate) (Outcome, error) {
	mid := s.r.Height() / 2
	x := max(0, (s.r.Width()-30)/2)
	const prompt = "Enter grams to add: "
	paint := func() {
		s.r.Clear()
		s.r.Text(x, mid-1, "Template: "+t.Name, render.Header)
		s.r.Text(x, mid+1, prompt, render.Default)
	}
	in, ok, err := s.readLine(x+len(prompt), mid+1, gramsInputLimit+1, gramsInputLimit, paint)
	if err != nil || !ok {
		return Cancelled, err
	}
	grams, convErr := strconv.Atoi(strings.TrimSpace(in))
	if convErr != nil || grams < 0 {
		return Cancelled, nil
	}

	s.store.GetOrCreateRecord(s.date).Append(catalog.Scale(t, grams))
	s.persist(ctx, "add template food")

	s.r.Clear()
	s.r.Centered(mid, "Template food added.", render.Calories)
	s.r.Centered(mid+1, "Press any key to continue.", render.Muted)
	s.r.Status(s.status, render.Warning)
	s.r.Show()
	for {
		k, err := s.keys.ReadKey()
		if err != nil {
			return Committed, err
		}
		if k.Kind != KeyRedraw {
			return Committed, nil
		}
	}
}
