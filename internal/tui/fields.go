package tui

import (
	"context"
	"strconv"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/saadjs/kcal-tui/internal/model"
	"github.com/saadjs/kcal-tui/internal/render"
)

// formTop is the row of the first field in every form.
const formTop = 8

const (
	intInputLimit = 9
	editAreaWidth = 20
)

type FieldKind int

const (
	TextField FieldKind = iota
	IntField
)

type Field struct {
	Label string
	Kind  FieldKind
	Text  string
	Int   int
}

func textField(label, v string) Field {
	return Field{Label: label, Kind: TextField, Text: v}
}

func intField(label string, v int) Field {
	return Field{Label: label, Kind: IntField, Int: v}
}

func (f Field) value() string {
	if f.Kind == IntField {
		return strconv.Itoa(f.Int)
	}
	return model.DisplayName(f.Text)
}

func (f Field) button() string {
	return "[" + f.Label + ": " + f.value() + "]"
}

// set applies captured input. Text is trimmed and truncated; integers must
// parse as non-negative base-10, otherwise the prior value stays.
func (f *Field) set(input string) {
	if f.Kind == TextField {
		f.Text = model.TruncateName(input)
		return
	}
	n, err := strconv.Atoi(strings.TrimSpace(input))
	if err != nil || n < 0 {
		return
	}
	f.Int = n
}

// form is a column of fields with a confirm button one blank row below.
type form struct {
	name    string
	fields  []Field
	confirm string
	tips    string
	commit  func(ctx context.Context, fields []Field)
}

const formTips = "[q] Back  [j/k] Down/Up  [Enter] Select"

func (f *form) confirmRow() int {
	return formTop + len(f.fields) + 1
}

func (s *Session) paintForm(f *form, selected int) {
	s.r.Clear()
	for i, fld := range f.fields {
		s.r.Button(formTop+i, fld.Label+": "+fld.value(), selected == i)
	}
	s.r.Button(f.confirmRow(), f.confirm, selected == len(f.fields))
	s.r.Tips(f.tips)
	s.r.Status(s.status, render.Warning)
}

// runForm edits the fields until the user confirms or backs out.
func (s *Session) runForm(ctx context.Context, f *form) (Outcome, error) {
	selected := 0
	items := len(f.fields) + 1
	for {
		s.paintForm(f, selected)
		s.r.Show()

		k, err := s.keys.ReadKey()
		if err != nil {
			return Cancelled, err
		}
		switch {
		case k.Is('j'):
			selected = (selected + 1) % items
			s.fb.Navigate()
		case k.Is('k'):
			selected = (selected - 1 + items) % items
			s.fb.Navigate()
		case k.Is('q'):
			s.fb.Select()
			s.log.Debug(ctx, "flow finished", "flow", f.name, "outcome", Cancelled.String())
			return Cancelled, nil
		case k.Kind == KeyEnter:
			s.fb.Select()
			if selected == len(f.fields) {
				f.commit(ctx, f.fields)
				s.log.Debug(ctx, "flow finished", "flow", f.name, "outcome", Committed.String())
				return Committed, nil
			}
			if err := s.editField(f, selected); err != nil {
				return Cancelled, err
			}
		}
	}
}

func (s *Session) editField(f *form, i int) error {
	fld := &f.fields[i]
	prefix := "[" + fld.Label + ": "
	x := s.r.CenterX(fld.button()) + runewidth.StringWidth(prefix)
	limit := model.MaxNameLen
	if fld.Kind == IntField {
		limit = intInputLimit
	}
	width := max(editAreaWidth, runewidth.StringWidth(fld.value())+1)
	in, ok, err := s.readLine(x, formTop+i, width, limit, func() { s.paintForm(f, i) })
	if err != nil {
		return err
	}
	if ok {
		fld.set(in)
	}
	return nil
}
