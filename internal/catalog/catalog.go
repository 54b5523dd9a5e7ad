// Package catalog holds the in-memory food templates offered by the
// "Add from templates" flow.
package catalog

import (
	"slices"
	"strings"

	"github.com/saadjs/kcal-tui/internal/model"
)

// Catalog is a name-sorted collection of templates. Duplicate names are
// allowed.
type Catalog struct {
	items []model.FoodTemplate
}

func New(seed ...model.FoodTemplate) *Catalog {
	c := &Catalog{items: slices.Clone(seed)}
	c.sort()
	return c
}

func (c *Catalog) Len() int {
	return len(c.items)
}

// All returns a copy of every template in catalog order.
func (c *Catalog) All() []model.FoodTemplate {
	return slices.Clone(c.items)
}

// Search returns the templates whose name contains sub, in catalog order.
// Matching is case-sensitive; an empty term matches everything.
func (c *Catalog) Search(sub string) []model.FoodTemplate {
	if sub == "" {
		return c.All()
	}
	out := make([]model.FoodTemplate, 0, len(c.items))
	for _, t := range c.items {
		if strings.Contains(t.Name, sub) {
			out = append(out, t)
		}
	}
	return out
}

func (c *Catalog) Add(t model.FoodTemplate) {
	t.Name = model.TruncateName(t.Name)
	t.Grams = 0
	c.items = append(c.items, t)
	c.sort()
}

// Remove deletes every template named exactly name and returns how many
// were removed.
func (c *Catalog) Remove(name string) int {
	before := len(c.items)
	c.items = slices.DeleteFunc(c.items, func(t model.FoodTemplate) bool {
		return t.Name == name
	})
	return before - len(c.items)
}

func (c *Catalog) sort() {
	slices.SortStableFunc(c.items, func(a, b model.FoodTemplate) int {
		return strings.Compare(a.Name, b.Name)
	})
}

// Scale converts a per-100 g template into an entry for grams. Each
// nutrient is truncated toward zero.
func Scale(t model.FoodTemplate, grams int) model.FoodEntry {
	return model.FoodEntry{
		Name:     model.TruncateName(t.Name),
		Calories: t.Calories * grams / 100,
		Carbs:    t.Carbs * grams / 100,
		Protein:  t.Protein * grams / 100,
		Fat:      t.Fat * grams / 100,
		Grams:    grams,
	}
}
