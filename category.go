package idscrape

import "slices"

// CategoryGroup is one category and the identifiers listed under it,
// as they appear in a category file.
type CategoryGroup struct {
	Name string
	IDs  []string
}

// CategoryTable maps element identifiers to the category that groups them.
// It is immutable once built.
type CategoryTable struct {
	ids        []string
	byID       map[string]string
	categories []string
}

// NewCategoryTable flattens groups into an identifier → category table.
// Identifiers keep the position of their first appearance; an identifier
// listed under several categories belongs to the last one.
func NewCategoryTable(groups []CategoryGroup) *CategoryTable {
	t := &CategoryTable{byID: make(map[string]string)}
	for _, g := range groups {
		if !slices.Contains(t.categories, g.Name) {
			t.categories = append(t.categories, g.Name)
		}
		for _, id := range g.IDs {
			if _, ok := t.byID[id]; !ok {
				t.ids = append(t.ids, id)
			}
			t.byID[id] = g.Name
		}
	}
	return t
}

// IDs returns every identifier in the table, in file order.
func (t *CategoryTable) IDs() []string {
	return slices.Clone(t.ids)
}

// Len returns the number of identifiers in the table.
func (t *CategoryTable) Len() int {
	return len(t.ids)
}

// Category returns the category of id.
func (t *CategoryTable) Category(id string) (string, bool) {
	c, ok := t.byID[id]
	return c, ok
}

// Categories returns the category names in file order.
func (t *CategoryTable) Categories() []string {
	return slices.Clone(t.categories)
}

// IDsFor returns the identifiers that belong to category, in table order.
func (t *CategoryTable) IDsFor(category string) []string {
	var ids []string
	for _, id := range t.ids {
		if t.byID[id] == category {
			ids = append(ids, id)
		}
	}
	return ids
}

// LabeledValue is an extracted value together with its category.
type LabeledValue struct {
	ID       string `json:"id"`
	Category string `json:"category"`
	Text     string `json:"text"`
}

// Label pairs every value of r with its category. Identifiers that are not
// in the table get an empty category.
func (t *CategoryTable) Label(r *Result) []LabeledValue {
	values := make([]LabeledValue, 0, r.Len())
	for id, text := range r.All() {
		values = append(values, LabeledValue{
			ID:       id,
			Category: t.byID[id],
			Text:     text,
		})
	}
	return values
}

// CategoryLoader loads category tables from configuration files.
type CategoryLoader interface {
	// LoadCategories reads the file at path and flattens it.
	// Returns ECONFIG if the file is missing, unreadable or malformed.
	LoadCategories(path string) (*CategoryTable, error)
}
