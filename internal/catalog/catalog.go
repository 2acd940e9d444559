// Package catalog holds the establishment's static menu.
package catalog

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

var (
	// ErrDuplicateItem is returned when two items share a name.
	ErrDuplicateItem = errors.New("duplicate menu item name")
	// ErrDuplicateCategory is returned when two categories share an id.
	ErrDuplicateCategory = errors.New("duplicate category id")
	// ErrEmptyCategory is returned for a category without items.
	ErrEmptyCategory = errors.New("category has no items")
	// ErrNegativePrice is returned for an item priced below zero.
	ErrNegativePrice = errors.New("menu item price is negative")
	// ErrEmptyCatalog is returned when no categories are given.
	ErrEmptyCatalog = errors.New("catalog has no categories")
)

// MenuItem is a sellable item. Names are unique within a catalog.
type MenuItem struct {
	Name  string          `json:"name"`
	Price decimal.Decimal `json:"price"`
}

// Category groups menu items under a tab.
type Category struct {
	ID    string     `json:"id"`
	Title string     `json:"title"`
	Items []MenuItem `json:"items"`
}

// Catalog is an immutable, ordered list of categories.
type Catalog struct {
	categories []Category
	items      map[string]MenuItem
	index      map[string]int
}

// New validates the categories and builds a Catalog.
func New(categories []Category) (*Catalog, error) {
	if len(categories) == 0 {
		return nil, ErrEmptyCatalog
	}

	c := &Catalog{
		categories: make([]Category, 0, len(categories)),
		items:      make(map[string]MenuItem),
		index:      make(map[string]int, len(categories)),
	}

	for _, cat := range categories {
		if _, ok := c.index[cat.ID]; ok {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateCategory, cat.ID)
		}
		if len(cat.Items) == 0 {
			return nil, fmt.Errorf("%w: %s", ErrEmptyCategory, cat.ID)
		}

		items := make([]MenuItem, len(cat.Items))
		for i, item := range cat.Items {
			if _, ok := c.items[item.Name]; ok {
				return nil, fmt.Errorf("%w: %s", ErrDuplicateItem, item.Name)
			}
			if item.Price.IsNegative() {
				return nil, fmt.Errorf("%w: %s", ErrNegativePrice, item.Name)
			}
			c.items[item.Name] = item
			items[i] = item
		}

		c.index[cat.ID] = len(c.categories)
		c.categories = append(c.categories, Category{ID: cat.ID, Title: cat.Title, Items: items})
	}

	return c, nil
}

// MustNew is New that panics on error. Meant for package-level menus.
func MustNew(categories []Category) *Catalog {
	c, err := New(categories)
	if err != nil {
		panic(err)
	}
	return c
}

// Categories returns the categories in display order.
func (c *Catalog) Categories() []Category {
	out := make([]Category, len(c.categories))
	copy(out, c.categories)
	return out
}

// Category returns the category with the given id.
func (c *Catalog) Category(id string) (Category, bool) {
	i, ok := c.index[id]
	if !ok {
		return Category{}, false
	}
	return c.categories[i], true
}

// CategoryOrFirst returns the category with the given id, or the first one.
func (c *Catalog) CategoryOrFirst(id string) Category {
	if cat, ok := c.Category(id); ok {
		return cat
	}
	return c.categories[0]
}

// First returns the first category.
func (c *Catalog) First() Category {
	return c.categories[0]
}

// Item looks up a menu item by name.
func (c *Catalog) Item(name string) (MenuItem, bool) {
	item, ok := c.items[name]
	return item, ok
}
