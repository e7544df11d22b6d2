package core

import (
	"errors"
	"fmt"
	"slices"

	"github.com/samber/lo"
)

// ErrItemNotFound is returned by Catalog.Lookup for unknown ids. Views render
// a fallback screen for it instead of failing.
var ErrItemNotFound = errors.New("item not found")

// Catalog is a read-only, ordered collection of items.
type Catalog struct {
	items []Item
	index map[ItemID]int
}

// NewCatalog validates items and builds a catalog. Item order is preserved.
func NewCatalog(items []Item) (*Catalog, error) {
	var errs []error
	for _, it := range items {
		if err := ValidateItem(it); err != nil {
			errs = append(errs, err)
		}
	}
	for _, d := range lo.FindDuplicatesBy(items, func(it Item) ItemID { return it.ID }) {
		errs = append(errs, fmt.Errorf("duplicate item id %q", d.ID))
	}
	if err := errors.Join(errs...); err != nil {
		return nil, err
	}

	c := &Catalog{
		items: make([]Item, len(items)),
		index: make(map[ItemID]int, len(items)),
	}
	for i, it := range items {
		it.Layers = slices.Clone(it.Layers)
		c.items[i] = it
		c.index[it.ID] = i
	}
	return c, nil
}

// Len reports the number of items.
func (c *Catalog) Len() int {
	if c == nil {
		return 0
	}
	return len(c.items)
}

// Items returns a copy of the items in catalog order.
func (c *Catalog) Items() []Item {
	if c == nil {
		return nil
	}
	return lo.Map(c.items, func(it Item, _ int) Item {
		it.Layers = slices.Clone(it.Layers)
		return it
	})
}

// At returns the item at position i.
func (c *Catalog) At(i int) (Item, bool) {
	if c == nil || i < 0 || i >= len(c.items) {
		return Item{}, false
	}
	it := c.items[i]
	it.Layers = slices.Clone(it.Layers)
	return it, true
}

// Lookup finds an item by id.
func (c *Catalog) Lookup(id ItemID) (Item, error) {
	if c != nil {
		if it, ok := c.At(c.IndexOf(id)); ok {
			return it, nil
		}
	}
	return Item{}, fmt.Errorf("%w: %q", ErrItemNotFound, id)
}

// IndexOf returns the position of id, or -1.
func (c *Catalog) IndexOf(id ItemID) int {
	if c == nil {
		return -1
	}
	if i, ok := c.index[id]; ok {
		return i
	}
	return -1
}
