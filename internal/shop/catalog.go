// Package shop provides the read-only catalog of cosmetic items the pet
// can wear. The catalog comes from configuration; the engine only reads it.
package shop

import (
	"errors"
	"fmt"
)

// ErrUnknownItem is returned when a base id is not in the catalog.
var ErrUnknownItem = errors.New("shop: unknown item")

// Item is a catalog entry. ID is the base id shared by every inventory
// entry bought from it.
type Item struct {
	ID    string `yaml:"id"`
	Name  string `yaml:"name"`
	Price int    `yaml:"price"`
}

// Catalog is an ordered, immutable list of items indexed by base id.
type Catalog struct {
	items []Item
	byID  map[string]int
}

// NewCatalog validates items and builds a catalog preserving their order.
func NewCatalog(items []Item) (*Catalog, error) {
	c := &Catalog{
		items: make([]Item, 0, len(items)),
		byID:  make(map[string]int, len(items)),
	}

	for _, it := range items {
		if it.ID == "" {
			return nil, fmt.Errorf("shop: item %q has empty id", it.Name)
		}
		if it.Price <= 0 {
			return nil, fmt.Errorf("shop: item %q has non-positive price %d", it.ID, it.Price)
		}
		if _, exists := c.byID[it.ID]; exists {
			return nil, fmt.Errorf("shop: item %q listed twice", it.ID)
		}
		if it.Name == "" {
			it.Name = it.ID
		}
		c.byID[it.ID] = len(c.items)
		c.items = append(c.items, it)
	}

	return c, nil
}

// List returns a copy of the catalog in configured order.
func (c *Catalog) List() []Item {
	out := make([]Item, len(c.items))
	copy(out, c.items)
	return out
}

// Get looks up an item by base id.
func (c *Catalog) Get(id string) (Item, error) {
	i, ok := c.byID[id]
	if !ok {
		return Item{}, fmt.Errorf("%w %q", ErrUnknownItem, id)
	}
	return c.items[i], nil
}

// Exists checks if an item with the given base id is listed.
func (c *Catalog) Exists(id string) bool {
	_, ok := c.byID[id]
	return ok
}

// Len returns the number of listed items.
func (c *Catalog) Len() int {
	return len(c.items)
}
