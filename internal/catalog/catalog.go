package catalog

import (
	"github.com/jonathan/marketpulse/internal/slug"
	"github.com/jonathan/marketpulse/internal/types"
)

// Catalog is the in-memory collection of content records for one generation
// run. It is built once by the upstream ingestion step and read concurrently
// by page workers; no mutation happens after New returns.
type Catalog struct {
	items  []types.Item
	byID   map[string]*types.Item
	byType map[types.ItemType][]types.Item
}

// New builds a catalog from items, validating each record and rejecting
// duplicate IDs. Items with an empty slug get one derived from their title.
func New(items []types.Item) (*Catalog, error) {
	c := &Catalog{
		items:  make([]types.Item, 0, len(items)),
		byID:   make(map[string]*types.Item, len(items)),
		byType: make(map[types.ItemType][]types.Item),
	}

	seen := make(map[string]struct{}, len(items))
	for i, item := range items {
		if err := item.Validate(); err != nil {
			return nil, &InvalidItemError{Index: i, ID: item.ID, Cause: err}
		}
		if _, exists := seen[item.ID]; exists {
			return nil, &DuplicateIDError{ID: item.ID}
		}
		seen[item.ID] = struct{}{}
		if item.Slug == "" {
			item.Slug = slug.Generate(item.Title)
		}
		c.items = append(c.items, item)
	}

	// Index after the slice is final so pointers stay stable.
	for i := range c.items {
		item := &c.items[i]
		c.byID[item.ID] = item
		c.byType[item.Type] = append(c.byType[item.Type], *item)
	}

	return c, nil
}

// Len returns the number of items in the catalog.
func (c *Catalog) Len() int {
	return len(c.items)
}

// Items returns all items in load order.
func (c *Catalog) Items() []types.Item {
	return c.items
}

// Get returns the item with the given ID, or nil if absent.
func (c *Catalog) Get(id string) *types.Item {
	return c.byID[id]
}

// ItemsOfType returns all items of the given type in load order. The slice is
// a lookup index only; relevance ordering is decided downstream.
func (c *Catalog) ItemsOfType(t types.ItemType) []types.Item {
	return c.byType[t]
}
