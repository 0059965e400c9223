// Package menu loads the read-only drink catalog and answers item and price
// lookups for the rest of the shop.
package menu

import (
	"encoding/json"
	"fmt"
	"os"

	"chalis/internal/models"
)

// Catalog is the menu document, loaded once at startup and never written.
type Catalog struct {
	Menu map[models.MenuCategory][]models.MenuEntry `json:"menu"`

	raw []byte
}

// PriceInfo is the price lookup result for one menu item
type PriceInfo struct {
	Category    models.MenuCategory
	Prices      map[models.Size]float64
	Recommended bool
	Special     bool
}

// Load reads the catalog from a JSON file
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read menu: %w", err)
	}
	var c Catalog
	if err := json.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("parse menu: %w", err)
	}
	c.raw = data
	return &c, nil
}

// Has reports whether an item with that name appears in any category
func (c *Catalog) Has(name string) bool {
	_, ok := c.Lookup(name)
	return ok
}

// Lookup scans the categories in fixed order and returns the first item with
// a matching name.
func (c *Catalog) Lookup(name string) (*PriceInfo, bool) {
	for _, category := range models.MenuCategories() {
		for _, entry := range c.Menu[category] {
			if entry.Name == name {
				return &PriceInfo{
					Category:    category,
					Prices:      entry.Prices,
					Recommended: entry.Recommended,
					Special:     entry.Special,
				}, true
			}
		}
	}
	return nil, false
}

// UnitPrice returns the item's price at the given size. Unknown items and
// unknown sizes price at zero; the zero fallback is deliberate and callers
// relying on a hard failure must check Has first.
func (c *Catalog) UnitPrice(name string, size models.Size) float64 {
	info, ok := c.Lookup(name)
	if !ok {
		return 0
	}
	return info.Prices[size]
}

// JSON returns the catalog document as loaded, for embedding in the system
// prompt.
func (c *Catalog) JSON() string {
	return string(c.raw)
}
