// Package pricing computes order totals from the catalog.
package pricing

import (
	"chalis/internal/menu"
	"chalis/internal/models"
)

// Quote is the part of an order pricing needs. A full models.Order satisfies
// it via its fields; the calculate_total tool builds one without the rest of
// the order.
type Quote struct {
	Item     string
	Size     models.Size
	Quantity int
}

// Total returns the unit price of the item at the requested size multiplied
// by the quantity. An item missing from the catalog prices at zero rather
// than failing; callers that want a hard error must check the catalog first.
func Total(q Quote, catalog *menu.Catalog) float64 {
	return catalog.UnitPrice(q.Item, q.Size) * float64(q.Quantity)
}

// TotalForOrder prices a built order
func TotalForOrder(o *models.Order, catalog *menu.Catalog) float64 {
	return Total(Quote{Item: o.Item, Size: o.Size, Quantity: o.Quantity}, catalog)
}
