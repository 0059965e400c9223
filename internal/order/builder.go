// Package order validates raw order fields and turns them into persisted
// order records.
package order

import (
	"fmt"
	"time"

	"chalis/internal/menu"
	"chalis/internal/models"
	"chalis/internal/store"
)

// timestampLayout matches the millisecond ISO form the shop has always used
// for order ids, so old and new collection files stay interchangeable.
const timestampLayout = "2006-01-02T15:04:05.000Z07:00"

// Builder validates and persists orders against the catalog
type Builder struct {
	catalog *menu.Catalog
	orders  *store.Collection[models.Order]
}

// NewBuilder creates an order builder
func NewBuilder(catalog *menu.Catalog, orders *store.Collection[models.Order]) *Builder {
	return &Builder{catalog: catalog, orders: orders}
}

// Build validates the raw order fields, stamps the creation time as the order
// id, and appends the order to the store. The order is immutable afterwards.
// There is no rollback: if the append fails the order is considered not
// placed, even though validation passed.
//
// addOn is not validated against the topping set; the tool schema shown to
// the model is the only place that constrains it.
func (b *Builder) Build(item string, size models.Size, quantity int, ice models.IceLevel, sugar models.SugarLevel, addOn *models.AddOn) (*models.Order, error) {
	if !b.catalog.Has(item) {
		return nil, fmt.Errorf("%w: %q", models.ErrUnknownItem, item)
	}
	if !size.Valid() {
		return nil, fmt.Errorf("%w: %q", models.ErrInvalidSize, size)
	}
	if quantity <= 0 {
		return nil, fmt.Errorf("%w: %d", models.ErrInvalidQuantity, quantity)
	}
	if !ice.Valid() {
		return nil, fmt.Errorf("%w: %q", models.ErrInvalidIceLevel, ice)
	}
	if !sugar.Valid() {
		return nil, fmt.Errorf("%w: %q", models.ErrInvalidSugarLevel, sugar)
	}

	now := time.Now().UTC()
	o := models.Order{
		ID:        now.Format(timestampLayout),
		Item:      item,
		Size:      size,
		Quantity:  quantity,
		Ice:       ice,
		Sugar:     sugar,
		AddOn:     addOn,
		Status:    models.OrderStatusComplete,
		CreatedAt: now,
	}

	if err := b.orders.Append(o); err != nil {
		return nil, err
	}
	return &o, nil
}
