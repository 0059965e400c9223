// Package shop wires the catalog, stores, and life-cycle services together.
package shop

import (
	"chalis/internal/config"
	"chalis/internal/menu"
	"chalis/internal/models"
	"chalis/internal/order"
	"chalis/internal/payment"
	"chalis/internal/production"
	"chalis/internal/store"
)

// Shop bundles every service an order passes through on its way from chat
// turn to production queue.
type Shop struct {
	Catalog    *menu.Catalog
	Orders     *order.Builder
	Payments   *payment.Processor
	Production *production.Scheduler
}

// New loads the catalog and opens the record collections per the config
func New(cfg *config.Config) (*Shop, error) {
	catalog, err := menu.Load(cfg.MenuPath)
	if err != nil {
		return nil, err
	}

	orders := store.NewCollection[models.Order](cfg.OrdersPath())
	payments := store.NewCollection[models.PaymentRecord](cfg.PaymentsPath())
	queue := store.NewCollection[models.ProductionOrder](cfg.ProductionPath())

	return &Shop{
		Catalog:    catalog,
		Orders:     order.NewBuilder(catalog, orders),
		Payments:   payment.NewProcessor(payments, catalog, cfg.Payment.StrictAmount),
		Production: production.NewScheduler(queue),
	}, nil
}
