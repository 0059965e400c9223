// Package payment validates payment requests and records completed payments.
package payment

import (
	"fmt"
	"time"

	"chalis/internal/menu"
	"chalis/internal/models"
	"chalis/internal/pricing"
	"chalis/internal/store"
)

// Processor validates and records payments for built orders
type Processor struct {
	payments *store.Collection[models.PaymentRecord]
	catalog  *menu.Catalog

	// strictAmount rejects payments whose amount differs from the quoted
	// total. Off by default: the shop historically trusted the caller's
	// amount, which leaves room for discounts and overrides.
	strictAmount bool
}

// Result is the payment outcome handed back to the tool caller
type Result struct {
	Success bool                  `json:"success"`
	Record  *models.PaymentRecord `json:"paymentRecord,omitempty"`
	Message string                `json:"message"`
}

// NewProcessor creates a payment processor
func NewProcessor(payments *store.Collection[models.PaymentRecord], catalog *menu.Catalog, strictAmount bool) *Processor {
	return &Processor{payments: payments, catalog: catalog, strictAmount: strictAmount}
}

// Process validates the method and amount, records a completed payment tied
// to the order, and appends it to the store. The record's status is always
// completed; there is no pending or failed path.
func (p *Processor) Process(o *models.Order, method models.PaymentMethod, amount float64) (*Result, error) {
	if !method.Valid() {
		return nil, fmt.Errorf("%w: %q", models.ErrInvalidPaymentMethod, method)
	}
	if amount <= 0 {
		return nil, fmt.Errorf("%w: %g", models.ErrInvalidAmount, amount)
	}
	if p.strictAmount {
		expected := pricing.TotalForOrder(o, p.catalog)
		if amount != expected {
			return nil, fmt.Errorf("%w: got %g, quoted %g", models.ErrAmountMismatch, amount, expected)
		}
	}

	record := models.PaymentRecord{
		OrderID:   o.ID,
		CreatedAt: time.Now().UTC(),
		Method:    method,
		Amount:    amount,
		Status:    models.PaymentCompleted,
		Order:     *o,
	}

	if err := p.payments.Append(record); err != nil {
		return nil, err
	}

	return &Result{
		Success: true,
		Record:  &record,
		Message: fmt.Sprintf("支付成功！使用 %s 支付 %g 元", method, amount),
	}, nil
}
