package models

import (
	"time"
)

// PaymentMethod represents an accepted payment method
type PaymentMethod string

const (
	MethodLinePay    PaymentMethod = "Line Pay"
	MethodCash       PaymentMethod = "現金"
	MethodCreditCard PaymentMethod = "信用卡"
	MethodJkoPay     PaymentMethod = "街口支付"
)

// PaymentMethods returns the accepted payment methods
func PaymentMethods() []PaymentMethod {
	return []PaymentMethod{MethodLinePay, MethodCash, MethodCreditCard, MethodJkoPay}
}

// Valid reports whether the method is one of the accepted payment methods
func (m PaymentMethod) Valid() bool {
	for _, v := range PaymentMethods() {
		if m == v {
			return true
		}
	}
	return false
}

// PaymentStatus represents the state of a payment. Only completed is ever
// produced; pending and failed exist for the stored record format.
type PaymentStatus string

const (
	PaymentPending   PaymentStatus = "pending"
	PaymentCompleted PaymentStatus = "completed"
	PaymentFailed    PaymentStatus = "failed"
)

// PaymentRecord is proof of payment tied to exactly one order. The amount is
// whatever the caller supplied; it is not re-checked against the quoted total
// unless strict amount checking is enabled.
type PaymentRecord struct {
	OrderID   string        `json:"orderId"`
	CreatedAt time.Time     `json:"createdAt"`
	Method    PaymentMethod `json:"method"`
	Amount    float64       `json:"amount"`
	Status    PaymentStatus `json:"status"`
	Order     Order         `json:"orderSnapshot"`
}
