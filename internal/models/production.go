package models

import (
	"time"
)

// ProductionStatus represents the state of a production order. Transitions
// are deliberately unchecked: the desk may move an order from any status to
// any other, including back to pending.
type ProductionStatus string

const (
	ProductionPending    ProductionStatus = "pending"
	ProductionInProgress ProductionStatus = "in_progress"
	ProductionCompleted  ProductionStatus = "completed"
	ProductionCancelled  ProductionStatus = "cancelled"
)

// ProductionStatuses returns the valid production statuses
func ProductionStatuses() []ProductionStatus {
	return []ProductionStatus{ProductionPending, ProductionInProgress, ProductionCompleted, ProductionCancelled}
}

// Valid reports whether the status is one of the enumerated production statuses
func (s ProductionStatus) Valid() bool {
	for _, v := range ProductionStatuses() {
		if s == v {
			return true
		}
	}
	return false
}

// PriorityNormal is the only priority the queue ever assigns.
const PriorityNormal = "normal"

// ItemDetails is the drink configuration carried on a production order
type ItemDetails struct {
	Item     string     `json:"item"`
	Size     Size       `json:"size"`
	Quantity int        `json:"quantity"`
	Ice      IceLevel   `json:"ice"`
	Sugar    SugarLevel `json:"sugar"`
	AddOn    *AddOn     `json:"addOn"`
}

// PaymentSummary is the payment information carried on a production order
type PaymentSummary struct {
	Method PaymentMethod `json:"method"`
	Amount float64       `json:"amount"`
	Status PaymentStatus `json:"status"`
}

// ProductionOrder is the kitchen-facing work item derived from a paid order.
// It is appended to the queue at creation and updated in place by order id;
// entries are never deleted.
type ProductionOrder struct {
	OrderID          string           `json:"orderId"`
	CreatedAt        time.Time        `json:"createdAt"`
	Status           ProductionStatus `json:"status"`
	Priority         string           `json:"priority"`
	Items            ItemDetails      `json:"itemDetails"`
	Payment          PaymentSummary   `json:"paymentSummary"`
	EstimatedMinutes int              `json:"estimatedMinutes"`
	Notes            string           `json:"notes"`
	LastUpdated      *time.Time       `json:"lastUpdated,omitempty"`
}
