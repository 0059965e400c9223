// Package production turns paid orders into kitchen work items and manages
// the production queue.
package production

import (
	"fmt"
	"math"
	"strings"
	"time"

	"chalis/internal/models"
	"chalis/internal/store"
)

// Scheduler owns the production queue
type Scheduler struct {
	queue *store.Collection[models.ProductionOrder]
}

// Result is the transfer outcome handed back to the tool caller
type Result struct {
	Success bool                    `json:"success"`
	Order   *models.ProductionOrder `json:"productionOrder,omitempty"`
	Message string                  `json:"message"`
}

// NewScheduler creates a production scheduler
func NewScheduler(queue *store.Collection[models.ProductionOrder]) *Scheduler {
	return &Scheduler{queue: queue}
}

// EstimateMinutes returns the estimated preparation time for an order.
// Base 3 minutes, plus 1.5 per cup beyond the first, plus 0.5 for a topping,
// plus 1 for a hot drink, rounded up to a whole minute. Kitchen displays
// depend on these exact numbers.
func EstimateMinutes(o *models.Order) int {
	base := 3.0
	if o.Quantity > 1 {
		base += float64(o.Quantity-1) * 1.5
	}
	if o.AddOn != nil {
		base += 0.5
	}
	if o.Ice == models.IceHot {
		base += 1
	}
	return int(math.Ceil(base))
}

// Notes builds the advisory note line for the kitchen, pipe-joined in a fixed
// order. Empty when nothing applies.
func Notes(o *models.Order) string {
	var notes []string
	if o.Ice == models.IceHot {
		notes = append(notes, "⚠️ 溫熱飲，請注意溫度")
	}
	if o.Sugar == models.SugarFree {
		notes = append(notes, "🍃 無糖飲品")
	}
	if o.AddOn != nil {
		notes = append(notes, fmt.Sprintf("➕ 添加：%s", *o.AddOn))
	}
	if o.Quantity > 3 {
		notes = append(notes, fmt.Sprintf("📦 大量訂單：%d 杯", o.Quantity))
	}
	return strings.Join(notes, " | ")
}

// Transfer converts a paid order into a pending production order and appends
// it to the queue.
func (s *Scheduler) Transfer(o *models.Order, pr *models.PaymentRecord) (*Result, error) {
	if o == nil || pr == nil {
		return nil, models.ErrMissingOrderContext
	}

	po := models.ProductionOrder{
		OrderID:   o.ID,
		CreatedAt: time.Now().UTC(),
		Status:    models.ProductionPending,
		Priority:  models.PriorityNormal,
		Items: models.ItemDetails{
			Item:     o.Item,
			Size:     o.Size,
			Quantity: o.Quantity,
			Ice:      o.Ice,
			Sugar:    o.Sugar,
			AddOn:    o.AddOn,
		},
		Payment: models.PaymentSummary{
			Method: pr.Method,
			Amount: pr.Amount,
			Status: pr.Status,
		},
		EstimatedMinutes: EstimateMinutes(o),
		Notes:            Notes(o),
	}

	if err := s.queue.Append(po); err != nil {
		return nil, err
	}

	return &Result{
		Success: true,
		Order:   &po,
		Message: "訂單已成功轉給製作部門！",
	}, nil
}

// UpdateStatus moves the production order with the given id to a new status
// and stamps LastUpdated. Any status may follow any other, including itself;
// the desk is trusted to know what it is doing. The queue file is untouched
// when the update fails.
func (s *Scheduler) UpdateStatus(orderID string, status models.ProductionStatus) error {
	if !status.Valid() {
		return fmt.Errorf("%w: %q", models.ErrInvalidStatus, status)
	}

	orders := s.queue.Load()
	for i := range orders {
		if orders[i].OrderID == orderID {
			now := time.Now().UTC()
			orders[i].Status = status
			orders[i].LastUpdated = &now
			return s.queue.Save(orders)
		}
	}
	return fmt.Errorf("%w: %s", models.ErrUnknownOrder, orderID)
}

// List returns the whole queue in insertion order
func (s *Scheduler) List() []models.ProductionOrder {
	return s.queue.Load()
}

// Get returns the production order with the given id
func (s *Scheduler) Get(orderID string) (*models.ProductionOrder, bool) {
	for _, po := range s.queue.Load() {
		if po.OrderID == orderID {
			return &po, true
		}
	}
	return nil, false
}

// Stats summarizes the queue by status
type Stats struct {
	Total      int `json:"total"`
	Pending    int `json:"pending"`
	InProgress int `json:"inProgress"`
	Completed  int `json:"completed"`
	Cancelled  int `json:"cancelled"`

	// CompletionRate is completed over total, in percent. Zero for an
	// empty queue.
	CompletionRate float64 `json:"completionRate"`
}

// QueueStats tallies the production queue
func (s *Scheduler) QueueStats() Stats {
	var st Stats
	for _, po := range s.queue.Load() {
		st.Total++
		switch po.Status {
		case models.ProductionPending:
			st.Pending++
		case models.ProductionInProgress:
			st.InProgress++
		case models.ProductionCompleted:
			st.Completed++
		case models.ProductionCancelled:
			st.Cancelled++
		}
	}
	if st.Total > 0 {
		st.CompletionRate = float64(st.Completed) / float64(st.Total) * 100
	}
	return st
}
