package agents

import (
	"chalis/internal/models"
)

// Session holds the in-flight order state for one conversation. It replaces
// the process-wide variables the shop used to keep between turns: each
// conversation owns exactly one Session, and it is reset once the order has
// gone all the way to the production queue.
type Session struct {
	Order      *models.Order
	Payment    *models.PaymentRecord
	Production *models.ProductionOrder
}

// NewSession creates an empty session
func NewSession() *Session {
	return &Session{}
}

// Completed reports whether the full life-cycle has run: order built,
// payment recorded, production order queued.
func (s *Session) Completed() bool {
	return s.Order != nil && s.Payment != nil && s.Production != nil
}

// Reset clears the session for the next order
func (s *Session) Reset() {
	s.Order = nil
	s.Payment = nil
	s.Production = nil
}
