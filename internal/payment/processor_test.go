package payment

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"chalis/internal/menu"
	"chalis/internal/models"
	"chalis/internal/store"
)

func testCatalog() *menu.Catalog {
	return &menu.Catalog{Menu: map[models.MenuCategory][]models.MenuEntry{
		models.CategoryMilkTea: {
			{Name: "珍珠奶茶", Prices: map[models.Size]float64{models.SizeMedium: 55, models.SizeLarge: 65}},
		},
	}}
}

func testOrder() *models.Order {
	return &models.Order{
		ID:       "2025-06-01T10:00:00.000Z",
		Item:     "珍珠奶茶",
		Size:     models.SizeMedium,
		Quantity: 2,
		Ice:      models.IceRegular,
		Sugar:    models.SugarHalf,
		Status:   models.OrderStatusComplete,
	}
}

func newTestProcessor(t *testing.T, strict bool) (*Processor, *store.Collection[models.PaymentRecord]) {
	t.Helper()
	payments := store.NewCollection[models.PaymentRecord](filepath.Join(t.TempDir(), "payments.json"))
	return NewProcessor(payments, testCatalog(), strict), payments
}

func TestProcessValidPayment(t *testing.T) {
	p, payments := newTestProcessor(t, false)

	res, err := p.Process(testOrder(), models.MethodCash, 110)
	require.NoError(t, err)

	assert.True(t, res.Success)
	require.NotNil(t, res.Record)
	assert.Equal(t, "2025-06-01T10:00:00.000Z", res.Record.OrderID)
	assert.Equal(t, models.MethodCash, res.Record.Method)
	assert.Equal(t, 110.0, res.Record.Amount)
	assert.Equal(t, models.PaymentCompleted, res.Record.Status)
	assert.Equal(t, "珍珠奶茶", res.Record.Order.Item)
	assert.NotEmpty(t, res.Message)

	stored := payments.Load()
	require.Len(t, stored, 1)
	assert.Equal(t, res.Record.OrderID, stored[0].OrderID)
}

func TestProcessInvalidMethod(t *testing.T) {
	p, payments := newTestProcessor(t, false)

	_, err := p.Process(testOrder(), "Apple Pay", 110)
	assert.ErrorIs(t, err, models.ErrInvalidPaymentMethod)
	assert.Empty(t, payments.Load())
}

func TestProcessInvalidAmount(t *testing.T) {
	p, _ := newTestProcessor(t, false)

	for _, amount := range []float64{0, -1, -55} {
		_, err := p.Process(testOrder(), models.MethodLinePay, amount)
		assert.ErrorIs(t, err, models.ErrInvalidAmount, "amount %g", amount)
	}
}

func TestProcessDoesNotCrossCheckAmountByDefault(t *testing.T) {
	p, _ := newTestProcessor(t, false)

	// Quoted total is 110; a diverging amount is accepted silently.
	res, err := p.Process(testOrder(), models.MethodCreditCard, 999)
	require.NoError(t, err)
	assert.Equal(t, 999.0, res.Record.Amount)
}

func TestProcessStrictAmount(t *testing.T) {
	p, payments := newTestProcessor(t, true)

	_, err := p.Process(testOrder(), models.MethodCreditCard, 999)
	assert.ErrorIs(t, err, models.ErrAmountMismatch)
	assert.Empty(t, payments.Load())

	res, err := p.Process(testOrder(), models.MethodCreditCard, 110)
	require.NoError(t, err)
	assert.True(t, res.Success)
}
