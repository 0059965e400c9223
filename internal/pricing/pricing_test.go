package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"chalis/internal/menu"
	"chalis/internal/models"
)

func testCatalog() *menu.Catalog {
	return &menu.Catalog{Menu: map[models.MenuCategory][]models.MenuEntry{
		models.CategoryTea: {
			{Name: "阿薩姆紅茶", Prices: map[models.Size]float64{models.SizeMedium: 35, models.SizeLarge: 45}},
		},
		models.CategoryMilkTea: {
			{Name: "珍珠奶茶", Prices: map[models.Size]float64{models.SizeMedium: 55, models.SizeLarge: 65}},
		},
	}}
}

func TestTotal(t *testing.T) {
	catalog := testCatalog()

	tests := []struct {
		name string
		q    Quote
		want float64
	}{
		{"assam M x2", Quote{Item: "阿薩姆紅茶", Size: models.SizeMedium, Quantity: 2}, 70},
		{"assam L x1", Quote{Item: "阿薩姆紅茶", Size: models.SizeLarge, Quantity: 1}, 45},
		{"pearl milk tea L x3", Quote{Item: "珍珠奶茶", Size: models.SizeLarge, Quantity: 3}, 195},
		{"unknown item is zero", Quote{Item: "美式咖啡", Size: models.SizeMedium, Quantity: 4}, 0},
		{"unknown size is zero", Quote{Item: "阿薩姆紅茶", Size: "XL", Quantity: 2}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Total(tt.q, catalog))
		})
	}
}

func TestTotalIsDeterministic(t *testing.T) {
	catalog := testCatalog()
	q := Quote{Item: "珍珠奶茶", Size: models.SizeMedium, Quantity: 7}

	first := Total(q, catalog)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, Total(q, catalog))
	}
}

func TestTotalForOrder(t *testing.T) {
	o := &models.Order{Item: "阿薩姆紅茶", Size: models.SizeMedium, Quantity: 2}
	assert.Equal(t, 70.0, TotalForOrder(o, testCatalog()))
}
