package order

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
		models.CategoryTea: {
			{Name: "阿薩姆紅茶", Prices: map[models.Size]float64{models.SizeMedium: 35, models.SizeLarge: 45}},
		},
		models.CategoryMilkTea: {
			{Name: "珍珠奶茶", Prices: map[models.Size]float64{models.SizeMedium: 55, models.SizeLarge: 65}},
		},
	}}
}

func newTestBuilder(t *testing.T) (*Builder, *store.Collection[models.Order]) {
	t.Helper()
	orders := store.NewCollection[models.Order](filepath.Join(t.TempDir(), "orders.json"))
	return NewBuilder(testCatalog(), orders), orders
}

func TestBuildValidOrder(t *testing.T) {
	b, orders := newTestBuilder(t)

	addOn := models.AddOnPearl
	o, err := b.Build("珍珠奶茶", models.SizeLarge, 2, models.IceRegular, models.SugarHalf, &addOn)
	require.NoError(t, err)

	assert.Equal(t, "珍珠奶茶", o.Item)
	assert.Equal(t, models.SizeLarge, o.Size)
	assert.Equal(t, 2, o.Quantity)
	assert.Equal(t, models.IceRegular, o.Ice)
	assert.Equal(t, models.SugarHalf, o.Sugar)
	require.NotNil(t, o.AddOn)
	assert.Equal(t, models.AddOnPearl, *o.AddOn)
	assert.Equal(t, models.OrderStatusComplete, o.Status)
	assert.NotEmpty(t, o.ID)

	stored := orders.Load()
	require.Len(t, stored, 1)
	assert.Equal(t, o.ID, stored[0].ID)
}

func TestBuildNilAddOn(t *testing.T) {
	b, _ := newTestBuilder(t)

	o, err := b.Build("阿薩姆紅茶", models.SizeMedium, 1, models.IceHot, models.SugarFree, nil)
	require.NoError(t, err)
	assert.Nil(t, o.AddOn)
}

func TestBuildUnknownItem(t *testing.T) {
	b, orders := newTestBuilder(t)

	_, err := b.Build("美式咖啡", models.SizeMedium, 1, models.IceRegular, models.SugarFull, nil)
	assert.ErrorIs(t, err, models.ErrUnknownItem)
	assert.Empty(t, orders.Load())
}

func TestBuildInvalidSize(t *testing.T) {
	b, _ := newTestBuilder(t)

	_, err := b.Build("珍珠奶茶", "XL", 1, models.IceRegular, models.SugarFull, nil)
	assert.ErrorIs(t, err, models.ErrInvalidSize)
}

func TestBuildInvalidQuantity(t *testing.T) {
	b, _ := newTestBuilder(t)

	for _, quantity := range []int{0, -1, -10} {
		_, err := b.Build("珍珠奶茶", models.SizeMedium, quantity, models.IceRegular, models.SugarFull, nil)
		assert.ErrorIs(t, err, models.ErrInvalidQuantity, "quantity %d", quantity)
	}

	// The quantity error wins even when later fields are also bad.
	_, err := b.Build("珍珠奶茶", models.SizeMedium, 0, "碎冰", "爆糖", nil)
	assert.ErrorIs(t, err, models.ErrInvalidQuantity)
}

func TestBuildInvalidIce(t *testing.T) {
	b, _ := newTestBuilder(t)

	_, err := b.Build("珍珠奶茶", models.SizeMedium, 1, "碎冰", models.SugarFull, nil)
	assert.ErrorIs(t, err, models.ErrInvalidIceLevel)
}

func TestBuildInvalidSugar(t *testing.T) {
	b, _ := newTestBuilder(t)

	_, err := b.Build("珍珠奶茶", models.SizeMedium, 1, models.IceRegular, "爆糖", nil)
	assert.ErrorIs(t, err, models.ErrInvalidSugarLevel)
}

func TestBuildAppendsToExistingOrders(t *testing.T) {
	b, orders := newTestBuilder(t)

	_, err := b.Build("珍珠奶茶", models.SizeMedium, 1, models.IceRegular, models.SugarFull, nil)
	require.NoError(t, err)
	_, err = b.Build("阿薩姆紅茶", models.SizeLarge, 3, models.IceLess, models.SugarLight, nil)
	require.NoError(t, err)

	stored := orders.Load()
	require.Len(t, stored, 2)
	assert.Equal(t, "珍珠奶茶", stored[0].Item)
	assert.Equal(t, "阿薩姆紅茶", stored[1].Item)
}
