package models

// MenuCategory represents a section of the drink menu
type MenuCategory string

const (
	CategoryTea           MenuCategory = "tea"
	CategoryMilkTea       MenuCategory = "milk_tea"
	CategoryTeaLatte      MenuCategory = "tea_latte"
	CategoryFreshJuice    MenuCategory = "fresh_juice"
	CategorySeasonSpecial MenuCategory = "season_special"
)

// MenuCategories returns the menu categories in lookup order. Pricing scans
// categories in exactly this order and takes the first name match.
func MenuCategories() []MenuCategory {
	return []MenuCategory{CategoryTea, CategoryMilkTea, CategoryTeaLatte, CategoryFreshJuice, CategorySeasonSpecial}
}

// MenuEntry is one drink on the menu with its per-size prices
type MenuEntry struct {
	Name        string           `json:"name"`
	Prices      map[Size]float64 `json:"prices"`
	Recommended bool             `json:"recommended,omitempty"`
	Special     bool             `json:"special,omitempty"`
}
