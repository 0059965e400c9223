package models

import (
	"time"
)

// Size represents a drink size
type Size string

const (
	SizeMedium Size = "M"
	SizeLarge  Size = "L"
)

// IceLevel represents the ice choice for a drink. The wire values are the
// Chinese strings the shop prints on receipts and feeds to the model prompt.
type IceLevel string

const (
	IceHot     IceLevel = "溫熱飲"
	IceFree    IceLevel = "去冰"
	IceLight   IceLevel = "微冰"
	IceLess    IceLevel = "少冰"
	IceRegular IceLevel = "正常冰"
)

// SugarLevel represents the sweetness choice for a drink
type SugarLevel string

const (
	SugarFree  SugarLevel = "無糖"
	SugarLight SugarLevel = "微糖"
	SugarHalf  SugarLevel = "半糖"
	SugarLess  SugarLevel = "少糖"
	SugarFull  SugarLevel = "全糖"
)

// AddOn represents an optional topping
type AddOn string

const (
	AddOnBoba    AddOn = "波霸"
	AddOnPearl   AddOn = "珍珠"
	AddOnOat     AddOn = "燕麥"
	AddOnCoconut AddOn = "椰果"
)

// OrderStatusComplete is the only status a built order ever carries.
const OrderStatusComplete = "complete"

// Sizes returns the valid drink sizes
func Sizes() []Size {
	return []Size{SizeMedium, SizeLarge}
}

// IceLevels returns the valid ice choices
func IceLevels() []IceLevel {
	return []IceLevel{IceHot, IceFree, IceLight, IceLess, IceRegular}
}

// SugarLevels returns the valid sweetness choices
func SugarLevels() []SugarLevel {
	return []SugarLevel{SugarFree, SugarLight, SugarHalf, SugarLess, SugarFull}
}

// AddOns returns the valid toppings
func AddOns() []AddOn {
	return []AddOn{AddOnBoba, AddOnPearl, AddOnOat, AddOnCoconut}
}

// Valid reports whether the size is one of the enumerated sizes
func (s Size) Valid() bool {
	for _, v := range Sizes() {
		if s == v {
			return true
		}
	}
	return false
}

// Valid reports whether the ice level is one of the enumerated choices
func (i IceLevel) Valid() bool {
	for _, v := range IceLevels() {
		if i == v {
			return true
		}
	}
	return false
}

// Valid reports whether the sugar level is one of the enumerated choices
func (s SugarLevel) Valid() bool {
	for _, v := range SugarLevels() {
		if s == v {
			return true
		}
	}
	return false
}

// Order is a validated customer request for one drink configuration.
// Orders are immutable once built; the creation timestamp doubles as the
// identifier shared with the payment and production records.
type Order struct {
	ID        string     `json:"id"`
	Item      string     `json:"item"`
	Size      Size       `json:"size"`
	Quantity  int        `json:"quantity"`
	Ice       IceLevel   `json:"ice"`
	Sugar     SugarLevel `json:"sugar"`
	AddOn     *AddOn     `json:"addOn"`
	Status    string     `json:"status"`
	CreatedAt time.Time  `json:"createdAt"`
}
