package models

// ToppingGroup is a category of toppings offered by one or more
// products. A mandatory group must have at least one selection before
// the item can be confirmed.
type ToppingGroup struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Name      string    `gorm:"not null" json:"name"`
	Mandatory bool      `gorm:"default:false" json:"mandatory"`
	Toppings  []Topping `gorm:"foreignKey:GroupID;constraint:OnDelete:CASCADE" json:"toppings"`
}

type Topping struct {
	ID      uint    `gorm:"primaryKey;autoIncrement" json:"id"`
	GroupID uint    `gorm:"index" json:"group_id"`
	Name    string  `gorm:"not null" json:"name"`
	Price   float64 `json:"price"`
}

// Affix is a qualifier prefix for a selected topping ("No", "Extra").
// Its multiplier scales the topping price: "No" is 0, "Extra" above 1.
type Affix struct {
	ID         uint    `gorm:"primaryKey;autoIncrement" json:"id"`
	Name       string  `gorm:"unique;not null" json:"name"`
	Multiplier float64 `gorm:"not null;default:1" json:"multiplier"`
}
