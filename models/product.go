package models

import (
	"time"

	"gorm.io/gorm"
)

type Product struct {
	ID                   uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Name                 string    `gorm:"not null" json:"name"`
	BasePrice            float64   `gorm:"not null" json:"base_price"`
	Taxed                bool      `gorm:"default:true" json:"taxed"`
	TaxGroupID           *uint     `json:"tax_group_id"`
	TaxGroup             *TaxGroup `json:"tax_group,omitempty"`
	AllowSpecialRequests bool      `gorm:"default:true" json:"allow_special_requests"`

	// Option sets. A product with none of these is added to a ticket
	// without entering the modifier flow.
	Sizes         []ProductSize    `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE" json:"sizes"`
	Types         []ProductType    `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE" json:"types"`
	Portions      []ProductPortion `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE" json:"portions"`
	ToppingGroups []ToppingGroup   `gorm:"many2many:product_topping_groups;" json:"topping_groups"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

// ProductSize is a priced size variant; when selected it replaces the
// product's base price.
type ProductSize struct {
	ID        uint    `gorm:"primaryKey" json:"id"`
	ProductID uint    `gorm:"index" json:"product_id"`
	Name      string  `gorm:"not null" json:"name"`
	Price     float64 `gorm:"not null" json:"price"`
}

type ProductType struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	ProductID uint   `gorm:"index" json:"product_id"`
	Name      string `gorm:"not null" json:"name"`
}

// ProductPortion is a split such as "Left Half"; each selected portion
// carries its own modifier set on the ticket item.
type ProductPortion struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	ProductID uint   `gorm:"index" json:"product_id"`
	Name      string `gorm:"not null" json:"name"`
}

// TaxGroup holds the rate applied to taxed products at the moment an
// item is created; the item keeps its own copy of the rate afterwards.
type TaxGroup struct {
	ID   uint    `gorm:"primaryKey" json:"id"`
	Name string  `gorm:"unique;not null" json:"name"`
	Rate float64 `gorm:"not null" json:"rate"` // e.g. 0.0825
}

// NeedsConfiguration reports whether adding the product must open the
// modifier flow.
func (p *Product) NeedsConfiguration() bool {
	return len(p.Sizes) > 0 || len(p.Types) > 0 || len(p.Portions) > 0 || len(p.ToppingGroups) > 0
}

// TaxRate returns the rate captured onto new ticket items.
func (p *Product) TaxRate() float64 {
	if !p.Taxed || p.TaxGroup == nil {
		return 0
	}
	return p.TaxGroup.Rate
}
