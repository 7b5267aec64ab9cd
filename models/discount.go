package models

// Discount is catalog reference data. Percentage is a Postgres numeric
// scanned into a string; the pricing engine parses it and treats bad
// values as 0 so a corrupt row never blocks order entry.
type Discount struct {
	ID           uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Name         string `gorm:"not null" json:"name"`
	Percentage   string `gorm:"type:numeric(5,2);not null" json:"percentage"`
	WholeInvoice bool   `gorm:"default:false" json:"whole_invoice"`
}
