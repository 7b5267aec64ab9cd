package models

// ServiceMethod is how the order is fulfilled, e.g. dine-in, takeout,
// delivery. Picked once per ticket.
type ServiceMethod struct {
	ID   uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Name string `gorm:"unique;not null" json:"name"`
}
