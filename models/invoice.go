package models

import "time"

// HeldInvoice is a parked ticket: the whole session serialized to JSON
// so it can be recalled on any terminal later.
type HeldInvoice struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Ref       string    `gorm:"uniqueIndex;not null" json:"ref"`
	Terminal  string    `gorm:"index" json:"terminal"`
	ItemCount int       `json:"item_count"`
	Total     float64   `json:"total"`
	Payload   []byte    `gorm:"type:jsonb;not null" json:"-"`
	CreatedAt time.Time `json:"created_at"`
}
