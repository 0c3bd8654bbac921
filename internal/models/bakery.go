package models

import "time"

// Bakery represents a bakery and the baked goods it sells.
type Bakery struct {
	ID         int         `gorm:"primaryKey" json:"id"`
	Name       string      `gorm:"size:255;not null" json:"name"`
	CreatedAt  time.Time   `json:"created_at"`
	UpdatedAt  time.Time   `json:"updated_at"`
	BakedGoods []BakedGood `gorm:"foreignKey:BakeryID" json:"baked_goods,omitempty"`
}
