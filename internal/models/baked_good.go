package models

import "time"

// BakedGood is an item sold by exactly one bakery.
type BakedGood struct {
	ID        int       `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"size:255;not null" json:"name"`
	Price     float64   `gorm:"type:numeric(10,2);not null;index" json:"price"`
	BakeryID  int       `gorm:"not null;index" json:"bakery_id"`
	Bakery    *Bakery   `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"bakery,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
