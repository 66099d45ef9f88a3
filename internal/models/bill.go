package models

import "time"

// Bill is a durian purchase record with its line items.
type Bill struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Seller    string    `gorm:"size:128;not null" json:"seller"`
	Date      time.Time `gorm:"index;not null" json:"date"`
	Items     []Item    `gorm:"constraint:OnDelete:CASCADE" json:"items"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Item is one purchased lot: a variety/grade pair with weight and unit price.
type Item struct {
	ID         uint    `gorm:"primaryKey" json:"id"`
	BillID     uint    `gorm:"index;not null" json:"billId"`
	Variety    string  `gorm:"size:64" json:"variety"`
	Grade      string  `gorm:"size:32" json:"grade"`
	Weight     float64 `json:"weight"`
	PricePerKg float64 `json:"pricePerKg"`
}
