package models

import "time"

// SellBill is an outgoing sale, symmetric to Bill.
type SellBill struct {
	ID        uint       `gorm:"primaryKey" json:"id"`
	Customer  string     `gorm:"size:128;not null" json:"customer"`
	Date      time.Time  `gorm:"index;not null" json:"date"`
	Items     []SellItem `gorm:"constraint:OnDelete:CASCADE" json:"items"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt time.Time  `json:"updatedAt"`
}

// SellItem carries the per-basket sub-weights alongside the summed weight.
type SellItem struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	SellBillID uint      `gorm:"index;not null" json:"sellBillId"`
	Variety    string    `gorm:"size:64" json:"variety"`
	Grade      string    `gorm:"size:32" json:"grade"`
	Weight     float64   `json:"weight"`
	Weights    []float64 `gorm:"serializer:json" json:"weights"`
	PricePerKg float64   `json:"pricePerKg"`
}
