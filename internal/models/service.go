package models

import "time"

// ChemicalDip records a chemical-dip treatment fee; total = weight x pricePerKg.
type ChemicalDip struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	Date       time.Time `gorm:"index;not null" json:"date"`
	Weight     float64   `json:"weight"`
	PricePerKg float64   `json:"pricePerKg"`
	Recipient  string    `gorm:"size:128" json:"recipient"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

// ContainerEntry is one loaded container inside a ContainerLoading record.
type ContainerEntry struct {
	Label         string  `json:"label"`
	ContainerCode string  `json:"containerCode"`
	Price         float64 `json:"price"`
}

// ContainerLoading records container-loading service fees; total = sum of prices.
type ContainerLoading struct {
	ID         uint             `gorm:"primaryKey" json:"id"`
	Date       time.Time        `gorm:"index;not null" json:"date"`
	Recipient  string           `gorm:"size:128" json:"recipient"`
	Containers []ContainerEntry `gorm:"serializer:json" json:"containers"`
	CreatedAt  time.Time        `json:"createdAt"`
	UpdatedAt  time.Time        `json:"updatedAt"`
}

// PackingDeduction is a flat deduction taken off a packing bill.
type PackingDeduction struct {
	Label  string  `json:"label"`
	Amount float64 `json:"amount"`
}

// Packing records box-packing service fees.
type Packing struct {
	ID               uint               `gorm:"primaryKey" json:"id"`
	Date             time.Time          `gorm:"index;not null" json:"date"`
	BigBoxQuantity   float64            `json:"bigBoxQuantity"`
	BigBoxPrice      float64            `json:"bigBoxPrice"`
	SmallBoxQuantity float64            `json:"smallBoxQuantity"`
	SmallBoxPrice    float64            `json:"smallBoxPrice"`
	Recipient        string             `gorm:"size:128" json:"recipient"`
	Deductions       []PackingDeduction `gorm:"serializer:json" json:"deductions"`
	CreatedAt        time.Time          `json:"createdAt"`
	UpdatedAt        time.Time          `json:"updatedAt"`
}
