package models

import "time"

// CuttingBill is a processing-fee bill for a cutter. The flat
// MainWeight/MainPrice pair is only persisted when MainItems is empty
// (legacy flat mode).
type CuttingBill struct {
	ID              uint             `gorm:"primaryKey" json:"id"`
	CutterName      string           `gorm:"size:128;not null" json:"cutterName"`
	Date            time.Time        `gorm:"index;not null" json:"date"`
	MainWeight      *float64         `json:"mainWeight"`
	MainPrice       *float64         `json:"mainPrice"`
	MainItems       []MainItem       `gorm:"constraint:OnDelete:CASCADE" json:"mainItems"`
	DeductItems     []DeductItem     `gorm:"constraint:OnDelete:CASCADE" json:"deductItems"`
	ExtraDeductions []ExtraDeduction `gorm:"constraint:OnDelete:CASCADE" json:"extraDeductions"`
	CreatedAt       time.Time        `json:"createdAt"`
	UpdatedAt       time.Time        `json:"updatedAt"`
}

// MainItem is a cutting charge. Price is a per-kg rate when Weight is set,
// otherwise a flat amount.
type MainItem struct {
	ID            uint     `gorm:"primaryKey" json:"id"`
	CuttingBillID uint     `gorm:"index;not null" json:"cuttingBillId"`
	Label         string   `gorm:"size:128" json:"label"`
	Weight        *float64 `json:"weight"`
	Price         float64  `json:"price"`
}

// DeductItem is a quantity-based deduction; ActualAmount overrides
// Qty x UnitPrice when present.
type DeductItem struct {
	ID            uint     `gorm:"primaryKey" json:"id"`
	CuttingBillID uint     `gorm:"index;not null" json:"cuttingBillId"`
	Label         string   `gorm:"size:128" json:"label"`
	Qty           float64  `json:"qty"`
	UnitPrice     float64  `json:"unitPrice"`
	ActualAmount  *float64 `json:"actualAmount"`
}

// ExtraDeduction is a flat deduction line.
type ExtraDeduction struct {
	ID            uint    `gorm:"primaryKey" json:"id"`
	CuttingBillID uint    `gorm:"index;not null" json:"cuttingBillId"`
	Label         string  `gorm:"size:128" json:"label"`
	Amount        float64 `json:"amount"`
}
