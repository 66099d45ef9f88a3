package models

import "time"

// GradeHistory is a persisted grade-deduction calculation for a farm visit.
// NetAmount, FinalPrice and RemainingWeight are snapshots of the calculator
// output (see calc.GradeDeduction).
type GradeHistory struct {
	ID              uint      `gorm:"primaryKey" json:"id"`
	FarmName        string    `gorm:"size:128;not null" json:"farmName"`
	Date            time.Time `gorm:"index;not null" json:"date"`
	TotalWeight     float64   `json:"totalWeight"`
	BasePrice       float64   `json:"basePrice"`
	NetAmount       float64   `json:"netAmount"`
	FinalPrice      float64   `json:"finalPrice"`
	RemainingWeight float64   `json:"remainingWeight"`
	Grades          []Grade   `gorm:"constraint:OnDelete:CASCADE" json:"grades"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

// Grade is one culled grade: the weight taken out and its deduction price.
type Grade struct {
	ID             uint    `gorm:"primaryKey" json:"id"`
	GradeHistoryID uint    `gorm:"index;not null" json:"gradeHistoryId"`
	Name           string  `gorm:"size:64" json:"name"`
	Weight         float64 `json:"weight"`
	Price          float64 `json:"price"`
}
