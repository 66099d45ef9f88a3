package models

import "time"

// DailyFinance is a per-day cash-flow note ledger. One record is expected
// per calendar date.
type DailyFinance struct {
	ID           uint          `gorm:"primaryKey" json:"id"`
	Date         time.Time     `gorm:"index;not null" json:"date"`
	CreatedBy    string        `gorm:"size:128" json:"createdBy"`
	IncomeNotes  []IncomeNote  `gorm:"constraint:OnDelete:CASCADE" json:"incomeNotes"`
	ExpenseNotes []ExpenseNote `gorm:"constraint:OnDelete:CASCADE" json:"expenseNotes"`
	CreatedAt    time.Time     `json:"createdAt"`
	UpdatedAt    time.Time     `json:"updatedAt"`
}

type IncomeNote struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	DailyFinanceID uint      `gorm:"index;not null" json:"dailyFinanceId"`
	Label          string    `gorm:"size:255" json:"label"`
	Amount         float64   `json:"amount"`
	CreatedAt      time.Time `json:"createdAt"`
}

type ExpenseNote struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	DailyFinanceID uint      `gorm:"index;not null" json:"dailyFinanceId"`
	Label          string    `gorm:"size:255" json:"label"`
	Amount         float64   `json:"amount"`
	CreatedAt      time.Time `json:"createdAt"`
}
