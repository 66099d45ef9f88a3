package models

import "time"

// Pay types. Daily and container pay use WorkDays x PricePerDay (units are
// days or containers), monthly pay uses MonthlySalary x Months.
const (
	PayTypeDaily     = "daily"
	PayTypeMonthly   = "monthly"
	PayTypeContainer = "container"
)

// Payroll is a wage payment. TotalPay, TotalDeduct and NetPay are persisted
// snapshots recomputed on every create and update.
type Payroll struct {
	ID            uint               `gorm:"primaryKey" json:"id"`
	EmployeeName  string             `gorm:"size:128;not null" json:"employeeName"`
	Date          time.Time          `gorm:"index;not null" json:"date"`
	PayType       string             `gorm:"size:16;not null" json:"payType"`
	WorkDays      *float64           `json:"workDays"`
	PricePerDay   *float64           `json:"pricePerDay"`
	MonthlySalary *float64           `json:"monthlySalary"`
	Months        *float64           `json:"months"`
	Bonus         float64            `json:"bonus"`
	TotalPay      float64            `json:"totalPay"`
	TotalDeduct   float64            `json:"totalDeduct"`
	NetPay        float64            `json:"netPay"`
	Deductions    []PayrollDeduction `gorm:"constraint:OnDelete:CASCADE" json:"deductions"`
	CreatedAt     time.Time          `json:"createdAt"`
	UpdatedAt     time.Time          `json:"updatedAt"`
}

// PayrollDeduction is one itemized deduction on a payslip.
type PayrollDeduction struct {
	ID        uint    `gorm:"primaryKey" json:"id"`
	PayrollID uint    `gorm:"index;not null" json:"payrollId"`
	Name      string  `gorm:"size:128" json:"name"`
	Amount    float64 `json:"amount"`
}
