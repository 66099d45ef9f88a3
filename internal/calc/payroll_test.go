package calc

import (
	"testing"

	"github.com/naraphan13/saijaitham-durian-backend/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestPayrollTotalsDaily(t *testing.T) {
	p := models.Payroll{
		PayType:     models.PayTypeDaily,
		WorkDays:    f(10),
		PricePerDay: f(300),
		Bonus:       100,
		Deductions: []models.PayrollDeduction{
			{Name: "เบิกล่วงหน้า", Amount: 50},
		},
	}

	totalPay, totalDeduct, netPay := PayrollTotals(p)
	assert.InDelta(t, 3100, totalPay, 1e-9)
	assert.InDelta(t, 50, totalDeduct, 1e-9)
	assert.InDelta(t, 3050, netPay, 1e-9)
}

func TestPayrollTotalsMonthly(t *testing.T) {
	p := models.Payroll{
		PayType:       models.PayTypeMonthly,
		MonthlySalary: f(15000),
		Months:        f(1.5),
	}

	totalPay, totalDeduct, netPay := PayrollTotals(p)
	assert.InDelta(t, 22500, totalPay, 1e-9)
	assert.Zero(t, totalDeduct)
	assert.InDelta(t, 22500, netPay, 1e-9)
}

func TestPayrollTotalsContainerUsesDailyFields(t *testing.T) {
	// container pay reuses workDays as the container count
	p := models.Payroll{
		PayType:     models.PayTypeContainer,
		WorkDays:    f(4),
		PricePerDay: f(1200),
	}

	totalPay, _, _ := PayrollTotals(p)
	assert.InDelta(t, 4800, totalPay, 1e-9)
}

func TestPayrollTotalsNilFields(t *testing.T) {
	totalPay, totalDeduct, netPay := PayrollTotals(models.Payroll{PayType: models.PayTypeDaily})
	assert.Zero(t, totalPay)
	assert.Zero(t, totalDeduct)
	assert.Zero(t, netPay)
}
