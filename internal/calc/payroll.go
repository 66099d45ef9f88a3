package calc

import "github.com/naraphan13/saijaitham-durian-backend/internal/models"

func deref(f *float64) float64 {
	if f == nil {
		return 0
	}
	return *f
}

// PayrollBasePay computes base wages from the pay-type tag: daily and
// container pay are units x rate (days or containers in WorkDays), monthly
// pay is salary x months.
func PayrollBasePay(p models.Payroll) float64 {
	if p.PayType == models.PayTypeMonthly {
		return deref(p.MonthlySalary) * deref(p.Months)
	}
	return deref(p.WorkDays) * deref(p.PricePerDay)
}

// PayrollTotals returns the persisted snapshot triple: gross pay (base +
// bonus), summed deductions and net pay. Create and update both run through
// here so the stored numbers cannot drift.
func PayrollTotals(p models.Payroll) (totalPay, totalDeduct, netPay float64) {
	totalPay = PayrollBasePay(p) + p.Bonus
	for _, d := range p.Deductions {
		totalDeduct += d.Amount
	}
	netPay = totalPay - totalDeduct
	return totalPay, totalDeduct, netPay
}
