package calc

import "github.com/naraphan13/saijaitham-durian-backend/internal/models"

// MainItemAmount is the charge for one cutting line: a per-kg rate when the
// item carries a weight, otherwise a flat amount.
func MainItemAmount(item models.MainItem) float64 {
	if item.Weight != nil {
		return *item.Weight * item.Price
	}
	return item.Price
}

// DeductItemAmount is qty x unitPrice unless an explicit actual amount
// overrides it.
func DeductItemAmount(item models.DeductItem) float64 {
	if item.ActualAmount != nil {
		return *item.ActualAmount
	}
	return item.Qty * item.UnitPrice
}

// CuttingTotals computes the cutting-bill breakdown. When the bill has no
// itemized main charges it falls back to the flat mainWeight x mainPrice
// pair (legacy flat mode).
func CuttingTotals(bill models.CuttingBill) (mainTotal, deductTotal, extraTotal, netTotal float64) {
	if len(bill.MainItems) > 0 {
		for _, item := range bill.MainItems {
			mainTotal += MainItemAmount(item)
		}
	} else if bill.MainWeight != nil && bill.MainPrice != nil {
		mainTotal = *bill.MainWeight * *bill.MainPrice
	}

	for _, item := range bill.DeductItems {
		deductTotal += DeductItemAmount(item)
	}
	for _, item := range bill.ExtraDeductions {
		extraTotal += item.Amount
	}

	netTotal = mainTotal - deductTotal - extraTotal
	return mainTotal, deductTotal, extraTotal, netTotal
}
