package calc

import "github.com/naraphan13/saijaitham-durian-backend/internal/models"

// ChemicalDipTotal is weight x pricePerKg.
func ChemicalDipTotal(d models.ChemicalDip) float64 {
	return d.Weight * d.PricePerKg
}

// ContainerLoadingTotal sums the per-container prices.
func ContainerLoadingTotal(l models.ContainerLoading) float64 {
	var total float64
	for _, c := range l.Containers {
		total += c.Price
	}
	return total
}

// PackingTotals returns the box subtotal before deductions, the summed
// deductions and the payable remainder.
func PackingTotals(p models.Packing) (boxTotal, deductTotal, netTotal float64) {
	boxTotal = p.BigBoxQuantity*p.BigBoxPrice + p.SmallBoxQuantity*p.SmallBoxPrice
	for _, d := range p.Deductions {
		deductTotal += d.Amount
	}
	netTotal = boxTotal - deductTotal
	return boxTotal, deductTotal, netTotal
}
