package calc

import (
	"testing"

	"github.com/naraphan13/saijaitham-durian-backend/internal/models"

	"github.com/stretchr/testify/assert"
)

func f(v float64) *float64 { return &v }

func TestCuttingTotalsFlatMode(t *testing.T) {
	bill := models.CuttingBill{
		MainWeight: f(1000),
		MainPrice:  f(2),
		DeductItems: []models.DeductItem{
			{Label: "ตะกร้า", Qty: 3, UnitPrice: 10},
		},
		ExtraDeductions: []models.ExtraDeduction{
			{Label: "ค่าน้ำมัน", Amount: 50},
		},
	}

	mainTotal, deductTotal, extraTotal, netTotal := CuttingTotals(bill)
	assert.InDelta(t, 2000, mainTotal, 1e-9)
	assert.InDelta(t, 30, deductTotal, 1e-9)
	assert.InDelta(t, 50, extraTotal, 1e-9)
	assert.InDelta(t, 1920, netTotal, 1e-9)
}

func TestCuttingTotalsItemizedIgnoresFlatPair(t *testing.T) {
	bill := models.CuttingBill{
		MainWeight: f(9999),
		MainPrice:  f(9999),
		MainItems: []models.MainItem{
			{Label: "ตัดหมอนทอง", Weight: f(100), Price: 3},
			{Label: "เหมาเช้า", Price: 500}, // flat line, no weight
		},
	}

	mainTotal, _, _, netTotal := CuttingTotals(bill)
	assert.InDelta(t, 800, mainTotal, 1e-9)
	assert.InDelta(t, 800, netTotal, 1e-9)
}

func TestDeductItemAmountActualOverride(t *testing.T) {
	item := models.DeductItem{Qty: 4, UnitPrice: 25, ActualAmount: f(80)}
	assert.InDelta(t, 80, DeductItemAmount(item), 1e-9)

	item.ActualAmount = nil
	assert.InDelta(t, 100, DeductItemAmount(item), 1e-9)
}

func TestCuttingTotalsEmptyBill(t *testing.T) {
	_, _, _, netTotal := CuttingTotals(models.CuttingBill{})
	assert.Zero(t, netTotal)
}
