package calc

import (
	"testing"

	"github.com/naraphan13/saijaitham-durian-backend/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestChemicalDipTotal(t *testing.T) {
	total := ChemicalDipTotal(models.ChemicalDip{Weight: 1500, PricePerKg: 1.5})
	assert.InDelta(t, 2250, total, 1e-9)
}

func TestContainerLoadingTotal(t *testing.T) {
	total := ContainerLoadingTotal(models.ContainerLoading{
		Containers: []models.ContainerEntry{
			{Label: "ตู้ 1", ContainerCode: "TEMU1234", Price: 3000},
			{Label: "ตู้ 2", ContainerCode: "TEMU5678", Price: 3500},
		},
	})
	assert.InDelta(t, 6500, total, 1e-9)
}

func TestPackingTotals(t *testing.T) {
	boxTotal, deductTotal, netTotal := PackingTotals(models.Packing{
		BigBoxQuantity:   100,
		BigBoxPrice:      12,
		SmallBoxQuantity: 50,
		SmallBoxPrice:    8,
		Deductions: []models.PackingDeduction{
			{Label: "ค่าน้ำ", Amount: 100},
		},
	})
	assert.InDelta(t, 1600, boxTotal, 1e-9)
	assert.InDelta(t, 100, deductTotal, 1e-9)
	assert.InDelta(t, 1500, netTotal, 1e-9)
}
