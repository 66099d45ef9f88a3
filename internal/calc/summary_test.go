package calc

import (
	"testing"
	"time"

	"github.com/naraphan13/saijaitham-durian-backend/internal/models"
	"github.com/naraphan13/saijaitham-durian-backend/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func summaryFixture() ([]models.Item, map[uint]models.Bill) {
	d1 := time.Date(2024, 2, 15, 10, 0, 0, 0, util.Bangkok)
	d2 := time.Date(2024, 2, 16, 10, 0, 0, 0, util.Bangkok)
	bills := map[uint]models.Bill{
		1: {ID: 1, Date: d1},
		2: {ID: 2, Date: d2},
	}
	items := []models.Item{
		{BillID: 1, Variety: "หมอนทอง", Grade: "A", Weight: 100, PricePerKg: 80},
		{BillID: 1, Variety: "หมอนทอง", Grade: "B", Weight: 50, PricePerKg: 60},
		{BillID: 2, Variety: "หมอนทอง", Grade: "A", Weight: 20, PricePerKg: 80},
		{BillID: 2, Variety: "ชะนี", Grade: "A", Weight: 10, PricePerKg: 50},
	}
	return items, bills
}

func TestSummarizePurchasesGroupings(t *testing.T) {
	items, bills := summaryFixture()
	s := SummarizePurchases(items, bills)

	require.Contains(t, s.ByDate, "2024-02-15")
	day := s.ByDate["2024-02-15"]
	assert.Equal(t, WeightTotal{Weight: 100, Total: 8000}, day["หมอนทอง A"])
	assert.Equal(t, WeightTotal{Weight: 50, Total: 3000}, day["หมอนทอง B"])

	// grade A accumulates across both days and varieties
	assert.Equal(t, WeightTotal{Weight: 130, Total: 10100}, s.ByGrade["A"])
	assert.Equal(t, WeightTotal{Weight: 170, Total: 12600}, s.ByVariety["หมอนทอง"])
	assert.Equal(t, WeightTotal{Weight: 120, Total: 9600}, s.ByVarietyGrade["หมอนทอง A"])
}

func TestSummarizePurchasesIdempotent(t *testing.T) {
	items, bills := summaryFixture()
	first := SummarizePurchases(items, bills)
	second := SummarizePurchases(items, bills)
	assert.Equal(t, first, second)
}

func TestSummarizePurchasesSkipsOrphans(t *testing.T) {
	items := []models.Item{{BillID: 99, Variety: "หมอนทอง", Grade: "A", Weight: 10, PricePerKg: 80}}
	s := SummarizePurchases(items, map[uint]models.Bill{})
	assert.Empty(t, s.ByGrade)
	assert.Empty(t, s.ByDate)
}
