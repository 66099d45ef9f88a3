package calc

import (
	"github.com/naraphan13/saijaitham-durian-backend/internal/models"
	"github.com/naraphan13/saijaitham-durian-backend/internal/util"
)

// WeightTotal is one accumulator bucket: cumulative weight and cumulative
// value (weight x pricePerKg).
type WeightTotal struct {
	Weight float64 `json:"weight"`
	Total  float64 `json:"total"`
}

// PurchaseSummary groups purchase line items four ways. ByDate is keyed by
// the bill's Asia/Bangkok calendar day and then by the "variety grade"
// composite; the other three are flat. The whole thing is recomputed from
// the stored items on every read, so re-running it on unchanged data always
// yields the same buckets.
type PurchaseSummary struct {
	ByDate         map[string]map[string]WeightTotal `json:"byDate"`
	ByGrade        map[string]WeightTotal            `json:"byGrade"`
	ByVariety      map[string]WeightTotal            `json:"byVariety"`
	ByVarietyGrade map[string]WeightTotal            `json:"byVarietyGrade"`
}

// SummarizePurchases folds every purchase item into the four groupings.
// Each item must arrive with its parent Bill preloaded for the date.
func SummarizePurchases(items []models.Item, billDates map[uint]models.Bill) PurchaseSummary {
	s := PurchaseSummary{
		ByDate:         map[string]map[string]WeightTotal{},
		ByGrade:        map[string]WeightTotal{},
		ByVariety:      map[string]WeightTotal{},
		ByVarietyGrade: map[string]WeightTotal{},
	}

	for _, item := range items {
		bill, ok := billDates[item.BillID]
		if !ok {
			continue // orphaned item, nothing to date it by
		}

		day := util.DayKey(bill.Date)
		total := item.Weight * item.PricePerKg
		combo := item.Variety + " " + item.Grade

		if s.ByDate[day] == nil {
			s.ByDate[day] = map[string]WeightTotal{}
		}
		addBucket(s.ByDate[day], combo, item.Weight, total)
		addBucket(s.ByGrade, item.Grade, item.Weight, total)
		addBucket(s.ByVariety, item.Variety, item.Weight, total)
		addBucket(s.ByVarietyGrade, combo, item.Weight, total)
	}

	return s
}

func addBucket(m map[string]WeightTotal, key string, weight, total float64) {
	b := m[key]
	b.Weight += weight
	b.Total += total
	m[key] = b
}
