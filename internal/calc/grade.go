// Package calc holds the arithmetic behind the API: grade-deduction pricing,
// bill totals, payroll, the purchase summary groupings and the export cost
// rollup. Everything here is a pure function over plain values so the
// handlers and the PDF layer can share one set of numbers.
package calc

// GradeCut is one culled grade: weight taken out and deduction price per kg.
type GradeCut struct {
	Name   string  `json:"name"`
	Weight float64 `json:"weight"`
	Price  float64 `json:"price"`
}

// GradeDeductionResult is the calculator output. FullyDeducted is set when
// the culled weight consumed the whole harvest; FinalPrice is 0 in that case
// rather than a division error, and callers should surface the condition.
type GradeDeductionResult struct {
	NetAmount       float64
	RemainingWeight float64
	FinalPrice      float64
	FullyDeducted   bool
}

// GradeDeduction prices a harvest after per-grade culls:
//
//	netAmount       = totalWeight*basePrice - sum(weight*price)
//	remainingWeight = totalWeight - sum(weight)
//	finalPrice      = netAmount / remainingWeight  (0 when nothing remains)
//
// Both the stateless endpoint and the persisted grade history go through
// this function, so the two stay numerically identical.
func GradeDeduction(totalWeight, basePrice float64, grades []GradeCut) GradeDeductionResult {
	var totalDeductions, deductedWeight float64
	for _, g := range grades {
		totalDeductions += g.Weight * g.Price
		deductedWeight += g.Weight
	}

	res := GradeDeductionResult{
		NetAmount:       totalWeight*basePrice - totalDeductions,
		RemainingWeight: totalWeight - deductedWeight,
	}
	if res.RemainingWeight > 0 {
		res.FinalPrice = res.NetAmount / res.RemainingWeight
	} else {
		res.FullyDeducted = true
	}
	return res
}
