package calc

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGradeDeduction(t *testing.T) {
	res := GradeDeduction(100, 50, []GradeCut{{Name: "ตกไซซ์", Weight: 10, Price: 5}})

	assert.InDelta(t, 4950, res.NetAmount, 1e-9)
	assert.InDelta(t, 90, res.RemainingWeight, 1e-9)
	assert.InDelta(t, 55, res.FinalPrice, 1e-9)
	assert.False(t, res.FullyDeducted)
}

func TestGradeDeductionMultipleGrades(t *testing.T) {
	res := GradeDeduction(500, 80, []GradeCut{
		{Name: "เกรด B", Weight: 50, Price: 60},
		{Name: "เกรด C", Weight: 30, Price: 40},
	})

	// 500*80 - (50*60 + 30*40) = 40000 - 4200
	assert.InDelta(t, 35800, res.NetAmount, 1e-9)
	assert.InDelta(t, 420, res.RemainingWeight, 1e-9)
	assert.InDelta(t, 35800.0/420.0, res.FinalPrice, 1e-9)
}

func TestGradeDeductionNoGrades(t *testing.T) {
	res := GradeDeduction(100, 50, nil)

	assert.InDelta(t, 5000, res.NetAmount, 1e-9)
	assert.InDelta(t, 100, res.RemainingWeight, 1e-9)
	assert.InDelta(t, 50, res.FinalPrice, 1e-9)
}

func TestGradeDeductionFullyDeducted(t *testing.T) {
	res := GradeDeduction(100, 50, []GradeCut{{Weight: 100, Price: 10}})

	assert.True(t, res.FullyDeducted)
	assert.Zero(t, res.FinalPrice)
	assert.Zero(t, res.RemainingWeight)
	assert.InDelta(t, 4000, res.NetAmount, 1e-9)
}
